package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"
	"github.com/go-playground/validator/v10"
	"github.com/syslocale/domainpbn/internal/models"
	"github.com/syslocale/domainpbn/pkg/response"
)

// siteRequest is the payload for creating or replacing a PBN site.
type siteRequest struct {
	Code         string  `json:"code" validate:"required"`
	DomainReal   string  `json:"domain_real" validate:"required"`
	Niche        string  `json:"niche" validate:"required"`
	DR           int     `json:"dr" validate:"min=0"`
	DA           int     `json:"da" validate:"min=0"`
	Traffic      int     `json:"traffic" validate:"min=0"`
	SpamScore    float64 `json:"spam_score" validate:"min=0"`
	Age          int     `json:"age" validate:"min=0"`
	PricePerPost int     `json:"price_per_post" validate:"required,min=1"`
	Status       string  `json:"status"`
	Notes        string  `json:"notes"`
}

func (req *siteRequest) toModel() *models.PBNSite {
	status := req.Status
	if status == "" {
		status = models.SiteStatusActive
	}

	return &models.PBNSite{
		Code:         req.Code,
		DomainReal:   req.DomainReal,
		Niche:        req.Niche,
		DR:           req.DR,
		DA:           req.DA,
		Traffic:      req.Traffic,
		SpamScore:    req.SpamScore,
		Age:          req.Age,
		PricePerPost: req.PricePerPost,
		Status:       status,
		Notes:        req.Notes,
	}
}

// handleListSites handles GET requests for the public PBN listing. The
// returned records are redacted; real domains never appear here.
func handleListSites(svc SiteService) http.HandlerFunc {
	const op = "api.http.handleListSites"
	const successMsg = "The sites were retrieved successfully."

	return func(w http.ResponseWriter, r *http.Request) {
		p, ok := parseListingParams(w, r)
		if !ok {
			return
		}
		p.Category = r.URL.Query().Get("niche")

		sites, err := svc.PublicList(r.Context(), p)
		if err != nil {
			renderServiceError(w, r, op, err)
			return
		}

		render.Status(r, http.StatusOK)
		render.JSON(w, r, response.SuccessResponse(successMsg, sites))
	}
}

// handleAdminListSites handles GET requests for the unredacted admin
// inventory.
func handleAdminListSites(svc SiteService) http.HandlerFunc {
	const op = "api.http.handleAdminListSites"
	const successMsg = "The sites were retrieved successfully."

	return func(w http.ResponseWriter, r *http.Request) {
		sites, err := svc.AdminList(r.Context())
		if err != nil {
			renderServiceError(w, r, op, err)
			return
		}

		render.Status(r, http.StatusOK)
		render.JSON(w, r, response.SuccessResponse(successMsg, sites))
	}
}

// handleCreateSite handles POST requests to add a site to the inventory.
func handleCreateSite(svc SiteService, validate *validator.Validate) http.HandlerFunc {
	const op = "api.http.handleCreateSite"
	const successMsg = "The site was created successfully."

	return func(w http.ResponseWriter, r *http.Request) {
		var req siteRequest
		if !bindRequest(w, r, validate, &req) {
			return
		}

		site, err := svc.Create(r.Context(), req.toModel())
		if err != nil {
			renderServiceError(w, r, op, err)
			return
		}

		render.Status(r, http.StatusCreated)
		render.JSON(w, r, response.SuccessResponse(successMsg, site))
	}
}

// handleUpdateSite handles PUT requests to replace a site.
func handleUpdateSite(svc SiteService, validate *validator.Validate) http.HandlerFunc {
	const op = "api.http.handleUpdateSite"
	const successMsg = "The site was updated successfully."

	return func(w http.ResponseWriter, r *http.Request) {
		var req siteRequest
		if !bindRequest(w, r, validate, &req) {
			return
		}

		site, err := svc.Update(r.Context(), chi.URLParam(r, "id"), req.toModel())
		if err != nil {
			renderServiceError(w, r, op, err)
			return
		}

		render.Status(r, http.StatusOK)
		render.JSON(w, r, response.SuccessResponse(successMsg, site))
	}
}

// handleDeleteSite handles DELETE requests to remove a site.
func handleDeleteSite(svc SiteService) http.HandlerFunc {
	const op = "api.http.handleDeleteSite"
	const successMsg = "The site was deleted successfully."

	return func(w http.ResponseWriter, r *http.Request) {
		if err := svc.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
			renderServiceError(w, r, op, err)
			return
		}

		render.Status(r, http.StatusOK)
		render.JSON(w, r, response.SuccessResponse(successMsg))
	}
}
