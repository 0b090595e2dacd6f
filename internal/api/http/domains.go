package http

import (
	"errors"
	"io"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"
	"github.com/go-playground/validator/v10"
	"github.com/syslocale/domainpbn/internal/models"
	"github.com/syslocale/domainpbn/pkg/response"
)

// domainRequest is the payload for creating or replacing a domain listing.
type domainRequest struct {
	DomainName        string `json:"domain_name" validate:"required"`
	DA                int    `json:"da" validate:"min=0"`
	PA                int    `json:"pa" validate:"min=0"`
	UR                int    `json:"ur" validate:"min=0"`
	DR                int    `json:"dr" validate:"min=0"`
	TF                int    `json:"tf" validate:"min=0"`
	CF                int    `json:"cf" validate:"min=0"`
	Price             int    `json:"price" validate:"required,min=1"`
	WebArchiveHistory string `json:"web_archive_history" validate:"omitempty,url"`
	Age               int    `json:"age" validate:"min=0"`
	Registrar         string `json:"registrar" validate:"required"`
	Status            string `json:"status"`
	Notes             string `json:"notes"`
}

func (req *domainRequest) toModel() *models.DomainListing {
	status := req.Status
	if status == "" {
		status = models.DomainStatusAvailable
	}

	return &models.DomainListing{
		DomainName:        req.DomainName,
		DA:                req.DA,
		PA:                req.PA,
		UR:                req.UR,
		DR:                req.DR,
		TF:                req.TF,
		CF:                req.CF,
		Price:             req.Price,
		WebArchiveHistory: req.WebArchiveHistory,
		Age:               req.Age,
		Registrar:         req.Registrar,
		Status:            status,
		Notes:             req.Notes,
	}
}

// importResponse reports the outcome of a bulk import.
type importResponse struct {
	Imported int64 `json:"imported"`
}

// handleListDomains handles GET requests for the public domain listing.
// Only available domains are returned unless status is given explicitly.
func handleListDomains(svc DomainService) http.HandlerFunc {
	const op = "api.http.handleListDomains"
	const successMsg = "The domains were retrieved successfully."

	return func(w http.ResponseWriter, r *http.Request) {
		p, ok := parseListingParams(w, r)
		if !ok {
			return
		}

		domains, err := svc.PublicList(r.Context(), r.URL.Query().Get("status"), p)
		if err != nil {
			renderServiceError(w, r, op, err)
			return
		}

		render.Status(r, http.StatusOK)
		render.JSON(w, r, response.SuccessResponse(successMsg, domains))
	}
}

// handleAdminListDomains handles GET requests for the full marketplace
// inventory.
func handleAdminListDomains(svc DomainService) http.HandlerFunc {
	const op = "api.http.handleAdminListDomains"
	const successMsg = "The domains were retrieved successfully."

	return func(w http.ResponseWriter, r *http.Request) {
		domains, err := svc.AdminList(r.Context())
		if err != nil {
			renderServiceError(w, r, op, err)
			return
		}

		render.Status(r, http.StatusOK)
		render.JSON(w, r, response.SuccessResponse(successMsg, domains))
	}
}

// handleCreateDomain handles POST requests to add a domain listing.
func handleCreateDomain(svc DomainService, validate *validator.Validate) http.HandlerFunc {
	const op = "api.http.handleCreateDomain"
	const successMsg = "The domain was created successfully."

	return func(w http.ResponseWriter, r *http.Request) {
		var req domainRequest
		if !bindRequest(w, r, validate, &req) {
			return
		}

		domain, err := svc.Create(r.Context(), req.toModel())
		if err != nil {
			renderServiceError(w, r, op, err)
			return
		}

		render.Status(r, http.StatusCreated)
		render.JSON(w, r, response.SuccessResponse(successMsg, domain))
	}
}

// handleImportDomains handles POST requests to bulk import domain
// listings. The whole batch is stored in one write.
func handleImportDomains(svc DomainService, validate *validator.Validate) http.HandlerFunc {
	const op = "api.http.handleImportDomains"
	const successMsg = "The domains were imported successfully."

	return func(w http.ResponseWriter, r *http.Request) {
		var reqs []domainRequest
		if err := render.DecodeJSON(r.Body, &reqs); err != nil {
			if errors.Is(err, io.EOF) {
				render.Status(r, http.StatusBadRequest)
				render.JSON(w, r, response.EmptyRequestBodyResponse)
				return
			}

			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.BadRequestResponse)
			return
		}

		// validator.Struct doesn't take slices; each listing is checked
		// on its own.
		for i := range reqs {
			if err := validate.Struct(reqs[i]); err != nil {
				render.Status(r, http.StatusBadRequest)
				render.JSON(w, r, response.ValidationErrorResponse(err))
				return
			}
		}

		domains := make([]*models.DomainListing, 0, len(reqs))
		for i := range reqs {
			domains = append(domains, reqs[i].toModel())
		}

		n, err := svc.Import(r.Context(), domains)
		if err != nil {
			renderServiceError(w, r, op, err)
			return
		}

		render.Status(r, http.StatusCreated)
		render.JSON(w, r, response.SuccessResponse(successMsg, importResponse{Imported: n}))
	}
}

// handleUpdateDomain handles PUT requests to replace a domain listing.
func handleUpdateDomain(svc DomainService, validate *validator.Validate) http.HandlerFunc {
	const op = "api.http.handleUpdateDomain"
	const successMsg = "The domain was updated successfully."

	return func(w http.ResponseWriter, r *http.Request) {
		var req domainRequest
		if !bindRequest(w, r, validate, &req) {
			return
		}

		domain, err := svc.Update(r.Context(), chi.URLParam(r, "id"), req.toModel())
		if err != nil {
			renderServiceError(w, r, op, err)
			return
		}

		render.Status(r, http.StatusOK)
		render.JSON(w, r, response.SuccessResponse(successMsg, domain))
	}
}

// handleDeleteDomain handles DELETE requests to remove a domain listing.
func handleDeleteDomain(svc DomainService) http.HandlerFunc {
	const op = "api.http.handleDeleteDomain"
	const successMsg = "The domain was deleted successfully."

	return func(w http.ResponseWriter, r *http.Request) {
		if err := svc.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
			renderServiceError(w, r, op, err)
			return
		}

		render.Status(r, http.StatusOK)
		render.JSON(w, r, response.SuccessResponse(successMsg))
	}
}
