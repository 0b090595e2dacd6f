package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"
	"github.com/go-playground/validator/v10"
	"github.com/syslocale/domainpbn/internal/models"
	"github.com/syslocale/domainpbn/pkg/response"
)

// packageRequest is the payload for creating or replacing a pricing
// package. IsActive defaults to true when omitted.
type packageRequest struct {
	Name          string `json:"name" validate:"required"`
	Slug          string `json:"slug" validate:"required"`
	BacklinkCount int    `json:"backlink_count" validate:"required,min=1"`
	Price         int    `json:"price" validate:"required,min=1"`
	Description   string `json:"description" validate:"required"`
	IsPopular     bool   `json:"is_popular"`
	SortOrder     int    `json:"sort_order"`
	IsActive      *bool  `json:"is_active"`
}

func (req *packageRequest) toModel() *models.Package {
	active := true
	if req.IsActive != nil {
		active = *req.IsActive
	}

	return &models.Package{
		Name:          req.Name,
		Slug:          req.Slug,
		BacklinkCount: req.BacklinkCount,
		Price:         req.Price,
		Description:   req.Description,
		IsPopular:     req.IsPopular,
		SortOrder:     req.SortOrder,
		IsActive:      active,
	}
}

// faqRequest is the payload for creating or replacing an FAQ entry.
type faqRequest struct {
	Question  string `json:"question" validate:"required"`
	Answer    string `json:"answer" validate:"required"`
	SortOrder int    `json:"sort_order"`
	IsActive  *bool  `json:"is_active"`
}

func (req *faqRequest) toModel() *models.FAQ {
	active := true
	if req.IsActive != nil {
		active = *req.IsActive
	}

	return &models.FAQ{
		Question:  req.Question,
		Answer:    req.Answer,
		SortOrder: req.SortOrder,
		IsActive:  active,
	}
}

func handleListPackages(svc PackageService) http.HandlerFunc {
	const op = "api.http.handleListPackages"
	const successMsg = "The packages were retrieved successfully."

	return func(w http.ResponseWriter, r *http.Request) {
		packages, err := svc.PublicList(r.Context())
		if err != nil {
			renderServiceError(w, r, op, err)
			return
		}

		render.Status(r, http.StatusOK)
		render.JSON(w, r, response.SuccessResponse(successMsg, packages))
	}
}

func handleAdminListPackages(svc PackageService) http.HandlerFunc {
	const op = "api.http.handleAdminListPackages"
	const successMsg = "The packages were retrieved successfully."

	return func(w http.ResponseWriter, r *http.Request) {
		packages, err := svc.AdminList(r.Context())
		if err != nil {
			renderServiceError(w, r, op, err)
			return
		}

		render.Status(r, http.StatusOK)
		render.JSON(w, r, response.SuccessResponse(successMsg, packages))
	}
}

func handleCreatePackage(svc PackageService, validate *validator.Validate) http.HandlerFunc {
	const op = "api.http.handleCreatePackage"
	const successMsg = "The package was created successfully."

	return func(w http.ResponseWriter, r *http.Request) {
		var req packageRequest
		if !bindRequest(w, r, validate, &req) {
			return
		}

		pkg, err := svc.Create(r.Context(), req.toModel())
		if err != nil {
			renderServiceError(w, r, op, err)
			return
		}

		render.Status(r, http.StatusCreated)
		render.JSON(w, r, response.SuccessResponse(successMsg, pkg))
	}
}

func handleUpdatePackage(svc PackageService, validate *validator.Validate) http.HandlerFunc {
	const op = "api.http.handleUpdatePackage"
	const successMsg = "The package was updated successfully."

	return func(w http.ResponseWriter, r *http.Request) {
		var req packageRequest
		if !bindRequest(w, r, validate, &req) {
			return
		}

		pkg, err := svc.Update(r.Context(), chi.URLParam(r, "id"), req.toModel())
		if err != nil {
			renderServiceError(w, r, op, err)
			return
		}

		render.Status(r, http.StatusOK)
		render.JSON(w, r, response.SuccessResponse(successMsg, pkg))
	}
}

func handleDeletePackage(svc PackageService) http.HandlerFunc {
	const op = "api.http.handleDeletePackage"
	const successMsg = "The package was deleted successfully."

	return func(w http.ResponseWriter, r *http.Request) {
		if err := svc.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
			renderServiceError(w, r, op, err)
			return
		}

		render.Status(r, http.StatusOK)
		render.JSON(w, r, response.SuccessResponse(successMsg))
	}
}

func handleListFAQs(svc FAQService) http.HandlerFunc {
	const op = "api.http.handleListFAQs"
	const successMsg = "The FAQs were retrieved successfully."

	return func(w http.ResponseWriter, r *http.Request) {
		faqs, err := svc.PublicList(r.Context())
		if err != nil {
			renderServiceError(w, r, op, err)
			return
		}

		render.Status(r, http.StatusOK)
		render.JSON(w, r, response.SuccessResponse(successMsg, faqs))
	}
}

func handleAdminListFAQs(svc FAQService) http.HandlerFunc {
	const op = "api.http.handleAdminListFAQs"
	const successMsg = "The FAQs were retrieved successfully."

	return func(w http.ResponseWriter, r *http.Request) {
		faqs, err := svc.AdminList(r.Context())
		if err != nil {
			renderServiceError(w, r, op, err)
			return
		}

		render.Status(r, http.StatusOK)
		render.JSON(w, r, response.SuccessResponse(successMsg, faqs))
	}
}

func handleCreateFAQ(svc FAQService, validate *validator.Validate) http.HandlerFunc {
	const op = "api.http.handleCreateFAQ"
	const successMsg = "The FAQ was created successfully."

	return func(w http.ResponseWriter, r *http.Request) {
		var req faqRequest
		if !bindRequest(w, r, validate, &req) {
			return
		}

		faq, err := svc.Create(r.Context(), req.toModel())
		if err != nil {
			renderServiceError(w, r, op, err)
			return
		}

		render.Status(r, http.StatusCreated)
		render.JSON(w, r, response.SuccessResponse(successMsg, faq))
	}
}

func handleUpdateFAQ(svc FAQService, validate *validator.Validate) http.HandlerFunc {
	const op = "api.http.handleUpdateFAQ"
	const successMsg = "The FAQ was updated successfully."

	return func(w http.ResponseWriter, r *http.Request) {
		var req faqRequest
		if !bindRequest(w, r, validate, &req) {
			return
		}

		faq, err := svc.Update(r.Context(), chi.URLParam(r, "id"), req.toModel())
		if err != nil {
			renderServiceError(w, r, op, err)
			return
		}

		render.Status(r, http.StatusOK)
		render.JSON(w, r, response.SuccessResponse(successMsg, faq))
	}
}

func handleDeleteFAQ(svc FAQService) http.HandlerFunc {
	const op = "api.http.handleDeleteFAQ"
	const successMsg = "The FAQ was deleted successfully."

	return func(w http.ResponseWriter, r *http.Request) {
		if err := svc.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
			renderServiceError(w, r, op, err)
			return
		}

		render.Status(r, http.StatusOK)
		render.JSON(w, r, response.SuccessResponse(successMsg))
	}
}
