package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"
	"github.com/go-playground/validator/v10"
	"github.com/syslocale/domainpbn/internal/models"
	"github.com/syslocale/domainpbn/pkg/response"
)

// pageRequest is the payload for creating or replacing a static page.
// IsPublished defaults to true when omitted.
type pageRequest struct {
	Title       string `json:"title" validate:"required"`
	Slug        string `json:"slug" validate:"required"`
	Content     string `json:"content" validate:"required"`
	IsPublished *bool  `json:"is_published"`
}

func (req *pageRequest) toModel() *models.Page {
	published := true
	if req.IsPublished != nil {
		published = *req.IsPublished
	}

	return &models.Page{
		Title:       req.Title,
		Slug:        req.Slug,
		Content:     req.Content,
		IsPublished: published,
	}
}

// handleGetPage handles GET requests for a single published page by slug.
func handleGetPage(svc PageService) http.HandlerFunc {
	const op = "api.http.handleGetPage"
	const successMsg = "The page was retrieved successfully."

	return func(w http.ResponseWriter, r *http.Request) {
		page, err := svc.GetBySlug(r.Context(), chi.URLParam(r, "slug"))
		if err != nil {
			renderServiceError(w, r, op, err)
			return
		}

		render.Status(r, http.StatusOK)
		render.JSON(w, r, response.SuccessResponse(successMsg, page))
	}
}

func handleAdminListPages(svc PageService) http.HandlerFunc {
	const op = "api.http.handleAdminListPages"
	const successMsg = "The pages were retrieved successfully."

	return func(w http.ResponseWriter, r *http.Request) {
		pages, err := svc.AdminList(r.Context())
		if err != nil {
			renderServiceError(w, r, op, err)
			return
		}

		render.Status(r, http.StatusOK)
		render.JSON(w, r, response.SuccessResponse(successMsg, pages))
	}
}

func handleCreatePage(svc PageService, validate *validator.Validate) http.HandlerFunc {
	const op = "api.http.handleCreatePage"
	const successMsg = "The page was created successfully."

	return func(w http.ResponseWriter, r *http.Request) {
		var req pageRequest
		if !bindRequest(w, r, validate, &req) {
			return
		}

		page, err := svc.Create(r.Context(), req.toModel())
		if err != nil {
			renderServiceError(w, r, op, err)
			return
		}

		render.Status(r, http.StatusCreated)
		render.JSON(w, r, response.SuccessResponse(successMsg, page))
	}
}

func handleUpdatePage(svc PageService, validate *validator.Validate) http.HandlerFunc {
	const op = "api.http.handleUpdatePage"
	const successMsg = "The page was updated successfully."

	return func(w http.ResponseWriter, r *http.Request) {
		var req pageRequest
		if !bindRequest(w, r, validate, &req) {
			return
		}

		page, err := svc.Update(r.Context(), chi.URLParam(r, "id"), req.toModel())
		if err != nil {
			renderServiceError(w, r, op, err)
			return
		}

		render.Status(r, http.StatusOK)
		render.JSON(w, r, response.SuccessResponse(successMsg, page))
	}
}

func handleDeletePage(svc PageService) http.HandlerFunc {
	const op = "api.http.handleDeletePage"
	const successMsg = "The page was deleted successfully."

	return func(w http.ResponseWriter, r *http.Request) {
		if err := svc.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
			renderServiceError(w, r, op, err)
			return
		}

		render.Status(r, http.StatusOK)
		render.JSON(w, r, response.SuccessResponse(successMsg))
	}
}
