package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"
	"github.com/go-playground/validator/v10"
	"github.com/syslocale/domainpbn/internal/models"
	"github.com/syslocale/domainpbn/pkg/response"
)

// pageContentRequest is the payload for creating a content fragment.
type pageContentRequest struct {
	PageKey string         `json:"page_key" validate:"required"`
	Section string         `json:"section" validate:"required"`
	Content map[string]any `json:"content" validate:"required"`
}

func (req *pageContentRequest) toModel() *models.PageContent {
	return &models.PageContent{
		PageKey: req.PageKey,
		Section: req.Section,
		Content: req.Content,
	}
}

// pageContentUpdateRequest is the payload for replacing a fragment's
// content; the page key and section are immutable.
type pageContentUpdateRequest struct {
	Content map[string]any `json:"content" validate:"required"`
}

func handleListPageContents(svc PageContentService) http.HandlerFunc {
	const op = "api.http.handleListPageContents"
	const successMsg = "The page contents were retrieved successfully."

	return func(w http.ResponseWriter, r *http.Request) {
		contents, err := svc.List(r.Context())
		if err != nil {
			renderServiceError(w, r, op, err)
			return
		}

		render.Status(r, http.StatusOK)
		render.JSON(w, r, response.SuccessResponse(successMsg, contents))
	}
}

func handleGetPageContent(svc PageContentService) http.HandlerFunc {
	const op = "api.http.handleGetPageContent"
	const successMsg = "The page content was retrieved successfully."

	return func(w http.ResponseWriter, r *http.Request) {
		content, err := svc.GetByKey(r.Context(), chi.URLParam(r, "pageKey"))
		if err != nil {
			renderServiceError(w, r, op, err)
			return
		}

		render.Status(r, http.StatusOK)
		render.JSON(w, r, response.SuccessResponse(successMsg, content))
	}
}

func handleCreatePageContent(svc PageContentService, validate *validator.Validate) http.HandlerFunc {
	const op = "api.http.handleCreatePageContent"
	const successMsg = "The page content was created successfully."

	return func(w http.ResponseWriter, r *http.Request) {
		var req pageContentRequest
		if !bindRequest(w, r, validate, &req) {
			return
		}

		content, err := svc.Create(r.Context(), req.toModel())
		if err != nil {
			renderServiceError(w, r, op, err)
			return
		}

		render.Status(r, http.StatusCreated)
		render.JSON(w, r, response.SuccessResponse(successMsg, content))
	}
}

func handleUpdatePageContent(svc PageContentService, validate *validator.Validate) http.HandlerFunc {
	const op = "api.http.handleUpdatePageContent"
	const successMsg = "The page content was updated successfully."

	return func(w http.ResponseWriter, r *http.Request) {
		var req pageContentUpdateRequest
		if !bindRequest(w, r, validate, &req) {
			return
		}

		content, err := svc.Update(r.Context(), chi.URLParam(r, "id"), req.Content)
		if err != nil {
			renderServiceError(w, r, op, err)
			return
		}

		render.Status(r, http.StatusOK)
		render.JSON(w, r, response.SuccessResponse(successMsg, content))
	}
}

func handleDeletePageContent(svc PageContentService) http.HandlerFunc {
	const op = "api.http.handleDeletePageContent"
	const successMsg = "The page content was deleted successfully."

	return func(w http.ResponseWriter, r *http.Request) {
		if err := svc.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
			renderServiceError(w, r, op, err)
			return
		}

		render.Status(r, http.StatusOK)
		render.JSON(w, r, response.SuccessResponse(successMsg))
	}
}
