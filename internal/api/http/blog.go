package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"
	"github.com/go-playground/validator/v10"
	"github.com/syslocale/domainpbn/internal/models"
	"github.com/syslocale/domainpbn/internal/service"
	"github.com/syslocale/domainpbn/pkg/response"
)

// postRequest is the payload for creating or replacing a blog post.
// IsPublished defaults to true when omitted.
type postRequest struct {
	Title           string `json:"title" validate:"required"`
	Slug            string `json:"slug" validate:"required"`
	Excerpt         string `json:"excerpt" validate:"required"`
	Content         string `json:"content" validate:"required"`
	Thumbnail       string `json:"thumbnail" validate:"omitempty,url"`
	MetaTitle       string `json:"meta_title"`
	MetaDescription string `json:"meta_description"`
	IsPublished     *bool  `json:"is_published"`
}

func (req *postRequest) toModel() *models.BlogPost {
	published := true
	if req.IsPublished != nil {
		published = *req.IsPublished
	}

	return &models.BlogPost{
		Title:           req.Title,
		Slug:            req.Slug,
		Excerpt:         req.Excerpt,
		Content:         req.Content,
		Thumbnail:       req.Thumbnail,
		MetaTitle:       req.MetaTitle,
		MetaDescription: req.MetaDescription,
		IsPublished:     published,
	}
}

// handleListPosts handles GET requests for the public blog listing, with
// optional full-text-ish search over title and excerpt.
func handleListPosts(svc BlogService) http.HandlerFunc {
	const op = "api.http.handleListPosts"
	const successMsg = "The posts were retrieved successfully."

	return func(w http.ResponseWriter, r *http.Request) {
		page, limit, ok := parsePagination(w, r, service.BlogMaxLimit)
		if !ok {
			return
		}

		posts, err := svc.PublicList(r.Context(), service.BlogParams{
			Search: r.URL.Query().Get("search"),
			Page:   page,
			Limit:  limit,
		})
		if err != nil {
			renderServiceError(w, r, op, err)
			return
		}

		render.Status(r, http.StatusOK)
		render.JSON(w, r, response.SuccessResponse(successMsg, posts))
	}
}

// handleGetPost handles GET requests for a single published post by slug.
func handleGetPost(svc BlogService) http.HandlerFunc {
	const op = "api.http.handleGetPost"
	const successMsg = "The post was retrieved successfully."

	return func(w http.ResponseWriter, r *http.Request) {
		post, err := svc.GetBySlug(r.Context(), chi.URLParam(r, "slug"))
		if err != nil {
			renderServiceError(w, r, op, err)
			return
		}

		render.Status(r, http.StatusOK)
		render.JSON(w, r, response.SuccessResponse(successMsg, post))
	}
}

func handleAdminListPosts(svc BlogService) http.HandlerFunc {
	const op = "api.http.handleAdminListPosts"
	const successMsg = "The posts were retrieved successfully."

	return func(w http.ResponseWriter, r *http.Request) {
		posts, err := svc.AdminList(r.Context())
		if err != nil {
			renderServiceError(w, r, op, err)
			return
		}

		render.Status(r, http.StatusOK)
		render.JSON(w, r, response.SuccessResponse(successMsg, posts))
	}
}

func handleCreatePost(svc BlogService, validate *validator.Validate) http.HandlerFunc {
	const op = "api.http.handleCreatePost"
	const successMsg = "The post was created successfully."

	return func(w http.ResponseWriter, r *http.Request) {
		var req postRequest
		if !bindRequest(w, r, validate, &req) {
			return
		}

		post, err := svc.Create(r.Context(), req.toModel())
		if err != nil {
			renderServiceError(w, r, op, err)
			return
		}

		render.Status(r, http.StatusCreated)
		render.JSON(w, r, response.SuccessResponse(successMsg, post))
	}
}

func handleUpdatePost(svc BlogService, validate *validator.Validate) http.HandlerFunc {
	const op = "api.http.handleUpdatePost"
	const successMsg = "The post was updated successfully."

	return func(w http.ResponseWriter, r *http.Request) {
		var req postRequest
		if !bindRequest(w, r, validate, &req) {
			return
		}

		post, err := svc.Update(r.Context(), chi.URLParam(r, "id"), req.toModel())
		if err != nil {
			renderServiceError(w, r, op, err)
			return
		}

		render.Status(r, http.StatusOK)
		render.JSON(w, r, response.SuccessResponse(successMsg, post))
	}
}

func handleDeletePost(svc BlogService) http.HandlerFunc {
	const op = "api.http.handleDeletePost"
	const successMsg = "The post was deleted successfully."

	return func(w http.ResponseWriter, r *http.Request) {
		if err := svc.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
			renderServiceError(w, r, op, err)
			return
		}

		render.Status(r, http.StatusOK)
		render.JSON(w, r, response.SuccessResponse(successMsg))
	}
}
