package http

import (
	"net/http"

	"github.com/go-chi/render"
	"github.com/go-playground/validator/v10"
	"github.com/syslocale/domainpbn/internal/models"
	"github.com/syslocale/domainpbn/pkg/response"
)

// settingsRequest is the payload for replacing the site settings.
type settingsRequest struct {
	SiteName         string            `json:"site_name" validate:"required"`
	Logo             string            `json:"logo" validate:"omitempty,url"`
	Tagline          string            `json:"tagline" validate:"required"`
	WhatsappNumber   string            `json:"whatsapp_number" validate:"required"`
	TelegramUsername string            `json:"telegram_username"`
	FooterText       string            `json:"footer_text" validate:"required"`
	SocialLinks      map[string]string `json:"social_links"`
}

func (req *settingsRequest) toModel() *models.Settings {
	return &models.Settings{
		SiteName:         req.SiteName,
		Logo:             req.Logo,
		Tagline:          req.Tagline,
		WhatsappNumber:   req.WhatsappNumber,
		TelegramUsername: req.TelegramUsername,
		FooterText:       req.FooterText,
		SocialLinks:      req.SocialLinks,
	}
}

// handleGetSettings handles GET requests for the site settings, serving
// built-in defaults until something is saved.
func handleGetSettings(svc SettingsService) http.HandlerFunc {
	const op = "api.http.handleGetSettings"
	const successMsg = "The settings were retrieved successfully."

	return func(w http.ResponseWriter, r *http.Request) {
		settings, err := svc.Get(r.Context())
		if err != nil {
			renderServiceError(w, r, op, err)
			return
		}

		render.Status(r, http.StatusOK)
		render.JSON(w, r, response.SuccessResponse(successMsg, settings))
	}
}

// handleUpdateSettings handles PUT requests to replace the site settings.
func handleUpdateSettings(svc SettingsService, validate *validator.Validate) http.HandlerFunc {
	const op = "api.http.handleUpdateSettings"
	const successMsg = "The settings were updated successfully."

	return func(w http.ResponseWriter, r *http.Request) {
		var req settingsRequest
		if !bindRequest(w, r, validate, &req) {
			return
		}

		settings, err := svc.Update(r.Context(), req.toModel())
		if err != nil {
			renderServiceError(w, r, op, err)
			return
		}

		render.Status(r, http.StatusOK)
		render.JSON(w, r, response.SuccessResponse(successMsg, settings))
	}
}
