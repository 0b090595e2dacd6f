package models

import "time"

// SettingsID is the id of the single settings document.
const SettingsID = "global_settings"

// Settings holds the site-wide configuration edited through the admin panel.
// Exactly one document exists in the store; reads fall back to
// DefaultSettings when nothing has been saved yet.
type Settings struct {
	ID               string            `json:"id"`
	SiteName         string            `json:"site_name"`
	Logo             string            `json:"logo,omitempty"`
	Tagline          string            `json:"tagline"`
	WhatsappNumber   string            `json:"whatsapp_number"`
	TelegramUsername string            `json:"telegram_username,omitempty"`
	FooterText       string            `json:"footer_text"`
	SocialLinks      map[string]string `json:"social_links,omitempty"`
	UpdatedAt        time.Time         `json:"updated_at"`
}

// DefaultSettings returns the settings served before anything is saved.
func DefaultSettings() *Settings {
	return &Settings{
		ID:               SettingsID,
		SiteName:         "DomainPBN",
		Tagline:          "Premium PBN Backlinks - Harga Murah, Kualitas Tinggi",
		WhatsappNumber:   "6281234567890",
		TelegramUsername: "domainpbn",
		FooterText:       "DomainPBN © 2024. Premium Backlinks untuk SEO Anda.",
	}
}
