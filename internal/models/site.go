package models

import "time"

// Site lifecycle statuses. Any string is accepted on write; only
// StatusActive rows are visible on the public listing.
const (
	SiteStatusActive = "active"
	SiteStatusHidden = "hidden"
)

// PBNSite represents a single link-source site in the PBN inventory.
// The real domain name and the internal notes are sensitive and must never
// leave the admin surface; see PBNSitePublic.
type PBNSite struct {
	ID           string    `json:"id"`
	Code         string    `json:"code"`
	DomainReal   string    `json:"domain_real"`
	Niche        string    `json:"niche"`
	DR           int       `json:"dr"`
	DA           int       `json:"da"`
	Traffic      int       `json:"traffic"`
	SpamScore    float64   `json:"spam_score"`
	Age          int       `json:"age"`
	PricePerPost int       `json:"price_per_post"`
	Status       string    `json:"status"`
	Notes        string    `json:"notes,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
}

// PBNSitePublic is the redacted projection of a PBNSite served on the
// public listing. It deliberately has no field for the real domain or notes.
type PBNSitePublic struct {
	ID           string  `json:"id"`
	Code         string  `json:"code"`
	Niche        string  `json:"niche"`
	DR           int     `json:"dr"`
	DA           int     `json:"da"`
	Traffic      int     `json:"traffic"`
	SpamScore    float64 `json:"spam_score"`
	Age          int     `json:"age"`
	PricePerPost int     `json:"price_per_post"`
}

// Public returns the redacted projection of the site.
func (s *PBNSite) Public() *PBNSitePublic {
	return &PBNSitePublic{
		ID:           s.ID,
		Code:         s.Code,
		Niche:        s.Niche,
		DR:           s.DR,
		DA:           s.DA,
		Traffic:      s.Traffic,
		SpamScore:    s.SpamScore,
		Age:          s.Age,
		PricePerPost: s.PricePerPost,
	}
}
