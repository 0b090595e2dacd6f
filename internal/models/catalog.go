package models

import "time"

// Package represents a backlink pricing package shown on the pricing page.
type Package struct {
	ID            string    `json:"id"`
	Name          string    `json:"name"`
	Slug          string    `json:"slug"`
	BacklinkCount int       `json:"backlink_count"`
	Price         int       `json:"price"`
	Description   string    `json:"description"`
	IsPopular     bool      `json:"is_popular"`
	SortOrder     int       `json:"sort_order"`
	IsActive      bool      `json:"is_active"`
	CreatedAt     time.Time `json:"created_at"`
}

// FAQ represents a single question/answer entry.
type FAQ struct {
	ID        string    `json:"id"`
	Question  string    `json:"question"`
	Answer    string    `json:"answer"`
	SortOrder int       `json:"sort_order"`
	IsActive  bool      `json:"is_active"`
	CreatedAt time.Time `json:"created_at"`
}
