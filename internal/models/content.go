package models

import "time"

// BlogPost represents an article. Unpublished posts are only visible
// through the admin surface.
type BlogPost struct {
	ID              string    `json:"id"`
	Title           string    `json:"title"`
	Slug            string    `json:"slug"`
	Excerpt         string    `json:"excerpt"`
	Content         string    `json:"content"`
	Thumbnail       string    `json:"thumbnail,omitempty"`
	MetaTitle       string    `json:"meta_title,omitempty"`
	MetaDescription string    `json:"meta_description,omitempty"`
	IsPublished     bool      `json:"is_published"`
	PublishedAt     time.Time `json:"published_at"`
	CreatedAt       time.Time `json:"created_at"`
}

// Page represents a static page (about, tos, privacy, ...) addressed by slug.
type Page struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Slug        string    `json:"slug"`
	Content     string    `json:"content"`
	IsPublished bool      `json:"is_published"`
	CreatedAt   time.Time `json:"created_at"`
}

// PageContent is an editable content fragment of a frontend page,
// addressed by page key and section.
type PageContent struct {
	ID        string         `json:"id"`
	PageKey   string         `json:"page_key"`
	Section   string         `json:"section"`
	Content   map[string]any `json:"content"`
	UpdatedAt time.Time      `json:"updated_at"`
}
