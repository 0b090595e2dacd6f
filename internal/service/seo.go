package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/syslocale/domainpbn/internal/database"
	"github.com/syslocale/domainpbn/internal/models"
)

// staticRoutes are the fixed frontend routes listed in the sitemap.
var staticRoutes = []string{"/", "/paket", "/pbn", "/blog", "/faq", "/about", "/tos", "/privacy"}

// SEOService renders the sitemap and robots documents.
type SEOService struct {
	posts   Repository[models.BlogPost]
	baseURL string
}

// NewSEOService creates an SEOService. baseURL is the public origin of the
// site, without a trailing slash.
func NewSEOService(posts Repository[models.BlogPost], baseURL string) *SEOService {
	return &SEOService{
		posts:   posts,
		baseURL: strings.TrimSuffix(baseURL, "/"),
	}
}

// Sitemap renders the XML sitemap: the static routes plus one entry per
// published blog post.
func (s *SEOService) Sitemap(ctx context.Context) (string, error) {
	const op = "service.SEOService.Sitemap"

	q := database.Query{Sort: publishedAtDesc}.
		Where("is_published", database.OpEq, true)

	posts, err := s.posts.Find(ctx, q)
	if err != nil {
		return "", fmt.Errorf("%s: failed to list posts: %w", op, err)
	}

	var sb strings.Builder
	sb.WriteString(`<?xml version="1.0" encoding="UTF-8"?>` + "\n")
	sb.WriteString(`<urlset xmlns="http://www.sitemaps.org/schemas/sitemap/0.9">` + "\n")

	for _, route := range staticRoutes {
		fmt.Fprintf(&sb, "<url><loc>%s%s</loc><changefreq>weekly</changefreq><priority>0.8</priority></url>\n",
			s.baseURL, route)
	}

	for _, post := range posts {
		fmt.Fprintf(&sb, "<url><loc>%s/blog/%s</loc><changefreq>monthly</changefreq><priority>0.6</priority></url>\n",
			s.baseURL, post.Slug)
	}

	sb.WriteString("</urlset>")

	return sb.String(), nil
}

// Robots renders the robots.txt body pointing crawlers at the sitemap.
func (s *SEOService) Robots() string {
	return fmt.Sprintf("User-agent: *\nAllow: /\n\nSitemap: %s/api/sitemap\n", s.baseURL)
}
