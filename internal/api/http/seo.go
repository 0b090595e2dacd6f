package http

import (
	"fmt"
	"net/http"
)

// handleSitemap serves the XML sitemap. Plain XML, no JSON envelope, so
// crawlers can fetch it directly.
func handleSitemap(svc SEOService) http.HandlerFunc {
	const op = "api.http.handleSitemap"

	return func(w http.ResponseWriter, r *http.Request) {
		sitemap, err := svc.Sitemap(r.Context())
		if err != nil {
			renderServiceError(w, r, op, err)
			return
		}

		w.Header().Set("Content-Type", "application/xml; charset=utf-8")
		w.WriteHeader(http.StatusOK)
		fmt.Fprint(w, sitemap)
	}
}

// handleRobots serves the robots.txt body.
func handleRobots(svc SEOService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		w.WriteHeader(http.StatusOK)
		fmt.Fprint(w, svc.Robots())
	}
}
