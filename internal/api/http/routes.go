// Package http provides the HTTP delivery layer of the catalog API: the
// chi router, per-entity handlers, request validation and the mapping of
// service errors onto the response envelope.
package http

import (
	"context"
	"net/http"
	"reflect"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v2"
	"github.com/go-playground/validator/v10"
	httpSwagger "github.com/swaggo/http-swagger"
	"github.com/syslocale/domainpbn/internal/models"
	"github.com/syslocale/domainpbn/internal/service"
)

// SiteService is the PBN inventory surface the handlers consume.
type SiteService interface {
	// PublicList returns the redacted public listing of active sites.
	PublicList(ctx context.Context, p service.ListingParams) ([]*models.PBNSitePublic, error)

	// AdminList returns every site of every status, unredacted.
	AdminList(ctx context.Context) ([]*models.PBNSite, error)

	// Create stores a new site and returns the stored record.
	Create(ctx context.Context, site *models.PBNSite) (*models.PBNSite, error)

	// Update replaces the site identified by id and returns the stored state.
	Update(ctx context.Context, id string, site *models.PBNSite) (*models.PBNSite, error)

	// Delete removes the site identified by id.
	Delete(ctx context.Context, id string) error
}

// DomainService is the aged-domain marketplace surface the handlers consume.
type DomainService interface {
	PublicList(ctx context.Context, status string, p service.ListingParams) ([]*models.DomainListing, error)
	AdminList(ctx context.Context) ([]*models.DomainListing, error)
	Create(ctx context.Context, domain *models.DomainListing) (*models.DomainListing, error)
	Import(ctx context.Context, domains []*models.DomainListing) (int64, error)
	Update(ctx context.Context, id string, domain *models.DomainListing) (*models.DomainListing, error)
	Delete(ctx context.Context, id string) error
}

// PackageService is the pricing-package surface the handlers consume.
type PackageService interface {
	PublicList(ctx context.Context) ([]*models.Package, error)
	AdminList(ctx context.Context) ([]*models.Package, error)
	Create(ctx context.Context, pkg *models.Package) (*models.Package, error)
	Update(ctx context.Context, id string, pkg *models.Package) (*models.Package, error)
	Delete(ctx context.Context, id string) error
}

// BlogService is the blog surface the handlers consume.
type BlogService interface {
	PublicList(ctx context.Context, p service.BlogParams) ([]*models.BlogPost, error)
	GetBySlug(ctx context.Context, slug string) (*models.BlogPost, error)
	AdminList(ctx context.Context) ([]*models.BlogPost, error)
	Create(ctx context.Context, post *models.BlogPost) (*models.BlogPost, error)
	Update(ctx context.Context, id string, post *models.BlogPost) (*models.BlogPost, error)
	Delete(ctx context.Context, id string) error
}

// FAQService is the FAQ surface the handlers consume.
type FAQService interface {
	PublicList(ctx context.Context) ([]*models.FAQ, error)
	AdminList(ctx context.Context) ([]*models.FAQ, error)
	Create(ctx context.Context, faq *models.FAQ) (*models.FAQ, error)
	Update(ctx context.Context, id string, faq *models.FAQ) (*models.FAQ, error)
	Delete(ctx context.Context, id string) error
}

// PageService is the static-page surface the handlers consume.
type PageService interface {
	GetBySlug(ctx context.Context, slug string) (*models.Page, error)
	AdminList(ctx context.Context) ([]*models.Page, error)
	Create(ctx context.Context, page *models.Page) (*models.Page, error)
	Update(ctx context.Context, id string, page *models.Page) (*models.Page, error)
	Delete(ctx context.Context, id string) error
}

// SettingsService is the site-settings surface the handlers consume.
type SettingsService interface {
	Get(ctx context.Context) (*models.Settings, error)
	Update(ctx context.Context, settings *models.Settings) (*models.Settings, error)
}

// PageContentService is the content-fragment surface the handlers consume.
type PageContentService interface {
	List(ctx context.Context) ([]*models.PageContent, error)
	GetByKey(ctx context.Context, pageKey string) (*models.PageContent, error)
	Create(ctx context.Context, content *models.PageContent) (*models.PageContent, error)
	Update(ctx context.Context, id string, payload map[string]any) (*models.PageContent, error)
	Delete(ctx context.Context, id string) error
}

// SEOService renders the sitemap and robots documents.
type SEOService interface {
	Sitemap(ctx context.Context) (string, error)
	Robots() string
}

// Services bundles every service the router needs.
type Services struct {
	Sites       SiteService
	Domains     DomainService
	Packages    PackageService
	Blog        BlogService
	FAQs        FAQService
	Pages       PageService
	Settings    SettingsService
	PageContent PageContentService
	SEO         SEOService
}

// getValidate initializes the request payload validator, reporting field
// names by their JSON tags.
func getValidate() *validator.Validate {
	validate := validator.New()

	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	return validate
}

// NewRouter initializes and returns a new HTTP router with all routes and
// middleware configured. allowedOrigins feeds the CORS middleware.
func NewRouter(logger *httplog.Logger, svc Services, allowedOrigins []string) http.Handler {
	r := chi.NewRouter()

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   allowedOrigins,
		AllowedMethods:   []string{"POST", "GET", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Content-Type", "Accept"},
		AllowCredentials: false,
		MaxAge:           84600,
	}))
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(httplog.RequestLogger(logger))
	r.Use(middleware.Recoverer)

	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL("/docs/swagger.yml"),
	))

	r.Get("/docs/swagger.yml", func(w http.ResponseWriter, r *http.Request) {
		http.ServeFile(w, r, "./docs/swagger.yml")
	})

	r.Route("/api", func(r chi.Router) {
		validate := getValidate()

		r.Get("/", handleRoot)

		r.Get("/pbn", handleListSites(svc.Sites))
		r.Get("/packages", handleListPackages(svc.Packages))
		r.Get("/blog", handleListPosts(svc.Blog))
		r.Get("/blog/{slug}", handleGetPost(svc.Blog))
		r.Get("/faq", handleListFAQs(svc.FAQs))
		r.Get("/pages/{slug}", handleGetPage(svc.Pages))
		r.Get("/domains", handleListDomains(svc.Domains))
		r.Get("/settings", handleGetSettings(svc.Settings))
		r.Get("/page-content", handleListPageContents(svc.PageContent))
		r.Get("/page-content/{pageKey}", handleGetPageContent(svc.PageContent))
		r.Get("/sitemap", handleSitemap(svc.SEO))
		r.Get("/robots", handleRobots(svc.SEO))

		r.Route("/admin", func(r chi.Router) {
			r.Route("/pbn", func(r chi.Router) {
				r.Get("/", handleAdminListSites(svc.Sites))
				r.Post("/", handleCreateSite(svc.Sites, validate))
				r.Put("/{id}", handleUpdateSite(svc.Sites, validate))
				r.Delete("/{id}", handleDeleteSite(svc.Sites))
			})

			r.Route("/packages", func(r chi.Router) {
				r.Get("/", handleAdminListPackages(svc.Packages))
				r.Post("/", handleCreatePackage(svc.Packages, validate))
				r.Put("/{id}", handleUpdatePackage(svc.Packages, validate))
				r.Delete("/{id}", handleDeletePackage(svc.Packages))
			})

			r.Route("/blog", func(r chi.Router) {
				r.Get("/", handleAdminListPosts(svc.Blog))
				r.Post("/", handleCreatePost(svc.Blog, validate))
				r.Put("/{id}", handleUpdatePost(svc.Blog, validate))
				r.Delete("/{id}", handleDeletePost(svc.Blog))
			})

			r.Route("/faq", func(r chi.Router) {
				r.Get("/", handleAdminListFAQs(svc.FAQs))
				r.Post("/", handleCreateFAQ(svc.FAQs, validate))
				r.Put("/{id}", handleUpdateFAQ(svc.FAQs, validate))
				r.Delete("/{id}", handleDeleteFAQ(svc.FAQs))
			})

			r.Route("/pages", func(r chi.Router) {
				r.Get("/", handleAdminListPages(svc.Pages))
				r.Post("/", handleCreatePage(svc.Pages, validate))
				r.Put("/{id}", handleUpdatePage(svc.Pages, validate))
				r.Delete("/{id}", handleDeletePage(svc.Pages))
			})

			r.Route("/domains", func(r chi.Router) {
				r.Get("/", handleAdminListDomains(svc.Domains))
				r.Post("/", handleCreateDomain(svc.Domains, validate))
				r.Post("/import", handleImportDomains(svc.Domains, validate))
				r.Put("/{id}", handleUpdateDomain(svc.Domains, validate))
				r.Delete("/{id}", handleDeleteDomain(svc.Domains))
			})

			r.Put("/settings", handleUpdateSettings(svc.Settings, validate))

			r.Route("/page-content", func(r chi.Router) {
				r.Get("/", handleListPageContents(svc.PageContent))
				r.Post("/", handleCreatePageContent(svc.PageContent, validate))
				r.Put("/{id}", handleUpdatePageContent(svc.PageContent, validate))
				r.Delete("/{id}", handleDeletePageContent(svc.PageContent))
			})
		})
	})

	return r
}
