// Package app wires the catalog together: store connection, migrations,
// collections, services, router and the HTTP server lifecycle.
package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"

	"github.com/go-chi/httplog/v2"
	"github.com/syslocale/domainpbn/internal/config"
	"github.com/syslocale/domainpbn/internal/database/postgres"
	"github.com/syslocale/domainpbn/internal/models"
	"github.com/syslocale/domainpbn/internal/service"
	"golang.org/x/sync/errgroup"

	api "github.com/syslocale/domainpbn/internal/api/http"
	pgconnect "github.com/syslocale/domainpbn/pkg/postgres"
)

// Run starts the catalog server and blocks until ctx is canceled or the
// server fails.
func Run(ctx context.Context, cfg *config.Config) error {
	const op = "app.Run"

	db, err := pgconnect.New(
		ctx,
		cfg.Postgres.DSN(),
		pgconnect.WithConnMaxIdleTime(cfg.Postgres.ConnMaxIdleTime),
		pgconnect.WithConnMaxLifetime(cfg.Postgres.ConnMaxLifetime),
		pgconnect.WithMaxIdleConns(cfg.Postgres.MaxIdleConns),
		pgconnect.WithMaxOpenConns(cfg.Postgres.MaxOpenConns),
	)
	if err != nil {
		return fmt.Errorf("%s: failed to connect to database: %w", op, err)
	}
	defer db.Close()

	if err := pgconnect.RunMigrations("file://migrations", cfg.Postgres.DSN()); err != nil {
		return fmt.Errorf("%s: failed to run migrations: %w", op, err)
	}

	sites := postgres.NewCollection[models.PBNSite](db, "pbn_sites")
	packages := postgres.NewCollection[models.Package](db, "packages")
	posts := postgres.NewCollection[models.BlogPost](db, "blog_posts")
	faqs := postgres.NewCollection[models.FAQ](db, "faqs")
	pages := postgres.NewCollection[models.Page](db, "pages")
	domains := postgres.NewCollection[models.DomainListing](db, "domain_listings")
	settings := postgres.NewCollection[models.Settings](db, "settings")
	pageContents := postgres.NewCollection[models.PageContent](db, "page_contents")

	logger := httplog.NewLogger("domainpbn", httplog.Options{
		LogLevel: slog.LevelInfo,
		Concise:  cfg.Env != config.EnvProd,
	})

	router := api.NewRouter(logger, api.Services{
		Sites:       service.NewSiteService(sites),
		Domains:     service.NewDomainService(domains),
		Packages:    service.NewPackageService(packages),
		Blog:        service.NewBlogService(posts),
		FAQs:        service.NewFAQService(faqs),
		Pages:       service.NewPageService(pages),
		Settings:    service.NewSettingsService(settings),
		PageContent: service.NewPageContentService(pageContents),
		SEO:         service.NewSEOService(posts, cfg.Site.BaseURL),
	}, cfg.Site.CORSAllowedOrigins)

	server := &http.Server{
		Addr:           cfg.HTTPServer.Addr(),
		Handler:        router,
		ReadTimeout:    cfg.HTTPServer.ReadTimeout,
		WriteTimeout:   cfg.HTTPServer.WriteTimeout,
		IdleTimeout:    cfg.HTTPServer.IdleTimeout,
		MaxHeaderBytes: cfg.HTTPServer.MaxHeaderBytes,
		BaseContext: func(_ net.Listener) context.Context {
			return ctx
		},
	}

	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		var err error

		switch cfg.Env {
		case config.EnvProd:
			err = server.ListenAndServeTLS(cfg.HTTPServer.CertFile, cfg.HTTPServer.KeyFile)
		default:
			err = server.ListenAndServe()
		}

		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("%s: server error occurred: %w", op, err)
		}

		return nil
	})

	g.Go(func() error {
		<-ctx.Done()

		if err := server.Shutdown(context.Background()); err != nil {
			return fmt.Errorf("%s: failed to shutdown server: %w", op, err)
		}

		return nil
	})

	return g.Wait()
}
