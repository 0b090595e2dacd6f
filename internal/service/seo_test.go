package service

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/syslocale/domainpbn/internal/models"
)

func TestSEOService_Sitemap(t *testing.T) {
	t.Run("repository error", func(t *testing.T) {
		repo := new(MockRepository[models.BlogPost])
		svc := NewSEOService(repo, "https://domainpbn.example")

		repo.On("Find", mock.Anything, mock.Anything).
			Times(1).
			Return(nil, errUnknown)

		sitemap, err := svc.Sitemap(context.TODO())

		assert.Error(t, err)
		assert.ErrorIs(t, err, errUnknown)
		assert.Empty(t, sitemap)
		repo.AssertExpectations(t)
	})

	t.Run("static routes and published posts", func(t *testing.T) {
		repo := new(MockRepository[models.BlogPost])
		svc := NewSEOService(repo, "https://domainpbn.example/")

		repo.On("Find", mock.Anything, mock.Anything).
			Times(1).
			Return([]*models.BlogPost{
				{Slug: "first-post", IsPublished: true},
				{Slug: "second-post", IsPublished: true},
			}, nil)

		sitemap, err := svc.Sitemap(context.TODO())

		assert.NoError(t, err)
		assert.True(t, strings.HasPrefix(sitemap, `<?xml version="1.0" encoding="UTF-8"?>`))
		assert.Contains(t, sitemap, "<loc>https://domainpbn.example/</loc>")
		assert.Contains(t, sitemap, "<loc>https://domainpbn.example/paket</loc>")
		assert.Contains(t, sitemap, "<loc>https://domainpbn.example/blog/first-post</loc>")
		assert.Contains(t, sitemap, "<loc>https://domainpbn.example/blog/second-post</loc>")
		assert.True(t, strings.HasSuffix(sitemap, "</urlset>"))
		repo.AssertExpectations(t)
	})
}

func TestSEOService_Robots(t *testing.T) {
	svc := NewSEOService(nil, "https://domainpbn.example")

	want := "User-agent: *\nAllow: /\n\nSitemap: https://domainpbn.example/api/sitemap\n"

	assert.Equal(t, want, svc.Robots())
}
