package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/syslocale/domainpbn/internal/database"
	"github.com/syslocale/domainpbn/internal/models"
)

func TestPageContentService_GetByKey(t *testing.T) {
	t.Run("fragment not found", func(t *testing.T) {
		repo := new(MockRepository[models.PageContent])
		svc := NewPageContentService(repo)

		repo.On("FindOne", mock.Anything, mock.Anything).
			Times(1).
			Return(nil, database.ErrNotFound)

		content, err := svc.GetByKey(context.TODO(), "homepage")

		assert.Error(t, err)
		assert.ErrorIs(t, err, database.ErrNotFound)
		assert.Nil(t, content)
		repo.AssertExpectations(t)
	})

	t.Run("success", func(t *testing.T) {
		repo := new(MockRepository[models.PageContent])
		svc := NewPageContentService(repo)

		want := database.Query{}.Where("page_key", database.OpEq, "homepage")

		repo.On("FindOne", mock.Anything, want).
			Times(1).
			Return(&models.PageContent{ID: "frag1", PageKey: "homepage"}, nil)

		content, err := svc.GetByKey(context.TODO(), "homepage")

		assert.NoError(t, err)
		assert.NotNil(t, content)
		assert.Equal(t, "homepage", content.PageKey)
		repo.AssertExpectations(t)
	})
}

func TestPageContentService_Update(t *testing.T) {
	t.Run("replaces only the payload", func(t *testing.T) {
		repo := new(MockRepository[models.PageContent])
		svc := NewPageContentService(repo)

		payload := map[string]any{"headline": "New headline"}

		repo.On("FindByID", mock.Anything, "frag1").
			Times(1).
			Return(&models.PageContent{
				ID:      "frag1",
				PageKey: "homepage",
				Section: "hero",
				Content: map[string]any{"headline": "Old headline"},
			}, nil)

		repo.On("Replace", mock.Anything, "frag1", mock.MatchedBy(func(content *models.PageContent) bool {
			return content.PageKey == "homepage" &&
				content.Section == "hero" &&
				content.Content["headline"] == "New headline" &&
				!content.UpdatedAt.IsZero()
		})).
			Times(1).
			Return(&models.PageContent{ID: "frag1", PageKey: "homepage", Section: "hero", Content: payload}, nil)

		content, err := svc.Update(context.TODO(), "frag1", payload)

		assert.NoError(t, err)
		assert.NotNil(t, content)
		assert.Equal(t, payload, content.Content)
		repo.AssertExpectations(t)
	})

	t.Run("fragment not found", func(t *testing.T) {
		repo := new(MockRepository[models.PageContent])
		svc := NewPageContentService(repo)

		repo.On("FindByID", mock.Anything, "frag1").
			Times(1).
			Return(nil, database.ErrNotFound)

		content, err := svc.Update(context.TODO(), "frag1", map[string]any{})

		assert.Error(t, err)
		assert.ErrorIs(t, err, database.ErrNotFound)
		assert.Nil(t, content)
		repo.AssertExpectations(t)
	})
}
