package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/syslocale/domainpbn/internal/database"
	"github.com/syslocale/domainpbn/internal/models"
)

func TestPackageService_PublicList(t *testing.T) {
	t.Run("active packages in display order", func(t *testing.T) {
		repo := new(MockRepository[models.Package])
		svc := NewPackageService(repo)

		want := database.Query{Sort: sortOrderAsc}.
			Where("is_active", database.OpEq, true)

		repo.On("Find", mock.Anything, want).
			Times(1).
			Return([]*models.Package{{ID: "pkg1", Name: "Starter"}}, nil)

		packages, err := svc.PublicList(context.TODO())

		assert.NoError(t, err)
		assert.Len(t, packages, 1)
		repo.AssertExpectations(t)
	})

	t.Run("repository error", func(t *testing.T) {
		repo := new(MockRepository[models.Package])
		svc := NewPackageService(repo)

		repo.On("Find", mock.Anything, mock.Anything).
			Times(1).
			Return(nil, errUnknown)

		packages, err := svc.PublicList(context.TODO())

		assert.Error(t, err)
		assert.ErrorIs(t, err, errUnknown)
		assert.Nil(t, packages)
		repo.AssertExpectations(t)
	})
}

func TestFAQService_PublicList(t *testing.T) {
	t.Run("active faqs in display order", func(t *testing.T) {
		repo := new(MockRepository[models.FAQ])
		svc := NewFAQService(repo)

		want := database.Query{Sort: sortOrderAsc}.
			Where("is_active", database.OpEq, true)

		repo.On("Find", mock.Anything, want).
			Times(1).
			Return([]*models.FAQ{{ID: "faq1"}, {ID: "faq2"}}, nil)

		faqs, err := svc.PublicList(context.TODO())

		assert.NoError(t, err)
		assert.Len(t, faqs, 2)
		repo.AssertExpectations(t)
	})
}

func TestFAQService_Update(t *testing.T) {
	t.Run("faq not found", func(t *testing.T) {
		repo := new(MockRepository[models.FAQ])
		svc := NewFAQService(repo)

		repo.On("FindByID", mock.Anything, "faq1").
			Times(1).
			Return(nil, database.ErrNotFound)

		faq, err := svc.Update(context.TODO(), "faq1", &models.FAQ{})

		assert.Error(t, err)
		assert.ErrorIs(t, err, database.ErrNotFound)
		assert.Nil(t, faq)
		repo.AssertExpectations(t)
	})
}
