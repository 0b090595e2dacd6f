package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/syslocale/domainpbn/internal/database"
	"github.com/syslocale/domainpbn/internal/models"
)

var errUnknown = errors.New("unknown error")

func TestSiteService_PublicList(t *testing.T) {
	t.Run("repository error", func(t *testing.T) {
		repo := new(MockRepository[models.PBNSite])
		svc := NewSiteService(repo)

		repo.On("Find", mock.Anything, mock.Anything).
			Times(1).
			Return(nil, errUnknown)

		sites, err := svc.PublicList(context.TODO(), ListingParams{})

		assert.Error(t, err)
		assert.ErrorIs(t, err, errUnknown)
		assert.Nil(t, sites)
		repo.AssertExpectations(t)
	})

	t.Run("only active sites are queried", func(t *testing.T) {
		repo := new(MockRepository[models.PBNSite])
		svc := NewSiteService(repo)

		repo.On("Find", mock.Anything, mock.MatchedBy(func(q database.Query) bool {
			return len(q.Conditions) > 0 && q.Conditions[0] == database.Condition{
				Field: "status", Op: database.OpEq, Value: models.SiteStatusActive,
			}
		})).
			Times(1).
			Return([]*models.PBNSite{}, nil)

		sites, err := svc.PublicList(context.TODO(), ListingParams{})

		assert.NoError(t, err)
		assert.Empty(t, sites)
		repo.AssertExpectations(t)
	})

	t.Run("results are redacted", func(t *testing.T) {
		repo := new(MockRepository[models.PBNSite])
		svc := NewSiteService(repo)

		repo.On("Find", mock.Anything, mock.Anything).
			Times(1).
			Return([]*models.PBNSite{
				{
					ID:           "site1",
					Code:         "PBN-001",
					DomainReal:   "secret-domain.com",
					Niche:        "tech",
					DR:           45,
					DA:           40,
					Traffic:      12000,
					PricePerPost: 150,
					Status:       models.SiteStatusActive,
					Notes:        "internal notes",
				},
			}, nil)

		sites, err := svc.PublicList(context.TODO(), ListingParams{})

		assert.NoError(t, err)
		assert.Len(t, sites, 1)
		assert.Equal(t, &models.PBNSitePublic{
			ID:           "site1",
			Code:         "PBN-001",
			Niche:        "tech",
			DR:           45,
			DA:           40,
			Traffic:      12000,
			PricePerPost: 150,
		}, sites[0])
		repo.AssertExpectations(t)
	})
}

func TestSiteService_AdminList(t *testing.T) {
	t.Run("no status filter", func(t *testing.T) {
		repo := new(MockRepository[models.PBNSite])
		svc := NewSiteService(repo)

		repo.On("Find", mock.Anything, database.Query{}).
			Times(1).
			Return([]*models.PBNSite{
				{ID: "site1", Status: models.SiteStatusActive},
				{ID: "site2", Status: models.SiteStatusHidden},
			}, nil)

		sites, err := svc.AdminList(context.TODO())

		assert.NoError(t, err)
		assert.Len(t, sites, 2)
		repo.AssertExpectations(t)
	})
}

func TestSiteService_Create(t *testing.T) {
	t.Run("repository error", func(t *testing.T) {
		repo := new(MockRepository[models.PBNSite])
		svc := NewSiteService(repo)

		repo.On("Insert", mock.Anything, mock.Anything, mock.Anything).
			Times(1).
			Return(errUnknown)

		site, err := svc.Create(context.TODO(), &models.PBNSite{Code: "PBN-001"})

		assert.Error(t, err)
		assert.ErrorIs(t, err, errUnknown)
		assert.Nil(t, site)
		repo.AssertExpectations(t)
	})

	t.Run("success stamps id and timestamp", func(t *testing.T) {
		repo := new(MockRepository[models.PBNSite])
		svc := NewSiteService(repo)

		repo.On("Insert", mock.Anything, mock.Anything, mock.Anything).
			Times(1).
			Return(nil)

		site, err := svc.Create(context.TODO(), &models.PBNSite{Code: "PBN-001"})

		assert.NoError(t, err)
		assert.NotNil(t, site)
		assert.NotEmpty(t, site.ID)
		assert.False(t, site.CreatedAt.IsZero())
		repo.AssertExpectations(t)
	})
}

func TestSiteService_Update(t *testing.T) {
	t.Run("site not found", func(t *testing.T) {
		repo := new(MockRepository[models.PBNSite])
		svc := NewSiteService(repo)

		repo.On("FindByID", mock.Anything, "site1").
			Times(1).
			Return(nil, database.ErrNotFound)

		site, err := svc.Update(context.TODO(), "site1", &models.PBNSite{})

		assert.Error(t, err)
		assert.ErrorIs(t, err, database.ErrNotFound)
		assert.Nil(t, site)
		repo.AssertExpectations(t)
	})

	t.Run("success preserves id and creation timestamp", func(t *testing.T) {
		repo := new(MockRepository[models.PBNSite])
		svc := NewSiteService(repo)

		createdAt := time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC)

		repo.On("FindByID", mock.Anything, "site1").
			Times(1).
			Return(&models.PBNSite{ID: "site1", Code: "PBN-001", CreatedAt: createdAt}, nil)

		repo.On("Replace", mock.Anything, "site1", mock.MatchedBy(func(site *models.PBNSite) bool {
			return site.ID == "site1" && site.CreatedAt.Equal(createdAt)
		})).
			Times(1).
			Return(&models.PBNSite{ID: "site1", Code: "PBN-002", CreatedAt: createdAt}, nil)

		site, err := svc.Update(context.TODO(), "site1", &models.PBNSite{Code: "PBN-002"})

		assert.NoError(t, err)
		assert.NotNil(t, site)
		assert.Equal(t, "PBN-002", site.Code)
		assert.Equal(t, createdAt, site.CreatedAt)
		repo.AssertExpectations(t)
	})
}

func TestSiteService_Delete(t *testing.T) {
	t.Run("site not found", func(t *testing.T) {
		repo := new(MockRepository[models.PBNSite])
		svc := NewSiteService(repo)

		repo.On("Delete", mock.Anything, "site1").
			Times(1).
			Return(database.ErrNotFound)

		err := svc.Delete(context.TODO(), "site1")

		assert.Error(t, err)
		assert.ErrorIs(t, err, database.ErrNotFound)
		repo.AssertExpectations(t)
	})

	t.Run("success", func(t *testing.T) {
		repo := new(MockRepository[models.PBNSite])
		svc := NewSiteService(repo)

		repo.On("Delete", mock.Anything, "site1").
			Times(1).
			Return(nil)

		err := svc.Delete(context.TODO(), "site1")

		assert.NoError(t, err)
		repo.AssertExpectations(t)
	})
}
