package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/syslocale/domainpbn/internal/database"
	"github.com/syslocale/domainpbn/internal/models"
)

type MockDomainRepository struct {
	MockRepository[models.DomainListing]
}

func (r *MockDomainRepository) InsertMany(ctx context.Context, ids []string, docs []*models.DomainListing) (int64, error) {
	args := r.Called(ctx, ids, docs)
	return args.Get(0).(int64), args.Error(1)
}

func TestDomainService_PublicList(t *testing.T) {
	t.Run("defaults to available domains", func(t *testing.T) {
		repo := new(MockDomainRepository)
		svc := NewDomainService(repo)

		repo.On("Find", mock.Anything, mock.MatchedBy(func(q database.Query) bool {
			return len(q.Conditions) > 0 && q.Conditions[0] == database.Condition{
				Field: "status", Op: database.OpEq, Value: models.DomainStatusAvailable,
			}
		})).
			Times(1).
			Return([]*models.DomainListing{}, nil)

		domains, err := svc.PublicList(context.TODO(), "", ListingParams{})

		assert.NoError(t, err)
		assert.Empty(t, domains)
		repo.AssertExpectations(t)
	})

	t.Run("explicit status wins", func(t *testing.T) {
		repo := new(MockDomainRepository)
		svc := NewDomainService(repo)

		repo.On("Find", mock.Anything, mock.MatchedBy(func(q database.Query) bool {
			return len(q.Conditions) > 0 && q.Conditions[0] == database.Condition{
				Field: "status", Op: database.OpEq, Value: models.DomainStatusSold,
			}
		})).
			Times(1).
			Return([]*models.DomainListing{{ID: "dom1", Status: models.DomainStatusSold}}, nil)

		domains, err := svc.PublicList(context.TODO(), models.DomainStatusSold, ListingParams{})

		assert.NoError(t, err)
		assert.Len(t, domains, 1)
		repo.AssertExpectations(t)
	})

	t.Run("repository error", func(t *testing.T) {
		repo := new(MockDomainRepository)
		svc := NewDomainService(repo)

		repo.On("Find", mock.Anything, mock.Anything).
			Times(1).
			Return(nil, errUnknown)

		domains, err := svc.PublicList(context.TODO(), "", ListingParams{})

		assert.Error(t, err)
		assert.ErrorIs(t, err, errUnknown)
		assert.Nil(t, domains)
		repo.AssertExpectations(t)
	})
}

func TestDomainService_Import(t *testing.T) {
	t.Run("repository error", func(t *testing.T) {
		repo := new(MockDomainRepository)
		svc := NewDomainService(repo)

		repo.On("InsertMany", mock.Anything, mock.Anything, mock.Anything).
			Times(1).
			Return(int64(0), errUnknown)

		n, err := svc.Import(context.TODO(), []*models.DomainListing{{DomainName: "example.com"}})

		assert.Error(t, err)
		assert.ErrorIs(t, err, errUnknown)
		assert.Zero(t, n)
		repo.AssertExpectations(t)
	})

	t.Run("success stamps every listing", func(t *testing.T) {
		repo := new(MockDomainRepository)
		svc := NewDomainService(repo)

		domains := []*models.DomainListing{
			{DomainName: "example.com"},
			{DomainName: "example.org"},
		}

		repo.On("InsertMany", mock.Anything, mock.MatchedBy(func(ids []string) bool {
			return len(ids) == 2 && ids[0] != "" && ids[1] != "" && ids[0] != ids[1]
		}), domains).
			Times(1).
			Return(int64(2), nil)

		n, err := svc.Import(context.TODO(), domains)

		assert.NoError(t, err)
		assert.Equal(t, int64(2), n)

		for _, domain := range domains {
			assert.NotEmpty(t, domain.ID)
			assert.False(t, domain.CreatedAt.IsZero())
		}
		assert.Equal(t, domains[0].CreatedAt, domains[1].CreatedAt)

		repo.AssertExpectations(t)
	})
}

func TestDomainService_Update(t *testing.T) {
	t.Run("domain not found", func(t *testing.T) {
		repo := new(MockDomainRepository)
		svc := NewDomainService(repo)

		repo.On("FindByID", mock.Anything, "dom1").
			Times(1).
			Return(nil, database.ErrNotFound)

		domain, err := svc.Update(context.TODO(), "dom1", &models.DomainListing{})

		assert.Error(t, err)
		assert.ErrorIs(t, err, database.ErrNotFound)
		assert.Nil(t, domain)
		repo.AssertExpectations(t)
	})
}
