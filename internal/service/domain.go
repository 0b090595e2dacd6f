package service

import (
	"context"
	"fmt"

	"github.com/syslocale/domainpbn/internal/database"
	"github.com/syslocale/domainpbn/internal/models"
)

var domainListing = listingSpec{
	scoreField:  "dr",
	priceField:  "price",
	sortable:    []string{"dr", "da", "price", "age"},
	defaultSort: "dr",
}

// DomainRepository extends the shared repository surface with the bulk
// insert used by imports.
type DomainRepository interface {
	Repository[models.DomainListing]

	// InsertMany stores a batch of documents atomically and returns the
	// number of inserted documents.
	InsertMany(ctx context.Context, ids []string, docs []*models.DomainListing) (int64, error)
}

// DomainService manages the aged-domain marketplace listings.
type DomainService struct {
	repo DomainRepository
}

// NewDomainService creates a DomainService backed by the given repository.
func NewDomainService(repo DomainRepository) *DomainService {
	return &DomainService{repo: repo}
}

// PublicList returns the public domain listing. Only available domains are
// returned unless the caller asks for another status explicitly.
func (s *DomainService) PublicList(ctx context.Context, status string, p ListingParams) ([]*models.DomainListing, error) {
	const op = "service.DomainService.PublicList"

	if status == "" {
		status = models.DomainStatusAvailable
	}

	q := domainListing.query(p, database.Condition{
		Field: "status", Op: database.OpEq, Value: status,
	})

	domains, err := s.repo.Find(ctx, q)
	if err != nil {
		return nil, fmt.Errorf("%s: failed to list domains: %w", op, err)
	}

	return domains, nil
}

// AdminList returns every domain listing of every status.
func (s *DomainService) AdminList(ctx context.Context) ([]*models.DomainListing, error) {
	const op = "service.DomainService.AdminList"

	domains, err := s.repo.Find(ctx, database.Query{})
	if err != nil {
		return nil, fmt.Errorf("%s: failed to list domains: %w", op, err)
	}

	return domains, nil
}

// Create stores a new domain listing with a fresh id and creation
// timestamp and returns the stored record.
func (s *DomainService) Create(ctx context.Context, domain *models.DomainListing) (*models.DomainListing, error) {
	const op = "service.DomainService.Create"

	id, err := newID(op)
	if err != nil {
		return nil, err
	}

	domain.ID = id
	domain.CreatedAt = now()

	if err := s.repo.Insert(ctx, domain.ID, domain); err != nil {
		return nil, fmt.Errorf("%s: failed to create domain: %w", op, err)
	}

	return domain, nil
}

// Import stores a batch of new domain listings, stamping each with a fresh
// id and creation timestamp, and returns how many were stored. The batch is
// written in a single statement.
func (s *DomainService) Import(ctx context.Context, domains []*models.DomainListing) (int64, error) {
	const op = "service.DomainService.Import"

	ids := make([]string, 0, len(domains))
	ts := now()

	for _, domain := range domains {
		id, err := newID(op)
		if err != nil {
			return 0, err
		}

		domain.ID = id
		domain.CreatedAt = ts
		ids = append(ids, id)
	}

	n, err := s.repo.InsertMany(ctx, ids, domains)
	if err != nil {
		return 0, fmt.Errorf("%s: failed to import domains: %w", op, err)
	}

	return n, nil
}

// Update replaces every caller-editable field of the domain identified by
// id, keeping the id and the original creation timestamp.
func (s *DomainService) Update(ctx context.Context, id string, domain *models.DomainListing) (*models.DomainListing, error) {
	const op = "service.DomainService.Update"

	existing, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("%s: failed to update domain: %w", op, err)
	}

	domain.ID = existing.ID
	domain.CreatedAt = existing.CreatedAt

	updated, err := s.repo.Replace(ctx, id, domain)
	if err != nil {
		return nil, fmt.Errorf("%s: failed to update domain: %w", op, err)
	}

	return updated, nil
}

// Delete removes the domain listing identified by id.
func (s *DomainService) Delete(ctx context.Context, id string) error {
	const op = "service.DomainService.Delete"

	if err := s.repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("%s: failed to delete domain: %w", op, err)
	}

	return nil
}
