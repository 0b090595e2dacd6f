package service

import (
	"context"
	"fmt"

	"github.com/syslocale/domainpbn/internal/database"
	"github.com/syslocale/domainpbn/internal/models"
)

var siteListing = listingSpec{
	categoryField: "niche",
	scoreField:    "dr",
	priceField:    "price_per_post",
	sortable:      []string{"dr", "da", "traffic", "price_per_post"},
	defaultSort:   "dr",
}

// SiteService manages the PBN link-source inventory. The public listing
// serves only active sites with the real domain and notes redacted; the
// admin surface sees everything.
type SiteService struct {
	repo Repository[models.PBNSite]
}

// NewSiteService creates a SiteService backed by the given repository.
func NewSiteService(repo Repository[models.PBNSite]) *SiteService {
	return &SiteService{repo: repo}
}

// PublicList returns the redacted public listing: active sites only,
// filtered, sorted and paginated per the params.
func (s *SiteService) PublicList(ctx context.Context, p ListingParams) ([]*models.PBNSitePublic, error) {
	const op = "service.SiteService.PublicList"

	q := siteListing.query(p, database.Condition{
		Field: "status", Op: database.OpEq, Value: models.SiteStatusActive,
	})

	sites, err := s.repo.Find(ctx, q)
	if err != nil {
		return nil, fmt.Errorf("%s: failed to list sites: %w", op, err)
	}

	public := make([]*models.PBNSitePublic, 0, len(sites))
	for _, site := range sites {
		public = append(public, site.Public())
	}

	return public, nil
}

// AdminList returns every site of every status, unredacted.
func (s *SiteService) AdminList(ctx context.Context) ([]*models.PBNSite, error) {
	const op = "service.SiteService.AdminList"

	sites, err := s.repo.Find(ctx, database.Query{})
	if err != nil {
		return nil, fmt.Errorf("%s: failed to list sites: %w", op, err)
	}

	return sites, nil
}

// Create stores a new site with a fresh id and creation timestamp and
// returns the stored record.
func (s *SiteService) Create(ctx context.Context, site *models.PBNSite) (*models.PBNSite, error) {
	const op = "service.SiteService.Create"

	id, err := newID(op)
	if err != nil {
		return nil, err
	}

	site.ID = id
	site.CreatedAt = now()

	if err := s.repo.Insert(ctx, site.ID, site); err != nil {
		return nil, fmt.Errorf("%s: failed to create site: %w", op, err)
	}

	return site, nil
}

// Update replaces every caller-editable field of the site identified by id,
// keeping the id and the original creation timestamp. The stored state is
// read back after the write.
func (s *SiteService) Update(ctx context.Context, id string, site *models.PBNSite) (*models.PBNSite, error) {
	const op = "service.SiteService.Update"

	existing, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("%s: failed to update site: %w", op, err)
	}

	site.ID = existing.ID
	site.CreatedAt = existing.CreatedAt

	updated, err := s.repo.Replace(ctx, id, site)
	if err != nil {
		return nil, fmt.Errorf("%s: failed to update site: %w", op, err)
	}

	return updated, nil
}

// Delete removes the site identified by id.
func (s *SiteService) Delete(ctx context.Context, id string) error {
	const op = "service.SiteService.Delete"

	if err := s.repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("%s: failed to delete site: %w", op, err)
	}

	return nil
}
