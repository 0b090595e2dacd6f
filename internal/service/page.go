package service

import (
	"context"
	"fmt"

	"github.com/syslocale/domainpbn/internal/database"
	"github.com/syslocale/domainpbn/internal/models"
)

// PageService manages the static pages (about, tos, privacy, ...).
type PageService struct {
	repo Repository[models.Page]
}

func NewPageService(repo Repository[models.Page]) *PageService {
	return &PageService{repo: repo}
}

// GetBySlug returns the published page with the given slug, or
// database.ErrNotFound when it doesn't exist or isn't published.
func (s *PageService) GetBySlug(ctx context.Context, slug string) (*models.Page, error) {
	const op = "service.PageService.GetBySlug"

	q := database.Query{}.
		Where("slug", database.OpEq, slug).
		Where("is_published", database.OpEq, true)

	page, err := s.repo.FindOne(ctx, q)
	if err != nil {
		return nil, fmt.Errorf("%s: failed to get page: %w", op, err)
	}

	return page, nil
}

// AdminList returns every page, published or not.
func (s *PageService) AdminList(ctx context.Context) ([]*models.Page, error) {
	const op = "service.PageService.AdminList"

	pages, err := s.repo.Find(ctx, database.Query{})
	if err != nil {
		return nil, fmt.Errorf("%s: failed to list pages: %w", op, err)
	}

	return pages, nil
}

func (s *PageService) Create(ctx context.Context, page *models.Page) (*models.Page, error) {
	const op = "service.PageService.Create"

	id, err := newID(op)
	if err != nil {
		return nil, err
	}

	page.ID = id
	page.CreatedAt = now()

	if err := s.repo.Insert(ctx, page.ID, page); err != nil {
		return nil, fmt.Errorf("%s: failed to create page: %w", op, err)
	}

	return page, nil
}

func (s *PageService) Update(ctx context.Context, id string, page *models.Page) (*models.Page, error) {
	const op = "service.PageService.Update"

	existing, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("%s: failed to update page: %w", op, err)
	}

	page.ID = existing.ID
	page.CreatedAt = existing.CreatedAt

	updated, err := s.repo.Replace(ctx, id, page)
	if err != nil {
		return nil, fmt.Errorf("%s: failed to update page: %w", op, err)
	}

	return updated, nil
}

func (s *PageService) Delete(ctx context.Context, id string) error {
	const op = "service.PageService.Delete"

	if err := s.repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("%s: failed to delete page: %w", op, err)
	}

	return nil
}
