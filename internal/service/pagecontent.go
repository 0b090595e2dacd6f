package service

import (
	"context"
	"fmt"

	"github.com/syslocale/domainpbn/internal/database"
	"github.com/syslocale/domainpbn/internal/models"
)

// PageContentService manages the editable content fragments of the
// frontend pages.
type PageContentService struct {
	repo Repository[models.PageContent]
}

func NewPageContentService(repo Repository[models.PageContent]) *PageContentService {
	return &PageContentService{repo: repo}
}

// List returns every content fragment.
func (s *PageContentService) List(ctx context.Context) ([]*models.PageContent, error) {
	const op = "service.PageContentService.List"

	contents, err := s.repo.Find(ctx, database.Query{})
	if err != nil {
		return nil, fmt.Errorf("%s: failed to list page contents: %w", op, err)
	}

	return contents, nil
}

// GetByKey returns the fragment for the given page key, or
// database.ErrNotFound.
func (s *PageContentService) GetByKey(ctx context.Context, pageKey string) (*models.PageContent, error) {
	const op = "service.PageContentService.GetByKey"

	q := database.Query{}.Where("page_key", database.OpEq, pageKey)

	content, err := s.repo.FindOne(ctx, q)
	if err != nil {
		return nil, fmt.Errorf("%s: failed to get page content: %w", op, err)
	}

	return content, nil
}

// Create stores a new fragment with a fresh id and update timestamp.
func (s *PageContentService) Create(ctx context.Context, content *models.PageContent) (*models.PageContent, error) {
	const op = "service.PageContentService.Create"

	id, err := newID(op)
	if err != nil {
		return nil, err
	}

	content.ID = id
	content.UpdatedAt = now()

	if err := s.repo.Insert(ctx, content.ID, content); err != nil {
		return nil, fmt.Errorf("%s: failed to create page content: %w", op, err)
	}

	return content, nil
}

// Update replaces only the content payload of the fragment identified by
// id, keeping its page key and section, and stamps a fresh update
// timestamp.
func (s *PageContentService) Update(ctx context.Context, id string, payload map[string]any) (*models.PageContent, error) {
	const op = "service.PageContentService.Update"

	existing, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("%s: failed to update page content: %w", op, err)
	}

	existing.Content = payload
	existing.UpdatedAt = now()

	updated, err := s.repo.Replace(ctx, id, existing)
	if err != nil {
		return nil, fmt.Errorf("%s: failed to update page content: %w", op, err)
	}

	return updated, nil
}

func (s *PageContentService) Delete(ctx context.Context, id string) error {
	const op = "service.PageContentService.Delete"

	if err := s.repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("%s: failed to delete page content: %w", op, err)
	}

	return nil
}
