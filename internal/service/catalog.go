package service

import (
	"context"
	"fmt"

	"github.com/syslocale/domainpbn/internal/database"
	"github.com/syslocale/domainpbn/internal/models"
)

// sortOrderAsc is the natural display order of packages and FAQs.
var sortOrderAsc = &database.Sort{Field: "sort_order", Numeric: true}

// PackageService manages the pricing packages.
type PackageService struct {
	repo Repository[models.Package]
}

func NewPackageService(repo Repository[models.Package]) *PackageService {
	return &PackageService{repo: repo}
}

// PublicList returns active packages in display order.
func (s *PackageService) PublicList(ctx context.Context) ([]*models.Package, error) {
	const op = "service.PackageService.PublicList"

	q := database.Query{Sort: sortOrderAsc}.
		Where("is_active", database.OpEq, true)

	packages, err := s.repo.Find(ctx, q)
	if err != nil {
		return nil, fmt.Errorf("%s: failed to list packages: %w", op, err)
	}

	return packages, nil
}

// AdminList returns every package in display order.
func (s *PackageService) AdminList(ctx context.Context) ([]*models.Package, error) {
	const op = "service.PackageService.AdminList"

	packages, err := s.repo.Find(ctx, database.Query{Sort: sortOrderAsc})
	if err != nil {
		return nil, fmt.Errorf("%s: failed to list packages: %w", op, err)
	}

	return packages, nil
}

func (s *PackageService) Create(ctx context.Context, pkg *models.Package) (*models.Package, error) {
	const op = "service.PackageService.Create"

	id, err := newID(op)
	if err != nil {
		return nil, err
	}

	pkg.ID = id
	pkg.CreatedAt = now()

	if err := s.repo.Insert(ctx, pkg.ID, pkg); err != nil {
		return nil, fmt.Errorf("%s: failed to create package: %w", op, err)
	}

	return pkg, nil
}

func (s *PackageService) Update(ctx context.Context, id string, pkg *models.Package) (*models.Package, error) {
	const op = "service.PackageService.Update"

	existing, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("%s: failed to update package: %w", op, err)
	}

	pkg.ID = existing.ID
	pkg.CreatedAt = existing.CreatedAt

	updated, err := s.repo.Replace(ctx, id, pkg)
	if err != nil {
		return nil, fmt.Errorf("%s: failed to update package: %w", op, err)
	}

	return updated, nil
}

func (s *PackageService) Delete(ctx context.Context, id string) error {
	const op = "service.PackageService.Delete"

	if err := s.repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("%s: failed to delete package: %w", op, err)
	}

	return nil
}

// FAQService manages the FAQ entries.
type FAQService struct {
	repo Repository[models.FAQ]
}

func NewFAQService(repo Repository[models.FAQ]) *FAQService {
	return &FAQService{repo: repo}
}

// PublicList returns active FAQs in display order.
func (s *FAQService) PublicList(ctx context.Context) ([]*models.FAQ, error) {
	const op = "service.FAQService.PublicList"

	q := database.Query{Sort: sortOrderAsc}.
		Where("is_active", database.OpEq, true)

	faqs, err := s.repo.Find(ctx, q)
	if err != nil {
		return nil, fmt.Errorf("%s: failed to list faqs: %w", op, err)
	}

	return faqs, nil
}

// AdminList returns every FAQ in display order.
func (s *FAQService) AdminList(ctx context.Context) ([]*models.FAQ, error) {
	const op = "service.FAQService.AdminList"

	faqs, err := s.repo.Find(ctx, database.Query{Sort: sortOrderAsc})
	if err != nil {
		return nil, fmt.Errorf("%s: failed to list faqs: %w", op, err)
	}

	return faqs, nil
}

func (s *FAQService) Create(ctx context.Context, faq *models.FAQ) (*models.FAQ, error) {
	const op = "service.FAQService.Create"

	id, err := newID(op)
	if err != nil {
		return nil, err
	}

	faq.ID = id
	faq.CreatedAt = now()

	if err := s.repo.Insert(ctx, faq.ID, faq); err != nil {
		return nil, fmt.Errorf("%s: failed to create faq: %w", op, err)
	}

	return faq, nil
}

func (s *FAQService) Update(ctx context.Context, id string, faq *models.FAQ) (*models.FAQ, error) {
	const op = "service.FAQService.Update"

	existing, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("%s: failed to update faq: %w", op, err)
	}

	faq.ID = existing.ID
	faq.CreatedAt = existing.CreatedAt

	updated, err := s.repo.Replace(ctx, id, faq)
	if err != nil {
		return nil, fmt.Errorf("%s: failed to update faq: %w", op, err)
	}

	return updated, nil
}

func (s *FAQService) Delete(ctx context.Context, id string) error {
	const op = "service.FAQService.Delete"

	if err := s.repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("%s: failed to delete faq: %w", op, err)
	}

	return nil
}
