package service

import (
	"context"
	"fmt"

	"github.com/syslocale/domainpbn/internal/database"
	"github.com/syslocale/domainpbn/internal/models"
)

const (
	blogDefaultLimit = 10

	// BlogMaxLimit is the largest page size of the public blog listing.
	BlogMaxLimit = 50
)

var publishedAtDesc = &database.Sort{Field: "published_at", Desc: true}

// BlogParams carries the options of the public blog listing. Search matches
// the title or the excerpt, case-insensitively.
type BlogParams struct {
	Search string
	Page   int
	Limit  int
}

// BlogService manages the blog posts.
type BlogService struct {
	repo Repository[models.BlogPost]
}

func NewBlogService(repo Repository[models.BlogPost]) *BlogService {
	return &BlogService{repo: repo}
}

// PublicList returns published posts, newest first, optionally narrowed by
// a search term.
func (s *BlogService) PublicList(ctx context.Context, p BlogParams) ([]*models.BlogPost, error) {
	const op = "service.BlogService.PublicList"

	q := database.Query{Sort: publishedAtDesc}.
		Where("is_published", database.OpEq, true)

	if p.Search != "" {
		q.Any = []database.Condition{
			{Field: "title", Op: database.OpContains, Value: p.Search},
			{Field: "excerpt", Op: database.OpContains, Value: p.Search},
		}
	}

	page := p.Page
	if page < 1 {
		page = 1
	}
	limit := p.Limit
	if limit < 1 {
		limit = blogDefaultLimit
	}
	q.Skip = (page - 1) * limit
	q.Limit = limit

	posts, err := s.repo.Find(ctx, q)
	if err != nil {
		return nil, fmt.Errorf("%s: failed to list posts: %w", op, err)
	}

	return posts, nil
}

// GetBySlug returns the published post with the given slug, or
// database.ErrNotFound when it doesn't exist or isn't published.
func (s *BlogService) GetBySlug(ctx context.Context, slug string) (*models.BlogPost, error) {
	const op = "service.BlogService.GetBySlug"

	q := database.Query{}.
		Where("slug", database.OpEq, slug).
		Where("is_published", database.OpEq, true)

	post, err := s.repo.FindOne(ctx, q)
	if err != nil {
		return nil, fmt.Errorf("%s: failed to get post: %w", op, err)
	}

	return post, nil
}

// AdminList returns every post, published or not, newest first.
func (s *BlogService) AdminList(ctx context.Context) ([]*models.BlogPost, error) {
	const op = "service.BlogService.AdminList"

	posts, err := s.repo.Find(ctx, database.Query{Sort: publishedAtDesc})
	if err != nil {
		return nil, fmt.Errorf("%s: failed to list posts: %w", op, err)
	}

	return posts, nil
}

// Create stores a new post, stamping id, creation and publication
// timestamps, and returns the stored record.
func (s *BlogService) Create(ctx context.Context, post *models.BlogPost) (*models.BlogPost, error) {
	const op = "service.BlogService.Create"

	id, err := newID(op)
	if err != nil {
		return nil, err
	}

	post.ID = id
	ts := now()
	post.CreatedAt = ts
	post.PublishedAt = ts

	if err := s.repo.Insert(ctx, post.ID, post); err != nil {
		return nil, fmt.Errorf("%s: failed to create post: %w", op, err)
	}

	return post, nil
}

// Update replaces every caller-editable field of the post identified by id,
// keeping the id and the original timestamps.
func (s *BlogService) Update(ctx context.Context, id string, post *models.BlogPost) (*models.BlogPost, error) {
	const op = "service.BlogService.Update"

	existing, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("%s: failed to update post: %w", op, err)
	}

	post.ID = existing.ID
	post.CreatedAt = existing.CreatedAt
	post.PublishedAt = existing.PublishedAt

	updated, err := s.repo.Replace(ctx, id, post)
	if err != nil {
		return nil, fmt.Errorf("%s: failed to update post: %w", op, err)
	}

	return updated, nil
}

func (s *BlogService) Delete(ctx context.Context, id string) error {
	const op = "service.BlogService.Delete"

	if err := s.repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("%s: failed to delete post: %w", op, err)
	}

	return nil
}
