package post

import (
	"context"

	"compass-backend/internal/infrastructure/contentful"
)

// ContentSource is the slice of the CMS client the post service consumes.
type ContentSource interface {
	GetAllPosts(ctx context.Context, preview bool) ([]contentful.Post, error)
	GetPostBySlug(ctx context.Context, slug string, preview bool) (*contentful.Post, error)
	GetRelatedPosts(ctx context.Context, categories []string, preview bool) ([]contentful.Post, error)
	GetAllCategories(ctx context.Context) ([]string, error)
}

type Service interface {
	// List returns all visible posts, date ascending.
	List(ctx context.Context, preview bool) ([]View, error)
	// GetBySlug returns the detail payload for one post, including the
	// rendered body and related posts. Returns ErrPostNotFound when the
	// slug resolves to nothing.
	GetBySlug(ctx context.Context, slug string, preview bool) (*Detail, error)
	// Categories returns the category names used by the filter bar.
	Categories(ctx context.Context) ([]string, error)
}
