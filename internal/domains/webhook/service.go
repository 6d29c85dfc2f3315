package webhook

import (
	"context"

	"compass-backend/internal/infrastructure/contentful"
)

// EntryResolver resolves a CMS entry id to its post. Preview mode is
// required for deleted entries, whose published representation is gone.
type EntryResolver interface {
	FindPostByID(ctx context.Context, id string, preview bool) (*contentful.Post, error)
}

// Purger removes URLs from the CDN cache in one batch call.
type Purger interface {
	Purge(ctx context.Context, urls []string) error
}

type Service interface {
	// Process runs the resolved → purged tail of the webhook pipeline for
	// an already-validated event.
	Process(ctx context.Context, event Event) error
}
