package service

import (
	"context"
	"errors"
	"fmt"

	"compass-backend/internal/domains/webhook"
	"compass-backend/internal/infrastructure/cache"
	"compass-backend/internal/infrastructure/contentful"
	"compass-backend/pkg/logger"
)

type purgeServiceImpl struct {
	resolver webhook.EntryResolver
	purger   webhook.Purger
	pages    *cache.PageCache
	baseURL  string
}

func NewPurgeService(resolver webhook.EntryResolver, purger webhook.Purger, pages *cache.PageCache, baseURL string) webhook.Service {
	return &purgeServiceImpl{
		resolver: resolver,
		purger:   purger,
		pages:    pages,
		baseURL:  baseURL,
	}
}

// Process resolves the changed entry's slug and purges the site root plus
// the post's detail URL from the CDN in one batch. No retries: the CMS
// redelivers on failure.
func (s *purgeServiceImpl) Process(ctx context.Context, event webhook.Event) error {
	// Deleted entries only resolve through the preview dataset.
	preview := event.Deleted()

	p, err := s.resolver.FindPostByID(ctx, event.Sys.ID, preview)
	if err != nil {
		if errors.Is(err, contentful.ErrNotFound) {
			return fmt.Errorf("%w: entry %s", webhook.ErrEntryNotFound, event.Sys.ID)
		}
		return fmt.Errorf("resolve entry %s: %w", event.Sys.ID, err)
	}

	urls := []string{s.baseURL, s.baseURL + "/" + p.Slug}

	if err := s.purger.Purge(ctx, urls); err != nil {
		logger.Error("cdn purge failed", err)
		return fmt.Errorf("%w: %v", webhook.ErrPurgeFailed, err)
	}

	// Local page cache follows the CDN; losing this only leaves a stale
	// local copy until its TTL.
	s.pages.InvalidateSlug(ctx, p.Slug)

	logger.Info("cache purged", map[string]interface{}{
		"entry_id": event.Sys.ID,
		"slug":     p.Slug,
		"urls":     urls,
	})

	return nil
}
