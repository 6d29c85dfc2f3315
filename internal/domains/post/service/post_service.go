package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"math/rand"

	"compass-backend/internal/domains/post"
	"compass-backend/internal/domains/richtext"
	"compass-backend/internal/infrastructure/cache"
	"compass-backend/internal/infrastructure/contentful"
	"compass-backend/internal/shared/utils"
	"compass-backend/pkg/logger"
)

const relatedPostCount = 3

type postServiceImpl struct {
	source post.ContentSource
	pages  *cache.PageCache
}

func NewPostService(source post.ContentSource, pages *cache.PageCache) post.Service {
	return &postServiceImpl{
		source: source,
		pages:  pages,
	}
}

func (s *postServiceImpl) List(ctx context.Context, preview bool) ([]post.View, error) {
	if !preview {
		if raw, ok := s.pages.Get(ctx, cache.ListKey(false)); ok {
			var views []post.View
			if err := json.Unmarshal(raw, &views); err == nil {
				return views, nil
			}
		}
	}

	posts, err := s.source.GetAllPosts(ctx, preview)
	if err != nil {
		return nil, fmt.Errorf("list posts: %w", err)
	}

	views := make([]post.View, 0, len(posts))
	for i := range posts {
		views = append(views, toView(&posts[i]))
	}

	if !preview {
		if raw, err := json.Marshal(views); err == nil {
			s.pages.Set(ctx, cache.ListKey(false), raw)
		}
	}

	return views, nil
}

func (s *postServiceImpl) GetBySlug(ctx context.Context, slug string, preview bool) (*post.Detail, error) {
	// Preview requests always see fresh draft content.
	if !preview {
		if raw, ok := s.pages.Get(ctx, cache.PostKey(slug, false)); ok {
			var detail post.Detail
			if err := json.Unmarshal(raw, &detail); err == nil {
				return &detail, nil
			}
		}
	}

	p, err := s.source.GetPostBySlug(ctx, slug, preview)
	if err != nil {
		if errors.Is(err, contentful.ErrNotFound) {
			return nil, fmt.Errorf("%w: no post with slug %q", post.ErrPostNotFound, slug)
		}
		return nil, fmt.Errorf("get post %q: %w", slug, err)
	}

	bodyHTML := ""
	plainLen := 0
	if p.Text != nil {
		bodyHTML = richtext.NewRenderer(p.Text.Links).Render(&p.Text.JSON)
		plainLen = len(richtext.PlainText(&p.Text.JSON))
	}

	detail := &post.Detail{
		View:     toView(p),
		BodyHTML: bodyHTML,
		ReadTime: utils.ReadTime(plainLen),
		Related:  s.relatedPosts(ctx, p, preview),
	}

	if !preview {
		if raw, err := json.Marshal(detail); err == nil {
			s.pages.Set(ctx, cache.PostKey(slug, false), raw)
		}
	}

	return detail, nil
}

func (s *postServiceImpl) Categories(ctx context.Context) ([]string, error) {
	categories, err := s.source.GetAllCategories(ctx)
	if err != nil {
		return nil, fmt.Errorf("list categories: %w", err)
	}
	return categories, nil
}

// relatedPosts picks up to three posts sharing a category with the current
// one. Related content is decoration: a fetch failure logs and the detail
// page renders without it.
func (s *postServiceImpl) relatedPosts(ctx context.Context, current *contentful.Post, preview bool) []post.View {
	candidates, err := s.source.GetRelatedPosts(ctx, current.Category, preview)
	if err != nil {
		logger.Warn("related posts fetch failed", map[string]interface{}{
			"slug":  current.Slug,
			"error": err.Error(),
		})
		return nil
	}

	views := make([]post.View, 0, len(candidates))
	for i := range candidates {
		if candidates[i].Slug == current.Slug {
			continue
		}
		views = append(views, toView(&candidates[i]))
	}

	rand.Shuffle(len(views), func(i, j int) {
		views[i], views[j] = views[j], views[i]
	})

	if len(views) > relatedPostCount {
		views = views[:relatedPostCount]
	}
	return views
}

func toView(p *contentful.Post) post.View {
	v := post.View{
		Title:      p.Title,
		Subtitle:   p.Subtitle,
		Slug:       p.Slug,
		Date:       utils.FormatDate(p.Date),
		Keywords:   p.Keywords,
		Categories: p.Category,
	}

	if p.CoverImage != nil && p.CoverImage.URL != "" {
		v.CoverImageURL = utils.ToWebp(p.CoverImage.URL)
		v.CoverImageSrcSet = utils.SrcSet(v.CoverImageURL)
	}

	for _, a := range p.Authors() {
		av := post.AuthorView{
			Name:        a.Name,
			Title:       a.Title,
			TwitterLink: a.TwitterLink,
			DiscordLink: a.DiscordLink,
		}
		if a.Image != nil {
			av.ImageURL = utils.ToWebp(a.Image.URL)
		}
		v.Authors = append(v.Authors, av)
	}

	return v
}
