package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"compass-backend/internal/domains/post"
	"compass-backend/internal/domains/richtext"
	"compass-backend/internal/infrastructure/contentful"
)

type fakeSource struct {
	posts      []contentful.Post
	related    []contentful.Post
	categories []string
}

func (f *fakeSource) GetAllPosts(ctx context.Context, preview bool) ([]contentful.Post, error) {
	return f.posts, nil
}

func (f *fakeSource) GetPostBySlug(ctx context.Context, slug string, preview bool) (*contentful.Post, error) {
	for i := range f.posts {
		if f.posts[i].Slug == slug {
			return &f.posts[i], nil
		}
	}
	return nil, contentful.ErrNotFound
}

func (f *fakeSource) GetRelatedPosts(ctx context.Context, categories []string, preview bool) ([]contentful.Post, error) {
	return f.related, nil
}

func (f *fakeSource) GetAllCategories(ctx context.Context) ([]string, error) {
	return f.categories, nil
}

func samplePost() contentful.Post {
	return contentful.Post{
		Title:      "Hello",
		Subtitle:   "A greeting",
		Slug:       "hello",
		Date:       "2023-03-14T09:00:00Z",
		Category:   []string{"News"},
		CoverImage: &contentful.Image{URL: "https://img.example/cover.jpg"},
		AuthorCollection: &contentful.AuthorCollection{Items: []contentful.Author{
			{Name: "Ada", Image: &contentful.Image{URL: "https://img.example/ada.jpg"}},
		}},
		Text: &contentful.RichText{
			JSON: richtext.Node{
				NodeType: richtext.NodeDocument,
				Content: []richtext.Node{
					{NodeType: richtext.NodeHeading2, Content: []richtext.Node{
						{NodeType: richtext.NodeText, Value: "My Section"},
					}},
					{NodeType: richtext.NodeParagraph, Content: []richtext.Node{
						{NodeType: richtext.NodeText, Value: "body text"},
					}},
				},
			},
		},
	}
}

func TestGetBySlug(t *testing.T) {
	src := &fakeSource{
		posts: []contentful.Post{samplePost()},
		related: []contentful.Post{
			{Slug: "hello", Title: "self"},
			{Slug: "other-1", Title: "one"},
			{Slug: "other-2", Title: "two"},
			{Slug: "other-3", Title: "three"},
			{Slug: "other-4", Title: "four"},
		},
	}
	svc := NewPostService(src, nil)

	detail, err := svc.GetBySlug(context.Background(), "hello", false)
	require.NoError(t, err)

	assert.Equal(t, "Hello", detail.Title)
	assert.Equal(t, "March 14, 2023", detail.Date)
	assert.Contains(t, detail.BodyHTML, `<h2 id="my-section"`)
	assert.Contains(t, detail.BodyHTML, "<p>body text</p>")
	assert.NotEmpty(t, detail.ReadTime)
	assert.Contains(t, detail.CoverImageURL, "fm=webp")
	assert.NotEmpty(t, detail.CoverImageSrcSet)
	require.Len(t, detail.Authors, 1)
	assert.Contains(t, detail.Authors[0].ImageURL, "fm=webp")

	// related excludes the current slug and is capped at three
	assert.Len(t, detail.Related, 3)
	for _, r := range detail.Related {
		assert.NotEqual(t, "hello", r.Slug)
	}
}

func TestGetBySlugNotFound(t *testing.T) {
	svc := NewPostService(&fakeSource{}, nil)

	_, err := svc.GetBySlug(context.Background(), "missing", false)
	assert.ErrorIs(t, err, post.ErrPostNotFound)
}

func TestList(t *testing.T) {
	src := &fakeSource{posts: []contentful.Post{samplePost()}}
	svc := NewPostService(src, nil)

	views, err := svc.List(context.Background(), false)
	require.NoError(t, err)
	require.Len(t, views, 1)
	assert.Equal(t, "hello", views[0].Slug)
}

func TestCategories(t *testing.T) {
	src := &fakeSource{categories: []string{"News", "Guides"}}
	svc := NewPostService(src, nil)

	got, err := svc.Categories(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{"News", "Guides"}, got)
}
