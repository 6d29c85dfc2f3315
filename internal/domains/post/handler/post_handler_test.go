package handler

import (
	"context"
	"html/template"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"compass-backend/internal/config"
	"compass-backend/internal/domains/post"
)

type fakeService struct {
	views  []post.View
	detail *post.Detail
}

func (f *fakeService) List(ctx context.Context, preview bool) ([]post.View, error) {
	return f.views, nil
}

func (f *fakeService) GetBySlug(ctx context.Context, slug string, preview bool) (*post.Detail, error) {
	if f.detail != nil && f.detail.Slug == slug {
		return f.detail, nil
	}
	return nil, post.ErrPostNotFound
}

func (f *fakeService) Categories(ctx context.Context) ([]string, error) {
	return []string{"News", "Guides"}, nil
}

const testTemplates = `
{{ define "index.html" }}{{ range .Posts }}[{{ .Slug }}]{{ end }}{{ end }}
{{ define "post.html" }}{{ .Post.Title }}|{{ .Body }}{{ end }}
{{ define "error.html" }}{{ .Status }}:{{ .Message }}{{ end }}
`

func setupPostRouter(t *testing.T, cfg *config.Config, svc post.Service) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	router := gin.New()
	router.SetHTMLTemplate(template.Must(template.New("t").Parse(testTemplates)))

	h := NewPostHandler(svc, cfg)
	router.GET("/", h.Index)
	router.NoRoute(h.Show)
	return router
}

func testConfig() *config.Config {
	cfg := &config.Config{}
	cfg.App.Name = "The Compass"
	cfg.Site.BaseURL = "https://compass.example.com"
	cfg.Site.PreviewSecret = "s3cret"
	return cfg
}

func TestIndexListsPosts(t *testing.T) {
	svc := &fakeService{views: []post.View{
		{Slug: "first", Categories: []string{"News"}},
		{Slug: "second", Categories: []string{"Guides"}},
	}}
	router := setupPostRouter(t, testConfig(), svc)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "public, max-age=3600, stale-while-revalidate=60", w.Header().Get("Cache-Control"))
	assert.Contains(t, w.Body.String(), "[first]")
	assert.Contains(t, w.Body.String(), "[second]")
}

func TestIndexFiltersByCategory(t *testing.T) {
	svc := &fakeService{views: []post.View{
		{Slug: "first", Categories: []string{"News"}},
		{Slug: "second", Categories: []string{"Guides"}},
	}}
	router := setupPostRouter(t, testConfig(), svc)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/?category=Guides", nil))

	require.Equal(t, http.StatusOK, w.Code)
	assert.NotContains(t, w.Body.String(), "[first]")
	assert.Contains(t, w.Body.String(), "[second]")
}

func TestIndexPreviewDisablesCaching(t *testing.T) {
	router := setupPostRouter(t, testConfig(), &fakeService{})

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/?preview=s3cret", nil))

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "public, no-cache", w.Header().Get("Cache-Control"))
}

func TestShowRendersPost(t *testing.T) {
	svc := &fakeService{detail: &post.Detail{
		View:     post.View{Title: "Hello", Slug: "hello"},
		BodyHTML: "<p>body <b>bold</b></p>",
	}}
	router := setupPostRouter(t, testConfig(), svc)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/hello", nil))

	require.Equal(t, http.StatusOK, w.Code)
	// pre-rendered body must pass through unescaped
	assert.Contains(t, w.Body.String(), "Hello|<p>body <b>bold</b></p>")
}

func TestShowUnknownSlug(t *testing.T) {
	router := setupPostRouter(t, testConfig(), &fakeService{})

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/missing", nil))

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), "Post with slug missing not found")
}

func TestShowRejectsNestedPaths(t *testing.T) {
	router := setupPostRouter(t, testConfig(), &fakeService{})

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/a/b", nil))

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), "Page not found")
}
