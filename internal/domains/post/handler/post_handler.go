package handler

import (
	"errors"
	"fmt"
	"html/template"
	"net/http"
	"net/url"
	"strings"

	"github.com/gin-gonic/gin"

	"compass-backend/internal/config"
	"compass-backend/internal/domains/post"
	"compass-backend/pkg/logger"
)

type PostHandler struct {
	service post.Service
	cfg     *config.Config
}

func NewPostHandler(svc post.Service, cfg *config.Config) *PostHandler {
	return &PostHandler{
		service: svc,
		cfg:     cfg,
	}
}

// isPreview reports whether the request carries the preview secret. An
// empty configured secret disables preview mode entirely.
func (h *PostHandler) isPreview(c *gin.Context) bool {
	return h.cfg.Site.PreviewSecret != "" && c.Query("preview") == h.cfg.Site.PreviewSecret
}

// setCacheHeaders mirrors the CDN caching policy: previews are never
// cached, published pages get an hour plus stale-while-revalidate.
func (h *PostHandler) setCacheHeaders(c *gin.Context, preview bool) {
	var value string
	if preview {
		value = "public, no-cache"
	} else {
		value = "public, max-age=3600, stale-while-revalidate=60"
	}
	c.Header("Cache-Control", value)
	c.Header("CDN-Cache-Control", value)
}

// Index renders the front page: all visible posts plus the category filter
// bar. An optional ?category= narrows the list server-side.
func (h *PostHandler) Index(c *gin.Context) {
	preview := h.isPreview(c)

	posts, err := h.service.List(c.Request.Context(), preview)
	if err != nil {
		logger.Error("list posts failed", err)
		h.renderError(c, http.StatusInternalServerError, "Something went wrong")
		return
	}

	categories, err := h.service.Categories(c.Request.Context())
	if err != nil {
		// The filter bar is decoration; the page still works without it.
		logger.Warn("category list failed", map[string]interface{}{"error": err.Error()})
	}

	if active := c.Query("category"); active != "" {
		posts = filterByCategory(posts, active)
	}

	h.setCacheHeaders(c, preview)
	c.HTML(http.StatusOK, "index.html", gin.H{
		"SiteName":   h.cfg.App.Name,
		"Posts":      posts,
		"Categories": categories,
		"Active":     c.Query("category"),
	})
}

// Show renders a post detail page. It is mounted as the NoRoute handler so
// top-level slugs don't fight the static routes for the root path segment.
func (h *PostHandler) Show(c *gin.Context) {
	if c.Request.Method != http.MethodGet {
		c.JSON(http.StatusNotFound, gin.H{"success": false})
		return
	}

	slug := strings.Trim(c.Request.URL.Path, "/")
	if slug == "" || strings.Contains(slug, "/") {
		h.renderError(c, http.StatusNotFound, "Page not found")
		return
	}

	preview := h.isPreview(c)

	detail, err := h.service.GetBySlug(c.Request.Context(), slug, preview)
	if err != nil {
		if errors.Is(err, post.ErrPostNotFound) {
			h.renderError(c, http.StatusNotFound, fmt.Sprintf("Post with slug %s not found", slug))
			return
		}
		logger.Error("get post failed", err)
		h.renderError(c, http.StatusInternalServerError, "Something went wrong")
		return
	}

	h.setCacheHeaders(c, preview)
	c.HTML(http.StatusOK, "post.html", gin.H{
		"SiteName": h.cfg.App.Name,
		"Post":     detail,
		// The body is pre-rendered, pre-escaped HTML; mark it trusted so
		// the template engine does not escape it a second time.
		"Body":       template.HTML(detail.BodyHTML),
		"OGImageURL": h.ogImageURL(slug, preview),
	})
}

func (h *PostHandler) ogImageURL(slug string, preview bool) string {
	u := fmt.Sprintf("%s/resources/og?slug=%s", h.cfg.Site.BaseURL, url.QueryEscape(slug))
	if preview {
		u += "&preview=" + url.QueryEscape(h.cfg.Site.PreviewSecret)
	}
	return u
}

func (h *PostHandler) renderError(c *gin.Context, status int, message string) {
	c.HTML(status, "error.html", gin.H{
		"SiteName": h.cfg.App.Name,
		"Status":   status,
		"Message":  message,
	})
}

func filterByCategory(posts []post.View, category string) []post.View {
	filtered := make([]post.View, 0, len(posts))
	for _, p := range posts {
		for _, cat := range p.Categories {
			if cat == category {
				filtered = append(filtered, p)
				break
			}
		}
	}
	return filtered
}
