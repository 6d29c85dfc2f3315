package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"compass-backend/internal/config"
	"compass-backend/internal/domains/ogimage"
	"compass-backend/internal/domains/post"
	"compass-backend/internal/shared/response"
	"compass-backend/pkg/logger"
)

type OGHandler struct {
	generator *ogimage.Generator
	posts     post.Service
	cfg       *config.Config
}

func NewOGHandler(gen *ogimage.Generator, posts post.Service, cfg *config.Config) *OGHandler {
	return &OGHandler{
		generator: gen,
		posts:     posts,
		cfg:       cfg,
	}
}

// Render serves the social card for ?slug=. The slug is resolved against
// the CMS so unknown slugs never produce a card.
func (h *OGHandler) Render(c *gin.Context) {
	slug := c.Query("slug")
	if slug == "" {
		response.BadRequest(c, "Missing slug")
		return
	}

	preview := h.cfg.Site.PreviewSecret != "" && c.Query("preview") == h.cfg.Site.PreviewSecret

	detail, err := h.posts.GetBySlug(c.Request.Context(), slug, preview)
	if err != nil {
		if errors.Is(err, post.ErrPostNotFound) {
			response.BadRequest(c, "Post not found")
			return
		}
		logger.Error("og post lookup failed", err)
		response.InternalServerError(c, "Something went wrong")
		return
	}

	data, err := h.generator.Render(detail.Title)
	if err != nil {
		logger.Error("og render failed", err)
		response.InternalServerError(c, "Something went wrong")
		return
	}

	if preview || h.cfg.IsDevelopment() {
		c.Header("Cache-Control", "no-cache, no-store")
	} else {
		c.Header("Cache-Control", "public, immutable, no-transform, max-age=31536000")
	}
	c.Data(http.StatusOK, "image/png", data)
}
