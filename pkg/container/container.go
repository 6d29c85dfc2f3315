package container

import (
	"context"
	"fmt"
	"time"

	"compass-backend/internal/config"
	"compass-backend/internal/domains/ogimage"
	ogHandler "compass-backend/internal/domains/ogimage/handler"
	"compass-backend/internal/domains/post"
	postHandler "compass-backend/internal/domains/post/handler"
	postService "compass-backend/internal/domains/post/service"
	"compass-backend/internal/domains/webhook"
	webhookHandler "compass-backend/internal/domains/webhook/handler"
	webhookService "compass-backend/internal/domains/webhook/service"
	"compass-backend/internal/infrastructure/cache"
	"compass-backend/internal/infrastructure/cdn"
	"compass-backend/internal/infrastructure/contentful"
	"compass-backend/pkg/logger"
)

// Container is the root of the dependency graph. Everything in it is a
// singleton built once at startup, in dependency order: config, then
// infrastructure, then services, then handlers.
type Container struct {
	Config *config.Config

	Redis      *cache.RedisClient
	PageCache  *cache.PageCache
	Contentful *contentful.Client
	Cloudflare *cdn.CloudflareClient

	PostService    post.Service
	WebhookService webhook.Service

	PostHandler    *postHandler.PostHandler
	WebhookHandler *webhookHandler.WebhookHandler
	OGHandler      *ogHandler.OGHandler
}

func NewContainer() (*Container, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	c := &Container{Config: cfg}

	if err := c.initInfrastructure(); err != nil {
		return nil, fmt.Errorf("failed to init infrastructure: %w", err)
	}

	c.initServices()

	if err := c.initHandlers(); err != nil {
		return nil, fmt.Errorf("failed to init handlers: %w", err)
	}

	return c, nil
}

func (c *Container) initInfrastructure() error {
	// Redis is optional. When it is absent the page cache is nil and every
	// request goes straight to the CMS.
	if c.Config.Redis.Host != "" {
		redisClient := cache.NewRedisClient(
			c.Config.Redis.Host,
			c.Config.Redis.Password,
			c.Config.Redis.DB,
		)

		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		if err := redisClient.Connect(ctx); err != nil {
			logger.Warn("redis connection failed, page cache disabled", map[string]interface{}{
				"error": err.Error(),
			})
		} else {
			c.Redis = redisClient
			c.PageCache = cache.NewPageCache(redisClient, cache.DefaultPageTTL)
		}
	}

	c.Contentful = contentful.NewClient(c.Config.Contentful)
	c.Cloudflare = cdn.NewCloudflareClient(c.Config.Cloudflare)

	return nil
}

func (c *Container) initServices() {
	c.PostService = postService.NewPostService(c.Contentful, c.PageCache)
	c.WebhookService = webhookService.NewPurgeService(
		c.Contentful,
		c.Cloudflare,
		c.PageCache,
		c.Config.Site.BaseURL,
	)
}

func (c *Container) initHandlers() error {
	generator, err := ogimage.NewGenerator(c.Config.OG)
	if err != nil {
		return fmt.Errorf("failed to build og generator: %w", err)
	}

	c.PostHandler = postHandler.NewPostHandler(c.PostService, c.Config)
	c.WebhookHandler = webhookHandler.NewWebhookHandler(c.WebhookService, c.Config.Contentful.WebhookName)
	c.OGHandler = ogHandler.NewOGHandler(generator, c.PostService, c.Config)

	return nil
}

// Cleanup releases held connections. Called from the graceful shutdown path.
func (c *Container) Cleanup() {
	if c.Redis != nil {
		if err := c.Redis.Close(); err != nil {
			logger.Warn("failed to close redis", map[string]interface{}{
				"error": err.Error(),
			})
		}
	}
}
