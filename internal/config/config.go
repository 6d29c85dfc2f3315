package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
)

// Config holds the whole application configuration, populated from
// environment variables once at startup and threaded through the container.
type Config struct {
	App        AppConfig
	Site       SiteConfig
	Contentful ContentfulConfig
	Cloudflare CloudflareConfig
	Redis      RedisConfig
	OG         OGConfig
}

type AppConfig struct {
	Name        string
	Environment string // development, staging, production
	Port        string
	Version     string
}

type SiteConfig struct {
	// BaseURL is the canonical site root, used to build the purge URLs
	// submitted to the CDN. No trailing slash.
	BaseURL       string
	SessionSecret string
	PreviewSecret string // ?preview=<secret> switches to draft content
}

type ContentfulConfig struct {
	Endpoint        string // GraphQL delivery endpoint
	DeliveryToken   string
	PreviewToken    string
	ManagementToken string
	ManagementURL   string
	SpaceID         string
	Environment     string // contentful environment, usually "master"
	WebhookName     string // expected x-contentful-webhook-name value
}

type CloudflareConfig struct {
	APIURL    string
	ZoneID    string
	AuthKey   string
	AuthEmail string
}

type RedisConfig struct {
	Host     string
	Password string
	DB       int
}

type OGConfig struct {
	// FontPath optionally points at a TTF to use for the title card.
	// Empty means the embedded Go Regular face.
	FontPath string
	// BackgroundPath optionally points at a background photo. Empty means
	// a solid brand fill.
	BackgroundPath string
}

// Load reads config from environment variables.
func Load() (*Config, error) {
	cfg := &Config{
		App: AppConfig{
			Name:        getEnv("APP_NAME", "The Compass"),
			Environment: getEnv("APP_ENV", "development"),
			Port:        getEnv("APP_PORT", "8080"),
			Version:     getEnv("APP_VERSION", "1.0.0"),
		},
		Site: SiteConfig{
			BaseURL:       strings.TrimRight(getEnv("SITE_BASE_URL", "https://compass.treasure.lol"), "/"),
			SessionSecret: getEnv("SESSION_SECRET", ""),
			PreviewSecret: getEnv("PREVIEW_SECRET", ""),
		},
		Contentful: ContentfulConfig{
			Endpoint:        getEnv("CONTENTFUL_ENDPOINT", ""),
			DeliveryToken:   getEnv("CONTENTFUL_DELIVERY_TOKEN", ""),
			PreviewToken:    getEnv("CONTENTFUL_DELIVERY_PREVIEW_TOKEN", ""),
			ManagementToken: getEnv("CONTENTFUL_MANAGEMENT_TOKEN", ""),
			ManagementURL:   getEnv("CONTENTFUL_MANAGEMENT_URL", "https://api.contentful.com"),
			SpaceID:         getEnv("CONTENTFUL_SPACE_ID", ""),
			Environment:     getEnv("CONTENTFUL_ENVIRONMENT", "master"),
			WebhookName:     getEnv("CONTENTFUL_WEBHOOK_NAME", ""),
		},
		Cloudflare: CloudflareConfig{
			APIURL:    getEnv("CLOUDFLARE_API_URL", "https://api.cloudflare.com/client/v4"),
			ZoneID:    getEnv("CLOUDFLARE_ZONE_ID", ""),
			AuthKey:   getEnv("CLOUDFLARE_AUTH_KEY", ""),
			AuthEmail: getEnv("CLOUDFLARE_AUTH_EMAIL", ""),
		},
		Redis: RedisConfig{
			Host:     getEnv("REDIS_HOST", ""),
			Password: getEnv("REDIS_PASSWORD", ""),
			DB:       getEnvInt("REDIS_DB", 0),
		},
		OG: OGConfig{
			FontPath:       getEnv("OG_FONT_PATH", ""),
			BackgroundPath: getEnv("OG_BACKGROUND_PATH", ""),
		},
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return cfg, nil
}

// Validate checks that everything the production code paths depend on is set.
func (c *Config) Validate() error {
	if c.IsProduction() {
		if c.Contentful.Endpoint == "" {
			return fmt.Errorf("CONTENTFUL_ENDPOINT must be set in production")
		}
		if c.Contentful.DeliveryToken == "" {
			return fmt.Errorf("CONTENTFUL_DELIVERY_TOKEN must be set in production")
		}
		if c.Contentful.SpaceID == "" {
			return fmt.Errorf("CONTENTFUL_SPACE_ID must be set in production")
		}
		if c.Contentful.WebhookName == "" {
			return fmt.Errorf("CONTENTFUL_WEBHOOK_NAME must be set in production")
		}
		if c.Site.PreviewSecret == "" {
			return fmt.Errorf("PREVIEW_SECRET must be set in production")
		}
		if c.Cloudflare.ZoneID == "" || c.Cloudflare.AuthKey == "" || c.Cloudflare.AuthEmail == "" {
			return fmt.Errorf("CLOUDFLARE_ZONE_ID, CLOUDFLARE_AUTH_KEY and CLOUDFLARE_AUTH_EMAIL must be set in production")
		}
	}

	return nil
}

func (c *Config) IsProduction() bool {
	return c.App.Environment == "production"
}

func (c *Config) IsDevelopment() bool {
	return c.App.Environment == "development"
}

// Helper functions
func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

func getEnvInt(key string, defaultValue int) int {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}
	value, err := strconv.Atoi(valueStr)
	if err != nil {
		return defaultValue
	}
	return value
}
