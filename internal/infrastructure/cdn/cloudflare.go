package cdn

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"compass-backend/internal/config"
)

// CloudflareClient submits batch purge requests to the zone purge_cache
// endpoint. No retries: purge failures surface to the caller and Contentful
// owns redelivery.
type CloudflareClient struct {
	cfg        config.CloudflareConfig
	httpClient *http.Client
}

func NewCloudflareClient(cfg config.CloudflareConfig) *CloudflareClient {
	return &CloudflareClient{
		cfg: cfg,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

type purgeRequest struct {
	Files []string `json:"files"`
}

type purgeResponse struct {
	Success bool `json:"success"`
	Errors  []struct {
		Code    int    `json:"code"`
		Message string `json:"message"`
	} `json:"errors"`
}

// Purge removes the given URLs from the CDN cache in a single batch call.
func (c *CloudflareClient) Purge(ctx context.Context, urls []string) error {
	bodyJSON, err := json.Marshal(purgeRequest{Files: urls})
	if err != nil {
		return fmt.Errorf("failed to marshal purge request: %w", err)
	}

	url := fmt.Sprintf("%s/zones/%s/purge_cache", c.cfg.APIURL, c.cfg.ZoneID)

	req, err := http.NewRequestWithContext(ctx, http.MethodDelete, url, bytes.NewReader(bodyJSON))
	if err != nil {
		return fmt.Errorf("failed to create purge request: %w", err)
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Auth-Key", c.cfg.AuthKey)
	req.Header.Set("X-Auth-Email", c.cfg.AuthEmail)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("failed to call purge API: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read purge response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return fmt.Errorf("purge API returned %d: %s", resp.StatusCode, respBody)
	}

	var result purgeResponse
	if err := json.Unmarshal(respBody, &result); err != nil {
		return fmt.Errorf("failed to unmarshal purge response: %w", err)
	}

	if !result.Success {
		msg := "unknown error"
		if len(result.Errors) > 0 {
			msg = result.Errors[0].Message
		}
		return fmt.Errorf("purge rejected: %s", msg)
	}

	return nil
}
