package contentful

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
)

// The category list is not its own content type: it lives in the "in"
// validation of the blogPost category field, which only the management API
// exposes.

type contentTypeResponse struct {
	Fields []contentTypeField `json:"fields"`
}

type contentTypeField struct {
	ID    string `json:"id"`
	Items *struct {
		Validations []struct {
			In []string `json:"in"`
		} `json:"validations"`
	} `json:"items"`
}

// GetAllCategories reads the allowed category values off the blogPost
// content type definition.
func (c *Client) GetAllCategories(ctx context.Context) ([]string, error) {
	url := fmt.Sprintf("%s/spaces/%s/environments/%s/content_types/blogPost",
		c.cfg.ManagementURL, c.cfg.SpaceID, c.cfg.Environment)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create management request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.cfg.ManagementToken)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to call management API: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read management response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("management API returned %d: %s", resp.StatusCode, body)
	}

	var contentType contentTypeResponse
	if err := json.Unmarshal(body, &contentType); err != nil {
		return nil, fmt.Errorf("failed to unmarshal content type: %w", err)
	}

	for _, field := range contentType.Fields {
		if field.ID != "category" || field.Items == nil {
			continue
		}
		if len(field.Items.Validations) > 0 {
			return field.Items.Validations[0].In, nil
		}
	}

	return nil, nil
}
