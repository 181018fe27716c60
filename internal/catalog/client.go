// Package catalog is the thin client for the external movie-metadata
// service. Dataset import and enrichment live in that service; this client
// only performs point lookups.
package catalog

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
)

type Client struct {
	baseURL string
	http    *http.Client
}

func NewClient(baseURL string, httpClient *http.Client) *Client {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    httpClient,
	}
}

type itemResponse struct {
	Title string `json:"title"`
}

// ItemTitle fetches the display title for a catalog item. An unknown item
// returns an empty title, not an error.
func (c *Client) ItemTitle(ctx context.Context, itemID int64) (string, error) {
	reqURL := fmt.Sprintf("%s/items/%d", c.baseURL, itemID)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return "", fmt.Errorf("build catalog request: %w", err)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return "", fmt.Errorf("catalog request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return "", nil
	}
	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("catalog request: status %d", resp.StatusCode)
	}

	var item itemResponse
	if err := json.NewDecoder(resp.Body).Decode(&item); err != nil {
		return "", fmt.Errorf("decode catalog response: %w", err)
	}
	return item.Title, nil
}
