// Package assistant is the HTTP client for the external text-generation
// collaborator. One operation: hand over the serialized home and a query,
// get a free-text reply back.
package assistant

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"holohome/internal/models"
)

const (
	defaultTimeout = 15 * time.Second
	generatePath   = "/v1/generate"
)

// Config carries the collaborator endpoint settings.
type Config struct {
	BaseURL string
	APIKey  string
	Timeout time.Duration
}

type Client struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
}

func NewClient(cfg Config) (*Client, error) {
	if strings.TrimSpace(cfg.BaseURL) == "" {
		return nil, fmt.Errorf("assistant base_url is required")
	}
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	return &Client{
		baseURL: strings.TrimRight(cfg.BaseURL, "/"),
		apiKey:  cfg.APIKey,
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}, nil
}

type generateRequest struct {
	Snapshot models.HomeSummary `json:"snapshot"`
	Query    string             `json:"query"`
}

type generateResponse struct {
	Reply string `json:"reply"`
}

// Generate sends the home summary and query to the collaborator and returns
// its free-text reply. Any transport or decoding problem surfaces as an
// error; the caller decides what to show instead.
func (c *Client) Generate(ctx context.Context, summary models.HomeSummary, query string) (string, error) {
	payload, err := json.Marshal(generateRequest{Snapshot: summary, Query: query})
	if err != nil {
		return "", fmt.Errorf("encode request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+generatePath, bytes.NewReader(payload))
	if err != nil {
		return "", fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if c.apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+c.apiKey)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("request %s: %w", c.baseURL+generatePath, err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("generate: unexpected status %d", resp.StatusCode)
	}

	var out generateResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return "", fmt.Errorf("decode response: %w", err)
	}
	if strings.TrimSpace(out.Reply) == "" {
		return "", fmt.Errorf("generate: empty reply")
	}
	return out.Reply, nil
}
