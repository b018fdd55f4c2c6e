// Package sanity reads from the headless content store over its HTTP query
// API. It never writes.
package sanity

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

type Config struct {
	ProjectID  string
	Dataset    string
	APIVersion string
	Token      string
	UseCDN     bool
}

type Client struct {
	cfg     Config
	baseURL string
	http    *http.Client
}

type Option func(*Client)

func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.http = hc }
}

// WithBaseURL replaces https://{project}.api[cdn].sanity.io.
func WithBaseURL(u string) Option {
	return func(c *Client) { c.baseURL = strings.TrimRight(u, "/") }
}

func New(cfg Config, opts ...Option) (*Client, error) {
	if cfg.ProjectID == "" || cfg.Dataset == "" {
		return nil, fmt.Errorf("sanity: project id and dataset are required")
	}
	if cfg.APIVersion == "" {
		cfg.APIVersion = "2024-01-01"
	}
	host := "api"
	if cfg.UseCDN {
		host = "apicdn"
	}
	c := &Client{
		cfg:     cfg,
		baseURL: fmt.Sprintf("https://%s.%s.sanity.io", cfg.ProjectID, host),
		http:    &http.Client{Timeout: 10 * time.Second},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

// HTTPError is a non-2xx answer from the query API.
type HTTPError struct {
	Status  int
	Message string
}

func (e *HTTPError) Error() string {
	return fmt.Sprintf("sanity: status %d: %s", e.Status, e.Message)
}

type queryResponse struct {
	Result json.RawMessage `json:"result"`
	Error  *struct {
		Description string `json:"description"`
	} `json:"error,omitempty"`
}

// Query runs a GROQ query and returns the raw "result" member, which is the
// JSON literal null when nothing matched.
func (c *Client) Query(ctx context.Context, query string, params map[string]any) (json.RawMessage, error) {
	u, err := c.queryURL(query, params)
	if err != nil {
		return nil, err
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, fmt.Errorf("sanity: build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if c.cfg.Token != "" {
		req.Header.Set("Authorization", "Bearer "+c.cfg.Token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("sanity: query: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, 16<<20))
	if err != nil {
		return nil, fmt.Errorf("sanity: read response: %w", err)
	}

	var out queryResponse
	decodeErr := json.Unmarshal(body, &out)

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		msg := strings.TrimSpace(string(body))
		if decodeErr == nil && out.Error != nil && out.Error.Description != "" {
			msg = out.Error.Description
		}
		if len(msg) > 512 {
			msg = msg[:512]
		}
		return nil, &HTTPError{Status: resp.StatusCode, Message: msg}
	}
	if decodeErr != nil {
		return nil, fmt.Errorf("sanity: decode response: %w", decodeErr)
	}
	if len(bytes.TrimSpace(out.Result)) == 0 {
		return json.RawMessage("null"), nil
	}
	return out.Result, nil
}

func (c *Client) queryURL(query string, params map[string]any) (string, error) {
	q := url.Values{}
	q.Set("query", query)
	for name, v := range params {
		raw, err := json.Marshal(v)
		if err != nil {
			return "", fmt.Errorf("sanity: encode param %s: %w", name, err)
		}
		q.Set("$"+name, string(raw))
	}
	return fmt.Sprintf("%s/v%s/data/query/%s?%s",
		c.baseURL, c.cfg.APIVersion, url.PathEscape(c.cfg.Dataset), q.Encode()), nil
}
