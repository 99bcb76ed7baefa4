// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package httputil provides the HTTP transport shared by the E-utilities
// clients.
package httputil

import (
	"context"
	"fmt"
	"net/url"

	"github.com/go-resty/resty/v2"

	"github.com/pdiddy/affilscan/pkg/types"
)

// Getter performs a GET and returns the body of a 2xx response. Callers
// depend on this interface so tests can substitute a fake transport.
type Getter interface {
	Get(ctx context.Context, rawURL string, params url.Values) ([]byte, error)
}

// StatusError reports a non-2xx response.
type StatusError struct {
	URL    string
	Code   int
	Status string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("GET %s returned HTTP %d", e.URL, e.Code)
}

// Client is a Getter backed by resty. Requests are sent one at a time; there
// is no retry or rate limiting.
type Client struct {
	client *resty.Client
}

// NewClient returns a Client honoring cfg's timeout and User-Agent.
func NewClient(cfg types.HTTPConfig) *Client {
	c := resty.New()
	if cfg.Timeout > 0 {
		c.SetTimeout(cfg.Timeout)
	}
	if cfg.UserAgent != "" {
		c.SetHeader("User-Agent", cfg.UserAgent)
	}
	return &Client{client: c}
}

// Get issues GET rawURL?params. A transport error or non-2xx status is
// returned as an error; the body is only returned on success.
func (c *Client) Get(ctx context.Context, rawURL string, params url.Values) ([]byte, error) {
	req := c.client.R().SetContext(ctx)
	if len(params) > 0 {
		req.SetQueryParamsFromValues(params)
	}
	resp, err := req.Get(rawURL)
	if err != nil {
		return nil, err
	}
	if !resp.IsSuccess() {
		return nil, &StatusError{URL: rawURL, Code: resp.StatusCode(), Status: resp.Status()}
	}
	return resp.Body(), nil
}
