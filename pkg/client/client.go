// Package client implements the JSON-over-HTTP clients for the source and
// target administrative systems.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/BartekS5/VCM/pkg/models"
)

// pageSize is the batch size used when draining paginated list endpoints.
const pageSize = 100

// rest is the shared HTTP core for both clients: bearer token auth, JSON
// bodies, sentinel error mapping.
type rest struct {
	httpClient  *http.Client
	baseURL     string
	token       string
	adminDomain string
}

func (c *rest) do(ctx context.Context, method, path string, body, out interface{}) error {
	var reqBody io.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to encode request body: %w", err)
		}
		reqBody = bytes.NewReader(encoded)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reqBody)
	if err != nil {
		return fmt.Errorf("failed to build request %s %s: %w", method, path, err)
	}
	req.Header.Set("Authorization", "Bearer "+c.token)
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.adminDomain != "" {
		req.Header.Set("X-Admin-Domain", c.adminDomain)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("request %s %s failed: %w", method, path, err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusNotFound:
		return fmt.Errorf("%s %s: %w", method, path, models.ErrNotFound)
	case resp.StatusCode == http.StatusConflict:
		return fmt.Errorf("%s %s: %w", method, path, models.ErrConflict)
	case resp.StatusCode >= 400:
		detail, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return fmt.Errorf("%s %s: unexpected status %d: %s", method, path, resp.StatusCode, detail)
	}

	if out != nil {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return fmt.Errorf("failed to decode response of %s %s: %w", method, path, err)
		}
	}
	return nil
}

func (c *rest) get(ctx context.Context, path string, out interface{}) error {
	return c.do(ctx, http.MethodGet, path, nil, out)
}

// listPaged drains a paginated list endpoint with offset/limit parameters
// until a short page signals the end.
func listPaged[T any](ctx context.Context, c *rest, path string) ([]T, error) {
	var all []T
	for offset := 0; ; {
		var page struct {
			Items []T `json:"items"`
		}
		url := fmt.Sprintf("%s?offset=%d&limit=%d", path, offset, pageSize)
		if err := c.get(ctx, url, &page); err != nil {
			return nil, err
		}
		all = append(all, page.Items...)
		if len(page.Items) < pageSize {
			return all, nil
		}
		offset += len(page.Items)
	}
}
