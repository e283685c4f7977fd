// Package backend is the thin client for the remote store API:
// plain request/response wrappers with no retries, caching or
// timeout overrides beyond the runtime default.
package backend

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/stitchkart/storefront/internal/core/port"
)

var (
	ErrNotFound         = errors.New("not found")
	ErrUnexpectedStatus = errors.New("unexpected response status")
)

var (
	_ port.CatalogGateway = (*Client)(nil)
	_ port.CartGateway    = (*Client)(nil)
	_ port.AuthGateway    = (*Client)(nil)
	_ port.OrdersGateway  = (*Client)(nil)
)

type Client struct {
	baseURL    string
	httpClient *http.Client
}

func New(baseURL string) Client {
	return Client{baseURL: baseURL, httpClient: &http.Client{}}
}

// do performs one request against the backend; reqBody and
// respBody may be nil. Non-2xx responses fail with the status
// wrapped around [ErrNotFound] or [ErrUnexpectedStatus].
func (c Client) do(
	ctx context.Context, method, path string, reqBody, respBody any,
) error {
	var br io.Reader
	if reqBody != nil {
		b, err := json.Marshal(reqBody)
		if err != nil {
			return err
		}
		br = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, br)
	if err != nil {
		return err
	}
	if reqBody != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return fmt.Errorf("%w: %s %s", ErrNotFound, method, path)
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return fmt.Errorf("%w: %d %s %s",
			ErrUnexpectedStatus, resp.StatusCode, method, path)
	}

	if respBody == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(respBody); err != nil {
		return err
	}
	return nil
}

func (c Client) get(ctx context.Context, path string, respBody any) error {
	return c.do(ctx, http.MethodGet, path, nil, respBody)
}
