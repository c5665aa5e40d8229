package sync

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"replog/internal/logging"
	"replog/internal/ports"
)

// Client is the synced key-value store: an HTTP client for the replog
// sync server. Consistency across devices is eventual, last writer wins;
// the gateway treats every call as best effort.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// NewClient creates a sync client for the given base URL
// (e.g. http://host:7878).
func NewClient(baseURL string) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{
			Timeout: 5 * time.Second,
		},
	}
}

// Get reads the synced slot. Returns ports.ErrKeyNotFound when the server
// has no value for the key.
func (c *Client) Get(ctx context.Context, key string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.keyURL(key), nil)
	if err != nil {
		return nil, err
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("sync get failed: %w", err)
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK:
		return io.ReadAll(resp.Body)
	case http.StatusNotFound:
		return nil, ports.ErrKeyNotFound
	default:
		return nil, fmt.Errorf("sync get failed: unexpected status %d", resp.StatusCode)
	}
}

// Set writes the synced slot and then triggers an explicit
// synchronization request. The trigger is fire-and-forget: its failure is
// logged but never propagated.
func (c *Client) Set(ctx context.Context, key string, value []byte) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodPut, c.keyURL(key), bytes.NewReader(value))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("sync put failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusNoContent && resp.StatusCode != http.StatusOK {
		return fmt.Errorf("sync put failed: unexpected status %d", resp.StatusCode)
	}

	c.triggerSync(ctx)
	return nil
}

// Close releases idle connections.
func (c *Client) Close() error {
	c.httpClient.CloseIdleConnections()
	return nil
}

func (c *Client) triggerSync(ctx context.Context) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/sync", nil)
	if err != nil {
		return
	}
	resp, err := c.httpClient.Do(req)
	if err != nil {
		logging.Logger.Debug("Sync trigger failed", "error", err)
		return
	}
	resp.Body.Close()
}

func (c *Client) keyURL(key string) string {
	return c.baseURL + "/kv/" + url.PathEscape(key)
}
