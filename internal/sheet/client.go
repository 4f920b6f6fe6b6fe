package sheet

import (
	"context"
	"fmt"
	"io"
	"net/http"
)

// Client fetches published CSV sheets over HTTP.
type Client struct {
	httpClient *http.Client
}

// NewClient creates a sheet client. A nil httpClient uses
// http.DefaultClient.
func NewClient(httpClient *http.Client) *Client {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	return &Client{httpClient: httpClient}
}

// FetchRows downloads the CSV at url and returns its data rows with the
// header row already discarded.
func (c *Client) FetchRows(ctx context.Context, url string) ([][]string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("building sheet request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetching sheet: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("fetching sheet: unexpected status %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("reading sheet body: %w", err)
	}

	return ParseRows(string(body)), nil
}
