package supabase

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"
)

// DefaultTimeout bounds every request when the caller's context has no deadline
const DefaultTimeout = 15 * time.Second

// Client represents a Supabase PostgREST client
type Client struct {
	URL        string
	ServiceKey string
	HTTPClient *http.Client
}

// APIError is returned when PostgREST answers with a 4xx or 5xx status
type APIError struct {
	StatusCode int
	Body       string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("supabase error (status %d): %s", e.StatusCode, e.Body)
}

// NewClient creates a new Supabase client
func NewClient(baseURL, serviceKey string) *Client {
	return &Client{
		URL:        baseURL,
		ServiceKey: serviceKey,
		HTTPClient: &http.Client{Timeout: DefaultTimeout},
	}
}

// Query executes a filtered select on a table. Query values use PostgREST
// syntax, e.g. {"id": "eq.4", "order": "timestamp.desc"}.
func (c *Client) Query(ctx context.Context, table string, query map[string]interface{}) ([]byte, error) {
	return c.do(ctx, http.MethodGet, c.tableURL(table, query), nil, false)
}

// Insert inserts a record into a table and returns the stored rows
func (c *Client) Insert(ctx context.Context, table string, data interface{}) ([]byte, error) {
	return c.do(ctx, http.MethodPost, c.tableURL(table, nil), data, true)
}

// Update patches the record with the given id and returns the updated rows.
// An empty JSON array means nothing matched.
func (c *Client) Update(ctx context.Context, table string, id string, data interface{}) ([]byte, error) {
	return c.do(ctx, http.MethodPatch, c.tableURL(table, map[string]interface{}{"id": "eq." + id}), data, true)
}

// Delete removes the record with the given id and returns the deleted rows.
// An empty JSON array means nothing matched.
func (c *Client) Delete(ctx context.Context, table string, id string) ([]byte, error) {
	return c.do(ctx, http.MethodDelete, c.tableURL(table, map[string]interface{}{"id": "eq." + id}), nil, true)
}

func (c *Client) tableURL(table string, query map[string]interface{}) string {
	u := fmt.Sprintf("%s/rest/v1/%s", c.URL, table)
	if len(query) == 0 {
		return u
	}
	q := url.Values{}
	for key, value := range query {
		q.Add(key, fmt.Sprintf("%v", value))
	}
	return u + "?" + q.Encode()
}

func (c *Client) do(ctx context.Context, method, endpoint string, data interface{}, representation bool) ([]byte, error) {
	var body io.Reader
	if data != nil {
		jsonData, err := json.Marshal(data)
		if err != nil {
			return nil, fmt.Errorf("failed to encode request: %w", err)
		}
		body = bytes.NewReader(jsonData)
	}

	req, err := http.NewRequestWithContext(ctx, method, endpoint, body)
	if err != nil {
		return nil, err
	}

	req.Header.Set("apikey", c.ServiceKey)
	req.Header.Set("Authorization", fmt.Sprintf("Bearer %s", c.ServiceKey))
	if data != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if representation {
		req.Header.Set("Prefer", "return=representation")
	}

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}

	if resp.StatusCode >= 400 {
		return nil, &APIError{StatusCode: resp.StatusCode, Body: string(respBody)}
	}

	return respBody, nil
}
