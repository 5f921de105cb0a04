package partnerlinesdk

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

// Client is a minimal Partnerline HTTP API client.
type Client struct {
	BaseURL    string
	HTTPClient *http.Client
	Timeout    time.Duration
}

// New creates a client with sane defaults.
func New(baseURL string) *Client {
	return &Client{
		BaseURL: baseURL,
		Timeout: 10 * time.Second,
	}
}

// Counts is the per-kind record count snapshot.
type Counts struct {
	Projects         int `json:"projects"`
	SPIs             int `json:"spis"`
	Objectives       int `json:"objectives"`
	SitReps          int `json:"sitreps"`
	Fortune30        int `json:"fortune30"`
	InternalPartners int `json:"internal_partners"`
	SMEPartners      int `json:"sme_partners"`
	Initiatives      int `json:"initiatives"`
	Departments      int `json:"departments"`
}

// GenerateRequest is a partial quantity request; nil fields take the
// server's defaults.
type GenerateRequest struct {
	Projects         *int `json:"projects,omitempty"`
	SPIs             *int `json:"spis,omitempty"`
	Objectives       *int `json:"objectives,omitempty"`
	SitReps          *int `json:"sitreps,omitempty"`
	Fortune30        *int `json:"fortune30,omitempty"`
	InternalPartners *int `json:"internal_partners,omitempty"`
	SMEPartners      *int `json:"sme_partners,omitempty"`
}

// Notice reports a requested count capped at generator availability.
type Notice struct {
	Kind      string `json:"kind"`
	Requested int    `json:"requested"`
	Available int    `json:"available"`
}

// GenerateResult is the realized outcome of a generation run.
type GenerateResult struct {
	Realized struct {
		Projects         int `json:"projects"`
		SPIs             int `json:"spis"`
		Objectives       int `json:"objectives"`
		SitReps          int `json:"sitreps"`
		Fortune30        int `json:"fortune30"`
		InternalPartners int `json:"internal_partners"`
		SMEPartners      int `json:"sme_partners"`
	} `json:"realized"`
	Initiatives int      `json:"initiatives"`
	Departments int      `json:"departments"`
	Notices     []Notice `json:"notices,omitempty"`
}

// Event is an audit log entry.
type Event struct {
	ID         int64  `json:"id"`
	TS         string `json:"ts"`
	Type       string `json:"type"`
	EntityKind string `json:"entity_kind"`
	EntityID   string `json:"entity_id,omitempty"`
	Payload    string `json:"payload_json"`
}

// APIError wraps non-2xx responses.
type APIError struct {
	StatusCode int
	Body       string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("api error: status=%d body=%s", e.StatusCode, e.Body)
}

// Counts returns the per-kind record counts.
func (c *Client) Counts(ctx context.Context) (Counts, error) {
	var resp Counts
	err := c.do(ctx, http.MethodGet, "v0/counts", nil, &resp)
	return resp, err
}

// Generate runs sample data generation with the given quantities.
func (c *Client) Generate(ctx context.Context, req GenerateRequest) (GenerateResult, error) {
	var resp GenerateResult
	err := c.do(ctx, http.MethodPost, "v0/sample/generate", req, &resp)
	return resp, err
}

// Clear destroys every collection and re-initializes the store.
func (c *Client) Clear(ctx context.Context) error {
	return c.do(ctx, http.MethodPost, "v0/data/clear", map[string]any{}, nil)
}

// Export returns the full data snapshot as raw JSON.
func (c *Client) Export(ctx context.Context) (json.RawMessage, error) {
	var resp json.RawMessage
	err := c.do(ctx, http.MethodGet, "v0/data/export", nil, &resp)
	return resp, err
}

// Events returns recent audit events, newest first.
func (c *Client) Events(ctx context.Context, limit int) ([]Event, error) {
	endpoint := "v0/events"
	if limit > 0 {
		endpoint = fmt.Sprintf("%s?limit=%d", endpoint, limit)
	}
	var resp []Event
	err := c.do(ctx, http.MethodGet, endpoint, nil, &resp)
	return resp, err
}

// List fetches every record of one collection into out, which must be a
// pointer to a slice of the caller's record model.
func (c *Client) List(ctx context.Context, collection string, out any) error {
	endpoint := "v0/" + url.PathEscape(collection)
	return c.do(ctx, http.MethodGet, endpoint, nil, out)
}

// Get fetches one record of a collection into out.
func (c *Client) Get(ctx context.Context, collection, id string, out any) error {
	endpoint := fmt.Sprintf("v0/%s/%s", url.PathEscape(collection), url.PathEscape(id))
	return c.do(ctx, http.MethodGet, endpoint, nil, out)
}

func (c *Client) do(ctx context.Context, method, endpoint string, body any, out any) error {
	if c.HTTPClient == nil {
		c.HTTPClient = &http.Client{Timeout: c.Timeout}
	}
	url := c.base() + "/" + strings.TrimLeft(endpoint, "/")
	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			return err
		}
	}
	req, err := http.NewRequestWithContext(ctx, method, url, &buf)
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	if resp.StatusCode >= 300 {
		b, _ := io.ReadAll(resp.Body)
		return &APIError{StatusCode: resp.StatusCode, Body: string(b)}
	}
	if out != nil {
		return json.NewDecoder(resp.Body).Decode(out)
	}
	return nil
}

func (c *Client) base() string {
	return strings.TrimRight(c.BaseURL, "/")
}
