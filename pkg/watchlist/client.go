package watchlist

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

	"github.com/podwatch/watchlist-api/pkg/errors"
)

// ClientConfig holds configuration for the watchlist API client
type ClientConfig struct {
	// BaseURL is the server root, e.g. "http://localhost:3005"
	BaseURL string

	// Timeout for each request. Default: 10s
	Timeout time.Duration

	// HTTPClient overrides the default client (for testing)
	HTTPClient *http.Client
}

// Client talks to the watchlist REST API
type Client struct {
	httpClient *http.Client
	baseURL    string
}

// NewClient creates a watchlist API client
func NewClient(cfg ClientConfig) *Client {
	if cfg.Timeout == 0 {
		cfg.Timeout = 10 * time.Second
	}
	if cfg.BaseURL == "" {
		cfg.BaseURL = "http://localhost:3005"
	}

	httpClient := cfg.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: cfg.Timeout}
	}

	return &Client{
		httpClient: httpClient,
		baseURL:    strings.TrimSuffix(cfg.BaseURL, "/"),
	}
}

// ListPodcasts fetches the watchlist, optionally narrowed by the query
func (c *Client) ListPodcasts(ctx context.Context, query ListQuery) ([]Podcast, error) {
	params := url.Values{}
	if query.Search != "" {
		params.Set("search", query.Search)
	}
	if query.Category != "" {
		params.Set("category", query.Category)
	}
	if query.Sort != "" {
		params.Set("sort", query.Sort)
	}
	if len(query.Fields) > 0 {
		params.Set("fields", strings.Join(query.Fields, ","))
	}

	path := "/api/v1/podcasts"
	if encoded := params.Encode(); encoded != "" {
		path += "?" + encoded
	}

	var envelope listEnvelope
	if err := c.do(ctx, http.MethodGet, path, nil, http.StatusOK, &envelope); err != nil {
		return nil, err
	}
	return envelope.Data.Podcasts, nil
}

// GetPodcast fetches a single entry by ID
func (c *Client) GetPodcast(ctx context.Context, id uint) (*Podcast, error) {
	var envelope singleEnvelope
	path := fmt.Sprintf("/api/v1/podcasts/%d", id)
	if err := c.do(ctx, http.MethodGet, path, nil, http.StatusOK, &envelope); err != nil {
		return nil, err
	}
	return envelope.Data.Podcast, nil
}

// TopRated fetches the highest rated entries
func (c *Client) TopRated(ctx context.Context) ([]Podcast, error) {
	var envelope listEnvelope
	if err := c.do(ctx, http.MethodGet, "/api/v1/podcasts/top-rated", nil, http.StatusOK, &envelope); err != nil {
		return nil, err
	}
	return envelope.Data.Podcasts, nil
}

// CategoryStats fetches the per-category rating aggregation
func (c *Client) CategoryStats(ctx context.Context) ([]CategoryStat, error) {
	var envelope statsEnvelope
	if err := c.do(ctx, http.MethodGet, "/api/v1/podcasts/stats", nil, http.StatusOK, &envelope); err != nil {
		return nil, err
	}
	return envelope.Data.Stats, nil
}

// CreatePodcast adds a watchlist entry
func (c *Client) CreatePodcast(ctx context.Context, req CreateRequest) (*Podcast, error) {
	var envelope singleEnvelope
	if err := c.do(ctx, http.MethodPost, "/api/v1/podcasts", req, http.StatusCreated, &envelope); err != nil {
		return nil, err
	}
	return envelope.Data.Podcast, nil
}

// UpdatePodcast applies a PIN-gated partial update
func (c *Client) UpdatePodcast(ctx context.Context, id uint, req UpdateRequest) (*Podcast, error) {
	var envelope singleEnvelope
	path := fmt.Sprintf("/api/v1/podcasts/%d", id)
	if err := c.do(ctx, http.MethodPatch, path, req, http.StatusOK, &envelope); err != nil {
		return nil, err
	}
	return envelope.Data.Podcast, nil
}

// DeletePodcast removes an entry, authorized by its PIN
func (c *Client) DeletePodcast(ctx context.Context, id uint, pin string) error {
	path := fmt.Sprintf("/api/v1/podcasts/%d", id)
	body := map[string]string{"pin": pin}
	return c.do(ctx, http.MethodDelete, path, body, http.StatusNoContent, nil)
}

// do performs one request and decodes either the expected envelope or the
// server's uniform error payload.
func (c *Client) do(ctx context.Context, method, path string, body interface{}, wantStatus int, out interface{}) error {
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return errors.Wrap(err, errors.ErrCodeInternal, "encoding request body")
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return errors.Wrap(err, errors.ErrCodeInternal, "creating request")
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return errors.Transport(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != wantStatus {
		return decodeError(resp)
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return errors.Wrap(err, errors.ErrCodeTransport, "decoding response")
	}
	return nil
}

// decodeError turns the uniform error payload back into an AppError with
// the code implied by the HTTP status.
func decodeError(resp *http.Response) error {
	var envelope errorEnvelope
	message := "Something went wrong!"
	if err := json.NewDecoder(resp.Body).Decode(&envelope); err == nil && envelope.Message != "" {
		message = envelope.Message
	}

	var code errors.ErrorCode
	switch resp.StatusCode {
	case http.StatusBadRequest:
		code = errors.ErrCodeValidation
	case http.StatusForbidden:
		code = errors.ErrCodeForbidden
	case http.StatusNotFound:
		code = errors.ErrCodeNotFound
	case http.StatusTooManyRequests:
		code = errors.ErrCodeTransport
	default:
		code = errors.ErrCodeInternal
	}

	return errors.New(code, message)
}
