package openalex

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"os"
	"strconv"
	"time"

	"golang.org/x/time/rate"
)

const (
	// BaseURL is the OpenAlex API base URL.
	BaseURL = "https://api.openalex.org"

	// DefaultTimeout is the default HTTP request timeout.
	DefaultTimeout = 30 * time.Second

	// RateLimit is 10 requests per second per OpenAlex documentation.
	RateLimit = 10.0

	// DefaultSearchLimit is the default number of search results.
	DefaultSearchLimit = 10

	// MaxSearchLimit is the per-page cap imposed by OpenAlex.
	MaxSearchLimit = 200
)

// Client is a rate-limited HTTP client for the OpenAlex API.
type Client struct {
	httpClient *http.Client
	limiter    *rate.Limiter
	baseURL    string
	mailto     string // joins the OpenAlex polite pool when set
	apiKey     string
}

// ClientOption configures a Client.
type ClientOption func(*Client)

// WithHTTPClient sets a custom HTTP client.
func WithHTTPClient(hc *http.Client) ClientOption {
	return func(c *Client) {
		c.httpClient = hc
	}
}

// WithBaseURL sets a custom base URL (for testing).
func WithBaseURL(u string) ClientOption {
	return func(c *Client) {
		c.baseURL = u
	}
}

// WithMailto sets the contact address sent with each request.
func WithMailto(mailto string) ClientOption {
	return func(c *Client) {
		c.mailto = mailto
	}
}

// WithAPIKey sets the API key for premium access.
func WithAPIKey(key string) ClientOption {
	return func(c *Client) {
		c.apiKey = key
	}
}

// NewClient creates a new OpenAlex API client.
func NewClient(opts ...ClientOption) *Client {
	c := &Client{
		httpClient: &http.Client{Timeout: DefaultTimeout},
		limiter:    rate.NewLimiter(rate.Limit(RateLimit), 1),
		baseURL:    BaseURL,
	}

	if mailto := os.Getenv("OPENALEX_MAILTO"); mailto != "" {
		c.mailto = mailto
	}
	if key := os.Getenv("OPENALEX_API_KEY"); key != "" {
		c.apiKey = key
	}

	for _, opt := range opts {
		opt(c)
	}

	return c
}

// SearchWorks searches for works by query. The search type selects the
// matched field: title (default, full-text relevance), author name, or DOI.
func (c *Client) SearchWorks(ctx context.Context, query string, searchType SearchType, limit int) ([]Work, error) {
	if limit <= 0 {
		limit = DefaultSearchLimit
	}
	if limit > MaxSearchLimit {
		limit = MaxSearchLimit
	}

	params := url.Values{}
	params.Set("per-page", strconv.Itoa(limit))

	switch searchType {
	case SearchByDOI:
		params.Set("filter", "doi:"+NormalizeDOI(query))
	case SearchByAuthor:
		params.Set("filter", "raw_author_name.search:"+query)
	default:
		params.Set("search", query)
	}

	var resp ListResponse
	if err := c.get(ctx, "/works", params, &resp); err != nil {
		return nil, err
	}
	return resp.Results, nil
}

// GetWorkByDOI looks up a single work by DOI. The DOI may carry the
// https://doi.org/ prefix; it is stripped before querying. Returns
// ErrNotFound when OpenAlex has no matching work.
func (c *Client) GetWorkByDOI(ctx context.Context, doi string) (*Work, error) {
	params := url.Values{}
	params.Set("filter", "doi:"+NormalizeDOI(doi))
	params.Set("per-page", "1")

	var resp ListResponse
	if err := c.get(ctx, "/works", params, &resp); err != nil {
		return nil, err
	}
	if len(resp.Results) == 0 {
		return nil, fmt.Errorf("%w: doi %s", ErrNotFound, doi)
	}
	return &resp.Results[0], nil
}

// get performs a rate-limited GET and decodes the JSON response.
func (c *Client) get(ctx context.Context, path string, params url.Values, out any) error {
	if err := c.limiter.Wait(ctx); err != nil {
		return fmt.Errorf("rate limiter: %w", err)
	}

	if c.mailto != "" {
		params.Set("mailto", c.mailto)
	}
	if c.apiKey != "" {
		params.Set("api_key", c.apiKey)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path+"?"+params.Encode(), nil)
	if err != nil {
		return fmt.Errorf("building request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("requesting %s: %w", path, err)
	}
	defer resp.Body.Close()

	if err := checkHTTPErrors(resp); err != nil {
		return err
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidResponse, err)
	}
	return nil
}

// checkHTTPErrors returns an error if the HTTP response indicates a problem.
func checkHTTPErrors(resp *http.Response) error {
	switch {
	case resp.StatusCode == 404:
		return ErrNotFound
	case resp.StatusCode == 429:
		return fmt.Errorf("%w: status %d", ErrRateLimited, resp.StatusCode)
	case resp.StatusCode >= 400:
		return &APIError{
			StatusCode: resp.StatusCode,
			Message:    fmt.Sprintf("HTTP %d", resp.StatusCode),
		}
	}
	return nil
}
