// ABOUTME: NewsAPI search client issuing one uncached GET per topic.
// ABOUTME: Validates status and body shape, returning articles, an explicit empty result, or a typed failure.

package newsapi

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/harper/headlines/internal/config"
	"github.com/harper/headlines/internal/models"
)

const (
	MaxResponseSize = 10 * 1024 * 1024 // 10MB

	// error bodies only carry a short provider message
	maxErrorBodySize = 64 * 1024
)

// Result is the outcome of a successful search.
// Empty is set when the provider answered 2xx with no articles.
type Result struct {
	Articles []models.Article
	Empty    bool
}

// Options configures a Client. Zero values fall back to config defaults.
type Options struct {
	Endpoint   string
	APIKey     string
	HTTPClient *http.Client
}

// Client queries the NewsAPI "everything" endpoint.
type Client struct {
	endpoint   string
	apiKey     string
	httpClient *http.Client
}

// NewClient creates a Client from opts
func NewClient(opts Options) *Client {
	c := &Client{
		endpoint:   opts.Endpoint,
		apiKey:     opts.APIKey,
		httpClient: opts.HTTPClient,
	}
	if c.endpoint == "" {
		c.endpoint = config.DefaultEndpoint
	}
	if c.httpClient == nil {
		c.httpClient = &http.Client{Timeout: config.DefaultHTTPTimeout}
	}
	return c
}

// BuildURL returns the request URL for topic with the fixed query parameters.
func (c *Client) BuildURL(topic string) (string, error) {
	u, err := url.Parse(c.endpoint)
	if err != nil {
		return "", fmt.Errorf("invalid endpoint: %w", err)
	}

	q := u.Query()
	q.Set("q", topic)
	q.Set("language", config.QueryLanguage)
	q.Set("sortBy", config.QuerySortBy)
	q.Set("pageSize", strconv.Itoa(config.PageSize))
	q.Set("apiKey", c.apiKey)
	u.RawQuery = q.Encode()

	return u.String(), nil
}

// Search runs one query for topic.
// Non-2xx responses return *HTTPError, undecodable bodies *DecodeError.
// A well-formed response without articles returns Result{Empty: true}.
// Articles are returned unfiltered.
func (c *Client) Search(ctx context.Context, topic string) (*Result, error) {
	topic = strings.TrimSpace(topic)
	if topic == "" {
		return nil, ErrBlankInput
	}

	endpoint, err := c.BuildURL(topic)
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("Accept", "application/json")
	req.Header.Set("Cache-Control", "no-cache")
	req.Header.Set("Pragma", "no-cache")
	req.Header.Set("User-Agent", config.UserAgent)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch news: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, statusError(resp)
	}

	// Read response body with DoS protection (10MB limit)
	body, err := io.ReadAll(io.LimitReader(resp.Body, MaxResponseSize+1))
	if err != nil {
		return nil, fmt.Errorf("failed to read response body: %w", err)
	}

	if int64(len(body)) > MaxResponseSize {
		return nil, &DecodeError{Err: fmt.Errorf("response too large (exceeds %d bytes)", MaxResponseSize)}
	}

	var decoded models.Response
	if err := json.Unmarshal(body, &decoded); err != nil {
		return nil, &DecodeError{Err: err}
	}

	if len(decoded.Articles) == 0 {
		return &Result{Empty: true}, nil
	}

	return &Result{Articles: decoded.Articles}, nil
}

// statusError builds the HTTPError for a non-2xx response. The provider's
// message is read best-effort; a failed read still reports the status.
func statusError(resp *http.Response) *HTTPError {
	httpErr := &HTTPError{Status: resp.StatusCode}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxErrorBodySize))
	if err != nil && len(body) == 0 {
		return httpErr
	}
	var errBody models.Response
	if json.Unmarshal(body, &errBody) == nil {
		httpErr.Message = errBody.Message
	}
	return httpErr
}
