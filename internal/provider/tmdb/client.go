package tmdb

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/jsutton/marquee/internal/domain"
)

const (
	defaultTimeout = 15 * time.Second
	userAgent      = "Marquee/1.0"
)

// Client implements domain.Provider for The Movie Database.
// Authentication is a static api_key query parameter on every request.
type Client struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
	logger     *slog.Logger
}

// NewClient creates a new TMDB API client.
func NewClient(baseURL, apiKey string, logger *slog.Logger) *Client {
	if logger == nil {
		logger = slog.Default()
	}
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		apiKey:  apiKey,
		httpClient: &http.Client{
			Timeout: defaultTimeout,
		},
		logger: logger,
	}
}

// doRequest performs an authenticated GET and returns the raw body.
// Failures are classified into domain error kinds for the given op.
func (c *Client) doRequest(ctx context.Context, op, path string, query url.Values) ([]byte, error) {
	if query == nil {
		query = url.Values{}
	}
	query.Set("api_key", c.apiKey)
	reqURL := fmt.Sprintf("%s%s?%s", c.baseURL, path, query.Encode())

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", userAgent)

	c.logger.Debug("tmdb request", "op", op, "path", path)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Error("tmdb request failed", "op", op, "error", err)
		return nil, domain.NewOpError(op, domain.ErrKindUnreachable, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, domain.NewOpError(op, domain.ErrKindUnreachable, err)
	}

	if resp.StatusCode == http.StatusUnauthorized {
		return nil, domain.NewOpError(op, domain.ErrKindAuth, statusError(resp.StatusCode, body))
	}
	if resp.StatusCode != http.StatusOK {
		c.logger.Error("tmdb request error", "op", op, "status", resp.StatusCode)
		return nil, domain.NewOpError(op, domain.ErrKindProviderStatus, statusError(resp.StatusCode, body))
	}

	return body, nil
}

// statusError extracts the provider's status_message when present.
func statusError(code int, body []byte) error {
	var status statusResponse
	if err := json.Unmarshal(body, &status); err == nil && status.StatusMessage != "" {
		return fmt.Errorf("status %d: %s", code, status.StatusMessage)
	}
	return fmt.Errorf("unexpected status code: %d", code)
}

// Trending returns the current weekly trending movies.
func (c *Client) Trending(ctx context.Context) ([]domain.MovieSummary, error) {
	const op = "trending"

	body, err := c.doRequest(ctx, op, "/trending/movie/week", nil)
	if err != nil {
		return nil, err
	}

	var resp listResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		c.logger.Error("tmdb parse error", "op", op, "error", err)
		return nil, domain.NewOpError(op, domain.ErrKindDecode, err)
	}

	return mapSummaries(resp.Results), nil
}

// SearchMovies returns movies matching the given title query.
func (c *Client) SearchMovies(ctx context.Context, query string) ([]domain.MovieSummary, error) {
	const op = "search"

	q := url.Values{}
	q.Set("query", query)
	q.Set("include_adult", "false")

	body, err := c.doRequest(ctx, op, "/search/movie", q)
	if err != nil {
		return nil, err
	}

	var resp listResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		c.logger.Error("tmdb parse error", "op", op, "error", err)
		return nil, domain.NewOpError(op, domain.ErrKindDecode, err)
	}

	return mapSummaries(resp.Results), nil
}

// MovieDetail returns the full record for one movie, with videos and
// credits appended in a single request.
func (c *Client) MovieDetail(ctx context.Context, id int) (*domain.MovieDetail, error) {
	const op = "detail"

	q := url.Values{}
	q.Set("append_to_response", "videos,credits")

	body, err := c.doRequest(ctx, op, "/movie/"+strconv.Itoa(id), q)
	if err != nil {
		return nil, err
	}

	var resp detailResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		c.logger.Error("tmdb parse error", "op", op, "error", err)
		return nil, domain.NewOpError(op, domain.ErrKindDecode, err)
	}

	detail := mapDetail(resp)
	return &detail, nil
}
