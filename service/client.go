package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"movieobserver/model"
)

const (
	DefaultBaseURL   = "http://localhost:8000"
	defaultUserAgent = "movieobserver/1.0"
	defaultTimeout   = 12 * time.Second
)

// Client wraps HTTP access to the MovieObserver showtimes API.
// Every call is an independent round trip: nothing is retried or cached.
type Client struct {
	httpClient *http.Client
	baseURL    string
	userAgent  string
}

// APIError is returned when the API responds with a non-2xx status.
type APIError struct {
	StatusCode int
	Status     string
	Endpoint   string
	Body       string
}

func (e *APIError) Error() string {
	if e == nil {
		return "movieobserver api error"
	}
	if e.Body == "" {
		return fmt.Sprintf("movieobserver api error: %s", e.Status)
	}
	return fmt.Sprintf("movieobserver api error: %s: %s", e.Status, e.Body)
}

// IsNotFound reports whether the error represents a 404 from the API.
func IsNotFound(err error) bool {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr.StatusCode == http.StatusNotFound
	}
	return false
}

// NewClient creates a new API client for baseURL. If httpClient is nil, a default client is used.
func NewClient(baseURL string, httpClient *http.Client) *Client {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: defaultTimeout}
	}
	baseURL = strings.TrimRight(strings.TrimSpace(baseURL), "/")
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return &Client{
		httpClient: httpClient,
		baseURL:    baseURL,
		userAgent:  defaultUserAgent,
	}
}

// BaseURL returns the API root the client talks to.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// MoviesEndpoint returns the URL listing movies for date. With originalOnly the
// server restricts the result to original language screenings.
func (c *Client) MoviesEndpoint(date time.Time, originalOnly bool) string {
	day := date.Format(time.DateOnly)
	if originalOnly {
		return fmt.Sprintf("%s/movies/original/%s", c.baseURL, day)
	}
	return fmt.Sprintf("%s/movies/%s", c.baseURL, day)
}

// GetMovies fetches the movies showing on the calendar date of date.
func (c *Client) GetMovies(ctx context.Context, date time.Time, originalOnly bool) ([]model.Movie, error) {
	var movies []model.Movie
	if err := c.getJSON(ctx, c.MoviesEndpoint(date, originalOnly), &movies); err != nil {
		return nil, err
	}
	return movies, nil
}

// GetTheaters returns every theater known to the API.
func (c *Client) GetTheaters(ctx context.Context) ([]model.Theater, error) {
	endpoint := fmt.Sprintf("%s/theaters", c.baseURL)

	var theaters []model.Theater
	if err := c.getJSON(ctx, endpoint, &theaters); err != nil {
		return nil, err
	}
	return theaters, nil
}

// GetTheater fetches a single theater by id.
func (c *Client) GetTheater(ctx context.Context, theaterID string) (model.Theater, error) {
	id := strings.TrimSpace(theaterID)
	if id == "" {
		return model.Theater{}, errors.New("theater id is required")
	}
	endpoint := fmt.Sprintf("%s/theaters/%s", c.baseURL, url.PathEscape(id))

	var theater model.Theater
	if err := c.getJSON(ctx, endpoint, &theater); err != nil {
		return model.Theater{}, err
	}
	return theater, nil
}

func (c *Client) getJSON(ctx context.Context, endpoint string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("User-Agent", c.userAgent)
	req.Header.Set("Accept", "application/json")

	res, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer res.Body.Close()

	if res.StatusCode < http.StatusOK || res.StatusCode >= http.StatusMultipleChoices {
		snippet, _ := io.ReadAll(io.LimitReader(res.Body, 8<<10))
		return &APIError{
			StatusCode: res.StatusCode,
			Status:     res.Status,
			Endpoint:   endpoint,
			Body:       strings.TrimSpace(string(snippet)),
		}
	}

	if err := json.NewDecoder(res.Body).Decode(out); err != nil {
		if errors.Is(err, io.EOF) {
			return nil
		}
		return fmt.Errorf("decode response from %s: %w", endpoint, err)
	}
	return nil
}
