package tmdb

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"
)

const defaultBaseURL = "https://api.themoviedb.org"

// Sentinel errors for TMDB API responses.
var (
	ErrNotFound     = errors.New("not found")
	ErrUnauthorized = errors.New("unauthorized: invalid API key")
	ErrRateLimited  = errors.New("rate limited: too many requests")
)

// Client is a TMDB API client.
type Client struct {
	apiKey     string
	baseURL    string
	language   string
	httpClient *http.Client
}

// Option configures a Client.
type Option func(*Client)

// WithBaseURL sets a custom base URL (for testing).
func WithBaseURL(url string) Option {
	return func(c *Client) {
		c.baseURL = strings.TrimRight(url, "/")
	}
}

// WithHTTPClient sets a custom HTTP client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		if hc != nil {
			c.httpClient = hc
		}
	}
}

// WithLanguage sets the response language, e.g. "en-US".
func WithLanguage(lang string) Option {
	return func(c *Client) {
		c.language = strings.TrimSpace(lang)
	}
}

// NewClient creates a new TMDB client.
func NewClient(apiKey string, opts ...Option) *Client {
	c := &Client{
		apiKey:  apiKey,
		baseURL: defaultBaseURL,
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// SearchMovie searches movies by title. A non-zero year narrows the search.
func (c *Client) SearchMovie(ctx context.Context, query string, year int) ([]MovieResult, error) {
	params := url.Values{"query": {query}}
	if year > 0 {
		params.Set("year", strconv.Itoa(year))
	}
	var resp movieSearchResponse
	if err := c.get(ctx, "/3/search/movie", params, &resp); err != nil {
		return nil, err
	}
	return resp.Results, nil
}

// SearchTV searches TV series by name.
func (c *Client) SearchTV(ctx context.Context, query string) ([]TVResult, error) {
	var resp tvSearchResponse
	if err := c.get(ctx, "/3/search/tv", url.Values{"query": {query}}, &resp); err != nil {
		return nil, err
	}
	return resp.Results, nil
}

// GetMovie fetches movie metadata by TMDB ID with credits and images.
func (c *Client) GetMovie(ctx context.Context, tmdbID int64) (*Movie, error) {
	var movie Movie
	params := url.Values{"append_to_response": {"credits,images"}}
	if err := c.get(ctx, fmt.Sprintf("/3/movie/%d", tmdbID), params, &movie); err != nil {
		return nil, err
	}
	return &movie, nil
}

// GetTV fetches series metadata by TMDB ID with images.
func (c *Client) GetTV(ctx context.Context, tmdbID int64) (*TV, error) {
	var tv TV
	params := url.Values{"append_to_response": {"images"}}
	if err := c.get(ctx, fmt.Sprintf("/3/tv/%d", tmdbID), params, &tv); err != nil {
		return nil, err
	}
	return &tv, nil
}

// GetSeason fetches a season and its episode list.
func (c *Client) GetSeason(ctx context.Context, tmdbID int64, season int) (*Season, error) {
	var s Season
	if err := c.get(ctx, fmt.Sprintf("/3/tv/%d/season/%d", tmdbID, season), nil, &s); err != nil {
		return nil, err
	}
	return &s, nil
}

// GetEpisodeCredits fetches the cast of a single episode.
func (c *Client) GetEpisodeCredits(ctx context.Context, tmdbID int64, season, episode int) (*Credits, error) {
	var credits Credits
	endpoint := fmt.Sprintf("/3/tv/%d/season/%d/episode/%d/credits", tmdbID, season, episode)
	if err := c.get(ctx, endpoint, nil, &credits); err != nil {
		return nil, err
	}
	return &credits, nil
}

func (c *Client) get(ctx context.Context, path string, params url.Values, v any) error {
	if params == nil {
		params = url.Values{}
	}
	params.Set("api_key", c.apiKey)
	if c.language != "" {
		params.Set("language", c.language)
	}
	u := c.baseURL + path + "?" + params.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("execute request: %w", err)
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK:
	case http.StatusNotFound:
		return fmt.Errorf("%s: %w", path, ErrNotFound)
	case http.StatusUnauthorized:
		return ErrUnauthorized
	case http.StatusTooManyRequests:
		return ErrRateLimited
	default:
		return fmt.Errorf("TMDB API error: %s", resp.Status)
	}

	if err := json.NewDecoder(resp.Body).Decode(v); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}
