package tvdb

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"sync"
	"time"
)

const defaultBaseURL = "https://api4.thetvdb.com/v4"

// maxEpisodePages bounds pagination against a misbehaving server.
const maxEpisodePages = 100

// Sentinel errors for TVDB API responses.
var (
	ErrNotFound     = errors.New("series not found")
	ErrUnauthorized = errors.New("unauthorized: invalid or expired API key")
	ErrRateLimited  = errors.New("rate limited: too many requests")
)

// Client is a TVDB API v4 client with JWT authentication.
type Client struct {
	apiKey     string
	baseURL    string
	httpClient *http.Client
	log        *slog.Logger

	mu    sync.RWMutex
	token string
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
		c.httpClient = hc
	}
}

// WithLogger sets a logger for debug output.
func WithLogger(log *slog.Logger) Option {
	return func(c *Client) {
		c.log = log.With("component", "tvdb")
	}
}

// New creates a new TVDB API v4 client.
func New(apiKey string, opts ...Option) *Client {
	c := &Client{
		apiKey:  apiKey,
		baseURL: defaultBaseURL,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
		log: slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// login exchanges the API key for a JWT.
func (c *Client) login(ctx context.Context) error {
	body, err := json.Marshal(map[string]string{"apikey": c.apiKey})
	if err != nil {
		return fmt.Errorf("marshal login body: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/login", bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("create login request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("execute login request: %w", err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusUnauthorized:
		return ErrUnauthorized
	case resp.StatusCode != http.StatusOK:
		return fmt.Errorf("login failed: %s", resp.Status)
	}

	var lr loginResponse
	if err := json.NewDecoder(resp.Body).Decode(&lr); err != nil {
		return fmt.Errorf("decode login response: %w", err)
	}
	if lr.Data.Token == "" {
		return errors.New("login response missing token")
	}

	c.mu.Lock()
	c.token = lr.Data.Token
	c.mu.Unlock()

	c.log.Debug("authenticated with TVDB")
	return nil
}

func (c *Client) currentToken() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.token
}

// send performs an authenticated GET, logging in first if needed and
// refreshing the token once on 401.
func (c *Client) send(ctx context.Context, endpoint string) (*http.Response, error) {
	if c.currentToken() == "" {
		if err := c.login(ctx); err != nil {
			return nil, err
		}
	}

	resp, err := c.sendOnce(ctx, endpoint)
	if err != nil || resp.StatusCode != http.StatusUnauthorized {
		return resp, err
	}
	resp.Body.Close()

	c.log.Debug("token expired, refreshing")
	c.mu.Lock()
	c.token = ""
	c.mu.Unlock()

	if err := c.login(ctx); err != nil {
		return nil, err
	}
	return c.sendOnce(ctx, endpoint)
}

func (c *Client) sendOnce(ctx context.Context, endpoint string) (*http.Response, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.currentToken())
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("execute request: %w", err)
	}
	return resp, nil
}

// getJSON fetches endpoint and decodes the body into v.
func (c *Client) getJSON(ctx context.Context, endpoint string, v any) error {
	resp, err := c.send(ctx, endpoint)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if err := checkResponse(resp); err != nil {
		return err
	}
	if err := json.NewDecoder(resp.Body).Decode(v); err != nil {
		return fmt.Errorf("decode %s: %w", endpoint, err)
	}
	return nil
}

// Search searches for series by name.
func (c *Client) Search(ctx context.Context, query string) ([]SearchResult, error) {
	start := time.Now()

	var sr searchResponse
	endpoint := "/search?query=" + url.QueryEscape(query) + "&type=series"
	if err := c.getJSON(ctx, endpoint, &sr); err != nil {
		return nil, err
	}

	results := make([]SearchResult, 0, len(sr.Data))
	for _, item := range sr.Data {
		year, _ := strconv.Atoi(item.Year)
		results = append(results, SearchResult{
			ID:       searchItemID(item),
			Name:     item.Name,
			Year:     year,
			Status:   item.Status,
			Overview: item.Overview,
			Network:  item.Network,
		})
	}

	c.log.Debug("search completed", "query", query, "results", len(results), "duration_ms", time.Since(start).Milliseconds())
	return results, nil
}

// searchItemID prefers tvdb_id and falls back to an objectID of the form
// "series-12345".
func searchItemID(item searchItem) int {
	if id, err := strconv.Atoi(item.TVDBID); err == nil && id != 0 {
		return id
	}
	if rest, ok := strings.CutPrefix(item.ObjectID, "series-"); ok {
		id, _ := strconv.Atoi(rest)
		return id
	}
	return 0
}

// GetSeries fetches the extended series record: genres, artworks, and the
// official season list.
func (c *Client) GetSeries(ctx context.Context, id int) (*Series, error) {
	start := time.Now()

	var er extendedSeriesResponse
	if err := c.getJSON(ctx, fmt.Sprintf("/series/%d/extended", id), &er); err != nil {
		if errors.Is(err, ErrNotFound) {
			c.log.Debug("series not found", "id", id)
		}
		return nil, err
	}

	d := er.Data
	series := &Series{
		ID:       d.ID,
		Name:     d.Name,
		Status:   d.Status.Name,
		Overview: d.Overview,
	}
	if len(d.FirstAired) >= 4 {
		series.Year, _ = strconv.Atoi(d.FirstAired[:4])
	}
	for _, g := range d.Genres {
		series.Genres = append(series.Genres, g.Name)
	}
	for _, a := range d.Artworks {
		series.Artworks = append(series.Artworks, Artwork{Image: a.Image, Type: a.Type})
	}
	for _, s := range d.Seasons {
		// Alternate orderings (dvd, absolute) reuse season numbers.
		if s.Type.Type != "" && s.Type.Type != "official" {
			continue
		}
		series.Seasons = append(series.Seasons, Season{ID: s.ID, Number: s.Number, Image: s.Image})
	}

	c.log.Debug("fetched series", "id", id, "name", series.Name, "seasons", len(series.Seasons), "duration_ms", time.Since(start).Milliseconds())
	return series, nil
}

// GetEpisodes fetches all episodes for a series in default order,
// following pagination.
func (c *Client) GetEpisodes(ctx context.Context, seriesID int) ([]Episode, error) {
	start := time.Now()

	var episodes []Episode
	page := 0
	for ; page < maxEpisodePages; page++ {
		var er episodesResponse
		endpoint := fmt.Sprintf("/series/%d/episodes/default?page=%d", seriesID, page)
		if err := c.getJSON(ctx, endpoint, &er); err != nil {
			return nil, err
		}

		for _, ep := range er.Data.Episodes {
			var aired time.Time
			if ep.Aired != "" {
				aired, _ = time.Parse(time.DateOnly, ep.Aired)
			}
			episodes = append(episodes, Episode{
				ID:       ep.ID,
				Season:   ep.SeasonNumber,
				Episode:  ep.Number,
				Name:     ep.Name,
				Overview: ep.Overview,
				AirDate:  aired,
				Runtime:  ep.Runtime,
				Image:    ep.Image,
			})
		}

		if er.Links.Next == "" {
			break
		}
	}
	if page == maxEpisodePages {
		c.log.Warn("hit pagination limit", "series_id", seriesID, "pages", page)
	}

	c.log.Debug("fetched episodes", "series_id", seriesID, "count", len(episodes), "duration_ms", time.Since(start).Milliseconds())
	return episodes, nil
}

func checkResponse(resp *http.Response) error {
	switch resp.StatusCode {
	case http.StatusOK:
		return nil
	case http.StatusNotFound:
		return ErrNotFound
	case http.StatusUnauthorized:
		return ErrUnauthorized
	case http.StatusTooManyRequests:
		return ErrRateLimited
	default:
		return fmt.Errorf("TVDB API error: %s", resp.Status)
	}
}
