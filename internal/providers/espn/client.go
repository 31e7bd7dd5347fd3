package espn

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"matchday-graphics/internal/domain"
	"matchday-graphics/internal/timeutil"
)

// Config controls how the client reaches the public scoreboard API.
type Config struct {
	BaseURL    string
	HTTPClient *http.Client
	Timeout    time.Duration
}

// Client fetches league scoreboards and maps them to domain games.
type Client struct {
	baseURL    string
	httpClient httpDoer
	now        func() time.Time
}

// NewClient constructs a scoreboard client with the provided configuration.
func NewClient(cfg Config) *Client {
	return &Client{
		baseURL:    normalizeBaseURL(cfg.BaseURL),
		httpClient: resolveHTTPClient(cfg.HTTPClient, cfg.Timeout),
		now:        time.Now,
	}
}

// FetchSchedule retrieves one league's scoreboard for a YYYYMMDD date.
func (c *Client) FetchSchedule(ctx context.Context, league domain.League, date string) ([]domain.Game, error) {
	req, err := c.buildRequest(ctx, league, date)
	if err != nil {
		return nil, err
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return nil, fmt.Errorf("espn: unexpected status %d: %s", resp.StatusCode, strings.TrimSpace(string(body)))
	}

	var payload scoreboardResponse
	if decodeErr := json.NewDecoder(resp.Body).Decode(&payload); decodeErr != nil {
		return nil, fmt.Errorf("espn: decode scoreboard: %w", decodeErr)
	}

	return mapScoreboard(league, payload), nil
}

func (c *Client) buildRequest(ctx context.Context, league domain.League, date string) (*http.Request, error) {
	url := fmt.Sprintf("%s/%s/%s/scoreboard", c.baseURL, league.Sport, league.Slug)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}

	q := req.URL.Query()
	q.Set("dates", c.resolveDate(date))
	req.URL.RawQuery = q.Encode()

	return req, nil
}

func (c *Client) resolveDate(date string) string {
	if date != "" {
		if _, err := time.Parse(timeutil.ScheduleDateLayout, date); err == nil {
			return date
		}
	}
	return c.now().UTC().Format(timeutil.ScheduleDateLayout)
}
