// Package mlb reads the daily schedule from the public MLB Stats API.
package mlb

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/sony/gobreaker/v2"

	"github.com/couchcryptid/ballpark-weather/internal/domain"
	"github.com/couchcryptid/ballpark-weather/internal/observability"
)

// DefaultBaseURL is the Stats API root.
const DefaultBaseURL = "https://statsapi.mlb.com/api/v1"

// ErrUpstream is returned for any non-200 schedule response.
var ErrUpstream = errors.New("mlb: upstream error")

// Client implements domain.ScheduleSource.
type Client struct {
	httpClient *http.Client
	baseURL    string
	breaker    *gobreaker.CircuitBreaker[[]domain.Game]
	metrics    *observability.Metrics
	logger     *slog.Logger
}

// NewClient creates a schedule client.
func NewClient(baseURL string, timeout time.Duration, metrics *observability.Metrics, logger *slog.Logger) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return &Client{
		httpClient: &http.Client{Timeout: timeout},
		baseURL:    strings.TrimRight(baseURL, "/"),
		breaker: gobreaker.NewCircuitBreaker[[]domain.Game](gobreaker.Settings{
			Name:        "mlb-schedule",
			MaxRequests: 1,
			Interval:    60 * time.Second,
			Timeout:     30 * time.Second,
			ReadyToTrip: func(counts gobreaker.Counts) bool {
				return counts.ConsecutiveFailures > 5
			},
		}),
		metrics: metrics,
		logger:  logger,
	}
}

// Games returns the MLB games scheduled on date's calendar day.
func (c *Client) Games(ctx context.Context, date time.Time) ([]domain.Game, error) {
	params := url.Values{
		"sportId": {"1"},
		"date":    {date.Format("2006-01-02")},
		"hydrate": {"linescore"},
	}
	fullURL := c.baseURL + "/schedule?" + params.Encode()

	games, err := c.breaker.Execute(func() ([]domain.Game, error) {
		return c.doRequest(ctx, fullURL)
	})
	if err != nil {
		c.metrics.ScheduleRequests.WithLabelValues("error").Inc()
		return nil, fmt.Errorf("fetch schedule for %s: %w", date.Format("2006-01-02"), err)
	}
	c.metrics.ScheduleRequests.WithLabelValues("success").Inc()
	return games, nil
}

func (c *Client) doRequest(ctx context.Context, fullURL string) ([]domain.Game, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, fullURL, nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("schedule request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return nil, fmt.Errorf("%w: status %d: %s", ErrUpstream, resp.StatusCode, body)
	}

	var sr scheduleResponse
	if err := json.NewDecoder(resp.Body).Decode(&sr); err != nil {
		return nil, fmt.Errorf("decode schedule: %w", err)
	}
	return c.parseSchedule(sr), nil
}

// parseSchedule keeps the first date's games. Games missing team names are
// skipped.
func (c *Client) parseSchedule(sr scheduleResponse) []domain.Game {
	if len(sr.Dates) == 0 {
		return nil
	}

	games := make([]domain.Game, 0, len(sr.Dates[0].Games))
	for _, g := range sr.Dates[0].Games {
		game, ok := g.toDomain()
		if !ok {
			c.logger.Warn("skipping malformed schedule entry", "game_pk", g.GamePk)
			continue
		}
		games = append(games, game)
	}
	return games
}

// Stats API response types.

type scheduleResponse struct {
	Dates []scheduleDate `json:"dates"`
}

type scheduleDate struct {
	Date  string         `json:"date"`
	Games []scheduleGame `json:"games"`
}

type scheduleGame struct {
	GamePk   int64  `json:"gamePk"`
	GameDate string `json:"gameDate"`
	Status   struct {
		DetailedState string `json:"detailedState"`
	} `json:"status"`
	Teams struct {
		Away teamEntry `json:"away"`
		Home teamEntry `json:"home"`
	} `json:"teams"`
	Venue struct {
		Name string `json:"name"`
	} `json:"venue"`
	Linescore *struct {
		CurrentInning int    `json:"currentInning"`
		InningState   string `json:"inningState"`
	} `json:"linescore,omitempty"`
}

type teamEntry struct {
	Score *int `json:"score,omitempty"`
	Team  struct {
		Name string `json:"name"`
	} `json:"team"`
}

func (g scheduleGame) toDomain() (domain.Game, bool) {
	if g.Teams.Away.Team.Name == "" || g.Teams.Home.Team.Name == "" {
		return domain.Game{}, false
	}

	venue := g.Venue.Name
	if venue == "" {
		venue = "Unknown Stadium"
	}

	game := domain.Game{
		ID:             strconv.FormatInt(g.GamePk, 10),
		AwayTeam:       g.Teams.Away.Team.Name,
		HomeTeam:       g.Teams.Home.Team.Name,
		Venue:          venue,
		Status:         parseStatus(g.Status.DetailedState),
		DetailedStatus: g.Status.DetailedState,
	}
	if start, err := time.Parse(time.RFC3339, g.GameDate); err == nil {
		start = start.UTC()
		game.ScheduledStart = &start
	}
	if game.Status.InProgress() {
		game.Score = g.scoreLine()
	}
	return game, true
}

// parseStatus folds detailed states such as "Delayed Start: Rain" onto the
// closed status set.
func parseStatus(detailed string) domain.GameStatus {
	if detailed == "" {
		return domain.StatusScheduled
	}
	if strings.HasPrefix(detailed, "Delayed") {
		return domain.StatusDelayed
	}
	return domain.ParseGameStatus(detailed)
}

func (g scheduleGame) scoreLine() string {
	if g.Teams.Away.Score == nil || g.Teams.Home.Score == nil {
		return ""
	}
	line := fmt.Sprintf("%d-%d", *g.Teams.Away.Score, *g.Teams.Home.Score)
	if g.Linescore == nil || g.Linescore.CurrentInning == 0 {
		return line
	}
	state := g.Linescore.InningState
	switch state {
	case "Middle":
		state = "Mid"
	case "":
		state = "Top"
	}
	return fmt.Sprintf("%s, %s %d", line, state, g.Linescore.CurrentInning)
}
