// Package openweather fetches game-day weather from the OpenWeather One Call
// 3.0 API and converts it to domain series.
package openweather

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/sony/gobreaker/v2"

	"github.com/couchcryptid/ballpark-weather/internal/domain"
	"github.com/couchcryptid/ballpark-weather/internal/observability"
)

// Errors returned by FetchSeries. Callers degrade to "no weather" on any of them.
var (
	ErrNoLocation   = errors.New("openweather: park has no coordinates")
	ErrUnauthorized = errors.New("openweather: unauthorized")
	ErrRateLimited  = errors.New("openweather: rate limited")
	ErrUpstream     = errors.New("openweather: upstream error")
)

// DefaultBaseURL is the One Call 3.0 API root.
const DefaultBaseURL = "https://api.openweathermap.org/data/3.0"

// Client implements domain.WeatherSource using the One Call API.
type Client struct {
	apiKey     string
	httpClient *http.Client
	baseURL    string
	breaker    *gobreaker.CircuitBreaker[*domain.WeatherSeries]
	metrics    *observability.Metrics
	logger     *slog.Logger
}

// NewClient creates a One Call client. More than five consecutive failures
// open the circuit for 30s.
func NewClient(apiKey, baseURL string, timeout time.Duration, metrics *observability.Metrics, logger *slog.Logger) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return &Client{
		apiKey:     apiKey,
		httpClient: &http.Client{Timeout: timeout},
		baseURL:    baseURL,
		breaker:    newBreaker("openweather"),
		metrics:    metrics,
		logger:     logger,
	}
}

func newBreaker(name string) *gobreaker.CircuitBreaker[*domain.WeatherSeries] {
	return gobreaker.NewCircuitBreaker[*domain.WeatherSeries](gobreaker.Settings{
		Name:        name,
		MaxRequests: 1,
		Interval:    60 * time.Second,
		Timeout:     30 * time.Second,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures > 5
		},
	})
}

// FetchSeries returns current conditions plus the hourly forecast at the
// park's coordinates.
func (c *Client) FetchSeries(ctx context.Context, park domain.BallparkGeometry) (*domain.WeatherSeries, error) {
	if park.Location == nil {
		return nil, fmt.Errorf("%w: %s", ErrNoLocation, park.Name)
	}

	params := url.Values{
		"lat":     {strconv.FormatFloat(park.Location.Lat, 'f', 4, 64)},
		"lon":     {strconv.FormatFloat(park.Location.Lon, 'f', 4, 64)},
		"appid":   {c.apiKey},
		"units":   {"imperial"},
		"exclude": {"minutely,daily,alerts"},
	}
	fullURL := c.baseURL + "/onecall?" + params.Encode()

	start := time.Now()
	series, err := c.breaker.Execute(func() (*domain.WeatherSeries, error) {
		return c.doRequest(ctx, fullURL)
	})
	c.metrics.WeatherAPIDuration.Observe(time.Since(start).Seconds())

	if err != nil {
		c.metrics.WeatherRequests.WithLabelValues("error").Inc()
		return nil, fmt.Errorf("fetch weather for %s: %w", park.Name, err)
	}
	c.metrics.WeatherRequests.WithLabelValues("success").Inc()
	c.logger.Debug("weather fetched", "venue", park.Name, "hourly", len(series.Hourly))
	return series, nil
}

func (c *Client) doRequest(ctx context.Context, fullURL string) (*domain.WeatherSeries, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, fullURL, nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("one call request: %w", err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusOK:
	case resp.StatusCode == http.StatusUnauthorized:
		return nil, ErrUnauthorized
	case resp.StatusCode == http.StatusTooManyRequests:
		return nil, ErrRateLimited
	default:
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return nil, fmt.Errorf("%w: status %d: %s", ErrUpstream, resp.StatusCode, body)
	}

	return Decode(resp.Body)
}
