package mlb

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/couchcryptid/ballpark-weather/internal/domain"
	"github.com/couchcryptid/ballpark-weather/internal/observability"
)

const schedulePayload = `{
  "dates": [{
    "date": "2024-06-01",
    "games": [
      {
        "gamePk": 745123,
        "gameDate": "2024-06-01T18:20:00Z",
        "status": {"detailedState": "In Progress"},
        "teams": {
          "away": {"score": 3, "team": {"name": "St. Louis Cardinals"}},
          "home": {"score": 2, "team": {"name": "Chicago Cubs"}}
        },
        "venue": {"name": "Wrigley Field"},
        "linescore": {"currentInning": 7, "inningState": "Middle"}
      },
      {
        "gamePk": 745124,
        "gameDate": "2024-06-02T00:40:00Z",
        "status": {"detailedState": "Delayed Start: Rain"},
        "teams": {
          "away": {"team": {"name": "San Francisco Giants"}},
          "home": {"team": {"name": "Colorado Rockies"}}
        },
        "venue": {"name": "Coors Field"}
      },
      {
        "gamePk": 745125,
        "gameDate": "2024-06-01T17:05:00Z",
        "status": {"detailedState": "Final"},
        "teams": {
          "away": {"score": 1, "team": {"name": "Tampa Bay Rays"}},
          "home": {"score": 4, "team": {"name": "Boston Red Sox"}}
        },
        "venue": {"name": "Fenway Park"}
      },
      {
        "gamePk": 745126,
        "gameDate": "2024-06-01T23:05:00Z",
        "status": {"detailedState": "Scheduled"},
        "teams": {"away": {"team": {}}, "home": {"team": {"name": "New York Yankees"}}},
        "venue": {"name": "Yankee Stadium"}
      }
    ]
  }]
}`

func testClient(baseURL string) *Client {
	return NewClient(baseURL, 5*time.Second, observability.NewMetricsForTesting(),
		slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func TestClient_Games(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/schedule", r.URL.Path)
		assert.Equal(t, "1", r.URL.Query().Get("sportId"))
		assert.Equal(t, "2024-06-01", r.URL.Query().Get("date"))
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(schedulePayload))
	}))
	defer srv.Close()

	c := testClient(srv.URL)
	games, err := c.Games(context.Background(), time.Date(2024, 6, 1, 9, 0, 0, 0, time.UTC))
	require.NoError(t, err)
	require.Len(t, games, 3, "entry without an away team is skipped")

	wrigleyStart := time.Date(2024, 6, 1, 18, 20, 0, 0, time.UTC)
	want := domain.Game{
		ID:             "745123",
		AwayTeam:       "St. Louis Cardinals",
		HomeTeam:       "Chicago Cubs",
		Venue:          "Wrigley Field",
		Status:         domain.StatusInProgress,
		DetailedStatus: "In Progress",
		ScheduledStart: &wrigleyStart,
		Score:          "3-2, Mid 7",
	}
	if diff := cmp.Diff(want, games[0]); diff != "" {
		t.Errorf("game mismatch (-want +got):\n%s", diff)
	}

	assert.Equal(t, domain.StatusDelayed, games[1].Status)
	assert.Equal(t, "Delayed Start: Rain", games[1].DetailedStatus)
	assert.Empty(t, games[1].Score)

	assert.Equal(t, domain.StatusFinal, games[2].Status)
	assert.Empty(t, games[2].Score, "scores are only attached to live games")

	assert.InDelta(t, 1.0, testutil.ToFloat64(c.metrics.ScheduleRequests.WithLabelValues("success")), 1e-9)
}

func TestClient_Games_NoGames(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{"dates": []}`))
	}))
	defer srv.Close()

	games, err := testClient(srv.URL).Games(context.Background(), time.Now())
	require.NoError(t, err)
	assert.Empty(t, games)
}

func TestClient_Games_UpstreamError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	c := testClient(srv.URL)
	_, err := c.Games(context.Background(), time.Now())

	require.ErrorIs(t, err, ErrUpstream)
	assert.InDelta(t, 1.0, testutil.ToFloat64(c.metrics.ScheduleRequests.WithLabelValues("error")), 1e-9)
}

func TestClient_Games_MalformedBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{"dates": "soon"}`))
	}))
	defer srv.Close()

	_, err := testClient(srv.URL).Games(context.Background(), time.Now())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "decode schedule")
}

func TestParseStatus(t *testing.T) {
	assert.Equal(t, domain.StatusScheduled, parseStatus(""))
	assert.Equal(t, domain.StatusScheduled, parseStatus("Pre-Game"))
	assert.Equal(t, domain.StatusDelayed, parseStatus("Delayed"))
	assert.Equal(t, domain.StatusDelayed, parseStatus("Delayed: Rain"))
	assert.Equal(t, domain.StatusPostponed, parseStatus("Postponed"))
	assert.Equal(t, domain.StatusGameOver, parseStatus("Game Over"))
}
