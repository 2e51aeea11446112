package mockweather

import (
	"context"
	"testing"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/couchcryptid/ballpark-weather/internal/domain"
)

var fixedTime = time.Date(2024, 6, 1, 18, 42, 0, 0, time.UTC)

func TestSource_FetchSeries_Default(t *testing.T) {
	src := New(clockwork.NewFakeClockAt(fixedTime))

	series, err := src.FetchSeries(context.Background(), *domain.DefaultBallparks.Lookup("Fenway Park"))
	require.NoError(t, err)

	require.NotNil(t, series.Current)
	cur := series.Current
	assert.Equal(t, time.Date(2024, 6, 1, 18, 0, 0, 0, time.UTC), cur.Timestamp)
	assert.InDelta(t, 75.0, cur.TemperatureF, 1e-9)
	assert.InDelta(t, 78.0, cur.FeelsLikeF, 1e-9)
	assert.InDelta(t, 65.0, cur.HumidityPct, 1e-9)
	assert.InDelta(t, 1013.25, *cur.PressureHPa, 1e-9)
	assert.InDelta(t, 180.0, *cur.WindFromDeg, 1e-9)
	assert.Equal(t, "Partly Cloudy", cur.Condition)
	assert.NoError(t, domain.ValidateSample(cur))

	require.Len(t, series.Hourly, 48)
	assert.Equal(t, cur.Timestamp, series.Hourly[0].Timestamp)
	assert.Equal(t, cur.Timestamp.Add(47*time.Hour), series.Hourly[47].Timestamp)
}

func TestSource_FetchSeries_Coors(t *testing.T) {
	src := New(clockwork.NewFakeClockAt(fixedTime))

	series, err := src.FetchSeries(context.Background(), *domain.DefaultBallparks.Lookup("Coors Field"))
	require.NoError(t, err)

	cur := series.Current
	assert.InDelta(t, 87.0, cur.TemperatureF, 1e-9)
	assert.InDelta(t, 18.0, cur.HumidityPct, 1e-9)
	assert.InDelta(t, 845.0, *cur.PressureHPa, 1e-9)
	assert.InDelta(t, 39.0, *cur.DewPointF, 1e-9)
	assert.InDelta(t, 7.0, cur.WindSpeedMPH, 1e-9)
}

func TestSource_SamplesDoNotShareState(t *testing.T) {
	src := New(clockwork.NewFakeClockAt(fixedTime))

	series, err := src.FetchSeries(context.Background(), domain.BallparkGeometry{Name: "Sandlot"})
	require.NoError(t, err)

	*series.Hourly[0].PressureHPa = 1
	assert.InDelta(t, 1013.25, *series.Hourly[1].PressureHPa, 1e-9)
	assert.InDelta(t, 1013.25, *series.Current.PressureHPa, 1e-9)
}

func TestSource_EvaluatesAtCoors(t *testing.T) {
	src := New(clockwork.NewFakeClockAt(fixedTime))
	park := domain.DefaultBallparks.Lookup("Coors Field")

	series, err := src.FetchSeries(context.Background(), *park)
	require.NoError(t, err)

	ev, err := domain.Evaluate(series, domain.GameTimingContext{Status: domain.StatusLive, Now: fixedTime}, park)
	require.NoError(t, err)
	assert.Equal(t, "out to right field foul territory", ev.Direction)
	assert.Contains(t, ev.Summary, "Partly Cloudy")
	assert.Contains(t, ev.Summary, "station pressure")
}
