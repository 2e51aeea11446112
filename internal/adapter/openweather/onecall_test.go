package openweather

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/couchcryptid/ballpark-weather/internal/domain"
)

func TestDecode(t *testing.T) {
	series, err := Decode(strings.NewReader(coorsPayload))
	require.NoError(t, err)

	require.NotNil(t, series.Current)
	cur := series.Current
	assert.Equal(t, time.Unix(1717257600, 0).UTC(), cur.Timestamp)
	assert.InDelta(t, 84.6, cur.TemperatureF, 1e-9)
	assert.InDelta(t, 21.0, cur.HumidityPct, 1e-9)
	require.NotNil(t, cur.PressureHPa)
	assert.InDelta(t, 1012.0, *cur.PressureHPa, 1e-9)
	require.NotNil(t, cur.WindFromDeg)
	assert.InDelta(t, 190.0, *cur.WindFromDeg, 1e-9)
	assert.Equal(t, "Clear Sky", cur.Condition)
	assert.Zero(t, cur.PrecipitationProbability)

	require.Len(t, series.Hourly, 3)
	last := series.Hourly[2]
	assert.Equal(t, "Light Rain", last.Condition)
	assert.InDelta(t, 0.8, last.RainMM, 1e-9)
	assert.InDelta(t, 0.64, last.PrecipitationProbability, 1e-9)
	require.NotNil(t, last.VisibilityM)
	assert.InDelta(t, 8000.0, *last.VisibilityM, 1e-9)
}

func TestDecode_Malformed(t *testing.T) {
	_, err := Decode(strings.NewReader(`{"current": "nope"}`))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "decode one call")
}

func TestDecode_MissingOptionalFields(t *testing.T) {
	series, err := Decode(strings.NewReader(`{"current": {"dt": 0, "temp": 70, "humidity": 50, "wind_speed": 0}}`))
	require.NoError(t, err)

	require.NotNil(t, series.Current)
	assert.Nil(t, series.Current.PressureHPa)
	assert.Nil(t, series.Current.WindFromDeg)
	assert.Nil(t, series.Current.DewPointF)
	assert.Equal(t, "Unknown", series.Current.Condition)
	assert.Empty(t, series.Hourly)
}

func TestConditionText(t *testing.T) {
	assert.Equal(t, "Overcast Clouds", conditionText([]Condition{{Main: "Clouds", Description: "overcast clouds"}}))
	assert.Equal(t, "Thunderstorm", conditionText([]Condition{{Main: "Thunderstorm"}}))
	assert.Equal(t, "Unknown", conditionText(nil))
}

func TestFromSeries_DecodesBack(t *testing.T) {
	series, err := Decode(strings.NewReader(coorsPayload))
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, json.NewEncoder(&buf).Encode(FromSeries(series, domain.Geo{Lat: 39.7559, Lon: -104.9942})))

	again, err := Decode(&buf)
	require.NoError(t, err)
	if diff := cmp.Diff(series, again); diff != "" {
		t.Errorf("series changed after encode/decode (-want +got):\n%s", diff)
	}
}
