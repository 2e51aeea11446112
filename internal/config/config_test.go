package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	defaultBroker = "localhost:9092"
	testAPIKey    = "ow-test-key"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, []string{defaultBroker}, cfg.KafkaBrokers)
	assert.Equal(t, "ballpark-carry-reports", cfg.KafkaSinkTopic)
	assert.Equal(t, ":8080", cfg.HTTPAddr)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, "json", cfg.LogFormat)
	assert.Equal(t, 10*time.Second, cfg.ShutdownTimeout)
	assert.Equal(t, 15*time.Minute, cfg.RefreshInterval)
	assert.Equal(t, 4, cfg.EvaluationConcurrency)
	assert.Equal(t, "America/New_York", cfg.ScheduleLocation.String())
	assert.Equal(t, "https://statsapi.mlb.com/api/v1", cfg.MLBBaseURL)
	assert.Equal(t, 10*time.Second, cfg.MLBTimeout)
	assert.False(t, cfg.OpenWeatherEnabled)
	assert.Empty(t, cfg.OpenWeatherAPIKey)
	assert.Equal(t, "https://api.openweathermap.org/data/3.0", cfg.OpenWeatherBaseURL)
	assert.Equal(t, 5*time.Second, cfg.OpenWeatherTimeout)
	assert.Equal(t, 256, cfg.OpenWeatherCacheSize)
	assert.Equal(t, 10*time.Minute, cfg.OpenWeatherCacheTTL)
}

func TestLoad_CustomEnv(t *testing.T) {
	t.Setenv("KAFKA_BROKERS", "broker1:9092, broker2:9092")
	t.Setenv("KAFKA_SINK_TOPIC", "custom-sink")
	t.Setenv("HTTP_ADDR", ":9090")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("LOG_FORMAT", "text")
	t.Setenv("SHUTDOWN_TIMEOUT", "30s")
	t.Setenv("REFRESH_INTERVAL", "5m")
	t.Setenv("EVALUATION_CONCURRENCY", "8")
	t.Setenv("SCHEDULE_TIMEZONE", "America/Denver")
	t.Setenv("MLB_BASE_URL", "http://localhost:9999/api/v1/")
	t.Setenv("MLB_TIMEOUT", "3s")
	t.Setenv("OPENWEATHER_API_KEY", testAPIKey)
	t.Setenv("OPENWEATHER_TIMEOUT", "2s")
	t.Setenv("OPENWEATHER_CACHE_SIZE", "64")
	t.Setenv("OPENWEATHER_CACHE_TTL", "30m")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, []string{"broker1:9092", "broker2:9092"}, cfg.KafkaBrokers)
	assert.Equal(t, "custom-sink", cfg.KafkaSinkTopic)
	assert.Equal(t, ":9090", cfg.HTTPAddr)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, "text", cfg.LogFormat)
	assert.Equal(t, 30*time.Second, cfg.ShutdownTimeout)
	assert.Equal(t, 5*time.Minute, cfg.RefreshInterval)
	assert.Equal(t, 8, cfg.EvaluationConcurrency)
	assert.Equal(t, "America/Denver", cfg.ScheduleLocation.String())
	assert.Equal(t, "http://localhost:9999/api/v1", cfg.MLBBaseURL)
	assert.Equal(t, 3*time.Second, cfg.MLBTimeout)
	assert.True(t, cfg.OpenWeatherEnabled)
	assert.Equal(t, testAPIKey, cfg.OpenWeatherAPIKey)
	assert.Equal(t, 2*time.Second, cfg.OpenWeatherTimeout)
	assert.Equal(t, 64, cfg.OpenWeatherCacheSize)
	assert.Equal(t, 30*time.Minute, cfg.OpenWeatherCacheTTL)
}

func TestLoad_InvalidValues(t *testing.T) {
	tests := []struct {
		key, value string
	}{
		{"SHUTDOWN_TIMEOUT", "not-a-duration"},
		{"SHUTDOWN_TIMEOUT", "-1s"},
		{"REFRESH_INTERVAL", "1s"},
		{"EVALUATION_CONCURRENCY", "0"},
		{"EVALUATION_CONCURRENCY", "9999"},
		{"LOG_LEVEL", "verbose"},
		{"LOG_FORMAT", "xml"},
		{"MLB_BASE_URL", "not a url"},
		{"OPENWEATHER_TIMEOUT", "bad"},
		{"OPENWEATHER_CACHE_SIZE", "0"},
		{"SCHEDULE_TIMEZONE", "Mars/Olympus_Mons"},
	}
	for _, tt := range tests {
		t.Run(tt.key+"="+tt.value, func(t *testing.T) {
			t.Setenv(tt.key, tt.value)
			_, err := Load()
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.key)
		})
	}
}

func TestLoad_OpenWeatherEnabledWithoutKey(t *testing.T) {
	t.Setenv("OPENWEATHER_ENABLED", "true")
	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "OPENWEATHER_API_KEY")
}

func TestLoad_APIKeyImpliesEnabled(t *testing.T) {
	t.Setenv("OPENWEATHER_API_KEY", testAPIKey)
	cfg, err := Load()
	require.NoError(t, err)
	assert.True(t, cfg.OpenWeatherEnabled)
}

func TestLoad_ExplicitlyDisabledWithKey(t *testing.T) {
	t.Setenv("OPENWEATHER_API_KEY", testAPIKey)
	t.Setenv("OPENWEATHER_ENABLED", "false")
	cfg, err := Load()
	require.NoError(t, err)
	assert.False(t, cfg.OpenWeatherEnabled)
	assert.Equal(t, testAPIKey, cfg.OpenWeatherAPIKey)
}
