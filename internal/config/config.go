package config

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/kelseyhightower/envconfig"
)

// Config holds all service settings, populated from environment variables.
type Config struct {
	KafkaBrokers    []string
	KafkaSinkTopic  string
	HTTPAddr        string
	LogLevel        string
	LogFormat       string
	ShutdownTimeout time.Duration

	// Refresh loop.
	RefreshInterval       time.Duration
	EvaluationConcurrency int
	ScheduleLocation      *time.Location

	// MLB Stats API.
	MLBBaseURL string
	MLBTimeout time.Duration

	// OpenWeather One Call configuration. When disabled the service evaluates
	// against mock weather.
	OpenWeatherAPIKey    string
	OpenWeatherEnabled   bool
	OpenWeatherBaseURL   string
	OpenWeatherTimeout   time.Duration
	OpenWeatherCacheSize int
	OpenWeatherCacheTTL  time.Duration
}

// env mirrors Config as it appears in the environment.
type env struct {
	KafkaBrokers    []string      `envconfig:"KAFKA_BROKERS" default:"localhost:9092" validate:"min=1,dive,required"`
	KafkaSinkTopic  string        `envconfig:"KAFKA_SINK_TOPIC" default:"ballpark-carry-reports" validate:"required"`
	HTTPAddr        string        `envconfig:"HTTP_ADDR" default:":8080" validate:"required"`
	LogLevel        string        `envconfig:"LOG_LEVEL" default:"info" validate:"oneof=debug info warn error"`
	LogFormat       string        `envconfig:"LOG_FORMAT" default:"json" validate:"oneof=json text"`
	ShutdownTimeout time.Duration `envconfig:"SHUTDOWN_TIMEOUT" default:"10s" validate:"gt=0"`

	RefreshInterval       time.Duration `envconfig:"REFRESH_INTERVAL" default:"15m" validate:"gte=10s"`
	EvaluationConcurrency int           `envconfig:"EVALUATION_CONCURRENCY" default:"4" validate:"gte=1,lte=64"`
	ScheduleTimezone      string        `envconfig:"SCHEDULE_TIMEZONE" default:"America/New_York" validate:"required"`

	MLBBaseURL string        `envconfig:"MLB_BASE_URL" default:"https://statsapi.mlb.com/api/v1" validate:"url"`
	MLBTimeout time.Duration `envconfig:"MLB_TIMEOUT" default:"10s" validate:"gt=0"`

	OpenWeatherAPIKey    string        `envconfig:"OPENWEATHER_API_KEY"`
	OpenWeatherEnabled   *bool         `envconfig:"OPENWEATHER_ENABLED"`
	OpenWeatherBaseURL   string        `envconfig:"OPENWEATHER_BASE_URL" default:"https://api.openweathermap.org/data/3.0" validate:"url"`
	OpenWeatherTimeout   time.Duration `envconfig:"OPENWEATHER_TIMEOUT" default:"5s" validate:"gt=0"`
	OpenWeatherCacheSize int           `envconfig:"OPENWEATHER_CACHE_SIZE" default:"256" validate:"gte=1"`
	OpenWeatherCacheTTL  time.Duration `envconfig:"OPENWEATHER_CACHE_TTL" default:"10m" validate:"gt=0"`
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	// Report fields by their environment variable name.
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		return f.Tag.Get("envconfig")
	})
	return v
}

// Load reads configuration from environment variables, applying defaults where unset.
func Load() (*Config, error) {
	var e env
	if err := envconfig.Process("", &e); err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}

	if err := validate.Struct(e); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) && len(verrs) > 0 {
			return nil, fmt.Errorf("invalid %s: failed %q", verrs[0].Field(), verrs[0].ActualTag())
		}
		return nil, fmt.Errorf("validate config: %w", err)
	}

	loc, err := time.LoadLocation(e.ScheduleTimezone)
	if err != nil {
		return nil, fmt.Errorf("invalid SCHEDULE_TIMEZONE: %w", err)
	}

	enabled := e.OpenWeatherAPIKey != ""
	if e.OpenWeatherEnabled != nil {
		enabled = *e.OpenWeatherEnabled
	}
	if enabled && e.OpenWeatherAPIKey == "" {
		return nil, errors.New("OPENWEATHER_ENABLED is true but OPENWEATHER_API_KEY is not set")
	}

	return &Config{
		KafkaBrokers:    trimAll(e.KafkaBrokers),
		KafkaSinkTopic:  e.KafkaSinkTopic,
		HTTPAddr:        e.HTTPAddr,
		LogLevel:        e.LogLevel,
		LogFormat:       e.LogFormat,
		ShutdownTimeout: e.ShutdownTimeout,

		RefreshInterval:       e.RefreshInterval,
		EvaluationConcurrency: e.EvaluationConcurrency,
		ScheduleLocation:      loc,

		MLBBaseURL: strings.TrimRight(e.MLBBaseURL, "/"),
		MLBTimeout: e.MLBTimeout,

		OpenWeatherAPIKey:    e.OpenWeatherAPIKey,
		OpenWeatherEnabled:   enabled,
		OpenWeatherBaseURL:   strings.TrimRight(e.OpenWeatherBaseURL, "/"),
		OpenWeatherTimeout:   e.OpenWeatherTimeout,
		OpenWeatherCacheSize: e.OpenWeatherCacheSize,
		OpenWeatherCacheTTL:  e.OpenWeatherCacheTTL,
	}, nil
}

func trimAll(ss []string) []string {
	out := make([]string, 0, len(ss))
	for _, s := range ss {
		if s = strings.TrimSpace(s); s != "" {
			out = append(out, s)
		}
	}
	return out
}
