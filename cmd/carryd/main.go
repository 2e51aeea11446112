package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	_ "time/tzdata"

	"github.com/jonboulle/clockwork"
	"github.com/joho/godotenv"

	httpadapter "github.com/couchcryptid/ballpark-weather/internal/adapter/http"
	kafkaadapter "github.com/couchcryptid/ballpark-weather/internal/adapter/kafka"
	"github.com/couchcryptid/ballpark-weather/internal/adapter/mlb"
	"github.com/couchcryptid/ballpark-weather/internal/adapter/mockweather"
	"github.com/couchcryptid/ballpark-weather/internal/adapter/openweather"
	"github.com/couchcryptid/ballpark-weather/internal/config"
	"github.com/couchcryptid/ballpark-weather/internal/domain"
	"github.com/couchcryptid/ballpark-weather/internal/observability"
	"github.com/couchcryptid/ballpark-weather/internal/pipeline"
)

func main() {
	// A missing .env is normal outside local development.
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	logger := observability.NewLogger(cfg)
	metrics := observability.NewMetrics()
	clock := clockwork.NewRealClock()

	// Weather source (feature-flagged via OPENWEATHER_ENABLED / OPENWEATHER_API_KEY).
	var weather domain.WeatherSource
	if cfg.OpenWeatherEnabled {
		client := openweather.NewClient(cfg.OpenWeatherAPIKey, cfg.OpenWeatherBaseURL, cfg.OpenWeatherTimeout, metrics, logger)
		weather = openweather.NewCachedSource(client, cfg.OpenWeatherCacheSize, cfg.OpenWeatherCacheTTL, clock, metrics)
		metrics.WeatherEnabled.Set(1)
		logger.Info("openweather enabled",
			"cache_size", cfg.OpenWeatherCacheSize,
			"cache_ttl", cfg.OpenWeatherCacheTTL,
			"timeout", cfg.OpenWeatherTimeout,
		)
	} else {
		weather = mockweather.New(clock)
		logger.Info("openweather disabled, using mock weather")
	}

	schedule := mlb.NewClient(cfg.MLBBaseURL, cfg.MLBTimeout, metrics, logger)
	writer := kafkaadapter.NewWriter(cfg, logger)
	evaluator := pipeline.NewEvaluator(domain.DefaultBallparks, weather, cfg.ScheduleLocation, logger)

	p := pipeline.New(schedule, evaluator, writer, logger, metrics, pipeline.Options{
		Interval:    cfg.RefreshInterval,
		Concurrency: cfg.EvaluationConcurrency,
		Location:    cfg.ScheduleLocation,
		Clock:       clock,
	})

	srv := httpadapter.NewServer(cfg.HTTPAddr, p, httpadapter.API{
		Reports:  p,
		Parks:    domain.DefaultBallparks,
		Clock:    clock,
		Location: cfg.ScheduleLocation,
	}, logger)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	go func() {
		if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("http server error", "error", err)
		}
	}()

	go func() {
		if err := p.Run(ctx); err != nil {
			logger.Error("pipeline error", "error", err)
		}
	}()

	<-ctx.Done()
	logger.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("http server shutdown error", "error", err)
	}
	if err := writer.Close(); err != nil {
		logger.Error("kafka writer close error", "error", err)
	}

	logger.Info("shutdown complete")
}
