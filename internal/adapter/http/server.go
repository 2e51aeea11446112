package http

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"slices"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/jonboulle/clockwork"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/couchcryptid/ballpark-weather/internal/domain"
)

// ReadinessChecker reports whether the service is ready to serve traffic.
type ReadinessChecker interface {
	CheckReadiness(ctx context.Context) error
}

// ReportLister returns the most recently published carry reports.
type ReportLister interface {
	Reports() []domain.GameReport
}

// ParkDirectory resolves and enumerates ballparks.
type ParkDirectory interface {
	domain.BallparkSource
	Names() []string
}

// API holds the dependencies of the /v1 routes.
type API struct {
	Reports ReportLister
	Parks   ParkDirectory
	Clock   clockwork.Clock

	// Location renders start times in evaluation windows. Nil means UTC.
	Location *time.Location
}

// Server exposes health, readiness, metrics and the carry report API.
type Server struct {
	httpServer *http.Server
	router     *chi.Mux
	api        API
	logger     *slog.Logger
}

const maxEvaluateBody = 1 << 20

// NewServer creates an HTTP server with /healthz, /readyz, /metrics and the
// /v1 report routes.
func NewServer(addr string, ready ReadinessChecker, api API, logger *slog.Logger) *Server {
	if api.Clock == nil {
		api.Clock = clockwork.NewRealClock()
	}

	r := chi.NewRouter()
	r.Use(middleware.Recoverer)

	s := &Server{
		httpServer: &http.Server{
			Addr:         addr,
			Handler:      r,
			ReadTimeout:  10 * time.Second,
			WriteTimeout: 10 * time.Second,
			IdleTimeout:  60 * time.Second,
		},
		router: r,
		api:    api,
		logger: logger,
	}

	r.Get("/healthz", s.handleHealth)
	r.Get("/readyz", handleReady(ready))
	r.Handle("/metrics", promhttp.Handler())

	r.Route("/v1", func(r chi.Router) {
		r.Get("/reports", s.handleListReports)
		r.Get("/reports/{id}", s.handleGetReport)
		r.Get("/ballparks", s.handleListBallparks)
		r.Get("/ballparks/{name}", s.handleGetBallpark)
		r.Post("/evaluate", s.handleEvaluate)
	})

	return s
}

// Start begins listening. Returns http.ErrServerClosed on graceful shutdown.
func (s *Server) Start() error {
	s.logger.Info("http server starting", "addr", s.httpServer.Addr)
	return s.httpServer.ListenAndServe()
}

// Shutdown gracefully drains connections within the given context deadline.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}

// ServeHTTP delegates to the router, useful for testing.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "healthy"})
}

func handleReady(checker ReadinessChecker) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
		defer cancel()

		if err := checker.CheckReadiness(ctx); err != nil {
			writeJSON(w, http.StatusServiceUnavailable, map[string]string{
				"status": "not ready",
				"error":  err.Error(),
			})
			return
		}
		writeJSON(w, http.StatusOK, map[string]string{"status": "ready"})
	}
}

func (s *Server) handleListReports(w http.ResponseWriter, r *http.Request) {
	reports := s.api.Reports.Reports()
	if venue := r.URL.Query().Get("venue"); venue != "" {
		reports = slices.DeleteFunc(reports, func(rep domain.GameReport) bool {
			return rep.Game.Venue != venue
		})
	}
	if reports == nil {
		reports = []domain.GameReport{}
	}
	writeJSON(w, http.StatusOK, map[string]any{"reports": reports})
}

func (s *Server) handleGetReport(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	for _, rep := range s.api.Reports.Reports() {
		if rep.ID == id {
			writeJSON(w, http.StatusOK, rep)
			return
		}
	}
	writeError(w, http.StatusNotFound, "report not found")
}

func (s *Server) handleListBallparks(w http.ResponseWriter, _ *http.Request) {
	names := s.api.Parks.Names()
	slices.Sort(names)
	writeJSON(w, http.StatusOK, map[string]any{"ballparks": names})
}

func (s *Server) handleGetBallpark(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "name")
	park := s.api.Parks.Lookup(name)
	if park == nil {
		writeError(w, http.StatusNotFound, "ballpark not found")
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"ballpark": park,
		"model":    domain.ParkModelFor(park.Name),
	})
}

// evaluateRequest runs the carry model against a caller-supplied series.
// Now defaults to the server clock.
type evaluateRequest struct {
	Venue          string                `json:"venue"`
	Status         string                `json:"status"`
	ScheduledStart *time.Time            `json:"scheduled_start"`
	Now            *time.Time            `json:"now"`
	Series         *domain.WeatherSeries `json:"series"`
}

func (s *Server) handleEvaluate(w http.ResponseWriter, r *http.Request) {
	var req evaluateRequest
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxEvaluateBody))
	if err := dec.Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body: "+err.Error())
		return
	}

	now := s.api.Clock.Now()
	if req.Now != nil {
		now = *req.Now
	}
	tc := domain.GameTimingContext{
		Status:         domain.ParseGameStatus(req.Status),
		ScheduledStart: req.ScheduledStart,
		Now:            now,
		Location:       s.api.Location,
	}

	var park *domain.BallparkGeometry
	if req.Venue != "" {
		park = s.api.Parks.Lookup(req.Venue)
	}

	ev, err := domain.Evaluate(req.Series, tc, park)
	if errors.Is(err, domain.ErrInvalidSample) {
		writeError(w, http.StatusUnprocessableEntity, err.Error())
		return
	}
	if err != nil {
		s.logger.Error("evaluate request failed", "error", err)
		writeError(w, http.StatusInternalServerError, "evaluation failed")
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"venue":       req.Venue,
		"known_venue": park != nil,
		"evaluation":  ev,
	})
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}

// writeJSON encodes before writing the header so an unencodable value
// becomes a 500 instead of a 200 with an empty body.
func writeJSON(w http.ResponseWriter, status int, v any) {
	var buf bytes.Buffer
	if err := json.NewEncoder(&buf).Encode(v); err != nil {
		buf.Reset()
		status = http.StatusInternalServerError
		json.NewEncoder(&buf).Encode(map[string]string{"error": "encode response: " + err.Error()}) //nolint:errcheck // plain strings always encode
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	w.Write(buf.Bytes()) //nolint:errcheck // best-effort response
}
