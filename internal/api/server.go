package api

import (
	"encoding/json"
	"net/http"
	"sync/atomic"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog"

	"github.com/MJE43/keno-time-patterns-go/internal/patterns"
	"github.com/MJE43/keno-time-patterns-go/internal/store"
)

// ServiceVersion is reported by the health endpoint and response headers.
const ServiceVersion = "1.0.0"

// Server handles HTTP requests against the pattern table. The served table
// is replaced atomically after a reanalysis; the read path never takes a
// lock, matching the table's load-once query-many contract.
type Server struct {
	table     atomic.Pointer[patterns.Config]
	db        store.DB
	log       zerolog.Logger
	startTime time.Time
}

// NewServer creates an API server over the given pattern table. A nil
// table falls back to the built-in default; db may be nil when the service
// runs lookup-only.
func NewServer(table *patterns.Config, db store.DB, log zerolog.Logger) *Server {
	if table == nil {
		table = patterns.Default
	}
	s := &Server{
		db:        db,
		log:       log,
		startTime: time.Now(),
	}
	s.table.Store(table)

	log.Info().
		Int("slots", len(table.Patterns)).
		Str("analysis_version", table.AnalysisVersion).
		Bool("store_enabled", db != nil).
		Msg("pattern service ready")
	return s
}

// Table returns the currently served pattern table.
func (s *Server) Table() *patterns.Config {
	return s.table.Load()
}

// Routes sets up the HTTP routes with proper middleware.
func (s *Server) Routes() http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(s.requestLogger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(60 * time.Second))

	r.Get("/health", s.handleHealth)

	r.Route("/api/v1", func(r chi.Router) {
		r.Get("/numbers", s.handleNumbers)
		r.Get("/combinations", s.handleCombinations)
		r.Get("/confidence", s.handleConfidence)
		r.Get("/multipliers/{balls}", s.handleMultiplier)
		r.Get("/recommendations", s.handleRecommendations)
		r.Get("/optimal-times", s.handleOptimalTimes)
		r.Get("/next-optimal", s.handleNextOptimal)
		r.Post("/analyze", s.handleAnalyze)
	})

	return r
}

// requestLogger emits one structured log line per request.
func (s *Server) requestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		start := time.Now()
		next.ServeHTTP(ww, r)
		s.log.Debug().
			Str("method", r.Method).
			Str("path", r.URL.Path).
			Int("status", ww.Status()).
			Dur("elapsed", time.Since(start)).
			Str("request_id", middleware.GetReqID(r.Context())).
			Msg("request")
	})
}

// writeJSON writes a JSON response with proper headers.
func (s *Server) writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("X-Service-Version", ServiceVersion)
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(data); err != nil {
		s.log.Error().Err(err).Msg("encoding response")
	}
}

// writeError writes a structured error response.
func (s *Server) writeError(w http.ResponseWriter, r *http.Request, status int, errType, message string) {
	s.writeJSON(w, status, ServiceError{
		Type:      errType,
		Message:   message,
		RequestID: middleware.GetReqID(r.Context()),
	})
}
