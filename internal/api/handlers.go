package api

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/MJE43/keno-time-patterns-go/internal/analyze"
	"github.com/MJE43/keno-time-patterns-go/internal/patterns"
	"github.com/MJE43/keno-time-patterns-go/internal/store"
)

// timeKeyParam extracts and validates the "time" query parameter. A
// malformed key is a request error; a well-formed key that simply has no
// pattern entry is not.
func (s *Server) timeKeyParam(w http.ResponseWriter, r *http.Request) (string, bool) {
	timeKey := r.URL.Query().Get("time")
	if timeKey == "" {
		s.writeError(w, r, http.StatusBadRequest, ErrTypeInvalidRequest, "missing 'time' query parameter")
		return "", false
	}
	if _, _, err := patterns.ParseTimeKey(timeKey); err != nil {
		s.writeError(w, r, http.StatusBadRequest, ErrTypeInvalidTimeKey, err.Error())
		return "", false
	}
	return timeKey, true
}

// ballsParam parses an optional integer query parameter, falling back to
// the table default. Non-positive values are passed through to the lookup
// layer, which treats them as empty requests.
func (s *Server) ballsParam(w http.ResponseWriter, r *http.Request, fallback int) (int, bool) {
	raw := r.URL.Query().Get("balls")
	if raw == "" {
		return fallback, true
	}
	balls, err := strconv.Atoi(raw)
	if err != nil {
		s.writeError(w, r, http.StatusBadRequest, ErrTypeInvalidRequest, "'balls' must be an integer")
		return 0, false
	}
	return balls, true
}

type numbersResponse struct {
	TimeKey   string `json:"time_key"`
	BallCount int    `json:"ball_count"`
	Numbers   []int  `json:"numbers"`
	Fallback  bool   `json:"fallback"`
}

func (s *Server) handleNumbers(w http.ResponseWriter, r *http.Request) {
	timeKey, ok := s.timeKeyParam(w, r)
	if !ok {
		return
	}
	table := s.Table()
	balls, ok := s.ballsParam(w, r, table.DefaultBallCount)
	if !ok {
		return
	}
	_, known := table.Patterns[timeKey]
	s.writeJSON(w, http.StatusOK, numbersResponse{
		TimeKey:   timeKey,
		BallCount: balls,
		Numbers:   table.OptimalNumbers(timeKey, balls),
		Fallback:  !known,
	})
}

type combinationsResponse struct {
	TimeKey      string                 `json:"time_key"`
	Combinations []patterns.Combination `json:"combinations"`
}

func (s *Server) handleCombinations(w http.ResponseWriter, r *http.Request) {
	timeKey, ok := s.timeKeyParam(w, r)
	if !ok {
		return
	}
	s.writeJSON(w, http.StatusOK, combinationsResponse{
		TimeKey:      timeKey,
		Combinations: s.Table().BestCombinations(timeKey),
	})
}

type confidenceResponse struct {
	TimeKey    string  `json:"time_key"`
	Confidence float64 `json:"confidence"`
}

func (s *Server) handleConfidence(w http.ResponseWriter, r *http.Request) {
	timeKey, ok := s.timeKeyParam(w, r)
	if !ok {
		return
	}
	s.writeJSON(w, http.StatusOK, confidenceResponse{
		TimeKey:    timeKey,
		Confidence: s.Table().Confidence(timeKey),
	})
}

type multiplierResponse struct {
	BallCount  int     `json:"ball_count"`
	Multiplier float64 `json:"multiplier"`
}

// handleMultiplier looks up the payout multiplier for a ball count. An
// unoffered count yields multiplier 0 with status 200 — "not offered" is a
// legitimate answer, not an error.
func (s *Server) handleMultiplier(w http.ResponseWriter, r *http.Request) {
	balls, err := strconv.Atoi(chi.URLParam(r, "balls"))
	if err != nil {
		s.writeError(w, r, http.StatusBadRequest, ErrTypeInvalidRequest, "ball count must be an integer")
		return
	}
	s.writeJSON(w, http.StatusOK, multiplierResponse{
		BallCount:  balls,
		Multiplier: s.Table().Multiplier(balls),
	})
}

type recommendationResponse struct {
	patterns.Recommendation
	CorrectedTime    string `json:"corrected_time"`
	TimingOffset     int    `json:"timing_offset_minutes"`
	OptimalBallCount int    `json:"optimal_ball_count"`
}

func (s *Server) handleRecommendations(w http.ResponseWriter, r *http.Request) {
	timeKey, ok := s.timeKeyParam(w, r)
	if !ok {
		return
	}
	table := s.Table()
	balls, ok := s.ballsParam(w, r, 0)
	if !ok {
		return
	}
	risk := r.URL.Query().Get("risk")
	if risk == "" {
		risk = "medium"
	}

	corrected, err := table.ApplyTimingCorrection(timeKey)
	if err != nil {
		// timeKeyParam already validated the key
		s.writeError(w, r, http.StatusInternalServerError, ErrTypeInternal, err.Error())
		return
	}

	s.writeJSON(w, http.StatusOK, recommendationResponse{
		Recommendation:   table.Recommend(timeKey, balls),
		CorrectedTime:    corrected,
		TimingOffset:     table.TimingOffsetMinutes,
		OptimalBallCount: table.OptimalBallCount(timeKey, risk),
	})
}

type optimalTimesResponse struct {
	OptimalTimes   []string `json:"optimal_times"`
	TopActiveHours []string `json:"top_active_hours"`
	TopIntervals   []string `json:"top_intervals"`
}

func (s *Server) handleOptimalTimes(w http.ResponseWriter, r *http.Request) {
	table := s.Table()
	s.writeJSON(w, http.StatusOK, optimalTimesResponse{
		OptimalTimes:   table.OptimalTimes,
		TopActiveHours: table.TopActiveHours,
		TopIntervals:   table.TopIntervals,
	})
}

func (s *Server) handleNextOptimal(w http.ResponseWriter, r *http.Request) {
	after := r.URL.Query().Get("after")
	if after == "" {
		after = time.Now().Format("15:04")
	}
	next, err := s.Table().NextOptimalTime(after)
	if err != nil {
		s.writeError(w, r, http.StatusBadRequest, ErrTypeInvalidTimeKey, err.Error())
		return
	}
	s.writeJSON(w, http.StatusOK, next)
}

type analyzeResponse struct {
	RunID           string `json:"run_id"`
	AnalysisVersion string `json:"analysis_version"`
	TotalDraws      int    `json:"total_draws"`
	PatternCount    int    `json:"pattern_count"`
}

// handleAnalyze rebuilds the pattern table from the stored draw history and
// swaps it into service.
func (s *Server) handleAnalyze(w http.ResponseWriter, r *http.Request) {
	if s.db == nil {
		s.writeError(w, r, http.StatusServiceUnavailable, ErrTypeStoreDisabled, "no draw store configured")
		return
	}

	draws, err := s.db.ListDraws(0, 0)
	if err != nil {
		s.writeError(w, r, http.StatusInternalServerError, ErrTypeInternal, err.Error())
		return
	}

	cfg, err := analyze.New(s.log).Run(draws)
	if errors.Is(err, analyze.ErrNoDraws) {
		s.writeError(w, r, http.StatusConflict, ErrTypeInvalidRequest, "not enough draw history to analyze")
		return
	}
	if err != nil {
		s.writeError(w, r, http.StatusInternalServerError, ErrTypeInternal, err.Error())
		return
	}

	run := &store.AnalysisRun{
		Version:      cfg.AnalysisVersion,
		TotalDraws:   cfg.TotalDraws,
		PatternCount: len(cfg.Patterns),
	}
	if err := s.db.SaveAnalysisRun(run); err != nil {
		s.writeError(w, r, http.StatusInternalServerError, ErrTypeInternal, err.Error())
		return
	}

	s.table.Store(cfg)
	s.log.Info().
		Str("run_id", run.ID).
		Int("total_draws", cfg.TotalDraws).
		Int("slots", len(cfg.Patterns)).
		Msg("pattern table rebuilt")

	s.writeJSON(w, http.StatusOK, analyzeResponse{
		RunID:           run.ID,
		AnalysisVersion: cfg.AnalysisVersion,
		TotalDraws:      cfg.TotalDraws,
		PatternCount:    len(cfg.Patterns),
	})
}
