package api

import (
	"net/http"
	"time"
)

type healthResponse struct {
	Status          string  `json:"status"`
	Version         string  `json:"version"`
	AnalysisVersion string  `json:"analysis_version"`
	UptimeSeconds   float64 `json:"uptime_seconds"`
	TotalDraws      int     `json:"total_draws"`
	PatternCount    int     `json:"pattern_count"`
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	table := s.Table()
	s.writeJSON(w, http.StatusOK, healthResponse{
		Status:          "ok",
		Version:         ServiceVersion,
		AnalysisVersion: table.AnalysisVersion,
		UptimeSeconds:   time.Since(s.startTime).Seconds(),
		TotalDraws:      table.TotalDraws,
		PatternCount:    len(table.Patterns),
	})
}
