package store

import (
	"time"

	"github.com/MJE43/keno-time-patterns-go/internal/analyze"
)

// DB is the persistence boundary for draw history and analysis runs.
type DB interface {
	Close() error
	Migrate() error
	SaveDraws(draws []analyze.Draw) error
	ListDraws(limit, offset int) ([]analyze.Draw, error)
	DrawsByTimeKey(timeKey string) ([]analyze.Draw, error)
	CountDraws() (int, error)
	SaveAnalysisRun(run *AnalysisRun) error
	LatestAnalysisRun() (*AnalysisRun, error)
}

// AnalysisRun records one analyzer execution over the stored history.
type AnalysisRun struct {
	ID           string    `json:"id" db:"id"`
	Version      string    `json:"version" db:"version"`
	TotalDraws   int       `json:"total_draws" db:"total_draws"`
	PatternCount int       `json:"pattern_count" db:"pattern_count"`
	CreatedAt    time.Time `json:"created_at" db:"created_at"`
}
