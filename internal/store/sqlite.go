package store

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"

	"github.com/MJE43/keno-time-patterns-go/internal/analyze"
)

// SQLiteDB implements the DB interface using SQLite.
type SQLiteDB struct {
	db *sql.DB
}

// NewSQLiteDB creates a new SQLite database connection.
func NewSQLiteDB(path string) (*SQLiteDB, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	// Enable WAL mode for better concurrency
	if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
		return nil, fmt.Errorf("failed to enable WAL mode: %w", err)
	}

	return &SQLiteDB{db: db}, nil
}

// Close closes the database connection.
func (s *SQLiteDB) Close() error {
	return s.db.Close()
}

// Migrate runs database migrations.
func (s *SQLiteDB) Migrate() error {
	migrations := []string{
		`CREATE TABLE IF NOT EXISTS draws (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			issue TEXT NOT NULL DEFAULT '',
			drawn_date TEXT NOT NULL DEFAULT '',
			time_key TEXT NOT NULL,
			balls TEXT NOT NULL
		)`,
		`CREATE INDEX IF NOT EXISTS idx_draws_time_key ON draws(time_key)`,
		`CREATE UNIQUE INDEX IF NOT EXISTS idx_draws_issue ON draws(issue) WHERE issue != ''`,
		`CREATE TABLE IF NOT EXISTS analysis_runs (
			id TEXT PRIMARY KEY,
			version TEXT NOT NULL,
			total_draws INTEGER NOT NULL DEFAULT 0,
			pattern_count INTEGER NOT NULL DEFAULT 0,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		)`,
	}

	for _, migration := range migrations {
		if _, err := s.db.Exec(migration); err != nil {
			return fmt.Errorf("migration failed: %w", err)
		}
	}
	return nil
}

// SaveDraws inserts a batch of draws in one transaction. Draws whose issue
// number is already stored are ignored, so re-importing an overlapping feed
// is safe.
func (s *SQLiteDB) SaveDraws(draws []analyze.Draw) error {
	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer tx.Rollback()

	stmt, err := tx.Prepare(`INSERT OR IGNORE INTO draws (issue, drawn_date, time_key, balls) VALUES (?, ?, ?, ?)`)
	if err != nil {
		return fmt.Errorf("prepare insert: %w", err)
	}
	defer stmt.Close()

	for _, d := range draws {
		balls, err := json.Marshal(d.Balls)
		if err != nil {
			return fmt.Errorf("marshal balls: %w", err)
		}
		if _, err := stmt.Exec(d.Issue, d.Date, d.TimeKey, string(balls)); err != nil {
			return fmt.Errorf("insert draw %s: %w", d.Issue, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit draws: %w", err)
	}
	return nil
}

// ListDraws returns stored draws in insertion order. A non-positive limit
// returns everything.
func (s *SQLiteDB) ListDraws(limit, offset int) ([]analyze.Draw, error) {
	if limit <= 0 {
		limit = -1 // sqlite: no limit
	}
	rows, err := s.db.Query(
		`SELECT issue, drawn_date, time_key, balls FROM draws ORDER BY id LIMIT ? OFFSET ?`,
		limit, offset)
	if err != nil {
		return nil, fmt.Errorf("query draws: %w", err)
	}
	defer rows.Close()
	return scanDraws(rows)
}

// DrawsByTimeKey returns all draws recorded for one time slot.
func (s *SQLiteDB) DrawsByTimeKey(timeKey string) ([]analyze.Draw, error) {
	rows, err := s.db.Query(
		`SELECT issue, drawn_date, time_key, balls FROM draws WHERE time_key = ? ORDER BY id`,
		timeKey)
	if err != nil {
		return nil, fmt.Errorf("query draws by time key: %w", err)
	}
	defer rows.Close()
	return scanDraws(rows)
}

func scanDraws(rows *sql.Rows) ([]analyze.Draw, error) {
	var draws []analyze.Draw
	for rows.Next() {
		var d analyze.Draw
		var balls string
		if err := rows.Scan(&d.Issue, &d.Date, &d.TimeKey, &balls); err != nil {
			return nil, fmt.Errorf("scan draw: %w", err)
		}
		if err := json.Unmarshal([]byte(balls), &d.Balls); err != nil {
			return nil, fmt.Errorf("unmarshal balls: %w", err)
		}
		draws = append(draws, d)
	}
	return draws, rows.Err()
}

// CountDraws returns the number of stored draws.
func (s *SQLiteDB) CountDraws() (int, error) {
	var count int
	if err := s.db.QueryRow(`SELECT COUNT(*) FROM draws`).Scan(&count); err != nil {
		return 0, fmt.Errorf("count draws: %w", err)
	}
	return count, nil
}

// SaveAnalysisRun records an analyzer execution, assigning an ID and
// timestamp if the caller left them empty.
func (s *SQLiteDB) SaveAnalysisRun(run *AnalysisRun) error {
	if run.ID == "" {
		run.ID = uuid.New().String()
	}
	if run.CreatedAt.IsZero() {
		run.CreatedAt = time.Now().UTC()
	}
	_, err := s.db.Exec(
		`INSERT INTO analysis_runs (id, version, total_draws, pattern_count, created_at) VALUES (?, ?, ?, ?, ?)`,
		run.ID, run.Version, run.TotalDraws, run.PatternCount, run.CreatedAt)
	if err != nil {
		return fmt.Errorf("insert analysis run: %w", err)
	}
	return nil
}

// LatestAnalysisRun returns the most recent analyzer execution, or nil if
// none has been recorded.
func (s *SQLiteDB) LatestAnalysisRun() (*AnalysisRun, error) {
	var run AnalysisRun
	err := s.db.QueryRow(
		`SELECT id, version, total_draws, pattern_count, created_at FROM analysis_runs ORDER BY created_at DESC, id DESC LIMIT 1`).
		Scan(&run.ID, &run.Version, &run.TotalDraws, &run.PatternCount, &run.CreatedAt)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("query latest analysis run: %w", err)
	}
	return &run, nil
}
