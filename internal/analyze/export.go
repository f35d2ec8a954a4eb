package analyze

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/MJE43/keno-time-patterns-go/internal/patterns"
)

// WriteJSON exports a generated pattern table so the server can load it
// at startup.
func WriteJSON(w io.Writer, cfg *patterns.Config) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(cfg); err != nil {
		return fmt.Errorf("encode pattern table: %w", err)
	}
	return nil
}

// ReadJSON loads a previously exported pattern table, filling in standard
// defaults for fields older exports may lack.
func ReadJSON(r io.Reader) (*patterns.Config, error) {
	var cfg patterns.Config
	if err := json.NewDecoder(r).Decode(&cfg); err != nil {
		return nil, fmt.Errorf("decode pattern table: %w", err)
	}
	if cfg.DefaultBallCount <= 0 {
		cfg.DefaultBallCount = patterns.Default.DefaultBallCount
	}
	if cfg.DrawIntervalMinutes <= 0 {
		cfg.DrawIntervalMinutes = patterns.Default.DrawIntervalMinutes
	}
	if cfg.Multipliers == nil {
		cfg.Multipliers = patterns.Default.Multipliers
	}
	return &cfg, nil
}

// LoadTableFile reads a pattern table from disk.
func LoadTableFile(path string) (*patterns.Config, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open pattern table: %w", err)
	}
	defer f.Close()
	return ReadJSON(f)
}
