package analyze

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/rs/zerolog"

	"github.com/MJE43/keno-time-patterns-go/internal/patterns"
)

// Draw is one historical draw from the cleaned feed: 20 balls in 1-80
// stamped with the venue's issue number and local draw time.
type Draw struct {
	Issue   string `json:"issue"`
	Date    string `json:"date"`
	TimeKey string `json:"time_key"`
	Balls   []int  `json:"balls"`
}

// csvHeader is the column layout of the cleaned draw feed.
func csvHeader() []string {
	header := []string{"Lottery Issue", "Date", "Time"}
	for i := 1; i <= patterns.DrawSize; i++ {
		header = append(header, fmt.Sprintf("Ball %d", i))
	}
	return header
}

// LoadCSV reads cleaned draw history. Rows with malformed times or ball
// numbers are logged and skipped rather than failing the whole load, since
// the upstream feed is occasionally dirty.
func LoadCSV(r io.Reader, log zerolog.Logger) ([]Draw, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1

	if _, err := reader.Read(); err != nil {
		return nil, fmt.Errorf("read header: %w", err)
	}

	var draws []Draw
	skipped := 0
	for {
		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read row: %w", err)
		}
		draw, err := parseRow(row)
		if err != nil {
			log.Warn().Err(err).Strs("row", row).Msg("skipping draw row")
			skipped++
			continue
		}
		draws = append(draws, draw)
	}

	log.Info().Int("draws", len(draws)).Int("skipped", skipped).Msg("loaded draw history")
	return draws, nil
}

func parseRow(row []string) (Draw, error) {
	if len(row) < 3+patterns.DrawSize {
		return Draw{}, fmt.Errorf("expected %d fields, got %d", 3+patterns.DrawSize, len(row))
	}
	timeKey, err := timeKeyFromClock(row[2])
	if err != nil {
		return Draw{}, err
	}
	balls := make([]int, 0, patterns.DrawSize)
	for _, field := range row[3 : 3+patterns.DrawSize] {
		n, err := strconv.Atoi(strings.TrimSpace(field))
		if err != nil {
			return Draw{}, fmt.Errorf("ball %q: %w", field, err)
		}
		if n < patterns.BallMin || n > patterns.BallMax {
			return Draw{}, fmt.Errorf("ball %d out of range", n)
		}
		balls = append(balls, n)
	}
	return Draw{
		Issue:   strings.TrimSpace(row[0]),
		Date:    strings.TrimSpace(row[1]),
		TimeKey: timeKey,
		Balls:   balls,
	}, nil
}

// timeKeyFromClock normalizes a feed clock value like "1:05:12" or "01:05"
// to a zero-padded "HH:MM" key.
func timeKeyFromClock(clock string) (string, error) {
	parts := strings.Split(strings.TrimSpace(clock), ":")
	if len(parts) < 2 {
		return "", fmt.Errorf("clock %q: %w", clock, patterns.ErrInvalidTimeKey)
	}
	hour, err := strconv.Atoi(parts[0])
	if err != nil {
		return "", fmt.Errorf("clock %q: %w", clock, patterns.ErrInvalidTimeKey)
	}
	minute, err := strconv.Atoi(parts[1])
	if err != nil {
		return "", fmt.Errorf("clock %q: %w", clock, patterns.ErrInvalidTimeKey)
	}
	if hour < 0 || hour > 23 || minute < 0 || minute > 59 {
		return "", fmt.Errorf("clock %q: %w", clock, patterns.ErrInvalidTimeKey)
	}
	return patterns.FormatTimeKey(hour, minute), nil
}

// FormatRaw converts the raw venue feed (one quoted record per line with an
// "issue, date, time, 20 balls" shape) into the cleaned CSV layout consumed
// by LoadCSV. Malformed records are logged and dropped. Returns the number
// of draws written.
func FormatRaw(r io.Reader, w io.Writer, log zerolog.Logger) (int, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1

	writer := csv.NewWriter(w)
	if err := writer.Write(csvHeader()); err != nil {
		return 0, fmt.Errorf("write header: %w", err)
	}

	written := 0
	for {
		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return written, fmt.Errorf("read raw row: %w", err)
		}
		if len(row) < 2+patterns.DrawSize {
			log.Warn().Strs("row", row).Msg("skipping malformed raw row")
			continue
		}

		issue := strings.TrimSpace(row[0])
		datePart, timePart := splitRawTimestamp(row[1])
		balls := make([]string, 0, patterns.DrawSize)
		ok := true
		for _, field := range row[2 : 2+patterns.DrawSize] {
			field = strings.TrimSpace(field)
			if field == "" {
				ok = false
				break
			}
			balls = append(balls, field)
		}
		if !ok {
			log.Warn().Str("issue", issue).Msg("skipping raw row with missing numbers")
			continue
		}

		record := append([]string{issue, datePart, timePart}, balls...)
		if err := writer.Write(record); err != nil {
			return written, fmt.Errorf("write row: %w", err)
		}
		written++
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return written, fmt.Errorf("flush output: %w", err)
	}
	log.Info().Int("draws", written).Msg("formatted raw feed")
	return written, nil
}

// splitRawTimestamp splits the feed's combined "date, time" field.
func splitRawTimestamp(raw string) (date, clock string) {
	raw = strings.TrimSpace(raw)
	if i := strings.Index(raw, ","); i >= 0 {
		return strings.TrimSpace(raw[:i]), strings.TrimSpace(raw[i+1:])
	}
	return "", ""
}
