package patterns

// Combination is a pair of numbers that has repeatedly appeared together in
// draws at a given time slot.
type Combination struct {
	Numbers   [2]int `json:"numbers"`
	Frequency int    `json:"frequency"`
}

// TimeSlotPattern holds the precomputed statistics for one five-minute draw
// slot: the most frequently drawn numbers (strongest first), how many
// historical draws back the slot, a 0-100 stability score, and the top
// recurring number pairs ordered by descending frequency.
type TimeSlotPattern struct {
	HotNumbers   []int         `json:"hot_numbers"`
	TotalDraws   int           `json:"total_draws"`
	Consistency  float64       `json:"consistency"`
	Combinations []Combination `json:"combinations"`
}

// Config is the full pattern table plus the global analysis constants.
// Keys in Patterns are five-minute aligned "HH:MM" time keys (24-hour,
// zero-padded). A Config is built once — by the analyzer or from a JSON
// export — and is read-only afterwards, so it can be shared across any
// number of concurrent readers without locking.
type Config struct {
	TotalDraws          int                        `json:"total_draws"`
	AnalysisVersion     string                     `json:"analysis_version"`
	DefaultBallCount    int                        `json:"default_ball_count"`
	TimingOffsetMinutes int                        `json:"timing_offset_minutes"`
	DrawIntervalMinutes int                        `json:"draw_interval_minutes"`
	Multipliers         map[int]float64            `json:"multipliers"`
	OptimalTimes        []string                   `json:"optimal_times"`
	AlwaysHotNumbers    []int                      `json:"always_hot_numbers"`
	AlwaysColdNumbers   []int                      `json:"always_cold_numbers"`
	TopActiveHours      []string                   `json:"top_active_hours"`
	TopIntervals        []string                   `json:"top_intervals"`
	Patterns            map[string]TimeSlotPattern `json:"time_patterns"`
}

// BallMin is the lowest number on the board.
const BallMin = 1

// BallMax is the highest number on the board.
const BallMax = 80

// DrawSize is the number of balls drawn each round.
const DrawSize = 20
