package analyze

import (
	"errors"
	"fmt"
	"sort"

	"github.com/rs/zerolog"

	"github.com/MJE43/keno-time-patterns-go/internal/patterns"
)

// Version tags tables produced by this analyzer.
const Version = "5.0"

// ErrNoDraws is returned when an analysis is requested over an empty
// history.
var ErrNoDraws = errors.New("no draws to analyze")

// Analyzer rebuilds a pattern table from historical draws, the offline
// counterpart of the read-only lookup service. Zero-value fields are filled
// with the standard analysis parameters by New.
type Analyzer struct {
	MinSlotDraws int             // slots with fewer draws are skipped
	HotListSize  int             // hot numbers kept per slot
	MaxPairs     int             // recurring pairs considered per slot
	Multipliers  map[int]float64 // venue payout table

	log zerolog.Logger
}

// Per-slot limits on what gets exported into the final table.
const (
	exportedPairs   = 5
	exportedTimes   = 10
	globalListSize  = 10
	activeHoursSize = 5
)

// New returns an Analyzer with the standard v5 analysis parameters.
func New(log zerolog.Logger) *Analyzer {
	return &Analyzer{
		MinSlotDraws: 5,
		HotListSize:  15,
		MaxPairs:     10,
		Multipliers:  patterns.Default.Multipliers,
		log:          log,
	}
}

// slot carries the intermediate per-time-key analysis before scoring.
type slot struct {
	timeKey     string
	draws       int
	frequency   map[int]int
	hotNumbers  []int
	consistency float64
	pairs       []patterns.Combination
	potential   []MultiplierPotential
	score       float64
}

// Run analyzes the full draw history and assembles a pattern table.
func (a *Analyzer) Run(draws []Draw) (*patterns.Config, error) {
	if len(draws) == 0 {
		return nil, ErrNoDraws
	}

	groups := make(map[string][]Draw)
	for _, d := range draws {
		groups[d.TimeKey] = append(groups[d.TimeKey], d)
	}

	slots := make([]slot, 0, len(groups))
	for timeKey, group := range groups {
		if len(group) < a.MinSlotDraws {
			continue
		}
		s := a.analyzeSlot(timeKey, group)
		s.score = a.scoreSlot(s)
		slots = append(slots, s)
		a.log.Debug().
			Str("time_key", timeKey).
			Int("draws", s.draws).
			Float64("consistency", s.consistency).
			Float64("score", s.score).
			Msg("analyzed slot")
	}
	if len(slots) == 0 {
		return nil, ErrNoDraws
	}

	sort.Slice(slots, func(i, j int) bool {
		if slots[i].score != slots[j].score {
			return slots[i].score > slots[j].score
		}
		return slots[i].timeKey < slots[j].timeKey
	})

	optimal := make([]string, 0, exportedTimes)
	for _, s := range slots {
		if len(optimal) == exportedTimes {
			break
		}
		optimal = append(optimal, s.timeKey)
	}

	table := make(map[string]patterns.TimeSlotPattern, len(slots))
	for _, s := range slots {
		pairs := s.pairs
		if len(pairs) > exportedPairs {
			pairs = pairs[:exportedPairs]
		}
		table[s.timeKey] = patterns.TimeSlotPattern{
			HotNumbers:   s.hotNumbers,
			TotalDraws:   s.draws,
			Consistency:  s.consistency,
			Combinations: pairs,
		}
	}

	alwaysHot, alwaysCold := globalHotCold(draws)

	cfg := &patterns.Config{
		TotalDraws:          len(draws),
		AnalysisVersion:     Version,
		DefaultBallCount:    patterns.Default.DefaultBallCount,
		TimingOffsetMinutes: patterns.Default.TimingOffsetMinutes,
		DrawIntervalMinutes: patterns.Default.DrawIntervalMinutes,
		Multipliers:         a.Multipliers,
		OptimalTimes:        optimal,
		AlwaysHotNumbers:    alwaysHot,
		AlwaysColdNumbers:   alwaysCold,
		TopActiveHours:      topActiveHours(slots),
		TopIntervals:        optimal,
		Patterns:            table,
	}

	a.log.Info().
		Int("total_draws", len(draws)).
		Int("slots", len(table)).
		Str("version", Version).
		Msg("analysis complete")
	return cfg, nil
}

// analyzeSlot computes frequency, hot numbers, consistency and recurring
// pairs for one time key's draws.
func (a *Analyzer) analyzeSlot(timeKey string, group []Draw) slot {
	frequency := make(map[int]int)
	totalNumbers := 0
	for _, d := range group {
		for _, n := range d.Balls {
			frequency[n]++
			totalNumbers++
		}
	}

	hot := topNumbers(frequency, a.HotListSize)

	return slot{
		timeKey:     timeKey,
		draws:       len(group),
		frequency:   frequency,
		hotNumbers:  hot,
		consistency: consistencyScore(frequency, totalNumbers, len(group)),
		pairs:       frequentPairs(group, a.MaxPairs),
		potential:   a.multiplierPotential(frequency, hot, len(group)),
	}
}

// consistencyScore measures what share of all drawn numbers the slot's ten
// strongest account for, plus a small bonus (capped at 5) for slots backed
// by more draws. Capped at 100.
func consistencyScore(frequency map[int]int, totalNumbers, draws int) float64 {
	if totalNumbers == 0 {
		return 0
	}
	top := topNumbers(frequency, globalListSize)
	topAppearances := 0
	for _, n := range top {
		topAppearances += frequency[n]
	}
	consistency := float64(topAppearances) / float64(totalNumbers) * 100

	bonus := float64(draws) / 20
	if bonus > 5 {
		bonus = 5
	}
	if consistency+bonus > 100 {
		return 100
	}
	return consistency + bonus
}

// frequentPairs counts how often each pair of numbers lands in the same
// draw and keeps the pairs seen at least twice, most frequent first.
func frequentPairs(group []Draw, max int) []patterns.Combination {
	counts := make(map[[2]int]int)
	for _, d := range group {
		balls := append([]int(nil), d.Balls...)
		sort.Ints(balls)
		for i := 0; i < len(balls); i++ {
			for j := i + 1; j < len(balls); j++ {
				if balls[i] == balls[j] {
					continue
				}
				counts[[2]int{balls[i], balls[j]}]++
			}
		}
	}

	pairs := make([]patterns.Combination, 0, len(counts))
	for pair, count := range counts {
		if count < 2 {
			continue
		}
		pairs = append(pairs, patterns.Combination{Numbers: pair, Frequency: count})
	}
	sort.Slice(pairs, func(i, j int) bool {
		if pairs[i].Frequency != pairs[j].Frequency {
			return pairs[i].Frequency > pairs[j].Frequency
		}
		if pairs[i].Numbers[0] != pairs[j].Numbers[0] {
			return pairs[i].Numbers[0] < pairs[j].Numbers[0]
		}
		return pairs[i].Numbers[1] < pairs[j].Numbers[1]
	})
	if len(pairs) > max {
		pairs = pairs[:max]
	}
	return pairs
}

// topNumbers orders the frequency map by descending count, breaking ties on
// the smaller number so output is deterministic.
func topNumbers(frequency map[int]int, max int) []int {
	numbers := make([]int, 0, len(frequency))
	for n := range frequency {
		numbers = append(numbers, n)
	}
	sort.Slice(numbers, func(i, j int) bool {
		if frequency[numbers[i]] != frequency[numbers[j]] {
			return frequency[numbers[i]] > frequency[numbers[j]]
		}
		return numbers[i] < numbers[j]
	})
	if len(numbers) > max {
		numbers = numbers[:max]
	}
	return numbers
}

// globalHotCold returns the ten most and ten least frequently drawn numbers
// across the whole history.
func globalHotCold(draws []Draw) (hot, cold []int) {
	frequency := make(map[int]int)
	for _, d := range draws {
		for _, n := range d.Balls {
			frequency[n]++
		}
	}
	ordered := topNumbers(frequency, len(frequency))

	hot = append(hot, ordered[:min(globalListSize, len(ordered))]...)
	coldStart := len(ordered) - globalListSize
	if coldStart < 0 {
		coldStart = 0
	}
	cold = append(cold, ordered[coldStart:]...)
	return hot, cold
}

// topActiveHours ranks hours by average consistency-weighted draw volume
// and labels the strongest as "HH:00-HH:59" ranges.
func topActiveHours(slots []slot) []string {
	type hourScore struct {
		hour  int
		total float64
		count int
	}
	byHour := make(map[int]*hourScore)
	for _, s := range slots {
		hour, _, err := patterns.ParseTimeKey(s.timeKey)
		if err != nil {
			continue
		}
		hs, ok := byHour[hour]
		if !ok {
			hs = &hourScore{hour: hour}
			byHour[hour] = hs
		}
		hs.total += s.consistency * float64(s.draws)
		hs.count++
	}

	scores := make([]*hourScore, 0, len(byHour))
	for _, hs := range byHour {
		scores = append(scores, hs)
	}
	sort.Slice(scores, func(i, j int) bool {
		avgI := scores[i].total / float64(scores[i].count)
		avgJ := scores[j].total / float64(scores[j].count)
		if avgI != avgJ {
			return avgI > avgJ
		}
		return scores[i].hour < scores[j].hour
	})
	if len(scores) > activeHoursSize {
		scores = scores[:activeHoursSize]
	}

	hours := make([]string, 0, len(scores))
	for _, hs := range scores {
		hours = append(hours, fmt.Sprintf("%02d:00-%02d:59", hs.hour, hs.hour))
	}
	return hours
}
