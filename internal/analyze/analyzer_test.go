package analyze

import (
	"bytes"
	"errors"
	"math"
	"reflect"
	"testing"

	"github.com/rs/zerolog"

	"github.com/MJE43/keno-time-patterns-go/internal/patterns"
)

// fixtureDraws builds a history where numbers 1 and 2 land in every "01:00"
// draw and 3 in four of them, with unique filler numbers elsewhere. The
// "02:00" slot has too few draws to pass the analysis threshold.
func fixtureDraws() []Draw {
	balls := [][]int{
		{1, 2, 3, 10, 11},
		{1, 2, 3, 12, 13},
		{1, 2, 3, 14, 15},
		{1, 2, 3, 16, 17},
		{1, 2, 18, 19, 20},
		{1, 2, 21, 22, 23},
	}
	draws := make([]Draw, 0, len(balls)+2)
	for _, b := range balls {
		draws = append(draws, Draw{TimeKey: "01:00", Balls: b})
	}
	draws = append(draws,
		Draw{TimeKey: "02:00", Balls: []int{40, 41, 42, 43, 44}},
		Draw{TimeKey: "02:00", Balls: []int{40, 41, 42, 43, 45}},
	)
	return draws
}

func TestAnalyzerRun(t *testing.T) {
	a := New(zerolog.Nop())
	cfg, err := a.Run(fixtureDraws())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.TotalDraws != 8 {
		t.Errorf("Expected 8 total draws, got %d", cfg.TotalDraws)
	}
	if cfg.AnalysisVersion != Version {
		t.Errorf("Expected version %q, got %q", Version, cfg.AnalysisVersion)
	}

	// Only "01:00" clears the 5-draw threshold.
	if len(cfg.Patterns) != 1 {
		t.Fatalf("Expected 1 analyzed slot, got %d", len(cfg.Patterns))
	}
	p, ok := cfg.Patterns["01:00"]
	if !ok {
		t.Fatal("Missing pattern for 01:00")
	}
	if p.TotalDraws != 6 {
		t.Errorf("Expected 6 slot draws, got %d", p.TotalDraws)
	}
	if len(p.HotNumbers) < 3 || p.HotNumbers[0] != 1 || p.HotNumbers[1] != 2 || p.HotNumbers[2] != 3 {
		t.Errorf("Expected hot numbers to start 1, 2, 3, got %v", p.HotNumbers)
	}

	// 23 of 30 numbers come from the top ten, plus a 6/20 draw bonus.
	wantConsistency := 23.0/30.0*100 + 0.3
	if math.Abs(p.Consistency-wantConsistency) > 1e-9 {
		t.Errorf("Expected consistency %v, got %v", wantConsistency, p.Consistency)
	}

	wantPairs := []patterns.Combination{
		{Numbers: [2]int{1, 2}, Frequency: 6},
		{Numbers: [2]int{1, 3}, Frequency: 4},
		{Numbers: [2]int{2, 3}, Frequency: 4},
	}
	if !reflect.DeepEqual(p.Combinations, wantPairs) {
		t.Errorf("Expected pairs %v, got %v", wantPairs, p.Combinations)
	}

	if !reflect.DeepEqual(cfg.OptimalTimes, []string{"01:00"}) {
		t.Errorf("Expected optimal times [01:00], got %v", cfg.OptimalTimes)
	}
	if !reflect.DeepEqual(cfg.TopActiveHours, []string{"01:00-01:59"}) {
		t.Errorf("Expected top active hours [01:00-01:59], got %v", cfg.TopActiveHours)
	}
}

func TestAnalyzerGlobalHotCold(t *testing.T) {
	hot, cold := globalHotCold(fixtureDraws())

	if len(hot) != 10 || len(cold) != 10 {
		t.Fatalf("Expected 10 hot and 10 cold numbers, got %d and %d", len(hot), len(cold))
	}
	if hot[0] != 1 || hot[1] != 2 || hot[2] != 3 {
		t.Errorf("Expected global hot to start 1, 2, 3, got %v", hot)
	}
	for _, n := range cold {
		if n == 1 || n == 2 || n == 3 {
			t.Errorf("Frequent number %d in the cold list", n)
		}
	}
}

func TestAnalyzerRunEmpty(t *testing.T) {
	a := New(zerolog.Nop())
	if _, err := a.Run(nil); !errors.Is(err, ErrNoDraws) {
		t.Errorf("Expected ErrNoDraws, got %v", err)
	}

	// Draws exist but no slot clears the threshold.
	few := []Draw{{TimeKey: "01:00", Balls: []int{1, 2, 3}}}
	if _, err := a.Run(few); !errors.Is(err, ErrNoDraws) {
		t.Errorf("Expected ErrNoDraws, got %v", err)
	}
}

func TestFrequentPairsThreshold(t *testing.T) {
	group := []Draw{
		{Balls: []int{1, 2, 3}},
		{Balls: []int{1, 2, 4}},
		{Balls: []int{5, 6, 7}},
	}
	pairs := frequentPairs(group, 10)
	want := []patterns.Combination{{Numbers: [2]int{1, 2}, Frequency: 2}}
	if !reflect.DeepEqual(pairs, want) {
		t.Errorf("Expected %v, got %v", want, pairs)
	}
}

func TestMultiplierPotential(t *testing.T) {
	a := New(zerolog.Nop())
	frequency := map[int]int{1: 10, 2: 6, 3: 2}
	hot := []int{1, 2, 3}

	potentials := a.multiplierPotential(frequency, hot, 10)
	if len(potentials) != len(a.Multipliers) {
		t.Fatalf("Expected %d potentials, got %d", len(a.Multipliers), len(potentials))
	}

	// 1 ball: 10/10 hits at 3.6x -> EV 3.6
	mp := potentials[0]
	if mp.BallCount != 1 || mp.SuccessRate != 100 {
		t.Errorf("Expected 1-ball success rate 100, got %+v", mp)
	}
	if math.Abs(mp.ExpectedValue-3.6) > 1e-9 {
		t.Errorf("Expected 1-ball EV 3.6, got %v", mp.ExpectedValue)
	}

	// 2 balls: avg (10+6)/2 = 8 of 10 draws -> 80% at 15x -> EV 12
	mp = potentials[1]
	if math.Abs(mp.SuccessRate-80) > 1e-9 || math.Abs(mp.ExpectedValue-12) > 1e-9 {
		t.Errorf("Expected 2-ball 80%% / EV 12, got %+v", mp)
	}

	// Ball counts beyond the hot list size stay at zero.
	for _, mp := range potentials {
		if mp.BallCount > len(hot) && (mp.SuccessRate != 0 || mp.ExpectedValue != 0) {
			t.Errorf("Expected zero potential for %d balls, got %+v", mp.BallCount, mp)
		}
	}
}

func TestScoreSlotOrdering(t *testing.T) {
	a := New(zerolog.Nop())

	strong := a.analyzeSlot("01:00", fixtureDraws()[:6])
	weakDraws := []Draw{
		{Balls: []int{10, 20, 30}},
		{Balls: []int{11, 21, 31}},
		{Balls: []int{12, 22, 32}},
		{Balls: []int{13, 23, 33}},
		{Balls: []int{14, 24, 34}},
	}
	weak := a.analyzeSlot("02:00", weakDraws)

	if a.scoreSlot(strong) <= a.scoreSlot(weak) {
		t.Errorf("Expected repeating-pattern slot to outscore the uniform one: %v vs %v",
			a.scoreSlot(strong), a.scoreSlot(weak))
	}
}

func TestExportRoundTrip(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteJSON(&buf, patterns.Default); err != nil {
		t.Fatalf("WriteJSON: %v", err)
	}
	got, err := ReadJSON(&buf)
	if err != nil {
		t.Fatalf("ReadJSON: %v", err)
	}
	if !reflect.DeepEqual(got, patterns.Default) {
		t.Error("Exported table did not round-trip")
	}
}

func TestReadJSONDefaults(t *testing.T) {
	got, err := ReadJSON(bytes.NewReader([]byte("{}")))
	if err != nil {
		t.Fatalf("ReadJSON: %v", err)
	}
	if got.DefaultBallCount != 4 || got.DrawIntervalMinutes != 5 {
		t.Errorf("Expected standard defaults, got %+v", got)
	}
	if got.Multiplier(4) != 240.0 {
		t.Errorf("Expected default multipliers, got %v", got.Multipliers)
	}
}
