package analyze

import (
	"math"
	"sort"

	"github.com/shopspring/decimal"
)

// MultiplierPotential estimates how the slot's strongest numbers would pay
// at one ball count: how often they actually landed, the venue multiplier,
// and the resulting expected value per unit staked.
type MultiplierPotential struct {
	BallCount     int     `json:"ball_count"`
	SuccessRate   float64 `json:"success_rate"`
	Multiplier    float64 `json:"multiplier"`
	ExpectedValue float64 `json:"expected_value"`
}

// multiplierPotential computes the potential for every offered ball count.
// Payout arithmetic goes through decimal so large multipliers don't pick up
// float drift.
func (a *Analyzer) multiplierPotential(frequency map[int]int, hot []int, draws int) []MultiplierPotential {
	ballCounts := make([]int, 0, len(a.Multipliers))
	for bc := range a.Multipliers {
		ballCounts = append(ballCounts, bc)
	}
	sort.Ints(ballCounts)

	potentials := make([]MultiplierPotential, 0, len(ballCounts))
	for _, bc := range ballCounts {
		mp := MultiplierPotential{BallCount: bc, Multiplier: a.Multipliers[bc]}
		if draws > 0 && bc <= len(hot) && bc > 0 {
			sum := 0
			for _, n := range hot[:bc] {
				sum += frequency[n]
			}
			avg := float64(sum) / float64(bc)
			mp.SuccessRate = avg / float64(draws) * 100
			mp.ExpectedValue = decimal.NewFromFloat(mp.SuccessRate).
				Mul(decimal.NewFromFloat(mp.Multiplier)).
				Div(decimal.NewFromInt(100)).
				InexactFloat64()
		}
		potentials = append(potentials, mp)
	}
	return potentials
}

// Scoring weights for ranking slots into the optimal-times list.
const (
	scoreDrawsCap    = 25.0
	scoreDrawsTarget = 30.0
	scoreCombosCap   = 20.0
)

// scoreSlot combines draw volume, consistency, combination strength,
// multiplier potential and frequency spread into one ranking score.
func (a *Analyzer) scoreSlot(s slot) float64 {
	drawsScore := float64(s.draws) / scoreDrawsTarget * scoreDrawsCap
	if drawsScore > scoreDrawsCap {
		drawsScore = scoreDrawsCap
	}

	consistencyScore := s.consistency * 0.3

	comboStrength := 0
	for _, pair := range s.pairs {
		comboStrength += pair.Frequency
	}
	comboScore := float64(len(s.pairs))*2 + float64(comboStrength)*0.5
	if comboScore > scoreCombosCap {
		comboScore = scoreCombosCap
	}

	// Focus the payout factor on the common mid-size plays.
	evSum, evCount := 0.0, 0
	for _, mp := range s.potential {
		if mp.BallCount >= 4 && mp.BallCount <= 6 {
			evSum += mp.ExpectedValue
			evCount++
		}
	}
	multiplierScore := 0.0
	if evCount > 0 {
		multiplierScore = evSum / float64(evCount) * 0.1
	}

	// A tighter frequency distribution means a more predictable slot.
	spreadScore := 10 - frequencyStdDev(s.frequency)*0.5
	if spreadScore < 0 {
		spreadScore = 0
	}

	return drawsScore + consistencyScore + comboScore + multiplierScore + spreadScore
}

// frequencyStdDev is the population standard deviation of the per-number
// draw counts.
func frequencyStdDev(frequency map[int]int) float64 {
	if len(frequency) == 0 {
		return 0
	}
	sum := 0
	for _, count := range frequency {
		sum += count
	}
	mean := float64(sum) / float64(len(frequency))

	variance := 0.0
	for _, count := range frequency {
		d := float64(count) - mean
		variance += d * d
	}
	return math.Sqrt(variance / float64(len(frequency)))
}
