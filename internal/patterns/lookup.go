package patterns

import "math"

// Confidence scoring factors from the v5 analysis. The cap is applied once,
// to the final sum, never per term.
const (
	baseConfidence        = 50.0
	drawMultiplier        = 1.5
	drawBoostCap          = 25.0
	consistencyMultiplier = 0.4
	combinationMultiplier = 2.0
	maxConfidence         = 95.0

	// unknownSlotConfidence is the flat score for slots with no recorded
	// pattern. It is a neutral default, not derived from the fallback lists.
	unknownSlotConfidence = 60.0
)

// OptimalNumbers returns the strongest numbers to play at the given time
// slot, sized at twice the ball count so callers get primary picks plus one
// backup per pick. Unknown time keys fall back to the always-hot list. If
// the source list is shorter than 2×ballCount, everything available is
// returned without padding. A ball count of zero or less is passed through
// rather than clamped and yields an empty slice.
func (c *Config) OptimalNumbers(timeKey string, ballCount int) []int {
	hot := c.AlwaysHotNumbers
	if p, ok := c.Patterns[timeKey]; ok {
		hot = p.HotNumbers
	}
	n := ballCount * 2
	if n <= 0 {
		return []int{}
	}
	if n > len(hot) {
		n = len(hot)
	}
	out := make([]int, n)
	copy(out, hot[:n])
	return out
}

// BestCombinations returns the recurring number pairs recorded for the
// slot, most frequent first. Unknown or pairless slots return an empty
// slice; unlike OptimalNumbers there is no fallback to global data.
func (c *Config) BestCombinations(timeKey string) []Combination {
	p, ok := c.Patterns[timeKey]
	if !ok || len(p.Combinations) == 0 {
		return []Combination{}
	}
	out := make([]Combination, len(p.Combinations))
	copy(out, p.Combinations)
	return out
}

// Confidence scores how reliable the slot's pattern is. Known slots score
// in (50, 95]: a base of 50 plus boosts for historical draw count (capped
// at 25), consistency, and recorded combinations, with the sum clamped to
// 95. Slots with no recorded pattern score a flat 60. The result is
// returned unrounded.
func (c *Config) Confidence(timeKey string) float64 {
	p, ok := c.Patterns[timeKey]
	if !ok {
		return unknownSlotConfidence
	}
	score := baseConfidence +
		math.Min(float64(p.TotalDraws)*drawMultiplier, drawBoostCap) +
		p.Consistency*consistencyMultiplier +
		float64(len(p.Combinations))*combinationMultiplier
	return math.Min(score, maxConfidence)
}

// Multiplier returns the payout multiplier for the given ball count, or 0
// when no multiplier is offered for that count.
func (c *Config) Multiplier(ballCount int) float64 {
	return c.Multipliers[ballCount]
}
