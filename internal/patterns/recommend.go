package patterns

// Recommendation bundles everything a presentation layer needs to render a
// play suggestion for one time slot. Primary holds the picks themselves,
// Backup the next-strongest alternates, Extended the full candidate pool.
type Recommendation struct {
	TimeKey         string        `json:"time_key"`
	Primary         []int         `json:"primary_numbers"`
	Backup          []int         `json:"backup_numbers"`
	Extended        []int         `json:"extended_numbers"`
	Confidence      float64       `json:"confidence"`
	Multiplier      float64       `json:"multiplier"`
	HistoricalDraws int           `json:"historical_draws"`
	Consistency     float64       `json:"consistency_score"`
	Combinations    []Combination `json:"combinations,omitempty"`
	Fallback        bool          `json:"fallback"`
}

// maxRecommendedCombinations limits how many pairs ride along on a
// recommendation payload.
const maxRecommendedCombinations = 3

// Recommend builds a full play suggestion for the slot at the given ball
// count. A ball count of zero or less uses the configured default. Unknown
// slots degrade to the always-hot list with the neutral confidence score
// and Fallback set.
func (c *Config) Recommend(timeKey string, ballCount int) Recommendation {
	if ballCount <= 0 {
		ballCount = c.DefaultBallCount
	}
	p, ok := c.Patterns[timeKey]
	if !ok {
		return Recommendation{
			TimeKey:    timeKey,
			Primary:    sliceRange(c.AlwaysHotNumbers, 0, ballCount),
			Backup:     sliceRange(c.AlwaysHotNumbers, ballCount, ballCount*2),
			Extended:   sliceRange(c.AlwaysHotNumbers, 0, ballCount*3),
			Confidence: unknownSlotConfidence,
			Multiplier: c.Multiplier(ballCount),
			Fallback:   true,
		}
	}
	combos := p.Combinations
	if len(combos) > maxRecommendedCombinations {
		combos = combos[:maxRecommendedCombinations]
	}
	return Recommendation{
		TimeKey:         timeKey,
		Primary:         sliceRange(p.HotNumbers, 0, ballCount),
		Backup:          sliceRange(p.HotNumbers, ballCount, ballCount*2),
		Extended:        sliceRange(p.HotNumbers, 0, ballCount*3),
		Confidence:      c.Confidence(timeKey),
		Multiplier:      c.Multiplier(ballCount),
		HistoricalDraws: p.TotalDraws,
		Consistency:     p.Consistency,
		Combinations:    combos,
	}
}

// OptimalBallCount suggests how many balls to play at the slot for a risk
// tolerance of "low", "medium" or "high". Higher confidence unlocks larger
// plays; unrecognized tolerances are treated as medium, and unknown slots
// return the configured default.
func (c *Config) OptimalBallCount(timeKey, riskTolerance string) int {
	if _, ok := c.Patterns[timeKey]; !ok {
		return c.DefaultBallCount
	}
	confidence := c.Confidence(timeKey)
	switch riskTolerance {
	case "low":
		switch {
		case confidence >= 80:
			return 3
		case confidence >= 70:
			return 2
		default:
			return 1
		}
	case "high":
		switch {
		case confidence >= 85:
			return 6
		case confidence >= 75:
			return 5
		default:
			return 4
		}
	default:
		switch {
		case confidence >= 80:
			return 4
		case confidence >= 70:
			return 3
		default:
			return 2
		}
	}
}

// NextOptimal describes the closest upcoming optimal slot relative to some
// reference time.
type NextOptimal struct {
	TimeKey     string `json:"next_optimal_time"`
	WaitMinutes int    `json:"wait_minutes"`
}

// NextOptimalTime finds the optimal slot with the shortest forward wait
// from the given time, wrapping past midnight. A slot equal to the current
// time counts as a full day away. When no optimal times are configured the
// zero value is returned.
func (c *Config) NextOptimalTime(currentTime string) (NextOptimal, error) {
	hour, minute, err := ParseTimeKey(currentTime)
	if err != nil {
		return NextOptimal{}, err
	}
	now := hour*60 + minute
	best := NextOptimal{WaitMinutes: -1}
	for _, opt := range c.OptimalTimes {
		oh, om, err := ParseTimeKey(opt)
		if err != nil {
			continue
		}
		wait := oh*60 + om - now
		if wait <= 0 {
			wait += 24 * 60
		}
		if best.WaitMinutes < 0 || wait < best.WaitMinutes {
			best = NextOptimal{TimeKey: opt, WaitMinutes: wait}
		}
	}
	if best.WaitMinutes < 0 {
		return NextOptimal{}, nil
	}
	return best, nil
}

// sliceRange copies nums[lo:hi], clamping both bounds to the available
// length so short lists never panic or pad.
func sliceRange(nums []int, lo, hi int) []int {
	if lo > len(nums) {
		lo = len(nums)
	}
	if hi > len(nums) {
		hi = len(nums)
	}
	if lo >= hi {
		return []int{}
	}
	out := make([]int, hi-lo)
	copy(out, nums[lo:hi])
	return out
}
