package plan

import "math"

// Checkpoint grid: arts advance in ten-level spans, evaluated only at span
// boundaries.
const (
	LevelMin  = 99  // baseline checkpoint, zero investment
	LevelStep = 10  // span length between checkpoints
	LevelMax  = 499 // last checkpoint on the grid
)

// IsCheckpoint reports whether level lies on the stopping-point grid.
func IsCheckpoint(level int) bool {
	return level >= LevelMin && level <= LevelMax && (level-LevelMin)%LevelStep == 0
}

// difficultyTier returns the cost slope modifier for the band containing level.
func difficultyTier(level int) float64 {
	switch {
	case level >= 400:
		return 1.8
	case level >= 309:
		return 1.35
	default:
		return 1.0
	}
}

// CultivationValue returns the absolute zhenyuan an art holds at the given
// level. Strictly increasing in level for any positive difficulty; the result
// floors to an integer here, at the formula boundary.
func CultivationValue(level int, difficulty float64) int64 {
	raw := difficulty * float64(level) * float64(level) / 4.0
	return int64(math.Floor(raw))
}

// LevelCost returns the cultivation cost of the single level-up that reaches
// the given level. Strictly increasing in level: the quadratic term grows
// within a band and the tier modifier only ever steps upward across bands.
func LevelCost(level int, difficulty float64) float64 {
	return difficulty * difficultyTier(level) * (10.0 + float64(level)*float64(level)/100.0)
}

// BreakthroughTime returns the one-time gate charge for the ten-level span
// starting at spanStart, before any configured reduction.
func BreakthroughTime(spanStart int) float64 {
	switch {
	case spanStart >= 399:
		return 8
	case spanStart >= 299:
		return 4
	case spanStart >= 99:
		return 2
	default:
		return 0
	}
}
