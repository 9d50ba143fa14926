package plan

import (
	"math"
	"testing"
)

func TestCultivationValue_StrictlyIncreasingInLevel(t *testing.T) {
	for _, difficulty := range []float64{0.1, 0.5, 1.0, 1.5, 3.0} {
		prev := CultivationValue(LevelMin, difficulty)
		for level := LevelMin + 1; level <= LevelMax; level++ {
			v := CultivationValue(level, difficulty)
			if v <= prev {
				t.Fatalf("value not strictly increasing: difficulty=%v level=%d value=%d prev=%d",
					difficulty, level, v, prev)
			}
			prev = v
		}
	}
}

func TestCultivationValue_FloorsAtFormulaBoundary(t *testing.T) {
	// 1.5 * 99 * 99 / 4 = 3675.375 → 3675
	if got := CultivationValue(99, 1.5); got != 3675 {
		t.Errorf("CultivationValue(99, 1.5): got %d, want 3675", got)
	}
	// Exact quarter: 1.0 * 100 * 100 / 4 = 2500
	if got := CultivationValue(100, 1.0); got != 2500 {
		t.Errorf("CultivationValue(100, 1.0): got %d, want 2500", got)
	}
}

func TestLevelCost_StrictlyIncreasingInLevel(t *testing.T) {
	for _, difficulty := range []float64{0.5, 1.0, 2.5} {
		prev := LevelCost(LevelMin, difficulty)
		for level := LevelMin + 1; level <= LevelMax; level++ {
			c := LevelCost(level, difficulty)
			if c <= prev {
				t.Fatalf("cost not strictly increasing: difficulty=%v level=%d cost=%f prev=%f",
					difficulty, level, c, prev)
			}
			prev = c
		}
	}
}

func TestLevelCost_TierSlopeChanges(t *testing.T) {
	// The slope modifier steps up entering the 309 and 400 bands, so the cost
	// jump across each boundary far exceeds the quadratic growth alone.
	if ratio := LevelCost(309, 1.0) / LevelCost(308, 1.0); ratio < 1.3 {
		t.Errorf("309 band entry: cost ratio %f, want >= 1.3", ratio)
	}
	if ratio := LevelCost(400, 1.0) / LevelCost(399, 1.0); ratio < 1.25 {
		t.Errorf("400 band entry: cost ratio %f, want >= 1.25", ratio)
	}
	// Within a band the step stays small.
	if ratio := LevelCost(200, 1.0) / LevelCost(199, 1.0); ratio > 1.05 {
		t.Errorf("within-band step: cost ratio %f, want <= 1.05", ratio)
	}
}

func TestLevelCost_ScalesWithDifficulty(t *testing.T) {
	base := LevelCost(150, 1.0)
	if got := LevelCost(150, 2.0); math.Abs(got-2*base) > 1e-9 {
		t.Errorf("difficulty scaling: got %f, want %f", got, 2*base)
	}
}

func TestBreakthroughTime_Bands(t *testing.T) {
	cases := []struct {
		spanStart int
		want      float64
	}{
		{99, 2},
		{189, 2},
		{289, 2},
		{299, 4},
		{389, 4},
		{399, 8},
		{489, 8},
		{50, 0},
	}
	for _, tc := range cases {
		if got := BreakthroughTime(tc.spanStart); got != tc.want {
			t.Errorf("BreakthroughTime(%d): got %f, want %f", tc.spanStart, got, tc.want)
		}
	}
}

func TestIsCheckpoint(t *testing.T) {
	for _, level := range []int{99, 109, 299, 499} {
		if !IsCheckpoint(level) {
			t.Errorf("IsCheckpoint(%d): got false, want true", level)
		}
	}
	for _, level := range []int{0, 89, 100, 495, 509} {
		if IsCheckpoint(level) {
			t.Errorf("IsCheckpoint(%d): got true, want false", level)
		}
	}
}
