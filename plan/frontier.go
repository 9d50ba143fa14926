package plan

import (
	"math"
	"sort"
)

// valueBucketWidth is the fixed width, in zhenyuan, of the buckets that cap
// frontier growth. The frontier never holds more than one state per bucket,
// so its size is bounded by (achievable value range / valueBucketWidth).
const valueBucketWidth = 10

// frontierState is one point on the running Pareto frontier after folding a
// prefix of instances.
type frontierState struct {
	valueDelta int64   // zhenyuan gained over the all-baseline solution
	timeCost   float64 // total time invested
	levels     []int   // chosen checkpoint per instance; exclusive to this state
}

// extend returns a new state with instance idx locked to opt. The choice
// vector is always copied: mutating one candidate must never reach another.
func (s frontierState) extend(idx int, opt Option, baseValue int64) frontierState {
	levels := make([]int, len(s.levels))
	copy(levels, s.levels)
	levels[idx] = opt.Level
	return frontierState{
		valueDelta: s.valueDelta + opt.Value - baseValue,
		timeCost:   s.timeCost + opt.Cost,
		levels:     levels,
	}
}

// baselineFrontier is the single-state frontier before any instance is
// folded: zero gain, zero time, every instance at LevelMin.
func baselineFrontier(instances int) []frontierState {
	levels := make([]int, instances)
	for i := range levels {
		levels[i] = LevelMin
	}
	return []frontierState{{levels: levels}}
}

// mergeInstance folds instance idx's options into the frontier. It expands
// the full frontier × options cross-product, sorts by value descending
// (stable, so equal-value candidates keep their generation order), drops
// dominated candidates, and unless exact is set keeps at most one survivor
// per value bucket. Returns the new frontier and the dominance-filter
// survivor count (before bucketing).
func mergeInstance(frontier []frontierState, idx int, options []Option, exact bool) ([]frontierState, int) {
	baseValue := options[0].Value
	candidates := make([]frontierState, 0, len(frontier)*len(options))
	for _, state := range frontier {
		for _, opt := range options {
			candidates = append(candidates, state.extend(idx, opt, baseValue))
		}
	}

	sort.SliceStable(candidates, func(i, j int) bool {
		return candidates[i].valueDelta > candidates[j].valueDelta
	})

	next := make([]frontierState, 0, len(candidates))
	minTime := math.Inf(1)
	represented := make(map[int64]bool)
	paretoKept := 0
	for _, c := range candidates {
		// Scanning value-descending, a candidate at least as slow as a
		// higher-value survivor is dominated.
		if c.timeCost >= minTime {
			continue
		}
		minTime = c.timeCost
		paretoKept++
		if !exact {
			bucket := c.valueDelta / valueBucketWidth
			if represented[bucket] {
				continue
			}
			represented[bucket] = true
		}
		next = append(next, c)
	}
	return next, paretoKept
}
