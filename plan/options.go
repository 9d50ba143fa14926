package plan

// Option is one discrete stopping point for an instance.
type Option struct {
	Level int     // checkpoint level on the grid
	Value int64   // absolute zhenyuan at Level
	Cost  float64 // cumulative time from LevelMin up to Level
}

// BuildOptions computes the ordered option curve for one instance: the free
// baseline at LevelMin, then one option per checkpoint up to the instance's
// grid cap. Costs accumulate span by span: the span's breakthrough charge
// (after the configured reduction) plus the ten per-level cultivation costs
// divided by the processing speed. Level, value and cost are all strictly
// increasing along the returned slice.
func BuildOptions(inst Instance, settings Settings) []Option {
	maxLevel := inst.MaxLevel
	if maxLevel == 0 || maxLevel > LevelMax {
		maxLevel = LevelMax
	}

	options := make([]Option, 0, (maxLevel-LevelMin)/LevelStep+1)
	options = append(options, Option{
		Level: LevelMin,
		Value: CultivationValue(LevelMin, inst.Difficulty),
		Cost:  0,
	})

	gateScale := 1.0 - settings.ReductionPercent/100.0
	cumulative := 0.0
	for checkpoint := LevelMin + LevelStep; checkpoint <= maxLevel; checkpoint += LevelStep {
		spanStart := checkpoint - LevelStep
		cumulative += BreakthroughTime(spanStart) * gateScale
		for level := spanStart + 1; level <= checkpoint; level++ {
			cumulative += LevelCost(level, inst.Difficulty) / settings.Speed
		}
		options = append(options, Option{
			Level: checkpoint,
			Value: CultivationValue(checkpoint, inst.Difficulty),
			Cost:  cumulative,
		})
	}
	return options
}
