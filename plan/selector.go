package plan

// pickState scans the final frontier (value descending, time descending) for
// the state matching the configured objective. baseline is the total zhenyuan
// of all instances at LevelMin.
//
// Resource-floor mode: among states whose absolute value still meets the
// target, the lowest-time one is the last qualifying state in scan order; the
// scan stops at the first state below target since no later state can
// re-qualify. If nothing qualifies, the highest-value state is returned as a
// best effort.
//
// Time-budget mode: the first state within budget is the maximum-value
// feasible state. If even the cheapest state exceeds the budget, that
// cheapest state is returned as a best effort.
//
// Returns nil only for an empty frontier or an unknown mode.
func pickState(frontier []frontierState, settings Settings, baseline int64) *frontierState {
	if len(frontier) == 0 {
		return nil
	}
	switch settings.Mode {
	case ModeResourceFloor:
		var best *frontierState
		for i := range frontier {
			if float64(baseline+frontier[i].valueDelta) < settings.Target {
				break
			}
			best = &frontier[i]
		}
		if best == nil {
			best = &frontier[0]
		}
		return best
	case ModeTimeBudget:
		for i := range frontier {
			if frontier[i].timeCost <= settings.Target {
				return &frontier[i]
			}
		}
		return &frontier[len(frontier)-1]
	}
	return nil
}
