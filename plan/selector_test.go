package plan

import "testing"

// descending value, descending time: a well-formed frontier with baseline tail.
func sampleFrontier() []frontierState {
	return []frontierState{
		{valueDelta: 50, timeCost: 10, levels: []int{119}},
		{valueDelta: 30, timeCost: 6, levels: []int{109}},
		{valueDelta: 10, timeCost: 3, levels: []int{104}},
		{valueDelta: 0, timeCost: 0, levels: []int{99}},
	}
}

func TestPickState_ResourceFloor_LowestTimeMeetingTarget(t *testing.T) {
	settings := Settings{Mode: ModeResourceFloor, Target: 125}
	got := pickState(sampleFrontier(), settings, 100)
	if got == nil || got.valueDelta != 30 {
		t.Fatalf("got %+v, want the delta-30 state", got)
	}
}

func TestPickState_ResourceFloor_BaselineAlreadySatisfies(t *testing.T) {
	settings := Settings{Mode: ModeResourceFloor, Target: 100}
	got := pickState(sampleFrontier(), settings, 100)
	if got == nil || got.valueDelta != 0 || got.timeCost != 0 {
		t.Fatalf("got %+v, want the free baseline state", got)
	}
}

func TestPickState_ResourceFloor_UnreachableFallsBackToHighestValue(t *testing.T) {
	settings := Settings{Mode: ModeResourceFloor, Target: 1e9}
	got := pickState(sampleFrontier(), settings, 100)
	if got == nil || got.valueDelta != 50 {
		t.Fatalf("got %+v, want the highest-value state", got)
	}
}

func TestPickState_TimeBudget_MaxValueWithinBudget(t *testing.T) {
	settings := Settings{Mode: ModeTimeBudget, Target: 6}
	got := pickState(sampleFrontier(), settings, 100)
	if got == nil || got.valueDelta != 30 {
		t.Fatalf("got %+v, want the delta-30 state", got)
	}
}

func TestPickState_TimeBudget_TooTightFallsBackToCheapest(t *testing.T) {
	frontier := []frontierState{
		{valueDelta: 50, timeCost: 10, levels: []int{119}},
		{valueDelta: 30, timeCost: 6, levels: []int{109}},
		{valueDelta: 10, timeCost: 3, levels: []int{104}},
	}
	settings := Settings{Mode: ModeTimeBudget, Target: 1}
	got := pickState(frontier, settings, 100)
	if got == nil || got.valueDelta != 10 {
		t.Fatalf("got %+v, want the lowest-time state", got)
	}
}

func TestPickState_DegenerateInputs(t *testing.T) {
	if got := pickState(nil, Settings{Mode: ModeTimeBudget}, 0); got != nil {
		t.Errorf("empty frontier: got %+v, want nil", got)
	}
	if got := pickState(sampleFrontier(), Settings{Mode: "sideways"}, 0); got != nil {
		t.Errorf("unknown mode: got %+v, want nil", got)
	}
}
