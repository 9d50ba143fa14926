package plan

import (
	"github.com/xiuxian-tools/gongfa-planner/plan/trace"
)

// Mode selects the optimization objective.
type Mode string

const (
	// ModeResourceFloor minimizes time subject to total zhenyuan >= Target.
	ModeResourceFloor Mode = "resource-floor"
	// ModeTimeBudget maximizes zhenyuan subject to total time <= Target.
	ModeTimeBudget Mode = "time-budget"
)

// validModes maps accepted objective mode strings.
var validModes = map[Mode]bool{
	ModeResourceFloor: true,
	ModeTimeBudget:    true,
}

// IsValidMode returns true if the given mode string is a recognized objective.
func IsValidMode(mode string) bool {
	return validModes[Mode(mode)]
}

// Settings carries the global planning parameters. The engine assumes the
// caller has validated them (speed > 0, reduction in [0,100], known mode);
// the CLI boundary performs that validation.
type Settings struct {
	Speed            float64 // cultivation cost units converted per time unit
	ReductionPercent float64 // breakthrough time reduction, percent in [0,100]
	Mode             Mode    // objective
	Target           float64 // zhenyuan floor or time budget, per Mode
	Exact            bool    // disable the bucket approximation, keep the full Pareto set
}

// Result is the winning plan: the absolute zhenyuan total, the time it costs,
// and the chosen checkpoint per instance.
type Result struct {
	TotalValue int64          `yaml:"total_value"`
	TotalTime  float64        `yaml:"total_time"`
	Levels     map[string]int `yaml:"levels"`
}

// Planner runs the frontier fold for one Settings value. Attach a PlanTrace
// before Optimize to record per-instance merge statistics.
type Planner struct {
	Settings Settings
	Trace    *trace.PlanTrace
}

// NewPlanner creates a Planner with the given settings and no trace.
func NewPlanner(settings Settings) *Planner {
	return &Planner{Settings: settings}
}

// Optimize plans checkpoint levels for every instance expanded from specs.
// Zero instances short-circuit to a zero-value, zero-time result. The return
// is nil only if the frontier ends up empty, which cannot happen while at
// least one instance exists.
func (p *Planner) Optimize(specs []ArtSpec) *Result {
	instances := ExpandInstances(specs)
	if len(instances) == 0 {
		return &Result{Levels: map[string]int{}}
	}

	options := make([][]Option, len(instances))
	baseline := int64(0)
	for i, inst := range instances {
		options[i] = BuildOptions(inst, p.Settings)
		baseline += options[i][0].Value
	}

	frontier := baselineFrontier(len(instances))
	for i, inst := range instances {
		candidates := len(frontier) * len(options[i])
		var paretoKept int
		frontier, paretoKept = mergeInstance(frontier, i, options[i], p.Settings.Exact)
		p.Trace.RecordMerge(trace.MergeRecord{
			InstanceID: inst.ID,
			Candidates: candidates,
			ParetoKept: paretoKept,
			Frontier:   len(frontier),
		})
	}

	best := pickState(frontier, p.Settings, baseline)
	if best == nil {
		return nil
	}

	levels := make(map[string]int, len(instances))
	for i, inst := range instances {
		levels[inst.ID] = best.levels[i]
	}
	return &Result{
		TotalValue: baseline + best.valueDelta,
		TotalTime:  best.timeCost,
		Levels:     levels,
	}
}

// Optimize is the convenience one-shot entry point.
func Optimize(specs []ArtSpec, settings Settings) *Result {
	return NewPlanner(settings).Optimize(specs)
}
