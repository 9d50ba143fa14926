package trace

// TraceSummary aggregates statistics from a PlanTrace.
type TraceSummary struct {
	Instances       int     // merge steps recorded (= instances folded)
	TotalCandidates int     // candidates expanded across all merges
	MaxFrontier     int     // largest post-prune frontier
	MeanFrontier    float64 // mean post-prune frontier size
}

// Summarize computes aggregate statistics from a PlanTrace.
// Safe for nil or empty traces (returns zero-value fields).
func Summarize(pt *PlanTrace) *TraceSummary {
	summary := &TraceSummary{}
	if pt == nil {
		return summary
	}

	summary.Instances = len(pt.Merges)
	frontierTotal := 0
	for _, m := range pt.Merges {
		summary.TotalCandidates += m.Candidates
		frontierTotal += m.Frontier
		if m.Frontier > summary.MaxFrontier {
			summary.MaxFrontier = m.Frontier
		}
	}
	if summary.Instances > 0 {
		summary.MeanFrontier = float64(frontierTotal) / float64(summary.Instances)
	}
	return summary
}
