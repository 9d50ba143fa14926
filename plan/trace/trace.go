package trace

// MergeRecord captures one instance's fold into the running frontier.
type MergeRecord struct {
	InstanceID string // instance whose options were folded
	Candidates int    // frontier × options cross-product size
	ParetoKept int    // survivors of the dominance filter
	Frontier   int    // frontier size after bucketing
}

// PlanTrace collects merge records during a single optimize call.
type PlanTrace struct {
	Merges []MergeRecord
}

// NewPlanTrace creates a PlanTrace ready for recording.
func NewPlanTrace() *PlanTrace {
	return &PlanTrace{Merges: make([]MergeRecord, 0)}
}

// RecordMerge appends a merge record. Safe on a nil trace (no-op), so the
// planner can record unconditionally.
func (pt *PlanTrace) RecordMerge(record MergeRecord) {
	if pt == nil {
		return
	}
	pt.Merges = append(pt.Merges, record)
}
