package cmd

import (
	"fmt"
	"io"
	"text/tabwriter"

	"gopkg.in/yaml.v3"

	"github.com/xiuxian-tools/gongfa-planner/plan"
	"github.com/xiuxian-tools/gongfa-planner/plan/trace"
)

// artResult is one instance row in the yaml result document.
type artResult struct {
	Instance string `yaml:"instance"`
	Primary  bool   `yaml:"primary"`
	Level    int    `yaml:"level"`
}

// resultDocument is the yaml rendering of a plan result.
type resultDocument struct {
	TotalValue int64       `yaml:"total_value"`
	TotalTime  float64     `yaml:"total_time"`
	MetTarget  bool        `yaml:"met_target"`
	Arts       []artResult `yaml:"arts"`
}

// metTarget reports whether the result satisfies the requested objective, as
// opposed to being a best-effort extreme state.
func metTarget(result *plan.Result, settings plan.Settings) bool {
	switch settings.Mode {
	case plan.ModeResourceFloor:
		return float64(result.TotalValue) >= settings.Target
	case plan.ModeTimeBudget:
		return result.TotalTime <= settings.Target
	}
	return false
}

// renderResult writes the winning plan in the requested format. Instances are
// listed in expansion order, so output is deterministic for a given arts file.
func renderResult(w io.Writer, result *plan.Result, entries []ArtEntry, settings plan.Settings, format string) error {
	instances := plan.ExpandInstances(toSpecs(entries))

	switch format {
	case "yaml":
		doc := resultDocument{
			TotalValue: result.TotalValue,
			TotalTime:  result.TotalTime,
			MetTarget:  metTarget(result, settings),
			Arts:       make([]artResult, 0, len(instances)),
		}
		for _, inst := range instances {
			doc.Arts = append(doc.Arts, artResult{
				Instance: inst.ID,
				Primary:  inst.Primary,
				Level:    result.Levels[inst.ID],
			})
		}
		return yaml.NewEncoder(w).Encode(doc)
	case "table":
		tw := tabwriter.NewWriter(w, 0, 8, 2, ' ', 0)
		fmt.Fprintln(tw, "INSTANCE\tPRIMARY\tLEVEL")
		for _, inst := range instances {
			primary := ""
			if inst.Primary {
				primary = "*"
			}
			fmt.Fprintf(tw, "%s\t%s\t%d\n", inst.ID, primary, result.Levels[inst.ID])
		}
		if err := tw.Flush(); err != nil {
			return err
		}
		status := "met target"
		if !metTarget(result, settings) {
			status = "best effort"
		}
		_, err := fmt.Fprintf(w, "\ntotal zhenyuan: %d\ntotal time: %.3f\nobjective: %s (%s)\n",
			result.TotalValue, result.TotalTime, settings.Mode, status)
		return err
	default:
		return fmt.Errorf("unknown output format %q (want table or yaml)", format)
	}
}

// renderTraceSummary prints per-instance merge statistics and their aggregate.
func renderTraceSummary(w io.Writer, pt *trace.PlanTrace) {
	tw := tabwriter.NewWriter(w, 0, 8, 2, ' ', 0)
	fmt.Fprintln(tw, "\nINSTANCE\tCANDIDATES\tPARETO\tFRONTIER")
	if pt != nil {
		for _, m := range pt.Merges {
			fmt.Fprintf(tw, "%s\t%d\t%d\t%d\n", m.InstanceID, m.Candidates, m.ParetoKept, m.Frontier)
		}
	}
	tw.Flush()

	summary := trace.Summarize(pt)
	fmt.Fprintf(w, "merges: %d  candidates: %d  max frontier: %d  mean frontier: %.1f\n",
		summary.Instances, summary.TotalCandidates, summary.MaxFrontier, summary.MeanFrontier)
}
