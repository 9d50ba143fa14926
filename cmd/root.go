package cmd

import (
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/xiuxian-tools/gongfa-planner/plan"
	"github.com/xiuxian-tools/gongfa-planner/plan/trace"
)

var (
	// CLI flags for the plan subcommand
	artsFilePath string  // Path to the arts yaml file
	speed        float64 // Cultivation processing speed (cost units per time unit)
	reduction    float64 // Breakthrough time reduction percent
	mode         string  // Objective: resource-floor or time-budget
	target       float64 // Zhenyuan floor or time budget, depending on mode
	exact        bool    // Disable the bucket approximation (full Pareto frontier)
	traceMerges  bool    // Print a merge trace summary after planning
	outputFormat string  // Result rendering: table or yaml
	logLevel     string  // Log verbosity level
)

// rootCmd is the base command for the CLI
var rootCmd = &cobra.Command{
	Use:   "gongfa-planner",
	Short: "Checkpoint planner for cultivation arts under a shared effort budget",
}

// planCmd runs the optimizer using the arts file and CLI flags
var planCmd = &cobra.Command{
	Use:   "plan",
	Short: "Plan checkpoint levels for the configured arts",
	Run: func(cmd *cobra.Command, args []string) {
		// Set up logging
		level, err := logrus.ParseLevel(logLevel)
		if err != nil {
			logrus.Fatalf("Invalid log level: %s", logLevel)
		}
		logrus.SetLevel(level)

		if artsFilePath == "" {
			logrus.Fatalf("Arts file not provided. Exiting.")
		}

		artsFile, err := loadArtsFile(artsFilePath)
		if err != nil {
			logrus.Fatalf("Failed to load arts file: %v", err)
		}
		if err := validateArts(artsFile.Arts); err != nil {
			logrus.Fatalf("Invalid arts file: %v", err)
		}

		settings := resolveSettings(artsFile.Settings, cmd)
		if err := validateSettings(settings); err != nil {
			logrus.Fatalf("Invalid settings: %v", err)
		}

		logrus.Infof("Planning %d arts: mode=%s target=%v speed=%v reduction=%v%% exact=%v",
			len(artsFile.Arts), settings.Mode, settings.Target, settings.Speed,
			settings.ReductionPercent, settings.Exact)

		planner := plan.NewPlanner(settings)
		if traceMerges {
			planner.Trace = trace.NewPlanTrace()
		}

		result := planner.Optimize(toSpecs(artsFile.Arts))
		if result == nil {
			logrus.Fatalf("No feasible plan found")
		}

		if err := renderResult(os.Stdout, result, artsFile.Arts, settings, outputFormat); err != nil {
			logrus.Fatalf("Failed to render result: %v", err)
		}
		if traceMerges {
			renderTraceSummary(os.Stdout, planner.Trace)
		}

		logrus.Info("Planning complete.")
	},
}

// resolveSettings layers defaults, the arts file settings section, and any
// explicitly set CLI flags, in that order.
func resolveSettings(section *SettingsSection, cmd *cobra.Command) plan.Settings {
	settings := plan.Settings{Speed: 1.0, Mode: plan.ModeTimeBudget}
	if section != nil {
		if section.Speed != 0 {
			settings.Speed = section.Speed
		}
		settings.ReductionPercent = section.Reduction
		if section.Mode != "" {
			settings.Mode = plan.Mode(section.Mode)
		}
		settings.Target = section.Target
		settings.Exact = section.Exact
	}
	flags := cmd.Flags()
	if flags.Changed("speed") {
		settings.Speed = speed
	}
	if flags.Changed("reduction") {
		settings.ReductionPercent = reduction
	}
	if flags.Changed("mode") {
		settings.Mode = plan.Mode(mode)
	}
	if flags.Changed("target") {
		settings.Target = target
	}
	if flags.Changed("exact") {
		settings.Exact = exact
	}
	return settings
}

// Execute runs the CLI root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// init sets up CLI flags and subcommands
func init() {
	planCmd.Flags().StringVar(&artsFilePath, "arts", "", "Path to the arts yaml file")
	planCmd.Flags().StringVar(&logLevel, "log", "error", "Log level (trace, debug, info, warn, error, fatal, panic)")

	// Planning settings (override the arts file's settings section)
	planCmd.Flags().Float64Var(&speed, "speed", 1.0, "Cultivation processing speed (cost units per time unit)")
	planCmd.Flags().Float64Var(&reduction, "reduction", 0, "Breakthrough time reduction percent [0,100]")
	planCmd.Flags().StringVar(&mode, "mode", string(plan.ModeTimeBudget), "Objective mode (resource-floor, time-budget)")
	planCmd.Flags().Float64Var(&target, "target", 0, "Zhenyuan floor (resource-floor) or time budget (time-budget)")
	planCmd.Flags().BoolVar(&exact, "exact", false, "Keep the full Pareto frontier instead of bucket-capping it")

	// Output
	planCmd.Flags().BoolVar(&traceMerges, "trace", false, "Print per-instance merge statistics")
	planCmd.Flags().StringVar(&outputFormat, "output", "table", "Result format (table, yaml)")

	// Attach `plan` as a subcommand to `root`
	rootCmd.AddCommand(planCmd)
}
