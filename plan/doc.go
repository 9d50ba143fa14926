// Package plan provides the core checkpoint-planning engine for gongfa-planner.
//
// # Reading Guide
//
// Start with these three files to understand the engine:
//   - art.go: ArtSpec inputs and their expansion into independent instances
//   - options.go: the per-instance option curve (checkpoint level, value, cumulative time)
//   - frontier.go: the incremental Pareto-frontier fold with bucket pruning
//
// # Architecture
//
// The planner folds one instance at a time into a running frontier of
// (zhenyuan gain, time cost) states. After every fold the frontier is
// dominance-filtered and bucket-capped, so its size is bounded by the number
// of value buckets rather than by the option cross-product. selector.go then
// scans the final frontier for the state matching the configured objective.
//
// The whole computation is pure and call-scoped: curve formulas are stateless
// functions, settings arrive as an explicit value, and no state survives an
// Optimize call. Optional merge tracing lives in plan/trace.
package plan
