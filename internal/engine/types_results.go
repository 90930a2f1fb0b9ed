package engine

import "github.com/danieljhkim/genplan/internal/planner"

// PlanResult represents the result of planning.
type PlanResult struct {
	// Platform is the resolved platform class
	Platform planner.PlatformClass `json:"platform" yaml:"platform"`

	// Command is the planned generator invocation
	Command *planner.PlannedCommand `json:"command" yaml:"command"`
}

// RunResult represents the result of a run.
type RunResult struct {
	PlanResult `yaml:",inline"`

	// Ran is true if the generator was executed
	Ran bool `json:"ran" yaml:"ran"`

	// UpToDate is true if the incremental step needed no work
	UpToDate bool `json:"up_to_date" yaml:"up_to_date"`

	// Reason explains why the generator did or did not run
	Reason string `json:"reason" yaml:"reason"`

	// Verify is the post-run output check (nil unless requested)
	Verify *VerifyResult `json:"verify,omitempty" yaml:"verify,omitempty"`
}

// VerifyResult represents the result of checking declared outputs.
type VerifyResult struct {
	// Checked is the number of declared outputs examined
	Checked int `json:"checked" yaml:"checked"`

	// Missing lists declared outputs that do not exist, in plan order
	Missing []string `json:"missing" yaml:"missing"`
}

// OK returns true if every declared output exists.
func (r *VerifyResult) OK() bool {
	return len(r.Missing) == 0
}
