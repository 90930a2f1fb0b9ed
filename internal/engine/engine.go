// Package engine provides the orchestration layer between the CLI and the
// planner.
//
// The planner only describes a generator invocation. The engine resolves the
// platform, asks the planner for a PlannedCommand and, when asked to, plays
// the part of the build system: it decides whether an incremental step is up
// to date, runs the generator and checks the declared outputs afterwards.
//
// Key components:
//   - Engine: main orchestrator called by the CLI
//   - Plan: platform resolution and planning
//   - Run: up-to-date check, generator execution, stamp bookkeeping
//   - Verify: post-hoc check that declared outputs exist
package engine

import (
	"go.uber.org/zap"

	"github.com/danieljhkim/genplan/internal/fsops"
	"github.com/danieljhkim/genplan/internal/genexec"
	"github.com/danieljhkim/genplan/internal/hash"
)

// Engine orchestrates all genplan operations.
// It is the main API surface called by the CLI.
type Engine struct {
	fs     fsops.FS
	hasher hash.Hasher
	runner genexec.Runner
	logger *zap.SugaredLogger
}

// New creates a new Engine with the given dependencies. A nil logger
// discards log output.
func New(fs fsops.FS, hasher hash.Hasher, runner genexec.Runner, logger *zap.SugaredLogger) *Engine {
	if logger == nil {
		logger = zap.NewNop().Sugar()
	}
	return &Engine{
		fs:     fs,
		hasher: hasher,
		runner: runner,
		logger: logger,
	}
}
