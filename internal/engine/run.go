package engine

import (
	"context"
	"io"

	"github.com/cockroachdb/errors"

	"github.com/danieljhkim/genplan/internal/genexec"
	"github.com/danieljhkim/genplan/internal/planner"
)

// Run reasons
const (
	ReasonPrebuild        = "prebuild steps always run"
	ReasonForced          = "forced"
	ReasonNoStamp         = "no previous run recorded"
	ReasonManifestChanged = "manifest changed"
	ReasonCommandChanged  = "command or declared outputs changed"
	ReasonOutputsMissing  = "declared outputs missing"
	ReasonUpToDate        = "up to date"
)

// Run plans the invocation and runs the generator unless the step is up to
// date. Prebuild steps always run and leave no stamp. A generator failure is
// returned as ErrGeneratorFailed and leaves the previous stamp untouched, so
// the next run retries.
func (e *Engine) Run(ctx context.Context, req *RunRequest) (*RunResult, error) {
	planned, err := e.Plan(ctx, &req.PlanRequest)
	if err != nil {
		return nil, err
	}
	cmd := planned.Command
	result := &RunResult{PlanResult: *planned}

	manifestHash, err := e.hasher.HashFile(req.ManifestPath)
	if err != nil {
		return nil, manifestUnreadable(req.ManifestPath, err)
	}
	cmdHash := e.commandHash(cmd)

	reason, err := e.staleReason(ctx, cmd, req.Force, manifestHash, cmdHash)
	if err != nil {
		return nil, err
	}
	result.Reason = reason
	if reason == ReasonUpToDate {
		result.UpToDate = true
		e.logger.Infow("generator step up to date", "outputs", len(cmd.Outputs))
		return result, nil
	}

	if req.DryRun {
		e.logger.Infow("dry run, generator not started", "reason", reason)
		return result, nil
	}

	e.logger.Infow(cmd.DisplayName, "mode", cmd.Mode, "reason", reason)
	if err := e.runner.Run(ctx, cmd, writerOrDiscard(req.Stdout), writerOrDiscard(req.Stderr)); err != nil {
		var exitErr *genexec.ExitError
		if errors.As(err, &exitErr) {
			e.logger.Errorw("generator exited non-zero", "exit_code", exitErr.Code)
		}
		return nil, generatorFailed(err)
	}
	result.Ran = true

	if req.Verify {
		verified, err := e.checkOutputs(ctx, cmd)
		if err != nil {
			return nil, err
		}
		result.Verify = verified
		if !verified.OK() {
			return result, outputMismatch(verified)
		}
	}

	// Prebuild steps never consult a stamp
	if cmd.IsPrebuild() {
		return result, nil
	}
	stamp := &Stamp{
		Mode:         cmd.Mode,
		ManifestHash: manifestHash,
		CommandHash:  cmdHash,
		Outputs:      len(cmd.Outputs),
	}
	if err := e.saveStamp(cmd, stamp); err != nil {
		return nil, err
	}

	return result, nil
}

// staleReason returns why cmd must run, or ReasonUpToDate.
func (e *Engine) staleReason(ctx context.Context, cmd *planner.PlannedCommand, force bool, manifestHash, cmdHash string) (string, error) {
	if force {
		return ReasonForced, nil
	}
	if cmd.IsPrebuild() {
		return ReasonPrebuild, nil
	}

	stamp, err := e.loadStamp(cmd)
	if err != nil {
		return "", err
	}
	if stamp == nil {
		return ReasonNoStamp, nil
	}
	if stamp.ManifestHash != manifestHash {
		return ReasonManifestChanged, nil
	}
	if stamp.CommandHash != cmdHash {
		return ReasonCommandChanged, nil
	}

	check, err := e.checkOutputs(ctx, cmd)
	if err != nil {
		return "", err
	}
	if !check.OK() {
		return ReasonOutputsMissing, nil
	}
	return ReasonUpToDate, nil
}

func writerOrDiscard(w io.Writer) io.Writer {
	if w == nil {
		return io.Discard
	}
	return w
}
