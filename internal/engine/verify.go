package engine

import (
	"context"

	"github.com/cockroachdb/errors"
	"golang.org/x/sync/errgroup"

	"github.com/danieljhkim/genplan/internal/planner"
)

// verifyConcurrency bounds the number of concurrent stat calls.
const verifyConcurrency = 16

// Verify plans the invocation and checks that every declared output exists.
// Missing outputs are reported in the result and as ErrOutputMismatch.
func (e *Engine) Verify(ctx context.Context, req *VerifyRequest) (*VerifyResult, error) {
	planned, err := e.Plan(ctx, &req.PlanRequest)
	if err != nil {
		return nil, err
	}

	result, err := e.checkOutputs(ctx, planned.Command)
	if err != nil {
		return nil, err
	}
	if !result.OK() {
		return result, outputMismatch(result)
	}
	return result, nil
}

// checkOutputs stats every declared output of cmd concurrently.
func (e *Engine) checkOutputs(ctx context.Context, cmd *planner.PlannedCommand) (*VerifyResult, error) {
	exists := make([]bool, len(cmd.Outputs))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(verifyConcurrency)
	for i, out := range cmd.Outputs {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			ok, err := e.fs.Exists(out)
			if err != nil {
				return errors.Wrapf(err, "failed to check output %s", out)
			}
			exists[i] = ok
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	result := &VerifyResult{Checked: len(cmd.Outputs), Missing: []string{}}
	for i, ok := range exists {
		if !ok {
			result.Missing = append(result.Missing, cmd.Outputs[i])
		}
	}

	e.logger.Debugw("checked declared outputs", "checked", result.Checked, "missing", len(result.Missing))
	return result, nil
}
