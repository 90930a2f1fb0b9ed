package engine

import (
	"context"

	"github.com/danieljhkim/genplan/internal/planner"
	"github.com/danieljhkim/genplan/internal/platform"
)

// Plan resolves the target platform and plans the generator invocation with
// the compiled-in catalogs.
func (e *Engine) Plan(ctx context.Context, req *PlanRequest) (*PlanResult, error) {
	class, err := platform.Resolve(req.Platform, req.TargetOS)
	if err != nil {
		return nil, err
	}

	cmd, err := planner.Plan(planner.NewRequest(
		class,
		req.GeneratorPath,
		req.ManifestPath,
		req.OutputRoot,
		req.DocsDir,
	))
	if err != nil {
		return nil, err
	}

	e.logger.Debugw("planned generator command",
		"platform", class,
		"mode", cmd.Mode,
		"arguments", len(cmd.Arguments),
		"outputs", len(cmd.Outputs),
	)

	return &PlanResult{Platform: class, Command: cmd}, nil
}
