package planner

import (
	"github.com/cockroachdb/errors"
)

// ErrPlanning marks every configuration error raised while planning. A plan
// that fails with ErrPlanning must abort the build-graph evaluation.
var ErrPlanning = errors.New("planning failed")

func planningError(hint, format string, args ...interface{}) error {
	args = append([]interface{}{ErrPlanning}, args...)
	err := errors.NewWithDepthf(1, "%w: "+format, args...)
	if hint != "" {
		err = errors.WithHint(err, hint)
	}
	return err
}

func unrecognizedPlatform(p PlatformClass) error {
	return planningError(
		`use "argument-limited" or "unrestricted"`,
		"unrecognized platform class %q", string(p))
}
