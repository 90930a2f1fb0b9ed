package engine

import (
	"github.com/cockroachdb/errors"

	"github.com/danieljhkim/genplan/internal/planner"
)

var (
	// ErrPlanning indicates the inputs could not produce a valid plan.
	ErrPlanning = planner.ErrPlanning

	// ErrValidation indicates a request or input failed validation.
	ErrValidation = errors.New("validation failed")

	// ErrGeneratorFailed indicates the generator exited non-zero or could not run.
	ErrGeneratorFailed = errors.New("generator failed")

	// ErrOutputMismatch indicates declared outputs were not written.
	ErrOutputMismatch = errors.New("declared outputs missing")
)

// The errors below are marked with their sentinel and keep the cause in the
// chain. Match them with errors.Is from github.com/cockroachdb/errors.

func manifestUnreadable(path string, err error) error {
	err = errors.Mark(errors.Wrapf(err, "manifest %s", path), ErrValidation)
	return errors.WithHint(err, "check the manifest path, or build the package once so the manifest is fetched")
}

func generatorFailed(err error) error {
	err = errors.Mark(errors.Wrap(err, "generator failed"), ErrGeneratorFailed)
	return errors.WithHint(err, "the generator output above describes the failure; fix it and run again")
}

func outputMismatch(result *VerifyResult) error {
	err := errors.NewWithDepthf(1, "%w: %d of %d", ErrOutputMismatch, len(result.Missing), result.Checked)
	return errors.WithHint(err, "the generator did not write every declared output; the output catalogs may be out of date with the generator")
}
