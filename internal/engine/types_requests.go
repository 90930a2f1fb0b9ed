package engine

import "io"

// PlanRequest represents a request to plan the generator invocation.
type PlanRequest struct {
	// Platform overrides platform detection ("argument-limited", "unrestricted")
	Platform string

	// TargetOS is the GOOS-style target name (default: host OS)
	TargetOS string

	// GeneratorPath is the generator executable
	GeneratorPath string

	// ManifestPath is the API manifest
	ManifestPath string

	// OutputRoot is the directory generated sources are written to
	OutputRoot string

	// DocsDir is the documentation directory (combined mode only)
	DocsDir string
}

// RunRequest represents a request to plan and run the generator.
type RunRequest struct {
	PlanRequest

	// DryRun performs planning and the up-to-date check without running
	DryRun bool

	// Force runs the generator even when the step is up to date
	Force bool

	// Verify checks the declared outputs after a successful run
	Verify bool

	// Stdout receives the generator's standard output (default: discarded)
	Stdout io.Writer

	// Stderr receives the generator's standard error (default: discarded)
	Stderr io.Writer
}

// VerifyRequest represents a request to check that declared outputs exist.
type VerifyRequest struct {
	PlanRequest
}
