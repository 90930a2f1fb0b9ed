package planner

import "strings"

// PlatformClass describes the process-creation limits of the target platform.
type PlatformClass string

// Platform classes
const (
	// ArgumentLimited platforms cap the combined command-line length, so the
	// generator runs in combined mode as a prebuild step.
	ArgumentLimited PlatformClass = "argument-limited"

	// Unrestricted platforms get one declared output per generated file.
	Unrestricted PlatformClass = "unrestricted"
)

// PlatformClasses returns every recognized platform class.
func PlatformClasses() []PlatformClass {
	return []PlatformClass{ArgumentLimited, Unrestricted}
}

// ParsePlatformClass parses a platform class name, ignoring case and
// surrounding whitespace.
func ParsePlatformClass(s string) (PlatformClass, error) {
	p := PlatformClass(strings.ToLower(strings.TrimSpace(s)))
	switch p {
	case ArgumentLimited, Unrestricted:
		return p, nil
	}
	return "", unrecognizedPlatform(p)
}

// Mode is how the build graph schedules the generator.
type Mode string

// Build modes
const (
	// ModePrebuild runs the generator before the rest of the graph without
	// statically declared outputs.
	ModePrebuild Mode = "prebuild"

	// ModeIncremental declares inputs and outputs so the step can be skipped
	// when up to date.
	ModeIncremental Mode = "incremental"
)

// CombinedFlag switches the generator into combined-output mode.
const CombinedFlag = "--combined"

// PlannedCommand is a single generator invocation for the build graph.
type PlannedCommand struct {
	// Executable is the generator path
	Executable string `json:"executable" yaml:"executable"`

	// Arguments is the ordered argument list passed to the generator
	Arguments []string `json:"arguments" yaml:"arguments"`

	// Mode is prebuild or incremental
	Mode Mode `json:"mode" yaml:"mode"`

	// DisplayName is the human-readable step description
	DisplayName string `json:"display_name" yaml:"display_name"`

	// OutputDir is the directory the generator writes into
	OutputDir string `json:"output_dir" yaml:"output_dir"`

	// Inputs is the declared input set (empty for prebuild steps)
	Inputs []string `json:"inputs" yaml:"inputs"`

	// Outputs is the exact set of files the generator writes
	Outputs []string `json:"outputs" yaml:"outputs"`
}

// IsPrebuild returns true if the command runs as a prebuild step.
func (c *PlannedCommand) IsPrebuild() bool {
	return c.Mode == ModePrebuild
}

// HasFlag returns true if the argument list contains flag.
func (c *PlannedCommand) HasFlag(flag string) bool {
	for _, arg := range c.Arguments {
		if arg == flag {
			return true
		}
	}
	return false
}
