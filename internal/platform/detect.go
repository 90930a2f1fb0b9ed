// Package platform maps a target operating system to a planner.PlatformClass.
//
// Detection happens once, before planning, so the planner stays independent of
// the host it runs on.
package platform

import (
	"runtime"
	"strings"

	"github.com/danieljhkim/genplan/internal/planner"
)

// argumentLimited lists the GOOS values whose process-creation API caps the
// combined command-line length (CreateProcess allows 32K characters).
var argumentLimited = map[string]bool{
	"windows": true,
}

// ClassFor returns the platform class for a GOOS value.
func ClassFor(goos string) planner.PlatformClass {
	if argumentLimited[strings.ToLower(goos)] {
		return planner.ArgumentLimited
	}
	return planner.Unrestricted
}

// Resolve returns the platform class for the target. A non-empty override
// names the class directly and wins; otherwise goos decides, falling back to
// the host OS when goos is empty.
func Resolve(override, goos string) (planner.PlatformClass, error) {
	if override != "" {
		return planner.ParsePlatformClass(override)
	}
	if goos == "" {
		goos = runtime.GOOS
	}
	return ClassFor(goos), nil
}
