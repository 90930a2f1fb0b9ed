package planner

import (
	"fmt"
	"path/filepath"
)

// Request holds everything needed to plan one generator invocation.
type Request struct {
	// Platform is the target platform class
	Platform PlatformClass

	// GeneratorPath is the generator executable
	GeneratorPath string

	// ManifestPath is the API manifest the generator reads
	ManifestPath string

	// OutputRoot is the directory the generator writes into (need not exist)
	OutputRoot string

	// DocsDir is the documentation directory, required for ArgumentLimited
	DocsDir string

	// Builtin is the builtin output catalog, used for Unrestricted
	Builtin []string

	// General is the general output catalog, used for Unrestricted
	General []string
}

// NewRequest creates a Request using the compiled-in catalogs.
func NewRequest(platform PlatformClass, generatorPath, manifestPath, outputRoot, docsDir string) *Request {
	return &Request{
		Platform:      platform,
		GeneratorPath: generatorPath,
		ManifestPath:  manifestPath,
		OutputRoot:    outputRoot,
		DocsDir:       docsDir,
		Builtin:       BuiltinNames(),
		General:       GeneralNames(),
	}
}

// Plan builds the PlannedCommand for req.
//
// ArgumentLimited targets get a prebuild step in combined mode whose outputs
// are the 26 per-letter files. Unrestricted targets get an incremental step
// declaring the manifest as its only input and every catalog file as output.
// All errors are marked with ErrPlanning.
func Plan(req *Request) (*PlannedCommand, error) {
	if req == nil {
		return nil, planningError("", "nil plan request")
	}
	if req.GeneratorPath == "" {
		return nil, planningError("set the generator path", "generator path is empty")
	}
	if req.ManifestPath == "" {
		return nil, planningError("set the manifest path", "manifest path is empty")
	}
	if req.OutputRoot == "" {
		return nil, planningError("set the output root", "output root is empty")
	}

	switch req.Platform {
	case ArgumentLimited:
		return planCombined(req)
	case Unrestricted:
		return planPerFile(req)
	}
	return nil, unrecognizedPlatform(req.Platform)
}

// planCombined plans a prebuild step that writes one file per letter.
func planCombined(req *Request) (*PlannedCommand, error) {
	if req.DocsDir == "" {
		return nil, planningError("set the docs directory", "docs directory is required for %s platforms", ArgumentLimited)
	}

	combined := CombinedNames()
	outputs := make([]string, 0, len(combined))
	for _, name := range combined {
		outputs = append(outputs, filepath.Join(req.OutputRoot, name))
	}

	return &PlannedCommand{
		Executable:  req.GeneratorPath,
		Arguments:   []string{req.ManifestPath, req.OutputRoot, req.DocsDir, CombinedFlag},
		Mode:        ModePrebuild,
		DisplayName: displayName(req),
		OutputDir:   req.OutputRoot,
		Inputs:      []string{},
		Outputs:     outputs,
	}, nil
}

// planPerFile plans an incremental step with one declared output per file.
func planPerFile(req *Request) (*PlannedCommand, error) {
	if err := checkCatalog("builtin", req.Builtin); err != nil {
		return nil, err
	}
	if err := checkCatalog("general", req.General); err != nil {
		return nil, err
	}

	outputs := make([]string, 0, len(req.Builtin)+len(req.General))
	seen := make(map[string]struct{}, cap(outputs))
	add := func(dir, name string) error {
		out := filepath.Join(req.OutputRoot, dir, name)
		if _, dup := seen[out]; dup {
			return planningError("", "output %s is declared more than once", out)
		}
		seen[out] = struct{}{}
		outputs = append(outputs, out)
		return nil
	}
	for _, name := range req.Builtin {
		if err := add(BuiltinDir, name); err != nil {
			return nil, err
		}
	}
	for _, name := range req.General {
		if err := add(GeneralDir, name); err != nil {
			return nil, err
		}
	}

	return &PlannedCommand{
		Executable:  req.GeneratorPath,
		Arguments:   []string{req.ManifestPath, req.OutputRoot},
		Mode:        ModeIncremental,
		DisplayName: displayName(req),
		OutputDir:   req.OutputRoot,
		Inputs:      []string{req.ManifestPath},
		Outputs:     outputs,
	}, nil
}

// checkCatalog rejects empty catalogs and names that are empty, repeated or
// not a plain file name.
func checkCatalog(kind string, names []string) error {
	if len(names) == 0 {
		return planningError("the generator output catalogs must not be empty", "%s catalog is empty", kind)
	}
	seen := make(map[string]struct{}, len(names))
	for _, name := range names {
		if name == "" {
			return planningError("", "%s catalog contains an empty name", kind)
		}
		if name == "." || filepath.Base(name) != name || !filepath.IsLocal(name) {
			return planningError("catalog entries are file names relative to their output directory",
				"%s catalog entry %q is not a plain file name", kind, name)
		}
		if _, dup := seen[name]; dup {
			return planningError("", "%s catalog lists %q more than once", kind, name)
		}
		seen[name] = struct{}{}
	}
	return nil
}

func displayName(req *Request) string {
	return fmt.Sprintf("Generating Swift API from %s to %s", req.ManifestPath, req.OutputRoot)
}
