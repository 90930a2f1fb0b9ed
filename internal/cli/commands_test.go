package cli

import (
	"encoding/json"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
	"strings"
	"testing"

	"github.com/cockroachdb/errors"
	"gopkg.in/yaml.v3"

	"github.com/danieljhkim/genplan/internal/engine"
	"github.com/danieljhkim/genplan/internal/planner"
)

// setupPackage creates a package directory holding a manifest and returns it.
func setupPackage(t *testing.T) string {
	t.Helper()

	pkg := t.TempDir()
	manifest := filepath.Join(pkg, "Sources", "ExtensionApi", "extension_api.json")
	if err := os.MkdirAll(filepath.Dir(manifest), 0755); err != nil {
		t.Fatalf("failed to create manifest dir: %v", err)
	}
	if err := os.WriteFile(manifest, []byte(`{"header":{}}`), 0644); err != nil {
		t.Fatalf("failed to write manifest: %v", err)
	}
	return pkg
}

// writeCombinedGenerator writes a shell script that behaves like the
// generator in combined mode.
func writeCombinedGenerator(t *testing.T, dir string) string {
	t.Helper()
	if runtime.GOOS == "windows" {
		t.Skip("requires a POSIX shell")
	}
	if _, err := exec.LookPath("sh"); err != nil {
		t.Skip("sh not available")
	}

	script := `#!/bin/sh
set -e
[ "$4" = "--combined" ] || exit 2
mkdir -p "$2"
for l in A B C D E F G H I J K L M N O P Q R S T U V W X Y Z; do
  echo "// generated" > "$2/SwiftGodot$l.swift"
done
`
	path := filepath.Join(dir, "generator")
	if err := os.WriteFile(path, []byte(script), 0755); err != nil {
		t.Fatalf("failed to write generator: %v", err)
	}
	return path
}

func TestPlanCommand_JSON(t *testing.T) {
	pkg := setupPackage(t)

	out, _, err := executeCommand(t, "plan", "--json",
		"--package-dir", pkg,
		"--generator", "/usr/local/bin/generator",
		"--platform", "unrestricted",
	)
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}

	var result engine.PlanResult
	if err := json.Unmarshal([]byte(out), &result); err != nil {
		t.Fatalf("invalid JSON output: %v\n%s", err, out)
	}
	if result.Platform != planner.Unrestricted {
		t.Errorf("Platform = %q, want unrestricted", result.Platform)
	}
	if result.Command.Mode != planner.ModeIncremental {
		t.Errorf("Mode = %q, want incremental", result.Command.Mode)
	}

	wantOutputs := len(planner.BuiltinNames()) + len(planner.GeneralNames())
	if len(result.Command.Outputs) != wantOutputs {
		t.Errorf("expected %d outputs, got %d", wantOutputs, len(result.Command.Outputs))
	}

	wantManifest := filepath.Join(pkg, "Sources", "ExtensionApi", "extension_api.json")
	wantRoot := filepath.Join(pkg, ".genplan", "GeneratedSources")
	wantArgs := []string{wantManifest, wantRoot}
	if strings.Join(result.Command.Arguments, "|") != strings.Join(wantArgs, "|") {
		t.Errorf("Arguments = %v, want %v", result.Command.Arguments, wantArgs)
	}
}

func TestPlanCommand_YAMLCombined(t *testing.T) {
	pkg := setupPackage(t)

	out, _, err := executeCommand(t, "plan", "--format", "yaml",
		"--package-dir", pkg,
		"--generator", "/gen",
		"--target-os", "windows",
	)
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}

	var result struct {
		Platform string                 `yaml:"platform"`
		Command  planner.PlannedCommand `yaml:"command"`
	}
	if err := yaml.Unmarshal([]byte(out), &result); err != nil {
		t.Fatalf("invalid YAML output: %v\n%s", err, out)
	}
	if result.Platform != string(planner.ArgumentLimited) {
		t.Errorf("Platform = %q, want argument-limited", result.Platform)
	}
	if len(result.Command.Outputs) != 26 {
		t.Errorf("expected 26 outputs, got %d", len(result.Command.Outputs))
	}
	args := result.Command.Arguments
	if len(args) != 4 || args[2] != filepath.Join(pkg, "doc") || args[3] != planner.CombinedFlag {
		t.Errorf("unexpected arguments %v", args)
	}
}

func TestPlanCommand_Text(t *testing.T) {
	pkg := setupPackage(t)

	out, _, err := executeCommand(t, "plan",
		"--package-dir", pkg,
		"--generator", "/gen",
		"--platform", "argument-limited",
		"--outputs",
	)
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}
	for _, want := range []string{"Generating Swift API from", "prebuild", "26 files", "SwiftGodotZ.swift"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}

func TestPlanCommand_Errors(t *testing.T) {
	pkg := setupPackage(t)

	tests := []struct {
		name string
		args []string
	}{
		{"missing generator", []string{"plan", "--package-dir", pkg}},
		{"bad platform", []string{"plan", "--package-dir", pkg, "--generator", "/gen", "--platform", "os2"}},
		{"bad format", []string{"plan", "--package-dir", pkg, "--generator", "/gen", "--format", "xml"}},
		{"bad log level", []string{"plan", "--package-dir", pkg, "--generator", "/gen", "--log-level", "loud"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, _, err := executeCommand(t, tt.args...); err == nil {
				t.Error("expected error, got nil")
			}
		})
	}
}

func TestPlanCommand_ConfigFile(t *testing.T) {
	pkg := setupPackage(t)
	cfg := "generator: /from/config/generator\nplatform: unrestricted\n"
	if err := os.WriteFile(filepath.Join(pkg, "genplan.yaml"), []byte(cfg), 0644); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}

	out, _, err := executeCommand(t, "plan", "--json", "--package-dir", pkg)
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}

	var result engine.PlanResult
	if err := json.Unmarshal([]byte(out), &result); err != nil {
		t.Fatalf("invalid JSON output: %v", err)
	}
	if result.Command.Executable != "/from/config/generator" {
		t.Errorf("Executable = %q, want /from/config/generator", result.Command.Executable)
	}
}

func TestRunAndVerify_Combined(t *testing.T) {
	pkg := setupPackage(t)
	gen := writeCombinedGenerator(t, t.TempDir())
	common := []string{"--package-dir", pkg, "--generator", gen, "--platform", "argument-limited"}

	_, _, err := executeCommand(t, "verify", "--package-dir", pkg, "--generator", gen, "--platform", "argument-limited")
	if !errors.Is(err, engine.ErrOutputMismatch) {
		t.Fatalf("verify before run: expected ErrOutputMismatch, got %v", err)
	}

	out, stderr, err := executeCommand(t, append([]string{"run", "--verify"}, common...)...)
	if err != nil {
		t.Fatalf("run error = %v\nstderr: %s", err, stderr)
	}
	if !strings.Contains(out, "Generated 26 outputs") {
		t.Errorf("unexpected run output: %q", out)
	}

	out, _, err = executeCommand(t, append([]string{"verify"}, common...)...)
	if err != nil {
		t.Fatalf("verify error = %v", err)
	}
	if !strings.Contains(out, "All 26 declared outputs present") {
		t.Errorf("unexpected verify output: %q", out)
	}

	// Combined generation is a prebuild step and is never skipped
	stamp := filepath.Join(pkg, ".genplan", "GeneratedSources", engine.StampFileName)
	if _, err := os.Stat(stamp); !os.IsNotExist(err) {
		t.Errorf("expected no stamp file after a prebuild run, got %v", err)
	}
}

func TestRunCommand_GeneratorFailure(t *testing.T) {
	pkg := setupPackage(t)
	gen := writeCombinedGenerator(t, t.TempDir())

	// Unrestricted mode omits --combined, which the fake generator rejects
	_, _, err := executeCommand(t, "run", "--package-dir", pkg, "--generator", gen, "--platform", "unrestricted")
	if !errors.Is(err, engine.ErrGeneratorFailed) {
		t.Errorf("expected ErrGeneratorFailed, got %v", err)
	}
	if msg := FormatError(err); !strings.Contains(msg, "Hint:") {
		t.Errorf("expected a hint in %q", msg)
	}
}

func TestRunCommand_DryRunJSON(t *testing.T) {
	pkg := setupPackage(t)

	out, _, err := executeCommand(t, "run", "--dry-run", "--json",
		"--package-dir", pkg, "--generator", "/does/not/exist", "--platform", "unrestricted")
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}

	var result map[string]interface{}
	if err := json.Unmarshal([]byte(out), &result); err != nil {
		t.Fatalf("invalid JSON output: %v\n%s", err, out)
	}
	if result["ran"] != false {
		t.Errorf("ran = %v, want false", result["ran"])
	}
	if result["reason"] != engine.ReasonNoStamp {
		t.Errorf("reason = %v, want %q", result["reason"], engine.ReasonNoStamp)
	}
}

func TestCatalogCommand(t *testing.T) {
	out, _, err := executeCommand(t, "catalog", "--json")
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}
	var counts map[string]int
	if err := json.Unmarshal([]byte(out), &counts); err != nil {
		t.Fatalf("invalid JSON output: %v", err)
	}
	if counts["builtin"] != 36 || counts["general"] != 920 || counts["combined"] != 26 {
		t.Errorf("unexpected counts: %v", counts)
	}

	out, _, err = executeCommand(t, "catalog", "builtin")
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}
	lines := strings.Split(strings.TrimSpace(out), "\n")
	if len(lines) != 36 || lines[0] != "AABB.swift" {
		t.Errorf("unexpected builtin listing: %d lines, first %q", len(lines), lines[0])
	}

	if _, _, err := executeCommand(t, "catalog", "nonsense"); err == nil {
		t.Error("expected error for unknown catalog")
	}
}
