package planner

import (
	"errors"
	"testing"
)

func TestParsePlatformClass(t *testing.T) {
	tests := []struct {
		input   string
		want    PlatformClass
		wantErr bool
	}{
		{"argument-limited", ArgumentLimited, false},
		{"unrestricted", Unrestricted, false},
		{"  Unrestricted\n", Unrestricted, false},
		{"ARGUMENT-LIMITED", ArgumentLimited, false},
		{"windows", "", true},
		{"", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParsePlatformClass(tt.input)
			if tt.wantErr {
				if !errors.Is(err, ErrPlanning) {
					t.Errorf("ParsePlatformClass(%q) error = %v, want ErrPlanning", tt.input, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParsePlatformClass(%q) error = %v", tt.input, err)
			}
			if got != tt.want {
				t.Errorf("ParsePlatformClass(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestPlannedCommand_HasFlag(t *testing.T) {
	cmd := &PlannedCommand{Arguments: []string{"/manifest", "/out", "--combined"}}

	if !cmd.HasFlag("--combined") {
		t.Error("expected HasFlag(--combined) to be true")
	}
	if cmd.HasFlag("--verbose") {
		t.Error("expected HasFlag(--verbose) to be false")
	}
}

func TestPlannedCommand_IsPrebuild(t *testing.T) {
	if (&PlannedCommand{Mode: ModeIncremental}).IsPrebuild() {
		t.Error("incremental command reported as prebuild")
	}
	if !(&PlannedCommand{Mode: ModePrebuild}).IsPrebuild() {
		t.Error("prebuild command not reported as prebuild")
	}
}
