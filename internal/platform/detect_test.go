package platform

import (
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/danieljhkim/genplan/internal/planner"
)

func TestClassFor(t *testing.T) {
	tests := []struct {
		goos string
		want planner.PlatformClass
	}{
		{"windows", planner.ArgumentLimited},
		{"Windows", planner.ArgumentLimited},
		{"linux", planner.Unrestricted},
		{"darwin", planner.Unrestricted},
		{"freebsd", planner.Unrestricted},
	}

	for _, tt := range tests {
		t.Run(tt.goos, func(t *testing.T) {
			assert.Equal(t, tt.want, ClassFor(tt.goos))
		})
	}
}

func TestResolve_OverrideWins(t *testing.T) {
	got, err := Resolve("argument-limited", "linux")
	require.NoError(t, err)
	assert.Equal(t, planner.ArgumentLimited, got)
}

func TestResolve_InvalidOverride(t *testing.T) {
	_, err := Resolve("bogus", "linux")
	require.Error(t, err)
	assert.ErrorIs(t, err, planner.ErrPlanning)
}

func TestResolve_TargetOS(t *testing.T) {
	got, err := Resolve("", "windows")
	require.NoError(t, err)
	assert.Equal(t, planner.ArgumentLimited, got)
}

func TestResolve_HostFallback(t *testing.T) {
	got, err := Resolve("", "")
	require.NoError(t, err)
	assert.Equal(t, ClassFor(runtime.GOOS), got)
}
