package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	pkg := t.TempDir()
	v, err := NewViper("", pkg)
	require.NoError(t, err)
	v.Set(KeyPackageDir, pkg)

	cfg, err := Load(v)
	require.NoError(t, err)

	assert.Equal(t, pkg, cfg.PackageDir)
	assert.Equal(t, filepath.Join(pkg, "Sources", "ExtensionApi", "extension_api.json"), cfg.Manifest)
	assert.Equal(t, filepath.Join(pkg, ".genplan", "GeneratedSources"), cfg.OutputRoot)
	assert.Equal(t, filepath.Join(pkg, "doc"), cfg.DocsDir)
	assert.Empty(t, cfg.Generator, "generator has no default")
	assert.Empty(t, cfg.Platform)
	assert.Equal(t, "warn", cfg.LogLevel)
}

func TestLoad_ConfigFileInSearchDir(t *testing.T) {
	pkg := t.TempDir()
	content := []byte(`generator: /usr/local/bin/generator
output_root: out
platform: argument-limited
`)
	require.NoError(t, os.WriteFile(filepath.Join(pkg, "genplan.yaml"), content, 0644))

	v, err := NewViper("", pkg)
	require.NoError(t, err)
	v.Set(KeyPackageDir, pkg)

	cfg, err := Load(v)
	require.NoError(t, err)

	assert.Equal(t, "/usr/local/bin/generator", cfg.Generator)
	assert.Equal(t, filepath.Join(pkg, "out"), cfg.OutputRoot)
	assert.Equal(t, "argument-limited", cfg.Platform)
}

func TestLoad_ExplicitConfigFileMissing(t *testing.T) {
	_, err := NewViper(filepath.Join(t.TempDir(), "nope.yaml"), "")
	assert.Error(t, err)
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	pkg := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(pkg, "genplan.yaml"), []byte("docs_dir: filedocs\n"), 0644))
	t.Setenv("GENPLAN_DOCS_DIR", "/env/docs")

	v, err := NewViper("", pkg)
	require.NoError(t, err)
	v.Set(KeyPackageDir, pkg)

	cfg, err := Load(v)
	require.NoError(t, err)

	assert.Equal(t, "/env/docs", cfg.DocsDir)
}

func TestLoad_EmptyPackageDirUsesCwd(t *testing.T) {
	v, err := NewViper("", t.TempDir())
	require.NoError(t, err)

	cfg, err := Load(v)
	require.NoError(t, err)

	cwd, err := os.Getwd()
	require.NoError(t, err)
	assert.Equal(t, cwd, cfg.PackageDir)
}

func TestResolve(t *testing.T) {
	cfg := &Config{PackageDir: "/pkg"}

	tests := []struct {
		in   string
		want string
	}{
		{"", ""},
		{"/abs/path", "/abs/path"},
		{"rel/path", "/pkg/rel/path"},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, cfg.resolve(tt.in))
		})
	}
}
