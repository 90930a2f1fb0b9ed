package cli

import (
	"encoding/json"
	"io"
	"os"
	"strings"

	"github.com/cockroachdb/errors"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"github.com/danieljhkim/genplan/internal/config"
	"github.com/danieljhkim/genplan/internal/engine"
	"github.com/danieljhkim/genplan/internal/fsops"
	"github.com/danieljhkim/genplan/internal/genexec"
	"github.com/danieljhkim/genplan/internal/hash"
)

// loadConfig resolves configuration from flags, environment and config file.
func loadConfig() (*config.Config, error) {
	searchDir, err := rootCmd.PersistentFlags().GetString("package-dir")
	if err != nil {
		return nil, err
	}
	if searchDir == "" {
		if searchDir, err = os.Getwd(); err != nil {
			return nil, errors.Wrap(err, "failed to get current directory")
		}
	}

	v, err := config.NewViper(configFile, searchDir)
	if err != nil {
		return nil, err
	}
	for _, f := range settingFlags {
		if err := v.BindPFlag(f.key, rootCmd.PersistentFlags().Lookup(f.flag)); err != nil {
			return nil, errors.Wrapf(err, "failed to bind flag %s", f.flag)
		}
	}

	return config.Load(v)
}

// newLogger builds a console logger writing to stderr at the given level.
func newLogger(level string) (*zap.SugaredLogger, error) {
	lvl, err := zap.ParseAtomicLevel(level)
	if err != nil {
		return nil, errors.Wrapf(err, "invalid log level %q", level)
	}

	cfg := zap.NewDevelopmentConfig()
	cfg.Level = lvl
	cfg.DisableStacktrace = true
	cfg.DisableCaller = true

	logger, err := cfg.Build()
	if err != nil {
		return nil, errors.Wrap(err, "failed to build logger")
	}
	return logger.Sugar(), nil
}

// newEngine creates a new engine with real implementations of all dependencies.
func newEngine(cfg *config.Config) (*engine.Engine, error) {
	logger, err := newLogger(cfg.LogLevel)
	if err != nil {
		return nil, err
	}

	fs := fsops.NewRealFS()
	return engine.New(fs, hash.NewSHA256Hasher(fs), genexec.NewExecRunner(), logger), nil
}

// planRequest converts resolved configuration into an engine request.
func planRequest(cfg *config.Config) engine.PlanRequest {
	return engine.PlanRequest{
		Platform:      cfg.Platform,
		TargetOS:      cfg.TargetOS,
		GeneratorPath: cfg.Generator,
		ManifestPath:  cfg.Manifest,
		OutputRoot:    cfg.OutputRoot,
		DocsDir:       cfg.DocsDir,
	}
}

// setup loads configuration and builds the engine.
func setup() (*engine.Engine, *config.Config, error) {
	cfg, err := loadConfig()
	if err != nil {
		return nil, nil, err
	}
	eng, err := newEngine(cfg)
	if err != nil {
		return nil, nil, err
	}
	return eng, cfg, nil
}

// FormatError formats an error for display, followed by any hints attached
// to it.
func FormatError(err error) string {
	var b strings.Builder
	b.WriteString(errorColor.Sprintf("Error: %v", err))
	if hint := errors.FlattenHints(err); hint != "" {
		b.WriteString("\n")
		b.WriteString(dimColor.Sprintf("Hint: %s", hint))
	}
	return b.String()
}

// outputJSON writes a value as indented JSON.
func outputJSON(w io.Writer, v interface{}) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// outputYAML writes a value as YAML.
func outputYAML(w io.Writer, v interface{}) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(v); err != nil {
		return err
	}
	return enc.Close()
}
