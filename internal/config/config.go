// Package config loads genplan configuration.
//
// Values come from, in decreasing precedence: command-line flags bound by the
// CLI, GENPLAN_* environment variables, a genplan.yaml file, and defaults.
// Defaults mirror the layout of a generator package: the manifest lives at
// Sources/ExtensionApi/extension_api.json and documentation under doc/.
package config

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/spf13/viper"
)

// Configuration keys
const (
	KeyPackageDir = "package_dir"
	KeyGenerator  = "generator"
	KeyManifest   = "manifest"
	KeyOutputRoot = "output_root"
	KeyDocsDir    = "docs_dir"
	KeyPlatform   = "platform"
	KeyTargetOS   = "target_os"
	KeyLogLevel   = "log_level"
)

// EnvPrefix prefixes every environment variable read by genplan.
const EnvPrefix = "GENPLAN"

// FileName is the config file looked up in the working directory.
const FileName = "genplan"

// Config holds the resolved genplan settings.
type Config struct {
	// PackageDir is the package root relative paths are resolved against
	PackageDir string `mapstructure:"package_dir"`

	// Generator is the generator executable
	Generator string `mapstructure:"generator"`

	// Manifest is the API manifest (extension_api.json)
	Manifest string `mapstructure:"manifest"`

	// OutputRoot is where generated sources are written
	OutputRoot string `mapstructure:"output_root"`

	// DocsDir is the documentation directory passed in combined mode
	DocsDir string `mapstructure:"docs_dir"`

	// Platform overrides platform detection ("argument-limited", "unrestricted")
	Platform string `mapstructure:"platform"`

	// TargetOS is the GOOS-style name of the target (default: host OS)
	TargetOS string `mapstructure:"target_os"`

	// LogLevel is the zap log level
	LogLevel string `mapstructure:"log_level"`
}

// SetDefaults registers default values on v.
func SetDefaults(v *viper.Viper) {
	v.SetDefault(KeyPackageDir, "")
	v.SetDefault(KeyGenerator, "")
	v.SetDefault(KeyManifest, filepath.Join("Sources", "ExtensionApi", "extension_api.json"))
	v.SetDefault(KeyOutputRoot, filepath.Join(".genplan", "GeneratedSources"))
	v.SetDefault(KeyDocsDir, "doc")
	v.SetDefault(KeyPlatform, "")
	v.SetDefault(KeyTargetOS, "")
	v.SetDefault(KeyLogLevel, "warn")
}

// NewViper creates a Viper instance with env binding and defaults. When
// configFile is empty, genplan.yaml is searched for in searchDir; a missing
// file is not an error.
func NewViper(configFile, searchDir string) (*viper.Viper, error) {
	v := viper.New()

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()

	SetDefaults(v)

	if configFile != "" {
		v.SetConfigFile(configFile)
	} else {
		v.SetConfigName(FileName)
		v.SetConfigType("yaml")
		v.AddConfigPath(searchDir)
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if configFile != "" || !errors.As(err, &notFound) {
			return nil, errors.Wrap(err, "failed to read config")
		}
	}

	return v, nil
}

// Load unmarshals v and resolves relative paths against the package
// directory. An empty package directory means the current working directory.
func Load(v *viper.Viper) (*Config, error) {
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, errors.Wrap(err, "failed to unmarshal config")
	}

	if cfg.PackageDir == "" {
		cwd, err := os.Getwd()
		if err != nil {
			return nil, errors.Wrap(err, "failed to get current directory")
		}
		cfg.PackageDir = cwd
	}

	pkg, err := filepath.Abs(cfg.PackageDir)
	if err != nil {
		return nil, errors.Wrap(err, "failed to resolve package directory")
	}
	cfg.PackageDir = pkg

	cfg.Generator = cfg.resolve(cfg.Generator)
	cfg.Manifest = cfg.resolve(cfg.Manifest)
	cfg.OutputRoot = cfg.resolve(cfg.OutputRoot)
	cfg.DocsDir = cfg.resolve(cfg.DocsDir)

	return &cfg, nil
}

// resolve makes p absolute relative to the package directory. Empty paths
// stay empty so the planner can report them.
func (c *Config) resolve(p string) string {
	if p == "" || filepath.IsAbs(p) {
		return p
	}
	return filepath.Join(c.PackageDir, p)
}
