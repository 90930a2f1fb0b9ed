package engine

import (
	"os"
	"path/filepath"

	"github.com/cockroachdb/errors"
	"gopkg.in/yaml.v3"

	"github.com/danieljhkim/genplan/internal/planner"
)

// StampFileName is written to the output root after every successful
// incremental run.
const StampFileName = ".genplan-stamp.yaml"

// Stamp records what the last successful run was generated from.
type Stamp struct {
	// Mode is the build mode of the run
	Mode planner.Mode `yaml:"mode"`

	// ManifestHash is the SHA-256 of the manifest at run time
	ManifestHash string `yaml:"manifest_hash"`

	// CommandHash fingerprints executable, arguments and declared outputs
	CommandHash string `yaml:"command_hash"`

	// Outputs is the number of declared outputs
	Outputs int `yaml:"outputs"`
}

func stampPath(cmd *planner.PlannedCommand) string {
	return filepath.Join(cmd.OutputDir, StampFileName)
}

// commandHash fingerprints everything in cmd that affects what gets written.
func (e *Engine) commandHash(cmd *planner.PlannedCommand) string {
	parts := make([]string, 0, 3+len(cmd.Arguments)+len(cmd.Outputs))
	parts = append(parts, cmd.Executable, string(cmd.Mode), "--")
	parts = append(parts, cmd.Arguments...)
	parts = append(parts, cmd.Outputs...)
	return e.hasher.HashStrings(parts...)
}

// loadStamp returns the stamp for cmd, or nil if none was written.
func (e *Engine) loadStamp(cmd *planner.PlannedCommand) (*Stamp, error) {
	data, err := e.fs.ReadFile(stampPath(cmd))
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil
		}
		return nil, errors.Wrap(err, "failed to read stamp")
	}

	var stamp Stamp
	if err := yaml.Unmarshal(data, &stamp); err != nil {
		// A corrupt stamp only forces a rebuild
		e.logger.Warnw("ignoring unreadable stamp", "path", stampPath(cmd), "error", err)
		return nil, nil
	}
	return &stamp, nil
}

func (e *Engine) saveStamp(cmd *planner.PlannedCommand, stamp *Stamp) error {
	data, err := yaml.Marshal(stamp)
	if err != nil {
		return errors.Wrap(err, "failed to encode stamp")
	}
	if err := e.fs.AtomicWrite(stampPath(cmd), data, 0644); err != nil {
		return errors.Wrap(err, "failed to write stamp")
	}
	return nil
}
