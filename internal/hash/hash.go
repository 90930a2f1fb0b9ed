// Package hash fingerprints the inputs of a generator run.
//
// A run records the SHA-256 of the manifest and of the planned command in its
// stamp file; the next run compares them to decide whether the incremental
// step is up to date.
package hash

import (
	"crypto/sha256"
	"encoding/hex"

	"github.com/cockroachdb/errors"

	"github.com/danieljhkim/genplan/internal/fsops"
)

// Hasher provides an abstraction for hashing operations.
type Hasher interface {
	// HashFile computes the hash of the file at the given path.
	HashFile(path string) (string, error)

	// HashStrings computes the hash of an ordered list of strings.
	HashStrings(parts ...string) string
}

// SHA256Hasher implements Hasher using SHA-256.
type SHA256Hasher struct {
	fs fsops.FS
}

// NewSHA256Hasher creates a new SHA256Hasher reading files through fs.
func NewSHA256Hasher(fs fsops.FS) *SHA256Hasher {
	return &SHA256Hasher{fs: fs}
}

// HashFile computes the SHA-256 hash of the file at the given path.
func (h *SHA256Hasher) HashFile(path string) (string, error) {
	data, err := h.fs.ReadFile(path)
	if err != nil {
		return "", errors.Wrap(err, "failed to read file")
	}
	sum := sha256.Sum256(data)
	return hex.EncodeToString(sum[:]), nil
}

// HashStrings hashes parts with a NUL separator so that ["ab", "c"] and
// ["a", "bc"] differ.
func (h *SHA256Hasher) HashStrings(parts ...string) string {
	hasher := sha256.New()
	for _, p := range parts {
		hasher.Write([]byte(p))
		hasher.Write([]byte{0})
	}
	return hex.EncodeToString(hasher.Sum(nil))
}
