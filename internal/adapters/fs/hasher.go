package fs

import (
	"encoding/binary"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/cespare/xxhash/v2"
	"github.com/ryanvolz/radioconda/internal/core/domain"
	"github.com/ryanvolz/radioconda/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.Hasher = (*Hasher)(nil)

// Hasher computes content hashes of installer spec directories.
type Hasher struct {
	walker  *Walker
	ignores []string
}

// NewHasher creates a new Hasher. Files matching ignores are left out of every digest.
func NewHasher(walker *Walker, ignores ...string) *Hasher {
	return &Hasher{walker: walker, ignores: ignores}
}

// ComputeFileHash computes the XXHash of a file's content.
func (h *Hasher) ComputeFileHash(path string) (uint64, error) {
	f, err := os.Open(path) //nolint:gosec // Path is controlled by caller
	if err != nil {
		return 0, zerr.With(zerr.Wrap(err, domain.ErrFileHashFailed.Error()), "path", path)
	}
	defer f.Close() //nolint:errcheck // Best effort close in defer

	hasher := xxhash.New()
	if _, err := io.Copy(hasher, f); err != nil {
		return 0, zerr.With(zerr.Wrap(err, domain.ErrFileHashFailed.Error()), "path", path)
	}

	return hasher.Sum64(), nil
}

// HashDir computes a single hash over the relative names and contents of
// every file under root. Moving the directory does not change the result.
func (h *Hasher) HashDir(root string) (string, error) {
	info, err := os.Stat(root)
	if err != nil {
		return "", zerr.With(zerr.Wrap(err, domain.ErrFileHashFailed.Error()), "path", root)
	}
	if !info.IsDir() {
		return "", zerr.With(domain.ErrFileHashFailed, "path", root)
	}

	hasher := xxhash.New()
	for path := range h.walker.WalkFiles(root, h.ignores) {
		rel, err := filepath.Rel(root, path)
		if err != nil {
			return "", zerr.With(zerr.Wrap(err, domain.ErrFileHashFailed.Error()), "path", path)
		}
		if err := h.hashFile(path, filepath.ToSlash(rel), hasher); err != nil {
			return "", err
		}
	}

	return fmt.Sprintf("%016x", hasher.Sum64()), nil
}

func (h *Hasher) hashFile(path, name string, mainHasher io.Writer) error {
	_, _ = mainHasher.Write([]byte(name))
	_, _ = mainHasher.Write([]byte{0})

	hash, err := h.ComputeFileHash(path)
	if err != nil {
		return err
	}

	if err := binary.Write(mainHasher, binary.LittleEndian, hash); err != nil {
		return zerr.Wrap(err, "failed to write hash to digest")
	}
	return nil
}
