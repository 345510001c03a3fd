package render

import (
	"errors"
	"io"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/ryanvolz/radioconda/internal/core/domain"
	"go.trai.ch/zerr"
)

func writeFile(path string, data []byte, perm os.FileMode) error {
	if err := os.MkdirAll(filepath.Dir(path), domain.DirPerm); err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrOutputWriteFailed.Error()), "path", path)
	}
	if err := os.WriteFile(path, data, perm); err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrOutputWriteFailed.Error()), "path", path)
	}
	// WriteFile keeps the mode of an existing file.
	if err := os.Chmod(path, perm); err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrOutputWriteFailed.Error()), "path", path)
	}
	return nil
}

// copyLicense copies the license file to dst.
func copyLicense(src, dst string) error {
	in, err := os.Open(src) //nolint:gosec // Path is provided by the caller
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return zerr.With(domain.ErrLicenseNotFound, "path", src)
		}
		return zerr.With(zerr.Wrap(err, domain.ErrLicenseNotFound.Error()), "path", src)
	}
	defer in.Close() //nolint:errcheck // Read-only file

	data, err := io.ReadAll(in)
	if err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrLicenseNotFound.Error()), "path", src)
	}
	return writeFile(dst, data, domain.FilePerm)
}

func exists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}
