package domain

import (
	"path/filepath"
	"regexp"
	"runtime"
	"strings"

	"go.trai.ch/zerr"
)

// Platform is a conda subdir identifier such as "linux-64" or "osx-arm64".
type Platform string

var platformSuffix = regexp.MustCompile(`^.*-((?:linux|osx|win)-[A-Za-z0-9_]+)$`)

// String returns the platform identifier.
func (p Platform) String() string {
	return string(p)
}

// IsWindows reports whether the platform targets Windows.
func (p Platform) IsWindows() bool {
	return strings.HasPrefix(string(p), "win")
}

// IsOSX reports whether the platform targets macOS.
func (p Platform) IsOSX() bool {
	return strings.HasPrefix(string(p), "osx")
}

// IsLinux reports whether the platform targets Linux.
func (p Platform) IsLinux() bool {
	return strings.HasPrefix(string(p), "linux")
}

// PlatformFromName extracts the platform from a directory or file name ending in
// a platform identifier, e.g. "radioconda-linux-64" or "radioconda-win-64.yml".
func PlatformFromName(path string) (Platform, error) {
	base := filepath.Base(filepath.Clean(path))
	if ext := filepath.Ext(base); ext == ".yml" || ext == ".yaml" || ext == ".lock" {
		base = strings.TrimSuffix(base, ext)
	}

	m := platformSuffix.FindStringSubmatch(base)
	if m == nil {
		return "", zerr.With(ErrUnknownPlatform, "name", base)
	}
	return Platform(m[1]), nil
}

// CurrentPlatform returns the conda platform of the running process.
func CurrentPlatform() Platform {
	var osName string
	switch runtime.GOOS {
	case "darwin":
		osName = "osx"
	case "windows":
		osName = "win"
	default:
		osName = runtime.GOOS
	}

	var arch string
	switch runtime.GOARCH {
	case "amd64":
		arch = "64"
	case "386":
		arch = "32"
	case "arm64":
		if osName == "linux" {
			arch = "aarch64"
		} else {
			arch = "arm64"
		}
	case "ppc64le":
		arch = "ppc64le"
	default:
		arch = runtime.GOARCH
	}

	return Platform(osName + "-" + arch)
}
