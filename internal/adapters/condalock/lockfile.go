package condalock

import (
	"net/url"
	"path"
	"strings"

	"github.com/ryanvolz/radioconda/internal/core/domain"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

// managerConda marks conda packages in the unified lock file; pip entries are skipped.
const managerConda = "conda"

// unifiedLock is the subset of the conda-lock.yml (version 1) schema we consume.
type unifiedLock struct {
	Version  int           `yaml:"version"`
	Metadata lockMetadata  `yaml:"metadata"`
	Package  []lockPackage `yaml:"package"`
}

type lockMetadata struct {
	Channels  []lockChannel `yaml:"channels"`
	Platforms []string      `yaml:"platforms"`
}

type lockChannel struct {
	URL string `yaml:"url"`
}

type lockPackage struct {
	Name     string            `yaml:"name"`
	Version  string            `yaml:"version"`
	Manager  string            `yaml:"manager"`
	Platform string            `yaml:"platform"`
	URL      string            `yaml:"url"`
	Hash     map[string]string `yaml:"hash"`
	Category string            `yaml:"category"`
}

// ParseLock decodes a unified conda-lock file and returns the conda packages
// locked for platform.
func ParseLock(data []byte, platform domain.Platform) ([]domain.LockedPackage, []string, error) {
	var lock unifiedLock
	if err := yaml.Unmarshal(data, &lock); err != nil {
		return nil, nil, zerr.Wrap(err, domain.ErrLockParseFailed.Error())
	}

	channels := make([]string, 0, len(lock.Metadata.Channels))
	for _, ch := range lock.Metadata.Channels {
		channels = append(channels, ch.URL)
	}

	var pkgs []domain.LockedPackage
	for _, p := range lock.Package {
		if p.Manager != managerConda || domain.Platform(p.Platform) != platform {
			continue
		}
		pkgs = append(pkgs, domain.LockedPackage{
			Name:     p.Name,
			Version:  p.Version,
			Build:    buildFromURL(p.Name, p.Version, p.URL),
			Platform: platform,
			URL:      p.URL,
			Channel:  channelFromURL(p.URL),
			MD5:      p.Hash["md5"],
			SHA256:   p.Hash["sha256"],
			Category: p.Category,
		})
	}
	return pkgs, channels, nil
}

// buildFromURL extracts the build string from a package file name of the
// form "{name}-{version}-{build}.conda" or ".tar.bz2".
func buildFromURL(name, version, rawURL string) string {
	file := path.Base(urlPath(rawURL))
	for _, ext := range []string{".conda", ".tar.bz2"} {
		file = strings.TrimSuffix(file, ext)
	}
	prefix := name + "-" + version + "-"
	if !strings.HasPrefix(file, prefix) {
		return ""
	}
	return strings.TrimPrefix(file, prefix)
}

// channelFromURL returns the channel segment of ".../{channel}/{subdir}/{file}".
func channelFromURL(rawURL string) string {
	dir := path.Dir(path.Dir(urlPath(rawURL)))
	if dir == "." || dir == "/" {
		return ""
	}
	return path.Base(dir)
}

func urlPath(rawURL string) string {
	if u, err := url.Parse(rawURL); err == nil && u.Path != "" {
		return u.Path
	}
	return rawURL
}
