package render

import (
	"path/filepath"

	"github.com/ryanvolz/radioconda/internal/core/domain"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

// MetapackageEnvironment builds the environment used to create the metapackage
// of a platform from the request-only projection.
func MetapackageEnvironment(name, version string, filtered domain.FilteredSpec) domain.MetapackageEnvironment {
	return domain.MetapackageEnvironment{
		Name:         name,
		Version:      version,
		Platform:     filtered.Platform,
		Channels:     filtered.Channels,
		Dependencies: filtered.Specs,
		Variables:    domain.StateVariables(filtered.Platform),
	}
}

// WriteMetapackageEnvironment writes {dir}/{name}-{platform}.yml and returns its path.
func WriteMetapackageEnvironment(dir string, env domain.MetapackageEnvironment) (string, error) {
	data, err := yaml.Marshal(env)
	if err != nil {
		return "", zerr.Wrap(err, domain.ErrOutputWriteFailed.Error())
	}

	path := filepath.Join(dir, domain.MetapackageFileName(env.Name, env.Platform))
	if err := writeFile(path, data, domain.FilePerm); err != nil {
		return "", err
	}
	return path, nil
}
