package config

import (
	"os"

	"github.com/ryanvolz/radioconda/internal/core/domain"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

// LoadMetapackageEnvironment reads a metapackage environment file. Name,
// version, platform and channels fall back to the given values when the
// file leaves them unset; dependencies are required.
func LoadMetapackageEnvironment(path string, fallback domain.MetapackageEnvironment) (domain.MetapackageEnvironment, error) {
	data, err := os.ReadFile(path) //nolint:gosec // path is provided by user
	if err != nil {
		return domain.MetapackageEnvironment{}, zerr.With(zerr.Wrap(err, domain.ErrEnvFileReadFailed.Error()), "path", path)
	}

	var dto environmentDTO
	if err := yaml.Unmarshal(data, &dto); err != nil {
		return domain.MetapackageEnvironment{}, zerr.With(zerr.Wrap(err, domain.ErrEnvFileParseFailed.Error()), "path", path)
	}
	if dto.Dependencies == nil {
		return domain.MetapackageEnvironment{}, invalid(path, "dependencies")
	}

	env := domain.MetapackageEnvironment{
		Name:         dto.Name,
		Version:      dto.Version,
		Platform:     domain.Platform(dto.Platform),
		Channels:     dto.Channels,
		Dependencies: scalarDependencies(dto.Dependencies),
		Variables:    dto.Variables,
	}
	if env.Name == "" {
		env.Name = fallback.Name
	}
	if env.Version == "" {
		env.Version = fallback.Version
	}
	if env.Platform == "" {
		env.Platform = fallback.Platform
	}
	if env.Channels == nil {
		env.Channels = fallback.Channels
	}

	if p, err := domain.PlatformFromName(env.Name + "-" + env.Platform.String()); err != nil || p != env.Platform {
		return domain.MetapackageEnvironment{}, zerr.With(zerr.With(domain.ErrUnknownPlatform, "path", path), "platform", env.Platform.String())
	}

	return env, nil
}
