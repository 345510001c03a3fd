// Package config loads environment files and process settings.
package config

import (
	"os"

	"github.com/ryanvolz/radioconda/internal/core/domain"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

// FileEnvironmentLoader implements ports.EnvironmentLoader for YAML files.
type FileEnvironmentLoader struct{}

// NewEnvironmentLoader creates a new FileEnvironmentLoader.
func NewEnvironmentLoader() *FileEnvironmentLoader {
	return &FileEnvironmentLoader{}
}

// Load reads the environment file at path.
func (l *FileEnvironmentLoader) Load(path string) (*domain.EnvironmentFile, error) {
	return LoadEnvironmentFile(path)
}

// LoadMetapackage reads a rendered metapackage environment, filling unset keys from fallback.
func (l *FileEnvironmentLoader) LoadMetapackage(
	path string,
	fallback domain.MetapackageEnvironment,
) (domain.MetapackageEnvironment, error) {
	return LoadMetapackageEnvironment(path, fallback)
}

// environmentDTO mirrors the conda environment.yml schema plus the keys
// written into rendered metapackage environments.
type environmentDTO struct {
	Name         string            `yaml:"name"`
	Version      string            `yaml:"version"`
	Channels     []string          `yaml:"channels"`
	Platforms    []string          `yaml:"platforms"`
	Platform     string            `yaml:"platform"`
	Dependencies []yaml.Node       `yaml:"dependencies"`
	Variables    map[string]string `yaml:"variables"`
}

// LoadEnvironmentFile reads and validates an environment file.
//
// Nested pip sections in dependencies are ignored.
func LoadEnvironmentFile(path string) (*domain.EnvironmentFile, error) {
	data, err := os.ReadFile(path) //nolint:gosec // path is provided by user
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrEnvFileReadFailed.Error()), "path", path)
	}
	return ParseEnvironment(path, data)
}

// ParseEnvironment decodes environment YAML. path is used for error context only.
func ParseEnvironment(path string, data []byte) (*domain.EnvironmentFile, error) {
	var dto environmentDTO
	if err := yaml.Unmarshal(data, &dto); err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrEnvFileParseFailed.Error()), "path", path)
	}

	if dto.Name == "" {
		return nil, invalid(path, "name")
	}
	if dto.Dependencies == nil {
		return nil, invalid(path, "dependencies")
	}

	env := &domain.EnvironmentFile{
		Path:      path,
		Name:      dto.Name,
		Version:   dto.Version,
		Channels:  dto.Channels,
		Variables: dto.Variables,
	}

	env.Dependencies = scalarDependencies(dto.Dependencies)

	names := dto.Platforms
	if len(names) == 0 && dto.Platform != "" {
		names = []string{dto.Platform}
	}
	for _, name := range names {
		p, err := domain.PlatformFromName(dto.Name + "-" + name)
		if err != nil || p.String() != name {
			return nil, zerr.With(zerr.With(domain.ErrUnknownPlatform, "path", path), "platform", name)
		}
		env.Platforms = append(env.Platforms, p)
	}

	return env, nil
}

// scalarDependencies keeps the plain requirement strings of a dependency list.
func scalarDependencies(nodes []yaml.Node) []string {
	deps := []string{}
	for i := range nodes {
		if nodes[i].Kind == yaml.ScalarNode {
			deps = append(deps, nodes[i].Value)
		}
	}
	return deps
}

// RequirePlatforms fails when env targets no platform.
func RequirePlatforms(env *domain.EnvironmentFile) error {
	if len(env.Platforms) == 0 {
		return invalid(env.Path, "platforms")
	}
	return nil
}

func invalid(path, key string) error {
	return zerr.With(zerr.With(domain.ErrEnvFileInvalid, "path", path), "key", key)
}
