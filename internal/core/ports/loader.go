package ports

import "github.com/ryanvolz/radioconda/internal/core/domain"

// EnvironmentLoader reads declarative environment files.
//
//go:generate go run go.uber.org/mock/mockgen -source=loader.go -destination=mocks/mock_loader.go -package=mocks
type EnvironmentLoader interface {
	// Load parses the environment file at path. Platforms may be empty.
	Load(path string) (*domain.EnvironmentFile, error)

	// LoadMetapackage parses a metapackage environment file, taking unset
	// name, version, platform and channels from fallback.
	LoadMetapackage(path string, fallback domain.MetapackageEnvironment) (domain.MetapackageEnvironment, error)
}
