package ports

import (
	"context"

	"github.com/ryanvolz/radioconda/internal/core/domain"
)

// InstallerBuilder turns a rendered installer directory into installer artifacts.
//
//go:generate go run go.uber.org/mock/mockgen -source=builder.go -destination=mocks/mock_builder.go -package=mocks
type InstallerBuilder interface {
	Build(ctx context.Context, build domain.InstallerBuild) error
}

// MetapackageBuilder builds a conda metapackage from a rendered environment.
type MetapackageBuilder interface {
	// Build returns the paths of the packages copied into the output directory.
	Build(ctx context.Context, build domain.MetapackageBuild) ([]string, error)
}
