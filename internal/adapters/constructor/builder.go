// Package constructor builds installers by driving conda constructor.
package constructor

import (
	"context"
	"os"

	"github.com/ryanvolz/radioconda/internal/core/domain"
	"github.com/ryanvolz/radioconda/internal/core/ports"
	"go.trai.ch/zerr"
)

// Executable is the conda constructor command name.
const Executable = "constructor"

var _ ports.InstallerBuilder = (*Builder)(nil)

// Builder implements ports.InstallerBuilder.
type Builder struct {
	runner ports.CommandRunner
	logger ports.Logger
}

// NewBuilder creates a new Builder.
func NewBuilder(runner ports.CommandRunner, logger ports.Logger) *Builder {
	return &Builder{runner: runner, logger: logger}
}

// Build runs constructor on the installer directory, writing artifacts to the output directory.
func (b *Builder) Build(ctx context.Context, build domain.InstallerBuild) error {
	if err := os.MkdirAll(build.OutputDir, domain.DirPerm); err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrOutputWriteFailed.Error()), "path", build.OutputDir)
	}

	b.logger.Info("building " + build.Platform.String() + " installer from " + build.SpecDir)
	if err := b.runner.Run(ctx, Command(build)); err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrInstallerBuildFailed.Error()), "spec_dir", build.SpecDir)
	}
	return nil
}

// Command builds the constructor invocation for build.
func Command(build domain.InstallerBuild) domain.Command {
	args := []string{
		build.SpecDir,
		"--platform", build.Platform.String(),
		"--output-dir", build.OutputDir,
	}
	args = append(args, build.ExtraArgs...)
	return domain.Command{Name: Executable, Args: args}
}
