// Package condabuild builds environment metapackages with conda-build.
package condabuild

import (
	"context"
	"encoding/json"
	"io"
	"os"
	"path/filepath"
	"slices"

	"github.com/ryanvolz/radioconda/internal/core/domain"
	"github.com/ryanvolz/radioconda/internal/core/ports"
	"go.trai.ch/zerr"
)

// Executable is the conda command name.
const Executable = "conda"

// packagePatterns match the archives conda-build leaves in its build root.
var packagePatterns = []string{"*.tar.bz2", "*.conda"}

var _ ports.MetapackageBuilder = (*Builder)(nil)

// Builder implements ports.MetapackageBuilder by running conda metapackage.
type Builder struct {
	runner ports.CommandRunner
	logger ports.Logger
}

// NewBuilder creates a new Builder.
func NewBuilder(runner ports.CommandRunner, logger ports.Logger) *Builder {
	return &Builder{runner: runner, logger: logger}
}

// Build runs conda metapackage for the environment and copies the resulting
// packages into {OutputDir}/{platform}.
func (b *Builder) Build(ctx context.Context, build domain.MetapackageBuild) ([]string, error) {
	env := build.Environment

	b.logger.Info("building metapackage " + env.Name + " " + env.Version + " for " + env.Platform.String())
	if err := b.runner.Run(ctx, Command(build)); err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrMetapackageBuildFailed.Error()), "name", env.Name)
	}

	croot := build.CondaBuildRoot
	if croot == "" {
		var err error
		if croot, err = b.defaultBuildRoot(ctx); err != nil {
			return nil, err
		}
	}

	return copyPackages(filepath.Join(croot, env.Platform.String()), env, filepath.Join(build.OutputDir, env.Platform.String()))
}

// Command builds the conda metapackage invocation for build.
func Command(build domain.MetapackageBuild) domain.Command {
	env := build.Environment

	args := []string{
		"metapackage", env.Name, env.Version,
		"--no-anaconda-upload",
		"--home", build.Home,
		"--license", build.License,
		"--summary", build.Summary,
	}
	for _, ch := range env.Channels {
		args = append(args, "--channel", ch)
	}
	args = append(args, "--dependencies")
	args = append(args, env.Dependencies...)
	args = append(args, build.ExtraArgs...)

	return domain.Command{
		Name: Executable,
		Args: args,
		Env:  []string{"CONDA_SUBDIR=" + env.Platform.String()},
	}
}

type condaInfo struct {
	RootPrefix string `json:"root_prefix"`
}

// defaultBuildRoot asks conda for its root prefix; conda-build defaults its
// build root to {root_prefix}/conda-bld.
func (b *Builder) defaultBuildRoot(ctx context.Context) (string, error) {
	out, err := b.runner.Output(ctx, domain.Command{Name: Executable, Args: []string{"info", "--json"}})
	if err != nil {
		return "", zerr.Wrap(err, domain.ErrMetapackageBuildFailed.Error())
	}

	var info condaInfo
	if err := json.Unmarshal(out, &info); err != nil {
		return "", zerr.Wrap(err, domain.ErrMetapackageBuildFailed.Error())
	}
	if info.RootPrefix == "" {
		return "", zerr.With(domain.ErrMetapackageBuildFailed, "reason", "conda info reported no root_prefix")
	}
	return filepath.Join(info.RootPrefix, "conda-bld"), nil
}

func copyPackages(srcDir string, env domain.MetapackageEnvironment, dstDir string) ([]string, error) {
	var matches []string
	for _, pattern := range packagePatterns {
		found, err := filepath.Glob(filepath.Join(srcDir, env.Name+"-"+env.Version+pattern))
		if err != nil {
			return nil, zerr.Wrap(err, domain.ErrMetapackageBuildFailed.Error())
		}
		matches = append(matches, found...)
	}
	slices.Sort(matches)

	if err := os.MkdirAll(dstDir, domain.DirPerm); err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrOutputWriteFailed.Error()), "path", dstDir)
	}

	copied := make([]string, 0, len(matches))
	for _, src := range matches {
		dst := filepath.Join(dstDir, filepath.Base(src))
		if err := copyFile(src, dst); err != nil {
			return nil, err
		}
		copied = append(copied, dst)
	}
	return copied, nil
}

func copyFile(src, dst string) error {
	in, err := os.Open(src) //nolint:gosec // Path comes from a glob under the build root
	if err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrOutputWriteFailed.Error()), "path", src)
	}
	defer in.Close() //nolint:errcheck // Read-only file

	out, err := os.OpenFile(dst, os.O_CREATE|os.O_TRUNC|os.O_WRONLY, domain.FilePerm) //nolint:gosec // Output path
	if err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrOutputWriteFailed.Error()), "path", dst)
	}

	if _, err := io.Copy(out, in); err != nil {
		_ = out.Close()
		return zerr.With(zerr.Wrap(err, domain.ErrOutputWriteFailed.Error()), "path", dst)
	}
	if err := out.Close(); err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrOutputWriteFailed.Error()), "path", dst)
	}
	return nil
}
