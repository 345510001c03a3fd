// Package condalock resolves environments by driving conda-lock.
package condalock

import (
	"context"
	"os"
	"path/filepath"
	"strings"

	"github.com/ryanvolz/radioconda/internal/core/domain"
	"github.com/ryanvolz/radioconda/internal/core/ports"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

// Executable is the conda-lock command name.
const Executable = "conda-lock"

// Resolver implements ports.Resolver by running conda-lock.
type Resolver struct {
	runner ports.CommandRunner
	logger ports.Logger
}

// NewResolver creates a new Resolver.
func NewResolver(runner ports.CommandRunner, logger ports.Logger) *Resolver {
	return &Resolver{
		runner: runner,
		logger: logger,
	}
}

// environmentYAML is the input file handed to conda-lock.
type environmentYAML struct {
	Name         string   `yaml:"name"`
	Channels     []string `yaml:"channels"`
	Platforms    []string `yaml:"platforms"`
	Dependencies []string `yaml:"dependencies"`
}

// Resolve pins req for every platform with a single conda-lock run.
func (r *Resolver) Resolve(ctx context.Context, req domain.ResolveRequest) ([]*domain.ResolvedEnvironment, error) {
	if len(req.Specs) == 0 {
		return nil, nil
	}
	base := req.Specs[0]

	envPath, err := r.writeEnvironment(req)
	if err != nil {
		return nil, err
	}

	r.logger.Info("locking " + base.Name + " for " + platformList(req.Platforms()))
	if err := r.runner.Run(ctx, Command(envPath, req)); err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrResolveFailed.Error()), "environment", base.Name)
	}

	data, err := os.ReadFile(req.LockfilePath)
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrLockParseFailed.Error()), "path", req.LockfilePath)
	}

	envs := make([]*domain.ResolvedEnvironment, 0, len(req.Specs))
	for _, spec := range req.Specs {
		pkgs, _, err := ParseLock(data, spec.Platform)
		if err != nil {
			return nil, zerr.With(err, "path", req.LockfilePath)
		}
		if len(pkgs) == 0 {
			return nil, zerr.With(zerr.With(domain.ErrPlatformNotLocked, "platform", spec.Platform.String()), "path", req.LockfilePath)
		}

		env, err := domain.NewResolvedEnvironment(spec.Name, spec.Platform, spec.Channels, pkgs)
		if err != nil {
			return nil, err
		}
		envs = append(envs, env)
	}
	return envs, nil
}

func (r *Resolver) writeEnvironment(req domain.ResolveRequest) (string, error) {
	base := req.Specs[0]

	platforms := make([]string, 0, len(req.Specs))
	for _, p := range req.Platforms() {
		platforms = append(platforms, p.String())
	}

	data, err := yaml.Marshal(environmentYAML{
		Name:         base.Name,
		Channels:     base.Channels,
		Platforms:    platforms,
		Dependencies: base.Dependencies,
	})
	if err != nil {
		return "", zerr.Wrap(err, domain.ErrOutputWriteFailed.Error())
	}

	if err := os.MkdirAll(req.WorkDir, domain.DirPerm); err != nil {
		return "", zerr.With(zerr.Wrap(err, domain.ErrOutputWriteFailed.Error()), "path", req.WorkDir)
	}
	path := filepath.Join(req.WorkDir, base.Name+".environment.yml")
	if err := os.WriteFile(path, data, domain.FilePerm); err != nil {
		return "", zerr.With(zerr.Wrap(err, domain.ErrOutputWriteFailed.Error()), "path", path)
	}
	return path, nil
}

// Command builds the conda-lock invocation for req reading envPath.
func Command(envPath string, req domain.ResolveRequest) domain.Command {
	args := []string{"lock", "--mamba", "--micromamba", "-f", envPath}
	for _, p := range req.Platforms() {
		args = append(args, "-p", p.String())
	}
	args = append(args, "--kind", "lock", "--lockfile", req.LockfilePath)
	if req.CondaExe != "" {
		args = append(args, "--conda", req.CondaExe)
	}
	return domain.Command{Name: Executable, Args: args, Dir: req.WorkDir}
}

func platformList(platforms []domain.Platform) string {
	names := make([]string, 0, len(platforms))
	for _, p := range platforms {
		names = append(names, p.String())
	}
	return strings.Join(names, ", ")
}
