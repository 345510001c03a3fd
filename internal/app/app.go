// Package app implements the application layer for radioconda.
package app

import (
	"context"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/ryanvolz/radioconda/internal/adapters/config" //nolint:depguard // Wired in app layer
	"github.com/ryanvolz/radioconda/internal/core/domain"
	"github.com/ryanvolz/radioconda/internal/core/ports"
	"github.com/ryanvolz/radioconda/internal/engine/render"
	"go.trai.ch/zerr"
)

// App represents the main application logic.
type App struct {
	loader      ports.EnvironmentLoader
	renderer    *render.Renderer
	installer   ports.InstallerBuilder
	metapackage ports.MetapackageBuilder
	store       ports.BuildInfoStore
	hasher      ports.Hasher
	telemetry   ports.Telemetry
	logger      ports.Logger
}

// New creates a new App instance.
func New(
	loader ports.EnvironmentLoader,
	renderer *render.Renderer,
	installer ports.InstallerBuilder,
	metapackage ports.MetapackageBuilder,
	store ports.BuildInfoStore,
	hasher ports.Hasher,
	telemetry ports.Telemetry,
	logger ports.Logger,
) *App {
	return &App{
		loader:      loader,
		renderer:    renderer,
		installer:   installer,
		metapackage: metapackage,
		store:       store,
		hasher:      hasher,
		telemetry:   telemetry,
		logger:      logger,
	}
}

// RerenderOptions configures a rerender run.
type RerenderOptions struct {
	EnvironmentFile          string
	InstallerEnvironmentFile string
	// BuilderEnvironmentFile may be empty to skip locking the builder.
	BuilderEnvironmentFile string

	Version      string
	Company      string
	LicenseFile  string
	LogoPath     string
	OutputDir    string
	TemplatesDir string
	CondaExe     string
	Dirty        bool
	KeepWorkDir  bool
}

// Rerender locks the environments and renders the installer specs.
func (a *App) Rerender(ctx context.Context, opts RerenderOptions) error {
	main, err := a.loader.Load(opts.EnvironmentFile)
	if err != nil {
		return err
	}
	if err := config.RequirePlatforms(main); err != nil {
		return err
	}

	installer, err := a.loader.Load(opts.InstallerEnvironmentFile)
	if err != nil {
		return err
	}

	var builder *domain.EnvironmentFile
	if opts.BuilderEnvironmentFile != "" {
		if builder, err = a.loader.Load(opts.BuilderEnvironmentFile); err != nil {
			return err
		}
	}

	res, err := a.renderer.Render(ctx, render.Request{
		Main:         main,
		Installer:    installer,
		Builder:      builder,
		Version:      opts.Version,
		Company:      opts.Company,
		LicenseFile:  opts.LicenseFile,
		LogoPath:     opts.LogoPath,
		OutputDir:    opts.OutputDir,
		TemplatesDir: opts.TemplatesDir,
		CondaExe:     opts.CondaExe,
		Dirty:        opts.Dirty,
		KeepWorkDir:  opts.KeepWorkDir,
	})
	if err != nil {
		return err
	}

	a.logger.Info("rendered " + strconv.Itoa(len(res.Platforms)) + " platform(s) of " + main.Name + " " + opts.Version + " into " + opts.OutputDir)
	return nil
}

// InstallerOptions configures an installer build.
type InstallerOptions struct {
	SpecDir   string
	OutputDir string
	// Force rebuilds even when the spec dir is unchanged since the last build.
	Force bool
	// ExtraArgs are forwarded to constructor. Builds with extra arguments always run.
	ExtraArgs []string
}

// BuildInstaller runs constructor on a rendered installer directory.
func (a *App) BuildInstaller(ctx context.Context, opts InstallerOptions) (err error) {
	platform, err := domain.PlatformFromName(opts.SpecDir)
	if err != nil {
		return zerr.With(err, "spec_dir", opts.SpecDir)
	}

	hash, err := a.hasher.HashDir(opts.SpecDir)
	if err != nil {
		return err
	}

	ctx, vertex := a.telemetry.Record(ctx, "installer "+platform.String())

	if !opts.Force && len(opts.ExtraArgs) == 0 {
		upToDate, err := a.upToDate(opts, hash)
		if err != nil {
			vertex.Complete(err)
			return err
		}
		if upToDate {
			vertex.Cached()
			a.logger.Info(filepath.Base(opts.SpecDir) + " is unchanged since the last build, skipping (use --force to rebuild)")
			return nil
		}
	}
	defer func() { vertex.Complete(err) }()

	err = a.installer.Build(ctx, domain.InstallerBuild{
		SpecDir:   opts.SpecDir,
		Platform:  platform,
		OutputDir: opts.OutputDir,
		ExtraArgs: opts.ExtraArgs,
	})
	if err != nil {
		return err
	}

	return a.store.Put(domain.BuildInfo{
		SpecDir:   opts.SpecDir,
		Platform:  platform,
		InputHash: hash,
		OutputDir: opts.OutputDir,
		Timestamp: time.Now(),
	})
}

func (a *App) upToDate(opts InstallerOptions, hash string) (bool, error) {
	info, err := a.store.Get(opts.SpecDir)
	if err != nil {
		return false, err
	}
	if info == nil || info.InputHash != hash || filepath.Clean(info.OutputDir) != filepath.Clean(opts.OutputDir) {
		return false, nil
	}
	if _, err := os.Stat(opts.OutputDir); err != nil {
		return false, nil //nolint:nilerr // A missing output dir just means rebuild
	}
	return true, nil
}

// MetapackageOptions configures a metapackage build.
type MetapackageOptions struct {
	EnvironmentFile string
	// Fallback supplies name, version, platform and channels the file leaves unset.
	Fallback       domain.MetapackageEnvironment
	OutputDir      string
	Home           string
	License        string
	Summary        string
	CondaBuildRoot string
	ExtraArgs      []string
}

// BuildMetapackage builds the metapackage of a rendered environment file.
func (a *App) BuildMetapackage(ctx context.Context, opts MetapackageOptions) (err error) {
	env, err := a.loader.LoadMetapackage(opts.EnvironmentFile, opts.Fallback)
	if err != nil {
		return err
	}

	ctx, vertex := a.telemetry.Record(ctx, "metapackage-build "+env.Platform.String())
	defer func() { vertex.Complete(err) }()

	paths, err := a.metapackage.Build(ctx, domain.MetapackageBuild{
		Environment:    env,
		Home:           opts.Home,
		License:        opts.License,
		Summary:        opts.Summary,
		CondaBuildRoot: opts.CondaBuildRoot,
		OutputDir:      opts.OutputDir,
		ExtraArgs:      opts.ExtraArgs,
	})
	if err != nil {
		return err
	}

	if len(paths) == 0 {
		a.logger.Warn("no " + env.Name + "-" + env.Version + " packages found in the conda-build root")
	}
	for _, p := range paths {
		a.logger.Info("wrote " + p)
	}
	return nil
}
