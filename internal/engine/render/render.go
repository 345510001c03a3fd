// Package render turns environment files into lock files, metapackage
// environments and installer directories, one platform at a time.
package render

import (
	"context"
	"os"
	"path/filepath"

	"github.com/ryanvolz/radioconda/internal/adapters/lockfile"
	"github.com/ryanvolz/radioconda/internal/core/domain"
	"github.com/ryanvolz/radioconda/internal/core/ports"
	"go.trai.ch/zerr"
)

// Request describes one rerender run.
type Request struct {
	// Main is the distribution environment. Its platforms drive the run.
	Main *domain.EnvironmentFile
	// Installer holds packages shipped in the installer but not the metapackage.
	Installer *domain.EnvironmentFile
	// Builder is the environment the installers are built with. When nil no
	// builder lock is written and the NSIS template patch is skipped.
	Builder *domain.EnvironmentFile

	Version      string
	Company      string
	LicenseFile  string
	LogoPath     string
	OutputDir    string
	TemplatesDir string
	CondaExe     string

	// Dirty keeps existing output instead of wiping it first.
	Dirty bool
	// KeepWorkDir keeps the resolver intermediates.
	KeepWorkDir bool
}

// PlatformResult lists the files rendered for one platform.
type PlatformResult struct {
	Platform        domain.Platform
	LockFile        string
	MetapackageFile string
	InstallerDir    string
}

// Result is the outcome of a rerender run.
type Result struct {
	BuilderLockFile string
	Platforms       []PlatformResult
}

// Renderer runs the lock-and-filter pipeline.
type Renderer struct {
	resolver     ports.Resolver
	materializer *Materializer
	templates    *TemplatePatcher
	telemetry    ports.Telemetry
	logger       ports.Logger
}

// NewRenderer creates a new Renderer.
func NewRenderer(
	resolver ports.Resolver,
	materializer *Materializer,
	templates *TemplatePatcher,
	telemetry ports.Telemetry,
	logger ports.Logger,
) *Renderer {
	return &Renderer{
		resolver:     resolver,
		materializer: materializer,
		templates:    templates,
		telemetry:    telemetry,
		logger:       logger,
	}
}

// Render resolves the environments and renders every platform in order.
// A failure aborts the run; platforms rendered before it stay on disk.
func (r *Renderer) Render(ctx context.Context, req Request) (*Result, error) {
	if !exists(req.LicenseFile) {
		return nil, zerr.With(domain.ErrLicenseNotFound, "path", req.LicenseFile)
	}
	if req.LogoPath != "" && !exists(req.LogoPath) {
		return nil, zerr.With(domain.ErrLogoNotFound, "path", req.LogoPath)
	}

	if req.Installer == nil {
		req.Installer = &domain.EnvironmentFile{Name: req.Main.Name}
	}

	workDir, err := r.prepareOutput(req)
	if err != nil {
		return nil, err
	}

	builderEnvs, builderLock, err := r.resolveBuilder(ctx, req, workDir)
	if err != nil {
		return nil, err
	}

	envs, err := r.resolveMain(ctx, req, workDir)
	if err != nil {
		return nil, err
	}

	result := &Result{BuilderLockFile: builderLock}
	for _, env := range envs {
		pr, err := r.renderPlatform(ctx, req, env, builderEnvs[env.Platform])
		if err != nil {
			return nil, zerr.With(err, "platform", env.Platform.String())
		}
		result.Platforms = append(result.Platforms, pr)
	}

	if !req.KeepWorkDir {
		if err := os.RemoveAll(workDir); err != nil {
			return nil, zerr.With(zerr.Wrap(err, domain.ErrOutputWriteFailed.Error()), "path", workDir)
		}
	}

	return result, nil
}

func (r *Renderer) prepareOutput(req Request) (string, error) {
	if !req.Dirty {
		if err := os.RemoveAll(req.OutputDir); err != nil {
			return "", zerr.With(zerr.Wrap(err, domain.ErrOutputWriteFailed.Error()), "path", req.OutputDir)
		}
	}

	workDir := filepath.Join(req.OutputDir, domain.LockWorkDirName)
	if err := os.MkdirAll(workDir, domain.DirPerm); err != nil {
		return "", zerr.With(zerr.Wrap(err, domain.ErrOutputWriteFailed.Error()), "path", workDir)
	}
	return workDir, nil
}

// resolveBuilder locks the builder environment. It inherits the distribution
// platforms when it names none of its own.
func (r *Renderer) resolveBuilder(
	ctx context.Context,
	req Request,
	workDir string,
) (map[domain.Platform]*domain.ResolvedEnvironment, string, error) {
	if req.Builder == nil {
		return nil, "", nil
	}

	builder := *req.Builder
	if len(builder.Platforms) == 0 {
		builder.Platforms = req.Main.Platforms
	}

	lockPath := filepath.Join(req.OutputDir, domain.BuilderLockFileName)
	var envs []*domain.ResolvedEnvironment
	err := r.stage(ctx, string(domain.StageResolve)+" "+builder.Name, func(ctx context.Context) error {
		var err error
		envs, err = r.resolver.Resolve(ctx, domain.ResolveRequest{
			Specs:        builder.Specs(),
			WorkDir:      workDir,
			LockfilePath: lockPath,
			CondaExe:     req.CondaExe,
		})
		return err
	})
	if err != nil {
		return nil, "", err
	}

	byPlatform := make(map[domain.Platform]*domain.ResolvedEnvironment, len(envs))
	for _, env := range envs {
		byPlatform[env.Platform] = env
	}
	return byPlatform, lockPath, nil
}

// resolveMain locks the distribution together with the installer extras so
// both projections share the same pinned versions.
func (r *Renderer) resolveMain(ctx context.Context, req Request, workDir string) ([]*domain.ResolvedEnvironment, error) {
	specs := make([]domain.EnvironmentSpec, 0, len(req.Main.Platforms))
	for _, p := range req.Main.Platforms {
		specs = append(specs, req.Main.SpecFor(p).Merge(req.Installer.SpecFor(p)))
	}

	var envs []*domain.ResolvedEnvironment
	err := r.stage(ctx, string(domain.StageResolve)+" "+req.Main.Name, func(ctx context.Context) error {
		var err error
		envs, err = r.resolver.Resolve(ctx, domain.ResolveRequest{
			Specs:        specs,
			WorkDir:      workDir,
			LockfilePath: filepath.Join(workDir, domain.ResolverLockFileName(req.Main.Name)),
			CondaExe:     req.CondaExe,
		})
		return err
	})
	return envs, err
}

func (r *Renderer) renderPlatform(
	ctx context.Context,
	req Request,
	env *domain.ResolvedEnvironment,
	builderEnv *domain.ResolvedEnvironment,
) (PlatformResult, error) {
	p := env.Platform
	name := req.Main.Name
	res := PlatformResult{Platform: p}

	mainNames := domain.NewNameSet(req.Main.Dependencies)
	allNames := domain.NewNameSet(req.Main.Dependencies, req.Installer.Dependencies)

	err := r.stage(ctx, domain.StageLock.VertexName(p), func(_ context.Context) error {
		res.LockFile = filepath.Join(req.OutputDir, domain.LockFileName(name, p))
		return lockfile.WriteFile(res.LockFile, env, domain.LockMetadata{
			Name:         name,
			Version:      req.Version,
			Platform:     p,
			Channels:     env.Channels,
			Dependencies: allNames.Sorted(),
		})
	})
	if err != nil {
		return res, err
	}

	err = r.stage(ctx, domain.StageMetapackage.VertexName(p), func(_ context.Context) error {
		var err error
		meta := MetapackageEnvironment(name, req.Version, domain.Filter(env, mainNames))
		res.MetapackageFile, err = WriteMetapackageEnvironment(req.OutputDir, meta)
		return err
	})
	if err != nil {
		return res, err
	}

	var constructorPkg domain.LockedPackage
	hasConstructor := false
	if p.IsWindows() && builderEnv != nil {
		constructorPkg, hasConstructor = builderEnv.Lookup(domain.ConstructorPackage)
	}

	err = r.stage(ctx, domain.StageMaterialize.VertexName(p), func(_ context.Context) error {
		filtered := domain.Filter(env, allNames)
		requested := append(req.Main.PackageNames(), req.Installer.PackageNames()...)

		var err error
		res.InstallerDir, err = r.materializer.Materialize(InstallerInput{
			Name:               name,
			Version:            req.Version,
			Company:            req.Company,
			Platform:           p,
			Channels:           filtered.Channels,
			Specs:              filtered.Specs,
			UserRequestedSpecs: domain.UserRequestedSpecs(requested, filtered),
			LicenseFile:        req.LicenseFile,
			LogoPath:           req.LogoPath,
			OutputDir:          req.OutputDir,
			NSISTemplate:       hasConstructor,
		})
		return err
	})
	if err != nil {
		return res, err
	}

	if p.IsWindows() {
		if !hasConstructor {
			r.logger.Warn("no " + domain.ConstructorPackage + " package locked for " + p.String() + ", skipping NSIS template patch")
			return res, nil
		}
		err = r.stage(ctx, domain.StagePatchTemplate.VertexName(p), func(ctx context.Context) error {
			return r.templates.Patch(ctx, constructorPkg, req.TemplatesDir, res.InstallerDir)
		})
		if err != nil {
			return res, err
		}
	}

	r.logger.Info("rendered " + res.InstallerDir)
	return res, nil
}

// stage runs fn inside a telemetry vertex completed with its error.
func (r *Renderer) stage(ctx context.Context, name string, fn func(context.Context) error) error {
	ctx, vertex := r.telemetry.Record(ctx, name)
	err := fn(ctx)
	vertex.Complete(err)
	return err
}
