package render

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/ryanvolz/radioconda/internal/core/domain"
	"github.com/ryanvolz/radioconda/internal/core/ports"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

// InstallerInput is everything needed to stage one installer directory.
type InstallerInput struct {
	Name               string
	Version            string
	Company            string
	Platform           domain.Platform
	Channels           []string
	Specs              []string
	UserRequestedSpecs []string
	LicenseFile        string
	LogoPath           string
	OutputDir          string

	// NSISTemplate makes construct.yaml point at a patched main.nsi.tmpl.
	NSISTemplate bool
}

type brandImage struct {
	name   string
	width  int
	height int
	opaque bool
}

// NSIS converts welcome and header images to bitmaps without transparency,
// so those are flattened onto white.
var (
	windowsImages = []brandImage{
		{domain.WelcomeImageName, 164, 314, true},
		{domain.HeaderImageName, 150, 57, true},
		{domain.IconImageName, 256, 256, false},
	}
	osxImages = []brandImage{
		{domain.WelcomeImageName, 1227, 600, false},
	}
)

// Materializer stages installer directories consumed by conda constructor.
type Materializer struct {
	images ports.ImageRenderer
}

// NewMaterializer creates a new Materializer.
func NewMaterializer(images ports.ImageRenderer) *Materializer {
	return &Materializer{images: images}
}

// Materialize recreates {OutputDir}/{name}-{platform} and returns its path.
func (m *Materializer) Materialize(in InstallerInput) (string, error) {
	dir := filepath.Join(in.OutputDir, domain.InstallerDirName(in.Name, in.Platform))

	if err := os.RemoveAll(dir); err != nil {
		return "", zerr.With(zerr.Wrap(err, domain.ErrOutputWriteFailed.Error()), "path", dir)
	}
	if err := os.MkdirAll(dir, domain.DirPerm); err != nil {
		return "", zerr.With(zerr.Wrap(err, domain.ErrOutputWriteFailed.Error()), "path", dir)
	}

	if err := copyLicense(in.LicenseFile, filepath.Join(dir, domain.LicenseFileName)); err != nil {
		return "", err
	}

	desc := Descriptor(in)

	if err := m.writeBranding(in, dir, &desc); err != nil {
		return "", err
	}

	script, data := PostInstallScript(in.Name, in.Platform)
	perm := os.FileMode(domain.FilePerm)
	if !in.Platform.IsWindows() {
		perm = domain.ExecFilePerm
	}
	if err := writeFile(filepath.Join(dir, script), data, perm); err != nil {
		return "", err
	}

	out, err := yaml.Marshal(desc)
	if err != nil {
		return "", zerr.Wrap(err, domain.ErrOutputWriteFailed.Error())
	}
	if err := writeFile(filepath.Join(dir, domain.ConstructFileName), out, domain.FilePerm); err != nil {
		return "", err
	}

	return dir, nil
}

func (m *Materializer) writeBranding(in InstallerInput, dir string, desc *domain.ConstructDescriptor) error {
	if in.LogoPath == "" {
		return nil
	}

	var images []brandImage
	switch {
	case in.Platform.IsWindows():
		images = windowsImages
	case in.Platform.IsOSX():
		images = osxImages
	}

	for _, img := range images {
		if err := m.images.ResizeContain(in.LogoPath, filepath.Join(dir, img.name), img.width, img.height, img.opaque); err != nil {
			return err
		}
		switch img.name {
		case domain.WelcomeImageName:
			desc.WelcomeImage = img.name
		case domain.HeaderImageName:
			desc.HeaderImage = img.name
		case domain.IconImageName:
			desc.IconImage = img.name
		}
	}
	return nil
}

// Descriptor builds the construct.yaml content for an installer, without branding images.
func Descriptor(in InstallerInput) domain.ConstructDescriptor {
	desc := domain.ConstructDescriptor{
		Name:                  in.Name,
		Version:               in.Version,
		Company:               in.Company,
		Channels:              in.Channels,
		Specs:                 in.Specs,
		UserRequestedSpecs:    in.UserRequestedSpecs,
		InitializeByDefault:   !in.Platform.IsWindows(),
		InstallerType:         domain.InstallerTypeAll,
		KeepPkgs:              true,
		LicenseFile:           domain.LicenseFileName,
		RegisterPythonDefault: false,
		WriteCondarc:          true,
		Condarc: domain.CondarcConfig{
			Channels:        in.Channels,
			ChannelPriority: domain.ChannelPriorityStrict,
		},
		PostInstall: domain.PostInstallShell,
	}
	if in.Platform.IsWindows() {
		desc.PostInstall = domain.PostInstallBatch
		if in.NSISTemplate {
			desc.NSISTemplate = domain.NSISTemplateName
		}
	}
	return desc
}

// PostInstallScript returns the post-install script name and content for a platform.
// Both variants purge the cached package archives; the Windows one also
// resets the conda-meta state variables.
func PostInstallScript(name string, platform domain.Platform) (string, []byte) {
	if platform.IsWindows() {
		vars := make([]string, 0, len(domain.WindowsStateVariables))
		for _, v := range domain.WindowsStateVariables {
			vars = append(vars, `"`+v+`": ""`)
		}
		lines := []string{
			`echo {"env_vars": {` + strings.Join(vars, ", ") + `}}>%PREFIX%\conda-meta\state`,
			`del /q %PREFIX%\pkgs\*.tar.bz2`,
			`del /q %PREFIX%\pkgs\*.conda`,
			"exit 0",
			"",
		}
		return domain.PostInstallBatch, []byte(strings.Join(lines, "\n"))
	}

	lines := []string{
		"#!/bin/sh",
		`PREFIX="${PREFIX:-$2/` + name + `}"`,
		"rm -f $PREFIX/pkgs/*.tar.bz2 $PREFIX/pkgs/*.conda",
		"exit 0",
		"",
	}
	return domain.PostInstallShell, []byte(strings.Join(lines, "\n"))
}
