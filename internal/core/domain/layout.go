package domain

import "path/filepath"

const (
	// DefaultDistName is the distribution name used when DISTNAME is unset.
	DefaultDistName = "radioconda"

	// LockWorkDirName is the directory under the output dir holding resolver intermediates.
	LockWorkDirName = "lockwork"

	// BuilderLockFileName is the lock file of the installer builder environment.
	BuilderLockFileName = "buildenv.conda-lock.yml"

	// ConstructFileName is the construction descriptor consumed by constructor.
	ConstructFileName = "construct.yaml"

	// LicenseFileName is the license copy inside an installer directory.
	LicenseFileName = "LICENSE"

	// PostInstallShell is the POSIX post-install script name.
	PostInstallShell = "post_install.sh"

	// PostInstallBatch is the Windows post-install script name.
	PostInstallBatch = "post_install.bat"

	// NSISTemplateName is the NSIS installer template name.
	NSISTemplateName = "main.nsi.tmpl"

	// NSISTemplateOrigSuffix marks the recorded upstream copy of the NSIS template.
	NSISTemplateOrigSuffix = ".orig"

	// NSISTemplateMember is the path of the NSIS template inside the constructor package.
	NSISTemplateMember = "site-packages/constructor/nsis/main.nsi.tmpl"

	// ConstructorPackage is the name of the installer builder package.
	ConstructorPackage = "constructor"

	// WelcomeImageName is the installer welcome image.
	WelcomeImageName = "welcome.png"

	// HeaderImageName is the installer header image.
	HeaderImageName = "header.png"

	// IconImageName is the installer icon image.
	IconImageName = "icon.png"

	// StateDirName is the directory holding build info between runs.
	StateDirName = ".radioconda"

	// StoreFileName is the build info store file name.
	StoreFileName = "builds.json"

	// DirPerm is the default permission for directories (rwxr-x---).
	DirPerm = 0o750

	// FilePerm is the default permission for files (rw-r--r--).
	FilePerm = 0o644

	// ExecFilePerm is the permission for generated shell scripts (rwxr-xr-x).
	ExecFilePerm = 0o755
)

// LockFileName returns the rendered lock file name for a platform.
func LockFileName(name string, platform Platform) string {
	return name + "-" + string(platform) + ".lock"
}

// MetapackageFileName returns the metapackage environment file name for a platform.
func MetapackageFileName(name string, platform Platform) string {
	return name + "-" + string(platform) + ".yml"
}

// InstallerDirName returns the installer staging directory name for a platform.
func InstallerDirName(name string, platform Platform) string {
	return name + "-" + string(platform)
}

// ResolverLockFileName returns the resolver's intermediate lock file name,
// shared by all platforms of an environment.
func ResolverLockFileName(name string) string {
	return name + ".conda-lock.yml"
}

// DefaultStorePath returns the default path for the build info store.
func DefaultStorePath() string {
	return filepath.Join(StateDirName, StoreFileName)
}
