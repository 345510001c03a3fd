package domain

import "go.trai.ch/zerr"

var (
	// ErrEnvFileReadFailed is returned when an environment file cannot be read.
	ErrEnvFileReadFailed = zerr.New("failed to read environment file")

	// ErrEnvFileParseFailed is returned when an environment file is not valid YAML.
	ErrEnvFileParseFailed = zerr.New("failed to parse environment file")

	// ErrEnvFileInvalid is returned when an environment file is missing a required key.
	ErrEnvFileInvalid = zerr.New("invalid environment file")

	// ErrUnknownPlatform is returned when a name does not end in a recognized platform identifier.
	ErrUnknownPlatform = zerr.New("could not identify platform from name")

	// ErrLicenseNotFound is returned when the installer license file does not exist.
	ErrLicenseNotFound = zerr.New("cannot find license file")

	// ErrLogoNotFound is returned when the branding logo file does not exist.
	ErrLogoNotFound = zerr.New("cannot find logo file")

	// ErrDuplicatePackage is returned when a resolved environment contains two packages with the same name.
	ErrDuplicatePackage = zerr.New("duplicate package in resolved environment")

	// ErrPlatformNotLocked is returned when a lock file has no packages for a requested platform.
	ErrPlatformNotLocked = zerr.New("platform not present in lock file")

	// ErrResolveFailed is returned when the external resolver exits with an error.
	ErrResolveFailed = zerr.New("dependency resolution failed")

	// ErrLockParseFailed is returned when a resolver lock file cannot be parsed.
	ErrLockParseFailed = zerr.New("failed to parse resolver lock file")

	// ErrLockFileMalformed is returned when a rendered lock file cannot be read back.
	ErrLockFileMalformed = zerr.New("malformed lock file")

	// ErrCommandFailed is returned when an external command exits with a non-zero status.
	ErrCommandFailed = zerr.New("command failed")

	// ErrInstallerBuildFailed is returned when the installer builder fails.
	ErrInstallerBuildFailed = zerr.New("installer build failed")

	// ErrMetapackageBuildFailed is returned when building the metapackage fails.
	ErrMetapackageBuildFailed = zerr.New("metapackage build failed")

	// ErrPackageFetchFailed is returned when a conda package cannot be downloaded or opened.
	ErrPackageFetchFailed = zerr.New("failed to fetch package")

	// ErrPackageFormatUnsupported is returned for package files that are neither .conda nor .tar.bz2.
	ErrPackageFormatUnsupported = zerr.New("unsupported package format")

	// ErrPackageMemberNotFound is returned when a file is not present in a package archive.
	ErrPackageMemberNotFound = zerr.New("file not found in package")

	// ErrPatchParseFailed is returned when a serialized patch cannot be decoded.
	ErrPatchParseFailed = zerr.New("failed to parse patch")

	// ErrTemplateNotFound is returned when a local NSIS template cannot be read.
	ErrTemplateNotFound = zerr.New("cannot find NSIS template")

	// ErrTemplatePatchConflict is returned when a template patch hunk does not apply cleanly.
	ErrTemplatePatchConflict = zerr.New("conflicts found when patching NSIS template")

	// ErrImageRenderFailed is returned when a branding image cannot be produced.
	ErrImageRenderFailed = zerr.New("failed to render branding image")

	// ErrStoreReadFailed is returned when the build info cannot be read.
	ErrStoreReadFailed = zerr.New("failed to read build info")

	// ErrStoreUnmarshalFailed is returned when the build info cannot be unmarshaled.
	ErrStoreUnmarshalFailed = zerr.New("failed to unmarshal build info")

	// ErrStoreMarshalFailed is returned when the build info cannot be marshaled.
	ErrStoreMarshalFailed = zerr.New("failed to marshal build info")

	// ErrStoreWriteFailed is returned when the build info cannot be written.
	ErrStoreWriteFailed = zerr.New("failed to write build info")

	// ErrFileHashFailed is returned when hashing a file fails.
	ErrFileHashFailed = zerr.New("failed to hash file content")

	// ErrOutputWriteFailed is returned when a rendered file cannot be written.
	ErrOutputWriteFailed = zerr.New("failed to write output")
)
