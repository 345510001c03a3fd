package config

import (
	"strings"

	"github.com/ryanvolz/radioconda/internal/core/domain"
	"github.com/spf13/viper"
)

// Settings holds the process-level configuration read from the environment.
type Settings struct {
	// DistName is the distribution name (DISTNAME).
	DistName string

	// Platform is the default target platform (PLATFORM).
	Platform domain.Platform

	// Source is the project homepage. SOURCE wins over
	// GITHUB_SERVER_URL/GITHUB_REPOSITORY.
	Source string

	// Company is the entity responsible for the installer. Defaults to Source.
	Company string

	// LicenseID is the SPDX identifier of the metapackage license (LICENSE_ID).
	LicenseID string

	// MetapackageSummary is the metapackage summary (METAPACKAGE_SUMMARY).
	MetapackageSummary string

	// CondaBuildRoot is the conda-build croot (CONDA_BLD_PATH). Empty means
	// the builder asks conda.
	CondaBuildRoot string
}

// Setting keys, matched case-insensitively against environment variables.
const (
	KeyDistName           = "distname"
	KeyPlatform           = "platform"
	KeySource             = "source"
	KeyServerURL          = "github_server_url"
	KeyRepository         = "github_repository"
	KeyCompany            = "company"
	KeyLicenseID          = "license_id"
	KeyMetapackageSummary = "metapackage_summary"
	KeyCondaBuildRoot     = "conda_bld_path"
)

// Defaults for settings without an environment override.
const (
	DefaultServerURL  = "https://github.com"
	DefaultRepository = "ryanvolz/radioconda"
	DefaultLicenseID  = "BSD-3-Clause"
)

// LoadSettings reads Settings from the process environment.
func LoadSettings() Settings {
	v := viper.New()
	v.AutomaticEnv()

	v.SetDefault(KeyDistName, domain.DefaultDistName)
	v.SetDefault(KeyPlatform, domain.CurrentPlatform().String())
	v.SetDefault(KeyServerURL, DefaultServerURL)
	v.SetDefault(KeyRepository, DefaultRepository)
	v.SetDefault(KeyLicenseID, DefaultLicenseID)

	return fromViper(v)
}

func fromViper(v *viper.Viper) Settings {
	distName := v.GetString(KeyDistName)

	source := v.GetString(KeySource)
	if source == "" {
		source = strings.TrimSuffix(v.GetString(KeyServerURL), "/") + "/" + v.GetString(KeyRepository)
	}

	company := v.GetString(KeyCompany)
	if company == "" {
		company = source
	}

	summary := v.GetString(KeyMetapackageSummary)
	if summary == "" {
		summary = "Metapackage for " + distName + "."
	}

	return Settings{
		DistName:           distName,
		Platform:           domain.Platform(v.GetString(KeyPlatform)),
		Source:             source,
		Company:            company,
		LicenseID:          v.GetString(KeyLicenseID),
		MetapackageSummary: summary,
		CondaBuildRoot:     v.GetString(KeyCondaBuildRoot),
	}
}
