package commands

import (
	"os"
	"path/filepath"
	"time"

	"github.com/ryanvolz/radioconda/internal/app"
	"github.com/spf13/cobra"
)

const (
	defaultBuilderFile  = "buildenv.yaml"
	defaultSpecsDir     = "installer_specs"
	defaultTemplatesDir = "constructor/nsis"
)

func (c *CLI) newRerenderCmd() *cobra.Command {
	dist := c.settings.DistName

	cmd := &cobra.Command{
		Use:   "rerender [environment_file] [installer_environment_file] [builder_environment_file]",
		Short: "Lock the environments and render the installer specs for every platform",
		Args:  cobra.MaximumNArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			files := []string{dist + ".yaml", dist + "_installer.yaml", ""}
			copy(files, args)
			if len(args) < 3 && exists(defaultBuilderFile) {
				files[2] = defaultBuilderFile
			}

			flags := cmd.Flags()
			version, _ := flags.GetString("version")
			company, _ := flags.GetString("company")
			license, _ := flags.GetString("license_file")
			output, _ := flags.GetString("output_dir")
			condaExe, _ := flags.GetString("conda-exe")
			templatesDir, _ := flags.GetString("templates-dir")
			dirty, _ := flags.GetBool("dirty")
			keepWorkDir, _ := flags.GetBool("keep-workdir")

			logo, _ := flags.GetString("logo")
			if !flags.Changed("logo") && !exists(logo) {
				logo = ""
			}

			return c.app.Rerender(cmd.Context(), app.RerenderOptions{
				EnvironmentFile:          files[0],
				InstallerEnvironmentFile: files[1],
				BuilderEnvironmentFile:   files[2],
				Version:                  version,
				Company:                  company,
				LicenseFile:              license,
				LogoPath:                 logo,
				OutputDir:                output,
				TemplatesDir:             templatesDir,
				CondaExe:                 condaExe,
				Dirty:                    dirty,
				KeepWorkDir:              keepWorkDir,
			})
		},
	}

	cmd.Flags().StringP("version", "v", time.Now().Format("2006.01.02"), "Version tag for the installer")
	cmd.Flags().String("company", c.settings.Company, "Name of the company/entity responsible for the installer")
	cmd.Flags().StringP("license_file", "l", "LICENSE", "License file for the installer")
	cmd.Flags().String("logo", filepath.Join("static", dist+"_logo.png"), "Logo image used for installer branding")
	cmd.Flags().StringP("output_dir", "o", defaultSpecsDir, "Output directory for the rendered specs")
	cmd.Flags().Bool("dirty", false, "Keep the existing output directory instead of wiping it")
	cmd.Flags().Bool("keep-workdir", false, "Keep the resolver's intermediate files")
	cmd.Flags().String("conda-exe", "", "Path to the conda (or mamba or micromamba) executable")
	cmd.Flags().String("templates-dir", defaultTemplatesDir, "Directory holding the customized NSIS template")
	cmd.Flags().SetNormalizeFunc(flagAliases(map[string]string{
		"license":      "license_file",
		"license-file": "license_file",
		"output":       "output_dir",
		"output-dir":   "output_dir",
	}))
	return cmd
}

func exists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}
