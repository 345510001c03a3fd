package commands

import (
	"path/filepath"

	"github.com/ryanvolz/radioconda/internal/app"
	"github.com/ryanvolz/radioconda/internal/core/domain"
	"github.com/spf13/cobra"
)

const defaultChannel = "conda-forge"

func (c *CLI) newMetapackageCmd() *cobra.Command {
	s := c.settings

	cmd := &cobra.Command{
		Use:   "metapackage [environment_file] [-- conda metapackage args...]",
		Short: "Build the distribution metapackage from a rendered environment file",
		RunE: func(cmd *cobra.Command, args []string) error {
			var extra []string
			if dash := cmd.ArgsLenAtDash(); dash >= 0 {
				args, extra = args[:dash], args[dash:]
			}
			if err := cobra.MaximumNArgs(1)(cmd, args); err != nil {
				return err
			}

			envFile := filepath.Join(defaultSpecsDir, s.DistName+"-"+s.Platform.String()+".yml")
			if len(args) > 0 {
				envFile = args[0]
			}

			flags := cmd.Flags()
			output, _ := flags.GetString("output_dir")
			home, _ := flags.GetString("home")
			license, _ := flags.GetString("license")
			summary, _ := flags.GetString("summary")
			croot, _ := flags.GetString("croot")

			return c.app.BuildMetapackage(cmd.Context(), app.MetapackageOptions{
				EnvironmentFile: envFile,
				Fallback: domain.MetapackageEnvironment{
					Name:     s.DistName,
					Version:  "0",
					Platform: s.Platform,
					Channels: []string{defaultChannel},
				},
				OutputDir:      output,
				Home:           home,
				License:        license,
				Summary:        summary,
				CondaBuildRoot: croot,
				ExtraArgs:      extra,
			})
		},
	}

	cmd.Flags().StringP("output_dir", "o", filepath.Join("dist", "conda-bld"), "Output directory for the built packages")
	cmd.Flags().String("home", s.Source, "Homepage recorded in the metapackage")
	cmd.Flags().String("license", s.LicenseID, "License identifier recorded in the metapackage")
	cmd.Flags().String("summary", s.MetapackageSummary, "Summary recorded in the metapackage")
	cmd.Flags().String("croot", s.CondaBuildRoot, "conda-build root directory (asks conda when empty)")
	cmd.Flags().SetNormalizeFunc(flagAliases(map[string]string{
		"output":     "output_dir",
		"output-dir": "output_dir",
	}))
	return cmd
}
