package commands

import (
	"path/filepath"
	"strings"

	"github.com/ryanvolz/radioconda/internal/app"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

func (c *CLI) newInstallerCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "installer [spec_dir] [constructor args...]",
		Short: "Build an installer from a rendered spec directory with constructor",
		Long: "Build an installer from a rendered spec directory with constructor.\n\n" +
			"Flags this command does not know, and everything after --, are passed to constructor.",
		// Unknown flags are forwarded, so parsing happens in RunE.
		DisableFlagParsing: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			flags := cmd.Flags()
			known, extra := splitKnownFlags(flags, args)
			if err := flags.Parse(known); err != nil {
				return err
			}
			if help, _ := flags.GetBool("help"); help {
				return cmd.Help()
			}

			specDir := filepath.Join(defaultSpecsDir, c.settings.DistName+"-"+c.settings.Platform.String())
			positional := flags.Args()
			if len(positional) > 0 {
				specDir = positional[0]
			}

			output, _ := flags.GetString("output_dir")
			force, _ := flags.GetBool("force")

			return c.app.BuildInstaller(cmd.Context(), app.InstallerOptions{
				SpecDir:   specDir,
				OutputDir: output,
				Force:     force,
				ExtraArgs: extra,
			})
		},
	}

	cmd.Flags().StringP("output_dir", "o", "dist", "Output directory for the installer")
	cmd.Flags().Bool("force", false, "Rebuild even if the spec directory is unchanged since the last build")
	cmd.Flags().BoolP("help", "h", false, "Show help for command")
	cmd.Flags().SetNormalizeFunc(flagAliases(map[string]string{
		"output":     "output_dir",
		"output-dir": "output_dir",
	}))
	return cmd
}

// splitKnownFlags separates args into those flags can parse and the rest.
// The first positional argument is known; later ones, and everything after
// "--", are unknown. Unknown arguments keep their order.
func splitKnownFlags(flags *pflag.FlagSet, args []string) (known, unknown []string) {
	positional := false
	for i := 0; i < len(args); i++ {
		arg := args[i]
		var f *pflag.Flag
		inlineValue := false

		switch {
		case arg == "--":
			return known, append(unknown, args[i+1:]...)
		case strings.HasPrefix(arg, "--"):
			name, _, hasValue := strings.Cut(arg[2:], "=")
			f = flags.Lookup(name)
			inlineValue = hasValue
		case len(arg) > 1 && arg[0] == '-':
			f = flags.ShorthandLookup(arg[1:2])
			inlineValue = len(arg) > 2
		case positional:
			unknown = append(unknown, arg)
			continue
		default:
			positional = true
			known = append(known, arg)
			continue
		}

		if f == nil {
			unknown = append(unknown, arg)
			continue
		}
		known = append(known, arg)
		if !inlineValue && f.NoOptDefVal == "" && i+1 < len(args) {
			i++
			known = append(known, args[i])
		}
	}
	return known, unknown
}

// flagAliases resolves alternative flag names to their registered name.
func flagAliases(aliases map[string]string) func(*pflag.FlagSet, string) pflag.NormalizedName {
	return func(_ *pflag.FlagSet, name string) pflag.NormalizedName {
		if target, ok := aliases[name]; ok {
			name = target
		}
		return pflag.NormalizedName(name)
	}
}
