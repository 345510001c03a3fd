// Package commands implements the CLI commands for the radioconda build tool.
package commands

import (
	"context"
	"fmt"
	"io"

	"github.com/ryanvolz/radioconda/internal/adapters/config"
	"github.com/ryanvolz/radioconda/internal/app"
	"github.com/ryanvolz/radioconda/internal/build"
	"github.com/spf13/cobra"
)

// CLI represents the command line interface for radioconda.
type CLI struct {
	app      Application
	settings config.Settings
	rootCmd  *cobra.Command
}

// Application represents the application logic interface.
type Application interface {
	Rerender(ctx context.Context, opts app.RerenderOptions) error
	BuildInstaller(ctx context.Context, opts app.InstallerOptions) error
	BuildMetapackage(ctx context.Context, opts app.MetapackageOptions) error
}

// New creates a new CLI instance with the given app and settings.
func New(a Application, settings config.Settings) *CLI {
	rootCmd := &cobra.Command{
		Use:           "radioconda",
		Short:         "Lock, render and build conda-based software radio installers",
		SilenceUsage:  true,
		SilenceErrors: true,
		Version:       build.Version,
	}

	rootCmd.SetVersionTemplate(fmt.Sprintf(
		"{{.Name}} version {{.Version}} (commit: %s, date: %s)\n",
		build.Commit,
		build.Date,
	))
	rootCmd.InitDefaultVersionFlag()
	rootCmd.Flags().Lookup("version").Usage = "Print the application version"

	rootCmd.InitDefaultHelpFlag()
	rootCmd.Flags().Lookup("help").Usage = "Show help for command"

	c := &CLI{
		app:      a,
		settings: settings,
		rootCmd:  rootCmd,
	}

	rootCmd.AddCommand(c.newRerenderCmd())
	rootCmd.AddCommand(c.newInstallerCmd())
	rootCmd.AddCommand(c.newMetapackageCmd())
	rootCmd.AddCommand(c.newVersionCmd())

	return c
}

// Execute runs the root command with the given context.
func (c *CLI) Execute(ctx context.Context) error {
	c.rootCmd.SetContext(ctx)
	return c.rootCmd.Execute()
}

// SetArgs sets the arguments for the root command. Used for testing.
func (c *CLI) SetArgs(args []string) {
	c.rootCmd.SetArgs(args)
}

// SetOutput sets the output and error streams for the root command. Used for testing.
func (c *CLI) SetOutput(out, err io.Writer) {
	c.rootCmd.SetOut(out)
	c.rootCmd.SetErr(err)
}
