package commands_test

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/ryanvolz/radioconda/cmd/radioconda/commands"
	"github.com/ryanvolz/radioconda/internal/adapters/config"
	"github.com/ryanvolz/radioconda/internal/app"
	"github.com/ryanvolz/radioconda/internal/build"
	"github.com/ryanvolz/radioconda/internal/core/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type mockApp struct {
	rerender    func(ctx context.Context, opts app.RerenderOptions) error
	installer   func(ctx context.Context, opts app.InstallerOptions) error
	metapackage func(ctx context.Context, opts app.MetapackageOptions) error
}

func (m *mockApp) Rerender(ctx context.Context, opts app.RerenderOptions) error {
	if m.rerender != nil {
		return m.rerender(ctx, opts)
	}
	return nil
}

func (m *mockApp) BuildInstaller(ctx context.Context, opts app.InstallerOptions) error {
	if m.installer != nil {
		return m.installer(ctx, opts)
	}
	return nil
}

func (m *mockApp) BuildMetapackage(ctx context.Context, opts app.MetapackageOptions) error {
	if m.metapackage != nil {
		return m.metapackage(ctx, opts)
	}
	return nil
}

var testSettings = config.Settings{
	DistName:           "radioconda",
	Platform:           "linux-64",
	Source:             "https://github.com/ryanvolz/radioconda",
	Company:            "https://github.com/ryanvolz/radioconda",
	LicenseID:          "BSD-3-Clause",
	MetapackageSummary: "Metapackage for radioconda.",
}

func execute(t *testing.T, a commands.Application, args ...string) (string, error) {
	t.Helper()
	cli := commands.New(a, testSettings)
	cli.SetArgs(args)
	buf := new(bytes.Buffer)
	cli.SetOutput(buf, buf)
	err := cli.Execute(context.Background())
	return buf.String(), err
}

// chdir moves into a fresh directory for the duration of the test.
func chdir(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Chdir(dir)
	return dir
}

func TestCommands_Rerender(t *testing.T) {
	t.Run("uses defaults", func(t *testing.T) {
		chdir(t)

		var got app.RerenderOptions
		_, err := execute(t, &mockApp{rerender: func(_ context.Context, opts app.RerenderOptions) error {
			got = opts
			return nil
		}}, "rerender")
		require.NoError(t, err)

		assert.Equal(t, "radioconda.yaml", got.EnvironmentFile)
		assert.Equal(t, "radioconda_installer.yaml", got.InstallerEnvironmentFile)
		assert.Empty(t, got.BuilderEnvironmentFile)
		assert.Equal(t, time.Now().Format("2006.01.02"), got.Version)
		assert.Equal(t, testSettings.Company, got.Company)
		assert.Equal(t, "LICENSE", got.LicenseFile)
		assert.Empty(t, got.LogoPath)
		assert.Equal(t, "installer_specs", got.OutputDir)
		assert.Equal(t, filepath.Join("constructor", "nsis"), got.TemplatesDir)
		assert.False(t, got.Dirty)
		assert.False(t, got.KeepWorkDir)
	})

	t.Run("picks up default builder file and logo when present", func(t *testing.T) {
		dir := chdir(t)
		require.NoError(t, os.WriteFile(filepath.Join(dir, "buildenv.yaml"), []byte("name: buildenv\n"), 0o600))
		require.NoError(t, os.MkdirAll(filepath.Join(dir, "static"), 0o750))
		require.NoError(t, os.WriteFile(filepath.Join(dir, "static", "radioconda_logo.png"), nil, 0o600))

		var got app.RerenderOptions
		_, err := execute(t, &mockApp{rerender: func(_ context.Context, opts app.RerenderOptions) error {
			got = opts
			return nil
		}}, "rerender")
		require.NoError(t, err)

		assert.Equal(t, "buildenv.yaml", got.BuilderEnvironmentFile)
		assert.Equal(t, filepath.Join("static", "radioconda_logo.png"), got.LogoPath)
	})

	t.Run("wires flags and arguments", func(t *testing.T) {
		chdir(t)

		var got app.RerenderOptions
		_, err := execute(t, &mockApp{rerender: func(_ context.Context, opts app.RerenderOptions) error {
			got = opts
			return nil
		}},
			"rerender", "a.yaml", "b.yaml", "c.yaml",
			"-v", "2024.01.15", "--company", "ACME", "-l", "COPYING", "--logo", "logo.png",
			"-o", "out", "--dirty", "--keep-workdir", "--conda-exe", "micromamba", "--templates-dir", "tmpl",
		)
		require.NoError(t, err)

		assert.Equal(t, app.RerenderOptions{
			EnvironmentFile:          "a.yaml",
			InstallerEnvironmentFile: "b.yaml",
			BuilderEnvironmentFile:   "c.yaml",
			Version:                  "2024.01.15",
			Company:                  "ACME",
			LicenseFile:              "COPYING",
			LogoPath:                 "logo.png",
			OutputDir:                "out",
			TemplatesDir:             "tmpl",
			CondaExe:                 "micromamba",
			Dirty:                    true,
			KeepWorkDir:              true,
		}, got)
	})

	t.Run("accepts long and alias flag names", func(t *testing.T) {
		chdir(t)

		for _, args := range [][]string{
			{"rerender", "--output_dir", "out", "--license_file", "COPYING"},
			{"rerender", "--output", "out", "--license", "COPYING"},
			{"rerender", "--output-dir=out", "--license-file=COPYING"},
		} {
			var got app.RerenderOptions
			_, err := execute(t, &mockApp{rerender: func(_ context.Context, opts app.RerenderOptions) error {
				got = opts
				return nil
			}}, args...)
			require.NoError(t, err, args)
			assert.Equal(t, "out", got.OutputDir, args)
			assert.Equal(t, "COPYING", got.LicenseFile, args)
		}
	})

	t.Run("rejects extra arguments", func(t *testing.T) {
		_, err := execute(t, &mockApp{}, "rerender", "a", "b", "c", "d")
		require.Error(t, err)
	})

	t.Run("returns error on failure", func(t *testing.T) {
		chdir(t)
		_, err := execute(t, &mockApp{rerender: func(_ context.Context, _ app.RerenderOptions) error {
			return errors.New("simulated error")
		}}, "rerender")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "simulated error")
	})
}

func TestCommands_Installer(t *testing.T) {
	t.Run("uses defaults", func(t *testing.T) {
		var got app.InstallerOptions
		_, err := execute(t, &mockApp{installer: func(_ context.Context, opts app.InstallerOptions) error {
			got = opts
			return nil
		}}, "installer")
		require.NoError(t, err)

		assert.Equal(t, app.InstallerOptions{
			SpecDir:   filepath.Join("installer_specs", "radioconda-linux-64"),
			OutputDir: "dist",
		}, got)
	})

	t.Run("forwards unknown flags and args after dash", func(t *testing.T) {
		var got app.InstallerOptions
		_, err := execute(t, &mockApp{installer: func(_ context.Context, opts app.InstallerOptions) error {
			got = opts
			return nil
		}}, "installer", "specs/radioconda-win-64", "--debug", "-o", "out", "--force", "--", "--verbose")
		require.NoError(t, err)

		assert.Equal(t, app.InstallerOptions{
			SpecDir:   "specs/radioconda-win-64",
			OutputDir: "out",
			Force:     true,
			ExtraArgs: []string{"--debug", "--verbose"},
		}, got)
	})

	t.Run("keeps forwarded arguments in order", func(t *testing.T) {
		var got app.InstallerOptions
		_, err := execute(t, &mockApp{installer: func(_ context.Context, opts app.InstallerOptions) error {
			got = opts
			return nil
		}}, "installer", "specs/radioconda-win-64", "--conda-exe", "/opt/x/conda", "--debug", "--output_dir", "out")
		require.NoError(t, err)

		assert.Equal(t, "specs/radioconda-win-64", got.SpecDir)
		assert.Equal(t, "out", got.OutputDir)
		assert.Equal(t, []string{"--conda-exe", "/opt/x/conda", "--debug"}, got.ExtraArgs)
	})

	t.Run("forwards arguments before the spec dir", func(t *testing.T) {
		var got app.InstallerOptions
		_, err := execute(t, &mockApp{installer: func(_ context.Context, opts app.InstallerOptions) error {
			got = opts
			return nil
		}}, "installer", "--debug", "specs/radioconda-osx-64", "extra", "-o", "out")
		require.NoError(t, err)

		assert.Equal(t, "specs/radioconda-osx-64", got.SpecDir)
		assert.Equal(t, "out", got.OutputDir)
		assert.Equal(t, []string{"--debug", "extra"}, got.ExtraArgs)
	})

	t.Run("accepts inline flag values", func(t *testing.T) {
		var got app.InstallerOptions
		_, err := execute(t, &mockApp{installer: func(_ context.Context, opts app.InstallerOptions) error {
			got = opts
			return nil
		}}, "installer", "--output=out", "-oout2")
		require.NoError(t, err)
		assert.Equal(t, "out2", got.OutputDir)
		assert.Empty(t, got.ExtraArgs)
	})

	t.Run("shows help", func(t *testing.T) {
		out, err := execute(t, &mockApp{installer: func(_ context.Context, _ app.InstallerOptions) error {
			panic("should not be called")
		}}, "installer", "--help")
		require.NoError(t, err)
		assert.Contains(t, out, "constructor")
	})
}

func TestCommands_Metapackage(t *testing.T) {
	t.Run("uses defaults", func(t *testing.T) {
		var got app.MetapackageOptions
		_, err := execute(t, &mockApp{metapackage: func(_ context.Context, opts app.MetapackageOptions) error {
			got = opts
			return nil
		}}, "metapackage")
		require.NoError(t, err)

		assert.Equal(t, app.MetapackageOptions{
			EnvironmentFile: filepath.Join("installer_specs", "radioconda-linux-64.yml"),
			Fallback: domain.MetapackageEnvironment{
				Name:     "radioconda",
				Version:  "0",
				Platform: "linux-64",
				Channels: []string{"conda-forge"},
			},
			OutputDir: filepath.Join("dist", "conda-bld"),
			Home:      testSettings.Source,
			License:   "BSD-3-Clause",
			Summary:   "Metapackage for radioconda.",
		}, got)
	})

	t.Run("wires flags and passthrough args", func(t *testing.T) {
		var got app.MetapackageOptions
		_, err := execute(t, &mockApp{metapackage: func(_ context.Context, opts app.MetapackageOptions) error {
			got = opts
			return nil
		}}, "metapackage", "env.yml", "-o", "out", "--croot", "/tmp/bld", "--summary", "S", "--", "--no-test")
		require.NoError(t, err)

		assert.Equal(t, "env.yml", got.EnvironmentFile)
		assert.Equal(t, "out", got.OutputDir)
		assert.Equal(t, "/tmp/bld", got.CondaBuildRoot)
		assert.Equal(t, "S", got.Summary)
		assert.Equal(t, []string{"--no-test"}, got.ExtraArgs)
	})

	t.Run("accepts the long output flag", func(t *testing.T) {
		for _, flag := range []string{"--output_dir", "--output"} {
			var got app.MetapackageOptions
			_, err := execute(t, &mockApp{metapackage: func(_ context.Context, opts app.MetapackageOptions) error {
				got = opts
				return nil
			}}, "metapackage", flag, "out")
			require.NoError(t, err, flag)
			assert.Equal(t, "out", got.OutputDir, flag)
		}
	})

	t.Run("rejects extra arguments", func(t *testing.T) {
		_, err := execute(t, &mockApp{}, "metapackage", "a.yml", "b.yml")
		require.Error(t, err)
	})
}

func TestCommands_Version(t *testing.T) {
	out, err := execute(t, &mockApp{}, "version")
	require.NoError(t, err)
	assert.Contains(t, out, build.Version)
}

func TestRoot_Help(t *testing.T) {
	out, err := execute(t, &mockApp{}, "--help")
	require.NoError(t, err)
	assert.Contains(t, out, "rerender")
	assert.Contains(t, out, "installer")
	assert.Contains(t, out, "metapackage")
}
