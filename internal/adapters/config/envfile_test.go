package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/ryanvolz/radioconda/internal/adapters/config"
	"github.com/ryanvolz/radioconda/internal/core/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoadEnvironmentFile_Success(t *testing.T) {
	path := writeFile(t, "radioconda.yaml", `
name: radioconda
channels:
  - conda-forge
  - ryanvolz
platforms:
  - linux-64
  - osx-arm64
  - win-64
dependencies:
  - gnuradio =3.10
  - conda-forge::numpy
  - pip:
      - somewheel
`)

	env, err := config.NewEnvironmentLoader().Load(path)
	require.NoError(t, err)

	assert.Equal(t, path, env.Path)
	assert.Equal(t, "radioconda", env.Name)
	assert.Equal(t, []string{"conda-forge", "ryanvolz"}, env.Channels)
	assert.Equal(t, []domain.Platform{"linux-64", "osx-arm64", "win-64"}, env.Platforms)
	assert.Equal(t, []string{"gnuradio =3.10", "conda-forge::numpy"}, env.Dependencies)
	assert.Equal(t, []string{"gnuradio", "numpy"}, env.PackageNames())
	require.NoError(t, config.RequirePlatforms(env))
}

func TestLoadEnvironmentFile_RenderedMetapackage(t *testing.T) {
	path := writeFile(t, "radioconda-win-64.yml", `
channels:
- conda-forge
dependencies:
- numpy=1.24.0=0
name: radioconda
platform: win-64
variables:
  GR_PREFIX: ''
version: 2024.01.15
`)

	env, err := config.LoadEnvironmentFile(path)
	require.NoError(t, err)

	assert.Equal(t, "2024.01.15", env.Version)
	assert.Equal(t, []domain.Platform{"win-64"}, env.Platforms)
	assert.Equal(t, map[string]string{"GR_PREFIX": ""}, env.Variables)
}

func TestLoadEnvironmentFile_NoPlatforms(t *testing.T) {
	path := writeFile(t, "radioconda_installer.yaml", `
name: radioconda_installer
channels: [conda-forge]
dependencies: [mamba]
`)

	env, err := config.LoadEnvironmentFile(path)
	require.NoError(t, err)
	assert.Empty(t, env.Platforms)

	err = config.RequirePlatforms(env)
	require.Error(t, err)
	assert.ErrorContains(t, err, domain.ErrEnvFileInvalid.Error())
}

func TestLoadEnvironmentFile_Errors(t *testing.T) {
	tests := []struct {
		name    string
		content string
		wantErr string
	}{
		{
			name:    "missing name",
			content: "dependencies: [numpy]\n",
			wantErr: domain.ErrEnvFileInvalid.Error(),
		},
		{
			name:    "missing dependencies",
			content: "name: demo\n",
			wantErr: domain.ErrEnvFileInvalid.Error(),
		},
		{
			name:    "unknown platform",
			content: "name: demo\nplatforms: [freebsd-64]\ndependencies: [numpy]\n",
			wantErr: domain.ErrUnknownPlatform.Error(),
		},
		{
			name:    "malformed yaml",
			content: "name: [demo\n",
			wantErr: domain.ErrEnvFileParseFailed.Error(),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeFile(t, "env.yaml", tt.content)

			_, err := config.LoadEnvironmentFile(path)

			require.Error(t, err)
			assert.ErrorContains(t, err, tt.wantErr)
		})
	}
}

func TestLoadEnvironmentFile_Missing(t *testing.T) {
	_, err := config.LoadEnvironmentFile(filepath.Join(t.TempDir(), "nope.yaml"))

	require.Error(t, err)
	assert.ErrorContains(t, err, domain.ErrEnvFileReadFailed.Error())
}
