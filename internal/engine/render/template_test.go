package render_test

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/ryanvolz/radioconda/internal/adapters/patch"
	"github.com/ryanvolz/radioconda/internal/core/domain"
	"github.com/ryanvolz/radioconda/internal/core/ports/mocks"
	"github.com/ryanvolz/radioconda/internal/engine/render"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

const (
	origTemplate     = "!define A 1\n!define B 2\n!define C 3\n!define D 4\n!define E 5\n!define F 6\n"
	upstreamTemplate = "!define A 1\n!define B 2\n!define C 3\n!define D 4\n!define E 5\n!define F 7\n"
	customTemplate   = "!define A 1\n!define RADIOCONDA 1\n!define B 2\n!define C 3\n!define D 4\n!define E 5\n!define F 6\n"
	patchedTemplate  = "!define A 1\n!define RADIOCONDA 1\n!define B 2\n!define C 3\n!define D 4\n!define E 5\n!define F 7\n"
)

var constructorPkg = domain.LockedPackage{
	Name:     "constructor",
	Version:  "3.4.0",
	Build:    "pyh_0",
	Platform: "win-64",
	URL:      "https://conda.anaconda.org/conda-forge/noarch/constructor-3.4.0-pyh_0.conda",
}

func writeTemplates(t *testing.T, orig, custom string) string {
	t.Helper()
	dir := filepath.Join(t.TempDir(), "constructor", "nsis")
	require.NoError(t, os.MkdirAll(dir, 0o750))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "main.nsi.tmpl.orig"), []byte(orig), 0o600))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "main.nsi.tmpl"), []byte(custom), 0o600))
	return dir
}

func TestTemplatePatcher_Patch(t *testing.T) {
	ctrl := gomock.NewController(t)
	fetcher := mocks.NewMockPackageFetcher(ctrl)
	log := mocks.NewMockLogger(ctrl)

	templates := writeTemplates(t, origTemplate, customTemplate)
	installerDir := t.TempDir()

	fetcher.EXPECT().ReadMember(gomock.Any(), constructorPkg.URL, domain.NSISTemplateMember).
		Return([]byte(upstreamTemplate), nil)
	log.EXPECT().Info("patched NSIS template for constructor 3.4.0")

	tp := render.NewTemplatePatcher(fetcher, patch.New(), log)
	require.NoError(t, tp.Patch(context.Background(), constructorPkg, templates, installerDir))

	got, err := os.ReadFile(filepath.Join(installerDir, "main.nsi.tmpl"))
	require.NoError(t, err)
	assert.Equal(t, patchedTemplate, string(got))

	orig, err := os.ReadFile(filepath.Join(templates, "main.nsi.tmpl.orig"))
	require.NoError(t, err)
	assert.Equal(t, upstreamTemplate, string(orig))

	custom, err := os.ReadFile(filepath.Join(templates, "main.nsi.tmpl"))
	require.NoError(t, err)
	assert.Equal(t, patchedTemplate, string(custom))
}

func TestTemplatePatcher_Conflict(t *testing.T) {
	ctrl := gomock.NewController(t)
	fetcher := mocks.NewMockPackageFetcher(ctrl)
	log := mocks.NewMockLogger(ctrl)

	custom := strings.Repeat("zzzzzzzzzzzzzzzz\n", 10)
	templates := writeTemplates(t, origTemplate, custom)
	installerDir := t.TempDir()

	fetcher.EXPECT().ReadMember(gomock.Any(), gomock.Any(), gomock.Any()).Return([]byte(upstreamTemplate), nil)

	tp := render.NewTemplatePatcher(fetcher, patch.New(), log)
	err := tp.Patch(context.Background(), constructorPkg, templates, installerDir)
	require.Error(t, err)
	assert.ErrorContains(t, err, domain.ErrTemplatePatchConflict.Error())

	assert.NoFileExists(t, filepath.Join(installerDir, "main.nsi.tmpl"))
	orig, err := os.ReadFile(filepath.Join(templates, "main.nsi.tmpl.orig"))
	require.NoError(t, err)
	assert.Equal(t, origTemplate, string(orig), "local templates must be left alone on conflict")
}

func TestTemplatePatcher_MissingLocalTemplate(t *testing.T) {
	ctrl := gomock.NewController(t)
	fetcher := mocks.NewMockPackageFetcher(ctrl)
	patcher := mocks.NewMockPatcher(ctrl)
	log := mocks.NewMockLogger(ctrl)

	fetcher.EXPECT().ReadMember(gomock.Any(), gomock.Any(), gomock.Any()).Return([]byte(upstreamTemplate), nil)

	tp := render.NewTemplatePatcher(fetcher, patcher, log)
	err := tp.Patch(context.Background(), constructorPkg, t.TempDir(), t.TempDir())
	require.Error(t, err)
	assert.ErrorContains(t, err, domain.ErrTemplateNotFound.Error())
}

func TestTemplatePatcher_FetchFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	fetcher := mocks.NewMockPackageFetcher(ctrl)
	patcher := mocks.NewMockPatcher(ctrl)
	log := mocks.NewMockLogger(ctrl)

	fetcher.EXPECT().ReadMember(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, domain.ErrPackageMemberNotFound)

	tp := render.NewTemplatePatcher(fetcher, patcher, log)
	err := tp.Patch(context.Background(), constructorPkg, t.TempDir(), t.TempDir())
	require.ErrorIs(t, err, domain.ErrPackageMemberNotFound)
}
