package condapkg_test

import (
	"archive/tar"
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/klauspost/compress/zip"
	"github.com/klauspost/compress/zstd"
	"github.com/ryanvolz/radioconda/internal/adapters/condapkg"
	"github.com/ryanvolz/radioconda/internal/core/domain"
	"github.com/ryanvolz/radioconda/internal/core/ports"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var _ ports.PackageFetcher = (*condapkg.Fetcher)(nil)

const template = "!define UPSTREAM 1\n"

func tarball(t *testing.T, files map[string]string) []byte {
	t.Helper()
	var buf bytes.Buffer
	tw := tar.NewWriter(&buf)
	for name, content := range files {
		require.NoError(t, tw.WriteHeader(&tar.Header{Name: name, Mode: 0o644, Size: int64(len(content))}))
		_, err := tw.Write([]byte(content))
		require.NoError(t, err)
	}
	require.NoError(t, tw.Close())
	return buf.Bytes()
}

func zstdCompress(t *testing.T, data []byte) []byte {
	t.Helper()
	var buf bytes.Buffer
	enc, err := zstd.NewWriter(&buf)
	require.NoError(t, err)
	_, err = enc.Write(data)
	require.NoError(t, err)
	require.NoError(t, enc.Close())
	return buf.Bytes()
}

// condaPackage builds a minimal .conda archive.
func condaPackage(t *testing.T) []byte {
	t.Helper()
	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)

	components := map[string][]byte{
		"metadata.json": []byte(`{"conda_pkg_format_version": 2}`),
		"info-constructor-3.4.0-pyh_0.tar.zst": zstdCompress(t, tarball(t, map[string]string{
			"info/index.json": `{"name": "constructor"}`,
		})),
		"pkg-constructor-3.4.0-pyh_0.tar.zst": zstdCompress(t, tarball(t, map[string]string{
			domain.NSISTemplateMember:           template,
			"site-packages/constructor/main.py": "print()\n",
		})),
	}
	for name, data := range components {
		w, err := zw.CreateHeader(&zip.FileHeader{Name: name, Method: zip.Store})
		require.NoError(t, err)
		_, err = w.Write(data)
		require.NoError(t, err)
	}
	require.NoError(t, zw.Close())
	return buf.Bytes()
}

func TestFetcher_ReadMember_LocalConda(t *testing.T) {
	path := filepath.Join(t.TempDir(), "constructor-3.4.0-pyh_0.conda")
	require.NoError(t, os.WriteFile(path, condaPackage(t), 0o600))

	got, err := condapkg.NewFetcher().ReadMember(context.Background(), path, domain.NSISTemplateMember)

	require.NoError(t, err)
	assert.Equal(t, template, string(got))
}

func TestFetcher_ReadMember_FileURL(t *testing.T) {
	path := filepath.Join(t.TempDir(), "constructor-3.4.0-pyh_0.conda")
	require.NoError(t, os.WriteFile(path, condaPackage(t), 0o600))

	got, err := condapkg.NewFetcher().ReadMember(context.Background(), "file://"+path, domain.NSISTemplateMember)

	require.NoError(t, err)
	assert.Equal(t, template, string(got))
}

func TestFetcher_ReadMember_TarBz2(t *testing.T) {
	path := filepath.Join("testdata", "constructor-3.4.0-pyh_0.tar.bz2")

	got, err := condapkg.NewFetcher().ReadMember(context.Background(), path, domain.NSISTemplateMember)

	require.NoError(t, err)
	assert.Equal(t, template, string(got))
}

func TestFetcher_ReadMember_HTTP(t *testing.T) {
	pkg := condaPackage(t)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/conda-forge/noarch/constructor-3.4.0-pyh_0.conda" {
			http.NotFound(w, r)
			return
		}
		_, _ = w.Write(pkg)
	}))
	t.Cleanup(srv.Close)

	fetcher := condapkg.NewFetcherWithClient(srv.Client())

	got, err := fetcher.ReadMember(context.Background(),
		srv.URL+"/conda-forge/noarch/constructor-3.4.0-pyh_0.conda", domain.NSISTemplateMember)
	require.NoError(t, err)
	assert.Equal(t, template, string(got))

	_, err = fetcher.ReadMember(context.Background(),
		srv.URL+"/conda-forge/noarch/missing-1.0-0.conda", domain.NSISTemplateMember)
	require.Error(t, err)
	assert.ErrorContains(t, err, domain.ErrPackageFetchFailed.Error())
}

func TestFetcher_ReadMember_MissingMember(t *testing.T) {
	path := filepath.Join(t.TempDir(), "constructor-3.4.0-pyh_0.conda")
	require.NoError(t, os.WriteFile(path, condaPackage(t), 0o600))

	_, err := condapkg.NewFetcher().ReadMember(context.Background(), path, "site-packages/nope.txt")

	require.Error(t, err)
	assert.ErrorContains(t, err, domain.ErrPackageMemberNotFound.Error())
}

func TestFetcher_ReadMember_UnsupportedFormat(t *testing.T) {
	path := filepath.Join(t.TempDir(), "constructor-3.4.0-pyh_0.whl")
	require.NoError(t, os.WriteFile(path, []byte("zip"), 0o600))

	_, err := condapkg.NewFetcher().ReadMember(context.Background(), path, domain.NSISTemplateMember)

	require.Error(t, err)
	assert.ErrorContains(t, err, domain.ErrPackageFormatUnsupported.Error())
}

func TestFetcher_ReadMember_MissingFile(t *testing.T) {
	_, err := condapkg.NewFetcher().ReadMember(context.Background(),
		filepath.Join(t.TempDir(), "absent.conda"), domain.NSISTemplateMember)

	require.Error(t, err)
	assert.ErrorContains(t, err, domain.ErrPackageFetchFailed.Error())
}
