// Package condapkg reads files out of conda package archives.
package condapkg

import (
	"archive/tar"
	"bytes"
	"compress/bzip2"
	"context"
	"errors"
	"io"
	"net/http"
	"net/url"
	"os"
	"path"
	"strings"
	"time"

	"github.com/klauspost/compress/zip"
	"github.com/klauspost/compress/zstd"
	"github.com/ryanvolz/radioconda/internal/core/domain"
	"go.trai.ch/zerr"
)

const (
	httpClientTimeout = 5 * time.Minute

	extConda  = ".conda"
	extTarBz2 = ".tar.bz2"

	// pkgComponentPrefix names the payload archive inside a .conda file.
	pkgComponentPrefix = "pkg-"
	tarZstSuffix       = ".tar.zst"
)

// Fetcher implements ports.PackageFetcher for local paths and http(s) URLs.
type Fetcher struct {
	httpClient *http.Client
}

// NewFetcher creates a new Fetcher.
func NewFetcher() *Fetcher {
	return NewFetcherWithClient(&http.Client{Timeout: httpClientTimeout})
}

// NewFetcherWithClient creates a Fetcher using client for remote packages.
func NewFetcherWithClient(client *http.Client) *Fetcher {
	return &Fetcher{httpClient: client}
}

// ReadMember returns the content of member from the pkg component of the
// conda package at location.
func (f *Fetcher) ReadMember(ctx context.Context, location, member string) ([]byte, error) {
	data, name, err := f.load(ctx, location)
	if err != nil {
		return nil, err
	}

	var content []byte
	switch {
	case strings.HasSuffix(name, extConda):
		content, err = readConda(data, member)
	case strings.HasSuffix(name, extTarBz2):
		content, err = readTar(bzip2.NewReader(bytes.NewReader(data)), member)
	default:
		return nil, zerr.With(domain.ErrPackageFormatUnsupported, "package", name)
	}
	if err != nil {
		return nil, zerr.With(zerr.With(err, "package", name), "member", member)
	}
	return content, nil
}

// load reads the package bytes and returns them with the package file name.
func (f *Fetcher) load(ctx context.Context, location string) ([]byte, string, error) {
	u, err := url.Parse(location)
	if err != nil || u.Scheme == "" || len(u.Scheme) == 1 {
		// Plain paths, including Windows drive letters.
		data, err := os.ReadFile(location) //nolint:gosec // location comes from a lock file
		if err != nil {
			return nil, "", zerr.With(zerr.Wrap(err, domain.ErrPackageFetchFailed.Error()), "location", location)
		}
		return data, path.Base(strings.ReplaceAll(location, "\\", "/")), nil
	}

	name := path.Base(u.Path)
	switch u.Scheme {
	case "file":
		data, err := os.ReadFile(u.Path)
		if err != nil {
			return nil, "", zerr.With(zerr.Wrap(err, domain.ErrPackageFetchFailed.Error()), "location", location)
		}
		return data, name, nil
	case "http", "https":
		data, err := f.download(ctx, location)
		if err != nil {
			return nil, "", err
		}
		return data, name, nil
	default:
		return nil, "", zerr.With(domain.ErrPackageFetchFailed, "location", location)
	}
}

func (f *Fetcher) download(ctx context.Context, location string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, location, http.NoBody)
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrPackageFetchFailed.Error()), "location", location)
	}

	resp, err := f.httpClient.Do(req)
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrPackageFetchFailed.Error()), "location", location)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		err := zerr.With(domain.ErrPackageFetchFailed, "location", location)
		return nil, zerr.With(err, "status", resp.StatusCode)
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrPackageFetchFailed.Error()), "location", location)
	}
	return data, nil
}

// readConda opens the pkg-*.tar.zst component of a .conda zip.
func readConda(data []byte, member string) ([]byte, error) {
	zr, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return nil, zerr.Wrap(err, domain.ErrPackageFormatUnsupported.Error())
	}

	for _, file := range zr.File {
		if !strings.HasPrefix(file.Name, pkgComponentPrefix) || !strings.HasSuffix(file.Name, tarZstSuffix) {
			continue
		}

		rc, err := file.Open()
		if err != nil {
			return nil, zerr.Wrap(err, domain.ErrPackageFormatUnsupported.Error())
		}
		defer func() { _ = rc.Close() }()

		dec, err := zstd.NewReader(rc)
		if err != nil {
			return nil, zerr.Wrap(err, domain.ErrPackageFormatUnsupported.Error())
		}
		defer dec.Close()

		return readTar(dec, member)
	}
	return nil, zerr.With(domain.ErrPackageMemberNotFound, "component", "pkg")
}

func readTar(r io.Reader, member string) ([]byte, error) {
	tr := tar.NewReader(r)
	for {
		hdr, err := tr.Next()
		if errors.Is(err, io.EOF) {
			return nil, domain.ErrPackageMemberNotFound
		}
		if err != nil {
			return nil, zerr.Wrap(err, domain.ErrPackageFormatUnsupported.Error())
		}
		if path.Clean(hdr.Name) != path.Clean(member) {
			continue
		}
		data, err := io.ReadAll(tr)
		if err != nil {
			return nil, zerr.Wrap(err, domain.ErrPackageFormatUnsupported.Error())
		}
		return data, nil
	}
}
