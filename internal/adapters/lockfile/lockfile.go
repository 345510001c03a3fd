// Package lockfile renders and reads the line-oriented pinned lock files.
//
// A lock file is a header of "# key: value" comment lines followed by one
// pinned "name=version=build" spec per line:
//
//	# name: radioconda
//	# version: 2024.01.15
//	# platform: linux-64
//	# channels: conda-forge, ryanvolz
//	# dependencies: numpy, scipy
//	#
//	numpy=1.24.0=py311h1234567_0
//	scipy=1.10.0=py311h7654321_0
//
// Blank lines are written as a lone "#".
package lockfile

import (
	"bufio"
	"bytes"
	"io"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/ryanvolz/radioconda/internal/core/domain"
	"go.trai.ch/zerr"
)

const (
	keyName         = "name"
	keyVersion      = "version"
	keyPlatform     = "platform"
	keyChannels     = "channels"
	keyDependencies = "dependencies"

	listSep = ", "
)

// Render returns the lock file content for env. Pinned specs are sorted.
func Render(env *domain.ResolvedEnvironment, meta domain.LockMetadata) []byte {
	var buf bytes.Buffer

	header := []struct{ key, value string }{
		{keyName, meta.Name},
		{keyVersion, meta.Version},
		{keyPlatform, meta.Platform.String()},
		{keyChannels, strings.Join(meta.Channels, listSep)},
		{keyDependencies, strings.Join(meta.Dependencies, listSep)},
	}
	for _, h := range header {
		buf.WriteString(commentLine(h.key + ": " + h.value))
	}
	buf.WriteString(commentLine(""))

	for _, spec := range env.Specs() {
		buf.WriteString(spec)
		buf.WriteByte('\n')
	}
	return buf.Bytes()
}

// Write writes the lock file content for env to w.
func Write(w io.Writer, env *domain.ResolvedEnvironment, meta domain.LockMetadata) error {
	if _, err := w.Write(Render(env, meta)); err != nil {
		return zerr.Wrap(err, domain.ErrOutputWriteFailed.Error())
	}
	return nil
}

// WriteFile writes the lock file to path, creating parent directories.
func WriteFile(path string, env *domain.ResolvedEnvironment, meta domain.LockMetadata) error {
	if err := os.MkdirAll(filepath.Dir(path), domain.DirPerm); err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrOutputWriteFailed.Error()), "path", path)
	}
	if err := os.WriteFile(path, Render(env, meta), domain.FilePerm); err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrOutputWriteFailed.Error()), "path", path)
	}
	return nil
}

// commentLine turns a line into a comment, writing blank lines as a lone "#".
func commentLine(s string) string {
	if strings.TrimSpace(s) == "" {
		return "#\n"
	}
	return "# " + s + "\n"
}

// Read parses a lock file.
func Read(r io.Reader) (*domain.LockFile, error) {
	lf := &domain.LockFile{Specs: []string{}}

	scanner := bufio.NewScanner(r)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())

		switch {
		case line == "" || line == "#":
			continue
		case strings.HasPrefix(line, "#"):
			key, value, ok := strings.Cut(strings.TrimSpace(strings.TrimPrefix(line, "#")), ":")
			if !ok {
				continue
			}
			applyHeader(&lf.Metadata, strings.TrimSpace(key), strings.TrimSpace(value))
		default:
			if strings.ContainsAny(line, " \t") {
				return nil, zerr.With(domain.ErrLockFileMalformed, "line", lineNo)
			}
			lf.Specs = append(lf.Specs, line)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, zerr.Wrap(err, domain.ErrLockParseFailed.Error())
	}

	slices.Sort(lf.Specs)
	return lf, nil
}

// ReadFile parses the lock file at path.
func ReadFile(path string) (*domain.LockFile, error) {
	f, err := os.Open(path) //nolint:gosec // path is provided by user
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrLockParseFailed.Error()), "path", path)
	}
	defer func() { _ = f.Close() }()

	lf, err := Read(f)
	if err != nil {
		return nil, zerr.With(err, "path", path)
	}
	return lf, nil
}

func applyHeader(meta *domain.LockMetadata, key, value string) {
	switch key {
	case keyName:
		meta.Name = value
	case keyVersion:
		meta.Version = value
	case keyPlatform:
		meta.Platform = domain.Platform(value)
	case keyChannels:
		meta.Channels = splitList(value)
	case keyDependencies:
		meta.Dependencies = splitList(value)
	}
}

func splitList(value string) []string {
	out := []string{}
	for item := range strings.SplitSeq(value, ",") {
		if item = strings.TrimSpace(item); item != "" {
			out = append(out, item)
		}
	}
	return out
}
