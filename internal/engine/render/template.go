package render

import (
	"context"
	"os"
	"path/filepath"

	"github.com/ryanvolz/radioconda/internal/core/domain"
	"github.com/ryanvolz/radioconda/internal/core/ports"
	"go.trai.ch/zerr"
)

// TemplatePatcher carries local NSIS template customizations over to the
// template shipped with the locked constructor package.
type TemplatePatcher struct {
	fetcher ports.PackageFetcher
	patcher ports.Patcher
	logger  ports.Logger
}

// NewTemplatePatcher creates a new TemplatePatcher.
func NewTemplatePatcher(fetcher ports.PackageFetcher, patcher ports.Patcher, logger ports.Logger) *TemplatePatcher {
	return &TemplatePatcher{fetcher: fetcher, patcher: patcher, logger: logger}
}

// Patch diffs the recorded upstream template in templatesDir against the one
// in pkg, applies the difference to the customized template, and writes the
// result into installerDir. On success the local copies are advanced so the
// next run diffs from the new upstream.
func (t *TemplatePatcher) Patch(ctx context.Context, pkg domain.LockedPackage, templatesDir, installerDir string) error {
	upstream, err := t.fetcher.ReadMember(ctx, pkg.URL, domain.NSISTemplateMember)
	if err != nil {
		return err
	}

	origPath := filepath.Join(templatesDir, domain.NSISTemplateName+domain.NSISTemplateOrigSuffix)
	customPath := filepath.Join(templatesDir, domain.NSISTemplateName)

	orig, err := readTemplate(origPath)
	if err != nil {
		return err
	}
	custom, err := readTemplate(customPath)
	if err != nil {
		return err
	}

	patch, err := t.patcher.Diff(orig, string(upstream))
	if err != nil {
		return err
	}
	patched, err := t.patcher.Apply(patch, custom)
	if err != nil {
		return zerr.With(err, "template", customPath)
	}

	if err := writeFile(filepath.Join(installerDir, domain.NSISTemplateName), []byte(patched), domain.FilePerm); err != nil {
		return err
	}
	if err := writeFile(origPath, upstream, domain.FilePerm); err != nil {
		return err
	}
	if err := writeFile(customPath, []byte(patched), domain.FilePerm); err != nil {
		return err
	}

	t.logger.Info("patched NSIS template for constructor " + pkg.Version)
	return nil
}

func readTemplate(path string) (string, error) {
	data, err := os.ReadFile(path) //nolint:gosec // Path is under the configured templates dir
	if err != nil {
		return "", zerr.With(zerr.Wrap(err, domain.ErrTemplateNotFound.Error()), "path", path)
	}
	return string(data), nil
}
