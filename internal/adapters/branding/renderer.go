// Package branding renders installer images from the distribution logo.
package branding

import (
	"errors"
	"image"
	"image/color"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/disintegration/imaging"
	"github.com/ryanvolz/radioconda/internal/core/domain"
	"go.trai.ch/zerr"
)

// Renderer implements ports.ImageRenderer using disintegration/imaging.
type Renderer struct{}

// NewRenderer creates a new Renderer.
func NewRenderer() *Renderer {
	return &Renderer{}
}

// ResizeContain scales src down to fit inside width x height, never
// enlarging it, and centers it on a canvas of exactly that size. The canvas
// is transparent, or white with the logo flattened onto it when opaque is set.
// The result is written to dst in the format implied by its extension.
func (r *Renderer) ResizeContain(src, dst string, width, height int, opaque bool) error {
	img, err := imaging.Open(src)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return zerr.With(domain.ErrLogoNotFound, "path", src)
		}
		return zerr.With(zerr.Wrap(err, domain.ErrImageRenderFailed.Error()), "path", src)
	}

	out := contain(img, width, height, opaque)

	if err := os.MkdirAll(filepath.Dir(dst), domain.DirPerm); err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrOutputWriteFailed.Error()), "path", dst)
	}
	if err := imaging.Save(out, dst); err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrImageRenderFailed.Error()), "path", dst)
	}
	return nil
}

func contain(img image.Image, width, height int, opaque bool) *image.NRGBA {
	fit := imaging.Fit(img, width, height, imaging.Lanczos)
	b := fit.Bounds()
	// Odd remainders go to the leading edge.
	pos := image.Pt((width-b.Dx()+1)/2, (height-b.Dy()+1)/2)

	if opaque {
		canvas := imaging.New(width, height, color.NRGBA{R: 255, G: 255, B: 255, A: 255})
		return imaging.Overlay(canvas, fit, pos, 1.0)
	}
	canvas := imaging.New(width, height, color.NRGBA{R: 255, G: 255, B: 255, A: 0})
	return imaging.Paste(canvas, fit, pos)
}
