package branding_test

import (
	"image/color"
	"os"
	"path/filepath"
	"testing"

	"github.com/disintegration/imaging"
	"github.com/ryanvolz/radioconda/internal/adapters/branding"
	"github.com/ryanvolz/radioconda/internal/core/domain"
	"github.com/ryanvolz/radioconda/internal/core/ports"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var _ ports.ImageRenderer = (*branding.Renderer)(nil)

var logoRed = color.NRGBA{R: 200, G: 10, B: 10, A: 255}

func writeLogo(t *testing.T, width, height int) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "radioconda_logo.png")
	require.NoError(t, imaging.Save(imaging.New(width, height, logoRed), path))
	return path
}

func TestResizeContain_OpaqueWelcome(t *testing.T) {
	src := writeLogo(t, 400, 200)
	dst := filepath.Join(t.TempDir(), domain.WelcomeImageName)

	require.NoError(t, branding.NewRenderer().ResizeContain(src, dst, 164, 314, true))

	img, err := imaging.Open(dst)
	require.NoError(t, err)
	assert.Equal(t, 164, img.Bounds().Dx())
	assert.Equal(t, 314, img.Bounds().Dy())

	assert.Equal(t, color.NRGBA{R: 255, G: 255, B: 255, A: 255}, color.NRGBAModel.Convert(img.At(0, 0)))
	assert.Equal(t, logoRed, color.NRGBAModel.Convert(img.At(82, 157)))
}

func TestResizeContain_TransparentIcon(t *testing.T) {
	src := writeLogo(t, 512, 128)
	dst := filepath.Join(t.TempDir(), "nested", domain.IconImageName)

	require.NoError(t, branding.NewRenderer().ResizeContain(src, dst, 256, 256, false))

	img, err := imaging.Open(dst)
	require.NoError(t, err)
	assert.Equal(t, 256, img.Bounds().Dx())
	assert.Equal(t, 256, img.Bounds().Dy())

	_, _, _, a := img.At(0, 0).RGBA()
	assert.Zero(t, a)
	assert.Equal(t, logoRed, color.NRGBAModel.Convert(img.At(128, 128)))
}

func TestResizeContain_NeverEnlarges(t *testing.T) {
	src := writeLogo(t, 10, 10)
	dst := filepath.Join(t.TempDir(), domain.HeaderImageName)

	require.NoError(t, branding.NewRenderer().ResizeContain(src, dst, 150, 57, true))

	img, err := imaging.Open(dst)
	require.NoError(t, err)

	// The 10x10 logo sits at the center; pixels outside it stay white.
	assert.Equal(t, logoRed, color.NRGBAModel.Convert(img.At(75, 28)))
	assert.Equal(t, color.NRGBA{R: 255, G: 255, B: 255, A: 255}, color.NRGBAModel.Convert(img.At(60, 28)))
}

func TestResizeContain_MissingLogo(t *testing.T) {
	err := branding.NewRenderer().ResizeContain(
		filepath.Join(t.TempDir(), "missing.png"), filepath.Join(t.TempDir(), "out.png"), 10, 10, false)

	require.Error(t, err)
	assert.ErrorContains(t, err, domain.ErrLogoNotFound.Error())
}

func TestResizeContain_NotAnImage(t *testing.T) {
	src := filepath.Join(t.TempDir(), "logo.png")
	require.NoError(t, os.WriteFile(src, []byte("not a png"), 0o600))

	err := branding.NewRenderer().ResizeContain(src, filepath.Join(t.TempDir(), "out.png"), 10, 10, false)

	require.Error(t, err)
	assert.ErrorContains(t, err, domain.ErrImageRenderFailed.Error())
}
