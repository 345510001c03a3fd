package ports

// ImageRenderer produces installer branding images.
//
//go:generate go run go.uber.org/mock/mockgen -source=image.go -destination=mocks/mock_image.go -package=mocks
type ImageRenderer interface {
	// ResizeContain scales src down to fit inside width x height, centers it on a
	// canvas of exactly that size and writes a PNG to dst. When opaque is set the
	// canvas is white and transparency is flattened onto it.
	ResizeContain(src, dst string, width, height int, opaque bool) error
}
