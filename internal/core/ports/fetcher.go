package ports

import "context"

// PackageFetcher reads files out of conda package archives.
//
//go:generate go run go.uber.org/mock/mockgen -source=fetcher.go -destination=mocks/mock_fetcher.go -package=mocks
type PackageFetcher interface {
	// ReadMember returns the content of member from the package payload at location,
	// which is either an http(s) URL or a local path.
	ReadMember(ctx context.Context, location, member string) ([]byte, error)
}
