package condapkg

import (
	"context"

	"github.com/grindlemire/graft"
	"github.com/ryanvolz/radioconda/internal/core/ports"
)

// NodeID is the unique identifier for the package fetcher Graft node.
const NodeID graft.ID = "adapter.package_fetcher"

func init() {
	graft.Register(graft.Node[ports.PackageFetcher]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.PackageFetcher, error) {
			return NewFetcher(), nil
		},
	})
}
