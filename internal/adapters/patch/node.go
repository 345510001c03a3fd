package patch

import (
	"context"

	"github.com/grindlemire/graft"
	"github.com/ryanvolz/radioconda/internal/core/ports"
)

// NodeID is the unique identifier for the patcher Graft node.
const NodeID graft.ID = "adapter.patcher"

func init() {
	graft.Register(graft.Node[ports.Patcher]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.Patcher, error) {
			return New(), nil
		},
	})
}
