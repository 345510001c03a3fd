package branding

import (
	"context"

	"github.com/grindlemire/graft"
	"github.com/ryanvolz/radioconda/internal/core/ports"
)

// NodeID is the unique identifier for the image renderer Graft node.
const NodeID graft.ID = "adapter.image_renderer"

func init() {
	graft.Register(graft.Node[ports.ImageRenderer]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.ImageRenderer, error) {
			return NewRenderer(), nil
		},
	})
}
