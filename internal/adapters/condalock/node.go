package condalock

import (
	"context"

	"github.com/grindlemire/graft"
	"github.com/ryanvolz/radioconda/internal/adapters/logger"
	"github.com/ryanvolz/radioconda/internal/adapters/shell"
	"github.com/ryanvolz/radioconda/internal/core/ports"
)

// NodeID is the unique identifier for the resolver Graft node.
const NodeID graft.ID = "adapter.resolver"

func init() {
	graft.Register(graft.Node[ports.Resolver]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{shell.NodeID, logger.NodeID},
		Run: func(ctx context.Context) (ports.Resolver, error) {
			runner, err := graft.Dep[ports.CommandRunner](ctx)
			if err != nil {
				return nil, err
			}
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			return NewResolver(runner, log), nil
		},
	})
}
