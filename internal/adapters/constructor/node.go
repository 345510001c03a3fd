package constructor

import (
	"context"

	"github.com/grindlemire/graft"
	"github.com/ryanvolz/radioconda/internal/adapters/logger"
	"github.com/ryanvolz/radioconda/internal/adapters/shell"
	"github.com/ryanvolz/radioconda/internal/core/ports"
)

// NodeID is the unique identifier for the installer builder Graft node.
const NodeID graft.ID = "adapter.installer_builder"

func init() {
	graft.Register(graft.Node[ports.InstallerBuilder]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{shell.NodeID, logger.NodeID},
		Run: func(ctx context.Context) (ports.InstallerBuilder, error) {
			runner, err := graft.Dep[ports.CommandRunner](ctx)
			if err != nil {
				return nil, err
			}
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			return NewBuilder(runner, log), nil
		},
	})
}
