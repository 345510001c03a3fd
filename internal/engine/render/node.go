package render

import (
	"context"

	"github.com/grindlemire/graft"
	"github.com/ryanvolz/radioconda/internal/adapters/branding"           //nolint:depguard // Wired in engine wiring
	"github.com/ryanvolz/radioconda/internal/adapters/condalock"          //nolint:depguard // Wired in engine wiring
	"github.com/ryanvolz/radioconda/internal/adapters/condapkg"           //nolint:depguard // Wired in engine wiring
	"github.com/ryanvolz/radioconda/internal/adapters/logger"             //nolint:depguard // Wired in engine wiring
	"github.com/ryanvolz/radioconda/internal/adapters/patch"              //nolint:depguard // Wired in engine wiring
	"github.com/ryanvolz/radioconda/internal/adapters/telemetry/progrock" //nolint:depguard // Wired in engine wiring
	"github.com/ryanvolz/radioconda/internal/core/ports"
)

// NodeID is the unique identifier for the renderer Graft node.
const NodeID graft.ID = "engine.render"

func init() {
	graft.Register(graft.Node[*Renderer]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			condalock.NodeID,
			branding.NodeID,
			condapkg.NodeID,
			patch.NodeID,
			progrock.NodeID,
			logger.NodeID,
		},
		Run: func(ctx context.Context) (*Renderer, error) {
			resolver, err := graft.Dep[ports.Resolver](ctx)
			if err != nil {
				return nil, err
			}

			images, err := graft.Dep[ports.ImageRenderer](ctx)
			if err != nil {
				return nil, err
			}

			fetcher, err := graft.Dep[ports.PackageFetcher](ctx)
			if err != nil {
				return nil, err
			}

			patcher, err := graft.Dep[ports.Patcher](ctx)
			if err != nil {
				return nil, err
			}

			telemetry, err := graft.Dep[ports.Telemetry](ctx)
			if err != nil {
				return nil, err
			}

			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}

			return NewRenderer(
				resolver,
				NewMaterializer(images),
				NewTemplatePatcher(fetcher, patcher, log),
				telemetry,
				log,
			), nil
		},
	})
}
