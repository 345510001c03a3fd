package app

import (
	"context"

	"github.com/grindlemire/graft"
	"github.com/ryanvolz/radioconda/internal/adapters/cas"                //nolint:depguard // Wired in app layer
	"github.com/ryanvolz/radioconda/internal/adapters/condabuild"         //nolint:depguard // Wired in app layer
	"github.com/ryanvolz/radioconda/internal/adapters/config"             //nolint:depguard // Wired in app layer
	"github.com/ryanvolz/radioconda/internal/adapters/constructor"        //nolint:depguard // Wired in app layer
	"github.com/ryanvolz/radioconda/internal/adapters/fs"                 //nolint:depguard // Wired in app layer
	"github.com/ryanvolz/radioconda/internal/adapters/logger"             //nolint:depguard // Wired in app layer
	"github.com/ryanvolz/radioconda/internal/adapters/telemetry/progrock" //nolint:depguard // Wired in app layer
	"github.com/ryanvolz/radioconda/internal/core/ports"
	"github.com/ryanvolz/radioconda/internal/engine/render"
)

const (
	// AppNodeID is the unique identifier for the main App Graft node.
	AppNodeID graft.ID = "app.main"
	// ComponentsNodeID is the unique identifier for the App components Graft node.
	ComponentsNodeID graft.ID = "app.components"
)

func init() {
	graft.Register(graft.Node[*App]{
		ID:        AppNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			config.NodeID,
			render.NodeID,
			constructor.NodeID,
			condabuild.NodeID,
			cas.NodeID,
			fs.HasherNodeID,
			progrock.NodeID,
			logger.NodeID,
		},
		Run: runAppNode,
	})

	graft.Register(graft.Node[*Components]{
		ID:        ComponentsNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			AppNodeID,
			logger.NodeID,
			config.SettingsNodeID,
			progrock.NodeID,
		},
		Run: runComponentsNode,
	})
}

func runAppNode(ctx context.Context) (*App, error) {
	loader, err := graft.Dep[ports.EnvironmentLoader](ctx)
	if err != nil {
		return nil, err
	}

	renderer, err := graft.Dep[*render.Renderer](ctx)
	if err != nil {
		return nil, err
	}

	installer, err := graft.Dep[ports.InstallerBuilder](ctx)
	if err != nil {
		return nil, err
	}

	metapackage, err := graft.Dep[ports.MetapackageBuilder](ctx)
	if err != nil {
		return nil, err
	}

	store, err := graft.Dep[ports.BuildInfoStore](ctx)
	if err != nil {
		return nil, err
	}

	hasher, err := graft.Dep[ports.Hasher](ctx)
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

	return New(loader, renderer, installer, metapackage, store, hasher, telemetry, log), nil
}

func runComponentsNode(ctx context.Context) (*Components, error) {
	app, err := graft.Dep[*App](ctx)
	if err != nil {
		return nil, err
	}

	log, err := graft.Dep[ports.Logger](ctx)
	if err != nil {
		return nil, err
	}

	settings, err := graft.Dep[config.Settings](ctx)
	if err != nil {
		return nil, err
	}

	telemetry, err := graft.Dep[ports.Telemetry](ctx)
	if err != nil {
		return nil, err
	}

	return NewComponents(app, log, settings, telemetry), nil
}
