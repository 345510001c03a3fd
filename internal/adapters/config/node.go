package config

import (
	"context"

	"github.com/grindlemire/graft"
	"github.com/ryanvolz/radioconda/internal/core/ports"
)

const (
	// NodeID is the unique identifier for the environment loader Graft node.
	NodeID graft.ID = "adapter.environment_loader"

	// SettingsNodeID is the unique identifier for the settings Graft node.
	SettingsNodeID graft.ID = "adapter.settings"
)

func init() {
	graft.Register(graft.Node[ports.EnvironmentLoader]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.EnvironmentLoader, error) {
			return NewEnvironmentLoader(), nil
		},
	})

	graft.Register(graft.Node[Settings]{
		ID:        SettingsNodeID,
		Cacheable: true,
		Run: func(_ context.Context) (Settings, error) {
			return LoadSettings(), nil
		},
	})
}
