package app

import (
	"github.com/ryanvolz/radioconda/internal/adapters/config" //nolint:depguard // Wired in app layer
	"github.com/ryanvolz/radioconda/internal/core/ports"
)

// Components contains all the initialized application components.
// This struct provides controlled access to components needed by the CLI layer.
type Components struct {
	App       *App
	Logger    ports.Logger
	Settings  config.Settings
	telemetry ports.Telemetry
}

// NewComponents creates a new Components struct from dependencies.
func NewComponents(app *App, logger ports.Logger, settings config.Settings, telemetry ports.Telemetry) *Components {
	return &Components{
		App:       app,
		Logger:    logger,
		Settings:  settings,
		telemetry: telemetry,
	}
}

// Close flushes the progress recording.
func (c *Components) Close() error {
	if c.telemetry == nil {
		return nil
	}
	return c.telemetry.Close()
}
