// Package wiring registers all Graft nodes for the application.
package wiring

import (
	// Register adapter nodes.
	_ "github.com/ryanvolz/radioconda/internal/adapters/branding"
	_ "github.com/ryanvolz/radioconda/internal/adapters/cas"
	_ "github.com/ryanvolz/radioconda/internal/adapters/condabuild"
	_ "github.com/ryanvolz/radioconda/internal/adapters/condalock"
	_ "github.com/ryanvolz/radioconda/internal/adapters/condapkg"
	_ "github.com/ryanvolz/radioconda/internal/adapters/config"
	_ "github.com/ryanvolz/radioconda/internal/adapters/constructor"
	_ "github.com/ryanvolz/radioconda/internal/adapters/fs"
	_ "github.com/ryanvolz/radioconda/internal/adapters/logger"
	_ "github.com/ryanvolz/radioconda/internal/adapters/patch"
	_ "github.com/ryanvolz/radioconda/internal/adapters/shell"
	_ "github.com/ryanvolz/radioconda/internal/adapters/telemetry"
	_ "github.com/ryanvolz/radioconda/internal/adapters/telemetry/progrock"
	// Register app and engine nodes.
	_ "github.com/ryanvolz/radioconda/internal/app"
	_ "github.com/ryanvolz/radioconda/internal/engine/render"
)
