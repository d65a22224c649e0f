// Package wiring registers all Graft nodes for the application.
package wiring

import (
	// Register adapter nodes.
	_ "go.trai.ch/cargo-open/internal/adapters/cargohome"
	_ "go.trai.ch/cargo-open/internal/adapters/detector"
	_ "go.trai.ch/cargo-open/internal/adapters/editor"
	_ "go.trai.ch/cargo-open/internal/adapters/env"
	_ "go.trai.ch/cargo-open/internal/adapters/fs"
	_ "go.trai.ch/cargo-open/internal/adapters/lockfile"
	_ "go.trai.ch/cargo-open/internal/adapters/logger"
	// Register app nodes.
	_ "go.trai.ch/cargo-open/internal/app"
)
