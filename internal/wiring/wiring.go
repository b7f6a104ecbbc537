// Package wiring registers all Graft nodes for the application.
package wiring

import (
	// Register adapter nodes.
	_ "github.com/cargotags/cargotags/internal/adapters/cargo"
	_ "github.com/cargotags/cargotags/internal/adapters/config"
	_ "github.com/cargotags/cargotags/internal/adapters/ctags"
	_ "github.com/cargotags/cargotags/internal/adapters/fs"
	_ "github.com/cargotags/cargotags/internal/adapters/logger"
	_ "github.com/cargotags/cargotags/internal/adapters/state"
	// Register app and engine nodes.
	_ "github.com/cargotags/cargotags/internal/app"
	_ "github.com/cargotags/cargotags/internal/engine/scheduler"
)
