// Package wiring registers all Graft nodes for the application.
package wiring

import (
	// Register adapter nodes.
	_ "go.trai.ch/reel/internal/adapters/cache"
	_ "go.trai.ch/reel/internal/adapters/components"
	_ "go.trai.ch/reel/internal/adapters/config"
	_ "go.trai.ch/reel/internal/adapters/easing"
	_ "go.trai.ch/reel/internal/adapters/logger"
	_ "go.trai.ch/reel/internal/adapters/telemetry"
	// Register app and engine nodes.
	_ "go.trai.ch/reel/internal/app"
	_ "go.trai.ch/reel/internal/engine/expander"
	_ "go.trai.ch/reel/internal/engine/solver"
)
