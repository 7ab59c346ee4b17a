// Package wiring registers all Graft nodes for the application.
package wiring

import (
	// Register adapter nodes.
	_ "go.trai.ch/scorebook/internal/adapters/codec"
	_ "go.trai.ch/scorebook/internal/adapters/config"
	_ "go.trai.ch/scorebook/internal/adapters/logger"
	_ "go.trai.ch/scorebook/internal/adapters/telemetry"
	// Register app nodes.
	_ "go.trai.ch/scorebook/internal/app"
)
