// Package wiring registers all Graft nodes for the application.
package wiring

import (
	// Register adapter nodes.
	_ "github.com/mwatts/anyctl/internal/adapters/api"
	_ "github.com/mwatts/anyctl/internal/adapters/config"
	_ "github.com/mwatts/anyctl/internal/adapters/logger"
	_ "github.com/mwatts/anyctl/internal/adapters/telemetry"
	// Register app and core nodes.
	_ "github.com/mwatts/anyctl/internal/app"
	_ "github.com/mwatts/anyctl/internal/resolve"
)
