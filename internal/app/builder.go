package app

import (
	"github.com/mwatts/anyctl/internal/core/ports"
)

// Components contains the initialized application components the CLI layer
// needs access to.
type Components struct {
	App    *App
	Logger ports.Logger
}
