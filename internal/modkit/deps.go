// Package modkit provides module wiring and core deps
package modkit

import (
	"github.com/vaibhavgarg230/trustlens-sub000/internal/platform/config"
	"github.com/vaibhavgarg230/trustlens-sub000/internal/platform/logger"
)

// Deps holds core dependencies passed to modules
// this is wiring only and does not introduce new abstractions
type Deps struct {
	Log logger.Logger
	Cfg config.Conf
}

// Named returns Log tagged with a component field
func (d Deps) Named(component string) logger.Logger {
	return d.Log.With().Str("component", component).Logger()
}
