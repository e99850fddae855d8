// Package plotter holds the data model for colored points on a 2D canvas
// and the set of geometric transformations that can be applied to them.
package plotter

import (
	"github.com/akeil/plotter/internal/logging"
)

// SetLogLevel sets the level for log output from this package.
// Unknown names disable logging.
func SetLogLevel(level string) {
	lvl, err := logging.ParseLevel(level)
	if err != nil {
		lvl = logging.LevelNone
	}
	logging.SetLevel(lvl)
}
