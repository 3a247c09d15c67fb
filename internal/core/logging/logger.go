package logging

import (
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// ComponentKey is the field that names the subsystem an event came from.
const ComponentKey = "cmp"

// Component returns a child of the global logger tagged with the component
// name. The global logger is read at call time, so components must be
// created after the root command has installed the process logger.
func Component(name string) zerolog.Logger {
	return log.Logger.With().Str(ComponentKey, name).Logger()
}
