// Package flags provides feature flag support for optional UI behavior.
// Flags are read-only after initialization and provide safe defaults for unknown flags.
package flags

import (
	"maps"

	"github.com/zjrosen/gitshell/internal/log"
)

// Flag name constants for type-safe flag access.
const (
	// FlagModalHotkeys shows the Hotkeys window modally over the main window.
	FlagModalHotkeys = "modal-hotkeys"
	// FlagMouse enables mouse cell motion so dialog buttons are clickable.
	FlagMouse = "mouse"
)

// Defaults returns the flag values used when the config file sets none.
func Defaults() map[string]bool {
	return map[string]bool{
		FlagModalHotkeys: true,
		FlagMouse:        true,
	}
}

// Registry holds feature flag state loaded from configuration.
type Registry struct {
	flags map[string]bool
}

// New creates a Registry from a config map. The map is copied.
// If flags is nil, an empty registry is created (all flags disabled).
func New(flags map[string]bool) *Registry {
	r := &Registry{flags: make(map[string]bool, len(flags))}
	maps.Copy(r.flags, flags)
	log.Debug(log.CatConfig, "Feature flags initialized", "count", len(r.flags), "flags", r.All())
	return r
}

// Enabled returns true if the named flag is enabled.
// Returns false for unknown flags and on a nil registry.
func (r *Registry) Enabled(name string) bool {
	if r == nil {
		return false
	}
	value, exists := r.flags[name]
	if !exists {
		log.Debug(log.CatConfig, "Unknown flag accessed", "flag", name, "result", false)
		return false
	}
	return value
}

// All returns a copy of all flags.
func (r *Registry) All() map[string]bool {
	if r == nil {
		return make(map[string]bool)
	}
	result := make(map[string]bool, len(r.flags))
	maps.Copy(result, r.flags)
	return result
}
