// Package views holds gitshell's concrete windows and registers them under
// their logical keys.
package views

import (
	"github.com/zjrosen/gitshell/internal/desktop"
	"github.com/zjrosen/gitshell/internal/keys"
	"github.com/zjrosen/gitshell/internal/window"
)

// Registered window keys.
const (
	KeyPreferences = "Preferences"
	KeyAbout       = "About"
	KeyHotkeys     = "Hotkeys"
	KeyConfirm     = "Confirm"
	KeyPrompt      = "Prompt"
	KeyLog         = "Log"
)

// Deps are the services windows need beyond their view-model.
type Deps struct {
	// ConfigPath is where Preferences saves. Empty keeps edits in memory.
	ConfigPath string
	KeyMap     keys.KeyMap
	// MarkdownStyle reports the current glamour style; nil means "dark".
	MarkdownStyle func() string
}

// Register builds the registry of every window kind. Instances are created on
// d when the factory asks for them.
func Register(d *desktop.Desktop, namespace string, deps Deps) (*window.Registry, error) {
	style := deps.MarkdownStyle
	if style == nil {
		style = func() string { return "dark" }
	}
	return window.NewRegistry(namespace,
		entry(KeyPreferences, func() any { return NewPreferences(d, deps.ConfigPath) }),
		entry(KeyAbout, func() any { return NewAbout(d, style()) }),
		entry(KeyHotkeys, func() any { return NewHotkeys(d, deps.KeyMap) }),
		entry(KeyConfirm, func() any { return NewConfirm(d) }),
		entry(KeyPrompt, func() any { return NewPrompt(d) }),
		entry(KeyLog, func() any { return NewLogs(d) }),
	)
}

func entry(key string, newFn func() any) window.Entry {
	return window.Entry{Key: key, Kind: window.Kind{Name: key, New: newFn}}
}
