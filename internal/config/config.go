// Package config provides configuration types and defaults for gitshell.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/zjrosen/gitshell/internal/flags"
	"github.com/zjrosen/gitshell/internal/log"
	"github.com/zjrosen/gitshell/internal/tracing"
	"github.com/zjrosen/gitshell/internal/window"
)

// Config holds all configuration options for gitshell.
type Config struct {
	UI      UIConfig       `mapstructure:"ui"`
	Windows WindowsConfig  `mapstructure:"windows"`
	Tracing tracing.Config `mapstructure:"tracing"`
	// Flags toggles optional behavior; see package flags.
	Flags map[string]bool `mapstructure:"flags"`
}

// UIConfig holds user interface configuration options.
type UIConfig struct {
	ShowStatusBar bool   `mapstructure:"show_status_bar"`
	ConfirmQuit   bool   `mapstructure:"confirm_quit"`
	MarkdownStyle string `mapstructure:"markdown_style"` // "dark" (default) or "light"
}

// WindowsConfig controls window lookup and startup.
type WindowsConfig struct {
	// Namespace qualifies bare window keys.
	Namespace string `mapstructure:"namespace"`
	// Startup lists window keys shown when the application starts.
	Startup []string `mapstructure:"startup"`
	// Aliases maps qualified names to registered window keys. A list keeps
	// dotted names intact through viper's key handling.
	Aliases []AliasConfig `mapstructure:"aliases"`
}

// AliasConfig resolves the qualified Name to the window registered as Target.
type AliasConfig struct {
	Name   string `mapstructure:"name"`
	Target string `mapstructure:"target"`
}

// AliasMap returns the aliases keyed by name. Later duplicates win.
func (w WindowsConfig) AliasMap() map[string]string {
	out := make(map[string]string, len(w.Aliases))
	for _, a := range w.Aliases {
		out[a.Name] = a.Target
	}
	return out
}

// Defaults returns a Config with sensible default values.
func Defaults() Config {
	return Config{
		UI: UIConfig{
			ShowStatusBar: true,
			ConfirmQuit:   true,
			MarkdownStyle: "dark",
		},
		Windows: WindowsConfig{
			Namespace: window.DefaultNamespace,
		},
		Tracing: tracing.DefaultConfig(),
		Flags:   flags.Defaults(),
	}
}

// DefaultTracesFilePath returns the file exporter's default output path.
func DefaultTracesFilePath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".gitshell", "traces", "traces.jsonl")
	}
	return filepath.Join(home, ".config", "gitshell", "traces", "traces.jsonl")
}

// Validate checks the configuration for values the application cannot use.
func (c Config) Validate() error {
	switch c.UI.MarkdownStyle {
	case "", "dark", "light":
	default:
		return fmt.Errorf("ui.markdown_style must be \"dark\" or \"light\", got %q", c.UI.MarkdownStyle)
	}
	if err := ValidateWindows(c.Windows); err != nil {
		return err
	}
	if err := c.Tracing.Validate(); err != nil {
		return fmt.Errorf("tracing: %w", err)
	}
	return nil
}

// ValidateWindows checks namespace and alias syntax.
func ValidateWindows(w WindowsConfig) error {
	if w.Namespace != "" && strings.Contains(w.Namespace, window.Separator) {
		return fmt.Errorf("windows.namespace %q must not contain %q", w.Namespace, window.Separator)
	}
	for i, key := range w.Startup {
		if strings.TrimSpace(key) == "" {
			return fmt.Errorf("windows.startup[%d] is empty", i)
		}
	}
	for i, a := range w.Aliases {
		if !window.IsQualified(a.Name) {
			return fmt.Errorf("windows.aliases[%d].name %q must be qualified (contain %q)", i, a.Name, window.Separator)
		}
		if strings.TrimSpace(a.Target) == "" {
			return fmt.Errorf("windows.aliases[%d] (%s) has no target", i, a.Name)
		}
	}
	return nil
}

// DefaultConfigTemplate returns the default config as a YAML string with comments.
func DefaultConfigTemplate() string {
	return `# gitshell configuration

# UI settings
ui:
  show_status_bar: true   # Show status bar at bottom
  confirm_quit: true      # Ask before quitting
  # markdown_style: dark  # Markdown rendering style: "dark" (default) or "light"

# Window settings
windows:
  namespace: views        # Namespace used to qualify bare window keys
  # Windows to open on startup, by key:
  # startup:
  #   - About
  #
  # Alternative qualified names resolved to registered windows:
  # aliases:
  #   - name: plugins.settings
  #     target: Preferences

# Feature flags
# flags:
#   modal-hotkeys: true  # Show the Hotkeys window modally
#   mouse: true          # Enable mouse support for dialog buttons

# Tracing of window lifecycle operations
# tracing:
#   enabled: false                 # Enable/disable tracing (default: false)
#   exporter: file                 # Export backend: none, file, stdout, otlp (default: file)
#   file_path: ~/.config/gitshell/traces/traces.jsonl
#   otlp_endpoint: localhost:4317  # OTLP collector endpoint (for otlp exporter)
#   sample_rate: 1.0               # Trace sampling rate 0.0-1.0 (default: 1.0)
`
}

// WriteDefaultConfig creates a config file at the given path with default settings and comments.
// Creates the parent directory if it doesn't exist.
func WriteDefaultConfig(configPath string) error {
	log.Debug(log.CatConfig, "Writing default config", "path", configPath)

	dir := filepath.Dir(configPath)
	if err := os.MkdirAll(dir, 0o750); err != nil {
		log.ErrorErr(log.CatConfig, "Failed to create config directory", err, "dir", dir)
		return fmt.Errorf("creating config directory: %w", err)
	}

	if err := os.WriteFile(configPath, []byte(DefaultConfigTemplate()), 0o600); err != nil {
		log.ErrorErr(log.CatConfig, "Failed to write config file", err, "path", configPath)
		return fmt.Errorf("writing config file: %w", err)
	}

	log.Info(log.CatConfig, "Created default config", "path", configPath)
	return nil
}
