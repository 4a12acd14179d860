package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/fsnotify/fsnotify"
	zone "github.com/lrstanley/bubblezone"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/zjrosen/gitshell/internal/app"
	"github.com/zjrosen/gitshell/internal/config"
	"github.com/zjrosen/gitshell/internal/flags"
	"github.com/zjrosen/gitshell/internal/log"
	"github.com/zjrosen/gitshell/internal/tracing"
)

func init() {
	// Query the terminal background before Bubble Tea owns stdin, otherwise
	// the OSC 11 reply can leak into text inputs.
	// See: https://github.com/charmbracelet/bubbletea/issues/1036
	_ = lipgloss.HasDarkBackground()
}

const (
	localConfigPath = ".gitshell/config.yaml"
	debugLogPath    = "debug.log"
)

var (
	version    = "dev"
	cfgFile    string
	cfg        = config.Defaults()
	configPath string
	debug      bool
	openKeys   []string
)

var rootCmd = &cobra.Command{
	Use:     "gitshell",
	Short:   "A terminal shell for Git repositories",
	Long:    `A terminal shell for Git repositories with stacked windows and dialogs.`,
	Version: version,
	RunE:    runApp,
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "",
		"config file (default: ~/.config/gitshell/config.yaml)")
	rootCmd.PersistentFlags().BoolVarP(&debug, "debug", "d", false,
		"write a debug log to "+debugLogPath+" and enable the Log window")
	rootCmd.Flags().StringArrayVarP(&openKeys, "open", "o", nil,
		"window key to open on startup (repeatable, e.g. --open About)")
}

func initConfig() {
	home, _ := os.UserHomeDir()
	loaded, path, err := loadConfig(viper.GetViper(), cfgFile, home)
	if err != nil {
		fmt.Fprintf(os.Stderr, "gitshell: %v\n", err)
	}
	cfg = loaded
	configPath = path
}

// setDefaults registers every configuration default on v.
func setDefaults(v *viper.Viper) {
	defaults := config.Defaults()
	v.SetDefault("ui.show_status_bar", defaults.UI.ShowStatusBar)
	v.SetDefault("ui.confirm_quit", defaults.UI.ConfirmQuit)
	v.SetDefault("ui.markdown_style", defaults.UI.MarkdownStyle)
	v.SetDefault("windows.namespace", defaults.Windows.Namespace)
	v.SetDefault("tracing.enabled", defaults.Tracing.Enabled)
	v.SetDefault("tracing.exporter", defaults.Tracing.Exporter)
	v.SetDefault("tracing.otlp_endpoint", defaults.Tracing.OTLPEndpoint)
	v.SetDefault("tracing.sample_rate", defaults.Tracing.SampleRate)
	v.SetDefault("tracing.service_name", defaults.Tracing.ServiceName)
	for name, enabled := range defaults.Flags {
		v.SetDefault("flags."+name, enabled)
	}
}

// loadConfig reads configuration into v and returns it with the path edits
// are saved to.
//
// Lookup order:
//  1. explicit (the --config flag)
//  2. .gitshell/config.yaml (current directory)
//  3. ~/.config/gitshell/config.yaml (user config)
//
// When no file exists a default one is written to .gitshell/config.yaml.
// A failed read leaves the defaults in place and returns the error.
func loadConfig(v *viper.Viper, explicit, home string) (config.Config, string, error) {
	setDefaults(v)

	switch {
	case explicit != "":
		v.SetConfigFile(explicit)
	case fileExists(localConfigPath):
		v.SetConfigFile(localConfigPath)
	default:
		v.AddConfigPath(filepath.Join(home, ".config", "gitshell"))
		v.SetConfigName("config")
		v.SetConfigType("yaml")
	}

	var readErr error
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) {
			if writeErr := config.WriteDefaultConfig(localConfigPath); writeErr == nil {
				v.SetConfigFile(localConfigPath)
				readErr = v.ReadInConfig()
			}
		} else {
			readErr = fmt.Errorf("reading config: %w", err)
		}
	}

	loaded := config.Defaults()
	if err := v.Unmarshal(&loaded); err != nil {
		return config.Defaults(), localConfigPath, fmt.Errorf("decoding config: %w", err)
	}

	path := v.ConfigFileUsed()
	if path == "" {
		path = localConfigPath
	}
	return loaded, path, readErr
}

func fileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

func runApp(cmd *cobra.Command, args []string) error {
	if debug || os.Getenv("GITSHELL_DEBUG") != "" {
		closeLog, err := log.InitWithTeaLog(debugLogPath, "gitshell")
		if err != nil {
			return fmt.Errorf("opening debug log: %w", err)
		}
		defer closeLog()
		debug = true
	}

	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	workDir, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("getting current directory: %w", err)
	}

	traceCfg := cfg.Tracing
	if traceCfg.FilePath == "" {
		traceCfg.FilePath = config.DefaultTracesFilePath()
	}
	provider, err := tracing.NewProvider(traceCfg)
	if err != nil {
		return fmt.Errorf("starting tracing: %w", err)
	}
	defer func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := provider.Shutdown(ctx); err != nil {
			log.ErrorErr(log.CatTrace, "Tracing shutdown failed", err)
		}
	}()

	model, err := app.New(app.Options{
		Config:     cfg,
		ConfigPath: configPath,
		WorkDir:    workDir,
		Version:    version,
		Open:       openKeys,
		Debug:      debug,
		Tracer:     provider.Tracer(),
	})
	if err != nil {
		return err
	}

	zone.NewGlobal()
	programOpts := []tea.ProgramOption{tea.WithAltScreen()}
	if flags.New(cfg.Flags).Enabled(flags.FlagMouse) {
		programOpts = append(programOpts, tea.WithMouseCellMotion())
	}
	p := tea.NewProgram(&model, programOpts...)

	if viper.ConfigFileUsed() != "" {
		viper.OnConfigChange(func(e fsnotify.Event) {
			if next, ok := reloadConfig(viper.GetViper(), e); ok {
				p.Send(app.ConfigChangedMsg{Config: next})
			}
		})
		viper.WatchConfig()
	}

	_, err = p.Run()

	if closeErr := model.Close(); closeErr != nil && err == nil {
		err = closeErr
	}

	if err != nil {
		return fmt.Errorf("running program: %w", err)
	}
	return nil
}

// reloadConfig decodes the configuration viper re-read after a file change.
// Invalid configurations are logged and ignored.
func reloadConfig(v *viper.Viper, e fsnotify.Event) (config.Config, bool) {
	log.Info(log.CatConfig, "Config file changed", "path", e.Name, "op", e.Op.String())

	next := config.Defaults()
	if err := v.Unmarshal(&next); err != nil {
		log.ErrorErr(log.CatConfig, "Failed to decode reloaded config", err)
		return config.Config{}, false
	}
	if err := next.Validate(); err != nil {
		log.ErrorErr(log.CatConfig, "Ignoring invalid reloaded config", err)
		return config.Config{}, false
	}
	return next, true
}

// Execute runs the root command
func Execute() error {
	return rootCmd.Execute()
}

// SetVersion sets the version string (called from main with ldflags)
func SetVersion(v string) {
	version = v
	rootCmd.Version = v
}
