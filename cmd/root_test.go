package cmd

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zjrosen/gitshell/internal/config"
	"github.com/zjrosen/gitshell/internal/presentation"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o750))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
}

func TestLoadConfig_WritesDefaultWhenMissing(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)

	loaded, path, err := loadConfig(viper.New(), "", filepath.Join(dir, "home"))
	require.NoError(t, err)

	assert.Equal(t, localConfigPath, path)
	assert.FileExists(t, filepath.Join(dir, localConfigPath))
	assert.Equal(t, config.Defaults().UI, loaded.UI)
	assert.Equal(t, "views", loaded.Windows.Namespace)
}

func TestLoadConfig_LocalOverridesHome(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)
	home := filepath.Join(dir, "home")
	writeFile(t, filepath.Join(home, ".config", "gitshell", "config.yaml"), "ui:\n  confirm_quit: false\n")
	writeFile(t, filepath.Join(dir, localConfigPath), "ui:\n  show_status_bar: false\n")

	loaded, path, err := loadConfig(viper.New(), "", home)
	require.NoError(t, err)

	assert.Equal(t, localConfigPath, path)
	assert.False(t, loaded.UI.ShowStatusBar)
	assert.True(t, loaded.UI.ConfirmQuit, "home config is not merged")
}

func TestLoadConfig_HomeConfig(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)
	home := filepath.Join(dir, "home")
	homeConfig := filepath.Join(home, ".config", "gitshell", "config.yaml")
	writeFile(t, homeConfig, `
windows:
  startup: [About]
  aliases:
    - name: plugins.Settings
      target: Preferences
`)

	loaded, path, err := loadConfig(viper.New(), "", home)
	require.NoError(t, err)

	assert.Equal(t, homeConfig, path)
	assert.Equal(t, []string{"About"}, loaded.Windows.Startup)
	assert.Equal(t, []config.AliasConfig{{Name: "plugins.Settings", Target: "Preferences"}}, loaded.Windows.Aliases)
	assert.True(t, loaded.UI.ShowStatusBar, "defaults fill unset keys")
	assert.NoFileExists(t, filepath.Join(dir, localConfigPath))
}

func TestLoadConfig_ExplicitFile(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)
	explicit := filepath.Join(dir, "custom.yaml")
	writeFile(t, explicit, "tracing:\n  enabled: true\n  exporter: stdout\n")

	loaded, path, err := loadConfig(viper.New(), explicit, dir)
	require.NoError(t, err)

	assert.Equal(t, explicit, path)
	assert.True(t, loaded.Tracing.Enabled)
	assert.Equal(t, "stdout", loaded.Tracing.Exporter)
	assert.InDelta(t, 1.0, loaded.Tracing.SampleRate, 0.0001)
}

func TestLoadConfig_MalformedFileKeepsDefaults(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)
	explicit := filepath.Join(dir, "broken.yaml")
	writeFile(t, explicit, "ui: [unterminated\n")

	loaded, _, err := loadConfig(viper.New(), explicit, dir)

	require.Error(t, err)
	assert.Equal(t, config.Defaults().UI, loaded.UI)
}

func TestReloadConfig(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)
	explicit := filepath.Join(dir, "config.yaml")
	writeFile(t, explicit, "ui:\n  confirm_quit: false\n")

	v := viper.New()
	_, _, err := loadConfig(v, explicit, dir)
	require.NoError(t, err)

	next, ok := reloadConfig(v, fsnotify.Event{Name: explicit, Op: fsnotify.Write})
	require.True(t, ok)
	assert.False(t, next.UI.ConfirmQuit)

	v.Set("ui.markdown_style", "neon")
	_, ok = reloadConfig(v, fsnotify.Event{Name: explicit, Op: fsnotify.Write})
	assert.False(t, ok, "invalid configurations are ignored")
}

func TestWindowsListCmd(t *testing.T) {
	saved := cfg
	t.Cleanup(func() {
		cfg = saved
		winPrefix, winResolved = "", false
	})
	cfg = config.Defaults()
	cfg.Windows.Aliases = []config.AliasConfig{
		{Name: "plugins.settings", Target: "Preferences"},
		{Name: "plugins.ghost", Target: "Missing"},
	}

	run := func(t *testing.T) []presentation.WindowDTO {
		t.Helper()
		var buf bytes.Buffer
		windowsListCmd.SetOut(&buf)
		t.Cleanup(func() { windowsListCmd.SetOut(nil) })
		require.NoError(t, windowsListCmd.RunE(windowsListCmd, nil))
		var dtos []presentation.WindowDTO
		require.NoError(t, json.Unmarshal(buf.Bytes(), &dtos))
		return dtos
	}

	all := run(t)
	assert.Len(t, all, 8)

	winPrefix = "plugins."
	assert.Len(t, run(t), 2)

	winResolved = true
	resolved := run(t)
	require.Len(t, resolved, 1)
	assert.Equal(t, "Preferences", resolved[0].Kind)
}

func TestWindowsListCmd_RejectsInvalidConfig(t *testing.T) {
	saved := cfg
	t.Cleanup(func() { cfg = saved })
	cfg = config.Defaults()
	cfg.Windows.Namespace = "a.b"

	err := windowsListCmd.RunE(windowsListCmd, nil)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid configuration")
}

func TestLoadConfig_FlagsMergeWithDefaults(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)
	explicit := filepath.Join(dir, "config.yaml")
	writeFile(t, explicit, "flags:\n  mouse: false\n")

	loaded, _, err := loadConfig(viper.New(), explicit, dir)
	require.NoError(t, err)

	assert.False(t, loaded.Flags["mouse"])
	assert.True(t, loaded.Flags["modal-hotkeys"])
}
