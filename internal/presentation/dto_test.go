package presentation

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zjrosen/gitshell/internal/desktop"
	"github.com/zjrosen/gitshell/internal/views"
)

func TestFromRegistry_EntriesThenAliases(t *testing.T) {
	reg, err := views.Register(desktop.New(), "views", views.Deps{})
	require.NoError(t, err)

	dtos := FromRegistry(reg, map[string]string{
		"plugins.settings": "Preferences",
		"plugins.ghost":    "Missing",
	})

	require.Len(t, dtos, 8)
	assert.Equal(t, WindowDTO{Key: "About", QualifiedName: "views.About", Kind: "About", Resolved: true}, dtos[0])

	ghost, settings := dtos[6], dtos[7]
	assert.Equal(t, "plugins.ghost", ghost.QualifiedName)
	assert.True(t, ghost.Alias)
	assert.False(t, ghost.Resolved)
	assert.Empty(t, ghost.Kind)

	assert.Equal(t, "plugins.settings", settings.QualifiedName)
	assert.Equal(t, "Preferences", settings.Kind)
	assert.True(t, settings.Resolved)
}

func TestFilters(t *testing.T) {
	dtos := []WindowDTO{
		{QualifiedName: "views.About", Resolved: true},
		{QualifiedName: "plugins.settings", Alias: true, Resolved: true},
		{QualifiedName: "plugins.ghost", Alias: true},
	}

	assert.Len(t, FilterResolved(dtos), 2)

	plugins := FilterPrefix(dtos, "PLUGINS.")
	require.Len(t, plugins, 2)
	assert.Equal(t, "plugins.settings", plugins[0].QualifiedName)
	assert.Len(t, dtos, 3, "filters do not modify their input")
	assert.Equal(t, "plugins.settings", dtos[1].QualifiedName)
}

func TestFormatter_FormatWindows(t *testing.T) {
	var buf bytes.Buffer
	err := NewFormatter(&buf).FormatWindows([]WindowDTO{
		{Key: "About", QualifiedName: "views.About", Kind: "About", Resolved: true},
	})
	require.NoError(t, err)

	assert.Contains(t, buf.String(), "\n  {\n")
	var decoded []map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))
	require.Len(t, decoded, 1)
	assert.Equal(t, "views.About", decoded[0]["qualified_name"])
	assert.NotContains(t, decoded[0], "alias", "alias is omitted for registry entries")
}
