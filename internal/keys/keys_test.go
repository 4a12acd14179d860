package keys

import (
	"testing"

	"github.com/charmbracelet/bubbles/key"
	"github.com/stretchr/testify/require"
)

func TestDefaultKeyMap_KeyAssignments(t *testing.T) {
	km := DefaultKeyMap()

	tests := []struct {
		name     string
		binding  key.Binding
		expected []string
	}{
		{"Preferences uses p", km.Preferences, []string{"p"}},
		{"ClosePreferences uses c", km.ClosePreferences, []string{"c"}},
		{"About uses a", km.About, []string{"a"}},
		{"Hotkeys uses ?", km.Hotkeys, []string{"?"}},
		{"CreateBranch uses b", km.CreateBranch, []string{"b"}},
		{"Quit uses q and ctrl+c", km.Quit, []string{"q", "ctrl+c"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.expected, tt.binding.Keys())
		})
	}
}

func TestDefaultKeyMap_NoDuplicateKeys(t *testing.T) {
	seen := make(map[string]string)
	for _, group := range DefaultKeyMap().FullHelp() {
		for _, b := range group {
			for _, k := range b.Keys() {
				prev, dup := seen[k]
				require.False(t, dup, "key %q bound to both %q and %q", k, prev, b.Help().Desc)
				seen[k] = b.Help().Desc
			}
		}
	}
}

func TestDefaultKeyMap_HelpTextPresent(t *testing.T) {
	for _, group := range DefaultKeyMap().FullHelp() {
		for _, b := range group {
			require.NotEmpty(t, b.Help().Key)
			require.NotEmpty(t, b.Help().Desc)
		}
	}
}

func TestDialog_KeyAssignments(t *testing.T) {
	require.Equal(t, []string{"enter"}, Dialog.Confirm.Keys())
	require.Equal(t, []string{"esc"}, Dialog.Cancel.Keys())
	require.Contains(t, Dialog.Next.Keys(), "tab")
	require.Contains(t, Dialog.Prev.Keys(), "shift+tab")
}
