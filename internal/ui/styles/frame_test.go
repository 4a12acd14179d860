package styles

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	lipgloss.SetColorProfile(termenv.Ascii)
}

func TestRenderFrame_TitleInTopEdge(t *testing.T) {
	out := RenderFrame("hello", "About", 20, 4, BorderDefaultColor)
	lines := strings.Split(out, "\n")

	require.Len(t, lines, 4)
	assert.True(t, strings.HasPrefix(lines[0], "╭─ About "))
	assert.True(t, strings.HasSuffix(lines[0], "╮"))
	assert.Contains(t, lines[1], "hello")
	assert.True(t, strings.HasPrefix(lines[3], "╰"))
	for _, l := range lines {
		assert.Equal(t, 20, lipgloss.Width(l), "line %q", l)
	}
}

func TestRenderFrame_NarrowDropsTitle(t *testing.T) {
	out := RenderFrame("", "Preferences", 6, 3, BorderDefaultColor)

	assert.Equal(t, "╭────╮", strings.Split(out, "\n")[0])
}

func TestTruncateGraphemes(t *testing.T) {
	assert.Equal(t, "Preferences", TruncateGraphemes("Preferences", 11))
	assert.Equal(t, "Pref…", TruncateGraphemes("Preferences", 5))
	assert.Equal(t, "", TruncateGraphemes("Preferences", 0))
	assert.Equal(t, "日…", TruncateGraphemes("日本語", 4))
}
