package toaster

import (
	"strings"
	"testing"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	lipgloss.SetColorProfile(termenv.Ascii)
}

func TestNew(t *testing.T) {
	m := New()

	assert.False(t, m.Visible())
	assert.Empty(t, m.View())
}

func TestShow(t *testing.T) {
	m := New().Show("Branch created", StyleSuccess)

	assert.True(t, m.Visible())
	assert.Contains(t, m.View(), "Branch created")
	assert.Contains(t, m.View(), "✓")
}

func TestHide(t *testing.T) {
	m := New().Show("Hello", StyleSuccess).Hide()

	assert.False(t, m.Visible())
	assert.Empty(t, m.View())
}

func TestShow_ReplacesExisting(t *testing.T) {
	m := New().
		Show("First", StyleSuccess).
		Show("Second", StyleError)

	assert.Contains(t, m.View(), "Second")
	assert.Contains(t, m.View(), "✗")
	assert.NotContains(t, m.View(), "First")
}

func TestView_EmptyWhenMessageEmpty(t *testing.T) {
	m := Model{visible: true, message: ""}

	assert.Empty(t, m.View())
}

func TestUpdate_DismissMatchesCurrentToast(t *testing.T) {
	m := New().Show("Saved", StyleInfo)

	m = m.Update(DismissMsg{seq: m.seq})

	assert.False(t, m.Visible())
}

func TestUpdate_StaleDismissIgnored(t *testing.T) {
	first := New().Show("First", StyleSuccess)
	stale := DismissMsg{seq: first.seq}
	second := first.Show("Second", StyleWarn)

	second = second.Update(stale)

	assert.True(t, second.Visible())
	assert.Contains(t, second.View(), "Second")
}

func TestNotify_ReturnsDismissCmd(t *testing.T) {
	m, cmd := New().Notify("Hello", StyleSuccess)

	require.NotNil(t, cmd)
	assert.True(t, m.Visible())
}

func TestScheduleDismiss_CarriesSequence(t *testing.T) {
	m := New().Show("Hello", StyleSuccess)

	msg := m.ScheduleDismiss(time.Millisecond)()

	d, ok := msg.(DismissMsg)
	require.True(t, ok)
	assert.Equal(t, m.seq, d.seq)
}

func TestOverlay_PlacesToastNearBottom(t *testing.T) {
	bg := strings.TrimRight(strings.Repeat(strings.Repeat(".", 40)+"\n", 10), "\n")
	m := New().Show("Hi", StyleSuccess)

	out := m.Overlay(bg, 40, 10)
	lines := strings.Split(out, "\n")

	require.Len(t, lines, 10)
	assert.Contains(t, lines[7], "Hi", "toast sits one row above the bottom border padding")
	assert.Equal(t, strings.Repeat(".", 40), lines[0])
}

func TestOverlay_HiddenReturnsBackground(t *testing.T) {
	assert.Equal(t, "bg", New().Overlay("bg", 10, 1))
}
