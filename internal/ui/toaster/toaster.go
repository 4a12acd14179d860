// Package toaster shows short notifications about window and dialog
// outcomes along the bottom edge of the screen.
package toaster

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/zjrosen/gitshell/internal/ui/overlay"
	"github.com/zjrosen/gitshell/internal/ui/styles"
)

// DefaultDuration is how long a toast stays up when Notify is used.
const DefaultDuration = 3 * time.Second

// Style determines the visual appearance of the toast.
type Style int

const (
	StyleSuccess Style = iota
	StyleError
	StyleInfo
	StyleWarn
)

// Model holds the toaster state. Each Show bumps seq so a dismissal scheduled
// for an older toast leaves a newer one alone.
type Model struct {
	message string
	style   Style
	visible bool
	seq     int
}

// New creates a hidden toaster.
func New() Model {
	return Model{}
}

// Show displays message with style, replacing any current toast.
func (m Model) Show(message string, style Style) Model {
	m.message = message
	m.style = style
	m.visible = true
	m.seq++
	return m
}

// Notify shows message and schedules its dismissal after DefaultDuration.
func (m Model) Notify(message string, style Style) (Model, tea.Cmd) {
	m = m.Show(message, style)
	return m, m.ScheduleDismiss(DefaultDuration)
}

// Hide dismisses the toast.
func (m Model) Hide() Model {
	m.visible = false
	m.message = ""
	return m
}

// Visible returns whether the toast is currently showing.
func (m Model) Visible() bool {
	return m.visible
}

// Update handles DismissMsg for the current toast.
func (m Model) Update(msg tea.Msg) Model {
	if d, ok := msg.(DismissMsg); ok && d.seq == m.seq {
		return m.Hide()
	}
	return m
}

// View renders the toast box, or nothing when hidden.
func (m Model) View() string {
	if !m.visible || m.message == "" {
		return ""
	}

	style := lipgloss.NewStyle().
		Padding(0, 1).
		Border(lipgloss.RoundedBorder())

	var icon string
	switch m.style {
	case StyleError:
		style = style.BorderForeground(styles.StatusErrorColor)
		icon = "✗ "
	case StyleInfo:
		style = style.BorderForeground(styles.StatusInfoColor)
		icon = "i "
	case StyleWarn:
		style = style.BorderForeground(styles.StatusWarningColor)
		icon = "! "
	default:
		style = style.BorderForeground(styles.StatusSuccessColor)
		icon = "✓ "
	}

	return style.Render(icon + m.message)
}

// Overlay renders the toast bottom-centered on top of bg.
func (m Model) Overlay(bg string, width, height int) string {
	if !m.visible || m.message == "" {
		return bg
	}

	cfg := overlay.Config{
		Width:    width,
		Height:   height,
		Position: overlay.Bottom,
		PadY:     1,
	}
	return overlay.Place(cfg, m.View(), bg)
}

// DismissMsg signals that the toast it was scheduled for should go away.
type DismissMsg struct {
	seq int
}

// ScheduleDismiss returns a command that dismisses the current toast after d.
func (m Model) ScheduleDismiss(d time.Duration) tea.Cmd {
	seq := m.seq
	return tea.Tick(d, func(time.Time) tea.Msg {
		return DismissMsg{seq: seq}
	})
}
