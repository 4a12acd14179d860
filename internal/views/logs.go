package views

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/mattn/go-runewidth"

	"github.com/zjrosen/gitshell/internal/desktop"
	"github.com/zjrosen/gitshell/internal/keys"
	"github.com/zjrosen/gitshell/internal/log"
)

// MaxLogLines bounds the entries a Log window keeps.
const MaxLogLines = 500

// LogViewModel seeds the Log window with entries logged before it opened.
type LogViewModel struct {
	Lines []string
}

// Logs shows debug log entries as they arrive. It follows the tail until the
// user scrolls up; G resumes following.
type Logs struct {
	*desktop.Frame

	lines  []string
	offset int
	follow bool
}

// NewLogs creates an unshown Log window on d.
func NewLogs(d *desktop.Desktop) *Logs {
	l := &Logs{follow: true}
	l.Frame = desktop.NewFrame(d, l)
	return l
}

func (l *Logs) Title() string { return fmt.Sprintf("Log (%d)", len(l.lines)) }

// Bind accepts a LogViewModel or a pointer to one.
func (l *Logs) Bind(viewModel any) {
	var lines []string
	switch vm := viewModel.(type) {
	case LogViewModel:
		lines = vm.Lines
	case *LogViewModel:
		lines = vm.Lines
	default:
		log.Warn(log.CatUI, "Unexpected log view-model", "type", fmt.Sprintf("%T", viewModel))
		return
	}
	l.lines = nil
	for _, line := range lines {
		l.append(line)
	}
}

func (l *Logs) append(entry string) {
	l.lines = append(l.lines, strings.TrimRight(entry, "\n"))
	if over := len(l.lines) - MaxLogLines; over > 0 {
		l.lines = l.lines[over:]
		l.offset = max(l.offset-over, 0)
	}
}

// Lines returns the entries held.
func (l *Logs) Lines() []string { return l.lines }

func (l *Logs) PreferredSize(maxWidth, maxHeight int) (int, int) {
	return maxWidth, min(12, maxHeight)
}

func (l *Logs) Update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case log.LogEvent:
		l.append(msg.Payload)

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, keys.Dialog.Cancel):
			l.Close()
		case key.Matches(msg, keys.Dialog.Prev):
			l.follow = false
			l.offset = max(l.offset-1, 0)
		case key.Matches(msg, keys.Dialog.Next):
			l.offset++
		case msg.String() == "G":
			l.follow = true
		}
	}
	return nil
}

func (l *Logs) View(width, height int) string {
	maxOffset := max(len(l.lines)-height, 0)
	if l.follow || l.offset > maxOffset {
		l.offset = maxOffset
	}
	end := min(l.offset+height, len(l.lines))

	out := make([]string, 0, end-l.offset)
	for _, line := range l.lines[l.offset:end] {
		out = append(out, runewidth.Truncate(line, width, "…"))
	}
	return strings.Join(out, "\n")
}
