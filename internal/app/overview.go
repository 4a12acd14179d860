package app

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/zjrosen/gitshell/internal/config"
	"github.com/zjrosen/gitshell/internal/ui/styles"
	"github.com/zjrosen/gitshell/internal/window"
)

// overview is the main window's content. It is shared by every copy of
// Model, so Update can change what the desktop draws.
type overview struct {
	cfg      *config.Config
	cache    *window.Cache
	workDir  string
	version  string
	lastSeen string
	branches []string
}

func (o *overview) Title() string { return "gitshell" }

// Update is unused; app.Model handles main window input itself.
func (o *overview) Update(tea.Msg) tea.Cmd { return nil }

func (o *overview) View(width, height int) string {
	var b strings.Builder
	b.WriteString(styles.ValueStyle.Render("gitshell " + o.version))
	b.WriteString("\n")
	b.WriteString(styles.LabelStyle.Render("Repository: ") + o.workDir)
	b.WriteString("\n\n")

	if len(o.branches) > 0 {
		b.WriteString(styles.LabelStyle.Render("Requested branches"))
		b.WriteString("\n")
		for _, name := range o.branches {
			b.WriteString("  " + name + "\n")
		}
		b.WriteString("\n")
	}
	b.WriteString(styles.HintStyle.Render("p preferences · a about · b new branch · ? hotkeys · q quit"))

	bodyHeight := height
	var status string
	if o.cfg.UI.ShowStatusBar {
		status = o.statusBar(width)
		bodyHeight = max(height-1, 0)
	}
	body := lipgloss.NewStyle().Width(width).Height(bodyHeight).MaxHeight(bodyHeight).Render(b.String())
	if status == "" {
		return body
	}
	return body + "\n" + status
}

func (o *overview) statusBar(width int) string {
	names := o.cache.Names()
	text := fmt.Sprintf("%d open", len(names))
	if len(names) > 0 {
		text += " (" + strings.Join(names, ", ") + ")"
	}
	if o.lastSeen != "" {
		text += " · " + o.lastSeen
	}
	return styles.StatusBarStyle.Width(width).MaxWidth(width).Render(text)
}
