package styles

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/rivo/uniseg"
)

const (
	cornerTopLeft     = "╭"
	cornerTopRight    = "╮"
	cornerBottomLeft  = "╰"
	cornerBottomRight = "╯"
	edgeHorizontal    = "─"
	edgeVertical      = "│"
)

// RenderFrame draws content inside a rounded border with the title embedded
// in the top edge: ╭─ Title ─────╮. width and height include the border.
func RenderFrame(content, title string, width, height int, border lipgloss.TerminalColor) string {
	borderStyle := lipgloss.NewStyle().Foreground(border)
	titleStyle := lipgloss.NewStyle().Foreground(TitleColor).Bold(true)

	inner := max(width-2, 1)
	rows := max(height-2, 1)

	body := lipgloss.NewStyle().Width(inner).MaxWidth(inner).Height(rows).MaxHeight(rows).Render(content)
	lines := strings.Split(body, "\n")

	var b strings.Builder
	b.WriteString(topEdge(title, inner, borderStyle, titleStyle))
	for i := 0; i < rows; i++ {
		var line string
		if i < len(lines) {
			line = lines[i]
		}
		if w := lipgloss.Width(line); w < inner {
			line += strings.Repeat(" ", inner-w)
		}
		b.WriteString("\n")
		b.WriteString(borderStyle.Render(edgeVertical) + line + borderStyle.Render(edgeVertical))
	}
	b.WriteString("\n")
	b.WriteString(borderStyle.Render(cornerBottomLeft + strings.Repeat(edgeHorizontal, inner) + cornerBottomRight))
	return b.String()
}

func topEdge(title string, inner int, borderStyle, titleStyle lipgloss.Style) string {
	// Room for "─ " + title + " ─".
	if title == "" || inner < 5 {
		return borderStyle.Render(cornerTopLeft + strings.Repeat(edgeHorizontal, inner) + cornerTopRight)
	}

	title = TruncateGraphemes(title, inner-4)
	rest := max(inner-3-uniseg.StringWidth(title), 0)

	return borderStyle.Render(cornerTopLeft+edgeHorizontal+" ") +
		titleStyle.Render(title) +
		borderStyle.Render(" "+strings.Repeat(edgeHorizontal, rest)+cornerTopRight)
}

// TruncateGraphemes shortens s to at most width cells, ending in "…" when cut.
// It never splits a grapheme cluster.
func TruncateGraphemes(s string, width int) string {
	if width < 1 {
		return ""
	}
	if uniseg.StringWidth(s) <= width {
		return s
	}

	var b strings.Builder
	used := 0
	g := uniseg.NewGraphemes(s)
	for g.Next() {
		w := g.Width()
		if used+w > width-1 {
			break
		}
		b.WriteString(g.Str())
		used += w
	}
	return b.String() + "…"
}
