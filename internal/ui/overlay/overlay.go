// Package overlay composites window frames over a background view while
// keeping the ANSI styling of both layers intact.
package overlay

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

// Position anchors the foreground inside the viewport.
type Position int

const (
	Center Position = iota
	Top
	Bottom
)

// Config describes the viewport and where the foreground goes.
type Config struct {
	Width    int
	Height   int
	Position Position
	// PadY keeps Top/Bottom placements away from the edge.
	PadY int
	// OffsetX and OffsetY shift the anchored position, used to cascade
	// stacked windows. The result is clamped to the viewport.
	OffsetX int
	OffsetY int
}

// Place draws fg over bg and returns the combined view.
func Place(cfg Config, fg, bg string) string {
	fgLines := strings.Split(fg, "\n")
	bgLines := strings.Split(bg, "\n")
	for len(bgLines) < cfg.Height {
		bgLines = append(bgLines, strings.Repeat(" ", cfg.Width))
	}

	x, y := origin(cfg, lipgloss.Width(fg), len(fgLines))

	for i, line := range fgLines {
		row := y + i
		if row >= len(bgLines) {
			break
		}
		bgLines[row] = splice(bgLines[row], line, x)
	}
	return strings.Join(bgLines, "\n")
}

// splice replaces the cells of bgLine starting at column x with fgLine.
func splice(bgLine, fgLine string, x int) string {
	left := ansi.Truncate(bgLine, x, "")
	if w := ansi.StringWidth(left); w < x {
		left += strings.Repeat(" ", x-w)
	}

	end := x + ansi.StringWidth(fgLine)
	var right string
	if end < ansi.StringWidth(bgLine) {
		right = ansi.TruncateLeft(bgLine, end, "")
	}
	return left + fgLine + right
}

func origin(cfg Config, fgWidth, fgHeight int) (x, y int) {
	x = (cfg.Width - fgWidth) / 2
	switch cfg.Position {
	case Top:
		y = cfg.PadY
	case Bottom:
		y = cfg.Height - fgHeight - cfg.PadY
	default:
		y = (cfg.Height - fgHeight) / 2
	}

	x = clamp(x+cfg.OffsetX, cfg.Width-fgWidth)
	y = clamp(y+cfg.OffsetY, cfg.Height-fgHeight)
	return x, y
}

func clamp(v, upper int) int {
	if v > upper {
		v = upper
	}
	if v < 0 {
		v = 0
	}
	return v
}
