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
	"github.com/zjrosen/gitshell/internal/ui/styles"
)

var hotkeyGroups = []string{"Windows", "Dialogs", "General"}

type hotkeyRow struct {
	keys   string
	desc   string
	header bool
}

// Hotkeys lists the key bindings.
type Hotkeys struct {
	*desktop.Frame

	rows   []hotkeyRow
	keyW   int
	descW  int
	offset int
}

// NewHotkeys creates an unshown Hotkeys window listing km.
func NewHotkeys(d *desktop.Desktop, km keys.KeyMap) *Hotkeys {
	h := &Hotkeys{}
	h.Frame = desktop.NewFrame(d, h)
	h.setKeyMap(km)
	return h
}

func (h *Hotkeys) Title() string { return "Hotkeys" }

// Bind accepts a keys.KeyMap to list instead.
func (h *Hotkeys) Bind(viewModel any) {
	switch km := viewModel.(type) {
	case keys.KeyMap:
		h.setKeyMap(km)
	case *keys.KeyMap:
		h.setKeyMap(*km)
	default:
		log.Warn(log.CatUI, "Unexpected hotkeys view-model", "type", fmt.Sprintf("%T", viewModel))
	}
}

func (h *Hotkeys) setKeyMap(km keys.KeyMap) {
	h.rows = h.rows[:0]
	for i, group := range km.FullHelp() {
		if i < len(hotkeyGroups) {
			h.rows = append(h.rows, hotkeyRow{desc: hotkeyGroups[i], header: true})
		}
		h.appendBindings(group)
	}
	h.rows = append(h.rows, hotkeyRow{desc: "In windows", header: true})
	h.appendBindings([]key.Binding{keys.Dialog.Confirm, keys.Dialog.Cancel, keys.Dialog.Next, keys.Dialog.Prev, keys.Dialog.Save})

	h.keyW, h.descW = 0, 0
	for _, r := range h.rows {
		h.keyW = max(h.keyW, runewidth.StringWidth(r.keys))
		h.descW = max(h.descW, runewidth.StringWidth(r.desc))
	}
}

func (h *Hotkeys) appendBindings(bindings []key.Binding) {
	for _, b := range bindings {
		if !b.Enabled() || len(b.Keys()) == 0 {
			continue
		}
		help := b.Help()
		h.rows = append(h.rows, hotkeyRow{keys: help.Key, desc: help.Desc})
	}
}

func (h *Hotkeys) PreferredSize(maxWidth, maxHeight int) (int, int) {
	return min(h.keyW+h.descW+4, maxWidth), min(len(h.rows), maxHeight)
}

func (h *Hotkeys) Update(msg tea.Msg) tea.Cmd {
	km, ok := msg.(tea.KeyMsg)
	if !ok {
		return nil
	}
	switch {
	case key.Matches(km, keys.Dialog.Cancel), km.String() == "q", km.String() == "?":
		h.Close()
	case key.Matches(km, keys.Dialog.Next):
		h.offset = min(h.offset+1, max(len(h.rows)-1, 0))
	case key.Matches(km, keys.Dialog.Prev):
		h.offset = max(h.offset-1, 0)
	}
	return nil
}

func (h *Hotkeys) View(width, height int) string {
	h.offset = min(h.offset, max(len(h.rows)-height, 0))
	end := min(h.offset+height, len(h.rows))

	lines := make([]string, 0, end-h.offset)
	for _, r := range h.rows[h.offset:end] {
		if r.header {
			lines = append(lines, styles.LabelStyle.Render(runewidth.Truncate(r.desc, width, "…")))
			continue
		}
		line := "  " + runewidth.FillRight(r.keys, h.keyW) + "  " + r.desc
		lines = append(lines, runewidth.Truncate(line, width, "…"))
	}
	return strings.Join(lines, "\n")
}
