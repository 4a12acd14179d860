package views

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	zone "github.com/lrstanley/bubblezone"
	"github.com/muesli/reflow/wordwrap"

	"github.com/zjrosen/gitshell/internal/desktop"
	"github.com/zjrosen/gitshell/internal/keys"
	"github.com/zjrosen/gitshell/internal/log"
	"github.com/zjrosen/gitshell/internal/ui/styles"
)

// ConfirmViewModel configures a confirmation dialog.
type ConfirmViewModel struct {
	Title        string
	Message      string
	ConfirmLabel string
	// Danger styles the confirm button for destructive actions.
	Danger bool
}

type confirmButton int

const (
	buttonConfirm confirmButton = iota
	buttonCancel
)

// Confirm asks a yes/no question. Its dialog result is true only when the
// confirm button was chosen.
type Confirm struct {
	*desktop.Frame

	vm        ConfirmViewModel
	focus     confirmButton
	confirmed bool
}

// NewConfirm creates an unshown Confirm window on d.
func NewConfirm(d *desktop.Desktop) *Confirm {
	c := &Confirm{vm: ConfirmViewModel{Title: "Confirm", ConfirmLabel: "Confirm"}}
	c.Frame = desktop.NewFrame(d, c)
	return c
}

func (c *Confirm) Title() string { return c.vm.Title }

// Bind accepts a ConfirmViewModel or a pointer to one.
func (c *Confirm) Bind(viewModel any) {
	switch vm := viewModel.(type) {
	case ConfirmViewModel:
		c.vm = vm
	case *ConfirmViewModel:
		c.vm = *vm
	default:
		log.Warn(log.CatUI, "Unexpected confirm view-model", "type", fmt.Sprintf("%T", viewModel))
		return
	}
	if c.vm.Title == "" {
		c.vm.Title = "Confirm"
	}
	if c.vm.ConfirmLabel == "" {
		c.vm.ConfirmLabel = "Confirm"
	}
}

// DialogResult reports whether the user confirmed.
func (c *Confirm) DialogResult() bool { return c.confirmed }

func (c *Confirm) PreferredSize(maxWidth, maxHeight int) (int, int) {
	w := min(48, maxWidth)
	lines := strings.Count(wordwrap.String(c.vm.Message, w), "\n") + 1
	return w, min(lines+3, maxHeight)
}

// ButtonZoneID returns the bubblezone id of a button, "confirm" or "cancel".
func (c *Confirm) ButtonZoneID(button string) string {
	return fmt.Sprintf("confirm-%d-%s", c.ID(), button)
}

func (c *Confirm) Update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, keys.Dialog.Cancel), msg.String() == "n":
			c.finish(false)
		case msg.String() == "y":
			c.finish(true)
		case key.Matches(msg, keys.Dialog.Confirm):
			c.finish(c.focus == buttonConfirm)
		case key.Matches(msg, keys.Dialog.Left), key.Matches(msg, keys.Dialog.Prev):
			c.focus = buttonConfirm
		case key.Matches(msg, keys.Dialog.Right), key.Matches(msg, keys.Dialog.Next):
			c.focus = buttonCancel
		}

	case tea.MouseMsg:
		if msg.Button != tea.MouseButtonLeft || msg.Action != tea.MouseActionRelease {
			return nil
		}
		if z := zone.Get(c.ButtonZoneID("confirm")); z != nil && z.InBounds(msg) {
			c.finish(true)
		} else if z := zone.Get(c.ButtonZoneID("cancel")); z != nil && z.InBounds(msg) {
			c.finish(false)
		}
	}
	return nil
}

func (c *Confirm) finish(confirmed bool) {
	c.confirmed = confirmed
	c.Close()
}

func (c *Confirm) View(width, height int) string {
	var b strings.Builder
	if c.vm.Message != "" {
		b.WriteString(styles.ValueStyle.UnsetBold().Render(wordwrap.String(c.vm.Message, width)))
		b.WriteString("\n\n")
	}

	okStyle, okFocused := styles.PrimaryButtonStyle, styles.PrimaryButtonFocusedStyle
	if c.vm.Danger {
		okStyle, okFocused = styles.DangerButtonStyle, styles.DangerButtonFocusedStyle
	}
	cancelStyle := styles.SecondaryButtonStyle
	if c.focus == buttonConfirm {
		okStyle = okFocused
	} else {
		cancelStyle = styles.SecondaryButtonFocusedStyle
	}

	ok := zone.Mark(c.ButtonZoneID("confirm"), okStyle.Render(c.vm.ConfirmLabel))
	cancel := zone.Mark(c.ButtonZoneID("cancel"), cancelStyle.Render("Cancel"))
	b.WriteString(ok + "  " + cancel)
	return b.String()
}
