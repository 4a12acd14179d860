package views

import (
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/zjrosen/gitshell/internal/desktop"
	"github.com/zjrosen/gitshell/internal/keys"
	"github.com/zjrosen/gitshell/internal/log"
	"github.com/zjrosen/gitshell/internal/ui/styles"
)

// ErrEmptyValue is shown when a prompt is submitted blank.
var ErrEmptyValue = errors.New("a value is required")

// PromptViewModel configures a single-line text prompt.
type PromptViewModel struct {
	Title       string
	Label       string
	Placeholder string
	Value       string
	MaxLength   int
	// Validate rejects a trimmed, non-empty value with a message shown
	// under the input.
	Validate func(string) error
}

// Prompt reads one line of text. Its dialog result is the submitted text,
// empty when cancelled.
type Prompt struct {
	*desktop.Frame

	vm     PromptViewModel
	input  textinput.Model
	result string
	err    error
}

// NewPrompt creates an unshown Prompt window on d.
func NewPrompt(d *desktop.Desktop) *Prompt {
	ti := textinput.New()
	ti.Prompt = ""
	ti.Focus()

	p := &Prompt{vm: PromptViewModel{Title: "Input"}, input: ti}
	p.Frame = desktop.NewFrame(d, p)
	return p
}

func (p *Prompt) Title() string { return p.vm.Title }

// Bind accepts a PromptViewModel or a pointer to one.
func (p *Prompt) Bind(viewModel any) {
	switch vm := viewModel.(type) {
	case PromptViewModel:
		p.vm = vm
	case *PromptViewModel:
		p.vm = *vm
	default:
		log.Warn(log.CatUI, "Unexpected prompt view-model", "type", fmt.Sprintf("%T", viewModel))
		return
	}
	if p.vm.Title == "" {
		p.vm.Title = "Input"
	}
	p.input.Placeholder = p.vm.Placeholder
	p.input.CharLimit = p.vm.MaxLength
	p.input.SetValue(p.vm.Value)
}

// DialogResult returns the submitted text.
func (p *Prompt) DialogResult() string { return p.result }

// Err returns the last validation failure.
func (p *Prompt) Err() error { return p.err }

func (p *Prompt) PreferredSize(maxWidth, maxHeight int) (int, int) {
	return min(48, maxWidth), min(5, maxHeight)
}

func (p *Prompt) Update(msg tea.Msg) tea.Cmd {
	if km, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(km, keys.Dialog.Cancel):
			p.result = ""
			p.Close()
			return nil
		case key.Matches(km, keys.Dialog.Confirm):
			p.submit()
			return nil
		}
	}

	var cmd tea.Cmd
	p.input, cmd = p.input.Update(msg)
	return cmd
}

func (p *Prompt) submit() {
	value := strings.TrimSpace(p.input.Value())
	if value == "" {
		p.err = ErrEmptyValue
		return
	}
	if p.vm.Validate != nil {
		if err := p.vm.Validate(value); err != nil {
			p.err = err
			return
		}
	}
	p.err = nil
	p.result = value
	p.Close()
}

func (p *Prompt) View(width, height int) string {
	p.input.Width = max(width-1, 1)

	var b strings.Builder
	if p.vm.Label != "" {
		b.WriteString(styles.LabelStyle.Render(p.vm.Label))
		b.WriteString("\n")
	}
	b.WriteString(p.input.View())
	b.WriteString("\n\n")
	if p.err != nil {
		b.WriteString(styles.ErrorStyle.Render(p.err.Error()))
	} else {
		b.WriteString(styles.HintStyle.Render("enter submit · esc cancel"))
	}
	return b.String()
}
