package views

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/zjrosen/gitshell/internal/config"
	"github.com/zjrosen/gitshell/internal/desktop"
	"github.com/zjrosen/gitshell/internal/keys"
	"github.com/zjrosen/gitshell/internal/log"
	"github.com/zjrosen/gitshell/internal/ui/styles"
)

// PreferencesViewModel carries the settings being edited. Saving writes the
// edited settings back into UI.
type PreferencesViewModel struct {
	UI config.UIConfig
}

type prefField int

const (
	prefStatusBar prefField = iota
	prefConfirmQuit
	prefMarkdownStyle
	prefSave
	prefCancel
	prefFieldCount
)

// Preferences edits the UI settings. Its dialog result reports whether the
// settings were saved.
type Preferences struct {
	*desktop.Frame

	configPath string
	vm         *PreferencesViewModel
	draft      config.UIConfig
	focus      prefField
	saved      bool
	err        error
}

// NewPreferences creates an unshown Preferences window on d.
func NewPreferences(d *desktop.Desktop, configPath string) *Preferences {
	p := &Preferences{configPath: configPath, draft: config.Defaults().UI}
	p.Frame = desktop.NewFrame(d, p)
	return p
}

func (p *Preferences) Title() string { return "Preferences" }

// Bind accepts a *PreferencesViewModel.
func (p *Preferences) Bind(viewModel any) {
	vm, ok := viewModel.(*PreferencesViewModel)
	if !ok {
		log.Warn(log.CatUI, "Unexpected preferences view-model", "type", fmt.Sprintf("%T", viewModel))
		return
	}
	p.vm = vm
	p.draft = vm.UI
}

// DialogResult reports whether the settings were saved.
func (p *Preferences) DialogResult() bool { return p.saved }

// Draft returns the settings as currently edited.
func (p *Preferences) Draft() config.UIConfig { return p.draft }

func (p *Preferences) PreferredSize(maxWidth, maxHeight int) (int, int) {
	return min(46, maxWidth), min(10, maxHeight)
}

func (p *Preferences) Update(msg tea.Msg) tea.Cmd {
	km, ok := msg.(tea.KeyMsg)
	if !ok {
		return nil
	}
	switch {
	case key.Matches(km, keys.Dialog.Cancel):
		p.Close()
	case key.Matches(km, keys.Dialog.Save):
		p.save()
	case key.Matches(km, keys.Dialog.Next):
		p.focus = (p.focus + 1) % prefFieldCount
	case key.Matches(km, keys.Dialog.Prev):
		p.focus = (p.focus + prefFieldCount - 1) % prefFieldCount
	case key.Matches(km, keys.Dialog.Toggle), key.Matches(km, keys.Dialog.Confirm):
		p.activate()
	}
	return nil
}

func (p *Preferences) activate() {
	switch p.focus {
	case prefStatusBar:
		p.draft.ShowStatusBar = !p.draft.ShowStatusBar
	case prefConfirmQuit:
		p.draft.ConfirmQuit = !p.draft.ConfirmQuit
	case prefMarkdownStyle:
		if p.draft.MarkdownStyle == "light" {
			p.draft.MarkdownStyle = "dark"
		} else {
			p.draft.MarkdownStyle = "light"
		}
	case prefSave:
		p.save()
	case prefCancel:
		p.Close()
	}
}

func (p *Preferences) save() {
	if p.configPath != "" {
		if err := config.SaveUI(p.configPath, p.draft); err != nil {
			log.ErrorErr(log.CatConfig, "Saving preferences failed", err, "path", p.configPath)
			p.err = err
			return
		}
		log.Info(log.CatConfig, "Saved preferences", "path", p.configPath)
	}
	if p.vm != nil {
		p.vm.UI = p.draft
	}
	p.saved = true
	p.Close()
}

func (p *Preferences) View(width, height int) string {
	var b strings.Builder
	b.WriteString(p.row(prefStatusBar, checkbox(p.draft.ShowStatusBar)+" Show status bar"))
	b.WriteString("\n")
	b.WriteString(p.row(prefConfirmQuit, checkbox(p.draft.ConfirmQuit)+" Confirm before quitting"))
	b.WriteString("\n")
	style := p.draft.MarkdownStyle
	if style == "" {
		style = "dark"
	}
	b.WriteString(p.row(prefMarkdownStyle, styles.LabelStyle.Render("Markdown style: ")+styles.ValueStyle.Render(style)))
	b.WriteString("\n\n")

	save, cancel := styles.PrimaryButtonStyle, styles.SecondaryButtonStyle
	if p.focus == prefSave {
		save = styles.PrimaryButtonFocusedStyle
	}
	if p.focus == prefCancel {
		cancel = styles.SecondaryButtonFocusedStyle
	}
	b.WriteString("  " + save.Render("Save") + "  " + cancel.Render("Cancel"))
	b.WriteString("\n\n")

	if p.err != nil {
		b.WriteString(styles.ErrorStyle.Render("save failed: " + p.err.Error()))
	} else {
		b.WriteString(styles.HintStyle.Render("space toggle · ctrl+s save · esc cancel"))
	}
	return b.String()
}

func (p *Preferences) row(field prefField, text string) string {
	if p.focus == field {
		return styles.SelectedStyle.Render("> ") + text
	}
	return "  " + text
}

func checkbox(on bool) string {
	if on {
		return "[x]"
	}
	return "[ ]"
}
