package views

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/glamour"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/muesli/reflow/truncate"
	"github.com/muesli/reflow/wordwrap"

	"github.com/zjrosen/gitshell/internal/desktop"
	"github.com/zjrosen/gitshell/internal/keys"
	"github.com/zjrosen/gitshell/internal/log"
)

// AboutViewModel fills in the About text.
type AboutViewModel struct {
	Version    string
	Repository string
}

const aboutTemplate = `# gitshell

A terminal shell for Git repositories.

- **Version:** %s
- **Repository:** %s

Windows open over the repository overview. Press **?** for the hotkeys,
**ctrl+w** to move between open windows and **esc** to close one.
`

// About renders project information as markdown.
type About struct {
	*desktop.Frame

	style  string
	vm     AboutViewModel
	cache  string
	cached int
	offset int
}

// NewAbout creates an unshown About window rendering with glamour style.
func NewAbout(d *desktop.Desktop, style string) *About {
	a := &About{style: style, vm: AboutViewModel{Version: "dev", Repository: "."}}
	a.Frame = desktop.NewFrame(d, a)
	return a
}

func (a *About) Title() string { return "About" }

// Bind accepts an AboutViewModel or a pointer to one.
func (a *About) Bind(viewModel any) {
	switch vm := viewModel.(type) {
	case AboutViewModel:
		a.vm = vm
	case *AboutViewModel:
		a.vm = *vm
	default:
		log.Warn(log.CatUI, "Unexpected about view-model", "type", fmt.Sprintf("%T", viewModel))
		return
	}
	a.cached = 0
}

func (a *About) PreferredSize(maxWidth, maxHeight int) (int, int) {
	return min(64, maxWidth), min(14, maxHeight)
}

func (a *About) Update(msg tea.Msg) tea.Cmd {
	km, ok := msg.(tea.KeyMsg)
	if !ok {
		return nil
	}
	switch {
	case key.Matches(km, keys.Dialog.Cancel), km.String() == "q":
		a.Close()
	case key.Matches(km, keys.Dialog.Next):
		a.offset++
	case key.Matches(km, keys.Dialog.Prev):
		a.offset = max(a.offset-1, 0)
	}
	return nil
}

func (a *About) View(width, height int) string {
	lines := strings.Split(a.render(width), "\n")
	a.offset = min(a.offset, max(len(lines)-height, 0))
	end := min(a.offset+height, len(lines))
	return strings.Join(lines[a.offset:end], "\n")
}

func (a *About) markdown() string {
	return fmt.Sprintf(aboutTemplate, a.vm.Version, a.vm.Repository)
}

func (a *About) render(width int) string {
	if a.cached == width && a.cache != "" {
		return a.cache
	}
	md := a.markdown()

	out, err := renderMarkdown(md, a.style, width)
	if err != nil {
		log.ErrorErr(log.CatUI, "Rendering markdown failed", err, "style", a.style)
		out = wordwrap.String(md, width)
	}

	lines := strings.Split(strings.Trim(out, "\n"), "\n")
	for i, line := range lines {
		lines[i] = truncate.String(line, uint(max(width, 0)))
	}
	a.cache = strings.Join(lines, "\n")
	a.cached = width
	return a.cache
}

func renderMarkdown(md, style string, width int) (string, error) {
	r, err := glamour.NewTermRenderer(
		glamour.WithStandardStyle(style),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		return "", err
	}
	return r.Render(md)
}
