// Package desktop is the terminal window system gitshell's windows live in.
//
// A Desktop owns one full-screen main window and a z-ordered stack of framed
// windows drawn over it. Modal frames capture all input until they close;
// otherwise input goes to the focused frame, and ctrl+w cycles focus. The
// Desktop implements window.Session so a window.Controller can present
// windows against it.
package desktop

import (
	"sync"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/zjrosen/gitshell/internal/keys"
	"github.com/zjrosen/gitshell/internal/log"
	"github.com/zjrosen/gitshell/internal/ui/overlay"
	"github.com/zjrosen/gitshell/internal/ui/styles"
	"github.com/zjrosen/gitshell/internal/window"
)

var cycleFocus = keys.DefaultKeyMap().CycleFocus

// Desktop hosts the main window and the frames shown over it.
type Desktop struct {
	mu     sync.Mutex
	ids    int
	main   *Frame
	stack  []*Frame
	focus  *Frame
	width  int
	height int
}

var _ window.Session = (*Desktop)(nil)

// New creates an empty desktop with no main window.
func New() *Desktop {
	return &Desktop{width: 80, height: 24}
}

func (d *Desktop) nextID() int {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.ids++
	return d.ids
}

// SetMain installs content as the shown, full-screen main window.
func (d *Desktop) SetMain(content Content) *Frame {
	f := NewFrame(d, content)
	d.mu.Lock()
	f.state = Shown
	d.main = f
	d.mu.Unlock()
	return f
}

// MainWindow implements window.Session. It returns nil when there is no main
// window or it has been closed.
func (d *Desktop) MainWindow() window.Window {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.main == nil || d.main.state != Shown {
		return nil
	}
	return d.main
}

// SetSize records the terminal size.
func (d *Desktop) SetSize(width, height int) {
	d.mu.Lock()
	d.width, d.height = width, height
	d.mu.Unlock()
}

// Size returns the terminal size.
func (d *Desktop) Size() (width, height int) {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.width, d.height
}

// Windows returns the shown frames, bottom first.
func (d *Desktop) Windows() []*Frame {
	d.mu.Lock()
	defer d.mu.Unlock()
	out := make([]*Frame, len(d.stack))
	copy(out, d.stack)
	return out
}

// ModalActive reports whether a modal frame is capturing input.
func (d *Desktop) ModalActive() bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.topModalLocked() != nil
}

// Focused returns the frame receiving input, nil when the main window has it.
func (d *Desktop) Focused() *Frame {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.targetLocked()
}

func (d *Desktop) present(f *Frame, owner *Frame) error {
	d.mu.Lock()
	defer d.mu.Unlock()

	switch f.state {
	case Shown:
		return ErrAlreadyShown
	case Closed:
		return ErrWindowClosed
	}
	if owner != nil {
		if owner.desktop != d {
			return ErrForeignOwner
		}
		if owner.state != Shown {
			return ErrOwnerNotShown
		}
	}

	f.state = Shown
	f.modal = owner != nil
	f.owner = owner
	d.stack = append(d.stack, f)
	d.focus = f

	log.Debug(log.CatDesktop, "Frame shown", "id", f.id, "title", f.content.Title(), "modal", f.modal)
	return nil
}

func (d *Desktop) detachLocked(f *Frame) {
	for i, s := range d.stack {
		if s == f {
			d.stack = append(d.stack[:i], d.stack[i+1:]...)
			break
		}
	}
	if d.main == f {
		d.main = nil
	}
	if d.focus == f {
		d.focus = nil
		if n := len(d.stack); n > 0 {
			d.focus = d.stack[n-1]
		}
	}
}

func (d *Desktop) topModalLocked() *Frame {
	for i := len(d.stack) - 1; i >= 0; i-- {
		if d.stack[i].modal {
			return d.stack[i]
		}
	}
	return nil
}

// targetLocked picks the input target: the topmost modal frame, else the
// focused frame. nil means the main window.
func (d *Desktop) targetLocked() *Frame {
	if m := d.topModalLocked(); m != nil {
		return m
	}
	return d.focus
}

// cycleLocked moves focus main -> bottom ... top -> main.
func (d *Desktop) cycleLocked() {
	if len(d.stack) == 0 {
		d.focus = nil
		return
	}
	if d.focus == nil {
		d.focus = d.stack[0]
		return
	}
	for i, s := range d.stack {
		if s == d.focus {
			if i+1 < len(d.stack) {
				d.focus = d.stack[i+1]
			} else {
				d.focus = nil
			}
			return
		}
	}
	d.focus = nil
}

// Route delivers msg to the desktop's windows. handled is false when the
// message should be processed by the main window's owner instead: input
// while the main window has focus, or messages the desktop does not route.
func (d *Desktop) Route(msg tea.Msg) (cmd tea.Cmd, handled bool) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		d.SetSize(msg.Width, msg.Height)
		return nil, false

	case tea.KeyMsg:
		d.mu.Lock()
		if key.Matches(msg, cycleFocus) && d.topModalLocked() == nil {
			d.cycleLocked()
			d.mu.Unlock()
			return nil, true
		}
		target := d.targetLocked()
		d.mu.Unlock()
		if target == nil {
			return nil, false
		}
		return target.content.Update(msg), true

	case tea.MouseMsg:
		d.mu.Lock()
		target := d.targetLocked()
		d.mu.Unlock()
		if target == nil {
			return nil, false
		}
		return target.content.Update(msg), true
	}

	// Everything else (cursor blinks, async results) goes to every shown
	// frame; each content ignores what is not addressed to it.
	var cmds []tea.Cmd
	for _, f := range d.Windows() {
		cmds = append(cmds, f.content.Update(msg))
	}
	return tea.Batch(cmds...), false
}

// View renders the main window with every shown frame composited on top.
func (d *Desktop) View() string {
	d.mu.Lock()
	width, height := d.width, d.height
	main := d.main
	target := d.targetLocked()
	stack := make([]frameSnapshot, len(d.stack))
	for i, f := range d.stack {
		stack[i] = frameSnapshot{frame: f, modal: f.modal, focused: f == target}
	}
	d.mu.Unlock()

	var view string
	if main != nil {
		view = main.content.View(width, height)
	}

	for i, snap := range stack {
		box := renderFrame(snap, width, height)
		view = overlay.Place(overlay.Config{
			Width:   width,
			Height:  height,
			OffsetX: 2 * i,
			OffsetY: i,
		}, box, view)
	}
	return view
}

type frameSnapshot struct {
	frame   *Frame
	modal   bool
	focused bool
}

func renderFrame(snap frameSnapshot, width, height int) string {
	content := snap.frame.content
	maxW := max(width-4, 10)
	maxH := max(height-4, 3)

	w, h := maxW*3/5, maxH/2
	if s, ok := content.(Sizer); ok {
		w, h = s.PreferredSize(maxW-2, maxH-2)
	}
	w = min(max(w, 8), maxW-2)
	h = min(max(h, 1), maxH-2)

	border := styles.BorderDefaultColor
	switch {
	case snap.modal:
		border = styles.BorderModalColor
	case snap.focused:
		border = styles.BorderFocusColor
	}
	return styles.RenderFrame(content.View(w, h), content.Title(), w+2, h+2, border)
}
