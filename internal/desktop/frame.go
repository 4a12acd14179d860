package desktop

import (
	"errors"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/zjrosen/gitshell/internal/log"
	"github.com/zjrosen/gitshell/internal/window"
)

// State is a frame's position in its lifecycle.
type State int

const (
	Unshown State = iota
	Shown
	Closed
)

func (s State) String() string {
	switch s {
	case Unshown:
		return "unshown"
	case Shown:
		return "shown"
	case Closed:
		return "closed"
	default:
		return "unknown"
	}
}

var (
	// ErrAlreadyShown is returned when showing a frame twice.
	ErrAlreadyShown = errors.New("window already shown")
	// ErrWindowClosed is returned when showing a closed frame.
	ErrWindowClosed = errors.New("window is closed")
	// ErrForeignOwner is returned when a modal owner is not a frame on the
	// same desktop.
	ErrForeignOwner = errors.New("owner does not belong to this desktop")
	// ErrOwnerNotShown is returned when a modal owner is not on screen.
	ErrOwnerNotShown = errors.New("owner is not shown")
)

// Content is what a frame displays and feeds input to.
type Content interface {
	Title() string
	Update(msg tea.Msg) tea.Cmd
	View(width, height int) string
}

// Binder is implemented by content that consumes a data context.
type Binder interface {
	Bind(viewModel any)
}

// Sizer is implemented by content with a preferred frame size. The returned
// size excludes the border.
type Sizer interface {
	PreferredSize(maxWidth, maxHeight int) (width, height int)
}

// Frame is the desktop's window primitive. Concrete windows embed *Frame and
// pass themselves as its Content.
type Frame struct {
	desktop *Desktop
	content Content
	id      int

	// Guarded by desktop.mu.
	state       State
	modal       bool
	owner       *Frame
	dataContext any
	hooks       []func()
}

var _ window.Window = (*Frame)(nil)

// NewFrame creates an unshown frame on d.
func NewFrame(d *Desktop, content Content) *Frame {
	return &Frame{desktop: d, content: content, id: d.nextID()}
}

// frame lets types embedding *Frame be used as modal owners.
func (f *Frame) frame() *Frame { return f }

type framer interface{ frame() *Frame }

// ID is unique per desktop.
func (f *Frame) ID() int { return f.id }

// Content returns what the frame displays.
func (f *Frame) Content() Content { return f.content }

// State returns the lifecycle state.
func (f *Frame) State() State {
	f.desktop.mu.Lock()
	defer f.desktop.mu.Unlock()
	return f.state
}

// Modal reports whether the frame was shown modally.
func (f *Frame) Modal() bool {
	f.desktop.mu.Lock()
	defer f.desktop.mu.Unlock()
	return f.modal
}

// Owner returns the modal owner, nil for modeless frames.
func (f *Frame) Owner() *Frame {
	f.desktop.mu.Lock()
	defer f.desktop.mu.Unlock()
	return f.owner
}

// DataContext returns the bound view-model.
func (f *Frame) DataContext() any {
	f.desktop.mu.Lock()
	defer f.desktop.mu.Unlock()
	return f.dataContext
}

// Show implements window.Window.
func (f *Frame) Show() error {
	return f.desktop.present(f, nil)
}

// ShowModal implements window.Window. owner must be a shown frame on the
// same desktop.
func (f *Frame) ShowModal(owner window.Window) error {
	o, ok := owner.(framer)
	if !ok || o.frame() == nil {
		return ErrForeignOwner
	}
	return f.desktop.present(f, o.frame())
}

// Close implements window.Window. Close hooks run once, in registration
// order, after the frame has left the desktop.
func (f *Frame) Close() {
	d := f.desktop
	d.mu.Lock()
	if f.state == Closed {
		d.mu.Unlock()
		return
	}
	wasShown := f.state == Shown
	f.state = Closed
	hooks := f.hooks
	f.hooks = nil
	if wasShown {
		d.detachLocked(f)
	}
	d.mu.Unlock()

	log.Debug(log.CatDesktop, "Frame closed", "id", f.id, "title", f.content.Title(), "was_shown", wasShown)
	for _, fn := range hooks {
		fn()
	}
}

// OnClosed implements window.Window. Hooks registered after the frame closed
// run immediately.
func (f *Frame) OnClosed(fn func()) {
	d := f.desktop
	d.mu.Lock()
	if f.state == Closed {
		d.mu.Unlock()
		fn()
		return
	}
	f.hooks = append(f.hooks, fn)
	d.mu.Unlock()
}

// SetDataContext implements window.Window.
func (f *Frame) SetDataContext(viewModel any) {
	f.desktop.mu.Lock()
	f.dataContext = viewModel
	f.desktop.mu.Unlock()

	if b, ok := f.content.(Binder); ok {
		b.Bind(viewModel)
	}
}
