// Package window manages the lifecycle of application windows and dialogs.
//
// Callers name windows by a logical key ("Preferences", "About"). A Registry
// maps keys to constructible Kinds, a Factory materializes and binds them, and
// a Controller presents them against the session's main window. Plain windows
// are tracked in a Cache so they can be closed by key later; dialogs are
// tracked only by the Future their caller awaits.
package window

// Window is the toolkit primitive the controller drives.
type Window interface {
	// Show presents the window without an owner.
	Show() error
	// ShowModal presents the window attached to owner, blocking input to it
	// until this window closes.
	ShowModal(owner Window) error
	// Close closes the window. Closing twice is a no-op.
	Close()
	// OnClosed registers fn to run once the window has closed.
	OnClosed(fn func())
	// SetDataContext binds a view-model to the window.
	SetDataContext(viewModel any)
}

// Session exposes the application's current main window.
type Session interface {
	// MainWindow returns nil when no main window exists.
	MainWindow() Window
}

// SessionFunc adapts a function to Session.
type SessionFunc func() Window

// MainWindow implements Session.
func (f SessionFunc) MainWindow() Window { return f() }

// ResultProvider is implemented by windows that produce a typed result.
// The value is read after the window closes.
type ResultProvider[R any] interface {
	DialogResult() R
}
