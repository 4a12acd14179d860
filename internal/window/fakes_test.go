package window

import (
	"sync"
)

// fakeWindow records what the controller asked of it.
type fakeWindow struct {
	mu      sync.Mutex
	kind    string
	shown   bool
	modal   bool
	owner   Window
	closed  bool
	context any
	hooks   []func()
	showErr error
}

func (w *fakeWindow) Show() error {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.showErr != nil {
		return w.showErr
	}
	w.shown = true
	return nil
}

func (w *fakeWindow) ShowModal(owner Window) error {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.showErr != nil {
		return w.showErr
	}
	w.shown = true
	w.modal = true
	w.owner = owner
	return nil
}

func (w *fakeWindow) Close() {
	w.mu.Lock()
	if w.closed {
		w.mu.Unlock()
		return
	}
	w.closed = true
	hooks := w.hooks
	w.mu.Unlock()
	for _, fn := range hooks {
		fn()
	}
}

// closeAgain runs the hooks a second time, like a toolkit that reports the
// close event twice.
func (w *fakeWindow) closeAgain() {
	for _, fn := range w.hooks {
		fn()
	}
}

func (w *fakeWindow) OnClosed(fn func()) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.hooks = append(w.hooks, fn)
}

func (w *fakeWindow) SetDataContext(v any) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.context = v
}

func (w *fakeWindow) isClosed() bool {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.closed
}

// branchDialog produces a string result.
type branchDialog struct {
	*fakeWindow
	name string
}

func (d *branchDialog) DialogResult() string { return d.name }

// workshop builds a registry whose constructors remember every instance.
type workshop struct {
	mu      sync.Mutex
	windows []*fakeWindow
	dialogs []*branchDialog
	showErr error
}

func (ws *workshop) newWindow(kind string) func() any {
	return func() any {
		ws.mu.Lock()
		defer ws.mu.Unlock()
		w := &fakeWindow{kind: kind, showErr: ws.showErr}
		ws.windows = append(ws.windows, w)
		return w
	}
}

func (ws *workshop) newDialog() any {
	ws.mu.Lock()
	defer ws.mu.Unlock()
	d := &branchDialog{fakeWindow: &fakeWindow{kind: "CreateBranch", showErr: ws.showErr}}
	ws.dialogs = append(ws.dialogs, d)
	return d
}

func (ws *workshop) last() *fakeWindow {
	ws.mu.Lock()
	defer ws.mu.Unlock()
	return ws.windows[len(ws.windows)-1]
}

func (ws *workshop) lastDialog() *branchDialog {
	ws.mu.Lock()
	defer ws.mu.Unlock()
	return ws.dialogs[len(ws.dialogs)-1]
}

var testKeys = []string{"Preferences", "About", "Hotkeys"}

func (ws *workshop) registry() *Registry {
	entries := make([]Entry, 0, len(testKeys)+2)
	for _, k := range testKeys {
		entries = append(entries, Entry{Key: k, Kind: Kind{New: ws.newWindow(k)}})
	}
	entries = append(entries,
		Entry{Key: "CreateBranch", Kind: Kind{New: ws.newDialog}},
		Entry{Key: "Broken", Kind: Kind{New: func() any { return "not a window" }}},
	)
	return MustRegistry(DefaultNamespace, entries...)
}

type fixture struct {
	ws         *workshop
	main       *fakeWindow
	cache      *Cache
	controller *Controller
}

func newFixture(withMain bool, fallbacks ...KindResolver) *fixture {
	f := &fixture{ws: &workshop{}, cache: NewCache()}
	if withMain {
		f.main = &fakeWindow{kind: "Main", shown: true}
	}
	session := SessionFunc(func() Window {
		if f.main == nil {
			return nil
		}
		return f.main
	})
	f.controller = NewController(NewFactory(f.ws.registry(), fallbacks...), session, WithCache(f.cache))
	return f
}
