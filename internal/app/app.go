// Package app contains the root application model.
package app

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/google/uuid"
	zone "github.com/lrstanley/bubblezone"
	"go.opentelemetry.io/otel/trace"

	"github.com/zjrosen/gitshell/internal/config"
	"github.com/zjrosen/gitshell/internal/desktop"
	"github.com/zjrosen/gitshell/internal/flags"
	"github.com/zjrosen/gitshell/internal/keys"
	"github.com/zjrosen/gitshell/internal/log"
	"github.com/zjrosen/gitshell/internal/pubsub"
	"github.com/zjrosen/gitshell/internal/ui/toaster"
	"github.com/zjrosen/gitshell/internal/views"
	"github.com/zjrosen/gitshell/internal/window"
)

// Options configures a new Model.
type Options struct {
	Config     config.Config
	ConfigPath string
	WorkDir    string
	Version    string
	// Open lists extra window keys shown at startup after windows.startup.
	Open []string
	// Debug enables the Log window (ctrl+x).
	Debug  bool
	Tracer trace.Tracer
}

// startupMsg asks Update to open the startup windows.
type startupMsg struct{}

// ConfigChangedMsg carries a configuration reloaded from disk. Only the UI
// section is applied; the registry is fixed at startup.
type ConfigChangedMsg struct {
	Config config.Config
}

// Model is the root application state.
type Model struct {
	ctx    context.Context
	cancel context.CancelFunc

	cfg        *config.Config
	configPath string
	version    string
	workDir    string
	debug      bool
	startup    []string

	desk  *desktop.Desktop
	ctrl  *window.Controller
	main  *overview
	keys  keys.KeyMap
	flags *flags.Registry

	events   *pubsub.ContinuousListener[window.Event]
	logs     *log.LogListener
	logLines *[]string
	prefs    *views.PreferencesViewModel
	prefsID  uuid.UUID

	toaster toaster.Model
}

// New builds the desktop, registers the windows and wires the controller.
func New(opts Options) (Model, error) {
	cfg := opts.Config
	km := keys.DefaultKeyMap()

	desk := desktop.New()
	reg, err := views.Register(desk, cfg.Windows.Namespace, views.Deps{
		ConfigPath:    opts.ConfigPath,
		KeyMap:        km,
		MarkdownStyle: func() string { return cfg.UI.MarkdownStyle },
	})
	if err != nil {
		return Model{}, fmt.Errorf("registering windows: %w", err)
	}

	factory := window.NewFactory(reg, window.NewAliasResolver(reg, cfg.Windows.AliasMap()))
	var ctrlOpts []window.Option
	if opts.Tracer != nil {
		ctrlOpts = append(ctrlOpts, window.WithTracer(opts.Tracer))
	}
	ctrl := window.NewController(factory, desk, ctrlOpts...)

	main := &overview{
		cfg:     &cfg,
		cache:   ctrl.Cache(),
		workDir: opts.WorkDir,
		version: opts.Version,
	}
	desk.SetMain(main)

	ctx, cancel := context.WithCancel(context.Background())
	m := Model{
		ctx:        ctx,
		cancel:     cancel,
		cfg:        &cfg,
		configPath: opts.ConfigPath,
		version:    opts.Version,
		workDir:    opts.WorkDir,
		debug:      opts.Debug,
		startup:    append(append([]string{}, cfg.Windows.Startup...), opts.Open...),
		desk:       desk,
		ctrl:       ctrl,
		main:       main,
		keys:       km,
		flags:      flags.New(cfg.Flags),
		events:     pubsub.NewContinuousListener[window.Event](ctx, ctrl.Events()),
		logLines:   new([]string),
		toaster:    toaster.New(),
	}
	if opts.Debug {
		m.logs = log.NewListener(ctx)
	}
	return m, nil
}

// Controller returns the window controller.
func (m Model) Controller() *window.Controller { return m.ctrl }

// Desktop returns the desktop hosting the windows.
func (m Model) Desktop() *desktop.Desktop { return m.desk }

// Config returns the live configuration.
func (m Model) Config() config.Config { return *m.cfg }

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	cmds := []tea.Cmd{m.events.Listen()}
	if m.logs != nil {
		cmds = append(cmds, m.logs.Listen())
	}
	if len(m.startup) > 0 {
		cmds = append(cmds, func() tea.Msg { return startupMsg{} })
	}
	return tea.Batch(cmds...)
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case startupMsg:
		var cmds []tea.Cmd
		for _, k := range m.startup {
			m = m.prepare(k)
			cmds = append(cmds, m.showWindow(k, false))
			m = m.trackPrefs(k)
		}
		return m, tea.Batch(cmds...)

	case pubsub.Event[window.Event]:
		var cmd tea.Cmd
		m, cmd = m.handleWindowEvent(msg)
		return m, tea.Batch(cmd, m.events.Listen())

	case log.LogEvent:
		*m.logLines = append(*m.logLines, msg.Payload)
		if over := len(*m.logLines) - views.MaxLogLines; over > 0 {
			*m.logLines = (*m.logLines)[over:]
		}
		cmd, _ := m.desk.Route(msg)
		if m.logs != nil {
			cmd = tea.Batch(cmd, m.logs.Listen())
		}
		return m, cmd

	case ConfigChangedMsg:
		if msg.Config.UI == m.cfg.UI {
			return m, nil
		}
		m.cfg.UI = msg.Config.UI
		log.Info(log.CatConfig, "Applied reloaded UI settings", "status_bar", m.cfg.UI.ShowStatusBar, "confirm_quit", m.cfg.UI.ConfirmQuit)
		return m, m.notify("Configuration reloaded", toaster.StyleInfo)

	case toastMsg:
		var cmd tea.Cmd
		m.toaster, cmd = m.toaster.Notify(msg.text, msg.style)
		return m, cmd

	case desktop.DialogResultMsg[bool]:
		return m.handleConfirmResult(msg)

	case desktop.DialogResultMsg[string]:
		return m.handlePromptResult(msg)

	case toaster.DismissMsg:
		m.toaster = m.toaster.Update(msg)
		return m, nil
	}

	cmd, handled := m.desk.Route(msg)
	if handled {
		return m, cmd
	}
	if km, ok := msg.(tea.KeyMsg); ok {
		var keyCmd tea.Cmd
		m, keyCmd = m.handleKey(km)
		return m, tea.Batch(cmd, keyCmd)
	}
	return m, cmd
}

func (m Model) handleKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		if !m.cfg.UI.ConfirmQuit {
			return m, tea.Quit
		}
		return m, desktop.ShowDialog[bool](m.ctx, m.ctrl, views.KeyConfirm, views.ConfirmViewModel{
			Title:        "Quit",
			Message:      "Quit gitshell?",
			ConfirmLabel: "Quit",
			Danger:       true,
		})

	case key.Matches(msg, m.keys.Preferences):
		m = m.prepare(views.KeyPreferences)
		cmd := m.showWindow(views.KeyPreferences, false)
		return m.trackPrefs(views.KeyPreferences), cmd

	case key.Matches(msg, m.keys.ClosePreferences):
		m.ctrl.CloseWindow(m.ctx, views.KeyPreferences)
		return m, nil

	case key.Matches(msg, m.keys.About):
		return m, m.showWindow(views.KeyAbout, false)

	case key.Matches(msg, m.keys.Hotkeys):
		return m, m.showWindow(views.KeyHotkeys, m.flags.Enabled(flags.FlagModalHotkeys))

	case key.Matches(msg, m.keys.CreateBranch):
		return m, desktop.ShowDialog[string](m.ctx, m.ctrl, views.KeyPrompt, views.PromptViewModel{
			Title:       "Create branch",
			Label:       "Branch name",
			Placeholder: "feature/...",
			MaxLength:   100,
			Validate:    ValidateBranchName,
		})

	case key.Matches(msg, m.keys.ToggleStatus):
		m.cfg.UI.ShowStatusBar = !m.cfg.UI.ShowStatusBar
		return m, nil

	case m.debug && key.Matches(msg, m.keys.Log):
		name := m.ctrl.Factory().QualifiedName(views.KeyLog)
		if _, open := m.ctrl.Cache().Get(name); open {
			m.ctrl.CloseWindow(m.ctx, views.KeyLog)
			return m, nil
		}
		return m, m.showWindow(views.KeyLog, false)
	}
	return m, nil
}

// prepare creates the state a window edits before it is shown.
func (m Model) prepare(k string) Model {
	if strings.EqualFold(k, views.KeyPreferences) {
		m.prefs = &views.PreferencesViewModel{UI: m.cfg.UI}
	}
	return m
}

// trackPrefs remembers the Preferences handle bound to m.prefs so that only
// its closure applies the draft.
func (m Model) trackPrefs(k string) Model {
	if !strings.EqualFold(k, views.KeyPreferences) {
		return m
	}
	if h, ok := m.ctrl.Cache().Get(m.ctrl.Factory().QualifiedName(k)); ok {
		m.prefsID = h.ID
	}
	return m
}

// showWindow shows key with the view-model the application keeps for it.
func (m Model) showWindow(k string, modal bool) tea.Cmd {
	err := m.ctrl.ShowWindow(m.ctx, k, m.viewModelFor(k), modal)
	if err == nil {
		return nil
	}
	var perr *window.PresentationError
	if errors.As(err, &perr) {
		return m.notify(fmt.Sprintf("Could not open %s: %v", k, perr.Err), toaster.StyleError)
	}
	return m.notify(err.Error(), toaster.StyleError)
}

func (m Model) viewModelFor(k string) any {
	switch strings.ToLower(k) {
	case strings.ToLower(views.KeyAbout):
		return views.AboutViewModel{Version: m.version, Repository: m.workDir}
	case strings.ToLower(views.KeyPreferences):
		if m.prefs == nil {
			return &views.PreferencesViewModel{UI: m.cfg.UI}
		}
		return m.prefs
	case strings.ToLower(views.KeyHotkeys):
		return m.keys
	case strings.ToLower(views.KeyLog):
		return views.LogViewModel{Lines: *m.logLines}
	}
	return nil
}

// handleWindowEvent records the event for the status bar and applies saved
// preferences once the Preferences window closes.
func (m Model) handleWindowEvent(ev pubsub.Event[window.Event]) (Model, tea.Cmd) {
	m.main.lastSeen = fmt.Sprintf("%s %s", ev.Type, ev.Payload.Name)
	log.Debug(log.CatUI, "Window event", "type", ev.Type, "name", ev.Payload.Name, "dialog", ev.Payload.Dialog)

	if ev.Type != pubsub.ClosedEvent || ev.Payload.Dialog || m.prefs == nil {
		return m, nil
	}
	if ev.Payload.ID != m.prefsID {
		return m, nil
	}
	saved := m.prefs.UI != m.cfg.UI
	if saved {
		m.cfg.UI = m.prefs.UI
		log.Info(log.CatConfig, "Applied preferences", "status_bar", m.cfg.UI.ShowStatusBar, "confirm_quit", m.cfg.UI.ConfirmQuit)
	}
	m.prefs = nil
	m.prefsID = uuid.Nil
	if !saved {
		return m, nil
	}
	var cmd tea.Cmd
	m.toaster, cmd = m.toaster.Notify("Preferences saved", toaster.StyleSuccess)
	return m, cmd
}

func (m Model) handleConfirmResult(msg desktop.DialogResultMsg[bool]) (tea.Model, tea.Cmd) {
	if msg.Err != nil {
		return m, m.notify("Dialog failed: "+msg.Err.Error(), toaster.StyleError)
	}
	if msg.Key == views.KeyConfirm && msg.Value {
		return m, tea.Quit
	}
	return m, nil
}

func (m Model) handlePromptResult(msg desktop.DialogResultMsg[string]) (tea.Model, tea.Cmd) {
	if msg.Err != nil {
		return m, m.notify("Dialog failed: "+msg.Err.Error(), toaster.StyleError)
	}
	if msg.Value == "" {
		return m, m.notify("Branch creation cancelled", toaster.StyleInfo)
	}
	m.main.branches = append(m.main.branches, msg.Value)
	return m, m.notify("Requested branch "+msg.Value, toaster.StyleSuccess)
}

// notify returns a command delivering a toast back through Update.
func (m Model) notify(text string, style toaster.Style) tea.Cmd {
	return func() tea.Msg { return toastMsg{text: text, style: style} }
}

type toastMsg struct {
	text  string
	style toaster.Style
}

// View implements tea.Model.
func (m Model) View() string {
	view := m.desk.View()
	if m.toaster.Visible() {
		w, h := m.desk.Size()
		view = m.toaster.Overlay(view, w, h)
	}
	return zone.Scan(view)
}

// Close releases the listeners and the controller.
func (m *Model) Close() error {
	m.cancel()
	m.ctrl.Close()
	return nil
}
