// Package app contains the root application model.
package app

import (
	"context"
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/zjrosen/quill/internal/config"
	"github.com/zjrosen/quill/internal/editor"
	"github.com/zjrosen/quill/internal/keys"
	"github.com/zjrosen/quill/internal/log"
	"github.com/zjrosen/quill/internal/pubsub"
	"github.com/zjrosen/quill/internal/ui/editorview"
	"github.com/zjrosen/quill/internal/ui/logoverlay"
	"github.com/zjrosen/quill/internal/ui/styles"
	"github.com/zjrosen/quill/internal/ui/toaster"
	"github.com/zjrosen/quill/internal/watcher"
)

// Options configures a new Model.
type Options struct {
	Config config.Config

	// ConfigPath is watched for changes when WatchConfig is set.
	ConfigPath  string
	WatchConfig bool

	// Lines seeds the buffer. Nothing is read from or written to disk.
	Lines []string

	// Debug enables the log overlay (Ctrl+X toggle).
	Debug bool
}

// Model is the root application state.
type Model struct {
	session *editor.Session
	view    *editorview.Model
	keys    keys.KeyMap
	cfg     config.Config

	width  int
	height int

	// Reload notifications
	toaster toaster.Model

	debugMode   bool
	logOverlay  logoverlay.Model
	logListener *log.LogListener

	// Config hot reload (pubsub-based)
	reloader       *watcher.Reloader
	ctx            context.Context
	cancel         context.CancelFunc
	configListener *pubsub.ContinuousListener[config.Config]

	quitting bool
}

// New creates the application model.
func New(opts Options) Model {
	ctx, cancel := context.WithCancel(context.Background())

	km := keys.DefaultKeyMap()
	km.ToggleLog.SetEnabled(opts.Debug)

	view := editorview.New(viewOptions(opts.Config.UI), km)

	session := editor.New(editor.Config{
		Lines: opts.Lines,
		OnModeChange: func(mode, previous editor.Mode) {
			log.Info(log.CatEditor, "Mode changed", "from", previous, "to", mode)
		},
	})
	log.Info(log.CatEditor, "Session started", "session", session.ID(), "lines", session.View().LineCount)

	m := Model{
		session:    session,
		view:       &view,
		keys:       km,
		cfg:        opts.Config,
		debugMode:  opts.Debug,
		logOverlay: logoverlay.New(),
		ctx:        ctx,
		cancel:     cancel,
	}

	if opts.Debug {
		m.logListener = log.NewListener(ctx)
	}

	if opts.WatchConfig && opts.ConfigPath != "" {
		r, err := watcher.NewReloader(opts.ConfigPath, watcher.DefaultConfig(opts.ConfigPath).DebounceDur)
		if err == nil {
			err = r.Start(ctx)
			if err == nil {
				m.reloader = r
				m.configListener = pubsub.NewContinuousListener[config.Config](ctx, r)
			} else {
				_ = r.Stop()
			}
		}
		// The editor works fine without hot reload.
		if err != nil {
			log.Warn(log.CatWatcher, "Config watching disabled", "path", opts.ConfigPath, "error", err)
		}
	}

	return m
}

func viewOptions(ui config.UIConfig) editorview.Options {
	return editorview.Options{
		ShowLineNumbers: ui.ShowLineNumbers,
		ShowStatusBar:   ui.ShowStatusBar,
		ShowHelp:        ui.ShowHelp,
		FileName:        ui.FileName,
	}
}

// Session returns the editor session driven by this model.
func (m Model) Session() *editor.Session {
	return m.session
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	var cmds []tea.Cmd
	if m.logListener != nil {
		cmds = append(cmds, m.logListener.Listen())
	}
	if m.configListener != nil {
		cmds = append(cmds, m.configListener.Listen())
	}
	return tea.Batch(cmds...)
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.view.SetSize(msg.Width, msg.Height)
		m.logOverlay.SetSize(msg.Width, msg.Height)
		log.Debug(log.CatUI, "Window resized", "width", msg.Width, "height", msg.Height)
		return m, nil

	case log.LogEvent:
		if m.logOverlay.Visible() {
			m.logOverlay.Refresh()
		}
		return m, m.logListener.Listen()

	case watcher.ConfigEvent:
		cmd := m.handleConfigEvent(msg)
		return m, tea.Batch(cmd, m.configListener.Listen())

	case toaster.DismissMsg:
		m.toaster = m.toaster.Update(msg)
		return m, nil

	case logoverlay.CloseMsg:
		m.logOverlay.Hide()
		return m, nil

	case tea.KeyMsg:
		if m.debugMode && key.Matches(msg, m.keys.ToggleLog) {
			m.logOverlay.Toggle()
			return m, nil
		}

		// The log overlay takes all keys while it is open
		if m.logOverlay.Visible() {
			var cmd tea.Cmd
			m.logOverlay, cmd = m.logOverlay.Update(msg)
			return m, cmd
		}

		return m.handleKey(msg)
	}

	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	for _, ev := range KeyEventsFromMsg(msg) {
		log.Debug(log.CatKeys, "Key", "msg", msg.String(), "event", ev.String())
		if m.session.HandleKey(ev) == editor.Quit {
			log.Info(log.CatEditor, "Quit requested", "session", m.session.ID())
			m.quitting = true
			return m, tea.Quit
		}
	}
	return m, nil
}

func (m *Model) handleConfigEvent(ev watcher.ConfigEvent) tea.Cmd {
	var cmd tea.Cmd
	if ev.Type == pubsub.ConfigFailed {
		log.Warn(log.CatConfig, "Keeping previous config", "error", ev.Err)
		m.toaster, cmd = m.toaster.Show("Config error, keeping previous settings", toaster.StyleError, toaster.DefaultDuration)
		return cmd
	}
	if err := m.applyConfig(ev.Payload); err != nil {
		log.ErrorErr(log.CatConfig, "Failed to apply reloaded config", err)
		m.toaster, cmd = m.toaster.Show(err.Error(), toaster.StyleError, toaster.DefaultDuration)
		return cmd
	}
	log.Info(log.CatConfig, "Applied reloaded config", "preset", ev.Payload.Theme.Preset)
	m.toaster, cmd = m.toaster.Show("Config reloaded", toaster.StyleInfo, toaster.DefaultDuration)
	return cmd
}

// applyConfig re-applies theme and display options. The previous theme stays
// in place when the new one is rejected.
func (m *Model) applyConfig(cfg config.Config) error {
	err := styles.ApplyTheme(styles.ThemeConfig{
		Preset: cfg.Theme.Preset,
		Mode:   cfg.Theme.Mode,
		Colors: cfg.Theme.FlattenedColors(),
	})
	if err != nil {
		return fmt.Errorf("applying theme: %w", err)
	}

	m.cfg = cfg
	m.view.SetOptions(viewOptions(cfg.UI))
	m.view.RefreshStyles()
	return nil
}

// View implements tea.Model.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	view := m.view.Render(m.session.View()).Content

	if m.toaster.Visible() {
		view = m.toaster.Overlay(view, m.width, m.height)
	}

	if m.debugMode && m.logOverlay.Visible() {
		view = m.logOverlay.Overlay(view)
	}
	return view
}

// Close releases resources held by the application.
func (m *Model) Close() error {
	m.cancel()
	if m.reloader != nil {
		if err := m.reloader.Stop(); err != nil {
			return fmt.Errorf("stopping config watcher: %w", err)
		}
		m.reloader = nil
	}
	return nil
}
