// Package tui provides the BubbleTea-based terminal user interface: a
// live toast stack plus a small demo menu for raising toasts of each
// kind.
package tui

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/pmeadley/toaster/internal/clock"
	"github.com/pmeadley/toaster/internal/config"
	"github.com/pmeadley/toaster/internal/surface"
	"github.com/pmeadley/toaster/internal/theme"
)

// Mode represents the current UI mode.
type Mode int

const (
	ModeStack Mode = iota
	ModeCompose
	ModeHelp
)

// surfaceEventMsg wraps a surface event for the update loop.
type surfaceEventMsg struct {
	event surface.Event
}

// surfaceClosedMsg signals that the surface subscription ended.
type surfaceClosedMsg struct{}

// ConfigReloadedMsg carries a hot-reloaded configuration into the UI.
// Send it via Program.Send from the reload callback.
type ConfigReloadedMsg struct {
	Cfg   *config.Config
	Theme *theme.Theme
}

// Model is the main TUI model.
type Model struct {
	cfg     *config.Config
	surface *surface.Surface
	theme   *theme.Theme
	clk     *clock.Context
	logger  *slog.Logger

	mode Mode
	menu *Menu

	views  []surface.ToastView
	events <-chan surface.Event

	// Compose form
	msgInput  textinput.Model
	whenInput textinput.Model
	focusWhen bool

	help help.Model
	keys KeyMap

	width  int
	height int

	statusMsg string
	statusErr bool
}

// New creates the TUI model. The surface must already be started.
func New(cfg *config.Config, s *surface.Surface, th *theme.Theme, logger *slog.Logger) *Model {
	if logger == nil {
		logger = slog.Default()
	}

	msgInput := textinput.New()
	msgInput.Placeholder = "message, {s} for countdown"
	msgInput.CharLimit = 200
	msgInput.Width = 40

	whenInput := textinput.New()
	whenInput.Placeholder = clock.LayoutDateTime
	whenInput.CharLimit = 16
	whenInput.Width = 20

	return &Model{
		cfg:       cfg,
		surface:   s,
		theme:     th,
		clk:       clock.NewContext(),
		logger:    logger,
		menu:      &Menu{},
		events:    s.Subscribe(),
		msgInput:  msgInput,
		whenInput: whenInput,
		help:      help.New(),
		keys:      DefaultKeyMap(),
	}
}

// Init implements tea.Model.
func (m *Model) Init() tea.Cmd {
	cmds := []tea.Cmd{m.listen()}
	if m.cfg.Demo.ShowWelcome {
		cmds = append(cmds, func() tea.Msg {
			m.surface.Show("Welcome to toaster", "info", surface.Options{})
			return nil
		})
	}
	return tea.Batch(cmds...)
}

// listen waits for the next surface event.
func (m *Model) listen() tea.Cmd {
	return func() tea.Msg {
		ev, ok := <-m.events
		if !ok {
			return surfaceClosedMsg{}
		}
		return surfaceEventMsg{event: ev}
	}
}

// Update implements tea.Model.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil

	case surfaceEventMsg:
		m.views = m.surface.Snapshot()
		if msg.event.Type == surface.EventRemoved {
			m.statusMsg = fmt.Sprintf("toast %s", msg.event.Reason)
			m.statusErr = false
		}
		return m, m.listen()

	case surfaceClosedMsg:
		return m, tea.Quit

	case ConfigReloadedMsg:
		if msg.Cfg != nil {
			m.cfg = msg.Cfg
		}
		if msg.Theme != nil {
			m.theme = msg.Theme
		}
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	return m, nil
}

func (m *Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.mode == ModeCompose {
		return m.updateCompose(msg)
	}

	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.Help):
		if m.mode == ModeHelp {
			m.mode = ModeStack
		} else {
			m.mode = ModeHelp
		}
		return m, nil

	case key.Matches(msg, m.keys.Back):
		m.mode = ModeStack
		return m, nil

	case key.Matches(msg, m.keys.ToggleMenu):
		m.menu.Toggle()
		return m, nil

	case key.Matches(msg, m.keys.Info):
		m.surface.Show("For your information", "info", surface.Options{})
		return m, nil

	case key.Matches(msg, m.keys.Success):
		m.surface.Show("Saved successfully", "success", surface.Options{})
		return m, nil

	case key.Matches(msg, m.keys.Error):
		m.surface.Show("Something went wrong", "error", surface.Options{})
		return m, nil

	case key.Matches(msg, m.keys.Countdown):
		secs := m.cfg.Demo.SaveCountdownSeconds
		m.surface.Show("Saving in {s}s", "info", surface.Options{
			CountdownSeconds: float64(secs),
		})
		return m, nil

	case key.Matches(msg, m.keys.Undo):
		m.surface.Show("Item deleted", "error", surface.Options{
			Duration:    m.cfg.Demo.UndoWindow.Duration(),
			ActionLabel: "Undo",
			OnAction: func() {
				m.surface.Show("Restored", "success", surface.Options{})
			},
		})
		return m, nil

	case key.Matches(msg, m.keys.Invoke):
		if id, ok := newestActionable(m.views); ok {
			m.surface.Invoke(id)
		}
		return m, nil

	case key.Matches(msg, m.keys.Copy):
		if len(m.views) == 0 {
			return m, nil
		}
		text := m.views[len(m.views)-1].Text
		if err := copyText(text, &m.cfg.Clipboard); err != nil {
			m.statusMsg = "copy failed: " + err.Error()
			m.statusErr = true
		} else {
			m.statusMsg = "copied"
			m.statusErr = false
		}
		return m, nil

	case key.Matches(msg, m.keys.DismissAll):
		m.surface.CloseAll()
		return m, nil

	case key.Matches(msg, m.keys.Compose):
		m.openCompose()
		return m, textinput.Blink
	}

	return m, nil
}

// openCompose switches to the compose form with fresh defaults.
func (m *Model) openCompose() {
	m.mode = ModeCompose
	m.focusWhen = false

	m.msgInput.SetValue("")
	m.msgInput.Focus()
	m.whenInput.Blur()

	// Prefill the schedule field with the local now
	when := &clock.Field{Type: clock.FieldDateTime}
	m.clk.ApplyDefaults([]*clock.Field{when})
	m.whenInput.SetValue(when.Value)
}

func (m *Model) updateCompose(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.mode = ModeStack
		m.msgInput.Blur()
		m.whenInput.Blur()
		return m, nil

	case "tab", "shift+tab":
		m.focusWhen = !m.focusWhen
		if m.focusWhen {
			m.msgInput.Blur()
			m.whenInput.Focus()
		} else {
			m.whenInput.Blur()
			m.msgInput.Focus()
		}
		return m, textinput.Blink

	case "enter":
		message := strings.TrimSpace(m.msgInput.Value())
		if message == "" {
			m.statusMsg = "message is empty"
			m.statusErr = true
			return m, nil
		}
		opts := surface.Options{}
		if strings.Contains(message, "{s}") {
			opts.CountdownSeconds = float64(m.cfg.Demo.SaveCountdownSeconds)
		}
		m.surface.Show(message, "info", opts)
		m.mode = ModeStack
		m.msgInput.Blur()
		m.whenInput.Blur()
		return m, nil
	}

	var cmd tea.Cmd
	if m.focusWhen {
		m.whenInput, cmd = m.whenInput.Update(msg)
	} else {
		m.msgInput, cmd = m.msgInput.Update(msg)
	}
	return m, cmd
}

// View implements tea.Model.
func (m *Model) View() string {
	var b strings.Builder

	b.WriteString(m.headerView())
	b.WriteString("\n\n")

	switch m.mode {
	case ModeHelp:
		b.WriteString(m.help.View(m.keys))
	case ModeCompose:
		b.WriteString(m.composeView())
	default:
		b.WriteString(renderStack(m.views, m.theme, &m.cfg.Surface))
	}

	if m.statusMsg != "" {
		style := lipgloss.NewStyle().Faint(true)
		if m.statusErr {
			style = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
		}
		b.WriteString("\n\n")
		b.WriteString(style.Render(m.statusMsg))
	}

	return b.String()
}

func (m *Model) headerView() string {
	title := lipgloss.NewStyle().Bold(true).Render("toaster")
	header := m.menu.Glyph() + " " + title
	if m.menu.IsOpen() {
		header += "\n" + m.help.View(m.keys)
	}
	return header
}

func (m *Model) composeView() string {
	var b strings.Builder
	b.WriteString("New toast\n\n")
	b.WriteString("  Message   " + m.msgInput.View() + "\n")
	b.WriteString("  Remind at " + m.whenInput.View() + "\n\n")
	b.WriteString(lipgloss.NewStyle().Faint(true).Render("tab switch field · enter show · esc cancel"))
	return b.String()
}

// newestActionable returns the id of the most recent toast carrying an
// action control.
func newestActionable(views []surface.ToastView) (string, bool) {
	for i := len(views) - 1; i >= 0; i-- {
		if views[i].ActionLabel != "" {
			return views[i].ID, true
		}
	}
	return "", false
}
