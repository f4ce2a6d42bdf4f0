package main

import (
	"context"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/construction-cli/buildterm/internal/logger"
	"github.com/construction-cli/buildterm/internal/repl"
	"github.com/construction-cli/buildterm/internal/ui"
)

type keyMap struct {
	Submit      key.Binding
	Erase       key.Binding
	Older       key.Binding
	Newer       key.Binding
	ScrollUp    key.Binding
	ScrollDown  key.Binding
	ClearScreen key.Binding
	Quit        key.Binding
}

var keys = keyMap{
	Submit:      key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "run")),
	Erase:       key.NewBinding(key.WithKeys("backspace", "ctrl+h")),
	Older:       key.NewBinding(key.WithKeys("up"), key.WithHelp("↑/↓", "history")),
	Newer:       key.NewBinding(key.WithKeys("down")),
	ScrollUp:    key.NewBinding(key.WithKeys("pgup"), key.WithHelp("pgup/pgdn", "scroll")),
	ScrollDown:  key.NewBinding(key.WithKeys("pgdown")),
	ClearScreen: key.NewBinding(key.WithKeys("ctrl+l"), key.WithHelp("ctrl+l", "clear")),
	Quit:        key.NewBinding(key.WithKeys("ctrl+c"), key.WithHelp("ctrl+c", "quit")),
}

// messages
type exitTickMsg struct {
	token int
}

type recordedMsg struct {
	command string
	err     error
}

type model struct {
	state     repl.State
	resolver  repl.Resolver
	recorder  repl.HistoryRecorder
	sessionID string
	log       *log.Logger

	// commands waiting for the resolver; one is in flight at a time so
	// responses land in submission order
	queue    []string
	inFlight bool

	exitToken int
	quitting  bool

	viewport viewport.Model
	ready    bool
	width    int
	height   int
}

func initialModel(state repl.State, resolver repl.Resolver, recorder repl.HistoryRecorder, sessionID string) model {
	return model{
		state:     state,
		resolver:  resolver,
		recorder:  recorder,
		sessionID: sessionID,
		log:       logger.NewStyledLogger("tui"),
	}
}

func (m model) Init() tea.Cmd {
	return nil
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.layout()
		return m, nil
	case tea.KeyMsg:
		return m.handleKey(msg)
	case tea.MouseMsg:
		var cmd tea.Cmd
		m.viewport, cmd = m.viewport.Update(msg)
		return m, cmd
	case repl.Resolved:
		m.inFlight = false
		return m.dispatch(msg)
	case exitTickMsg:
		if msg.token != m.exitToken {
			return m, nil
		}
		return m.dispatch(repl.ExitElapsed{})
	case recordedMsg:
		if msg.err != nil {
			m.log.Warn("persist history failed", "session", m.sessionID, "command", msg.command, "error", msg.err)
		}
		return m, nil
	}
	return m, nil
}

func (m model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.Quit):
		m.quitting = true
		m.exitToken++
		return m, tea.Quit
	case key.Matches(msg, keys.Submit):
		return m.dispatch(repl.Enter{})
	case key.Matches(msg, keys.Erase):
		return m.dispatch(repl.Backspace{})
	case key.Matches(msg, keys.Older):
		return m.dispatch(repl.HistoryUp{})
	case key.Matches(msg, keys.Newer):
		return m.dispatch(repl.HistoryDown{})
	case key.Matches(msg, keys.ClearScreen):
		return m.dispatch(repl.ClearScreen{})
	case key.Matches(msg, keys.ScrollUp, keys.ScrollDown):
		var cmd tea.Cmd
		m.viewport, cmd = m.viewport.Update(msg)
		return m, cmd
	}

	if a, ok := ui.MatchQuickAction(msg.String()); ok {
		return m.dispatch(repl.SetInput{Value: a.Command})
	}
	if msg.Type == tea.KeyRunes || msg.Type == tea.KeySpace {
		return m.dispatch(repl.TypeRunes{Runes: msg.Runes})
	}
	return m, nil
}

// dispatch reduces ev and turns the resulting effects into commands.
func (m model) dispatch(ev repl.Event) (model, tea.Cmd) {
	var effects []repl.Effect
	m.state, effects = repl.Reduce(m.state, ev)

	var cmds []tea.Cmd
	for _, eff := range effects {
		switch eff := eff.(type) {
		case repl.ResolveCommand:
			m.queue = append(m.queue, eff.Command)
		case repl.RecordHistory:
			if m.recorder != nil {
				cmds = append(cmds, m.record(eff.Command))
			}
		case repl.ScheduleExit:
			m.exitToken++
			token := m.exitToken
			cmds = append(cmds, tea.Tick(eff.Delay, func(time.Time) tea.Msg {
				return exitTickMsg{token: token}
			}))
		case repl.Terminate:
			m.log.Info("session closed", "session", m.sessionID)
			m.quitting = true
			cmds = append(cmds, tea.Quit)
		case repl.ScrollToBottom:
			m.syncViewport()
		}
	}

	if !m.inFlight && len(m.queue) > 0 {
		next := m.queue[0]
		m.queue = m.queue[1:]
		m.inFlight = true
		cmds = append(cmds, m.resolve(next))
	}
	return m, tea.Batch(cmds...)
}

func (m model) resolve(command string) tea.Cmd {
	resolver := m.resolver
	return func() tea.Msg {
		lines, err := resolver.Resolve(context.Background(), command)
		return repl.Resolved{Command: command, Lines: lines, Err: err}
	}
}

func (m model) record(command string) tea.Cmd {
	recorder, sessionID := m.recorder, m.sessionID
	return func() tea.Msg {
		return recordedMsg{command: command, err: recorder.Append(context.Background(), sessionID, command)}
	}
}
