// Package repl is the read-eval-print core of the terminal.
//
// A session is a single State value transformed by Reduce. Reduce is pure:
// anything that touches the outside world (resolving a command, persisting
// history, timers, closing the session, scrolling) comes back as an Effect
// for the caller to run. Controller is the stock effect runner; the Bubble
// Tea front end runs the same effects as tea.Cmds.
package repl

import (
	"context"
	"time"

	"github.com/construction-cli/buildterm/internal/history"
	"github.com/construction-cli/buildterm/internal/scrollback"
	"github.com/construction-cli/buildterm/internal/session"
)

const (
	// DefaultExitDelay is how long the farewell stays up before the session closes.
	DefaultExitDelay = time.Second

	Farewell = "Goodbye! You can close this browser tab."
	Prompt   = "$ "
)

// Resolver turns a trimmed command into output lines. The local resolver
// never fails; remote ones may.
type Resolver interface {
	Resolve(ctx context.Context, cmd string) ([]string, error)
}

// State is the whole session.
type State struct {
	Scrollback scrollback.Buffer
	History    history.Navigator
	Input      session.InputBuffer

	// Exiting is set once exit was accepted; later submissions are dropped.
	Exiting bool
	// Closed is set when the exit delay elapsed.
	Closed bool
	// Resets counts transcript clears, so renderers can tell a clear apart
	// from a transcript that merely has the same length.
	Resets int

	exitDelay time.Duration
}

// Options seed a new session.
type Options struct {
	ExitDelay time.Duration
	// History preloads the navigator, oldest first.
	History []string
}

// NewState returns the initial session: banner, empty input, not browsing.
func NewState(opts Options) State {
	delay := opts.ExitDelay
	if delay <= 0 {
		delay = DefaultExitDelay
	}
	return State{
		Scrollback: scrollback.New(),
		History:    history.Seed(opts.History),
		exitDelay:  delay,
	}
}

// ExitDelay reports the configured grace period.
func (s State) ExitDelay() time.Duration {
	return s.exitDelay
}
