package repl

import (
	"context"
	"sync"
	"time"

	"github.com/charmbracelet/log"

	"github.com/construction-cli/buildterm/internal/logger"
)

// HistoryRecorder persists submitted commands.
type HistoryRecorder interface {
	Append(ctx context.Context, sessionID, command string) error
}

// Renderer is told whenever the transcript changes.
type Renderer interface {
	Render(s State)
}

// Controller owns a session State and runs the effects Reduce emits.
// Dispatch is serialized, so events are applied one at a time even when
// the exit timer fires from another goroutine.
type Controller struct {
	mu        sync.Mutex
	state     State
	resolver  Resolver
	recorder  HistoryRecorder
	renderer  Renderer
	sessionID string
	log       *log.Logger

	exitTimer *time.Timer
	done      chan struct{}
	closeOnce sync.Once
}

// ControllerOption configures a Controller.
type ControllerOption func(*Controller)

// WithRecorder persists every submitted command under sessionID.
func WithRecorder(r HistoryRecorder, sessionID string) ControllerOption {
	return func(c *Controller) {
		c.recorder = r
		c.sessionID = sessionID
	}
}

// WithRenderer registers the transcript observer.
func WithRenderer(r Renderer) ControllerOption {
	return func(c *Controller) { c.renderer = r }
}

// NewController starts a session from state.
func NewController(state State, resolver Resolver, opts ...ControllerOption) *Controller {
	c := &Controller{
		state:    state,
		resolver: resolver,
		log:      logger.NewStyledLogger("repl"),
		done:     make(chan struct{}),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Dispatch applies ev and every event its effects produce, then returns
// the resulting state.
func (c *Controller) Dispatch(ctx context.Context, ev Event) State {
	c.mu.Lock()
	defer c.mu.Unlock()

	queue := []Event{ev}
	for len(queue) > 0 {
		var effects []Effect
		c.state, effects = Reduce(c.state, queue[0])
		queue = queue[1:]
		for _, eff := range effects {
			if next := c.run(ctx, eff); next != nil {
				queue = append(queue, next)
			}
		}
	}
	return c.state
}

func (c *Controller) run(ctx context.Context, eff Effect) Event {
	switch eff := eff.(type) {
	case ResolveCommand:
		lines, err := c.resolver.Resolve(ctx, eff.Command)
		if err != nil {
			c.log.Warn("resolve failed", "command", eff.Command, "error", err)
		} else {
			c.log.Debug("resolved", "command", eff.Command, "lines", len(lines))
		}
		return Resolved{Command: eff.Command, Lines: lines, Err: err}

	case RecordHistory:
		if c.recorder == nil {
			return nil
		}
		if err := c.recorder.Append(ctx, c.sessionID, eff.Command); err != nil {
			c.log.Warn("persist history failed", "session", c.sessionID, "error", err)
		}

	case ScheduleExit:
		c.log.Debug("exit scheduled", "delay", eff.Delay)
		if c.exitTimer != nil {
			c.exitTimer.Stop()
		}
		c.exitTimer = time.AfterFunc(eff.Delay, func() {
			c.Dispatch(context.Background(), ExitElapsed{})
		})

	case Terminate:
		c.log.Info("session closed", "session", c.sessionID)
		c.closeOnce.Do(func() { close(c.done) })

	case ScrollToBottom:
		if c.renderer != nil {
			c.renderer.Render(c.state)
		}
	}
	return nil
}

// State returns a snapshot of the session.
func (c *Controller) State() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

// CancelExit stops a pending exit timer. It reports whether one was
// stopped before firing. The session stays in the exiting state.
func (c *Controller) CancelExit() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.exitTimer == nil {
		return false
	}
	stopped := c.exitTimer.Stop()
	c.exitTimer = nil
	return stopped
}

// Done is closed when the session terminates.
func (c *Controller) Done() <-chan struct{} {
	return c.done
}
