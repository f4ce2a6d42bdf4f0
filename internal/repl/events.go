package repl

import "time"

// Event is an input to Reduce.
type Event interface {
	isEvent()
}

type (
	// SetInput replaces the line being edited.
	SetInput struct{ Value string }
	// TypeRunes appends typed characters.
	TypeRunes struct{ Runes []rune }
	// Backspace deletes the last character.
	Backspace struct{}
	// Enter submits the current line and always empties the editor.
	Enter struct{}
	// Submit submits Command without going through the editor.
	Submit struct{ Command string }
	// HistoryUp recalls an older command.
	HistoryUp struct{}
	// HistoryDown recalls a newer command, or returns to live editing.
	HistoryDown struct{}
	// Resolved carries the outcome of a ResolveCommand effect.
	Resolved struct {
		Command string
		Lines   []string
		Err     error
	}
	// ClearScreen resets the transcript without a submission.
	ClearScreen struct{}
	// ExitElapsed fires when the ScheduleExit delay has passed.
	ExitElapsed struct{}
)

func (SetInput) isEvent() {}
func (TypeRunes) isEvent() {}
func (Backspace) isEvent() {}
func (Enter) isEvent() {}
func (Submit) isEvent() {}
func (HistoryUp) isEvent() {}
func (HistoryDown) isEvent() {}
func (Resolved) isEvent() {}
func (ClearScreen) isEvent() {}
func (ExitElapsed) isEvent() {}

// Effect is work Reduce asks its caller to perform.
type Effect interface {
	isEffect()
}

type (
	// ResolveCommand asks for Command to be resolved; the result must be
	// fed back as Resolved.
	ResolveCommand struct{ Command string }
	// RecordHistory asks for a submitted command to be persisted.
	RecordHistory struct{ Command string }
	// ScheduleExit asks for ExitElapsed to be delivered after Delay.
	ScheduleExit struct{ Delay time.Duration }
	// Terminate asks for the interactive surface to close.
	Terminate struct{}
	// ScrollToBottom signals that the transcript changed.
	ScrollToBottom struct{}
)

func (ResolveCommand) isEffect() {}
func (RecordHistory) isEffect() {}
func (ScheduleExit) isEffect() {}
func (Terminate) isEffect() {}
func (ScrollToBottom) isEffect() {}
