package repl

import "strings"

// Meta-commands handled before resolution. Matching is exact on the
// trimmed line and case-sensitive.
const (
	cmdClear = "clear"
	cmdExit  = "exit"
)

// Reduce applies ev to s and returns the next state with the effects the
// caller must run, in order.
func Reduce(s State, ev Event) (State, []Effect) {
	if s.Closed {
		return s, nil
	}

	switch ev := ev.(type) {
	// Editing never moves the history cursor, even while browsing.
	case SetInput:
		s.Input.Set(ev.Value)
	case TypeRunes:
		s.Input.Append(ev.Runes)
	case Backspace:
		s.Input.Backspace()

	case Enter:
		line := s.Input.Value
		s.Input.Clear()
		return submit(s, line)
	case Submit:
		return submit(s, ev.Command)

	case HistoryUp:
		if h, v, ok := s.History.Older(); ok {
			s.History = h
			s.Input.Set(v)
		}
	case HistoryDown:
		if h, v, ok := s.History.Newer(); ok {
			s.History = h
			s.Input.Set(v)
		}

	case Resolved:
		if ev.Err != nil {
			s.Scrollback = s.Scrollback.Append("Error: " + ev.Err.Error())
		} else {
			s.Scrollback = s.Scrollback.Append(ev.Lines...)
		}
		return s, []Effect{ScrollToBottom{}}

	case ClearScreen:
		return reset(s), []Effect{ScrollToBottom{}}

	case ExitElapsed:
		if !s.Exiting {
			return s, nil
		}
		s.Closed = true
		return s, []Effect{Terminate{}}
	}
	return s, nil
}

func submit(s State, raw string) (State, []Effect) {
	cmd := strings.TrimSpace(raw)
	if cmd == "" || s.Exiting {
		return s, nil
	}

	switch cmd {
	case cmdClear:
		return reset(s), []Effect{ScrollToBottom{}}
	case cmdExit:
		s.Scrollback = s.Scrollback.Append(Prompt+raw, Farewell)
		s.Exiting = true
		return s, []Effect{ScrollToBottom{}, ScheduleExit{Delay: s.exitDelay}}
	}

	s.History = s.History.Record(raw)
	s.Input.Clear()
	s.Scrollback = s.Scrollback.Append(Prompt + raw)
	return s, []Effect{
		RecordHistory{Command: raw},
		ScrollToBottom{},
		ResolveCommand{Command: cmd},
	}
}

func reset(s State) State {
	s.Scrollback = s.Scrollback.Reset()
	s.Resets++
	return s
}
