package repl

import (
	"bufio"
	"context"
	"fmt"
	"io"
)

// lineRenderer prints transcript lines as they appear. After a clear the
// banner is printed again.
type lineRenderer struct {
	w       io.Writer
	printed int
	resets  int
}

func (r *lineRenderer) Render(s State) {
	lines := s.Scrollback.Lines()
	if s.Resets != r.resets || len(lines) < r.printed {
		r.resets = s.Resets
		r.printed = 0
	}
	for _, l := range lines[r.printed:] {
		fmt.Fprintln(r.w, l)
	}
	r.printed = len(lines)
}

// RunLines drives a session from a line-oriented reader, one submission
// per line, writing the transcript to out. It returns after exit has
// closed the session, when in is exhausted, or when ctx is done.
func RunLines(ctx context.Context, in io.Reader, out io.Writer, state State, resolver Resolver, opts ...ControllerOption) error {
	r := &lineRenderer{w: out}
	c := NewController(state, resolver, append(opts, WithRenderer(r))...)
	r.Render(c.State())

	scanner := bufio.NewScanner(in)
	for scanner.Scan() {
		if err := ctx.Err(); err != nil {
			return err
		}
		c.Dispatch(ctx, SetInput{Value: scanner.Text()})
		if s := c.Dispatch(ctx, Enter{}); s.Exiting {
			select {
			case <-c.Done():
				return nil
			case <-ctx.Done():
				c.CancelExit()
				return ctx.Err()
			}
		}
	}
	return scanner.Err()
}
