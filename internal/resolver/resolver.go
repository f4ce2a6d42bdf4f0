// Package resolver turns buildcli command lines into mock responses.
//
// Resolution walks an ordered rule Table and the first match wins: the
// creation and sub-command prefixes, then one exact rule per canned
// command, then a two-line "not recognized" fallback. Output is split into
// lines and blank lines are dropped, so canned texts lose their separators
// in the transcript.
package resolver

import (
	"context"
	"slices"
	"strings"
)

// Resolver resolves commands against a rule table.
type Resolver struct {
	table Table
	ids   IDGenerator
}

// Option configures a Resolver.
type Option func(*Resolver)

// WithIDGenerator replaces the random ID source.
func WithIDGenerator(ids IDGenerator) Option {
	return func(r *Resolver) { r.ids = ids }
}

// WithTable replaces the rule table.
func WithTable(t Table) Option {
	return func(r *Resolver) { r.table = t }
}

// New returns a resolver over DefaultTable with random IDs.
func New(opts ...Option) *Resolver {
	r := &Resolver{table: DefaultTable(), ids: RandomIDs()}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Respond returns the raw response text for cmd, blank lines included.
func (r *Resolver) Respond(cmd string) string {
	cmd = strings.TrimSpace(cmd)
	if rule, ok := r.table.Lookup(cmd); ok {
		return rule.Respond(cmd, r.ids)
	}
	return Fallback(cmd)
}

// Resolve returns the non-blank response lines for cmd. It never fails for
// a local table; the error return lets remote resolvers share the
// signature.
func (r *Resolver) Resolve(ctx context.Context, cmd string) ([]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return SplitLines(r.Respond(cmd)), nil
}

// Commands lists the commands matched by exact rules, sorted.
func (r *Resolver) Commands() []string {
	var out []string
	for _, name := range r.table.Names() {
		if cmd, ok := strings.CutPrefix(name, exactPrefix); ok {
			out = append(out, cmd)
		}
	}
	slices.Sort(out)
	return out
}

// Table returns the rule table in precedence order.
func (r *Resolver) Table() Table {
	return slices.Clone(r.table)
}

// SplitLines splits text on newlines and drops lines that are empty or
// whitespace only. Kept lines retain their indentation.
func SplitLines(text string) []string {
	var out []string
	for _, line := range strings.Split(text, "\n") {
		if strings.TrimSpace(line) != "" {
			out = append(out, line)
		}
	}
	return out
}
