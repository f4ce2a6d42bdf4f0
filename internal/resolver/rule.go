package resolver

import (
	"fmt"
	"regexp"
	"strings"
)

// Matcher decides whether a rule applies to a trimmed command.
type Matcher func(cmd string) bool

// Responder renders the response text for a matched command.
type Responder func(cmd string, ids IDGenerator) string

// Rule pairs a matcher with the response it produces.
type Rule struct {
	Name    string
	Match   Matcher
	Respond Responder
}

// Table is an ordered rule list. The first matching rule wins.
type Table []Rule

// Lookup returns the first rule matching cmd.
func (t Table) Lookup(cmd string) (Rule, bool) {
	for _, r := range t {
		if r.Match(cmd) {
			return r, true
		}
	}
	return Rule{}, false
}

// Names lists rule names in precedence order.
func (t Table) Names() []string {
	names := make([]string, len(t))
	for i, r := range t {
		names[i] = r.Name
	}
	return names
}

func Exact(s string) Matcher {
	return func(cmd string) bool { return cmd == s }
}

func Prefix(p string) Matcher {
	return func(cmd string) bool { return strings.HasPrefix(cmd, p) }
}

// Contains matches when sub appears anywhere in the command, including
// inside quoted names.
func Contains(sub string) Matcher {
	return func(cmd string) bool { return strings.Contains(cmd, sub) }
}

// All matches when every matcher does.
func All(ms ...Matcher) Matcher {
	return func(cmd string) bool {
		for _, m := range ms {
			if !m(cmd) {
				return false
			}
		}
		return true
	}
}

// Extractor pulls an argument out of a command.
type Extractor func(cmd string) (string, bool)

// QuotedAfter extracts the non-empty double-quoted name that directly
// follows keyword, as in `create "Kitchen Remodel"`.
func QuotedAfter(keyword string) Extractor {
	re := regexp.MustCompile(regexp.QuoteMeta(keyword) + ` "([^"]+)"`)
	return func(cmd string) (string, bool) {
		m := re.FindStringSubmatch(cmd)
		if m == nil {
			return "", false
		}
		return m[1], true
	}
}

// OrDefault never fails: it substitutes def when nothing was extracted.
func (e Extractor) OrDefault(def string) func(cmd string) string {
	return func(cmd string) string {
		if v, ok := e(cmd); ok {
			return v
		}
		return def
	}
}

// Static responds with fixed text.
func Static(text string) Responder {
	return func(string, IDGenerator) string { return text }
}

// Created renders a mock creation response. format receives the extracted
// name and a display-only ID drawn from ids.
func Created(name func(string) string, format string) Responder {
	return func(cmd string, ids IDGenerator) string {
		return fmt.Sprintf(format, name(cmd), ids.Intn(maxID))
	}
}
