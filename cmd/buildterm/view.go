package main

import (
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	"github.com/charmbracelet/lipgloss"

	"github.com/construction-cli/buildterm/internal/repl"
	"github.com/construction-cli/buildterm/internal/ui"
)

const (
	title       = "🏗️  Construction CLI Web Terminal"
	placeholder = "Type buildcli commands here..."
)

// --- Layout ---

// layout sizes the scrollback viewport to whatever the header, input line,
// quick-action panel and footer leave free.
func (m *model) layout() {
	frameW, frameH := ui.TerminalStyle.GetFrameSize()
	chrome := lipgloss.Height(m.viewHeader()) +
		lipgloss.Height(ui.RenderQuickActions(m.width, m.state.Input.Value)) +
		lipgloss.Height(m.viewFooter()) +
		frameH + 1 + 2

	w := max(m.width-frameW, 10)
	h := max(m.height-chrome, 3)
	if !m.ready {
		m.viewport = viewport.New(w, h)
		m.ready = true
	} else {
		m.viewport.Width = w
		m.viewport.Height = h
	}
	m.syncViewport()
}

func (m *model) syncViewport() {
	if !m.ready {
		return
	}
	m.viewport.SetContent(m.renderTranscript())
	m.viewport.GotoBottom()
}

func (m model) renderTranscript() string {
	lines := m.state.Scrollback.Lines()
	styled := make([]string, len(lines))
	for i, l := range lines {
		styled[i] = ui.StyleLine(l, repl.Prompt)
	}
	return strings.Join(styled, "\n")
}

// --- Views ---

func (m model) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder
	b.WriteString(m.viewHeader())
	b.WriteString("\n\n")

	var term strings.Builder
	if m.ready {
		term.WriteString(m.viewport.View())
	} else {
		term.WriteString(m.renderTranscript())
	}
	term.WriteString("\n")
	term.WriteString(m.viewInput())

	b.WriteString(ui.TerminalStyle.Render(term.String()))
	b.WriteString("\n")
	b.WriteString(ui.RenderQuickActions(m.width, m.state.Input.Value))
	b.WriteString("\n")
	b.WriteString(m.viewFooter())
	return b.String()
}

func (m model) viewHeader() string {
	return ui.TitleStyle.Render(title) + "  " + ui.DimStyle.Render("["+keys.ClearScreen.Help().Key+" "+keys.ClearScreen.Help().Desc+"]")
}

func (m model) viewInput() string {
	prompt := ui.PromptStyle.Render(repl.Prompt)
	if m.state.Exiting {
		return prompt + ui.DimStyle.Render("closing...")
	}
	if m.state.Input.Value == "" {
		return prompt + "█" + ui.DimStyle.Render(placeholder)
	}
	return prompt + m.state.Input.Value + "█"
}

func (m model) viewFooter() string {
	var parts []string
	for _, k := range []struct{ key, desc string }{
		{keys.Older.Help().Key, keys.Older.Help().Desc},
		{keys.Submit.Help().Key, keys.Submit.Help().Desc},
		{keys.ScrollUp.Help().Key, keys.ScrollUp.Help().Desc},
		{"F1-F8", "quick commands"},
		{keys.Quit.Help().Key, keys.Quit.Help().Desc},
	} {
		parts = append(parts, k.key+" "+k.desc)
	}
	return ui.DimStyle.Render(strings.Join(parts, " • "))
}
