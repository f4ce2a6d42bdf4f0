package ui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
)

// QuickAction pre-fills the input line with Command. It never submits.
type QuickAction struct {
	Label   string
	Command string
	Binding key.Binding
}

// QuickActions is the help panel shown under the terminal.
var QuickActions = []QuickAction{
	quick("f1", "buildcli --help", "buildcli --help"),
	quick("f2", "buildcli project-list", "buildcli project-list"),
	quick("f3", "buildcli materials-list", "buildcli materials-list"),
	quick("f4", "buildcli materials-inventory", "buildcli materials-inventory"),
	quick("f5", "buildcli project-create", "buildcli project-create"),
	quick("f6", "Create Project", `buildcli project create "My Project" --budget 100000`),
	quick("f7", "clear", "clear"),
	quick("f8", "exit", "exit"),
}

func quick(k, label, cmd string) QuickAction {
	return QuickAction{
		Label:   label,
		Command: cmd,
		Binding: key.NewBinding(key.WithKeys(k), key.WithHelp(strings.ToUpper(k), label)),
	}
}

// MatchQuickAction returns the action bound to the pressed key.
func MatchQuickAction(pressed string) (QuickAction, bool) {
	for _, a := range QuickActions {
		for _, k := range a.Binding.Keys() {
			if k == pressed {
				return a, true
			}
		}
	}
	return QuickAction{}, false
}

// RenderQuickActions lays the panel out in rows no wider than width. The
// action whose command is already on the input line is highlighted.
func RenderQuickActions(width int, input string) string {
	var b strings.Builder
	b.WriteString(TitleStyle.Render("Quick Commands:"))
	b.WriteString("\n")

	line := 0
	for i, a := range QuickActions {
		style := DimStyle
		switch a.Command {
		case "clear":
			style = SpecialStyle
		case "exit":
			style = ErrorStyle
		}
		if a.Command == input {
			style = ActiveStyle
		}
		cell := PromptStyle.Render(a.Binding.Help().Key) + " " + style.Render(a.Binding.Help().Desc)
		w := len(a.Binding.Help().Key) + 1 + len(a.Binding.Help().Desc)
		if i > 0 {
			if width > 0 && line+3+w > width {
				b.WriteString("\n")
				line = 0
			} else {
				b.WriteString("   ")
				line += 3
			}
		}
		b.WriteString(cell)
		line += w
	}
	return b.String()
}
