package ui

import (
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/construction-cli/buildterm/internal/history"
)

// Column defines a table column with a header label and width.
type Column struct {
	Header string
	Width  int
}

// RenderTable renders rows as a fixed-width table with column headers.
func RenderTable(columns []Column, rows [][]string) string {
	var b strings.Builder

	// Header row
	for i, col := range columns {
		if i > 0 {
			b.WriteString("  ")
		}
		b.WriteString(HeaderStyle.Render(pad(col.Header, col.Width)))
	}
	b.WriteString("\n")

	// Separator
	for i, col := range columns {
		if i > 0 {
			b.WriteString("  ")
		}
		b.WriteString(DimStyle.Render(strings.Repeat("─", col.Width)))
	}
	b.WriteString("\n")

	// Data rows
	for _, row := range rows {
		for i, col := range columns {
			if i > 0 {
				b.WriteString("  ")
			}
			val := ""
			if i < len(row) {
				val = row[i]
			}
			b.WriteString(pad(val, col.Width))
		}
		b.WriteString("\n")
	}

	return b.String()
}

// pad fits s into width terminal cells, truncating by rune.
func pad(s string, width int) string {
	w := lipgloss.Width(s)
	if w <= width {
		return s + strings.Repeat(" ", width-w)
	}
	r := []rune(s)
	for len(r) > 0 && lipgloss.Width(string(r)) > width {
		r = r[:len(r)-1]
	}
	return pad(string(r), width)
}

// HistoryColumns lays out persisted submissions.
var HistoryColumns = []Column{
	{Header: "ID", Width: 6},
	{Header: "SUBMITTED", Width: 19},
	{Header: "SESSION", Width: 8},
	{Header: "COMMAND", Width: 48},
}

// HistoryRows converts entries into rows for HistoryColumns. Session IDs
// are shortened to their first eight characters.
func HistoryRows(entries []history.Entry) [][]string {
	rows := make([][]string, 0, len(entries))
	for _, e := range entries {
		session := e.SessionID
		if len(session) > 8 {
			session = session[:8]
		}
		rows = append(rows, []string{
			strconv.FormatInt(e.ID, 10),
			e.SubmittedAt.Local().Format(time.DateTime),
			session,
			e.Command,
		})
	}
	return rows
}
