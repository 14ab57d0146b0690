// Package static provides non-interactive terminal output components.
//
// This package renders formatted output that does not require user
// interaction, such as the flattened row table of an option tree.
package static

import (
	"strconv"
	"strings"

	"charm.land/lipgloss/v2"
	"charm.land/lipgloss/v2/table"

	"github.com/raphi011/choice/internal/choice"
)

// EntryHeaders are the column headers of EntryRows.
var EntryHeaders = []string{"ROW", "DEPTH", "ID", "LABEL", "FLAGS"}

// RenderTable creates a formatted table with proper column alignment.
// Headers and rows are rendered using lipgloss/table which automatically
// calculates column widths based on content. No borders are rendered.
func RenderTable(headers []string, rows [][]string) string {
	if len(rows) == 0 {
		return ""
	}

	t := table.New().
		Headers(headers...).
		Rows(rows...).
		BorderTop(false).
		BorderBottom(false).
		BorderLeft(false).
		BorderRight(false).
		BorderHeader(false).
		BorderColumn(false).
		BorderRow(false).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return lipgloss.NewStyle().Bold(true).PaddingRight(2)
			}
			return lipgloss.NewStyle().PaddingRight(2)
		})

	return t.String() + "\n"
}

// EntryRows converts flattened entries into table rows. Labels are
// prefixed with indent once per depth level; an empty indent uses two
// spaces, since tabs do not align inside table cells.
func EntryRows(entries []choice.Entry, indent string) [][]string {
	if indent == "" || strings.ContainsRune(indent, '\t') {
		indent = "  "
	}

	rows := make([][]string, len(entries))
	for i, e := range entries {
		rows[i] = []string{
			strconv.Itoa(i),
			strconv.Itoa(e.Depth),
			e.Option.ID,
			e.Indent(indent) + e.Option.Label,
			entryFlags(e),
		}
	}
	return rows
}

// entryFlags lists the row attributes, comma separated.
func entryFlags(e choice.Entry) string {
	var flags []string
	if e.Group {
		flags = append(flags, "group")
	}
	if e.Option.Disabled {
		flags = append(flags, "disabled")
	}
	if e.Option.Selected {
		flags = append(flags, "selected")
	}
	return strings.Join(flags, ",")
}
