package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/josephgoksu/kanban-sheets/models"
)

// Table renders data in a compact table with fixed-width columns.
// Widths are measured in terminal cells, so accented headers align.
type Table struct {
	Headers  []string
	Rows     [][]string
	MaxWidth int // Max width per column (0 = auto)

	// Style, when set, styles the cell in column col of a row.
	Style func(col int, value string) lipgloss.Style
}

// ColumnWidths calculates optimal column widths based on content.
func (t *Table) ColumnWidths() []int {
	widths := make([]int, len(t.Headers))
	for i, h := range t.Headers {
		widths[i] = lipgloss.Width(h)
	}
	for _, row := range t.Rows {
		for i, cell := range row {
			if i < len(widths) {
				widths[i] = max(widths[i], lipgloss.Width(cell))
			}
		}
	}
	if t.MaxWidth > 0 {
		for i := range widths {
			widths[i] = min(widths[i], t.MaxWidth)
		}
	}
	return widths
}

// Render outputs the table to a string.
func (t *Table) Render() string {
	if len(t.Headers) == 0 {
		return ""
	}

	widths := t.ColumnWidths()
	var sb strings.Builder

	headerStyle := lipgloss.NewStyle().Bold(true).Foreground(ColorPrimary)
	dimStyle := lipgloss.NewStyle().Foreground(ColorSecondary)

	headerCells := make([]string, len(t.Headers))
	for i, h := range t.Headers {
		headerCells[i] = headerStyle.Render(padRight(h, widths[i]))
	}
	sb.WriteString(" " + strings.Join(headerCells, "  ") + "\n")

	sepParts := make([]string, len(widths))
	for i, w := range widths {
		sepParts[i] = dimStyle.Render(strings.Repeat("─", w))
	}
	sb.WriteString(" " + strings.Join(sepParts, "──") + "\n")

	for _, row := range t.Rows {
		cells := make([]string, len(t.Headers))
		for i := range t.Headers {
			val := ""
			if i < len(row) {
				val = row[i]
			}
			style := StyleText
			if t.Style != nil {
				style = t.Style(i, val)
			}
			cells[i] = style.Render(padRight(truncate(val, widths[i]), widths[i]))
		}
		sb.WriteString(" " + strings.Join(cells, "  ") + "\n")
	}

	return sb.String()
}

// truncate shortens s to width cells, marking the cut with an ellipsis.
func truncate(s string, width int) string {
	if lipgloss.Width(s) <= width {
		return s
	}
	if width < 1 {
		return ""
	}
	runes := []rune(s)
	for len(runes) > 0 && lipgloss.Width(string(runes))+1 > width {
		runes = runes[:len(runes)-1]
	}
	return string(runes) + "…"
}

// padRight pads a string to the specified width.
func padRight(s string, width int) string {
	w := lipgloss.Width(s)
	if w >= width {
		return s
	}
	return s + strings.Repeat(" ", width-w)
}

// taskColumns are the columns shown by TaskTable.
var taskColumns = []models.Column{
	models.ColProject,
	models.ColTaskID,
	models.ColSprint,
	models.ColPriority,
	models.ColStatus,
	models.ColDescription,
}

// TaskTable lays out task rows for the terminal.
func TaskTable(rows []models.Row, maxWidth int) *Table {
	headers := make([]string, len(taskColumns))
	for i, c := range taskColumns {
		headers[i] = c.Display()
	}
	body := make([][]string, len(rows))
	for i, r := range rows {
		cells := make([]string, len(taskColumns))
		for j, c := range taskColumns {
			cells[j] = r.Get(c)
		}
		body[i] = cells
	}
	return &Table{
		Headers:  headers,
		Rows:     body,
		MaxWidth: maxWidth,
		Style: func(col int, value string) lipgloss.Style {
			switch taskColumns[col] {
			case models.ColStatus:
				return StatusStyle(models.TaskStatus(value))
			case models.ColPriority:
				return PriorityStyle(models.TaskPriority(value))
			}
			return StyleText
		},
	}
}

// SprintTable lays out sprint statistics for the terminal.
func SprintTable(stats []models.SprintStat) *Table {
	body := make([][]string, len(stats))
	for i, s := range stats {
		body[i] = []string{
			s.Sprint,
			fmt.Sprint(s.TotalTasks),
			fmt.Sprint(s.CompletedTasks),
			fmt.Sprintf("%.2f%%", s.CompletionPercentage),
		}
	}
	return &Table{
		Headers: []string{"Sprint", "Total", "Concluídas", "Progresso"},
		Rows:    body,
	}
}
