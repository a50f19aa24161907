// Package table holds the in-memory tabular cache shared by every connector:
// a normalized header plus rows of strings.
package table

import (
	"github.com/josephgoksu/kanban-sheets/models"
)

// Table is a header of normalized column keys and rows of cell values.
// Every row has exactly len(Header) cells.
type Table struct {
	header []string
	index  map[string]int
	rows   [][]string
	// pos[i] is the index of rows[i] among the data rows it was built from,
	// blank rows included.
	pos []int
	// span is the source data row count, trailing blank rows included.
	span int
}

// New builds a table from a raw header row and data rows. Header cells are
// trimmed, known aliases are mapped to the canonical column, spaces become
// '-'. Short rows are padded with empty cells and long rows are cut. Blank
// rows are skipped but still counted by Position.
func New(header []string, rows [][]string) *Table {
	t := &Table{
		header: make([]string, len(header)),
		index:  make(map[string]int, len(header)),
	}
	for i, h := range header {
		key := models.NormalizeHeader(h)
		if c, ok := models.ColumnForHeader(h); ok {
			key = c.Key()
		}
		t.header[i] = key
		if _, dup := t.index[key]; !dup {
			t.index[key] = i
		}
	}
	t.rows = make([][]string, 0, len(rows))
	t.pos = make([]int, 0, len(rows))
	for i, r := range rows {
		if isBlank(r) {
			continue
		}
		t.rows = append(t.rows, t.fit(r))
		t.pos = append(t.pos, i)
	}
	t.span = len(rows)
	return t
}

// Empty returns a table with the fixed schema and no rows.
func Empty() *Table {
	return New(models.Header(), nil)
}

func isBlank(r []string) bool {
	for _, v := range r {
		if v != "" {
			return false
		}
	}
	return true
}

func (t *Table) fit(r []string) []string {
	out := make([]string, len(t.header))
	copy(out, r)
	return out
}

// Len is the number of data rows.
func (t *Table) Len() int { return len(t.rows) }

// Header returns the normalized column keys.
func (t *Table) Header() []string {
	out := make([]string, len(t.header))
	copy(out, t.header)
	return out
}

// Has reports whether the table carries the given column key.
func (t *Table) Has(key string) bool {
	_, ok := t.index[key]
	return ok
}

// HasKeyColumns reports whether the composite-key columns are present.
func (t *Table) HasKeyColumns() bool {
	return t.Has(models.ColProject.Key()) && t.Has(models.ColTaskID.Key())
}

// Value returns the cell at row i for a column key, or "" when absent.
func (t *Table) Value(i int, key string) string {
	col, ok := t.index[key]
	if !ok || i < 0 || i >= len(t.rows) {
		return ""
	}
	return t.rows[i][col]
}

// Get is Value addressed by schema column.
func (t *Table) Get(i int, c models.Column) string {
	return t.Value(i, c.Key())
}

// Find returns the index of the first row matching (project, taskID), or -1.
func (t *Table) Find(project, taskID string) int {
	if len(t.rows) == 0 || !t.HasKeyColumns() {
		return -1
	}
	pc := t.index[models.ColProject.Key()]
	tc := t.index[models.ColTaskID.Key()]
	for i, r := range t.rows {
		if r[pc] == project && r[tc] == taskID {
			return i
		}
	}
	return -1
}

// Row returns row i keyed by display column name.
func (t *Table) Row(i int) models.Row {
	if i < 0 || i >= len(t.rows) {
		return nil
	}
	out := make(models.Row, len(t.header))
	for c, key := range t.header {
		out[models.DenormalizeKey(key)] = t.rows[i][c]
	}
	return out
}

// Rows returns every row keyed by display column name.
func (t *Table) Rows() []models.Row {
	out := make([]models.Row, len(t.rows))
	for i := range t.rows {
		out[i] = t.Row(i)
	}
	return out
}

// RowValues returns a copy of row i in schema column order, ready for a
// range write. Columns missing from the table come back empty.
func (t *Table) RowValues(i int) []string {
	out := make([]string, models.ColumnCount())
	for _, c := range models.Columns() {
		out[c] = t.Get(i, c)
	}
	return out
}

// Cells returns a copy of row i in the table's own column order.
func (t *Table) Cells(i int) []string {
	if i < 0 || i >= len(t.rows) {
		return nil
	}
	return append([]string(nil), t.rows[i]...)
}

// Arrange maps a row given in schema column order onto the table's column
// order. Schema columns the table lacks are dropped.
func (t *Table) Arrange(r []string) []string {
	cells := make([]string, len(t.header))
	for _, c := range models.Columns() {
		if col, ok := t.index[c.Key()]; ok && int(c) < len(r) {
			cells[col] = r[c]
		}
	}
	return cells
}

// Position returns the index of row i among the source data rows, counting
// the blank rows New skipped. Appended rows follow the last source row.
func (t *Table) Position(i int) int {
	if i < 0 || i >= len(t.pos) {
		return -1
	}
	return t.pos[i]
}

// Width is the number of columns.
func (t *Table) Width() int { return len(t.header) }

// Append adds rows given in schema column order and returns the index of
// the first appended row.
func (t *Table) Append(rows ...[]string) int {
	first := len(t.rows)
	for _, r := range rows {
		t.rows = append(t.rows, t.Arrange(r))
		t.pos = append(t.pos, t.span)
		t.span++
	}
	return first
}

// Set overwrites one cell. It returns false for unknown columns or rows.
func (t *Table) Set(i int, key, value string) bool {
	col, ok := t.index[key]
	if !ok || i < 0 || i >= len(t.rows) {
		return false
	}
	t.rows[i][col] = value
	return true
}

// Clone returns a deep copy.
func (t *Table) Clone() *Table {
	c := &Table{
		header: t.Header(),
		index:  make(map[string]int, len(t.index)),
		rows:   make([][]string, len(t.rows)),
		pos:    append([]int(nil), t.pos...),
		span:   t.span,
	}
	for k, v := range t.index {
		c.index[k] = v
	}
	for i, r := range t.rows {
		c.rows[i] = append([]string(nil), r...)
	}
	return c
}

// Truncate drops every row after the first n.
func (t *Table) Truncate(n int) {
	if n >= 0 && n < len(t.rows) {
		t.rows = t.rows[:n]
		t.pos = t.pos[:n]
		t.span = 0
		if n > 0 {
			t.span = t.pos[n-1] + 1
		}
	}
}

// Records returns the display header followed by every row, the layout
// written to files.
func (t *Table) Records() [][]string {
	out := make([][]string, 0, len(t.rows)+1)
	display := make([]string, len(t.header))
	for i, key := range t.header {
		display[i] = models.DenormalizeKey(key)
	}
	out = append(out, display)
	for _, r := range t.rows {
		out = append(out, append([]string(nil), r...))
	}
	return out
}
