package models

import "strings"

// Column identifies one of the fixed schema columns, in physical order.
type Column int

const (
	ColProject Column = iota
	ColTaskID
	ColTaskIDRoot
	ColSprint
	ColContext
	ColDescription
	ColDetail
	ColPriority
	ColStatus
	ColCreatedAt
	ColResolvedAt

	columnCount
)

// Display names as written in the sheet/file header row.
var columnDisplay = [columnCount]string{
	"Nome Projeto",
	"Task ID",
	"Task ID Root",
	"Sprint",
	"Contexto",
	"Descrição",
	"Detalhado",
	"Prioridade",
	"Status",
	"Data Criação",
	"Data Solução",
}

// External field names used by tool arguments and JSON payloads.
var columnField = [columnCount]string{
	"project",
	"task_id",
	"task_id_root",
	"sprint",
	"contexto",
	"descricao",
	"detalhado",
	"prioridade",
	"status",
	"data_criacao",
	"data_solucao",
}

// Header spellings found in older sheets, keyed by normalized form.
var headerAliases = map[string]Column{
	"Projeto": ColProject,
	"Project": ColProject,
}

// Columns returns every schema column in physical order.
func Columns() []Column {
	out := make([]Column, columnCount)
	for i := range out {
		out[i] = Column(i)
	}
	return out
}

// ColumnCount is the width of the fixed schema.
func ColumnCount() int { return int(columnCount) }

// Valid reports whether c is a schema column.
func (c Column) Valid() bool { return c >= 0 && c < columnCount }

// Display returns the header name, e.g. "Nome Projeto".
func (c Column) Display() string {
	if !c.Valid() {
		return ""
	}
	return columnDisplay[c]
}

// Key returns the cache key, the display name with spaces replaced by '-'.
func (c Column) Key() string {
	return NormalizeHeader(c.Display())
}

// Field returns the external field name, e.g. "project".
func (c Column) Field() string {
	if !c.Valid() {
		return ""
	}
	return columnField[c]
}

func (c Column) String() string { return c.Display() }

// Letter returns the spreadsheet column letter (A..K).
func (c Column) Letter() string {
	if !c.Valid() {
		return ""
	}
	return string(rune('A' + int(c)))
}

// Header returns the display header row.
func Header() []string {
	out := make([]string, columnCount)
	copy(out, columnDisplay[:])
	return out
}

// Keys returns the normalized cache keys in physical order.
func Keys() []string {
	out := make([]string, columnCount)
	for i := range out {
		out[i] = Column(i).Key()
	}
	return out
}

// NormalizeHeader trims a header cell and replaces spaces with '-'.
func NormalizeHeader(name string) string {
	return strings.ReplaceAll(strings.TrimSpace(name), " ", "-")
}

// DenormalizeKey turns a cache key back into its display name.
func DenormalizeKey(key string) string {
	if c, ok := ColumnForKey(key); ok {
		return c.Display()
	}
	return strings.ReplaceAll(key, "-", " ")
}

// ColumnForField resolves an external field name ("status", "descricao", ...).
func ColumnForField(field string) (Column, bool) {
	for i, f := range columnField {
		if f == field {
			return Column(i), true
		}
	}
	return 0, false
}

// ColumnForKey resolves a normalized cache key ("Nome-Projeto", ...).
func ColumnForKey(key string) (Column, bool) {
	for i := range columnDisplay {
		if Column(i).Key() == key {
			return Column(i), true
		}
	}
	return 0, false
}

// ColumnForHeader resolves a raw header cell, accepting known aliases.
func ColumnForHeader(header string) (Column, bool) {
	key := NormalizeHeader(header)
	if c, ok := ColumnForKey(key); ok {
		return c, true
	}
	if c, ok := headerAliases[key]; ok {
		return c, true
	}
	return 0, false
}

// PatchableFields lists the external field names callers may update.
func PatchableFields() []string {
	return []string{
		ColTaskIDRoot.Field(),
		ColSprint.Field(),
		ColContext.Field(),
		ColDescription.Field(),
		ColDetail.Field(),
		ColPriority.Field(),
		ColStatus.Field(),
	}
}

// IsPatchable reports whether a column may be changed by an update request.
func (c Column) IsPatchable() bool {
	switch c {
	case ColProject, ColTaskID, ColCreatedAt, ColResolvedAt:
		return false
	}
	return c.Valid()
}
