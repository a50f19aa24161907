package models

import "strings"

// TaskStatus is the workflow state of a task as stored in the Status column.
type TaskStatus string

const (
	StatusTodo       TaskStatus = "Todo"
	StatusInProgress TaskStatus = "Em Desenvolvimento"
	StatusBlocked    TaskStatus = "Impedido"
	StatusDone       TaskStatus = "Concluído"
	StatusCancelled  TaskStatus = "Cancelado"
	StatusNotRelated TaskStatus = "Não Relacionado"
	StatusPaused     TaskStatus = "Pausado"
)

var allStatuses = []TaskStatus{
	StatusTodo,
	StatusInProgress,
	StatusBlocked,
	StatusDone,
	StatusCancelled,
	StatusNotRelated,
	StatusPaused,
}

// TaskStatuses returns every valid status in declaration order.
func TaskStatuses() []TaskStatus {
	out := make([]TaskStatus, len(allStatuses))
	copy(out, allStatuses)
	return out
}

// StatusValues returns the valid statuses as plain strings.
func StatusValues() []string {
	out := make([]string, len(allStatuses))
	for i, s := range allStatuses {
		out[i] = string(s)
	}
	return out
}

// IsValid reports whether s is one of the declared statuses.
func (s TaskStatus) IsValid() bool {
	switch s {
	case StatusTodo, StatusInProgress, StatusBlocked, StatusDone, StatusCancelled, StatusNotRelated, StatusPaused:
		return true
	}
	return false
}

// IsTerminal reports whether a task in this status counts as finished.
// Moving into a terminal status stamps the resolution date.
func (s TaskStatus) IsTerminal() bool {
	switch s {
	case StatusDone, StatusCancelled, StatusNotRelated:
		return true
	}
	return false
}

// ParseStatus converts raw input into a TaskStatus. Only exact values are
// accepted (surrounding whitespace is ignored).
func ParseStatus(raw string) (TaskStatus, error) {
	s := TaskStatus(strings.TrimSpace(raw))
	if !s.IsValid() {
		return "", &ValidationError{Field: "status", Value: raw, Allowed: StatusValues()}
	}
	return s, nil
}
