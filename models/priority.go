package models

import "strings"

// TaskPriority is the severity label stored in the Priority column.
type TaskPriority string

const (
	PriorityLow    TaskPriority = "Baixa"
	PriorityNormal TaskPriority = "Normal"
	PriorityHigh   TaskPriority = "Alta"
	PriorityUrgent TaskPriority = "Urgente"
)

var allPriorities = []TaskPriority{PriorityLow, PriorityNormal, PriorityHigh, PriorityUrgent}

// TaskPriorities returns every valid priority from lowest to highest.
func TaskPriorities() []TaskPriority {
	out := make([]TaskPriority, len(allPriorities))
	copy(out, allPriorities)
	return out
}

// PriorityValues returns the valid priorities as plain strings.
func PriorityValues() []string {
	out := make([]string, len(allPriorities))
	for i, p := range allPriorities {
		out[i] = string(p)
	}
	return out
}

// IsValid reports whether p is one of the declared priorities.
func (p TaskPriority) IsValid() bool {
	switch p {
	case PriorityLow, PriorityNormal, PriorityHigh, PriorityUrgent:
		return true
	}
	return false
}

// ParsePriority converts raw input into a TaskPriority.
func ParsePriority(raw string) (TaskPriority, error) {
	p := TaskPriority(strings.TrimSpace(raw))
	if !p.IsValid() {
		return "", &ValidationError{Field: "prioridade", Value: raw, Allowed: PriorityValues()}
	}
	return p, nil
}
