// Package ui renders CLI output with lipgloss.
package ui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/josephgoksu/kanban-sheets/models"
)

var (
	// Colors
	ColorPrimary   = lipgloss.Color("205") // Pink
	ColorSecondary = lipgloss.Color("241") // Gray
	ColorSuccess   = lipgloss.Color("42")  // Green
	ColorError     = lipgloss.Color("160") // Red
	ColorWarning   = lipgloss.Color("214") // Orange
	ColorText      = lipgloss.Color("252") // White/Gray
	ColorBlue      = lipgloss.Color("75")

	// Base Styles
	StyleTitle   = lipgloss.NewStyle().Foreground(ColorText).Bold(true)
	StyleSubtle  = lipgloss.NewStyle().Foreground(ColorSecondary)
	StylePrimary = lipgloss.NewStyle().Foreground(ColorPrimary)
	StyleSuccess = lipgloss.NewStyle().Foreground(ColorSuccess)
	StyleError   = lipgloss.NewStyle().Foreground(ColorError)
	StyleWarning = lipgloss.NewStyle().Foreground(ColorWarning)
	StyleText    = lipgloss.NewStyle().Foreground(ColorText)

	StyleHeader = lipgloss.NewStyle().
			Foreground(ColorPrimary).
			Bold(true).
			Padding(0, 1)
)

// StatusStyle colors a task status by how far along it is.
func StatusStyle(s models.TaskStatus) lipgloss.Style {
	switch s {
	case models.StatusDone:
		return StyleSuccess
	case models.StatusInProgress:
		return lipgloss.NewStyle().Foreground(ColorBlue)
	case models.StatusBlocked:
		return StyleError
	case models.StatusPaused:
		return StyleWarning
	case models.StatusCancelled, models.StatusNotRelated:
		return StyleSubtle
	default:
		return StyleText
	}
}

// PriorityStyle colors a task priority.
func PriorityStyle(p models.TaskPriority) lipgloss.Style {
	switch p {
	case models.PriorityUrgent:
		return StyleError.Bold(true)
	case models.PriorityHigh:
		return StyleWarning
	case models.PriorityLow:
		return StyleSubtle
	default:
		return StyleText
	}
}

// Icon returns a styled icon string
func Icon(icon string, style lipgloss.Style) string {
	return style.Render(icon)
}
