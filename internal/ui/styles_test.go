package ui

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/josephgoksu/kanban-sheets/models"
)

func TestStatusStyle(t *testing.T) {
	assert.Equal(t, StyleSuccess.GetForeground(), StatusStyle(models.StatusDone).GetForeground())
	assert.Equal(t, StyleError.GetForeground(), StatusStyle(models.StatusBlocked).GetForeground())
	assert.Equal(t, StyleSubtle.GetForeground(), StatusStyle(models.StatusCancelled).GetForeground())
	assert.Equal(t, StyleText.GetForeground(), StatusStyle("Unknown").GetForeground())
}

func TestPriorityStyle(t *testing.T) {
	assert.True(t, PriorityStyle(models.PriorityUrgent).GetBold())
	assert.Equal(t, StyleWarning.GetForeground(), PriorityStyle(models.PriorityHigh).GetForeground())
	assert.Equal(t, StyleText.GetForeground(), PriorityStyle(models.PriorityNormal).GetForeground())
}

func TestIcon(t *testing.T) {
	assert.Contains(t, Icon("✔", StyleSuccess), "✔")
}
