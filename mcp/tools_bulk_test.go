package mcp

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/josephgoksu/kanban-sheets/models"
	"github.com/josephgoksu/kanban-sheets/types"
)

func TestBatchAddTasks(t *testing.T) {
	env := setupTools(t, boardRows()...)

	invalid := newTask("Back-End", "BE-21")
	invalid.Status = "Done"

	res := call(t, env.tools.batchAddTasksHandler(), types.BatchAddTasksParams{Tasks: []models.Task{
		newTask("Back-End", "BE-20"),
		invalid,
		newTask("Back-End", "BE-1"),  // already stored
		newTask("Back-End", "BE-20"), // repeated in this batch
		newTask("Data", "DT-1"),
	}})
	require.False(t, res.IsError, textOf(t, res))

	out := res.StructuredContent
	assert.Equal(t, 2, out.SuccessCount)
	assert.Equal(t, 3, out.ErrorCount)
	require.Len(t, out.Details, 5)

	want := []struct {
		id, status, msg string
	}{
		{"BE-20", models.BatchSuccess, "task added successfully"},
		{"BE-21", models.BatchError, `invalid status "Done"`},
		{"BE-1", models.BatchError, "already exists"},
		{"BE-20", models.BatchError, "more than once"},
		{"DT-1", models.BatchSuccess, "task added successfully"},
	}
	for i, w := range want {
		d := out.Details[i]
		assert.Equal(t, w.id, d.TaskID, "detail %d", i)
		assert.Equal(t, w.status, d.Status, "detail %d", i)
		assert.Contains(t, d.Message, w.msg, "detail %d", i)
	}

	for _, key := range [][2]string{{"Back-End", "BE-20"}, {"Data", "DT-1"}} {
		row, err := env.conn.GetOne(key[0], key[1])
		require.NoError(t, err)
		assert.Equal(t, fixedStamp, row["Data Criação"])
	}
	_, err := env.conn.GetOne("Back-End", "BE-21")
	assert.Error(t, err)

	decoded := decode[map[string]interface{}](t, textOf(t, res))
	assert.EqualValues(t, 2, decoded["success_count"])
}

func TestBatchAddTasksWriteFailure(t *testing.T) {
	env := setupTools(t, boardRows()...).readOnly(t)

	res := call(t, env.tools.batchAddTasksHandler(), types.BatchAddTasksParams{Tasks: []models.Task{
		newTask("Back-End", "BE-30"),
		newTask("Back-End", "BE-1"),
		newTask("Back-End", "BE-31"),
	}})
	assert.True(t, res.IsError)

	out := res.StructuredContent
	assert.Equal(t, 0, out.SuccessCount)
	assert.Equal(t, 3, out.ErrorCount)
	assert.Contains(t, out.Details[0].Message, "failed to add tasks")
	assert.Contains(t, out.Details[1].Message, "already exists")
	assert.Contains(t, out.Details[2].Message, "failed to add tasks")

	_, err := env.conn.GetOne("Back-End", "BE-30")
	assert.Error(t, err)
}

func TestBatchAddTasksEmpty(t *testing.T) {
	env := setupTools(t)

	res := call(t, env.tools.batchAddTasksHandler(), types.BatchAddTasksParams{})
	assert.True(t, res.IsError)
	assert.Contains(t, textOf(t, res), "tasks must not be empty")
}

func TestBatchUpdateTasks(t *testing.T) {
	env := setupTools(t, boardRows()...)

	res := call(t, env.tools.batchUpdateTasksHandler(), types.BatchUpdateTasksParams{Updates: []types.TaskUpdateItem{
		{Project: "Back-End", TaskID: "BE-3", Fields: map[string]string{"status": "Concluído"}},
		{Project: "Back-End", TaskID: "BE-404", Fields: map[string]string{"status": "Todo"}},
		{Project: "Front-End", TaskID: "FE-1", Fields: map[string]string{"status": "Finished"}},
		{Project: "", TaskID: "FE-2", Fields: map[string]string{"sprint": "Sprint 2"}},
		{Project: "Front-End", TaskID: "FE-2", Fields: map[string]string{"sprint": "Sprint 2", "prioridade": "Alta"}},
	}})
	require.False(t, res.IsError, textOf(t, res))

	out := res.StructuredContent
	assert.Equal(t, 2, out.SuccessCount)
	assert.Equal(t, 3, out.ErrorCount)
	require.Len(t, out.Details, 5)

	assert.Equal(t, models.BatchSuccess, out.Details[0].Status)
	assert.Contains(t, out.Details[1].Message, "task not found")
	assert.Contains(t, out.Details[2].Message, `invalid status "Finished"`)
	assert.Equal(t, "project is required", out.Details[3].Message)
	assert.Equal(t, "FE-2", out.Details[4].TaskID)
	assert.Equal(t, models.BatchSuccess, out.Details[4].Status)

	be3, err := env.conn.GetOne("Back-End", "BE-3")
	require.NoError(t, err)
	assert.Equal(t, "Concluído", be3["Status"])
	assert.Equal(t, fixedStamp, be3["Data Solução"])

	fe1, err := env.conn.GetOne("Front-End", "FE-1")
	require.NoError(t, err)
	assert.Equal(t, "Em Desenvolvimento", fe1["Status"])

	fe2, err := env.conn.GetOne("Front-End", "FE-2")
	require.NoError(t, err)
	assert.Equal(t, "Sprint 2", fe2["Sprint"])
	assert.Equal(t, "Alta", fe2["Prioridade"])

	stats := call(t, env.tools.sprintStatsHandler(), types.SprintStatsParams{}).StructuredContent
	require.Equal(t, 2, stats.TotalSprints)
	assert.Equal(t, 100.0, stats.Sprints[0].CompletionPercentage)
}

func TestBatchUpdateTasksWriteFailure(t *testing.T) {
	env := setupTools(t, boardRows()...).readOnly(t)

	res := call(t, env.tools.batchUpdateTasksHandler(), types.BatchUpdateTasksParams{Updates: []types.TaskUpdateItem{
		{Project: "Back-End", TaskID: "BE-3", Fields: map[string]string{"status": "Concluído"}},
		{Project: "Back-End", TaskID: "BE-2", Fields: map[string]string{"descricao": "changed"}},
	}})
	assert.True(t, res.IsError)

	out := res.StructuredContent
	assert.Equal(t, 0, out.SuccessCount)
	assert.Equal(t, 2, out.ErrorCount)

	be3, err := env.conn.GetOne("Back-End", "BE-3")
	require.NoError(t, err)
	assert.Equal(t, "Todo", be3["Status"])
	assert.Equal(t, "", be3["Data Solução"])
}

func TestBatchUpdateTasksAllInvalidSkipsConnector(t *testing.T) {
	env := setupTools(t, boardRows()...).readOnly(t)

	// A read-only store would fail any flush; none must be attempted.
	res := call(t, env.tools.batchUpdateTasksHandler(), types.BatchUpdateTasksParams{Updates: []types.TaskUpdateItem{
		{Project: "Back-End", TaskID: "BE-3", Fields: map[string]string{"prioridade": "Máxima"}},
	}})
	assert.False(t, res.IsError)
	assert.Equal(t, 1, res.StructuredContent.ErrorCount)
	assert.Contains(t, res.StructuredContent.Details[0].Message, "valid values are Baixa, Normal, Alta, Urgente")
}
