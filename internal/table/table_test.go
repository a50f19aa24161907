package table

import (
	"testing"

	"github.com/josephgoksu/kanban-sheets/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleRows() [][]string {
	return [][]string{
		{"Back-End", "BE-1", "", "Sprint 1", "API", "Create endpoint", "", "Alta", "Todo", "2025-01-01 10:00:00", ""},
		{"Front-End", "FE-1", "BE-1", "Sprint 1", "UI", "Build form", "", "Normal", "Concluído"},
	}
}

func TestNewNormalizesHeaderAndPadsRows(t *testing.T) {
	tbl := New(models.Header(), sampleRows())

	assert.Equal(t, models.Keys(), tbl.Header())
	require.Equal(t, 2, tbl.Len())
	assert.Equal(t, "", tbl.Get(1, models.ColCreatedAt), "short row is padded")
	assert.Equal(t, "Concluído", tbl.Get(1, models.ColStatus))
}

func TestNewSkipsBlankRowsAndMapsAliases(t *testing.T) {
	header := models.Header()
	header[0] = "Projeto"
	tbl := New(header, [][]string{{}, {"", ""}, sampleRows()[0]})

	require.Equal(t, 1, tbl.Len())
	assert.True(t, tbl.HasKeyColumns())
	assert.Equal(t, 0, tbl.Find("Back-End", "BE-1"))
}

func TestFind(t *testing.T) {
	tbl := New(models.Header(), sampleRows())

	assert.Equal(t, 1, tbl.Find("Front-End", "FE-1"))
	assert.Equal(t, -1, tbl.Find("Back-End", "FE-1"), "key is composite")
	assert.Equal(t, -1, Empty().Find("Back-End", "BE-1"))

	noKeys := New([]string{"Sprint", "Status"}, [][]string{{"Sprint 1", "Todo"}})
	assert.Equal(t, -1, noKeys.Find("Back-End", "BE-1"))
}

func TestRowUsesDisplayNames(t *testing.T) {
	tbl := New(models.Header(), sampleRows())
	row := tbl.Row(0)

	assert.Equal(t, "Back-End", row["Nome Projeto"])
	assert.Equal(t, "Create endpoint", row["Descrição"])
	assert.Len(t, row, models.ColumnCount())
	assert.Nil(t, tbl.Row(5))
}

func TestSetAndClone(t *testing.T) {
	tbl := New(models.Header(), sampleRows())
	snapshot := tbl.Clone()

	assert.True(t, tbl.Set(0, models.ColStatus.Key(), "Impedido"))
	assert.False(t, tbl.Set(0, "Owner", "x"))
	assert.False(t, tbl.Set(9, models.ColStatus.Key(), "Todo"))

	assert.Equal(t, "Impedido", tbl.Get(0, models.ColStatus))
	assert.Equal(t, "Todo", snapshot.Get(0, models.ColStatus))
}

func TestAppendAndTruncate(t *testing.T) {
	tbl := Empty()
	first := tbl.Append(sampleRows()...)

	assert.Equal(t, 0, first)
	assert.Equal(t, 2, tbl.Len())
	assert.Equal(t, sampleRows()[0], tbl.RowValues(0))

	tbl.Truncate(1)
	assert.Equal(t, 1, tbl.Len())
}

func TestAppendFollowsTableColumnOrder(t *testing.T) {
	header := []string{"Task ID", "Nome Projeto", "Status"}
	tbl := New(header, nil)
	tbl.Append(sampleRows()[0])

	assert.Equal(t, [][]string{
		{"Task ID", "Nome Projeto", "Status"},
		{"BE-1", "Back-End", "Todo"},
	}, tbl.Records())
	assert.Equal(t, "Todo", tbl.RowValues(0)[models.ColStatus])
}

func TestRecords(t *testing.T) {
	tbl := New(models.Header(), sampleRows())
	records := tbl.Records()

	require.Len(t, records, 3)
	assert.Equal(t, models.Header(), records[0])
	assert.Len(t, records[2], models.ColumnCount())
}

func TestArrangeAndCells(t *testing.T) {
	tbl := New([]string{"Status", "Task ID", "Nome Projeto"}, [][]string{{"Todo", "BE-1", "Back-End"}})

	assert.Equal(t, []string{"Todo", "BE-1", "Back-End"}, tbl.Cells(0))
	assert.Equal(t, []string{"Alta", "X-1", "Proj"},
		tbl.Arrange([]string{"Proj", "X-1", "", "", "", "", "", "", "Alta"}))
	assert.Equal(t, 3, tbl.Width())
	assert.Nil(t, tbl.Cells(3))
}

func TestPositionCountsBlankRows(t *testing.T) {
	rows := sampleRows()
	tbl := New(models.Header(), [][]string{
		{},
		rows[0],
		{"", "", ""},
		rows[1],
		{},
	})

	require.Equal(t, 2, tbl.Len())
	assert.Equal(t, 1, tbl.Position(0))
	assert.Equal(t, 3, tbl.Position(1))
	assert.Equal(t, -1, tbl.Position(2))

	clone := tbl.Clone()
	assert.Equal(t, 3, clone.Position(1))

	first := tbl.Append(rows[0])
	assert.Equal(t, 5, tbl.Position(first))

	tbl.Truncate(1)
	tbl.Append(rows[1])
	assert.Equal(t, 2, tbl.Position(1))
}
