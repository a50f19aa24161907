package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestColumnTables(t *testing.T) {
	assert.Equal(t, 11, ColumnCount())
	assert.Equal(t, []string{
		"Nome Projeto", "Task ID", "Task ID Root", "Sprint", "Contexto", "Descrição",
		"Detalhado", "Prioridade", "Status", "Data Criação", "Data Solução",
	}, Header())

	assert.Equal(t, "Nome-Projeto", ColProject.Key())
	assert.Equal(t, "Data-Solução", ColResolvedAt.Key())
	assert.Equal(t, "descricao", ColDescription.Field())
	assert.Equal(t, "A", ColProject.Letter())
	assert.Equal(t, "K", ColResolvedAt.Letter())
}

func TestColumnLookups(t *testing.T) {
	for _, c := range Columns() {
		byField, ok := ColumnForField(c.Field())
		assert.True(t, ok)
		assert.Equal(t, c, byField)

		byKey, ok := ColumnForKey(c.Key())
		assert.True(t, ok)
		assert.Equal(t, c, byKey)

		byHeader, ok := ColumnForHeader(" " + c.Display() + " ")
		assert.True(t, ok)
		assert.Equal(t, c, byHeader)
	}

	_, ok := ColumnForField("owner")
	assert.False(t, ok)
	_, ok = ColumnForKey("Nome Projeto")
	assert.False(t, ok, "keys are normalized")
}

func TestHeaderAliases(t *testing.T) {
	c, ok := ColumnForHeader("Projeto")
	assert.True(t, ok)
	assert.Equal(t, ColProject, c)
}

func TestPatchableColumns(t *testing.T) {
	assert.False(t, ColProject.IsPatchable())
	assert.False(t, ColTaskID.IsPatchable())
	assert.False(t, ColCreatedAt.IsPatchable())
	assert.False(t, ColResolvedAt.IsPatchable())
	for _, f := range PatchableFields() {
		c, ok := ColumnForField(f)
		assert.True(t, ok)
		assert.True(t, c.IsPatchable(), f)
	}
}

func TestDenormalizeKey(t *testing.T) {
	assert.Equal(t, "Task ID Root", DenormalizeKey("Task-ID-Root"))
	assert.Equal(t, "Extra Column", DenormalizeKey("Extra-Column"))
}
