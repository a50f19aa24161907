package mcp

// Shared helpers for MCP tools (input validation and field mapping)

import (
	"fmt"
	"strings"
	"time"

	"github.com/josephgoksu/kanban-sheets/models"
	"github.com/josephgoksu/kanban-sheets/types"
)

// buildFilters validates enum filters and converts them to search filters.
func buildFilters(p *types.FilterParams) (*models.SearchFilters, error) {
	if p == nil {
		return nil, nil
	}
	f := &models.SearchFilters{
		TaskID:  strings.TrimSpace(p.TaskID),
		Context: strings.TrimSpace(p.Contexto),
		Project: strings.TrimSpace(p.Projeto),
		Text:    strings.TrimSpace(p.TextoBusca),
		Sprint:  strings.TrimSpace(p.Sprint),
	}
	for _, raw := range p.Prioridade {
		prio, err := models.ParsePriority(raw)
		if err != nil {
			return nil, validationError(err)
		}
		f.Priorities = append(f.Priorities, prio)
	}
	for _, raw := range p.Status {
		status, err := models.ParseStatus(raw)
		if err != nil {
			return nil, validationError(err)
		}
		f.Statuses = append(f.Statuses, status)
	}
	return f, nil
}

// buildPagination applies defaults and enforces the page bounds.
func buildPagination(p *types.PaginationParams) (*models.Pagination, error) {
	if p == nil {
		return nil, nil
	}
	page := models.Pagination{Page: p.Page, PageSize: p.PageSize}.WithDefaults()
	if err := models.ValidateStruct(page); err != nil {
		return nil, types.NewMCPError(types.CodeValidation,
			fmt.Sprintf("invalid pagination: page must be >= 1 and page_size between 1 and %d", models.MaxPageSize),
			map[string]interface{}{"page": p.Page, "page_size": p.PageSize})
	}
	return &page, nil
}

// prepareTask validates a new task and stamps its creation date.
func prepareTask(task models.Task, now time.Time) (models.Task, error) {
	task.Project = strings.TrimSpace(task.Project)
	task.TaskID = strings.TrimSpace(task.TaskID)
	if err := task.Validate(); err != nil {
		return task, validationError(err)
	}
	task.Stamp(now)
	return task, nil
}

// buildPatch maps external update fields onto cache keys. Unknown and
// read-only fields are skipped. A terminal status stamps the resolution date.
func buildPatch(project, taskID string, updates map[string]string, now time.Time) (models.TaskPatch, []string, error) {
	patch := models.TaskPatch{
		Project: strings.TrimSpace(project),
		TaskID:  strings.TrimSpace(taskID),
		Fields:  make(map[string]string, len(updates)+1),
	}
	var skipped []string

	for field, value := range updates {
		col, ok := models.ColumnForField(field)
		if !ok || !col.IsPatchable() {
			skipped = append(skipped, field)
			continue
		}
		switch col {
		case models.ColStatus:
			status, err := models.ParseStatus(value)
			if err != nil {
				return patch, skipped, validationError(err)
			}
			value = string(status)
			if status.IsTerminal() {
				patch.Fields[models.ColResolvedAt.Key()] = now.Format(models.TimestampLayout)
			}
		case models.ColPriority:
			prio, err := models.ParsePriority(value)
			if err != nil {
				return patch, skipped, validationError(err)
			}
			value = string(prio)
		}
		patch.Fields[col.Key()] = value
	}

	if len(patch.Fields) == 0 {
		return patch, skipped, types.NewMCPError(types.CodeValidation,
			fmt.Sprintf("no updatable fields given; allowed fields are %s", strings.Join(models.PatchableFields(), ", ")),
			map[string]interface{}{"ignored": skipped})
	}
	return patch, skipped, nil
}

func requireKey(project, taskID string) error {
	if strings.TrimSpace(project) == "" {
		return validationError(&models.ValidationError{Field: models.ColProject.Field()})
	}
	if strings.TrimSpace(taskID) == "" {
		return validationError(&models.ValidationError{Field: models.ColTaskID.Field()})
	}
	return nil
}
