/*
Copyright © 2025 Joseph Goksu josephgoksu@gmail.com
*/
package types

import "github.com/josephgoksu/kanban-sheets/models"

// MCP Tool Parameter Types

// FilterParams narrows list_tasks; every set field must match
type FilterParams struct {
	Prioridade []string `json:"prioridade,omitempty" jsonschema:"Priorities to include: Baixa, Normal, Alta, Urgente"`
	Status     []string `json:"status,omitempty" jsonschema:"Statuses to include"`
	Contexto   string   `json:"contexto,omitempty" jsonschema:"Context, case-insensitive partial match"`
	Projeto    string   `json:"projeto,omitempty" jsonschema:"Project name, case-insensitive partial match"`
	TextoBusca string   `json:"texto_busca,omitempty" jsonschema:"Text searched in description and detail, case-insensitive"`
	TaskID     string   `json:"task_id,omitempty" jsonschema:"Exact task id"`
	Sprint     string   `json:"sprint,omitempty" jsonschema:"Exact sprint name"`
}

// PaginationParams selects one page of list_tasks results
type PaginationParams struct {
	Page     int `json:"page,omitempty" jsonschema:"Page number starting at 1 (default 1)"`
	PageSize int `json:"page_size,omitempty" jsonschema:"Items per page, 1 to 500 (default 50)"`
}

// ListTasksParams for listing and filtering tasks
type ListTasksParams struct {
	Filters    *FilterParams     `json:"filters,omitempty" jsonschema:"Optional filters"`
	Pagination *PaginationParams `json:"pagination,omitempty" jsonschema:"Optional pagination; without it every match is returned"`
}

// GetOneTaskParams for retrieving a specific task
type GetOneTaskParams struct {
	Project string `json:"project" jsonschema:"Project name (required)"`
	TaskID  string `json:"task_id" jsonschema:"Task id (required)"`
}

// GetTasksParams for retrieving several tasks of one project
type GetTasksParams struct {
	Project    string   `json:"project" jsonschema:"Project name (required)"`
	TaskIDList []string `json:"task_id_list" jsonschema:"Task ids to fetch"`
}

// AddTaskParams for creating a new task
type AddTaskParams struct {
	Task models.Task `json:"task" jsonschema:"Task to add; data_criacao is set automatically"`
}

// BatchAddTasksParams for creating multiple tasks at once
type BatchAddTasksParams struct {
	Tasks []models.Task `json:"tasks" jsonschema:"Tasks to add"`
}

// UpdateTaskParams for updating an existing task
type UpdateTaskParams struct {
	Project string            `json:"project" jsonschema:"Project name (required)"`
	TaskID  string            `json:"task_id" jsonschema:"Task id (required)"`
	Updates map[string]string `json:"updates" jsonschema:"Fields to change: task_id_root, sprint, contexto, descricao, detalhado, prioridade, status"`
}

// TaskUpdateItem is one entry of batch_update_tasks
type TaskUpdateItem struct {
	Project string            `json:"project" jsonschema:"Project name (required)"`
	TaskID  string            `json:"task_id" jsonschema:"Task id (required)"`
	Fields  map[string]string `json:"fields" jsonschema:"Fields to change"`
}

// BatchUpdateTasksParams for updating multiple tasks at once
type BatchUpdateTasksParams struct {
	Updates []TaskUpdateItem `json:"updates" jsonschema:"Updates to apply"`
}

// SprintStatsParams for get_sprint_stats
type SprintStatsParams struct {
	Project string `json:"project,omitempty" jsonschema:"Restrict statistics to one project"`
}

// MCP Response Types

// ValidConfigsResponse lists the accepted enum values
type ValidConfigsResponse struct {
	ValidTaskStatus     []string `json:"valid_task_status"`
	ValidTaskPriorities []string `json:"valid_task_priorities"`
}

// SprintStatsResponse wraps per-sprint statistics
type SprintStatsResponse struct {
	Sprints      []models.SprintStat `json:"sprints"`
	TotalSprints int                 `json:"total_sprints"`
}

// LookupError is returned in place of a task that could not be fetched
type LookupError struct {
	TaskID  string `json:"task_id"`
	Project string `json:"project"`
	Error   string `json:"error"`
}

// ErrorResponse is the error-shaped payload of every tool
type ErrorResponse struct {
	Error string `json:"error"`
}

// ValidConfigsParams is the (empty) argument set of get_valid_configs
type ValidConfigsParams struct{}
