package mcp

// Basic MCP tools: list, get, add, update, configs, sprint stats

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"

	mcpsdk "github.com/modelcontextprotocol/go-sdk/mcp"
	"go.uber.org/zap"

	"github.com/josephgoksu/kanban-sheets/models"
	"github.com/josephgoksu/kanban-sheets/store"
	"github.com/josephgoksu/kanban-sheets/types"
)

// listTasksHandler filters the cached tasks, optionally one page at a time
func (t *Tools) listTasksHandler() mcpsdk.ToolHandlerFor[types.ListTasksParams, any] {
	return func(ctx context.Context, ss *mcpsdk.ServerSession, params *mcpsdk.CallToolParamsFor[types.ListTasksParams]) (*mcpsdk.CallToolResultFor[any], error) {
		args := params.Arguments
		log := t.begin("list_tasks")

		filters, err := buildFilters(args.Filters)
		if err != nil {
			log.Warn("invalid filters", zap.Error(err))
			return errorResult[any](err), nil
		}
		page, err := buildPagination(args.Pagination)
		if err != nil {
			log.Warn("invalid pagination", zap.Error(err))
			return errorResult[any](err), nil
		}

		conn, err := t.connector(ctx)
		if err != nil {
			log.Error("connector unavailable", zap.Error(err))
			return errorResult[any](err), nil
		}
		res, err := conn.Search(filters, page)
		if err != nil {
			log.Error("search failed", zap.Error(err))
			return errorResult[any](storageError(err, "search tasks")), nil
		}

		// Only the page envelope is an object; a bare list stays text-only.
		var structured any
		if res.Paginated {
			structured = res.Page
			log.Info("listed tasks", zap.Int("total", res.Page.TotalCount), zap.Int("page", res.Page.Page))
		} else {
			log.Info("listed tasks", zap.Int("total", len(res.Rows)))
		}
		return jsonResult[any](res.Payload(), structured)
	}
}

// getOneTaskHandler returns the task stored under (project, task_id)
func (t *Tools) getOneTaskHandler() mcpsdk.ToolHandlerFor[types.GetOneTaskParams, any] {
	return func(ctx context.Context, ss *mcpsdk.ServerSession, params *mcpsdk.CallToolParamsFor[types.GetOneTaskParams]) (*mcpsdk.CallToolResultFor[any], error) {
		args := params.Arguments
		log := t.begin("get_one_task", zap.String("project", args.Project), zap.String("task_id", args.TaskID))

		if err := requireKey(args.Project, args.TaskID); err != nil {
			return errorResult[any](err), nil
		}
		conn, err := t.connector(ctx)
		if err != nil {
			log.Error("connector unavailable", zap.Error(err))
			return errorResult[any](err), nil
		}

		row, err := conn.GetOne(strings.TrimSpace(args.Project), strings.TrimSpace(args.TaskID))
		if errors.Is(err, store.ErrTaskNotFound) {
			log.Info("task not found")
			return notFoundResult[any](err), nil
		}
		if err != nil {
			log.Error("lookup failed", zap.Error(err))
			return errorResult[any](storageError(err, "get task")), nil
		}
		return jsonResult[any](row, row)
	}
}

// getTasksHandler fetches several tasks of one project. Misses are reported
// in place rather than failing the call.
func (t *Tools) getTasksHandler() mcpsdk.ToolHandlerFor[types.GetTasksParams, any] {
	return func(ctx context.Context, ss *mcpsdk.ServerSession, params *mcpsdk.CallToolParamsFor[types.GetTasksParams]) (*mcpsdk.CallToolResultFor[any], error) {
		args := params.Arguments
		log := t.begin("get_one_or_more_tasks", zap.String("project", args.Project), zap.Strings("task_ids", args.TaskIDList))

		project := strings.TrimSpace(args.Project)
		if project == "" {
			return errorResult[any](validationError(&models.ValidationError{Field: models.ColProject.Field()})), nil
		}
		conn, err := t.connector(ctx)
		if err != nil {
			log.Error("connector unavailable", zap.Error(err))
			return errorResult[any](err), nil
		}

		out := make([]interface{}, 0, len(args.TaskIDList))
		missing := 0
		for _, id := range args.TaskIDList {
			id = strings.TrimSpace(id)
			row, err := conn.GetOne(project, id)
			if err != nil {
				missing++
				out = append(out, types.LookupError{TaskID: id, Project: project, Error: err.Error()})
				continue
			}
			out = append(out, row)
		}
		log.Info("fetched tasks", zap.Int("requested", len(args.TaskIDList)), zap.Int("missing", missing))
		return jsonResult[any](out, nil)
	}
}

// addTaskHandler validates, stamps and appends a single task
func (t *Tools) addTaskHandler() mcpsdk.ToolHandlerFor[types.AddTaskParams, any] {
	return func(ctx context.Context, ss *mcpsdk.ServerSession, params *mcpsdk.CallToolParamsFor[types.AddTaskParams]) (*mcpsdk.CallToolResultFor[any], error) {
		log := t.begin("add_task", zap.String("project", params.Arguments.Task.Project), zap.String("task_id", params.Arguments.Task.TaskID))

		task, err := prepareTask(params.Arguments.Task, t.now())
		if err != nil {
			log.Warn("invalid task", zap.Error(err))
			return errorResult[any](err), nil
		}
		conn, err := t.connector(ctx)
		if err != nil {
			log.Error("connector unavailable", zap.Error(err))
			return errorResult[any](err), nil
		}

		if _, err := conn.GetOne(task.Project, task.TaskID); err == nil {
			log.Warn("duplicate task")
			return errorResult[any](duplicateError(task.Project, task.TaskID)), nil
		}

		if err := conn.Add(ctx, [][]string{task.Values()}); err != nil {
			log.Error("add failed", zap.Error(err))
			return errorResult[any](storageError(err, "add task")), nil
		}

		log.Info("task added")
		return textResult[any](fmt.Sprintf("Task '%s' added successfully to project '%s'", task.TaskID, task.Project)), nil
	}
}

// updateTaskHandler applies a sparse update to one task
func (t *Tools) updateTaskHandler() mcpsdk.ToolHandlerFor[types.UpdateTaskParams, any] {
	return func(ctx context.Context, ss *mcpsdk.ServerSession, params *mcpsdk.CallToolParamsFor[types.UpdateTaskParams]) (*mcpsdk.CallToolResultFor[any], error) {
		args := params.Arguments
		log := t.begin("update_task", zap.String("project", args.Project), zap.String("task_id", args.TaskID))

		if err := requireKey(args.Project, args.TaskID); err != nil {
			return errorResult[any](err), nil
		}
		patch, skipped, err := buildPatch(args.Project, args.TaskID, args.Updates, t.now())
		if err != nil {
			log.Warn("invalid update", zap.Error(err))
			return errorResult[any](err), nil
		}

		conn, err := t.connector(ctx)
		if err != nil {
			log.Error("connector unavailable", zap.Error(err))
			return errorResult[any](err), nil
		}
		if _, err := conn.GetOne(patch.Project, patch.TaskID); err != nil {
			log.Info("task not found")
			return notFoundResult[any](err), nil
		}

		res, err := conn.Update(ctx, []models.TaskPatch{patch})
		if err != nil {
			log.Error("update failed", zap.Error(err))
			return errorResult[any](storageError(err, "update task")), nil
		}
		if res.ErrorCount > 0 {
			return errorPayload[any](res.Details[0].Message, true), nil
		}

		msg := fmt.Sprintf("Task '%s' in project '%s' updated successfully", patch.TaskID, patch.Project)
		if len(skipped) > 0 {
			sort.Strings(skipped)
			msg += fmt.Sprintf(" (ignored fields: %s)", strings.Join(skipped, ", "))
			log.Info("task updated", zap.Strings("ignored", skipped))
		} else {
			log.Info("task updated")
		}
		return textResult[any](msg), nil
	}
}

// validConfigsHandler lists the accepted enum values
func (t *Tools) validConfigsHandler() mcpsdk.ToolHandlerFor[types.ValidConfigsParams, *types.ValidConfigsResponse] {
	return func(ctx context.Context, ss *mcpsdk.ServerSession, params *mcpsdk.CallToolParamsFor[types.ValidConfigsParams]) (*mcpsdk.CallToolResultFor[*types.ValidConfigsResponse], error) {
		t.begin("get_valid_configs")
		cfg := ValidConfigs()
		return jsonResult(cfg, cfg)
	}
}

// sprintStatsHandler aggregates tasks per sprint
func (t *Tools) sprintStatsHandler() mcpsdk.ToolHandlerFor[types.SprintStatsParams, *types.SprintStatsResponse] {
	return func(ctx context.Context, ss *mcpsdk.ServerSession, params *mcpsdk.CallToolParamsFor[types.SprintStatsParams]) (*mcpsdk.CallToolResultFor[*types.SprintStatsResponse], error) {
		project := strings.TrimSpace(params.Arguments.Project)
		log := t.begin("get_sprint_stats", zap.String("project", project))

		conn, err := t.connector(ctx)
		if err != nil {
			log.Error("connector unavailable", zap.Error(err))
			return errorResult[*types.SprintStatsResponse](err), nil
		}
		stats, err := conn.SprintStats(project)
		if err != nil {
			log.Error("sprint stats failed", zap.Error(err))
			return errorResult[*types.SprintStatsResponse](storageError(err, "compute sprint stats")), nil
		}
		if stats == nil {
			stats = []models.SprintStat{}
		}

		resp := &types.SprintStatsResponse{Sprints: stats, TotalSprints: len(stats)}
		log.Info("sprint stats", zap.Int("sprints", resp.TotalSprints))
		return jsonResult(resp, resp)
	}
}

func duplicateError(project, taskID string) *types.MCPError {
	return types.NewMCPError(types.CodeDuplicateTask,
		fmt.Sprintf("task '%s' already exists in project '%s'", taskID, project),
		map[string]interface{}{"project": project, "task_id": taskID})
}
