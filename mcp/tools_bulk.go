package mcp

// Bulk MCP tools: batch add and batch update

import (
	"context"
	"fmt"
	"strings"

	mcpsdk "github.com/modelcontextprotocol/go-sdk/mcp"
	"go.uber.org/zap"

	"github.com/josephgoksu/kanban-sheets/models"
	"github.com/josephgoksu/kanban-sheets/types"
)

const taskAddedMessage = "task added successfully"

type taskKey struct{ project, taskID string }

// batchAddTasksHandler validates every task, then writes the valid ones in
// a single append. Details follow input order.
func (t *Tools) batchAddTasksHandler() mcpsdk.ToolHandlerFor[types.BatchAddTasksParams, *models.BatchResult] {
	return func(ctx context.Context, ss *mcpsdk.ServerSession, params *mcpsdk.CallToolParamsFor[types.BatchAddTasksParams]) (*mcpsdk.CallToolResultFor[*models.BatchResult], error) {
		tasks := params.Arguments.Tasks
		log := t.begin("batch_add_tasks", zap.Int("count", len(tasks)))

		if len(tasks) == 0 {
			return errorResult[*models.BatchResult](types.NewMCPError(types.CodeValidation, "tasks must not be empty", nil)), nil
		}
		conn, err := t.connector(ctx)
		if err != nil {
			log.Error("connector unavailable", zap.Error(err))
			return errorResult[*models.BatchResult](err), nil
		}

		now := t.now()
		res := &models.BatchResult{Details: make([]models.BatchDetail, 0, len(tasks))}
		seen := make(map[taskKey]bool, len(tasks))
		rows := make([][]string, 0, len(tasks))

		for _, raw := range tasks {
			task, err := prepareTask(raw, now)
			if err != nil {
				res.Fail(task.Project, task.TaskID, mcpMessage(err))
				continue
			}
			key := taskKey{task.Project, task.TaskID}
			if seen[key] {
				res.Fail(task.Project, task.TaskID, fmt.Sprintf("task '%s' appears more than once for project '%s' in this batch", task.TaskID, task.Project))
				continue
			}
			if _, err := conn.GetOne(task.Project, task.TaskID); err == nil {
				res.Fail(task.Project, task.TaskID, duplicateError(task.Project, task.TaskID).Message)
				continue
			}
			seen[key] = true
			rows = append(rows, task.Values())
			res.Succeed(task.Project, task.TaskID, taskAddedMessage)
		}

		var isError bool
		if len(rows) > 0 {
			if err := conn.Add(ctx, rows); err != nil {
				log.Error("batch add failed", zap.Error(err))
				res.FailAll(storageError(err, "add tasks").Message)
				isError = true
			}
		}

		log.Info("batch add done", zap.Int("success", res.SuccessCount), zap.Int("errors", res.ErrorCount))
		out, err := jsonResult(res, res)
		if err != nil {
			return nil, err
		}
		out.IsError = isError
		return out, nil
	}
}

// batchUpdateTasksHandler validates every item, then applies the valid ones
// in one connector call. Details follow input order.
func (t *Tools) batchUpdateTasksHandler() mcpsdk.ToolHandlerFor[types.BatchUpdateTasksParams, *models.BatchResult] {
	return func(ctx context.Context, ss *mcpsdk.ServerSession, params *mcpsdk.CallToolParamsFor[types.BatchUpdateTasksParams]) (*mcpsdk.CallToolResultFor[*models.BatchResult], error) {
		items := params.Arguments.Updates
		log := t.begin("batch_update_tasks", zap.Int("count", len(items)))

		if len(items) == 0 {
			return errorResult[*models.BatchResult](types.NewMCPError(types.CodeValidation, "updates must not be empty", nil)), nil
		}
		conn, err := t.connector(ctx)
		if err != nil {
			log.Error("connector unavailable", zap.Error(err))
			return errorResult[*models.BatchResult](err), nil
		}

		now := t.now()
		details := make([]models.BatchDetail, len(items))
		valid := make([]int, 0, len(items))
		patches := make([]models.TaskPatch, 0, len(items))

		for i, item := range items {
			var patch models.TaskPatch
			err := requireKey(item.Project, item.TaskID)
			if err == nil {
				patch, _, err = buildPatch(item.Project, item.TaskID, item.Fields, now)
			}
			if err != nil {
				details[i] = models.BatchDetail{
					TaskID:  strings.TrimSpace(item.TaskID),
					Project: strings.TrimSpace(item.Project),
					Status:  models.BatchError,
					Message: mcpMessage(err),
				}
				continue
			}
			valid = append(valid, i)
			patches = append(patches, patch)
		}

		var isError bool
		if len(patches) > 0 {
			applied, err := conn.Update(ctx, patches)
			if err != nil {
				log.Error("batch update failed", zap.Error(err))
				isError = true
			}
			for j, idx := range valid {
				if j < len(applied.Details) {
					details[idx] = applied.Details[j]
					continue
				}
				details[idx] = models.BatchDetail{
					TaskID:  patches[j].TaskID,
					Project: patches[j].Project,
					Status:  models.BatchError,
					Message: storageError(err, "update tasks").Message,
				}
			}
		}

		res := &models.BatchResult{Details: details}
		for _, d := range details {
			if d.Status == models.BatchSuccess {
				res.SuccessCount++
			} else {
				res.ErrorCount++
			}
		}

		log.Info("batch update done", zap.Int("success", res.SuccessCount), zap.Int("errors", res.ErrorCount))
		out, err := jsonResult(res, res)
		if err != nil {
			return nil, err
		}
		out.IsError = isError
		return out, nil
	}
}
