package mcp

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	mcpsdk "github.com/modelcontextprotocol/go-sdk/mcp"
	"go.uber.org/zap"

	"github.com/josephgoksu/kanban-sheets/internal/logger"
	"github.com/josephgoksu/kanban-sheets/models"
	"github.com/josephgoksu/kanban-sheets/store"
	"github.com/josephgoksu/kanban-sheets/types"
)

// Tools carries the runtime dependencies of every tool and resource handler.
type Tools struct {
	provider *store.Provider
	log      *zap.Logger
	now      func() time.Time
}

// Option customizes Tools.
type Option func(*Tools)

// WithClock replaces the clock used to stamp creation and resolution dates.
func WithClock(now func() time.Time) Option {
	return func(t *Tools) {
		if now != nil {
			t.now = now
		}
	}
}

// NewTools builds the handler set over provider. A nil logger discards output.
func NewTools(provider *store.Provider, log *zap.Logger, opts ...Option) *Tools {
	if log == nil {
		log = zap.NewNop()
	}
	t := &Tools{
		provider: provider,
		log:      log.Named("mcp"),
		now:      time.Now,
	}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

// begin returns a logger tagged with the tool name and a fresh call id.
func (t *Tools) begin(tool string, fields ...zap.Field) *zap.Logger {
	logger.SetLastTool(tool)
	l := t.log.With(zap.String("tool", tool), zap.String("call_id", uuid.NewString()))
	l.Debug("tool call", fields...)
	return l
}

// connector resolves the shared connector, mapping construction failures to
// a storage error.
func (t *Tools) connector(ctx context.Context) (store.Connector, error) {
	conn, err := t.provider.Get(ctx)
	if err != nil {
		return nil, storageError(err, "open backing store")
	}
	return conn, nil
}

// ErrNotConfigured is returned when registration is given a nil server,
// nil tools or tools without a store provider.
var ErrNotConfigured = errors.New("mcp: server and tools with a store provider are required")

func checkRegistration(server *mcpsdk.Server, tools *Tools) error {
	if server == nil || tools == nil || tools.provider == nil {
		return ErrNotConfigured
	}
	return nil
}

// RegisterTools registers the kanban tools on server.
func RegisterTools(server *mcpsdk.Server, tools *Tools) error {
	if err := checkRegistration(server, tools); err != nil {
		return err
	}
	mcpsdk.AddTool(server, &mcpsdk.Tool{
		Name:        "list_tasks",
		Description: "List tasks. Optional filters: prioridade[], status[], contexto, projeto, texto_busca (description/detail), task_id, sprint. Optional pagination {page, page_size<=500}; without it every match is returned as an array.",
	}, tools.listTasksHandler())

	mcpsdk.AddTool(server, &mcpsdk.Tool{
		Name:        "get_one_task",
		Description: "Get one task by project and task_id.",
	}, tools.getOneTaskHandler())

	mcpsdk.AddTool(server, &mcpsdk.Tool{
		Name:        "get_one_or_more_tasks",
		Description: "Get several tasks of one project by task_id_list. Missing ids are reported inline.",
	}, tools.getTasksHandler())

	mcpsdk.AddTool(server, &mcpsdk.Tool{
		Name:        "add_task",
		Description: "Add a task. Required: project, task_id, contexto, descricao, prioridade, status. data_criacao is set automatically. (project, task_id) must be unique.",
	}, tools.addTaskHandler())

	mcpsdk.AddTool(server, &mcpsdk.Tool{
		Name:        "batch_add_tasks",
		Description: "Add several tasks in one write. Returns success_count, error_count and per-task details.",
	}, tools.batchAddTasksHandler())

	mcpsdk.AddTool(server, &mcpsdk.Tool{
		Name:        "update_task",
		Description: "Update fields of one task. Updatable: task_id_root, sprint, contexto, descricao, detalhado, prioridade, status. A final status (Concluído, Cancelado, Não Relacionado) sets data_solucao.",
	}, tools.updateTaskHandler())

	mcpsdk.AddTool(server, &mcpsdk.Tool{
		Name:        "batch_update_tasks",
		Description: "Update several tasks in one write. Each item: project, task_id, fields. Returns success_count, error_count and per-task details.",
	}, tools.batchUpdateTasksHandler())

	mcpsdk.AddTool(server, &mcpsdk.Tool{
		Name:        "get_valid_configs",
		Description: "List the accepted status and priority values.",
	}, tools.validConfigsHandler())

	mcpsdk.AddTool(server, &mcpsdk.Tool{
		Name:        "get_sprint_stats",
		Description: "Per-sprint totals, completed count, completion percentage and counts by status. Optional project filter.",
	}, tools.sprintStatsHandler())

	return nil
}

// ValidConfigs lists the accepted enum values.
func ValidConfigs() *types.ValidConfigsResponse {
	return &types.ValidConfigsResponse{
		ValidTaskStatus:     models.StatusValues(),
		ValidTaskPriorities: models.PriorityValues(),
	}
}
