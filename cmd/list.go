package cmd

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/josephgoksu/kanban-sheets/internal/ui"
	"github.com/josephgoksu/kanban-sheets/models"
)

// listOptions are the flags of the list command.
type listOptions struct {
	project    string
	taskID     string
	context    string
	sprint     string
	search     string
	statuses   []string
	priorities []string
	page       int
	pageSize   int
	width      int
}

var listOpts listOptions

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List tasks, optionally filtered and paginated",
	Long: `List tasks from the configured board.

Filters combine with AND. --status and --priority accept several values
(repeat the flag or separate values with commas) and match any of them.
Pagination is applied only when --page or --page-size is given.

Examples:
  kanban-sheets list --project Back-End --status "Em Desenvolvimento"
  kanban-sheets list --search login --page 2 --page-size 20
  kanban-sheets list --json`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		filters, err := listOpts.filters()
		if err != nil {
			return err
		}
		var page *models.Pagination
		if cmd.Flags().Changed("page") || cmd.Flags().Changed("page-size") {
			p := models.Pagination{Page: listOpts.page, PageSize: listOpts.pageSize}.WithDefaults()
			if err := models.ValidateStruct(p); err != nil {
				return fmt.Errorf("invalid pagination: page must be >= 1 and page-size between 1 and %d", models.MaxPageSize)
			}
			page = &p
		}

		conn, log, err := openConnector(cmd.Context())
		if err != nil {
			return err
		}
		defer func() { _ = log.Sync() }()
		defer func() { _ = conn.Close() }()

		result, err := conn.Search(filters, page)
		if err != nil {
			return err
		}
		return renderSearch(cmd.OutOrStdout(), result, listOpts.width)
	},
}

func init() {
	rootCmd.AddCommand(listCmd)

	f := listCmd.Flags()
	f.StringVar(&listOpts.project, "project", "", "project name, case-insensitive partial match")
	f.StringVar(&listOpts.taskID, "task-id", "", "exact task id")
	f.StringVar(&listOpts.context, "context", "", "context, case-insensitive partial match")
	f.StringVar(&listOpts.sprint, "sprint", "", "exact sprint name")
	f.StringVar(&listOpts.search, "search", "", "case-insensitive text searched in description and details")
	f.StringArrayVar(&listOpts.statuses, "status", nil, "status to include (repeatable)")
	f.StringArrayVar(&listOpts.priorities, "priority", nil, "priority to include (repeatable)")
	f.IntVar(&listOpts.page, "page", models.DefaultPage, "page number, starting at 1")
	f.IntVar(&listOpts.pageSize, "page-size", models.DefaultPageSize, "tasks per page (max 500)")
	f.IntVar(&listOpts.width, "width", 40, "maximum column width in table output (0 = unlimited)")
}

// filters validates the enum flags and builds the search filters.
func (o listOptions) filters() (*models.SearchFilters, error) {
	f := &models.SearchFilters{
		TaskID:  o.taskID,
		Context: o.context,
		Project: o.project,
		Text:    o.search,
		Sprint:  o.sprint,
	}
	for _, raw := range splitList(o.statuses) {
		status, err := models.ParseStatus(raw)
		if err != nil {
			return nil, err
		}
		f.Statuses = append(f.Statuses, status)
	}
	for _, raw := range splitList(o.priorities) {
		prio, err := models.ParsePriority(raw)
		if err != nil {
			return nil, err
		}
		f.Priorities = append(f.Priorities, prio)
	}
	return f, nil
}

func renderSearch(w io.Writer, result *models.SearchResult, width int) error {
	if isJSON() {
		return printJSON(w, result.Payload())
	}

	rows := result.Rows
	if result.Paginated {
		rows = result.Page.Tasks
	}
	if len(rows) == 0 {
		_, err := fmt.Fprintln(w, ui.StyleSubtle.Render("No tasks found."))
		return err
	}
	if _, err := fmt.Fprint(w, ui.TaskTable(rows, width).Render()); err != nil {
		return err
	}
	if result.Paginated {
		p := result.Page
		_, err := fmt.Fprintf(w, "\n%s\n", ui.StyleSubtle.Render(
			fmt.Sprintf("Page %d of %d (%d tasks)", p.Page, p.TotalPages, p.TotalCount)))
		return err
	}
	_, err := fmt.Fprintf(w, "\n%s\n", ui.StyleSubtle.Render(fmt.Sprintf("%d tasks", len(rows))))
	return err
}
