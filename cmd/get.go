package cmd

import (
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/josephgoksu/kanban-sheets/internal/ui"
	"github.com/josephgoksu/kanban-sheets/models"
	"github.com/josephgoksu/kanban-sheets/store"
)

var getCmd = &cobra.Command{
	Use:   "get <project> <task-id>",
	Short: "Show one task by project and task id",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		conn, log, err := openConnector(cmd.Context())
		if err != nil {
			return err
		}
		defer func() { _ = log.Sync() }()
		defer func() { _ = conn.Close() }()

		row, err := conn.GetOne(args[0], args[1])
		if errors.Is(err, store.ErrTaskNotFound) {
			return fmt.Errorf("task '%s' not found in project '%s'", args[1], args[0])
		}
		if err != nil {
			return err
		}
		return renderTask(cmd.OutOrStdout(), row)
	},
}

func init() {
	rootCmd.AddCommand(getCmd)
}

// renderTask prints every column of row, one per line.
func renderTask(w io.Writer, row models.Row) error {
	if isJSON() {
		return printJSON(w, row)
	}
	labelWidth := 0
	for _, c := range models.Columns() {
		labelWidth = max(labelWidth, len([]rune(c.Display())))
	}
	for _, c := range models.Columns() {
		label := fmt.Sprintf("%-*s", labelWidth, c.Display())
		value := row.Get(c)
		style := ui.StyleText
		switch c {
		case models.ColStatus:
			style = ui.StatusStyle(models.TaskStatus(value))
		case models.ColPriority:
			style = ui.PriorityStyle(models.TaskPriority(value))
		}
		if _, err := fmt.Fprintf(w, "%s  %s\n", ui.StyleSubtle.Render(label), style.Render(value)); err != nil {
			return err
		}
	}
	return nil
}
