package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/josephgoksu/kanban-sheets/internal/ui"
	"github.com/josephgoksu/kanban-sheets/models"
	"github.com/josephgoksu/kanban-sheets/types"
)

var statsProject string

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show completion statistics per sprint",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		conn, log, err := openConnector(cmd.Context())
		if err != nil {
			return err
		}
		defer func() { _ = log.Sync() }()
		defer func() { _ = conn.Close() }()

		stats, err := conn.SprintStats(statsProject)
		if err != nil {
			return err
		}
		if stats == nil {
			stats = []models.SprintStat{}
		}

		out := cmd.OutOrStdout()
		if isJSON() {
			return printJSON(out, &types.SprintStatsResponse{Sprints: stats, TotalSprints: len(stats)})
		}
		if len(stats) == 0 {
			_, err := fmt.Fprintln(out, ui.StyleSubtle.Render("No sprints found."))
			return err
		}
		_, err = fmt.Fprint(out, ui.SprintTable(stats).Render())
		return err
	},
}

func init() {
	rootCmd.AddCommand(statsCmd)
	statsCmd.Flags().StringVar(&statsProject, "project", "", "only count tasks of this project")
}
