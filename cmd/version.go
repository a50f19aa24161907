package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if isJSON() {
			return printJSON(cmd.OutOrStdout(), map[string]string{"version": GetVersion()})
		}
		_, err := fmt.Fprintf(cmd.OutOrStdout(), "kanban-sheets %s\n", GetVersion())
		return err
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
