package cmd

import (
	"bytes"
	"context"
	"path/filepath"
	"testing"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/require"

	"github.com/josephgoksu/kanban-sheets/internal/config"
	"github.com/josephgoksu/kanban-sheets/models"
	"github.com/josephgoksu/kanban-sheets/store"
)

// executeCmd runs the root command with args and returns everything it
// printed. Flag values and viper state are restored afterwards.
func executeCmd(t *testing.T, args ...string) (string, error) {
	t.Helper()
	resetFlags(rootCmd)
	viper.Reset()
	bindFlags()
	t.Cleanup(func() {
		resetFlags(rootCmd)
		viper.Reset()
		bindFlags()
		rootCmd.SetArgs(nil)
		rootCmd.SetOut(nil)
		rootCmd.SetErr(nil)
	})

	var b bytes.Buffer
	rootCmd.SetOut(&b)
	rootCmd.SetErr(&b)
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return b.String(), err
}

func resetFlags(c *cobra.Command) {
	reset := func(f *pflag.Flag) {
		if sv, ok := f.Value.(pflag.SliceValue); ok {
			_ = sv.Replace(nil)
		} else {
			_ = f.Value.Set(f.DefValue)
		}
		f.Changed = false
	}
	c.Flags().VisitAll(reset)
	c.PersistentFlags().VisitAll(reset)
	for _, sub := range c.Commands() {
		resetFlags(sub)
	}
}

// isolateEnv moves the test into an empty directory with no inherited
// configuration.
func isolateEnv(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Chdir(dir)
	t.Setenv("HOME", dir)
	for _, key := range []string{
		"KANBAN_BACKEND", "KANBAN_FILE_PATH", "KANBAN_SHEET_ID", "KANBAN_SHEET_NAME",
		"KANBAN_CREDENTIALS_FILE", "GOOGLE_APPLICATION_CREDENTIALS", "KANBAN_LOG_LEVEL",
	} {
		t.Setenv(key, "")
	}
	return dir
}

// setupBoard writes a .kanban.yaml pointing at tasks.csv and seeds the file.
func setupBoard(t *testing.T, tasks ...models.Task) string {
	t.Helper()
	dir := isolateEnv(t)

	cfg := config.DefaultAppConfig()
	cfg.File.Path = "tasks.csv"
	cfg.Log.Level = "error"
	require.NoError(t, config.WriteConfigFile(afero.NewOsFs(), config.ConfigFile, cfg, false))

	conn, err := store.NewFileConnector(context.Background(), filepath.Join(dir, "tasks.csv"), store.FileOptions{})
	require.NoError(t, err)
	if len(tasks) > 0 {
		rows := make([][]string, len(tasks))
		for i := range tasks {
			rows[i] = tasks[i].Values()
		}
		require.NoError(t, conn.Add(context.Background(), rows))
	}
	require.NoError(t, conn.Close())
	return dir
}

func sampleTasks() []models.Task {
	return []models.Task{
		{
			Project: "Back-End", TaskID: "BE-1", Sprint: "Sprint 1", Context: "API",
			Description: "Criar endpoint de login", Priority: models.PriorityHigh,
			Status: models.StatusDone, CreatedAt: "2025-01-01 10:00:00", ResolvedAt: "2025-01-03 18:00:00",
		},
		{
			Project: "Back-End", TaskID: "BE-2", Sprint: "Sprint 1", Context: "API",
			Description: "Ajustar paginação", Priority: models.PriorityNormal,
			Status: models.StatusTodo, CreatedAt: "2025-01-02 10:00:00",
		},
	}
}
