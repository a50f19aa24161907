package cmd

import (
	"context"
	"path/filepath"
	"testing"

	mcpsdk "github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/josephgoksu/kanban-sheets/mcp"
	"github.com/josephgoksu/kanban-sheets/store"
)

func TestRootCmd(t *testing.T) {
	isolateEnv(t)

	output, err := executeCmd(t, "--help")
	require.NoError(t, err)

	assert.Contains(t, output, "Kanban Sheets")
	assert.Contains(t, output, "Usage:")
	assert.Contains(t, output, "Commands:")
	for _, name := range []string{"mcp", "list", "get", "stats", "init", "version"} {
		assert.Contains(t, output, name)
	}
}

func TestVersion(t *testing.T) {
	isolateEnv(t)
	assert.Equal(t, "0.1.0", GetVersion())

	output, err := executeCmd(t, "version")
	require.NoError(t, err)
	assert.Equal(t, "kanban-sheets 0.1.0\n", output)
}

func TestLoadConfig_Env(t *testing.T) {
	isolateEnv(t)
	t.Setenv("KANBAN_BACKEND", "Sheets")
	t.Setenv("KANBAN_SHEET_ID", "sheet-123")
	t.Setenv("GOOGLE_APPLICATION_CREDENTIALS", "/secrets/sa.json")

	cfg, err := loadConfig(viper.New(), "")
	require.NoError(t, err)
	assert.Equal(t, store.BackendSheets, cfg.Backend)
	assert.Equal(t, "sheet-123", cfg.Sheets.SpreadsheetID)
	assert.Equal(t, "/secrets/sa.json", cfg.Sheets.CredentialsFile)

	opts := storeOptions(cfg, zap.NewNop())
	assert.Equal(t, "Sheet1!A:K", opts.Range())
	assert.Equal(t, "sheet-123", backendTarget(cfg))
}

func TestLoadConfig_Defaults(t *testing.T) {
	isolateEnv(t)

	cfg, err := loadConfig(viper.New(), "")
	require.NoError(t, err)
	assert.Equal(t, store.BackendFile, cfg.Backend)
	assert.Equal(t, "kanban.xlsx", cfg.File.Path)
	assert.Equal(t, "info", cfg.Log.Level)
}

func TestLoadConfig_Invalid(t *testing.T) {
	isolateEnv(t)
	t.Setenv("KANBAN_BACKEND", "ftp")

	_, err := loadConfig(viper.New(), "")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "must be one of")
}

func TestCommandsReportConfigErrors(t *testing.T) {
	isolateEnv(t)
	t.Setenv("KANBAN_BACKEND", "ftp")

	_, err := executeCmd(t, "list")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid configuration")
}

func TestNewMCPServer(t *testing.T) {
	dir := setupBoard(t, sampleTasks()...)
	cfg, err := loadConfig(viper.New(), "")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "tasks.csv"), cfg.File.Path)

	provider := newProvider(cfg, zap.NewNop())
	t.Cleanup(func() { _ = provider.Reset() })
	server, err := newMCPServer(mcp.NewTools(provider, zap.NewNop()), zap.NewNop())
	require.NoError(t, err)

	ctx := context.Background()
	serverTransport, clientTransport := mcpsdk.NewInMemoryTransports()
	serverSession, err := server.Connect(ctx, serverTransport)
	require.NoError(t, err)
	t.Cleanup(func() { _ = serverSession.Close() })

	client := mcpsdk.NewClient(&mcpsdk.Implementation{Name: "cmd-test-client", Version: "0.0.1"}, nil)
	session, err := client.Connect(ctx, clientTransport)
	require.NoError(t, err)
	t.Cleanup(func() { _ = session.Close() })

	tools, err := session.ListTools(ctx, &mcpsdk.ListToolsParams{})
	require.NoError(t, err)
	assert.Len(t, tools.Tools, 9)

	res, err := session.CallTool(ctx, &mcpsdk.CallToolParams{
		Name:      "get_one_task",
		Arguments: map[string]any{"project": "Back-End", "task_id": "BE-2"},
	})
	require.NoError(t, err)
	assert.False(t, res.IsError)
	require.NotEmpty(t, res.Content)
	text, ok := res.Content[0].(*mcpsdk.TextContent)
	require.True(t, ok)
	assert.Contains(t, text.Text, "Ajustar paginação")
}
