package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newViper(t *testing.T, cfgFile string) *viper.Viper {
	t.Helper()
	v := viper.New()
	require.NoError(t, Setup(v, cfgFile))
	return v
}

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load(newViper(t, ""))
	require.NoError(t, err)

	assert.Equal(t, DefaultBackend, cfg.Backend)
	assert.True(t, cfg.File.Enabled)
	assert.False(t, cfg.Sheets.Enabled)
	assert.Equal(t, DefaultFilePath, cfg.File.Path)
	assert.Equal(t, DefaultSheetName, cfg.Sheets.SheetName)
	assert.Equal(t, DefaultColumns, cfg.Sheets.Columns)
	assert.Equal(t, DefaultLogLevel, cfg.Log.Level)
}

func TestLoadLegacyEnvNames(t *testing.T) {
	t.Setenv("KANBAN_BACKEND", "sheets")
	t.Setenv("KANBAN_SHEET_ID", "sheet-123")
	t.Setenv("KANBAN_SHEET_NAME", "Back-End")
	t.Setenv("GOOGLE_APPLICATION_CREDENTIALS", "/secrets/sa.json")

	cfg, err := Load(newViper(t, ""))
	require.NoError(t, err)

	assert.True(t, cfg.Sheets.Enabled)
	assert.Equal(t, "sheet-123", cfg.Sheets.SpreadsheetID)
	assert.Equal(t, "Back-End", cfg.Sheets.SheetName)
	assert.Equal(t, "/secrets/sa.json", cfg.Sheets.CredentialsFile)
}

func TestLoadCredentialsEnvPrecedence(t *testing.T) {
	t.Setenv("KANBAN_CREDENTIALS_FILE", "/a.json")
	t.Setenv("GOOGLE_APPLICATION_CREDENTIALS", "/b.json")

	cfg, err := Load(newViper(t, ""))
	require.NoError(t, err)
	assert.Equal(t, "/a.json", cfg.Sheets.CredentialsFile)
}

func TestLoadSheetsRequiresSpreadsheetID(t *testing.T) {
	t.Setenv("KANBAN_BACKEND", "sheets")

	_, err := Load(newViper(t, ""))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "SpreadsheetID is required")
}

func TestLoadRejectsUnknownBackend(t *testing.T) {
	t.Setenv("KANBAN_BACKEND", "postgres")

	_, err := Load(newViper(t, ""))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "must be one of [sheets file]")
}

func TestLoadFromFileResolvesRelativePaths(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, ConfigFile)
	content := "backend: file\nfile:\n  path: data/board.csv\nlog:\n  level: debug\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	v := newViper(t, path)
	found, err := ReadFile(v)
	require.NoError(t, err)
	require.True(t, found)

	cfg, err := Load(v)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "data", "board.csv"), cfg.File.Path)
	assert.Equal(t, "debug", cfg.Log.Level)
}

func TestReadFileMissingExplicitFile(t *testing.T) {
	v := newViper(t, filepath.Join(t.TempDir(), "absent.yaml"))
	found, err := ReadFile(v)
	assert.False(t, found)
	assert.Error(t, err)
}

func TestResolvePath(t *testing.T) {
	assert.Equal(t, "tasks.csv", ResolvePath("tasks.csv", ""))
	assert.Equal(t, "/abs/tasks.csv", ResolvePath("/abs/tasks.csv", "/etc/kanban/.kanban.yaml"))
	assert.Equal(t, "/etc/kanban/tasks.csv", ResolvePath("tasks.csv", "/etc/kanban/.kanban.yaml"))
	assert.Equal(t, "", ResolvePath("", "/etc/kanban/.kanban.yaml"))
}
