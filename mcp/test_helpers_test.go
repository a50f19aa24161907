package mcp

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	mcpsdk "github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	"github.com/josephgoksu/kanban-sheets/store"
)

const testTasksPath = "board/tasks.csv"

// fixedNow is the clock used by every handler test.
var fixedNow = time.Date(2025, 3, 14, 9, 30, 0, 0, time.Local)

const fixedStamp = "2025-03-14 09:30:00"

// testEnv bundles the handler set with the filesystem backing it.
type testEnv struct {
	tools *Tools
	fs    afero.Fs
	conn  store.Connector
}

// seedRow builds a row in schema column order.
func seedRow(project, id, sprint, priority, status string) []string {
	return []string{project, id, "", sprint, "API", "desc " + id, "detail " + id, priority, status, "2025-01-01 10:00:00", ""}
}

// setupTools returns handlers over an in-memory CSV seeded with rows.
func setupTools(t *testing.T, rows ...[]string) *testEnv {
	t.Helper()
	fs := afero.NewMemMapFs()
	conn, err := store.NewFileConnector(context.Background(), testTasksPath, store.FileOptions{Fs: fs})
	require.NoError(t, err)
	if len(rows) > 0 {
		require.NoError(t, conn.Add(context.Background(), rows))
	}
	return newEnv(t, fs, conn)
}

func newEnv(t *testing.T, fs afero.Fs, conn store.Connector) *testEnv {
	t.Helper()
	provider := store.NewProvider(func(context.Context) (store.Connector, error) { return conn, nil })
	t.Cleanup(func() { _ = provider.Reset() })
	return &testEnv{
		tools: NewTools(provider, zaptest.NewLogger(t), WithClock(func() time.Time { return fixedNow })),
		fs:    fs,
		conn:  conn,
	}
}

// readOnly reopens the seeded file through a read-only filesystem so every
// write fails.
func (e *testEnv) readOnly(t *testing.T) *testEnv {
	t.Helper()
	ro := afero.NewReadOnlyFs(e.fs)
	conn, err := store.NewFileConnector(context.Background(), testTasksPath, store.FileOptions{Fs: ro})
	require.NoError(t, err)
	return newEnv(t, ro, conn)
}

func call[In, Out any](t *testing.T, h mcpsdk.ToolHandlerFor[In, Out], args In) *mcpsdk.CallToolResultFor[Out] {
	t.Helper()
	res, err := h(context.Background(), nil, &mcpsdk.CallToolParamsFor[In]{Arguments: args})
	require.NoError(t, err)
	require.NotNil(t, res)
	return res
}

func textOf[Out any](t *testing.T, res *mcpsdk.CallToolResultFor[Out]) string {
	t.Helper()
	require.Len(t, res.Content, 1)
	tc, ok := res.Content[0].(*mcpsdk.TextContent)
	require.True(t, ok, "expected text content, got %T", res.Content[0])
	return tc.Text
}

func decode[T any](t *testing.T, text string) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal([]byte(text), &v), text)
	return v
}
