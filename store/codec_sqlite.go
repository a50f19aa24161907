package store

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/josephgoksu/kanban-sheets/models"
	_ "modernc.org/sqlite"
)

const sqliteTable = "tasks"

// sqliteCodec keeps the table in a SQLite "tasks" table with one column per
// schema field plus a position column that preserves row order.
type sqliteCodec struct {
	db *sql.DB
}

func newSQLiteCodec(path string) (*sqliteCodec, error) {
	if dir := filepath.Dir(path); dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("create database directory: %w", err)
		}
	}
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	db.SetMaxOpenConns(1)
	return &sqliteCodec{db: db}, nil
}

func sqliteColumns() []string {
	cols := make([]string, 0, models.ColumnCount())
	for _, c := range models.Columns() {
		cols = append(cols, c.Field())
	}
	return cols
}

func (c *sqliteCodec) Read(ctx context.Context) ([]string, [][]string, bool, error) {
	var n int
	err := c.db.QueryRowContext(ctx,
		"SELECT count(*) FROM sqlite_master WHERE type = 'table' AND name = ?", sqliteTable).Scan(&n)
	if err != nil {
		return nil, nil, false, fmt.Errorf("inspect schema: %w", err)
	}
	if n == 0 {
		return nil, nil, false, nil
	}

	cols := sqliteColumns()
	query := fmt.Sprintf("SELECT %s FROM %s ORDER BY position", strings.Join(cols, ", "), sqliteTable)
	rs, err := c.db.QueryContext(ctx, query)
	if err != nil {
		return nil, nil, false, fmt.Errorf("query tasks: %w", err)
	}
	defer func() { _ = rs.Close() }()

	var rows [][]string
	for rs.Next() {
		vals := make([]sql.NullString, len(cols))
		ptrs := make([]interface{}, len(cols))
		for i := range vals {
			ptrs[i] = &vals[i]
		}
		if err := rs.Scan(ptrs...); err != nil {
			return nil, nil, false, fmt.Errorf("scan task: %w", err)
		}
		row := make([]string, len(cols))
		for i, v := range vals {
			row[i] = v.String
		}
		rows = append(rows, row)
	}
	if err := rs.Err(); err != nil {
		return nil, nil, false, fmt.Errorf("iterate tasks: %w", err)
	}
	return models.Header(), rows, true, nil
}

func (c *sqliteCodec) Write(ctx context.Context, records [][]string) error {
	if len(records) == 0 {
		return fmt.Errorf("no header to write")
	}

	// Map each record column onto its schema column; extras are dropped.
	mapping := make([]int, len(records[0]))
	for i, h := range records[0] {
		mapping[i] = -1
		if col, ok := models.ColumnForHeader(h); ok {
			mapping[i] = int(col)
		}
	}

	cols := sqliteColumns()
	defs := make([]string, len(cols))
	for i, name := range cols {
		defs[i] = name + " TEXT NOT NULL DEFAULT ''"
	}
	schema := fmt.Sprintf("CREATE TABLE IF NOT EXISTS %s (position INTEGER PRIMARY KEY, %s)",
		sqliteTable, strings.Join(defs, ", "))

	tx, err := c.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.ExecContext(ctx, schema); err != nil {
		return fmt.Errorf("create table: %w", err)
	}
	if _, err := tx.ExecContext(ctx, "DELETE FROM "+sqliteTable); err != nil {
		return fmt.Errorf("clear table: %w", err)
	}

	placeholders := strings.TrimSuffix(strings.Repeat("?, ", len(cols)+1), ", ")
	insert := fmt.Sprintf("INSERT INTO %s (position, %s) VALUES (%s)",
		sqliteTable, strings.Join(cols, ", "), placeholders)
	stmt, err := tx.PrepareContext(ctx, insert)
	if err != nil {
		return fmt.Errorf("prepare insert: %w", err)
	}
	defer func() { _ = stmt.Close() }()

	for pos, rec := range records[1:] {
		args := make([]interface{}, len(cols)+1)
		args[0] = pos
		for i := range cols {
			args[i+1] = ""
		}
		for i, v := range rec {
			if i < len(mapping) && mapping[i] >= 0 {
				args[mapping[i]+1] = v
			}
		}
		if _, err := stmt.ExecContext(ctx, args...); err != nil {
			return fmt.Errorf("insert row %d: %w", pos+1, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit: %w", err)
	}
	return nil
}

func (c *sqliteCodec) Close() error {
	return c.db.Close()
}

var _ codec = (*sqliteCodec)(nil)
