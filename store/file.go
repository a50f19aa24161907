package store

import (
	"context"

	"github.com/josephgoksu/kanban-sheets/internal/table"
	"github.com/josephgoksu/kanban-sheets/models"
	"github.com/spf13/afero"
	"go.uber.org/zap"
)

// FileOptions configures a FileConnector.
type FileOptions struct {
	// Fs is used for CSV and XLSX files. Defaults to the OS filesystem.
	Fs afero.Fs
	// Sheet selects the worksheet of an XLSX workbook.
	Sheet  string
	Logger *zap.Logger
}

// FileConnector serves tasks from a local CSV, XLSX or SQLite file. Every
// mutation rewrites the whole file.
type FileConnector struct {
	cache
	path   string
	format Format
	codec  codec
	log    *zap.Logger
}

// NewFileConnector opens path, creating it with the bare schema when it
// does not exist yet.
func NewFileConnector(ctx context.Context, path string, opts FileOptions) (*FileConnector, error) {
	format, err := FormatForPath(path)
	if err != nil {
		return nil, err
	}
	if opts.Fs == nil {
		opts.Fs = afero.NewOsFs()
	}
	if opts.Logger == nil {
		opts.Logger = zap.NewNop()
	}

	var cd codec
	switch format {
	case FormatCSV:
		cd = &csvCodec{fs: opts.Fs, path: path}
	case FormatXLSX:
		cd = &xlsxCodec{fs: opts.Fs, path: path, sheet: opts.Sheet}
	case FormatSQLite:
		sc, err := newSQLiteCodec(path)
		if err != nil {
			return nil, storageErr("open", path, err)
		}
		cd = sc
	}

	c := &FileConnector{
		path:   path,
		format: format,
		codec:  cd,
		log:    opts.Logger.Named("file"),
	}
	if err := c.Reload(ctx); err != nil {
		_ = cd.Close()
		return nil, err
	}
	return c, nil
}

// Path returns the backing file path.
func (c *FileConnector) Path() string { return c.path }

// Format returns the detected file layout.
func (c *FileConnector) Format() Format { return c.format }

func (c *FileConnector) Reload(ctx context.Context) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	header, rows, exists, err := c.codec.Read(ctx)
	if err != nil {
		return storageErr("load", c.path, err)
	}
	if !exists || len(header) == 0 {
		tbl := table.Empty()
		if err := c.codec.Write(ctx, tbl.Records()); err != nil {
			return storageErr("create", c.path, err)
		}
		c.tbl = tbl
		c.log.Info("created task file", zap.String("path", c.path), zap.String("format", string(c.format)))
		return nil
	}
	c.tbl = table.New(header, rows)
	c.log.Debug("task file loaded", zap.String("path", c.path), zap.Int("rows", c.tbl.Len()))
	return nil
}

func (c *FileConnector) Add(ctx context.Context, rows [][]string) error {
	if len(rows) == 0 {
		return ErrEmptyBatch
	}
	c.mu.Lock()
	defer c.mu.Unlock()

	snapshot := c.tbl.Clone()
	c.tbl.Append(rows...)
	if err := c.codec.Write(ctx, c.tbl.Records()); err != nil {
		c.tbl = snapshot
		return storageErr("append", c.path, err)
	}
	return nil
}

func (c *FileConnector) Update(ctx context.Context, patches []models.TaskPatch) (models.BatchResult, error) {
	if len(patches) == 0 {
		return models.BatchResult{}, ErrEmptyBatch
	}
	c.mu.Lock()
	defer c.mu.Unlock()

	snapshot := c.tbl.Clone()
	result, touched := applyPatches(c.tbl, patches)
	if len(touched) == 0 {
		return result, nil
	}
	if err := c.codec.Write(ctx, c.tbl.Records()); err != nil {
		c.tbl = snapshot
		serr := storageErr("update", c.path, err)
		result.FailAll(serr.Error())
		return result, serr
	}
	return result, nil
}

func (c *FileConnector) Close() error {
	return c.codec.Close()
}
