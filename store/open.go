package store

import (
	"context"
	"fmt"

	"github.com/spf13/afero"
	"go.uber.org/zap"
)

// Backend names accepted by Open.
const (
	BackendSheets = "sheets"
	BackendFile   = "file"
)

// Options selects and configures a backend.
type Options struct {
	Backend string

	SpreadsheetID   string
	SheetName       string
	Columns         string // A1 column span, e.g. "A:K"
	CredentialsFile string

	FilePath  string
	FileSheet string // worksheet for .xlsx files; empty means the first sheet
	Fs        afero.Fs

	Logger *zap.Logger
}

// Range returns the A1 range read by the sheets backend.
func (o Options) Range() string {
	sheet := o.SheetName
	if sheet == "" {
		sheet = DefaultSheetName
	}
	cols := o.Columns
	if cols == "" {
		cols = "A:K"
	}
	return sheet + "!" + cols
}

// Open builds the connector described by opts.
func Open(ctx context.Context, opts Options) (Connector, error) {
	switch opts.Backend {
	case BackendSheets:
		if opts.SpreadsheetID == "" {
			return nil, fmt.Errorf("sheets backend requires a spreadsheet id")
		}
		api, err := NewSheetsValues(ctx, opts.CredentialsFile)
		if err != nil {
			return nil, storageErr("connect", opts.SpreadsheetID, err)
		}
		conn, err := NewSheetsConnector(ctx, api, opts.SpreadsheetID, opts.Range(), opts.Logger)
		if err != nil {
			return nil, err
		}
		return conn, nil
	case BackendFile, "":
		if opts.FilePath == "" {
			return nil, fmt.Errorf("file backend requires a file path")
		}
		conn, err := NewFileConnector(ctx, opts.FilePath, FileOptions{
			Fs:     opts.Fs,
			Sheet:  opts.FileSheet,
			Logger: opts.Logger,
		})
		if err != nil {
			return nil, err
		}
		return conn, nil
	}
	return nil, fmt.Errorf("unknown backend %q (use %q or %q)", opts.Backend, BackendSheets, BackendFile)
}
