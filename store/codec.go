package store

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/afero"
)

// codec reads and writes a whole table to one local file.
type codec interface {
	// Read returns the header and data rows. exists is false when the file
	// or its task table has not been created yet.
	Read(ctx context.Context) (header []string, rows [][]string, exists bool, err error)
	// Write replaces the stored content with records (header first).
	Write(ctx context.Context, records [][]string) error
	Close() error
}

// Format names a local file layout.
type Format string

const (
	FormatCSV    Format = "csv"
	FormatXLSX   Format = "xlsx"
	FormatSQLite Format = "sqlite"
)

// FormatForPath picks the codec from a file extension.
func FormatForPath(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".csv":
		return FormatCSV, nil
	case ".xlsx", ".xlsm":
		return FormatXLSX, nil
	case ".db", ".sqlite", ".sqlite3":
		return FormatSQLite, nil
	}
	return "", fmt.Errorf("%w: %q (use .csv, .xlsx or .db)", ErrUnsupportedFormat, filepath.Ext(path))
}

// writeAtomic writes through a temporary sibling file and renames it over
// the target.
func writeAtomic(fs afero.Fs, path string, write func(afero.File) error) error {
	dir := filepath.Dir(path)
	if dir != "." && dir != "" {
		if err := fs.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("failed to create directory %s: %w", dir, err)
		}
	}

	tmp := path + ".tmp"
	defer func() { _ = fs.Remove(tmp) }()

	f, err := fs.Create(tmp)
	if err != nil {
		return fmt.Errorf("failed to create temporary file %s: %w", tmp, err)
	}
	if err := write(f); err != nil {
		_ = f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("failed to close temporary file %s: %w", tmp, err)
	}
	if err := fs.Rename(tmp, path); err != nil {
		return fmt.Errorf("failed to rename %s to %s: %w", tmp, path, err)
	}
	return nil
}
