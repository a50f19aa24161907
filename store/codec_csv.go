package store

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io/fs"
	"strings"

	"github.com/spf13/afero"
)

const utf8BOM = "\ufeff"

type csvCodec struct {
	fs   afero.Fs
	path string
}

func (c *csvCodec) Read(_ context.Context) ([]string, [][]string, bool, error) {
	f, err := c.fs.Open(c.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil, false, nil
		}
		return nil, nil, false, err
	}
	defer func() { _ = f.Close() }()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1
	records, err := r.ReadAll()
	if err != nil {
		return nil, nil, false, fmt.Errorf("parse csv: %w", err)
	}
	if len(records) == 0 {
		return nil, nil, false, nil
	}
	header := records[0]
	if len(header) > 0 {
		header[0] = strings.TrimPrefix(header[0], utf8BOM)
	}
	return header, records[1:], true, nil
}

func (c *csvCodec) Write(_ context.Context, records [][]string) error {
	return writeAtomic(c.fs, c.path, func(f afero.File) error {
		w := csv.NewWriter(f)
		if err := w.WriteAll(records); err != nil {
			return fmt.Errorf("write csv: %w", err)
		}
		return nil
	})
}

func (c *csvCodec) Close() error { return nil }

var _ codec = (*csvCodec)(nil)
