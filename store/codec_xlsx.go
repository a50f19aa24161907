package store

import (
	"context"
	"errors"
	"fmt"
	"io/fs"

	"github.com/spf13/afero"
	"github.com/xuri/excelize/v2"
)

// xlsxCodec stores the table on one worksheet. An empty sheet name means
// the first sheet of the workbook on read and DefaultSheetName on write.
type xlsxCodec struct {
	fs    afero.Fs
	path  string
	sheet string
}

func (c *xlsxCodec) Read(_ context.Context) ([]string, [][]string, bool, error) {
	f, err := c.fs.Open(c.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil, false, nil
		}
		return nil, nil, false, err
	}
	defer func() { _ = f.Close() }()

	wb, err := excelize.OpenReader(f)
	if err != nil {
		return nil, nil, false, fmt.Errorf("open workbook: %w", err)
	}
	defer func() { _ = wb.Close() }()

	sheet := c.sheet
	if sheet == "" {
		list := wb.GetSheetList()
		if len(list) == 0 {
			return nil, nil, false, nil
		}
		sheet = list[0]
		c.sheet = sheet
	} else if idx, err := wb.GetSheetIndex(sheet); err != nil || idx < 0 {
		return nil, nil, false, fmt.Errorf("worksheet %q not found in %s", sheet, c.path)
	}

	rows, err := wb.GetRows(sheet)
	if err != nil {
		return nil, nil, false, fmt.Errorf("read worksheet %q: %w", sheet, err)
	}
	if len(rows) == 0 {
		return nil, nil, false, nil
	}
	return rows[0], rows[1:], true, nil
}

func (c *xlsxCodec) Write(_ context.Context, records [][]string) error {
	wb := excelize.NewFile()
	defer func() { _ = wb.Close() }()

	sheet := c.sheet
	if sheet == "" {
		sheet = DefaultSheetName
	}
	if sheet != DefaultSheetName {
		if err := wb.SetSheetName(DefaultSheetName, sheet); err != nil {
			return fmt.Errorf("name worksheet %q: %w", sheet, err)
		}
	}

	for i, rec := range records {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			return err
		}
		row := rec
		if err := wb.SetSheetRow(sheet, cell, &row); err != nil {
			return fmt.Errorf("write row %d: %w", i+1, err)
		}
	}

	return writeAtomic(c.fs, c.path, func(f afero.File) error {
		if err := wb.Write(f); err != nil {
			return fmt.Errorf("write workbook: %w", err)
		}
		return nil
	})
}

func (c *xlsxCodec) Close() error { return nil }

var _ codec = (*xlsxCodec)(nil)
