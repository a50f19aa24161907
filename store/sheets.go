package store

import (
	"context"
	"fmt"
	"strings"

	"github.com/josephgoksu/kanban-sheets/internal/table"
	"github.com/josephgoksu/kanban-sheets/models"
	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"
	"google.golang.org/api/sheets/v4"
)

// DefaultSheetName is used when a range carries no sheet prefix.
const DefaultSheetName = "Sheet1"

// SheetsConnector serves tasks from a Google Sheets range. Row 1 is the
// header; a cache row lives on sheet row Position(i)+2, so blank sheet rows
// keep their place.
type SheetsConnector struct {
	cache
	api           ValuesAPI
	spreadsheetID string
	rng           string
	sheet         string
	hasHeader     bool
	log           *zap.Logger
}

// NewSheetsConnector loads the range (e.g. "Back-End!A:K") and returns a
// ready connector.
func NewSheetsConnector(ctx context.Context, api ValuesAPI, spreadsheetID, rng string, log *zap.Logger) (*SheetsConnector, error) {
	if log == nil {
		log = zap.NewNop()
	}
	c := &SheetsConnector{
		api:           api,
		spreadsheetID: spreadsheetID,
		rng:           rng,
		sheet:         SheetFromRange(rng),
		log:           log.Named("sheets"),
	}
	if err := c.Reload(ctx); err != nil {
		return nil, err
	}
	return c, nil
}

// SheetFromRange returns the sheet name part of an A1 range, unquoted.
func SheetFromRange(rng string) string {
	i := strings.LastIndex(rng, "!")
	if i <= 0 {
		return DefaultSheetName
	}
	name := rng[:i]
	if len(name) >= 2 && strings.HasPrefix(name, "'") && strings.HasSuffix(name, "'") {
		name = strings.ReplaceAll(name[1:len(name)-1], "''", "'")
	}
	if name == "" {
		return DefaultSheetName
	}
	return name
}

// QuoteSheet renders a sheet name for an A1 range. Names made only of ASCII
// letters, digits, '_', '-' and '.' that do not read as a cell reference are
// kept bare; anything else is wrapped in single quotes with inner quotes
// doubled.
func QuoteSheet(name string) string {
	plain := name != ""
	for i, r := range name {
		switch {
		case r == '_', r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z':
		case (r >= '0' && r <= '9' || r == '-' || r == '.') && i > 0:
		default:
			plain = false
		}
	}
	if plain {
		if _, _, err := excelize.CellNameToCoordinates(name); err == nil {
			plain = false
		}
	}
	if plain {
		return name
	}
	return "'" + strings.ReplaceAll(name, "'", "''") + "'"
}

func (c *SheetsConnector) Reload(ctx context.Context) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.load(ctx)
}

func (c *SheetsConnector) load(ctx context.Context) error {
	values, err := c.api.Get(ctx, c.spreadsheetID, c.rng)
	if err != nil {
		return storageErr("load", c.rng, err)
	}
	if len(values) == 0 {
		c.tbl = table.Empty()
		c.hasHeader = false
		c.log.Debug("sheet is empty", zap.String("range", c.rng))
		return nil
	}
	rows := make([][]string, 0, len(values)-1)
	for _, v := range values[1:] {
		rows = append(rows, toStrings(v))
	}
	c.tbl = table.New(toStrings(values[0]), rows)
	c.hasHeader = true
	c.log.Debug("sheet loaded", zap.String("range", c.rng), zap.Int("rows", c.tbl.Len()))
	return nil
}

func (c *SheetsConnector) Add(ctx context.Context, rows [][]string) error {
	if len(rows) == 0 {
		return ErrEmptyBatch
	}
	c.mu.Lock()
	defer c.mu.Unlock()

	payload := make([][]interface{}, 0, len(rows)+1)
	if !c.hasHeader {
		payload = append(payload, toCells(models.Header()))
	}
	for _, r := range rows {
		payload = append(payload, toCells(c.tbl.Arrange(r)))
	}
	if err := c.api.Append(ctx, c.spreadsheetID, c.rng, payload); err != nil {
		return storageErr("append", c.rng, err)
	}

	if err := c.load(ctx); err != nil {
		c.log.Warn("reload after append failed, keeping local copy", zap.Error(err))
		c.tbl.Append(rows...)
		c.hasHeader = true
	}
	return nil
}

func (c *SheetsConnector) Update(ctx context.Context, patches []models.TaskPatch) (models.BatchResult, error) {
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

	data := make([]*sheets.ValueRange, 0, len(touched))
	for _, i := range touched {
		rng, err := c.rowRange(i)
		if err != nil {
			c.tbl = snapshot
			result.FailAll(err.Error())
			return result, storageErr("update", c.rng, err)
		}
		data = append(data, &sheets.ValueRange{
			Range:  rng,
			Values: [][]interface{}{toCells(c.tbl.Cells(i))},
		})
	}

	if err := c.api.BatchUpdate(ctx, c.spreadsheetID, data); err != nil {
		c.tbl = snapshot
		serr := storageErr("update", c.rng, err)
		result.FailAll(serr.Error())
		return result, serr
	}

	if err := c.load(ctx); err != nil {
		c.log.Warn("reload after update failed, keeping local copy", zap.Error(err))
	}
	return result, nil
}

// rowRange is the A1 range covering cache row i, e.g. "Sheet1!A5:K5".
func (c *SheetsConnector) rowRange(i int) (string, error) {
	pos := c.tbl.Position(i)
	if pos < 0 {
		return "", fmt.Errorf("row %d has no sheet position", i)
	}
	n := pos + 2
	end, err := excelize.CoordinatesToCellName(max(c.tbl.Width(), 1), n)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%s!A%d:%s", QuoteSheet(c.sheet), n, end), nil
}

func (c *SheetsConnector) Close() error { return nil }

func toStrings(row []interface{}) []string {
	out := make([]string, len(row))
	for i, v := range row {
		if v == nil {
			continue
		}
		out[i] = fmt.Sprint(v)
	}
	return out
}

func toCells(row []string) []interface{} {
	out := make([]interface{}, len(row))
	for i, v := range row {
		out[i] = v
	}
	return out
}
