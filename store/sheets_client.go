package store

import (
	"context"
	"fmt"

	"google.golang.org/api/option"
	"google.golang.org/api/sheets/v4"
)

// valueInputRaw stores values exactly as given, without formula parsing.
const valueInputRaw = "RAW"

// ValuesAPI is the subset of the Sheets values API the connector uses.
type ValuesAPI interface {
	Get(ctx context.Context, spreadsheetID, rng string) ([][]interface{}, error)
	Append(ctx context.Context, spreadsheetID, rng string, rows [][]interface{}) error
	BatchUpdate(ctx context.Context, spreadsheetID string, data []*sheets.ValueRange) error
}

type sheetsValues struct {
	svc *sheets.SpreadsheetsValuesService
}

// NewSheetsValues authenticates with a service-account JSON file and returns
// a ValuesAPI backed by the Google Sheets v4 API.
func NewSheetsValues(ctx context.Context, credentialsFile string, opts ...option.ClientOption) (ValuesAPI, error) {
	opts = append([]option.ClientOption{
		option.WithCredentialsFile(credentialsFile),
		option.WithScopes(sheets.SpreadsheetsScope),
	}, opts...)
	svc, err := sheets.NewService(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("create sheets service: %w", err)
	}
	return &sheetsValues{svc: svc.Spreadsheets.Values}, nil
}

func (s *sheetsValues) Get(ctx context.Context, spreadsheetID, rng string) ([][]interface{}, error) {
	resp, err := s.svc.Get(spreadsheetID, rng).Context(ctx).Do()
	if err != nil {
		return nil, err
	}
	return resp.Values, nil
}

func (s *sheetsValues) Append(ctx context.Context, spreadsheetID, rng string, rows [][]interface{}) error {
	_, err := s.svc.Append(spreadsheetID, rng, &sheets.ValueRange{Values: rows}).
		ValueInputOption(valueInputRaw).
		Context(ctx).
		Do()
	return err
}

func (s *sheetsValues) BatchUpdate(ctx context.Context, spreadsheetID string, data []*sheets.ValueRange) error {
	req := &sheets.BatchUpdateValuesRequest{
		ValueInputOption: valueInputRaw,
		Data:             data,
	}
	_, err := s.svc.BatchUpdate(spreadsheetID, req).Context(ctx).Do()
	return err
}
