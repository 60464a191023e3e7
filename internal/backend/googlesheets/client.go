// Package googlesheets implements the service.Sheet interface using the
// Google Sheets API.
package googlesheets

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"google.golang.org/api/option"
	sheets "google.golang.org/api/sheets/v4"

	"bdcal/internal/backend"
	"bdcal/internal/config"
)

const (
	// APITimeout is the timeout for API calls.
	APITimeout = 10 * time.Second

	// dataColumns is the rightmost column read (A through H).
	dataColumns = "H"
)

// Client implements service.Sheet using the Google Sheets API.
type Client struct {
	svc           *sheets.Service
	spreadsheetID string
	sheetName     string
}

// New creates a Google Sheets client for the configured spreadsheet.
// Requires oauth_client.json and token.json to exist, and a
// spreadsheet_id in settings.yaml.
func New(ctx context.Context, cfg *config.Config) (*Client, error) {
	if cfg.Settings.SpreadsheetID == "" {
		return nil, fmt.Errorf("spreadsheet_id is not set in %s", cfg.SettingsPath())
	}

	httpClient, err := backend.NewHTTPClient(ctx, cfg)
	if err != nil {
		return nil, err
	}

	svc, err := sheets.NewService(ctx, option.WithHTTPClient(httpClient))
	if err != nil {
		return nil, fmt.Errorf("failed to create sheets service: %w", err)
	}

	return &Client{
		svc:           svc,
		spreadsheetID: cfg.Settings.SpreadsheetID,
		sheetName:     cfg.Settings.SheetName,
	}, nil
}

// NewWithHTTPClient creates a client with a custom HTTP client (for testing).
func NewWithHTTPClient(ctx context.Context, httpClient *http.Client, spreadsheetID, sheetName string) (*Client, error) {
	svc, err := sheets.NewService(ctx, option.WithHTTPClient(httpClient))
	if err != nil {
		return nil, err
	}
	return &Client{svc: svc, spreadsheetID: spreadsheetID, sheetName: sheetName}, nil
}

// Rows returns rows 2..N of columns A..H as display text, the same
// strings a user sees in the sheet.
func (c *Client) Rows(ctx context.Context) ([][]string, error) {
	ctx, cancel := context.WithTimeout(ctx, APITimeout)
	defer cancel()

	readRange := fmt.Sprintf("%s!A2:%s", c.sheetName, dataColumns)
	resp, err := c.svc.Spreadsheets.Values.Get(c.spreadsheetID, readRange).
		ValueRenderOption("FORMATTED_VALUE").
		Context(ctx).
		Do()
	if err != nil {
		return nil, backend.WrapError(err)
	}

	rows := make([][]string, 0, len(resp.Values))
	for _, raw := range resp.Values {
		row := make([]string, len(raw))
		for j, cell := range raw {
			row[j] = fmt.Sprint(cell)
		}
		rows = append(rows, row)
	}
	return rows, nil
}

// WriteStatuses overwrites A2:A(len+1) with the given statuses in one
// contiguous range write.
func (c *Client) WriteStatuses(ctx context.Context, statuses []string) error {
	if len(statuses) == 0 {
		return nil
	}

	ctx, cancel := context.WithTimeout(ctx, APITimeout)
	defer cancel()

	values := make([][]interface{}, len(statuses))
	for i, s := range statuses {
		values[i] = []interface{}{s}
	}

	writeRange := fmt.Sprintf("%s!A2:A%d", c.sheetName, len(statuses)+1)
	_, err := c.svc.Spreadsheets.Values.Update(c.spreadsheetID, writeRange, &sheets.ValueRange{
		Values: values,
	}).ValueInputOption("RAW").Context(ctx).Do()
	if err != nil {
		return backend.WrapError(err)
	}
	return nil
}
