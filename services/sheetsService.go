package services

import (
	"context"
	"fmt"
	"log"
	"net/url"
	"strings"
	"time"

	"github.com/ammafood/amma-api/models"
	"github.com/go-resty/resty/v2"
)

// SimulatedToken short-circuits the sheets sink into a log-only no-op, so the
// order flow can run without a live Google credential.
const SimulatedToken = "simulated"

const sheetsBaseURL = "https://sheets.googleapis.com"

// SheetsDispatcher appends order rows to a configured Google spreadsheet.
type SheetsDispatcher struct {
	client  *resty.Client
	baseURL string
}

func NewSheetsDispatcher() *SheetsDispatcher {
	return &SheetsDispatcher{
		client:  resty.New().SetTimeout(15 * time.Second),
		baseURL: sheetsBaseURL,
	}
}

// NewSheetsDispatcherWithBaseURL points the dispatcher at an alternate
// endpoint, used by tests.
func NewSheetsDispatcherWithBaseURL(baseURL string) *SheetsDispatcher {
	d := NewSheetsDispatcher()
	d.baseURL = baseURL
	return d
}

// orderRow serializes an order into the fixed spreadsheet column layout:
// order id, customer identifier, name, phone, email placeholder, item names,
// item count, total amount, payment status placeholder, status, ISO
// timestamp, platform.
func orderRow(order models.Order) []any {
	names := make([]string, 0, len(order.Items))
	count := 0
	for _, item := range order.Items {
		names = append(names, item.Name)
		count += item.Quantity
	}
	return []any{
		order.ID,
		order.Customer.Phone,
		order.Customer.Name,
		order.Customer.Phone,
		"-",
		strings.Join(names, ", "),
		count,
		order.TotalAmount,
		"N/A",
		order.Status,
		time.UnixMilli(order.Timestamp).UTC().Format(time.RFC3339),
		order.Platform,
	}
}

// AppendOrder appends one order row via the spreadsheet append API. The
// simulated token logs the row instead of calling out.
func (d *SheetsDispatcher) AppendOrder(ctx context.Context, cfg models.SheetsConfig, order models.Order) error {
	if cfg.SpreadsheetID == "" || cfg.AccessToken == "" {
		return fmt.Errorf("sheets sync not configured")
	}
	if cfg.AccessToken == SimulatedToken {
		log.Printf("simulated sheets sync: order %s (%s, %s)", order.ID, order.Customer.Name, order.Status)
		return nil
	}

	sheet := cfg.SheetName
	if sheet == "" {
		sheet = "Orders"
	}
	endpoint := fmt.Sprintf("%s/v4/spreadsheets/%s/values/%s:append",
		d.baseURL,
		url.PathEscape(cfg.SpreadsheetID),
		url.PathEscape(sheet+"!A1"))

	resp, err := d.client.R().
		SetContext(ctx).
		SetAuthToken(cfg.AccessToken).
		SetHeader("Content-Type", "application/json").
		SetQueryParam("valueInputOption", "USER_ENTERED").
		SetBody(map[string]any{"values": [][]any{orderRow(order)}}).
		Post(endpoint)
	if err != nil {
		return err
	}
	if resp.IsError() {
		return fmt.Errorf("sheets append failed with status %d: %s", resp.StatusCode(), resp.String())
	}
	return nil
}
