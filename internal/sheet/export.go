package sheet

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

const (
	JSONFilename = "finance-data.json"
	JSONMIMEType = "application/json"
	CSVFilename  = "finance-summary.csv"
	CSVMIMEType  = "text/csv"
)

// CSVHeader is the first line of the CSV export.
const CSVHeader = "Category,Item,Amount"

// Row categories and summary item names in the CSV export.
const (
	RowExpense    = "Expense"
	RowInvestment = "Investment"
	RowSummary    = "Summary"

	ItemTotalExpenses    = "Total Expenses"
	ItemTotalInvestments = "Total Investments"
	ItemRemaining        = "Remaining"
)

const (
	numCSVFields = 3
	colCategory  = 0
	colItem      = 1
	colAmount    = 2
)

// Document is the JSON export layout. Field order is the key order on the wire.
type Document struct {
	Salary           json.Number `json:"salary"`
	Expenses         Entries     `json:"expenses"`
	Investments      Entries     `json:"investments"`
	TotalExpenses    json.Number `json:"totalExpenses"`
	TotalInvestments json.Number `json:"totalInvestments"`
	Remaining        json.Number `json:"remaining"`
}

// Entries is an ordered key/text list that encodes as a JSON object.
type Entries []Line

// MarshalJSON encodes the entries as an object, preserving category order.
func (es Entries) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, l := range es {
		if i > 0 {
			buf.WriteByte(',')
		}
		k, err := marshalRaw(l.Key)
		if err != nil {
			return nil, fmt.Errorf("encoding key %q: %w", l.Key, err)
		}
		v, err := marshalRaw(l.Entry.Text)
		if err != nil {
			return nil, fmt.Errorf("encoding value of %q: %w", l.Key, err)
		}
		buf.Write(k)
		buf.WriteByte(':')
		buf.Write(v)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// marshalRaw encodes v without escaping <, > and &.
func marshalRaw(v any) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(v); err != nil {
		return nil, err
	}
	return bytes.TrimSuffix(buf.Bytes(), []byte("\n")), nil
}

func number(d decimal.Decimal) json.Number {
	return json.Number(d.String())
}

// Document builds the JSON export layout from the current state.
func (s *Sheet) Document() Document {
	snap := s.Snapshot()
	return Document{
		Salary:           number(snap.Salary),
		Expenses:         Entries(snap.Expenses),
		Investments:      Entries(snap.Investments),
		TotalExpenses:    number(snap.TotalExpenses),
		TotalInvestments: number(snap.TotalInvestments),
		Remaining:        number(snap.Remaining),
	}
}

// JSONPayload returns the 2-space indented JSON export. Text is written as
// entered, without HTML escaping.
func (s *Sheet) JSONPayload() ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(s.Document()); err != nil {
		return nil, fmt.Errorf("marshaling sheet: %w", err)
	}
	return bytes.TrimSuffix(buf.Bytes(), []byte("\n")), nil
}

// CSVPayload returns the CSV export: header, one row per entry, then totals.
func (s *Sheet) CSVPayload() ([]byte, error) {
	snap := s.Snapshot()

	var buf bytes.Buffer
	cw := csv.NewWriter(&buf)

	if err := cw.Write(strings.Split(CSVHeader, ",")); err != nil {
		return nil, fmt.Errorf("writing header: %w", err)
	}

	rows := make([][]string, 0, len(snap.Expenses)+len(snap.Investments)+3)
	for _, l := range snap.Expenses {
		rows = append(rows, csvRow(RowExpense, l.Key, l.Entry.Text))
	}
	for _, l := range snap.Investments {
		rows = append(rows, csvRow(RowInvestment, l.Key, l.Entry.Text))
	}
	rows = append(rows,
		csvRow(RowSummary, ItemTotalExpenses, snap.TotalExpenses.String()),
		csvRow(RowSummary, ItemTotalInvestments, snap.TotalInvestments.String()),
		csvRow(RowSummary, ItemRemaining, snap.Remaining.String()),
	)

	for i, row := range rows {
		if err := cw.Write(row); err != nil {
			return nil, fmt.Errorf("writing row %d: %w", i+2, err)
		}
	}
	cw.Flush()
	if err := cw.Error(); err != nil {
		return nil, fmt.Errorf("flushing CSV: %w", err)
	}
	return buf.Bytes(), nil
}

func csvRow(category, item, amount string) []string {
	row := make([]string, numCSVFields)
	row[colCategory] = category
	row[colItem] = item
	row[colAmount] = amount
	return row
}

// ExportJSON hands the JSON payload to the exporter as finance-data.json.
func (s *Sheet) ExportJSON(x FileExporter) error {
	data, err := s.JSONPayload()
	if err != nil {
		return err
	}
	if err := x.Export(data, JSONFilename, JSONMIMEType); err != nil {
		return fmt.Errorf("exporting JSON: %w", err)
	}
	return nil
}

// ExportCSV hands the CSV payload to the exporter as finance-summary.csv.
func (s *Sheet) ExportCSV(x FileExporter) error {
	data, err := s.CSVPayload()
	if err != nil {
		return err
	}
	if err := x.Export(data, CSVFilename, CSVMIMEType); err != nil {
		return fmt.Errorf("exporting CSV: %w", err)
	}
	return nil
}
