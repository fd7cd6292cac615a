package importer

import (
	"encoding/csv"
	"fmt"
	"io"
	"strings"

	"github.com/cleared-dev/tally/internal/model"
	"github.com/cleared-dev/tally/internal/sheet"
)

// CSVParser reads finance-summary.csv exports.
type CSVParser struct{}

const (
	csvNumFields   = 3
	csvColCategory = 0
	csvColItem     = 1
	csvColAmount   = 2
)

// Format returns the parser name.
func (p *CSVParser) Format() string { return "csv" }

// Parse reads a CSV export. The CSV has no salary row, so salary is rebuilt
// from the summary rows as remaining + total expenses + total investments.
func (p *CSVParser) Parse(r io.Reader) (*Result, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = csvNumFields

	records, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("reading finance CSV: %w", err)
	}
	if len(records) == 0 {
		return nil, fmt.Errorf("empty file")
	}
	if got := strings.Join(records[0], ","); got != sheet.CSVHeader {
		return nil, fmt.Errorf("unexpected header %q, want %q", got, sheet.CSVHeader)
	}

	sh := sheet.New()
	var stored Totals
	seen := make(map[string]bool)

	for i, rec := range records[1:] {
		row := i + 2
		item, amount := rec[csvColItem], rec[csvColAmount]

		switch rec[csvColCategory] {
		case sheet.RowExpense:
			if err := sh.SetExpenseItem(item, amount); err != nil {
				return nil, fmt.Errorf("row %d: %w", row, err)
			}
		case sheet.RowInvestment:
			if err := sh.SetInvestmentItem(item, amount); err != nil {
				return nil, fmt.Errorf("row %d: %w", row, err)
			}
		case sheet.RowSummary:
			d, err := model.ParseDecimal(amount)
			if err != nil {
				return nil, fmt.Errorf("row %d: parsing %s %q: %w", row, item, amount, err)
			}
			switch item {
			case sheet.ItemTotalExpenses:
				stored.Expenses = d
			case sheet.ItemTotalInvestments:
				stored.Investments = d
			case sheet.ItemRemaining:
				stored.Remaining = d
			default:
				return nil, fmt.Errorf("row %d: unknown summary item %q", row, item)
			}
			seen[item] = true
		default:
			return nil, fmt.Errorf("row %d: unknown row category %q", row, rec[csvColCategory])
		}
	}

	res := &Result{Sheet: sh, Stored: stored}
	if seen[sheet.ItemTotalExpenses] && seen[sheet.ItemTotalInvestments] && seen[sheet.ItemRemaining] {
		res.HasTotals = true
		sh.SetSalary(stored.Remaining.Add(stored.Expenses).Add(stored.Investments))
	}
	return res, nil
}
