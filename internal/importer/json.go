package importer

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/cleared-dev/tally/internal/model"
	"github.com/cleared-dev/tally/internal/sheet"
)

// JSONParser reads finance-data.json exports.
type JSONParser struct{}

type jsonDocument struct {
	Salary           json.RawMessage            `json:"salary"`
	Expenses         map[string]json.RawMessage `json:"expenses"`
	Investments      map[string]json.RawMessage `json:"investments"`
	TotalExpenses    *json.Number               `json:"totalExpenses"`
	TotalInvestments *json.Number               `json:"totalInvestments"`
	Remaining        *json.Number               `json:"remaining"`
}

// Format returns the parser name.
func (p *JSONParser) Format() string { return "json" }

// Parse decodes a JSON export. Entry values may be strings or numbers; keys
// missing from the file stay blank.
func (p *JSONParser) Parse(r io.Reader) (*Result, error) {
	var doc jsonDocument
	if err := json.NewDecoder(r).Decode(&doc); err != nil {
		return nil, fmt.Errorf("decoding JSON: %w", err)
	}

	sh := sheet.New()

	salary, err := jsonAmount(doc.Salary)
	if err != nil {
		return nil, fmt.Errorf("salary: %w", err)
	}
	sh.SetSalary(salary)

	for key, raw := range doc.Expenses {
		text, err := jsonText(raw)
		if err != nil {
			return nil, fmt.Errorf("expenses.%s: %w", key, err)
		}
		if err := sh.SetExpenseItem(key, text); err != nil {
			return nil, fmt.Errorf("expenses: %w", err)
		}
	}
	for key, raw := range doc.Investments {
		text, err := jsonText(raw)
		if err != nil {
			return nil, fmt.Errorf("investments.%s: %w", key, err)
		}
		if err := sh.SetInvestmentItem(key, text); err != nil {
			return nil, fmt.Errorf("investments: %w", err)
		}
	}

	res := &Result{Sheet: sh}
	if doc.TotalExpenses != nil && doc.TotalInvestments != nil && doc.Remaining != nil {
		res.HasTotals = true
		for _, f := range []struct {
			name string
			src  *json.Number
			dst  *decimal.Decimal
		}{
			{"totalExpenses", doc.TotalExpenses, &res.Stored.Expenses},
			{"totalInvestments", doc.TotalInvestments, &res.Stored.Investments},
			{"remaining", doc.Remaining, &res.Stored.Remaining},
		} {
			d, err := model.ParseDecimal(f.src.String())
			if err != nil {
				return nil, fmt.Errorf("%s: %w", f.name, err)
			}
			*f.dst = d
		}
	}
	return res, nil
}

// jsonText returns an entry value as text: strings verbatim, numbers as written,
// null as blank.
func jsonText(raw json.RawMessage) (string, error) {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 || bytes.Equal(raw, []byte("null")) {
		return "", nil
	}
	if raw[0] == '"' {
		var s string
		if err := json.Unmarshal(raw, &s); err != nil {
			return "", err
		}
		return s, nil
	}
	var n json.Number
	if err := json.Unmarshal(raw, &n); err != nil {
		return "", fmt.Errorf("expected string or number, got %s", raw)
	}
	return n.String(), nil
}

// jsonAmount reads salary, which is a number but may arrive quoted.
func jsonAmount(raw json.RawMessage) (decimal.Decimal, error) {
	text, err := jsonText(raw)
	if err != nil {
		return decimal.Zero, err
	}
	text = strings.TrimSpace(text)
	if text == "" {
		return decimal.Zero, nil
	}
	d, err := model.ParseDecimal(text)
	if err != nil {
		return decimal.Zero, fmt.Errorf("parsing %q: %w", text, err)
	}
	return d, nil
}
