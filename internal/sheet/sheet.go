// Package sheet holds the monthly finance sheet: salary, the fixed expense and
// investment line items, and every figure derived from them.
package sheet

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/cleared-dev/tally/internal/model"
)

var hundred = decimal.NewFromInt(100)

// Sheet is the editable state of one month. The zero value is a blank sheet.
type Sheet struct {
	salary      decimal.Decimal
	expenses    [model.NumExpenses]model.Entry
	investments [model.NumInvestments]model.Entry
}

// New returns a blank sheet.
func New() *Sheet {
	return &Sheet{}
}

// Salary returns the current salary.
func (s *Sheet) Salary() decimal.Decimal { return s.salary }

// SetSalary replaces the salary. Negative values are accepted.
func (s *Sheet) SetSalary(v decimal.Decimal) { s.salary = v }

// Expense returns the entry for an expense category.
func (s *Sheet) Expense(e model.Expense) model.Entry {
	if !e.Valid() {
		return model.Entry{}
	}
	return s.expenses[e]
}

// Investment returns the entry for an investment category.
func (s *Sheet) Investment(i model.Investment) model.Entry {
	if !i.Valid() {
		return model.Entry{}
	}
	return s.investments[i]
}

// SetExpense replaces the text of an expense entry.
func (s *Sheet) SetExpense(e model.Expense, text string) error {
	if !e.Valid() {
		return fmt.Errorf("%w: %s", model.ErrUnknownCategory, e.Key())
	}
	s.expenses[e] = model.NewEntry(text)
	return nil
}

// SetInvestment replaces the text of an investment entry.
func (s *Sheet) SetInvestment(i model.Investment, text string) error {
	if !i.Valid() {
		return fmt.Errorf("%w: %s", model.ErrUnknownCategory, i.Key())
	}
	s.investments[i] = model.NewEntry(text)
	return nil
}

// SetExpenseItem replaces the text of the expense named by key.
// Unknown keys fail with model.ErrUnknownCategory and leave the sheet untouched.
func (s *Sheet) SetExpenseItem(key, text string) error {
	e, err := model.ParseExpense(key)
	if err != nil {
		return err
	}
	return s.SetExpense(e, text)
}

// SetInvestmentItem replaces the text of the investment named by key.
func (s *Sheet) SetInvestmentItem(key, text string) error {
	i, err := model.ParseInvestment(key)
	if err != nil {
		return err
	}
	return s.SetInvestment(i, text)
}

// Reset restores the blank sheet: zero salary and empty entries.
func (s *Sheet) Reset() {
	*s = Sheet{}
}

// Blank reports whether the sheet has zero salary and no entry text.
func (s *Sheet) Blank() bool {
	return s.salary.IsZero() &&
		s.expenses == [model.NumExpenses]model.Entry{} &&
		s.investments == [model.NumInvestments]model.Entry{}
}

// TotalExpenses sums every expense entry.
func (s *Sheet) TotalExpenses() decimal.Decimal {
	total := decimal.Zero
	for _, e := range s.expenses {
		total = total.Add(e.Amount())
	}
	return total
}

// TotalInvestments sums every investment entry.
func (s *Sheet) TotalInvestments() decimal.Decimal {
	total := decimal.Zero
	for _, e := range s.investments {
		total = total.Add(e.Amount())
	}
	return total
}

// Remaining is salary minus total expenses minus total investments.
func (s *Sheet) Remaining() decimal.Decimal {
	return s.salary.Sub(s.TotalExpenses()).Sub(s.TotalInvestments())
}

// PercentOf returns amount as a percentage of salary, rounded to one decimal.
// It is zero whenever salary is not positive.
func (s *Sheet) PercentOf(amount decimal.Decimal) decimal.Decimal {
	if !s.salary.IsPositive() {
		return decimal.Zero
	}
	return amount.Mul(hundred).Div(s.salary).Round(1)
}

// PercentLabel formats PercentOf for display: "0" without a positive salary,
// otherwise exactly one decimal place ("53.3", "50.0").
func (s *Sheet) PercentLabel(amount decimal.Decimal) string {
	if !s.salary.IsPositive() {
		return "0"
	}
	return s.PercentOf(amount).StringFixed(1)
}

// Line is one entry in a Snapshot.
type Line struct {
	Kind  model.Kind
	Key   string
	Entry model.Entry
}

// Snapshot is a point-in-time copy of a sheet with its derived totals.
type Snapshot struct {
	Salary           decimal.Decimal
	Expenses         []Line
	Investments      []Line
	TotalExpenses    decimal.Decimal
	TotalInvestments decimal.Decimal
	Remaining        decimal.Decimal
}

// Snapshot copies the current state in fixed category order.
func (s *Sheet) Snapshot() Snapshot {
	snap := Snapshot{
		Salary:           s.salary,
		Expenses:         make([]Line, 0, model.NumExpenses),
		Investments:      make([]Line, 0, model.NumInvestments),
		TotalExpenses:    s.TotalExpenses(),
		TotalInvestments: s.TotalInvestments(),
		Remaining:        s.Remaining(),
	}
	for _, e := range model.Expenses() {
		snap.Expenses = append(snap.Expenses, Line{Kind: model.KindExpense, Key: e.Key(), Entry: s.expenses[e]})
	}
	for _, i := range model.Investments() {
		snap.Investments = append(snap.Investments, Line{Kind: model.KindInvestment, Key: i.Key(), Entry: s.investments[i]})
	}
	return snap
}
