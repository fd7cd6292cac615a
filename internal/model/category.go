package model

import (
	"errors"
	"fmt"
)

// ErrUnknownCategory is returned when a key names no expense or investment category.
var ErrUnknownCategory = errors.New("unknown category")

// Kind classifies a category as an expense or an investment.
type Kind string

const (
	KindExpense    Kind = "expense"
	KindInvestment Kind = "investment"
)

// Expense is one of the fixed expense categories.
type Expense int

const (
	Groceries Expense = iota
	Hotel
	Other
	Rent
	Power
	Gas
	Car

	NumExpenses = int(Car) + 1
)

var expenseKeys = [NumExpenses]string{"groceries", "hotel", "other", "rent", "power", "gas", "car"}

// Expenses lists every expense category in display and export order.
func Expenses() []Expense {
	out := make([]Expense, NumExpenses)
	for i := range out {
		out[i] = Expense(i)
	}
	return out
}

// Valid reports whether e is one of the defined categories.
func (e Expense) Valid() bool { return e >= 0 && int(e) < NumExpenses }

// Key returns the export key, e.g. "groceries".
func (e Expense) Key() string {
	if !e.Valid() {
		return fmt.Sprintf("Expense(%d)", int(e))
	}
	return expenseKeys[e]
}

func (e Expense) String() string { return e.Key() }

// ParseExpense maps an export key to its Expense.
func ParseExpense(key string) (Expense, error) {
	for i, k := range expenseKeys {
		if k == key {
			return Expense(i), nil
		}
	}
	return 0, fmt.Errorf("%w: expense %q", ErrUnknownCategory, key)
}

// Investment is one of the fixed investment categories.
type Investment int

const (
	Stocks Investment = iota
	Crypto
	HSA
	Roth

	NumInvestments = int(Roth) + 1
)

var investmentKeys = [NumInvestments]string{"stocks", "crypto", "hsa", "roth"}

// Investments lists every investment category in display and export order.
func Investments() []Investment {
	out := make([]Investment, NumInvestments)
	for i := range out {
		out[i] = Investment(i)
	}
	return out
}

// Valid reports whether i is one of the defined categories.
func (i Investment) Valid() bool { return i >= 0 && int(i) < NumInvestments }

// Key returns the export key, e.g. "stocks".
func (i Investment) Key() string {
	if !i.Valid() {
		return fmt.Sprintf("Investment(%d)", int(i))
	}
	return investmentKeys[i]
}

func (i Investment) String() string { return i.Key() }

// ParseInvestment maps an export key to its Investment.
func ParseInvestment(key string) (Investment, error) {
	for i, k := range investmentKeys {
		if k == key {
			return Investment(i), nil
		}
	}
	return 0, fmt.Errorf("%w: investment %q", ErrUnknownCategory, key)
}
