package importer

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// ValidationError describes a stored total that disagrees with the entries.
type ValidationError struct {
	Field    string
	Stored   decimal.Decimal
	Computed decimal.Decimal
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: file says %s, entries sum to %s", e.Field, e.Stored, e.Computed)
}

// Verify recomputes the totals of res.Sheet and reports every stored total
// that differs. Results without stored totals always verify.
func Verify(res *Result) []ValidationError {
	if res == nil || !res.HasTotals {
		return nil
	}

	var errs []ValidationError
	check := func(field string, stored, computed decimal.Decimal) {
		if !stored.Equal(computed) {
			errs = append(errs, ValidationError{Field: field, Stored: stored, Computed: computed})
		}
	}
	check("total expenses", res.Stored.Expenses, res.Sheet.TotalExpenses())
	check("total investments", res.Stored.Investments, res.Sheet.TotalInvestments())
	check("remaining", res.Stored.Remaining, res.Sheet.Remaining())
	return errs
}
