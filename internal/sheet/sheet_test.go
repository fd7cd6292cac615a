package sheet

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cleared-dev/tally/internal/model"
)

func dec(s string) decimal.Decimal {
	d, _ := decimal.NewFromString(s)
	return d
}

func assertDec(t *testing.T, want string, got decimal.Decimal, msgAndArgs ...any) {
	t.Helper()
	assert.True(t, dec(want).Equal(got), append([]any{"want %s, got %s", want, got.String()}, msgAndArgs...)...)
}

// scenarioSheet is salary 3000 with groceries 400, rent 1200 and stocks 300.
func scenarioSheet(t *testing.T) *Sheet {
	t.Helper()
	s := New()
	s.SetSalary(dec("3000"))
	require.NoError(t, s.SetExpenseItem("groceries", "400"))
	require.NoError(t, s.SetExpenseItem("rent", "1200"))
	require.NoError(t, s.SetInvestmentItem("stocks", "300"))
	return s
}

func TestNewIsBlank(t *testing.T) {
	s := New()
	assert.True(t, s.Salary().IsZero())
	for _, e := range model.Expenses() {
		assert.True(t, s.Expense(e).Blank(), "expense %s", e)
	}
	for _, i := range model.Investments() {
		assert.True(t, s.Investment(i).Blank(), "investment %s", i)
	}
	assertDec(t, "0", s.Remaining())
}

func TestScenario(t *testing.T) {
	s := scenarioSheet(t)

	assertDec(t, "1600", s.TotalExpenses())
	assertDec(t, "300", s.TotalInvestments())
	assertDec(t, "1100", s.Remaining())
	assertDec(t, "53.3", s.PercentOf(s.TotalExpenses()))
	assert.Equal(t, "53.3", s.PercentLabel(s.TotalExpenses()))
	assert.Equal(t, "10.0", s.PercentLabel(s.TotalInvestments()))
	assert.Equal(t, "36.7", s.PercentLabel(s.Remaining()))
}

func TestZeroSalaryPercent(t *testing.T) {
	s := New()
	require.NoError(t, s.SetExpenseItem("groceries", "100"))

	assertDec(t, "100", s.TotalExpenses())
	assert.True(t, s.PercentOf(dec("100")).IsZero())
	assert.Equal(t, "0", s.PercentLabel(dec("100")))

	for _, x := range []string{"0", "-5", "1e9", "0.01"} {
		assert.True(t, s.PercentOf(dec(x)).IsZero(), "PercentOf(%s)", x)
	}
}

func TestNegativeSalaryPercent(t *testing.T) {
	s := New()
	s.SetSalary(dec("-100"))
	assert.True(t, s.PercentOf(dec("50")).IsZero())
	// Negative salary is kept as entered.
	assertDec(t, "-100", s.Remaining())
}

func TestBlankAndNonNumericAreZero(t *testing.T) {
	s := New()
	s.SetSalary(dec("1000"))
	require.NoError(t, s.SetExpenseItem("groceries", ""))
	require.NoError(t, s.SetExpenseItem("hotel", "abc"))
	require.NoError(t, s.SetExpenseItem("other", "25.5"))
	require.NoError(t, s.SetInvestmentItem("crypto", "n/a"))

	assertDec(t, "25.5", s.TotalExpenses())
	assertDec(t, "0", s.TotalInvestments())
	assertDec(t, "974.5", s.Remaining())

	// The text is kept verbatim.
	assert.Equal(t, "abc", s.Expense(model.Hotel).Text)
}

func TestTotalsIndependentOfOrder(t *testing.T) {
	values := map[string]string{
		"groceries": "10", "hotel": "20.25", "other": "", "rent": "700",
		"power": "55.10", "gas": "x", "car": "310",
	}

	forward := New()
	for _, e := range model.Expenses() {
		require.NoError(t, forward.SetExpenseItem(e.Key(), values[e.Key()]))
	}

	backward := New()
	keys := model.Expenses()
	for i := len(keys) - 1; i >= 0; i-- {
		require.NoError(t, backward.SetExpenseItem(keys[i].Key(), values[keys[i].Key()]))
	}

	assertDec(t, "1095.35", forward.TotalExpenses())
	assert.True(t, forward.TotalExpenses().Equal(backward.TotalExpenses()))
}

func TestRemainingTracksEveryMutation(t *testing.T) {
	s := New()
	check := func() {
		t.Helper()
		want := s.Salary().Sub(s.TotalExpenses()).Sub(s.TotalInvestments())
		assert.True(t, want.Equal(s.Remaining()), "remaining %s != %s", s.Remaining(), want)
	}

	s.SetSalary(dec("2500"))
	check()
	require.NoError(t, s.SetExpenseItem("car", "300"))
	check()
	require.NoError(t, s.SetInvestmentItem("roth", "500"))
	check()
	require.NoError(t, s.SetExpenseItem("car", ""))
	check()
	s.SetSalary(dec("0"))
	check()
	assertDec(t, "-500", s.Remaining())
}

func TestOverwrite(t *testing.T) {
	s := New()
	require.NoError(t, s.SetExpenseItem("rent", "1000"))
	require.NoError(t, s.SetExpenseItem("rent", "1100"))
	assertDec(t, "1100", s.TotalExpenses())
}

func TestUnknownCategory(t *testing.T) {
	s := scenarioSheet(t)
	before := s.Snapshot()

	err := s.SetExpenseItem("vacation", "99")
	require.Error(t, err)
	assert.ErrorIs(t, err, model.ErrUnknownCategory)

	err = s.SetInvestmentItem("groceries", "99")
	assert.ErrorIs(t, err, model.ErrUnknownCategory)

	err = s.SetExpense(model.Expense(99), "1")
	assert.ErrorIs(t, err, model.ErrUnknownCategory)

	err = s.SetInvestment(model.Investment(-1), "1")
	assert.ErrorIs(t, err, model.ErrUnknownCategory)

	assert.Equal(t, before, s.Snapshot(), "failed sets must not change the sheet")
}

func TestReset(t *testing.T) {
	s := scenarioSheet(t)
	s.Reset()

	assertDec(t, "0", s.TotalExpenses())
	assertDec(t, "0", s.TotalInvestments())
	assertDec(t, "0", s.Remaining())
	assert.True(t, s.Salary().IsZero())
	assert.Equal(t, New().Snapshot(), s.Snapshot())
}

func TestSnapshotOrder(t *testing.T) {
	snap := scenarioSheet(t).Snapshot()

	require.Len(t, snap.Expenses, model.NumExpenses)
	require.Len(t, snap.Investments, model.NumInvestments)
	assert.Equal(t, "groceries", snap.Expenses[0].Key)
	assert.Equal(t, "400", snap.Expenses[0].Entry.Text)
	assert.Equal(t, "car", snap.Expenses[6].Key)
	assert.Equal(t, model.KindInvestment, snap.Investments[0].Kind)
	assert.Equal(t, "roth", snap.Investments[3].Key)
	assertDec(t, "1100", snap.Remaining)
}

func TestBlank(t *testing.T) {
	assert.True(t, New().Blank())

	s := New()
	require.NoError(t, s.SetInvestmentItem("hsa", "0"))
	assert.False(t, s.Blank(), "any entry text counts")

	s = scenarioSheet(t)
	assert.False(t, s.Blank())
	s.Reset()
	assert.True(t, s.Blank())
}
