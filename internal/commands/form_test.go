package commands

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cleared-dev/tally/internal/catalog"
	"github.com/cleared-dev/tally/internal/logging"
	"github.com/cleared-dev/tally/internal/model"
	"github.com/cleared-dev/tally/internal/sheet"
)

func TestValuesRoundTrip(t *testing.T) {
	sh := sheet.New()
	sh.SetSalary(decimal.NewFromInt(3000))
	require.NoError(t, sh.SetExpenseItem("groceries", "400"))
	require.NoError(t, sh.SetInvestmentItem("roth", "250"))

	vals := valuesFromSheet(sh)
	assert.Equal(t, "3000", vals.Salary)
	assert.Equal(t, "400", vals.Expenses[model.Groceries])
	assert.Equal(t, "250", vals.Investments[model.Roth])
	assert.Equal(t, exportNone, vals.Export)

	got := sheet.New()
	require.NoError(t, applyValues(vals, got))
	assert.True(t, sh.Remaining().Equal(got.Remaining()))
	assert.Equal(t, "400", got.Expense(model.Groceries).Text)
}

func TestValuesFromBlankSheet(t *testing.T) {
	vals := valuesFromSheet(sheet.New())
	assert.Equal(t, "", vals.Salary, "zero salary shows as an empty field")
}

func TestApplyValues(t *testing.T) {
	vals := formValues{Salary: " 2000 "}
	vals.Expenses[model.Car] = "abc"
	vals.Investments[model.Crypto] = "100"

	sh := sheet.New()
	require.NoError(t, applyValues(vals, sh))
	assert.Equal(t, "2000", sh.Salary().String())
	assert.Equal(t, "abc", sh.Expense(model.Car).Text)
	assert.Equal(t, "1900", sh.Remaining().String())

	vals.Salary = "many"
	assert.Error(t, applyValues(vals, sh))
}

func TestExportChoiceFormats(t *testing.T) {
	assert.Nil(t, exportChoiceFormats(exportNone))
	assert.Equal(t, []string{"json"}, exportChoiceFormats(exportJSON))
	assert.Equal(t, []string{"csv"}, exportChoiceFormats(exportCSV))
	assert.Equal(t, []string{"json", "csv"}, exportChoiceFormats(exportBoth))
}

func TestNewEntryForm(t *testing.T) {
	var vals formValues
	form := newEntryForm(catalog.NewService(catalog.Default()), &vals)
	require.NotNil(t, form)
}

func testApp() *app {
	return &app{log: logging.Discard(), catalog: catalog.NewService(catalog.Default())}
}

func TestStartValuesReset(t *testing.T) {
	a := testApp()
	in := sheetInput{salary: "3000", sets: []string{"rent=1200", "hsa=150"}}
	sh, err := in.build(a)
	require.NoError(t, err)
	require.False(t, sh.Blank())

	vals := startValues(a, sh, true)
	assert.Equal(t, valuesFromSheet(sheet.New()), vals)
	assert.True(t, sh.Blank())
	assert.True(t, sh.Remaining().IsZero())
}

func TestStartValuesKeep(t *testing.T) {
	a := testApp()
	in := sheetInput{salary: "3000", sets: []string{"rent=1200"}}
	sh, err := in.build(a)
	require.NoError(t, err)

	vals := startValues(a, sh, false)
	assert.Equal(t, "3000", vals.Salary)
	assert.Equal(t, "1200", vals.Expenses[model.Rent])
	assert.Equal(t, "1800", sh.Remaining().String())
}

func TestNewStartOverConfirm(t *testing.T) {
	var startOver bool
	require.NotNil(t, newStartOverConfirm(&startOver))
}
