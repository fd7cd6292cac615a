package model

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExpenseKeysInOrder(t *testing.T) {
	var keys []string
	for _, e := range Expenses() {
		keys = append(keys, e.Key())
	}
	assert.Equal(t, []string{"groceries", "hotel", "other", "rent", "power", "gas", "car"}, keys)
}

func TestInvestmentKeysInOrder(t *testing.T) {
	var keys []string
	for _, i := range Investments() {
		keys = append(keys, i.Key())
	}
	assert.Equal(t, []string{"stocks", "crypto", "hsa", "roth"}, keys)
}

func TestParseExpense(t *testing.T) {
	for _, e := range Expenses() {
		got, err := ParseExpense(e.Key())
		require.NoError(t, err)
		assert.Equal(t, e, got)
	}

	_, err := ParseExpense("vacation")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUnknownCategory)

	// Investment keys are not expenses.
	_, err = ParseExpense("stocks")
	assert.ErrorIs(t, err, ErrUnknownCategory)
}

func TestParseInvestment(t *testing.T) {
	got, err := ParseInvestment("hsa")
	require.NoError(t, err)
	assert.Equal(t, HSA, got)

	_, err = ParseInvestment("bonds")
	assert.ErrorIs(t, err, ErrUnknownCategory)
}

func TestValid(t *testing.T) {
	assert.True(t, Car.Valid())
	assert.False(t, Expense(NumExpenses).Valid())
	assert.False(t, Expense(-1).Valid())
	assert.True(t, Roth.Valid())
	assert.False(t, Investment(NumInvestments).Valid())
	assert.Equal(t, "Expense(42)", Expense(42).Key())
}

func TestEntryAmount(t *testing.T) {
	tests := []struct {
		text string
		want string
	}{
		{"", "0"},
		{"400", "400"},
		{"  1200 ", "1200"},
		{"12.50", "12.5"},
		{"-30", "-30"},
		{"1e3", "1000"},
		{"abc", "0"},
		{"12abc", "0"},
		{"$5", "0"},
		{"1e100", "1" + strings.Repeat("0", 100)},
		{"1e101", "0"},
		{"1e1000000000", "0"},
		{"1e-1000000000", "0"},
	}
	for _, tt := range tests {
		got := NewEntry(tt.text).Amount()
		assert.Equal(t, tt.want, got.String(), "Amount(%q)", tt.text)
	}
}

func TestEntryBlank(t *testing.T) {
	assert.True(t, Entry{}.Blank())
	assert.False(t, NewEntry("0").Blank())
	assert.False(t, NewEntry(" ").Blank())
}

func TestParseDecimal(t *testing.T) {
	d, err := ParseDecimal(" 2.5e3 ")
	require.NoError(t, err)
	assert.Equal(t, "2500", d.String())

	_, err = ParseDecimal("1e1000000000")
	assert.ErrorIs(t, err, ErrOutOfRange)

	_, err = ParseDecimal("lots")
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrOutOfRange)
}
