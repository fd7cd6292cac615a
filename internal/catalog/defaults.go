package catalog

import "github.com/cleared-dev/tally/internal/model"

// Default returns every category in form order, expenses first.
func Default() []Category {
	return []Category{
		{Key: model.Groceries.Key(), Label: "Groceries", Kind: model.KindExpense},
		{Key: model.Hotel.Key(), Label: "Hotel (Eating out)", Kind: model.KindExpense},
		{Key: model.Other.Key(), Label: "Other Expenses", Kind: model.KindExpense},
		{Key: model.Rent.Key(), Label: "Rent", Kind: model.KindExpense},
		{Key: model.Power.Key(), Label: "Power bill (APS)", Kind: model.KindExpense},
		{Key: model.Gas.Key(), Label: "Gas bill (Southwest)", Kind: model.KindExpense},
		{Key: model.Car.Key(), Label: "Car Loan", Kind: model.KindExpense},
		{Key: model.Stocks.Key(), Label: "Stocks", Kind: model.KindInvestment},
		{Key: model.Crypto.Key(), Label: "Crypto", Kind: model.KindInvestment},
		{Key: model.HSA.Key(), Label: "HSA", Kind: model.KindInvestment},
		{Key: model.Roth.Key(), Label: "ROTH IRA", Kind: model.KindInvestment},
	}
}
