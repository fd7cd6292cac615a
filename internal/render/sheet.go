package render

import (
	"strings"

	"github.com/shopspring/decimal"

	"github.com/cleared-dev/tally/internal/catalog"
	"github.com/cleared-dev/tally/internal/model"
	"github.com/cleared-dev/tally/internal/sheet"
)

// Money formats an amount with the currency prefix, sign first: "-$12.5".
func Money(currency string, d decimal.Decimal) string {
	if d.IsNegative() {
		return "-" + currency + d.Neg().String()
	}
	return currency + d.String()
}

// SummaryLines returns the three summary lines shown under the form, e.g.
// "Total Expenses: $1600 (53.3%)".
func SummaryLines(sh *sheet.Sheet, currency string) []string {
	line := func(label string, d decimal.Decimal) string {
		return label + ": " + Money(currency, d) + " (" + sh.PercentLabel(d) + "%)"
	}
	return []string{
		line(sheet.ItemTotalExpenses, sh.TotalExpenses()),
		line(sheet.ItemTotalInvestments, sh.TotalInvestments()),
		line(sheet.ItemRemaining, sh.Remaining()),
	}
}

// Summary renders the whole sheet: every entry, then the totals.
func Summary(title string, sh *sheet.Sheet, cat *catalog.Service, currency string) string {
	snap := sh.Snapshot()

	entryRow := func(l sheet.Line) []string {
		if l.Entry.Blank() {
			return []string{cat.Label(l.Key), "", ""}
		}
		amt := l.Entry.Amount()
		return []string{cat.Label(l.Key), Money(currency, amt), sh.PercentLabel(amt) + "%"}
	}

	rows := [][]string{{"Salary", Money(currency, snap.Salary), ""}, {Separator}}
	for _, l := range snap.Expenses {
		rows = append(rows, entryRow(l))
	}
	rows = append(rows, []string{Separator})
	for _, l := range snap.Investments {
		rows = append(rows, entryRow(l))
	}

	var b strings.Builder
	if title != "" {
		b.WriteString(RenderTitle(title))
		b.WriteString("\n")
	}
	b.WriteString(RenderTable(Table{
		Headers: []string{"Item", "Amount", "% of salary"},
		Rows:    rows,
	}))

	b.WriteString("\n")
	for i, line := range SummaryLines(sh, currency) {
		style := valueStyle
		if i == 2 {
			style = positiveStyle
			if snap.Remaining.IsNegative() {
				style = negativeStyle
			}
		}
		b.WriteString("  ")
		b.WriteString(style.Render(line))
		b.WriteString("\n")
	}
	return b.String()
}

// Categories renders the category catalog.
func Categories(cat *catalog.Service) string {
	var rows [][]string
	for _, kind := range []model.Kind{model.KindExpense, model.KindInvestment} {
		if len(rows) > 0 {
			rows = append(rows, []string{Separator})
		}
		for _, c := range cat.ByKind(kind) {
			rows = append(rows, []string{c.Key, c.Label, string(c.Kind)})
		}
	}
	return RenderTable(Table{
		Title:   "Categories",
		Headers: []string{"Key", "Label", "Kind"},
		Rows:    rows,
	})
}

// Warning renders a muted warning line.
func Warning(msg string) string {
	return mutedStyle.Render("  warning: " + msg)
}
