package commands

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"github.com/cleared-dev/tally/internal/assign"
	"github.com/cleared-dev/tally/internal/importer"
	"github.com/cleared-dev/tally/internal/model"
	"github.com/cleared-dev/tally/internal/sheet"
)

// sheetInput holds the flags that describe a sheet on the command line.
type sheetInput struct {
	from   string
	salary string
	sets   []string
}

func (in *sheetInput) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&in.from, "from", "", "start from an exported .json or .csv file")
	cmd.Flags().StringVar(&in.salary, "salary", "", "monthly salary")
	cmd.Flags().StringArrayVarP(&in.sets, "set", "s", nil, "set an entry, e.g. --set groceries=400 (repeatable)")
}

// build assembles the sheet: file first, then --salary, then each --set in order.
func (in *sheetInput) build(a *app) (*sheet.Sheet, error) {
	sh := sheet.New()

	if in.from != "" {
		res, err := importer.DefaultRegistry().Load(in.from)
		if err != nil {
			return nil, err
		}
		for _, ve := range importer.Verify(res) {
			a.log.Warn("stored total does not match entries", "file", in.from, "detail", ve.Error())
		}
		sh = res.Sheet
		a.log.Debug("loaded sheet", "file", in.from, "salary", sh.Salary().String())
	}

	if in.salary != "" {
		salary, err := parseSalary(in.salary)
		if err != nil {
			return nil, err
		}
		sh.SetSalary(salary)
	}

	assignments, err := assign.ParseAll(in.sets)
	if err != nil {
		return nil, err
	}
	for _, as := range assignments {
		if err := a.catalog.Apply(sh, as.Key, as.Value); err != nil {
			return nil, fmt.Errorf("--set %s: %w", assign.Format(as.Key, as.Value), err)
		}
	}
	return sh, nil
}

// parseSalary reads salary text at the input boundary. Blank means zero.
func parseSalary(s string) (decimal.Decimal, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return decimal.Zero, nil
	}
	d, err := model.ParseDecimal(s)
	if err != nil {
		return decimal.Zero, fmt.Errorf("invalid salary %q: %w", s, err)
	}
	return d, nil
}
