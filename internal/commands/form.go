package commands

import (
	"errors"
	"fmt"
	"path/filepath"

	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"

	"github.com/cleared-dev/tally/internal/catalog"
	"github.com/cleared-dev/tally/internal/model"
	"github.com/cleared-dev/tally/internal/render"
	"github.com/cleared-dev/tally/internal/sheet"
)

// Export choices offered at the end of the form.
const (
	exportNone = "none"
	exportJSON = "json"
	exportCSV  = "csv"
	exportBoth = "all"
)

// formValues are the strings bound to the form inputs.
type formValues struct {
	Salary      string
	Expenses    [model.NumExpenses]string
	Investments [model.NumInvestments]string
	Export      string
}

func newFormCommand(a *app) *cobra.Command {
	var in sheetInput
	var outDir string
	var reset bool

	cmd := &cobra.Command{
		Use:   "form",
		Short: "Fill in the sheet interactively",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			sh, err := in.build(a)
			if err != nil {
				return err
			}

			startOver := reset
			if !startOver && !sh.Blank() {
				if err := newStartOverConfirm(&startOver).Run(); err != nil {
					return formError(cmd, err)
				}
			}

			vals := startValues(a, sh, startOver)
			if err := newEntryForm(a.catalog, &vals).Run(); err != nil {
				return formError(cmd, err)
			}

			if err := applyValues(vals, sh); err != nil {
				return err
			}

			fmt.Fprint(cmd.OutOrStdout(), render.Summary(a.cfg.Display.Title, sh, a.catalog, a.cfg.Display.Currency))

			if outDir == "" {
				outDir = a.cfg.Export.Dir
			}
			written, err := exportFormats(sh, a.loggingExporter(sheet.DirExporter{Dir: outDir}), exportChoiceFormats(vals.Export))
			if err != nil {
				return err
			}
			for _, name := range written {
				fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s\n", filepath.Join(outDir, name))
			}
			return nil
		},
	}

	in.register(cmd)
	cmd.Flags().StringVarP(&outDir, "out", "o", "", "output directory (default from config)")
	cmd.Flags().BoolVar(&reset, "reset", false, "clear every field before the form opens")

	return cmd
}

// formError reports an aborted form as a warning and wraps anything else.
func formError(cmd *cobra.Command, err error) error {
	if errors.Is(err, huh.ErrUserAborted) {
		fmt.Fprintln(cmd.ErrOrStderr(), render.Warning("aborted, nothing exported"))
		return nil
	}
	return fmt.Errorf("running form: %w", err)
}

// newStartOverConfirm asks whether a prefilled sheet should be cleared.
func newStartOverConfirm(startOver *bool) *huh.Form {
	return huh.NewForm(huh.NewGroup(
		huh.NewConfirm().
			Title("Start over (clear all fields)?").
			Affirmative("Clear").
			Negative("Keep").
			Value(startOver),
	))
}

// startValues resets sh when startOver is set and returns the form values for it.
func startValues(a *app, sh *sheet.Sheet, startOver bool) formValues {
	if startOver {
		sh.Reset()
		a.log.Debug("sheet reset")
	}
	return valuesFromSheet(sh)
}

// newEntryForm lays out salary, expenses, investments and the export choice
// as four pages bound to vals.
func newEntryForm(cat *catalog.Service, vals *formValues) *huh.Form {
	salary := huh.NewInput().
		Title("Salary").
		Placeholder("0").
		Value(&vals.Salary).
		Validate(func(s string) error {
			_, err := parseSalary(s)
			return err
		})

	expenses := make([]huh.Field, 0, model.NumExpenses)
	for i, e := range model.Expenses() {
		expenses = append(expenses, huh.NewInput().
			Title(cat.Label(e.Key())).
			Placeholder("0").
			Value(&vals.Expenses[i]))
	}

	investments := make([]huh.Field, 0, model.NumInvestments)
	for i, inv := range model.Investments() {
		investments = append(investments, huh.NewInput().
			Title(cat.Label(inv.Key())).
			Placeholder("0").
			Value(&vals.Investments[i]))
	}

	export := huh.NewSelect[string]().
		Title("Export").
		Options(
			huh.NewOption("Don't export", exportNone),
			huh.NewOption("JSON ("+sheet.JSONFilename+")", exportJSON),
			huh.NewOption("CSV ("+sheet.CSVFilename+")", exportCSV),
			huh.NewOption("Both", exportBoth),
		).
		Value(&vals.Export)

	return huh.NewForm(
		huh.NewGroup(salary).Title("Monthly Finance Tracker"),
		huh.NewGroup(expenses...).Title("Expenses"),
		huh.NewGroup(investments...).Title("Investments"),
		huh.NewGroup(export),
	)
}

func valuesFromSheet(sh *sheet.Sheet) formValues {
	vals := formValues{Export: exportNone}
	if !sh.Salary().IsZero() {
		vals.Salary = sh.Salary().String()
	}
	for i, e := range model.Expenses() {
		vals.Expenses[i] = sh.Expense(e).Text
	}
	for i, inv := range model.Investments() {
		vals.Investments[i] = sh.Investment(inv).Text
	}
	return vals
}

// applyValues copies the form strings into sh.
func applyValues(vals formValues, sh *sheet.Sheet) error {
	salary, err := parseSalary(vals.Salary)
	if err != nil {
		return err
	}
	sh.SetSalary(salary)
	for i, e := range model.Expenses() {
		if err := sh.SetExpense(e, vals.Expenses[i]); err != nil {
			return err
		}
	}
	for i, inv := range model.Investments() {
		if err := sh.SetInvestment(inv, vals.Investments[i]); err != nil {
			return err
		}
	}
	return nil
}

func exportChoiceFormats(choice string) []string {
	switch choice {
	case exportJSON, exportCSV:
		return []string{choice}
	case exportBoth:
		return []string{exportJSON, exportCSV}
	default:
		return nil
	}
}
