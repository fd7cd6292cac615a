package commands

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/cleared-dev/tally/internal/sheet"
)

func newExportCommand(a *app) *cobra.Command {
	var in sheetInput
	var outDir string
	var toStdout bool

	cmd := &cobra.Command{
		Use:       "export [json|csv|all]",
		Short:     "Export the sheet as JSON and/or CSV",
		Long:      "Export the sheet. Without a format argument the formats listed in the config are written.",
		Args:      cobra.MatchAll(cobra.MaximumNArgs(1), cobra.OnlyValidArgs),
		ValidArgs: []string{"json", "csv", "all"},
		RunE: func(cmd *cobra.Command, args []string) error {
			sh, err := in.build(a)
			if err != nil {
				return err
			}

			formats := a.cfg.Export.Formats
			if len(args) > 0 {
				formats = expandFormat(args[0])
			}
			if toStdout && len(formats) != 1 {
				return fmt.Errorf("--stdout needs exactly one format, got %d", len(formats))
			}

			if outDir == "" {
				outDir = a.cfg.Export.Dir
			}

			var x sheet.FileExporter = sheet.DirExporter{Dir: outDir}
			if toStdout {
				x = sheet.WriterExporter{W: cmd.OutOrStdout()}
			}
			x = a.loggingExporter(x)

			written, err := exportFormats(sh, x, formats)
			if err != nil {
				return err
			}
			if !toStdout {
				for _, name := range written {
					fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s\n", filepath.Join(outDir, name))
				}
			}
			return nil
		},
	}

	in.register(cmd)
	cmd.Flags().StringVarP(&outDir, "out", "o", "", "output directory (default from config)")
	cmd.Flags().BoolVar(&toStdout, "stdout", false, "write the payload to stdout instead of a file")

	return cmd
}

func expandFormat(f string) []string {
	if f == "all" {
		return []string{"json", "csv"}
	}
	return []string{f}
}

// exportFormats hands one payload per format to x and returns the file names used.
func exportFormats(sh *sheet.Sheet, x sheet.FileExporter, formats []string) ([]string, error) {
	var written []string
	for _, f := range formats {
		switch f {
		case "json":
			if err := sh.ExportJSON(x); err != nil {
				return written, err
			}
			written = append(written, sheet.JSONFilename)
		case "csv":
			if err := sh.ExportCSV(x); err != nil {
				return written, err
			}
			written = append(written, sheet.CSVFilename)
		default:
			return written, fmt.Errorf("unknown export format %q", f)
		}
	}
	return written, nil
}

// loggingExporter wraps x so each payload is logged at debug level.
func (a *app) loggingExporter(x sheet.FileExporter) sheet.FileExporter {
	return sheet.ExportFunc(func(content []byte, filename, mimeType string) error {
		if err := x.Export(content, filename, mimeType); err != nil {
			return err
		}
		a.log.Debug("exported", "file", filename, "mime", mimeType, "bytes", len(content))
		return nil
	})
}
