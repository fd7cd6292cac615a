package commands

import (
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/cleared-dev/tally/internal/buildinfo"
	"github.com/cleared-dev/tally/internal/catalog"
	"github.com/cleared-dev/tally/internal/config"
	"github.com/cleared-dev/tally/internal/logging"
)

// app is the state shared by every subcommand, filled in before each run.
type app struct {
	configPath string
	verbose    bool

	cfg     *config.Config
	log     *slog.Logger
	catalog *catalog.Service
}

// NewRootCommand creates the root CLI command with all subcommands registered.
func NewRootCommand() *cobra.Command {
	a := &app{catalog: catalog.NewService(catalog.Default())}

	rootCmd := &cobra.Command{
		Use:     "tally",
		Short:   "Monthly salary, expense and investment tracker",
		Version: buildinfo.String(),
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup(cmd)
		},
	}

	rootCmd.PersistentFlags().StringVar(&a.configPath, "config", config.FileName, "config file")
	rootCmd.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "debug logging")

	rootCmd.AddCommand(
		newInitCommand(a),
		newSummaryCommand(a),
		newExportCommand(a),
		newFormCommand(a),
		newCategoriesCommand(a),
	)

	return rootCmd
}

func (a *app) setup(cmd *cobra.Command) error {
	a.log = logging.New(logging.Config{
		Level:     logging.Level(a.verbose),
		Component: cmd.Name(),
		Output:    cmd.ErrOrStderr(),
	})

	cfg, err := config.LoadOrDefault(a.configPath)
	if err != nil {
		return err
	}
	a.cfg = cfg
	a.log.Debug("config loaded", "path", a.configPath, "export_dir", cfg.Export.Dir)
	return nil
}
