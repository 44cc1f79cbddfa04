// Package cmd provides the CLI command for the household ledger.
package cmd

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"kakeibo/internal/cli"
	"kakeibo/internal/export"
	"kakeibo/internal/ledger"
	"kakeibo/internal/log"
	"kakeibo/internal/storage"
	"kakeibo/internal/ui"
)

var debug bool

var logger *log.Logger

// rootCmd runs the interactive ledger session. There are no functional
// flags or arguments; everything happens through the menu prompts.
var rootCmd = &cobra.Command{
	Use:   "kakeibo",
	Short: "Interactive household-expense ledger",
	Long: `kakeibo is an interactive console ledger for household expenses.

It records dated, categorized transactions, shows them as a table or a
category bar chart, persists the ledger to CSV after every registration
and exports it to an Excel workbook on demand.`,
	Args:          cobra.NoArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		cli.LoadEnvFile()

		level := slog.LevelInfo
		if debug {
			level = slog.LevelDebug
		}
		logger = cli.SetupLogger(level)
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := cli.LoadAndValidateConfig()
		if err != nil {
			return err
		}
		if !debug {
			if level, err := cfg.SlogLevel(); err == nil && level != slog.LevelInfo {
				logger = cli.SetupLogger(level)
			}
		}

		store := storage.NewCSVStore(cfg.CSVPath, logger)
		book, err := ledger.Open(store, logger)
		if err != nil {
			return err
		}
		exporter := export.NewExcel(cfg.ExcelPath, cfg.SheetName, logger)

		logger.Info("Starting ledger session",
			"csv_path", cfg.CSVPath,
			"xlsx_path", cfg.ExcelPath,
			"records", book.Len())

		loop := ui.New(cmd.InOrStdin(), cmd.OutOrStdout(), book, exporter, logger)
		return loop.Run()
	},
}

// Execute runs the root command. It is called once by main.main.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "enable debug logging")
}
