package main

import (
	"fmt"
	"os"

	cc "github.com/ivanpirog/coloredcobra"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/tirasundara/expense-analyzer/internal/budget"
	"github.com/tirasundara/expense-analyzer/internal/classifier"
	"github.com/tirasundara/expense-analyzer/internal/config"
	"github.com/tirasundara/expense-analyzer/internal/domain"
	"github.com/tirasundara/expense-analyzer/internal/logger"
	"github.com/tirasundara/expense-analyzer/internal/repository"
	"github.com/tirasundara/expense-analyzer/internal/service"
)

var (
	rulesFile  string
	encodings  []string
	dateFormat string
	logLevel   string
	logFormat  string
)

var (
	cfg *config.Config
	log zerolog.Logger
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:           "expense-analyzer",
	Short:         "Categorize a personal ledger and check it against budgets",
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
		var err error
		if cfg, err = config.Load(); err != nil {
			return err
		}

		applyFlagOverrides(cmd, cfg)
		if err := cfg.Validate(); err != nil {
			return err
		}

		log, err = logger.New(cfg.LogLevel, cfg.LogFormat)
		return err
	},
}

func init() {
	cc.Init(&cc.Config{
		RootCmd:  rootCmd,
		Headings: cc.HiCyan + cc.Bold + cc.Underline,
		Commands: cc.HiYellow + cc.Bold,
		Example:  cc.Italic,
		ExecName: cc.Bold,
		Flags:    cc.Bold,
	})

	rootCmd.PersistentFlags().StringVar(&rulesFile, "rules", "", "TOML file with category rules (default: built-in rules).")
	rootCmd.PersistentFlags().StringSliceVar(&encodings, "encoding", nil, "Encodings to try in order (default: utf-8,windows-1252).")
	rootCmd.PersistentFlags().StringVar(&dateFormat, "date-format", "", "Go layout of the date column (default: detect).")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "info", "Log level: debug, info, warn, error.")
	rootCmd.PersistentFlags().StringVar(&logFormat, "log-format", logger.FormatConsole, "Log format: console or json.")
}

// applyFlagOverrides copies every flag the user set onto cfg. Flags win over the environment.
func applyFlagOverrides(cmd *cobra.Command, cfg *config.Config) {
	flags := cmd.Flags()
	if flags.Changed("rules") {
		cfg.RulesFile = rulesFile
	}
	if flags.Changed("encoding") {
		cfg.Encodings = encodings
	}
	if flags.Changed("date-format") {
		cfg.DateFormat = dateFormat
	}
	if flags.Changed("log-level") {
		cfg.LogLevel = logLevel
	}
	if flags.Changed("log-format") {
		cfg.LogFormat = logFormat
	}
	// categorize has its own --format with different values
	if cmd.Name() == "analyze" && flags.Changed("format") {
		cfg.OutputFormat = outputFormat
	}
}

// newAnalysisService wires the pipeline from the loaded configuration
func newAnalysisService() (*service.AnalysisService, error) {
	table := classifier.DefaultRuleTable()
	if cfg.RulesFile != "" {
		var err error
		if table, err = classifier.LoadRuleTable(cfg.RulesFile); err != nil {
			return nil, err
		}
	}

	repo := repository.NewCSVLedgerRepository(cfg.DateFormat, cfg.Encodings, log)
	return service.NewAnalysisService(
		repo,
		classifier.NewClassifier(table),
		budget.NewEvaluator(log),
		log,
	), nil
}

// sourcesFromArgs maps "-" to standard input and anything else to a file path
func sourcesFromArgs(args []string) []domain.Source {
	sources := make([]domain.Source, 0, len(args))
	for _, arg := range args {
		if arg == "-" {
			sources = append(sources, domain.NewStreamSource("stdin", os.Stdin))
			continue
		}
		sources = append(sources, domain.NewFileSource(arg))
	}
	return sources
}

// writeOutput writes to path, or stdout when path is empty
func writeOutput(cmd *cobra.Command, path string, output []byte) error {
	if path == "" {
		_, err := fmt.Fprintln(cmd.OutOrStdout(), string(output))
		return err
	}

	if err := os.WriteFile(path, output, 0644); err != nil {
		return fmt.Errorf("failed to write output file: %w", err)
	}
	return nil
}
