package main

import (
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

func main() {
	root := &cobra.Command{
		Use:          "normalizer",
		Short:        "Balancer pool snapshot normalizer",
		SilenceUsage: true,
	}

	root.PersistentFlags().String("config", "", "config file path")

	normalizeCmd := &cobra.Command{
		Use:   "normalize",
		Short: "Normalize raw pool snapshots into canonical records",
		RunE:  runNormalize,
	}

	normalizeCmd.Flags().String("in", "", "input raw pools JSONL")
	normalizeCmd.Flags().String("out", "./data/normalized_pools.jsonl", "output normalized pools JSONL")
	normalizeCmd.Flags().String("errors", "./data/normalize_errors.jsonl", "normalize errors JSONL")
	normalizeCmd.Flags().Bool("append", false, "append to existing outputs instead of truncating")
	normalizeCmd.Flags().String("wrapped-native-asset", "", "wrapped native token address, enables canonical token ordering")
	normalizeCmd.Flags().Bool("unwrap-native-asset", false, "substitute the wrapped native token with the zero address")
	normalizeCmd.Flags().String("pg-dsn", "", "optional Postgres DSN for mirroring normalized pools")
	normalizeCmd.Flags().Int("batch-size", 500, "batch size for output writes")
	normalizeCmd.Flags().String("log-level", "info", "log level (debug, info, warn, error)")

	root.AddCommand(normalizeCmd)

	checkCmd := &cobra.Command{
		Use:   "check",
		Short: "Validate raw pool snapshots without writing normalized output",
		RunE:  runCheck,
	}

	checkCmd.Flags().String("in", "", "input raw pools JSONL")
	checkCmd.Flags().String("errors", "", "optional errors JSONL")
	checkCmd.Flags().String("wrapped-native-asset", "", "wrapped native token address, enables canonical token ordering")
	checkCmd.Flags().Bool("unwrap-native-asset", false, "substitute the wrapped native token with the zero address")
	checkCmd.Flags().String("log-level", "info", "log level (debug, info, warn, error)")

	root.AddCommand(checkCmd)

	if err := root.Execute(); err != nil {
		os.Exit(1)
	}
}

func newLogger(level string) (*zap.Logger, error) {
	cfg := zap.NewProductionConfig()
	cfg.Level = zap.NewAtomicLevel()
	if err := cfg.Level.UnmarshalText([]byte(level)); err != nil {
		return nil, err
	}

	cfg.EncoderConfig.TimeKey = "ts"
	cfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder

	return cfg.Build()
}
