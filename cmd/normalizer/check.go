package main

import (
	"bufio"
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"balancerScope/internal/config"
	"balancerScope/internal/model"
	"balancerScope/internal/normalize"
)

func runCheck(cmd *cobra.Command, _ []string) error {
	cfgFile, _ := cmd.Flags().GetString("config")
	cfg, err := config.LoadCheck(cfgFile, cmd.Flags())
	if err != nil {
		return err
	}

	logger, err := newLogger(cfg.LogLevel)
	if err != nil {
		return err
	}
	defer logger.Sync()

	if cfg.In == "" {
		return fmt.Errorf("input path is required")
	}

	if cfg.UnwrapNativeAsset && cfg.WrappedNativeAsset == "" {
		logger.Warn("unwrap-native-asset set without wrapped-native-asset, no substitution will happen")
	}

	normalizer, err := normalize.New(normalize.Config{
		WrappedNativeAsset: cfg.WrappedNativeAsset,
		UnwrapNativeAsset:  cfg.UnwrapNativeAsset,
	})
	if err != nil {
		return err
	}

	inputFile, err := os.Open(cfg.In)
	if err != nil {
		return fmt.Errorf("open input: %w", err)
	}
	defer inputFile.Close()

	var errWriter *jsonlWriter
	if cfg.Errors != "" {
		errWriter, err = newJSONLWriter(cfg.Errors, false)
		if err != nil {
			return err
		}
		defer errWriter.Close()
	}

	logger.Info("check start",
		zap.String("in", cfg.In),
		zap.String("errors", cfg.Errors),
		zap.String("wrapped_native_asset", cfg.WrappedNativeAsset),
		zap.Bool("unwrap_native_asset", cfg.UnwrapNativeAsset),
	)

	scanner := bufio.NewScanner(inputFile)
	buf := make([]byte, 0, 64*1024)
	scanner.Buffer(buf, 10*1024*1024)

	var line, total, valid, failed int
	var parseFailures, decimalFailures, internalFailures int
	for scanner.Scan() {
		line++
		raw := bytes.TrimSpace(scanner.Bytes())
		if len(raw) == 0 {
			continue
		}
		total++

		var pool model.RawPool
		if err := json.Unmarshal(raw, &pool); err != nil {
			failed++
			parseFailures++
			writeNormalizeError(errWriter, model.NormalizeError{Line: line, Error: err.Error()})
			continue
		}

		if _, err := normalizer.Normalize(pool); err != nil {
			failed++
			var parseErr *normalize.FieldParseError
			var decimalsErr *normalize.InvalidTokenDecimalsError
			switch {
			case errors.As(err, &parseErr):
				parseFailures++
			case errors.As(err, &decimalsErr):
				decimalFailures++
			default:
				internalFailures++
			}
			writeNormalizeError(errWriter, normalizeErrorFromPool(pool, line, err))
			continue
		}
		valid++
	}

	if err := scanner.Err(); err != nil {
		return fmt.Errorf("scan input: %w", err)
	}

	logger.Info("check complete",
		zap.Int("total", total),
		zap.Int("valid", valid),
		zap.Int("failed", failed),
		zap.Int("parse_failures", parseFailures),
		zap.Int("decimal_failures", decimalFailures),
		zap.Int("internal_failures", internalFailures),
	)

	if failed > 0 {
		return fmt.Errorf("%d of %d pools failed validation", failed, total)
	}
	return nil
}
