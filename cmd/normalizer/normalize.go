package main

import (
	"bufio"
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"balancerScope/internal/config"
	"balancerScope/internal/model"
	"balancerScope/internal/normalize"
	"balancerScope/internal/storage"
	"balancerScope/internal/storage/postgres"
)

func runNormalize(cmd *cobra.Command, _ []string) error {
	cfgFile, _ := cmd.Flags().GetString("config")
	cfg, err := config.LoadNormalize(cfgFile, cmd.Flags())
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
	if cfg.Out == "" {
		return fmt.Errorf("output path is required")
	}
	if cfg.Errors == "" {
		return fmt.Errorf("errors path is required")
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

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	var store *postgres.Store
	if cfg.PGDSN != "" {
		store, err = postgres.NewStore(ctx, cfg.PGDSN)
		if err != nil {
			return fmt.Errorf("connect postgres: %w", err)
		}
		defer store.Close()
	}

	inputFile, err := os.Open(cfg.In)
	if err != nil {
		return fmt.Errorf("open input: %w", err)
	}
	defer inputFile.Close()

	errWriter, err := newJSONLWriter(cfg.Errors, cfg.Append)
	if err != nil {
		return err
	}
	defer errWriter.Close()

	var sink storage.Storage = storage.NewJsonlStorage(cfg.Out, cfg.Append)

	logger.Info("normalize start",
		zap.String("in", cfg.In),
		zap.String("out", cfg.Out),
		zap.String("errors", cfg.Errors),
		zap.Bool("append", cfg.Append),
		zap.String("wrapped_native_asset", cfg.WrappedNativeAsset),
		zap.Bool("unwrap_native_asset", cfg.UnwrapNativeAsset),
		zap.String("pg_dsn", redactDSN(cfg.PGDSN)),
		zap.Int("batch_size", cfg.BatchSize),
	)

	startedAt := time.Now()

	scanner := bufio.NewScanner(inputFile)
	buf := make([]byte, 0, 64*1024)
	scanner.Buffer(buf, 10*1024*1024)

	batch := make([]model.NormalizedPool, 0, cfg.BatchSize)
	flush := func() error {
		if len(batch) == 0 {
			return nil
		}
		if err := sink.PutPoolBatch(batch); err != nil {
			return fmt.Errorf("write output: %w", err)
		}
		if store != nil {
			if err := store.UpsertPools(ctx, batch); err != nil {
				return fmt.Errorf("upsert pools: %w", err)
			}
		}
		batch = batch[:0]
		return nil
	}

	var line, total, normalized, failed int
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
			writeNormalizeError(errWriter, model.NormalizeError{Line: line, Error: err.Error()})
			continue
		}

		info, err := normalizer.Normalize(pool)
		if err != nil {
			failed++
			writeNormalizeError(errWriter, normalizeErrorFromPool(pool, line, err))
			continue
		}

		batch = append(batch, info.ToRecord())
		if len(batch) >= cfg.BatchSize {
			if err := flush(); err != nil {
				return err
			}
		}
		normalized++
	}

	if err := scanner.Err(); err != nil {
		return fmt.Errorf("scan input: %w", err)
	}

	if err := flush(); err != nil {
		return err
	}

	logger.Info("normalize complete",
		zap.Int("total", total),
		zap.Int("normalized", normalized),
		zap.Int("failed", failed),
	)

	if store != nil {
		err := store.RecordRun(ctx, postgres.RunSummary{
			Source:             cfg.In,
			Total:              total,
			Normalized:         normalized,
			Failed:             failed,
			WrappedNativeAsset: cfg.WrappedNativeAsset,
			UnwrapNativeAsset:  cfg.UnwrapNativeAsset,
			StartedAt:          startedAt,
			FinishedAt:         time.Now(),
		})
		if err != nil {
			return fmt.Errorf("record run: %w", err)
		}
	}

	return nil
}

type jsonlWriter struct {
	file   *os.File
	writer *bufio.Writer
}

func newJSONLWriter(path string, appendMode bool) (*jsonlWriter, error) {
	dir := filepath.Dir(path)
	if dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("create dir: %w", err)
		}
	}

	flags := os.O_CREATE | os.O_WRONLY
	if appendMode {
		flags |= os.O_APPEND
	} else {
		flags |= os.O_TRUNC
	}

	file, err := os.OpenFile(path, flags, 0o644)
	if err != nil {
		return nil, fmt.Errorf("open file: %w", err)
	}

	return &jsonlWriter{
		file:   file,
		writer: bufio.NewWriter(file),
	}, nil
}

func (w *jsonlWriter) Write(value interface{}) error {
	line, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("marshal: %w", err)
	}
	if _, err := w.writer.Write(line); err != nil {
		return fmt.Errorf("write: %w", err)
	}
	if err := w.writer.WriteByte('\n'); err != nil {
		return fmt.Errorf("write newline: %w", err)
	}
	return nil
}

func (w *jsonlWriter) Close() error {
	if w == nil {
		return nil
	}
	if err := w.writer.Flush(); err != nil {
		w.file.Close()
		return err
	}
	return w.file.Close()
}

func normalizeErrorFromPool(pool model.RawPool, line int, err error) model.NormalizeError {
	record := model.NormalizeError{
		Pool:  pool.Address,
		Line:  line,
		Error: err.Error(),
	}

	var parseErr *normalize.FieldParseError
	if errors.As(err, &parseErr) {
		record.Field = parseErr.Field
		return record
	}

	var decimalsErr *normalize.InvalidTokenDecimalsError
	if errors.As(err, &decimalsErr) {
		record.Field = "decimals"
	}
	return record
}

func writeNormalizeError(writer *jsonlWriter, errRecord model.NormalizeError) {
	if writer == nil {
		return
	}
	_ = writer.Write(errRecord)
}

func redactDSN(dsn string) string {
	if dsn == "" {
		return dsn
	}
	return "***"
}
