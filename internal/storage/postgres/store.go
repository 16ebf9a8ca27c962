package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"balancerScope/internal/model"
)

// Store provides Postgres persistence for normalized pools.
type Store struct {
	pool *pgxpool.Pool
}

func NewStore(ctx context.Context, dsn string) (*Store, error) {
	if dsn == "" {
		return nil, fmt.Errorf("pg dsn is required")
	}
	pool, err := pgxpool.New(ctx, dsn)
	if err != nil {
		return nil, err
	}
	return &Store{pool: pool}, nil
}

func (s *Store) Close() {
	if s.pool != nil {
		s.pool.Close()
	}
}

// UpsertPools inserts or updates normalized pool records.
func (s *Store) UpsertPools(ctx context.Context, pools []model.NormalizedPool) error {
	if len(pools) == 0 {
		return nil
	}
	batch := &pgx.Batch{}
	for _, p := range pools {
		batch.Queue(`
			INSERT INTO normalized_pools (
				pool_address, token_count, bpt_index, higher_balance_token_index,
				parsed_tokens, decimals, balances_evm, weights, price_rates, old_price_rates,
				scaling_factors, upscaled_balances, exempted_tokens,
				amp_with_precision, swap_fee_evm, total_shares_evm,
				protocol_swap_fee_pct, protocol_yield_fee_pct,
				last_join_exit_invariant, ath_rate_product, created_at, updated_at
			) VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13,$14,$15,$16,$17,$18,$19,$20,now(),now())
			ON CONFLICT (pool_address)
			DO UPDATE SET
				token_count = EXCLUDED.token_count,
				bpt_index = EXCLUDED.bpt_index,
				higher_balance_token_index = EXCLUDED.higher_balance_token_index,
				parsed_tokens = EXCLUDED.parsed_tokens,
				decimals = EXCLUDED.decimals,
				balances_evm = EXCLUDED.balances_evm,
				weights = EXCLUDED.weights,
				price_rates = EXCLUDED.price_rates,
				old_price_rates = EXCLUDED.old_price_rates,
				scaling_factors = EXCLUDED.scaling_factors,
				upscaled_balances = EXCLUDED.upscaled_balances,
				exempted_tokens = EXCLUDED.exempted_tokens,
				amp_with_precision = EXCLUDED.amp_with_precision,
				swap_fee_evm = EXCLUDED.swap_fee_evm,
				total_shares_evm = EXCLUDED.total_shares_evm,
				protocol_swap_fee_pct = EXCLUDED.protocol_swap_fee_pct,
				protocol_yield_fee_pct = EXCLUDED.protocol_yield_fee_pct,
				last_join_exit_invariant = EXCLUDED.last_join_exit_invariant,
				ath_rate_product = EXCLUDED.ath_rate_product,
				updated_at = now()
		`,
			p.Address,
			p.TokenCount,
			p.BptIndex,
			p.HigherBalanceTokenIndex,
			p.ParsedTokens,
			p.Decimals,
			p.BalancesEvm,
			p.Weights,
			p.PriceRates,
			p.OldPriceRates,
			p.ScalingFactors,
			p.UpScaledBalances,
			p.ExemptedTokens,
			p.AmpWithPrecision,
			p.SwapFeeEvm,
			p.TotalSharesEvm,
			p.ProtocolSwapFeePct,
			p.ProtocolYieldFeePct,
			p.LastJoinExitInvariant,
			p.AthRateProduct,
		)
	}

	br := s.pool.SendBatch(ctx, batch)
	defer br.Close()

	for range pools {
		if _, err := br.Exec(); err != nil {
			return err
		}
	}
	return nil
}

// RunSummary describes one completed normalization run.
type RunSummary struct {
	Source             string
	Total              int
	Normalized         int
	Failed             int
	WrappedNativeAsset string
	UnwrapNativeAsset  bool
	StartedAt          time.Time
	FinishedAt         time.Time
}

// RecordRun appends a bookkeeping row for a completed run.
func (s *Store) RecordRun(ctx context.Context, run RunSummary) error {
	_, err := s.pool.Exec(ctx, `
		INSERT INTO normalizer_runs (
			source, total, normalized, failed,
			wrapped_native_asset, unwrap_native_asset, started_at, finished_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`,
		run.Source,
		run.Total,
		run.Normalized,
		run.Failed,
		run.WrappedNativeAsset,
		run.UnwrapNativeAsset,
		run.StartedAt,
		run.FinishedAt,
	)
	return err
}
