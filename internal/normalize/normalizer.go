package normalize

import (
	"fmt"
	"math/big"
	"strconv"

	"github.com/ethereum/go-ethereum/common"

	"balancerScope/internal/assets"
	"balancerScope/internal/fixedpoint"
	"balancerScope/internal/model"
)

// Config controls normalization behavior.
type Config struct {
	// WrappedNativeAsset enables canonical token ordering when set.
	WrappedNativeAsset string
	// UnwrapNativeAsset rewrites the wrapped native asset address to the
	// native sentinel before ordering.
	UnwrapNativeAsset bool
}

// Normalizer converts raw pool snapshots into their fixed-point form.
type Normalizer struct {
	cfg       Config
	reorderer assets.Reorderer
}

// New builds a Normalizer.
func New(cfg Config) (*Normalizer, error) {
	if cfg.WrappedNativeAsset != "" && !common.IsHexAddress(cfg.WrappedNativeAsset) {
		return nil, fmt.Errorf("invalid wrapped native asset address: %s", cfg.WrappedNativeAsset)
	}
	return &Normalizer{
		cfg: cfg,
		reorderer: assets.Reorderer{
			WrappedNative: cfg.WrappedNativeAsset,
			Unwrap:        cfg.UnwrapNativeAsset,
		},
	}, nil
}

// tokenView carries one token through the per-token derivation steps before
// the arrays are projected out for ordering and exclusion.
type tokenView struct {
	address       string
	decimals      int
	balanceEvm    *big.Int
	weight        *big.Int
	priceRate     *big.Int
	oldPriceRate  *big.Int
	scalingFactor *big.Int
	upscaled      *big.Int
	exempt        bool
}

// Normalize converts one raw pool snapshot into a PoolInfo. The result is
// fresh on every call and owned entirely by the caller. Any failure aborts
// the whole snapshot; no partial record is returned.
func (n *Normalizer) Normalize(pool model.RawPool) (*PoolInfo, error) {
	views := make([]tokenView, len(pool.Tokens))
	for i, token := range pool.Tokens {
		view := tokenView{
			address: n.reorderer.Rewrite(token.Address),
			exempt:  token.IsExemptFromYieldProtocolFee,
		}

		view.decimals = defaultTokenDecimals
		if token.Decimals != nil {
			view.decimals = *token.Decimals
		}
		if view.decimals < 0 || view.decimals > fixedpoint.Decimals {
			return nil, fmt.Errorf("pool %s token %s: %w", pool.Address, token.Address,
				&InvalidTokenDecimalsError{Decimals: view.decimals})
		}

		var err error
		if view.balanceEvm, err = parseField(pool.Address, "balance", token.Balance, view.decimals); err != nil {
			return nil, err
		}
		if view.weight, err = parseField(pool.Address, "weight", token.Weight, fixedpoint.Decimals); err != nil {
			return nil, err
		}
		if view.priceRate, err = parseField(pool.Address, "priceRate", token.PriceRate, fixedpoint.Decimals); err != nil {
			return nil, err
		}
		if view.oldPriceRate, err = parseField(pool.Address, "oldPriceRate", token.OldPriceRate, fixedpoint.Decimals); err != nil {
			return nil, err
		}

		if view.scalingFactor, err = ScalingFactor(view.decimals, view.priceRate); err != nil {
			return nil, fmt.Errorf("pool %s token %s: %w", pool.Address, token.Address, err)
		}

		views[i] = view
	}

	balances := make([]*big.Int, len(views))
	factors := make([]*big.Int, len(views))
	for i := range views {
		balances[i] = views[i].balanceEvm
		factors[i] = views[i].scalingFactor
	}
	upscaled, err := UpscaleArray(balances, factors)
	if err != nil {
		return nil, fmt.Errorf("pool %s: %w", pool.Address, err)
	}
	for i := range views {
		views[i].upscaled = upscaled[i]
	}

	if n.cfg.WrappedNativeAsset != "" {
		if views, err = n.reorder(views); err != nil {
			return nil, fmt.Errorf("pool %s: reorder: %w", pool.Address, err)
		}
	}

	parsedTokens := make([]string, len(views))
	decimals := make([]int, len(views))
	balancesEvm := make([]*big.Int, len(views))
	weights := make([]*big.Int, len(views))
	priceRates := make([]*big.Int, len(views))
	oldPriceRates := make([]*big.Int, len(views))
	scalingFactors := make([]*big.Int, len(views))
	upScaledBalances := make([]*big.Int, len(views))
	exemptedTokens := make([]bool, len(views))
	for i, view := range views {
		parsedTokens[i] = view.address
		decimals[i] = view.decimals
		balancesEvm[i] = view.balanceEvm
		weights[i] = view.weight
		priceRates[i] = view.priceRate
		oldPriceRates[i] = view.oldPriceRate
		scalingFactors[i] = view.scalingFactor
		upScaledBalances[i] = view.upscaled
		exemptedTokens[i] = view.exempt
	}

	amp, err := parseField(pool.Address, "amp", pool.Amp, fixedpoint.AmpDecimals)
	if err != nil {
		return nil, err
	}
	swapFee, err := parseField(pool.Address, "swapFee", pool.SwapFee, fixedpoint.Decimals)
	if err != nil {
		return nil, err
	}

	higherBalanceTokenIndex := argmax(upScaledBalances)

	protocolSwapFee, err := parseField(pool.Address, "protocolSwapFeeCache", pool.ProtocolSwapFeeCache, fixedpoint.Decimals)
	if err != nil {
		return nil, err
	}
	protocolYieldFee, err := parseField(pool.Address, "protocolYieldFeeCache", pool.ProtocolYieldFeeCache, fixedpoint.Decimals)
	if err != nil {
		return nil, err
	}

	bptIndex := bptIndexOf(pool.Address, parsedTokens)

	totalShares, err := parseField(pool.Address, "totalShares", pool.TotalShares, fixedpoint.Decimals)
	if err != nil {
		return nil, err
	}

	invariant := orDefault("lastJoinExitInvariant", pool.LastJoinExitInvariant)
	if _, err := parseField(pool.Address, "lastJoinExitInvariant", pool.LastJoinExitInvariant, fixedpoint.Decimals); err != nil {
		return nil, err
	}
	rateProduct, err := parseField(pool.Address, "athRateProduct", pool.AthRateProduct, fixedpoint.Decimals)
	if err != nil {
		return nil, err
	}

	return &PoolInfo{
		Address:                    pool.Address,
		ParsedTokens:               parsedTokens,
		Decimals:                   decimals,
		BalancesEvm:                balancesEvm,
		Weights:                    weights,
		PriceRates:                 priceRates,
		OldPriceRates:              oldPriceRates,
		ScalingFactors:             scalingFactors,
		UpScaledBalances:           upScaledBalances,
		ExemptedTokens:             exemptedTokens,
		ParsedTokensWithoutBpt:     withoutIndex(parsedTokens, bptIndex),
		ScalingFactorsWithoutBpt:   withoutIndex(scalingFactors, bptIndex),
		BalancesEvmWithoutBpt:      withoutIndex(balancesEvm, bptIndex),
		PriceRatesWithoutBpt:       withoutIndex(priceRates, bptIndex),
		UpScaledBalancesWithoutBpt: withoutIndex(upScaledBalances, bptIndex),
		AmpWithPrecision:           amp,
		SwapFeeEvm:                 swapFee,
		TotalSharesEvm:             totalShares,
		BptIndex:                   bptIndex,
		HigherBalanceTokenIndex:    higherBalanceTokenIndex,
		ProtocolSwapFeePct:         fixedpoint.Format(protocolSwapFee, fixedpoint.Decimals),
		ProtocolYieldFeePct:        fixedpoint.Format(protocolYieldFee, fixedpoint.Decimals),
		LastJoinExitInvariant:      invariant,
		AthRateProduct:             fixedpoint.Format(rateProduct, fixedpoint.Decimals),
	}, nil
}

// reorder projects the per-token views into parallel string arrays, lets the
// canonical reorderer permute them all by one permutation, and rebuilds the
// views in the new order. The input slice is left untouched.
func (n *Normalizer) reorder(views []tokenView) ([]tokenView, error) {
	count := len(views)
	addresses := make([]string, count)
	decimals := make([]string, count)
	balances := make([]string, count)
	weights := make([]string, count)
	priceRates := make([]string, count)
	oldPriceRates := make([]string, count)
	factors := make([]string, count)
	upscaled := make([]string, count)
	exemptions := make([]string, count)
	for i, view := range views {
		addresses[i] = view.address
		decimals[i] = strconv.Itoa(view.decimals)
		balances[i] = view.balanceEvm.String()
		weights[i] = view.weight.String()
		priceRates[i] = view.priceRate.String()
		oldPriceRates[i] = view.oldPriceRate.String()
		factors[i] = view.scalingFactor.String()
		upscaled[i] = view.upscaled.String()
		exemptions[i] = strconv.FormatBool(view.exempt)
	}

	sortedAddresses, companions, err := n.reorderer.Sort(addresses,
		decimals, balances, weights, priceRates, oldPriceRates, factors, upscaled, exemptions)
	if err != nil {
		return nil, err
	}

	sortedDecimals := companions[0]
	sortedBalances := companions[1]
	sortedWeights := companions[2]
	sortedPriceRates := companions[3]
	sortedOldPriceRates := companions[4]
	sortedFactors := companions[5]
	sortedUpscaled := companions[6]
	sortedExemptions := companions[7]

	out := make([]tokenView, count)
	for i := range out {
		view := tokenView{address: sortedAddresses[i]}
		if view.decimals, err = strconv.Atoi(sortedDecimals[i]); err != nil {
			return nil, fmt.Errorf("reparse decimals: %w", err)
		}
		if view.balanceEvm, err = parseBig(sortedBalances[i]); err != nil {
			return nil, fmt.Errorf("reparse balance: %w", err)
		}
		if view.weight, err = parseBig(sortedWeights[i]); err != nil {
			return nil, fmt.Errorf("reparse weight: %w", err)
		}
		if view.priceRate, err = parseBig(sortedPriceRates[i]); err != nil {
			return nil, fmt.Errorf("reparse price rate: %w", err)
		}
		if view.oldPriceRate, err = parseBig(sortedOldPriceRates[i]); err != nil {
			return nil, fmt.Errorf("reparse old price rate: %w", err)
		}
		if view.scalingFactor, err = parseBig(sortedFactors[i]); err != nil {
			return nil, fmt.Errorf("reparse scaling factor: %w", err)
		}
		if view.upscaled, err = parseBig(sortedUpscaled[i]); err != nil {
			return nil, fmt.Errorf("reparse upscaled balance: %w", err)
		}
		if view.exempt, err = strconv.ParseBool(sortedExemptions[i]); err != nil {
			return nil, fmt.Errorf("reparse exemption: %w", err)
		}
		out[i] = view
	}
	return out, nil
}

// parseField parses a decimal-string field at the given precision, applying
// the registered default when the value is absent.
func parseField(pool, field, value string, decimals int) (*big.Int, error) {
	parsed, err := fixedpoint.Parse(orDefault(field, value), decimals)
	if err != nil {
		return nil, &FieldParseError{Pool: pool, Field: field, Err: err}
	}
	return parsed, nil
}

func parseBig(value string) (*big.Int, error) {
	parsed, ok := new(big.Int).SetString(value, 10)
	if !ok {
		return nil, fmt.Errorf("invalid integer %q", value)
	}
	return parsed, nil
}

// argmax returns the index of the largest value, first occurrence winning
// ties, or -1 for an empty array.
func argmax(values []*big.Int) int {
	best := -1
	for i, value := range values {
		if best < 0 || value.Cmp(values[best]) > 0 {
			best = i
		}
	}
	return best
}
