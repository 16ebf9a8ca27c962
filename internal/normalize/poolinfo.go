package normalize

import (
	"math/big"

	"balancerScope/internal/model"
)

// PoolInfo is the normalized form of a pool snapshot. Per-token arrays share
// one index space: position i refers to the same token in every array. Each
// instance is built fresh and never retained by the normalizer.
type PoolInfo struct {
	Address string

	ParsedTokens     []string
	Decimals         []int
	BalancesEvm      []*big.Int
	Weights          []*big.Int
	PriceRates       []*big.Int
	OldPriceRates    []*big.Int
	ScalingFactors   []*big.Int
	UpScaledBalances []*big.Int
	ExemptedTokens   []bool

	ParsedTokensWithoutBpt     []string
	ScalingFactorsWithoutBpt   []*big.Int
	BalancesEvmWithoutBpt      []*big.Int
	PriceRatesWithoutBpt       []*big.Int
	UpScaledBalancesWithoutBpt []*big.Int

	AmpWithPrecision *big.Int
	SwapFeeEvm       *big.Int
	TotalSharesEvm   *big.Int

	BptIndex                int
	HigherBalanceTokenIndex int

	ProtocolSwapFeePct    string
	ProtocolYieldFeePct   string
	LastJoinExitInvariant string
	AthRateProduct        string
}

// ToRecord converts the result into its storage representation. Fixed-point
// integers are rendered as decimal strings.
func (p *PoolInfo) ToRecord() model.NormalizedPool {
	return model.NormalizedPool{
		Address:                    p.Address,
		TokenCount:                 len(p.ParsedTokens),
		ParsedTokens:               append([]string{}, p.ParsedTokens...),
		Decimals:                   append([]int{}, p.Decimals...),
		BalancesEvm:                bigStrings(p.BalancesEvm),
		Weights:                    bigStrings(p.Weights),
		PriceRates:                 bigStrings(p.PriceRates),
		OldPriceRates:              bigStrings(p.OldPriceRates),
		ScalingFactors:             bigStrings(p.ScalingFactors),
		UpScaledBalances:           bigStrings(p.UpScaledBalances),
		ExemptedTokens:             append([]bool{}, p.ExemptedTokens...),
		ParsedTokensWithoutBpt:     append([]string{}, p.ParsedTokensWithoutBpt...),
		ScalingFactorsWithoutBpt:   bigStrings(p.ScalingFactorsWithoutBpt),
		BalancesEvmWithoutBpt:      bigStrings(p.BalancesEvmWithoutBpt),
		PriceRatesWithoutBpt:       bigStrings(p.PriceRatesWithoutBpt),
		UpScaledBalancesWithoutBpt: bigStrings(p.UpScaledBalancesWithoutBpt),
		AmpWithPrecision:           p.AmpWithPrecision.String(),
		SwapFeeEvm:                 p.SwapFeeEvm.String(),
		TotalSharesEvm:             p.TotalSharesEvm.String(),
		BptIndex:                   p.BptIndex,
		HigherBalanceTokenIndex:    p.HigherBalanceTokenIndex,
		ProtocolSwapFeePct:         p.ProtocolSwapFeePct,
		ProtocolYieldFeePct:        p.ProtocolYieldFeePct,
		LastJoinExitInvariant:      p.LastJoinExitInvariant,
		AthRateProduct:             p.AthRateProduct,
	}
}

func bigStrings(values []*big.Int) []string {
	out := make([]string, len(values))
	for i, value := range values {
		out[i] = value.String()
	}
	return out
}
