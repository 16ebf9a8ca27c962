package model

// NormalizedPool is the storage representation of a normalized pool snapshot.
// Fixed-point integers are encoded as decimal strings to survive JSON number
// precision limits; fee percentages, the invariant, and the rate product are
// human-unit decimal strings.
type NormalizedPool struct {
	Address                    string   `json:"address"`
	TokenCount                 int      `json:"token_count"`
	ParsedTokens               []string `json:"parsed_tokens"`
	Decimals                   []int    `json:"decimals"`
	BalancesEvm                []string `json:"balances_evm"`
	Weights                    []string `json:"weights"`
	PriceRates                 []string `json:"price_rates"`
	OldPriceRates              []string `json:"old_price_rates"`
	ScalingFactors             []string `json:"scaling_factors"`
	UpScaledBalances           []string `json:"upscaled_balances"`
	ExemptedTokens             []bool   `json:"exempted_tokens"`
	ParsedTokensWithoutBpt     []string `json:"parsed_tokens_without_bpt"`
	ScalingFactorsWithoutBpt   []string `json:"scaling_factors_without_bpt"`
	BalancesEvmWithoutBpt      []string `json:"balances_evm_without_bpt"`
	PriceRatesWithoutBpt       []string `json:"price_rates_without_bpt"`
	UpScaledBalancesWithoutBpt []string `json:"upscaled_balances_without_bpt"`
	AmpWithPrecision           string   `json:"amp_with_precision"`
	SwapFeeEvm                 string   `json:"swap_fee_evm"`
	TotalSharesEvm             string   `json:"total_shares_evm"`
	BptIndex                   int      `json:"bpt_index"`
	HigherBalanceTokenIndex    int      `json:"higher_balance_token_index"`
	ProtocolSwapFeePct         string   `json:"protocol_swap_fee_pct"`
	ProtocolYieldFeePct        string   `json:"protocol_yield_fee_pct"`
	LastJoinExitInvariant      string   `json:"last_join_exit_invariant"`
	AthRateProduct             string   `json:"ath_rate_product"`
}
