package model

// RawToken is one pool token as served by the pools subgraph. Numeric fields
// arrive as human-readable decimal strings; absent optional fields keep their
// zero value and are defaulted during normalization.
type RawToken struct {
	Address                      string `json:"address"`
	Balance                      string `json:"balance"`
	Decimals                     *int   `json:"decimals,omitempty"`
	Weight                       string `json:"weight,omitempty"`
	PriceRate                    string `json:"priceRate,omitempty"`
	OldPriceRate                 string `json:"oldPriceRate,omitempty"`
	IsExemptFromYieldProtocolFee bool   `json:"isExemptFromYieldProtocolFee,omitempty"`
}

// RawPool is an on-chain pool snapshot prior to normalization. Address doubles
// as the pool's own token identity when the pool issues a liquidity token.
type RawPool struct {
	Address               string     `json:"address"`
	Tokens                []RawToken `json:"tokens"`
	Amp                   string     `json:"amp,omitempty"`
	SwapFee               string     `json:"swapFee"`
	ProtocolSwapFeeCache  string     `json:"protocolSwapFeeCache,omitempty"`
	ProtocolYieldFeeCache string     `json:"protocolYieldFeeCache,omitempty"`
	TotalShares           string     `json:"totalShares,omitempty"`
	LastJoinExitInvariant string     `json:"lastJoinExitInvariant,omitempty"`
	AthRateProduct        string     `json:"athRateProduct,omitempty"`
}
