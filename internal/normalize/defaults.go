package normalize

// defaultTokenDecimals applies when a token omits its decimal count.
const defaultTokenDecimals = 18

// fieldDefaults is the single source of defaults for optional decimal-string
// fields. Fields without an entry are required: an empty value falls through
// to the parser and fails there.
var fieldDefaults = map[string]string{
	"weight":                "1",
	"priceRate":             "1",
	"oldPriceRate":          "1",
	"amp":                   "1",
	"protocolSwapFeeCache":  "0",
	"protocolYieldFeeCache": "0",
	"totalShares":           "0",
	"lastJoinExitInvariant": "0",
	"athRateProduct":        "0",
}

// orDefault substitutes the registered default for an absent optional field.
func orDefault(field, value string) string {
	if value != "" {
		return value
	}
	return fieldDefaults[field]
}
