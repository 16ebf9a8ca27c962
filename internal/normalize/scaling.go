package normalize

import (
	"math/big"

	"balancerScope/internal/fixedpoint"
)

// ScalingFactor derives the fixed-point multiplier that brings a token's
// native decimal precision and price rate onto the common 18-decimal basis.
// A nil priceRate means 1.0.
func ScalingFactor(decimals int, priceRate *big.Int) (*big.Int, error) {
	if decimals < 0 || decimals > fixedpoint.Decimals {
		return nil, &InvalidTokenDecimalsError{Decimals: decimals}
	}
	factor := new(big.Int).Mul(fixedpoint.TenPow(fixedpoint.Decimals-decimals), fixedpoint.One())
	if priceRate == nil {
		return factor, nil
	}
	return fixedpoint.MulDown(factor, priceRate), nil
}

// UpscaleArray multiplies each balance by its scaling factor, rounding down.
// Lengths must already agree; the check guards against desynchronized arrays.
func UpscaleArray(balances, scalingFactors []*big.Int) ([]*big.Int, error) {
	if len(balances) != len(scalingFactors) {
		return nil, &ArrayLengthMismatchError{Want: len(balances), Got: len(scalingFactors)}
	}
	out := make([]*big.Int, len(balances))
	for i, balance := range balances {
		out[i] = fixedpoint.MulDown(balance, scalingFactors[i])
	}
	return out, nil
}
