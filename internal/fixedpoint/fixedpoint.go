package fixedpoint

import (
	"fmt"
	"math/big"

	"github.com/shopspring/decimal"
)

const (
	// Decimals is the precision of the common fixed-point basis.
	Decimals = 18
	// AmpDecimals is the precision of the amplification parameter.
	AmpDecimals = 3
)

// One returns 1.0 at the common 18-decimal fixed-point basis.
func One() *big.Int {
	return TenPow(Decimals)
}

// TenPow returns 10^n.
func TenPow(n int) *big.Int {
	return new(big.Int).Exp(big.NewInt(10), big.NewInt(int64(n)), nil)
}

// Parse converts a decimal string into an integer scaled by 10^decimals.
// Fractional digits beyond the target precision are rejected rather than
// rounded, so the conversion is always exact.
func Parse(value string, decimals int) (*big.Int, error) {
	d, err := decimal.NewFromString(value)
	if err != nil {
		return nil, fmt.Errorf("invalid decimal %q: %w", value, err)
	}
	if int(-d.Exponent()) > decimals {
		return nil, fmt.Errorf("decimal %q exceeds %d fractional digits", value, decimals)
	}
	return d.Shift(int32(decimals)).BigInt(), nil
}

// MulDown multiplies two 18-decimal fixed-point values, rounding down.
func MulDown(a, b *big.Int) *big.Int {
	product := new(big.Int).Mul(a, b)
	return product.Quo(product, One())
}

// Format renders an integer scaled by 10^decimals back into a decimal string.
func Format(value *big.Int, decimals int) string {
	return decimal.NewFromBigInt(value, -int32(decimals)).String()
}
