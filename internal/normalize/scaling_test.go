package normalize

import (
	"errors"
	"math/big"
	"testing"

	"balancerScope/internal/fixedpoint"
)

func TestScalingFactorSixDecimals(t *testing.T) {
	// 10^(18-6) expressed on the 18-decimal basis.
	want := fixedpoint.TenPow(30)

	got, err := ScalingFactor(6, nil)
	if err != nil {
		t.Fatalf("scaling factor: %v", err)
	}
	if got.Cmp(want) != 0 {
		t.Fatalf("factor = %s, want %s", got, want)
	}

	// A price rate of exactly 1.0 leaves the factor unchanged.
	withRate, err := ScalingFactor(6, fixedpoint.One())
	if err != nil {
		t.Fatalf("scaling factor with rate: %v", err)
	}
	if withRate.Cmp(want) != 0 {
		t.Fatalf("factor with unit rate = %s, want %s", withRate, want)
	}
}

func TestScalingFactorAppliesPriceRate(t *testing.T) {
	rate, err := fixedpoint.Parse("1.5", fixedpoint.Decimals)
	if err != nil {
		t.Fatalf("parse rate: %v", err)
	}

	got, err := ScalingFactor(18, rate)
	if err != nil {
		t.Fatalf("scaling factor: %v", err)
	}
	want, _ := fixedpoint.Parse("1.5", fixedpoint.Decimals)
	if got.Cmp(want) != 0 {
		t.Fatalf("factor = %s, want %s", got, want)
	}
}

func TestScalingFactorRejectsDecimalsOutOfRange(t *testing.T) {
	for _, decimals := range []int{-1, 19, 255} {
		_, err := ScalingFactor(decimals, nil)
		if err == nil {
			t.Fatalf("decimals %d should be rejected", decimals)
		}
		var invalid *InvalidTokenDecimalsError
		if !errors.As(err, &invalid) {
			t.Fatalf("decimals %d: wrong error type: %v", decimals, err)
		}
		if invalid.Decimals != decimals {
			t.Fatalf("error carries decimals %d, want %d", invalid.Decimals, decimals)
		}
	}
}

func TestUpscaleArray(t *testing.T) {
	// 1000 USDC at 6 decimals brought onto the 18-decimal basis.
	balances := []*big.Int{big.NewInt(1000000000)}
	factors := []*big.Int{fixedpoint.TenPow(30)}

	got, err := UpscaleArray(balances, factors)
	if err != nil {
		t.Fatalf("upscale: %v", err)
	}
	if len(got) != 1 {
		t.Fatalf("expected 1 balance, got %d", len(got))
	}
	if got[0].Cmp(fixedpoint.TenPow(21)) != 0 {
		t.Fatalf("upscaled = %s, want 10^21", got[0])
	}
}

func TestUpscaleArrayRoundsDown(t *testing.T) {
	halfRate, err := fixedpoint.Parse("0.5", fixedpoint.Decimals)
	if err != nil {
		t.Fatalf("parse rate: %v", err)
	}

	got, err := UpscaleArray([]*big.Int{big.NewInt(3)}, []*big.Int{halfRate})
	if err != nil {
		t.Fatalf("upscale: %v", err)
	}
	if got[0].Int64() != 1 {
		t.Fatalf("3 * 0.5 rounded down = %s, want 1", got[0])
	}
}

func TestUpscaleArrayLengthMismatch(t *testing.T) {
	_, err := UpscaleArray([]*big.Int{big.NewInt(1), big.NewInt(2)}, []*big.Int{fixedpoint.One()})
	if err == nil {
		t.Fatalf("expected length mismatch error")
	}
	var mismatch *ArrayLengthMismatchError
	if !errors.As(err, &mismatch) {
		t.Fatalf("wrong error type: %v", err)
	}
	if mismatch.Want != 2 || mismatch.Got != 1 {
		t.Fatalf("mismatch carries %d/%d, want 2/1", mismatch.Want, mismatch.Got)
	}
}
