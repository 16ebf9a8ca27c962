package fixedpoint

import (
	"math/big"
	"testing"
)

func TestParse(t *testing.T) {
	cases := []struct {
		name     string
		value    string
		decimals int
		want     string
		wantErr  bool
	}{
		{name: "integer at token decimals", value: "1000", decimals: 6, want: "1000000000"},
		{name: "fee fraction", value: "0.003", decimals: 18, want: "3000000000000000"},
		{name: "amp precision", value: "1", decimals: 3, want: "1000"},
		{name: "mixed fraction", value: "1.5", decimals: 18, want: "1500000000000000000"},
		{name: "zero", value: "0", decimals: 18, want: "0"},
		{name: "negative", value: "-2.5", decimals: 18, want: "-2500000000000000000"},
		{name: "too many fraction digits", value: "1.2345678", decimals: 6, wantErr: true},
		{name: "trailing zeros still count", value: "1.230", decimals: 2, wantErr: true},
		{name: "not a number", value: "abc", wantErr: true},
		{name: "empty", value: "", decimals: 18, wantErr: true},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := Parse(tc.value, tc.decimals)
			if tc.wantErr {
				if err == nil {
					t.Fatalf("expected error, got %s", got)
				}
				return
			}
			if err != nil {
				t.Fatalf("parse %q: %v", tc.value, err)
			}
			if got.String() != tc.want {
				t.Fatalf("parse %q = %s, want %s", tc.value, got, tc.want)
			}
		})
	}
}

func TestMulDownRoundsTowardZero(t *testing.T) {
	one := One()

	if got := MulDown(one, one); got.Cmp(one) != 0 {
		t.Fatalf("1.0 * 1.0 = %s, want %s", got, one)
	}

	// 1 wei * 1 wei is below the fixed-point resolution.
	if got := MulDown(big.NewInt(1), big.NewInt(1)); got.Sign() != 0 {
		t.Fatalf("tiny product = %s, want 0", got)
	}

	half := new(big.Int).Div(one, big.NewInt(2))
	third, err := Parse("0.333333333333333333", Decimals)
	if err != nil {
		t.Fatalf("parse third: %v", err)
	}
	want := "166666666666666666"
	if got := MulDown(half, third); got.String() != want {
		t.Fatalf("0.5 * 0.333... = %s, want %s", got, want)
	}
}

func TestFormat(t *testing.T) {
	cases := []struct {
		value    string
		decimals int
		want     string
	}{
		{value: "3000000000000000", decimals: 18, want: "0.003"},
		{value: "0", decimals: 18, want: "0"},
		{value: "1000000000000000000", decimals: 18, want: "1"},
		{value: "1500000000000000000", decimals: 18, want: "1.5"},
		{value: "-2500000000000000000", decimals: 18, want: "-2.5"},
		{value: "1000", decimals: 3, want: "1"},
	}

	for _, tc := range cases {
		value, ok := new(big.Int).SetString(tc.value, 10)
		if !ok {
			t.Fatalf("bad case value %q", tc.value)
		}
		if got := Format(value, tc.decimals); got != tc.want {
			t.Fatalf("format %s at %d = %q, want %q", tc.value, tc.decimals, got, tc.want)
		}
	}
}

func TestParseFormatRoundTrip(t *testing.T) {
	for _, value := range []string{"0.5", "1", "123.456789", "0"} {
		parsed, err := Parse(value, Decimals)
		if err != nil {
			t.Fatalf("parse %q: %v", value, err)
		}
		if got := Format(parsed, Decimals); got != value {
			t.Fatalf("round trip %q = %q", value, got)
		}
	}
}
