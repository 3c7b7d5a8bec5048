package vether

import (
	"math"
	"math/big"
	"testing"
)

func TestToSmallestUnit(t *testing.T) {
	cases := []struct {
		amount   float64
		decimals uint8
		want     string
	}{
		{1, 18, "1000000000000000000"},
		{0.1, 18, "100000000000000000"},
		{2.5, 6, "2500000"},
		{0.123456789, 6, "123456"},
		{0, 8, "0"},
		{42, 0, "42"},
	}
	for _, tc := range cases {
		got, err := ToSmallestUnit(tc.amount, tc.decimals)
		if err != nil {
			t.Fatalf("ToSmallestUnit(%v, %d): %v", tc.amount, tc.decimals, err)
		}
		if got.String() != tc.want {
			t.Fatalf("ToSmallestUnit(%v, %d) = %s, want %s", tc.amount, tc.decimals, got, tc.want)
		}
	}
}

func TestToSmallestUnitRejectsInvalid(t *testing.T) {
	for _, amount := range []float64{-1, math.NaN(), math.Inf(1)} {
		if _, err := ToSmallestUnit(amount, 18); err == nil {
			t.Fatalf("expected error for %v", amount)
		}
	}
}

func TestFromSmallestUnit(t *testing.T) {
	raw, _ := new(big.Int).SetString("5000000000000000000000", 10)
	if got := FromSmallestUnit(raw, 18); got != 5000.0 {
		t.Fatalf("expected 5000, got %v", got)
	}
	if got := FromSmallestUnit(big.NewInt(1500000), 6); got != 1.5 {
		t.Fatalf("expected 1.5, got %v", got)
	}
	if got := FromSmallestUnit(nil, 18); got != 0 {
		t.Fatalf("nil should scale to 0, got %v", got)
	}
}
