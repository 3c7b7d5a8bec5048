package vether

import (
	"fmt"
	"math"
	"math/big"

	"github.com/shopspring/decimal"
)

// ToSmallestUnit converts a decimal amount to integer on-chain units, truncating
// digits beyond the precision.
func ToSmallestUnit(amount float64, decimals uint8) (*big.Int, error) {
	if math.IsNaN(amount) || math.IsInf(amount, 0) {
		return nil, fmt.Errorf("invalid amount %v", amount)
	}
	if amount < 0 {
		return nil, fmt.Errorf("negative amount %v", amount)
	}
	return decimal.NewFromFloat(amount).Shift(int32(decimals)).BigInt(), nil
}

// FromSmallestUnit scales integer on-chain units down by 10^decimals.
func FromSmallestUnit(value *big.Int, decimals uint8) float64 {
	if value == nil {
		return 0
	}
	f, _ := decimal.NewFromBigInt(value, -int32(decimals)).Float64()
	return f
}

func ratioFloat(num, denom *big.Int) float64 {
	f, _ := new(big.Rat).SetFrac(num, denom).Float64()
	return f
}
