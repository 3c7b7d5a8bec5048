package vether

import (
	"context"
	"fmt"
	"math/big"
)

// SwapOutput is the pool's swap formula, y = (x * Y * X) / (x + X)^2, where X
// and Y are the input-side and output-side reserves. Division truncates as it
// does on chain. A zero denominator yields zero.
func SwapOutput(x, X, Y *big.Int) *big.Int {
	sum := new(big.Int).Add(x, X)
	denominator := new(big.Int).Mul(sum, sum)
	if denominator.Sign() == 0 {
		return new(big.Int)
	}
	numerator := new(big.Int).Mul(x, Y)
	numerator.Mul(numerator, X)
	return numerator.Quo(numerator, denominator)
}

// CalcSwapOutput validates its operands and applies SwapOutput.
func CalcSwapOutput(x, X, Y *big.Int) (*big.Int, error) {
	operands := []struct {
		name  string
		value *big.Int
	}{{"input", x}, {"input reserve", X}, {"output reserve", Y}}
	for _, op := range operands {
		if op.value == nil {
			return nil, fmt.Errorf("%s is nil", op.name)
		}
		if op.value.Sign() < 0 {
			return nil, fmt.Errorf("%s is negative: %s", op.name, op.value)
		}
	}
	return SwapOutput(x, X, Y), nil
}

// QuoteBaseToToken returns the token amount a swap of amount base asset would yield.
func QuoteBaseToToken(ctx context.Context, b Backend, symbol string, amount float64) (float64, error) {
	token, err := ResolveToken(symbol)
	if err != nil {
		return 0, err
	}
	input, err := ToSmallestUnit(amount, BaseDecimals)
	if err != nil {
		return 0, err
	}

	data, err := GetPoolData(ctx, b, token.Symbol)
	if err != nil {
		return 0, err
	}
	out, err := CalcSwapOutput(input, data.BaseAmt, data.TokenAmt)
	if err != nil {
		return 0, fmt.Errorf("%s base to token: %w", token.Symbol, err)
	}
	return FromSmallestUnit(out, token.Decimals), nil
}

// QuoteTokenToBase returns the base-asset amount a swap of amount token would yield.
func QuoteTokenToBase(ctx context.Context, b Backend, symbol string, amount float64) (float64, error) {
	token, err := ResolveToken(symbol)
	if err != nil {
		return 0, err
	}
	input, err := ToSmallestUnit(amount, token.Decimals)
	if err != nil {
		return 0, err
	}

	data, err := GetPoolData(ctx, b, token.Symbol)
	if err != nil {
		return 0, err
	}
	out, err := CalcSwapOutput(input, data.TokenAmt, data.BaseAmt)
	if err != nil {
		return 0, fmt.Errorf("%s token to base: %w", token.Symbol, err)
	}
	return FromSmallestUnit(out, BaseDecimals), nil
}
