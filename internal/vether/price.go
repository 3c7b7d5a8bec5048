package vether

import (
	"context"
	"fmt"
	"math/big"

	"vetherPools/internal/model"
)

var oneBaseUnit = new(big.Int).Exp(big.NewInt(10), big.NewInt(int64(BaseDecimals)), nil)

// GetReserves returns the pool's base and token reserves. Both sides are
// scaled by 10^18 because the pool reports them in base-asset scale.
func GetReserves(ctx context.Context, b Backend, symbol string) (model.Reserves, error) {
	data, err := GetPoolData(ctx, b, symbol)
	if err != nil {
		return model.Reserves{}, err
	}
	return model.Reserves{
		Base:  FromSmallestUnit(data.BaseAmt, BaseDecimals),
		Token: FromSmallestUnit(data.TokenAmt, BaseDecimals),
	}, nil
}

// GetPrice returns the price of one token in base-asset units, derived by
// inverting the utils contract's valuation of one base asset in the token.
func GetPrice(ctx context.Context, b Backend, symbol string) (float64, error) {
	token, err := ResolveToken(symbol)
	if err != nil {
		return 0, err
	}

	parsed, err := UtilsABI()
	if err != nil {
		return 0, fmt.Errorf("parse utils abi: %w", err)
	}

	value, err := callBigInt(ctx, b, UtilsAddress, parsed, "calcValueInToken", token.Address, new(big.Int).Set(oneBaseUnit))
	if err != nil {
		return 0, err
	}
	if value.Sign() == 0 {
		return 0, fmt.Errorf("%s: %w", token.Symbol, ErrZeroPrice)
	}
	return ratioFloat(oneBaseUnit, value), nil
}
