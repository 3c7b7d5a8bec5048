package vether

import (
	"context"
	"fmt"
	"math/big"

	"github.com/ethereum/go-ethereum/common"

	"vetherPools/internal/model"
)

// GetPoolAddress resolves the pool contract for a token symbol via the router.
func GetPoolAddress(ctx context.Context, b Backend, symbol string) (common.Address, error) {
	token, err := ResolveToken(symbol)
	if err != nil {
		return common.Address{}, err
	}
	return poolForToken(ctx, b, token.Address)
}

func poolForToken(ctx context.Context, b Backend, token common.Address) (common.Address, error) {
	parsed, err := RouterABI()
	if err != nil {
		return common.Address{}, fmt.Errorf("parse router abi: %w", err)
	}
	return callAddress(ctx, b, RouterAddress, parsed, "getPool", token)
}

// GetPooledBalance returns owner's share of the pool reserves: both reserves
// scaled by owner's liquidity token balance over the total supply.
func GetPooledBalance(ctx context.Context, b Backend, symbol string, owner common.Address) (model.Reserves, error) {
	token, err := ResolveToken(symbol)
	if err != nil {
		return model.Reserves{}, err
	}

	pool, err := poolForToken(ctx, b, token.Address)
	if err != nil {
		return model.Reserves{}, err
	}

	parsed, err := PoolABI()
	if err != nil {
		return model.Reserves{}, fmt.Errorf("parse pool abi: %w", err)
	}
	balance, err := callBigInt(ctx, b, pool, parsed, "balanceOf", owner)
	if err != nil {
		return model.Reserves{}, err
	}
	supply, err := callBigInt(ctx, b, pool, parsed, "totalSupply")
	if err != nil {
		return model.Reserves{}, err
	}
	if supply.Sign() == 0 {
		return model.Reserves{}, &ZeroSupplyError{Pool: pool}
	}

	data, err := GetPoolData(ctx, b, token.Symbol)
	if err != nil {
		return model.Reserves{}, err
	}

	// reserve * balance / (supply * 10^18), kept exact until the final float.
	denom := new(big.Int).Mul(supply, oneBaseUnit)
	return model.Reserves{
		Base:  ratioFloat(new(big.Int).Mul(data.BaseAmt, balance), denom),
		Token: ratioFloat(new(big.Int).Mul(data.TokenAmt, balance), denom),
	}, nil
}
