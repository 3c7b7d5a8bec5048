package vether

import (
	"context"
	"fmt"
	"math/big"

	"vetherPools/internal/model"
)

var knownFields = func() map[string]struct{} {
	out := make(map[string]struct{}, len(model.PoolDataFields))
	for _, name := range model.PoolDataFields {
		out[name] = struct{}{}
	}
	return out
}()

// PoolDataFields returns the recognized pool data field names.
func PoolDataFields() []string {
	out := make([]string, len(model.PoolDataFields))
	copy(out, model.PoolDataFields)
	return out
}

// GetPoolData reads the pool data struct for a token symbol from the utils contract.
func GetPoolData(ctx context.Context, b Backend, symbol string) (model.PoolData, error) {
	token, err := ResolveToken(symbol)
	if err != nil {
		return model.PoolData{}, err
	}

	parsed, err := UtilsABI()
	if err != nil {
		return model.PoolData{}, fmt.Errorf("parse utils abi: %w", err)
	}

	values, err := callMethod(ctx, b, UtilsAddress, parsed, "getPoolData", token.Address)
	if err != nil {
		return model.PoolData{}, err
	}
	return poolDataFromValues(values)
}

// PoolDataField reads the pool data for symbol and returns the named field.
// The field name is checked before anything is fetched.
func PoolDataField(ctx context.Context, b Backend, symbol, field string) (interface{}, error) {
	if _, ok := knownFields[field]; !ok {
		return nil, &UnknownFieldError{Field: field}
	}
	data, err := GetPoolData(ctx, b, symbol)
	if err != nil {
		return nil, err
	}
	value, ok := data.Field(field)
	if !ok {
		return nil, &UnknownFieldError{Field: field}
	}
	return value, nil
}

func poolDataFromValues(values []interface{}) (model.PoolData, error) {
	if len(values) != len(model.PoolDataFields) {
		return model.PoolData{}, fmt.Errorf("unexpected pool data values: %d", len(values))
	}

	var data model.PoolData
	var err error
	if data.TokenAddress, err = asAddress(values[0]); err != nil {
		return model.PoolData{}, fmt.Errorf("%s: %w", model.FieldTokenAddress, err)
	}
	if data.PoolAddress, err = asAddress(values[1]); err != nil {
		return model.PoolData{}, fmt.Errorf("%s: %w", model.FieldPoolAddress, err)
	}

	amounts := []**big.Int{
		&data.Genesis,
		&data.BaseAmt,
		&data.TokenAmt,
		&data.BaseAmtStaked,
		&data.TokenAmtStaked,
		&data.Fees,
		&data.Volume,
		&data.TxCount,
		&data.PoolUnits,
	}
	for i, dst := range amounts {
		v, err := asBigInt(values[i+2])
		if err != nil {
			return model.PoolData{}, fmt.Errorf("%s: %w", model.PoolDataFields[i+2], err)
		}
		*dst = v
	}
	return data, nil
}
