package model

import (
	"encoding/json"
	"math/big"

	"github.com/ethereum/go-ethereum/common"
)

// Pool data field names, in the order the utils contract returns them.
const (
	FieldTokenAddress   = "tokenAddress"
	FieldPoolAddress    = "poolAddress"
	FieldGenesis        = "genesis"
	FieldBaseAmt        = "baseAmt"
	FieldTokenAmt       = "tokenAmt"
	FieldBaseAmtStaked  = "baseAmtStaked"
	FieldTokenAmtStaked = "tokenAmtStaked"
	FieldFees           = "fees"
	FieldVolume         = "volume"
	FieldTxCount        = "txCount"
	FieldPoolUnits      = "poolUnits"
)

// PoolDataFields lists the recognized pool data field names.
var PoolDataFields = []string{
	FieldTokenAddress,
	FieldPoolAddress,
	FieldGenesis,
	FieldBaseAmt,
	FieldTokenAmt,
	FieldBaseAmtStaked,
	FieldTokenAmtStaked,
	FieldFees,
	FieldVolume,
	FieldTxCount,
	FieldPoolUnits,
}

// PoolData mirrors the utils contract's pool data struct. Amounts are in
// smallest on-chain units.
type PoolData struct {
	TokenAddress   common.Address
	PoolAddress    common.Address
	Genesis        *big.Int
	BaseAmt        *big.Int
	TokenAmt       *big.Int
	BaseAmtStaked  *big.Int
	TokenAmtStaked *big.Int
	Fees           *big.Int
	Volume         *big.Int
	TxCount        *big.Int
	PoolUnits      *big.Int
}

// Field returns the value of a named field: common.Address for the two
// address fields, *big.Int for the rest.
func (p PoolData) Field(name string) (interface{}, bool) {
	switch name {
	case FieldTokenAddress:
		return p.TokenAddress, true
	case FieldPoolAddress:
		return p.PoolAddress, true
	}
	amount, ok := p.Amount(name)
	if !ok {
		return nil, false
	}
	return amount, true
}

// Amount returns a numeric field by name.
func (p PoolData) Amount(name string) (*big.Int, bool) {
	var v *big.Int
	switch name {
	case FieldGenesis:
		v = p.Genesis
	case FieldBaseAmt:
		v = p.BaseAmt
	case FieldTokenAmt:
		v = p.TokenAmt
	case FieldBaseAmtStaked:
		v = p.BaseAmtStaked
	case FieldTokenAmtStaked:
		v = p.TokenAmtStaked
	case FieldFees:
		v = p.Fees
	case FieldVolume:
		v = p.Volume
	case FieldTxCount:
		v = p.TxCount
	case FieldPoolUnits:
		v = p.PoolUnits
	default:
		return nil, false
	}
	if v == nil {
		v = new(big.Int)
	}
	return v, true
}

// MarshalJSON encodes amounts as decimal strings so they survive JSON number limits.
func (p PoolData) MarshalJSON() ([]byte, error) {
	out := make(map[string]interface{}, len(PoolDataFields))
	for _, name := range PoolDataFields {
		value, _ := p.Field(name)
		switch v := value.(type) {
		case common.Address:
			out[name] = v.Hex()
		case *big.Int:
			out[name] = v.String()
		}
	}
	return json.Marshal(out)
}
