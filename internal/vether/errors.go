package vether

import (
	"errors"
	"fmt"

	"github.com/ethereum/go-ethereum/common"
)

// ErrZeroPrice is returned when the utils contract values the base asset at zero tokens.
var ErrZeroPrice = errors.New("token value of base asset is zero")

// UnknownTokenError reports a symbol missing from the token registry.
type UnknownTokenError struct {
	Symbol string
}

func (e *UnknownTokenError) Error() string {
	return fmt.Sprintf("unknown token symbol %q", e.Symbol)
}

// UnknownFieldError reports a pool data field name that is not recognized.
type UnknownFieldError struct {
	Field string
}

func (e *UnknownFieldError) Error() string {
	return fmt.Sprintf("unknown pool data field %q", e.Field)
}

// AmbiguousSwapLogError reports a swap log that could not be traced to exactly
// one router Swapped event in its transaction receipt.
type AmbiguousSwapLogError struct {
	TxHash   common.Hash
	LogIndex uint
	Matches  int
}

func (e *AmbiguousSwapLogError) Error() string {
	return fmt.Sprintf("swap log %s#%d: %d router swap events matched", e.TxHash.Hex(), e.LogIndex, e.Matches)
}

// UpstreamCallError wraps a failed RPC or contract call.
type UpstreamCallError struct {
	Method   string
	Contract common.Address
	Err      error
}

func (e *UpstreamCallError) Error() string {
	if e.Contract == (common.Address{}) {
		return fmt.Sprintf("rpc %s: %v", e.Method, e.Err)
	}
	return fmt.Sprintf("call %s on %s: %v", e.Method, e.Contract.Hex(), e.Err)
}

func (e *UpstreamCallError) Unwrap() error {
	return e.Err
}

// ZeroSupplyError reports a pool whose liquidity token has no supply.
type ZeroSupplyError struct {
	Pool common.Address
}

func (e *ZeroSupplyError) Error() string {
	return fmt.Sprintf("pool %s has zero liquidity supply", e.Pool.Hex())
}
