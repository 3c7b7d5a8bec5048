package model

import "github.com/ethereum/go-ethereum/common"

// Token is a registered pool token.
type Token struct {
	Symbol   string         `json:"symbol"`
	Address  common.Address `json:"address"`
	Decimals uint8          `json:"decimals"`
}

// IsNative reports whether the token is the chain's native asset, which the
// pool contracts address as the zero address.
func (t Token) IsNative() bool {
	return t.Address == (common.Address{})
}
