package model

import "github.com/ethereum/go-ethereum/common"

// PoolRef pairs a pooled token with the pool contract holding it.
type PoolRef struct {
	Index        uint64         `json:"index"`
	TokenAddress common.Address `json:"token_address"`
	PoolAddress  common.Address `json:"pool_address"`
}

// Reserves holds a base-asset amount and a token amount in decimal units.
type Reserves struct {
	Base  float64 `json:"base"`
	Token float64 `json:"token"`
}
