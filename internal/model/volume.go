package model

import (
	"encoding/json"
	"math/big"

	"github.com/ethereum/go-ethereum/common"
)

// VolumeEntry is the traded amount of one token over a lookback window.
type VolumeEntry struct {
	Token    common.Address
	Raw      *big.Int
	Decimals uint8
	Amount   float64
}

// MarshalJSON encodes the raw total as a decimal string.
func (v VolumeEntry) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Token    string  `json:"token"`
		Raw      string  `json:"raw"`
		Decimals uint8   `json:"decimals"`
		Amount   float64 `json:"amount"`
	}{
		Token:    v.Token.Hex(),
		Raw:      bigString(v.Raw),
		Decimals: v.Decimals,
		Amount:   v.Amount,
	})
}

// VolumeReport summarizes a volume scan.
type VolumeReport struct {
	FromBlock uint64        `json:"from_block"`
	ToBlock   uint64        `json:"to_block"`
	Filter    string        `json:"filter,omitempty"`
	Scanned   int           `json:"scanned"`
	Swaps     int           `json:"swaps"`
	Counted   int           `json:"counted"`
	Skipped   int           `json:"skipped"`
	Entries   []VolumeEntry `json:"entries"`
}

// Amounts returns the scaled volume keyed by token address.
func (r VolumeReport) Amounts() map[common.Address]float64 {
	out := make(map[common.Address]float64, len(r.Entries))
	for _, entry := range r.Entries {
		out[entry.Token] = entry.Amount
	}
	return out
}
