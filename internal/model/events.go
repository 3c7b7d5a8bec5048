package model

import (
	"encoding/json"
	"math/big"

	"github.com/ethereum/go-ethereum/common"
)

// SwapEvent is a decoded router Swapped log.
type SwapEvent struct {
	TxHash         common.Hash
	LogIndex       uint
	BlockNumber    uint64
	TokenFrom      common.Address
	TokenTo        common.Address
	InputAmount    *big.Int
	TransferAmount *big.Int
	OutputAmount   *big.Int
	Fee            *big.Int
	Recipient      common.Address
}

type swapEventJSON struct {
	TxHash         string `json:"tx_hash"`
	LogIndex       uint   `json:"log_index"`
	BlockNumber    uint64 `json:"block_number"`
	TokenFrom      string `json:"token_from"`
	TokenTo        string `json:"token_to"`
	InputAmount    string `json:"input_amount"`
	TransferAmount string `json:"transfer_amount"`
	OutputAmount   string `json:"output_amount"`
	Fee            string `json:"fee"`
	Recipient      string `json:"recipient"`
}

// MarshalJSON encodes amounts as decimal strings.
func (e SwapEvent) MarshalJSON() ([]byte, error) {
	return json.Marshal(swapEventJSON{
		TxHash:         e.TxHash.Hex(),
		LogIndex:       e.LogIndex,
		BlockNumber:    e.BlockNumber,
		TokenFrom:      e.TokenFrom.Hex(),
		TokenTo:        e.TokenTo.Hex(),
		InputAmount:    bigString(e.InputAmount),
		TransferAmount: bigString(e.TransferAmount),
		OutputAmount:   bigString(e.OutputAmount),
		Fee:            bigString(e.Fee),
		Recipient:      e.Recipient.Hex(),
	})
}

func bigString(v *big.Int) string {
	if v == nil {
		return "0"
	}
	return v.String()
}
