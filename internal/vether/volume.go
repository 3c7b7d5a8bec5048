package vether

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"math/big"
	"sort"
	"time"

	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"go.uber.org/zap"

	"vetherPools/internal/chain"
	"vetherPools/internal/model"
)

// SecondsPerBlock is the average mainnet block time used to turn a lookback
// window into a block count.
const SecondsPerBlock = 13.5

// SwappedTopic is topic0 of the router's
// Swapped(address,address,uint256,uint256,uint256,uint256,address) event.
var SwappedTopic = common.HexToHash("0x9231d8325e00e36dcd9b77484890cc00a0b5b0928605d0a4e6b7fbfeeac4c51b")

// VolumeQuery selects the swaps to aggregate. An empty Symbol counts every swap.
type VolumeQuery struct {
	Symbol string
	Window time.Duration
}

// LookbackRange converts a window into the block range ending one block
// before latest. ok is false when the range is empty.
func LookbackRange(latest uint64, window time.Duration) (chain.BlockRange, bool) {
	if latest == 0 || window <= 0 {
		return chain.BlockRange{}, false
	}
	blocks := uint64(window.Seconds() / SecondsPerBlock)
	if blocks == 0 {
		return chain.BlockRange{}, false
	}
	from := uint64(0)
	if blocks < latest {
		from = latest - blocks
	}
	r := chain.BlockRange{From: from, To: latest - 1}
	return r, r.Blocks() > 0
}

// GetVolume returns the traded amount per token address over the query window,
// scaled by each token's decimals.
func GetVolume(ctx context.Context, b Backend, q VolumeQuery, logger *zap.Logger) (map[common.Address]float64, error) {
	report, err := ScanVolume(ctx, b, q, logger)
	if err != nil {
		return nil, err
	}
	return report.Amounts(), nil
}

// ScanVolume scans router logs over the query window and aggregates swap
// volume per token. Swap logs that cannot be traced to a single router
// Swapped event are logged and skipped.
func ScanVolume(ctx context.Context, b Backend, q VolumeQuery, logger *zap.Logger) (model.VolumeReport, error) {
	if logger == nil {
		logger = zap.NewNop()
	}

	var filter *common.Address
	report := model.VolumeReport{Entries: []model.VolumeEntry{}}
	if q.Symbol != "" {
		token, err := ResolveToken(q.Symbol)
		if err != nil {
			return model.VolumeReport{}, err
		}
		filter = &token.Address
		report.Filter = token.Symbol
	}

	parsed, err := RouterABI()
	if err != nil {
		return model.VolumeReport{}, fmt.Errorf("parse router abi: %w", err)
	}

	latest, err := b.LatestBlockNumber(ctx)
	if err != nil {
		return model.VolumeReport{}, &UpstreamCallError{Method: "eth_blockNumber", Err: err}
	}
	blockRange, ok := LookbackRange(latest, q.Window)
	if !ok {
		return report, nil
	}
	report.FromBlock, report.ToBlock = blockRange.From, blockRange.To

	logs, err := b.FilterLogs(ctx, blockRange.From, blockRange.To, []common.Address{RouterAddress}, nil)
	if err != nil {
		return model.VolumeReport{}, &UpstreamCallError{Method: "eth_getLogs", Contract: RouterAddress, Err: err}
	}
	logger.Debug("router logs fetched",
		zap.Uint64("from", blockRange.From),
		zap.Uint64("to", blockRange.To),
		zap.Int("logs", len(logs)),
	)

	totals := newVolumeTotals(filter)
	for _, entry := range logs {
		report.Scanned++
		if len(entry.Topics) == 0 || entry.Topics[0] != SwappedTopic {
			continue
		}
		report.Swaps++

		event, err := resolveSwap(ctx, b, parsed, entry, logger)
		if err != nil {
			var ambiguous *AmbiguousSwapLogError
			if errors.As(err, &ambiguous) {
				report.Skipped++
				logger.Warn("bad swap transaction",
					zap.String("tx_hash", entry.TxHash.Hex()),
					zap.Uint("log_index", entry.Index),
					zap.Int("matches", ambiguous.Matches),
				)
				continue
			}
			return model.VolumeReport{}, err
		}

		if totals.Apply(event) {
			report.Counted++
		}
	}

	entries, err := totals.Entries(ctx, b)
	if err != nil {
		return model.VolumeReport{}, err
	}
	report.Entries = entries

	logger.Debug("volume scan complete",
		zap.Int("scanned", report.Scanned),
		zap.Int("swaps", report.Swaps),
		zap.Int("counted", report.Counted),
		zap.Int("skipped", report.Skipped),
	)
	return report, nil
}

// resolveSwap finds the router Swapped event in entry's transaction receipt.
// Receipts can carry Swapped logs from other contracts, and a single
// transaction can route more than one swap, so candidates are narrowed to
// the router and then to entry's log index.
func resolveSwap(ctx context.Context, b Backend, parsed abi.ABI, entry types.Log, logger *zap.Logger) (model.SwapEvent, error) {
	receipt, err := b.TransactionReceipt(ctx, entry.TxHash)
	if err != nil {
		return model.SwapEvent{}, &UpstreamCallError{Method: "eth_getTransactionReceipt", Err: err}
	}
	if receipt == nil {
		return model.SwapEvent{}, &AmbiguousSwapLogError{TxHash: entry.TxHash, LogIndex: entry.Index}
	}

	var candidates []model.SwapEvent
	for _, log := range receipt.Logs {
		if log == nil || log.Address != RouterAddress {
			continue
		}
		if len(log.Topics) == 0 || log.Topics[0] != SwappedTopic {
			continue
		}
		event, err := decodeSwapped(parsed, *log)
		if err != nil {
			logger.Debug("undecodable swap log",
				zap.String("tx_hash", log.TxHash.Hex()),
				zap.Uint("log_index", log.Index),
				zap.Error(err),
			)
			continue
		}
		candidates = append(candidates, event)
	}

	switch len(candidates) {
	case 0:
		return model.SwapEvent{}, &AmbiguousSwapLogError{TxHash: entry.TxHash, LogIndex: entry.Index}
	case 1:
		return candidates[0], nil
	}
	for _, candidate := range candidates {
		if candidate.LogIndex == entry.Index {
			return candidate, nil
		}
	}
	return model.SwapEvent{}, &AmbiguousSwapLogError{TxHash: entry.TxHash, LogIndex: entry.Index, Matches: len(candidates)}
}

func decodeSwapped(parsed abi.ABI, log types.Log) (model.SwapEvent, error) {
	event, ok := parsed.Events["Swapped"]
	if !ok {
		return model.SwapEvent{}, fmt.Errorf("router abi has no Swapped event")
	}
	values, err := event.Inputs.NonIndexed().Unpack(log.Data)
	if err != nil {
		return model.SwapEvent{}, fmt.Errorf("unpack Swapped: %w", err)
	}
	if len(values) != 7 {
		return model.SwapEvent{}, fmt.Errorf("unexpected Swapped values: %d", len(values))
	}

	out := model.SwapEvent{
		TxHash:      log.TxHash,
		LogIndex:    log.Index,
		BlockNumber: log.BlockNumber,
	}
	if out.TokenFrom, err = asAddress(values[0]); err != nil {
		return model.SwapEvent{}, fmt.Errorf("tokenFrom: %w", err)
	}
	if out.TokenTo, err = asAddress(values[1]); err != nil {
		return model.SwapEvent{}, fmt.Errorf("tokenTo: %w", err)
	}
	if out.InputAmount, err = asBigInt(values[2]); err != nil {
		return model.SwapEvent{}, fmt.Errorf("inputAmount: %w", err)
	}
	if out.TransferAmount, err = asBigInt(values[3]); err != nil {
		return model.SwapEvent{}, fmt.Errorf("transferAmount: %w", err)
	}
	if out.OutputAmount, err = asBigInt(values[4]); err != nil {
		return model.SwapEvent{}, fmt.Errorf("outputAmount: %w", err)
	}
	if out.Fee, err = asBigInt(values[5]); err != nil {
		return model.SwapEvent{}, fmt.Errorf("fee: %w", err)
	}
	if out.Recipient, err = asAddress(values[6]); err != nil {
		return model.SwapEvent{}, fmt.Errorf("recipient: %w", err)
	}
	return out, nil
}

// volumeTotals accumulates integer volume per token.
type volumeTotals struct {
	filter *common.Address
	totals map[common.Address]*big.Int
}

func newVolumeTotals(filter *common.Address) *volumeTotals {
	return &volumeTotals{
		filter: filter,
		totals: make(map[common.Address]*big.Int),
	}
}

// Apply adds the swap's input under tokenFrom and its output under tokenTo.
// With a filter set, swaps touching neither side of the filter token are
// ignored. It reports whether the swap was counted.
func (v *volumeTotals) Apply(event model.SwapEvent) bool {
	if v.filter != nil && event.TokenFrom != *v.filter && event.TokenTo != *v.filter {
		return false
	}
	v.add(event.TokenFrom, event.InputAmount)
	v.add(event.TokenTo, event.OutputAmount)
	return true
}

func (v *volumeTotals) add(token common.Address, amount *big.Int) {
	total, ok := v.totals[token]
	if !ok {
		total = new(big.Int)
		v.totals[token] = total
	}
	if amount != nil {
		total.Add(total, amount)
	}
}

// Raw returns a copy of the integer totals.
func (v *volumeTotals) Raw() map[common.Address]*big.Int {
	out := make(map[common.Address]*big.Int, len(v.totals))
	for token, total := range v.totals {
		out[token] = new(big.Int).Set(total)
	}
	return out
}

// Entries scales each total by its token's decimals, ordered by token address.
func (v *volumeTotals) Entries(ctx context.Context, b Backend) ([]model.VolumeEntry, error) {
	tokens := make([]common.Address, 0, len(v.totals))
	for token := range v.totals {
		tokens = append(tokens, token)
	}
	sort.Slice(tokens, func(i, j int) bool {
		return bytes.Compare(tokens[i][:], tokens[j][:]) < 0
	})

	entries := make([]model.VolumeEntry, 0, len(tokens))
	for _, token := range tokens {
		decimals, err := tokenDecimals(ctx, b, token)
		if err != nil {
			return nil, err
		}
		raw := new(big.Int).Set(v.totals[token])
		entries = append(entries, model.VolumeEntry{
			Token:    token,
			Raw:      raw,
			Decimals: decimals,
			Amount:   FromSmallestUnit(raw, decimals),
		})
	}
	return entries, nil
}

// tokenDecimals reads ERC20 decimals; the native asset has 18.
func tokenDecimals(ctx context.Context, b Backend, token common.Address) (uint8, error) {
	if token == (common.Address{}) {
		return 18, nil
	}
	parsed, err := ERC20ABI()
	if err != nil {
		return 0, fmt.Errorf("parse erc20 abi: %w", err)
	}
	values, err := callMethod(ctx, b, token, parsed, "decimals")
	if err != nil {
		return 0, err
	}
	decimals, err := asUint8(values[0])
	if err != nil {
		return 0, fmt.Errorf("decimals of %s: %w", token.Hex(), err)
	}
	return decimals, nil
}
