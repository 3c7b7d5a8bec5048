package chain

import (
	"context"
	"fmt"
	"math/big"
	"time"

	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/ethclient"
	"github.com/ethereum/go-ethereum/rpc"
	"go.uber.org/zap"
)

// Options tunes the client's retry and log batching behavior.
type Options struct {
	MaxRetries   int
	RetryBackoff time.Duration
	// LogBatchSize caps the block span of a single eth_getLogs request. Zero means unbounded.
	LogBatchSize uint64
	Logger       *zap.Logger
}

// Client wraps go-ethereum RPC and provides helper methods.
type Client struct {
	rpcClient *rpc.Client
	ethClient *ethclient.Client
	opts      Options
	logger    *zap.Logger
}

// NewClient creates a new chain client from the RPC URL.
func NewClient(ctx context.Context, rpcURL string, opts Options) (*Client, error) {
	rpcClient, err := rpc.DialContext(ctx, rpcURL)
	if err != nil {
		return nil, err
	}

	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	return &Client{
		rpcClient: rpcClient,
		ethClient: ethclient.NewClient(rpcClient),
		opts:      opts,
		logger:    logger,
	}, nil
}

// Close closes the underlying RPC client.
func (c *Client) Close() {
	if c.rpcClient != nil {
		c.rpcClient.Close()
	}
}

// LatestBlockNumber returns the latest block number.
func (c *Client) LatestBlockNumber(ctx context.Context) (uint64, error) {
	var number uint64
	err := c.retry(ctx, "block number", func(ctx context.Context) error {
		var err error
		number, err = c.ethClient.BlockNumber(ctx)
		return err
	})
	return number, err
}

// FilterLogs returns logs in the given range for addresses and topic0 filters.
// Ranges wider than LogBatchSize are fetched batch by batch.
func (c *Client) FilterLogs(
	ctx context.Context,
	fromBlock uint64,
	toBlock uint64,
	addresses []common.Address,
	topic0 []common.Hash,
) ([]types.Log, error) {
	if toBlock < fromBlock {
		return nil, nil
	}

	batchSize := c.opts.LogBatchSize
	if batchSize == 0 {
		batchSize = toBlock - fromBlock + 1
	}
	ranges, err := SplitRange(fromBlock, toBlock, batchSize)
	if err != nil {
		return nil, err
	}

	var out []types.Log
	for _, blockRange := range ranges {
		query := ethereum.FilterQuery{
			FromBlock: new(big.Int).SetUint64(blockRange.From),
			ToBlock:   new(big.Int).SetUint64(blockRange.To),
			Addresses: addresses,
		}
		if len(topic0) > 0 {
			query.Topics = [][]common.Hash{topic0}
		}

		var logs []types.Log
		err := c.retry(ctx, "filter logs", func(ctx context.Context) error {
			var err error
			logs, err = c.ethClient.FilterLogs(ctx, query)
			return err
		})
		if err != nil {
			return nil, fmt.Errorf("filter logs %d-%d: %w", blockRange.From, blockRange.To, err)
		}
		out = append(out, logs...)
	}
	return out, nil
}

// TransactionReceipt returns the receipt of a mined transaction.
func (c *Client) TransactionReceipt(ctx context.Context, txHash common.Hash) (*types.Receipt, error) {
	var receipt *types.Receipt
	err := c.retry(ctx, "transaction receipt", func(ctx context.Context) error {
		var err error
		receipt, err = c.ethClient.TransactionReceipt(ctx, txHash)
		return err
	})
	return receipt, err
}

// CallContract performs an eth_call for a contract method.
func (c *Client) CallContract(ctx context.Context, msg ethereum.CallMsg, blockNumber *big.Int) ([]byte, error) {
	var resp []byte
	err := c.retry(ctx, "call contract", func(ctx context.Context) error {
		var err error
		resp, err = c.ethClient.CallContract(ctx, msg, blockNumber)
		return err
	})
	return resp, err
}

func (c *Client) retry(ctx context.Context, op string, fn func(context.Context) error) error {
	return withRetry(ctx, c.opts.MaxRetries, c.opts.RetryBackoff, func(ctx context.Context) error {
		err := fn(ctx)
		if err != nil {
			c.logger.Warn("rpc call failed", zap.String("op", op), zap.Error(err))
		}
		return err
	})
}
