package vether

import (
	"context"
	"errors"
	"fmt"
	"math/big"
	"testing"

	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"

	"vetherPools/internal/model"
)

// fakeBackend answers contract calls by decoding the calldata against the
// same ABIs the queries use and packing canned results.
type fakeBackend struct {
	t *testing.T

	latest   uint64
	logs     []types.Log
	receipts map[common.Hash]*types.Receipt

	poolData     map[common.Address]model.PoolData
	pools        map[common.Address]common.Address
	tokens       []common.Address
	valueInToken map[common.Address]*big.Int
	balances     map[common.Address]map[common.Address]*big.Int
	supplies     map[common.Address]*big.Int
	decimals     map[common.Address]uint8

	failMethod string
	calls      []string
	logQueries []logQuery
}

type logQuery struct {
	from, to  uint64
	addresses []common.Address
}

var errNodeDown = errors.New("node unavailable")

func newFakeBackend(t *testing.T) *fakeBackend {
	t.Helper()
	return &fakeBackend{
		t:            t,
		receipts:     make(map[common.Hash]*types.Receipt),
		poolData:     make(map[common.Address]model.PoolData),
		pools:        make(map[common.Address]common.Address),
		valueInToken: make(map[common.Address]*big.Int),
		balances:     make(map[common.Address]map[common.Address]*big.Int),
		supplies:     make(map[common.Address]*big.Int),
		decimals:     make(map[common.Address]uint8),
	}
}

func (f *fakeBackend) setPool(token, pool common.Address, baseAmt, tokenAmt *big.Int) {
	f.pools[token] = pool
	f.tokens = append(f.tokens, token)
	f.poolData[token] = model.PoolData{
		TokenAddress: token,
		PoolAddress:  pool,
		Genesis:      big.NewInt(1600000000),
		BaseAmt:      baseAmt,
		TokenAmt:     tokenAmt,
		TxCount:      big.NewInt(12),
		PoolUnits:    big.NewInt(1000),
	}
}

func (f *fakeBackend) setLiquidity(pool, owner common.Address, balance, supply *big.Int) {
	if f.balances[pool] == nil {
		f.balances[pool] = make(map[common.Address]*big.Int)
	}
	f.balances[pool][owner] = balance
	f.supplies[pool] = supply
}

func (f *fakeBackend) LatestBlockNumber(ctx context.Context) (uint64, error) {
	f.calls = append(f.calls, "eth_blockNumber")
	if f.failMethod == "eth_blockNumber" {
		return 0, errNodeDown
	}
	return f.latest, nil
}

func (f *fakeBackend) FilterLogs(ctx context.Context, fromBlock, toBlock uint64, addresses []common.Address, topic0 []common.Hash) ([]types.Log, error) {
	f.calls = append(f.calls, "eth_getLogs")
	f.logQueries = append(f.logQueries, logQuery{from: fromBlock, to: toBlock, addresses: addresses})
	if f.failMethod == "eth_getLogs" {
		return nil, errNodeDown
	}
	return f.logs, nil
}

func (f *fakeBackend) TransactionReceipt(ctx context.Context, txHash common.Hash) (*types.Receipt, error) {
	f.calls = append(f.calls, "eth_getTransactionReceipt")
	if f.failMethod == "eth_getTransactionReceipt" {
		return nil, errNodeDown
	}
	receipt, ok := f.receipts[txHash]
	if !ok {
		return nil, ethereum.NotFound
	}
	return receipt, nil
}

func (f *fakeBackend) CallContract(ctx context.Context, msg ethereum.CallMsg, blockNumber *big.Int) ([]byte, error) {
	if msg.To == nil || len(msg.Data) < 4 {
		return nil, fmt.Errorf("malformed call")
	}
	to := *msg.To

	var parsed abi.ABI
	var err error
	switch {
	case to == RouterAddress:
		parsed, err = RouterABI()
	case to == UtilsAddress:
		parsed, err = UtilsABI()
	case f.supplies[to] != nil:
		parsed, err = PoolABI()
	default:
		if _, ok := f.decimals[to]; !ok {
			return nil, fmt.Errorf("no contract at %s", to.Hex())
		}
		parsed, err = ERC20ABI()
	}
	if err != nil {
		return nil, err
	}

	method, err := parsed.MethodById(msg.Data[:4])
	if err != nil {
		return nil, err
	}
	f.calls = append(f.calls, method.Name)
	if f.failMethod == method.Name {
		return nil, errNodeDown
	}

	args, err := method.Inputs.Unpack(msg.Data[4:])
	if err != nil {
		return nil, err
	}
	out, err := f.respond(to, method.Name, args)
	if err != nil {
		return nil, err
	}
	return method.Outputs.Pack(out...)
}

func (f *fakeBackend) respond(to common.Address, method string, args []interface{}) ([]interface{}, error) {
	switch method {
	case "getPool":
		return []interface{}{f.pools[args[0].(common.Address)]}, nil
	case "tokenCount":
		return []interface{}{big.NewInt(int64(len(f.tokens)))}, nil
	case "getToken":
		i := args[0].(*big.Int).Int64()
		if i >= int64(len(f.tokens)) {
			return nil, fmt.Errorf("execution reverted")
		}
		return []interface{}{f.tokens[i]}, nil
	case "getPoolData":
		data := f.poolData[args[0].(common.Address)]
		out := []interface{}{data.TokenAddress, data.PoolAddress}
		for _, name := range model.PoolDataFields[2:] {
			v, _ := data.Amount(name)
			out = append(out, v)
		}
		return out, nil
	case "calcValueInToken":
		v, ok := f.valueInToken[args[0].(common.Address)]
		if !ok {
			v = new(big.Int)
		}
		return []interface{}{v}, nil
	case "balanceOf":
		v := f.balances[to][args[0].(common.Address)]
		if v == nil {
			v = new(big.Int)
		}
		return []interface{}{v}, nil
	case "totalSupply":
		return []interface{}{f.supplies[to]}, nil
	case "decimals":
		return []interface{}{f.decimals[to]}, nil
	}
	return nil, fmt.Errorf("unexpected method %s", method)
}

func ether(n int64) *big.Int {
	return new(big.Int).Mul(big.NewInt(n), oneBaseUnit)
}

var (
	testDAI    = common.HexToAddress("0x6B175474E89094C44Da98b954EedeAC495271d0F")
	testUSDC   = common.HexToAddress("0xa0b86991c6218b36c1d19d4a2e9eb0ce3606eb48")
	testPool   = common.HexToAddress("0x1111111111111111111111111111111111111111")
	testPool2  = common.HexToAddress("0x2222222222222222222222222222222222222222")
	testHolder = common.HexToAddress("0x3333333333333333333333333333333333333333")
)
