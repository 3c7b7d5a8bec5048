package vether

import (
	"strings"
	"sync"

	"github.com/ethereum/go-ethereum/accounts/abi"
)

const routerABIJSON = `[
  {
    "anonymous": false,
    "inputs": [
      {"indexed": false, "internalType": "address", "name": "tokenFrom", "type": "address"},
      {"indexed": false, "internalType": "address", "name": "tokenTo", "type": "address"},
      {"indexed": false, "internalType": "uint256", "name": "inputAmount", "type": "uint256"},
      {"indexed": false, "internalType": "uint256", "name": "transferAmount", "type": "uint256"},
      {"indexed": false, "internalType": "uint256", "name": "outputAmount", "type": "uint256"},
      {"indexed": false, "internalType": "uint256", "name": "fee", "type": "uint256"},
      {"indexed": false, "internalType": "address", "name": "recipient", "type": "address"}
    ],
    "name": "Swapped",
    "type": "event"
  },
  {
    "inputs": [{"internalType": "address", "name": "token", "type": "address"}],
    "name": "getPool",
    "outputs": [{"internalType": "address", "name": "pool", "type": "address"}],
    "stateMutability": "view",
    "type": "function"
  },
  {
    "inputs": [],
    "name": "tokenCount",
    "outputs": [{"internalType": "uint256", "name": "", "type": "uint256"}],
    "stateMutability": "view",
    "type": "function"
  },
  {
    "inputs": [{"internalType": "uint256", "name": "i", "type": "uint256"}],
    "name": "getToken",
    "outputs": [{"internalType": "address", "name": "", "type": "address"}],
    "stateMutability": "view",
    "type": "function"
  }
]`

// getPoolData returns a struct of static members, which is ABI-encoded the
// same way as the flat output list below.
const utilsABIJSON = `[
  {
    "inputs": [{"internalType": "address", "name": "token", "type": "address"}],
    "name": "getPoolData",
    "outputs": [
      {"internalType": "address", "name": "tokenAddress", "type": "address"},
      {"internalType": "address", "name": "poolAddress", "type": "address"},
      {"internalType": "uint256", "name": "genesis", "type": "uint256"},
      {"internalType": "uint256", "name": "baseAmt", "type": "uint256"},
      {"internalType": "uint256", "name": "tokenAmt", "type": "uint256"},
      {"internalType": "uint256", "name": "baseAmtStaked", "type": "uint256"},
      {"internalType": "uint256", "name": "tokenAmtStaked", "type": "uint256"},
      {"internalType": "uint256", "name": "fees", "type": "uint256"},
      {"internalType": "uint256", "name": "volume", "type": "uint256"},
      {"internalType": "uint256", "name": "txCount", "type": "uint256"},
      {"internalType": "uint256", "name": "poolUnits", "type": "uint256"}
    ],
    "stateMutability": "view",
    "type": "function"
  },
  {
    "inputs": [
      {"internalType": "address", "name": "token", "type": "address"},
      {"internalType": "uint256", "name": "amount", "type": "uint256"}
    ],
    "name": "calcValueInToken",
    "outputs": [{"internalType": "uint256", "name": "value", "type": "uint256"}],
    "stateMutability": "view",
    "type": "function"
  }
]`

const poolABIJSON = `[
  {"inputs": [{"internalType": "address", "name": "account", "type": "address"}], "name": "balanceOf", "outputs": [{"internalType": "uint256", "name": "", "type": "uint256"}], "stateMutability": "view", "type": "function"},
  {"inputs": [], "name": "totalSupply", "outputs": [{"internalType": "uint256", "name": "", "type": "uint256"}], "stateMutability": "view", "type": "function"}
]`

const erc20ABIJSON = `[
  {"inputs": [], "name": "decimals", "outputs": [{"type": "uint8"}], "stateMutability": "view", "type": "function"}
]`

type lazyABI struct {
	once   sync.Once
	raw    string
	parsed abi.ABI
	err    error
}

func (l *lazyABI) get() (abi.ABI, error) {
	l.once.Do(func() {
		l.parsed, l.err = abi.JSON(strings.NewReader(l.raw))
	})
	return l.parsed, l.err
}

var (
	routerABI = &lazyABI{raw: routerABIJSON}
	utilsABI  = &lazyABI{raw: utilsABIJSON}
	poolABI   = &lazyABI{raw: poolABIJSON}
	erc20ABI  = &lazyABI{raw: erc20ABIJSON}
)

// RouterABI returns the parsed router ABI.
func RouterABI() (abi.ABI, error) { return routerABI.get() }

// UtilsABI returns the parsed utils ABI.
func UtilsABI() (abi.ABI, error) { return utilsABI.get() }

// PoolABI returns the parsed pool liquidity token ABI.
func PoolABI() (abi.ABI, error) { return poolABI.get() }

// ERC20ABI returns the parsed ERC20 decimals ABI.
func ERC20ABI() (abi.ABI, error) { return erc20ABI.get() }
