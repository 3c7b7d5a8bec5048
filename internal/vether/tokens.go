package vether

import (
	"github.com/ethereum/go-ethereum/common"

	"vetherPools/internal/model"
)

// Contract addresses of the vether pools deployment.
var (
	RouterAddress = common.HexToAddress("0xe16e64Da1338d8E56dFd8355Ba7642D0A79e253c")
	UtilsAddress  = common.HexToAddress("0x0f216323076dfe029f01B3DeB3bC1682B1ea8A37")
)

// BaseDecimals is the decimal precision of the base asset.
const BaseDecimals uint8 = 18

var registry = []model.Token{
	{Symbol: "SHUF", Address: common.HexToAddress("0x3A9FfF453d50D4Ac52A6890647b823379ba36B9E"), Decimals: 18},
	{Symbol: "DAI", Address: common.HexToAddress("0x6B175474E89094C44Da98b954EedeAC495271d0F"), Decimals: 18},
	{Symbol: "USDC", Address: common.HexToAddress("0xa0b86991c6218b36c1d19d4a2e9eb0ce3606eb48"), Decimals: 6},
	{Symbol: "0xBTC", Address: common.HexToAddress("0xB6eD7644C69416d67B522e20bC294A9a9B405B31"), Decimals: 8},
	{Symbol: "ETH", Address: common.Address{}, Decimals: 18},
	{Symbol: "DONUT", Address: common.HexToAddress("0xC0F9bD5Fa5698B6505F643900FFA515Ea5dF54A9"), Decimals: 18},
	{Symbol: "USDT", Address: common.HexToAddress("0xdAC17F958D2ee523a2206206994597C13D831ec7"), Decimals: 6},
}

var bySymbol = func() map[string]model.Token {
	out := make(map[string]model.Token, len(registry))
	for _, token := range registry {
		out[token.Symbol] = token
	}
	return out
}()

var symbolAliases = map[string]string{
	"WETH": "ETH",
}

// Tokens returns the registered tokens in registration order.
func Tokens() []model.Token {
	out := make([]model.Token, len(registry))
	copy(out, registry)
	return out
}

// ResolveToken looks a symbol up in the registry. WETH resolves to ETH.
func ResolveToken(symbol string) (model.Token, error) {
	if alias, ok := symbolAliases[symbol]; ok {
		symbol = alias
	}
	token, ok := bySymbol[symbol]
	if !ok {
		return model.Token{}, &UnknownTokenError{Symbol: symbol}
	}
	return token, nil
}

// TokenAddress returns the registered address for a symbol.
func TokenAddress(symbol string) (common.Address, error) {
	token, err := ResolveToken(symbol)
	if err != nil {
		return common.Address{}, err
	}
	return token.Address, nil
}
