package main

import (
	"context"
	"fmt"
	"math/big"

	"github.com/ethereum/go-ethereum/common"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"vetherPools/internal/chain"
	"vetherPools/internal/config"
	"vetherPools/internal/vether"
)

func newPoolsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "pools",
		Short: "List every pool registered on the router",
		RunE: runQuery(func(ctx context.Context, s *session) (interface{}, error) {
			return vether.ListPools(ctx, s.client)
		}),
	}
}

func newPoolAddressCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "pool-address",
		Short: "Resolve the pool contract for a token symbol",
		RunE: runQuery(func(ctx context.Context, s *session) (interface{}, error) {
			if err := requireSymbol(s.cfg); err != nil {
				return nil, err
			}
			pool, err := vether.GetPoolAddress(ctx, s.client, s.cfg.Symbol)
			if err != nil {
				return nil, err
			}
			return map[string]string{"symbol": s.cfg.Symbol, "pool": pool.Hex()}, nil
		}),
	}
	addSymbolFlag(cmd)
	return cmd
}

func newPriceCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "price",
		Short: "Token units per one unit of the base asset",
		RunE: runQuery(func(ctx context.Context, s *session) (interface{}, error) {
			if err := requireSymbol(s.cfg); err != nil {
				return nil, err
			}
			price, err := vether.GetPrice(ctx, s.client, s.cfg.Symbol)
			if err != nil {
				return nil, err
			}
			return map[string]interface{}{"symbol": s.cfg.Symbol, "price": price}, nil
		}),
	}
	addSymbolFlag(cmd)
	return cmd
}

func newReservesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "reserves",
		Short: "Base and token reserves of a pool",
		RunE: runQuery(func(ctx context.Context, s *session) (interface{}, error) {
			if err := requireSymbol(s.cfg); err != nil {
				return nil, err
			}
			return vether.GetReserves(ctx, s.client, s.cfg.Symbol)
		}),
	}
	addSymbolFlag(cmd)
	return cmd
}

func newPoolDataCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "pool-data",
		Short: "Raw getPoolData record, or one field of it",
		RunE: runQuery(func(ctx context.Context, s *session) (interface{}, error) {
			if err := requireSymbol(s.cfg); err != nil {
				return nil, err
			}
			if s.cfg.Field == "" {
				return vether.GetPoolData(ctx, s.client, s.cfg.Symbol)
			}
			value, err := vether.PoolDataField(ctx, s.client, s.cfg.Symbol, s.cfg.Field)
			if err != nil {
				return nil, err
			}
			return map[string]string{"field": s.cfg.Field, "value": formatField(value)}, nil
		}),
	}
	addSymbolFlag(cmd)
	cmd.Flags().String("field", "", "single field to print (e.g. baseAmt, tokenAmt, poolUnits)")
	return cmd
}

func newQuoteCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "quote",
		Short: "Quote a swap against a pool's current reserves",
		RunE: runQuery(func(ctx context.Context, s *session) (interface{}, error) {
			if err := requireSymbol(s.cfg); err != nil {
				return nil, err
			}
			var (
				out float64
				err error
			)
			switch s.cfg.Direction {
			case config.DirectionTokenToBase:
				out, err = vether.QuoteTokenToBase(ctx, s.client, s.cfg.Symbol, s.cfg.Amount)
			default:
				out, err = vether.QuoteBaseToToken(ctx, s.client, s.cfg.Symbol, s.cfg.Amount)
			}
			if err != nil {
				return nil, err
			}
			return map[string]interface{}{
				"symbol":    s.cfg.Symbol,
				"direction": s.cfg.Direction,
				"input":     s.cfg.Amount,
				"output":    out,
			}, nil
		}),
	}
	addSymbolFlag(cmd)
	cmd.Flags().Float64("amount", 0, "input amount in decimal units")
	cmd.Flags().String("direction", config.DirectionBaseToToken, "base-to-token or token-to-base")
	return cmd
}

func newBalanceCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "balance",
		Short: "Share of a pool's reserves held by an address",
		RunE: runQuery(func(ctx context.Context, s *session) (interface{}, error) {
			if err := requireSymbol(s.cfg); err != nil {
				return nil, err
			}
			owner, err := chain.ParseAddress(s.cfg.Address)
			if err != nil {
				return nil, err
			}
			return vether.GetPooledBalance(ctx, s.client, s.cfg.Symbol, owner)
		}),
	}
	addSymbolFlag(cmd)
	cmd.Flags().String("address", "", "liquidity provider address")
	return cmd
}

func newVolumeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "volume",
		Short: "Swap volume per token over a lookback window",
		RunE: runQuery(func(ctx context.Context, s *session) (interface{}, error) {
			report, err := vether.ScanVolume(ctx, s.client, vether.VolumeQuery{
				Symbol: s.cfg.Symbol,
				Window: s.cfg.Window,
			}, s.logger)
			if err != nil {
				return nil, err
			}
			s.logger.Info("volume scanned",
				zap.Uint64("from", report.FromBlock),
				zap.Uint64("to", report.ToBlock),
				zap.Int("swaps", report.Swaps),
				zap.Int("skipped", report.Skipped),
			)
			return report, nil
		}),
	}
	cmd.Flags().String("symbol", "", "only count swaps touching this token")
	cmd.Flags().String("window", "24h", "lookback window (e.g. 1h, 24h)")
	return cmd
}

func addSymbolFlag(cmd *cobra.Command) {
	cmd.Flags().String("symbol", "", "token symbol (e.g. DAI, USDC, ETH)")
}

func requireSymbol(cfg config.Config) error {
	if cfg.Symbol == "" {
		return fmt.Errorf("symbol is required")
	}
	return nil
}

func formatField(value interface{}) string {
	switch v := value.(type) {
	case *big.Int:
		if v == nil {
			return "0"
		}
		return v.String()
	case common.Address:
		return v.Hex()
	default:
		return fmt.Sprint(v)
	}
}
