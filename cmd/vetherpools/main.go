package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"vetherPools/internal/chain"
	"vetherPools/internal/config"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:          "vetherpools",
		Short:        "Query vether pools on Ethereum mainnet",
		SilenceUsage: true,
	}

	flags := root.PersistentFlags()
	flags.String("config", "", "config file path")
	flags.String("rpc", "", "Ethereum RPC URL")
	flags.String("log-level", "info", "log level (debug, info, warn, error)")
	flags.Int("max-retries", 3, "maximum retry attempts per RPC call")
	flags.Duration("retry-backoff", 500*time.Millisecond, "initial retry backoff")
	flags.Uint64("log-batch-size", 5000, "max blocks per eth_getLogs request (0 = unbounded)")

	root.AddCommand(
		newPoolsCmd(),
		newPoolAddressCmd(),
		newPriceCmd(),
		newReservesCmd(),
		newPoolDataCmd(),
		newQuoteCmd(),
		newBalanceCmd(),
		newVolumeCmd(),
	)
	return root
}

// session carries the resources a query command needs.
type session struct {
	cfg    config.Config
	logger *zap.Logger
	client *chain.Client
}

type queryFunc func(ctx context.Context, s *session) (interface{}, error)

// runQuery loads config, dials the RPC endpoint and prints the query result as JSON.
func runQuery(query queryFunc) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, _ []string) error {
		cfgFile, _ := cmd.Flags().GetString("config")
		cfg, err := config.Load(cfgFile, cmd.Flags())
		if err != nil {
			return err
		}
		if err := cfg.Validate(); err != nil {
			return err
		}

		logger, err := newLogger(cfg.LogLevel)
		if err != nil {
			return err
		}
		defer logger.Sync()

		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		client, err := chain.NewClient(ctx, cfg.RPCURL, chain.Options{
			MaxRetries:   cfg.MaxRetries,
			RetryBackoff: cfg.RetryBackoff,
			LogBatchSize: cfg.LogBatchSize,
			Logger:       logger,
		})
		if err != nil {
			return fmt.Errorf("connect rpc: %w", err)
		}
		defer client.Close()

		logger.Debug("query start",
			zap.String("command", cmd.Name()),
			zap.String("rpc", cfg.RPCURL),
			zap.Int("max_retries", cfg.MaxRetries),
		)

		result, err := query(ctx, &session{cfg: cfg, logger: logger, client: client})
		if err != nil {
			logger.Error("query failed", zap.String("command", cmd.Name()), zap.Error(err))
			return err
		}
		return writeJSON(cmd.OutOrStdout(), result)
	}
}

func writeJSON(w io.Writer, v interface{}) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func newLogger(level string) (*zap.Logger, error) {
	cfg := zap.NewProductionConfig()
	cfg.Level = zap.NewAtomicLevel()
	if err := cfg.Level.UnmarshalText([]byte(level)); err != nil {
		return nil, err
	}

	cfg.EncoderConfig.TimeKey = "ts"
	cfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder

	return cfg.Build()
}
