package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// Config holds configuration values loaded from flags, env, or config file.
type Config struct {
	RPCURL       string
	LogLevel     string
	MaxRetries   int
	RetryBackoff time.Duration
	LogBatchSize uint64

	Symbol    string
	Field     string
	Address   string
	Amount    float64
	Direction string
	Window    time.Duration
}

// Quote directions.
const (
	DirectionBaseToToken = "base-to-token"
	DirectionTokenToBase = "token-to-base"
)

// Load merges config file, environment variables, and flags into Config.
func Load(cfgFile string, flags *pflag.FlagSet) (Config, error) {
	v := viper.New()
	v.SetEnvPrefix("VETHER")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	v.SetDefault("log-level", "info")
	v.SetDefault("max-retries", 3)
	v.SetDefault("retry-backoff", 500*time.Millisecond)
	v.SetDefault("log-batch-size", uint64(5000))
	v.SetDefault("direction", DirectionBaseToToken)
	v.SetDefault("window", 24*time.Hour)

	if flags != nil {
		if err := v.BindPFlags(flags); err != nil {
			return Config{}, fmt.Errorf("bind flags: %w", err)
		}
	}

	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
		if err := v.ReadInConfig(); err != nil {
			return Config{}, fmt.Errorf("read config: %w", err)
		}
	} else {
		v.SetConfigName("config")
		v.AddConfigPath(".")
		if err := v.ReadInConfig(); err != nil {
			if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
				return Config{}, fmt.Errorf("read config: %w", err)
			}
		}
	}

	cfg := Config{
		RPCURL:       v.GetString("rpc"),
		LogLevel:     v.GetString("log-level"),
		MaxRetries:   v.GetInt("max-retries"),
		RetryBackoff: v.GetDuration("retry-backoff"),
		LogBatchSize: v.GetUint64("log-batch-size"),
		Symbol:       strings.TrimSpace(v.GetString("symbol")),
		Field:        strings.TrimSpace(v.GetString("field")),
		Address:      strings.TrimSpace(v.GetString("address")),
		Amount:       v.GetFloat64("amount"),
		Direction:    strings.ToLower(strings.TrimSpace(v.GetString("direction"))),
		Window:       v.GetDuration("window"),
	}

	return cfg, nil
}

// Validate checks settings shared by every command.
func (c Config) Validate() error {
	if c.RPCURL == "" {
		return fmt.Errorf("rpc url is required")
	}
	if c.MaxRetries < 0 {
		return fmt.Errorf("max retries must not be negative")
	}
	switch c.Direction {
	case DirectionBaseToToken, DirectionTokenToBase:
	default:
		return fmt.Errorf("unsupported quote direction %q", c.Direction)
	}
	return nil
}
