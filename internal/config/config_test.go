package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/spf13/pflag"
)

func testFlags() *pflag.FlagSet {
	flags := pflag.NewFlagSet("test", pflag.ContinueOnError)
	flags.String("rpc", "", "")
	flags.String("symbol", "", "")
	flags.Float64("amount", 0, "")
	flags.Duration("window", 24*time.Hour, "")
	return flags
}

func chdirTemp(t *testing.T) {
	t.Helper()
	wd, err := os.Getwd()
	if err != nil {
		t.Fatalf("getwd: %v", err)
	}
	if err := os.Chdir(t.TempDir()); err != nil {
		t.Fatalf("chdir: %v", err)
	}
	t.Cleanup(func() { _ = os.Chdir(wd) })
}

func TestLoadDefaults(t *testing.T) {
	chdirTemp(t)

	cfg, err := Load("", nil)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.LogLevel != "info" || cfg.MaxRetries != 3 || cfg.LogBatchSize != 5000 {
		t.Fatalf("defaults mismatch: %+v", cfg)
	}
	if cfg.Window != 24*time.Hour || cfg.Direction != DirectionBaseToToken {
		t.Fatalf("query defaults mismatch: %+v", cfg)
	}
}

func TestLoadFlagsOverrideFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "vether.yaml")
	content := "rpc: http://file:8545\nsymbol: DAI\nmax-retries: 7\nwindow: 2h\n"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	flags := testFlags()
	if err := flags.Parse([]string{"--symbol", "USDC", "--amount", "2.5"}); err != nil {
		t.Fatalf("parse flags: %v", err)
	}

	cfg, err := Load(path, flags)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.RPCURL != "http://file:8545" {
		t.Fatalf("rpc should come from file: %q", cfg.RPCURL)
	}
	if cfg.Symbol != "USDC" || cfg.Amount != 2.5 {
		t.Fatalf("flags should win: %+v", cfg)
	}
	if cfg.MaxRetries != 7 || cfg.Window != 2*time.Hour {
		t.Fatalf("file values mismatch: %+v", cfg)
	}
}

func TestLoadEnv(t *testing.T) {
	chdirTemp(t)
	t.Setenv("VETHER_RPC", "http://env:8545")
	t.Setenv("VETHER_LOG_BATCH_SIZE", "100")

	cfg, err := Load("", nil)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.RPCURL != "http://env:8545" || cfg.LogBatchSize != 100 {
		t.Fatalf("env mismatch: %+v", cfg)
	}
}

func TestValidate(t *testing.T) {
	cfg := Config{RPCURL: "http://localhost:8545", Direction: DirectionTokenToBase}
	if err := cfg.Validate(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	missing := cfg
	missing.RPCURL = ""
	if err := missing.Validate(); err == nil {
		t.Fatalf("expected error for missing rpc")
	}

	bad := cfg
	bad.Direction = "sideways"
	if err := bad.Validate(); err == nil {
		t.Fatalf("expected error for bad direction")
	}
}
