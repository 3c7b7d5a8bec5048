package main

import (
	"bytes"
	"math/big"
	"strings"
	"testing"

	"github.com/ethereum/go-ethereum/common"
)

func TestRootRegistersQueries(t *testing.T) {
	root := newRootCmd()
	want := []string{"pools", "pool-address", "price", "reserves", "pool-data", "quote", "balance", "volume"}
	for _, name := range want {
		cmd, _, err := root.Find([]string{name})
		if err != nil || cmd.Name() != name {
			t.Fatalf("subcommand %q not registered", name)
		}
	}
}

func TestQueryRequiresRPC(t *testing.T) {
	t.Setenv("VETHER_RPC", "")
	root := newRootCmd()
	root.SetOut(&bytes.Buffer{})
	root.SetErr(&bytes.Buffer{})
	root.SetArgs([]string{"price", "--symbol", "DAI"})

	err := root.Execute()
	if err == nil || !strings.Contains(err.Error(), "rpc url is required") {
		t.Fatalf("expected missing rpc error, got %v", err)
	}
}

func TestQueryRejectsBadDirection(t *testing.T) {
	root := newRootCmd()
	root.SetOut(&bytes.Buffer{})
	root.SetErr(&bytes.Buffer{})
	root.SetArgs([]string{"quote", "--rpc", "http://127.0.0.1:1", "--symbol", "DAI", "--direction", "sideways"})

	err := root.Execute()
	if err == nil || !strings.Contains(err.Error(), "unsupported quote direction") {
		t.Fatalf("expected direction error, got %v", err)
	}
}

func TestFormatField(t *testing.T) {
	if got := formatField(big.NewInt(42)); got != "42" {
		t.Fatalf("big int: %s", got)
	}
	if got := formatField((*big.Int)(nil)); got != "0" {
		t.Fatalf("nil big int: %s", got)
	}
	addr := common.HexToAddress("0x0f216323076dfe029f01B3DeB3bC1682B1ea8A37")
	if got := formatField(addr); got != addr.Hex() {
		t.Fatalf("address: %s", got)
	}
}

func TestWriteJSON(t *testing.T) {
	var buf bytes.Buffer
	if err := writeJSON(&buf, map[string]int{"count": 2}); err != nil {
		t.Fatalf("write: %v", err)
	}
	if got := buf.String(); got != "{\n  \"count\": 2\n}\n" {
		t.Fatalf("unexpected output %q", got)
	}
}
