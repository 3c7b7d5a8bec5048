package vether

import (
	"context"
	"fmt"
	"math/big"

	"vetherPools/internal/model"
)

// PoolIterator walks the router's token list, yielding one pool per step.
// The token count is read on the first call to Next; create a new iterator to
// pick up pools listed since.
type PoolIterator struct {
	backend Backend
	started bool
	count   uint64
	next    uint64
	current model.PoolRef
	err     error
}

// NewPoolIterator returns an iterator over all pools listed by the router.
func NewPoolIterator(b Backend) *PoolIterator {
	return &PoolIterator{backend: b}
}

// Next advances to the next pool. It returns false when the list is exhausted
// or a call failed; check Err afterwards.
func (it *PoolIterator) Next(ctx context.Context) bool {
	if it.err != nil {
		return false
	}

	parsed, err := RouterABI()
	if err != nil {
		it.err = fmt.Errorf("parse router abi: %w", err)
		return false
	}

	if !it.started {
		count, err := callBigInt(ctx, it.backend, RouterAddress, parsed, "tokenCount")
		if err != nil {
			it.err = err
			return false
		}
		if !count.IsUint64() {
			it.err = fmt.Errorf("token count out of range: %s", count)
			return false
		}
		it.count = count.Uint64()
		it.started = true
	}

	if it.next >= it.count {
		return false
	}

	token, err := callAddress(ctx, it.backend, RouterAddress, parsed, "getToken", new(big.Int).SetUint64(it.next))
	if err != nil {
		it.err = err
		return false
	}
	pool, err := callAddress(ctx, it.backend, RouterAddress, parsed, "getPool", token)
	if err != nil {
		it.err = err
		return false
	}

	it.current = model.PoolRef{Index: it.next, TokenAddress: token, PoolAddress: pool}
	it.next++
	return true
}

// Pool returns the pool at the current position.
func (it *PoolIterator) Pool() model.PoolRef {
	return it.current
}

// Count returns the number of pools reported by the router, zero before the first Next.
func (it *PoolIterator) Count() uint64 {
	return it.count
}

// Err returns the first error hit while iterating.
func (it *PoolIterator) Err() error {
	return it.err
}

// ListPools drains a fresh iterator.
func ListPools(ctx context.Context, b Backend) ([]model.PoolRef, error) {
	it := NewPoolIterator(b)
	var pools []model.PoolRef
	for it.Next(ctx) {
		pools = append(pools, it.Pool())
	}
	if err := it.Err(); err != nil {
		return nil, err
	}
	return pools, nil
}
