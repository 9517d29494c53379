// Package foundation holds the primitive building blocks shared across the
// dispatch core: a monotonic epoch counter and an interned name table.
// Neither type knows anything about Class, Object or Method — that
// knowledge lives one layer up, in object — so this package can be
// imported freely without risk of a dependency cycle.
package foundation

import "sync/atomic"

// Epoch is a monotonic counter. Bumping it invalidates every call-chain
// cache entry stamped with an older value; the chain-cache's validity
// check is a plain integer comparison, the same amortized O(1) check the
// teacher's edge-ID counter gives AddEdge.
type Epoch struct {
	value uint64
}

// Value returns the current epoch.
func (e *Epoch) Value() uint64 { return atomic.LoadUint64(&e.value) }

// Bump atomically advances the epoch and returns the new value.
func (e *Epoch) Bump() uint64 { return atomic.AddUint64(&e.value, 1) }
