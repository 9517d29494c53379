package invoke

import "errors"

// ErrNoNextMethod is returned by (*Context).Next when called past the
// last entry of the chain.
var ErrNoNextMethod = errors.New("invoke: no next method in chain")

// ErrEmptyChain is returned by Invoke when given a chain with no entries.
var ErrEmptyChain = errors.New("invoke: chain has no entries")
