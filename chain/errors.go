package chain

import "errors"

// ErrNoSuchMethod indicates no implementation, filter, or unknown handler
// could be resolved for the requested method name. A method that exists
// but is private to a public caller also ends up here by way of the
// unknown-handler fallback, since a gated-out private ancestor resolves
// to no chain entry at all rather than a distinct visibility error
// (§4.3 step 4; §7).
var ErrNoSuchMethod = errors.New("chain: no such method")
