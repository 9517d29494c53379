// Package oo is a thin facade over the dispatch core's subpackages: it
// wires object, hierarchy, chain, invoke, callcache, names, define and
// diagnose together behind a small set of entry points so a caller never
// has to import those packages directly.
//
// A single oo.Engine owns one object.Foundation plus the invocation
// cache; everything else — call-chain construction, linearization,
// epoch bookkeeping — happens underneath it. The call chain itself is a
// snapshot: once GetContext returns, that Context's Entries never change
// even if the class graph is mutated before InvokeContext runs it, the
// same guarantee the original engine gives by stashing a resolved
// context on the calling Tcl_Obj.
//
// Subpackages:
//
//	foundation/ — epoch counter and interned method-name table
//	object/     — Foundation, Class, Object, Method and their edges
//	hierarchy/  — linearized ancestry cache and reachability checks
//	chain/      — call-chain construction (filters, mixins, dedup)
//	invoke/     — running a resolved chain, with Next() continuation
//	callcache/  — per-object chain memoization against the epoch scheme
//	names/      — sorted, deduplicated method-name enumeration
//	define/     — the only supported way to mutate a Class or Object
//	diagnose/   — non-dispatch introspection (resolution distance)
package oo
