// Package callcache memoizes chain.Chain results per (object, method
// name) pair, and validates that memo against the two-level epoch
// scheme: a chain built while the global epoch was g, the object's own
// epoch was l, and the object carried creation stamp s, is stale the
// moment any of those three no longer match. Global epoch bumps
// invalidate every object's cache in one counter increment; a per-object
// epoch bump (installing a per-object method, changing object-level
// mixins or filters) invalidates only that object's entries without
// disturbing any other object's cache, the same two-tier trade-off
// BumpGlobalEpoch makes in the original engine.
//
// Cache ownership lives here rather than on object.Object itself so the
// object package stays free of any knowledge of chain or invoke.
package callcache
