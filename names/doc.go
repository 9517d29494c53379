// Package names enumerates the distinct method names visible on an
// object: every name reachable through its mixins, its own instance
// methods, and its class hierarchy, deduplicated and sorted. A name with
// only a visibility placeholder and no real implementation anywhere in
// the graph is excluded, mirroring TclOOGetSortedMethodList's
// NO_IMPLEMENTATION bookkeeping; visibility (public vs private) is taken
// from the most specific occurrence, the same nearest-wins rule chain
// construction uses for the implementation itself.
package names
