// Package hierarchy maintains the linearized ancestor list every Class
// caches on itself, and answers ancestry/reachability questions over the
// superclass and mixin edges that object.Foundation wires up.
//
// Linearization follows the algorithm grounded in TclOO's
// InitClassHierarchy: a class with a single superclass takes that
// superclass followed by the superclass's own cached list, with no
// deduplication pass; a class with multiple superclasses
// concatenates each superclass's full linearization (superclass itself
// first, then its ancestors) and removes duplicates by keeping only the
// last occurrence of each class, the same "comes as late as possible"
// rule chain.AddMethodToCallChain applies to method implementations.
//
// Complexity: Refresh is O(A) where A is the number of (superclass,
// ancestor) pairs across the direct superclass list; it assumes
// superclasses are already refreshed, which hierarchy.Refresh guarantees
// by refreshing bottom-up from RootClass.
package hierarchy
