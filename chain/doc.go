// Package chain builds the ordered list of method implementations a
// single dispatch to one method name must run through: the call chain.
//
// Construction order mirrors AddSimpleChainToCallContext /
// AddClassFiltersToCallContext from the original TclOO engine: object
// mixins are consulted before the class hierarchy, direct instance
// methods before class methods, and within a class hierarchy a method
// found via more than one path (diamond mixin or superclass structure)
// is kept only once, moved as late in the chain as possible — the same
// rule hierarchy.Refresh applies when it linearizes ancestors. Filters
// are resolved the same way, by method name, and prepended ahead of the
// core chain — unless the object is already mid-filter-dispatch
// (object.Object.FilterHandling), in which case filter injection is
// skipped for this Build entirely, so a filter body that re-dispatches
// on the same object doesn't re-enter its own filter chain.
package chain
