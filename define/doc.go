// Package define is the only supported way to mutate a Class or Object
// after object.Foundation.New has bootstrapped the graph: installing,
// renaming, deleting, exporting and unexporting methods; setting
// filters, mixins and superclasses; and reclassing an object. Every
// mutator here is responsible for keeping the two-level epoch scheme
// correct, following the policy grounded in TclOODefineCmds.c's
// BumpGlobalEpoch: a class with no subclasses, mixin-users or instances
// beyond its own representative object only needs that one object's
// epoch bumped (and only if it actually carries mixins of its own);
// every other structural change invalidates the whole graph by bumping
// the shared global epoch.
package define
