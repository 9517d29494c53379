// Package object defines the class graph at the heart of the dispatch
// core: Foundation, Class, Object and Method, plus the edges that connect
// them (superclasses/subclasses, mixins/mixinSubs, instances).
//
// Foundation owns process-wide state for one interpreter instance: the
// root object class, the class-of-classes, the global epoch, and the
// interned method-name table. Class and Object form a deliberately cyclic
// graph (a class's representative object points back at the class, and
// subclass/mixinSub/instance edges are back-references) — this package
// relies on Go's cycle-collecting GC instead of the arena-of-stable-IDs
// trick a refcounted host language would need, so Class and Object fields
// hold direct pointers.
//
// This package owns the data model only. Linearization lives in
// hierarchy, chain construction in chain, invocation in invoke, and the
// structural mutation contract (the only way collaborators are meant to
// change a Class or Object) lives in define.
package object
