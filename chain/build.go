package chain

import (
	"github.com/katalvlaran/oodispatch/foundation"
	"github.com/katalvlaran/oodispatch/hierarchy"
	"github.com/katalvlaran/oodispatch/object"
)

// Build resolves the call chain for invoking methodName on obj. Each
// candidate method is gated for visibility as it is found (see visible),
// so a public dispatch that only ever meets private methods resolves
// to no core entry at all and falls through to the foundation's unknown
// handler, same as if the name were never declared (§4.3 step 4; §7).
// If obj is already mid-filter-dispatch (obj.FilterHandling), filter
// injection is skipped entirely and the returned Chain is flagged
// object.FlagFilterHandling so callcache never memoizes it under the
// object's ordinary, non-nested cache slot.
func Build(obj *object.Object, methodName string, public bool) (*Chain, error) {
	name := obj.Foundation().Names.Intern(methodName)

	core := resolveCore(obj, name, false, public)
	if len(core) == 0 {
		return buildUnknown(obj, methodName)
	}

	var flags object.Flags
	var filters []Entry
	if obj.FilterHandling {
		flags = object.FlagFilterHandling
	} else {
		filters = resolveFilters(obj, public)
	}

	entries := make([]Entry, 0, len(filters)+len(core))
	entries = append(entries, filters...)
	entries = append(entries, core...)

	return &Chain{Entries: entries, Flags: flags, SkippedArgs: 2}, nil
}

// BuildConstructor resolves the constructor chain for obj's class.
// Filters never wrap construction, matching the original engine.
func BuildConstructor(obj *object.Object) (*Chain, error) {
	if obj.SelfCls == nil {
		return nil, ErrNoSuchMethod
	}
	entries := walkClassChain(nil, obj, obj.SelfCls, nil, false, false, make(map[*object.Class]bool), lookupConstructor)
	if len(entries) == 0 {
		return nil, ErrNoSuchMethod
	}

	return &Chain{Entries: entries, SkippedArgs: 1}, nil
}

// BuildDestructor resolves the destructor chain for obj's class.
func BuildDestructor(obj *object.Object) (*Chain, error) {
	if obj.SelfCls == nil {
		return nil, ErrNoSuchMethod
	}
	entries := walkClassChain(nil, obj, obj.SelfCls, nil, false, false, make(map[*object.Class]bool), lookupDestructor)
	if len(entries) == 0 {
		return nil, ErrNoSuchMethod
	}

	return &Chain{Entries: entries, SkippedArgs: 0}, nil
}

func buildUnknown(obj *object.Object, requestedName string) (*Chain, error) {
	unknown := obj.Foundation().UnknownName
	entries := resolveCore(obj, unknown, false, false)
	if len(entries) == 0 {
		return nil, ErrNoSuchMethod
	}

	return &Chain{
		Entries:     entries,
		Flags:       object.FlagUnknownMethod,
		SkippedArgs: 1, // the unknown handler sees the requested name as its first argument
	}, nil
}

// lookupFn extracts the Method implementation of interest (if any) from
// a class, so walkClassChain can serve ordinary method, constructor and
// destructor resolution with one traversal.
type lookupFn func(c *object.Class, name *foundation.Name) (*object.Method, bool)

// lookupMethod never returns a visibility-only placeholder (Impl == nil):
// such a Method exists only to shadow inherited visibility for
// introspection (see names.GetSortedMethodList) and must never appear in
// an executed chain (§3, §4.4).
func lookupMethod(c *object.Class, name *foundation.Name) (*object.Method, bool) {
	m, ok := c.ClassMethods[name]
	return m, ok && m != nil && m.Impl != nil
}

func lookupConstructor(c *object.Class, _ *foundation.Name) (*object.Method, bool) {
	return c.Constructor, c.Constructor != nil
}

func lookupDestructor(c *object.Class, _ *foundation.Name) (*object.Method, bool) {
	return c.Destructor, c.Destructor != nil
}

// visible reports whether m may be added to a chain under the given
// public requirement. A private class-declared method is invisible to a
// public caller, whichever class declared it. Instance-level methods
// (DeclaringClass == nil) and private-capable calls are never gated.
func visible(public bool, m *object.Method) bool {
	return !public || !m.Flags.Has(object.FlagPrivate) || m.DeclaringClass == nil
}

// resolveCore resolves the ordinary (non-filter) call chain for name:
// instance mixins, the instance's own method, then the class hierarchy
// of obj's class (each hierarchy class's own mixins are consulted at
// that class's position, ahead of its own method). public gates every
// class-declared entry found along the way (see visible), except when
// filter is set.
func resolveCore(obj *object.Object, name *foundation.Name, filter bool, public bool) []Entry {
	var entries []Entry
	visited := make(map[*object.Class]bool)

	for _, mixin := range obj.Mixins {
		entries = walkClassChain(entries, obj, mixin, name, filter, public, visited, lookupMethod)
	}
	if m, ok := obj.Methods[name]; ok && m != nil && m.Impl != nil {
		entries = appendLate(entries, Entry{Target: obj, Method: m, IsFilter: filter})
	}
	if obj.SelfCls != nil {
		entries = walkClassChain(entries, obj, obj.SelfCls, name, filter, public, visited, lookupMethod)
	}

	return entries
}

// walkClassChain consults cls and its linearized ancestry in order, and
// for each of those classes first recurses into its own mixins before
// checking the class itself via lookup — matching AddSimpleClassChain's
// "mixins win over the mixed-in-class's own method" ordering. A method
// that fails the visible check is skipped rather than appended; filter
// entries are never gated.
func walkClassChain(entries []Entry, target *object.Object, cls *object.Class, name *foundation.Name, filter bool, public bool, visited map[*object.Class]bool, lookup lookupFn) []Entry {
	ancestry := append([]*object.Class{cls}, hierarchy.Refresh(cls)...)
	for _, c := range ancestry {
		if visited[c] {
			continue
		}
		visited[c] = true

		for _, mixin := range c.Mixins {
			entries = walkClassChain(entries, target, mixin, name, filter, public, visited, lookup)
		}
		if m, ok := lookup(c, name); ok && visible(public && !filter, m) {
			entries = appendLate(entries, Entry{Target: target, Method: m, IsFilter: filter})
		}
	}

	return entries
}

// resolveFilters resolves, in order, the active filter names for obj
// (its own filters, then its class hierarchy's), and for each one
// builds the same kind of core chain used for a real method call.
func resolveFilters(obj *object.Object, public bool) []Entry {
	names := append([]*foundation.Name(nil), obj.Filters...)
	if obj.SelfCls != nil {
		names = collectClassFilterNames(names, obj.SelfCls, make(map[*object.Class]bool))
	}

	var entries []Entry
	for _, name := range names {
		entries = append(entries, resolveCore(obj, name, true, public)...)
	}

	return entries
}

func collectClassFilterNames(names []*foundation.Name, cls *object.Class, visited map[*object.Class]bool) []*foundation.Name {
	ancestry := append([]*object.Class{cls}, hierarchy.Refresh(cls)...)
	for _, c := range ancestry {
		if visited[c] {
			continue
		}
		visited[c] = true

		for _, mixin := range c.Mixins {
			names = collectClassFilterNames(names, mixin, visited)
		}
		for _, n := range c.Filters {
			names = appendNameIfAbsent(names, n)
		}
	}

	return names
}

func appendNameIfAbsent(names []*foundation.Name, n *foundation.Name) []*foundation.Name {
	for _, existing := range names {
		if existing == n {
			return names
		}
	}

	return append(names, n)
}
