package hierarchy

import "github.com/katalvlaran/oodispatch/object"

// Refresh returns cls's linearized ancestor list (root excluded, cls
// itself excluded), rebuilding it if the global epoch has advanced past
// the stamp left by the last rebuild or if the cached list was cleared.
// A superclass change on a class with dependents bumps the global epoch;
// on a class with none, define.SetSuperclasses clears that class's own
// cached list instead (see the define package).
//
// The returned slice is owned by cls; callers must not mutate it.
func Refresh(cls *object.Class) []*object.Class {
	current := cls.Foundation().Epoch.Value()
	if cls.Hierarchy != nil && cls.HierarchyEpoch == current {
		return cls.Hierarchy
	}
	return rebuild(cls, current, make(map[*object.Class]bool))
}

// rebuild recomputes cls.Hierarchy, refreshing superclasses first so
// multi-superclass concatenation sees already-linearized ancestor lists.
// visiting guards against a cycle slipping past define's own checks.
func rebuild(cls *object.Class, current uint64, visiting map[*object.Class]bool) []*object.Class {
	if visiting[cls] {
		// A cycle should never reach here (define.SetSuperclasses rejects
		// it up front); fail safe with an empty ancestor list rather than
		// recursing forever.
		return nil
	}
	visiting[cls] = true
	defer delete(visiting, cls)

	root := cls.Foundation().RootClass
	var supers []*object.Class
	for _, s := range cls.Superclasses {
		if s != root {
			supers = append(supers, s)
		}
	}
	switch len(supers) {
	case 0:
		cls.Hierarchy = nil
	case 1:
		super := supers[0]
		ancestors := Refresh(super)
		merged := make([]*object.Class, 0, len(ancestors)+1)
		merged = append(merged, super)
		merged = append(merged, ancestors...)
		cls.Hierarchy = merged
	default:
		cls.Hierarchy = concatDedup(supers)
	}
	cls.HierarchyEpoch = current

	return cls.Hierarchy
}

// concatDedup concatenates, for each superclass in order, that
// superclass followed by its own ancestor list, then removes duplicates
// keeping only the last occurrence of each class — the same
// late-as-possible rule used when deduplicating call chains.
func concatDedup(supers []*object.Class) []*object.Class {
	var full []*object.Class
	for _, super := range supers {
		full = append(full, super)
		full = append(full, Refresh(super)...)
	}

	seen := make(map[*object.Class]bool, len(full))
	out := make([]*object.Class, 0, len(full))
	for i := len(full) - 1; i >= 0; i-- {
		c := full[i]
		if seen[c] {
			continue
		}
		seen[c] = true
		out = append(out, c)
	}
	// out was built back-to-front; reverse to restore forward order.
	for l, r := 0, len(out)-1; l < r; l, r = l+1, r-1 {
		out[l], out[r] = out[r], out[l]
	}

	return out
}
