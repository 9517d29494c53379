package define

import (
	"github.com/katalvlaran/oodispatch/hierarchy"
	"github.com/katalvlaran/oodispatch/object"
)

// SetSuperclasses replaces cls's direct superclass list. It rejects a
// list containing the same class twice, a list that would introduce a
// cycle (a proposed superclass that is reachable back to cls through the
// graph as it stands today), and any attempt to restructure the root
// class or the class of classes.
func SetSuperclasses(cls *object.Class, supers []*object.Class) error {
	f := cls.Foundation()
	if cls == f.RootClass || cls == f.ClassOfClasses {
		return ErrRootModification
	}

	seen := make(map[*object.Class]bool, len(supers))
	for _, s := range supers {
		if seen[s] {
			return ErrDuplicateSuperclass
		}
		seen[s] = true
		if hierarchy.IsReachable(cls, s) {
			return ErrCircularSuperclass
		}
	}

	for _, old := range cls.Superclasses {
		if !seen[old] {
			object.UnlinkSuperclass(cls, old)
		}
	}
	already := make(map[*object.Class]bool, len(cls.Superclasses))
	for _, old := range cls.Superclasses {
		already[old] = true
	}
	for _, next := range supers {
		if !already[next] {
			object.LinkSuperclass(cls, next)
		}
	}

	cls.Superclasses = append([]*object.Class(nil), supers...)
	// Force hierarchy.Refresh to rebuild cls's linearization even when
	// bumpForClass leaves the global epoch alone.
	cls.Hierarchy = nil
	bumpForClass(cls)

	return nil
}
