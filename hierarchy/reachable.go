package hierarchy

import "github.com/katalvlaran/oodispatch/object"

// IsReachable reports whether target appears in start's own transitive
// closure: start itself, its linearized superclass ancestry, or any
// mixin reachable from start or that ancestry. define.SetSuperclasses
// uses it to reject superclass cycles, the same way TclOO's
// TclOOIsReachable is consulted before TclOODefineSuperclassObjCmd
// commits a structural change.
func IsReachable(target, start *object.Class) bool {
	if target == nil || start == nil {
		return false
	}
	visited := make(map[*object.Class]bool)
	return walk(start, target, visited)
}

func walk(cur, target *object.Class, visited map[*object.Class]bool) bool {
	if cur == target {
		return true
	}
	if visited[cur] {
		return false
	}
	visited[cur] = true

	for _, super := range cur.Superclasses {
		if walk(super, target, visited) {
			return true
		}
	}
	for _, mixin := range cur.Mixins {
		if walk(mixin, target, visited) {
			return true
		}
	}

	return false
}
