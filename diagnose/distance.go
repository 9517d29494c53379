package diagnose

import "github.com/katalvlaran/oodispatch/object"

// ResolutionDistance returns the hop count from obj to the class whose
// method table actually implements name, and that class itself. Distance
// 0 means obj has its own per-instance implementation. obj's own class
// and each of obj's mixins are 1 hop away, and every further mixin or
// superclass edge adds one hop, searched breadth-first so the
// first implementing class found is guaranteed nearest — the same
// guarantee Dijkstra's relaxation gives on a uniformly-weighted graph,
// here without the priority queue since every edge weighs the same.
func ResolutionDistance(obj *object.Object, name string) (int, *object.Class, error) {
	key := obj.Foundation().Names.Intern(name)

	if m, ok := obj.Methods[key]; ok && m != nil && m.Impl != nil {
		return 0, nil, nil
	}

	type frontierEntry struct {
		cls  *object.Class
		dist int
	}

	visited := make(map[*object.Class]bool)
	var queue []frontierEntry

	for _, mixin := range obj.Mixins {
		queue = append(queue, frontierEntry{mixin, 1})
	}
	if obj.SelfCls != nil {
		queue = append(queue, frontierEntry{obj.SelfCls, 1})
	}

	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		if visited[cur.cls] {
			continue
		}
		visited[cur.cls] = true

		if m, ok := cur.cls.ClassMethods[key]; ok && m != nil && m.Impl != nil {
			return cur.dist, cur.cls, nil
		}

		for _, mixin := range cur.cls.Mixins {
			if !visited[mixin] {
				queue = append(queue, frontierEntry{mixin, cur.dist + 1})
			}
		}
		for _, super := range cur.cls.Superclasses {
			if !visited[super] {
				queue = append(queue, frontierEntry{super, cur.dist + 1})
			}
		}
	}

	return 0, nil, ErrNoImplementation
}
