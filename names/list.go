package names

import (
	"sort"

	"github.com/katalvlaran/oodispatch/foundation"
	"github.com/katalvlaran/oodispatch/hierarchy"
	"github.com/katalvlaran/oodispatch/object"
)

type tally struct {
	seen    bool
	public  bool
	hasImpl bool
}

// GetSortedMethodList returns the sorted, deduplicated list of method
// names visible on obj. If publicOnly is true, names whose most specific
// occurrence is private are omitted.
func GetSortedMethodList(obj *object.Object, publicOnly bool) []string {
	acc := make(map[*foundation.Name]*tally)

	collectObjectMethods(acc, obj)
	visited := make(map[*object.Class]bool)
	for _, mixin := range obj.Mixins {
		collectClassMethods(acc, mixin, visited)
	}
	if obj.SelfCls != nil {
		collectClassMethods(acc, obj.SelfCls, visited)
	}

	out := make([]string, 0, len(acc))
	for n, t := range acc {
		if !t.hasImpl {
			continue
		}
		if publicOnly && !t.public {
			continue
		}
		out = append(out, n.Text)
	}
	sort.Strings(out)

	return out
}

func collectObjectMethods(acc map[*foundation.Name]*tally, obj *object.Object) {
	for name, m := range obj.Methods {
		record(acc, name, m)
	}
}

func collectClassMethods(acc map[*foundation.Name]*tally, cls *object.Class, visited map[*object.Class]bool) {
	ancestry := append([]*object.Class{cls}, hierarchy.Refresh(cls)...)
	for _, c := range ancestry {
		if visited[c] {
			continue
		}
		visited[c] = true

		for _, mixin := range c.Mixins {
			collectClassMethods(acc, mixin, visited)
		}
		for name, m := range c.ClassMethods {
			record(acc, name, m)
		}
	}
}

func record(acc map[*foundation.Name]*tally, name *foundation.Name, m *object.Method) {
	t, ok := acc[name]
	if !ok {
		t = &tally{}
		acc[name] = t
	}
	if !t.seen {
		t.seen = true
		t.public = m.Flags.Has(object.FlagPublic)
	}
	if m.Impl != nil {
		t.hasImpl = true
	}
}
