package define

import (
	"github.com/katalvlaran/oodispatch/foundation"
	"github.com/katalvlaran/oodispatch/object"
)

// SetClassFilters replaces cls's filter list.
func SetClassFilters(cls *object.Class, names []string) {
	cls.Filters = internAll(cls.Foundation().Names, names)
	bumpForClass(cls)
}

// SetObjectFilters replaces obj's instance-level filter list.
func SetObjectFilters(obj *object.Object, names []string) {
	obj.Filters = internAll(obj.Foundation().Names, names)
	bumpForObject(obj)
}

func internAll(table *foundation.Names, names []string) []*foundation.Name {
	out := make([]*foundation.Name, len(names))
	for i, n := range names {
		out[i] = table.Intern(n)
	}
	return out
}
