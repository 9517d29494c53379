package define

import "github.com/katalvlaran/oodispatch/object"

// SetClassMixins replaces cls's mixin list, maintaining every mixin's
// MixinSubs back-edge and applying the epoch-bump policy for cls. The
// mixins that were added or removed get no epoch bump of their own.
func SetClassMixins(cls *object.Class, mixins []*object.Class) {
	for _, old := range cls.Mixins {
		if !contains(mixins, old) {
			object.UnlinkMixin(cls, old)
		}
	}
	for _, next := range mixins {
		if !contains(cls.Mixins, next) {
			object.LinkMixin(cls, next)
		}
	}

	cls.Mixins = append([]*object.Class(nil), mixins...)
	bumpForClass(cls)
}

// SetObjectMixins replaces obj's instance-level mixin list, maintaining
// every mixin's Instances back-edge.
func SetObjectMixins(obj *object.Object, mixins []*object.Class) {
	for _, old := range obj.Mixins {
		if !contains(mixins, old) && old != obj.SelfCls {
			object.UnlinkInstance(obj, old)
		}
	}
	for _, next := range mixins {
		object.LinkInstance(obj, next)
	}

	obj.Mixins = append([]*object.Class(nil), mixins...)
	bumpForObject(obj)
}

func contains(list []*object.Class, target *object.Class) bool {
	for _, c := range list {
		if c == target {
			return true
		}
	}
	return false
}
