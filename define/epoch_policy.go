package define

import "github.com/katalvlaran/oodispatch/object"

// bumpForClass applies the epoch-bump policy for a structural change to
// cls: if cls has no subclasses, no mixin-users and no instances beyond
// its own representative object, only that object's own resolution can
// possibly be affected, so only its per-object epoch is bumped — unless
// even that representative object carries no mixins of its own, in
// which case nothing downstream depends on cls at all and no bump is
// needed. Any broader dependency set bumps the shared global epoch.
func bumpForClass(cls *object.Class) {
	if !cls.HasSubclasses() && !cls.HasMixinSubs() && !cls.HasInstances() {
		if len(cls.ThisPtr.Mixins) > 0 {
			cls.ThisPtr.Epoch.Bump()
		}
		return
	}
	cls.Foundation().Epoch.Bump()
}

// bumpForObject applies the epoch-bump policy for a structural change
// scoped to a single object (its own filters, mixins or per-instance
// methods): only that object's resolution is affected.
func bumpForObject(obj *object.Object) {
	obj.Epoch.Bump()
}
