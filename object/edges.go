package object

// The helpers in this file maintain the back-edge sets (Subclasses,
// MixinSubs, Instances) that make the class graph navigable in both
// directions. They are exported for define, the package that owns the
// mutation contract, but intentionally do nothing about epoch bumping —
// that policy belongs entirely to define (see define.bumpForClass).

// LinkSuperclass records cls as a subclass of super.
func LinkSuperclass(cls, super *Class) {
	if super.Subclasses == nil {
		super.Subclasses = make(map[*Class]struct{})
	}
	super.Subclasses[cls] = struct{}{}
}

// UnlinkSuperclass removes cls from super's subclass set.
func UnlinkSuperclass(cls, super *Class) {
	delete(super.Subclasses, cls)
}

// LinkMixin records user as having mixed in mixin.
func LinkMixin(user, mixin *Class) {
	if mixin.MixinSubs == nil {
		mixin.MixinSubs = make(map[*Class]struct{})
	}
	mixin.MixinSubs[user] = struct{}{}
}

// UnlinkMixin removes user from mixin's mixin-subs set.
func UnlinkMixin(user, mixin *Class) {
	delete(mixin.MixinSubs, user)
}

// LinkInstance records obj as a direct instance of cls.
func LinkInstance(obj *Object, cls *Class) {
	if cls.Instances == nil {
		cls.Instances = make(map[*Object]struct{})
	}
	cls.Instances[obj] = struct{}{}
}

// UnlinkInstance removes obj from cls's instance set.
func UnlinkInstance(obj *Object, cls *Class) {
	delete(cls.Instances, obj)
}

// HasSubclasses reports whether cls has any registered subclass.
func (c *Class) HasSubclasses() bool { return len(c.Subclasses) > 0 }

// HasMixinSubs reports whether cls is mixed into any other class.
func (c *Class) HasMixinSubs() bool { return len(c.MixinSubs) > 0 }

// HasInstances reports whether cls has any direct instance other than its
// own representative object.
func (c *Class) HasInstances() bool {
	for inst := range c.Instances {
		if inst != c.ThisPtr {
			return true
		}
	}
	return false
}
