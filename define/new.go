package define

import "github.com/katalvlaran/oodispatch/object"

// NewObject allocates a new direct instance of cls.
func NewObject(cls *object.Class) *object.Object {
	f := cls.Foundation()
	obj := f.NewRootObject()
	object.UnlinkInstance(obj, f.RootClass)
	obj.SelfCls = cls
	object.LinkInstance(obj, cls)

	return obj
}

// NewClass allocates a new class with the given direct superclasses
// (RootClass if none given).
func NewClass(f *object.Foundation, supers ...*object.Class) *object.Class {
	return f.NewClass(supers...)
}
