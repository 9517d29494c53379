package define

import "github.com/katalvlaran/oodispatch/object"

// ChangeObjectClass reassigns obj's direct class to newCls, the
// equivalent of oo::objdefine $obj class $newCls. The root object's own
// representative object, the class of classes' own representative
// object, and any object that is itself a class's representative cannot
// be reclassed this way — a class's "class-ness" is fixed at creation,
// matching the original engine's refusal to let oo::objdefine class
// convert an object into, or out of, being a class.
func ChangeObjectClass(obj *object.Object, newCls *object.Class) error {
	f := obj.Foundation()
	if obj == f.RootClass.ThisPtr || obj == f.ClassOfClasses.ThisPtr {
		return ErrRootModification
	}
	if obj.ClassPtr != nil {
		return ErrClassnessImmutable
	}

	if obj.SelfCls != nil {
		object.UnlinkInstance(obj, obj.SelfCls)
	}
	obj.SelfCls = newCls
	object.LinkInstance(obj, newCls)
	bumpForObject(obj)

	return nil
}
