package oo

import (
	"github.com/katalvlaran/oodispatch/define"
	"github.com/katalvlaran/oodispatch/diagnose"
	"github.com/katalvlaran/oodispatch/hierarchy"
	"github.com/katalvlaran/oodispatch/names"
	"github.com/katalvlaran/oodispatch/object"
)

// GetSortedMethodList lists obj's visible method names, sorted and
// deduplicated. See names.GetSortedMethodList for the resolution rules.
func GetSortedMethodList(obj *object.Object, publicOnly bool) []string {
	return names.GetSortedMethodList(obj, publicOnly)
}

// SetObjectFilters replaces obj's instance-level filter list.
func SetObjectFilters(obj *object.Object, names []string) {
	define.SetObjectFilters(obj, names)
}

// SetClassFilters replaces cls's filter list.
func SetClassFilters(cls *object.Class, names []string) {
	define.SetClassFilters(cls, names)
}

// SetObjectMixins replaces obj's instance-level mixin list.
func SetObjectMixins(obj *object.Object, classes []*object.Class) {
	define.SetObjectMixins(obj, classes)
}

// SetClassMixins replaces cls's mixin list.
func SetClassMixins(cls *object.Class, classes []*object.Class) {
	define.SetClassMixins(cls, classes)
}

// SetSuperclasses replaces cls's direct superclass list.
func SetSuperclasses(cls *object.Class, supers []*object.Class) error {
	return define.SetSuperclasses(cls, supers)
}

// NewMethod installs a class method on cls.
func NewMethod(cls *object.Class, name string, public bool, impl object.MethodImpl) *object.Method {
	return define.InstallClassMethod(cls, name, impl, public)
}

// NewInstanceMethod installs a per-instance method on obj.
func NewInstanceMethod(obj *object.Object, name string, public bool, impl object.MethodImpl) *object.Method {
	return define.InstallObjectMethod(obj, name, impl, public)
}

// NewForwardMethod installs a method on cls or obj whose body forwards
// to a host command identified by prefix. target must be *object.Class
// or *object.Object.
func NewForwardMethod(target any, name string, public bool, prefix []string, invoker object.CommandInvoker) (*object.Method, error) {
	impl := &object.ForwardImpl{Prefix: prefix, Invoker: invoker}

	switch t := target.(type) {
	case *object.Class:
		return define.InstallClassMethod(t, name, impl, public), nil
	case *object.Object:
		return define.InstallObjectMethod(t, name, impl, public), nil
	default:
		return nil, define.ErrNotAClass
	}
}

// ClassSetConstructor installs cls's constructor.
func ClassSetConstructor(cls *object.Class, impl object.MethodImpl) {
	define.SetConstructor(cls, impl)
}

// ClassSetDestructor installs cls's destructor.
func ClassSetDestructor(cls *object.Class, impl object.MethodImpl) {
	define.SetDestructor(cls, impl)
}

// IsReachable reports whether target is reachable from start through
// superclass and mixin edges.
func IsReachable(target, start *object.Class) bool {
	return hierarchy.IsReachable(target, start)
}

// ResolutionDistance reports how many inheritance/mixin hops separate
// obj from the class that implements name.
func ResolutionDistance(obj *object.Object, name string) (int, *object.Class, error) {
	return diagnose.ResolutionDistance(obj, name)
}
