package define

import (
	"github.com/katalvlaran/oodispatch/foundation"
	"github.com/katalvlaran/oodispatch/object"
)

// InstallClassMethod creates or replaces the named method on cls.
func InstallClassMethod(cls *object.Class, name string, impl object.MethodImpl, public bool) *object.Method {
	names := cls.Foundation().Names
	key := names.Intern(name)

	m := &object.Method{
		NamePtr:        key,
		Impl:           impl,
		DeclaringClass: cls,
	}
	if public {
		m.Flags = object.FlagPublic
	} else {
		m.Flags = object.FlagPrivate
	}

	if cls.ClassMethods == nil {
		cls.ClassMethods = make(map[*foundation.Name]*object.Method)
	}
	cls.ClassMethods[key] = m
	bumpForClass(cls)

	return m
}

// DeleteClassMethod removes the named method from cls, if present.
func DeleteClassMethod(cls *object.Class, name string) error {
	key := cls.Foundation().Names.Intern(name)
	if _, ok := cls.ClassMethods[key]; !ok {
		return ErrMethodNotFound
	}
	delete(cls.ClassMethods, key)
	bumpForClass(cls)

	return nil
}

// RenameClassMethod moves the method found at oldName to newName. The
// destination must not already be in use.
func RenameClassMethod(cls *object.Class, oldName, newName string) error {
	if oldName == newName {
		return ErrRenameToSelf
	}
	names := cls.Foundation().Names
	oldKey := names.Intern(oldName)
	m, ok := cls.ClassMethods[oldKey]
	if !ok {
		return ErrMethodNotFound
	}
	newKey := names.Intern(newName)
	if _, collision := cls.ClassMethods[newKey]; collision {
		return ErrRenameCollision
	}

	delete(cls.ClassMethods, oldKey)
	m.NamePtr = newKey
	cls.ClassMethods[newKey] = m
	bumpForClass(cls)

	return nil
}

// SetClassMethodVisibility toggles a class method between public and
// private.
func SetClassMethodVisibility(cls *object.Class, name string, public bool) error {
	key := cls.Foundation().Names.Intern(name)
	m, ok := cls.ClassMethods[key]
	if !ok {
		return ErrMethodNotFound
	}
	if public {
		m.Flags = (m.Flags &^ object.FlagPrivate) | object.FlagPublic
	} else {
		m.Flags = (m.Flags &^ object.FlagPublic) | object.FlagPrivate
	}
	bumpForClass(cls)

	return nil
}

// InstallObjectMethod creates or replaces a per-instance method on obj,
// shadowing any class method of the same name for that object alone.
func InstallObjectMethod(obj *object.Object, name string, impl object.MethodImpl, public bool) *object.Method {
	key := obj.Foundation().Names.Intern(name)

	m := &object.Method{NamePtr: key, Impl: impl}
	if public {
		m.Flags = object.FlagPublic
	} else {
		m.Flags = object.FlagPrivate
	}

	if obj.Methods == nil {
		obj.Methods = make(map[*foundation.Name]*object.Method)
	}
	obj.Methods[key] = m
	bumpForObject(obj)

	return m
}

// DeleteObjectMethod removes the named per-instance method from obj.
func DeleteObjectMethod(obj *object.Object, name string) error {
	key := obj.Foundation().Names.Intern(name)
	if _, ok := obj.Methods[key]; !ok {
		return ErrMethodNotFound
	}
	delete(obj.Methods, key)
	bumpForObject(obj)

	return nil
}

// SetConstructor installs cls's constructor, replacing any existing one.
// A nil impl removes it.
func SetConstructor(cls *object.Class, impl object.MethodImpl) {
	if impl == nil {
		cls.Constructor = nil
	} else {
		cls.Constructor = &object.Method{Impl: impl, DeclaringClass: cls, Flags: object.FlagConstructor}
	}
	bumpForClass(cls)
}

// SetDestructor installs cls's destructor, replacing any existing one.
// A nil impl removes it.
func SetDestructor(cls *object.Class, impl object.MethodImpl) {
	if impl == nil {
		cls.Destructor = nil
	} else {
		cls.Destructor = &object.Method{Impl: impl, DeclaringClass: cls, Flags: object.FlagDestructor}
	}
	bumpForClass(cls)
}
