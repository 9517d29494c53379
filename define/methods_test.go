package define

import (
	"testing"

	"github.com/katalvlaran/oodispatch/object"
)

type noopImpl struct{}

func (noopImpl) Call(object.Invocation, []string) (string, error) { return "", nil }

func TestInstallAndDeleteClassMethod(t *testing.T) {
	f := object.New()
	cls := f.NewClass()
	_ = f.NewClass(cls) // gives cls a subclass, so its global epoch bump is not elided
	epochBefore := f.Epoch.Value()

	InstallClassMethod(cls, "greet", noopImpl{}, true)
	if epochAfter := f.Epoch.Value(); epochAfter <= epochBefore {
		t.Error("InstallClassMethod on a class with instances/subclasses did not bump the global epoch")
	}
	if err := DeleteClassMethod(cls, "greet"); err != nil {
		t.Fatalf("DeleteClassMethod: %v", err)
	}
	if err := DeleteClassMethod(cls, "greet"); err != ErrMethodNotFound {
		t.Fatalf("second delete = %v, want ErrMethodNotFound", err)
	}
}

func TestInstallClassMethodOnLeafBumpsOnlyObjectEpochWhenMixinPresent(t *testing.T) {
	f := object.New()
	mixin := f.NewClass()
	leaf := f.NewClass()
	leaf.ThisPtr.Mixins = []*object.Class{mixin}
	globalBefore := f.Epoch.Value()
	objEpochBefore := leaf.ThisPtr.Epoch.Value()

	InstallClassMethod(leaf, "greet", noopImpl{}, true)

	if f.Epoch.Value() != globalBefore {
		t.Error("leaf class with no dependents bumped the global epoch")
	}
	if leaf.ThisPtr.Epoch.Value() <= objEpochBefore {
		t.Error("leaf class whose representative object has mixins did not bump that object's epoch")
	}
}

func TestRenameClassMethodRejectsCollisionAndSelfRename(t *testing.T) {
	f := object.New()
	cls := f.NewClass()
	InstallClassMethod(cls, "a", noopImpl{}, true)
	InstallClassMethod(cls, "b", noopImpl{}, true)

	if err := RenameClassMethod(cls, "a", "a"); err != ErrRenameToSelf {
		t.Fatalf("rename to self = %v, want ErrRenameToSelf", err)
	}
	if err := RenameClassMethod(cls, "a", "b"); err != ErrRenameCollision {
		t.Fatalf("rename onto existing name = %v, want ErrRenameCollision", err)
	}
	if err := RenameClassMethod(cls, "a", "c"); err != nil {
		t.Fatalf("valid rename failed: %v", err)
	}
	if err := DeleteClassMethod(cls, "c"); err != nil {
		t.Fatalf("renamed method not found at destination: %v", err)
	}
}

func TestSetClassMethodVisibility(t *testing.T) {
	f := object.New()
	cls := f.NewClass()
	InstallClassMethod(cls, "x", noopImpl{}, false)

	if err := SetClassMethodVisibility(cls, "x", true); err != nil {
		t.Fatal(err)
	}
	key := f.Names.Intern("x")
	if !cls.ClassMethods[key].Flags.Has(object.FlagPublic) {
		t.Error("method not marked public after SetClassMethodVisibility(true)")
	}
}

func TestInstanceMethodShadowingIsPerObject(t *testing.T) {
	f := object.New()
	cls := f.NewClass()
	a := NewObject(cls)
	b := NewObject(cls)

	InstallObjectMethod(a, "only-a", noopImpl{}, true)
	if _, ok := b.Methods[f.Names.Intern("only-a")]; ok {
		t.Error("instance method leaked from a to b")
	}
}
