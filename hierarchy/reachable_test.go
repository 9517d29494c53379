package hierarchy

import (
	"testing"

	"github.com/katalvlaran/oodispatch/object"
)

func TestIsReachableThroughSuperclass(t *testing.T) {
	f := object.New()
	a := f.NewClass()
	b := f.NewClass(a)

	if !IsReachable(a, b) {
		t.Error("IsReachable(a, b) = false, want true (b's superclass is a)")
	}
	if IsReachable(b, a) {
		t.Error("IsReachable(b, a) = true, want false (a does not derive from b)")
	}
	if !IsReachable(b, b) {
		t.Error("IsReachable(b, b) = false, want true (a class is reachable from itself)")
	}
}

func TestIsReachableThroughMixin(t *testing.T) {
	f := object.New()
	mixin := f.NewClass()
	host := f.NewClass()
	host.Mixins = []*object.Class{mixin}

	if !IsReachable(mixin, host) {
		t.Error("IsReachable through a mixin edge = false, want true")
	}
}
