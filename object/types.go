package object

import "github.com/katalvlaran/oodispatch/foundation"

// Flags is the shared bitmask threaded through Method, Object and the call
// context. Only the bits declared below are defined.
type Flags uint32

const (
	// FlagPublic marks a method callable from outside its declaring scope.
	FlagPublic Flags = 1 << iota
	// FlagPrivate marks a method only callable from within the declaring
	// class's own method bodies dispatching on a direct instance.
	FlagPrivate
	// FlagConstructor selects the constructor slot instead of a named method.
	FlagConstructor
	// FlagDestructor selects the destructor slot instead of a named method.
	FlagDestructor
	// FlagFilterHandling marks a context built or running while already
	// inside a filter step, suppressing further filter injection.
	FlagFilterHandling
	// FlagUnknownMethod marks a context that resolved to the unknown
	// handler rather than a real implementation; such a context is never
	// cacheable (see chain.Build).
	FlagUnknownMethod
)

// Has reports whether all bits of want are set in f.
func (f Flags) Has(want Flags) bool { return f&want == want }

// Any reports whether any bit of want is set in f.
func (f Flags) Any(want Flags) bool { return f&want != 0 }

// Invocation is the surface a MethodImpl body sees: the ability to
// continue the call chain via Next, plus read-only introspection of the
// context it is running in. invoke.Context is the sole implementation;
// it lives in a separate package so MethodImpl can be declared here
// without object importing invoke.
type Invocation interface {
	// Next advances to the following chain entry and invokes it,
	// restoring position on return. Returns invoke.ErrNoNextMethod if
	// already at the last entry.
	Next(args []string) (string, error)
	// Object returns the object this invocation is dispatching against.
	Object() *Object
	// Method returns the Method implementation executing this step.
	Method() *Method
	// IsFiltering reports whether the current step is a filter step.
	IsFiltering() bool
	// SkippedArgs is the number of leading argument-vector slots the host
	// strips before presenting args to the method body (normally 2: the
	// object name and the method name).
	SkippedArgs() int
}

// MethodImpl is the polymorphic method-body descriptor. A Method with a
// nil Impl is a visibility-only placeholder: it is never invoked, and
// chain construction skips it entirely, so its Flags do not shadow
// inherited visibility there. Its Flags are read only by
// names.GetSortedMethodList.
type MethodImpl interface {
	Call(inv Invocation, args []string) (string, error)
}

// CommandInvoker is the external collaborator a ForwardImpl delegates to:
// the host's command registry. Out of scope for this module (spec §1);
// only its calling convention matters here.
type CommandInvoker interface {
	InvokeCommand(prefix []string, args []string) (string, error)
}

// ForwardImpl is a MethodImpl whose body calls a host command named by a
// fixed prefix, with the prefix prepended to the call's own arguments.
type ForwardImpl struct {
	Prefix  []string
	Invoker CommandInvoker
}

// Call implements MethodImpl by delegating to the host command registry.
func (f *ForwardImpl) Call(inv Invocation, args []string) (string, error) {
	return f.Invoker.InvokeCommand(f.Prefix, args)
}

// Method is one implementation record, either declared on a Class
// (DeclaringClass != nil) or directly on an Object (DeclaringClass == nil).
type Method struct {
	NamePtr        *foundation.Name
	Impl           MethodImpl // nil => visibility-only placeholder
	Flags          Flags      // FlagPublic / FlagPrivate
	DeclaringClass *Class     // nil if declared on an object instance

	// PinCount mirrors Tcl_Preserve/Tcl_Release: invoke.Invoke increments
	// it for every entry in a chain before running the first step and
	// decrements on return, so a method body that deletes its own Method
	// record mid-call does not corrupt the chain currently running it.
	// Go's GC already keeps the record alive via the chain's own
	// reference; PinCount exists so tooling and tests can observe
	// "still in use" rather than for memory safety.
	PinCount int32
}

// IsPlaceholder reports whether this Method carries no implementation and
// exists only to shadow visibility.
func (m *Method) IsPlaceholder() bool { return m == nil || m.Impl == nil }

// Object is one instance in the class graph.
type Object struct {
	owner *Foundation

	SelfCls  *Class // the class this object is a direct instance of
	ClassPtr *Class // non-nil iff this object is also a class's representative

	Methods map[*foundation.Name]*Method // per-instance methods, nil if none
	Mixins  []*Class                     // ordered instance mixins
	Filters []*foundation.Name           // ordered instance filters

	Epoch          foundation.Epoch // bumped when only this object's chains can be stale
	CreationEpoch  uint64           // stamped once at construction
	FilterHandling bool             // FlagFilterHandling, scoped save/restore during invoke
}

// Foundation returns the Foundation this object belongs to.
func (o *Object) Foundation() *Foundation { return o.owner }

// Class is one class node in the graph: its method table, its place in
// the superclass/subclass and mixin/mixinSub lattices, and its cached
// linearization.
type Class struct {
	owner *Foundation

	ThisPtr *Object // the class's own representative object

	Superclasses []*Class          // ordered
	Subclasses   map[*Class]struct{} // back-edge set
	Mixins       []*Class          // ordered
	MixinSubs    map[*Class]struct{} // back-edge set: classes that mix this one in
	Instances    map[*Object]struct{} // back-edge set: selfCls==this or mixins contains this

	ClassMethods map[*foundation.Name]*Method
	Filters      []*foundation.Name
	Constructor  *Method
	Destructor   *Method

	Hierarchy      []*Class // cached linearization, root excluded
	HierarchyEpoch uint64   // stamp against foundation.Epoch
}

// Foundation returns the Foundation this class belongs to.
func (c *Class) Foundation() *Foundation { return c.owner }

// newObject allocates a bare Object wired to f. Callers (Foundation
// bootstrap, define.NewObject) are responsible for setting SelfCls.
func newObject(f *Foundation) *Object {
	return &Object{
		owner:         f,
		CreationEpoch: f.nextCreationStamp(),
	}
}

// newClass allocates a bare Class with an empty representative object and
// wires both together. Callers are responsible for Superclasses.
func newClass(f *Foundation) *Class {
	cls := &Class{
		owner:      f,
		Subclasses: make(map[*Class]struct{}),
		MixinSubs:  make(map[*Class]struct{}),
		Instances:  make(map[*Object]struct{}),
	}
	obj := newObject(f)
	obj.ClassPtr = cls
	cls.ThisPtr = obj
	return cls
}
