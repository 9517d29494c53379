package object

import (
	"sync/atomic"

	"github.com/katalvlaran/oodispatch/foundation"
)

// Well-known method names given fixed interned slots at bootstrap so
// chain construction never has to special-case a string literal.
const (
	unknownMethodName = "unknown"
	destroyMethodName = "destroy"
)

// Option configures a Foundation before it is returned by New. Later
// options override earlier ones, following the teacher's functional
// option convention (see builder.BuilderOption, core.GraphOption).
type Option func(f *Foundation)

// WithUnknownHandlerName overrides the method name dispatched when no
// call-chain entry resolves for the requested method. Defaults to
// "unknown". A nil or empty name is a no-op.
func WithUnknownHandlerName(name string) Option {
	return func(f *Foundation) {
		if name != "" {
			f.UnknownName = f.Names.Intern(name)
		}
	}
}

// Foundation owns process-wide state for one dispatch-core instance: the
// global epoch, the interned name table, the two bootstrap classes every
// object graph is rooted at, and the monotonic creation-epoch counter.
//
// Foundation is not safe for concurrent mutation — object graphs built on
// top of it are single-threaded and cooperative by design (an epoch bump
// racing a cache-validity check would defeat the whole point of the
// cache), the one deliberate departure from the teacher's RWMutex-guarded
// core.Graph.
type Foundation struct {
	Epoch foundation.Epoch
	Names *foundation.Names

	// RootClass is the common ancestor of every class: "the object the
	// class of classes is itself an instance of" transitively bottoms
	// out here. It declares no methods of its own.
	RootClass *Class
	// ClassOfClasses is the class every Class's representative Object is
	// a direct instance of. Its own representative object is, in turn,
	// a direct instance of itself.
	ClassOfClasses *Class

	UnknownName *foundation.Name

	nextCreation uint64
}

// New bootstraps a Foundation with its root class and class-of-classes
// wired together the way TclOO wires oo::object and oo::class: the class
// of classes is itself a class (ClassPtr != nil), is itself an instance
// of itself, and has the root class as its single superclass. The root
// class's representative object is a direct instance of the class of
// classes.
func New(opts ...Option) *Foundation {
	f := &Foundation{
		Names: foundation.NewNames(),
	}
	f.UnknownName = f.Names.Intern(unknownMethodName)

	root := newClass(f)
	meta := newClass(f)

	root.ThisPtr.SelfCls = meta
	meta.ThisPtr.SelfCls = meta

	meta.Superclasses = []*Class{root}
	root.Subclasses = map[*Class]struct{}{}
	root.Subclasses[meta] = struct{}{}

	meta.Instances[meta.ThisPtr] = struct{}{}
	meta.Instances[root.ThisPtr] = struct{}{}

	f.RootClass = root
	f.ClassOfClasses = meta

	for _, opt := range opts {
		opt(f)
	}

	return f
}

// nextCreationStamp returns a fresh, monotonically increasing value used
// to distinguish an Object or Class rebuilt at the same Go address from
// the one the cache last saw (see CreationEpoch).
func (f *Foundation) nextCreationStamp() uint64 {
	return atomic.AddUint64(&f.nextCreation, 1)
}

// NewRootObject allocates a bare, directly-instantiable object of
// RootClass — the equivalent of [oo::object new] with no class argument.
func (f *Foundation) NewRootObject() *Object {
	obj := newObject(f)
	obj.SelfCls = f.RootClass
	f.RootClass.Instances[obj] = struct{}{}

	return obj
}

// NewClass allocates a new class whose representative object is a direct
// instance of ClassOfClasses, with superclasses set to supers (RootClass
// is implied if supers is empty, matching oo::class create's default).
func (f *Foundation) NewClass(supers ...*Class) *Class {
	cls := newClass(f)
	cls.ThisPtr.SelfCls = f.ClassOfClasses
	f.ClassOfClasses.Instances[cls.ThisPtr] = struct{}{}

	if len(supers) == 0 {
		supers = []*Class{f.RootClass}
	}
	cls.Superclasses = append([]*Class(nil), supers...)
	for _, super := range supers {
		if super.Subclasses == nil {
			super.Subclasses = make(map[*Class]struct{})
		}
		super.Subclasses[cls] = struct{}{}
	}

	return cls
}
