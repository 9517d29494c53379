package oo

import (
	"github.com/katalvlaran/oodispatch/callcache"
	"github.com/katalvlaran/oodispatch/chain"
	"github.com/katalvlaran/oodispatch/object"
)

// Engine owns one object.Foundation and its call-chain cache. Construct
// one per interpreter-equivalent; everything hung off it shares the same
// epoch and name-interning table.
type Engine struct {
	Foundation *object.Foundation
	cache      *callcache.Cache
}

// New bootstraps an Engine: a fresh Foundation (root class, class of
// classes) and an empty call-chain cache.
func New(opts ...object.Option) *Engine {
	return &Engine{
		Foundation: object.New(opts...),
		cache:      callcache.New(),
	}
}

// GetContext resolves (and memoizes) the call chain for invoking
// methodName on obj, honoring public-only visibility when public is
// true. A cache hit costs one map lookup plus the epoch comparison; a
// miss runs chain.Build and, unless the result fell back to the unknown
// handler, stores it for next time.
func (e *Engine) GetContext(obj *object.Object, methodName string, public bool) (*Context, error) {
	key := e.Foundation.Names.Intern(methodName)

	if ch, ok := e.cache.Get(obj, key); ok {
		return &Context{obj: obj, chain: ch}, nil
	}

	ch, err := chain.Build(obj, methodName, public)
	if err != nil {
		return nil, err
	}
	e.cache.Put(obj, key, ch)

	return &Context{obj: obj, chain: ch}, nil
}

// GetConstructorContext resolves the constructor chain for obj's class, bypassing
// the method-name cache entirely (constructors are never memoized, since
// construction is one-shot per object by definition).
func (e *Engine) GetConstructorContext(obj *object.Object) (*Context, error) {
	ch, err := chain.BuildConstructor(obj)
	if err != nil {
		return nil, err
	}

	return &Context{obj: obj, chain: ch}, nil
}

// GetDestructorContext resolves the destructor chain for obj's class.
func (e *Engine) GetDestructorContext(obj *object.Object) (*Context, error) {
	ch, err := chain.BuildDestructor(obj)
	if err != nil {
		return nil, err
	}

	return &Context{obj: obj, chain: ch}, nil
}

// InvalidateObject drops every memoized chain for obj. Structural
// mutators in define already bump the relevant epoch, which is enough
// to make stale entries unreachable; InvalidateObject exists for
// callers who want the memory reclaimed immediately, e.g. before
// deleting obj entirely.
func (e *Engine) InvalidateObject(obj *object.Object) {
	e.cache.InvalidateObject(obj)
}
