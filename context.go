package oo

import (
	"github.com/katalvlaran/oodispatch/chain"
	"github.com/katalvlaran/oodispatch/invoke"
	"github.com/katalvlaran/oodispatch/object"
)

// Context is a resolved, ready-to-run call chain bound to one object.
// Obtain one via Engine.GetContext, Engine.GetConstructorContext or
// Engine.GetDestructorContext.
type Context struct {
	obj   *object.Object
	chain *chain.Chain
}

// ReleaseContext exists for symmetry with the original engine's
// acquire/release pairing around a call context. Go's garbage collector
// reclaims a Context as soon as nothing references it, so this is a
// no-op; callers may still call it to mark a Context as no longer in use.
func ReleaseContext(ctx *Context) {}

// InvokeContext runs ctx against args from its first chain entry.
func InvokeContext(ctx *Context, args []string) (string, error) {
	return invoke.Invoke(ctx.obj, ctx.chain, args)
}

// InvokeNext is exposed for hosts that drive invocation one step at a
// time rather than through InvokeContext; ordinary method bodies should
// instead call Next on the object.Invocation they are handed.
func InvokeNext(run *invoke.Context, args []string) (string, error) {
	return run.Next(args)
}

// IsUnknown reports whether ctx resolved via the unknown-method fallback
// rather than a real implementation.
func (c *Context) IsUnknown() bool {
	return c.chain.Flags.Has(object.FlagUnknownMethod)
}
