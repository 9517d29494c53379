package invoke

import (
	"sync/atomic"

	"github.com/katalvlaran/oodispatch/chain"
	"github.com/katalvlaran/oodispatch/object"
)

// Context is a single running dispatch: the object being called, the
// resolved chain, and the cursor identifying which entry runs next.
// Context implements object.Invocation.
type Context struct {
	obj   *object.Object
	ch    *chain.Chain
	index int
}

var _ object.Invocation = (*Context)(nil)

// Invoke runs ch against obj with args, starting at the first entry.
// It pins every Method in the chain for the duration of the call.
func Invoke(obj *object.Object, ch *chain.Chain, args []string) (string, error) {
	if ch == nil || len(ch.Entries) == 0 {
		return "", ErrEmptyChain
	}

	for i := range ch.Entries {
		atomic.AddInt32(&ch.Entries[i].Method.PinCount, 1)
	}
	defer func() {
		for i := range ch.Entries {
			atomic.AddInt32(&ch.Entries[i].Method.PinCount, -1)
		}
	}()

	ctx := &Context{obj: obj, ch: ch, index: -1}

	return ctx.Next(args)
}

// Next advances to and runs the following chain entry. MethodImpl
// bodies call this (through the Invocation they are handed) to continue
// down the chain; the last entry's Next returns ErrNoNextMethod. The
// cursor is restored to the calling step's position on return.
func (c *Context) Next(args []string) (string, error) {
	prev := c.index
	defer func() { c.index = prev }()
	c.index++
	if c.index >= len(c.ch.Entries) {
		c.index = len(c.ch.Entries)
		return "", ErrNoNextMethod
	}

	entry := c.ch.Entries[c.index]
	if entry.Method == nil || entry.Method.Impl == nil {
		return c.Next(args)
	}

	// §4.7: obj.FILTER_HANDLING = stepIsFilter OR the incoming value, for
	// the duration of this step only, so a re-entrant Build triggered
	// from within a filter (or from within a step already nested inside
	// one) sees filter-handling in effect and skips filter injection.
	// Restored on return so sibling, non-nested dispatches on the same
	// object still get their filters.
	saved := c.obj.FilterHandling
	c.obj.FilterHandling = entry.IsFilter || saved
	defer func() { c.obj.FilterHandling = saved }()

	return entry.Method.Impl.Call(c, args)
}

// Object implements object.Invocation.
func (c *Context) Object() *object.Object { return c.obj }

// Method implements object.Invocation, returning the Method currently
// executing (nil before the first Next call).
func (c *Context) Method() *object.Method {
	if c.index < 0 || c.index >= len(c.ch.Entries) {
		return nil
	}

	return c.ch.Entries[c.index].Method
}

// IsFiltering implements object.Invocation.
func (c *Context) IsFiltering() bool {
	if c.index < 0 || c.index >= len(c.ch.Entries) {
		return false
	}

	return c.ch.Entries[c.index].IsFilter
}

// SkippedArgs implements object.Invocation.
func (c *Context) SkippedArgs() int { return c.ch.SkippedArgs }

// IsUnknown reports whether this invocation fell back to the unknown
// handler (no real implementation matched).
func (c *Context) IsUnknown() bool { return c.ch.Flags.Has(object.FlagUnknownMethod) }
