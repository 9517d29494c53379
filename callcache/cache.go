package callcache

import (
	"github.com/katalvlaran/oodispatch/chain"
	"github.com/katalvlaran/oodispatch/foundation"
	"github.com/katalvlaran/oodispatch/object"
)

type stamp struct {
	global   uint64
	local    uint64
	creation uint64
}

type slot struct {
	chain *chain.Chain
	stamp stamp
}

// Cache is a per-object, per-method-name memo table for resolved chains.
// Not safe for concurrent use, consistent with the rest of this module's
// single-threaded, cooperative design.
type Cache struct {
	byObject map[*object.Object]map[*foundation.Name]*slot
}

// New returns an empty Cache.
func New() *Cache {
	return &Cache{byObject: make(map[*object.Object]map[*foundation.Name]*slot)}
}

// Get returns the cached chain for (obj, name) if one exists and its
// stamp is still current.
func (c *Cache) Get(obj *object.Object, name *foundation.Name) (*chain.Chain, bool) {
	perObj, ok := c.byObject[obj]
	if !ok {
		return nil, false
	}
	s, ok := perObj[name]
	if !ok {
		return nil, false
	}
	if !c.valid(obj, s.stamp) {
		delete(perObj, name)
		return nil, false
	}

	return s.chain, true
}

// Put memoizes ch for (obj, name), unless ch is flagged as resolved via
// the unknown-method fallback (a later definition of the real method
// must always be seen on the next call) or as built while the object
// was already mid-filter-dispatch (object.FlagFilterHandling) — that
// chain omits filters that a later, non-nested call on the same object
// must still see, so it must never be memoized under the ordinary slot.
func (c *Cache) Put(obj *object.Object, name *foundation.Name, ch *chain.Chain) {
	if ch.Flags.Has(object.FlagUnknownMethod) || ch.Flags.Has(object.FlagFilterHandling) {
		return
	}
	perObj, ok := c.byObject[obj]
	if !ok {
		perObj = make(map[*foundation.Name]*slot)
		c.byObject[obj] = perObj
	}
	perObj[name] = &slot{
		chain: ch,
		stamp: stamp{
			global:   obj.Foundation().Epoch.Value(),
			local:    obj.Epoch.Value(),
			creation: obj.CreationEpoch,
		},
	}
}

// InvalidateObject drops every cached entry for obj, e.g. when obj is
// being torn down via ChangeObjectClass or deletion.
func (c *Cache) InvalidateObject(obj *object.Object) {
	delete(c.byObject, obj)
}

func (c *Cache) valid(obj *object.Object, s stamp) bool {
	return s.global == obj.Foundation().Epoch.Value() &&
		s.local == obj.Epoch.Value() &&
		s.creation == obj.CreationEpoch
}
