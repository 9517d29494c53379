package callcache

import (
	"testing"

	"github.com/katalvlaran/oodispatch/chain"
	"github.com/katalvlaran/oodispatch/object"
)

func TestPutThenGetHits(t *testing.T) {
	f := object.New()
	obj := f.NewRootObject()
	name := f.Names.Intern("greet")
	c := New()
	ch := &chain.Chain{Entries: []chain.Entry{{}}}

	c.Put(obj, name, ch)
	got, ok := c.Get(obj, name)
	if !ok || got != ch {
		t.Fatalf("Get after Put = (%v, %v), want (ch, true)", got, ok)
	}
}

func TestGlobalEpochBumpInvalidatesCache(t *testing.T) {
	f := object.New()
	obj := f.NewRootObject()
	name := f.Names.Intern("greet")
	c := New()
	c.Put(obj, name, &chain.Chain{Entries: []chain.Entry{{}}})

	f.Epoch.Bump()

	if _, ok := c.Get(obj, name); ok {
		t.Fatal("cache hit survived a global epoch bump")
	}
}

func TestPerObjectEpochBumpInvalidatesOnlyThatObject(t *testing.T) {
	f := object.New()
	a := f.NewRootObject()
	b := f.NewRootObject()
	name := f.Names.Intern("greet")
	c := New()
	c.Put(a, name, &chain.Chain{Entries: []chain.Entry{{}}})
	c.Put(b, name, &chain.Chain{Entries: []chain.Entry{{}}})

	a.Epoch.Bump()

	if _, ok := c.Get(a, name); ok {
		t.Error("a's cache entry survived a's own epoch bump")
	}
	if _, ok := c.Get(b, name); !ok {
		t.Error("b's cache entry was invalidated by a's epoch bump")
	}
}

func TestUnknownMethodChainIsNeverCached(t *testing.T) {
	f := object.New()
	obj := f.NewRootObject()
	name := f.Names.Intern("greet")
	c := New()

	c.Put(obj, name, &chain.Chain{Entries: []chain.Entry{{}}, Flags: object.FlagUnknownMethod})

	if _, ok := c.Get(obj, name); ok {
		t.Fatal("unknown-method chain was cached")
	}
}

func TestFilterHandlingChainIsNeverCached(t *testing.T) {
	f := object.New()
	obj := f.NewRootObject()
	name := f.Names.Intern("greet")
	c := New()

	c.Put(obj, name, &chain.Chain{Entries: []chain.Entry{{}}, Flags: object.FlagFilterHandling})

	if _, ok := c.Get(obj, name); ok {
		t.Fatal("chain built mid-filter-dispatch was cached")
	}
}

func TestInvalidateObjectDropsAllEntries(t *testing.T) {
	f := object.New()
	obj := f.NewRootObject()
	name := f.Names.Intern("greet")
	c := New()
	c.Put(obj, name, &chain.Chain{Entries: []chain.Entry{{}}})

	c.InvalidateObject(obj)

	if _, ok := c.Get(obj, name); ok {
		t.Fatal("entry survived InvalidateObject")
	}
}
