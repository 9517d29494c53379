package chain

import (
	"testing"

	"github.com/katalvlaran/oodispatch/define"
	"github.com/katalvlaran/oodispatch/object"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fnImpl func(inv object.Invocation, args []string) (string, error)

func (f fnImpl) Call(inv object.Invocation, args []string) (string, error) {
	return f(inv, args)
}

func constImpl(s string) fnImpl {
	return func(object.Invocation, []string) (string, error) { return s, nil }
}

func TestBuildResolvesClassMethod(t *testing.T) {
	f := object.New()
	cls := f.NewClass()
	obj := define.NewObject(cls)
	define.InstallClassMethod(cls, "greet", constImpl("class"), true)

	ch, err := Build(obj, "greet", true)
	require.NoError(t, err)
	require.Len(t, ch.Entries, 1)
	assert.False(t, ch.Flags.Has(object.FlagUnknownMethod))
}

func TestBuildInstanceMethodShadowsClassMethod(t *testing.T) {
	f := object.New()
	cls := f.NewClass()
	obj := define.NewObject(cls)
	define.InstallClassMethod(cls, "greet", constImpl("class"), true)
	define.InstallObjectMethod(obj, "greet", constImpl("instance"), true)

	ch, err := Build(obj, "greet", true)
	require.NoError(t, err)
	require.Len(t, ch.Entries, 2)
	got, err := ch.Entries[0].Method.Impl.Call(nil, nil)
	require.NoError(t, err)
	assert.Equal(t, "instance", got)
}

func TestBuildMixinOverridesClassMethod(t *testing.T) {
	f := object.New()
	mixin := f.NewClass()
	cls := f.NewClass()
	define.SetClassMixins(cls, []*object.Class{mixin})
	obj := define.NewObject(cls)

	define.InstallClassMethod(cls, "greet", constImpl("class"), true)
	define.InstallClassMethod(mixin, "greet", constImpl("mixin"), true)

	ch, err := Build(obj, "greet", true)
	require.NoError(t, err)
	got, _ := ch.Entries[0].Method.Impl.Call(nil, nil)
	assert.Equal(t, "mixin", got)
}

func TestBuildFallsBackToUnknown(t *testing.T) {
	f := object.New()
	cls := f.NewClass()
	obj := define.NewObject(cls)
	define.InstallClassMethod(cls, "unknown", constImpl("unknown-handler"), true)

	ch, err := Build(obj, "noSuchMethod", true)
	require.NoError(t, err)
	assert.True(t, ch.Flags.Has(object.FlagUnknownMethod))
	assert.Equal(t, 1, ch.SkippedArgs)
}

func TestBuildFallsThroughToUnknownWhenPrivateMethodIsNotVisible(t *testing.T) {
	f := object.New()
	cls := f.NewClass()
	obj := define.NewObject(cls)
	define.InstallClassMethod(cls, "secret", constImpl("x"), false)
	define.InstallClassMethod(cls, "unknown", constImpl("unknown-handler"), true)

	ch, err := Build(obj, "secret", true)
	require.NoError(t, err)
	assert.True(t, ch.Flags.Has(object.FlagUnknownMethod))
}

func TestBuildReturnsNoSuchMethodWhenPrivateMethodNotVisibleAndNoUnknownHandler(t *testing.T) {
	f := object.New()
	cls := f.NewClass()
	obj := define.NewObject(cls)
	define.InstallClassMethod(cls, "secret", constImpl("x"), false)

	_, err := Build(obj, "secret", true)
	assert.ErrorIs(t, err, ErrNoSuchMethod)
}

func TestBuildGatesOutPrivateAncestorMethodForSubclassInstance(t *testing.T) {
	f := object.New()
	base := f.NewClass()
	derived := f.NewClass(base)
	obj := define.NewObject(derived)
	define.InstallClassMethod(base, "m", constImpl("base-private"), false)
	define.InstallClassMethod(derived, "m", constImpl("derived-public"), true)

	ch, err := Build(obj, "m", true)
	require.NoError(t, err)
	require.Len(t, ch.Entries, 1, "base's private m must be gated out, leaving only derived's public m")
	got, _ := ch.Entries[0].Method.Impl.Call(nil, nil)
	assert.Equal(t, "derived-public", got)
}

func TestBuildAllowsPrivateAncestorMethodWhenCallerAllowsPrivate(t *testing.T) {
	f := object.New()
	base := f.NewClass()
	derived := f.NewClass(base)
	obj := define.NewObject(derived)
	define.InstallClassMethod(base, "m", constImpl("base-private"), false)
	define.InstallClassMethod(derived, "m", constImpl("derived-public"), true)

	ch, err := Build(obj, "m", false)
	require.NoError(t, err)
	require.Len(t, ch.Entries, 2, "a private-capable caller sees both the derived and base implementations")
}

func TestBuildSkipsVisibilityPlaceholder(t *testing.T) {
	f := object.New()
	cls := f.NewClass()
	obj := define.NewObject(cls)
	define.InstallClassMethod(cls, "ghost", nil, true)
	define.InstallClassMethod(cls, "unknown", constImpl("unknown-handler"), true)

	ch, err := Build(obj, "ghost", true)
	require.NoError(t, err)
	assert.True(t, ch.Flags.Has(object.FlagUnknownMethod), "a nil-Impl placeholder must never satisfy dispatch on its own")
}

func TestBuildSkipsFilterInjectionWhenAlreadyFilterHandling(t *testing.T) {
	f := object.New()
	cls := f.NewClass()
	obj := define.NewObject(cls)
	define.InstallClassMethod(cls, "greet", constImpl("core"), true)
	define.InstallClassMethod(cls, "logIt", constImpl("filter"), true)
	define.SetClassFilters(cls, []string{"logIt"})

	obj.FilterHandling = true
	ch, err := Build(obj, "greet", true)
	require.NoError(t, err)
	require.Len(t, ch.Entries, 1, "no filter should be injected while the object is mid-filter-dispatch")
	assert.True(t, ch.Flags.Has(object.FlagFilterHandling))
}

func TestBuildAllowsPrivateMethodWhenPublicNotRequired(t *testing.T) {
	f := object.New()
	cls := f.NewClass()
	obj := define.NewObject(cls)
	define.InstallClassMethod(cls, "secret", constImpl("x"), false)

	ch, err := Build(obj, "secret", false)
	require.NoError(t, err)
	require.Len(t, ch.Entries, 1)
}

func TestBuildPrependsFilters(t *testing.T) {
	f := object.New()
	cls := f.NewClass()
	obj := define.NewObject(cls)
	define.InstallClassMethod(cls, "greet", constImpl("core"), true)
	define.InstallClassMethod(cls, "logIt", constImpl("filter"), true)
	define.SetClassFilters(cls, []string{"logIt"})

	ch, err := Build(obj, "greet", true)
	require.NoError(t, err)
	require.Len(t, ch.Entries, 2)
	assert.True(t, ch.Entries[0].IsFilter)
	assert.False(t, ch.Entries[1].IsFilter)
}

func TestBuildConstructorAndDestructorSkipFilters(t *testing.T) {
	f := object.New()
	cls := f.NewClass()
	obj := define.NewObject(cls)
	define.SetConstructor(cls, constImpl("ctor"))
	define.SetDestructor(cls, constImpl("dtor"))
	define.SetClassFilters(cls, []string{"logIt"})

	ctorChain, err := BuildConstructor(obj)
	require.NoError(t, err)
	assert.Len(t, ctorChain.Entries, 1)

	dtorChain, err := BuildDestructor(obj)
	require.NoError(t, err)
	assert.Len(t, dtorChain.Entries, 1)
}
