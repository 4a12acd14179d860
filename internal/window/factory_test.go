package window

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFactory_CreateBindsViewModel(t *testing.T) {
	ws := &workshop{}
	f := NewFactory(ws.registry())
	vm := &struct{ Title string }{"prefs"}

	h, err := f.Create("preferences", vm)

	require.NoError(t, err)
	assert.Equal(t, "views.preferences", h.Name)
	assert.Equal(t, "preferences", h.Key)
	assert.Same(t, ws.last(), h.Window)
	assert.Same(t, vm, ws.last().context)
}

func TestFactory_CreateWithoutViewModelLeavesContextUnset(t *testing.T) {
	ws := &workshop{}
	f := NewFactory(ws.registry())

	_, err := f.Create("About", nil)

	require.NoError(t, err)
	assert.Nil(t, ws.last().context)
}

func TestFactory_AlwaysCreatesFreshInstances(t *testing.T) {
	ws := &workshop{}
	f := NewFactory(ws.registry())

	h1, err := f.Create("About", nil)
	require.NoError(t, err)
	h2, err := f.Create("About", nil)
	require.NoError(t, err)

	assert.NotSame(t, h1.Window, h2.Window)
	assert.NotEqual(t, h1.ID, h2.ID)
}

func TestFactory_UnknownKey(t *testing.T) {
	f := NewFactory((&workshop{}).registry())

	_, err := f.Create("Blame", nil)

	require.ErrorIs(t, err, ErrWindowTypeNotFound)
	assert.Contains(t, err.Error(), "views.Blame")
}

func TestFactory_QualifiedKeyBypassesNamespace(t *testing.T) {
	ws := &workshop{}
	var asked []string
	fallback := ResolverFunc(func(name string) (Kind, bool) {
		asked = append(asked, name)
		if name == "Some.Other.Window" {
			return Kind{Name: name, New: ws.newWindow(name)}, true
		}
		return Kind{}, false
	})
	f := NewFactory(ws.registry(), fallback)

	h, err := f.Create("Some.Other.Window", nil)

	require.NoError(t, err)
	assert.Equal(t, "Some.Other.Window", h.Name)
	assert.Equal(t, []string{"Some.Other.Window"}, asked, "no namespace prefix applied")
	assert.Equal(t, "Some.Other.Window", ws.last().kind)
}

func TestFactory_OwnNamespaceBeforeFallbacks(t *testing.T) {
	ws := &workshop{}
	called := false
	fallback := ResolverFunc(func(string) (Kind, bool) {
		called = true
		return Kind{}, false
	})
	f := NewFactory(ws.registry(), fallback)

	h, err := f.Create("views.Hotkeys", nil)

	require.NoError(t, err)
	assert.Equal(t, "views.Hotkeys", h.Name)
	assert.Equal(t, "Hotkeys", ws.last().kind)
	assert.False(t, called)
}

func TestFactory_FallbackChainInOrder(t *testing.T) {
	ws := &workshop{}
	var order []string
	first := ResolverFunc(func(string) (Kind, bool) {
		order = append(order, "first")
		return Kind{}, false
	})
	second := ResolverFunc(func(name string) (Kind, bool) {
		order = append(order, "second")
		return Kind{Name: "Plugin", New: ws.newWindow("Plugin")}, true
	})
	f := NewFactory(ws.registry(), first, second)

	_, err := f.Create("Stash", nil)

	require.NoError(t, err)
	assert.Equal(t, []string{"first", "second"}, order)
}

func TestFactory_InstantiationFailures(t *testing.T) {
	reg := MustRegistry("",
		Entry{Key: "Text", Kind: Kind{New: func() any { return "plain string" }}},
		Entry{Key: "Nil", Kind: Kind{New: func() any { return nil }}},
		Entry{Key: "Panics", Kind: Kind{New: func() any { panic("no display") }}},
		Entry{Key: "TypedNil", Kind: Kind{New: func() any {
			var w *fakeWindow
			return w
		}}},
	)
	f := NewFactory(reg)

	for _, key := range []string{"Text", "Nil", "Panics", "TypedNil"} {
		t.Run(key, func(t *testing.T) {
			var h *Handle
			var err error
			require.NotPanics(t, func() { h, err = f.Create(key, "view-model") })
			require.ErrorIs(t, err, ErrWindowInstantiationFailed)
			assert.Nil(t, h)
		})
	}
}
