package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yllada/exforms/paint"
)

func newTestRegistrar() *Registrar {
	return NewRegistrar()
}

func TestRegister_BindsTree(t *testing.T) {
	name := newFakeField("name", paint.WindowText, paint.Window)
	label := newFakeWidget(paint.ControlText, paint.Control)
	box := newFakeBox("box", label, name)
	root := newFakeBox("root", box)

	r := newTestRegistrar()
	r.Register(root)

	assert.True(t, root.Registered())
	assert.True(t, box.Registered())
	assert.True(t, name.Registered())
	assert.Equal(t, 3, r.CoreServices())
	assert.Equal(t, 1, r.FocusServices())
	assert.False(t, r.Visited(label.Handle()), "plain widgets are skipped")
}

func TestRegister_Idempotent(t *testing.T) {
	a := newFakeField("a", paint.WindowText, paint.Window)
	b := newFakeField("b", paint.WindowText, paint.Window)
	root := newFakeBox("root", a, newFakeBox("inner", b))

	r := newTestRegistrar()
	r.Register(root)
	cores, focus := r.CoreServices(), r.FocusServices()

	r.Register(root)
	r.Register(a)

	assert.Equal(t, cores, r.CoreServices())
	assert.Equal(t, focus, r.FocusServices())
	assert.Len(t, a.enterFns, 1)
	assert.Len(t, a.leaveFns, 1)
	assert.Len(t, b.enterFns, 1)
}

func TestRegister_SharedChildOnce(t *testing.T) {
	shared := newFakeField("shared", paint.WindowText, paint.Window)
	left := newFakeBox("left", shared)
	right := newFakeBox("right", shared)
	root := newFakeBox("root", left, right)

	r := newTestRegistrar()
	r.Register(root)

	assert.Len(t, shared.enterFns, 1)
	assert.Equal(t, 1, r.FocusServices())
	assert.Equal(t, 4, r.CoreServices())
}

func TestRegister_SelfRegisteredChildSkipped(t *testing.T) {
	field := newFakeField("early", paint.WindowText, paint.Window)
	own := newTestRegistrar()
	own.Register(field)
	require.True(t, field.Registered())

	r := newTestRegistrar()
	r.Register(newFakeBox("root", field))

	assert.Len(t, field.enterFns, 1)
	assert.Equal(t, 0, r.FocusServices())
	assert.False(t, r.Visited(field.Handle()))
}

func TestRegister_TabPageDescent(t *testing.T) {
	deep := newFakeField("deep", paint.WindowText, paint.Window)
	page := newFakePage(deep)
	tabs := fakeTabs{fakeBox: newFakeBox("tabs", page)}
	root := newFakeBox("root", tabs)

	r := newTestRegistrar()
	r.Register(root)

	assert.True(t, deep.Registered())
	assert.False(t, r.Visited(page.Handle()), "tab pages are transparent")
	_, ok := r.FocusService(deep.Handle())
	assert.True(t, ok)
}

func TestRegister_PageOutsideTabStripNotDescended(t *testing.T) {
	deep := newFakeField("deep", paint.WindowText, paint.Window)
	root := newFakeBox("root", newFakePage(deep))

	r := newTestRegistrar()
	r.Register(root)

	assert.False(t, deep.Registered())
}

func TestRegister_DefaultEntryPoint(t *testing.T) {
	var got []string
	field := newFakeField("solo", paint.WindowText, paint.Window)
	field.registerFn = func(d Decoratable) {
		got = append(got, d.Key())
		Default().Register(d)
	}

	field.Register()
	field.Register()

	assert.Equal(t, []string{"solo", "solo"}, got)
	assert.True(t, field.Registered())
	assert.True(t, Default().Visited(field.Handle()))
	assert.Len(t, field.enterFns, 1)
}

func TestRegister_DefaultWalkUsesChildEntryPoint(t *testing.T) {
	var got []string
	child := newFakeField("child", paint.WindowText, paint.Window)
	child.registerFn = func(d Decoratable) {
		got = append(got, d.Key())
		Default().Register(d)
	}
	root := newFakeBox("defaultRoot", child)

	root.Register()

	assert.Equal(t, []string{"child"}, got)
	assert.True(t, child.Registered())
	assert.True(t, Default().Visited(child.Handle()))
	assert.Len(t, child.enterFns, 1)
}

func TestRegister_OwnRegistrarBindsChildDirectly(t *testing.T) {
	called := false
	child := newFakeField("child", paint.WindowText, paint.Window)
	child.registerFn = func(Decoratable) { called = true }

	r := newTestRegistrar()
	r.Register(newFakeBox("root", child))

	assert.False(t, called)
	assert.True(t, child.Registered())
	assert.True(t, r.Visited(child.Handle()))
}

func TestRelease(t *testing.T) {
	deep := newFakeField("deep", paint.WindowText, paint.Window)
	top := newFakeField("top", paint.WindowText, paint.Window)
	tabs := fakeTabs{fakeBox: newFakeBox("tabs", newFakePage(deep))}
	root := newFakeBox("root", top, tabs)

	r := newTestRegistrar()
	r.Register(root)
	require.Equal(t, 2, r.FocusServices())

	r.Release(root)

	assert.Equal(t, 0, r.FocusServices())
	assert.Equal(t, 0, r.CoreServices())
	assert.Empty(t, deep.enterFns)
	assert.Empty(t, top.leaveFns)
	assert.True(t, root.Registered(), "registration flags are never reset")

	r.Register(root)
	assert.Equal(t, 0, r.FocusServices())
}
