package service

import "github.com/yllada/exforms/paint"

type fakeWidget struct {
	handle     Handle
	fore, back paint.Color
}

func newFakeWidget(fore, back paint.Color) *fakeWidget {
	return &fakeWidget{handle: NewHandle(), fore: fore, back: back}
}

func (w *fakeWidget) Handle() Handle             { return w.handle }
func (w *fakeWidget) ForeColor() paint.Color     { return w.fore }
func (w *fakeWidget) SetForeColor(c paint.Color) { w.fore = c }
func (w *fakeWidget) BackColor() paint.Color     { return w.back }
func (w *fakeWidget) SetBackColor(c paint.Color) { w.back = c }

type fakeField struct {
	fakeWidget
	Core
	enabled    bool
	caption    Widget
	focusFore  paint.Color
	focusBack  paint.Color
	enterFns   map[int]func()
	leaveFns   map[int]func()
	nextSub    int
	registerFn func(Decoratable)
}

func newFakeField(key string, fore, back paint.Color) *fakeField {
	f := &fakeField{
		fakeWidget: *newFakeWidget(fore, back),
		enabled:    true,
		focusFore:  paint.HighlightText,
		focusBack:  paint.Highlight,
		enterFns:   make(map[int]func()),
		leaveFns:   make(map[int]func()),
	}
	f.SetKey(key)
	return f
}

func (f *fakeField) Register() {
	if f.registerFn != nil {
		f.registerFn(f)
		return
	}
	Register(f)
}

func (f *fakeField) subscribe(m map[int]func(), fn func()) func() {
	id := f.nextSub
	f.nextSub++
	m[id] = fn
	return func() { delete(m, id) }
}

func (f *fakeField) OnEnter(fn func()) func() { return f.subscribe(f.enterFns, fn) }
func (f *fakeField) OnLeave(fn func()) func() { return f.subscribe(f.leaveFns, fn) }

func (f *fakeField) Focus() {
	for _, fn := range f.enterFns {
		fn()
	}
}

func (f *fakeField) Blur() {
	for _, fn := range f.leaveFns {
		fn()
	}
}

func (f *fakeField) ColorSwapEnabled() bool      { return f.enabled }
func (f *fakeField) CaptionWidget() Widget       { return f.caption }
func (f *fakeField) FocusForeColor() paint.Color { return f.focusFore }
func (f *fakeField) FocusBackColor() paint.Color { return f.focusBack }

type fakeButton struct {
	*fakeField
}

func (b fakeButton) DefaultBackColor() paint.Color { return paint.ButtonFace }

type fakeBox struct {
	fakeWidget
	Core
	children []Widget
}

func newFakeBox(key string, children ...Widget) *fakeBox {
	b := &fakeBox{fakeWidget: *newFakeWidget(paint.ControlText, paint.Control), children: children}
	b.SetKey(key)
	return b
}

func (b *fakeBox) Register()          { Register(b) }
func (b *fakeBox) Children() []Widget { return b.children }

type fakeTabs struct {
	*fakeBox
	TabStripMarker
}

type fakePage struct {
	fakeWidget
	TabPageMarker
	children []Widget
}

func newFakePage(children ...Widget) *fakePage {
	return &fakePage{fakeWidget: *newFakeWidget(paint.ControlText, paint.Control), children: children}
}

func (p *fakePage) Children() []Widget { return p.children }
