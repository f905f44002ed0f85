package ember

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDispatcherFocusCycling(t *testing.T) {
	a := Button("a")
	b := TextField()
	c := Checkbox("c", false)
	root := VStack(Text("heading"), a, b, c)
	d := NewDispatcher(root)

	require.Nil(t, d.Focused())

	d.DispatchKey(&KeyEvent{Key: KeyTab})
	assert.Same(t, a, d.Focused())

	d.DispatchKey(&KeyEvent{Key: KeyTab})
	assert.Same(t, b, d.Focused())

	d.DispatchKey(&KeyEvent{Key: KeyTab})
	assert.Same(t, c, d.Focused())

	// Wraps at the end.
	d.DispatchKey(&KeyEvent{Key: KeyTab})
	assert.Same(t, a, d.Focused())

	d.DispatchKey(&KeyEvent{Key: KeyTab, Mods: ModShift})
	assert.Same(t, c, d.Focused())
}

func TestDispatcherSkipsUnfocusable(t *testing.T) {
	a := Button("a").SetDisabled(true)
	b := Button("b")
	d := NewDispatcher(VStack(a, b))

	d.FocusNext()
	assert.Same(t, b, d.Focused())
}

func TestDispatcherFocusEvents(t *testing.T) {
	var log []string
	a := TextField()
	a.OnFocus(func(*Widget, FocusEvent) { log = append(log, "a:focus") })
	a.OnBlur(func(*Widget, FocusEvent) { log = append(log, "a:blur") })
	b := Button("b")
	b.OnFocus(func(*Widget, FocusEvent) { log = append(log, "b:focus") })
	d := NewDispatcher(VStack(a, b))

	d.Focus(a)
	assert.True(t, a.Focused())
	assert.True(t, a.TextState().Buffer.Focused)

	d.Focus(b)
	assert.False(t, a.Focused())
	assert.False(t, a.TextState().Buffer.Focused)
	assert.True(t, b.Focused())

	assert.Equal(t, []string{"a:focus", "a:blur", "b:focus"}, log)
}

func TestDispatcherBlurDropsSelection(t *testing.T) {
	a := TextField().WithText("hello")
	d := NewDispatcher(VStack(a, Button("b")))

	d.Focus(a)
	a.TextState().SelectAll()
	require.True(t, a.TextState().Selection.Active())

	d.Blur()
	assert.False(t, a.TextState().Selection.Active())
}

func TestDispatcherRoutesKeysToFocusedField(t *testing.T) {
	field := TextField()
	d := NewDispatcher(VStack(field))

	// No focus, nothing handled.
	assert.False(t, d.DispatchKey(&KeyEvent{Key: KeyRune, Rune: 'x'}))

	d.Focus(field)
	d.DispatchKey(&KeyEvent{Key: KeyRune, Rune: 'h'})
	d.DispatchKey(&KeyEvent{Key: KeyRune, Rune: 'i'})
	assert.Equal(t, "hi", field.Text())
	assert.NotZero(t, field.ConsumeDirty()&DirtyText)
}

func TestDispatcherKeyBubbling(t *testing.T) {
	var log []string
	child := Button("child")
	child.OnKeyDown(func(_ *Widget, e *KeyEvent) { log = append(log, "child") })
	parent := VStack(child)
	parent.OnKeyDown(func(_ *Widget, e *KeyEvent) { log = append(log, "parent") })
	d := NewDispatcher(parent)

	d.Focus(child)
	d.DispatchKey(&KeyEvent{Key: KeyEnter})
	assert.Equal(t, []string{"child", "parent"}, log)

	// StopPropagation halts ancestor delivery.
	log = nil
	child.OnKeyDown(func(_ *Widget, e *KeyEvent) { e.StopPropagation() })
	d.DispatchKey(&KeyEvent{Key: KeyEnter})
	assert.Equal(t, []string{"child"}, log)
}

func TestDispatcherClick(t *testing.T) {
	var clicks int
	btn := Button("go").OnClick(func(*Widget, *MouseEvent) { clicks++ })
	d := NewDispatcher(VStack(btn))

	handled := d.DispatchClick(btn, &MouseEvent{Button: MouseLeft})
	assert.True(t, handled)
	assert.Equal(t, 1, clicks)
	assert.Same(t, btn, d.Focused())
}

func TestDispatcherClickTogglesCheckbox(t *testing.T) {
	var toggled bool
	cb := Checkbox("opt", false).OnToggle(func(v bool) { toggled = v })
	d := NewDispatcher(VStack(cb))

	d.DispatchClick(cb, &MouseEvent{Button: MouseLeft})
	assert.True(t, cb.Checked())
	assert.True(t, toggled)

	d.DispatchClick(cb, &MouseEvent{Button: MouseLeft})
	assert.False(t, cb.Checked())
}

func TestDispatcherClickBubbles(t *testing.T) {
	var log []string
	child := Button("child").OnClick(func(*Widget, *MouseEvent) { log = append(log, "child") })
	parent := VStack(child)
	parent.OnClick(func(*Widget, *MouseEvent) { log = append(log, "parent") })
	d := NewDispatcher(parent)

	d.DispatchClick(child, &MouseEvent{Button: MouseLeft})
	assert.Equal(t, []string{"child", "parent"}, log)
}

func TestDispatcherIgnoresDisabledTarget(t *testing.T) {
	var clicks int
	btn := Button("go").OnClick(func(*Widget, *MouseEvent) { clicks++ })
	btn.SetDisabled(true)
	d := NewDispatcher(VStack(btn))

	assert.False(t, d.DispatchClick(btn, &MouseEvent{Button: MouseLeft}))
	assert.Zero(t, clicks)
	assert.Nil(t, d.Focused())
}
