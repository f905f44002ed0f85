package ember

// Key identifies a non-character key delivered to key handlers.
// Printable input arrives as KeyEvent.Rune with Key set to KeyRune.
type Key uint8

const (
	KeyNone Key = iota
	KeyRune
	KeyLeft
	KeyRight
	KeyUp
	KeyDown
	KeyHome
	KeyEnd
	KeyBackspace
	KeyDelete
	KeyEnter
	KeyTab
	KeyEscape
	KeyA
	KeyC
	KeyV
	KeyX
	KeyY
	KeyZ
)

// Modifiers is a bitmask of modifier keys held during an event.
type Modifiers uint8

const (
	ModShift Modifiers = 1 << iota
	ModCtrl
	ModAlt
	ModSuper
)

// Shift reports whether shift is held.
func (m Modifiers) Shift() bool { return m&ModShift != 0 }

// Ctrl reports whether control is held.
func (m Modifiers) Ctrl() bool { return m&ModCtrl != 0 }

// Alt reports whether alt is held.
func (m Modifiers) Alt() bool { return m&ModAlt != 0 }

// Super reports whether the super (command) key is held.
func (m Modifiers) Super() bool { return m&ModSuper != 0 }

// Primary reports whether the platform's primary shortcut modifier is
// held. Hosts on macOS map command to ModSuper; elsewhere control.
func (m Modifiers) Primary() bool { return m.Ctrl() || m.Super() }

// MouseButton identifies which button a mouse event reports.
type MouseButton uint8

const (
	MouseLeft MouseButton = iota
	MouseRight
	MouseMiddle
)

// KeyEvent is a key press delivered to a focused widget.
type KeyEvent struct {
	Key  Key
	Rune rune
	Mods Modifiers

	stopped bool
}

// StopPropagation prevents the event from bubbling to ancestors.
func (e *KeyEvent) StopPropagation() { e.stopped = true }

// Stopped reports whether propagation was stopped.
func (e *KeyEvent) Stopped() bool { return e.stopped }

// MouseEvent is a click or press delivered to a widget.
type MouseEvent struct {
	Button MouseButton
	X, Y   float64
	Mods   Modifiers

	stopped bool
}

// StopPropagation prevents the event from bubbling to ancestors.
func (e *MouseEvent) StopPropagation() { e.stopped = true }

// Stopped reports whether propagation was stopped.
func (e *MouseEvent) Stopped() bool { return e.stopped }

// FocusEvent reports a focus change on a widget.
type FocusEvent struct {
	Gained bool
}

// KeyHandler receives key events on the widget it is registered on.
type KeyHandler func(w *Widget, e *KeyEvent)

// MouseHandler receives mouse events on the widget it is registered on.
type MouseHandler func(w *Widget, e *MouseEvent)

// FocusHandler receives focus and blur notifications.
type FocusHandler func(w *Widget, e FocusEvent)
