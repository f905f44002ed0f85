// Package ebitenhost adapts an ember widget tree to an Ebitengine game
// loop. The host translates Ebitengine keyboard and mouse state into
// dispatcher events each Update and offers a minimal debug renderer for
// development; real games draw the tree themselves and only use the
// input side.
package ebitenhost

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/emberkit/ember"
	"github.com/emberkit/ember/textmetrics"
)

// Held keys start repeating after this many ticks, then fire on the
// given interval. Matches common text editor feel at 60 TPS.
const (
	repeatDelay    = 30
	repeatInterval = 5
)

// Host feeds Ebitengine input into a widget tree dispatcher.
type Host struct {
	dispatcher *ember.Dispatcher

	// HitTest maps a screen position to the widget under it. The host
	// owns no layout, so mouse routing needs the game to supply this.
	// Nil disables mouse dispatch.
	HitTest func(x, y int) *ember.Widget

	clipboard string
}

// New returns a host over the given tree.
func New(root *ember.Widget) *Host {
	return &Host{dispatcher: ember.NewDispatcher(root)}
}

// Dispatcher exposes the underlying dispatcher for focus control.
func (h *Host) Dispatcher() *ember.Dispatcher { return h.dispatcher }

// ClipboardFuncs returns copy and paste callbacks backed by the host's
// in-process clipboard, for wiring into text inputs via WithClipboard.
func (h *Host) ClipboardFuncs() (copyFn func(string), pasteFn func() string) {
	return func(text string) { h.clipboard = text },
		func() string { return h.clipboard }
}

// Update reads this tick's Ebitengine input state and dispatches it.
// Call once per Game.Update.
func (h *Host) Update() {
	mods := currentModifiers()

	// Printable input first so a character and its key's special
	// mapping never double-fire; runes arrive only for printing keys.
	for _, r := range ebiten.AppendInputChars(nil) {
		h.dispatcher.DispatchKey(&ember.KeyEvent{Key: ember.KeyRune, Rune: r, Mods: mods})
	}

	for _, key := range inpututil.AppendJustPressedKeys(nil) {
		h.dispatchSpecial(key, mods)
	}
	for _, key := range heldKeys() {
		if d := inpututil.KeyPressDuration(key); d >= repeatDelay && (d-repeatDelay)%repeatInterval == 0 {
			h.dispatchSpecial(key, mods)
		}
	}

	if h.HitTest != nil && inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		x, y := ebiten.CursorPosition()
		if target := h.HitTest(x, y); target != nil {
			h.dispatcher.DispatchClick(target, &ember.MouseEvent{
				Button: ember.MouseLeft,
				X:      float64(x),
				Y:      float64(y),
				Mods:   mods,
			})
		} else {
			h.dispatcher.Blur()
		}
	}
}

func (h *Host) dispatchSpecial(key ebiten.Key, mods ember.Modifiers) {
	mapped := MapKey(key)
	if mapped == ember.KeyNone {
		return
	}
	// Letter keys matter only as shortcuts; plain presses already
	// arrived as input characters.
	if isLetterKey(key) && !mods.Primary() {
		return
	}
	h.dispatcher.DispatchKey(&ember.KeyEvent{Key: mapped, Mods: mods})
}

// heldKeys returns the repeatable editing keys currently held.
func heldKeys() []ebiten.Key {
	candidates := []ebiten.Key{
		ebiten.KeyArrowLeft, ebiten.KeyArrowRight,
		ebiten.KeyArrowUp, ebiten.KeyArrowDown,
		ebiten.KeyBackspace, ebiten.KeyDelete,
	}
	var held []ebiten.Key
	for _, k := range candidates {
		if ebiten.IsKeyPressed(k) {
			held = append(held, k)
		}
	}
	return held
}

func currentModifiers() ember.Modifiers {
	var mods ember.Modifiers
	if ebiten.IsKeyPressed(ebiten.KeyShift) {
		mods |= ember.ModShift
	}
	if ebiten.IsKeyPressed(ebiten.KeyControl) {
		mods |= ember.ModCtrl
	}
	if ebiten.IsKeyPressed(ebiten.KeyAlt) {
		mods |= ember.ModAlt
	}
	if ebiten.IsKeyPressed(ebiten.KeyMeta) {
		mods |= ember.ModSuper
	}
	return mods
}

func isLetterKey(key ebiten.Key) bool {
	switch key {
	case ebiten.KeyA, ebiten.KeyC, ebiten.KeyV, ebiten.KeyX, ebiten.KeyY, ebiten.KeyZ:
		return true
	}
	return false
}

// MapKey translates an Ebitengine key into the widget event key set.
// Keys without an editing meaning map to KeyNone.
func MapKey(key ebiten.Key) ember.Key {
	switch key {
	case ebiten.KeyArrowLeft:
		return ember.KeyLeft
	case ebiten.KeyArrowRight:
		return ember.KeyRight
	case ebiten.KeyArrowUp:
		return ember.KeyUp
	case ebiten.KeyArrowDown:
		return ember.KeyDown
	case ebiten.KeyHome:
		return ember.KeyHome
	case ebiten.KeyEnd:
		return ember.KeyEnd
	case ebiten.KeyBackspace:
		return ember.KeyBackspace
	case ebiten.KeyDelete:
		return ember.KeyDelete
	case ebiten.KeyEnter, ebiten.KeyNumpadEnter:
		return ember.KeyEnter
	case ebiten.KeyTab:
		return ember.KeyTab
	case ebiten.KeyEscape:
		return ember.KeyEscape
	case ebiten.KeyA:
		return ember.KeyA
	case ebiten.KeyC:
		return ember.KeyC
	case ebiten.KeyV:
		return ember.KeyV
	case ebiten.KeyX:
		return ember.KeyX
	case ebiten.KeyY:
		return ember.KeyY
	case ebiten.KeyZ:
		return ember.KeyZ
	}
	return ember.KeyNone
}

// DebugDraw renders the tree as indented text, one widget per line,
// with the focused widget marked. Meant for development, not shipping.
func (h *Host) DebugDraw(screen *ebiten.Image) {
	const lineHeight = 16
	y := 8
	h.draw(screen, h.dispatcher.Root(), 0, &y, lineHeight)
}

func (h *Host) draw(screen *ebiten.Image, w *ember.Widget, depth int, y *int, lineHeight int) {
	if w == nil || !w.Visible() {
		return
	}
	line := debugLine(w)
	if w.Focused() {
		line = "> " + line
	}
	ebitenutil.DebugPrintAt(screen, line, 8+depth*16, *y)
	*y += lineHeight
	for _, c := range w.Children() {
		h.draw(screen, c, depth+1, y, lineHeight)
	}
}

func debugLine(w *ember.Widget) string {
	switch w.Kind() {
	case ember.KindTextField, ember.KindTextArea:
		ts := w.TextState()
		text := ts.Text()
		if text == "" {
			return fmt.Sprintf("[%s] (%s)", w.Kind(), ts.Placeholder())
		}
		// The caret column accounts for wide characters so the marker
		// lines up in a monospace debug view.
		col := textmetrics.CursorColumn(text, ts.Buffer.CursorPos)
		return fmt.Sprintf("[%s] %s |col %d", w.Kind(), text, col)
	case ember.KindCheckbox:
		mark := " "
		if w.Checked() {
			mark = "x"
		}
		return fmt.Sprintf("[%s] (%s) %s", w.Kind(), mark, w.Text())
	case ember.KindSlider, ember.KindProgress:
		return fmt.Sprintf("[%s] %.2f", w.Kind(), w.Value())
	case ember.KindDropdown:
		opt, _ := w.SelectedOption()
		return fmt.Sprintf("[%s] %s", w.Kind(), opt)
	default:
		return fmt.Sprintf("[%s] %s", w.Kind(), w.Text())
	}
}
