package ember

import "sync"

// Dispatcher routes host input into a widget tree and owns keyboard
// focus for that tree. Hosts create one Dispatcher per tree, feed it
// translated events each frame, and let it handle focus traversal,
// text editing, and handler bubbling.
type Dispatcher struct {
	mu    sync.Mutex
	root  *Widget
	focus *Widget
}

// NewDispatcher returns a dispatcher over the given tree.
func NewDispatcher(root *Widget) *Dispatcher {
	return &Dispatcher{root: root}
}

// Root returns the tree the dispatcher serves.
func (d *Dispatcher) Root() *Widget {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.root
}

// Focused returns the widget holding keyboard focus, or nil.
func (d *Dispatcher) Focused() *Widget {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.focus
}

// Focus moves keyboard focus to w, firing blur and focus handlers. A
// nil w clears focus. Focusing an unfocusable widget is a no-op.
func (d *Dispatcher) Focus(w *Widget) {
	if w != nil && !w.Focusable() {
		return
	}

	d.mu.Lock()
	prev := d.focus
	if prev == w {
		d.mu.Unlock()
		return
	}
	d.focus = w
	d.mu.Unlock()

	if prev != nil {
		prev.mu.Lock()
		prev.focused = false
		if ts := prev.textState; ts != nil {
			ts.Buffer.Focused = false
			ts.Selection.Clear()
		}
		blurs := append([]FocusHandler(nil), prev.onBlur...)
		prev.mu.Unlock()
		prev.markDirty(DirtyStyle)
		for _, fn := range blurs {
			fn(prev, FocusEvent{Gained: false})
		}
	}

	if w != nil {
		w.mu.Lock()
		w.focused = true
		if ts := w.textState; ts != nil {
			ts.Buffer.Focused = true
		}
		focuses := append([]FocusHandler(nil), w.onFocus...)
		w.mu.Unlock()
		w.markDirty(DirtyStyle)
		for _, fn := range focuses {
			fn(w, FocusEvent{Gained: true})
		}
	}
}

// Blur clears keyboard focus.
func (d *Dispatcher) Blur() { d.Focus(nil) }

// FocusNext moves focus to the next focusable widget in tree order,
// wrapping at the end. With nothing focused it picks the first.
func (d *Dispatcher) FocusNext() { d.cycleFocus(1) }

// FocusPrev moves focus to the previous focusable widget in tree order,
// wrapping at the start.
func (d *Dispatcher) FocusPrev() { d.cycleFocus(-1) }

func (d *Dispatcher) cycleFocus(dir int) {
	root := d.Root()
	if root == nil {
		return
	}
	var order []*Widget
	root.Walk(func(w *Widget) bool {
		if w.Focusable() {
			order = append(order, w)
		}
		return true
	})
	if len(order) == 0 {
		return
	}

	current := d.Focused()
	idx := -1
	for i, w := range order {
		if w == current {
			idx = i
			break
		}
	}
	if idx == -1 {
		if dir > 0 {
			d.Focus(order[0])
		} else {
			d.Focus(order[len(order)-1])
		}
		return
	}
	d.Focus(order[(idx+dir+len(order))%len(order)])
}

// DispatchKey delivers a key event to the focused widget. Tab and
// Shift+Tab traverse focus. Text widgets consume editing keys through
// their TextState first; anything unconsumed runs the widget's key
// handlers and bubbles to ancestors until stopped.
func (d *Dispatcher) DispatchKey(e *KeyEvent) bool {
	if e.Key == KeyTab {
		if e.Mods.Shift() {
			d.FocusPrev()
		} else {
			d.FocusNext()
		}
		return true
	}

	target := d.Focused()
	if target == nil || target.Disabled() {
		return false
	}

	handled := false
	if ts := target.TextState(); ts != nil {
		if ts.HandleKey(e) {
			target.markDirty(DirtyText)
			handled = true
		}
	}

	for w := target; w != nil && !e.Stopped(); w = w.Parent() {
		for _, fn := range w.keyHandlers() {
			fn(w, e)
			handled = true
		}
	}
	return handled
}

// DispatchClick delivers a mouse event to target: focus moves if the
// target accepts it, the widget's default activation runs (checkbox
// toggle, dropdown open), and click handlers bubble to ancestors until
// stopped.
func (d *Dispatcher) DispatchClick(target *Widget, e *MouseEvent) bool {
	if target == nil || target.Disabled() {
		return false
	}

	if target.Focusable() {
		d.Focus(target)
	}

	handled := target.activate(e)

	for w := target; w != nil && !e.Stopped(); w = w.Parent() {
		for _, fn := range w.clickHandlers() {
			fn(w, e)
			handled = true
		}
	}
	return handled
}
