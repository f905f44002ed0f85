package ember

import (
	"sync"
	"sync/atomic"
)

// WidgetID uniquely identifies a widget in a tree. IDs are stable for
// the widget's lifetime and used by hosts for delta tracking.
type WidgetID uint64

var nextWidgetID atomic.Uint64

func newWidgetID() WidgetID {
	return WidgetID(nextWidgetID.Add(1))
}

// WidgetKind identifies the widget type for rendering.
type WidgetKind string

const (
	KindContainer  WidgetKind = "container"
	KindVStack     WidgetKind = "vstack"
	KindHStack     WidgetKind = "hstack"
	KindScrollView WidgetKind = "scroll_view"
	KindText       WidgetKind = "text"
	KindLabel      WidgetKind = "label"
	KindButton     WidgetKind = "button"
	KindPanel      WidgetKind = "panel"
	KindSeparator  WidgetKind = "separator"
	KindCheckbox   WidgetKind = "checkbox"
	KindSlider     WidgetKind = "slider"
	KindProgress   WidgetKind = "progress"
	KindTextField  WidgetKind = "text_field"
	KindTextArea   WidgetKind = "text_area"
	KindDropdown   WidgetKind = "dropdown"
	KindDialog     WidgetKind = "dialog"
	KindTooltip    WidgetKind = "tooltip"
	KindToast      WidgetKind = "toast"
	KindForm       WidgetKind = "form"
)

// DirtyMask flags what changed on a widget since the host last read it.
type DirtyMask uint8

const (
	DirtyLayout DirtyMask = 1 << iota
	DirtyText
	DirtyStyle
	DirtyTree
)

// Widget is one node in a UI tree. State is mutex-guarded because trees
// are read by the host's render loop while handlers mutate them.
type Widget struct {
	id   WidgetID
	kind WidgetKind

	mu       sync.Mutex
	parent   *Widget
	children []*Widget

	text     string
	tooltip  string
	visible  bool
	disabled bool

	focusable bool
	focused   bool

	buttonStyle ButtonStyle
	buttonSize  ButtonSize
	labelStyle  LabelStyle
	panelStyle  PanelStyle
	toastLevel  ToastLevel
	orientation Orientation

	// Control state (checkbox, slider, progress, dropdown).
	checked       bool
	value         float64
	minValue      float64
	maxValue      float64
	step          float64
	options       []string
	selectedIndex int
	open          bool

	// Scroll state.
	scrollX, scrollY              float64
	contentWidth, contentHeight   float64
	viewportWidth, viewportHeight float64
	showScrollIndicators          bool

	dirty DirtyMask

	// Text input state; nil for non-text widgets.
	textState *TextState

	// Handlers.
	onClick   []MouseHandler
	onKeyDown []KeyHandler
	onFocus   []FocusHandler
	onBlur    []FocusHandler
	onToggle  func(bool)
	onValue   func(float64)
	onSelect  func(index int, option string)
	onDismiss func()
}

// NewWidget creates a bare widget of the given kind. Most callers use
// the builders in builders.go instead.
func NewWidget(kind WidgetKind) *Widget {
	return &Widget{
		id:            newWidgetID(),
		kind:          kind,
		visible:       true,
		selectedIndex: -1,
	}
}

// ID returns the widget's stable identifier.
func (w *Widget) ID() WidgetID { return w.id }

// Kind returns the widget type.
func (w *Widget) Kind() WidgetKind { return w.kind }

// AddChild appends child to w and reparents it.
func (w *Widget) AddChild(child *Widget) *Widget {
	if child == nil {
		return w
	}
	w.mu.Lock()
	w.children = append(w.children, child)
	w.dirty |= DirtyTree
	w.mu.Unlock()

	child.mu.Lock()
	child.parent = w
	child.mu.Unlock()
	return w
}

// RemoveChild detaches child from w. Removing a widget that is not a
// child is a no-op.
func (w *Widget) RemoveChild(child *Widget) {
	w.mu.Lock()
	for i, c := range w.children {
		if c == child {
			w.children = append(w.children[:i], w.children[i+1:]...)
			w.dirty |= DirtyTree
			break
		}
	}
	w.mu.Unlock()

	child.mu.Lock()
	if child.parent == w {
		child.parent = nil
	}
	child.mu.Unlock()
}

// Children returns a copy of the child list.
func (w *Widget) Children() []*Widget {
	w.mu.Lock()
	defer w.mu.Unlock()
	out := make([]*Widget, len(w.children))
	copy(out, w.children)
	return out
}

// Parent returns the widget's parent, or nil at the root.
func (w *Widget) Parent() *Widget {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.parent
}

// Walk visits w and every descendant in depth-first order. The visit
// function returns false to stop the walk.
func (w *Widget) Walk(visit func(*Widget) bool) bool {
	if !visit(w) {
		return false
	}
	for _, c := range w.Children() {
		if !c.Walk(visit) {
			return false
		}
	}
	return true
}

// Find returns the first descendant (including w) for which match
// returns true.
func (w *Widget) Find(match func(*Widget) bool) *Widget {
	var found *Widget
	w.Walk(func(n *Widget) bool {
		if match(n) {
			found = n
			return false
		}
		return true
	})
	return found
}

// FindByID locates a widget by ID within w's subtree.
func (w *Widget) FindByID(id WidgetID) *Widget {
	return w.Find(func(n *Widget) bool { return n.id == id })
}

// Text returns the widget's text content. For text inputs this is the
// live buffer content.
func (w *Widget) Text() string {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.textState != nil {
		return w.textState.Text()
	}
	return w.text
}

// SetText replaces the widget's text content.
func (w *Widget) SetText(text string) *Widget {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.textState != nil {
		w.textState.SetText(text)
	} else {
		w.text = text
	}
	w.dirty |= DirtyText
	return w
}

// Visible reports whether the widget participates in layout.
func (w *Widget) Visible() bool {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.visible
}

// SetVisible shows or hides the widget.
func (w *Widget) SetVisible(v bool) *Widget {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.visible != v {
		w.visible = v
		w.dirty |= DirtyLayout
	}
	return w
}

// Disabled reports whether the widget ignores input.
func (w *Widget) Disabled() bool {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.disabled
}

// SetDisabled enables or disables input handling.
func (w *Widget) SetDisabled(d bool) *Widget {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.disabled != d {
		w.disabled = d
		w.dirty |= DirtyStyle
	}
	return w
}

// Focusable reports whether the dispatcher may give this widget
// keyboard focus.
func (w *Widget) Focusable() bool {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.focusable && w.visible && !w.disabled
}

// Focused reports whether the widget currently has keyboard focus.
func (w *Widget) Focused() bool {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.focused
}

// TextState returns the text editing state for text inputs, or nil.
func (w *Widget) TextState() *TextState {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.textState
}

// Tooltip returns the hover tooltip text, if any.
func (w *Widget) Tooltip() string {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.tooltip
}

// ConsumeDirty returns and clears the widget's dirty flags. Hosts call
// this once per frame per widget they track.
func (w *Widget) ConsumeDirty() DirtyMask {
	w.mu.Lock()
	defer w.mu.Unlock()
	d := w.dirty
	w.dirty = 0
	return d
}

func (w *Widget) markDirty(m DirtyMask) {
	w.mu.Lock()
	w.dirty |= m
	w.mu.Unlock()
}

// OnClick registers a click handler.
func (w *Widget) OnClick(fn MouseHandler) *Widget {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.onClick = append(w.onClick, fn)
	return w
}

// OnKeyDown registers a key handler. Handlers run in registration
// order; later handlers still run after StopPropagation, which only
// stops ancestor delivery.
func (w *Widget) OnKeyDown(fn KeyHandler) *Widget {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.onKeyDown = append(w.onKeyDown, fn)
	return w
}

// OnFocus registers a focus-gained handler.
func (w *Widget) OnFocus(fn FocusHandler) *Widget {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.onFocus = append(w.onFocus, fn)
	return w
}

// OnBlur registers a focus-lost handler.
func (w *Widget) OnBlur(fn FocusHandler) *Widget {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.onBlur = append(w.onBlur, fn)
	return w
}

func (w *Widget) clickHandlers() []MouseHandler {
	w.mu.Lock()
	defer w.mu.Unlock()
	return append([]MouseHandler(nil), w.onClick...)
}

func (w *Widget) keyHandlers() []KeyHandler {
	w.mu.Lock()
	defer w.mu.Unlock()
	return append([]KeyHandler(nil), w.onKeyDown...)
}
