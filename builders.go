package ember

import "github.com/emberkit/ember/textinput"

// Builders construct configured widgets in one fluent chain:
//
//	form := ember.VStack(
//		ember.Label("Sign in", ember.LabelTitle),
//		ember.TextField().WithPlaceholder("Username"),
//		ember.TextField().WithPlaceholder("PIN").
//			WithFilter(textinput.Numeric()).WithMaxLength(6),
//		ember.Button("Log in").WithStyle(ember.ButtonPrimary),
//	)
//
// Every builder returns the *Widget so chains compose with AddChild and
// the handler registration methods.

// Container returns an undecorated grouping widget.
func Container(children ...*Widget) *Widget {
	w := NewWidget(KindContainer)
	for _, c := range children {
		w.AddChild(c)
	}
	return w
}

// VStack returns a widget that lays out its children vertically.
func VStack(children ...*Widget) *Widget {
	w := NewWidget(KindVStack)
	for _, c := range children {
		w.AddChild(c)
	}
	return w
}

// HStack returns a widget that lays out its children horizontally.
func HStack(children ...*Widget) *Widget {
	w := NewWidget(KindHStack)
	for _, c := range children {
		w.AddChild(c)
	}
	return w
}

// ScrollView returns a clipping viewport over its children.
func ScrollView(children ...*Widget) *Widget {
	w := NewWidget(KindScrollView)
	w.showScrollIndicators = true
	for _, c := range children {
		w.AddChild(c)
	}
	return w
}

// Panel returns a chrome container with the given style.
func Panel(style PanelStyle, children ...*Widget) *Widget {
	w := NewWidget(KindPanel)
	w.panelStyle = style
	for _, c := range children {
		w.AddChild(c)
	}
	return w
}

// Separator returns a thin rule with the given orientation.
func Separator(o Orientation) *Widget {
	w := NewWidget(KindSeparator)
	w.orientation = o
	return w
}

// Text returns a plain body-style text widget.
func Text(s string) *Widget {
	w := NewWidget(KindText)
	w.text = s
	w.labelStyle = LabelBody
	return w
}

// Label returns a text widget with an emphasis style.
func Label(s string, style LabelStyle) *Widget {
	w := NewWidget(KindLabel)
	w.text = s
	w.labelStyle = style
	return w
}

// Button returns a clickable button with the primary style at medium
// size.
func Button(label string) *Widget {
	w := NewWidget(KindButton)
	w.text = label
	w.buttonStyle = ButtonPrimary
	w.buttonSize = ButtonMedium
	w.focusable = true
	return w
}

// Checkbox returns a labeled toggle.
func Checkbox(label string, checked bool) *Widget {
	w := NewWidget(KindCheckbox)
	w.text = label
	w.checked = checked
	w.focusable = true
	return w
}

// Slider returns a draggable value control over [min, max].
func Slider(min, max, value float64) *Widget {
	w := NewWidget(KindSlider)
	w.minValue = min
	w.maxValue = max
	w.focusable = true
	w.value = min
	w.SetValue(value)
	return w
}

// ProgressBar returns a read-only fill indicator over [min, max].
func ProgressBar(min, max, value float64) *Widget {
	w := NewWidget(KindProgress)
	w.minValue = min
	w.maxValue = max
	w.value = min
	w.SetValue(value)
	return w
}

// Dropdown returns a closed option picker with nothing selected.
func Dropdown(options ...string) *Widget {
	w := NewWidget(KindDropdown)
	w.options = append([]string(nil), options...)
	w.focusable = true
	return w
}

// TextField returns a single-line text input with no filter and a
// default-sized undo history.
func TextField() *Widget {
	w := NewWidget(KindTextField)
	w.focusable = true
	w.textState = NewTextState("")
	return w
}

// TextArea returns a multi-line text input.
func TextArea() *Widget {
	w := NewWidget(KindTextArea)
	w.focusable = true
	w.textState = NewTextState("")
	w.textState.multiline = true
	return w
}

// Dialog returns a hidden modal panel with a title. Call SetVisible to
// show it.
func Dialog(title string, children ...*Widget) *Widget {
	w := NewWidget(KindDialog)
	w.text = title
	w.visible = false
	w.panelStyle = PanelElevated
	for _, c := range children {
		w.AddChild(c)
	}
	return w
}

// Tooltip returns a hover hint widget.
func Tooltip(text string) *Widget {
	w := NewWidget(KindTooltip)
	w.text = text
	return w
}

// Toast returns a dismissible notification with the given level.
func Toast(message string, level ToastLevel) *Widget {
	w := NewWidget(KindToast)
	w.text = message
	w.toastLevel = level
	return w
}

// Form returns a container whose text fields submit together; see
// Dispatcher focus traversal for Tab order.
func Form(children ...*Widget) *Widget {
	w := NewWidget(KindForm)
	for _, c := range children {
		w.AddChild(c)
	}
	return w
}

// Fluent setters. Each returns the receiver for chaining.

// WithStyle sets the button color variant.
func (w *Widget) WithStyle(s ButtonStyle) *Widget {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.buttonStyle = s
	return w
}

// WithSize sets the button size.
func (w *Widget) WithSize(s ButtonSize) *Widget {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.buttonSize = s
	return w
}

// WithLabelStyle sets the text emphasis style.
func (w *Widget) WithLabelStyle(s LabelStyle) *Widget {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.labelStyle = s
	return w
}

// WithTooltip attaches hover hint text.
func (w *Widget) WithTooltip(text string) *Widget {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.tooltip = text
	return w
}

// WithStep sets the slider step; values snap to multiples of step from
// the minimum.
func (w *Widget) WithStep(step float64) *Widget {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.step = step
	return w
}

// WithSelected preselects a dropdown option.
func (w *Widget) WithSelected(index int) *Widget {
	w.mu.Lock()
	defer w.mu.Unlock()
	if index >= 0 && index < len(w.options) {
		w.selectedIndex = index
	}
	return w
}

// WithPlaceholder sets the hint text shown while a text input is empty.
func (w *Widget) WithPlaceholder(text string) *Widget {
	if ts := w.TextState(); ts != nil {
		ts.placeholder = text
	}
	return w
}

// WithText seeds a text input's initial content without recording an
// edit, or sets a plain widget's text.
func (w *Widget) WithText(text string) *Widget {
	return w.SetText(text)
}

// WithFilter sets the input filter on a text input.
func (w *Widget) WithFilter(f textinput.Filter) *Widget {
	if ts := w.TextState(); ts != nil {
		ts.Filter = f
	}
	return w
}

// WithMaxLength caps a text input's content length in runes.
func (w *Widget) WithMaxLength(n int) *Widget {
	if ts := w.TextState(); ts != nil {
		ts.Filter.MaxLength = n
	}
	return w
}

// WithHistorySize bounds a text input's undo history.
func (w *Widget) WithHistorySize(n int) *Widget {
	if ts := w.TextState(); ts != nil {
		ts.historySize = n
		ts.History = textinput.NewHistory(n)
	}
	return w
}

// RetainOnSubmit keeps a text field's content after Enter submits it
// instead of clearing the buffer.
func (w *Widget) RetainOnSubmit() *Widget {
	if ts := w.TextState(); ts != nil {
		ts.retainOnSubmit = true
	}
	return w
}

// OnChange registers a callback fired whenever a text input's content
// changes through editing, undo, or redo.
func (w *Widget) OnChange(fn func(text string)) *Widget {
	if ts := w.TextState(); ts != nil {
		ts.onChange = fn
	}
	return w
}

// OnSubmit registers a callback fired when Enter submits a single-line
// text field.
func (w *Widget) OnSubmit(fn func(text string)) *Widget {
	if ts := w.TextState(); ts != nil {
		ts.onSubmit = fn
	}
	return w
}

// WithClipboard wires host clipboard callbacks into a text input. copy
// receives cut or copied text; paste supplies text for Ctrl+V.
func (w *Widget) WithClipboard(copy func(text string), paste func() string) *Widget {
	if ts := w.TextState(); ts != nil {
		ts.copyFn = copy
		ts.pasteFn = paste
	}
	return w
}

// Style accessors for hosts.

// ButtonStyle returns the button color variant.
func (w *Widget) ButtonStyle() ButtonStyle {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.buttonStyle
}

// ButtonSize returns the button size.
func (w *Widget) ButtonSize() ButtonSize {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.buttonSize
}

// LabelStyle returns the text emphasis style.
func (w *Widget) LabelStyle() LabelStyle {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.labelStyle
}

// PanelStyle returns the panel chrome variant.
func (w *Widget) PanelStyle() PanelStyle {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.panelStyle
}

// ToastLevel returns the toast severity.
func (w *Widget) ToastLevel() ToastLevel {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.toastLevel
}

// Orientation returns a separator's direction.
func (w *Widget) Orientation() Orientation {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.orientation
}
