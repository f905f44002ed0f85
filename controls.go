package ember

import (
	"math"

	"github.com/sahilm/fuzzy"
)

// activate runs a widget's default click behavior. It returns true when
// the kind defines one; plain widgets rely on registered handlers only.
func (w *Widget) activate(e *MouseEvent) bool {
	switch w.kind {
	case KindCheckbox:
		w.Toggle()
		return true
	case KindDropdown:
		w.SetOpen(!w.Open())
		return true
	case KindToast:
		w.Dismiss()
		return true
	}
	return false
}

// Checked reports the checkbox state.
func (w *Widget) Checked() bool {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.checked
}

// SetChecked sets the checkbox state, firing the toggle callback on
// change.
func (w *Widget) SetChecked(checked bool) {
	w.mu.Lock()
	if w.checked == checked {
		w.mu.Unlock()
		return
	}
	w.checked = checked
	w.dirty |= DirtyStyle
	fn := w.onToggle
	w.mu.Unlock()
	if fn != nil {
		fn(checked)
	}
}

// Toggle flips the checkbox state.
func (w *Widget) Toggle() {
	w.SetChecked(!w.Checked())
}

// Value returns the slider or progress bar value.
func (w *Widget) Value() float64 {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.value
}

// ValueRange returns the configured minimum and maximum.
func (w *Widget) ValueRange() (min, max float64) {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.minValue, w.maxValue
}

// SetValue sets the slider or progress bar value. Values are clamped to
// the configured range and, for sliders with a step, snapped to the
// nearest step from the minimum. The value callback fires on change.
func (w *Widget) SetValue(v float64) {
	w.mu.Lock()
	if w.step > 0 {
		v = w.minValue + math.Round((v-w.minValue)/w.step)*w.step
	}
	if v < w.minValue {
		v = w.minValue
	}
	if v > w.maxValue {
		v = w.maxValue
	}
	if w.value == v {
		w.mu.Unlock()
		return
	}
	w.value = v
	w.dirty |= DirtyStyle
	fn := w.onValue
	w.mu.Unlock()
	if fn != nil {
		fn(v)
	}
}

// Fraction returns the value normalized to [0, 1] within its range, for
// drawing slider handles and progress fills.
func (w *Widget) Fraction() float64 {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.maxValue <= w.minValue {
		return 0
	}
	return (w.value - w.minValue) / (w.maxValue - w.minValue)
}

// Options returns a copy of the dropdown option list.
func (w *Widget) Options() []string {
	w.mu.Lock()
	defer w.mu.Unlock()
	return append([]string(nil), w.options...)
}

// SelectedIndex returns the selected option index, or -1 when nothing
// is selected.
func (w *Widget) SelectedIndex() int {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.selectedIndex
}

// SelectedOption returns the selected option text, or "" and false when
// nothing is selected.
func (w *Widget) SelectedOption() (string, bool) {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.selectedIndex < 0 || w.selectedIndex >= len(w.options) {
		return "", false
	}
	return w.options[w.selectedIndex], true
}

// SelectIndex selects the option at index, closes the dropdown, and
// fires the selection callback. Out-of-range indices are ignored.
func (w *Widget) SelectIndex(index int) {
	w.mu.Lock()
	if index < 0 || index >= len(w.options) {
		w.mu.Unlock()
		return
	}
	changed := w.selectedIndex != index
	w.selectedIndex = index
	w.open = false
	option := w.options[index]
	w.dirty |= DirtyStyle
	fn := w.onSelect
	w.mu.Unlock()
	if changed && fn != nil {
		fn(index, option)
	}
}

// Open reports whether the dropdown list is showing.
func (w *Widget) Open() bool {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.open
}

// SetOpen shows or hides the dropdown list.
func (w *Widget) SetOpen(open bool) {
	w.mu.Lock()
	if w.open != open {
		w.open = open
		w.dirty |= DirtyLayout
	}
	w.mu.Unlock()
}

// OptionMatch is one dropdown option surviving a filter query, ranked
// best first.
type OptionMatch struct {
	Index  int
	Option string
}

// FilterOptions fuzzy-matches query against the option list and returns
// the matches ranked by score. An empty query returns every option in
// list order.
func (w *Widget) FilterOptions(query string) []OptionMatch {
	options := w.Options()
	if query == "" {
		out := make([]OptionMatch, len(options))
		for i, opt := range options {
			out[i] = OptionMatch{Index: i, Option: opt}
		}
		return out
	}
	matches := fuzzy.Find(query, options)
	out := make([]OptionMatch, len(matches))
	for i, m := range matches {
		out[i] = OptionMatch{Index: m.Index, Option: options[m.Index]}
	}
	return out
}

// Dismiss hides a toast or dialog and fires its dismiss callback.
func (w *Widget) Dismiss() {
	w.mu.Lock()
	if !w.visible {
		w.mu.Unlock()
		return
	}
	w.visible = false
	w.dirty |= DirtyLayout
	fn := w.onDismiss
	w.mu.Unlock()
	if fn != nil {
		fn()
	}
}

// OnToggle registers the checkbox change callback.
func (w *Widget) OnToggle(fn func(checked bool)) *Widget {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.onToggle = fn
	return w
}

// OnValueChanged registers the slider value callback.
func (w *Widget) OnValueChanged(fn func(value float64)) *Widget {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.onValue = fn
	return w
}

// OnSelect registers the dropdown selection callback.
func (w *Widget) OnSelect(fn func(index int, option string)) *Widget {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.onSelect = fn
	return w
}

// OnDismiss registers the toast or dialog dismiss callback.
func (w *Widget) OnDismiss(fn func()) *Widget {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.onDismiss = fn
	return w
}
