package ember

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/emberkit/ember/textinput"
)

func typeString(s *TextState, text string) {
	for _, ch := range text {
		s.HandleKey(&KeyEvent{Key: KeyRune, Rune: ch})
	}
}

func press(s *TextState, key Key, mods Modifiers) bool {
	return s.HandleKey(&KeyEvent{Key: key, Mods: mods})
}

func TestTextStateTyping(t *testing.T) {
	s := NewTextState("")
	typeString(s, "hello")

	assert.Equal(t, "hello", s.Text())
	assert.Equal(t, 5, s.Buffer.CursorPos)
	assert.True(t, s.History.CanUndo())
}

func TestTextStateReplaceSelectionAndUndo(t *testing.T) {
	s := NewTextState("")
	typeString(s, "hello")

	press(s, KeyLeft, ModShift)
	press(s, KeyLeft, ModShift)
	sel, ok := s.SelectedText()
	require.True(t, ok)
	assert.Equal(t, "lo", sel)

	typeString(s, "!")
	assert.Equal(t, "hel!", s.Text())
	assert.Equal(t, 4, s.Buffer.CursorPos)

	// Undoing the replacement restores the overwritten text in one step,
	// with the cursor back where it was when the replacement happened.
	press(s, KeyZ, ModCtrl)
	assert.Equal(t, "hello", s.Text())
	assert.Equal(t, 3, s.Buffer.CursorPos)

	press(s, KeyZ, ModCtrl|ModShift)
	assert.Equal(t, "hel!", s.Text())
}

func TestTextStateNavigationCollapse(t *testing.T) {
	s := NewTextState("hello")

	press(s, KeyLeft, ModShift)
	press(s, KeyLeft, ModShift)
	require.True(t, s.Selection.Active())

	// A plain arrow collapses the selection to the edge it points at.
	press(s, KeyLeft, 0)
	assert.False(t, s.Selection.Active())
	assert.Equal(t, 3, s.Buffer.CursorPos)

	press(s, KeyEnd, ModShift)
	require.True(t, s.Selection.Active())
	press(s, KeyRight, 0)
	assert.Equal(t, 5, s.Buffer.CursorPos)
	assert.False(t, s.Selection.Active())
}

func TestTextStateWordDeletion(t *testing.T) {
	s := NewTextState("hello world")

	press(s, KeyBackspace, ModCtrl)
	assert.Equal(t, "hello ", s.Text())
	assert.Equal(t, 6, s.Buffer.CursorPos)

	press(s, KeyZ, ModCtrl)
	assert.Equal(t, "hello world", s.Text())
}

func TestTextStateLineDeletion(t *testing.T) {
	s := NewTextState("hello world")

	press(s, KeyBackspace, ModCtrl|ModShift)
	assert.Equal(t, "", s.Text())

	press(s, KeyZ, ModCtrl)
	assert.Equal(t, "hello world", s.Text())
	s.PlaceCursor(0)
	press(s, KeyDelete, ModCtrl|ModShift)
	assert.Equal(t, "", s.Text())
}

func TestTextStateSelectAllAndDelete(t *testing.T) {
	s := NewTextState("hello")

	press(s, KeyA, ModCtrl)
	sel, ok := s.SelectedText()
	require.True(t, ok)
	assert.Equal(t, "hello", sel)

	press(s, KeyBackspace, 0)
	assert.Equal(t, "", s.Text())
	assert.Equal(t, 0, s.Buffer.CursorPos)
}

func TestTextStateFilterRejectsInvalidRunes(t *testing.T) {
	field := TextField().WithFilter(textinput.Numeric())
	s := field.TextState()

	typeString(s, "a1b2c3")
	assert.Equal(t, "123", s.Text())
}

func TestTextStateDecimalFilterAgainstContent(t *testing.T) {
	field := TextField().WithFilter(textinput.Decimal())
	s := field.TextState()

	typeString(s, "1.2")
	require.Equal(t, "1.2", s.Text())

	// A second dot is rejected against the existing content, not just
	// the new keystroke.
	assert.False(t, s.HandleKey(&KeyEvent{Key: KeyRune, Rune: '.'}))
	assert.Equal(t, "1.2", s.Text())
}

func TestTextStateMaxLength(t *testing.T) {
	field := TextField().WithMaxLength(5)
	s := field.TextState()

	typeString(s, "abcdefgh")
	assert.Equal(t, "abcde", s.Text())

	// Replacing a selection frees its length before the cap applies.
	press(s, KeyA, ModCtrl)
	typeString(s, "x")
	assert.Equal(t, "x", s.Text())
}

func TestTextStateTransform(t *testing.T) {
	field := TextField().WithFilter(textinput.Filter{
		Kind:      textinput.FilterNone,
		Transform: textinput.TransformUppercase,
	})
	s := field.TextState()

	typeString(s, "abc")
	assert.Equal(t, "ABC", s.Text())
}

func TestTextStateSubmit(t *testing.T) {
	var submitted []string
	field := TextField().OnSubmit(func(text string) {
		submitted = append(submitted, text)
	})
	s := field.TextState()

	typeString(s, "hi")
	press(s, KeyEnter, 0)

	assert.Equal(t, []string{"hi"}, submitted)
	assert.Equal(t, "", s.Text())
	assert.False(t, s.History.CanUndo())
}

func TestTextStateRetainOnSubmit(t *testing.T) {
	var submitted string
	field := TextField().RetainOnSubmit().OnSubmit(func(text string) {
		submitted = text
	})
	s := field.TextState()

	typeString(s, "keep me")
	press(s, KeyEnter, 0)

	assert.Equal(t, "keep me", submitted)
	assert.Equal(t, "keep me", s.Text())
}

func TestTextAreaEnterInsertsNewline(t *testing.T) {
	area := TextArea()
	s := area.TextState()

	typeString(s, "one")
	press(s, KeyEnter, 0)
	typeString(s, "two")

	assert.Equal(t, "one\ntwo", s.Text())

	// Home and End operate on the current line.
	press(s, KeyHome, 0)
	assert.Equal(t, 4, s.Buffer.CursorPos)
	press(s, KeyHome, ModCtrl)
	assert.Equal(t, 0, s.Buffer.CursorPos)
	press(s, KeyEnd, 0)
	assert.Equal(t, 3, s.Buffer.CursorPos)
}

func TestTextStateClipboard(t *testing.T) {
	var copied string
	field := TextField().WithClipboard(
		func(text string) { copied = text },
		func() string { return "clip" },
	)
	s := field.TextState()

	typeString(s, "hello")
	press(s, KeyA, ModCtrl)
	press(s, KeyC, ModCtrl)
	assert.Equal(t, "hello", copied)
	assert.Equal(t, "hello", s.Text())

	press(s, KeyX, ModCtrl)
	assert.Equal(t, "hello", copied)
	assert.Equal(t, "", s.Text())

	press(s, KeyV, ModCtrl)
	assert.Equal(t, "clip", s.Text())
}

func TestTextStatePasteGoesThroughFilter(t *testing.T) {
	field := TextField().
		WithFilter(textinput.Numeric()).
		WithClipboard(nil, func() string { return "a1b2" })
	s := field.TextState()

	press(s, KeyV, ModCtrl)
	assert.Equal(t, "12", s.Text())
}

func TestTextStateEscapeClearsSelection(t *testing.T) {
	s := NewTextState("hello")
	press(s, KeyA, ModCtrl)
	require.True(t, s.Selection.Active())

	assert.True(t, press(s, KeyEscape, 0))
	assert.False(t, s.Selection.Active())

	// With no selection, Escape is left for the dispatcher.
	assert.False(t, press(s, KeyEscape, 0))
}

func TestTextStateOnChange(t *testing.T) {
	var changes []string
	field := TextField().OnChange(func(text string) {
		changes = append(changes, text)
	})
	s := field.TextState()

	typeString(s, "ab")
	press(s, KeyZ, ModCtrl)

	assert.Equal(t, []string{"a", "ab", "a"}, changes)

	// Navigation does not fire the change callback.
	n := len(changes)
	press(s, KeyLeft, 0)
	assert.Len(t, changes, n)
}

func TestTextStateDragCursor(t *testing.T) {
	s := NewTextState("hello world")
	s.PlaceCursor(2)

	s.DragCursor(7)
	sel, ok := s.SelectedText()
	require.True(t, ok)
	assert.Equal(t, "llo w", sel)

	// Dragging back past the anchor flips the range.
	s.DragCursor(0)
	sel, _ = s.SelectedText()
	assert.Equal(t, "he", sel)

	// Out-of-range positions clamp.
	s.DragCursor(99)
	assert.Equal(t, 11, s.Buffer.CursorPos)
}

func TestTextStateSelectWordAt(t *testing.T) {
	s := NewTextState("hello world")
	s.SelectWordAt(7)

	sel, ok := s.SelectedText()
	require.True(t, ok)
	assert.Equal(t, "world", sel)

	// The space after a word is not part of the selection.
	s.SelectWordAt(1)
	sel, _ = s.SelectedText()
	assert.Equal(t, "hello", sel)
	assert.Equal(t, 5, s.Buffer.CursorPos)
}

func TestTextStateMultibyte(t *testing.T) {
	s := NewTextState("")
	typeString(s, "héllo")
	assert.Equal(t, "héllo", s.Text())
	assert.Equal(t, 5, s.Buffer.CursorPos)

	press(s, KeyBackspace, 0)
	press(s, KeyBackspace, 0)
	press(s, KeyBackspace, 0)
	press(s, KeyBackspace, 0)
	assert.Equal(t, "h", s.Text())

	press(s, KeyZ, ModCtrl)
	assert.Equal(t, "hé", s.Text())
}
