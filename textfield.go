package ember

import (
	"strings"
	"unicode"

	"github.com/emberkit/ember/textinput"
)

// TextState bundles everything one text input owns: its buffer,
// selection, undo history, and input filter. Each text field or text
// area widget creates its own TextState when built and discards it with
// the widget. State is not shared between widgets.
type TextState struct {
	Buffer    *textinput.Buffer
	Selection textinput.Selection
	History   *textinput.History
	Filter    textinput.Filter

	multiline      bool
	retainOnSubmit bool
	placeholder    string
	historySize    int

	onChange func(text string)
	onSubmit func(text string)

	// Clipboard access is delegated to the host. Nil callbacks make
	// copy, cut, and paste degrade gracefully (cut still deletes).
	copyFn  func(text string)
	pasteFn func() string
}

// NewTextState returns editing state over initial content with the
// cursor at the end, an unbounded filter, and a default-sized history.
func NewTextState(initial string) *TextState {
	return &TextState{
		Buffer:  textinput.NewBuffer(initial),
		History: textinput.NewHistory(0),
	}
}

// Text returns the current buffer content.
func (s *TextState) Text() string { return s.Buffer.Content }

// SetText replaces the content programmatically. The selection is
// dropped and the replacement is not recorded in history, matching how
// form resets behave.
func (s *TextState) SetText(text string) {
	s.Buffer.SetText(text)
	s.Selection.Clear()
	s.Selection.SetCursor(s.Buffer.CursorPos)
}

// Placeholder returns the hint text shown while the buffer is empty.
func (s *TextState) Placeholder() string { return s.placeholder }

// Multiline reports whether Enter inserts a newline instead of
// submitting.
func (s *TextState) Multiline() bool { return s.multiline }

// SelectedText returns the currently selected text, if any.
func (s *TextState) SelectedText() (string, bool) {
	text, ok := s.Selection.SelectedText(s.Buffer.Content)
	if !ok || text == "" {
		return "", false
	}
	return text, true
}

// SelectAll selects the whole buffer and parks the cursor at the end.
func (s *TextState) SelectAll() {
	n := s.Buffer.Len()
	s.Selection.Start(0)
	s.Selection.Update(n)
	s.Buffer.CursorPos = n
}

// SelectWordAt selects the word containing the rune position pos, as a
// double click would.
func (s *TextState) SelectWordAt(pos int) {
	if pos < 0 {
		pos = 0
	}
	if n := s.Buffer.Len(); pos > n {
		pos = n
	}
	// The forward boundary includes trailing whitespace for deletion;
	// a selection stops at the end of the word itself.
	chars := []rune(s.Buffer.Content)
	end := textinput.WordBoundaryForward(s.Buffer.Content, pos)
	for end > pos && unicode.IsSpace(chars[end-1]) {
		end--
	}
	start := textinput.WordBoundaryBackward(s.Buffer.Content, end)
	s.Selection.Start(start)
	s.Selection.Update(end)
	s.Buffer.CursorPos = end
}

// DragCursor extends the selection to the rune position pos, anchoring
// at the current cursor on the first call, as a mouse drag would.
func (s *TextState) DragCursor(pos int) {
	if pos < 0 {
		pos = 0
	}
	if n := s.Buffer.Len(); pos > n {
		pos = n
	}
	if _, anchored := s.Selection.Anchor(); !anchored {
		s.Selection.Start(s.Buffer.CursorPos)
	}
	s.Buffer.CursorPos = pos
	s.Selection.Update(pos)
}

// PlaceCursor moves the cursor to the rune position pos and drops any
// selection, as a single click would.
func (s *TextState) PlaceCursor(pos int) {
	s.Buffer.CursorPos = pos
	s.Buffer.ClampCursor()
	s.Selection.Clear()
	s.Selection.SetCursor(s.Buffer.CursorPos)
}

// Undo reverts the most recent edit. Returns false when the history is
// empty.
func (s *TextState) Undo() bool {
	before := s.Buffer.Content
	if !s.History.Undo(s.Buffer, &s.Selection) {
		return false
	}
	s.Selection.SetCursor(s.Buffer.CursorPos)
	s.notifyChange(before)
	return true
}

// Redo reapplies the most recently undone edit. Returns false when
// there is nothing to redo.
func (s *TextState) Redo() bool {
	before := s.Buffer.Content
	if !s.History.Redo(s.Buffer, &s.Selection) {
		return false
	}
	s.Selection.SetCursor(s.Buffer.CursorPos)
	s.notifyChange(before)
	return true
}

// InsertFiltered runs text through the field's filter, transform, and
// length cap, then inserts whatever survives. Returns false when
// nothing passed the filter or the cap left no room.
func (s *TextState) InsertFiltered(text string) bool {
	filtered := s.filterAgainstContent(text)
	if filtered == "" {
		return false
	}
	filtered = s.Filter.ApplyTransform(filtered)

	// The cap is checked against the content as it will be after any
	// selected text is replaced.
	remaining := s.Buffer.Len()
	if start, end, ok := s.Selection.Range(); ok {
		remaining -= end - start
	}
	if s.Filter.MaxLength > 0 {
		room := s.Filter.MaxLength - remaining
		if room <= 0 {
			return false
		}
		filtered = truncateRunes(filtered, room)
	}

	return s.applyEdit(textinput.InsertString(filtered))
}

// filterAgainstContent validates candidate runes against the buffer
// content plus what has already been accepted, so positional rules such
// as "one dot" hold against the existing text.
func (s *TextState) filterAgainstContent(text string) string {
	var sb strings.Builder
	sb.Grow(len(text))
	for _, ch := range text {
		if ch == '\n' && !s.multiline {
			continue
		}
		if ch == '\n' || s.Filter.IsValidChar(ch, s.Buffer.Content+sb.String()) {
			sb.WriteRune(ch)
		}
	}
	return sb.String()
}

func truncateRunes(text string, n int) string {
	for i := range text {
		if n == 0 {
			return text[:i]
		}
		n--
	}
	return text
}

// Cut copies the selected text to the host clipboard and deletes it.
func (s *TextState) Cut() bool {
	text, ok := s.SelectedText()
	if !ok {
		return false
	}
	if s.copyFn != nil {
		s.copyFn(text)
	}
	return s.applyEdit(textinput.CutSelection{})
}

// Copy sends the selected text to the host clipboard without mutating
// the buffer.
func (s *TextState) Copy() bool {
	text, ok := s.SelectedText()
	if !ok {
		return false
	}
	if s.copyFn != nil {
		s.copyFn(text)
	}
	return true
}

// Paste inserts host clipboard content through the filter.
func (s *TextState) Paste() bool {
	if s.pasteFn == nil {
		return false
	}
	return s.InsertFiltered(s.pasteFn())
}

// HandleKey translates a key event into editing engine actions and
// applies them. Returns true when the event was consumed. Tab is left
// unconsumed so the dispatcher can move focus.
func (s *TextState) HandleKey(e *KeyEvent) bool {
	switch e.Key {
	case KeyLeft:
		action := textinput.NavCharLeft
		if e.Mods.Primary() {
			action = textinput.NavWordLeft
		}
		s.navigate(action, e.Mods.Shift())
		return true

	case KeyRight:
		action := textinput.NavCharRight
		if e.Mods.Primary() {
			action = textinput.NavWordRight
		}
		s.navigate(action, e.Mods.Shift())
		return true

	case KeyUp:
		s.navigate(textinput.NavLineUp, e.Mods.Shift())
		return true

	case KeyDown:
		s.navigate(textinput.NavLineDown, e.Mods.Shift())
		return true

	case KeyHome:
		action := textinput.NavLineStart
		if e.Mods.Primary() {
			action = textinput.NavDocumentStart
		}
		s.navigate(action, e.Mods.Shift())
		return true

	case KeyEnd:
		action := textinput.NavLineEnd
		if e.Mods.Primary() {
			action = textinput.NavDocumentEnd
		}
		s.navigate(action, e.Mods.Shift())
		return true

	case KeyBackspace:
		if s.Selection.Active() {
			return s.applyEdit(textinput.DeleteSelection{})
		}
		switch {
		case e.Mods.Primary() && e.Mods.Shift():
			return s.applyEdit(textinput.DeleteToLineStart{})
		case e.Mods.Primary():
			return s.applyEdit(textinput.DeleteWordBackward{})
		default:
			return s.applyEdit(textinput.DeleteBackward{})
		}

	case KeyDelete:
		if s.Selection.Active() {
			return s.applyEdit(textinput.DeleteSelection{})
		}
		switch {
		case e.Mods.Primary() && e.Mods.Shift():
			return s.applyEdit(textinput.DeleteToLineEnd{})
		case e.Mods.Primary():
			return s.applyEdit(textinput.DeleteWordForward{})
		default:
			return s.applyEdit(textinput.DeleteForward{})
		}

	case KeyA:
		if e.Mods.Primary() {
			s.SelectAll()
			return true
		}

	case KeyZ:
		if e.Mods.Primary() {
			if e.Mods.Shift() {
				s.Redo()
			} else {
				s.Undo()
			}
			return true
		}

	case KeyY:
		if e.Mods.Primary() {
			s.Redo()
			return true
		}

	case KeyX:
		if e.Mods.Primary() {
			s.Cut()
			return true
		}

	case KeyC:
		if e.Mods.Primary() {
			s.Copy()
			return true
		}

	case KeyV:
		if e.Mods.Primary() {
			s.Paste()
			return true
		}

	case KeyEnter:
		if s.multiline {
			return s.InsertFiltered("\n")
		}
		s.submit()
		return true

	case KeyEscape:
		if s.Selection.Active() {
			s.Selection.Clear()
			return true
		}
		return false

	case KeyRune:
		if e.Mods.Primary() || e.Mods.Alt() {
			return false
		}
		return s.InsertFiltered(string(e.Rune))
	}
	return false
}

// navigate moves the cursor by action. With extend the selection grows
// from its anchor; without it an active selection collapses to the edge
// the motion points at, and other motions land normally.
func (s *TextState) navigate(action textinput.NavigationAction, extend bool) {
	if extend {
		if _, anchored := s.Selection.Anchor(); !anchored {
			s.Selection.Start(s.Buffer.CursorPos)
		}
		pos := textinput.ApplyNavigation(action, s.Buffer.CursorPos, s.Buffer.Content)
		s.Buffer.CursorPos = pos
		s.Selection.Update(pos)
		return
	}

	if s.Selection.Active() {
		start, end, _ := s.Selection.Range()
		switch action {
		case textinput.NavCharLeft:
			s.Buffer.CursorPos = start
			s.clearSelection()
			return
		case textinput.NavCharRight:
			s.Buffer.CursorPos = end
			s.clearSelection()
			return
		}
	}

	s.Buffer.CursorPos = textinput.ApplyNavigation(action, s.Buffer.CursorPos, s.Buffer.Content)
	s.clearSelection()
}

func (s *TextState) clearSelection() {
	s.Selection.Clear()
	s.Selection.SetCursor(s.Buffer.CursorPos)
}

func (s *TextState) applyEdit(action textinput.EditAction) bool {
	before := s.Buffer.Content
	op, ok := textinput.ApplyEdit(action, s.Buffer, &s.Selection)
	if !ok {
		return false
	}
	s.History.Push(op)
	s.Selection.SetCursor(s.Buffer.CursorPos)
	s.notifyChange(before)
	return true
}

func (s *TextState) submit() {
	text := s.Buffer.Content
	if s.onSubmit != nil {
		s.onSubmit(text)
	}
	if !s.retainOnSubmit {
		before := s.Buffer.Content
		s.SetText("")
		s.History = textinput.NewHistory(s.historySize)
		s.notifyChange(before)
	}
}

func (s *TextState) notifyChange(before string) {
	if s.onChange != nil && s.Buffer.Content != before {
		s.onChange(s.Buffer.Content)
	}
}
