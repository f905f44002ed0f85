package textinput

// Selection tracks an optional anchor plus a moving cursor over a
// buffer. The anchor is the fixed end of a drag; the cursor is the
// moving end. With no anchor the selection is empty; with anchor equal
// to cursor it is collapsed and behaves as empty. Range-dependent logic
// must go through Range so forward and backward drags are handled
// identically.
//
// A selection is only meaningful against the buffer content it was made
// on. Callers must not hold a selection across unrelated mutations.
type Selection struct {
	anchor   int
	anchored bool
	cursor   int
}

// Start begins a new selection with both ends at pos.
func (s *Selection) Start(pos int) {
	s.anchor = pos
	s.anchored = true
	s.cursor = pos
}

// Update moves the selection cursor to pos, anchoring at the current
// cursor first if no anchor exists yet.
func (s *Selection) Update(pos int) {
	if !s.anchored {
		s.anchor = s.cursor
		s.anchored = true
	}
	s.cursor = pos
}

// Clear drops the anchor, leaving the cursor where it is.
func (s *Selection) Clear() {
	s.anchored = false
}

// Cursor returns the moving end of the selection.
func (s *Selection) Cursor() int {
	return s.cursor
}

// SetCursor moves the cursor without touching the anchor.
func (s *Selection) SetCursor(pos int) {
	s.cursor = pos
}

// Anchor returns the fixed end and whether one exists.
func (s *Selection) Anchor() (int, bool) {
	return s.anchor, s.anchored
}

// Active reports whether an actual extent is selected: an anchor exists
// and differs from the cursor.
func (s *Selection) Active() bool {
	return s.anchored && s.anchor != s.cursor
}

// Range returns the normalized (start, end) pair with start <= end.
// ok is false when no anchor exists.
func (s *Selection) Range() (start, end int, ok bool) {
	if !s.anchored {
		return 0, 0, false
	}
	if s.anchor < s.cursor {
		return s.anchor, s.cursor, true
	}
	return s.cursor, s.anchor, true
}

// SelectedText returns the text covered by the selection in content, or
// "" and false when no anchor exists.
func (s *Selection) SelectedText(content string) (string, bool) {
	start, end, ok := s.Range()
	if !ok {
		return "", false
	}
	return sliceChars(content, start, end), true
}
