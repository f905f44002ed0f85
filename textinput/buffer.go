package textinput

import "unicode/utf8"

// Buffer holds the live content of one text input: the text itself, the
// cursor position in runes, and whether the input currently has keyboard
// focus. A Buffer is created by its owning widget and mutated only
// through ApplyEdit and the History; after every operation
// 0 <= CursorPos <= rune count of Content.
type Buffer struct {
	// Content is the text being edited. Always valid UTF-8; splices are
	// computed at rune boundaries.
	Content string

	// CursorPos is the cursor position counted in runes, not bytes.
	CursorPos int

	// Focused reports whether this input receives keyboard events.
	Focused bool
}

// NewBuffer returns a buffer containing content with the cursor at the
// end of the text.
func NewBuffer(content string) *Buffer {
	return &Buffer{
		Content:   content,
		CursorPos: utf8.RuneCountInString(content),
	}
}

// Len returns the content length in runes.
func (b *Buffer) Len() int {
	return utf8.RuneCountInString(b.Content)
}

// ClampCursor forces the cursor back into [0, Len()]. Callers that set
// CursorPos directly (mouse placement) should clamp afterwards.
func (b *Buffer) ClampCursor() {
	if b.CursorPos < 0 {
		b.CursorPos = 0
	}
	if n := b.Len(); b.CursorPos > n {
		b.CursorPos = n
	}
}

// SetText replaces the whole content and clamps the cursor.
func (b *Buffer) SetText(content string) {
	b.Content = content
	b.ClampCursor()
}

// CharToByte converts a rune index into a byte offset in s. Indices past
// the end of s map to len(s). The scan is linear; edits happen at typing
// rate so nothing is cached.
func CharToByte(s string, index int) int {
	if index <= 0 {
		return 0
	}
	n := 0
	for i := range s {
		if n == index {
			return i
		}
		n++
	}
	return len(s)
}

// ByteToChar converts a byte offset into a rune index in s: the index of
// the first rune starting at or after offset, or the rune count if
// offset is past the end.
func ByteToChar(s string, offset int) int {
	n := 0
	for i := range s {
		if i >= offset {
			return n
		}
		n++
	}
	return n
}

// sliceChars returns s[start:end] where start and end are rune indices.
func sliceChars(s string, start, end int) string {
	return s[CharToByte(s, start):CharToByte(s, end)]
}

// spliceChars replaces the rune range [start, end) of s with repl and
// returns the new string together with the text that was removed.
func spliceChars(s string, start, end int, repl string) (out, removed string) {
	sb := CharToByte(s, start)
	eb := CharToByte(s, end)
	return s[:sb] + repl + s[eb:], s[sb:eb]
}
