package textinput

import (
	"strings"
	"unicode"
)

// Boundary detection for word deletion and line motion. Word deletion
// classifies alphanumeric runs separately from punctuation runs, so in
// "foo.bar" the dot is its own unit. Plain word navigation (navigate.go)
// is whitespace-sensitive only; the two deliberately disagree.

func isWordRune(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsDigit(r)
}

// WordBoundaryBackward returns the start of the word unit that ends at
// pos: whitespace before the cursor is skipped, then an alphanumeric
// run, then any directly adjoining punctuation run.
func WordBoundaryBackward(text string, pos int) int {
	if pos == 0 {
		return 0
	}
	chars := []rune(text)
	idx := pos
	if idx > len(chars) {
		idx = len(chars)
	}

	for idx > 0 && unicode.IsSpace(chars[idx-1]) {
		idx--
	}
	for idx > 0 && !unicode.IsSpace(chars[idx-1]) && isWordRune(chars[idx-1]) {
		idx--
	}
	// A punctuation run directly before the cursor counts as its own word.
	for idx > 0 && !unicode.IsSpace(chars[idx-1]) && !isWordRune(chars[idx-1]) {
		idx--
	}
	return idx
}

// WordBoundaryForward returns the end of the word unit that starts at
// pos: one alphanumeric run or one punctuation run, plus the whitespace
// that follows it.
func WordBoundaryForward(text string, pos int) int {
	chars := []rune(text)
	n := len(chars)
	if pos >= n {
		return n
	}

	idx := pos
	if isWordRune(chars[idx]) {
		for idx < n && isWordRune(chars[idx]) {
			idx++
		}
	} else if !unicode.IsSpace(chars[idx]) {
		for idx < n && !unicode.IsSpace(chars[idx]) && !isWordRune(chars[idx]) {
			idx++
		}
	}
	for idx < n && unicode.IsSpace(chars[idx]) {
		idx++
	}
	return idx
}

// LineStart returns the rune index just after the nearest newline before
// pos, or 0 when the cursor is on the first line.
func LineStart(text string, pos int) int {
	bytePos := CharToByte(text, pos)
	if i := strings.LastIndexByte(text[:bytePos], '\n'); i >= 0 {
		return ByteToChar(text, i+1)
	}
	return 0
}

// LineEnd returns the rune index of the nearest newline at or after pos,
// or the rune count when the cursor is on the last line.
func LineEnd(text string, pos int) int {
	bytePos := CharToByte(text, pos)
	if i := strings.IndexByte(text[bytePos:], '\n'); i >= 0 {
		return ByteToChar(text, bytePos+i)
	}
	return ByteToChar(text, len(text))
}
