package textinput

import (
	"unicode"
	"unicode/utf8"
)

// ApplyNavigation computes the cursor position that results from action,
// given the current position and content. It is a pure function: the
// buffer and selection are untouched. Word motion here is
// whitespace-sensitive only; see boundary.go for the class-sensitive
// boundaries used by word deletion.
func ApplyNavigation(action NavigationAction, cursorPos int, content string) int {
	charCount := utf8.RuneCountInString(content)

	switch action {
	case NavCharLeft:
		if cursorPos <= 0 {
			return 0
		}
		return cursorPos - 1

	case NavCharRight:
		if cursorPos+1 > charCount {
			return charCount
		}
		return cursorPos + 1

	case NavLineStart:
		return LineStart(content, cursorPos)

	case NavLineEnd:
		return LineEnd(content, cursorPos)

	case NavWordLeft:
		if cursorPos == 0 {
			return 0
		}
		chars := []rune(content)
		pos := cursorPos - 1
		for pos > 0 && unicode.IsSpace(chars[pos]) {
			pos--
		}
		for pos > 0 && !unicode.IsSpace(chars[pos-1]) {
			pos--
		}
		return pos

	case NavWordRight:
		if cursorPos >= charCount {
			return charCount
		}
		chars := []rune(content)
		pos := cursorPos
		for pos < charCount && !unicode.IsSpace(chars[pos]) {
			pos++
		}
		for pos < charCount && unicode.IsSpace(chars[pos]) {
			pos++
		}
		return pos

	case NavDocumentStart:
		return 0

	case NavDocumentEnd:
		return charCount

	case NavLineUp, NavLineDown:
		// Vertical motion needs layout information the engine does not
		// have; single-line inputs keep the cursor in place.
		return cursorPos
	}

	return cursorPos
}
