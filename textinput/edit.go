package textinput

import "unicode/utf8"

// ApplyEdit applies action to the buffer and selection, returning the
// record of what changed. ok is false exactly when the action had no
// effect (cursor at a boundary, empty selection, pure query); callers
// must not record anything in that case. A selection never survives a
// successful edit: every mutating branch clears the anchor.
func ApplyEdit(action EditAction, buf *Buffer, sel *Selection) (EditOp, bool) {
	switch a := action.(type) {
	case InsertChar:
		return insertText(string(rune(a)), buf, sel)

	case InsertString:
		return insertText(string(a), buf, sel)

	case Paste:
		return insertText(string(a), buf, sel)

	case DeleteBackward:
		if buf.CursorPos == 0 {
			return EditOp{}, false
		}
		return deleteRange(buf, sel, buf.CursorPos-1, buf.CursorPos, buf.CursorPos-1)

	case DeleteForward:
		if buf.CursorPos >= buf.Len() {
			return EditOp{}, false
		}
		return deleteRange(buf, sel, buf.CursorPos, buf.CursorPos+1, buf.CursorPos)

	case DeleteSelection, CutSelection:
		return deleteSelection(buf, sel)

	case DeleteWordBackward:
		start := WordBoundaryBackward(buf.Content, buf.CursorPos)
		if start >= buf.CursorPos {
			return EditOp{}, false
		}
		return deleteRange(buf, sel, start, buf.CursorPos, start)

	case DeleteWordForward:
		end := WordBoundaryForward(buf.Content, buf.CursorPos)
		if end <= buf.CursorPos {
			return EditOp{}, false
		}
		return deleteRange(buf, sel, buf.CursorPos, end, buf.CursorPos)

	case DeleteToLineStart:
		start := LineStart(buf.Content, buf.CursorPos)
		if start >= buf.CursorPos {
			return EditOp{}, false
		}
		return deleteRange(buf, sel, start, buf.CursorPos, start)

	case DeleteToLineEnd:
		end := LineEnd(buf.Content, buf.CursorPos)
		if end <= buf.CursorPos {
			return EditOp{}, false
		}
		return deleteRange(buf, sel, buf.CursorPos, end, buf.CursorPos)

	case CopySelection:
		// Pure query; the caller reads the selection itself.
		return EditOp{}, false
	}

	return EditOp{}, false
}

// insertText splices text at the cursor. An active selection is replaced
// in a single OpReplace record so that undo restores the overwritten
// text in one step.
func insertText(text string, buf *Buffer, sel *Selection) (EditOp, bool) {
	cursorBefore := buf.CursorPos
	n := utf8.RuneCountInString(text)

	if sel.Active() {
		start, end, _ := sel.Range()
		if text == "" {
			return deleteSelection(buf, sel)
		}
		content, old := spliceChars(buf.Content, start, end, text)
		buf.Content = content
		buf.CursorPos = start + n
		sel.Clear()
		return EditOp{
			Kind:         OpReplace,
			Pos:          start,
			Old:          old,
			New:          text,
			CursorBefore: cursorBefore,
			CursorAfter:  buf.CursorPos,
		}, true
	}

	if text == "" {
		return EditOp{}, false
	}

	content, _ := spliceChars(buf.Content, buf.CursorPos, buf.CursorPos, text)
	buf.Content = content
	buf.CursorPos += n
	sel.Clear()
	return EditOp{
		Kind:         OpInsert,
		Pos:          cursorBefore,
		New:          text,
		CursorBefore: cursorBefore,
		CursorAfter:  buf.CursorPos,
	}, true
}

// deleteRange removes the rune range [start, end), moves the cursor to
// cursorAfter, and clears the selection. start < end must hold.
func deleteRange(buf *Buffer, sel *Selection, start, end, cursorAfter int) (EditOp, bool) {
	cursorBefore := buf.CursorPos
	content, removed := spliceChars(buf.Content, start, end, "")
	buf.Content = content
	buf.CursorPos = cursorAfter
	sel.Clear()
	return EditOp{
		Kind:         OpDelete,
		Pos:          start,
		Old:          removed,
		CursorBefore: cursorBefore,
		CursorAfter:  cursorAfter,
	}, true
}

func deleteSelection(buf *Buffer, sel *Selection) (EditOp, bool) {
	if !sel.Active() {
		return EditOp{}, false
	}
	start, end, _ := sel.Range()
	return deleteRange(buf, sel, start, end, start)
}
