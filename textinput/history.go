package textinput

import "unicode/utf8"

// DefaultHistorySize bounds undo/redo stacks when no explicit size is
// given.
const DefaultHistorySize = 100

// History is a linear undo/redo history: two bounded stacks of edit
// records. Recording a new edit clears the redo stack; there is no
// branching. When the undo stack overflows, the oldest record is
// evicted.
type History struct {
	undo []EditOp
	redo []EditOp
	max  int
}

// NewHistory returns a history bounded to maxSize records per stack.
// Sizes <= 0 fall back to DefaultHistorySize.
func NewHistory(maxSize int) *History {
	if maxSize <= 0 {
		maxSize = DefaultHistorySize
	}
	return &History{max: maxSize}
}

// Push records a completed edit and clears the redo stack.
func (h *History) Push(op EditOp) {
	h.pushUndo(op)
	h.redo = h.redo[:0]
}

func (h *History) pushUndo(op EditOp) {
	h.undo = append(h.undo, op)
	if len(h.undo) > h.max {
		// Evict the oldest record. The copy keeps the slice from
		// pinning evicted records alive.
		copy(h.undo, h.undo[1:])
		h.undo = h.undo[:len(h.undo)-1]
	}
}

// CanUndo reports whether an edit is available to undo.
func (h *History) CanUndo() bool { return len(h.undo) > 0 }

// CanRedo reports whether an undone edit is available to redo.
func (h *History) CanRedo() bool { return len(h.redo) > 0 }

// Undo pops the most recent record, applies its structural inverse to
// the buffer, restores the cursor to its pre-edit position, and moves
// the record to the redo stack. Returns false when there is nothing to
// undo.
func (h *History) Undo(buf *Buffer, sel *Selection) bool {
	if len(h.undo) == 0 {
		return false
	}
	op := h.undo[len(h.undo)-1]
	h.undo = h.undo[:len(h.undo)-1]

	applyOp(buf, op.Inverse())
	sel.Clear()
	h.redo = append(h.redo, op)
	return true
}

// Redo reapplies the most recently undone record, restores the cursor to
// its post-edit position, and moves the record back to the undo stack.
// Returns false when there is nothing to redo.
func (h *History) Redo(buf *Buffer, sel *Selection) bool {
	if len(h.redo) == 0 {
		return false
	}
	op := h.redo[len(h.redo)-1]
	h.redo = h.redo[:len(h.redo)-1]

	applyOp(buf, op)
	sel.Clear()
	h.pushUndo(op)
	return true
}

// applyOp replays op against the buffer: the rune range holding op.Old
// is replaced with op.New and the cursor lands at op.CursorAfter.
func applyOp(buf *Buffer, op EditOp) {
	end := op.Pos + utf8.RuneCountInString(op.Old)
	buf.Content, _ = spliceChars(buf.Content, op.Pos, end, op.New)
	buf.CursorPos = op.CursorAfter
}
