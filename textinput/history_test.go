package textinput

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUndoRestoresInsert(t *testing.T) {
	buf := NewBuffer("hello")
	var sel Selection
	h := NewHistory(0)

	op, ok := ApplyEdit(InsertString(" world"), buf, &sel)
	require.True(t, ok)
	h.Push(op)

	require.True(t, h.Undo(buf, &sel))
	assert.Equal(t, "hello", buf.Content)
	assert.Equal(t, op.CursorBefore, buf.CursorPos)
	assert.False(t, h.CanUndo())
	assert.True(t, h.CanRedo())

	require.True(t, h.Redo(buf, &sel))
	assert.Equal(t, "hello world", buf.Content)
	assert.Equal(t, op.CursorAfter, buf.CursorPos)
}

func TestUndoRestoresDelete(t *testing.T) {
	buf := NewBuffer("héllo wörld")
	var sel Selection
	h := NewHistory(0)

	op, ok := ApplyEdit(DeleteWordBackward{}, buf, &sel)
	require.True(t, ok)
	assert.Equal(t, "héllo ", buf.Content)
	h.Push(op)

	require.True(t, h.Undo(buf, &sel))
	assert.Equal(t, "héllo wörld", buf.Content)
	assert.Equal(t, 11, buf.CursorPos)
}

func TestUndoRestoresReplace(t *testing.T) {
	buf := NewBuffer("hello world")
	var sel Selection
	h := NewHistory(0)

	sel.Start(0)
	sel.Update(5)
	op, ok := ApplyEdit(InsertString("goodbye"), buf, &sel)
	require.True(t, ok)
	assert.Equal(t, "goodbye world", buf.Content)
	h.Push(op)

	require.True(t, h.Undo(buf, &sel))
	assert.Equal(t, "hello world", buf.Content)

	require.True(t, h.Redo(buf, &sel))
	assert.Equal(t, "goodbye world", buf.Content)
	assert.Equal(t, 7, buf.CursorPos)
}

func TestInverseRoundTrip(t *testing.T) {
	op := EditOp{Kind: OpInsert, Pos: 3, New: "abc", CursorBefore: 3, CursorAfter: 6}

	inv := op.Inverse()
	assert.Equal(t, OpDelete, inv.Kind)
	assert.Equal(t, "abc", inv.Old)
	assert.Equal(t, op.CursorAfter, inv.CursorBefore)

	assert.Equal(t, op, inv.Inverse())
}

func TestPushClearsRedo(t *testing.T) {
	buf := NewBuffer("")
	var sel Selection
	h := NewHistory(0)

	op, _ := ApplyEdit(InsertChar('a'), buf, &sel)
	h.Push(op)
	require.True(t, h.Undo(buf, &sel))
	require.True(t, h.CanRedo())

	op, _ = ApplyEdit(InsertChar('b'), buf, &sel)
	h.Push(op)
	assert.False(t, h.CanRedo(), "new edit must drop the redo branch")
	assert.Equal(t, "b", buf.Content)
}

func TestHistoryEvictsOldest(t *testing.T) {
	buf := NewBuffer("")
	var sel Selection
	h := NewHistory(3)

	for i := 0; i < 5; i++ {
		op, ok := ApplyEdit(InsertChar(rune('a'+i)), buf, &sel)
		require.True(t, ok)
		h.Push(op)
	}
	assert.Equal(t, "abcde", buf.Content)

	// Only the last three edits are recoverable.
	undone := 0
	for h.Undo(buf, &sel) {
		undone++
	}
	assert.Equal(t, 3, undone)
	assert.Equal(t, "ab", buf.Content)
}

func TestUndoEmptyHistory(t *testing.T) {
	buf := NewBuffer("hello")
	var sel Selection
	h := NewHistory(0)

	assert.False(t, h.Undo(buf, &sel))
	assert.False(t, h.Redo(buf, &sel))
	assert.Equal(t, "hello", buf.Content)
}

func TestUndoClearsSelection(t *testing.T) {
	buf := NewBuffer("hello")
	var sel Selection
	h := NewHistory(0)

	op, _ := ApplyEdit(InsertChar('!'), buf, &sel)
	h.Push(op)

	sel.Start(0)
	sel.Update(3)
	require.True(t, h.Undo(buf, &sel))
	assert.False(t, sel.Active())
}

func TestLongEditSessionUndoesCompletely(t *testing.T) {
	buf := NewBuffer("")
	var sel Selection
	h := NewHistory(DefaultHistorySize)

	for i := 0; i < 20; i++ {
		op, ok := ApplyEdit(InsertString(fmt.Sprintf("word%d ", i)), buf, &sel)
		require.True(t, ok)
		h.Push(op)
	}
	for i := 0; i < 5; i++ {
		op, ok := ApplyEdit(DeleteWordBackward{}, buf, &sel)
		require.True(t, ok)
		h.Push(op)
	}

	for h.Undo(buf, &sel) {
	}
	assert.Equal(t, "", buf.Content)
	assert.Equal(t, 0, buf.CursorPos)
}
