package textinput

// NavigationAction identifies a cursor movement. Navigation never
// mutates the buffer; selection extension on shift-navigate is the
// dispatch layer's job.
type NavigationAction uint8

const (
	// NavCharLeft moves one rune left.
	NavCharLeft NavigationAction = iota + 1
	// NavCharRight moves one rune right.
	NavCharRight
	// NavLineUp is a stub; single-line inputs keep the cursor in place.
	NavLineUp
	// NavLineDown is a stub; single-line inputs keep the cursor in place.
	NavLineDown
	// NavLineStart moves to the start of the current line.
	NavLineStart
	// NavLineEnd moves to the end of the current line.
	NavLineEnd
	// NavWordLeft moves to the start of the previous word.
	NavWordLeft
	// NavWordRight moves past the end of the next word.
	NavWordRight
	// NavDocumentStart moves to position 0.
	NavDocumentStart
	// NavDocumentEnd moves past the last rune.
	NavDocumentEnd
)

// EditAction is one member of the closed set of buffer mutations. The
// concrete types below are the only implementations.
type EditAction interface {
	editAction()
}

// InsertChar inserts a single rune at the cursor, replacing any active
// selection.
type InsertChar rune

// InsertString inserts a string at the cursor, replacing any active
// selection.
type InsertString string

// Paste inserts externally sourced text; identical to InsertString.
// Reading the clipboard is the caller's side effect.
type Paste string

// DeleteBackward removes the rune before the cursor.
type DeleteBackward struct{}

// DeleteForward removes the rune after the cursor.
type DeleteForward struct{}

// DeleteSelection removes the selected range.
type DeleteSelection struct{}

// DeleteWordBackward removes from the previous word boundary to the cursor.
type DeleteWordBackward struct{}

// DeleteWordForward removes from the cursor to the next word boundary.
type DeleteWordForward struct{}

// DeleteToLineStart removes from the start of the line to the cursor.
type DeleteToLineStart struct{}

// DeleteToLineEnd removes from the cursor to the end of the line.
type DeleteToLineEnd struct{}

// CutSelection removes the selected range; writing it to a clipboard is
// the caller's side effect.
type CutSelection struct{}

// CopySelection is a pure query. It never mutates and never produces an
// edit record.
type CopySelection struct{}

func (InsertChar) editAction()         {}
func (InsertString) editAction()       {}
func (Paste) editAction()              {}
func (DeleteBackward) editAction()     {}
func (DeleteForward) editAction()      {}
func (DeleteSelection) editAction()    {}
func (DeleteWordBackward) editAction() {}
func (DeleteWordForward) editAction()  {}
func (DeleteToLineStart) editAction()  {}
func (DeleteToLineEnd) editAction()    {}
func (CutSelection) editAction()       {}
func (CopySelection) editAction()      {}

// OpKind classifies an edit record.
type OpKind uint8

const (
	// OpInsert added text at Pos.
	OpInsert OpKind = iota + 1
	// OpDelete removed text at Pos.
	OpDelete
	// OpReplace swapped Old for New at Pos.
	OpReplace
)

// EditOp is an immutable, independently invertible record of one
// completed buffer mutation. Pos is a rune index. Old is the text the
// operation removed, New the text it added; inserts have empty Old and
// deletes empty New.
type EditOp struct {
	Kind         OpKind
	Pos          int
	Old          string
	New          string
	CursorBefore int
	CursorAfter  int
}

// Inverse returns the record that undoes op: an insert becomes a delete
// of the same text at the same position, a delete becomes an insert, and
// a replace swaps Old and New. Cursor fields swap with the direction.
func (op EditOp) Inverse() EditOp {
	inv := EditOp{
		Pos:          op.Pos,
		Old:          op.New,
		New:          op.Old,
		CursorBefore: op.CursorAfter,
		CursorAfter:  op.CursorBefore,
	}
	switch op.Kind {
	case OpInsert:
		inv.Kind = OpDelete
	case OpDelete:
		inv.Kind = OpInsert
	default:
		inv.Kind = OpReplace
	}
	return inv
}
