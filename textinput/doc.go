// Package textinput implements the editing engine behind ember's text
// field and text area widgets: a UTF-8-aware buffer with cursor and
// selection state, a closed set of edit and navigation actions, word and
// line boundary detection, a bounded undo/redo history, and input
// filtering.
//
// All positions exposed by this package are rune indices, never byte
// offsets. Byte offsets are computed immediately before a splice and
// discarded, so multi-byte text can never be split.
//
// Every edge case (empty buffer, cursor at a boundary, empty selection,
// a filter-rejected character) is a no-op: mutating functions report
// that nothing happened and leave all state untouched. The engine has no
// error values.
//
// Engine values are owned exclusively by their widget and mutated only
// from the dispatch loop, so unlike the widget tree they carry no locks.
package textinput
