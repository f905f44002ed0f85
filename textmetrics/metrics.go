// Package textmetrics measures text the way a renderer sees it:
// grapheme clusters and display-width columns. The editing engine in
// package textinput addresses text by rune index; renderers drawing a
// cursor or selection highlight convert those indices into columns with
// the helpers here.
package textmetrics

import (
	"github.com/mattn/go-runewidth"
	"github.com/rivo/uniseg"
)

// GraphemeCount returns the number of user-perceived characters in s.
// This can be smaller than the rune count: a flag emoji or a combining
// sequence is one grapheme but several runes.
func GraphemeCount(s string) int {
	return uniseg.GraphemeClusterCount(s)
}

// Graphemes splits s into grapheme clusters in order.
func Graphemes(s string) []string {
	if s == "" {
		return nil
	}
	var out []string
	state := -1
	for len(s) > 0 {
		var cluster string
		cluster, s, _, state = uniseg.FirstGraphemeClusterInString(s, state)
		out = append(out, cluster)
	}
	return out
}

// Width returns the display width of s in terminal-style columns, with
// East Asian wide characters and emoji counting as two.
func Width(s string) int {
	return runewidth.StringWidth(s)
}

// CursorColumn returns the display column of a cursor sitting at rune
// index cursorPos in content. Positions past the end land after the last
// character.
func CursorColumn(content string, cursorPos int) int {
	col := 0
	n := 0
	for _, r := range content {
		if n == cursorPos {
			break
		}
		col += runewidth.RuneWidth(r)
		n++
	}
	return col
}

// Truncate shortens s to at most maxWidth columns, appending tail when
// anything was cut.
func Truncate(s string, maxWidth int, tail string) string {
	return runewidth.Truncate(s, maxWidth, tail)
}
