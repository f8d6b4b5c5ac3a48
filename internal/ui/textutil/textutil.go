// Package textutil provides unicode-aware text helpers for fixed-width cells.
package textutil

import (
	"strings"

	"github.com/mattn/go-runewidth"
)

// Ellipsis marks truncated text.
const Ellipsis = "…"

// Width returns the number of terminal columns s occupies.
func Width(s string) int {
	return runewidth.StringWidth(s)
}

// Truncate shortens s to at most max columns, ending in an ellipsis when
// anything was cut.
func Truncate(s string, max int) string {
	if max <= 0 {
		return ""
	}
	if Width(s) <= max {
		return s
	}
	if max <= Width(Ellipsis) {
		return Ellipsis
	}
	return runewidth.Truncate(s, max, Ellipsis)
}

// Fit pads or truncates s to exactly width columns.
func Fit(s string, width int) string {
	s = Truncate(s, width)
	return runewidth.FillRight(s, width)
}

// Center places s in the middle of width columns, filling both sides with
// fill. s is truncated first if it does not fit.
func Center(s string, width int, fill string) string {
	s = Truncate(s, width)
	gap := width - Width(s)
	if gap <= 0 {
		return s
	}
	left := gap / 2
	return strings.Repeat(fill, left) + s + strings.Repeat(fill, gap-left)
}
