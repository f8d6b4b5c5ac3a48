package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Rect is a rectangle of terminal cells.
type Rect struct {
	X, Y, W, H int
}

// Contains reports whether the cell (x, y) lies inside r.
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.X+r.W && y >= r.Y && y < r.Y+r.H
}

// Offset returns r moved by (dx, dy).
func (r Rect) Offset(dx, dy int) Rect {
	r.X += dx
	r.Y += dy
	return r
}

// blockRect returns the rect a rendered block occupies at (x, y).
func blockRect(block string, x, y int) Rect {
	return Rect{X: x, Y: y, W: lipgloss.Width(block), H: lipgloss.Height(block)}
}

// column stacks blocks vertically and remembers where each one starts.
type column struct {
	parts  []string
	height int
}

// add appends block and returns the row it starts on.
func (c *column) add(block string) int {
	top := c.height
	c.parts = append(c.parts, block)
	c.height += lipgloss.Height(block)
	return top
}

// gap appends n blank lines.
func (c *column) gap(n int) {
	for i := 0; i < n; i++ {
		c.add("")
	}
}

func (c *column) String() string {
	return strings.Join(c.parts, "\n")
}
