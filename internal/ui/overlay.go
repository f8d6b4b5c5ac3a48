package ui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// Overlay is a view drawn over the page, such as the project modal.
type Overlay struct {
	View    View
	Dismiss key.Binding // keys that close the overlay
}

// IsDismissKey reports whether msg should close this overlay.
func (o *Overlay) IsDismissKey(msg tea.KeyMsg) bool {
	return key.Matches(msg, o.Dismiss)
}

// OverlayStack holds the open overlays; the topmost receives input first.
type OverlayStack struct {
	stack []Overlay
}

// Push adds an overlay on top.
func (s *OverlayStack) Push(o Overlay) {
	s.stack = append(s.stack, o)
}

// Pop removes and returns the top overlay.
func (s *OverlayStack) Pop() (Overlay, bool) {
	top, ok := s.Peek()
	if ok {
		s.stack = s.stack[:len(s.stack)-1]
	}
	return top, ok
}

// Peek returns the top overlay without removing it.
func (s *OverlayStack) Peek() (Overlay, bool) {
	if len(s.stack) == 0 {
		return Overlay{}, false
	}
	return s.stack[len(s.stack)-1], true
}

// Len returns the number of open overlays.
func (s *OverlayStack) Len() int {
	return len(s.stack)
}

// UpdateTop passes msg to the top overlay and stores the view it returns.
// The bool is false when no overlay is open.
func (s *OverlayStack) UpdateTop(msg tea.Msg) (tea.Cmd, bool) {
	if len(s.stack) == 0 {
		return nil, false
	}
	top := &s.stack[len(s.stack)-1]
	next, cmd := top.View.Update(msg)
	top.View = next
	return cmd, true
}

// Each calls fn for every overlay, bottom first.
func (s *OverlayStack) Each(fn func(View)) {
	for _, o := range s.stack {
		fn(o.View)
	}
}
