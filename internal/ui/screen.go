package ui

import (
	tea "github.com/charmbracelet/bubbletea"

	"folio/internal/page"
)

// Screen is the terminal side of the page environment. The title is pushed
// to the terminal through Flush; the scroll lock is read by the app before
// it hands scroll input to the page viewport.
type Screen struct {
	title   string
	pending bool
	locked  bool
}

var _ page.Environment = (*Screen)(nil)

// SetTitle implements page.Environment.
func (s *Screen) SetTitle(title string) {
	s.title = title
	s.pending = true
}

// SetScrollLocked implements page.Environment.
func (s *Screen) SetScrollLocked(locked bool) {
	s.locked = locked
}

// Title returns the last title set.
func (s *Screen) Title() string { return s.title }

// ScrollLocked reports whether page scrolling is suppressed.
func (s *Screen) ScrollLocked() bool { return s.locked }

// Flush returns the command that applies a pending title change, or nil.
func (s *Screen) Flush() tea.Cmd {
	if !s.pending {
		return nil
	}
	s.pending = false
	return tea.SetWindowTitle(s.title)
}
