package ui

import tea "github.com/charmbracelet/bubbletea"

// View is one region of the page with its own Elm-style update cycle. The
// gallery, the contact form and the project modal implement it.
type View interface {
	Init() tea.Cmd
	Update(tea.Msg) (View, tea.Cmd)
	View() string
}
