package ui

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/lipgloss"
)

// KeyMap holds every binding of the app. It implements help.KeyMap; the
// bindings shown depend on whether the project modal is open and which
// region has focus.
type KeyMap struct {
	Quit     key.Binding
	QuitPage key.Binding // only while the gallery has focus
	Next     key.Binding
	Prev     key.Binding
	Up       key.Binding
	Down     key.Binding
	Left     key.Binding
	Right    key.Binding
	Open     key.Binding
	Submit   key.Binding
	Close    key.Binding
	PageUp   key.Binding
	PageDown key.Binding

	modalOpen bool
	focus     string
}

var _ help.KeyMap = (*KeyMap)(nil)

// DefaultKeyMap returns the app bindings.
func DefaultKeyMap() *KeyMap {
	return &KeyMap{
		Quit:     key.NewBinding(key.WithKeys("ctrl+c"), key.WithHelp("ctrl+c", "quit")),
		QuitPage: key.NewBinding(key.WithKeys("q"), key.WithHelp("q", "quit")),
		Next:     key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "next")),
		Prev:     key.NewBinding(key.WithKeys("shift+tab"), key.WithHelp("shift+tab", "prev")),
		Up:       key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
		Down:     key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
		Left:     key.NewBinding(key.WithKeys("left", "h"), key.WithHelp("←/h", "left")),
		Right:    key.NewBinding(key.WithKeys("right", "l"), key.WithHelp("→/l", "right")),
		Open:     key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "open")),
		Submit:   key.NewBinding(key.WithKeys("ctrl+s"), key.WithHelp("ctrl+s", "send")),
		Close:    key.NewBinding(key.WithKeys("esc", "q"), key.WithHelp("esc", "close")),
		PageUp:   key.NewBinding(key.WithKeys("pgup"), key.WithHelp("pgup", "scroll up")),
		PageDown: key.NewBinding(key.WithKeys("pgdown"), key.WithHelp("pgdn", "scroll down")),
	}
}

// SetContext selects which bindings the help view shows.
func (km *KeyMap) SetContext(modalOpen bool, focus string) {
	km.modalOpen = modalOpen
	km.focus = focus
}

// ShortHelp implements help.KeyMap.
func (km *KeyMap) ShortHelp() []key.Binding {
	if km.modalOpen {
		return []key.Binding{km.Close, km.Up, km.Down, km.Quit}
	}
	switch km.focus {
	case FocusGallery:
		return []key.Binding{km.Left, km.Right, km.Open, km.Next, km.PageDown, km.QuitPage}
	case FocusSubmit:
		return []key.Binding{km.Open, km.Next, km.Prev, km.Quit}
	default:
		return []key.Binding{km.Next, km.Prev, km.Submit, km.Quit}
	}
}

// FullHelp implements help.KeyMap.
func (km *KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{km.ShortHelp()}
}

// newHelp returns a help model styled like the rest of the app.
func newHelp() help.Model {
	h := help.New()
	h.Styles.ShortKey = lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorHighlight)).
		Bold(true)
	h.Styles.ShortDesc = lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorMuted))
	h.Styles.ShortSeparator = lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorMuted))
	return h
}
