package ui

import "github.com/charmbracelet/lipgloss"

// Theme colors used throughout the UI
const (
	ColorAccent    = "86"  // Cyan/green - titles, highlights
	ColorHighlight = "205" // Magenta - focused items, borders
	ColorDanger    = "196" // Red - errors
	ColorMuted     = "241" // Gray - dimmed text, hints
	ColorText      = "252" // Light gray - normal text
	ColorDim       = "243" // Darker gray - placeholders
	ColorSurface   = "255" // Toast background
	ColorBackdrop  = "236" // Modal backdrop
)

// Panel geometry shared by the modal renderer and its hit tests.
const (
	panelBorder = 1
	panelPadX   = 2
	panelPadY   = 1
)

// Styles contains shared style definitions used across views.
var Styles = struct {
	Title   lipgloss.Style // Page title
	Section lipgloss.Style // Section headers
	Muted   lipgloss.Style
	Normal  lipgloss.Style
	Hint    lipgloss.Style
	Label   lipgloss.Style // Form labels

	Tile        lipgloss.Style
	TileFocused lipgloss.Style
	TileTitle   lipgloss.Style
	Image       lipgloss.Style // Image placeholder block

	Field        lipgloss.Style // Unfocused input box
	FieldFocused lipgloss.Style
	Button       lipgloss.Style
	ButtonFocus  lipgloss.Style
	ButtonBusy   lipgloss.Style

	Panel    lipgloss.Style // Project modal box
	Close    lipgloss.Style // [x] control
	Category lipgloss.Style

	Toast      lipgloss.Style
	ToastError lipgloss.Style // Icon color of error toasts
	ToastOK    lipgloss.Style // Icon color of info toasts
}{
	Title: lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(ColorAccent)),
	Section: lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(ColorHighlight)),
	Muted: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorMuted)),
	Normal: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorText)),
	Hint: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorMuted)),
	Label: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorText)),

	Tile: lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(ColorMuted)),
	TileFocused: lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(ColorHighlight)),
	TileTitle: lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(ColorText)),
	Image: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorDim)),

	Field: lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(ColorMuted)).
		Padding(0, 1),
	FieldFocused: lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(ColorHighlight)).
		Padding(0, 1),
	Button: lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(ColorAccent)).
		Padding(0, 2),
	ButtonFocus: lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(ColorHighlight)).
		Foreground(lipgloss.Color(ColorHighlight)).
		Bold(true).
		Padding(0, 2),
	ButtonBusy: lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(ColorMuted)).
		Foreground(lipgloss.Color(ColorMuted)).
		Padding(0, 2),

	Panel: lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(ColorHighlight)).
		Padding(panelPadY, panelPadX),
	Close: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorDanger)).
		Bold(true),
	Category: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorAccent)),

	Toast: lipgloss.NewStyle().
		Background(lipgloss.Color(ColorSurface)).
		Padding(0, 1),
	ToastError: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorDanger)),
	ToastOK: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorAccent)),
}
