package ui

import (
	"regexp"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"
	"github.com/rs/zerolog"

	folog "folio/internal/log"
	"folio/internal/portfolio"
	"folio/internal/ui/textutil"
)

const (
	modalMaxWidth    = 72
	modalImageHeight = 5
	modalFrame       = 2 * (panelBorder + panelPadY)
	closeControl     = "[x]"
)

// modalLayout is how much of the panel head fits. Short terminals drop the
// image first, then the blank lines.
type modalLayout int

const (
	layoutFull    modalLayout = iota // title, image, category, body; blank lines between
	layoutNoImage                    // title, category, body; blank lines between
	layoutTight                      // title, category, body
)

// headLines counts the rows above the description, including the blank line
// that separates it.
func (l modalLayout) headLines() int {
	switch l {
	case layoutFull:
		return modalImageHeight + 5
	case layoutNoImage:
		return 4
	default:
		return 2
	}
}

// markdownMarkup matches the inline and block syntax that makes a
// description worth rendering as markdown.
var markdownMarkup = regexp.MustCompile("(?m)[*_`~]|\\[[^\\]]*\\]\\(|^\\s{0,3}(#{1,6}\\s|>|[-+]\\s|\\d+[.)]\\s)")

// ProjectModal shows the selected project: title, image placeholder,
// category and the description rendered as markdown. The description
// scrolls inside the panel.
type ProjectModal struct {
	Project *portfolio.Project

	keys   *KeyMap
	desc   string
	body   viewport.Model
	layout modalLayout
	width  int
	height int
	logger zerolog.Logger
}

// Ensure ProjectModal implements View.
var _ View = (*ProjectModal)(nil)

// NewProjectModal creates a modal for p sized for an area of width x height.
func NewProjectModal(p *portfolio.Project, keys *KeyMap, width, height int) *ProjectModal {
	m := &ProjectModal{
		Project: p,
		keys:    keys,
		logger:  folog.WithComponent("ui"),
	}
	m.SetSize(width, height)
	return m
}

// SetSize re-lays the modal out for a new area. The panel never grows past
// height while at least the title, category and one description row fit.
func (m *ProjectModal) SetSize(width, height int) {
	m.width, m.height = width, height
	inner := m.innerWidth()
	m.desc = m.renderDescription(inner)

	avail := height - modalFrame
	m.layout = layoutFull
	for m.layout < layoutTight && avail-m.layout.headLines() < 1 {
		m.layout++
	}
	m.body = viewport.New(inner, min(max(avail-m.layout.headLines(), 1), lipgloss.Height(m.desc)))
	m.body.SetContent(m.desc)
}

func (m *ProjectModal) innerWidth() int {
	w := min(m.width-4, modalMaxWidth) - 2*(panelBorder+panelPadX)
	return max(w, 16)
}

func (m *ProjectModal) renderDescription(width int) string {
	src := m.Project.Description
	if strings.TrimSpace(src) == "" {
		return ""
	}
	if !markdownMarkup.MatchString(src) {
		return lipgloss.NewStyle().Width(width).Render(src)
	}
	r, err := glamour.NewTermRenderer(
		glamour.WithStandardStyle("dark"),
		glamour.WithColorProfile(lipgloss.ColorProfile()),
		glamour.WithWordWrap(width),
	)
	if err == nil {
		var out string
		if out, err = r.Render(src); err == nil {
			return strings.Trim(out, "\n")
		}
	}
	m.logger.Warn().Err(err).Int("project_id", m.Project.ID).Msg("markdown render failed, showing plain text")
	return lipgloss.NewStyle().Width(width).Render(src)
}

// Init implements View.
func (m *ProjectModal) Init() tea.Cmd {
	return nil
}

// Update implements View.
func (m *ProjectModal) Update(msg tea.Msg) (View, tea.Cmd) {
	if km, ok := msg.(tea.KeyMsg); ok && key.Matches(km, m.keys.Close) {
		return m, func() tea.Msg { return DismissModalMsg{} }
	}
	var cmd tea.Cmd
	m.body, cmd = m.body.Update(msg)
	return m, cmd
}

// View implements View.
func (m *ProjectModal) View() string {
	inner := m.innerWidth()
	title := Styles.Title.Render(textutil.Truncate(m.Project.Title, inner-len(closeControl)-1))
	gap := inner - lipgloss.Width(title) - len(closeControl)
	head := title + strings.Repeat(" ", max(gap, 1)) + Styles.Close.Render(closeControl)

	spaced := m.layout != layoutTight
	parts := []string{head}
	if m.layout == layoutFull {
		parts = append(parts, "", imagePlaceholder(m.Project.Image, inner, modalImageHeight))
	}
	if spaced {
		parts = append(parts, "")
	}
	parts = append(parts, Styles.Category.Render(textutil.Truncate(m.Project.Category, inner)))
	if m.desc != "" {
		if spaced {
			parts = append(parts, "")
		}
		parts = append(parts, m.body.View())
	}
	return Styles.Panel.Render(lipgloss.JoinVertical(lipgloss.Left, parts...))
}

// CloseRect is the rect of the close control relative to the panel origin.
func (m *ProjectModal) CloseRect() Rect {
	return Rect{
		X: panelBorder + panelPadX + m.innerWidth() - len(closeControl),
		Y: panelBorder + panelPadY,
		W: len(closeControl),
		H: 1,
	}
}
