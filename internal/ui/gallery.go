package ui

import (
	"path"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"folio/internal/portfolio"
	"folio/internal/ui/textutil"
)

const (
	tileWidth   = 28 // outer width including the border
	tileGap     = 2
	imageHeight = 3
	tileHeight  = imageHeight + 2 + 2 // image, title, category, border
)

// GalleryView renders one tile per project, in document order, in a grid
// sized to the terminal width.
type GalleryView struct {
	Projects []portfolio.Project
	Cursor   int
	Focused  bool

	keys *KeyMap
	cols int
}

// Ensure GalleryView implements View.
var _ View = (*GalleryView)(nil)

// NewGalleryView creates a gallery over projects. Tiles report pointers into
// projects, so pass the slice of the loaded document.
func NewGalleryView(projects []portfolio.Project, keys *KeyMap) *GalleryView {
	return &GalleryView{Projects: projects, keys: keys, cols: 1}
}

// SetProjects replaces the records and keeps the cursor in range.
func (g *GalleryView) SetProjects(projects []portfolio.Project) {
	g.Projects = projects
	if g.Cursor >= len(projects) {
		g.Cursor = max(len(projects)-1, 0)
	}
}

// SetWidth recomputes the column count.
func (g *GalleryView) SetWidth(width int) {
	g.cols = max((width+tileGap)/(tileWidth+tileGap), 1)
}

// Init implements View.
func (g *GalleryView) Init() tea.Cmd {
	return nil
}

// Update implements View. Only key presses are handled; mouse clicks are
// hit tested by the app, which calls Click.
func (g *GalleryView) Update(msg tea.Msg) (View, tea.Cmd) {
	km, ok := msg.(tea.KeyMsg)
	if !ok || len(g.Projects) == 0 {
		return g, nil
	}
	switch {
	case key.Matches(km, g.keys.Left):
		g.move(-1)
	case key.Matches(km, g.keys.Right):
		g.move(1)
	case key.Matches(km, g.keys.Up):
		g.move(-g.cols)
	case key.Matches(km, g.keys.Down):
		g.move(g.cols)
	case key.Matches(km, g.keys.Open):
		return g, g.Click(g.Cursor)
	}
	return g, nil
}

func (g *GalleryView) move(delta int) {
	next := g.Cursor + delta
	if next < 0 || next >= len(g.Projects) {
		return
	}
	g.Cursor = next
}

// Click reports tile i to the modal controller.
func (g *GalleryView) Click(i int) tea.Cmd {
	if i < 0 || i >= len(g.Projects) {
		return nil
	}
	g.Cursor = i
	p := &g.Projects[i]
	return func() tea.Msg { return SelectProjectMsg{Project: p} }
}

// View implements View.
func (g *GalleryView) View() string {
	s, _ := g.Render()
	return s
}

// Render draws the grid and returns the rect of every tile, relative to the
// top-left corner of the grid. No projects render as an empty string.
func (g *GalleryView) Render() (string, []Rect) {
	if len(g.Projects) == 0 {
		return "", nil
	}

	var (
		col   column
		rects = make([]Rect, 0, len(g.Projects))
		gap   = strings.Repeat(" ", tileGap)
	)
	for start := 0; start < len(g.Projects); start += g.cols {
		end := min(start+g.cols, len(g.Projects))
		row := make([]string, 0, 2*(end-start))
		for i := start; i < end; i++ {
			if i > start {
				row = append(row, gap)
			}
			row = append(row, renderTile(g.Projects[i], g.Focused && i == g.Cursor))
		}
		if start > 0 {
			col.gap(1)
		}
		top := col.add(lipgloss.JoinHorizontal(lipgloss.Top, row...))
		for i := start; i < end; i++ {
			rects = append(rects, Rect{
				X: (i - start) * (tileWidth + tileGap),
				Y: top,
				W: tileWidth,
				H: tileHeight,
			})
		}
	}
	return col.String(), rects
}

func renderTile(p portfolio.Project, focused bool) string {
	inner := tileWidth - 2
	body := lipgloss.JoinVertical(lipgloss.Left,
		imagePlaceholder(p.Image, inner, imageHeight),
		Styles.TileTitle.Render(textutil.Fit(p.Title, inner)),
		Styles.Category.Render(textutil.Fit(p.Category, inner)),
	)
	if focused {
		return Styles.TileFocused.Render(body)
	}
	return Styles.Tile.Render(body)
}

// imagePlaceholder draws a shaded block labelled with the image file name.
func imagePlaceholder(src string, width, height int) string {
	label := ""
	if src != "" {
		label = " " + path.Base(src) + " "
	}
	lines := make([]string, height)
	for i := range lines {
		if i == height/2 {
			lines[i] = textutil.Center(label, width, "░")
			continue
		}
		lines[i] = strings.Repeat("░", width)
	}
	return Styles.Image.Render(strings.Join(lines, "\n"))
}
