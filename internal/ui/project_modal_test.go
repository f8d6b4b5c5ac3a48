package ui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"folio/internal/portfolio"
)

func TestProjectModal_View(t *testing.T) {
	p := &portfolio.Project{
		ID:          1,
		Title:       "Harbour House",
		Description: "A **timber** residence on the waterfront.",
		Image:       "/images/harbour.jpg",
		Category:    "Architecture",
	}
	m := NewProjectModal(p, DefaultKeyMap(), 100, 30)
	out := m.View()

	for _, want := range []string{"Harbour House", "Architecture", "harbour.jpg", "timber", "waterfront", closeControl} {
		if !strings.Contains(out, want) {
			t.Errorf("modal view missing %q:\n%s", want, out)
		}
	}
}

func TestProjectModal_CloseRectOnControl(t *testing.T) {
	p := &portfolio.Project{ID: 1, Title: "Night Market", Category: "Branding"}
	m := NewProjectModal(p, DefaultKeyMap(), 100, 30)

	lines := strings.Split(m.View(), "\n")
	r := m.CloseRect()
	row := []rune(lines[r.Y])
	if got := string(row[r.X : r.X+r.W]); got != closeControl {
		t.Errorf("CloseRect covers %q, want %q (line %q)", got, closeControl, lines[r.Y])
	}
}

// panelText strips the frame, the image shading and whitespace, leaving only
// the text a reader would see.
func panelText(view string) string {
	return strings.Map(func(r rune) rune {
		switch r {
		case '╭', '╮', '╰', '╯', '│', '─', '░', ' ', '\n':
			return -1
		}
		return r
	}, view)
}

func TestProjectModal_EmptyDescriptionShowsNothing(t *testing.T) {
	m := NewProjectModal(&portfolio.Project{ID: 9, Title: "Blank", Category: "Misc"}, DefaultKeyMap(), 80, 24)
	if got := panelText(m.View()); got != "Blank"+closeControl+"Misc" {
		t.Errorf("panel text = %q", got)
	}
}

func TestProjectModal_PlainDescriptionVerbatim(t *testing.T) {
	desc := "Identity and signage for a seasonal market."
	m := NewProjectModal(&portfolio.Project{ID: 2, Title: "Night Market", Description: desc}, DefaultKeyMap(), 100, 30)
	if out := m.View(); !strings.Contains(out, desc) {
		t.Errorf("description not shown as written:\n%s", out)
	}
}

func TestProjectModal_FitsHeight(t *testing.T) {
	p := &portfolio.Project{
		ID:          1,
		Title:       "Harbour House",
		Description: strings.Repeat("A timber residence on the waterfront.\n\n", 20),
		Image:       "/images/harbour.jpg",
		Category:    "Architecture",
	}
	for h := 7; h <= 40; h++ {
		m := NewProjectModal(p, DefaultKeyMap(), 80, h)
		view := m.View()
		if got := lipgloss.Height(view); got > h {
			t.Errorf("height %d: panel is %d rows", h, got)
		}
		lines := strings.Split(view, "\n")
		r := m.CloseRect()
		if row := []rune(lines[r.Y]); string(row[r.X:r.X+r.W]) != closeControl {
			t.Errorf("height %d: close control moved: %q", h, lines[r.Y])
		}
		if !strings.Contains(view, "Architecture") {
			t.Errorf("height %d: category dropped", h)
		}
	}

	if tall := NewProjectModal(p, DefaultKeyMap(), 80, 40); !strings.Contains(tall.View(), "harbour.jpg") {
		t.Error("image placeholder should show when there is room")
	}
	if short := NewProjectModal(p, DefaultKeyMap(), 80, 12); strings.Contains(short.View(), "harbour.jpg") {
		t.Error("image placeholder should be dropped on short terminals")
	}
}

func TestProjectModal_DismissKeys(t *testing.T) {
	m := NewProjectModal(&portfolio.Project{ID: 1, Title: "X"}, DefaultKeyMap(), 80, 24)
	for _, k := range []string{"esc", "q"} {
		_, cmd := m.Update(keyMsg(k))
		if cmd == nil {
			t.Fatalf("%s: expected command", k)
		}
		if _, ok := cmd().(DismissModalMsg); !ok {
			t.Errorf("%s: expected DismissModalMsg", k)
		}
	}
	if _, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("x")}); cmd != nil {
		if _, ok := cmd().(DismissModalMsg); ok {
			t.Error("x must not dismiss")
		}
	}
}

func TestCenteredRect(t *testing.T) {
	block := strings.Repeat("#####\n", 2) + "#####"
	r := centeredRect(block, 20, 10)
	if r != (Rect{X: 7, Y: 3, W: 5, H: 3}) {
		t.Errorf("centeredRect = %+v", r)
	}
}
