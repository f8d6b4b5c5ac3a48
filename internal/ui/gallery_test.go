package ui

import (
	"strings"
	"testing"

	"folio/internal/portfolio"
)

func galleryProjects() []portfolio.Project {
	return []portfolio.Project{
		{ID: 1, Title: "Harbour House", Category: "Architecture", Image: "/images/harbour.jpg"},
		{ID: 2, Title: "Night Market", Category: "Branding", Image: "/images/market.jpg"},
		{ID: 3, Title: "Field Notes", Category: "Editorial"},
	}
}

func TestGallery_OneTilePerProjectInOrder(t *testing.T) {
	g := NewGalleryView(galleryProjects(), DefaultKeyMap())
	g.SetWidth(96)

	out, rects := g.Render()
	if len(rects) != 3 {
		t.Fatalf("got %d tiles, want 3", len(rects))
	}

	prev := -1
	for _, title := range []string{"Harbour House", "Night Market", "Field Notes"} {
		idx := strings.Index(out, title)
		if idx < 0 {
			t.Fatalf("missing tile %q in:\n%s", title, out)
		}
		if idx < prev {
			t.Errorf("tile %q out of order", title)
		}
		prev = idx
	}
	if !strings.Contains(out, "harbour.jpg") || !strings.Contains(out, "Branding") {
		t.Errorf("tile content missing image label or category:\n%s", out)
	}
}

func TestGallery_GridRects(t *testing.T) {
	g := NewGalleryView(galleryProjects(), DefaultKeyMap())
	g.SetWidth(2*tileWidth + tileGap) // two columns
	if g.cols != 2 {
		t.Fatalf("cols = %d, want 2", g.cols)
	}

	out, rects := g.Render()
	want := []Rect{
		{X: 0, Y: 0, W: tileWidth, H: tileHeight},
		{X: tileWidth + tileGap, Y: 0, W: tileWidth, H: tileHeight},
		{X: 0, Y: tileHeight + 1, W: tileWidth, H: tileHeight},
	}
	for i, r := range want {
		if rects[i] != r {
			t.Errorf("rect[%d] = %+v, want %+v", i, rects[i], r)
		}
	}

	lines := strings.Split(out, "\n")
	if got := len(lines); got != 2*tileHeight+1 {
		t.Errorf("rendered %d lines, want %d", got, 2*tileHeight+1)
	}
	if !strings.Contains(lines[rects[2].Y+imageHeight+1], "Field Notes") {
		t.Errorf("third tile title not on its row:\n%s", out)
	}
}

func TestGallery_NarrowIsSingleColumn(t *testing.T) {
	g := NewGalleryView(galleryProjects(), DefaultKeyMap())
	g.SetWidth(10)
	if g.cols != 1 {
		t.Errorf("cols = %d, want 1", g.cols)
	}
}

func TestGallery_ClickReportsRecord(t *testing.T) {
	projects := galleryProjects()
	g := NewGalleryView(projects, DefaultKeyMap())

	cmd := g.Click(1)
	if cmd == nil {
		t.Fatal("expected a command")
	}
	msg, ok := cmd().(SelectProjectMsg)
	if !ok {
		t.Fatalf("got %T, want SelectProjectMsg", cmd())
	}
	if msg.Project != &projects[1] {
		t.Error("click must report the record itself, not a copy")
	}
	if g.Cursor != 1 {
		t.Errorf("Cursor = %d, want 1", g.Cursor)
	}
	if g.Click(3) != nil || g.Click(-1) != nil {
		t.Error("out of range clicks must be ignored")
	}
}

func TestGallery_KeyboardNavigation(t *testing.T) {
	g := NewGalleryView(galleryProjects(), DefaultKeyMap())
	g.SetWidth(2*tileWidth + tileGap)

	g.Update(keyMsg("right"))
	if g.Cursor != 1 {
		t.Errorf("right: Cursor = %d", g.Cursor)
	}
	g.Update(keyMsg("right"))
	g.Update(keyMsg("right"))
	if g.Cursor != 2 {
		t.Errorf("right past end: Cursor = %d, want 2", g.Cursor)
	}
	g.Update(keyMsg("up"))
	if g.Cursor != 0 {
		t.Errorf("up: Cursor = %d, want 0", g.Cursor)
	}
	g.Update(keyMsg("j"))
	if g.Cursor != 2 {
		t.Errorf("j: Cursor = %d, want 2", g.Cursor)
	}

	_, cmd := g.Update(keyMsg("enter"))
	if msg, ok := cmd().(SelectProjectMsg); !ok || msg.Project.ID != 3 {
		t.Errorf("enter should select project 3, got %#v", msg)
	}
}

func TestGallery_Empty(t *testing.T) {
	g := NewGalleryView(nil, DefaultKeyMap())
	out, rects := g.Render()
	if len(rects) != 0 || out != "" {
		t.Errorf("empty gallery rendered %q with %d tiles", out, len(rects))
	}
	if _, cmd := g.Update(keyMsg("enter")); cmd != nil {
		t.Error("enter on empty gallery should do nothing")
	}
}

func TestGallery_SetProjectsClampsCursor(t *testing.T) {
	g := NewGalleryView(galleryProjects(), DefaultKeyMap())
	g.Cursor = 2
	g.SetProjects(galleryProjects()[:1])
	if g.Cursor != 0 {
		t.Errorf("Cursor = %d, want 0", g.Cursor)
	}
}
