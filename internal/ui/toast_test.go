package ui

import (
	"strings"
	"testing"
	"time"

	"folio/internal/notify"
)

type fakeClock struct{ t time.Time }

func (c *fakeClock) now() time.Time { return c.t }

func newTestToasts() (*ToastView, *notify.Tray, *fakeClock) {
	clock := &fakeClock{t: time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)}
	tray := notify.NewTray().WithClock(clock.now)
	v := NewToastView(tray)
	v.now = clock.now
	return v, tray, clock
}

func TestToastView_RenderPositions(t *testing.T) {
	v, tray, _ := newTestToasts()
	opts := notify.DefaultOptions()
	tray.Show("Thanks!", opts)
	bottom := opts
	bottom.Position = notify.BottomRight
	tray.Error("Nope", bottom)

	top, bot := v.Render(80)
	if !strings.Contains(top.view, "Thanks!") || strings.Contains(top.view, "Nope") {
		t.Errorf("top block = %q", top.view)
	}
	if !strings.Contains(bot.view, "Nope") {
		t.Errorf("bottom block = %q", bot.view)
	}
	if len(top.hits) != 1 || len(bot.hits) != 1 {
		t.Fatalf("hits: top %d bottom %d", len(top.hits), len(bot.hits))
	}

	c := top.hits[0].Rect
	if c.X != (80-c.W)/2 {
		t.Errorf("centered toast at x=%d width=%d", c.X, c.W)
	}
	r := bot.hits[0].Rect
	if r.X+r.W != 80 {
		t.Errorf("right toast ends at %d, want 80", r.X+r.W)
	}
	if got := strings.Index(strings.Split(top.view, "\n")[0], notify.Icon(notify.KindInfo)); got < c.X {
		t.Errorf("icon at byte %d before toast start %d", got, c.X)
	}
}

func TestToastView_ProgressBarOnlyWhenShown(t *testing.T) {
	v, tray, _ := newTestToasts()
	opts := notify.DefaultOptions()
	tray.Show("hidden bar", opts)
	top, _ := v.Render(80)
	if top.height() != 1 {
		t.Errorf("toast with hidden bar should be one line, got %d", top.height())
	}

	opts.HideProgressBar = false
	tray.Show("with bar", opts)
	top, _ = v.Render(80)
	if top.height() != 3 {
		t.Errorf("expected 1 + 2 lines, got %d", top.height())
	}
}

func TestToastView_ScheduleAndExpire(t *testing.T) {
	v, tray, clock := newTestToasts()
	tray.Show("bye", notify.DefaultOptions())
	tray.Loading("wait", notify.DefaultOptions().Persistent())

	if v.Schedule() == nil {
		t.Fatal("expected expiry timer and spinner")
	}
	if !v.spinning {
		t.Error("spinner should run while a loading toast is visible")
	}
	if v.Schedule() != nil {
		t.Error("second Schedule should have nothing new to arm")
	}

	clock.t = clock.t.Add(6 * time.Second)
	v.Update(toastExpireMsg{})
	if tray.Len() != 1 {
		t.Errorf("expected only the persistent toast left, got %d", tray.Len())
	}
}

func TestToastView_HoverPausesAndResumes(t *testing.T) {
	v, tray, clock := newTestToasts()
	id := tray.Show("hover me", notify.DefaultOptions())
	v.Schedule()

	v.Hover(id)
	clock.t = clock.t.Add(10 * time.Second)
	v.Update(toastExpireMsg{})
	if tray.Len() != 1 {
		t.Fatal("hovered toast must not expire")
	}

	if v.Hover(0) == nil {
		t.Error("resume should arm a new timer")
	}
	clock.t = clock.t.Add(5 * time.Second)
	v.Update(toastExpireMsg{})
	if tray.Len() != 0 {
		t.Error("toast should expire after resuming")
	}
}

func TestToastView_ClickAndDrag(t *testing.T) {
	v, tray, _ := newTestToasts()
	opts := notify.DefaultOptions()
	clicked := tray.Show("click", opts)
	dragged := tray.Show("drag", opts)
	opts.CloseOnClick = false
	opts.Draggable = false
	sticky := tray.Show("sticky", opts)

	top, _ := v.Render(80)
	hit := func(id notify.ID) toastHit {
		for _, h := range top.hits {
			if h.ID == id {
				return h
			}
		}
		t.Fatalf("no hit for %d", id)
		return toastHit{}
	}

	h := hit(clicked)
	v.Press(clicked, h.Rect.X+1)
	v.Release(h, h.Rect.X+1)
	if _, ok := tray.Get(clicked); ok {
		t.Error("click should close a CloseOnClick toast")
	}

	h = hit(dragged)
	v.Press(dragged, h.Rect.X+1)
	v.Release(toastHit{}, h.Rect.X+1+toastDragThreshold)
	if _, ok := tray.Get(dragged); ok {
		t.Error("drag should dismiss a draggable toast")
	}

	h = hit(sticky)
	v.Press(sticky, h.Rect.X+1)
	v.Release(h, h.Rect.X+1)
	v.Press(sticky, h.Rect.X+1)
	v.Release(toastHit{}, h.Rect.X+20)
	if _, ok := tray.Get(sticky); !ok {
		t.Error("toast without CloseOnClick or Draggable must stay")
	}
}
