package ui

import (
	"time"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"folio/internal/notify"
	"folio/internal/ui/textutil"
)

const (
	toastFrameInterval = 100 * time.Millisecond
	toastBarWidth      = 24
	toastDragThreshold = 6 // columns a press must travel to count as a drag
	toastCloseGlyph    = "×"
)

// toastHit is the screen area of one toast within its block.
type toastHit struct {
	ID   notify.ID
	Rect Rect
}

// toastBlock is the rendered stack of toasts anchored to one screen edge.
type toastBlock struct {
	view string
	hits []toastHit
}

func (b toastBlock) height() int {
	if b.view == "" {
		return 0
	}
	return lipgloss.Height(b.view)
}

// ToastView renders the notification tray and turns tray deadlines into
// Bubble Tea timers. Mouse handling follows the toast options: hovering
// pauses, clicking closes, dragging sideways dismisses.
type ToastView struct {
	tray *notify.Tray
	now  func() time.Time

	spin     spinner.Model
	spinning bool
	bar      progress.Model
	framing  bool

	hovered notify.ID
	pressID notify.ID
	pressX  int
}

// NewToastView creates a view over tray.
func NewToastView(tray *notify.Tray) *ToastView {
	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = lipgloss.NewStyle().Foreground(lipgloss.Color(ColorHighlight))
	return &ToastView{
		tray: tray,
		now:  time.Now,
		spin: s,
		bar: progress.New(
			progress.WithSolidFill(ColorHighlight),
			progress.WithoutPercentage(),
			progress.WithWidth(toastBarWidth),
		),
	}
}

// Schedule arms expiry timers for toasts shown or resumed since the last
// call and starts the animations the visible toasts need.
func (v *ToastView) Schedule() tea.Cmd {
	var cmds []tea.Cmd
	for _, ts := range v.tray.Drain() {
		wait := max(ts.Deadline.Sub(v.now()), 0)
		cmds = append(cmds, tea.Tick(wait, func(time.Time) tea.Msg { return toastExpireMsg{} }))
	}
	if !v.spinning && v.hasLoading() {
		v.spinning = true
		cmds = append(cmds, v.spin.Tick)
	}
	if !v.framing && v.needsFrames() {
		v.framing = true
		cmds = append(cmds, frameTick())
	}
	return tea.Batch(cmds...)
}

func frameTick() tea.Cmd {
	return tea.Tick(toastFrameInterval, func(time.Time) tea.Msg { return toastFrameMsg{} })
}

// Update handles timer and animation messages.
func (v *ToastView) Update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case toastExpireMsg:
		for _, id := range v.tray.Expire() {
			if id == v.hovered {
				v.hovered = 0
			}
		}
	case spinner.TickMsg:
		if !v.hasLoading() {
			v.spinning = false
			return nil
		}
		var cmd tea.Cmd
		v.spin, cmd = v.spin.Update(msg)
		return cmd
	case toastFrameMsg:
		if !v.needsFrames() {
			v.framing = false
			return nil
		}
		return frameTick()
	}
	return nil
}

func (v *ToastView) hasLoading() bool {
	for _, ts := range v.tray.Toasts() {
		if ts.Kind == notify.KindLoading {
			return true
		}
	}
	return false
}

func (v *ToastView) needsFrames() bool {
	for _, ts := range v.tray.Toasts() {
		if showsBar(ts) && !ts.Paused {
			return true
		}
	}
	return false
}

func showsBar(ts notify.Toast) bool {
	return !ts.Options.HideProgressBar && ts.Options.AutoClose > 0
}

// Hover moves the pointer onto toast id (0 for none), pausing it and
// resuming the toast it left.
func (v *ToastView) Hover(id notify.ID) tea.Cmd {
	if id == v.hovered {
		return nil
	}
	if v.hovered != 0 {
		v.tray.Resume(v.hovered)
	}
	v.hovered = id
	if id != 0 {
		v.tray.Pause(id)
	}
	return v.Schedule()
}

// Press starts a click or drag on toast id at column x.
func (v *ToastView) Press(id notify.ID, x int) {
	v.pressID, v.pressX = id, x
}

// Release ends a press. A release far enough from the press dismisses a
// draggable toast; otherwise it is a click on the toast under the pointer.
func (v *ToastView) Release(hit toastHit, x int) tea.Cmd {
	pressed := v.pressID
	v.pressID = 0
	if pressed == 0 {
		return nil
	}
	ts, ok := v.tray.Get(pressed)
	if !ok {
		return nil
	}
	dx := x - v.pressX
	if dx < 0 {
		dx = -dx
	}
	switch {
	case dx >= toastDragThreshold && ts.Options.Draggable:
		v.tray.Dismiss(pressed)
	case hit.ID != pressed:
		// released somewhere else
	case ts.Options.CloseButton && x >= hit.Rect.X+hit.Rect.W-3:
		v.tray.Dismiss(pressed)
	default:
		v.tray.Click(pressed)
	}
	if v.hovered == pressed {
		if _, still := v.tray.Get(pressed); !still {
			v.hovered = 0
		}
	}
	return nil
}

// Render draws the top and bottom toast stacks for a screen width wide.
func (v *ToastView) Render(width int) (top, bottom toastBlock) {
	var topCol, bottomCol column
	now := v.now()
	for _, ts := range v.tray.Toasts() {
		placed, x, w := v.renderToast(ts, width, now)
		target, block := &topCol, &top
		if !ts.Options.Position.Top() {
			target, block = &bottomCol, &bottom
		}
		y := target.add(placed)
		block.hits = append(block.hits, toastHit{
			ID:   ts.ID,
			Rect: Rect{X: x, Y: y, W: w, H: lipgloss.Height(placed)},
		})
	}
	if len(top.hits) > 0 {
		top.view = topCol.String()
	}
	if len(bottom.hits) > 0 {
		bottom.view = bottomCol.String()
	}
	return top, bottom
}

// renderToast returns the toast placed on a full-width line plus the column
// and width of the toast box within it.
func (v *ToastView) renderToast(ts notify.Toast, width int, now time.Time) (string, int, int) {
	opts := ts.Options
	style := Styles.Toast
	if opts.Style.Color != "" {
		style = style.Foreground(lipgloss.Color(opts.Style.Color))
	}
	if opts.Style.FontWeight >= 600 {
		style = style.Bold(true)
	}

	line := v.icon(ts) + " " + textutil.Truncate(ts.Message, max(width-8, 1))
	if opts.CloseButton {
		line += " " + toastCloseGlyph
	}
	content := line
	if showsBar(ts) {
		content += "\n" + v.bar.ViewAs(ts.Remaining(now))
	}
	box := style.Render(content)

	w := lipgloss.Width(box)
	gap := max(width-w, 0)
	var x int
	align := lipgloss.Center
	switch opts.Position {
	case notify.TopLeft, notify.BottomLeft:
		align = lipgloss.Left
	case notify.TopRight, notify.BottomRight:
		align = lipgloss.Right
		x = gap
	default:
		x = gap / 2
	}
	return lipgloss.PlaceHorizontal(width, align, box), x, w
}

func (v *ToastView) icon(ts notify.Toast) string {
	switch ts.Kind {
	case notify.KindLoading:
		return v.spin.View()
	case notify.KindError:
		return Styles.ToastError.Render(notify.Icon(ts.Kind))
	default:
		return Styles.ToastOK.Render(notify.Icon(ts.Kind))
	}
}

// hitToast returns the toast under (x, y) in block coordinates.
func (b toastBlock) hitToast(x, y int) (toastHit, bool) {
	for _, h := range b.hits {
		if h.Rect.Contains(x, y) {
			return h, true
		}
	}
	return toastHit{}, false
}
