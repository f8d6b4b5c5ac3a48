package ui

import (
	"context"
	"errors"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/rs/zerolog"

	folog "folio/internal/log"
	"folio/internal/notify"
	"folio/internal/page"
	"folio/internal/portfolio"
)

const (
	pageMargin    = 2
	defaultWidth  = 100
	defaultHeight = 40
	footerHeight  = 1
)

// pageLayout records where focusable regions landed in the page content.
type pageLayout struct {
	tiles   []Rect
	regions map[string]Rect
}

// AppModel is the root model: the scrollable page with the gallery and the
// contact form, the project modal overlay, the toast tray and the key help
// footer.
type AppModel struct {
	Page     *page.Page
	Tray     *notify.Tray
	Screen   *Screen
	Sender   page.Sender
	Keys     *KeyMap
	Focus    *FocusManager
	Gallery  *GalleryView
	Contact  *ContactForm
	Toasts   *ToastView
	Overlays OverlayStack

	ctx      context.Context
	viewport viewport.Model
	help     help.Model
	width    int
	height   int
	layout   pageLayout
	top      toastBlock
	bottom   toastBlock
	follow   bool
	pending  []tea.Cmd
	logger   zerolog.Logger
}

// Ensure AppModel can be used as tea.Model via adapter.
var _ tea.Model = (*appModelAdapter)(nil)

// appModelAdapter wraps AppModel to implement tea.Model.
type appModelAdapter struct {
	*AppModel
}

// NewAppModel creates the root model for cfg. Submissions go through
// sender and are abandoned when ctx is cancelled.
func NewAppModel(ctx context.Context, cfg *portfolio.Config, sender page.Sender) *AppModel {
	screen := &Screen{}
	tray := notify.NewTray()
	keys := DefaultKeyMap()

	a := &AppModel{
		Screen:  screen,
		Tray:    tray,
		Sender:  sender,
		Keys:    keys,
		Page:    page.New(cfg, screen, tray),
		Toasts:  NewToastView(tray),
		Gallery: NewGalleryView(cfg.Projects, keys),
		Focus:   NewFocusManager(PageFocusOrder),
		ctx:     ctx,
		help:    newHelp(),
		logger:  folog.WithComponent("ui"),
	}
	a.Contact = NewContactForm(a.Page, keys)
	a.Gallery.Focused = true
	a.Focus.OnChange = a.onFocus
	a.Page.Subscribe(a.syncModal)

	a.viewport = viewport.New(0, 0)
	a.viewport.KeyMap = viewport.KeyMap{PageUp: keys.PageUp, PageDown: keys.PageDown}

	a.resize(defaultWidth, defaultHeight)
	a.refresh()
	return a
}

// AsTeaModel returns a tea.Model adapter for use with tea.NewProgram.
func (a *AppModel) AsTeaModel() tea.Model {
	return &appModelAdapter{AppModel: a}
}

// Init implements tea.Model.
func (a *appModelAdapter) Init() tea.Cmd {
	a.Page.Mount()
	return tea.Batch(a.Screen.Flush(), a.Contact.Init())
}

// Update implements tea.Model.
func (a *appModelAdapter) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	cmds := []tea.Cmd{a.update(msg)}
	cmds = append(cmds, a.pending...)
	a.pending = nil
	cmds = append(cmds, a.Screen.Flush(), a.Toasts.Schedule())
	a.refresh()
	return a, tea.Batch(cmds...)
}

// View implements tea.Model.
func (a *appModelAdapter) View() string {
	var col column
	if a.top.view != "" {
		col.add(a.top.view)
	}
	if m := a.modal(); m != nil {
		col.add(lipgloss.Place(a.width, a.bodyHeight(), lipgloss.Center, lipgloss.Center, m.View(),
			lipgloss.WithWhitespaceBackground(lipgloss.Color(ColorBackdrop))))
	} else {
		col.add(a.viewport.View())
	}
	if a.bottom.view != "" {
		col.add(a.bottom.view)
	}
	col.add(a.help.View(a.Keys))
	return col.String()
}

func (a *AppModel) update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.resize(msg.Width, msg.Height)
		return nil
	case tea.KeyMsg:
		return a.handleKey(msg)
	case tea.MouseMsg:
		return a.handleMouse(msg)
	case SelectProjectMsg:
		a.Page.SelectAndOpen(msg.Project)
		return nil
	case DismissModalMsg:
		a.Page.Close()
		return nil
	case SubmitMsg:
		return a.submit()
	case submitResultMsg:
		a.Page.Settle(msg.req, msg.err)
		return nil
	case ConfigReloadedMsg:
		a.reload(msg.Config)
		return nil
	case toastExpireMsg, toastFrameMsg:
		return a.Toasts.Update(msg)
	}

	// Animation ticks and cursor blinks.
	if cmd := a.Toasts.Update(msg); cmd != nil {
		return cmd
	}
	_, cmd := a.Contact.Update(msg)
	return cmd
}

func (a *AppModel) handleKey(msg tea.KeyMsg) tea.Cmd {
	if key.Matches(msg, a.Keys.Quit) {
		return a.quit()
	}

	if top, ok := a.Overlays.Peek(); ok {
		if top.IsDismissKey(msg) {
			a.Page.Close()
			return nil
		}
		cmd, _ := a.Overlays.UpdateTop(msg)
		return cmd
	}

	switch {
	case key.Matches(msg, a.Keys.Next):
		a.follow = true
		a.Focus.Next()
		return nil
	case key.Matches(msg, a.Keys.Prev):
		a.follow = true
		a.Focus.Prev()
		return nil
	case key.Matches(msg, a.Keys.PageUp), key.Matches(msg, a.Keys.PageDown):
		return a.scroll(msg)
	case key.Matches(msg, a.Keys.Submit) && !a.Focus.Is(FocusGallery):
		return a.submit()
	}

	switch a.Focus.Current {
	case FocusGallery:
		if key.Matches(msg, a.Keys.QuitPage) {
			return a.quit()
		}
		a.follow = true
		_, cmd := a.Gallery.Update(msg)
		return cmd
	case FocusName, FocusEmail:
		if key.Matches(msg, a.Keys.Open) {
			a.follow = true
			a.Focus.Next()
			return nil
		}
	}
	_, cmd := a.Contact.Update(msg)
	return cmd
}

// scroll hands scroll input to the page viewport unless scrolling is locked.
func (a *AppModel) scroll(msg tea.Msg) tea.Cmd {
	if a.Screen.ScrollLocked() {
		return nil
	}
	var cmd tea.Cmd
	a.viewport, cmd = a.viewport.Update(msg)
	return cmd
}

func (a *AppModel) handleMouse(msg tea.MouseMsg) tea.Cmd {
	bodyTop := a.top.height()
	bottomTop := bodyTop + a.bodyHeight()

	hit, onToast := a.top.hitToast(msg.X, msg.Y)
	if !onToast {
		if hit, onToast = a.bottom.hitToast(msg.X, msg.Y-bottomTop); onToast {
			hit.Rect = hit.Rect.Offset(0, bottomTop)
		}
	}

	switch msg.Action {
	case tea.MouseActionMotion:
		var id notify.ID
		if onToast {
			id = hit.ID
		}
		return a.Toasts.Hover(id)
	case tea.MouseActionRelease:
		return a.Toasts.Release(hit, msg.X)
	case tea.MouseActionPress:
	default:
		return nil
	}

	if msg.Button == tea.MouseButtonWheelUp || msg.Button == tea.MouseButtonWheelDown {
		if a.Overlays.Len() > 0 {
			cmd, _ := a.Overlays.UpdateTop(msg)
			return cmd
		}
		return a.scroll(msg)
	}
	if msg.Button != tea.MouseButtonLeft {
		return nil
	}
	if onToast {
		a.Toasts.Press(hit.ID, msg.X)
		return nil
	}
	if msg.Y < bodyTop || msg.Y >= bottomTop {
		return nil
	}
	if m := a.modal(); m != nil {
		a.clickModal(m, msg.X, msg.Y-bodyTop)
		return nil
	}
	return a.clickPage(msg.X, msg.Y-bodyTop+a.viewport.YOffset)
}

// clickModal handles a press at (x, y) relative to the body area. Presses
// inside the panel never close it, except on the close control.
func (a *AppModel) clickModal(m *ProjectModal, x, y int) {
	panel := centeredRect(m.View(), a.width, a.bodyHeight())
	if !panel.Contains(x, y) {
		a.Page.Close()
		return
	}
	if m.CloseRect().Offset(panel.X, panel.Y).Contains(x, y) {
		a.Page.Close()
	}
}

// clickPage handles a press at (x, y) in page content coordinates.
func (a *AppModel) clickPage(x, y int) tea.Cmd {
	for i, r := range a.layout.tiles {
		if r.Contains(x, y) {
			a.Focus.SetFocus(FocusGallery)
			return a.Gallery.Click(i)
		}
	}
	for id, r := range a.layout.regions {
		if !r.Contains(x, y) {
			continue
		}
		a.Focus.SetFocus(id)
		if id == FocusSubmit {
			return a.submit()
		}
		return nil
	}
	return nil
}

// submit starts a submission and returns the command that performs the
// POST. Refusals never reach the relay: a missing field moves focus to it.
func (a *AppModel) submit() tea.Cmd {
	req, err := a.Page.Submit()
	if errors.Is(err, page.ErrMissingField) {
		field, _ := a.Page.Snapshot().Form.Missing()
		a.follow = true
		a.Focus.SetFocus(field.String())
		return nil
	}
	if err != nil {
		a.logger.Debug().Err(err).Msg("submit refused")
		return nil
	}

	ctx, sender := a.ctx, a.Sender
	return func() tea.Msg {
		return submitResultMsg{req: req, err: sender.Send(ctx, req.Recipient, req.Message)}
	}
}

func (a *AppModel) reload(cfg *portfolio.Config) {
	a.Page.Reload(cfg)
	a.Gallery.SetProjects(cfg.Projects)
	a.Contact.SetConfig(cfg)
	a.logger.Info().Int("projects", len(cfg.Projects)).Str("event", "config.reloaded").Msg("page config reloaded")
}

func (a *AppModel) quit() tea.Cmd {
	a.Page.Release()
	return tea.Quit
}

func (a *AppModel) onFocus(_, to string) {
	a.Gallery.Focused = to == FocusGallery
	a.pending = append(a.pending, a.Contact.SetFocus(to))
}

// syncModal keeps the overlay stack in step with the page selection.
func (a *AppModel) syncModal(s page.Snapshot) {
	current := a.modal()
	switch {
	case s.Selection.Open && (current == nil || current.Project != s.Selection.Selected):
		if current != nil {
			a.Overlays.Pop()
		}
		m := NewProjectModal(s.Selection.Selected, a.Keys, a.width, a.bodyHeight())
		a.Overlays.Push(Overlay{View: m, Dismiss: key.NewBinding(key.WithKeys("esc"))})
	case !s.Selection.Open && current != nil:
		a.Overlays.Pop()
	}
}

func (a *AppModel) modal() *ProjectModal {
	top, ok := a.Overlays.Peek()
	if !ok {
		return nil
	}
	m, _ := top.View.(*ProjectModal)
	return m
}

func (a *AppModel) resize(width, height int) {
	a.width, a.height = width, height
	a.Gallery.SetWidth(width - 2*pageMargin)
	a.Contact.SetWidth(width - 2*pageMargin)
	a.help.Width = width
	a.viewport.Width = width
	a.Overlays.Each(func(v View) {
		if m, ok := v.(*ProjectModal); ok {
			m.SetSize(width, a.bodyHeight())
		}
	})
}

func (a *AppModel) bodyHeight() int {
	return max(a.height-a.top.height()-a.bottom.height()-footerHeight, 1)
}

// refresh re-renders the page content and the toast stacks after a state
// change, so View and mouse hit tests see the same layout.
func (a *AppModel) refresh() {
	a.top, a.bottom = a.Toasts.Render(a.width)
	a.Keys.SetContext(a.Overlays.Len() > 0, a.Focus.Current)

	// Toasts take rows from the body; the modal shrinks with it.
	if m := a.modal(); m != nil && (m.width != a.width || m.height != a.bodyHeight()) {
		m.SetSize(a.width, a.bodyHeight())
	}

	content, layout := a.renderPage()
	a.layout = layout
	a.viewport.Height = a.bodyHeight()
	a.viewport.SetContent(content)

	if a.follow {
		a.follow = false
		if r, ok := a.focusRect(); ok {
			a.ensureVisible(r)
		}
	}
}

func (a *AppModel) renderPage() (string, pageLayout) {
	cfg := a.Page.Config()
	var col column
	col.gap(1)
	col.add(Styles.Title.Render(cfg.Page.Title))
	col.gap(1)

	grid, tiles := a.Gallery.Render()
	galleryTop := col.add(grid)
	col.gap(2)

	contact, regions := a.Contact.Render()
	contactTop := col.add(contact)
	col.gap(1)

	layout := pageLayout{
		tiles:   make([]Rect, len(tiles)),
		regions: make(map[string]Rect, len(regions)),
	}
	for i, r := range tiles {
		layout.tiles[i] = r.Offset(pageMargin, galleryTop)
	}
	for id, r := range regions {
		layout.regions[id] = r.Offset(pageMargin, contactTop)
	}
	return lipgloss.NewStyle().PaddingLeft(pageMargin).Render(col.String()), layout
}

func (a *AppModel) focusRect() (Rect, bool) {
	if a.Focus.Is(FocusGallery) {
		if a.Gallery.Cursor < len(a.layout.tiles) {
			return a.layout.tiles[a.Gallery.Cursor], true
		}
		return Rect{}, false
	}
	r, ok := a.layout.regions[a.Focus.Current]
	return r, ok
}

func (a *AppModel) ensureVisible(r Rect) {
	vp := &a.viewport
	switch {
	case r.Y < vp.YOffset:
		vp.SetYOffset(r.Y)
	case r.Y+r.H > vp.YOffset+vp.Height:
		vp.SetYOffset(r.Y + r.H - vp.Height)
	}
}

// centeredRect is the rect lipgloss.Place gives block when centering it in
// an area of width x height.
func centeredRect(block string, width, height int) Rect {
	w, h := lipgloss.Size(block)
	return Rect{X: max((width-w)/2, 0), Y: max((height-h)/2, 0), W: w, H: h}
}
