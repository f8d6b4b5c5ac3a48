package ui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"folio/internal/page"
	"folio/internal/portfolio"
)

const (
	maxFieldWidth  = 60
	messageHeight  = 4
	infoColumnGap  = 4
	minInfoColumns = 28
)

// ContactForm renders the contact section: the contact details and the
// three form inputs with the submit button. Field values live in the page
// snapshot; the inputs mirror them.
type ContactForm struct {
	page *page.Page
	keys *KeyMap

	labels  portfolio.Contacts
	contact portfolio.Contact

	name    textinput.Model
	email   textinput.Model
	message textarea.Model

	focus      string
	submitting bool
	width      int
}

// Ensure ContactForm implements View.
var _ View = (*ContactForm)(nil)

// NewContactForm creates the form and subscribes it to p.
func NewContactForm(p *page.Page, keys *KeyMap) *ContactForm {
	f := &ContactForm{
		page:    p,
		keys:    keys,
		name:    newInput(),
		email:   newInput(),
		message: textarea.New(),
		width:   maxFieldWidth,
	}
	f.message.ShowLineNumbers = false
	f.message.Prompt = ""
	f.message.CharLimit = 0
	f.message.SetHeight(messageHeight)
	f.SetConfig(p.Config())
	f.sync(p.Snapshot())
	p.Subscribe(f.sync)
	return f
}

func newInput() textinput.Model {
	ti := textinput.New()
	ti.Prompt = ""
	return ti
}

// SetConfig applies labels, placeholders and contact details.
func (f *ContactForm) SetConfig(cfg *portfolio.Config) {
	f.labels = cfg.Page.Contacts
	f.contact = cfg.Contact
	f.name.Placeholder = f.labels.Name.Placeholder
	f.email.Placeholder = f.labels.Email.Placeholder
	f.message.Placeholder = f.labels.Message.Placeholder
}

// SetWidth sizes the inputs for a page of the given width.
func (f *ContactForm) SetWidth(width int) {
	f.width = width
	inner := fieldInnerWidth(width)
	f.name.Width = inner - 1
	f.email.Width = inner - 1
	f.message.SetWidth(inner)
}

func fieldInnerWidth(width int) int {
	return max(min(width, maxFieldWidth)-4, 8)
}

// sync mirrors a page snapshot into the inputs.
func (f *ContactForm) sync(s page.Snapshot) {
	if f.name.Value() != s.Form.Name {
		f.name.SetValue(s.Form.Name)
	}
	if f.email.Value() != s.Form.Email {
		f.email.SetValue(s.Form.Email)
	}
	if f.message.Value() != s.Form.Message {
		f.message.SetValue(s.Form.Message)
	}
	f.submitting = s.Submitting
}

// SetFocus moves the input cursor to the region id. Regions that are not
// form inputs blur every input.
func (f *ContactForm) SetFocus(id string) tea.Cmd {
	f.focus = id
	f.name.Blur()
	f.email.Blur()
	f.message.Blur()
	switch id {
	case FocusName:
		return f.name.Focus()
	case FocusEmail:
		return f.email.Focus()
	case FocusMessage:
		return f.message.Focus()
	}
	return nil
}

// Init implements View.
func (f *ContactForm) Init() tea.Cmd {
	return textinput.Blink
}

// Update implements View. Edits are forwarded to the page verbatim.
func (f *ContactForm) Update(msg tea.Msg) (View, tea.Cmd) {
	if km, ok := msg.(tea.KeyMsg); ok && f.focus == FocusSubmit {
		if key.Matches(km, f.keys.Open) {
			return f, func() tea.Msg { return SubmitMsg{} }
		}
		return f, nil
	}

	var cmd tea.Cmd
	switch f.focus {
	case FocusName:
		f.name, cmd = f.name.Update(msg)
		f.commit(page.FieldName, f.name.Value())
	case FocusEmail:
		f.email, cmd = f.email.Update(msg)
		f.commit(page.FieldEmail, f.email.Value())
	case FocusMessage:
		f.message, cmd = f.message.Update(msg)
		f.commit(page.FieldMessage, f.message.Value())
	}
	return f, cmd
}

func (f *ContactForm) commit(field page.Field, value string) {
	if f.page.Snapshot().Form.Get(field) != value {
		f.page.UpdateField(field, value)
	}
}

// View implements View.
func (f *ContactForm) View() string {
	s, _ := f.Render()
	return s
}

// Render draws the section and returns the rects of the focusable regions
// relative to its top-left corner.
func (f *ContactForm) Render() (string, map[string]Rect) {
	rects := make(map[string]Rect, 4)
	inner := fieldInnerWidth(f.width)

	var form column
	form.add(Styles.Section.Render(f.labels.Title))
	form.gap(1)
	f.addField(&form, rects, FocusName, f.labels.Name.Label, f.name.View(), inner)
	f.addField(&form, rects, FocusEmail, f.labels.Email.Label, f.email.View(), inner)
	f.addField(&form, rects, FocusMessage, f.labels.Message.Label, f.message.View(), inner)
	form.gap(1)

	btnStyle := Styles.Button
	switch {
	case f.submitting:
		btnStyle = Styles.ButtonBusy
	case f.focus == FocusSubmit:
		btnStyle = Styles.ButtonFocus
	}
	btn := btnStyle.Render(f.labels.Button)
	rects[FocusSubmit] = blockRect(btn, 0, form.add(btn))

	info := f.renderInfo()
	if info == "" {
		return form.String(), rects
	}

	formBlock := form.String()
	formWidth := lipgloss.Width(formBlock)
	if f.width >= formWidth+infoColumnGap+minInfoColumns {
		return lipgloss.JoinHorizontal(lipgloss.Top, formBlock, strings.Repeat(" ", infoColumnGap), info), rects
	}

	// Narrow terminals stack the details above the form.
	var stacked column
	stacked.add(info)
	stacked.gap(1)
	top := stacked.add(formBlock)
	for id, r := range rects {
		rects[id] = r.Offset(0, top)
	}
	return stacked.String(), rects
}

func (f *ContactForm) addField(c *column, rects map[string]Rect, id, label, input string, inner int) {
	c.add(Styles.Label.Render(label))
	style := Styles.Field
	if f.focus == id {
		style = Styles.FieldFocused
	}
	box := style.Width(inner + 2).Render(input)
	rects[id] = blockRect(box, 0, c.add(box))
}

func (f *ContactForm) renderInfo() string {
	var lines []string
	for _, item := range []struct{ icon, value string }{
		{"✉", f.contact.Email},
		{"☎", f.contact.Phone},
		{"⌖", f.contact.Location},
	} {
		if item.value == "" {
			continue
		}
		lines = append(lines, Styles.Category.Render(item.icon)+" "+Styles.Normal.Render(item.value))
	}
	return strings.Join(lines, "\n")
}
