package ui

import (
	"strings"
	"testing"

	"folio/internal/notify"
	"folio/internal/page"
	"folio/internal/portfolio"
)

func newTestForm(t *testing.T) (*ContactForm, *page.Page) {
	t.Helper()
	p := page.New(testConfig(), &Screen{}, notify.NewTray())
	f := NewContactForm(p, DefaultKeyMap())
	f.SetWidth(96)
	return f, p
}

func TestContactForm_RendersConfigStrings(t *testing.T) {
	f, _ := newTestForm(t)
	out, _ := f.Render()
	for _, want := range []string{
		"Get in touch",
		"Name", "Your name",
		"Email", "you@example.com",
		"Message", "Tell me about your project",
		"Send message",
		"hello@ada.studio", "+1 555 0100", "Lisbon, Portugal",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("contact section missing %q:\n%s", want, out)
		}
	}
}

func TestContactForm_RectsCoverInputs(t *testing.T) {
	f, _ := newTestForm(t)
	out, rects := f.Render()
	lines := strings.Split(out, "\n")

	for id, placeholder := range map[string]string{
		FocusName:  "Your name",
		FocusEmail: "you@example.com",
	} {
		r, ok := rects[id]
		if !ok {
			t.Fatalf("no rect for %s", id)
		}
		if !strings.Contains(lines[r.Y+1], placeholder) {
			t.Errorf("%s rect row %d does not hold %q: %q", id, r.Y+1, placeholder, lines[r.Y+1])
		}
	}
	if r := rects[FocusSubmit]; !strings.Contains(lines[r.Y+1], "Send message") {
		t.Errorf("submit rect misplaced: %+v", r)
	}
	if rects[FocusMessage].H != messageHeight+2 {
		t.Errorf("message box height = %d", rects[FocusMessage].H)
	}
}

func TestContactForm_NarrowStacksDetails(t *testing.T) {
	f, _ := newTestForm(t)
	_, wide := f.Render()

	f.SetWidth(50)
	out, narrow := f.Render()
	if narrow[FocusName].Y <= wide[FocusName].Y {
		t.Errorf("narrow layout should push the form below the details: %d vs %d", narrow[FocusName].Y, wide[FocusName].Y)
	}
	if strings.Index(out, "hello@ada.studio") > strings.Index(out, "Get in touch") {
		t.Error("details should come first when stacked")
	}
}

func TestContactForm_TypingUpdatesPageVerbatim(t *testing.T) {
	f, p := newTestForm(t)

	f.SetFocus(FocusName)
	f.Update(keyMsg("  Bob "))
	f.SetFocus(FocusMessage)
	f.Update(keyMsg("hi"))

	got := p.Snapshot().Form
	if got.Name != "  Bob " || got.Message != "hi" || got.Email != "" {
		t.Errorf("form = %+v", got)
	}
}

func TestContactForm_FollowsPageReset(t *testing.T) {
	f, p := newTestForm(t)
	p.UpdateField(page.FieldName, "Alice")
	p.UpdateField(page.FieldEmail, "a@x.com")
	p.UpdateField(page.FieldMessage, "line1\nline2")
	if f.name.Value() != "Alice" || f.message.Value() != "line1\nline2" {
		t.Fatalf("inputs not synced: %q %q", f.name.Value(), f.message.Value())
	}

	req, err := p.Submit()
	if err != nil {
		t.Fatal(err)
	}
	if !f.submitting {
		t.Error("form should know a submission is in flight")
	}
	p.Settle(req, nil)

	if f.name.Value() != "" || f.email.Value() != "" || f.message.Value() != "" {
		t.Errorf("inputs not cleared: %q %q %q", f.name.Value(), f.email.Value(), f.message.Value())
	}
	if f.submitting {
		t.Error("submitting should clear after settle")
	}
}

func TestContactForm_EnterOnButtonSubmits(t *testing.T) {
	f, _ := newTestForm(t)
	f.SetFocus(FocusSubmit)
	_, cmd := f.Update(keyMsg("enter"))
	if cmd == nil {
		t.Fatal("expected a command")
	}
	if _, ok := cmd().(SubmitMsg); !ok {
		t.Error("expected SubmitMsg")
	}
}

func TestContactForm_SetConfig(t *testing.T) {
	f, _ := newTestForm(t)
	cfg := testConfig()
	cfg.Page.Contacts.Button = "Go"
	cfg.Contact.Phone = ""
	f.SetConfig(cfg)

	out, _ := f.Render()
	if !strings.Contains(out, "Go") || strings.Contains(out, "+1 555 0100") {
		t.Errorf("config not applied:\n%s", out)
	}
}

func testConfig() *portfolio.Config {
	return &portfolio.Config{
		Page: portfolio.Page{
			Title: "Ada Studio",
			Contacts: portfolio.Contacts{
				Title:   "Get in touch",
				Name:    portfolio.Field{Label: "Name", Placeholder: "Your name"},
				Email:   portfolio.Field{Label: "Email", Placeholder: "you@example.com"},
				Message: portfolio.Field{Label: "Message", Placeholder: "Tell me about your project"},
				Button:  "Send message",
			},
			Toast: portfolio.Toasts{
				Loading: "Sending your message...",
				Success: "Thanks! I will get back to you soon.",
				Error:   "Something went wrong. Please try again.",
			},
		},
		Contact: portfolio.Contact{
			Email:    "hello@ada.studio",
			Phone:    "+1 555 0100",
			Location: "Lisbon, Portugal",
		},
		Projects: []portfolio.Project{
			{ID: 1, Title: "Harbour House", Description: "A **timber** residence on the waterfront.", Image: "/images/harbour.jpg", Category: "Architecture"},
			{ID: 2, Title: "Night Market", Description: "Identity and signage for a seasonal market.", Image: "/images/market.jpg", Category: "Branding"},
			{ID: 3, Title: "Field Notes", Description: "Editorial design for a quarterly journal.", Image: "/images/notes.jpg", Category: "Editorial"},
		},
	}
}
