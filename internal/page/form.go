package page

import (
	"context"
	"errors"

	"folio/internal/notify"
	"folio/internal/relay"
)

var (
	// ErrMissingField is returned by Submit when a required field is empty.
	ErrMissingField = errors.New("required field is empty")
	// ErrSubmitInFlight is returned by Submit while an earlier submission
	// has not settled.
	ErrSubmitInFlight = errors.New("submission already in flight")
)

// Field names one contact form input.
type Field int

const (
	FieldName Field = iota
	FieldEmail
	FieldMessage
)

// Fields lists the form inputs in display order.
var Fields = []Field{FieldName, FieldEmail, FieldMessage}

func (f Field) String() string {
	switch f {
	case FieldName:
		return "name"
	case FieldEmail:
		return "email"
	case FieldMessage:
		return "message"
	default:
		return "unknown"
	}
}

// Form is the contact form state. The zero value is the empty form.
type Form struct {
	Name    string
	Email   string
	Message string
}

// Get returns the value of f.
func (f Form) Get(field Field) string {
	switch field {
	case FieldName:
		return f.Name
	case FieldEmail:
		return f.Email
	case FieldMessage:
		return f.Message
	}
	return ""
}

// With returns a copy of f with field set to value.
func (f Form) With(field Field, value string) Form {
	switch field {
	case FieldName:
		f.Name = value
	case FieldEmail:
		f.Email = value
	case FieldMessage:
		f.Message = value
	}
	return f
}

// Missing returns the first empty field in display order.
func (f Form) Missing() (Field, bool) {
	for _, field := range Fields {
		if f.Get(field) == "" {
			return field, true
		}
	}
	return 0, false
}

// Request is one submission handed to the relay by the caller.
type Request struct {
	Recipient string
	Message   relay.Message
	LoadingID notify.ID
}

// Sender delivers a submission.
type Sender interface {
	Send(ctx context.Context, recipient string, msg relay.Message) error
}

// UpdateField stores value verbatim.
func (p *Page) UpdateField(field Field, value string) {
	next := p.snap
	next.Form = next.Form.With(field, value)
	p.commit(next)
}

// Submit starts a submission: it shows the loading notification and returns
// the request to send. The caller sends it and reports the outcome to
// Settle. Only one submission may be in flight.
func (p *Page) Submit() (Request, error) {
	if p.snap.Submitting {
		return Request{}, ErrSubmitInFlight
	}
	if _, missing := p.snap.Form.Missing(); missing {
		return Request{}, ErrMissingField
	}

	form := p.snap.Form
	loading := p.sink.Loading(p.cfg.Page.Toast.Loading, p.toastOpts.Persistent())

	next := p.snap
	next.Submitting = true
	p.commit(next)

	return Request{
		Recipient: p.cfg.Contact.Email,
		Message: relay.Message{
			Name:    form.Name,
			Email:   form.Email,
			Message: form.Message,
		},
		LoadingID: loading,
	}, nil
}

// Settle finishes a submission. A failure shows the error notification;
// either way the loading notification is dismissed and the form is cleared;
// a success then shows the success notification.
func (p *Page) Settle(req Request, err error) {
	if err != nil {
		p.logger.Warn().Err(err).Str("event", "contact.submit_failed").Msg("contact submission failed")
		p.sink.Error(p.cfg.Page.Toast.Error, p.toastOpts)
	}

	p.sink.Dismiss(req.LoadingID)
	next := p.snap
	next.Form = Form{}
	next.Submitting = false
	p.commit(next)

	if err == nil {
		p.logger.Info().Str("event", "contact.submitted").Msg("contact submission sent")
		p.sink.Show(p.cfg.Page.Toast.Success, p.toastOpts)
	}
}

// Run submits and settles synchronously through s. It returns the send
// error so headless callers can set an exit status.
func (p *Page) Run(ctx context.Context, s Sender) error {
	req, err := p.Submit()
	if err != nil {
		return err
	}
	sendErr := s.Send(ctx, req.Recipient, req.Message)
	p.Settle(req, sendErr)
	return sendErr
}
