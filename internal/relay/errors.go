package relay

import (
	"errors"
	"fmt"
)

// ErrSubmitRequestFailed covers every way a contact submission can fail:
// transport errors, non-2xx responses and responses the relay marks as
// unsuccessful.
var ErrSubmitRequestFailed = errors.New("relay: submit request failed")

// SubmitError wraps ErrSubmitRequestFailed with what went wrong.
type SubmitError struct {
	Op     string // "encode", "request", "post", "read", "response"
	Status int
	Body   string
	Err    error
}

func (e *SubmitError) Error() string {
	msg := fmt.Sprintf("%v: %s", ErrSubmitRequestFailed, e.Op)
	if e.Status > 0 {
		msg = fmt.Sprintf("%s (HTTP %d)", msg, e.Status)
	}
	if e.Body != "" {
		msg = fmt.Sprintf("%s: %s", msg, e.Body)
	}
	if e.Err != nil {
		msg = fmt.Sprintf("%s: %v", msg, e.Err)
	}
	return msg
}

// Unwrap exposes both the sentinel and the lower-level cause.
func (e *SubmitError) Unwrap() []error {
	if e.Err == nil {
		return []error{ErrSubmitRequestFailed}
	}
	return []error{ErrSubmitRequestFailed, e.Err}
}
