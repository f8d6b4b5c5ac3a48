// Package notify is the notification sink: transient status messages
// (toasts) shown while the page runs.
package notify

import "time"

// Kind is the presentation variant of a toast.
type Kind string

const (
	KindInfo    Kind = "info"
	KindLoading Kind = "loading"
	KindError   Kind = "error"
)

// Position anchors the toast stack on screen.
type Position string

const (
	TopLeft      Position = "top-left"
	TopCenter    Position = "top-center"
	TopRight     Position = "top-right"
	BottomLeft   Position = "bottom-left"
	BottomCenter Position = "bottom-center"
	BottomRight  Position = "bottom-right"
)

// Top reports whether p anchors to the top edge.
func (p Position) Top() bool {
	return p == TopLeft || p == TopCenter || p == TopRight || p == ""
}

// Style overrides the toast text presentation. Color is a lipgloss color
// (ANSI index or hex). FontSize is carried for fidelity with the page
// document; terminals have a single cell size.
type Style struct {
	Color      string
	FontSize   string
	FontWeight int
}

// Options is the presentation bag accepted with every toast.
type Options struct {
	Position        Position
	AutoClose       time.Duration // 0 keeps the toast until dismissed
	HideProgressBar bool
	CloseOnClick    bool
	PauseOnHover    bool
	Draggable       bool
	CloseButton     bool
	Style           Style
}

// DefaultOptions returns the options the contact flow uses.
func DefaultOptions() Options {
	return Options{
		Position:        TopCenter,
		AutoClose:       5 * time.Second,
		HideProgressBar: true,
		CloseOnClick:    true,
		PauseOnHover:    true,
		Draggable:       true,
		CloseButton:     false,
		Style: Style{
			Color:      "0",
			FontSize:   "12px",
			FontWeight: 500,
		},
	}
}

// Persistent returns o with auto close disabled.
func (o Options) Persistent() Options {
	o.AutoClose = 0
	return o
}

// ID is the handle returned when a toast is shown.
type ID int

// Sink displays toasts.
type Sink interface {
	Show(message string, opts Options) ID
	Error(message string, opts Options) ID
	Loading(message string, opts Options) ID
	Dismiss(id ID)
}

// Toast is one visible notification.
type Toast struct {
	ID       ID
	Kind     Kind
	Message  string
	Options  Options
	Shown    time.Time
	Deadline time.Time // zero when AutoClose is 0
	Paused   bool

	remaining time.Duration
}

// Remaining returns the fraction of the auto-close window left at now, in
// [0, 1]. Toasts without auto close report 1.
func (t Toast) Remaining(now time.Time) float64 {
	if t.Options.AutoClose <= 0 {
		return 1
	}
	left := t.remaining
	if !t.Paused {
		left = t.Deadline.Sub(now)
	}
	f := float64(left) / float64(t.Options.AutoClose)
	switch {
	case f < 0:
		return 0
	case f > 1:
		return 1
	}
	return f
}
