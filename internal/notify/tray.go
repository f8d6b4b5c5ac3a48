package notify

import "time"

// Tray is the in-memory Sink rendered by the terminal UI. It is owned by the
// UI update loop and is not safe for concurrent use.
//
// The tray never starts timers itself: callers Drain the toasts that need an
// expiry check scheduled and call Expire when it fires.
type Tray struct {
	now    func() time.Time
	nextID ID
	toasts []Toast
	armed  []Toast
}

var _ Sink = (*Tray)(nil)

// NewTray creates an empty tray using the wall clock.
func NewTray() *Tray {
	return &Tray{now: time.Now}
}

// WithClock replaces the clock (tests).
func (t *Tray) WithClock(now func() time.Time) *Tray {
	t.now = now
	return t
}

// Show implements Sink.
func (t *Tray) Show(message string, opts Options) ID {
	return t.push(KindInfo, message, opts)
}

// Error implements Sink.
func (t *Tray) Error(message string, opts Options) ID {
	return t.push(KindError, message, opts)
}

// Loading implements Sink.
func (t *Tray) Loading(message string, opts Options) ID {
	return t.push(KindLoading, message, opts)
}

// Dismiss implements Sink. Unknown ids are ignored.
func (t *Tray) Dismiss(id ID) {
	for i, ts := range t.toasts {
		if ts.ID == id {
			t.toasts = append(t.toasts[:i], t.toasts[i+1:]...)
			return
		}
	}
}

func (t *Tray) push(kind Kind, message string, opts Options) ID {
	t.nextID++
	now := t.now()
	ts := Toast{
		ID:      t.nextID,
		Kind:    kind,
		Message: message,
		Options: opts,
		Shown:   now,
	}
	if opts.AutoClose > 0 {
		ts.Deadline = now.Add(opts.AutoClose)
		t.armed = append(t.armed, ts)
	}
	t.toasts = append(t.toasts, ts)
	return ts.ID
}

// Toasts returns the visible toasts, oldest first.
func (t *Tray) Toasts() []Toast {
	out := make([]Toast, len(t.toasts))
	copy(out, t.toasts)
	return out
}

// Len returns the number of visible toasts.
func (t *Tray) Len() int {
	return len(t.toasts)
}

// Get returns the visible toast with the given id.
func (t *Tray) Get(id ID) (Toast, bool) {
	for _, ts := range t.toasts {
		if ts.ID == id {
			return ts, true
		}
	}
	return Toast{}, false
}

// Drain returns toasts whose deadline was set since the last Drain (newly
// shown or resumed) and clears the list.
func (t *Tray) Drain() []Toast {
	out := t.armed
	t.armed = nil
	return out
}

// Expire removes toasts whose deadline has passed and returns their ids.
// Paused toasts never expire.
func (t *Tray) Expire() []ID {
	now := t.now()
	var gone []ID
	kept := t.toasts[:0]
	for _, ts := range t.toasts {
		if !ts.Paused && !ts.Deadline.IsZero() && !now.Before(ts.Deadline) {
			gone = append(gone, ts.ID)
			continue
		}
		kept = append(kept, ts)
	}
	t.toasts = kept
	return gone
}

// Pause freezes the countdown of a toast with PauseOnHover set.
func (t *Tray) Pause(id ID) bool {
	i := t.index(id)
	if i < 0 {
		return false
	}
	ts := &t.toasts[i]
	if ts.Paused || ts.Deadline.IsZero() || !ts.Options.PauseOnHover {
		return false
	}
	ts.remaining = ts.Deadline.Sub(t.now())
	ts.Paused = true
	return true
}

// Resume restarts a paused countdown with the time that was left.
func (t *Tray) Resume(id ID) bool {
	i := t.index(id)
	if i < 0 || !t.toasts[i].Paused {
		return false
	}
	ts := &t.toasts[i]
	ts.Paused = false
	ts.Deadline = t.now().Add(ts.remaining)
	ts.remaining = 0
	t.armed = append(t.armed, *ts)
	return true
}

// Click dismisses the toast if it closes on click.
func (t *Tray) Click(id ID) bool {
	ts, ok := t.Get(id)
	if !ok || !ts.Options.CloseOnClick {
		return false
	}
	t.Dismiss(id)
	return true
}

func (t *Tray) index(id ID) int {
	for i, ts := range t.toasts {
		if ts.ID == id {
			return i
		}
	}
	return -1
}
