// Package page holds the interaction state of the portfolio page and the
// operations that change it.
//
// State lives in a Snapshot value. Every operation builds the next snapshot,
// applies its environment side effects, then notifies subscribers. Nothing in
// this package renders; the ui package reads snapshots to draw.
package page

import (
	"github.com/rs/zerolog"

	folog "folio/internal/log"
	"folio/internal/notify"
	"folio/internal/portfolio"
)

// Environment is the surrounding screen the page runs in.
type Environment interface {
	SetTitle(title string)
	SetScrollLocked(locked bool)
}

// Selection is the modal state. Selected survives Close and is only replaced
// by the next SelectAndOpen.
type Selection struct {
	Selected *portfolio.Project
	Open     bool
}

// Snapshot is the full interaction state at one point in time.
type Snapshot struct {
	Selection  Selection
	Form       Form
	Submitting bool
}

// Page owns the snapshot and exposes the operations of the page.
type Page struct {
	cfg       *portfolio.Config
	env       Environment
	sink      notify.Sink
	toastOpts notify.Options
	logger    zerolog.Logger

	snap      Snapshot
	observers map[int]func(Snapshot)
	nextObs   int
}

// New creates a page in its initial state: modal closed, form empty.
func New(cfg *portfolio.Config, env Environment, sink notify.Sink) *Page {
	p := &Page{
		cfg:       cfg,
		env:       env,
		sink:      sink,
		toastOpts: notify.DefaultOptions(),
		logger:    folog.WithComponent("page"),
		observers: make(map[int]func(Snapshot)),
	}
	p.Subscribe(p.logTransition)
	return p
}

// Mount applies the initial environment state: the configured title and an
// unlocked scroll.
func (p *Page) Mount() {
	p.env.SetTitle(p.cfg.Page.Title)
	p.env.SetScrollLocked(p.snap.Selection.Open)
}

// Release unlocks scrolling unconditionally. Call it when the page goes
// away, whatever state it is in.
func (p *Page) Release() {
	p.env.SetScrollLocked(false)
}

// Config returns the page document. Callers must not modify it.
func (p *Page) Config() *portfolio.Config {
	return p.cfg
}

// Snapshot returns the current state.
func (p *Page) Snapshot() Snapshot {
	return p.snap
}

// Subscribe registers fn to run after every state change and returns a
// function that removes it.
func (p *Page) Subscribe(fn func(Snapshot)) (unsubscribe func()) {
	id := p.nextObs
	p.nextObs++
	p.observers[id] = fn
	return func() { delete(p.observers, id) }
}

// Reload swaps in a new page document. Records of the old document are gone,
// so the modal closes and the selection is cleared; the form and any
// in-flight submission are kept.
func (p *Page) Reload(cfg *portfolio.Config) {
	p.cfg = cfg
	next := p.snap
	next.Selection = Selection{}
	p.commit(next)
	p.env.SetTitle(cfg.Page.Title)
}

// commit installs next and applies side effects. The scroll lock is synced
// before observers run so it tracks Open even if an observer panics.
func (p *Page) commit(next Snapshot) {
	prev := p.snap
	p.snap = next
	if prev.Selection.Open != next.Selection.Open {
		p.env.SetScrollLocked(next.Selection.Open)
	}
	for _, fn := range p.observers {
		fn(next)
	}
}

func (p *Page) logTransition(s Snapshot) {
	ev := p.logger.Debug().
		Str("event", "page.transition").
		Bool("open", s.Selection.Open).
		Bool("submitting", s.Submitting)
	if s.Selection.Selected != nil {
		ev = ev.Int("project_id", s.Selection.Selected.ID)
	}
	ev.Msg("state changed")
}
