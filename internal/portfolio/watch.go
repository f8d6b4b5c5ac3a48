package portfolio

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/rs/zerolog"

	folog "folio/internal/log"
)

// DefaultDebounce collapses editor write bursts into one reload.
const DefaultDebounce = 300 * time.Millisecond

// Watcher reloads the page document when it changes on disk.
type Watcher struct {
	path     string
	debounce time.Duration
	logger   zerolog.Logger
}

// NewWatcher creates a watcher for the document at path.
func NewWatcher(path string) *Watcher {
	return &Watcher{
		path:     filepath.Clean(path),
		debounce: DefaultDebounce,
		logger:   folog.WithComponent("portfolio.watch"),
	}
}

// WithDebounce overrides the debounce window.
func (w *Watcher) WithDebounce(d time.Duration) *Watcher {
	w.debounce = d
	return w
}

// Run watches until ctx is done and calls onLoad with every document that
// loads and validates. Invalid edits are logged and skipped so the page keeps
// the last good document.
//
// The parent directory is watched rather than the file: editors commonly
// save by renaming a temp file over the original, which drops a file watch.
func (w *Watcher) Run(ctx context.Context, onLoad func(*Config)) error {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("create watcher: %w", err)
	}
	defer fw.Close()

	if err := fw.Add(filepath.Dir(w.path)); err != nil {
		return fmt.Errorf("watch %s: %w", filepath.Dir(w.path), err)
	}
	w.logger.Info().Str("event", "config.watch_started").Str("path", w.path).Msg("watching page config")

	var (
		timer *time.Timer
		fire  <-chan time.Time
	)
	defer func() {
		if timer != nil {
			timer.Stop()
		}
	}()

	for {
		select {
		case <-ctx.Done():
			return nil
		case ev, ok := <-fw.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(ev.Name) != w.path {
				continue
			}
			if !ev.Has(fsnotify.Write) && !ev.Has(fsnotify.Create) && !ev.Has(fsnotify.Rename) {
				continue
			}
			if timer == nil {
				timer = time.NewTimer(w.debounce)
			} else {
				timer.Reset(w.debounce)
			}
			fire = timer.C
		case err, ok := <-fw.Errors:
			if !ok {
				return nil
			}
			w.logger.Warn().Err(err).Str("event", "config.watch_error").Msg("watcher error")
		case <-fire:
			fire = nil
			cfg, err := Load(w.path)
			if err != nil {
				w.logger.Warn().Err(err).Str("event", "config.reload_failed").Msg("keeping previous page config")
				continue
			}
			w.logger.Info().Str("event", "config.reload_success").Int("projects", len(cfg.Projects)).Msg("page config reloaded")
			onLoad(cfg)
		}
	}
}
