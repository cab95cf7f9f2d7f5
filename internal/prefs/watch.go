package prefs

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/Iron-Ham/kanban/internal/ticket"
)

// watchDebounce coalesces the burst of events one atomic write produces.
const watchDebounce = 50 * time.Millisecond

// Watch reports preferences written to the store by any process. The
// store's directory is watched because writes replace the file by rename.
// Only values that differ from what is stored when Watch is called are
// reported. The returned channel is closed when ctx is done.
func (p *Preferences) Watch(ctx context.Context) (<-chan ticket.ViewPreferences, error) {
	// Baseline is taken before returning so no later write can become it.
	last, _ := p.Load()

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("create watcher: %w", err)
	}
	if err := watcher.Add(filepath.Dir(p.Path())); err != nil {
		_ = watcher.Close()
		return nil, fmt.Errorf("watch state directory: %w", err)
	}

	out := make(chan ticket.ViewPreferences, 1)
	go p.watchLoop(ctx, watcher, last, out)
	return out, nil
}

func (p *Preferences) watchLoop(ctx context.Context, watcher *fsnotify.Watcher, last ticket.ViewPreferences, out chan<- ticket.ViewPreferences) {
	defer close(out)
	defer func() { _ = watcher.Close() }()

	target := filepath.Clean(p.Path())

	debounce := time.NewTimer(0)
	<-debounce.C

	for {
		select {
		case <-ctx.Done():
			debounce.Stop()
			return

		case event, ok := <-watcher.Events:
			if !ok {
				return
			}
			if filepath.Clean(event.Name) != target {
				continue
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename|fsnotify.Remove) == 0 {
				continue
			}
			debounce.Reset(watchDebounce)

		case <-debounce.C:
			v, err := p.Load()
			if err != nil {
				p.logger.Debug("watched preferences unavailable", "error", err)
				continue
			}
			if v == last {
				continue
			}
			last = v
			select {
			case out <- v:
			case <-ctx.Done():
				return
			}

		case err, ok := <-watcher.Errors:
			if !ok {
				return
			}
			p.logger.Warn("preference watcher error", "error", err)
		}
	}
}
