package msg

import (
	"context"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/Iron-Ham/kanban/internal/source"
	"github.com/Iron-Ham/kanban/internal/ticket"
)

// Fetch returns a command that loads the dataset from src and reports it as
// a FetchedMsg tagged with gen. Canceling ctx aborts the request.
func Fetch(ctx context.Context, src source.Source, gen uint64) tea.Cmd {
	return func() tea.Msg {
		ds, err := src.Fetch(ctx)
		return FetchedMsg{Gen: gen, Dataset: ds, Err: err}
	}
}

// WaitForPrefs returns a command that blocks until the next value on ch.
// A closed channel yields WatchClosedMsg.
func WaitForPrefs(ch <-chan ticket.ViewPreferences) tea.Cmd {
	if ch == nil {
		return nil
	}
	return func() tea.Msg {
		p, ok := <-ch
		if !ok {
			return WatchClosedMsg{}
		}
		return PrefsChangedMsg{Prefs: p}
	}
}

// ClearNoticeAfter returns a command that sends ClearNoticeMsg{seq} after d.
func ClearNoticeAfter(d time.Duration, seq int) tea.Cmd {
	return tea.Tick(d, func(time.Time) tea.Msg {
		return ClearNoticeMsg{Seq: seq}
	})
}

// PrefsWatcher streams view preferences written to the store by other
// processes.
type PrefsWatcher interface {
	Watch(ctx context.Context) (<-chan ticket.ViewPreferences, error)
}

// StartWatch returns a command that starts w and reports the channel as a
// WatchStartedMsg, or an ErrMsg when the watch cannot be set up.
func StartWatch(ctx context.Context, w PrefsWatcher) tea.Cmd {
	if w == nil {
		return nil
	}
	return func() tea.Msg {
		ch, err := w.Watch(ctx)
		if err != nil {
			return ErrMsg{Err: err}
		}
		return WatchStartedMsg{Ch: ch}
	}
}
