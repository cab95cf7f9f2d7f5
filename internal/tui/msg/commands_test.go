package msg

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/Iron-Ham/kanban/internal/source"
	"github.com/Iron-Ham/kanban/internal/ticket"
)

type stubSource struct {
	ds  *source.Dataset
	err error
}

func (s stubSource) Fetch(ctx context.Context) (*source.Dataset, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return s.ds, s.err
}

func (s stubSource) Describe() string { return "stub" }

func TestFetch(t *testing.T) {
	ds := &source.Dataset{Tickets: []ticket.Ticket{{ID: "CAM-1"}}}

	tests := []struct {
		name     string
		src      stubSource
		cancel   bool
		wantErr  bool
		wantSize int
	}{
		{name: "success", src: stubSource{ds: ds}, wantSize: 1},
		{name: "failure", src: stubSource{err: errors.New("boom")}, wantErr: true},
		{name: "canceled", src: stubSource{ds: ds}, cancel: true, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx, cancel := context.WithCancel(context.Background())
			defer cancel()
			if tt.cancel {
				cancel()
			}

			result := Fetch(ctx, tt.src, 7)()
			got, ok := result.(FetchedMsg)
			if !ok {
				t.Fatalf("Fetch() produced %T, want FetchedMsg", result)
			}
			if got.Gen != 7 {
				t.Errorf("Gen = %d, want 7", got.Gen)
			}
			if (got.Err != nil) != tt.wantErr {
				t.Errorf("Err = %v, wantErr %v", got.Err, tt.wantErr)
			}
			if !tt.wantErr && len(got.Dataset.Tickets) != tt.wantSize {
				t.Errorf("tickets = %d, want %d", len(got.Dataset.Tickets), tt.wantSize)
			}
		})
	}
}

func TestWaitForPrefs(t *testing.T) {
	if WaitForPrefs(nil) != nil {
		t.Error("WaitForPrefs(nil) should return a nil command")
	}

	ch := make(chan ticket.ViewPreferences, 1)
	want := ticket.ViewPreferences{GroupBy: ticket.GroupByUser, SortOrder: ticket.SortByTitle}
	ch <- want

	got, ok := WaitForPrefs(ch)().(PrefsChangedMsg)
	if !ok || got.Prefs != want {
		t.Errorf("WaitForPrefs() = %+v, want %+v", got, want)
	}

	close(ch)
	if _, ok := WaitForPrefs(ch)().(WatchClosedMsg); !ok {
		t.Error("closed channel should produce WatchClosedMsg")
	}
}

func TestClearNoticeAfter(t *testing.T) {
	start := time.Now()
	result := ClearNoticeAfter(10*time.Millisecond, 3)()

	if elapsed := time.Since(start); elapsed < 5*time.Millisecond {
		t.Errorf("ClearNoticeAfter() fired after %v", elapsed)
	}
	got, ok := result.(ClearNoticeMsg)
	if !ok || got.Seq != 3 {
		t.Errorf("ClearNoticeAfter() = %#v, want ClearNoticeMsg{Seq: 3}", result)
	}
}

type stubWatcher struct {
	ch  chan ticket.ViewPreferences
	err error
}

func (w stubWatcher) Watch(context.Context) (<-chan ticket.ViewPreferences, error) {
	return w.ch, w.err
}

func TestStartWatch(t *testing.T) {
	if StartWatch(context.Background(), nil) != nil {
		t.Error("StartWatch(nil) should return a nil command")
	}

	ch := make(chan ticket.ViewPreferences)
	started, ok := StartWatch(context.Background(), stubWatcher{ch: ch})().(WatchStartedMsg)
	if !ok || started.Ch == nil {
		t.Errorf("StartWatch() = %#v, want WatchStartedMsg", started)
	}

	failed, ok := StartWatch(context.Background(), stubWatcher{err: errors.New("no inotify")})().(ErrMsg)
	if !ok || failed.Err == nil {
		t.Errorf("StartWatch() = %#v, want ErrMsg", failed)
	}
}
