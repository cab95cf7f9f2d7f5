package msg

import (
	"github.com/Iron-Ham/kanban/internal/source"
	"github.com/Iron-Ham/kanban/internal/ticket"
)

// FetchedMsg carries the result of the fetch started for Gen.
type FetchedMsg struct {
	Gen     uint64
	Dataset *source.Dataset
	Err     error
}

// PrefsChangedMsg carries view preferences written by another process.
type PrefsChangedMsg struct {
	Prefs ticket.ViewPreferences
}

// WatchClosedMsg signals that the preferences watch ended.
type WatchClosedMsg struct{}

// ErrMsg wraps an error to be displayed in the UI.
type ErrMsg struct {
	Err error
}

// ClearNoticeMsg clears the status notice if it is still the one numbered
// Seq.
type ClearNoticeMsg struct {
	Seq int
}

// WatchStartedMsg hands the model the channel of externally changed
// preferences.
type WatchStartedMsg struct {
	Ch <-chan ticket.ViewPreferences
}
