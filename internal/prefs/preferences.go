package prefs

import (
	"encoding/json"
	"fmt"

	"github.com/Iron-Ham/kanban/internal/errors"
	"github.com/Iron-Ham/kanban/internal/logging"
	"github.com/Iron-Ham/kanban/internal/ticket"
)

// DefaultKey is the store entry that holds the view preferences.
const DefaultKey = "kanbanViewState"

// Preferences reads and writes ticket.ViewPreferences in a Store.
type Preferences struct {
	store  *Store
	key    string
	logger *logging.Logger
}

// NewPreferences binds the preferences to key in store. An empty key uses
// DefaultKey; a nil logger discards output.
func NewPreferences(store *Store, key string, logger *logging.Logger) *Preferences {
	if key == "" {
		key = DefaultKey
	}
	if logger == nil {
		logger = logging.NopLogger()
	}
	return &Preferences{
		store:  store,
		key:    key,
		logger: logger.WithComponent("prefs"),
	}
}

// Key returns the store entry name.
func (p *Preferences) Key() string {
	return p.key
}

// Path returns the store file path.
func (p *Preferences) Path() string {
	return p.store.Path()
}

// Load returns the stored preferences. Absent, undecodable or unreadable
// entries return a *errors.StateError wrapping ErrPrefsNotFound,
// ErrPrefsMalformed or ErrStoreCorrupted; callers treat all of them as "no
// preferences".
func (p *Preferences) Load() (ticket.ViewPreferences, error) {
	raw, ok, err := p.store.Get(p.key)
	if err != nil {
		var stateErr *errors.StateError
		if errors.As(err, &stateErr) {
			return ticket.ViewPreferences{}, stateErr.WithKey(p.key)
		}
		return ticket.ViewPreferences{}, errors.NewStateError("read preferences", err).WithKey(p.key).WithPath(p.Path())
	}
	if !ok {
		return ticket.ViewPreferences{}, errors.NewStateError("load preferences", errors.ErrPrefsNotFound).WithKey(p.key)
	}
	return p.decode(raw)
}

func (p *Preferences) decode(raw string) (ticket.ViewPreferences, error) {
	var v ticket.ViewPreferences
	if err := json.Unmarshal([]byte(raw), &v); err != nil {
		return ticket.ViewPreferences{}, errors.NewStateError("decode preferences", errors.Join(errors.ErrPrefsMalformed, err)).
			WithKey(p.key).
			WithPath(p.Path())
	}
	return v, nil
}

// Save replaces the stored preferences with v.
func (p *Preferences) Save(v ticket.ViewPreferences) error {
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("encode preferences: %w", err)
	}
	if err := p.store.Set(p.key, string(data)); err != nil {
		return err
	}
	p.logger.Debug("preferences saved", "group_by", v.GroupBy, "sort_order", v.SortOrder)
	return nil
}

// Update applies mutate to the stored preferences under the store lock and
// returns the result. When nothing usable is stored, mutate starts from
// fallback.
func (p *Preferences) Update(fallback ticket.ViewPreferences, mutate func(*ticket.ViewPreferences)) (ticket.ViewPreferences, error) {
	var result ticket.ViewPreferences

	err := p.store.Update(p.key, func(old string, exists bool) (string, bool, error) {
		result = fallback
		if exists {
			stored, derr := p.decode(old)
			if derr != nil {
				p.logger.Warn("replacing malformed preferences", "error", derr)
			} else {
				result = stored
			}
		}

		mutate(&result)

		data, err := json.Marshal(result)
		if err != nil {
			return "", false, fmt.Errorf("encode preferences: %w", err)
		}
		return string(data), true, nil
	})
	if err != nil {
		return ticket.ViewPreferences{}, err
	}

	p.logger.Debug("preferences updated", "group_by", result.GroupBy, "sort_order", result.SortOrder)
	return result, nil
}

// Reset deletes the stored preferences.
func (p *Preferences) Reset() error {
	if err := p.store.Remove(p.key); err != nil {
		return err
	}
	p.logger.Info("preferences reset")
	return nil
}
