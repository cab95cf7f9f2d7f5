// Package source fetches the ticket feed: an HTTP endpoint returning
// {"tickets": [...], "users": [...]}, or a local JSON/JSONC file with the
// same shape.
package source

import (
	"context"
	"encoding/json"

	"github.com/Iron-Ham/kanban/internal/config"
	"github.com/Iron-Ham/kanban/internal/errors"
	"github.com/Iron-Ham/kanban/internal/logging"
	"github.com/Iron-Ham/kanban/internal/ticket"
)

// Dataset is one snapshot of the feed.
type Dataset struct {
	Tickets []ticket.Ticket `json:"tickets"`
	Users   []ticket.User   `json:"users"`
}

// Source fetches a Dataset. Implementations honor ctx cancellation.
type Source interface {
	Fetch(ctx context.Context) (*Dataset, error)
	// Describe names the source for logs and the status bar.
	Describe() string
}

// New returns the source selected by cfg: a FileSource when File is set,
// otherwise an HTTPSource for URL.
func New(cfg config.SourceConfig, logger *logging.Logger) Source {
	if cfg.File != "" {
		return NewFileSource(cfg.File)
	}
	return NewHTTPSource(cfg.URL,
		WithTimeout(cfg.Timeout()),
		WithLogger(logger),
	)
}

// decode parses a feed payload. Missing arrays decode as empty.
func decode(data []byte) (*Dataset, error) {
	var ds Dataset
	if err := json.Unmarshal(data, &ds); err != nil {
		return nil, errors.Join(errors.ErrDecodeFailed, err)
	}
	if ds.Tickets == nil {
		ds.Tickets = []ticket.Ticket{}
	}
	if ds.Users == nil {
		ds.Users = []ticket.User{}
	}
	return &ds, nil
}
