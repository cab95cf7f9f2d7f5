package board

import (
	"github.com/Iron-Ham/kanban/internal/errors"
	"github.com/Iron-Ham/kanban/internal/logging"
	"github.com/Iron-Ham/kanban/internal/ticket"
)

// Column is one rendered group.
type Column struct {
	Key     string
	Label   string
	Tickets []ticket.Ticket
}

// BuildColumns labels each group of v for display. Priority keys map to
// their names, user keys to the user's name, and anything unresolvable to
// the raw key.
func BuildColumns(v *ticket.GroupedView, by ticket.GroupBy, users []ticket.User, logger *logging.Logger) []Column {
	if logger == nil {
		logger = logging.NopLogger()
	}
	if v == nil {
		return nil
	}

	cols := make([]Column, 0, v.Len())
	for _, g := range v.Groups {
		label, err := Label(g.Key, by, users)
		if err != nil {
			logger.Debug("column label fallback", "error", err)
		}
		cols = append(cols, Column{Key: g.Key, Label: label, Tickets: g.Tickets})
	}
	return cols
}

// Label resolves the display label for a group key. On a failed lookup it
// returns the raw key together with a *errors.LookupError.
func Label(key string, by ticket.GroupBy, users []ticket.User) (string, error) {
	switch by {
	case ticket.GroupByPriority:
		if label, ok := ticket.PriorityLabel(key); ok {
			return label, nil
		}
		return key, errors.NewLookupError("priority", key)
	case ticket.GroupByUser:
		if u, ok := ticket.FindUser(users, key); ok && u.Name != "" {
			return u.Name, nil
		}
		return key, errors.NewLookupError("user", key)
	default:
		return key, nil
	}
}
