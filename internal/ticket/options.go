package ticket

import (
	"fmt"
	"slices"
)

// GroupBy selects the field that partitions tickets into columns.
type GroupBy string

const (
	GroupByStatus   GroupBy = "status"
	GroupByUser     GroupBy = "user"
	GroupByPriority GroupBy = "priority"
)

// SortOrder selects how tickets are ordered inside a column.
type SortOrder string

const (
	SortByPriority SortOrder = "priority"
	SortByTitle    SortOrder = "title"
)

// ValidGroupBy returns the selectors offered to users, in menu order.
func ValidGroupBy() []GroupBy {
	return []GroupBy{GroupByStatus, GroupByUser, GroupByPriority}
}

// ValidSortOrders returns the sort orders offered to users, in menu order.
func ValidSortOrders() []SortOrder {
	return []SortOrder{SortByPriority, SortByTitle}
}

// ParseGroupBy validates user input against ValidGroupBy.
func ParseGroupBy(s string) (GroupBy, error) {
	g := GroupBy(s)
	if !slices.Contains(ValidGroupBy(), g) {
		return "", fmt.Errorf("invalid group-by %q (valid: %v)", s, ValidGroupBy())
	}
	return g, nil
}

// ParseSortOrder validates user input against ValidSortOrders.
func ParseSortOrder(s string) (SortOrder, error) {
	o := SortOrder(s)
	if !slices.Contains(ValidSortOrders(), o) {
		return "", fmt.Errorf("invalid sort order %q (valid: %v)", s, ValidSortOrders())
	}
	return o, nil
}

// Next returns the selector after g in menu order, wrapping around.
// Unknown selectors restart at the first entry.
func (g GroupBy) Next() GroupBy {
	all := ValidGroupBy()
	i := slices.Index(all, g)
	return all[(i+1)%len(all)]
}

// Next returns the sort order after o in menu order, wrapping around.
func (o SortOrder) Next() SortOrder {
	all := ValidSortOrders()
	i := slices.Index(all, o)
	return all[(i+1)%len(all)]
}

// Label is the menu label for the selector.
func (g GroupBy) Label() string {
	switch g {
	case GroupByStatus:
		return "Status"
	case GroupByUser:
		return "User"
	case GroupByPriority:
		return "Priority"
	default:
		return string(g)
	}
}

// Label is the menu label for the sort order.
func (o SortOrder) Label() string {
	switch o {
	case SortByPriority:
		return "Priority"
	case SortByTitle:
		return "Title"
	default:
		return string(o)
	}
}

// ViewPreferences is the user's persisted choice of grouping and ordering.
type ViewPreferences struct {
	GroupBy   GroupBy   `json:"groupBy,omitempty"`
	SortOrder SortOrder `json:"sortOrder,omitempty"`
}

// DefaultPreferences is what a board shows before anything was persisted.
func DefaultPreferences() ViewPreferences {
	return ViewPreferences{GroupBy: GroupByStatus, SortOrder: SortByPriority}
}
