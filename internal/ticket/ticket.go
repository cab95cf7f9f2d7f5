// Package ticket holds the board's data model and the pure transforms that
// turn a flat ticket list into ordered, sorted columns.
//
// Nothing in this package performs I/O or keeps state between calls: the
// grouped view is always a function of the tickets and the view preferences
// passed in.
package ticket

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

// Priority levels as delivered by the ticket feed.
const (
	PriorityNone   = 0
	PriorityLow    = 1
	PriorityMedium = 2
	PriorityHigh   = 3
	PriorityUrgent = 4
)

var priorityLabels = map[string]string{
	"0": "No Priority",
	"1": "Low",
	"2": "Medium",
	"3": "High",
	"4": "Urgent",
}

// PriorityLabel returns the display label for a priority group key.
func PriorityLabel(key string) (string, bool) {
	label, ok := priorityLabels[key]
	return label, ok
}

// Ticket is a single work item on the board.
type Ticket struct {
	ID       string `json:"id"`
	Title    string `json:"title"`
	Tag      Tags   `json:"tag"`
	UserID   string `json:"userId"`
	Status   string `json:"status"`
	Priority int    `json:"priority"`
}

// Key returns the value of the field named by the selector, as a group key.
// Selectors that name no known field yield the empty key.
func (t Ticket) Key(by GroupBy) string {
	switch by {
	case GroupByStatus:
		return t.Status
	case GroupByUser, "userId":
		return t.UserID
	case GroupByPriority:
		return strconv.Itoa(t.Priority)
	case "id":
		return t.ID
	case "title":
		return t.Title
	case "tag":
		return t.Tag.String()
	default:
		return ""
	}
}

// Tags is the ticket's tag list. The feed sends either a single string or a
// list of strings; both decode into Tags.
type Tags []string

// UnmarshalJSON accepts a JSON string, a list of strings, or null.
func (t *Tags) UnmarshalJSON(data []byte) error {
	var list []string
	if err := json.Unmarshal(data, &list); err == nil {
		*t = list
		return nil
	}

	var single string
	if err := json.Unmarshal(data, &single); err != nil {
		return fmt.Errorf("tag must be a string or a list of strings: %w", err)
	}
	if single == "" {
		*t = nil
		return nil
	}
	*t = Tags{single}
	return nil
}

// String joins the tags for display.
func (t Tags) String() string {
	return strings.Join(t, ", ")
}

// User owns tickets and is looked up by ID when labelling user columns.
type User struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Available bool   `json:"available,omitempty"`
}

// FindUser returns the user with the given ID.
func FindUser(users []User, id string) (User, bool) {
	for _, u := range users {
		if u.ID == id {
			return u, true
		}
	}
	return User{}, false
}
