package ticket

import (
	"cmp"
	"fmt"
	"slices"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// Collator compares strings the way a reader of a given locale expects.
// *collate.Collator satisfies it.
type Collator interface {
	CompareString(a, b string) int
}

// DefaultLocale is used when no locale is configured.
const DefaultLocale = "en"

// NewCollator builds a collator for a BCP 47 locale such as "en" or "de-DE".
// An empty locale selects DefaultLocale. The returned collator is not safe
// for concurrent use.
func NewCollator(locale string) (*collate.Collator, error) {
	if locale == "" {
		locale = DefaultLocale
	}
	tag, err := language.Parse(locale)
	if err != nil {
		return nil, fmt.Errorf("parse locale %q: %w", locale, err)
	}
	return collate.New(tag), nil
}

// SortGroups returns a new view with the same keys in the same order and each
// group's tickets ordered by the sort order:
//
//   - priority: highest priority first
//   - title: ascending by title, compared with c
//   - anything else: input order
//
// Both orderings are stable. The input view is left untouched. A nil
// collator falls back to DefaultLocale.
func SortGroups(v *GroupedView, order SortOrder, c Collator) *GroupedView {
	out := &GroupedView{}
	if v == nil {
		return out
	}
	if c == nil && order == SortByTitle {
		c = collate.New(language.English)
	}

	out.Groups = make([]Group, len(v.Groups))
	for i, g := range v.Groups {
		sorted := slices.Clone(g.Tickets)
		switch order {
		case SortByPriority:
			slices.SortStableFunc(sorted, func(a, b Ticket) int {
				return cmp.Compare(b.Priority, a.Priority)
			})
		case SortByTitle:
			slices.SortStableFunc(sorted, func(a, b Ticket) int {
				return c.CompareString(a.Title, b.Title)
			})
		}
		out.Groups[i] = Group{Key: g.Key, Tickets: sorted}
	}
	return out
}

// Arrange groups then sorts tickets according to the preferences.
func Arrange(tickets []Ticket, prefs ViewPreferences, c Collator) *GroupedView {
	return SortGroups(GroupTickets(tickets, prefs.GroupBy), prefs.SortOrder, c)
}
