package ticket

import (
	"cmp"
	"slices"
	"strconv"
)

// Group is one board column: a key and the tickets that share it.
type Group struct {
	Key     string
	Tickets []Ticket
}

// GroupedView is an ordered mapping from group key to tickets.
//
// Integer-like keys (priority groups) come first in ascending numeric order,
// the remaining keys keep the order in which they were first seen.
type GroupedView struct {
	Groups []Group
}

// Len returns the number of groups.
func (v *GroupedView) Len() int {
	if v == nil {
		return 0
	}
	return len(v.Groups)
}

// Keys returns the group keys in display order.
func (v *GroupedView) Keys() []string {
	if v == nil {
		return nil
	}
	keys := make([]string, len(v.Groups))
	for i, g := range v.Groups {
		keys[i] = g.Key
	}
	return keys
}

// Get returns the tickets for a key.
func (v *GroupedView) Get(key string) ([]Ticket, bool) {
	if v == nil {
		return nil, false
	}
	for _, g := range v.Groups {
		if g.Key == key {
			return g.Tickets, true
		}
	}
	return nil, false
}

// Count returns the total number of tickets across all groups.
func (v *GroupedView) Count() int {
	if v == nil {
		return 0
	}
	n := 0
	for _, g := range v.Groups {
		n += len(g.Tickets)
	}
	return n
}

// GroupTickets partitions tickets by the selected field. Tickets keep their
// input order inside each group, and only keys that occur produce a group.
func GroupTickets(tickets []Ticket, by GroupBy) *GroupedView {
	v := &GroupedView{}
	index := make(map[string]int)

	for _, t := range tickets {
		key := t.Key(by)
		i, ok := index[key]
		if !ok {
			i = len(v.Groups)
			index[key] = i
			v.Groups = append(v.Groups, Group{Key: key})
		}
		v.Groups[i].Tickets = append(v.Groups[i].Tickets, t)
	}

	slices.SortStableFunc(v.Groups, compareKeys)
	return v
}

func compareKeys(a, b Group) int {
	ai, aok := arrayIndex(a.Key)
	bi, bok := arrayIndex(b.Key)
	switch {
	case aok && bok:
		return cmp.Compare(ai, bi)
	case aok:
		return -1
	case bok:
		return 1
	default:
		return 0
	}
}

// arrayIndex reports whether key is a canonical non-negative integer below
// 2^32-1 ("0", "12", but not "012" or "-1").
func arrayIndex(key string) (uint64, bool) {
	if key == "" || (len(key) > 1 && key[0] == '0') {
		return 0, false
	}
	n, err := strconv.ParseUint(key, 10, 32)
	if err != nil || n == 1<<32-1 {
		return 0, false
	}
	return n, true
}
