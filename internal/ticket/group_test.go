package ticket

import (
	"slices"
	"testing"
)

func sampleTickets() []Ticket {
	return []Ticket{
		{ID: "CAM-1", Title: "Update user profile page UI", Tag: Tags{"Feature request"}, UserID: "usr-1", Status: "Todo", Priority: 4},
		{ID: "CAM-2", Title: "Add multi-language support", Tag: Tags{"Feature request"}, UserID: "usr-2", Status: "In progress", Priority: 3},
		{ID: "CAM-3", Title: "Optimize database queries", Tag: Tags{"Feature request"}, UserID: "usr-2", Status: "In progress", Priority: 1},
		{ID: "CAM-4", Title: "Implement email notification", Tag: Tags{"Feature request"}, UserID: "usr-1", Status: "Todo", Priority: 3},
		{ID: "CAM-5", Title: "Enhance search functionality", Tag: Tags{"Feature request"}, UserID: "usr-5", Status: "Backlog", Priority: 0},
		{ID: "CAM-6", Title: "Third-party payment gateway", Tag: Tags{"Feature request"}, UserID: "usr-2", Status: "Todo", Priority: 1},
	}
}

func ids(tickets []Ticket) []string {
	out := make([]string, len(tickets))
	for i, t := range tickets {
		out[i] = t.ID
	}
	return out
}

func TestGroupTickets_Partition(t *testing.T) {
	tickets := sampleTickets()

	for _, by := range []GroupBy{GroupByStatus, GroupByUser, GroupByPriority, "tag", "bogus"} {
		t.Run(string(by), func(t *testing.T) {
			v := GroupTickets(tickets, by)

			var all []string
			for _, g := range v.Groups {
				if len(g.Tickets) == 0 {
					t.Errorf("group %q is empty", g.Key)
				}
				all = append(all, ids(g.Tickets)...)
			}

			want := ids(tickets)
			slices.Sort(all)
			slices.Sort(want)
			if !slices.Equal(all, want) {
				t.Errorf("union of groups = %v, want %v", all, want)
			}
			if v.Count() != len(tickets) {
				t.Errorf("Count() = %d, want %d", v.Count(), len(tickets))
			}
		})
	}
}

func TestGroupTickets_StableWithinGroup(t *testing.T) {
	tickets := sampleTickets()
	v := GroupTickets(tickets, GroupByUser)

	for _, g := range v.Groups {
		last := -1
		for _, tk := range g.Tickets {
			pos := slices.IndexFunc(tickets, func(x Ticket) bool { return x.ID == tk.ID })
			if pos <= last {
				t.Errorf("group %q: ticket %s out of input order", g.Key, tk.ID)
			}
			last = pos
		}
	}
}

func TestGroupTickets_KeyOrder(t *testing.T) {
	tests := []struct {
		name string
		by   GroupBy
		want []string
	}{
		{
			name: "status keeps first-seen order",
			by:   GroupByStatus,
			want: []string{"Todo", "In progress", "Backlog"},
		},
		{
			name: "user keeps first-seen order",
			by:   GroupByUser,
			want: []string{"usr-1", "usr-2", "usr-5"},
		},
		{
			name: "priority keys ascend numerically",
			by:   GroupByPriority,
			want: []string{"0", "1", "3", "4"},
		},
		{
			name: "unknown selector collapses to one group",
			by:   "estimate",
			want: []string{""},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := GroupTickets(sampleTickets(), tt.by).Keys()
			if !slices.Equal(got, tt.want) {
				t.Errorf("Keys() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestGroupTickets_IntegerKeysBeforeOthers(t *testing.T) {
	tickets := []Ticket{
		{ID: "a", Status: "Done"},
		{ID: "b", Status: "10"},
		{ID: "c", Status: "Todo"},
		{ID: "d", Status: "2"},
		{ID: "e", Status: "007"},
	}
	got := GroupTickets(tickets, GroupByStatus).Keys()
	want := []string{"2", "10", "Done", "Todo", "007"}
	if !slices.Equal(got, want) {
		t.Errorf("Keys() = %v, want %v", got, want)
	}
}

func TestGroupTickets_Empty(t *testing.T) {
	for _, by := range ValidGroupBy() {
		v := GroupTickets(nil, by)
		if v.Len() != 0 {
			t.Errorf("GroupTickets(nil, %s).Len() = %d, want 0", by, v.Len())
		}
	}
}

func TestGroupTickets_ScenarioByUser(t *testing.T) {
	tickets := []Ticket{
		{ID: "1", Title: "B", Priority: 2, Status: "Todo", UserID: "u1"},
		{ID: "2", Title: "A", Priority: 4, Status: "Todo", UserID: "u2"},
	}
	v := GroupTickets(tickets, GroupByUser)

	if v.Len() != 2 {
		t.Fatalf("Len() = %d, want 2", v.Len())
	}
	u1, ok := v.Get("u1")
	if !ok || !slices.Equal(ids(u1), []string{"1"}) {
		t.Errorf("group u1 = %v, want [1]", ids(u1))
	}
	u2, ok := v.Get("u2")
	if !ok || !slices.Equal(ids(u2), []string{"2"}) {
		t.Errorf("group u2 = %v, want [2]", ids(u2))
	}
	if _, ok := v.Get("u3"); ok {
		t.Error("Get(u3) should report missing group")
	}
}

func TestArrayIndex(t *testing.T) {
	tests := []struct {
		key  string
		want bool
	}{
		{"0", true},
		{"4", true},
		{"4294967294", true},
		{"4294967295", false},
		{"01", false},
		{"-1", false},
		{"", false},
		{"1.5", false},
		{"Todo", false},
	}
	for _, tt := range tests {
		if _, ok := arrayIndex(tt.key); ok != tt.want {
			t.Errorf("arrayIndex(%q) ok = %v, want %v", tt.key, ok, tt.want)
		}
	}
}
