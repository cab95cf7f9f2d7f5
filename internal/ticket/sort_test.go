package ticket

import (
	"slices"
	"testing"
)

func titles(tickets []Ticket) []string {
	out := make([]string, len(tickets))
	for i, t := range tickets {
		out[i] = t.Title
	}
	return out
}

func mustCollator(t *testing.T, locale string) Collator {
	t.Helper()
	c, err := NewCollator(locale)
	if err != nil {
		t.Fatalf("NewCollator(%q): %v", locale, err)
	}
	return c
}

func TestSortGroups_Priority(t *testing.T) {
	v := GroupTickets(sampleTickets(), GroupByStatus)
	sorted := SortGroups(v, SortByPriority, nil)

	todo, _ := sorted.Get("Todo")
	if got, want := ids(todo), []string{"CAM-1", "CAM-4", "CAM-6"}; !slices.Equal(got, want) {
		t.Errorf("Todo = %v, want %v", got, want)
	}
	inProgress, _ := sorted.Get("In progress")
	if got, want := ids(inProgress), []string{"CAM-2", "CAM-3"}; !slices.Equal(got, want) {
		t.Errorf("In progress = %v, want %v", got, want)
	}
}

func TestSortGroups_PriorityStableOnTies(t *testing.T) {
	v := &GroupedView{Groups: []Group{{
		Key: "Todo",
		Tickets: []Ticket{
			{ID: "a", Priority: 1},
			{ID: "b", Priority: 3},
			{ID: "c", Priority: 1},
			{ID: "d", Priority: 3},
		},
	}}}

	got := ids(SortGroups(v, SortByPriority, nil).Groups[0].Tickets)
	want := []string{"b", "d", "a", "c"}
	if !slices.Equal(got, want) {
		t.Errorf("sorted = %v, want %v", got, want)
	}
}

func TestSortGroups_PriorityIdempotent(t *testing.T) {
	once := SortGroups(GroupTickets(sampleTickets(), GroupByUser), SortByPriority, nil)
	twice := SortGroups(once, SortByPriority, nil)

	for i := range once.Groups {
		if !slices.Equal(ids(once.Groups[i].Tickets), ids(twice.Groups[i].Tickets)) {
			t.Errorf("group %q changed on second sort: %v -> %v",
				once.Groups[i].Key, ids(once.Groups[i].Tickets), ids(twice.Groups[i].Tickets))
		}
	}
}

func TestSortGroups_TitleLocale(t *testing.T) {
	tests := []struct {
		name   string
		locale string
		in     []string
		want   []string
	}{
		{
			name:   "case does not dominate",
			locale: "en",
			in:     []string{"banana", "Apple", "cherry"},
			want:   []string{"Apple", "banana", "cherry"},
		},
		{
			name:   "accented letters sort with their base letter",
			locale: "en",
			in:     []string{"Zebra", "Éclair", "apple"},
			want:   []string{"apple", "Éclair", "Zebra"},
		},
		{
			name:   "empty locale uses default",
			locale: "",
			in:     []string{"b", "A"},
			want:   []string{"A", "b"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var tickets []Ticket
			for i, title := range tt.in {
				tickets = append(tickets, Ticket{ID: string(rune('a' + i)), Title: title, Status: "Todo"})
			}
			v := SortGroups(GroupTickets(tickets, GroupByStatus), SortByTitle, mustCollator(t, tt.locale))
			if got := titles(v.Groups[0].Tickets); !slices.Equal(got, tt.want) {
				t.Errorf("titles = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestSortGroups_UnknownOrderIsNoop(t *testing.T) {
	v := GroupTickets(sampleTickets(), GroupByStatus)
	sorted := SortGroups(v, SortOrder("created"), nil)

	if !slices.Equal(sorted.Keys(), v.Keys()) {
		t.Fatalf("keys = %v, want %v", sorted.Keys(), v.Keys())
	}
	for i := range v.Groups {
		if !slices.Equal(ids(sorted.Groups[i].Tickets), ids(v.Groups[i].Tickets)) {
			t.Errorf("group %q reordered", v.Groups[i].Key)
		}
	}
}

func TestSortGroups_DoesNotMutateInput(t *testing.T) {
	v := GroupTickets(sampleTickets(), GroupByStatus)
	before := ids(v.Groups[0].Tickets)

	_ = SortGroups(v, SortByTitle, mustCollator(t, "en"))

	if after := ids(v.Groups[0].Tickets); !slices.Equal(before, after) {
		t.Errorf("input group mutated: %v -> %v", before, after)
	}
}

func TestSortGroups_NilView(t *testing.T) {
	if got := SortGroups(nil, SortByPriority, nil); got.Len() != 0 {
		t.Errorf("SortGroups(nil).Len() = %d, want 0", got.Len())
	}
}

func TestArrange_Scenarios(t *testing.T) {
	tickets := []Ticket{
		{ID: "1", Title: "B", Priority: 2, Status: "Todo", UserID: "u1"},
		{ID: "2", Title: "A", Priority: 4, Status: "Todo", UserID: "u2"},
	}

	t.Run("group by status, sort by priority", func(t *testing.T) {
		v := Arrange(tickets, ViewPreferences{GroupBy: GroupByStatus, SortOrder: SortByPriority}, nil)
		if !slices.Equal(v.Keys(), []string{"Todo"}) {
			t.Fatalf("keys = %v, want [Todo]", v.Keys())
		}
		if got := ids(v.Groups[0].Tickets); !slices.Equal(got, []string{"2", "1"}) {
			t.Errorf("Todo = %v, want [2 1]", got)
		}
	})

	t.Run("group by user", func(t *testing.T) {
		v := Arrange(tickets, ViewPreferences{GroupBy: GroupByUser, SortOrder: SortByPriority}, nil)
		if !slices.Equal(v.Keys(), []string{"u1", "u2"}) {
			t.Errorf("keys = %v, want [u1 u2]", v.Keys())
		}
	})

	t.Run("empty tickets", func(t *testing.T) {
		for _, by := range ValidGroupBy() {
			for _, order := range ValidSortOrders() {
				v := Arrange(nil, ViewPreferences{GroupBy: by, SortOrder: order}, nil)
				if v.Len() != 0 {
					t.Errorf("Arrange(nil, %s, %s).Len() = %d, want 0", by, order, v.Len())
				}
			}
		}
	})
}

func TestNewCollator_InvalidLocale(t *testing.T) {
	if _, err := NewCollator("not a locale!"); err == nil {
		t.Error("expected error for malformed locale")
	}
}
