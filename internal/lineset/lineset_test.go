package lineset

import "testing"

func TestUniverse(t *testing.T) {
	if got := Universe(0); len(got) != 0 {
		t.Fatalf("Universe(0) = %v, want empty", got)
	}
	got := Universe(4)
	want := Set{1, 2, 3, 4}
	if !got.Equal(want) {
		t.Fatalf("Universe(4) = %v, want %v", got, want)
	}
}

func TestOfSortsAndDeduplicates(t *testing.T) {
	got := Of(5, 3, 0, 3, 9, -1, 5)
	want := Set{3, 5, 9}
	if !got.Equal(want) {
		t.Fatalf("Of = %v, want %v", got, want)
	}
}

func TestIntersect(t *testing.T) {
	tests := []struct {
		name string
		a, b Set
		want Set
	}{
		{"overlap", Set{1, 3, 5, 7}, Set{3, 5, 9}, Set{3, 5}},
		{"disjoint", Set{1, 2}, Set{3, 4}, Set{}},
		{"empty right", Set{1, 2}, Set{}, Set{}},
		{"empty left", Set{}, Set{1, 2}, Set{}},
		{"identical", Set{2, 4}, Set{2, 4}, Set{2, 4}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.a.Intersect(tt.b); !got.Equal(tt.want) {
				t.Fatalf("Intersect = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestContainsAndLast(t *testing.T) {
	s := Set{10, 20, 30}
	if !s.Contains(20) || s.Contains(25) {
		t.Fatalf("Contains mismatch for %v", s)
	}
	if s.Last() != 30 {
		t.Fatalf("Last = %d, want 30", s.Last())
	}
	if (Set{}).Last() != 0 {
		t.Fatalf("Last of empty set should be 0")
	}
	if i := s.Search(25); i != 2 {
		t.Fatalf("Search(25) = %d, want 2", i)
	}
}
