package model

import "testing"

func TestNewSelection_SwapsReversedEndpoints(t *testing.T) {
	s := NewSelection(Position{2, 3}, Position{0, 1})

	if !s.Start.Equals(Position{0, 1}) || !s.End.Equals(Position{2, 3}) {
		t.Fatalf("expected normalized selection, got %+v", s)
	}
}

func TestCursor_IsZeroWidth(t *testing.T) {
	s := Cursor(3, 7)

	if !s.IsCursor() {
		t.Fatalf("expected cursor selection, got %+v", s)
	}

	if !s.Start.Equals(Position{3, 7}) {
		t.Fatalf("unexpected cursor position: %+v", s.Start)
	}
}

func TestSelection_IsInside(t *testing.T) {
	outer := NewSelection(Position{0, 4}, Position{0, 20})

	cases := []struct {
		name string
		sel  Selection
		want bool
	}{
		{"cursor at range start", Cursor(0, 4), true},
		{"cursor at range end", Cursor(0, 20), true},
		{"cursor in the middle", Cursor(0, 12), true},
		{"cursor before the range", Cursor(0, 3), false},
		{"cursor after the range", Cursor(0, 21), false},
		{"sub-range", NewSelection(Position{0, 6}, Position{0, 10}), true},
		{"range spilling out", NewSelection(Position{0, 6}, Position{0, 25}), false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.sel.IsInside(outer); got != tc.want {
				t.Fatalf("IsInside(%+v) = %v, want %v", tc.sel, got, tc.want)
			}
		})
	}
}

func TestSelection_Overlaps(t *testing.T) {
	a := NewSelection(Position{0, 0}, Position{2, 0})
	b := NewSelection(Position{1, 0}, Position{3, 0})
	c := NewSelection(Position{4, 0}, Position{5, 0})

	if !a.Overlaps(b) || !b.Overlaps(a) {
		t.Fatalf("expected %+v and %+v to overlap", a, b)
	}

	if a.Overlaps(c) {
		t.Fatalf("expected %+v and %+v not to overlap", a, c)
	}
}
