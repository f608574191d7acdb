package model

import "testing"

func TestCode_OffsetRoundTrip(t *testing.T) {
	code := Code("const a = 1;\nconst b = 2;\n")

	cases := []struct {
		pos    Position
		offset int
	}{
		{Position{0, 0}, 0},
		{Position{0, 6}, 6},
		{Position{1, 0}, 13},
		{Position{1, 6}, 19},
	}

	for _, tc := range cases {
		if got := code.OffsetOf(tc.pos); got != tc.offset {
			t.Fatalf("OffsetOf(%+v) = %d, want %d", tc.pos, got, tc.offset)
		}

		if got := code.PositionOf(tc.offset); !got.Equals(tc.pos) {
			t.Fatalf("PositionOf(%d) = %+v, want %+v", tc.offset, got, tc.pos)
		}
	}
}

func TestCode_Extract(t *testing.T) {
	code := Code("if (a == b) {}")
	sel := NewSelection(Position{0, 4}, Position{0, 10})

	if got := code.Extract(sel); got != "a == b" {
		t.Fatalf("Extract = %q, want %q", got, "a == b")
	}
}

func TestApplyModifications_SingleReplacement(t *testing.T) {
	fragment := Code("a == b")
	mods := []Modification{
		{Code: "!(a != b)", Selection: fragment.FullSelection()},
	}

	if got := ApplyModifications(fragment, mods); got != "!(a != b)" {
		t.Fatalf("unexpected result: %q", got)
	}
}

func TestApplyModifications_AppliesBackToFront(t *testing.T) {
	fragment := Code("foo bar baz")
	mods := []Modification{
		{Code: "FOO", Selection: NewSelection(Position{0, 0}, Position{0, 3})},
		{Code: "BAZ", Selection: NewSelection(Position{0, 8}, Position{0, 11})},
	}

	if got := ApplyModifications(fragment, mods); got != "FOO bar BAZ" {
		t.Fatalf("unexpected result: %q", got)
	}
}

func TestApplyModifications_NoModificationsIsNoOp(t *testing.T) {
	fragment := Code("unchanged")

	if got := ApplyModifications(fragment, nil); got != fragment {
		t.Fatalf("expected fragment untouched, got %q", got)
	}
}
