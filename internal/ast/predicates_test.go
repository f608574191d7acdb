package ast

import (
	"testing"
)

// testOf parses "if (<expr>) {}" and returns the test slot, which puts the
// expression in a position the grammar accepts for every form under test.
func testOf(t *testing.T, expr string) (*Tree, *Node) {
	t.Helper()

	tree := mustParse(t, "if ("+expr+") {}")

	ifNode := findFirst(tree, KindIfStatement)
	if ifNode == nil {
		t.Fatalf("no if statement parsed for %q", expr)
	}

	test := tree.Slot(ifNode, SlotTest)
	if test == nil {
		t.Fatalf("no test slot parsed for %q", expr)
	}

	return tree, test
}

func TestTruthinessOf(t *testing.T) {
	cases := []struct {
		expr string
		want Truthiness
	}{
		{"true", TruthinessTruthy},
		{"false", TruthinessFalsy},
		{"0", TruthinessFalsy},
		{"0.0", TruthinessFalsy},
		{"42", TruthinessTruthy},
		{"1_000", TruthinessTruthy},
		{"''", TruthinessFalsy},
		{"\"hello\"", TruthinessTruthy},
		{"`text`", TruthinessTruthy},
		{"null", TruthinessFalsy},
		{"undefined", TruthinessFalsy},
		{"NaN", TruthinessFalsy},
		{"!0", TruthinessTruthy},
		{"!!0", TruthinessFalsy},
		{"-0", TruthinessFalsy},
		{"-3", TruthinessTruthy},
		{"void 0", TruthinessFalsy},
		{"(false)", TruthinessFalsy},
		{"1 < 2", TruthinessTruthy},
		{"2 < 1", TruthinessFalsy},
		{"3 === 3", TruthinessTruthy},
		{"3 !== 3", TruthinessFalsy},
		{"true && false", TruthinessFalsy},
		{"someFlag && false", TruthinessFalsy},
		{"true || someFlag", TruthinessTruthy},
		{"someFlag", TruthinessUnknown},
		{"a < b", TruthinessUnknown},
		{"someFlag || other", TruthinessUnknown},
		{"getValue()", TruthinessUnknown},
	}

	for _, tc := range cases {
		tree, test := testOf(t, tc.expr)

		if got := tree.TruthinessOf(test); got != tc.want {
			t.Errorf("TruthinessOf(%q) = %v, want %v", tc.expr, got, tc.want)
		}
	}
}

func TestTruthinessOf_TemplateWithSubstitutionIsUnknown(t *testing.T) {
	tree, test := testOf(t, "`hello ${name}`")

	if got := tree.TruthinessOf(test); got != TruthinessUnknown {
		t.Errorf("a template with substitutions folded to %v, want unknown", got)
	}
}

func TestIsTruthyIsFalsy(t *testing.T) {
	tree, test := testOf(t, "true")
	if !tree.IsTruthy(test) || tree.IsFalsy(test) {
		t.Error("true must be truthy and not falsy")
	}

	tree, test = testOf(t, "someFlag")
	if tree.IsTruthy(test) || tree.IsFalsy(test) {
		t.Error("an unknown expression is neither truthy nor falsy")
	}
}

// nestedTests parses an outer if holding an inner if and returns both test
// expressions from the same tree.
func nestedTests(t *testing.T, outer, inner string) (*Tree, *Node, *Node) {
	t.Helper()

	tree := mustParse(t, "if ("+outer+") { if ("+inner+") {} }")

	var found []*Node

	tree.Visit(func(n *Node) bool {
		if n.Kind == KindIfStatement {
			found = append(found, n)
		}

		return true
	})

	if len(found) != 2 {
		t.Fatalf("parsed %d if statements, want 2", len(found))
	}

	return tree, tree.Slot(found[0], SlotTest), tree.Slot(found[1], SlotTest)
}

func TestAreEqual(t *testing.T) {
	cases := []struct {
		outer string
		inner string
		want  bool
	}{
		{"isValid", "isValid", true},
		{"isValid", "isDone", false},
		{"a === b", "a === b", true},
		{"a === b", "a===b", true},
		{"a === b", "a !== b", false},
		{"a === b", "b === a", false},
		{"(a === b)", "a === b", true},
		{"!done", "!done", true},
		{"!done", "done", false},
		{"user.isAdmin", "user.isAdmin", true},
		{"a && b", "a && b", true},
		{"a && b", "a || b", false},
	}

	for _, tc := range cases {
		tree, outer, inner := nestedTests(t, tc.outer, tc.inner)

		if got := tree.AreEqual(outer, inner); got != tc.want {
			t.Errorf("AreEqual(%q, %q) = %v, want %v", tc.outer, tc.inner, got, tc.want)
		}
	}
}

func TestAreOpposite(t *testing.T) {
	cases := []struct {
		outer string
		inner string
		want  bool
	}{
		{"a === b", "a !== b", true},
		{"a < b", "a >= b", true},
		{"a <= b", "a > b", true},
		{"a === b", "a === b", false},
		{"a === b", "b !== a", false},
		{"isValid", "!isValid", true},
		{"!isValid", "isValid", true},
		{"!isValid", "!isValid", false},
		{"user.isAdmin", "!user.isAdmin", true},
		{"true", "false", true},
		{"true", "true", false},
		{"(a === b)", "(a !== b)", true},
		{"isValid", "isDone", false},
	}

	for _, tc := range cases {
		tree, outer, inner := nestedTests(t, tc.outer, tc.inner)

		if got := tree.AreOpposite(outer, inner); got != tc.want {
			t.Errorf("AreOpposite(%q, %q) = %v, want %v", tc.outer, tc.inner, got, tc.want)
		}
	}
}

func TestUnwrap(t *testing.T) {
	tree, test := testOf(t, "((a === b))")

	inner := tree.Unwrap(test)
	if inner == nil || inner.Kind != KindBinaryExpression {
		t.Fatalf("Unwrap gave %+v, want the comparison", inner)
	}

	if got := tree.Text(inner); got != "a === b" {
		t.Errorf("unwrapped text = %q", got)
	}
}
