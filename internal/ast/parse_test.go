package ast

import (
	"testing"

	"github.com/tjx666/abracadabra/internal/model"
)

func mustParse(t *testing.T, code string) *Tree {
	t.Helper()

	tree, err := Parse(model.Code(code))
	if err != nil {
		t.Fatalf("Parse(%q) failed: %v", code, err)
	}

	return tree
}

func findFirst(tree *Tree, kind Kind) *Node {
	var found *Node

	tree.Visit(func(n *Node) bool {
		if found == nil && n.Kind == kind {
			found = n
		}

		return found == nil
	})

	return found
}

func TestParse_IfStatementSlots(t *testing.T) {
	tree := mustParse(t, "if (a == b) { doA(); } else { doB(); }")

	ifNode := findFirst(tree, KindIfStatement)
	if ifNode == nil {
		t.Fatal("no if statement found")
	}

	test := tree.Slot(ifNode, SlotTest)
	if test == nil || test.Kind != KindBinaryExpression {
		t.Fatalf("test slot = %+v, want a binary expression", test)
	}

	if test.Operator != "==" {
		t.Errorf("test operator = %q, want ==", test.Operator)
	}

	if got := tree.Text(test); got != "a == b" {
		t.Errorf("test text = %q, want \"a == b\"", got)
	}

	if consequent := tree.Slot(ifNode, SlotConsequent); consequent == nil || consequent.Kind != KindBlockStatement {
		t.Errorf("consequent slot = %+v, want a block statement", consequent)
	}

	if alternate := tree.Slot(ifNode, SlotAlternate); alternate == nil || alternate.Kind != KindBlockStatement {
		t.Errorf("alternate slot = %+v, want a block statement", alternate)
	}
}

func TestParse_ComparisonRange(t *testing.T) {
	tree := mustParse(t, "if (a == b) {}")

	comparison := findFirst(tree, KindBinaryExpression)
	if comparison == nil {
		t.Fatal("no comparison found")
	}

	want := model.NewSelection(model.NewPosition(0, 4), model.NewPosition(0, 10))
	if !comparison.Range.Equals(want) {
		t.Errorf("comparison range = %+v, want %+v", comparison.Range, want)
	}
}

func TestParse_LogicalOperatorsGetTheirOwnKind(t *testing.T) {
	for _, op := range []string{"&&", "||", "??"} {
		tree := mustParse(t, "const x = a "+op+" b;")

		logical := findFirst(tree, KindLogicalExpression)
		if logical == nil {
			t.Fatalf("no logical expression found for %q", op)
		}

		if logical.Operator != op {
			t.Errorf("operator = %q, want %q", logical.Operator, op)
		}

		if found := findFirst(tree, KindBinaryExpression); found != nil {
			t.Errorf("%q must not also produce a binary expression", op)
		}
	}
}

func TestParse_ComparisonStaysBinary(t *testing.T) {
	tree := mustParse(t, "const x = a < b;")

	if findFirst(tree, KindBinaryExpression) == nil {
		t.Error("comparison must parse as a binary expression")
	}

	if findFirst(tree, KindLogicalExpression) != nil {
		t.Error("comparison must not be classified as logical")
	}
}

func TestParse_UnaryExpression(t *testing.T) {
	tree := mustParse(t, "if (!ok) {}")

	unary := findFirst(tree, KindUnaryExpression)
	if unary == nil {
		t.Fatal("no unary expression found")
	}

	if unary.Operator != "!" {
		t.Errorf("operator = %q, want !", unary.Operator)
	}

	argument := tree.Slot(unary, SlotArgument)
	if argument == nil || argument.Kind != KindIdentifier {
		t.Fatalf("argument = %+v, want an identifier", argument)
	}

	if got := tree.Text(argument); got != "ok" {
		t.Errorf("argument text = %q, want \"ok\"", got)
	}
}

func TestParse_MemberAndCallExpressions(t *testing.T) {
	tree := mustParse(t, "console.log(user.name);")

	call := findFirst(tree, KindCallExpression)
	if call == nil {
		t.Fatal("no call expression found")
	}

	callee := tree.Slot(call, SlotCallee)
	if callee == nil || callee.Kind != KindMemberExpression {
		t.Fatalf("callee = %+v, want a member expression", callee)
	}

	if got := tree.Text(callee); got != "console.log" {
		t.Errorf("callee text = %q", got)
	}
}

func TestParse_SyntaxErrorsDoNotFail(t *testing.T) {
	tree, err := Parse("if (a == ")
	if err != nil {
		t.Fatalf("Parse must recover from syntax errors, got %v", err)
	}

	if tree.Root() == nil {
		t.Fatal("recovered parse must still have a root")
	}
}

func TestDialectForPath(t *testing.T) {
	cases := map[string]Dialect{
		"src/app.ts":      DialectTypeScript,
		"src/app.js":      DialectTypeScript,
		"src/App.tsx":     DialectTSX,
		"src/App.JSX":     DialectTSX,
		"src/no-ext":      DialectTypeScript,
		"src/legacy.d.ts": DialectTypeScript,
	}

	for path, want := range cases {
		if got := DialectForPath(model.Path(path)); got != want {
			t.Errorf("DialectForPath(%q) = %v, want %v", path, got, want)
		}
	}
}

func TestParseDialect_TSX(t *testing.T) {
	tree, err := ParseDialect("const el = <div onClick={() => toggle()} />;", DialectTSX)
	if err != nil {
		t.Fatalf("ParseDialect failed: %v", err)
	}

	if tree.Root().Kind != KindProgram {
		t.Errorf("root kind = %v, want Program", tree.Root().Kind)
	}
}
