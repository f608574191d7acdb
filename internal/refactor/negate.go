// Package refactor contains the refactoring algorithms. Each algorithm is
// a pure function from (code, selection) to an edit set, talking to the
// host only through the editor contracts.
package refactor

import (
	"github.com/tjx666/abracadabra/internal/ast"
	"github.com/tjx666/abracadabra/internal/editor"
	"github.com/tjx666/abracadabra/internal/model"
)

// NegateExpression rewrites the innermost negatable expression enclosing
// the selection into its negated form. On success it performs exactly one
// buffer edit; otherwise it reports exactly one error and writes nothing.
func NegateExpression(code model.Code, selection model.Selection, dialect ast.Dialect, ed editor.ReadThenWriter) error {
	tree, err := ast.ParseDialect(code, dialect)
	if err != nil {
		ed.ShowError(editor.DidNotFindNegatableExpression)
		return nil //nolint:nilerr // parse failure degrades to "not applicable"
	}

	target := findNegatable(tree, selection)
	if target == nil {
		ed.ShowError(editor.DidNotFindNegatableExpression)
		return nil
	}

	rewritten := model.Code(negatedText(tree, target))

	return ed.ReadThenWrite(target.Range, func(fragment model.Code) []model.Modification {
		return []model.Modification{
			{Code: rewritten, Selection: fragment.FullSelection()},
		}
	}, nil)
}

// FindNegatableExpression is the read-only probe used by quick-fix
// availability checks. It returns the node negation would rewrite, or nil.
func FindNegatableExpression(code model.Code, selection model.Selection, dialect ast.Dialect) *ast.Node {
	tree, err := ast.ParseDialect(code, dialect)
	if err != nil {
		return nil
	}

	return findNegatable(tree, selection)
}

// findNegatable returns the innermost negatable expression whose range
// contains the selection. Because bare identifiers only qualify in a
// boolean position, a cursor on one operand of a logical expression widens
// the target to the whole expression, while a cursor inside a comparison
// operand resolves to that comparison alone.
func findNegatable(tree *ast.Tree, selection model.Selection) *ast.Node {
	var target *ast.Node

	tree.Visit(func(n *ast.Node) bool {
		if !selection.IsInside(n.Range) {
			// The selection cannot be inside a descendant either.
			return false
		}

		if isNegatable(tree, n) {
			target = n
		}

		return true
	})

	return target
}

func isNegatable(tree *ast.Tree, n *ast.Node) bool {
	switch n.Kind {
	case ast.KindBinaryExpression:
		// Comparisons only: concatenation and other arithmetic must
		// not be offered.
		return ast.IsComparisonOperator(n.Operator)
	case ast.KindLogicalExpression:
		_, ok := ast.OppositeLogicalOperator(n.Operator)
		return ok
	case ast.KindUnaryExpression:
		// A negated operand of && or || defers to the enclosing logical
		// expression, the same way bare identifiers do.
		return n.Operator == "!" && !isLogicalOperand(tree, n)
	case ast.KindIdentifier, ast.KindMemberExpression:
		return isBooleanPosition(tree, n)
	default:
		return false
	}
}

func isLogicalOperand(tree *ast.Tree, n *ast.Node) bool {
	parent := tree.Parent(n)
	return parent != nil && parent.Kind == ast.KindLogicalExpression
}

// isBooleanPosition reports whether an identifier or member expression is
// used as a condition on its own, which makes it an implicit boolean.
func isBooleanPosition(tree *ast.Tree, n *ast.Node) bool {
	parent := tree.Parent(n)
	if parent == nil || parent.Kind != ast.KindIfStatement {
		return false
	}

	return tree.Slot(parent, ast.SlotTest) == n
}

// negatedText rewrites the target expression. A logical expression takes
// the De Morgan form with one wrapping bang; a standalone comparison flips
// its operator and wraps; an already-negated form unwinds back.
func negatedText(tree *ast.Tree, n *ast.Node) string {
	switch n.Kind {
	case ast.KindLogicalExpression:
		flipped, _ := ast.OppositeLogicalOperator(n.Operator)
		left := tree.Slot(n, ast.SlotLeft)
		right := tree.Slot(n, ast.SlotRight)

		return "!(" + operandNegation(tree, left) + " " + flipped + " " + operandNegation(tree, right) + ")"

	case ast.KindBinaryExpression:
		if opposite, ok := ast.OppositeOperator(n.Operator); ok {
			left := tree.Slot(n, ast.SlotLeft)
			right := tree.Slot(n, ast.SlotRight)

			return "!(" + tree.Text(left) + " " + opposite + " " + tree.Text(right) + ")"
		}

		return "!(" + tree.Text(n) + ")"

	case ast.KindUnaryExpression:
		return unwindNegation(tree, tree.Slot(n, ast.SlotArgument))

	case ast.KindIdentifier, ast.KindMemberExpression:
		return "!" + tree.Text(n)

	default:
		return "!(" + tree.Text(n) + ")"
	}
}

// operandNegation negates one operand of a logical expression without a
// wrapping bang where the operand offers a direct complement.
func operandNegation(tree *ast.Tree, n *ast.Node) string {
	if n == nil {
		return ""
	}

	switch n.Kind {
	case ast.KindBinaryExpression:
		if opposite, ok := ast.OppositeOperator(n.Operator); ok {
			left := tree.Slot(n, ast.SlotLeft)
			right := tree.Slot(n, ast.SlotRight)

			return tree.Text(left) + " " + opposite + " " + tree.Text(right)
		}

		return "!(" + tree.Text(n) + ")"

	case ast.KindLogicalExpression:
		return negatedText(tree, n)

	case ast.KindUnaryExpression:
		if n.Operator == "!" {
			return tree.Text(tree.Slot(n, ast.SlotArgument))
		}

		return "!(" + tree.Text(n) + ")"

	case ast.KindParenthesizedExpression:
		return "(" + operandNegation(tree, tree.Slot(n, ast.SlotExpression)) + ")"

	case ast.KindIdentifier, ast.KindMemberExpression, ast.KindCallExpression:
		return "!" + tree.Text(n)

	default:
		return "!(" + tree.Text(n) + ")"
	}
}

// unwindNegation inverts a previously produced negation: the wrapping bang
// goes away and operator flips are undone, so negating twice restores the
// original comparison.
func unwindNegation(tree *ast.Tree, argument *ast.Node) string {
	if argument == nil {
		return ""
	}

	inner := tree.Unwrap(argument)

	switch inner.Kind {
	case ast.KindBinaryExpression:
		if opposite, ok := ast.OppositeOperator(inner.Operator); ok {
			left := tree.Slot(inner, ast.SlotLeft)
			right := tree.Slot(inner, ast.SlotRight)

			return tree.Text(left) + " " + opposite + " " + tree.Text(right)
		}

		return tree.Text(inner)

	case ast.KindLogicalExpression:
		flipped, _ := ast.OppositeLogicalOperator(inner.Operator)
		left := tree.Slot(inner, ast.SlotLeft)
		right := tree.Slot(inner, ast.SlotRight)

		return operandNegation(tree, left) + " " + flipped + " " + operandNegation(tree, right)

	case ast.KindUnaryExpression:
		if inner.Operator == "!" {
			return tree.Text(tree.Slot(inner, ast.SlotArgument))
		}

		return tree.Text(inner)

	default:
		return tree.Text(inner)
	}
}
