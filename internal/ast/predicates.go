package ast

import (
	"strconv"
	"strings"
)

// Truthiness is the three-valued result of conservative constant folding:
// an expression that cannot be proven constant is neither truthy nor falsy.
type Truthiness int

// Truthiness values.
const (
	TruthinessUnknown Truthiness = iota
	TruthinessTruthy
	TruthinessFalsy
)

func (t Truthiness) negate() Truthiness {
	switch t {
	case TruthinessTruthy:
		return TruthinessFalsy
	case TruthinessFalsy:
		return TruthinessTruthy
	default:
		return TruthinessUnknown
	}
}

// IsTruthy reports whether the expression is provably truthy.
func (t *Tree) IsTruthy(n *Node) bool {
	return t.TruthinessOf(n) == TruthinessTruthy
}

// IsFalsy reports whether the expression is provably falsy.
func (t *Tree) IsFalsy(n *Node) bool {
	return t.TruthinessOf(n) == TruthinessFalsy
}

// TruthinessOf folds literals and simple unary/binary forms.
func (t *Tree) TruthinessOf(n *Node) Truthiness {
	switch n.Kind {
	case KindBooleanLiteral:
		if t.Text(n) == "true" {
			return TruthinessTruthy
		}

		return TruthinessFalsy

	case KindNullLiteral, KindUndefinedLiteral:
		return TruthinessFalsy

	case KindNumberLiteral:
		return t.numberTruthiness(n)

	case KindStringLiteral:
		return t.stringTruthiness(n)

	case KindIdentifier:
		switch t.Text(n) {
		case "undefined", "NaN":
			return TruthinessFalsy
		default:
			return TruthinessUnknown
		}

	case KindParenthesizedExpression:
		if inner := t.Slot(n, SlotExpression); inner != nil {
			return t.TruthinessOf(inner)
		}

		return TruthinessUnknown

	case KindUnaryExpression:
		return t.unaryTruthiness(n)

	case KindLogicalExpression:
		return t.logicalTruthiness(n)

	case KindBinaryExpression:
		return t.comparisonTruthiness(n)

	default:
		return TruthinessUnknown
	}
}

func (t *Tree) numberTruthiness(n *Node) Truthiness {
	value, ok := t.numberValue(n)
	if !ok {
		return TruthinessUnknown
	}

	if value == 0 {
		return TruthinessFalsy
	}

	return TruthinessTruthy
}

func (t *Tree) stringTruthiness(n *Node) Truthiness {
	text := t.Text(n)
	if len(text) < 2 {
		return TruthinessUnknown
	}

	// A template with substitutions is not a constant.
	if text[0] == '`' && strings.Contains(text, "${") {
		return TruthinessUnknown
	}

	if len(text) <= 2 {
		return TruthinessFalsy
	}

	return TruthinessTruthy
}

func (t *Tree) unaryTruthiness(n *Node) Truthiness {
	argument := t.Slot(n, SlotArgument)
	if argument == nil {
		return TruthinessUnknown
	}

	switch n.Operator {
	case "!":
		return t.TruthinessOf(argument).negate()
	case "void":
		return TruthinessFalsy
	case "-", "+":
		if value, ok := t.numberValue(argument); ok {
			if n.Operator == "-" {
				value = -value
			}

			if value == 0 {
				return TruthinessFalsy
			}

			return TruthinessTruthy
		}

		return TruthinessUnknown
	default:
		return TruthinessUnknown
	}
}

func (t *Tree) logicalTruthiness(n *Node) Truthiness {
	left := t.Slot(n, SlotLeft)
	right := t.Slot(n, SlotRight)

	if left == nil || right == nil {
		return TruthinessUnknown
	}

	l := t.TruthinessOf(left)
	r := t.TruthinessOf(right)

	switch n.Operator {
	case "&&":
		if l == TruthinessFalsy || r == TruthinessFalsy {
			return TruthinessFalsy
		}

		if l == TruthinessTruthy && r == TruthinessTruthy {
			return TruthinessTruthy
		}
	case "||":
		if l == TruthinessTruthy || r == TruthinessTruthy {
			return TruthinessTruthy
		}

		if l == TruthinessFalsy && r == TruthinessFalsy {
			return TruthinessFalsy
		}
	}

	return TruthinessUnknown
}

func (t *Tree) comparisonTruthiness(n *Node) Truthiness {
	left := t.Slot(n, SlotLeft)
	right := t.Slot(n, SlotRight)

	if left == nil || right == nil {
		return TruthinessUnknown
	}

	lv, lok := t.numberValue(left)
	rv, rok := t.numberValue(right)

	if !lok || !rok {
		return TruthinessUnknown
	}

	var result bool

	switch n.Operator {
	case "==", "===":
		result = lv == rv
	case "!=", "!==":
		result = lv != rv
	case "<":
		result = lv < rv
	case "<=":
		result = lv <= rv
	case ">":
		result = lv > rv
	case ">=":
		result = lv >= rv
	default:
		return TruthinessUnknown
	}

	if result {
		return TruthinessTruthy
	}

	return TruthinessFalsy
}

func (t *Tree) numberValue(n *Node) (float64, bool) {
	if n.Kind != KindNumberLiteral {
		return 0, false
	}

	value, err := strconv.ParseFloat(strings.ReplaceAll(t.Text(n), "_", ""), 64)
	if err != nil {
		return 0, false
	}

	return value, true
}

// AreEqual reports whether two expressions are structurally identical.
func (t *Tree) AreEqual(a, b *Node) bool {
	a = t.unwrapParens(a)
	b = t.unwrapParens(b)

	if a == nil || b == nil || a.Kind != b.Kind {
		return false
	}

	switch a.Kind {
	case KindBinaryExpression, KindLogicalExpression:
		return a.Operator == b.Operator &&
			t.AreEqual(t.Slot(a, SlotLeft), t.Slot(b, SlotLeft)) &&
			t.AreEqual(t.Slot(a, SlotRight), t.Slot(b, SlotRight))
	case KindUnaryExpression:
		return a.Operator == b.Operator &&
			t.AreEqual(t.Slot(a, SlotArgument), t.Slot(b, SlotArgument))
	default:
		return normalizeText(t.Text(a)) == normalizeText(t.Text(b))
	}
}

// AreOpposite reports whether one expression is the logical inverse of the
// other: the direct operator-inverse with identical operands, a boolean
// negation of the other's identifier or member form, or the two boolean
// literals.
func (t *Tree) AreOpposite(a, b *Node) bool {
	a = t.unwrapParens(a)
	b = t.unwrapParens(b)

	if a == nil || b == nil {
		return false
	}

	if a.Kind == KindBinaryExpression && b.Kind == KindBinaryExpression {
		opposite, ok := OppositeOperator(a.Operator)
		return ok && opposite == b.Operator &&
			t.AreEqual(t.Slot(a, SlotLeft), t.Slot(b, SlotLeft)) &&
			t.AreEqual(t.Slot(a, SlotRight), t.Slot(b, SlotRight))
	}

	if t.isNegationOf(a, b) || t.isNegationOf(b, a) {
		return true
	}

	if a.Kind == KindBooleanLiteral && b.Kind == KindBooleanLiteral {
		return t.Text(a) != t.Text(b)
	}

	return false
}

func (t *Tree) isNegationOf(negated, plain *Node) bool {
	if negated.Kind != KindUnaryExpression || negated.Operator != "!" {
		return false
	}

	return t.AreEqual(t.Slot(negated, SlotArgument), plain)
}

// Unwrap returns the expression inside any number of parentheses.
func (t *Tree) Unwrap(n *Node) *Node {
	return t.unwrapParens(n)
}

func (t *Tree) unwrapParens(n *Node) *Node {
	for n != nil && n.Kind == KindParenthesizedExpression {
		n = t.Slot(n, SlotExpression)
	}

	return n
}

func normalizeText(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
