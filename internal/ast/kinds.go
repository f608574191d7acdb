// Package ast parses program text into a mutable syntax tree and provides
// the traversal, mutation and semantic predicates the refactoring
// algorithms are built on.
package ast

// Kind tags the closed set of node variants the engine reasons about.
// Grammar constructs outside this set are kept in the tree as KindOther so
// traversal still reaches their children.
type Kind string

// Node kinds.
const (
	KindProgram                 Kind = "Program"
	KindExpressionStatement     Kind = "ExpressionStatement"
	KindIfStatement             Kind = "IfStatement"
	KindBlockStatement          Kind = "BlockStatement"
	KindBinaryExpression        Kind = "BinaryExpression"
	KindLogicalExpression       Kind = "LogicalExpression"
	KindUnaryExpression         Kind = "UnaryExpression"
	KindParenthesizedExpression Kind = "ParenthesizedExpression"
	KindIdentifier              Kind = "Identifier"
	KindMemberExpression        Kind = "MemberExpression"
	KindCallExpression          Kind = "CallExpression"
	KindBooleanLiteral          Kind = "BooleanLiteral"
	KindNumberLiteral           Kind = "NumberLiteral"
	KindStringLiteral           Kind = "StringLiteral"
	KindNullLiteral             Kind = "NullLiteral"
	KindUndefinedLiteral        Kind = "UndefinedLiteral"
	KindOther                   Kind = "Other"
)

// Slot names a typed child position within its parent node.
type Slot string

// Child slots.
const (
	SlotTest       Slot = "test"
	SlotConsequent Slot = "consequent"
	SlotAlternate  Slot = "alternate"
	SlotLeft       Slot = "left"
	SlotRight      Slot = "right"
	SlotArgument   Slot = "argument"
	SlotExpression Slot = "expression"
	SlotObject     Slot = "object"
	SlotProperty   Slot = "property"
	SlotCallee     Slot = "callee"
)

// kindOf maps a grammar node type to the engine's closed kind set.
func kindOf(grammarKind string) Kind {
	switch grammarKind {
	case "program":
		return KindProgram
	case "expression_statement":
		return KindExpressionStatement
	case "if_statement":
		return KindIfStatement
	case "statement_block":
		return KindBlockStatement
	case "binary_expression":
		return KindBinaryExpression
	case "unary_expression":
		return KindUnaryExpression
	case "parenthesized_expression":
		return KindParenthesizedExpression
	case "identifier", "property_identifier":
		return KindIdentifier
	case "member_expression":
		return KindMemberExpression
	case "call_expression":
		return KindCallExpression
	case "true", "false":
		return KindBooleanLiteral
	case "number":
		return KindNumberLiteral
	case "string", "template_string":
		return KindStringLiteral
	case "null":
		return KindNullLiteral
	case "undefined":
		return KindUndefinedLiteral
	default:
		return KindOther
	}
}
