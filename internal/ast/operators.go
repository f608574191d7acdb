package ast

// oppositeOperators maps each comparison operator to its logical complement.
// Operators outside this table (arithmetic, in, instanceof, ...) have no
// complement and cannot be negated by flipping.
var oppositeOperators = map[string]string{
	"==":  "!=",
	"!=":  "==",
	"===": "!==",
	"!==": "===",
	"<":   ">=",
	">=":  "<",
	"<=":  ">",
	">":   "<=",
}

// logicalOperators maps && and || onto each other for De Morgan rewrites.
var logicalOperators = map[string]string{
	"&&": "||",
	"||": "&&",
}

// OppositeOperator returns the logical complement of a comparison operator.
// The second result is false when the operator has no complement, which
// signals "not negatable via operator flip".
func OppositeOperator(op string) (string, bool) {
	opposite, ok := oppositeOperators[op]
	return opposite, ok
}

// OppositeLogicalOperator maps && to || and back.
func OppositeLogicalOperator(op string) (string, bool) {
	opposite, ok := logicalOperators[op]
	return opposite, ok
}

// IsComparisonOperator reports whether op is one of the eight comparison
// operators with a direct logical complement.
func IsComparisonOperator(op string) bool {
	_, ok := oppositeOperators[op]
	return ok
}
