package editor

// ErrorReason is the closed set of "refactoring not applicable here"
// causes. Reasons carry no payload; the host maps them to user messages.
type ErrorReason int

// Error reasons.
const (
	ErrorReasonUnknown ErrorReason = iota
	DidNotFindNegatableExpression
	DidNotFindDeadCode
	DidNotFindExtractableCode
)

// Message returns the user-facing text for a reason. Unknown reasons fall
// back to a generic apology so a failed attempt is never silent.
func (r ErrorReason) Message() string {
	switch r {
	case DidNotFindNegatableExpression:
		return "Sorry, I didn't find an expression to negate from where you're standing 🤔"
	case DidNotFindDeadCode:
		return "Sorry, I didn't find dead code to delete from where you're standing 🤔"
	case DidNotFindExtractableCode:
		return "Sorry, I didn't find code to extract from current selection 🤔"
	default:
		return "I'm sorry, something went wrong but I'm not sure what exactly 😅"
	}
}

// String returns the reason's stable identifier, used in logs.
func (r ErrorReason) String() string {
	switch r {
	case DidNotFindNegatableExpression:
		return "did-not-find-negatable-expression"
	case DidNotFindDeadCode:
		return "did-not-find-dead-code"
	case DidNotFindExtractableCode:
		return "did-not-find-extractable-code"
	default:
		return "unknown"
	}
}
