// Package model defines the data structures shared by the refactoring engine.
package model

// Position addresses a point in a text buffer. Line and Character are
// zero-based; ordering is line-then-character.
type Position struct {
	Line      int
	Character int
}

// NewPosition creates a Position clamped to non-negative coordinates.
func NewPosition(line, character int) Position {
	if line < 0 {
		line = 0
	}

	if character < 0 {
		character = 0
	}

	return Position{Line: line, Character: character}
}

// Compare orders two positions lexicographically: negative when p comes
// before other, zero when equal, positive when p comes after.
func (p Position) Compare(other Position) int {
	if p.Line != other.Line {
		return p.Line - other.Line
	}

	return p.Character - other.Character
}

// IsBefore reports whether p strictly precedes other.
func (p Position) IsBefore(other Position) bool {
	return p.Compare(other) < 0
}

// IsAfter reports whether p strictly follows other.
func (p Position) IsAfter(other Position) bool {
	return p.Compare(other) > 0
}

// Equals reports whether both positions address the same point.
func (p Position) Equals(other Position) bool {
	return p.Compare(other) == 0
}
