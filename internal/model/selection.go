package model

// Selection is an ordered pair of positions addressing a range in a buffer.
// Start never follows End. A cursor is a selection whose Start equals End.
type Selection struct {
	Start Position
	End   Position
}

// NewSelection builds a Selection, swapping the endpoints when they arrive
// out of order so the Start <= End invariant always holds.
func NewSelection(start, end Position) Selection {
	if end.IsBefore(start) {
		start, end = end, start
	}

	return Selection{Start: start, End: end}
}

// Cursor returns a zero-width selection at the given coordinates.
func Cursor(line, character int) Selection {
	p := NewPosition(line, character)
	return Selection{Start: p, End: p}
}

// IsCursor reports whether the selection is zero-width.
func (s Selection) IsCursor() bool {
	return s.Start.Equals(s.End)
}

// IsInside reports whether s falls entirely within other, bounds inclusive.
func (s Selection) IsInside(other Selection) bool {
	return !s.Start.IsBefore(other.Start) && !s.End.IsAfter(other.End)
}

// Contains reports whether other falls entirely within s, bounds inclusive.
func (s Selection) Contains(other Selection) bool {
	return other.IsInside(s)
}

// Overlaps reports whether the two selections share at least one position.
func (s Selection) Overlaps(other Selection) bool {
	return !s.End.IsBefore(other.Start) && !other.End.IsBefore(s.Start)
}

// Compare orders selections by start position, then by end position, so a
// batch of modifications can be sorted before being applied.
func (s Selection) Compare(other Selection) int {
	if c := s.Start.Compare(other.Start); c != 0 {
		return c
	}

	return s.End.Compare(other.End)
}

// Equals reports whether both selections address the same range.
func (s Selection) Equals(other Selection) bool {
	return s.Start.Equals(other.Start) && s.End.Equals(other.End)
}
