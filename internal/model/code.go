package model

import "strings"

// Code is an opaque buffer of program text. Algorithms always receive and
// return complete buffers or buffer fragments, never streams.
type Code string

// Path represents a file system path.
type Path string

// lineStarts returns the byte offset of the first character of every line.
func (c Code) lineStarts() []int {
	starts := []int{0}

	for i := 0; i < len(c); i++ {
		if c[i] == '\n' {
			starts = append(starts, i+1)
		}
	}

	return starts
}

// OffsetOf converts a position into a byte offset within the buffer.
// Positions past the end of a line or of the buffer clamp to the nearest
// valid offset. Characters are counted in bytes, matching the column
// convention of the syntax tree.
func (c Code) OffsetOf(pos Position) int {
	starts := c.lineStarts()

	if pos.Line >= len(starts) {
		return len(c)
	}

	offset := starts[pos.Line] + pos.Character

	lineEnd := len(c)
	if pos.Line+1 < len(starts) {
		lineEnd = starts[pos.Line+1] - 1
	}

	if offset > lineEnd {
		offset = lineEnd
	}

	return offset
}

// PositionOf converts a byte offset back into line/character coordinates.
func (c Code) PositionOf(offset int) Position {
	if offset < 0 {
		offset = 0
	}

	if offset > len(c) {
		offset = len(c)
	}

	prefix := string(c[:offset])
	line := strings.Count(prefix, "\n")
	character := offset

	if idx := strings.LastIndexByte(prefix, '\n'); idx >= 0 {
		character = offset - idx - 1
	}

	return Position{Line: line, Character: character}
}

// Extract returns the fragment of the buffer addressed by the selection.
func (c Code) Extract(sel Selection) Code {
	start := c.OffsetOf(sel.Start)
	end := c.OffsetOf(sel.End)

	return c[start:end]
}

// Splice replaces the selected range with the given text.
func (c Code) Splice(sel Selection, replacement Code) Code {
	start := c.OffsetOf(sel.Start)
	end := c.OffsetOf(sel.End)

	return c[:start] + replacement + c[end:]
}

// FullSelection returns the selection spanning the whole buffer.
func (c Code) FullSelection() Selection {
	return Selection{Start: Position{}, End: c.PositionOf(len(c))}
}
