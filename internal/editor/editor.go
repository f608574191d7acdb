// Package editor defines the abstract capability surface a hosting editor
// must implement. Refactoring algorithms depend only on these contracts,
// never on a concrete host, and each algorithm asks for the narrowest
// interface it needs so its test double stays minimal.
package editor

import (
	"context"

	"github.com/tjx666/abracadabra/internal/model"
)

// UpdateFunc computes the replacements for a fragment that was read. The
// returned modifications use the fragment's local coordinate space.
type UpdateFunc func(fragment model.Code) []model.Modification

// Command names a host-native command an algorithm can delegate to.
type Command string

// Delegable commands.
const (
	CommandRenameSymbol Command = "rename-symbol"
)

// Choice is one option presented to the user.
type Choice struct {
	Label string
	Value string
}

// CodeReference points at a usage of a symbol in the workspace.
type CodeReference struct {
	Path      model.Path
	Selection model.Selection
}

// SelectedPosition is one entry of a reorderable list, used by
// signature-change style refactorings.
type SelectedPosition struct {
	Label string
	Value int
}

// ErrorReporter signals a "refactoring not applicable" condition to the
// user. Exactly one notification per failed attempt.
type ErrorReporter interface {
	ShowError(reason ErrorReason)
}

// ReadThenWriter is the minimal surface for algorithms that rewrite a
// sub-range of the buffer. ReadThenWrite atomically reads the selected
// fragment, computes replacements from it and applies them as one edit; the
// host guarantees no external mutation of the range in between.
type ReadThenWriter interface {
	ErrorReporter
	ReadThenWrite(sel model.Selection, update UpdateFunc, cursor *model.Position) error
}

// Writer is the minimal surface for algorithms that replace the whole
// buffer.
type Writer interface {
	ErrorReporter
	Write(code model.Code, cursor *model.Position) error
}

// Editor is the full capability contract a host satisfies. Richer
// refactorings depend on larger subsets of it; nothing in the engine
// depends on a concrete host.
type Editor interface {
	ReadThenWriter
	Writer

	// Code returns the current buffer.
	Code() model.Code

	// CodeOf reads another file's text.
	CodeOf(path model.Path) (model.Code, error)

	// Selection returns the user's current selection.
	Selection() model.Selection

	// WriteIn creates or overwrites another file.
	WriteIn(path model.Path, code model.Code) error

	// AskUserChoice presents options and returns the picked one. A nil
	// result with a nil error means the prompt was cancelled; algorithms
	// abort silently in that case.
	AskUserChoice(ctx context.Context, choices []Choice) (*Choice, error)

	// AskUserInput prompts for free text, pre-filled with a default. A
	// nil result with a nil error means the prompt was cancelled.
	AskUserInput(ctx context.Context, defaultValue string) (*string, error)

	// Delegate forwards to a host-native command.
	Delegate(ctx context.Context, command Command) error

	// MoveCursorTo repositions the cursor.
	MoveCursorTo(position model.Position) error

	// GetSelectionReferences finds all references to the symbol at a
	// selection, for reference-aware refactorings.
	GetSelectionReferences(ctx context.Context, sel model.Selection) ([]CodeReference, error)

	// AskForPositions presents a reorderable list and hands the new
	// order to onConfirm.
	AskForPositions(ctx context.Context, params []SelectedPosition, onConfirm func([]SelectedPosition) error) error
}
