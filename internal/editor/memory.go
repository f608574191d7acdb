package editor

import (
	"context"
	"fmt"

	"github.com/tjx666/abracadabra/internal/model"
)

// InMemoryEditor implements the full Editor contract over an in-memory
// buffer. It backs the engine's tests and any host that wants to run an
// algorithm without touching real files.
type InMemoryEditor struct {
	code      model.Code
	selection model.Selection
	cursor    *model.Position

	files map[model.Path]model.Code

	errors  []ErrorReason
	choice  *Choice
	input   *string
	cancels bool

	delegated []Command
}

// NewInMemoryEditor creates an editor over the given buffer and selection.
func NewInMemoryEditor(code model.Code, selection model.Selection) *InMemoryEditor {
	return &InMemoryEditor{
		code:      code,
		selection: selection,
		files:     map[model.Path]model.Code{},
	}
}

// Code returns the current buffer.
func (e *InMemoryEditor) Code() model.Code {
	return e.code
}

// Selection returns the configured selection.
func (e *InMemoryEditor) Selection() model.Selection {
	return e.selection
}

// Cursor returns the cursor set by the last write, if any.
func (e *InMemoryEditor) Cursor() *model.Position {
	return e.cursor
}

// CodeOf reads a registered file.
func (e *InMemoryEditor) CodeOf(path model.Path) (model.Code, error) {
	code, ok := e.files[path]
	if !ok {
		return "", fmt.Errorf("no such file: %s", path)
	}

	return code, nil
}

// Write replaces the whole buffer.
func (e *InMemoryEditor) Write(code model.Code, cursor *model.Position) error {
	e.code = code
	e.cursor = cursor

	return nil
}

// WriteIn creates or overwrites a registered file.
func (e *InMemoryEditor) WriteIn(path model.Path, code model.Code) error {
	e.files[path] = code
	return nil
}

// ReadThenWrite reads the selected fragment, computes replacements from it
// and applies them as one atomic edit.
func (e *InMemoryEditor) ReadThenWrite(sel model.Selection, update UpdateFunc, cursor *model.Position) error {
	fragment := e.code.Extract(sel)
	updated := model.ApplyModifications(fragment, update(fragment))
	e.code = e.code.Splice(sel, updated)
	e.cursor = cursor

	return nil
}

// ShowError records the reported reason.
func (e *InMemoryEditor) ShowError(reason ErrorReason) {
	e.errors = append(e.errors, reason)
}

// ReportedErrors returns every reason reported so far.
func (e *InMemoryEditor) ReportedErrors() []ErrorReason {
	return e.errors
}

// StubChoice makes AskUserChoice return the given option.
func (e *InMemoryEditor) StubChoice(choice Choice) {
	e.choice = &choice
}

// StubInput makes AskUserInput return the given text.
func (e *InMemoryEditor) StubInput(input string) {
	e.input = &input
}

// CancelPrompts makes every prompt report cancellation.
func (e *InMemoryEditor) CancelPrompts() {
	e.cancels = true
}

// AskUserChoice returns the stubbed choice, or nil when cancelled.
func (e *InMemoryEditor) AskUserChoice(_ context.Context, choices []Choice) (*Choice, error) {
	if e.cancels || e.choice == nil {
		return nil, nil
	}

	for _, c := range choices {
		if c.Value == e.choice.Value {
			return &c, nil
		}
	}

	return e.choice, nil
}

// AskUserInput returns the stubbed input, the default, or nil when cancelled.
func (e *InMemoryEditor) AskUserInput(_ context.Context, defaultValue string) (*string, error) {
	if e.cancels {
		return nil, nil
	}

	if e.input != nil {
		return e.input, nil
	}

	return &defaultValue, nil
}

// Delegate records the forwarded command.
func (e *InMemoryEditor) Delegate(_ context.Context, command Command) error {
	e.delegated = append(e.delegated, command)
	return nil
}

// DelegatedCommands returns every command forwarded so far.
func (e *InMemoryEditor) DelegatedCommands() []Command {
	return e.delegated
}

// MoveCursorTo repositions the cursor.
func (e *InMemoryEditor) MoveCursorTo(position model.Position) error {
	e.cursor = &position
	return nil
}

// GetSelectionReferences returns no references; in-memory buffers have no
// workspace to search.
func (e *InMemoryEditor) GetSelectionReferences(_ context.Context, _ model.Selection) ([]CodeReference, error) {
	return nil, nil
}

// AskForPositions confirms the given order unchanged, or aborts silently
// when prompts are cancelled.
func (e *InMemoryEditor) AskForPositions(_ context.Context, params []SelectedPosition, onConfirm func([]SelectedPosition) error) error {
	if e.cancels {
		return nil
	}

	return onConfirm(params)
}
