// Package adapter contains the concrete host adapters for the CLI.
package adapter

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"

	"github.com/tjx666/abracadabra/internal/editor"
	"github.com/tjx666/abracadabra/internal/logging"
	"github.com/tjx666/abracadabra/internal/model"
)

//nolint:gochecknoglobals // Styles are cheap, immutable render helpers.
var errorStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))

// FileEditor implements the editor contract over a file on disk. The file
// is read once at construction; writes go back to the file or to the
// configured output stream depending on the write-back flag.
type FileEditor struct {
	path      model.Path
	code      model.Code
	selection model.Selection
	cursor    *model.Position

	out       io.Writer
	errOut    io.Writer
	writeBack bool
	prompts   PromptUI

	reported []editor.ErrorReason
}

// Option configures a FileEditor.
type Option func(*FileEditor)

// WithWriteBack makes writes go to the file instead of the output stream.
func WithWriteBack() Option {
	return func(e *FileEditor) {
		e.writeBack = true
	}
}

// WithPrompts wires the interactive prompt UI.
func WithPrompts(prompts PromptUI) Option {
	return func(e *FileEditor) {
		e.prompts = prompts
	}
}

// WithErrorOutput redirects error notifications, mainly for tests.
func WithErrorOutput(w io.Writer) Option {
	return func(e *FileEditor) {
		e.errOut = w
	}
}

// NewFileEditor reads the file and builds an editor over its content.
func NewFileEditor(path model.Path, selection model.Selection, out io.Writer, opts ...Option) (*FileEditor, error) {
	content, err := os.ReadFile(string(path))
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}

	e := &FileEditor{
		path:      path,
		code:      model.Code(content),
		selection: selection,
		out:       out,
		errOut:    os.Stderr,
		prompts:   NewStaticPromptUI(),
	}

	for _, opt := range opts {
		opt(e)
	}

	return e, nil
}

// Code returns the current buffer.
func (e *FileEditor) Code() model.Code {
	return e.code
}

// Selection returns the selection the editor was opened with.
func (e *FileEditor) Selection() model.Selection {
	return e.selection
}

// SelectAll widens the selection to the whole buffer, which makes range
// driven refactorings consider every node in the file.
func (e *FileEditor) SelectAll() {
	e.selection = e.code.FullSelection()
}

// CodeOf reads another file's text.
func (e *FileEditor) CodeOf(path model.Path) (model.Code, error) {
	content, err := os.ReadFile(string(path))
	if err != nil {
		return "", fmt.Errorf("failed to read %s: %w", path, err)
	}

	return model.Code(content), nil
}

// Write replaces the whole buffer and flushes it to its destination.
func (e *FileEditor) Write(code model.Code, cursor *model.Position) error {
	e.code = code
	e.cursor = cursor

	if e.writeBack {
		if err := os.WriteFile(string(e.path), []byte(code), 0o600); err != nil {
			return fmt.Errorf("failed to write %s: %w", e.path, err)
		}

		return nil
	}

	_, err := fmt.Fprint(e.out, string(code))

	return err
}

// WriteIn creates or overwrites another file.
func (e *FileEditor) WriteIn(path model.Path, code model.Code) error {
	if err := os.WriteFile(string(path), []byte(code), 0o600); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}

	return nil
}

// ReadThenWrite atomically reads the selected fragment, computes
// replacements from it and applies them as one edit. Nothing else mutates
// the buffer between the read and the write: the editor owns its copy for
// the whole invocation.
func (e *FileEditor) ReadThenWrite(sel model.Selection, update editor.UpdateFunc, cursor *model.Position) error {
	fragment := e.code.Extract(sel)
	updated := model.ApplyModifications(fragment, update(fragment))

	return e.Write(e.code.Splice(sel, updated), cursor)
}

// ShowError renders the reason's message and records it so the command
// layer can turn it into an exit code.
func (e *FileEditor) ShowError(reason editor.ErrorReason) {
	e.reported = append(e.reported, reason)
	fmt.Fprintln(e.errOut, errorStyle.Render(reason.Message()))
}

// ReportedError returns the first reported reason, if any.
func (e *FileEditor) ReportedError() *editor.ErrorReason {
	if len(e.reported) == 0 {
		return nil
	}

	return &e.reported[0]
}

// AskUserChoice delegates to the prompt UI.
func (e *FileEditor) AskUserChoice(ctx context.Context, choices []editor.Choice) (*editor.Choice, error) {
	return e.prompts.Choose(ctx, choices)
}

// AskUserInput delegates to the prompt UI.
func (e *FileEditor) AskUserInput(ctx context.Context, defaultValue string) (*string, error) {
	return e.prompts.Input(ctx, defaultValue)
}

// Delegate has no host-native commands to forward to in the CLI.
func (e *FileEditor) Delegate(_ context.Context, command editor.Command) error {
	return fmt.Errorf("command %q is not available outside an editor host", command)
}

// MoveCursorTo records the cursor position; the CLI has no visible cursor.
func (e *FileEditor) MoveCursorTo(position model.Position) error {
	e.cursor = &position
	return nil
}

// GetSelectionReferences returns no references: the CLI host keeps no
// workspace index.
func (e *FileEditor) GetSelectionReferences(_ context.Context, sel model.Selection) ([]editor.CodeReference, error) {
	logging.Default().Debug("reference lookup unavailable",
		logging.FieldPath, e.path,
		logging.FieldSelection, sel,
	)

	return nil, nil
}

// AskForPositions confirms the given order unchanged; the CLI has no
// reorder panel.
func (e *FileEditor) AskForPositions(_ context.Context, params []editor.SelectedPosition, onConfirm func([]editor.SelectedPosition) error) error {
	return onConfirm(params)
}
