package adapter

import (
	"io"
	"os"

	"golang.org/x/term"
)

// NewPromptUI creates a prompt UI based on whether TTY mode is enabled.
// When useTTY is true, it returns the Bubble Tea prompts.
// When useTTY is false, it returns the static non-interactive prompts.
func NewPromptUI(useTTY bool) PromptUI {
	if useTTY {
		return NewTUIPromptUI()
	}

	return NewStaticPromptUI()
}

// IsTTY checks if the given writer is a terminal (TTY).
// Returns true if the output is an interactive terminal.
// Returns false if the output is redirected to a file or pipe.
func IsTTY(w io.Writer) bool {
	file, ok := w.(*os.File)
	if !ok {
		return false
	}

	return term.IsTerminal(int(file.Fd()))
}
