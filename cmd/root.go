// Package cmd provides the root command and CLI setup for abracadabra.
package cmd

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/tjx666/abracadabra/internal/adapter"
	"github.com/tjx666/abracadabra/internal/config"
	"github.com/tjx666/abracadabra/internal/logging"
	"github.com/tjx666/abracadabra/internal/model"
)

// errNotApplicable signals that a refactoring ran but found nothing to do.
// The human-readable message is already on screen by the time this error
// surfaces, so Execute only turns it into the exit code.
var errNotApplicable = errors.New("refactoring not applicable here")

var cfg = config.Default()

var logLevelFlag string

// rootCmd represents the base command when called without any subcommands.
var rootCmd = newRootCmd()

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "abracadabra",
		Short: "Automated refactorings for TypeScript and JavaScript",
		Long: `Abracadabra applies automated refactorings to TypeScript and JavaScript
source files. Point it at a file and a position and it rewrites the code
for you, preserving the formatting around the change.

Positions are given as LINE:COLUMN (1-based), optionally as a range:
  - --at 4:12          cursor position
  - --at 4:12-4:20     selected range`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
			cwd, err := os.Getwd()
			if err != nil {
				return err
			}

			loaded, err := config.NewLoader(cwd).Load()
			if err != nil {
				return err
			}

			cfg = loaded

			level := cfg.LogLevel
			if logLevelFlag != "" {
				level = logLevelFlag
			}

			logging.SetLevel(level)

			return nil
		},
	}
	cmd.PersistentFlags().StringVar(&logLevelFlag, "log-level", "", "log verbosity: debug, info, warn, error")

	return cmd
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		if !errors.Is(err, errNotApplicable) {
			fmt.Fprintln(os.Stderr, "Error:", err)
		}

		os.Exit(1)
	}
}

// parseAtFlag converts a 1-based LINE:COLUMN or LINE:COLUMN-LINE:COLUMN
// string into a zero-based selection. An empty value is the cursor at the
// start of the file.
func parseAtFlag(at string) (model.Selection, error) {
	if at == "" {
		return model.Cursor(0, 0), nil
	}

	start, rest, hasEnd := strings.Cut(at, "-")

	startPos, err := parsePosition(start)
	if err != nil {
		return model.Selection{}, err
	}

	if !hasEnd {
		return model.Cursor(startPos.Line, startPos.Character), nil
	}

	endPos, err := parsePosition(rest)
	if err != nil {
		return model.Selection{}, err
	}

	return model.NewSelection(startPos, endPos), nil
}

func parsePosition(s string) (model.Position, error) {
	var line, column int

	if _, err := fmt.Sscanf(s, "%d:%d", &line, &column); err != nil || line < 1 || column < 1 {
		return model.Position{}, fmt.Errorf("invalid position %q, want LINE:COLUMN (1-based)", s)
	}

	return model.NewPosition(line-1, column-1), nil
}

func readFile(path model.Path) (model.Code, error) {
	content, err := os.ReadFile(string(path))
	if err != nil {
		return "", fmt.Errorf("failed to read %s: %w", path, err)
	}

	return model.Code(content), nil
}

func parsePaths(args []string) []model.Path {
	paths := make([]model.Path, 0, len(args))
	for _, arg := range args {
		paths = append(paths, model.Path(arg))
	}

	return paths
}

// interactive decides whether prompts may take over the terminal. The
// config can force it either way; otherwise it follows whether stdout is
// a TTY.
func interactive() bool {
	if cfg.Interactive != nil {
		return *cfg.Interactive
	}

	return adapter.IsTTY(os.Stdout)
}
