package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/tjx666/abracadabra/internal/adapter"
	"github.com/tjx666/abracadabra/internal/ast"
	"github.com/tjx666/abracadabra/internal/logging"
	"github.com/tjx666/abracadabra/internal/model"
	"github.com/tjx666/abracadabra/internal/refactor"
)

var applyAtFlag string
var applyWriteFlag bool

// applyCmd represents the apply command.
var applyCmd = newApplyCmd()

func newApplyCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "apply <refactoring> <file>",
		Short: "Apply a refactoring by name",
		Long: `Apply dispatches any refactoring from the catalog by name, for scripts
and editor integrations that do not want one subcommand per refactoring.
Run "abracadabra list" to see the catalog.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			name := args[0]

			refactoring, ok := refactor.Get(name)
			if !ok {
				return fmt.Errorf("unknown refactoring %q, available: %s", name, strings.Join(refactor.Names(), ", "))
			}

			selection, err := parseAtFlag(applyAtFlag)
			if err != nil {
				return err
			}

			path := model.Path(args[1])

			opts := []adapter.Option{
				adapter.WithPrompts(adapter.NewPromptUI(interactive())),
				adapter.WithErrorOutput(cmd.ErrOrStderr()),
			}
			if applyWriteFlag {
				opts = append(opts, adapter.WithWriteBack())
			}

			ed, err := adapter.NewFileEditor(path, selection, cmd.OutOrStdout(), opts...)
			if err != nil {
				return err
			}

			if applyAtFlag == "" {
				ed.SelectAll()
			}

			logging.Default().Debug("apply refactoring",
				logging.FieldRefactoring, name,
				logging.FieldPath, path,
				logging.FieldSelection, ed.Selection(),
			)

			if err := refactoring.Run(ed.Code(), ed.Selection(), ast.DialectForPath(path), ed); err != nil {
				return err
			}

			if ed.ReportedError() != nil {
				return errNotApplicable
			}

			return nil
		},
	}
	cmd.Flags().StringVarP(&applyAtFlag, "at", "a", "", "position as LINE:COLUMN or LINE:COLUMN-LINE:COLUMN (1-based)")
	cmd.Flags().BoolVarP(&applyWriteFlag, "write", "w", false, "write the result back to the file instead of stdout")

	return cmd
}

func init() {
	rootCmd.AddCommand(applyCmd)
}
