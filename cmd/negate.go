package cmd

import (
	"github.com/spf13/cobra"

	"github.com/tjx666/abracadabra/internal/adapter"
	"github.com/tjx666/abracadabra/internal/ast"
	"github.com/tjx666/abracadabra/internal/logging"
	"github.com/tjx666/abracadabra/internal/model"
	"github.com/tjx666/abracadabra/internal/refactor"
)

var negateAtFlag string
var negateWriteFlag bool

// negateCmd represents the negate command.
var negateCmd = newNegateCmd()

func newNegateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "negate <file>",
		Short: "Negate the expression at a position",
		Long: `Negate rewrites the innermost negatable expression enclosing the given
position: comparisons flip their operator, logical expressions take their
De Morgan form, and an already negated expression unwinds back.

Without --write the rewritten file goes to stdout.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			selection, err := parseAtFlag(negateAtFlag)
			if err != nil {
				return err
			}

			path := model.Path(args[0])

			opts := []adapter.Option{
				adapter.WithPrompts(adapter.NewPromptUI(interactive())),
				adapter.WithErrorOutput(cmd.ErrOrStderr()),
			}
			if negateWriteFlag {
				opts = append(opts, adapter.WithWriteBack())
			}

			ed, err := adapter.NewFileEditor(path, selection, cmd.OutOrStdout(), opts...)
			if err != nil {
				return err
			}

			logging.Default().Debug("negate expression",
				logging.FieldPath, path,
				logging.FieldSelection, selection,
			)

			if err := refactor.NegateExpression(ed.Code(), ed.Selection(), ast.DialectForPath(path), ed); err != nil {
				return err
			}

			if ed.ReportedError() != nil {
				return errNotApplicable
			}

			return nil
		},
	}
	cmd.Flags().StringVarP(&negateAtFlag, "at", "a", "", "position as LINE:COLUMN or LINE:COLUMN-LINE:COLUMN (1-based)")
	cmd.Flags().BoolVarP(&negateWriteFlag, "write", "w", false, "write the result back to the file instead of stdout")

	return cmd
}

func init() {
	rootCmd.AddCommand(negateCmd)
}
