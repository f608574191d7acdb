package cmd

import (
	"fmt"
	"sync/atomic"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/tjx666/abracadabra/internal/adapter"
	"github.com/tjx666/abracadabra/internal/ast"
	"github.com/tjx666/abracadabra/internal/logging"
	"github.com/tjx666/abracadabra/internal/model"
	"github.com/tjx666/abracadabra/internal/refactor"
)

var deadcodeAtFlag string
var deadcodeWriteFlag bool
var deadcodeParallelFlag int

// deadcodeCmd represents the deadcode command.
var deadcodeCmd = newDeadcodeCmd()

func newDeadcodeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "deadcode [paths...]",
		Short: "Remove conditional branches that can never run",
		Long: `Deadcode deletes branches of if statements whose test is statically
decided, and branches of nested ifs that repeat or contradict an
enclosing condition.

Paths may be files, directories, or directories with a /... suffix for a
recursive scan:
  - abracadabra deadcode -w src/...
  - abracadabra deadcode --at 4:1 src/main.ts

Without --at the whole file is considered. Rewriting more than one file
requires --write.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			workspace, err := adapter.NewWorkspace(cfg.Ignore)
			if err != nil {
				return err
			}

			files, err := workspace.Resolve(parsePaths(args))
			if err != nil {
				return err
			}

			if len(files) == 0 {
				return fmt.Errorf("no source files found under %v", args)
			}

			if len(files) > 1 && !deadcodeWriteFlag {
				return fmt.Errorf("%d files matched, use --write to rewrite them in place", len(files))
			}

			if len(files) == 1 {
				return removeDeadCodeInFile(cmd, files[0])
			}

			return removeDeadCodeInBatch(files)
		},
	}
	cmd.Flags().StringVarP(&deadcodeAtFlag, "at", "a", "", "position as LINE:COLUMN or LINE:COLUMN-LINE:COLUMN (1-based)")
	cmd.Flags().BoolVarP(&deadcodeWriteFlag, "write", "w", false, "write results back to the files instead of stdout")
	cmd.Flags().IntVarP(&deadcodeParallelFlag, "parallel", "p", 1, "number of files rewritten concurrently")

	return cmd
}

func removeDeadCodeInFile(cmd *cobra.Command, path model.Path) error {
	selection, err := parseAtFlag(deadcodeAtFlag)
	if err != nil {
		return err
	}

	opts := []adapter.Option{adapter.WithErrorOutput(cmd.ErrOrStderr())}
	if deadcodeWriteFlag {
		opts = append(opts, adapter.WithWriteBack())
	}

	ed, err := adapter.NewFileEditor(path, selection, cmd.OutOrStdout(), opts...)
	if err != nil {
		return err
	}

	if deadcodeAtFlag == "" {
		ed.SelectAll()
	}

	if err := refactor.RemoveDeadCode(ed.Code(), ed.Selection(), ast.DialectForPath(path), ed); err != nil {
		return err
	}

	if ed.ReportedError() != nil {
		return errNotApplicable
	}

	return nil
}

// removeDeadCodeInBatch rewrites every file that has dead code, skipping
// clean files silently. Files are independent so they run concurrently.
func removeDeadCodeInBatch(files []model.Path) error {
	var changed atomic.Int64

	group := new(errgroup.Group)
	group.SetLimit(deadcodeParallelFlag)

	for _, path := range files {
		group.Go(func() error {
			ed, err := adapter.NewFileEditor(path, model.Cursor(0, 0), nil, adapter.WithWriteBack())
			if err != nil {
				return err
			}

			ed.SelectAll()

			dialect := ast.DialectForPath(path)

			if !refactor.HasDeadCode(ed.Code(), ed.Selection(), dialect) {
				return nil
			}

			if err := refactor.RemoveDeadCode(ed.Code(), ed.Selection(), dialect, ed); err != nil {
				return err
			}

			changed.Add(1)
			logging.Default().Info("removed dead code", logging.FieldPath, path)

			return nil
		})
	}

	if err := group.Wait(); err != nil {
		return err
	}

	logging.Default().Info("done",
		logging.FieldFilesChanged, changed.Load(),
		logging.FieldParallel, deadcodeParallelFlag,
	)

	if changed.Load() == 0 {
		return errNotApplicable
	}

	return nil
}

func init() {
	rootCmd.AddCommand(deadcodeCmd)
}
