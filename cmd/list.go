package cmd

import (
	"bytes"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"github.com/tjx666/abracadabra/internal/ast"
	"github.com/tjx666/abracadabra/internal/model"
	"github.com/tjx666/abracadabra/internal/refactor"
)

var listAtFlag string

// listCmd represents the list command.
var listCmd = newListCmd()

func newListCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list [file]",
		Short: "List available refactorings",
		Long: `List prints the refactoring catalog. With a file (and optionally --at)
it also shows which refactorings are applicable there right now.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var probe func(refactor.Refactoring) string

			if len(args) == 1 {
				path := model.Path(args[0])

				code, err := readFile(path)
				if err != nil {
					return err
				}

				selection, err := parseAtFlag(listAtFlag)
				if err != nil {
					return err
				}

				if listAtFlag == "" {
					selection = code.FullSelection()
				}

				dialect := ast.DialectForPath(path)

				probe = func(r refactor.Refactoring) string {
					if r.CanPerform(code, selection, dialect) {
						return "yes"
					}

					return "no"
				}
			}

			var buffer bytes.Buffer

			table := tablewriter.NewWriter(&buffer)
			table.SetBorder(false)
			table.SetCenterSeparator("")

			if probe == nil {
				table.SetHeader([]string{"Name", "Description"})
			} else {
				table.SetHeader([]string{"Name", "Description", "Available"})
			}

			for _, name := range refactor.Names() {
				refactoring, _ := refactor.Get(name)

				row := []string{refactoring.Name, refactoring.Description}
				if probe != nil {
					row = append(row, probe(refactoring))
				}

				table.Append(row)
			}

			table.Render()
			cmd.Println(buffer.String())

			return nil
		},
	}
	cmd.Flags().StringVarP(&listAtFlag, "at", "a", "", "position as LINE:COLUMN or LINE:COLUMN-LINE:COLUMN (1-based)")

	return cmd
}

func init() {
	rootCmd.AddCommand(listCmd)
}
