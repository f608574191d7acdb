package refactor

import (
	"sort"

	"github.com/tjx666/abracadabra/internal/ast"
	"github.com/tjx666/abracadabra/internal/editor"
	"github.com/tjx666/abracadabra/internal/model"
)

// Refactoring pairs an algorithm entry point with its availability probe so
// a command layer can dispatch by name without knowing any algorithm. The
// dialect comes from the caller since only the host knows the file path.
type Refactoring struct {
	Name        string
	Description string
	Run         func(code model.Code, selection model.Selection, dialect ast.Dialect, ed editor.Editor) error
	CanPerform  func(code model.Code, selection model.Selection, dialect ast.Dialect) bool
}

//nolint:gochecknoglobals // The catalog is the package's reason to exist.
var refactorings = map[string]Refactoring{}

func register(r Refactoring) {
	refactorings[r.Name] = r
}

//nolint:gochecknoinits // Registration mirrors the catalog pattern of the CLI.
func init() {
	register(Refactoring{
		Name:        "negate-expression",
		Description: "Negate the expression under the cursor",
		Run: func(code model.Code, selection model.Selection, dialect ast.Dialect, ed editor.Editor) error {
			return NegateExpression(code, selection, dialect, ed)
		},
		CanPerform: func(code model.Code, selection model.Selection, dialect ast.Dialect) bool {
			return FindNegatableExpression(code, selection, dialect) != nil
		},
	})

	register(Refactoring{
		Name:        "remove-dead-code",
		Description: "Delete conditional branches that can never run",
		Run: func(code model.Code, selection model.Selection, dialect ast.Dialect, ed editor.Editor) error {
			return RemoveDeadCode(code, selection, dialect, ed)
		},
		CanPerform: HasDeadCode,
	})
}

// Get returns the named refactoring.
func Get(name string) (Refactoring, bool) {
	r, ok := refactorings[name]
	return r, ok
}

// Names lists the catalog in stable order.
func Names() []string {
	names := make([]string, 0, len(refactorings))
	for name := range refactorings {
		names = append(names, name)
	}

	sort.Strings(names)

	return names
}

// All returns the catalog keyed by name.
func All() map[string]Refactoring {
	return refactorings
}
