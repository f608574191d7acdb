package refactor

import (
	"github.com/tjx666/abracadabra/internal/ast"
	"github.com/tjx666/abracadabra/internal/editor"
	"github.com/tjx666/abracadabra/internal/model"
)

// RemoveDeadCode deletes branches of conditionals proven unreachable, for
// every if statement the selection addresses. It performs exactly one write
// when something changed, otherwise it reports DidNotFindDeadCode and
// writes nothing. One pass only: callers needing full convergence re-invoke
// until nothing changes.
func RemoveDeadCode(code model.Code, selection model.Selection, dialect ast.Dialect, ed editor.Writer) error {
	result, err := removeDeadCode(code, selection, dialect)
	if err != nil || !result.HasCodeChanged {
		ed.ShowError(editor.DidNotFindDeadCode)
		return nil //nolint:nilerr // parse failure degrades to "not applicable"
	}

	return ed.Write(result.Code, nil)
}

// HasDeadCode is the read-only probe: true iff RemoveDeadCode would write.
func HasDeadCode(code model.Code, selection model.Selection, dialect ast.Dialect) bool {
	result, err := removeDeadCode(code, selection, dialect)
	return err == nil && result.HasCodeChanged
}

func removeDeadCode(code model.Code, selection model.Selection, dialect ast.Dialect) (ast.Transformed, error) {
	return ast.TransformDialect(code, dialect, ast.VisitorMap{
		ast.KindIfStatement: func(path *ast.NodePath) {
			if !addresses(selection, path.Node().Range) {
				return
			}

			simplifyIf(path)
		},
	})
}

// addresses reports whether the selection targets the node: either the
// selection falls within the node, or the node falls within a larger
// selection (the whole-buffer case).
func addresses(selection model.Selection, nodeRange model.Selection) bool {
	return selection.IsInside(nodeRange) || nodeRange.IsInside(selection)
}

// simplifyIf resolves one if statement. A statically decided test collapses
// the statement to the surviving branch and analysis stops below it. An
// undecidable test still tells us something inside the branches: code in
// the consequent runs only when the test holds, code in the alternate only
// when it does not, so nested ifs testing the same (or the opposite)
// condition have one unreachable branch.
func simplifyIf(path *ast.NodePath) {
	tree := path.Tree()
	node := path.Node()

	test := tree.Slot(node, ast.SlotTest)
	if test == nil {
		return
	}

	switch tree.TruthinessOf(test) {
	case ast.TruthinessFalsy:
		collapse(path, tree.Slot(node, ast.SlotAlternate))
	case ast.TruthinessTruthy:
		collapse(path, tree.Slot(node, ast.SlotConsequent))
	default:
		if consequent := path.Get(ast.SlotConsequent); consequent != nil {
			consequent.Traverse(ast.VisitorMap{
				ast.KindIfStatement: nestedSimplifier(test, true),
			})
		}

		if alternate := path.Get(ast.SlotAlternate); alternate != nil {
			alternate.Traverse(ast.VisitorMap{
				ast.KindIfStatement: nestedSimplifier(test, false),
			})
		}
	}
}

// nestedSimplifier resolves ifs nested under a governing condition known to
// hold (consequent side) or not to hold (alternate side).
func nestedSimplifier(governing *ast.Node, governingHolds bool) func(*ast.NodePath) {
	return func(path *ast.NodePath) {
		tree := path.Tree()
		node := path.Node()

		test := tree.Slot(node, ast.SlotTest)
		if test == nil {
			return
		}

		switch {
		case tree.AreEqual(test, governing):
			branchFor(path, governingHolds)
		case tree.AreOpposite(test, governing):
			branchFor(path, !governingHolds)
		}
	}
}

func branchFor(path *ast.NodePath, testHolds bool) {
	tree := path.Tree()
	node := path.Node()

	if testHolds {
		collapse(path, tree.Slot(node, ast.SlotConsequent))
		return
	}

	collapse(path, tree.Slot(node, ast.SlotAlternate))
}

// collapse replaces the whole if statement with the surviving branch's
// body, or deletes the statement when there is no surviving branch.
func collapse(path *ast.NodePath, branch *ast.Node) {
	if branch == nil {
		path.Remove()
		return
	}

	path.ReplaceWithBodyOf(branch)
}
