package ast

import (
	"fmt"
	"path/filepath"
	"strings"

	sitter "github.com/tree-sitter/go-tree-sitter"
	typescript "github.com/tree-sitter/tree-sitter-typescript/bindings/go"

	"github.com/tjx666/abracadabra/internal/model"
)

// Dialect selects the grammar variant used to parse a buffer.
type Dialect int

// Supported dialects. The TypeScript grammar also parses plain JavaScript.
const (
	DialectTypeScript Dialect = iota
	DialectTSX
)

// DialectForPath picks the grammar for a file based on its extension.
func DialectForPath(path model.Path) Dialect {
	switch strings.ToLower(filepath.Ext(string(path))) {
	case ".tsx", ".jsx":
		return DialectTSX
	default:
		return DialectTypeScript
	}
}

func (d Dialect) language() *sitter.Language {
	if d == DialectTSX {
		return sitter.NewLanguage(typescript.LanguageTSX())
	}

	return sitter.NewLanguage(typescript.LanguageTypescript())
}

// Parse builds a tree for the given buffer using the TypeScript grammar.
// Syntax errors do not fail the parse: the grammar recovers and the tree
// covers whatever could be recognized, so "not applicable" stays the worst
// outcome of a refactoring on malformed input.
func Parse(code model.Code) (*Tree, error) {
	return ParseDialect(code, DialectTypeScript)
}

// ParseDialect builds a tree for the given buffer and grammar dialect.
func ParseDialect(code model.Code, dialect Dialect) (*Tree, error) {
	parser := sitter.NewParser()
	defer parser.Close()

	if err := parser.SetLanguage(dialect.language()); err != nil {
		return nil, fmt.Errorf("failed to load grammar: %w", err)
	}

	source := []byte(code)

	parsed := parser.Parse(source, nil)
	if parsed == nil {
		return nil, fmt.Errorf("failed to parse buffer")
	}
	defer parsed.Close()

	tree := &Tree{source: code}
	tree.root = newBuilder(tree, source).build(parsed.RootNode(), -1, -1)
	tree.resolved = make([]bool, len(tree.nodes))

	return tree, nil
}

// builder converts the parser's concrete tree into the engine's arena.
// Nodes are owned by the arena; the parser tree is released on return.
type builder struct {
	tree   *Tree
	source []byte
}

func newBuilder(tree *Tree, source []byte) *builder {
	return &builder{tree: tree, source: source}
}

// build converts one node and its relevant children. clauseStart extends a
// node's span to a leading keyword owned by its parent slot (the alternate
// of an if statement starts at its "else"); pass -1 to use the node's own
// start.
func (b *builder) build(n *sitter.Node, parent, clauseStart int) int {
	index := len(b.tree.nodes)
	start := int(n.StartByte())
	end := int(n.EndByte())

	if clauseStart < 0 {
		clauseStart = start
	}

	b.tree.nodes = append(b.tree.nodes, Node{
		Kind:        kindOf(n.Kind()),
		Range:       rangeOf(n),
		start:       start,
		end:         end,
		clauseStart: clauseStart,
		index:       index,
		parent:      parent,
		slots:       map[Slot]int{},
	})

	switch n.Kind() {
	case "binary_expression":
		b.buildBinary(n, index)
	case "unary_expression":
		b.setOperator(n, index)
		b.buildSlot(n, index, "argument", SlotArgument)
	case "parenthesized_expression":
		if inner := firstNamedChild(n); inner != nil {
			b.addSlot(index, SlotExpression, b.build(inner, index, -1))
		}
	case "if_statement":
		b.buildIf(n, index)
	case "member_expression":
		b.buildSlot(n, index, "object", SlotObject)
		b.buildSlot(n, index, "property", SlotProperty)
	case "call_expression":
		b.buildSlot(n, index, "function", SlotCallee)
		b.buildRemainingChildren(n, index)
	default:
		b.buildChildren(n, index)
	}

	return index
}

func (b *builder) buildBinary(n *sitter.Node, index int) {
	b.setOperator(n, index)

	if _, ok := OppositeLogicalOperator(b.tree.nodes[index].Operator); ok || b.tree.nodes[index].Operator == "??" {
		b.tree.nodes[index].Kind = KindLogicalExpression
	}

	b.buildSlot(n, index, "left", SlotLeft)
	b.buildSlot(n, index, "right", SlotRight)
}

func (b *builder) buildIf(n *sitter.Node, index int) {
	if condition := n.ChildByFieldName("condition"); condition != nil {
		// The test slot addresses the expression inside the
		// condition's parentheses.
		if inner := firstNamedChild(condition); inner != nil {
			b.addSlot(index, SlotTest, b.build(inner, index, -1))
		}
	}

	if consequence := n.ChildByFieldName("consequence"); consequence != nil {
		b.addSlot(index, SlotConsequent, b.build(consequence, index, -1))
	}

	// The alternative arrives wrapped in an else clause; the slot binds
	// the inner statement while its clause start keeps the "else" keyword
	// so removal takes the whole clause with it.
	if alternative := n.ChildByFieldName("alternative"); alternative != nil {
		if statement := firstNamedChild(alternative); statement != nil {
			b.addSlot(index, SlotAlternate, b.build(statement, index, int(alternative.StartByte())))
		}
	}
}

func (b *builder) buildSlot(n *sitter.Node, index int, field string, slot Slot) {
	if child := n.ChildByFieldName(field); child != nil {
		b.addSlot(index, slot, b.build(child, index, -1))
	}
}

// buildRemainingChildren converts named children not already bound to a slot.
func (b *builder) buildRemainingChildren(n *sitter.Node, index int) {
	converted := make(map[int]bool)
	for _, childIndex := range b.tree.nodes[index].children {
		converted[b.tree.nodes[childIndex].start] = true
	}

	for i := uint(0); i < n.NamedChildCount(); i++ {
		child := n.NamedChild(i)
		if child == nil || converted[int(child.StartByte())] {
			continue
		}

		childIndex := b.build(child, index, -1)
		b.tree.nodes[index].children = append(b.tree.nodes[index].children, childIndex)
	}
}

func (b *builder) buildChildren(n *sitter.Node, index int) {
	for i := uint(0); i < n.NamedChildCount(); i++ {
		child := n.NamedChild(i)
		if child == nil {
			continue
		}

		childIndex := b.build(child, index, -1)
		b.tree.nodes[index].children = append(b.tree.nodes[index].children, childIndex)
	}
}

func (b *builder) addSlot(parent int, slot Slot, child int) {
	b.tree.nodes[parent].slots[slot] = child
	b.tree.nodes[parent].children = append(b.tree.nodes[parent].children, child)
}

func (b *builder) setOperator(n *sitter.Node, index int) {
	if op := n.ChildByFieldName("operator"); op != nil {
		b.tree.nodes[index].Operator = string(b.source[op.StartByte():op.EndByte()])
	}
}

func firstNamedChild(n *sitter.Node) *sitter.Node {
	if n.NamedChildCount() == 0 {
		return nil
	}

	return n.NamedChild(0)
}

func rangeOf(n *sitter.Node) model.Selection {
	start := n.StartPosition()
	end := n.EndPosition()

	return model.Selection{
		Start: model.Position{Line: int(start.Row), Character: int(start.Column)},
		End:   model.Position{Line: int(end.Row), Character: int(end.Column)},
	}
}
