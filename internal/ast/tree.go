package ast

import (
	"sort"
	"strings"

	"github.com/tjx666/abracadabra/internal/model"
)

// Node is one syntax-tree node stored in the tree's arena. Nodes are owned
// by the tree that parsed them and never outlive one transform call.
type Node struct {
	Kind     Kind
	Operator string
	Range    model.Selection

	start       int
	end         int
	clauseStart int
	index       int
	parent      int
	slots       map[Slot]int
	children    []int
}

// Tree is an arena-backed mutable syntax tree. Structural mutations record
// byte-range splices against the original buffer; serialization re-prints
// only the changed ranges.
type Tree struct {
	source   model.Code
	nodes    []Node
	root     int
	resolved []bool
	edits    []edit
}

type edit struct {
	start int
	end   int
	text  string
}

// Transformed is the outcome of applying a transform: the (possibly
// rewritten) buffer plus the sole signal distinguishing no-op from applied.
type Transformed struct {
	Code           model.Code
	HasCodeChanged bool
}

// VisitorMap maps node kinds to callbacks invoked during traversal.
type VisitorMap map[Kind]func(*NodePath)

// Transform parses the buffer, runs one traversal pass with the given
// visitors and serializes the result.
func Transform(code model.Code, visitors VisitorMap) (Transformed, error) {
	return TransformDialect(code, DialectTypeScript, visitors)
}

// TransformDialect is Transform with an explicit grammar dialect.
func TransformDialect(code model.Code, dialect Dialect, visitors VisitorMap) (Transformed, error) {
	tree, err := ParseDialect(code, dialect)
	if err != nil {
		return Transformed{Code: code}, err
	}

	tree.Traverse(visitors)

	return tree.Finish(), nil
}

// Root returns the program node.
func (t *Tree) Root() *Node {
	return &t.nodes[t.root]
}

// Source returns the buffer the tree was parsed from.
func (t *Tree) Source() model.Code {
	return t.source
}

// Text returns the source text covered by a node.
func (t *Tree) Text(n *Node) string {
	return string(t.source[n.start:n.end])
}

// Parent returns the parent node, or nil at the root.
func (t *Tree) Parent(n *Node) *Node {
	if n.parent < 0 {
		return nil
	}

	return &t.nodes[n.parent]
}

// Slot returns the named child of a node, or nil when the slot is empty.
func (t *Tree) Slot(n *Node, slot Slot) *Node {
	index, ok := n.slots[slot]
	if !ok {
		return nil
	}

	return &t.nodes[index]
}

// Visit walks the tree depth-first, pre-order. Returning false from the
// callback prunes the node's subtree.
func (t *Tree) Visit(fn func(n *Node) bool) {
	t.visit(t.root, fn)
}

func (t *Tree) visit(index int, fn func(n *Node) bool) {
	if !fn(&t.nodes[index]) {
		return
	}

	for _, child := range t.nodes[index].children {
		t.visit(child, fn)
	}
}

// Traverse runs one visitor pass over the whole tree.
func (t *Tree) Traverse(visitors VisitorMap) {
	d := &driver{tree: t, visitors: visitors}
	d.walk(t.root)
}

// Finish serializes the tree back to code.
func (t *Tree) Finish() Transformed {
	return Transformed{
		Code:           t.applyEdits(),
		HasCodeChanged: len(t.edits) > 0,
	}
}

func (t *Tree) applyEdits() model.Code {
	if len(t.edits) == 0 {
		return t.source
	}

	sorted := make([]edit, len(t.edits))
	copy(sorted, t.edits)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].start > sorted[j].start
	})

	out := string(t.source)
	for _, e := range sorted {
		out = out[:e.start] + e.text + out[e.end:]
	}

	return model.Code(out)
}

func (t *Tree) markResolved(index int) {
	t.resolved[index] = true
}

// driver runs one traversal pass. Its stop flag is local to the pass, so a
// nested traversal started from within a callback cannot observe an outer
// stop and vice versa.
type driver struct {
	tree     *Tree
	visitors VisitorMap
	stopped  bool
}

func (d *driver) walk(index int) {
	if d.stopped || d.tree.resolved[index] {
		return
	}

	if handler, ok := d.visitors[d.tree.nodes[index].Kind]; ok {
		handler(&NodePath{tree: d.tree, index: index, driver: d})

		// A mutation resolves the node: nothing below it is visited.
		if d.stopped || d.tree.resolved[index] {
			return
		}
	}

	for _, child := range d.tree.nodes[index].children {
		d.walk(child)

		if d.stopped {
			return
		}
	}
}

// NodePath is a transient traversal handle over one node, carrying enough
// context to mutate the tree at that point. Paths are only valid for the
// duration of the transform call that produced them.
type NodePath struct {
	tree   *Tree
	index  int
	driver *driver
}

// Node returns the node the path is bound to.
func (p *NodePath) Node() *Node {
	return &p.tree.nodes[p.index]
}

// Tree returns the owning tree.
func (p *NodePath) Tree() *Tree {
	return p.tree
}

// Parent returns a path to the parent node, or nil at the root.
func (p *NodePath) Parent() *NodePath {
	parent := p.Node().parent
	if parent < 0 {
		return nil
	}

	return &NodePath{tree: p.tree, index: parent, driver: p.driver}
}

// Get returns a path to a named child slot, or nil when the slot is empty.
func (p *NodePath) Get(slot Slot) *NodePath {
	index, ok := p.Node().slots[slot]
	if !ok {
		return nil
	}

	return &NodePath{tree: p.tree, index: index, driver: p.driver}
}

// Stop prunes the remainder of the current traversal pass. Nested
// traversals started with Traverse keep their own stop flag.
func (p *NodePath) Stop() {
	if p.driver != nil {
		p.driver.stopped = true
	}
}

// Traverse runs a fresh, independent traversal over the subtree rooted at
// this path with a different visitor map.
func (p *NodePath) Traverse(visitors VisitorMap) {
	d := &driver{tree: p.tree, visitors: visitors}
	d.walk(p.index)
}

// ReplaceWithText swaps the node's source range for the given text and
// resolves the subtree: no further visitors fire below this node.
func (p *NodePath) ReplaceWithText(text string) {
	n := p.Node()
	p.tree.edits = append(p.tree.edits, edit{start: n.start, end: n.end, text: text})
	p.tree.markResolved(p.index)
}

// ReplaceWithBodyOf collapses the node into the body of the given block,
// re-indented to the node's own position. A non-block node replaces the
// whole range with its own text.
func (p *NodePath) ReplaceWithBodyOf(other *Node) {
	body := p.tree.bodyText(other, p.indentation())
	if body == "" {
		p.Remove()
		return
	}

	p.ReplaceWithText(body)
}

// Remove deletes the node. When the node sits alone on its line(s) the
// whole lines go with it, and an alternate slot takes its "else" keyword.
func (p *NodePath) Remove() {
	n := p.Node()
	start, end := p.tree.statementSpan(n)
	p.tree.edits = append(p.tree.edits, edit{start: start, end: end, text: ""})
	p.tree.markResolved(p.index)
}

// indentation returns the whitespace prefix of the node's first line when
// the node starts the line, empty otherwise.
func (p *NodePath) indentation() string {
	src := string(p.tree.source)
	start := p.Node().start

	lineStart := start
	for lineStart > 0 && src[lineStart-1] != '\n' {
		lineStart--
	}

	prefix := src[lineStart:start]
	if strings.TrimSpace(prefix) != "" {
		return ""
	}

	return prefix
}

// bodyText extracts the interior of a block statement, dedented to the
// block's own level and re-indented to the given prefix.
func (t *Tree) bodyText(n *Node, indent string) string {
	var interior string
	if n.Kind == KindBlockStatement {
		interior = string(t.source[n.start+1 : n.end-1])
	} else {
		interior = t.Text(n)
	}

	lines := strings.Split(interior, "\n")

	for len(lines) > 0 && strings.TrimSpace(lines[0]) == "" {
		lines = lines[1:]
	}

	for len(lines) > 0 && strings.TrimSpace(lines[len(lines)-1]) == "" {
		lines = lines[:len(lines)-1]
	}

	if len(lines) == 0 {
		return ""
	}

	common := commonIndent(lines)
	for i, line := range lines {
		lines[i] = strings.TrimPrefix(line, common)
	}

	result := lines[0]
	for _, line := range lines[1:] {
		if strings.TrimSpace(line) == "" {
			result += "\n"
			continue
		}

		result += "\n" + indent + line
	}

	return result
}

func commonIndent(lines []string) string {
	common := ""
	first := true

	for _, line := range lines {
		if strings.TrimSpace(line) == "" {
			continue
		}

		indent := line[:len(line)-len(strings.TrimLeft(line, " \t"))]
		if first {
			common = indent
			first = false
			continue
		}

		limit := len(common)
		if len(indent) < limit {
			limit = len(indent)
		}

		i := 0
		for i < limit && common[i] == indent[i] {
			i++
		}

		common = common[:i]
	}

	return common
}

// statementSpan widens a node's byte range to swallow surrounding
// whitespace when the node occupies its lines alone.
func (t *Tree) statementSpan(n *Node) (int, int) {
	src := string(t.source)
	start := n.clauseStart
	end := n.end

	lineStart := start
	for lineStart > 0 && (src[lineStart-1] == ' ' || src[lineStart-1] == '\t') {
		lineStart--
	}

	atLineStart := lineStart == 0 || src[lineStart-1] == '\n'
	if !atLineStart {
		return start, end
	}

	if end < len(src) && src[end] == '\n' {
		return lineStart, end + 1
	}

	if end == len(src) {
		return lineStart, end
	}

	return start, end
}
