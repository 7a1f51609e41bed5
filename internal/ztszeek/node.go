// Package ztszeek is a small, hand-written recursive-descent parser
// for a pragmatic subset of Zeek script syntax. It exists so the CLI
// and the golden tests have a runnable parsetree.Parser to drive
// without depending on a real tree-sitter grammar at build time; it
// sits outside THE CORE (spec.md §1 places the grammar parser out of
// scope) and implements only parsetree.Tree/parsetree.Node.
package ztszeek

import "github.com/zeek/zeekscript/parsetree"

// node is the concrete parsetree.Node this package builds.
type node struct {
	typ       string
	isNamed   bool
	isMissing bool
	hasError  bool

	startByte, endByte   int
	startPoint, endPoint parsetree.Point

	children []*node
}

func (n *node) Type() string             { return n.typ }
func (n *node) IsNamed() bool            { return n.isNamed }
func (n *node) IsMissing() bool          { return n.isMissing }
func (n *node) HasError() bool           { return n.hasError }
func (n *node) StartByte() int           { return n.startByte }
func (n *node) EndByte() int             { return n.endByte }
func (n *node) StartPoint() parsetree.Point { return n.startPoint }
func (n *node) EndPoint() parsetree.Point   { return n.endPoint }
func (n *node) ChildCount() int          { return len(n.children) }
func (n *node) Child(i int) parsetree.Node { return n.children[i] }

func (n *node) add(c *node) *node {
	if c == nil {
		return n
	}
	n.children = append(n.children, c)
	if c.hasError {
		n.hasError = true
	}
	return n
}

// tree is the concrete parsetree.Tree this package builds.
type tree struct {
	root   *node
	source []byte
}

func (t *tree) RootNode() parsetree.Node { return t.root }
func (t *tree) Source() []byte           { return t.source }
