// Package parsetree defines the contract THE CORE expects from an
// external, tree-sitter-compatible Zeek grammar parser. The parser
// itself is out of scope for this module (see spec.md §1); anything
// that satisfies Tree/Node can be handed to script.New.
package parsetree

// Point is a zero-based (row, column) source position.
type Point struct {
	Row int
	Col int
}

// Node is a single node of a concrete parse tree as produced by a
// tree-sitter-compatible grammar parser.
type Node interface {
	// Type is the grammar symbol name for a named rule production, or
	// the literal token text for an unnamed/terminal node.
	Type() string

	// IsNamed reports whether this node is a rule production rather
	// than a bare token.
	IsNamed() bool

	// IsMissing reports whether the parser inferred this node's
	// presence without consuming source bytes.
	IsMissing() bool

	// HasError reports whether this node's subtree contains a parse
	// error.
	HasError() bool

	StartByte() int
	EndByte() int
	StartPoint() Point
	EndPoint() Point

	// ChildCount and Child give ordered access to every child,
	// including anonymous/unnamed ones; the tree builder (est) is
	// responsible for separating AST from CST children.
	ChildCount() int
	Child(i int) Node
}

// Tree is a parsed source file: a root Node plus the source bytes it
// was parsed from.
type Tree interface {
	RootNode() Node
	Source() []byte
}

// Parser parses a byte buffer into a Tree. Parsing never returns a
// partial tree silently: either a Tree comes back (possibly containing
// ERROR/is_missing/has_error nodes, which the core tolerates) or an
// error does, meaning no usable tree could be produced at all.
type Parser interface {
	Parse(src []byte) (Tree, error)
}
