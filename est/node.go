// Package est implements the Enriched Syntax Tree: a mutable clone of
// a tree-sitter-compatible concrete parse tree, augmented with
// AST/CST classification, dual sibling linkage, comment re-anchoring,
// and ERROR-node isolation (spec.md §3, §4.1, §4.2).
package est

import "github.com/zeek/zeekscript/parsetree"

// NullNodeType is the synthetic AST node type inserted when a block
// would otherwise have no AST children of its own (spec.md §3, "a
// null AST stand-in is inserted").
const NullNodeType = "nullnode"

// Node is a single node of the Enriched Syntax Tree. Trees are built
// once by Build, mutated once more by the patch pass, and are
// read-only for the rest of their lifetime (spec.md §3 "Lifecycle").
type Node struct {
	Type      string
	IsNamed   bool
	IsMissing bool
	HasError  bool

	StartByte, EndByte   int
	StartPoint, EndPoint parsetree.Point

	// IsAST is false for "nl" and "*_comment" node types; those only
	// ever appear in the CST view.
	IsAST bool

	// Children holds AST children in source order, including ERROR
	// nodes as they were originally encountered. NonErrChildren is
	// the subsequence with ERROR nodes removed; layout rules index
	// into NonErrChildren, never Children.
	Children       []*Node
	NonErrChildren []*Node

	Parent, PrevSibling, NextSibling *Node

	PrevCSTSibling, NextCSTSibling *Node

	// PrevCSTSiblings/NextCSTSiblings hold the CST fragments (comments,
	// newlines) anchored to this AST node by the CST-anchoring pass.
	PrevCSTSiblings, NextCSTSiblings []*Node

	// PrevErrorSiblings/NextErrorSiblings hold ERROR nodes isolated
	// from the AST child sequence and anchored to their neighbor.
	PrevErrorSiblings, NextErrorSiblings []*Node

	// ASTParent, IsCSTPrevNode, IsCSTNextNode are only meaningful on
	// CST (non-AST) nodes: the AST node they are grouped with, and
	// which side of it they're grouped on.
	ASTParent               *Node
	IsCSTPrevNode           bool
	IsCSTNextNode           bool

	// Formatter is a transient back-pointer set when a formatter is
	// instantiated for this node, so ancestor formatters can consult
	// a descendant's layout state (e.g. an alignment column). It is
	// typed as `any` to avoid an import cycle with package format.
	Formatter any
}

// IsComment reports whether this node is any of the four Zeekygen/
// minor comment kinds (spec.md §4.1).
func (n *Node) IsComment() bool {
	return n.Type == "minor_comment" ||
		n.Type == "zeekygen_head_comment" ||
		n.Type == "zeekygen_next_comment" ||
		n.Type == "zeekygen_prev_comment"
}

// IsZeekygenPrevComment reports whether this node is a `##<` comment,
// which documents the preceding item.
func (n *Node) IsZeekygenPrevComment() bool {
	return n.Type == "zeekygen_prev_comment"
}

// IsMinorComment reports whether this node is a plain `#` comment.
func (n *Node) IsMinorComment() bool {
	return n.Type == "minor_comment"
}

// IsNewline reports whether this node is a bare CST newline token.
func (n *Node) IsNewline() bool {
	return n.Type == "nl"
}

// IsError reports whether this node is an unparsable ERROR node.
func (n *Node) IsError() bool {
	return n.Type == "ERROR"
}

// Text returns the node's raw source bytes.
func (n *Node) Text(source []byte) []byte {
	return source[n.StartByte:n.EndByte]
}
