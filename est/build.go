package est

import "github.com/zeek/zeekscript/parsetree"

// Build clones a parsetree.Tree into a Node tree, classifying AST vs
// CST nodes, grouping comments/newlines with their anchoring AST
// node, isolating ERROR nodes, and running the patch pass that
// re-anchors trailing CST fragments onto the most specific node they
// document (spec.md §4.2).
func Build(tree parsetree.Tree) *Node {
	root := cloneNode(tree.RootNode())
	patchTree(root)
	return root
}

func cloneNode(n parsetree.Node) *Node {
	newNode := &Node{
		Type:       n.Type(),
		IsNamed:    n.IsNamed(),
		IsMissing:  n.IsMissing(),
		HasError:   n.HasError(),
		StartByte:  n.StartByte(),
		EndByte:    n.EndByte(),
		StartPoint: n.StartPoint(),
		EndPoint:   n.EndPoint(),
	}
	newNode.IsAST = newNode.Type != "nl" && !isCommentType(newNode.Type)

	var cstChildren []*Node
	for i := 0; i < n.ChildCount(); i++ {
		child := cloneNode(n.Child(i))
		child.Parent = newNode

		if len(cstChildren) > 0 {
			cstChildren[len(cstChildren)-1].NextCSTSibling = child
			child.PrevCSTSibling = cstChildren[len(cstChildren)-1]
		}
		cstChildren = append(cstChildren, child)

		if child.IsAST {
			newNode.Children = append(newNode.Children, child)
			if len(newNode.Children) > 1 {
				prev := newNode.Children[len(newNode.Children)-2]
				prev.NextSibling = child
				child.PrevSibling = prev
			}
		}
	}

	// A block with only comments/newlines still needs an AST
	// backbone so formatters always have something to iterate.
	if len(cstChildren) > 0 && len(newNode.Children) == 0 {
		null := &Node{Type: NullNodeType, IsNamed: true, IsAST: true}
		newNode.Children = append(newNode.Children, null)
	}

	anchorCST(newNode, cstChildren)
	isolateErrors(newNode)

	return newNode
}

func isCommentType(t string) bool {
	switch t {
	case "minor_comment", "zeekygen_head_comment", "zeekygen_next_comment", "zeekygen_prev_comment":
		return true
	}
	return false
}

// anchorCST classifies each CST child of node as belonging to the
// "before" or "after" side of the nearest AST child, per the trailing
// rule in spec.md §4.2.
func anchorCST(node *Node, cstChildren []*Node) {
	var astNode *Node
	astRemaining := len(node.Children)
	var pending []*Node
	var lastChild *Node

	for _, child := range cstChildren {
		switch {
		case astRemaining == 0:
			// Past the last AST child: everything trails it.
			astNode.NextCSTSiblings = append(astNode.NextCSTSiblings, child)
			child.ASTParent = astNode
			child.IsCSTNextNode = true

		case child.IsAST:
			astRemaining--
			child.PrevCSTSiblings = pending
			for _, p := range pending {
				p.ASTParent = child
			}
			pending = nil
			astNode = child

		case astNode == nil:
			// Before the first AST child.
			pending = append(pending, child)
			child.IsCSTPrevNode = true

		case trailsPreviousAST(child, lastChild):
			astNode.NextCSTSiblings = append(astNode.NextCSTSiblings, child)
			child.IsCSTNextNode = true
			child.ASTParent = astNode

		default:
			// Break the chain: this child starts the "before" run for
			// the next AST child.
			astNode = nil
			pending = []*Node{child}
			child.IsCSTPrevNode = true
		}

		lastChild = child
	}

	// A block holding only comments/newlines: the synthetic null child
	// is not among cstChildren, so it hosts them here.
	if len(pending) > 0 && len(node.Children) > 0 {
		host := node.Children[len(node.Children)-1]
		host.PrevCSTSiblings = append(host.PrevCSTSiblings, pending...)
		for _, p := range pending {
			p.ASTParent = host
		}
	}
}

// trailsPreviousAST implements the "trailing" rule of spec.md §4.2:
// a CST child trails the preceding AST node when it is a `##<`
// comment, a directly-adjacent minor comment, or a newline following
// a comment/ERROR.
func trailsPreviousAST(child, last *Node) bool {
	if child.IsZeekygenPrevComment() {
		return true
	}
	if child.IsMinorComment() && last != nil && last.IsAST {
		return true
	}
	if child.IsNewline() && last != nil && (last.IsComment() || last.IsError()) {
		return true
	}
	return false
}

// isolateErrors walks node.Children in order, pulling ERROR nodes out
// of the AST backbone and anchoring them onto the nearest non-ERROR
// neighbor (spec.md §4.2 "ERROR isolation pass").
func isolateErrors(node *Node) {
	var pending []*Node
	var nonErr []*Node

	for _, child := range node.Children {
		if child.IsError() {
			pending = append(pending, child)
			continue
		}
		child.PrevErrorSiblings = pending
		pending = nil
		nonErr = append(nonErr, child)
	}

	if len(nonErr) == 0 {
		if len(pending) > 0 {
			// Every child was ERROR: host them on a synthetic node.
			null := &Node{Type: NullNodeType, IsNamed: true, IsAST: true, PrevErrorSiblings: pending}
			nonErr = append(nonErr, null)
		}
	} else if len(pending) > 0 {
		nonErr[len(nonErr)-1].NextErrorSiblings = pending
	}

	node.NonErrChildren = nonErr
}

// patchTree migrates CST nodes attached to a parent's "after"
// position onto the parent's last child, so trailing `##<` comments
// anchor to the specific token they document rather than a composite
// parent (spec.md §4.2 "Patch pass").
func patchTree(node *Node) {
	if len(node.NextCSTSiblings) > 0 && len(node.Children) > 0 {
		last := node.Children[len(node.Children)-1]

		if len(last.NextCSTSiblings) > 0 {
			lastOfLast := last.NextCSTSiblings[len(last.NextCSTSiblings)-1]
			first := node.NextCSTSiblings[0]
			lastOfLast.NextCSTSibling = first
			first.PrevCSTSibling = lastOfLast
		}

		for _, c := range node.NextCSTSiblings {
			c.ASTParent = last
		}
		last.NextCSTSiblings = append(last.NextCSTSiblings, node.NextCSTSiblings...)
		node.NextCSTSibling = nil
		node.NextCSTSiblings = nil
	}

	for _, child := range node.Children {
		patchTree(child)
	}
}
