package est

// Visitor is called once per visited node with its nesting depth (the
// root is depth 0).
type Visitor func(n *Node, depth int)

// Walk performs a depth-first, pre-order traversal of the tree rooted
// at node. When includeCST is true, each AST node's grouped CST
// fragments (PrevCSTSiblings/NextCSTSiblings) are visited immediately
// before/after it, at the same depth (spec.md §6 "write_tree").
func Walk(node *Node, includeCST bool, visit Visitor) {
	walk(node, 0, includeCST, visit)
}

func walk(node *Node, depth int, includeCST bool, visit Visitor) {
	if includeCST {
		for _, c := range node.PrevCSTSiblings {
			visit(c, depth)
		}
	}

	visit(node, depth)

	if includeCST {
		for _, c := range node.NextCSTSiblings {
			visit(c, depth)
		}
	}

	for _, child := range node.Children {
		walk(child, depth+1, includeCST, visit)
	}
}

// HasError reports whether any node in the tree rooted at node is an
// ERROR node, is missing, or has its has_error bit set.
func HasError(root *Node) bool {
	found := false
	Walk(root, false, func(n *Node, _ int) {
		if found {
			return
		}
		if n.IsError() || n.IsMissing || n.HasError {
			found = true
		}
	})
	return found
}
