package est_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/zeek/zeekscript/est"
	"github.com/zeek/zeekscript/internal/ztszeek"
	"github.com/zeek/zeekscript/parsetree"
)

func mustBuild(t *testing.T, src string) *est.Node {
	t.Helper()
	tree, err := ztszeek.Parse([]byte(src))
	require.NoError(t, err)
	return est.Build(tree)
}

// fakeNode is a minimal parsetree.Node for exercising est.Build
// behavior ztszeek's own trees never produce, such as a block whose
// only children are CST comments (no AST content at all).
type fakeNode struct {
	typ      string
	isNamed  bool
	children []*fakeNode
}

func (n *fakeNode) Type() string              { return n.typ }
func (n *fakeNode) IsNamed() bool              { return n.isNamed }
func (n *fakeNode) IsMissing() bool            { return false }
func (n *fakeNode) HasError() bool             { return false }
func (n *fakeNode) StartByte() int             { return 0 }
func (n *fakeNode) EndByte() int               { return 0 }
func (n *fakeNode) StartPoint() parsetree.Point { return parsetree.Point{} }
func (n *fakeNode) EndPoint() parsetree.Point   { return parsetree.Point{} }
func (n *fakeNode) ChildCount() int            { return len(n.children) }
func (n *fakeNode) Child(i int) parsetree.Node { return n.children[i] }

type fakeTree struct{ root *fakeNode }

func (t *fakeTree) RootNode() parsetree.Node { return t.root }
func (t *fakeTree) Source() []byte           { return nil }

func TestBuildCleanTreeHasNoErrors(t *testing.T) {
	root := mustBuild(t, "global x: count = 0;\n")
	require.False(t, est.HasError(root))
}

func TestBuildNullNodeForCommentOnlyBlock(t *testing.T) {
	tree := &fakeTree{root: &fakeNode{
		typ:     "stmt_list",
		isNamed: true,
		children: []*fakeNode{
			{typ: "minor_comment", isNamed: true},
		},
	}}

	root := est.Build(tree)
	require.Len(t, root.Children, 1)
	require.Equal(t, est.NullNodeType, root.Children[0].Type)
}

func TestBuildAssignsParentAndSiblingLinks(t *testing.T) {
	root := mustBuild(t, "global x: count;\nglobal y: count;\n")
	require.Len(t, root.Children, 2)

	a, b := root.Children[0], root.Children[1]
	require.Same(t, root, a.Parent)
	require.Same(t, b, a.NextSibling)
	require.Same(t, a, b.PrevSibling)
}

func TestWalkVisitsEveryNode(t *testing.T) {
	root := mustBuild(t, "global x: count;\n")

	count := 0
	est.Walk(root, false, func(*est.Node, int) { count++ })
	require.Greater(t, count, 1)
}
