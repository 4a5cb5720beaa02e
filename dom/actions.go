package dom

import (
	"github.com/npillmayer/layoutcompare/dom/snapshot"
	"github.com/npillmayer/layoutcompare/dom/styledtree"
	"github.com/npillmayer/layoutcompare/tree"
)

// TreeNode is the type of tree nodes of a styled tree.
type TreeNode = tree.Node[*styledtree.StyNode]

// NodeMatches is a predicate to match styled nodes satisfying criteria.
// It is intended to be used in a tree.Walker.
func NodeMatches(c snapshot.Criteria) tree.Predicate[*styledtree.StyNode] {
	return func(n *TreeNode, unused *TreeNode) (match *TreeNode, err error) {
		if c.Matches(styledtree.Node(n).Element()) {
			tracer().Debugf("node %v matches %s", n.Payload, c)
			return n, nil
		}
		return nil, nil
	}
}

// NodeHasStyle is a predicate to match styled nodes which carry a style
// property for key.
func NodeHasStyle(key string) tree.Predicate[*styledtree.StyNode] {
	return func(n *TreeNode, unused *TreeNode) (match *TreeNode, err error) {
		if _, ok := styledtree.Node(n).Styles().Property(key); ok {
			return n, nil
		}
		return nil, nil
	}
}

// Collect is an action for tree walkers which selects every node visited.
func Collect(n *TreeNode, parent *TreeNode, position int) (*TreeNode, error) {
	return n, nil
}

// Select returns the nodes of the tree rooted at root (including root),
// in document order, which satisfy every predicate given.
func Select(root *styledtree.StyNode, predicates ...tree.Predicate[*styledtree.StyNode]) (
	[]*styledtree.StyNode, error) {
	//
	if root == nil {
		return nil, nil
	}
	w := tree.NewWalker(&root.Node).TopDown(Collect)
	for _, p := range predicates {
		w = w.Filter(p)
	}
	nodes, err := w.Nodes()
	if err != nil {
		return nil, err
	}
	r := make([]*styledtree.StyNode, len(nodes))
	for i, n := range nodes {
		r[i] = styledtree.Node(n)
	}
	return r, nil
}
