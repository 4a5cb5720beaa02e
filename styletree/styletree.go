package styletree

import (
	"fmt"
	"io"

	"github.com/npillmayer/layoutcompare/dom"
	"github.com/npillmayer/layoutcompare/dom/snapshot"
	"github.com/npillmayer/layoutcompare/dom/styledtree"
)

// StyleTree wraps the snapshot of a single root element.
type StyleTree struct {
	root *styledtree.StyNode
}

// New creates a style tree for a snapshot root element.
func New(root *snapshot.Element) (*StyleTree, error) {
	if root == nil {
		return nil, snapshot.ErrEmptySnapshot
	}
	return &StyleTree{root: styledtree.FromSnapshot(root)}, nil
}

// Load reads a snapshot and creates a style tree for it.
func Load(r io.Reader) (*StyleTree, error) {
	root, err := snapshot.Decode(r)
	if err != nil {
		return nil, err
	}
	return New(root)
}

// LoadFile reads a snapshot file and creates a style tree for it.
func LoadFile(filename string) (*StyleTree, error) {
	root, err := snapshot.Load(filename)
	if err != nil {
		return nil, err
	}
	return New(root)
}

// Root returns the root element of the snapshot.
func (st *StyleTree) Root() *snapshot.Element {
	return st.root.Element()
}

// StyledRoot returns the root of the styled tree.
func (st *StyleTree) StyledRoot() *styledtree.StyNode {
	return st.root
}

// Size returns the number of elements in the tree.
func (st *StyleTree) Size() int {
	return int(st.root.Rank)
}

// Search finds an element matching criteria. Of several matching elements,
// the one closest to the root is returned: children are searched first,
// in order, with later matches replacing earlier ones, and a matching node
// itself always replaces any match from its subtree. Among matching
// siblings the last one wins.
//
// Empty criteria match the root. Search returns nil if no element matches.
func (st *StyleTree) Search(c snapshot.Criteria) *styledtree.StyNode {
	return search(st.root, c)
}

func search(sn *styledtree.StyNode, c snapshot.Criteria) *styledtree.StyNode {
	var found *styledtree.StyNode
	for _, ch := range sn.ChildNodes() {
		if r := search(ch, c); r != nil {
			found = r
		}
	}
	if c.Matches(sn.Element()) {
		found = sn
	}
	return found
}

// Matches returns every element matching criteria, in document order.
func (st *StyleTree) Matches(c snapshot.Criteria) ([]*styledtree.StyNode, error) {
	nodes, err := dom.Select(st.root, dom.NodeMatches(c))
	if err != nil {
		return nil, fmt.Errorf("searching for %s: %w", c, err)
	}
	return nodes, nil
}
