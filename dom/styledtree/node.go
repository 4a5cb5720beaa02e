package styledtree

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/

import (
	"fmt"
	"strings"

	"github.com/npillmayer/layoutcompare/dom/snapshot"
	"github.com/npillmayer/layoutcompare/dom/style"
	"github.com/npillmayer/layoutcompare/tree"
)

// StyNode is a style node, the building block of the styled tree.
type StyNode struct {
	tree.Node[*StyNode] // we build on top of general purpose tree
	element             *snapshot.Element
}

// NewNodeForElement creates a new styled node linked to a snapshot element.
func NewNodeForElement(e *snapshot.Element) *tree.Node[*StyNode] {
	sn := &StyNode{}
	sn.Payload = sn // Payload will always reference the node itself
	sn.element = e
	return &sn.Node
}

// Node gets the styled node from a generic tree node.
func Node(n *tree.Node[*StyNode]) *StyNode {
	if n == nil {
		return nil
	}
	return n.Payload
}

// FromSnapshot creates a styled tree for a snapshot, returning the root node.
// Ranks of all nodes are calculated, i.e. the root node's rank is the number
// of elements in the snapshot.
func FromSnapshot(root *snapshot.Element) *StyNode {
	if root == nil {
		return nil
	}
	var build func(e *snapshot.Element) *tree.Node[*StyNode]
	build = func(e *snapshot.Element) *tree.Node[*StyNode] {
		n := NewNodeForElement(e)
		for _, ch := range e.Children {
			n.AddChild(build(ch))
		}
		return n
	}
	rootnode := build(root)
	if _, err := tree.NewWalker(rootnode).BottomUp(tree.CalcRank[*StyNode]).Nodes(); err != nil {
		tracer().Errorf("calculating ranks of styled tree: %v", err)
	}
	tracer().Debugf("styled tree with %d nodes created", rootnode.Rank)
	return Node(rootnode)
}

// Element gets the snapshot element corresponding to this styled node.
func (sn *StyNode) Element() *snapshot.Element {
	if sn == nil {
		return nil
	}
	return sn.element
}

// Styles returns the computed styles of a styled node.
func (sn *StyNode) Styles() *style.PropertyMap {
	if sn == nil || sn.element == nil {
		return nil
	}
	return sn.element.Style
}

// ParentNode returns the styled parent node, or nil for the root.
func (sn *StyNode) ParentNode() *StyNode {
	return Node(sn.Parent())
}

// ChildNodes returns the styled children of a node, in document order.
func (sn *StyNode) ChildNodes() []*StyNode {
	children := sn.Children()
	r := make([]*StyNode, len(children))
	for i, ch := range children {
		r[i] = Node(ch)
	}
	return r
}

// GetPropertyValue returns the property value for a given key.
// Values of "inherit" cascade to the nearest ancestor with a value for key.
// Other properties do not cascade; snapshots carry computed styles.
func (sn *StyNode) GetPropertyValue(key string) style.Property {
	for sn != nil {
		p, ok := sn.Styles().Property(key)
		if !ok {
			return style.NullStyle
		}
		if !p.IsInherit() {
			return p
		}
		tracer().P("key", key).Debugf("styling: cascading for key %s", key)
		sn = sn.ParentNode()
	}
	return style.NullStyle
}

// Path returns a path from the root to this node, made of tag names and
// child positions, e.g.
//
//    BODY/DIV[1]/P[0]
//
func (sn *StyNode) Path() string {
	if sn == nil {
		return ""
	}
	var steps []string
	for n := sn; n != nil; n = n.ParentNode() {
		step := n.element.TagName.Text()
		if p := n.ParentNode(); p != nil {
			step = fmt.Sprintf("%s[%d]", step, p.IndexOfChild(&n.Node))
		}
		steps = append(steps, step)
	}
	for i, j := 0, len(steps)-1; i < j; i, j = i+1, j-1 {
		steps[i], steps[j] = steps[j], steps[i]
	}
	return strings.Join(steps, "/")
}

func (sn *StyNode) String() string {
	if sn == nil {
		return "<nil>"
	}
	return fmt.Sprintf("(StyNode %s #ch=%d)", sn.element, sn.ChildCount())
}
