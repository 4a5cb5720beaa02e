package tree

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/

import (
	"errors"
)

// ErrInvalidFilter is returned if a walker step is called with a nil predicate
// or nil action.
var ErrInvalidFilter = errors.New("filter stage is invalid")

// ErrEmptyTree is returned if a Walker is called with an empty tree. Refer to
// the documentation of NewWalker() for details about this scenario.
var ErrEmptyTree = errors.New("cannot walk empty tree")

// Walker holds information for operating on trees: finding nodes and
// doing work on them. Clients usually create a Walker for a (sub-)tree
// to search for a selection of nodes matching certain criteria, and
// then perform some operation on this selection.
//
// A Walker will eventually return two client-level values:
// A slice of tree nodes and the first error occured.
//
// A typical usage of a Walker looks like this:
//
//    w := NewWalker(node)
//    nodes, err := w.DescendentsWith(isButton).Filter(isVisible).Nodes()
//
// Every step operates on the selection produced by the previous step.
// Selections are kept in document order (pre-order) and never contain
// duplicates. Walkers are synchronous; the trees we walk are small enough
// that deterministic ordering is worth more than parallelism.
type Walker[T comparable] struct {
	selection []*Node[T] // current selection of nodes
	err       error      // first error occured
}

// NewWalker creates a Walker for the initial node of a (sub-)tree.
// The first subsequent call to a node filter function will have this
// initial node as input.
//
// If initial is nil, NewWalker will return a nil-Walker, resulting
// in a NOP-pipeline of operations, resulting in an empty set of nodes
// and an error (ErrEmptyTree).
func NewWalker[T comparable](initial *Node[T]) *Walker[T] {
	if initial == nil {
		return nil
	}
	tracer().Debugf("new tree-walker, initial node = %v", initial)
	return &Walker[T]{selection: []*Node[T]{initial}}
}

// Nodes returns the current selection of nodes and the first error that occured
// during any of the walker steps.
func (w *Walker[T]) Nodes() ([]*Node[T], error) {
	if w == nil {
		return nil, ErrEmptyTree
	}
	return w.selection, w.err
}

// ----------------------------------------------------------------------

// Predicate is a function type to match against nodes of a tree.
// Is is used as an argument for various Walker functions to
// collect a selection of nodes.
// test is the node under test, node is the input node.
type Predicate[T comparable] func(test *Node[T], node *Node[T]) (match *Node[T], err error)

// Whatever is a predicate to match anything (see type Predicate).
// It is useful to match the first node in a given direction.
func Whatever[T comparable]() Predicate[T] {
	return func(test *Node[T], node *Node[T]) (*Node[T], error) {
		return test, nil
	}
}

// NodeIsLeaf is a predicate to match leafs of a tree.
func NodeIsLeaf[T comparable]() Predicate[T] {
	return func(test *Node[T], node *Node[T]) (match *Node[T], err error) {
		if test.ChildCount() == 0 {
			return test, nil
		}
		return nil, nil
	}
}

// Action is a function type to operate on tree nodes.
// Resulting nodes will be part of the next selection, if no error occured.
type Action[T comparable] func(n *Node[T], parent *Node[T], position int) (*Node[T], error)

// ----------------------------------------------------------------------

// Parent replaces every node of the selection by its parent.
// Root nodes do not produce a result.
//
// If w is nil, Parent will return nil.
func (w *Walker[T]) Parent() *Walker[T] {
	if w == nil {
		return nil
	}
	return w.step(func(node *Node[T], collect func(*Node[T])) error {
		if p := node.Parent(); p != nil {
			collect(p)
		}
		return nil
	})
}

// AncestorWith finds an ancestor matching the given predicate.
// The search does not include the start node.
//
// If w is nil, AncestorWith will return nil.
func (w *Walker[T]) AncestorWith(predicate Predicate[T]) *Walker[T] {
	if w == nil {
		return nil
	}
	if predicate == nil {
		return w.fail(ErrInvalidFilter)
	}
	return w.step(func(node *Node[T], collect func(*Node[T])) error {
		for anc := node.Parent(); anc != nil; anc = anc.Parent() {
			matchedNode, err := predicate(anc, node)
			if err != nil {
				return err
			}
			if matchedNode != nil {
				collect(matchedNode)
				return nil
			}
		}
		return nil // no matching ancestor found, not an error
	})
}

// DescendentsWith finds descendents matching a predicate.
// The search does not include the start node.
//
// If the predicate returns an error for a node, the branch below this node
// is not searched.
//
// If w is nil, DescendentsWith will return nil.
func (w *Walker[T]) DescendentsWith(predicate Predicate[T]) *Walker[T] {
	if w == nil {
		return nil
	}
	if predicate == nil {
		return w.fail(ErrInvalidFilter)
	}
	return w.step(func(node *Node[T], collect func(*Node[T])) error {
		var firstErr error
		var descend func(*Node[T])
		descend = func(n *Node[T]) {
			for _, ch := range n.children {
				matchedNode, err := predicate(ch, node)
				if err != nil {
					if firstErr == nil {
						firstErr = err
					}
					continue // do not descend further
				}
				if matchedNode != nil {
					collect(matchedNode)
				}
				descend(ch)
			}
		}
		descend(node)
		return firstErr
	})
}

// AllDescendents traverses all descendents.
// The traversal does not include the start node.
// This is just a wrapper around `w.DescendentsWith(Whatever)`.
//
// If w is nil, AllDescendents will return nil.
func (w *Walker[T]) AllDescendents() *Walker[T] {
	return w.DescendentsWith(Whatever[T]())
}

// Filter calls a client-provided function on each node of the selection.
// The user function should return the input node if it is accepted and
// nil otherwise.
//
// If w is nil, Filter will return nil.
func (w *Walker[T]) Filter(f Predicate[T]) *Walker[T] {
	if w == nil {
		return nil
	}
	if f == nil {
		return w.fail(ErrInvalidFilter)
	}
	return w.step(func(node *Node[T], collect func(*Node[T])) error {
		n, err := f(node, node)
		if err == nil && n != nil {
			collect(n)
		}
		return err
	})
}

// TopDown traverses a tree starting at (and including) the selected nodes.
// The traversal guarantees that parents are always processed before
// their children (pre-order, depth first).
//
// If the action function returns an error for a node,
// descending the branch below this node is aborted.
//
// If w is nil, TopDown will return nil.
func (w *Walker[T]) TopDown(action Action[T]) *Walker[T] {
	if w == nil {
		return nil
	}
	if action == nil {
		return w.fail(ErrInvalidFilter)
	}
	return w.step(func(node *Node[T], collect func(*Node[T])) error {
		var firstErr error
		var visit func(n, parent *Node[T], position int)
		visit = func(n, parent *Node[T], position int) {
			result, err := action(n, parent, position)
			if err != nil {
				if firstErr == nil {
					firstErr = err
				}
				return // do not descend further
			}
			if result != nil {
				collect(result)
			}
			for i, ch := range n.children {
				visit(ch, n, i)
			}
		}
		parent := node.Parent()
		position := 0
		if parent != nil {
			position = parent.IndexOfChild(node)
		}
		visit(node, parent, position)
		return firstErr
	})
}

// BottomUp traverses a tree starting at (and including) the selected nodes.
// The traversal guarantees that parents are not processed before
// all of their children (post-order).
//
// If the action function returns an error for a node,
// the parent is processed regardless.
//
// If w is nil, BottomUp will return nil.
func (w *Walker[T]) BottomUp(action Action[T]) *Walker[T] {
	if w == nil {
		return nil
	}
	if action == nil {
		return w.fail(ErrInvalidFilter)
	}
	return w.step(func(node *Node[T], collect func(*Node[T])) error {
		var firstErr error
		var visit func(n, parent *Node[T], position int)
		visit = func(n, parent *Node[T], position int) {
			for i, ch := range n.children {
				visit(ch, n, i)
			}
			result, err := action(n, parent, position)
			if err != nil {
				if firstErr == nil {
					firstErr = err
				}
				return
			}
			if result != nil {
				collect(result)
			}
		}
		parent := node.Parent()
		position := 0
		if parent != nil {
			position = parent.IndexOfChild(node)
		}
		visit(node, parent, position)
		return firstErr
	})
}

// CalcRank is an action for bottom-up processing. It Calculates the 'rank'-member
// for each node, meaning: the number of child-nodes + 1.
// The root node will hold the number of nodes in the entire tree.
// Leaf nodes will have a rank of 1.
func CalcRank[T comparable](n *Node[T], parent *Node[T], position int) (*Node[T], error) {
	r := uint32(1)
	for _, ch := range n.children {
		r += ch.Rank
	}
	n.Rank = r
	return n, nil
}

// --- Internals --------------------------------------------------------

// step maps every node of the current selection to zero or more result nodes
// and returns a walker holding the new selection. Duplicates are dropped,
// first occurence wins.
func (w *Walker[T]) step(task func(node *Node[T], collect func(*Node[T])) error) *Walker[T] {
	seen := make(map[*Node[T]]struct{})
	var selection []*Node[T]
	collect := func(n *Node[T]) {
		if _, dup := seen[n]; !dup {
			seen[n] = struct{}{}
			selection = append(selection, n)
		}
	}
	next := &Walker[T]{err: w.err}
	for _, node := range w.selection {
		if err := task(node, collect); err != nil {
			tracer().Errorf(err.Error())
			if next.err == nil {
				next.err = err
			}
		}
	}
	next.selection = selection
	return next
}

func (w *Walker[T]) fail(err error) *Walker[T] {
	next := &Walker[T]{selection: w.selection, err: w.err}
	if next.err == nil {
		next.err = err
	}
	return next
}
