/*
Package dom provides utilities for walking styled element trees.

Overview

Styled trees are made of styled nodes (package styledtree), which in turn
are built on top of a general purpose tree type (package tree). Package tree
offers walkers to navigate and filter trees, driven by predicates and actions.
This package contributes predicates which know about snapshot elements,
for example to select every node matching a set of identity criteria:

    nodes, err := tree.NewWalker(&root.Node).
        DescendentsWith(dom.NodeMatches(criteria)).
        Nodes()

___________________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package dom

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer will return a tracer. We are tracing to 'layoutcompare.dom'
func tracer() tracing.Trace {
	return tracing.Select("layoutcompare.dom")
}
