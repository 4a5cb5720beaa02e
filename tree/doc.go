/*
Package tree implements an all-purpose tree type.

There are many tree implementations around. This one supports trees
of a fairly simple structure: every node carries a payload and an ordered
list of children, and knows its parent. Styled element trees and the
trees used for debugging output are built on top of it.

Walkers

We support a set of search & filter functions on tree nodes. Clients will chain
these to perform tasks on nodes (see examples below).
You may think of the set of operations to form a small
Domain Specific Language (DSL). This is similar in concept to JQuery, but
of course with a much smaller set of functions.

Navigation functions:

   Parent()                     // find parent for all selected nodes
   AncestorWith(predicate)      // find ancestor with a given predicate
   DescendentsWith(predicate)   // find descendets with a given predicate
   TopDown(action)              // traverse all nodes top down (depth first)
   BottomUp(action)             // traverse all nodes bottom up (post-order)

Filter functions:

   Filter(userfunc)             // apply a user-provided filter function

Results are collected with

   nodes, err := walker.Nodes()

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package tree

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'layoutcompare.tree'.
func tracer() tracing.Trace {
	return tracing.Select("layoutcompare.tree")
}
