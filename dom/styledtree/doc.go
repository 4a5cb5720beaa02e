/*
Package styledtree builds a styled element tree from a snapshot.

Overview

Every element of a snapshot is wrapped into a styled node. Styled nodes
are built on top of the general purpose tree type (package tree), which
gives clients walkers for searching and traversing a styled tree.
The computed style of every node is available as a property map.

Styled trees are built once and are read-only thereafter; they may be
shared between goroutines.

___________________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package styledtree

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'layoutcompare.dom'.
func tracer() tracing.Trace {
	return tracing.Select("layoutcompare.dom")
}
