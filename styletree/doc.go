/*
Package styletree compares the computed styles of two element snapshots.

Overview

A StyleTree wraps the snapshot of a rendered page (or part of a page).
Comparing two style trees locates, for every element of the first tree,
the corresponding element of the second tree and lists the style
properties which differ between the two. Trees may have diverged in
structure; corresponding elements are found by searching for identity
criteria (tag name, type, text content, …) rather than by position.

Style values are normalized before comparison (see style.Normalize).
Differences of some properties are not cosmetic but regressions; by default
these are cursor, background-color and font-weight. A comparison
flags a total error if any of them differ anywhere in the tree:

    st1, _ := styletree.LoadFile("page1.json")
    st2, _ := styletree.LoadFile("page2.json")
    result, err := st1.CompareTo(st2, styletree.DefaultProperties)
    if err == nil && result.TotalError {
        …
    }

The result is a tree of diff records mirroring the structure of the first
snapshot. Downstream tools expect it serialized as nested arrays
(see WriteLegacy):

    [ record, [ child record, … ], [ child record, … ] ]

Comparisons are free of I/O and do not share state. Style trees are
read-only after loading and may be compared concurrently.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package styletree

import (
	"errors"

	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'layoutcompare.styletree'.
func tracer() tracing.Trace {
	return tracing.Select("layoutcompare.styletree")
}

// ErrNoProperties is returned by CompareTo for an empty list of identity
// properties.
var ErrNoProperties = errors.New("no identity properties for comparison")

// DefaultProperties are the identity attributes usually used to locate
// corresponding elements.
var DefaultProperties = []string{"tagName", "type", "textContent", "name", "value"}

// DefaultErrorProperties are the style properties whose differences are
// reported as errors.
var DefaultErrorProperties = []string{"cursor", "background-color", "font-weight"}
