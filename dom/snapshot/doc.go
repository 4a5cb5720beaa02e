/*
Package snapshot holds the wire types of element snapshots: serialized trees
of DOM elements, each carrying identity attributes and the element's
computed style.

A snapshot is a JSON document, either a single root element or an array
with the root element at index 0:

    [{
        "tagName": "BODY",
        "textContent": "Hello World",
        "style": { "color": "rgb(0, 0, 0)", "font-size": "16px" },
        "_childElementInfo": [ … ]
    }]

Identity attributes are tri-state: they may be absent, JSON null, or carry
a value. Matching elements across snapshots depends on this distinction;
see type Field.

Snapshots are read-only input. Nothing in this module mutates an element
after decoding.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package snapshot

import (
	"errors"

	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'layoutcompare.snapshot'.
func tracer() tracing.Trace {
	return tracing.Select("layoutcompare.snapshot")
}

// ErrEmptySnapshot is returned when decoding a snapshot without a root element.
var ErrEmptySnapshot = errors.New("snapshot contains no root element")

// ErrUnknownAttribute is returned for attribute names which are not
// identity attributes of an element.
var ErrUnknownAttribute = errors.New("unknown identity attribute")
