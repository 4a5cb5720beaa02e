/*
Package douceuradapter reads CSS declaration blocks, as found in
`style`-attributes or in an element's cssText, into style property maps.

Parsing is done by douceur. Snapshots sometimes carry an element's style as
a single string instead of a JSON object; this package converts between the
two forms.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>
*/
package douceuradapter

import (
	"fmt"
	"strings"

	"github.com/aymerick/douceur/css"
	"github.com/aymerick/douceur/parser"
	"github.com/npillmayer/layoutcompare/dom/style"
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'layoutcompare.dom'.
func tracer() tracing.Trace {
	return tracing.Select("layoutcompare.dom")
}

// ParseDeclarations parses a declaration block, e.g.
//
//    color: black; margin-top: 3px !important
//
// into a property map. Declaration order is kept; for duplicate properties
// the last declaration wins. Flags like "!important" are dropped from the
// values.
func ParseDeclarations(text string) (*style.PropertyMap, error) {
	decls, err := parser.ParseDeclarations(text)
	if err != nil {
		return nil, fmt.Errorf("cannot parse style declarations: %w", err)
	}
	pmap := style.NewPropertyMap()
	for _, d := range decls {
		pmap.Set(d.Property, style.Property(d.Value))
	}
	tracer().Debugf("parsed %d declarations into %d properties", len(decls), pmap.Size())
	return pmap, nil
}

// Declarations converts a property map into a list of douceur declarations,
// in map order.
func Declarations(pmap *style.PropertyMap) []*css.Declaration {
	props := pmap.Properties()
	decls := make([]*css.Declaration, 0, len(props))
	for _, kv := range props {
		decls = append(decls, &css.Declaration{
			Property: kv.Key,
			Value:    kv.Value.String(),
		})
	}
	return decls
}

// Format renders a property map as a declaration block, e.g.
//
//    color: black; margin-top: 3px;
//
func Format(pmap *style.PropertyMap) string {
	var b strings.Builder
	for i, d := range Declarations(pmap) {
		if i > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(d.String())
	}
	return b.String()
}
