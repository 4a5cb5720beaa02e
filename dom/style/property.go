package style

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/npillmayer/schuko/tracing"
)

// tracer will return a tracer. We are tracing to 'layoutcompare.dom'
func tracer() tracing.Trace {
	return tracing.Select("layoutcompare.dom")
}

// Property is a raw value for a CSS property. For example, with
//
//     color: black
//
// a property value of "black" is set. The main purpose of wrapping
// the raw string value into type Property is to provide a set of
// convenient type conversion functions and other helpers.
//
// Computed style values are kept verbatim; in particular, they are not
// converted to lower case.
type Property string

// NullStyle is an empty property value.
const NullStyle Property = ""

func (p Property) String() string {
	return string(p)
}

// IsInitial denotes if a property is of inheritence-type "initial"
func (p Property) IsInitial() bool {
	return p == "initial"
}

// IsInherit denotes if a property is of inheritence-type "inherit"
func (p Property) IsInherit() bool {
	return p == "inherit"
}

// IsEmpty checks wether a property is empty, i.e. the null-string.
func (p Property) IsEmpty() bool {
	return p == ""
}

// KeyValue is a container for a style property.
type KeyValue struct {
	Key   string
	Value Property
}

// --- CSS Property Groups ----------------------------------------------

// Symbolic names for string literals, denoting property groups.
// CSS knows a whole lot of properties. We split them up into organisatorial
// groups, mainly for reporting.
const (
	PGMargins   = "Margins"
	PGPadding   = "Padding"
	PGBorder    = "Border"
	PGDimension = "Dimension"
	PGDisplay   = "Display"
	PGRegion    = "Region"
	PGColor     = "Color"
	PGFont      = "Font"
	PGText      = "Text"
	PGUI        = "UI"
	PGX         = "X"
)

var groupNameFromPropertyKey = map[string]string{
	"margin-top":                 PGMargins, // Margins
	"margin-left":                PGMargins,
	"margin-right":               PGMargins,
	"margin-bottom":              PGMargins,
	"padding-top":                PGPadding, // Padding
	"padding-left":               PGPadding,
	"padding-right":              PGPadding,
	"padding-bottom":             PGPadding,
	"border-top-color":           PGBorder, // Border
	"border-left-color":          PGBorder,
	"border-right-color":         PGBorder,
	"border-bottom-color":        PGBorder,
	"border-top-width":           PGBorder,
	"border-left-width":          PGBorder,
	"border-right-width":         PGBorder,
	"border-bottom-width":        PGBorder,
	"border-top-style":           PGBorder,
	"border-left-style":          PGBorder,
	"border-right-style":         PGBorder,
	"border-bottom-style":        PGBorder,
	"border-top-left-radius":     PGBorder,
	"border-top-right-radius":    PGBorder,
	"border-bottom-left-radius":  PGBorder,
	"border-bottom-right-radius": PGBorder,
	"width":                      PGDimension, // Dimension
	"height":                     PGDimension,
	"min-width":                  PGDimension,
	"min-height":                 PGDimension,
	"max-width":                  PGDimension,
	"max-height":                 PGDimension,
	"top":                        PGDimension,
	"right":                      PGDimension,
	"bottom":                     PGDimension,
	"left":                       PGDimension,
	"display":                    PGDisplay, // Display
	"float":                      PGDisplay,
	"visibility":                 PGDisplay,
	"position":                   PGDisplay,
	"z-index":                    PGDisplay,
	"flow-into":                  PGRegion,
	"flow-from":                  PGRegion,
	"color":                      PGColor,
	"background-color":           PGColor,
	"opacity":                    PGColor,
	"font-family":                PGFont,
	"font-size":                  PGFont,
	"font-style":                 PGFont,
	"font-weight":                PGFont,
	"font-variant":               PGFont,
	"line-height":                PGFont,
	"direction":                  PGText,
	"white-space":                PGText,
	"word-spacing":               PGText,
	"letter-spacing":             PGText,
	"word-break":                 PGText,
	"word-wrap":                  PGText,
	"text-align":                 PGText,
	"text-decoration":            PGText,
	"text-transform":             PGText,
	"cursor":                     PGUI,
	"outline-color":              PGUI,
	"outline-style":              PGUI,
	"outline-width":              PGUI,
}

// GroupNameFromPropertyKey returns the style property group name for a
// style property.
// Example:
//    GroupNameFromPropertyKey("margin-top") => "Margins"
//
// Unknown style property keys will return a group name of "X".
func GroupNameFromPropertyKey(key string) string {
	groupname, found := groupNameFromPropertyKey[key]
	if !found {
		groupname = PGX
	}
	return groupname
}

// --- Property Map -----------------------------------------------------

// PropertyMap holds the computed CSS properties of an element.
// nil is a legal (empty) property map.
//
// Property maps remember the order in which keys have been added: iterating
// over a property map visits the keys in the order they appeared in the
// snapshot, which in turn determines the order of style differences.
type PropertyMap struct {
	keys []string            // insertion order
	m    map[string]Property // key → value
}

// NewPropertyMap returns a new empty property map.
func NewPropertyMap() *PropertyMap {
	return &PropertyMap{}
}

func (pmap *PropertyMap) String() string {
	var b strings.Builder
	b.WriteString("Property Map = {\n")
	for _, kv := range pmap.Properties() {
		fmt.Fprintf(&b, "  %s = %s\n", kv.Key, kv.Value)
	}
	b.WriteString("}")
	return b.String()
}

// Size returns the number of properties.
func (pmap *PropertyMap) Size() int {
	if pmap == nil {
		return 0
	}
	return len(pmap.keys)
}

// Keys returns the property keys in insertion order.
func (pmap *PropertyMap) Keys() []string {
	if pmap.Size() == 0 {
		return nil
	}
	keys := make([]string, len(pmap.keys))
	copy(keys, pmap.keys)
	return keys
}

// Properties returns all properties in insertion order.
func (pmap *PropertyMap) Properties() []KeyValue {
	if pmap.Size() == 0 {
		return nil
	}
	r := make([]KeyValue, len(pmap.keys))
	for i, k := range pmap.keys {
		r[i] = KeyValue{k, pmap.m[k]}
	}
	return r
}

// Group returns the properties belonging to a property group, in
// insertion order.
func (pmap *PropertyMap) Group(groupname string) []KeyValue {
	var r []KeyValue
	for _, kv := range pmap.Properties() {
		if GroupNameFromPropertyKey(kv.Key) == groupname {
			r = append(r, kv)
		}
	}
	return r
}

// Property returns a style property value, together with an indicator
// wether it has been found in the properties map.
// No cascading is performed.
func (pmap *PropertyMap) Property(key string) (Property, bool) {
	if pmap == nil || pmap.m == nil {
		return NullStyle, false
	}
	p, ok := pmap.m[key]
	return p, ok
}

// Set a property's value. Overwrites an existing value, if present; an
// overwritten key keeps its original position.
//
// Set on a nil property map is a no-op.
func (pmap *PropertyMap) Set(key string, value Property) {
	if pmap == nil {
		return
	}
	if pmap.m == nil {
		pmap.m = make(map[string]Property)
	}
	if _, exists := pmap.m[key]; !exists {
		pmap.keys = append(pmap.keys, key)
	}
	pmap.m[key] = value
}

// Add adds a property to this property map, e.g.,
//
//    pm.Add("funny-margin", "big")
//
// Add does not overwrite an existing value, i.e., does nothing
// if a value is already set.
func (pmap *PropertyMap) Add(key string, value Property) {
	if _, exists := pmap.Property(key); exists {
		return
	}
	pmap.Set(key, value)
}

// UnmarshalJSON reads a JSON object of CSS property names to values, keeping
// the order of the keys. Values have to be JSON strings or numbers.
func (pmap *PropertyMap) UnmarshalJSON(b []byte) error {
	dec := json.NewDecoder(bytes.NewReader(b))
	dec.UseNumber()
	tok, err := dec.Token()
	if err != nil {
		return err
	}
	if tok == nil { // JSON null
		return nil
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return fmt.Errorf("style: expected JSON object for property map, got %v", tok)
	}
	for dec.More() {
		tok, err = dec.Token()
		if err != nil {
			return err
		}
		key := tok.(string) // object keys are always strings
		tok, err = dec.Token()
		if err != nil {
			return err
		}
		switch v := tok.(type) {
		case string:
			pmap.Set(key, Property(v))
		case json.Number:
			pmap.Set(key, Property(v.String()))
		default:
			return fmt.Errorf("style: value of property %q is not a string: %v", key, tok)
		}
	}
	if _, err = dec.Token(); err != nil && err != io.EOF { // closing '}'
		return err
	}
	tracer().Debugf("decoded property map with %d properties", pmap.Size())
	return nil
}

// MarshalJSON writes a property map as a JSON object, keeping the order
// of the keys.
func (pmap *PropertyMap) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, kv := range pmap.Properties() {
		if i > 0 {
			buf.WriteByte(',')
		}
		k, err := json.Marshal(kv.Key)
		if err != nil {
			return nil, err
		}
		v, err := json.Marshal(string(kv.Value))
		if err != nil {
			return nil, err
		}
		buf.Write(k)
		buf.WriteByte(':')
		buf.Write(v)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}
