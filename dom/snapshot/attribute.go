package snapshot

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"
)

// Attribute denotes an identity attribute of an element.
type Attribute uint8

// Identity attributes, named as in the serialized form.
const (
	NoAttribute Attribute = iota
	TagName               // tagName
	ElementID             // elementId
	CSSClass              // cssclass
	Type                  // type
	Name                  // name
	Value                 // value
	TextContent           // textContent
)

var attributeNames = [...]string{
	"", "tagName", "elementId", "cssclass", "type", "name", "value", "textContent",
}

// AllAttributes lists every identity attribute, in serialization order.
var AllAttributes = []Attribute{TagName, ElementID, CSSClass, Type, Name, Value, TextContent}

func (a Attribute) String() string {
	if int(a) >= len(attributeNames) {
		return fmt.Sprintf("Attribute(%d)", a)
	}
	return attributeNames[a]
}

// ParseAttribute finds an attribute by its serialized name.
// Names are case sensitive.
func ParseAttribute(name string) (Attribute, error) {
	for i := 1; i < len(attributeNames); i++ {
		if attributeNames[i] == name {
			return Attribute(i), nil
		}
	}
	return NoAttribute, fmt.Errorf("%w: %q", ErrUnknownAttribute, name)
}

// ParseAttributes parses a list of attribute names, dropping duplicates.
func ParseAttributes(names []string) ([]Attribute, error) {
	attrs := make([]Attribute, 0, len(names))
	seen := make(map[Attribute]bool)
	for _, name := range names {
		a, err := ParseAttribute(strings.TrimSpace(name))
		if err != nil {
			return nil, err
		}
		if !seen[a] {
			attrs = append(attrs, a)
			seen[a] = true
		}
	}
	return attrs, nil
}

// --- Criteria ---------------------------------------------------------

// Criterion is a single attribute/value pair an element has to match.
type Criterion struct {
	Attribute Attribute
	Value     string
}

// Criteria is an ordered set of criterions. An element matches criteria if
// it matches every single criterion. Empty criteria match every element.
type Criteria []Criterion

// CriteriaFor builds criteria from an element's attributes: for every
// attribute the trimmed, stringified value of the element's field.
func CriteriaFor(e *Element, attrs []Attribute) Criteria {
	c := make(Criteria, 0, len(attrs))
	for _, a := range attrs {
		c = c.With(a, e.Attribute(a).Criterion())
	}
	return c
}

// With returns criteria with an additional criterion. If a criterion for
// attribute a already exists, its value is replaced.
func (c Criteria) With(a Attribute, value string) Criteria {
	for i := range c {
		if c[i].Attribute == a {
			r := make(Criteria, len(c))
			copy(r, c)
			r[i].Value = value
			return r
		}
	}
	return append(c, Criterion{Attribute: a, Value: value})
}

// Matches checks an element against criteria. Every criterion's attribute
// must be present on the element (null counts as present), and its
// trimmed, stringified value must equal the criterion's value exactly.
func (c Criteria) Matches(e *Element) bool {
	if e == nil {
		return false
	}
	for _, crit := range c {
		f := e.Attribute(crit.Attribute)
		if !f.IsPresent() || f.Criterion() != crit.Value {
			return false
		}
	}
	return true
}

// String renders criteria as a JSON object, in criterion order, e.g.
//
//    {"tagName":"DIV","type":"undefined"}
//
func (c Criteria) String() string {
	b, _ := c.MarshalJSON()
	return string(b)
}

// MarshalJSON writes criteria as a JSON object in criterion order.
func (c Criteria) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	buf.WriteByte('{')
	for i, crit := range c {
		if i > 0 {
			buf.WriteByte(',')
		}
		if err := enc.Encode(crit.Attribute.String()); err != nil {
			return nil, err
		}
		buf.Truncate(buf.Len() - 1) // Encode appends a newline
		buf.WriteByte(':')
		if err := enc.Encode(crit.Value); err != nil {
			return nil, err
		}
		buf.Truncate(buf.Len() - 1)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// ParseCriterion parses a criterion of the form "attribute=value".
// The value is trimmed.
func ParseCriterion(s string) (Criterion, error) {
	name, value, found := strings.Cut(s, "=")
	if !found {
		return Criterion{}, fmt.Errorf("criterion must be of form attribute=value, is %q", s)
	}
	a, err := ParseAttribute(strings.TrimSpace(name))
	if err != nil {
		return Criterion{}, err
	}
	return Criterion{Attribute: a, Value: Trim(value)}, nil
}
