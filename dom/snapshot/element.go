package snapshot

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/npillmayer/layoutcompare/dom/style"
	"github.com/npillmayer/layoutcompare/dom/style/douceuradapter"
)

// Element is a snapshot of a single DOM element.
type Element struct {
	TagName     Field              `json:"tagName"`
	ElementID   Field              `json:"elementId"`
	CSSClass    Field              `json:"cssclass"`
	Type        Field              `json:"type"`
	Name        Field              `json:"name"`
	Value       Field              `json:"value"`
	TextContent Field              `json:"textContent"` // text of the element, including descendants
	Style       *style.PropertyMap `json:"-"`           // computed style
	Children    []*Element         `json:"_childElementInfo"`
}

// Attribute returns the field for an identity attribute.
// Unknown attributes return an absent field.
func (e *Element) Attribute(a Attribute) Field {
	if e == nil {
		return Field{}
	}
	switch a {
	case TagName:
		return e.TagName
	case ElementID:
		return e.ElementID
	case CSSClass:
		return e.CSSClass
	case Type:
		return e.Type
	case Name:
		return e.Name
	case Value:
		return e.Value
	case TextContent:
		return e.TextContent
	}
	return Field{}
}

func (e *Element) String() string {
	if e == nil {
		return "<nil>"
	}
	s := "<" + e.TagName.Text()
	if e.ElementID.IsPresent() && e.ElementID.Text() != "" {
		s += " #" + e.ElementID.Text()
	}
	if e.CSSClass.IsPresent() && e.CSSClass.Text() != "" {
		s += " ." + e.CSSClass.Text()
	}
	return s + ">"
}

// UnmarshalJSON decodes an element. The computed style may be given as a
// JSON object of property names to values, or as a declaration block string
// (cssText). A missing or null style results in an empty property map.
func (e *Element) UnmarshalJSON(b []byte) error {
	type plain Element
	aux := struct {
		*plain
		RawStyle json.RawMessage `json:"style"`
	}{plain: (*plain)(e)}
	if err := json.Unmarshal(b, &aux); err != nil {
		return err
	}
	children := e.Children[:0]
	for _, ch := range e.Children {
		if ch != nil {
			children = append(children, ch)
		}
	}
	e.Children = children
	e.Style = style.NewPropertyMap()
	raw := bytes.TrimSpace(aux.RawStyle)
	if len(raw) == 0 || bytes.Equal(raw, []byte("null")) {
		return nil
	}
	if raw[0] == '"' {
		var cssText string
		if err := json.Unmarshal(raw, &cssText); err != nil {
			return err
		}
		pmap, err := douceuradapter.ParseDeclarations(cssText)
		if err != nil {
			return fmt.Errorf("style of element %s: %w", e, err)
		}
		e.Style = pmap
		return nil
	}
	if err := json.Unmarshal(raw, e.Style); err != nil {
		return fmt.Errorf("style of element %s: %w", e, err)
	}
	return nil
}

// Decode reads a snapshot from r. The snapshot may either be a single root
// element or an array with the root element at index 0. Further array
// entries are ignored.
func Decode(r io.Reader) (*Element, error) {
	var raw json.RawMessage
	if err := json.NewDecoder(r).Decode(&raw); err != nil {
		return nil, fmt.Errorf("cannot decode snapshot: %w", err)
	}
	return Unmarshal(raw)
}

// Unmarshal decodes a snapshot from data; see Decode.
func Unmarshal(data []byte) (*Element, error) {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		return nil, ErrEmptySnapshot
	}
	var root *Element
	if data[0] == '[' {
		var roots []*Element
		if err := json.Unmarshal(data, &roots); err != nil {
			return nil, fmt.Errorf("cannot decode snapshot: %w", err)
		}
		if len(roots) == 0 || roots[0] == nil {
			return nil, ErrEmptySnapshot
		}
		if len(roots) > 1 {
			tracer().Infof("snapshot contains %d roots, using first one", len(roots))
		}
		root = roots[0]
	} else {
		root = &Element{}
		if err := json.Unmarshal(data, root); err != nil {
			return nil, fmt.Errorf("cannot decode snapshot: %w", err)
		}
	}
	tracer().Debugf("decoded snapshot with root %s", root)
	return root, nil
}

// Load reads a snapshot from a file.
func Load(filename string) (*Element, error) {
	f, err := os.Open(filename)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	root, err := Decode(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", filename, err)
	}
	return root, nil
}

// Count returns the number of elements in the subtree rooted at e.
func (e *Element) Count() int {
	if e == nil {
		return 0
	}
	n := 1
	for _, ch := range e.Children {
		n += ch.Count()
	}
	return n
}
