package snapshot

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"
	"unicode"
)

type fieldState uint8

const (
	absent fieldState = iota
	null
	present
)

// Field is an identity attribute of an element. A field may be absent from
// the serialized element, may be explicitly null, or may carry a value.
// The zero value is an absent field.
//
// Numbers and booleans in the input are kept in their JSON text form, so
// that "value": 3 and "value": "3" stringify identically.
type Field struct {
	text  string
	state fieldState
}

// NewField creates a field with a value.
func NewField(s string) Field {
	return Field{text: s, state: present}
}

// NullField creates an explicitly null field.
func NullField() Field {
	return Field{state: null}
}

// IsPresent is true if the field appeared in the serialized element, even
// if its value has been null.
func (f Field) IsPresent() bool {
	return f.state != absent
}

// IsNull is true for explicitly null fields.
func (f Field) IsNull() bool {
	return f.state == null
}

// Text returns the field's value, or "" for absent and null fields.
func (f Field) Text() string {
	return f.text
}

// String stringifies a field the way a script engine would: absent fields
// render as "undefined", null fields as "null".
func (f Field) String() string {
	switch f.state {
	case absent:
		return "undefined"
	case null:
		return "null"
	}
	return f.text
}

// Criterion is the trimmed, stringified value of a field, suitable for
// comparison with a criterion value.
func (f Field) Criterion() string {
	return Trim(f.String())
}

// Trimmed returns a copy of f with leading and trailing white space removed
// from its value. Absent and null fields are returned unchanged.
func (f Field) Trimmed() Field {
	if f.state != present {
		return f
	}
	return NewField(Trim(f.text))
}

// Ref returns a pointer to a copy of f, or nil if f is absent. It is
// used to omit absent fields from JSON output.
func (f Field) Ref() *Field {
	if f.state == absent {
		return nil
	}
	return &f
}

// UnmarshalJSON decodes strings, numbers, booleans and null.
func (f *Field) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if len(b) == 0 {
		return fmt.Errorf("empty JSON value for attribute")
	}
	switch b[0] {
	case 'n':
		*f = NullField()
		return nil
	case '"':
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		*f = NewField(s)
		return nil
	case '{', '[':
		return fmt.Errorf("attribute value must be a scalar, is %.20s", b)
	}
	*f = NewField(string(b)) // number or boolean
	return nil
}

// MarshalJSON encodes absent and null fields as null.
func (f Field) MarshalJSON() ([]byte, error) {
	if f.state != present {
		return []byte("null"), nil
	}
	return json.Marshal(f.text)
}

// Trim removes leading and trailing white space, including the byte order
// mark U+FEFF.
func Trim(s string) string {
	return strings.TrimFunc(s, func(r rune) bool {
		return unicode.IsSpace(r) || r == '\uFEFF'
	})
}
