package styletree

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
)

// ErrNotADiffTree is returned when reading JSON which is not a diff tree.
var ErrNotADiffTree = errors.New("JSON input is not a diff tree")

// Legacy converts a diff tree into nested arrays: the record of a node,
// followed by one nested array per child.
//
//    [ record, [ child record, … ], … ]
//
func Legacy(n *DiffNode) []interface{} {
	if n == nil {
		return nil
	}
	arr := make([]interface{}, 0, len(n.Children)+1)
	arr = append(arr, n.Record)
	for _, ch := range n.Children {
		arr = append(arr, Legacy(ch))
	}
	return arr
}

// MarshalLegacy serializes a diff tree as nested arrays, indented by four
// spaces.
func MarshalLegacy(n *DiffNode) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "    ")
	if err := enc.Encode(Legacy(n)); err != nil {
		return nil, err
	}
	return bytes.TrimRight(buf.Bytes(), "\n"), nil
}

// WriteLegacy writes a diff tree as nested arrays, indented by four spaces.
func WriteLegacy(w io.Writer, n *DiffNode) error {
	b, err := MarshalLegacy(n)
	if err != nil {
		return err
	}
	_, err = w.Write(b)
	return err
}

// ReadLegacy reads a diff tree from nested arrays, as written by WriteLegacy.
func ReadLegacy(r io.Reader) (*DiffNode, error) {
	var raw json.RawMessage
	if err := json.NewDecoder(r).Decode(&raw); err != nil {
		return nil, fmt.Errorf("cannot read diff tree: %w", err)
	}
	return unmarshalLegacy(raw)
}

func unmarshalLegacy(raw json.RawMessage) (*DiffNode, error) {
	var arr []json.RawMessage
	if err := json.Unmarshal(raw, &arr); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrNotADiffTree, err)
	}
	if len(arr) == 0 {
		return nil, fmt.Errorf("%w: empty array", ErrNotADiffTree)
	}
	node := &DiffNode{Record: &DiffRecord{}}
	if err := json.Unmarshal(arr[0], node.Record); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrNotADiffTree, err)
	}
	for _, ch := range arr[1:] {
		child, err := unmarshalLegacy(ch)
		if err != nil {
			return nil, err
		}
		node.Children = append(node.Children, child)
	}
	return node, nil
}

// ReadResult reads a comparison result, either in nested array form or
// as written by Result.MarshalJSON. The total error flag is recomputed
// from the records.
func ReadResult(r io.Reader) (*Result, error) {
	var raw json.RawMessage
	if err := json.NewDecoder(r).Decode(&raw); err != nil {
		return nil, fmt.Errorf("cannot read diff tree: %w", err)
	}
	raw = bytes.TrimSpace(raw)
	if len(raw) > 0 && raw[0] == '[' {
		root, err := unmarshalLegacy(raw)
		if err != nil {
			return nil, err
		}
		return resultFromTree(root), nil
	}
	var in struct {
		Root *DiffNode `json:"root"`
	}
	if err := json.Unmarshal(raw, &in); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrNotADiffTree, err)
	}
	if in.Root == nil || in.Root.Record == nil {
		return nil, fmt.Errorf("%w: missing root", ErrNotADiffTree)
	}
	return resultFromTree(in.Root), nil
}
