package styletree

import (
	"encoding/json"
	"fmt"

	"github.com/npillmayer/layoutcompare/dom/snapshot"
	"github.com/npillmayer/layoutcompare/dom/style"
)

// StyleDiff is a single differing style property. Values are normalized.
type StyleDiff struct {
	Property string         `json:"property"`
	Style1   style.Property `json:"style1"`
	Style2   style.Property `json:"style2"`
	Error    bool           `json:"error,omitempty"` // property is error-class
}

// DiffRecord is the result of comparing an element of the first tree with
// its counterpart in the second tree.
//
// If no counterpart has been found, Found is false and only the fields of
// the first element are set, with TextContent1 trimmed.
type DiffRecord struct {
	Found bool

	TagName1, TagName2         snapshot.Field
	ElementID1, ElementID2     snapshot.Field
	CSSClass1, CSSClass2       snapshot.Field
	Type1, Type2               snapshot.Field
	Name1, Name2               snapshot.Field
	Value1, Value2             snapshot.Field
	TextContent1, TextContent2 snapshot.Field

	OwnTextContent string      // text of the element without its children's text
	StyleDiff      []StyleDiff // differing properties, in style order
	ErrorList      []string    // error-class properties among StyleDiff
	Error          string      // message if ErrorList is non-empty or element not found
}

// HasChanges is true if the record lists differences or an error.
func (rec *DiffRecord) HasChanges() bool {
	return rec != nil && (len(rec.StyleDiff) > 0 || rec.Error != "")
}

func (rec *DiffRecord) String() string {
	if rec == nil {
		return "<nil>"
	}
	if !rec.Found {
		return fmt.Sprintf("%s: %s", rec.TagName1.Text(), rec.Error)
	}
	return fmt.Sprintf("%s: %d differences, %d errors", rec.TagName1.Text(),
		len(rec.StyleDiff), len(rec.ErrorList))
}

// recordOut fixes the key order of serialized records. Absent fields
// are omitted, null fields are written as null.
type recordOut struct {
	TagName1       *snapshot.Field `json:"tagName1,omitempty"`
	TagName2       *snapshot.Field `json:"tagName2,omitempty"`
	ElementID1     *snapshot.Field `json:"elementId1,omitempty"`
	ElementID2     *snapshot.Field `json:"elementId2,omitempty"`
	CSSClass1      *snapshot.Field `json:"cssclass1,omitempty"`
	CSSClass2      *snapshot.Field `json:"cssclass2,omitempty"`
	Type1          *snapshot.Field `json:"type1,omitempty"`
	Type2          *snapshot.Field `json:"type2,omitempty"`
	Name1          *snapshot.Field `json:"name1,omitempty"`
	Name2          *snapshot.Field `json:"name2,omitempty"`
	Value1         *snapshot.Field `json:"value1,omitempty"`
	Value2         *snapshot.Field `json:"value2,omitempty"`
	TextContent1   *snapshot.Field `json:"textContent1,omitempty"`
	TextContent2   *snapshot.Field `json:"textContent2,omitempty"`
	OwnTextContent string          `json:"ownTextContent"`
	StyleDiff      *[]StyleDiff    `json:"styleDiff,omitempty"`
	ErrorList      *[]string       `json:"errorList,omitempty"`
	Error          string          `json:"error,omitempty"`
}

// recordIn reads serialized records. Field values are not pointers, so that
// null values are kept.
type recordIn struct {
	TagName1       snapshot.Field `json:"tagName1"`
	TagName2       snapshot.Field `json:"tagName2"`
	ElementID1     snapshot.Field `json:"elementId1"`
	ElementID2     snapshot.Field `json:"elementId2"`
	CSSClass1      snapshot.Field `json:"cssclass1"`
	CSSClass2      snapshot.Field `json:"cssclass2"`
	Type1          snapshot.Field `json:"type1"`
	Type2          snapshot.Field `json:"type2"`
	Name1          snapshot.Field `json:"name1"`
	Name2          snapshot.Field `json:"name2"`
	Value1         snapshot.Field `json:"value1"`
	Value2         snapshot.Field `json:"value2"`
	TextContent1   snapshot.Field `json:"textContent1"`
	TextContent2   snapshot.Field `json:"textContent2"`
	OwnTextContent *string        `json:"ownTextContent"`
	StyleDiff      *[]StyleDiff   `json:"styleDiff"`
	ErrorList      []string       `json:"errorList"`
	Error          string         `json:"error"`
}

// MarshalJSON writes a record the way downstream report tools expect it.
// Records of found elements always carry styleDiff and errorList, even if
// empty; records of elements not found carry neither.
func (rec *DiffRecord) MarshalJSON() ([]byte, error) {
	out := recordOut{
		TagName1:       rec.TagName1.Ref(),
		ElementID1:     rec.ElementID1.Ref(),
		CSSClass1:      rec.CSSClass1.Ref(),
		Type1:          rec.Type1.Ref(),
		Name1:          rec.Name1.Ref(),
		Value1:         rec.Value1.Ref(),
		TextContent1:   rec.TextContent1.Ref(),
		OwnTextContent: rec.OwnTextContent,
		Error:          rec.Error,
	}
	if rec.Found {
		out.TagName2 = rec.TagName2.Ref()
		out.ElementID2 = rec.ElementID2.Ref()
		out.CSSClass2 = rec.CSSClass2.Ref()
		out.Type2 = rec.Type2.Ref()
		out.Name2 = rec.Name2.Ref()
		out.Value2 = rec.Value2.Ref()
		out.TextContent2 = rec.TextContent2.Ref()
		diffs, errs := rec.StyleDiff, rec.ErrorList
		if diffs == nil {
			diffs = []StyleDiff{}
		}
		if errs == nil {
			errs = []string{}
		}
		out.StyleDiff, out.ErrorList = &diffs, &errs
	}
	return json.Marshal(out)
}

// UnmarshalJSON reads a record. A record counts as found if it carries
// a styleDiff list. Every record carries ownTextContent.
func (rec *DiffRecord) UnmarshalJSON(b []byte) error {
	var in recordIn
	if err := json.Unmarshal(b, &in); err != nil {
		return err
	}
	if in.OwnTextContent == nil {
		return fmt.Errorf("%w: record without ownTextContent", ErrNotADiffTree)
	}
	*rec = DiffRecord{
		Found:          in.StyleDiff != nil,
		TagName1:       in.TagName1,
		TagName2:       in.TagName2,
		ElementID1:     in.ElementID1,
		ElementID2:     in.ElementID2,
		CSSClass1:      in.CSSClass1,
		CSSClass2:      in.CSSClass2,
		Type1:          in.Type1,
		Type2:          in.Type2,
		Name1:          in.Name1,
		Name2:          in.Name2,
		Value1:         in.Value1,
		Value2:         in.Value2,
		TextContent1:   in.TextContent1,
		TextContent2:   in.TextContent2,
		OwnTextContent: *in.OwnTextContent,
		ErrorList:      in.ErrorList,
		Error:          in.Error,
	}
	if in.StyleDiff != nil {
		rec.StyleDiff = *in.StyleDiff
	}
	return nil
}

// --- Diff tree --------------------------------------------------------

// DiffNode is a node of the diff tree, mirroring the structure of the
// first style tree.
type DiffNode struct {
	Record   *DiffRecord `json:"record"`
	Children []*DiffNode `json:"children,omitempty"`
}

// Walk calls f for every node of the subtree rooted at n, in document order.
// If f returns false, the children of the node are skipped.
func (n *DiffNode) Walk(f func(node *DiffNode, depth int) bool) {
	var walk func(node *DiffNode, depth int)
	walk = func(node *DiffNode, depth int) {
		if node == nil || !f(node, depth) {
			return
		}
		for _, ch := range node.Children {
			walk(ch, depth+1)
		}
	}
	walk(n, 0)
}

// HasChanges is true if any record in the subtree rooted at n has changes.
func (n *DiffNode) HasChanges() bool {
	changed := false
	n.Walk(func(node *DiffNode, depth int) bool {
		changed = changed || node.Record.HasChanges()
		return !changed
	})
	return changed
}

// Result is the outcome of a comparison.
type Result struct {
	Root       *DiffNode `json:"root"`
	TotalError bool      `json:"totalError"` // any error-class property differed
}

// Summary holds counts over a diff tree.
type Summary struct {
	Elements   int  `json:"elements"`   // elements of the first tree
	Matched    int  `json:"matched"`    // elements with a counterpart
	NotFound   int  `json:"notFound"`   // elements without a counterpart
	StyleDiffs int  `json:"styleDiffs"` // differing properties
	ErrorDiffs int  `json:"errorDiffs"` // differing error-class properties
	TotalError bool `json:"totalError"`
}

// Summary counts elements and differences of a result.
func (r *Result) Summary() Summary {
	s := Summary{TotalError: r.TotalError}
	r.Root.Walk(func(node *DiffNode, depth int) bool {
		s.Elements++
		rec := node.Record
		if rec == nil {
			return true
		}
		if rec.Found {
			s.Matched++
		} else {
			s.NotFound++
		}
		s.StyleDiffs += len(rec.StyleDiff)
		s.ErrorDiffs += len(rec.ErrorList)
		return true
	})
	return s
}

// Verdict is "FAIL" if error-class properties differ, "SUCCESS" otherwise.
func (s Summary) Verdict() string {
	if s.TotalError {
		return "FAIL"
	}
	return "SUCCESS"
}

func (s Summary) String() string {
	return fmt.Sprintf("%s: %d elements, %d matched, %d not found, %d style differences, %d errors",
		s.Verdict(), s.Elements, s.Matched, s.NotFound, s.StyleDiffs, s.ErrorDiffs)
}

// MarshalJSON writes a result including its summary.
func (r *Result) MarshalJSON() ([]byte, error) {
	type plain Result
	return json.Marshal(struct {
		*plain
		Summary Summary `json:"summary"`
	}{(*plain)(r), r.Summary()})
}

// resultFromTree recomputes the total error flag of a diff tree.
func resultFromTree(root *DiffNode) *Result {
	r := &Result{Root: root}
	root.Walk(func(node *DiffNode, depth int) bool {
		if node.Record != nil && len(node.Record.ErrorList) > 0 {
			r.TotalError = true
		}
		return !r.TotalError
	})
	return r
}
