package styletree

import (
	"fmt"
	"strings"

	"github.com/npillmayer/layoutcompare/dom/snapshot"
	"github.com/npillmayer/layoutcompare/dom/style"
	"github.com/npillmayer/layoutcompare/dom/styledtree"
)

// Option configures a comparison.
type Option func(*run)

// WithErrorProperties replaces the set of style properties whose differences
// are reported as errors.
func WithErrorProperties(properties ...string) Option {
	return func(r *run) {
		r.errorProps = make(map[string]bool, len(properties))
		for _, p := range properties {
			r.errorProps[strings.TrimSpace(p)] = true
		}
	}
}

// run holds the state of a single comparison.
type run struct {
	attrs      []snapshot.Attribute
	errorProps map[string]bool
	totalError bool // monotonic, set on first error-class difference
}

// CompareTo compares st against another style tree. properties names the
// identity attributes used to locate corresponding elements; all of them
// have to match for two elements to be considered the same element.
//
// Element-not-found and style differences are part of the result, not
// errors. CompareTo returns an error only for an invalid list of properties.
func (st *StyleTree) CompareTo(other *StyleTree, properties []string, opts ...Option) (*Result, error) {
	if len(properties) == 0 {
		return nil, ErrNoProperties
	}
	attrs, err := snapshot.ParseAttributes(properties)
	if err != nil {
		return nil, fmt.Errorf("cannot compare style trees: %w", err)
	}
	if st == nil || other == nil {
		return nil, fmt.Errorf("cannot compare style trees: %w", snapshot.ErrEmptySnapshot)
	}
	r := &run{attrs: attrs}
	WithErrorProperties(DefaultErrorProperties...)(r)
	for _, opt := range opts {
		opt(r)
	}
	tracer().Infof("comparing style trees of %d and %d elements by %v", st.Size(), other.Size(), attrs)
	root := r.compare(st.root, other.root)
	result := &Result{Root: root, TotalError: r.totalError}
	tracer().Infof("comparison done: %s", result.Summary())
	return result, nil
}

func (r *run) compare(sn1, sn2 *styledtree.StyNode) *DiffNode {
	e1 := sn1.Element()
	criteria := snapshot.CriteriaFor(e1, r.attrs)
	own := ownTextContent(e1)
	node := &DiffNode{}
	otherNode := search(sn2, criteria)
	if otherNode != nil {
		node.Record = r.diff(e1, otherNode.Element(), own)
	} else {
		tracer().P("path", sn1.Path()).Infof("element not found: %s", criteria)
		node.Record = &DiffRecord{
			TagName1:       e1.TagName,
			ElementID1:     e1.ElementID,
			CSSClass1:      e1.CSSClass,
			Type1:          e1.Type,
			Name1:          e1.Name,
			Value1:         e1.Value,
			TextContent1:   e1.TextContent.Trimmed(),
			OwnTextContent: snapshot.Trim(e1.TextContent.Text()),
			Error:          "element not found on other side — searched for: " + criteria.String(),
		}
		otherNode = sn2 // children re-search the whole other tree
	}
	for _, ch := range sn1.ChildNodes() {
		node.Children = append(node.Children, r.compare(ch, otherNode))
	}
	return node
}

// diff compares the styles of two corresponding elements. Only properties
// present on both sides are compared, in the order of e1's styles.
func (r *run) diff(e1, e2 *snapshot.Element, own string) *DiffRecord {
	rec := &DiffRecord{
		Found:          true,
		TagName1:       e1.TagName,
		TagName2:       e2.TagName,
		ElementID1:     e1.ElementID,
		ElementID2:     e2.ElementID,
		CSSClass1:      e1.CSSClass,
		CSSClass2:      e2.CSSClass,
		Type1:          e1.Type,
		Type2:          e2.Type,
		Name1:          e1.Name,
		Name2:          e2.Name,
		Value1:         e1.Value,
		Value2:         e2.Value,
		TextContent1:   e1.TextContent,
		TextContent2:   e2.TextContent,
		OwnTextContent: own,
		StyleDiff:      []StyleDiff{},
		ErrorList:      []string{},
	}
	for _, kv := range e1.Style.Properties() {
		p2, ok := e2.Style.Property(kv.Key)
		if !ok {
			continue
		}
		v1, v2 := style.Normalize(kv.Value), style.Normalize(p2)
		if v1 == v2 {
			continue
		}
		d := StyleDiff{Property: kv.Key, Style1: v1, Style2: v2}
		if r.errorProps[kv.Key] {
			d.Error = true
			rec.ErrorList = append(rec.ErrorList, kv.Key)
			r.totalError = true
			tracer().P("property", kv.Key).Infof("%s: %s → %s", e1, v1, v2)
		}
		rec.StyleDiff = append(rec.StyleDiff, d)
	}
	if len(rec.ErrorList) > 0 {
		rec.Error = "Differences at: " + strings.Join(rec.ErrorList, ", ")
	}
	return rec
}

// ownTextContent is the text content of an element without the text of its
// children: the first occurence of every child's text content is removed.
func ownTextContent(e *snapshot.Element) string {
	text := e.TextContent.Text()
	own := text
	for _, ch := range e.Children {
		childText := ch.TextContent.Text()
		if childText == text {
			tracer().Debugf("%s has a child with identical text content", e)
		}
		own = strings.Replace(own, childText, "", 1)
	}
	return snapshot.Trim(own)
}
