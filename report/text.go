package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/npillmayer/layoutcompare/css"
	"github.com/npillmayer/layoutcompare/dom/snapshot"
	"github.com/npillmayer/layoutcompare/dom/style"
	"github.com/npillmayer/layoutcompare/dom/styledtree"
	"github.com/npillmayer/layoutcompare/styletree"
	"github.com/xlab/treeprint"
)

// Text writes a comparison result as a text tree, followed by a summary line.
//
//    [FAIL]  BODY
//    └── BUTTON "Press"
//        ├── Color
//        │   └── [error]  background-color: rgba(255,255,255,255) → rgba(0,0,0,0)
//        └── …
//
func Text(w io.Writer, result *styletree.Result, opts Options) error {
	root := result.Root
	if opts.OnlyChanges {
		root = Prune(root)
	}
	t := treeprint.NewWithRoot(recordLabel(root.Record))
	if root.Record.HasChanges() {
		t.SetMetaValue(recordMeta(root.Record))
	}
	addDiffs(t, root.Record)
	for _, ch := range root.Children {
		addDiffNode(t, ch)
	}
	if _, err := io.WriteString(w, t.String()); err != nil {
		return err
	}
	_, err := fmt.Fprintln(w, result.Summary())
	return err
}

func addDiffNode(t treeprint.Tree, n *styletree.DiffNode) {
	var branch treeprint.Tree
	if n.Record.HasChanges() {
		branch = t.AddMetaBranch(recordMeta(n.Record), recordLabel(n.Record))
	} else {
		branch = t.AddBranch(recordLabel(n.Record))
	}
	addDiffs(branch, n.Record)
	for _, ch := range n.Children {
		addDiffNode(branch, ch)
	}
}

// addDiffs adds the style differences of a record, grouped by property group.
func addDiffs(t treeprint.Tree, rec *styletree.DiffRecord) {
	if !rec.Found {
		t.AddNode(rec.Error)
		return
	}
	groups := make(map[string]treeprint.Tree)
	for _, d := range rec.StyleDiff {
		g := style.GroupNameFromPropertyKey(d.Property)
		branch, ok := groups[g]
		if !ok {
			branch = t.AddBranch(g)
			groups[g] = branch
		}
		if d.Error {
			branch.AddMetaNode("error", diffLabel(d))
		} else {
			branch.AddNode(diffLabel(d))
		}
	}
}

func recordMeta(rec *styletree.DiffRecord) string {
	switch {
	case !rec.Found:
		return "not found"
	case len(rec.ErrorList) > 0:
		return "FAIL"
	}
	return fmt.Sprintf("%d", len(rec.StyleDiff))
}

func recordLabel(rec *styletree.DiffRecord) string {
	return elementLabel(rec.TagName1, rec.ElementID1, rec.CSSClass1, rec.OwnTextContent)
}

func elementLabel(tag, id, class snapshot.Field, text string) string {
	var b strings.Builder
	b.WriteString(tag.Text())
	if id.Text() != "" {
		b.WriteString("#" + id.Text())
	}
	if class.Text() != "" {
		b.WriteString("." + strings.Join(strings.Fields(class.Text()), "."))
	}
	if text != "" {
		fmt.Fprintf(&b, " %q", shorten(text, 30))
	}
	return b.String()
}

func diffLabel(d styletree.StyleDiff) string {
	s := fmt.Sprintf("%s: %s → %s", d.Property, d.Style1, d.Style2)
	if delta, ok := css.LengthDelta(d.Style1.String(), d.Style2.String()); ok {
		s += fmt.Sprintf("  (Δ %s)", css.FormatPoints(delta))
	}
	return s
}

// --- Snapshot trees ---------------------------------------------------

// Snapshot writes a styled tree as a text tree. For every element, the
// style properties belonging to one of the given property groups are listed.
func Snapshot(w io.Writer, root *styledtree.StyNode, groups []string) error {
	if root == nil {
		return snapshot.ErrEmptySnapshot
	}
	t := treeprint.NewWithRoot(nodeLabel(root))
	addStyles(t, root, groups)
	for _, ch := range root.ChildNodes() {
		addStyledNode(t, ch, groups)
	}
	_, err := io.WriteString(w, t.String())
	return err
}

func addStyledNode(t treeprint.Tree, sn *styledtree.StyNode, groups []string) {
	branch := t.AddBranch(nodeLabel(sn))
	addStyles(branch, sn, groups)
	for _, ch := range sn.ChildNodes() {
		addStyledNode(branch, ch, groups)
	}
}

func addStyles(t treeprint.Tree, sn *styledtree.StyNode, groups []string) {
	for _, g := range groups {
		for _, kv := range sn.Styles().Group(g) {
			t.AddMetaNode(g, fmt.Sprintf("%s: %s", kv.Key, kv.Value))
		}
	}
}

func nodeLabel(sn *styledtree.StyNode) string {
	e := sn.Element()
	return elementLabel(e.TagName, e.ElementID, e.CSSClass, e.TextContent.Text())
}
