package dom

import (
	"testing"

	"github.com/npillmayer/layoutcompare/dom/snapshot"
	"github.com/npillmayer/layoutcompare/dom/styledtree"
	"github.com/npillmayer/layoutcompare/tree"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

const doc = `[{
    "tagName": "BODY",
    "style": { "color": "red" },
    "_childElementInfo": [
        { "tagName": "DIV", "cssclass": "a", "style": { "cursor": "auto" } },
        { "tagName": "DIV", "cssclass": "b", "_childElementInfo": [
            { "tagName": "DIV", "cssclass": "a" }
        ]}
    ]
}]`

func TestSelectByCriteria(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "layoutcompare.dom")
	defer teardown()
	//
	root, err := snapshot.Unmarshal([]byte(doc))
	if err != nil {
		t.Fatal(err)
	}
	sroot := styledtree.FromSnapshot(root)
	c := snapshot.Criteria{}.With(snapshot.TagName, "DIV").With(snapshot.CSSClass, "a")
	nodes, err := Select(sroot, NodeMatches(c))
	if err != nil {
		t.Fatal(err)
	}
	if len(nodes) != 2 {
		t.Fatalf("expected 2 matching nodes, have %d", len(nodes))
	}
	if nodes[0].Path() != "BODY/DIV[0]" || nodes[1].Path() != "BODY/DIV[1]/DIV[0]" {
		t.Errorf("expected matches in document order, have %s and %s", nodes[0].Path(), nodes[1].Path())
	}
	nodes, _ = Select(sroot, NodeMatches(c), NodeHasStyle("cursor"))
	if len(nodes) != 1 {
		t.Errorf("expected 1 node with cursor style, have %d", len(nodes))
	}
	all, _ := Select(sroot)
	if len(all) != 4 {
		t.Errorf("expected 4 nodes without predicates, have %d", len(all))
	}
}

func TestDescendentsWithCriteria(t *testing.T) {
	root, _ := snapshot.Unmarshal([]byte(doc))
	sroot := styledtree.FromSnapshot(root)
	c := snapshot.Criteria{}.With(snapshot.TagName, "BODY")
	nodes, err := tree.NewWalker(&sroot.Node).DescendentsWith(NodeMatches(c)).Nodes()
	if err != nil {
		t.Fatal(err)
	}
	if len(nodes) != 0 {
		t.Errorf("expected descendents search to exclude the start node, have %d", len(nodes))
	}
}
