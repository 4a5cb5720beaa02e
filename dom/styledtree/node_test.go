package styledtree

import (
	"testing"

	"github.com/npillmayer/layoutcompare/dom/snapshot"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

const doc = `[{
    "tagName": "BODY",
    "style": { "color": "red" },
    "_childElementInfo": [
        { "tagName": "DIV", "style": { "color": "inherit" } },
        { "tagName": "DIV", "style": { "color": "inherit" }, "_childElementInfo": [
            { "tagName": "P", "style": { "color": "inherit", "cursor": "auto" } }
        ]}
    ]
}]`

func TestStyledTreeFromSnapshot(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "layoutcompare.dom")
	defer teardown()
	//
	root, err := snapshot.Unmarshal([]byte(doc))
	if err != nil {
		t.Fatal(err)
	}
	sroot := FromSnapshot(root)
	if sroot.Rank != 4 {
		t.Errorf("expected rank of root to be 4, is %d", sroot.Rank)
	}
	divs := sroot.ChildNodes()
	if len(divs) != 2 {
		t.Fatalf("expected 2 children of root, have %d", len(divs))
	}
	p := divs[1].ChildNodes()[0]
	if path := p.Path(); path != "BODY/DIV[1]/P[0]" {
		t.Errorf("unexpected path %q", path)
	}
	if c := p.GetPropertyValue("color"); c != "red" {
		t.Errorf("expected color to be inherited from BODY, is %q", c)
	}
	if c := p.GetPropertyValue("cursor"); c != "auto" {
		t.Errorf("expected cursor to be auto, is %q", c)
	}
	if c := divs[0].GetPropertyValue("cursor"); c != "" {
		t.Errorf("did not expect cursor to cascade, is %q", c)
	}
	if p.ParentNode() != divs[1] {
		t.Error("expected parent of P to be second DIV")
	}
	if FromSnapshot(nil) != nil {
		t.Error("expected nil styled tree for nil snapshot")
	}
}
