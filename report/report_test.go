package report

import (
	"bytes"
	"strings"
	"testing"

	"github.com/npillmayer/layoutcompare/dom/style"
	"github.com/npillmayer/layoutcompare/styletree"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"golang.org/x/net/html"
)

const page1 = `[{
    "tagName": "BODY", "textContent": "Press me",
    "style": { "color": "black" },
    "_childElementInfo": [
        { "tagName": "P", "textContent": "Press", "style": { "margin-top": "12px" } },
        { "tagName": "BUTTON", "cssclass": "btn  primary", "textContent": "me",
          "style": { "background-color": "#ffffff", "margin-top": "12px" } }
    ]
}]`

const page2 = `[{
    "tagName": "BODY", "textContent": "Press me",
    "style": { "color": "black" },
    "_childElementInfo": [
        { "tagName": "P", "textContent": "Press", "style": { "margin-top": "12px" } },
        { "tagName": "BUTTON", "cssclass": "btn", "textContent": "me",
          "style": { "background-color": "transparent", "margin-top": "16px" } }
    ]
}]`

func compareResult(t *testing.T) *styletree.Result {
	t.Helper()
	st1, err := styletree.Load(strings.NewReader(page1))
	if err != nil {
		t.Fatal(err)
	}
	st2, err := styletree.Load(strings.NewReader(page2))
	if err != nil {
		t.Fatal(err)
	}
	result, err := st1.CompareTo(st2, []string{"tagName", "textContent"})
	if err != nil {
		t.Fatal(err)
	}
	return result
}

func TestTextReport(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "layoutcompare.report")
	defer teardown()
	//
	result := compareResult(t)
	var buf bytes.Buffer
	if err := Text(&buf, result, Options{}); err != nil {
		t.Fatal(err)
	}
	out := buf.String()
	t.Logf("\n%s", out)
	for _, expected := range []string{
		`BODY`,
		`P "Press"`,
		`[FAIL]  BUTTON.btn.primary "me"`,
		`[error]  background-color: rgba(255,255,255,255) → rgba(0,0,0,0)`,
		`margin-top: 12px → 16px  (Δ 3.00pt)`,
		style.PGColor,
		style.PGMargins,
		"FAIL: 3 elements",
	} {
		if !strings.Contains(out, expected) {
			t.Errorf("expected text report to contain %q", expected)
		}
	}
	buf.Reset()
	if err := Text(&buf, result, Options{OnlyChanges: true}); err != nil {
		t.Fatal(err)
	}
	if strings.Contains(buf.String(), `P "Press"`) {
		t.Errorf("expected unchanged P to be pruned, have\n%s", buf.String())
	}
}

func TestHTMLReport(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "layoutcompare.report")
	defer teardown()
	//
	result := compareResult(t)
	var buf bytes.Buffer
	if err := HTML(&buf, result, Options{Title: "home <desktop>", OnlyChanges: true}); err != nil {
		t.Fatal(err)
	}
	out := buf.String()
	for _, expected := range []string{
		`<!DOCTYPE html>`,
		`<title>home &lt;desktop&gt;</title>`,
		`<p class="summary FAIL">`,
		`<dt class="errorList">errorList</dt>`,
		`<dd class="errorList Array"><ol><li><span class="String">background-color</span></li></ol></dd>`,
		`<dd class="error Boolean"><span class="Boolean">true</span></dd>`,
	} {
		if !strings.Contains(out, expected) {
			t.Errorf("expected HTML report to contain %q", expected)
		}
	}
	if _, err := html.Parse(strings.NewReader(out)); err != nil {
		t.Errorf("HTML report does not parse: %v", err)
	}
}

func TestJSONToHTMLTypes(t *testing.T) {
	n, typ, err := JSONToHTML([]byte(`{"a": [1, null, "<x>"]}`))
	if err != nil {
		t.Fatal(err)
	}
	if typ != "Object" {
		t.Errorf("expected Object, have %s", typ)
	}
	var buf bytes.Buffer
	if err := html.Render(&buf, n); err != nil {
		t.Fatal(err)
	}
	expected := `<dl><dt class="a">a</dt><dd class="a Array"><ol><li><span class="Number">1</span></li>` +
		`<li><span class="Null">null</span></li><li><span class="String">&lt;x&gt;</span></li></ol></dd></dl>`
	if buf.String() != expected {
		t.Errorf("unexpected HTML\n%s", buf.String())
	}
	if _, _, err := JSONToHTML([]byte(`{"a": `)); err == nil {
		t.Error("expected error for truncated JSON")
	}
}

func TestSafeFilename(t *testing.T) {
	for in, out := range map[string]string{
		"home page":         "home_page",
		"#main > nav (top)": "_main___nav__top_",
		"a/b\\c:d|e?f":      "a_b_c_d_e_f",
		"plain-name.json":   "plain-name.json",
	} {
		if s := SafeFilename(in); s != out {
			t.Errorf("expected %q for %q, have %q", out, in, s)
		}
	}
}

func TestPruneKeepsRoot(t *testing.T) {
	root := &styletree.DiffNode{Record: &styletree.DiffRecord{Found: true}}
	root.Children = []*styletree.DiffNode{{Record: &styletree.DiffRecord{Found: true}}}
	pruned := Prune(root)
	if pruned == nil || len(pruned.Children) != 0 {
		t.Errorf("expected root without children, have %v", pruned)
	}
}
