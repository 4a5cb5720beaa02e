package report

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"

	"github.com/npillmayer/layoutcompare/styletree"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

const stylesheet = `
dl { margin: 0 0 0.5em 0; }
dt { float: left; clear: left; width: 10em; color: #555; }
dd { margin-left: 10.5em; }
dt.error, dd.error { color: #b00; font-weight: bold; }
dd.Null { color: #999; }
.FAIL { color: #b00; }
.SUCCESS { color: #070; }
`

// HTML writes a comparison result as an HTML document. The diff tree is
// rendered in its nested array form: arrays become ordered lists, records
// become definition lists. Every dt and dd element carries the record key
// as class; dd elements additionally carry the JSON type of the value
// (String, Number, Boolean, Null, Array, Object).
func HTML(w io.Writer, result *styletree.Result, opts Options) error {
	root := result.Root
	if opts.OnlyChanges {
		root = Prune(root)
	}
	data, err := json.Marshal(styletree.Legacy(root))
	if err != nil {
		return err
	}
	body, _, err := JSONToHTML(data)
	if err != nil {
		return err
	}
	summary := result.Summary()
	title := opts.Title
	if title == "" {
		title = "Style comparison"
	}
	doc := &html.Node{Type: html.DocumentNode}
	doc.AppendChild(&html.Node{Type: html.DoctypeNode, Data: "html"})
	htmlElem := element(atom.Html, "")
	head := element(atom.Head, "")
	meta := element(atom.Meta, "")
	meta.Attr = []html.Attribute{{Key: "charset", Val: "utf-8"}}
	head.AppendChild(meta)
	head.AppendChild(withText(element(atom.Title, ""), title))
	head.AppendChild(withText(element(atom.Style, ""), stylesheet))
	htmlElem.AppendChild(head)
	bodyElem := element(atom.Body, "")
	bodyElem.AppendChild(withText(element(atom.H1, ""), title))
	bodyElem.AppendChild(withText(element(atom.P, "summary "+summary.Verdict()), summary.String()))
	bodyElem.AppendChild(body)
	htmlElem.AppendChild(bodyElem)
	doc.AppendChild(htmlElem)
	tracer().Debugf("rendering HTML report %q", title)
	return html.Render(w, doc)
}

// JSONToHTML converts a JSON value into an HTML fragment, returning the
// fragment's root node and the JSON type of the value.
func JSONToHTML(data []byte) (*html.Node, string, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	return decodeValue(dec)
}

func decodeValue(dec *json.Decoder) (*html.Node, string, error) {
	tok, err := dec.Token()
	if err != nil {
		return nil, "", err
	}
	switch v := tok.(type) {
	case json.Delim:
		switch v {
		case '[':
			ol := element(atom.Ol, "")
			for dec.More() {
				item, _, err := decodeValue(dec)
				if err != nil {
					return nil, "", err
				}
				li := element(atom.Li, "")
				li.AppendChild(item)
				ol.AppendChild(li)
			}
			_, err = dec.Token()
			return ol, "Array", err
		case '{':
			dl := element(atom.Dl, "")
			for dec.More() {
				keytok, err := dec.Token()
				if err != nil {
					return nil, "", err
				}
				key := keytok.(string)
				value, typ, err := decodeValue(dec)
				if err != nil {
					return nil, "", err
				}
				dl.AppendChild(withText(element(atom.Dt, key), key))
				dd := element(atom.Dd, key+" "+typ)
				dd.AppendChild(value)
				dl.AppendChild(dd)
			}
			_, err = dec.Token()
			return dl, "Object", err
		}
		return nil, "", fmt.Errorf("unexpected JSON delimiter %v", v)
	case string:
		return withText(element(atom.Span, "String"), v), "String", nil
	case json.Number:
		return withText(element(atom.Span, "Number"), v.String()), "Number", nil
	case bool:
		return withText(element(atom.Span, "Boolean"), fmt.Sprintf("%v", v)), "Boolean", nil
	case nil:
		return withText(element(atom.Span, "Null"), "null"), "Null", nil
	}
	return nil, "", fmt.Errorf("unexpected JSON token %v", tok)
}

func element(a atom.Atom, class string) *html.Node {
	n := &html.Node{Type: html.ElementNode, DataAtom: a, Data: a.String()}
	if class != "" {
		n.Attr = []html.Attribute{{Key: "class", Val: class}}
	}
	return n
}

func withText(n *html.Node, text string) *html.Node {
	n.AppendChild(&html.Node{Type: html.TextNode, Data: text})
	return n
}
