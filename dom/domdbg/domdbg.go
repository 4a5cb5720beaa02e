/*
Package domdbg implements helpers to debug a styled element tree.

______________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>


*/
package domdbg

import (
	"fmt"
	"io"
	"strings"
	"text/template"

	"github.com/npillmayer/layoutcompare/dom/style"
	"github.com/npillmayer/layoutcompare/dom/styledtree"
)

// Parameters for GraphViz drawing.
type graphParamsType struct {
	Fontname       string
	StyleGroups    []string
	Highlight      map[*styledtree.StyNode]bool
	NodeTmpl       *template.Template
	EdgeTmpl       *template.Template
	StylegroupTmpl *template.Template
	PgedgeTmpl     *template.Template
	PgpgTmpl       *template.Template
}

// DefaultGroups are the style groups drawn if the client does not name any.
var DefaultGroups = []string{
	style.PGMargins,
	style.PGPadding,
	style.PGBorder,
	style.PGDisplay,
}

// ToGraphViz outputs a diagram for a styled tree. The diagram is in
// GraphViz (DOT) format. Clients have to provide the root node of
// the tree, a Writer, and an optional list of style parameter groups.
// The diagram will include all styles belonging to one of the
// parameter groups. Nodes given as highlight are drawn in a signal color.
//
// If the client does not provide a list of style groups, the following
// default will be used:
//
//     - Margins
//     - Padding
//     - Border
//     - Display
//
func ToGraphViz(root *styledtree.StyNode, w io.Writer, styleGroups []string,
	highlight ...*styledtree.StyNode) error {
	//
	tmpl, err := template.New("dom").Parse(graphHeadTmpl)
	if err != nil {
		return err
	}
	gparams := graphParamsType{Fontname: "Helvetica"}
	gparams.NodeTmpl = template.Must(template.New("domnode").Funcs(
		template.FuncMap{
			"shortstring": shortText,
		}).Parse(domNodeTmpl))
	gparams.EdgeTmpl = template.Must(template.New("domedge").Parse(domEdgeTmpl))
	gparams.StylegroupTmpl = template.Must(template.New("stylegroup").Parse(styleGroupTmpl))
	gparams.PgedgeTmpl = template.Must(template.New("pgedge").Parse(pgEdgeTmpl))
	gparams.PgpgTmpl = template.Must(template.New("pgpgedge").Parse(pgpgEdgeTmpl))
	gparams.StyleGroups = styleGroups
	if styleGroups == nil {
		gparams.StyleGroups = DefaultGroups
	}
	gparams.Highlight = make(map[*styledtree.StyNode]bool, len(highlight))
	for _, h := range highlight {
		gparams.Highlight[h] = true
	}
	if err = tmpl.Execute(w, gparams); err != nil {
		return err
	}
	dict := make(map[*styledtree.StyNode]string, 4096)
	if err = nodes(root, w, dict, &gparams); err != nil {
		return err
	}
	_, err = w.Write([]byte("}\n"))
	return err
}

type node struct {
	N         *styledtree.StyNode
	Name      string
	Highlight bool
}

func nodes(n *styledtree.StyNode, w io.Writer, dict map[*styledtree.StyNode]string,
	gparams *graphParamsType) error {
	//
	if err := domNode(n, w, dict, gparams); err != nil {
		return err
	}
	for _, ch := range n.ChildNodes() {
		if err := nodes(ch, w, dict, gparams); err != nil {
			return err
		}
		if err := domEdge(n, ch, w, dict, gparams); err != nil {
			return err
		}
	}
	return nil
}

func domNode(n *styledtree.StyNode, w io.Writer, dict map[*styledtree.StyNode]string,
	gparams *graphParamsType) error {
	//
	name := dict[n]
	if name == "" {
		l := len(dict) + 1
		name = fmt.Sprintf("node%05d", l)
		dict[n] = name
	}
	if err := gparams.NodeTmpl.Execute(w, &node{n, name, gparams.Highlight[n]}); err != nil {
		return err
	}
	return domStyles(n, w, dict, gparams)
}

// propertyGroup is a named group of style properties of a single node.
type propertyGroup struct {
	ID         string
	Name       string
	Properties []style.KeyValue
}

func domStyles(n *styledtree.StyNode, w io.Writer, dict map[*styledtree.StyNode]string,
	gparams *graphParamsType) error {
	//
	var prev *propertyGroup
	for _, s := range gparams.StyleGroups {
		props := n.Styles().Group(s)
		if len(props) == 0 {
			continue
		}
		pg := &propertyGroup{ID: dict[n] + "_" + s, Name: s, Properties: props}
		if err := gparams.StylegroupTmpl.Execute(w, pg); err != nil {
			return err
		}
		var err error
		if prev == nil {
			err = gparams.PgedgeTmpl.Execute(w, pgedge{dict[n], pg})
		} else {
			err = gparams.PgpgTmpl.Execute(w, []*propertyGroup{prev, pg})
		}
		if err != nil {
			return err
		}
		prev = pg
	}
	return nil
}

type edge struct {
	N1, N2 node
}

func domEdge(n1 *styledtree.StyNode, n2 *styledtree.StyNode, w io.Writer,
	dict map[*styledtree.StyNode]string, gparams *graphParamsType) error {
	//
	e := edge{node{N: n1, Name: dict[n1]}, node{N: n2, Name: dict[n2]}}
	return gparams.EdgeTmpl.Execute(w, e)
}

type pgedge struct {
	Name      string
	PropGroup *propertyGroup
}

func shortText(n *styledtree.StyNode) string {
	e := n.Element()
	label := e.TagName.Text()
	if e.ElementID.Text() != "" {
		label += "#" + e.ElementID.Text()
	}
	text := strings.Join(strings.Fields(e.TextContent.Text()), " ")
	if len([]rune(text)) > 10 {
		text = string([]rune(text)[:10]) + "..."
	}
	if text != "" {
		label += "\n" + text
	}
	return fmt.Sprintf("%q", label)
}

// --- Templates --------------------------------------------------------

const graphHeadTmpl = `digraph g {
  graph [labelloc="t" label="" splines=true overlap=false rankdir = "LR"];
  graph [fontname = "{{ .Fontname }}" fontsize=14] ;
   node [fontname = "{{ .Fontname }}" fontsize=14] ;
   edge [fontname = "{{ .Fontname }}" fontsize=14] ;
`

const domNodeTmpl = `{{ .Name }}	[ label={{ shortstring .N }} shape=ellipse style=filled fillcolor={{ if .Highlight }}orange{{ else }}lightblue3{{ end }} ] ;
`

const styleGroupTmpl = `{{ .ID }} [ style="filled" penwidth=1 fillcolor="ivory3" shape="Mrecord" fontsize=12
    label=<<table border="0" cellborder="0" cellpadding="2" cellspacing="0" bgcolor="ivory3">
      <tr><td bgcolor="azure4" align="center" colspan="2"><font color="white">{{ .Name }}</font></td></tr>
      {{ range .Properties }}
      <tr><td align="right">{{ .Key }}:</td><td>{{ .Value }}</td></tr>
      {{ else }}
      <tr><td colspan="2">no styles</td></tr>
      {{ end }}
    </table>> ] ;
`

const domEdgeTmpl = `{{ .N1.Name }} -> {{ .N2.Name }} [weight=1] ;
`

const pgEdgeTmpl = `{{ .Name }} -> {{ .PropGroup.ID }} [dir=none weight=1 style="dashed"] ;
`

const pgpgEdgeTmpl = `{{ (index . 0).ID }} -> {{ (index . 1).ID }} [dir=none weight=1 style="dashed"] ;
`
