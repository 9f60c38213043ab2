/*
Package domdbg implements helpers to debug a styled DOM tree.

______________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>


*/
package domdbg

import (
	"fmt"
	"io"
	"os"
	"os/exec"
	"strings"
	"testing"
	"text/template"

	"github.com/npillmayer/cascade/dom"
	"github.com/npillmayer/cascade/dom/style"
	"github.com/npillmayer/cascade/dom/styledtree"
	"github.com/xlab/treeprint"
	"golang.org/x/net/html"
)

// A StyleGroup names a set of style properties which will be rendered
// as one record, attached to the DOM node the styles apply to.
type StyleGroup struct {
	Name  string
	Props []style.PropertyID
}

var defaultGroups = []StyleGroup{
	{Name: "Display", Props: []style.PropertyID{
		style.PropDisplay, style.PropPosition, style.PropFloat, style.PropVisibility,
	}},
	{Name: "Margins", Props: []style.PropertyID{
		style.PropMarginTop, style.PropMarginRight, style.PropMarginBottom, style.PropMarginLeft,
	}},
	{Name: "Padding", Props: []style.PropertyID{
		style.PropPaddingTop, style.PropPaddingRight, style.PropPaddingBottom, style.PropPaddingLeft,
	}},
	{Name: "Border", Props: []style.PropertyID{
		style.PropBorderTopWidth, style.PropBorderRightWidth,
		style.PropBorderBottomWidth, style.PropBorderLeftWidth,
		style.PropBorderTopColor,
	}},
	{Name: "Text", Props: []style.PropertyID{
		style.PropColor, style.PropFontSize, style.PropFontFamily, style.PropLineHeight,
	}},
}

// Parameters for GraphViz drawing.
type graphParamsType struct {
	Fontname       string
	StyleGroups    []StyleGroup
	NodeTmpl       *template.Template
	EdgeTmpl       *template.Template
	StylegroupTmpl *template.Template
	PgedgeTmpl     *template.Template
	PgpgTmpl       *template.Template
}

// ToGraphViz outputs a diagram for a DOM tree. The diagram is in
// GraphViz (DOT) format. Clients have to provide the root node of
// the DOM, a Writer, and an optional list of style groups. The diagram
// will include the computed values for all properties belonging to one
// of the groups, with inherited values shaded.
//
// If the client does not provide a list of style groups, the following
// default will be used:
//
//	- Display
//	- Margins
//	- Padding
//	- Border
//	- Text
func ToGraphViz(doc *dom.W3CNode, w io.Writer, styleGroups []StyleGroup) {
	tmpl, err := template.New("dom").Parse(graphHeadTmpl)
	if err != nil {
		panic(err)
	}
	gparams := graphParamsType{Fontname: "Helvetica"}
	gparams.NodeTmpl, _ = template.New("domnode").Funcs(
		template.FuncMap{
			"shortstring": shortText,
		}).Parse(domNodeTmpl)
	gparams.EdgeTmpl = template.Must(template.New("domedge").Parse(domEdgeTmpl))
	gparams.StylegroupTmpl = template.Must(template.New("stylegroup").Parse(styleGroupTmpl))
	gparams.PgedgeTmpl = template.Must(template.New("pgedge").Parse(pgEdgeTmpl))
	gparams.PgpgTmpl = template.Must(template.New("pgpgedge").Parse(pgpgEdgeTmpl))
	gparams.StyleGroups = styleGroups
	if styleGroups == nil {
		gparams.StyleGroups = defaultGroups
	}
	err = tmpl.Execute(w, gparams)
	if err != nil {
		panic(err)
	}
	dict := make(map[*html.Node]string, 4096)
	nodes(doc, w, dict, &gparams)
	w.Write([]byte("}\n"))
}

// Dotty is a helper for testing. Given a DOM node and a testing.T, it will
// create a Graphiviz image of the DOM tree under `doc` and write it to
// a file in the current folder, choosing a unique file name.
// The image is in SVG format.
//
// If an error occurs, t.Error(…) will be set, causing the test to fail.
func Dotty(doc *dom.W3CNode, t *testing.T) {
	tmpfile, err := os.CreateTemp(".", "dom.*.dot")
	if err != nil {
		t.Error(err)
		return
	}
	defer func() {
		tmpfile.Close()
		os.Remove(tmpfile.Name()) // clean up
	}()
	t.Logf("writing DOM digraph to %s\n", tmpfile.Name())
	ToGraphViz(doc, tmpfile, nil)
	outOption := fmt.Sprintf("-o%s.svg", tmpfile.Name())
	cmd := exec.Command("dot", "-Tsvg", outOption, tmpfile.Name())
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	t.Log("writing DOM tree image to tree.svg\n")
	if err := cmd.Run(); err != nil {
		t.Error(err.Error())
	}
}

// TreeText returns a textual rendering of the DOM tree under doc, one
// line per node. Element lines carry the display mode symbol of the
// node, text lines a shortened excerpt of their content.
func TreeText(doc *dom.W3CNode) string {
	p := treeprint.New()
	dumpNode(p, doc)
	return p.String()
}

func dumpNode(p treeprint.Tree, n *dom.W3CNode) {
	if n == nil {
		return
	}
	if !n.HasChildNodes() {
		p.AddNode(treeLabel(n))
		return
	}
	branch := p.AddBranch(treeLabel(n))
	for c := n.FirstChild(); c != nil; {
		w := c.(*dom.W3CNode)
		dumpNode(branch, w)
		c = w.NextSibling()
	}
}

func treeLabel(n *dom.W3CNode) string {
	if n.NodeType() == html.TextNode {
		s := n.NodeValue()
		if len(s) > 10 {
			s = s[:10] + "..."
		}
		return fmt.Sprintf("%q", s)
	}
	name := n.NodeName()
	if id := n.Attributes().GetNamedItem("id"); id != nil {
		name += "#" + id.Value()
	}
	return n.DisplayMode().Symbol() + " " + name
}

// --- DOT output ------------------------------------------------------

type node struct {
	N    *dom.W3CNode
	Name string
}

func nodes(n *dom.W3CNode, w io.Writer, dict map[*html.Node]string, gparams *graphParamsType) {
	domNode(n, w, dict, gparams)
	if n.HasChildNodes() {
		ch := n.FirstChild().(*dom.W3CNode)
		for ch != nil {
			nodes(ch, w, dict, gparams)
			domEdge(n, ch, w, dict, gparams)
			c := ch.NextSibling()
			if c != nil {
				ch = c.(*dom.W3CNode)
			} else {
				ch = nil
			}
		}
	}
}

func domNode(n *dom.W3CNode, w io.Writer, dict map[*html.Node]string, gparams *graphParamsType) {
	name := dict[n.HTMLNode()]
	if name == "" {
		l := len(dict) + 1
		name = fmt.Sprintf("node%05d", l)
		dict[n.HTMLNode()] = name
	}
	if err := gparams.NodeTmpl.Execute(w, &node{n, name}); err != nil {
		panic(err)
	}
	if n.NodeType() == html.ElementNode {
		domStyles(n, w, dict, gparams)
	}
}

// A table of computed property values, rendered as one record node.
type styleTable struct {
	Name       string
	Properties []propEntry
}

type propEntry struct {
	Key       string
	Value     string
	Inherited bool
}

func domStyles(n *dom.W3CNode, w io.Writer, dict map[*html.Node]string, gparams *graphParamsType) {
	var prev *styleTable
	for _, g := range gparams.StyleGroups {
		table := styleTableFor(n, g)
		if table == nil {
			continue
		}
		if err := gparams.StylegroupTmpl.Execute(w, table); err != nil {
			panic(err)
		}
		if prev == nil {
			pgEdge(n, table, w, dict, gparams)
		} else {
			pgpgEdge(prev, table, w, dict, gparams)
		}
		prev = table
	}
}

func styleTableFor(n *dom.W3CNode, g StyleGroup) *styleTable {
	table := &styleTable{Name: g.Name}
	rec := styledtree.Node(n.TreeNode()).Resolved()
	cs := n.ComputedStyles()
	for _, p := range g.Props {
		v := cs.Property(p)
		if v.IsEmpty() {
			continue
		}
		inherited := false
		if e, ok := rec.Entry(p); ok {
			inherited = e.Inherited
		}
		table.Properties = append(table.Properties, propEntry{
			Key:       p.String(),
			Value:     v.String(),
			Inherited: inherited,
		})
	}
	if len(table.Properties) == 0 {
		return nil
	}
	return table
}

type edge struct {
	N1, N2 node
}

func domEdge(n1 *dom.W3CNode, n2 *dom.W3CNode, w io.Writer, dict map[*html.Node]string,
	gparams *graphParamsType) {
	//
	name1 := dict[n1.HTMLNode()]
	name2 := dict[n2.HTMLNode()]
	e := edge{node{n1, name1}, node{n2, name2}}
	if err := gparams.EdgeTmpl.Execute(w, e); err != nil {
		panic(err)
	}
}

type pgedge struct {
	Name  string
	Table *styleTable
}

func pgEdge(n *dom.W3CNode, table *styleTable, w io.Writer, dict map[*html.Node]string,
	gparams *graphParamsType) {
	//
	name := dict[n.HTMLNode()]
	if err := gparams.PgedgeTmpl.Execute(w, pgedge{name, table}); err != nil {
		panic(err)
	}
}

func pgpgEdge(table1 *styleTable, table2 *styleTable, w io.Writer,
	dict map[*html.Node]string, gparams *graphParamsType) {
	//
	if err := gparams.PgpgTmpl.Execute(w, []*styleTable{table1, table2}); err != nil {
		panic(err)
	}
}

func shortText(n *dom.W3CNode) string {
	h := n.HTMLNode()
	s := "\"\\\""
	if len(h.Data) > 10 {
		s += h.Data[:10] + "...\\\"\""
	} else {
		s += h.Data + "\\\"\""
	}
	s = strings.Replace(s, "\n", `\\n`, -1)
	s = strings.Replace(s, "\t", `\\t`, -1)
	s = strings.Replace(s, " ", "␣", -1)
	return s
}

// --- Templates --------------------------------------------------------

const graphHeadTmpl = `digraph g {
  graph [labelloc="t" label="" splines=true overlap=false rankdir = "LR"];
  graph [fontname = "{{ .Fontname }}" fontsize=14] ;
   node [fontname = "{{ .Fontname }}" fontsize=14] ;
   edge [fontname = "{{ .Fontname }}" fontsize=14] ;
`

const domNodeTmpl = `{{ if eq .N.NodeName "#text" }}
{{ .Name }}	[ label={{ shortstring .N }} shape=box style=filled fillcolor=grey95 fontname="Courier" fontsize=11.0 ] ;
{{ else }}
{{ .Name }}	[ label={{ printf "%q" .N.NodeName }} shape=ellipse style=filled fillcolor=lightblue3 ] ;
{{ end }}
`

const styleGroupTmpl = `{{ printf "pg%p" . }} [ style="filled" penwidth=1 fillcolor="ivory3" shape="Mrecord" fontsize=12
    label=<<table border="0" cellborder="0" cellpadding="2" cellspacing="0" bgcolor="ivory3">
      <tr><td bgcolor="azure4" align="center" colspan="2"><font color="white">{{ .Name }}</font></td></tr>
      {{ range .Properties }}
      <tr><td align="right">{{ .Key }}:</td><td>{{ if .Inherited }}<font color="gray40">{{ .Value }}</font>{{ else }}{{ .Value }}{{ end }}</td></tr>
      {{ else }}
      <tr><td colspan="2">no styles</td></tr>
      {{ end }}
    </table>> ] ;
`

const domEdgeTmpl = `{{ .N1.Name }} -> {{ .N2.Name }} [weight=1] ;
`

const pgEdgeTmpl = `{{ .Name }} -> {{ printf "pg%p" .Table }} [dir=none weight=1 style="dashed"] ;
`

const pgpgEdgeTmpl = `{{ index . 0 | printf "pg%p"  }} -> {{ index . 1 | printf "pg%p" }} [dir=none weight=1 style="dashed"] ;
`
