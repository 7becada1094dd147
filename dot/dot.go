/*
Package dot renders a parselov parse graph as GraphViz text — a reference
consumer of the graph package, used for inspecting what a DataFile and an
input produced before (or instead of) running a resolver.

Format, per the parent module's external-interfaces section:

  - one `"<col>,<vid>" -> "<col>,<vid>";` line per edge
  - per-vertex label lines `"<col>,<vid>"[label="<type> <text|vid>"];`
  - null edges stay within a column; char edges cross to col+1

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2021–2026 The parselov authors.
*/
package dot

import (
	"bytes"
	"fmt"
	"io"
	"sort"

	"github.com/corvidae/parselov/datafile"
	"github.com/corvidae/parselov/graph"
)

// vkey identifies a vertex at a column, the DOT node name "<col>,<vid>".
type vkey struct {
	col int
	vid int
}

func (k vkey) String() string {
	return fmt.Sprintf("%d,%d", k.col, k.vid)
}

// Write renders the parse graph encoded by s as GraphViz DOT text to w.
func Write(w io.Writer, s graph.Stream) error {
	var buf bytes.Buffer
	buf.WriteString("digraph parse_graph {\n")

	seen := map[vkey]bool{}
	var labelLines []string
	var edgeLines []string

	n := s.Len()
	for col := 0; col <= n; col++ {
		e := s.EdgeIDs[col]
		for _, edge := range s.DF.NullEdges[e] {
			from, to := vkey{col, edge.From}, vkey{col, edge.To}
			recordVertex(s.DF, seen, from, &labelLines)
			recordVertex(s.DF, seen, to, &labelLines)
			edgeLines = append(edgeLines, fmt.Sprintf("\t%q -> %q;", from, to))
		}
		if col == n {
			continue // char_edges of the terminal edge-set cross past the end; nothing to draw
		}
		for _, edge := range s.DF.CharEdges[e] {
			from, to := vkey{col, edge.From}, vkey{col + 1, edge.To}
			recordVertex(s.DF, seen, from, &labelLines)
			recordVertex(s.DF, seen, to, &labelLines)
			edgeLines = append(edgeLines, fmt.Sprintf("\t%q -> %q;", from, to))
		}
	}

	sort.Strings(labelLines)
	for _, l := range labelLines {
		buf.WriteString(l)
		buf.WriteByte('\n')
	}
	for _, l := range edgeLines {
		buf.WriteString(l)
		buf.WriteByte('\n')
	}
	buf.WriteString("}\n")
	_, err := w.Write(buf.Bytes())
	return err
}

func recordVertex(df *datafile.DataFile, seen map[vkey]bool, k vkey, labelLines *[]string) {
	if seen[k] {
		return
	}
	seen[k] = true
	v := df.Vertex(k.vid)
	label := v.Text
	if label == "" {
		label = fmt.Sprintf("%d", v.ID)
	}
	kind := v.Kind.String()
	var text string
	if kind == "" {
		text = label
	} else {
		text = kind + " " + label
	}
	*labelLines = append(*labelLines, fmt.Sprintf("\t%q[label=%q];", k, text))
}
