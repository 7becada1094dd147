/*
Package graph assembles the parse graph from an edge-id sequence (as
produced by package backward) via lookups into a DataFile's null_edges and
char_edges tables.

For each column i in [0, n], edge-set edge_ids[i] contributes vertices at
column i (via its null_edges, which stay within the column) and edges from
column i to column i+1 (via its char_edges). Columns are glued by the
generator's own guarantee that a char_edge's To-vertex at position i
equals a From-vertex appearing in edge-set edge_ids[i+1]; resolvers may
assume this without re-checking it.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2021–2026 The parselov authors.
*/
package graph

import (
	"github.com/npillmayer/schuko/tracing"

	"github.com/corvidae/parselov/datafile"
)

// tracer traces with key 'parselov.graph'.
func tracer() tracing.Trace {
	return tracing.Select("parselov.graph")
}

// Stream is the EdgeStream: the edge-id sequence plus a handle on the
// DataFile needed to resolve it into vertices and edges.
type Stream struct {
	DF      *datafile.DataFile
	EdgeIDs []int // length n+1
}

// New wraps an edge-id sequence together with the DataFile it indexes into.
func New(df *datafile.DataFile, edgeIDs []int) Stream {
	return Stream{DF: df, EdgeIDs: edgeIDs}
}

// Len returns n, the number of input positions (columns 0..n exist).
func (s Stream) Len() int {
	if len(s.EdgeIDs) == 0 {
		return 0
	}
	return len(s.EdgeIDs) - 1
}

// Successor is one outgoing edge from a (column, vertex) pair, tagged with
// whether taking it consumes an input position.
type Successor struct {
	Edge      datafile.Edge
	Char      bool // true: char_edge (consumes a position); false: null_edge
	SortKey   int
	NullIndex int // tie-break: order of appearance within null_edges, when Char is false
	CharIndex int // tie-break: order of appearance within char_edges, when Char is true
}

// SuccessorsAt gathers the successors of vertex v at column (offset). Null
// successors are listed before char successors, matching "the source
// convention [that] orders null first in the combined list" (spec §4.6);
// callers that need sort_key ordering should sort this slice stably, which
// preserves that null-before-char tiebreak for equal keys.
func (s Stream) SuccessorsAt(offset, v int) []Successor {
	if offset < 0 || offset >= len(s.EdgeIDs) {
		return nil
	}
	e := s.EdgeIDs[offset]
	var out []Successor
	for i, edge := range s.DF.NullEdges[e] {
		if edge.From != v {
			continue
		}
		out = append(out, Successor{
			Edge:      edge,
			Char:      false,
			SortKey:   s.DF.Vertex(edge.To).SortKey,
			NullIndex: i,
		})
	}
	for i, edge := range s.DF.CharEdges[e] {
		if edge.From != v {
			continue
		}
		out = append(out, Successor{
			Edge:      edge,
			Char:      true,
			SortKey:   s.DF.Vertex(edge.To).SortKey,
			CharIndex: i,
		})
	}
	return out
}

// TerminalEdgeSet returns the edge-set ID at column n, the terminal
// edge-set attached to the final accepting forward state.
func (s Stream) TerminalEdgeSet() int {
	if len(s.EdgeIDs) == 0 {
		return 0
	}
	return s.EdgeIDs[len(s.EdgeIDs)-1]
}
