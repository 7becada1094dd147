/*
Package stackgraph implements the shared stack-graph structure used by
package parallel to represent every live stack configuration of a
non-deterministic pushdown simulation at once, instead of forking an
explicit stack per alternative.

A stack graph's vertex set is exactly the parse-graph's vertex set
(possibly projected through a DataFile's stack_vertex field). An edge
u → v means "when processing v, a most-recently-pushed value is u";
predecessors of v are v's possible top-of-stack entries.

This generalizes the DAG-structured-stack (DSS) idea used for GLR parsing
— see the parent module's design notes — to a non-LR setting: we
only need add/has/delete edge and predecessor/successor iteration, not a
push/pop API over concrete stack instances, since the parallel resolver
never needs to "be" at a particular stack, only to reason about "reaches"
relationships.

Nodes are identified by (column, vertex id) pairs, following Node, rather
than raw vertex IDs, since the same grammar vertex is live at many
different input columns during a parse. Predecessor/successor sets are
kept as a hash set of edges plus per-vertex adjacency lists: add and has
are O(1) amortized; delete is linear in the length of the two adjacency
lists it edits, and Predecessors/Successors return a sorted copy.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2021–2026 The parselov authors.
*/
package stackgraph

import (
	"fmt"

	"golang.org/x/exp/slices"
)

// Node is a vertex of the stack graph: a grammar vertex at a given input
// column. Node is comparable, so it's used directly as a map key; nothing
// here needs a separate hashed signature.
type Node struct {
	Column int
	Vertex int
}

func (n Node) String() string {
	return fmt.Sprintf("(%d,%d)", n.Column, n.Vertex)
}

type edge struct {
	from Node
	to   Node
}

// Graph is a shared stack graph O. The zero value is ready to use.
type Graph struct {
	edges map[edge]bool
	preds map[Node][]Node
	succs map[Node][]Node
}

// New creates an empty stack graph.
func New() *Graph {
	return &Graph{
		edges: make(map[edge]bool),
		preds: make(map[Node][]Node),
		succs: make(map[Node][]Node),
	}
}

// AddEdge adds O: u → v ("a most-recently-pushed value when processing v
// is u"). Idempotent; returns true iff the edge was not already present.
func (g *Graph) AddEdge(u, v Node) bool {
	if g.edges == nil {
		g.edges = make(map[edge]bool)
		g.preds = make(map[Node][]Node)
		g.succs = make(map[Node][]Node)
	}
	e := edge{u, v}
	if g.edges[e] {
		return false
	}
	g.edges[e] = true
	g.succs[u] = append(g.succs[u], v)
	g.preds[v] = append(g.preds[v], u)
	return true
}

// HasEdge reports whether O: u → v is present.
func (g *Graph) HasEdge(u, v Node) bool {
	return g.edges[edge{u, v}]
}

// DeleteEdge removes O: u → v, if present.
func (g *Graph) DeleteEdge(u, v Node) {
	e := edge{u, v}
	if !g.edges[e] {
		return
	}
	delete(g.edges, e)
	g.succs[u] = removeNode(g.succs[u], v)
	g.preds[v] = removeNode(g.preds[v], u)
}

// Predecessors returns the (deterministically ordered) predecessors of v:
// its possible top-of-stack entries.
func (g *Graph) Predecessors(v Node) []Node {
	return sortedCopy(g.preds[v])
}

// Successors returns the (deterministically ordered) successors of u.
func (g *Graph) Successors(u Node) []Node {
	return sortedCopy(g.succs[u])
}

// EdgeCount reports the number of distinct edges currently in the graph,
// mainly for tests and diagnostics.
func (g *Graph) EdgeCount() int {
	return len(g.edges)
}

func removeNode(nodes []Node, target Node) []Node {
	out := nodes[:0]
	for _, n := range nodes {
		if n != target {
			out = append(out, n)
		}
	}
	return out
}

// sortedCopy keeps adjacency-list iteration order deterministic without
// pulling in sort.Slice's reflection-based comparator path; slices.SortFunc
// is generic and, unlike sort.Slice, doesn't need a closure over an index
// pair to read back through an interface{}.
func sortedCopy(nodes []Node) []Node {
	out := make([]Node, len(nodes))
	copy(out, nodes)
	slices.SortFunc(out, func(a, b Node) int {
		if a.Column != b.Column {
			return a.Column - b.Column
		}
		return a.Vertex - b.Vertex
	})
	return out
}
