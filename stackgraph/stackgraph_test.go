package stackgraph_test

import (
	"testing"

	"github.com/corvidae/parselov/stackgraph"
)

func TestAddEdgeIsIdempotentAndReportsNovelty(t *testing.T) {
	g := stackgraph.New()
	u := stackgraph.Node{Column: 0, Vertex: 1}
	v := stackgraph.Node{Column: 0, Vertex: 2}

	if !g.AddEdge(u, v) {
		t.Fatalf("first AddEdge should report the edge as new")
	}
	if g.AddEdge(u, v) {
		t.Fatalf("second AddEdge of the same pair should report no change")
	}
	if !g.HasEdge(u, v) {
		t.Fatalf("HasEdge should be true after AddEdge")
	}
	if g.EdgeCount() != 1 {
		t.Fatalf("EdgeCount() = %d, want 1", g.EdgeCount())
	}
}

func TestDeleteEdgeRemovesFromBothAdjacencyLists(t *testing.T) {
	g := stackgraph.New()
	u := stackgraph.Node{Column: 0, Vertex: 1}
	v := stackgraph.Node{Column: 1, Vertex: 2}
	g.AddEdge(u, v)

	g.DeleteEdge(u, v)
	if g.HasEdge(u, v) {
		t.Fatalf("HasEdge should be false after DeleteEdge")
	}
	if len(g.Successors(u)) != 0 {
		t.Errorf("Successors(u) = %v, want empty", g.Successors(u))
	}
	if len(g.Predecessors(v)) != 0 {
		t.Errorf("Predecessors(v) = %v, want empty", g.Predecessors(v))
	}
}

func TestPredecessorsAreDeterministicallyOrdered(t *testing.T) {
	g := stackgraph.New()
	v := stackgraph.Node{Column: 2, Vertex: 9}
	p3 := stackgraph.Node{Column: 1, Vertex: 3}
	p1 := stackgraph.Node{Column: 0, Vertex: 1}
	p2 := stackgraph.Node{Column: 0, Vertex: 5}
	g.AddEdge(p3, v)
	g.AddEdge(p1, v)
	g.AddEdge(p2, v)

	got := g.Predecessors(v)
	want := []stackgraph.Node{p1, p2, p3}
	if len(got) != len(want) {
		t.Fatalf("Predecessors(v) = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Predecessors(v)[%d] = %v, want %v", i, got[i], want[i])
		}
	}
}
