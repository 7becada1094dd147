package backtrack_test

import (
	"testing"

	"github.com/corvidae/parselov/backtrack"
	"github.com/corvidae/parselov/datafile"
	"github.com/corvidae/parselov/graph"
	"github.com/corvidae/parselov/internal/fixture"
)

func TestResolveBuildsNestedTreeForRepeatedA(t *testing.T) {
	df := fixture.APlus()
	edgeIDs := []int{1, 1, 1, 1} // "aaa": three nested "S" opens
	s := graph.New(df, edgeIDs)

	root, err := backtrack.Resolve(s)
	if err != nil {
		t.Fatalf("Resolve returned error: %v", err)
	}
	if root.Name != "S" {
		t.Fatalf("root.Name = %q, want %q", root.Name, "S")
	}
	if root.Span.From() != 0 || root.Span.To() != 3 {
		t.Errorf("root span = %s, want [0,3]", root.Span)
	}

	depth := 1
	node := root
	for len(node.Children) == 1 && node.Children[0].Name == "S" {
		node = node.Children[0]
		depth++
	}
	if depth != 3 {
		t.Errorf("nesting depth = %d, want 3 (one per consumed 'a')", depth)
	}
}

func TestResolveSingleA(t *testing.T) {
	df := fixture.APlus()
	s := graph.New(df, []int{1, 1}) // "a"
	root, err := backtrack.Resolve(s)
	if err != nil {
		t.Fatalf("Resolve returned error: %v", err)
	}
	if root.Name != "S" || len(root.Children) != 0 {
		t.Errorf("unexpected tree for single 'a': %+v", root)
	}
	if root.Span.From() != 0 || root.Span.To() != 1 {
		t.Errorf("root span = %s, want [0,1]", root.Span)
	}
}

func TestResolveWalksThroughGuardPair(t *testing.T) {
	df := fixture.GuardedAB()
	s := graph.New(df, []int{3, 2, 1}) // "ab"

	root, err := backtrack.Resolve(s)
	if err != nil {
		t.Fatalf("Resolve returned error: %v", err)
	}
	if root.Name != "S" {
		t.Fatalf("root.Name = %q, want %q", root.Name, "S")
	}
	if root.Span.From() != 0 || root.Span.To() != 2 {
		t.Errorf("root span = %s, want [0,2]", root.Span)
	}
	if len(root.Children) != 1 || root.Children[0].Name != "G" {
		t.Fatalf("expected a single guard child \"G\", got %+v", root.Children)
	}
}

func TestResolveNoParseTreeWhenGraphIsEmpty(t *testing.T) {
	df := fixture.APlus()
	s := graph.New(df, []int{0, 0}) // edge-set 0 has no edges at all
	if _, err := backtrack.Resolve(s); err == nil {
		t.Fatalf("Resolve should fail when the start vertex has no successors")
	}
}

// nullEdgeCycle is a malformed DataFile whose only null edge is a self-loop
// on its start vertex and that never reaches FinalVertex, used to exercise
// WithMaxSteps against a frontier search that would otherwise never empty.
func nullEdgeCycle() *datafile.DataFile {
	return &datafile.DataFile{
		Vertices:    []datafile.Vertex{{}, {ID: 1, Kind: datafile.VertexNone}},
		NullEdges:   [][]datafile.Edge{nil, {{From: 1, To: 1}}},
		CharEdges:   [][]datafile.Edge{nil, nil},
		StartVertex: 1,
		FinalVertex: 2,
	}
}

func TestResolveWithMaxStepsStopsANullEdgeCycle(t *testing.T) {
	df := nullEdgeCycle()
	s := graph.New(df, []int{1, 1})
	_, err := backtrack.Resolve(s, backtrack.WithMaxSteps(100))
	if err == nil {
		t.Fatalf("Resolve should give up instead of looping forever on a null-edge cycle")
	}
}
