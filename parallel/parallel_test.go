package parallel_test

import (
	"testing"

	"github.com/corvidae/parselov/graph"
	"github.com/corvidae/parselov/internal/fixture"
	"github.com/corvidae/parselov/parallel"
)

func TestResolveAcceptsRepeatedA(t *testing.T) {
	df := fixture.APlus()
	s := graph.New(df, []int{1, 1, 1, 1}) // "aaa"

	res, err := parallel.Resolve(s)
	if err != nil {
		t.Fatalf("Resolve returned error: %v", err)
	}
	if !res.Accepted {
		t.Fatalf("Resolve did not accept \"aaa\"")
	}
	if res.Tree == nil || res.Tree.Name != "S" {
		t.Fatalf("Resolve did not return a materialized tree: %+v", res.Tree)
	}
	if res.Ambiguous != nil {
		t.Errorf("Ambiguous = %v, want nil (this grammar is unambiguous)", res.Ambiguous)
	}
}

func TestResolveAcceptsSingleA(t *testing.T) {
	df := fixture.APlus()
	s := graph.New(df, []int{1, 1}) // "a"
	res, err := parallel.Resolve(s)
	if err != nil {
		t.Fatalf("Resolve returned error: %v", err)
	}
	if !res.Accepted {
		t.Fatalf("Resolve did not accept \"a\"")
	}
}

func TestResolveRejectsWhenGraphIsEmpty(t *testing.T) {
	df := fixture.APlus()
	s := graph.New(df, []int{0, 0}) // edge-set 0 has no edges
	res, err := parallel.Resolve(s)
	if err != nil {
		t.Fatalf("Resolve returned error: %v", err)
	}
	if res.Accepted {
		t.Fatalf("Resolve accepted an empty graph")
	}
}

func TestResolveAcceptsThroughGuardPair(t *testing.T) {
	df := fixture.GuardedAB()
	s := graph.New(df, []int{3, 2, 1}) // "ab"

	res, err := parallel.Resolve(s)
	if err != nil {
		t.Fatalf("Resolve returned error: %v", err)
	}
	if !res.Accepted {
		t.Fatalf("Resolve did not accept \"ab\"")
	}
	if res.Ambiguous != nil {
		t.Errorf("Ambiguous = %v, want nil (this grammar is unambiguous)", res.Ambiguous)
	}
}

func TestResolveWithStackVertexProjection(t *testing.T) {
	df := fixture.APlus()
	s := graph.New(df, []int{1, 1, 1, 1})
	res, err := parallel.Resolve(s, parallel.WithStackVertexProjection())
	if err != nil {
		t.Fatalf("Resolve returned error: %v", err)
	}
	if !res.Accepted {
		t.Fatalf("Resolve with projection did not accept \"aaa\"")
	}
}
