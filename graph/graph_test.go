package graph_test

import (
	"testing"

	"github.com/corvidae/parselov/graph"
	"github.com/corvidae/parselov/internal/fixture"
)

func TestSuccessorsAtFromMidOffersBothNullChoices(t *testing.T) {
	df := fixture.APlus()
	edgeIDs := []int{1, 1, 1, 1} // "aaa"
	s := graph.New(df, edgeIDs)

	if s.Len() != 3 {
		t.Fatalf("Len() = %d, want 3", s.Len())
	}

	succs := s.SuccessorsAt(0, 3) // "mid": recurse into S, or close it
	if len(succs) != 2 {
		t.Fatalf("SuccessorsAt(0, mid) = %d successors, want 2", len(succs))
	}
	for _, succ := range succs {
		if succ.Char {
			t.Errorf("successor %+v is a char edge, want both to be null edges", succ)
		}
	}
}

func TestSuccessorsAtFromStartIsACharEdge(t *testing.T) {
	df := fixture.APlus()
	s := graph.New(df, []int{1, 1, 1, 1})
	succs := s.SuccessorsAt(0, 1) // start "S": consume 'a'
	if len(succs) != 1 {
		t.Fatalf("SuccessorsAt(0, start) = %d successors, want 1", len(succs))
	}
	if !succs[0].Char || succs[0].Edge.To != 3 {
		t.Errorf("unexpected successor: %+v", succs[0])
	}
}

func TestSuccessorsAtOutOfRangeOffset(t *testing.T) {
	df := fixture.APlus()
	s := graph.New(df, []int{1, 1})
	if got := s.SuccessorsAt(5, 1); got != nil {
		t.Errorf("SuccessorsAt(out of range) = %v, want nil", got)
	}
}

func TestTerminalEdgeSet(t *testing.T) {
	df := fixture.APlus()
	s := graph.New(df, []int{1, 1, 1})
	if got := s.TerminalEdgeSet(); got != 1 {
		t.Errorf("TerminalEdgeSet() = %d, want 1", got)
	}
}
