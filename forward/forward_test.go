package forward_test

import (
	"testing"

	"github.com/corvidae/parselov/forward"
	"github.com/corvidae/parselov/internal/fixture"
)

func TestRunAcceptsOneOrMoreA(t *testing.T) {
	df := fixture.APlus()
	res := forward.Run(df, []int{1, 1, 1})
	if !res.Accepted {
		t.Fatalf("Run(aaa) not accepted")
	}
	if res.States[0] != 1 {
		t.Errorf("States[0] = %d, want 1 (the initial state)", res.States[0])
	}
	if len(res.States) != 4 {
		t.Fatalf("len(States) = %d, want 4", len(res.States))
	}
}

func TestRunRejectsEmptyInput(t *testing.T) {
	df := fixture.APlus()
	res := forward.Run(df, nil)
	if res.Accepted {
		t.Fatalf("Run(empty) accepted, want rejected (state 1 is non-accepting)")
	}
}

func TestRunTracksFirstBadOffset(t *testing.T) {
	df := fixture.APlus()
	res := forward.Run(df, []int{1, 9, 1}) // symbol 9 is unmapped -> sink
	if res.Accepted {
		t.Fatalf("Run should reject once the sink state is entered")
	}
	if res.FirstBadOffset != 1 {
		t.Errorf("FirstBadOffset = %d, want 1", res.FirstBadOffset)
	}
	// the trace must still be complete past the sink, not short-circuited
	if len(res.States) != 4 {
		t.Fatalf("len(States) = %d, want 4 (full trace even after sink)", len(res.States))
	}
}
