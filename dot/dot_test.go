package dot_test

import (
	"strings"
	"testing"

	"github.com/corvidae/parselov/dot"
	"github.com/corvidae/parselov/graph"
	"github.com/corvidae/parselov/internal/fixture"
)

func TestWriteProducesADigraphWithLabelsAndEdges(t *testing.T) {
	df := fixture.APlus()
	s := graph.New(df, []int{1, 1, 1}) // "aa"

	var buf strings.Builder
	if err := dot.Write(&buf, s); err != nil {
		t.Fatalf("Write returned error: %v", err)
	}
	out := buf.String()

	if !strings.HasPrefix(out, "digraph parse_graph {\n") {
		t.Fatalf("output does not start with the expected digraph header:\n%s", out)
	}
	if !strings.HasSuffix(out, "}\n") {
		t.Fatalf("output does not end with a closing brace:\n%s", out)
	}
	if !strings.Contains(out, `"0,1" -> "1,3"`) {
		t.Errorf("missing char edge from start at column 0 to mid at column 1:\n%s", out)
	}
	if !strings.Contains(out, `label="start S"`) {
		t.Errorf("missing start vertex label:\n%s", out)
	}
}

func TestWriteSkipsCharEdgesOfTheTerminalColumn(t *testing.T) {
	df := fixture.APlus()
	s := graph.New(df, []int{1, 1}) // one-symbol input "a", n=1 (columns 0 and 1)

	var buf strings.Builder
	if err := dot.Write(&buf, s); err != nil {
		t.Fatalf("Write returned error: %v", err)
	}
	// column 1 is terminal (n=1); its char edges must not appear as "1,x" -> "2,y"
	if strings.Contains(buf.String(), `"1,1" -> "2,`) {
		t.Errorf("terminal column's char edges were drawn:\n%s", buf.String())
	}
}
