/*
Package backtrack implements a single-threaded, cooperative, depth-first,
priority-ordered search for a well-nested path through a parse graph. It
emits a nested parse tree for the first path found.

The frontier is modeled as a work list of cloned "parser" records — offset,
current vertex, a stack of open (start/final) frames, and an accumulated
output — rather than a call stack, so that backtracking to a sibling
alternative is an explicit pop rather than a recursive return. Both the
frame stack and the output are persistent (singly-linked, shared-tail)
structures: cloning a parser to spawn an alternative is an O(1) pointer
copy, never a deep copy, matching the parent module's design notes on
avoiding unnecessary cloning.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2021–2026 The parselov authors.
*/
package backtrack

import (
	"sort"

	"github.com/cnf/structhash"
	"github.com/emirpasic/gods/lists/arraylist"
	"github.com/npillmayer/schuko/tracing"

	"github.com/corvidae/parselov"
	"github.com/corvidae/parselov/datafile"
	"github.com/corvidae/parselov/errs"
	"github.com/corvidae/parselov/graph"
)

// tracer traces with key 'parselov.backtrack'.
func tracer() tracing.Trace {
	return tracing.Select("parselov.backtrack")
}

// Node is one node of the resolved parse tree: [name, children, start, end]
// in the parent module's nested-tree JSON shape. Start/End share the
// pipeline's own [From, To) coordinate system (parselov.Span), the same one
// forward/backward pass traces and edge-set columns are addressed by.
type Node struct {
	Name     string
	Children []*Node
	Span     parselov.Span
}

// stackFrame is a persistent (shared-tail) stack of open start/if frames.
type stackFrame struct {
	prev   *stackFrame
	vertex int
	offset int
}

type eventKind uint8

const (
	eventOpen eventKind = iota
	eventClose
)

// outputEvent is a persistent (shared-tail) log of open/close events; the
// tree is reconstructed from it only once a parser accepts.
type outputEvent struct {
	prev  *outputEvent
	kind  eventKind
	text  string
	start uint64
	end   uint64
}

// parser is one frontier element: a candidate, partially-explored path
// through the parse graph.
type parser struct {
	offset int
	vertex int
	stack  *stackFrame
	output *outputEvent
}

func (p parser) clone() parser {
	return p // stack and output are shared pointers; this is a value copy
}

// Option configures a Resolve/ResolveN call.
type Option func(*config)

type config struct {
	maxSteps int
}

// WithMaxSteps bounds the number of frontier pops the search performs
// before giving up with a NoParseTreeError, guarding against a malformed
// DataFile whose null edges form a cycle the acceptance check never
// reaches. ParallelResolver's worklist terminates on its own via edge
// idempotency (see package stackgraph); this depth-first search has no
// equivalent built-in bound. 0, the default, means unlimited.
func WithMaxSteps(n int) Option {
	return func(c *config) { c.maxSteps = n }
}

// Resolve runs the search over s starting at the DataFile's start vertex
// and returns the first well-nested path found, or a NoParseTreeError if
// the frontier empties without acceptance.
func Resolve(s graph.Stream, opts ...Option) (*Node, error) {
	trees, err := ResolveN(s, 1, opts...)
	if err != nil {
		return nil, err
	}
	return trees[0], nil
}

// ResolveN runs the same search as Resolve but keeps going past the first
// acceptance, collecting up to max structurally distinct well-nested trees
// instead of stopping at the first. It exists for package parallel's
// informational ambiguity check — "does more than one witness exist" —
// without duplicating the frontier search.
//
// Two different frontier paths can reconstruct the same tree (e.g. a
// guard that closes immediately either via its own fi or via a cascading
// pop takes different routes through the stack graph but leaves identical
// output), so a found tree is only counted as a new witness if its
// structhash signature hasn't been seen before; otherwise the search moves
// on without consuming one of the max slots.
func ResolveN(s graph.Stream, max int, opts ...Option) ([]*Node, error) {
	cfg := config{}
	for _, o := range opts {
		o(&cfg)
	}
	df := s.DF
	frontier := arraylist.New()
	frontier.Add(parser{offset: 0, vertex: df.StartVertex})

	var trees []*Node
	seen := map[string]bool{}
	steps := 0
	for !frontier.Empty() && len(trees) < max {
		if cfg.maxSteps > 0 && steps >= cfg.maxSteps {
			tracer().Debugf("frontier search stopped: max steps (%d) reached", cfg.maxSteps)
			break
		}
		steps++
		top, _ := frontier.Get(frontier.Size() - 1)
		frontier.Remove(frontier.Size() - 1)
		p := top.(parser)

		v := df.Vertex(p.vertex)
		switch v.Kind {
		case datafile.VertexStart, datafile.VertexIf:
			if !v.HasWith() {
				tracer().Debugf("discard: start/if vertex %d without a with partner at offset %d", p.vertex, p.offset)
				continue
			}
			p.stack = &stackFrame{prev: p.stack, vertex: p.vertex, offset: p.offset}
			p.output = &outputEvent{prev: p.output, kind: eventOpen, text: v.Text}
		case datafile.VertexFinal, datafile.VertexFi:
			if p.stack == nil || p.stack.vertex != v.With {
				tracer().Debugf("discard: unmatched final/fi vertex %d at offset %d", p.vertex, p.offset)
				continue
			}
			top := p.stack
			p.stack = p.stack.prev
			p.output = &outputEvent{prev: p.output, kind: eventClose, start: uint64(top.offset), end: uint64(p.offset)}
		}

		// Acceptance check preserves the source's off-by-one: it reads one
		// past the last edge-set, since the terminal edge-set is indexed
		// at position n (len(edge_ids)-1). This is intentional, not a bug
		// — see the parent module's design notes.
		if p.vertex == df.FinalVertex && p.offset+1 >= len(s.EdgeIDs) && p.stack == nil {
			tree, err := reconstruct(p.output)
			if err != nil {
				continue
			}
			sig, err := structhash.Hash(tree, 1)
			if err != nil {
				// structhash only fails on unhashable types; Node holds
				// only a string, a slice of *Node and two uints.
				panic(err)
			}
			if seen[sig] {
				continue
			}
			seen[sig] = true
			trees = append(trees, tree)
			continue
		}

		successors := s.SuccessorsAt(p.offset, p.vertex)
		if len(successors) == 0 {
			tracer().Debugf("discard: no successors from vertex %d at offset %d", p.vertex, p.offset)
			continue
		}
		sort.SliceStable(successors, func(i, j int) bool {
			return successors[i].SortKey < successors[j].SortKey
		})

		// Spawn one frontier element per alternative besides the best one,
		// pushed in reverse so popping the frontier tries them in
		// ascending sort_key order on backtrack. The best alternative
		// itself continues directly as the next head, without a
		// round-trip through the frontier.
		for i := len(successors) - 1; i >= 1; i-- {
			alt := p.clone()
			applySuccessor(&alt, successors[i])
			frontier.Add(alt)
		}
		best := p.clone()
		applySuccessor(&best, successors[0])
		frontier.Add(best)
	}
	if len(trees) == 0 {
		return nil, errs.NoParseTree("frontier exhausted")
	}
	return trees, nil
}

func applySuccessor(p *parser, succ graph.Successor) {
	if succ.Char {
		p.offset++
	}
	p.vertex = succ.Edge.To
}

// reconstruct replays a persistent event log into a Node tree. The log is
// walked tail-to-head (most recent event first), so it's reversed into
// forward order before a simple open/close stack machine rebuilds the
// tree.
func reconstruct(tail *outputEvent) (*Node, error) {
	var events []*outputEvent
	for e := tail; e != nil; e = e.prev {
		events = append(events, e)
	}
	for i, j := 0, len(events)-1; i < j; i, j = i+1, j-1 {
		events[i], events[j] = events[j], events[i]
	}

	root := &Node{}
	stack := []*Node{root}
	for _, e := range events {
		switch e.kind {
		case eventOpen:
			n := &Node{Name: e.text}
			parent := stack[len(stack)-1]
			parent.Children = append(parent.Children, n)
			stack = append(stack, n)
		case eventClose:
			n := stack[len(stack)-1]
			stack = stack[:len(stack)-1]
			n.Span = parselov.Span{e.start, e.end}
		}
	}
	if len(stack) != 1 || len(root.Children) != 1 {
		return nil, errs.NoParseTree("output events did not form a single well-nested tree")
	}
	return root.Children[0], nil
}
