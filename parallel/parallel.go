/*
Package parallel implements a non-deterministic pushdown simulation over a
parse graph: the ParallelResolver. Where package backtrack forks an
explicit parser per alternative and explores them one at a time, this
package keeps every live stack configuration folded into a single shared
stack graph O (package stackgraph), processing one input column at a time.
The stack-graph acceptance test has a better worst case on heavily
ambiguous grammars than backtrack's search — O(n·|V|²) rather than
exponential in the branching factor — at the cost of not being able to
stop at the first witness. Once an input is accepted, Resolve runs
package backtrack's search to build the tree and check for ambiguity, so
for accepted inputs Resolve as a whole has backtrack's worst case.

Per column, the algorithm visits every vertex reachable (via null edges)
from the current head set, in an order that tolerates revisiting a vertex
when processing elsewhere adds it a new predecessor — the "revisit" case
the parent module's design notes call out for nullable right-recursion.
Three vertex roles drive what happens at a visit:

  - start/if: opening a scope. O gets an edge from this vertex to each of
    its successors (the vertex itself becomes their top-of-stack entry).
  - final/fi: closing a scope. For every current predecessor p, the guard
    `vertices[p].with == v` is checked; mismatches are pruned by deleting
    the edge, matches are popped by reconnecting p's own predecessors
    directly to v's successors (skipping over the now-closed scope).
  - anything else: a plain pass-through; v's current predecessors are
    copied forward onto each of its successors unchanged.

"Successor" here means the combined local null_edges (landing in the same
column) and char_edges (landing in the next column) of the edge-set
attached to the current column, exactly as package graph exposes them; the
char-edge targets double as next column's head set.

A parse is accepted iff O ends up containing an edge from (0, start
vertex) to (n, final vertex) — the outermost scope found its own matching
close — and ambiguity is reported, informationally, when package
backtrack's search finds a second structurally distinct well-nested tree
for the accepted input. Because tree extraction over the shared graph
would otherwise require walking O's reverse-pop trace back into a
well-nested path — exactly the search package backtrack already performs —
ParallelResolver delegates materializing the accepted tree to it once
acceptance is established; see the parent module's design notes for why
this is a deliberate simplification, not a missing feature.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2021–2026 The parselov authors.
*/
package parallel

import (
	"github.com/npillmayer/schuko/tracing"

	"github.com/corvidae/parselov/backtrack"
	"github.com/corvidae/parselov/datafile"
	"github.com/corvidae/parselov/errs"
	"github.com/corvidae/parselov/graph"
	"github.com/corvidae/parselov/stackgraph"
)

// tracer traces with key 'parselov.parallel'.
func tracer() tracing.Trace {
	return tracing.Select("parselov.parallel")
}

// Option configures a Resolve call.
type Option func(*config)

type config struct {
	stackVertexProjection bool
}

// WithStackVertexProjection projects stack-graph nodes through a vertex's
// EffectiveStackVertex instead of its raw ID, collapsing recursive
// productions onto shared stack-graph nodes. Off by default: it shrinks O
// for deeply recursive grammars, but loses the one-to-one node-to-path
// correspondence plain tree extraction relies on.
func WithStackVertexProjection() Option {
	return func(c *config) { c.stackVertexProjection = true }
}

// Result is the outcome of a ParallelResolver run.
type Result struct {
	Accepted bool
	Tree     *Node
	// Ambiguous is non-nil when more than one distinct top-level derivation
	// reached acceptance. It is informational: it never affects Accepted.
	Ambiguous *errs.AmbiguousResult
}

// Node mirrors backtrack.Node so callers of this package don't need to
// import backtrack directly for the tree shape.
type Node = backtrack.Node

type localSucc struct {
	col, vertex int
}

// columnState is the mutable state threaded through processing of one
// input column.
type columnState struct {
	c        int
	df       *datafile.DataFile
	edgeSet  int
	O        *stackgraph.Graph
	proj     bool
	queue    []int
	inQueue  map[int]bool
	nextHead map[stackgraph.Node]bool
}

// Resolve runs the parallel stack-graph simulation over s and reports
// whether the input is accepted, with a materialized tree when it is.
func Resolve(s graph.Stream, opts ...Option) (Result, error) {
	cfg := config{}
	for _, o := range opts {
		o(&cfg)
	}
	df := s.DF
	n := s.Len()
	O := stackgraph.New()

	heads := map[int]bool{df.StartVertex: true}
	for c := 0; c <= n; c++ {
		cs := &columnState{
			c:        c,
			df:       df,
			edgeSet:  s.EdgeIDs[c],
			O:        O,
			proj:     cfg.stackVertexProjection,
			inQueue:  map[int]bool{},
			nextHead: map[stackgraph.Node]bool{},
		}
		for v := range heads {
			cs.enqueue(v)
		}
		cs.run(c == n)
		heads = map[int]bool{}
		for node := range cs.nextHead {
			heads[node.Vertex] = true
		}
		tracer().Debugf("column %d: %d stack-graph edges so far", c, O.EdgeCount())
	}

	start := cs0Node(df, cfg, 0, df.StartVertex)
	final := cs0Node(df, cfg, n, df.FinalVertex)
	if !O.HasEdge(start, final) {
		return Result{Accepted: false}, nil
	}

	// The stack graph alone conflates cascading pops of nested recursion
	// with genuine alternation, so it can't tell us how many distinct
	// derivations reach acceptance. Counting witnesses by re-running the
	// search that already owns that notion — "is there a second distinct
	// well-nested path" — answers the question this resolver actually
	// needs: whether to flag the result as ambiguous, not by how much.
	trees, err := backtrack.ResolveN(s, 2)
	if err != nil {
		return Result{}, errs.WrapInvalidDataFile(err, "parallel resolver accepted but no well-nested path was found")
	}
	witnesses := len(trees)
	res := Result{Accepted: true, Tree: trees[0]}
	if witnesses > 1 {
		res.Ambiguous = errs.Ambiguous(witnesses)
		tracer().Infof("%s", res.Ambiguous)
	}
	return res, nil
}

func cs0Node(df *datafile.DataFile, cfg config, col, vertex int) stackgraph.Node {
	if cfg.stackVertexProjection {
		return stackgraph.Node{Column: col, Vertex: df.Vertex(vertex).EffectiveStackVertex()}
	}
	return stackgraph.Node{Column: col, Vertex: vertex}
}

func (cs *columnState) node(col, vertex int) stackgraph.Node {
	if cs.proj {
		return stackgraph.Node{Column: col, Vertex: cs.df.Vertex(vertex).EffectiveStackVertex()}
	}
	return stackgraph.Node{Column: col, Vertex: vertex}
}

func (cs *columnState) enqueue(v int) {
	if cs.inQueue[v] {
		return
	}
	cs.inQueue[v] = true
	cs.queue = append(cs.queue, v)
}

func (cs *columnState) localSuccessors(v int, lastColumn bool) []localSucc {
	var out []localSucc
	for _, e := range cs.df.NullEdgesFrom(cs.edgeSet, v) {
		out = append(out, localSucc{col: cs.c, vertex: e.To})
	}
	if !lastColumn {
		for _, e := range cs.df.CharEdgesFrom(cs.edgeSet, v) {
			out = append(out, localSucc{col: cs.c + 1, vertex: e.To})
		}
	}
	return out
}

// addSucc adds O: from → to and, if the edge is new, propagates: a
// same-column target is re-enqueued for processing (covering both first
// visits and the "revisit s" case for nullable right-recursion); a
// next-column target is recorded as a head for the following column.
func (cs *columnState) addSucc(from stackgraph.Node, to localSucc) {
	toNode := cs.node(to.col, to.vertex)
	if !cs.O.AddEdge(from, toNode) {
		return
	}
	if to.col == cs.c {
		cs.enqueue(to.vertex)
	} else {
		cs.nextHead[toNode] = true
	}
}

func (cs *columnState) run(lastColumn bool) {
	for len(cs.queue) > 0 {
		v := cs.queue[0]
		cs.queue = cs.queue[1:]
		cs.inQueue[v] = false

		vv := cs.df.Vertex(v)
		here := cs.node(cs.c, v)
		succs := cs.localSuccessors(v, lastColumn)

		switch vv.Kind {
		case datafile.VertexStart, datafile.VertexIf:
			if !vv.HasWith() {
				tracer().Debugf("discard: start/if vertex %d without a with partner at column %d", v, cs.c)
				continue
			}
			for _, s := range succs {
				cs.addSucc(here, s)
			}

		case datafile.VertexFinal, datafile.VertexFi:
			for _, p := range cs.O.Predecessors(here) {
				pv := cs.df.Vertex(p.Vertex)
				if pv.With != v {
					cs.O.DeleteEdge(p, here)
					continue
				}
				for _, pp := range cs.O.Predecessors(p) {
					for _, s := range succs {
						cs.addSucc(pp, s)
					}
				}
			}

		default:
			preds := cs.O.Predecessors(here)
			for _, s := range succs {
				for _, p := range preds {
					cs.addSucc(p, s)
				}
			}
		}
	}
}
