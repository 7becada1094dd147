/*
Package pipeline wires together the runtime's stages into the single
synchronous call most callers actually want: bytes in, a parse tree (or a
rejection) out. It is the one place that knows the full sequence —
Alphabet, ForwardPass, BackwardPass, graph assembly, then a resolver — so
that package main and tests don't have to repeat it.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2021–2026 The parselov authors.
*/
package pipeline

import (
	"github.com/npillmayer/schuko/tracing"

	"github.com/corvidae/parselov/alphabet"
	"github.com/corvidae/parselov/backtrack"
	"github.com/corvidae/parselov/backward"
	"github.com/corvidae/parselov/datafile"
	"github.com/corvidae/parselov/errs"
	"github.com/corvidae/parselov/forward"
	"github.com/corvidae/parselov/graph"
	"github.com/corvidae/parselov/parallel"
)

// tracer traces with key 'parselov.pipeline'.
func tracer() tracing.Trace {
	return tracing.Select("parselov.pipeline")
}

// Resolver selects which resolver stage Run uses to extract a tree.
type Resolver int

const (
	// Backtrack runs a single-threaded, priority-ordered depth-first
	// search; the default, and the cheaper choice for grammars that are
	// not heavily ambiguous.
	Backtrack Resolver = iota
	// Parallel runs the shared-stack-graph simulation, which additionally
	// reports ambiguity.
	Parallel
)

// Result is the outcome of a full pipeline run over accepted input.
type Result struct {
	Tree   *backtrack.Node
	Stream graph.Stream
	// Ambiguous is only ever set via Parallel; nil via Backtrack.
	Ambiguous *errs.AmbiguousResult
}

// Run executes the full pipeline over input using df, returning the parse
// tree or an error classifiable with errors.As against the errs package:
// InputRejectedError if ForwardPass didn't accept, NoParseTreeError if the
// chosen resolver found no well-nested path.
func Run(df *datafile.DataFile, input string, resolver Resolver) (Result, error) {
	alpha := alphabet.New(df.InputToSymbol)
	symbols := alpha.Symbols(input)

	fr := forward.Run(df, symbols)
	if !fr.Accepted {
		tracer().Infof("rejected at offset %d", fr.FirstBadOffset)
		return Result{}, errs.InputRejected(fr.FirstBadOffset)
	}

	edgeIDs := backward.Run(df, fr.States)
	stream := graph.New(df, edgeIDs)

	switch resolver {
	case Parallel:
		res, err := parallel.Resolve(stream)
		if err != nil {
			return Result{}, err
		}
		if !res.Accepted {
			return Result{}, errs.NoParseTree("parallel resolver found no accepting stack-graph path")
		}
		return Result{Tree: res.Tree, Stream: stream, Ambiguous: res.Ambiguous}, nil
	default:
		tree, err := backtrack.Resolve(stream)
		if err != nil {
			return Result{}, err
		}
		return Result{Tree: tree, Stream: stream}, nil
	}
}
