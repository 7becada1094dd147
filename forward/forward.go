/*
Package forward implements the forwards half of the two-pass finite-state
simulator: it runs the DataFile's forwards automaton over a symbol stream
and records the full per-position state trace.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2021–2026 The parselov authors.
*/
package forward

import (
	"github.com/npillmayer/schuko/tracing"

	"github.com/corvidae/parselov/datafile"
)

// tracer traces with key 'parselov.forward'.
func tracer() tracing.Trace {
	return tracing.Select("parselov.forward")
}

// Result is the outcome of a ForwardPass run.
type Result struct {
	States         []int // States[0] == 1; States[i] is the state reached after consuming symbols[0:i]
	Accepted       bool  // whether the final state accepts
	FirstBadOffset int   // smallest i whose symbol leads to the sink (States[i+1] == 0), or len(symbols) if none
}

// Run executes the forwards automaton over symbols. It never short-circuits
// on entering the sink state 0: the trace must be complete, because
// BackwardPass still operates over it (including the 0s), and the
// worst-case escape hatch depends on a full trace being available.
//
// The inner loop is two array indirections and one assignment; its only
// branches are the bounds check inside State.Next and the check that
// records the first offset at which the sink state is entered.
func Run(df *datafile.DataFile, symbols []int) Result {
	n := len(symbols)
	states := make([]int, n+1)
	states[0] = 1
	firstBad := n
	sawBad := false
	for i, sym := range symbols {
		next := df.Forwards[states[i]].Next(sym)
		states[i+1] = next
		if !sawBad && next == 0 {
			firstBad = i
			sawBad = true
		}
	}
	accepted := df.Forwards[states[n]].Accepts
	tracer().Debugf("forward pass over %d symbols: accepted=%v firstBadOffset=%d", n, accepted, firstBad)
	return Result{States: states, Accepted: accepted, FirstBadOffset: firstBad}
}
