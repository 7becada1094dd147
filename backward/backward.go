/*
Package backward implements the backwards half of the two-pass simulator:
it runs the DataFile's backwards automaton right-to-left over a forward-pass
state trace, emitting one edge-set identifier per input position.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2021–2026 The parselov authors.
*/
package backward

import (
	"github.com/npillmayer/schuko/tracing"

	"github.com/corvidae/parselov/datafile"
)

// tracer traces with key 'parselov.backward'.
func tracer() tracing.Trace {
	return tracing.Select("parselov.backward")
}

// Run executes the backwards automaton over a forward-pass state trace
// (length n+1, as produced by forward.Run). It returns edge_ids, indexed
// left-to-right to match input offsets: edge_ids[i] is the edge-set ID at
// position i. edge_ids[n] holds the terminal edge-set.
//
// Like ForwardPass, the inner loop is branch-free beyond the bounds check
// inside State.Next.
func Run(df *datafile.DataFile, forwardStates []int) []int {
	n := len(forwardStates) - 1
	edgeIDs := make([]int, n+1)
	b := 1
	edgeIDs[n] = b
	for i := n; i >= 1; i-- {
		b = df.Backwards[b].Next(forwardStates[i])
		edgeIDs[i-1] = b
	}
	tracer().Debugf("backward pass over %d positions: terminal edge-set=%d", n, edgeIDs[n])
	return edgeIDs
}
