package parselov

import "fmt"

// Span captures a run of input positions [From, To). Every vertex and edge
// column produced by the pipeline is addressed by a Span-compatible offset
// pair, so that forward/backward pass traces, edge-set columns and resolver
// output all agree on the same coordinate system.
type Span [2]uint64 // (x…y)

// From returns the start value of a span.
func (s Span) From() uint64 {
	return s[0]
}

// To returns the end value of a span.
func (s Span) To() uint64 {
	return s[1]
}

// Len returns the length of (x…y).
func (s Span) Len() uint64 {
	return s[1] - s[0]
}

// IsNull returns true for the zero span.
func (s Span) IsNull() bool {
	return s == Span{}
}

func (s Span) String() string {
	return fmt.Sprintf("(%d…%d)", s[0], s[1])
}
