/*
Package errs defines the error kinds surfaced by the parselov runtime
pipeline (see the parent module's error-handling design).

There are four kinds:

  - InvalidDataFile: a structural invariant of the precompiled grammar
    tables was violated at load time. Fatal for the load.
  - InputRejected: ForwardPass ended in a non-accepting state (the sink
    state or any other). Fatal for the parse; no resolver stage runs.
  - NoParseTree: BackwardPass succeeded (the DFA accepted) but no
    well-nested path exists through the parse graph.
  - AmbiguousResult: informational only; attached to a successful
    ParallelResolver result rather than returned as an error.

Each kind is a distinct type so callers can classify with errors.As,
following the dekarrin/tunaq tqerrors convention of small wrapping error
structs with constructor functions instead of exported struct literals.
*/
package errs

import "fmt"

// InvalidDataFileError reports a structural problem found while loading a
// precompiled grammar data file.
type InvalidDataFileError struct {
	Reason string
	wrap   error
}

func (e *InvalidDataFileError) Error() string {
	return fmt.Sprintf("invalid data file: %s", e.Reason)
}

func (e *InvalidDataFileError) Unwrap() error {
	return e.wrap
}

// InvalidDataFile constructs an InvalidDataFileError.
func InvalidDataFile(reason string) error {
	return &InvalidDataFileError{Reason: reason}
}

// WrapInvalidDataFile constructs an InvalidDataFileError wrapping a lower-level
// decoding error.
func WrapInvalidDataFile(err error, reason string) error {
	return &InvalidDataFileError{Reason: reason, wrap: err}
}

// InputRejectedError reports that the forward automaton did not end in an
// accepting state. FirstBadOffset is the offset of the first symbol that
// led into the sink state, or the input length if the sink was never
// entered.
type InputRejectedError struct {
	FirstBadOffset int
}

func (e *InputRejectedError) Error() string {
	return fmt.Sprintf("input rejected: sink state entered at offset %d", e.FirstBadOffset)
}

// InputRejected constructs an InputRejectedError for the given offset.
func InputRejected(firstBadOffset int) error {
	return &InputRejectedError{FirstBadOffset: firstBadOffset}
}

// NoParseTreeError reports that the backward pass accepted the input but no
// well-nested path through the parse graph could be found.
type NoParseTreeError struct {
	reason string
}

func (e *NoParseTreeError) Error() string {
	if e.reason == "" {
		return "no parse tree: frontier exhausted without acceptance"
	}
	return fmt.Sprintf("no parse tree: %s", e.reason)
}

// NoParseTree constructs a NoParseTreeError.
func NoParseTree(reason string) error {
	return &NoParseTreeError{reason: reason}
}

// AmbiguousResult is informational: it records that a ParallelResolver run
// found more than one witness path without changing the acceptance verdict.
// It is never returned as the error of a failed call; it is carried on the
// side in a successful result.
type AmbiguousResult struct {
	WitnessCount int
}

func (e *AmbiguousResult) Error() string {
	return fmt.Sprintf("ambiguous result: %d witness paths", e.WitnessCount)
}

// Ambiguous constructs an AmbiguousResult for the given witness count.
func Ambiguous(witnessCount int) *AmbiguousResult {
	return &AmbiguousResult{WitnessCount: witnessCount}
}
