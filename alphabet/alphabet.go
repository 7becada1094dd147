/*
Package alphabet maps input code points to the small symbol indices the
forward and backward automata operate on. The mapping itself lives in the
DataFile (input_to_symbol); this package is a thin, allocation-free view
over that table plus the code-point decoding step.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2021–2026 The parselov authors.
*/
package alphabet

// Sink is the symbol index meaning "unrecognized code point". It is always
// 0, matching the DataFile convention that index 0 of any table is a
// reserved sentinel.
const Sink = 0

// Alphabet wraps a DataFile's input_to_symbol table.
type Alphabet struct {
	inputToSymbol []int32
}

// New wraps an input_to_symbol table as read from a DataFile.
func New(inputToSymbol []int32) Alphabet {
	return Alphabet{inputToSymbol: inputToSymbol}
}

// CodePointToSymbol maps a code point to a symbol index. Out-of-range code
// points map to Sink; a code point within range whose mapped value is
// explicitly 0 also maps to Sink — both cases are indistinguishable to
// callers.
func (a Alphabet) CodePointToSymbol(cp rune) int {
	idx := int(cp)
	if idx < 0 || idx >= len(a.inputToSymbol) {
		return Sink
	}
	return int(a.inputToSymbol[idx])
}

// Symbols decodes an input string into its symbol stream, one symbol per
// Unicode code point (not per byte). This is the only place the runtime
// deals in runes; everything downstream operates on symbol indices.
func (a Alphabet) Symbols(input string) []int {
	symbols := make([]int, 0, len(input))
	for _, cp := range input {
		symbols = append(symbols, a.CodePointToSymbol(cp))
	}
	return symbols
}
