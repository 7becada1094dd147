// Package fixture builds small, hand-written DataFiles for tests across the
// module, standing in for the (out-of-scope) table generator.
package fixture

import "github.com/corvidae/parselov/datafile"

// APlus returns a DataFile for the grammar S := 'a' S | 'a' — one or more
// 'a' characters, each opening one more level of "S" start/final nesting. It
// exercises recursion through a null-edge choice between looping back into
// S and closing it, the simplest non-trivial case for resolvers to get
// right (an ambiguity of repetition depth, not of alternation).
//
// Vertex table:
//
//	1: start "S", with=2
//	2: final "S", with=1
//	3: "mid" (plain), reached after consuming one 'a'
//
// Edge-set 1 is reused at every column:
//
//	char_edges[1]: 1 -> 3   (consume 'a')
//	null_edges[1]: 3 -> 1   (recurse; both targets have sort_key 0, so
//	                         list order makes this one tried first)
//	               3 -> 2   (close)
//	               2 -> 2   (self-loop: offer another close, cascading pops
//	                         back through enclosing "a S" recursions that
//	                         have nothing left to match after the inner S)
//
// Symbol 1 is 'a'; everything else maps to Sink (0).
func APlus() *datafile.DataFile {
	return &datafile.DataFile{
		InputToSymbol: aToSymbol(),
		Forwards: []datafile.State{
			{}, // sink
			{Transitions: []int32{0, 2}, Accepts: false}, // state 1: initial
			{Transitions: []int32{0, 2}, Accepts: true},  // state 2: seen >=1 'a'
		},
		Backwards: []datafile.State{
			{}, // sink
			{Transitions: []int32{0, 0, 1}}, // state 1: on forward-state 2 -> edge-set 1
		},
		Vertices: []datafile.Vertex{
			{}, // sentinel
			{ID: 1, Kind: datafile.VertexStart, Text: "S", With: 2},
			{ID: 2, Kind: datafile.VertexFinal, Text: "S", With: 1},
			{ID: 3, Kind: datafile.VertexNone, Text: "mid"},
		},
		NullEdges: [][]datafile.Edge{
			nil, // edge-set 0 unused
			{{From: 3, To: 1}, {From: 3, To: 2}, {From: 2, To: 2}},
		},
		CharEdges: [][]datafile.Edge{
			nil,
			{{From: 1, To: 3}},
		},
		StartVertex: 1,
		FinalVertex: 2,
	}
}

func aToSymbol() []int32 {
	m := make([]int32, 'a'+1)
	m['a'] = 1
	return m
}

// GuardedAB returns a DataFile for the grammar S := 'a' (if G fi) 'b' — a
// guard pair sitting between the two characters, with the guard body G
// itself empty. It exercises the if/fi vertex kinds, which resolvers must
// push/check-with/pop exactly like start/final.
//
// Vertex table:
//
//	1: start "S", with=2
//	2: final "S", with=1
//	3: if "G", with=4
//	4: fi "G", with=3
//	5: "afterA" (plain), reached after consuming 'a'
//	6: "afterGuard" (plain), reached after the guard closes
//	7: "afterB" (plain), reached after consuming 'b'
//
// Edge-set 3 is used at column 0:
//
//	char_edges[3]: 1 -> 5   (consume 'a')
//
// Edge-set 2 is used at column 1:
//
//	null_edges[2]: 5 -> 3   (open guard)
//	               3 -> 4   (close guard immediately: empty body)
//	               4 -> 6   (continue past guard)
//	char_edges[2]: 6 -> 7   (consume 'b')
//
// Edge-set 1 is the terminal edge-set, used at column 2:
//
//	null_edges[1]: 7 -> 2   (close S)
//
// Symbol 1 is 'a', symbol 2 is 'b'; everything else maps to Sink (0).
func GuardedAB() *datafile.DataFile {
	return &datafile.DataFile{
		InputToSymbol: abToSymbol(),
		Forwards: []datafile.State{
			{},                                               // sink
			{Transitions: []int32{0, 2, 0}, Accepts: false}, // state 1: initial
			{Transitions: []int32{0, 0, 3}, Accepts: false}, // state 2: seen 'a'
			{Transitions: []int32{0, 0, 0}, Accepts: true},  // state 3: seen "ab"
		},
		Backwards: []datafile.State{
			{},                                  // sink
			{Transitions: []int32{0, 0, 0, 2}}, // state 1: on forward-state 3 -> edge-set 2
			{Transitions: []int32{0, 0, 3}},    // state 2: on forward-state 2 -> edge-set 3
		},
		Vertices: []datafile.Vertex{
			{}, // sentinel
			{ID: 1, Kind: datafile.VertexStart, Text: "S", With: 2},
			{ID: 2, Kind: datafile.VertexFinal, Text: "S", With: 1},
			{ID: 3, Kind: datafile.VertexIf, Text: "G", With: 4},
			{ID: 4, Kind: datafile.VertexFi, Text: "G", With: 3},
			{ID: 5, Kind: datafile.VertexNone, Text: "afterA"},
			{ID: 6, Kind: datafile.VertexNone, Text: "afterGuard"},
			{ID: 7, Kind: datafile.VertexNone, Text: "afterB"},
		},
		NullEdges: [][]datafile.Edge{
			nil, // edge-set 0 unused
			{{From: 7, To: 2}},
			{{From: 5, To: 3}, {From: 3, To: 4}, {From: 4, To: 6}},
			nil, // edge-set 3 has only a char edge
		},
		CharEdges: [][]datafile.Edge{
			nil,
			nil,
			{{From: 6, To: 7}},
			{{From: 1, To: 5}},
		},
		StartVertex: 1,
		FinalVertex: 2,
	}
}

func abToSymbol() []int32 {
	m := make([]int32, 'b'+1)
	m['a'] = 1
	m['b'] = 2
	return m
}
