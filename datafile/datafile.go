/*
Package datafile loads and holds the precompiled grammar tables a parselov
pipeline run operates on: the forwards and backwards automata, the vertex
table, and the null_edges/char_edges tables keyed by edge-set ID.

A DataFile is immutable after Load returns successfully. All hot-path
lookups (state transitions) are dense array reads; vertex and edge-set
lookups are dense too, since every table is indexed by a small contiguous
ID assigned by the (out-of-scope) generator.

The outer byte stream is gzip-compressed; the inner document is a JSON
object shaped as described in the parent module's external-interfaces
section. This loader follows the "later, more general shape" that
document settles on: separate forwards/backwards automata and unified
null_edges/char_edges tables, rather than the earlier `g.states[...]`/
`is_accepting`/`intersections` shape some data files in the wild still use.

Decoding uses github.com/buger/jsonparser instead of encoding/json: the
tables are large, flat, and read-only once loaded, so there is no value in
materializing an intermediate map[string]interface{} tree just to throw it
away after populating dense slices.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2021–2026 The parselov authors.
*/
package datafile

import (
	"compress/gzip"
	"io"

	"github.com/buger/jsonparser"
	"github.com/npillmayer/schuko/tracing"

	"github.com/corvidae/parselov/errs"
)

// tracer traces with key 'parselov.datafile'.
func tracer() tracing.Trace {
	return tracing.Select("parselov.datafile")
}

// DataFile is an immutable, read-only handle onto a precompiled grammar.
// Construct one with Load. Vertex 0 and state 0 are reserved sentinels; see
// the package doc and the parent module's data-model section.
type DataFile struct {
	InputToSymbol []int32
	Forwards      []State
	Backwards     []State
	Vertices      []Vertex
	NullEdges     [][]Edge
	CharEdges     [][]Edge
	StartVertex   int
	FinalVertex   int
}

// Option configures a Load/Parse call.
type Option func(*config)

type config struct {
	skipValidation bool
}

// WithoutValidation skips the structural invariant checks validate()
// otherwise runs (with-pairing, edge-set length equality, sentinel
// vertices). Defaults to off: a data file that has already been validated
// once by its generator, and is being reloaded from a trusted cache, can
// skip paying for the same pass twice.
func WithoutValidation() Option {
	return func(c *config) { c.skipValidation = true }
}

// Load decompresses r (gzip) and parses the inner JSON document into an
// immutable DataFile, verifying the structural invariants documented on
// the package. It returns an *errs.InvalidDataFileError wrapped error when
// a required invariant does not hold.
func Load(r io.Reader, opts ...Option) (*DataFile, error) {
	gz, err := gzip.NewReader(r)
	if err != nil {
		return nil, errs.WrapInvalidDataFile(err, "not a gzip stream")
	}
	defer gz.Close()
	raw, err := io.ReadAll(gz)
	if err != nil {
		return nil, errs.WrapInvalidDataFile(err, "failed reading gzip payload")
	}
	return Parse(raw, opts...)
}

// Parse decodes an already-decompressed JSON document into a DataFile.
// Exposed separately from Load so tests and tools that keep fixtures as
// plain JSON don't need to gzip them first.
func Parse(raw []byte, opts ...Option) (*DataFile, error) {
	cfg := config{}
	for _, o := range opts {
		o(&cfg)
	}
	df := &DataFile{}

	if err := parseIntArray(raw, "input_to_symbol", &df.InputToSymbol); err != nil {
		return nil, errs.WrapInvalidDataFile(err, "input_to_symbol")
	}

	var err error
	df.Forwards, err = parseStates(raw, "forwards")
	if err != nil {
		return nil, errs.WrapInvalidDataFile(err, "forwards")
	}
	df.Backwards, err = parseStates(raw, "backwards")
	if err != nil {
		return nil, errs.WrapInvalidDataFile(err, "backwards")
	}
	df.Vertices, err = parseVertices(raw)
	if err != nil {
		return nil, errs.WrapInvalidDataFile(err, "vertices")
	}
	df.NullEdges, err = parseEdgeSets(raw, "null_edges")
	if err != nil {
		return nil, errs.WrapInvalidDataFile(err, "null_edges")
	}
	df.CharEdges, err = parseEdgeSets(raw, "char_edges")
	if err != nil {
		return nil, errs.WrapInvalidDataFile(err, "char_edges")
	}

	startV, err := jsonparser.GetInt(raw, "start_vertex")
	if err != nil {
		return nil, errs.WrapInvalidDataFile(err, "missing start_vertex")
	}
	finalV, err := jsonparser.GetInt(raw, "final_vertex")
	if err != nil {
		return nil, errs.WrapInvalidDataFile(err, "missing final_vertex")
	}
	df.StartVertex = int(startV)
	df.FinalVertex = int(finalV)

	if !cfg.skipValidation {
		if err := df.validate(); err != nil {
			return nil, err
		}
	}
	tracer().Debugf("loaded data file: %d forward states, %d backward states, %d vertices, %d edge-sets",
		len(df.Forwards), len(df.Backwards), len(df.Vertices), len(df.NullEdges))
	return df, nil
}

// validate checks the invariants the parent module's data-model section
// requires the runtime to verify at load time.
func (df *DataFile) validate() error {
	if df.StartVertex == 0 {
		return errs.InvalidDataFile("start_vertex must not be the sentinel vertex 0")
	}
	if df.FinalVertex == 0 {
		return errs.InvalidDataFile("final_vertex must not be the sentinel vertex 0")
	}
	if len(df.Forwards) < 2 {
		return errs.InvalidDataFile("forwards automaton must define state 1 (the initial state)")
	}
	if len(df.Backwards) < 2 {
		return errs.InvalidDataFile("backwards automaton must define state 1 (the initial state)")
	}
	if len(df.NullEdges) != len(df.CharEdges) {
		return errs.InvalidDataFile("null_edges and char_edges must be the same length")
	}
	if df.StartVertex >= len(df.Vertices) || df.FinalVertex >= len(df.Vertices) {
		return errs.InvalidDataFile("start_vertex or final_vertex out of range of vertices table")
	}
	for _, v := range df.Vertices {
		if v.With == 0 {
			continue
		}
		if v.With < 0 || v.With >= len(df.Vertices) {
			return errs.InvalidDataFile("vertex 'with' reference out of range")
		}
		partner := df.Vertices[v.With]
		switch v.Kind {
		case VertexStart:
			if partner.Kind != VertexFinal {
				return errs.InvalidDataFile("start vertex's with must point to a final vertex")
			}
		case VertexFinal:
			if partner.Kind != VertexStart {
				return errs.InvalidDataFile("final vertex's with must point to a start vertex")
			}
		case VertexIf:
			if partner.Kind != VertexFi {
				return errs.InvalidDataFile("if vertex's with must point to a fi vertex")
			}
		case VertexFi:
			if partner.Kind != VertexIf {
				return errs.InvalidDataFile("fi vertex's with must point to an if vertex")
			}
		}
	}
	return nil
}

func parseIntArray(raw []byte, key string, out *[]int32) error {
	var parseErr error
	_, err := jsonparser.ArrayEach(raw, func(value []byte, dataType jsonparser.ValueType, offset int, err error) {
		n, perr := jsonparser.ParseInt(value)
		if perr != nil {
			parseErr = perr
			return
		}
		*out = append(*out, int32(n))
	}, key)
	if err != nil && err != jsonparser.KeyPathNotFoundError {
		return err
	}
	return parseErr
}

func parseStates(raw []byte, key string) ([]State, error) {
	var states []State
	var outerErr error
	_, err := jsonparser.ArrayEach(raw, func(value []byte, dataType jsonparser.ValueType, offset int, err error) {
		if outerErr != nil {
			return
		}
		st, serr := parseOneState(value)
		if serr != nil {
			outerErr = serr
			return
		}
		states = append(states, st)
	}, key)
	if err != nil && err != jsonparser.KeyPathNotFoundError {
		return nil, err
	}
	return states, outerErr
}

func parseOneState(value []byte) (State, error) {
	st := State{}
	accepts, err := jsonparser.GetBoolean(value, "accepts")
	if err != nil {
		// accepts may have been serialized as 0/1 rather than a JSON bool
		// (see the parent module's note on data-file shapes having
		// evolved over time).
		n, ierr := jsonparser.GetInt(value, "accepts")
		if ierr == nil {
			accepts = n != 0
		}
	}
	st.Accepts = accepts

	// transitions: object of symbol(string) -> state(int). We don't know
	// the alphabet size in advance, so grow the dense array to the widest
	// key as we go; never-written slots default to 0 (sink), matching
	// the invariant.
	err = jsonparser.ObjectEach(value, func(key, val []byte, dataType jsonparser.ValueType, offset int) error {
		symN, kerr := jsonparser.ParseInt(key)
		if kerr != nil {
			return kerr
		}
		stateN, verr := jsonparser.ParseInt(val)
		if verr != nil {
			return verr
		}
		sym := int(symN)
		if sym < 0 {
			return nil
		}
		if sym >= len(st.Transitions) {
			grown := make([]int32, sym+1)
			copy(grown, st.Transitions)
			st.Transitions = grown
		}
		st.Transitions[sym] = int32(stateN)
		return nil
	}, "transitions")
	if err != nil && err != jsonparser.KeyPathNotFoundError {
		return State{}, err
	}
	return st, nil
}

func parseVertices(raw []byte) ([]Vertex, error) {
	var vertices []Vertex
	var outerErr error
	id := 0
	_, err := jsonparser.ArrayEach(raw, func(value []byte, dataType jsonparser.ValueType, offset int, err error) {
		if outerErr != nil {
			return
		}
		v := Vertex{ID: id}
		id++
		if typ, terr := jsonparser.GetString(value, "type"); terr == nil {
			switch typ {
			case "start":
				v.Kind = VertexStart
			case "final":
				v.Kind = VertexFinal
			case "if":
				v.Kind = VertexIf
			case "fi":
				v.Kind = VertexFi
			}
		}
		if text, terr := jsonparser.GetString(value, "text"); terr == nil {
			v.Text = text
		}
		if with, werr := jsonparser.GetInt(value, "with"); werr == nil {
			v.With = int(with)
		}
		if sk, skerr := jsonparser.GetInt(value, "sort_key"); skerr == nil {
			v.SortKey = int(sk)
		}
		if sv, sverr := jsonparser.GetInt(value, "stack_vertex"); sverr == nil {
			v.StackVertex = int(sv)
		}
		vertices = append(vertices, v)
	}, "vertices")
	if err != nil && err != jsonparser.KeyPathNotFoundError {
		return nil, err
	}
	return vertices, outerErr
}

func parseEdgeSets(raw []byte, key string) ([][]Edge, error) {
	var sets [][]Edge
	var outerErr error
	_, err := jsonparser.ArrayEach(raw, func(value []byte, dataType jsonparser.ValueType, offset int, err error) {
		if outerErr != nil {
			return
		}
		var edges []Edge
		_, ierr := jsonparser.ArrayEach(value, func(pair []byte, pdt jsonparser.ValueType, poffset int, perr error) {
			if outerErr != nil {
				return
			}
			nums := make([]int, 0, 2)
			_, aerr := jsonparser.ArrayEach(pair, func(n []byte, ndt jsonparser.ValueType, noffset int, nerr error) {
				v, perr2 := jsonparser.ParseInt(n)
				if perr2 != nil {
					outerErr = perr2
					return
				}
				nums = append(nums, int(v))
			})
			if aerr != nil {
				outerErr = aerr
				return
			}
			if len(nums) != 2 {
				outerErr = errs.InvalidDataFile("edge pair must have exactly 2 elements")
				return
			}
			edges = append(edges, Edge{From: nums[0], To: nums[1]})
		})
		if ierr != nil && ierr != jsonparser.KeyPathNotFoundError {
			outerErr = ierr
		}
		sets = append(sets, edges)
	}, key)
	if err != nil && err != jsonparser.KeyPathNotFoundError {
		return nil, err
	}
	return sets, outerErr
}
