/*
Package parselov is a grammar-agnostic, data-driven parser runtime.

It consumes a precompiled data file describing a context-free grammar
(produced by an external, out-of-scope generator) and an input text, and
emits a compact parse-edge stream that encodes every parse tree of the
input under the grammar, in linear time and memory. Package structure is
as follows:

■ datafile: immutable, read-only handle onto the precompiled grammar
tables (forwards/backwards automata, vertices, null/char edges).

■ alphabet: maps input code points to the small symbol indices the
automata operate on.

■ forward, backward: the two-pass finite-state simulator that turns an
input's symbol stream into a sequence of edge-set identifiers.

■ graph: assembles the parse graph from an edge-set sequence via lookups
into the DataFile's null_edges/char_edges tables.

■ dot: renders a parse graph as GraphViz text, for inspection.

■ backtrack: a depth-first, priority-ordered resolver that finds one
well-nested path through the parse graph.

■ stackgraph, parallel: a non-deterministic pushdown simulation that
shares a stack graph across all live alternatives, for grammars where
backtracking search would be exponential.

■ pipeline: wires the above into the single synchronous call most callers
want: input bytes in, parse tree or rejection out.

The base package contains data types used throughout the other packages.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2021–2026 The parselov authors.
*/
package parselov
