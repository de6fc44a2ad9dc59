package matching

import "github.com/ashgrove-dev/graphcore/graph"

// Match runs the sparse Edmonds blossom algorithm over g and returns a
// maximum-cardinality matching M together with a dual odd-set-cover
// certificate Y such that Certify(g, M, Y) accepts. g is never mutated;
// self-loops are excluded before the search begins and can never appear in
// M. Match never errors on algorithmic grounds: it always returns some
// (M, Y), even for an empty graph (M is empty, Y is one singleton per
// vertex).
//
// Contract: g may be any graph.Graph, directed or not; edges are treated as
// symmetric for matching purposes (only their endpoint pair matters).
// Isolated vertices and parallel edges are handled but never help: an
// isolated vertex is always free, and only one edge of any parallel bundle
// is ever chosen to represent a match.
func Match[V comparable, E comparable](g *graph.Graph[V, E]) (Matching[E], OddSetCover[V]) {
	idx := buildIndex(g)
	eng := newEngine(idx)
	eng.run()

	return eng.result()
}
