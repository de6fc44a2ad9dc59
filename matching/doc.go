// Package matching implements maximum-cardinality matching over a
// github.com/ashgrove-dev/graphcore/graph.Graph: the sparse Edmonds
// "blossom" algorithm (Match) together with an independent optimality
// certifier (Certify) that validates a candidate matching and its dual
// odd-set cover against the graph's own read API, without trusting the
// engine that produced them.
//
// Match builds a compact 0..n-1 vertex index over the graph once per call;
// all scratch state is scoped to that call, no background goroutines, no
// engine state outliving the return. The graph is never mutated.
// Self-loops are excluded before the search begins: they can never belong
// to a matching.
package matching
