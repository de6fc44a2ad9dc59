package matching

import "github.com/ashgrove-dev/graphcore/graph"

// Certify validates a candidate (M, Y) pair against g: a total witness
// that accepts iff M is a valid matching and Y is a genuine odd-set-cover
// dual certificate for it. Certify never trusts whatever engine produced
// (M, Y), Match included; every check re-derives its answer from g's own
// read API and the two candidate values handed to it.
//
// Accepts iff all of:
//
//  1. Every edge of M exists in g with distinct endpoints, and no vertex
//     is an endpoint of two edges of M.
//  2. Every set in Y has odd cardinality and non-negative weight.
//  3. Every non-self-loop edge of g has both endpoints inside one
//     multi-vertex set of Y, or at least one positive-weighted singleton
//     endpoint. Self-loops are excluded here: they can never participate
//     in a matching, and a single vertex cannot cover its own degenerate
//     edge the way two distinct endpoints can.
//  4. The Gallai identity holds with equality: 2|M| + deficiency(Y) = |V|,
//     where deficiency sums (|S|-1)·weight over multi-vertex sets plus the
//     count of zero-weight singletons.
func Certify[V comparable, E comparable](g *graph.Graph[V, E], m Matching[E], y OddSetCover[V]) bool {
	if !matchingIsValid(g, m) {
		return false
	}
	if !coverIsWellFormed(y) {
		return false
	}
	if !coverCoversEveryEdge(g, y) {
		return false
	}

	return gallaiIdentityHolds(g, m, y)
}

// matchingIsValid checks rule 1: every edge of M exists in g with distinct
// endpoints, and no vertex is an endpoint of two edges of M.
func matchingIsValid[V comparable, E comparable](g *graph.Graph[V, E], m Matching[E]) bool {
	seen := make(map[V]bool)
	for _, e := range m.Edges() {
		if !g.ContainsEdge(e) {
			return false
		}
		from, errFrom := g.GetEdgeSource(e)
		to, errTo := g.GetEdgeTarget(e)
		if errFrom != nil || errTo != nil {
			return false
		}
		if from == to {
			return false // a self-loop can never belong to a matching
		}
		if seen[from] || seen[to] {
			return false
		}
		seen[from], seen[to] = true, true
	}

	return true
}

// coverIsWellFormed checks rule 2: every set in Y has odd cardinality and a
// non-negative weight.
func coverIsWellFormed[V comparable](y OddSetCover[V]) bool {
	for _, s := range y.Sets {
		if s.Weight < 0 {
			return false
		}
		if len(s.Vertices) == 0 || len(s.Vertices)%2 == 0 {
			return false
		}
	}

	return true
}

// coverCoversEveryEdge checks rule 3 against every non-self-loop edge of g.
func coverCoversEveryEdge[V comparable, E comparable](g *graph.Graph[V, E], y OddSetCover[V]) bool {
	membership := make(map[V][]int)
	for i, s := range y.Sets {
		for _, v := range s.Vertices {
			membership[v] = append(membership[v], i)
		}
	}

	for _, e := range g.EdgeSet().All() {
		from, _ := g.GetEdgeSource(e)
		to, _ := g.GetEdgeTarget(e)
		if from == to {
			continue
		}
		if !edgeCovered(y, membership, from, to) {
			return false
		}
	}

	return true
}

func edgeCovered[V comparable](y OddSetCover[V], membership map[V][]int, from, to V) bool {
	for _, i := range membership[from] {
		s := y.Sets[i]
		if len(s.Vertices) > 1 && containsVertex(s.Vertices, to) {
			return true
		}
	}

	return isPositiveSingleton(y, membership, from) || isPositiveSingleton(y, membership, to)
}

func isPositiveSingleton[V comparable](y OddSetCover[V], membership map[V][]int, v V) bool {
	for _, i := range membership[v] {
		s := y.Sets[i]
		if len(s.Vertices) == 1 && s.Weight > 0 {
			return true
		}
	}

	return false
}

func containsVertex[V comparable](vs []V, target V) bool {
	for _, v := range vs {
		if v == target {
			return true
		}
	}

	return false
}

// gallaiIdentityHolds checks rule 4: 2|M| + deficiency(Y) = |V|, where
// deficiency(Y) sums (|S|-1)*Weight over every multi-vertex set plus the
// count of zero-weight singletons.
func gallaiIdentityHolds[V comparable, E comparable](g *graph.Graph[V, E], m Matching[E], y OddSetCover[V]) bool {
	n := g.Iterables().VertexCount()

	var deficiency int64
	for _, s := range y.Sets {
		switch {
		case len(s.Vertices) > 1:
			deficiency += int64(len(s.Vertices)-1) * int64(s.Weight)
		case s.Weight == 0:
			deficiency++
		}
	}

	return 2*int64(m.Len())+deficiency == n
}
