package matching

import "github.com/ashgrove-dev/graphcore/graph"

// neighbor is one adjacency-list entry: the index of the opposite endpoint
// and the original edge value connecting them.
type neighbor[E comparable] struct {
	to   int
	edge E
}

// index is the compact 0..n-1 vertex indexing behind the engine's
// auxiliary state, built once per Match call from the graph's own read API
// and never mutated by the engine afterward.
type index[V comparable, E comparable] struct {
	vertices []V
	adj      [][]neighbor[E]
}

// buildIndex walks g's live VertexSet/EdgeSet views exactly once, excluding
// self-loops before the search begins: a self-loop can never participate in
// a matching. Edges are treated as symmetric regardless of the graph's
// orientation; a matching only needs the endpoint pair, not direction.
func buildIndex[V comparable, E comparable](g *graph.Graph[V, E]) *index[V, E] {
	vs := g.VertexSet().All()
	pos := make(map[V]int, len(vs))
	for i, v := range vs {
		pos[v] = i
	}

	idx := &index[V, E]{
		vertices: vs,
		adj:      make([][]neighbor[E], len(vs)),
	}
	for _, e := range g.EdgeSet().All() {
		from, _ := g.GetEdgeSource(e)
		to, _ := g.GetEdgeTarget(e)
		if from == to {
			continue
		}
		fi, ti := pos[from], pos[to]
		idx.adj[fi] = append(idx.adj[fi], neighbor[E]{to: ti, edge: e})
		idx.adj[ti] = append(idx.adj[ti], neighbor[E]{to: fi, edge: e})
	}

	return idx
}

// edgeBetween returns any one original edge value connecting vertex indices
// u and v, or ok=false if the index holds no such adjacency entry. Parallel
// edges resolve to whichever was encountered first while building the
// index — the matching engine never cares which parallel edge it uses.
func (idx *index[V, E]) edgeBetween(u, v int) (E, bool) {
	for _, nb := range idx.adj[u] {
		if nb.to == v {
			return nb.edge, true
		}
	}
	var zero E
	return zero, false
}

func (idx *index[V, E]) n() int { return len(idx.vertices) }
