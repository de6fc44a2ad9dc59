package graph

// VertexSet is a live, borrowed view over a Graph's vertex catalog: a small
// value type holding a reference to the graph, not a copy of its contents.
// It shares storage with the Graph it was taken from, so later mutations on
// the Graph are immediately visible through the set.
type VertexSet[V comparable, E comparable] struct {
	g *Graph[V, E]
}

// Contains reports whether v is currently in the set.
func (s VertexSet[V, E]) Contains(v V) bool { return s.g.ContainsVertex(v) }

// Len returns the current 32-bit vertex count (see Graph.VertexCount).
func (s VertexSet[V, E]) Len() (int32, error) { return s.g.VertexCount() }

// All returns a snapshot slice of every vertex, in insertion order. The
// slice itself is not live — mutate the Graph and call All again to observe
// changes — but the set it was taken from still is.
func (s VertexSet[V, E]) All() []V {
	s.g.muSpec.RLock()
	defer s.g.muSpec.RUnlock()

	return s.g.spec.vertexOrder()
}

// EdgeSet is a live, borrowed view over a Graph's edge catalog, optionally
// restricted to the edges incident to one vertex (EdgesOf/InEdgesOf/
// OutEdgesOf construct a restricted EdgeSet; Graph.EdgeSet constructs an
// unrestricted one covering the whole graph).
type EdgeSet[V comparable, E comparable] struct {
	g      *Graph[V, E]
	vertex *V
	kind   incidentKind
}

// Contains reports whether e is currently a member of this set.
func (s EdgeSet[V, E]) Contains(e E) bool {
	if s.g == nil {
		return false
	}
	if s.vertex == nil {
		return s.g.ContainsEdge(e)
	}
	for _, m := range s.All() {
		if m == e {
			return true
		}
	}
	return false
}

// Len returns the current size of the set.
func (s EdgeSet[V, E]) Len() int {
	return len(s.All())
}

// All returns a snapshot slice of every edge in the set, in edge insertion
// order.
func (s EdgeSet[V, E]) All() []E {
	if s.g == nil {
		return nil
	}

	s.g.muSpec.RLock()
	defer s.g.muSpec.RUnlock()

	if s.vertex == nil {
		return s.g.spec.edgeOrder()
	}

	switch s.kind {
	case incidentIn:
		return s.g.spec.inEdgesOf(*s.vertex)
	case incidentOut:
		return s.g.spec.outEdgesOf(*s.vertex)
	default:
		return s.g.spec.edgesOf(*s.vertex)
	}
}

// OppositeVertex returns the endpoint of e that is not probe: if probe
// equals the source it returns the target, else (if probe equals the
// target) it returns the source. It fails with ErrEdgeNotFound if e does
// not exist, or ErrVertexNotFound if probe is not an endpoint of e. An
// endpoint of an undirected edge may sit in either slot, so consumers
// probing incident edges should always go through this helper.
func (g *Graph[V, E]) OppositeVertex(e E, probe V) (V, error) {
	g.muSpec.RLock()
	defer g.muSpec.RUnlock()

	from, to, ok := g.spec.edgeEndpoints(e)
	if !ok {
		var zero V
		return zero, ErrEdgeNotFound
	}
	switch probe {
	case from:
		return to, nil
	case to:
		return from, nil
	default:
		var zero V
		return zero, ErrVertexNotFound
	}
}
