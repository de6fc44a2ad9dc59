package graph

import "math"

// AddVertex inserts v if not already present. Returns true iff v was newly
// inserted.
func (g *Graph[V, E]) AddVertex(v V) (bool, error) {
	g.muVert.Lock()
	defer g.muVert.Unlock()

	if !g.modifiableLocked() {
		return false, ErrUnsupported
	}

	g.muSpec.Lock()
	defer g.muSpec.Unlock()

	return g.spec.addVertex(v), nil
}

// AddVertexFromSupplier creates a fresh vertex via the configured vertex
// Supplier. It fails with ErrNoVertexSupplier if none is configured, and
// with ErrDuplicateVertex if the supplier yields a value already present.
// The duplicate check runs under the same lock as the insert, closing the
// check-then-insert race a naive implementation would have.
func (g *Graph[V, E]) AddVertexFromSupplier() (V, error) {
	var zero V
	g.muVert.Lock()
	defer g.muVert.Unlock()

	if !g.modifiableLocked() {
		return zero, ErrUnsupported
	}
	if g.vertexSupplier == nil {
		return zero, ErrNoVertexSupplier
	}

	v := g.vertexSupplier()

	g.muSpec.Lock()
	defer g.muSpec.Unlock()

	if g.spec.containsVertex(v) {
		return zero, ErrDuplicateVertex
	}
	g.spec.addVertex(v)

	return v, nil
}

// RemoveVertex deletes v and every edge incident to it. Returns true iff v
// was present.
func (g *Graph[V, E]) RemoveVertex(v V) (bool, error) {
	g.muVert.Lock()
	defer g.muVert.Unlock()

	if !g.modifiableLocked() {
		return false, ErrUnsupported
	}

	g.muSpec.Lock()
	defer g.muSpec.Unlock()

	if !g.spec.containsVertex(v) {
		return false, nil
	}
	for _, e := range g.spec.edgesOf(v) {
		g.spec.removeEdge(e)
		delete(g.weights, e)
	}
	g.spec.removeVertex(v)

	return true, nil
}

// ContainsVertex reports whether v is present.
func (g *Graph[V, E]) ContainsVertex(v V) bool {
	g.muVert.RLock()
	defer g.muVert.RUnlock()
	g.muSpec.RLock()
	defer g.muSpec.RUnlock()

	return g.spec.containsVertex(v)
}

// VertexSet returns a live VertexSet view over the graph's current vertex
// catalog; later mutations on the graph are visible through it.
func (g *Graph[V, E]) VertexSet() VertexSet[V, E] { return VertexSet[V, E]{g: g} }

// VertexCount returns the 32-bit vertex count, or ErrCountOverflow if the
// true count exceeds math.MaxInt32 (use Iterables().VertexCount for the
// 64-bit facade).
func (g *Graph[V, E]) VertexCount() (int32, error) {
	g.muVert.RLock()
	defer g.muVert.RUnlock()
	g.muSpec.RLock()
	defer g.muSpec.RUnlock()

	n := g.spec.vertexCount()
	if n > math.MaxInt32 {
		return 0, ErrCountOverflow
	}

	return int32(n), nil
}

// DegreeOf returns the undirected degree of v: the number of incident
// edges, with self-loops counted twice.
func (g *Graph[V, E]) DegreeOf(v V) (int32, error) {
	g.muVert.RLock()
	defer g.muVert.RUnlock()
	g.muSpec.RLock()
	defer g.muSpec.RUnlock()

	if !g.spec.containsVertex(v) {
		return 0, ErrVertexNotFound
	}

	deg := 0
	for _, e := range g.spec.edgesOf(v) {
		from, to, _ := g.spec.edgeEndpoints(e)
		if from == to {
			deg += 2
		} else {
			deg++
		}
	}
	if deg > math.MaxInt32 {
		return 0, ErrCountOverflow
	}

	return int32(deg), nil
}

// InDegreeOf returns the directed in-degree of v: incoming directed edges,
// with a directed self-loop counted once toward in and once toward out.
func (g *Graph[V, E]) InDegreeOf(v V) (int32, error) {
	return g.directedDegree(v, true)
}

// OutDegreeOf returns the directed out-degree of v.
func (g *Graph[V, E]) OutDegreeOf(v V) (int32, error) {
	return g.directedDegree(v, false)
}

func (g *Graph[V, E]) directedDegree(v V, in bool) (int32, error) {
	g.muVert.RLock()
	defer g.muVert.RUnlock()
	g.muSpec.RLock()
	defer g.muSpec.RUnlock()

	if !g.spec.containsVertex(v) {
		return 0, ErrVertexNotFound
	}

	var edges []E
	if in {
		edges = g.spec.inEdgesOf(v)
	} else {
		edges = g.spec.outEdgesOf(v)
	}

	deg := len(edges)
	if deg > math.MaxInt32 {
		return 0, ErrCountOverflow
	}

	return int32(deg), nil
}

// RemoveAllVertices removes every vertex in vs, cascading to incident
// edges. Defined as the iteration of singular removals: not atomic across
// elements. Returns true if at least one vertex was removed.
func (g *Graph[V, E]) RemoveAllVertices(vs []V) (bool, error) {
	changed := false
	for _, v := range vs {
		removed, err := g.RemoveVertex(v)
		if err != nil {
			return changed, err
		}
		changed = changed || removed
	}

	return changed, nil
}
