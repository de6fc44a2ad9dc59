package graph

import "math"

// EdgeOption configures a single edge at AddEdge time. Today the only
// override is WithEdgeDirected, legal only on a Mixed-orientation Graph.
type EdgeOption[V comparable, E comparable] func(*edgeConfig)

type edgeConfig struct {
	directedOverride *bool
}

// WithEdgeDirected overrides the graph's default orientation for this one
// edge. Only legal when GetType().IsMixed(); otherwise AddEdge returns
// ErrUnsupported.
func WithEdgeDirected[V comparable, E comparable](directed bool) EdgeOption[V, E] {
	return func(c *edgeConfig) { c.directedOverride = &directed }
}

func resolveEdgeConfig[V comparable, E comparable](opts []EdgeOption[V, E]) edgeConfig {
	var c edgeConfig
	for _, opt := range opts {
		opt(&c)
	}
	return c
}

// AddEdge creates a fresh edge from the configured edge Supplier between
// from and to. added is false, with a nil error, when the Type forbids a
// second edge between an already-connected pair; the graph is unchanged. A
// self-loop on a graph that disallows them is a hard error
// (ErrSelfLoopNotAllowed), never the silent "not added" sentinel.
func (g *Graph[V, E]) AddEdge(from, to V, weight float64, opts ...EdgeOption[V, E]) (e E, added bool, err error) {
	if g.edgeSupplier == nil {
		return e, false, ErrNoEdgeSupplier
	}

	g.muVert.Lock()
	defer g.muVert.Unlock()
	g.muSpec.Lock()
	defer g.muSpec.Unlock()

	ok, err := g.precheckEdgeLocked(from, to, weight, opts)
	if err != nil || !ok {
		return e, false, err
	}

	candidate := g.edgeSupplier()
	if g.spec.containsEdge(candidate) {
		return e, false, ErrDuplicateEdge
	}

	g.insertEdgeLocked(candidate, from, to, weight, opts)

	return candidate, true, nil
}

// AddEdgeWithValue inserts the caller-supplied edge value e between from
// and to. Returns true iff e was newly inserted.
func (g *Graph[V, E]) AddEdgeWithValue(from, to V, e E, weight float64, opts ...EdgeOption[V, E]) (added bool, err error) {
	g.muVert.Lock()
	defer g.muVert.Unlock()
	g.muSpec.Lock()
	defer g.muSpec.Unlock()

	ok, err := g.precheckEdgeLocked(from, to, weight, opts)
	if err != nil || !ok {
		return false, err
	}
	if g.spec.containsEdge(e) {
		return false, nil
	}

	g.insertEdgeLocked(e, from, to, weight, opts)

	return true, nil
}

// precheckEdgeLocked validates type-enforcement and endpoint presence under
// both write locks. ok=false with err=nil means "not added" (duplicate pair
// rejected by the Type); ok=false with err!=nil means a hard failure.
func (g *Graph[V, E]) precheckEdgeLocked(from, to V, weight float64, opts []EdgeOption[V, E]) (bool, error) {
	if !g.modifiableLocked() {
		return false, ErrUnsupported
	}
	if !g.typ.Weighted && weight != 0 {
		return false, ErrUnsupported
	}
	if !g.spec.containsVertex(from) || !g.spec.containsVertex(to) {
		return false, ErrVertexNotFound
	}
	if from == to && !g.typ.AllowsSelfLoops {
		return false, ErrSelfLoopNotAllowed
	}
	cfg := resolveEdgeConfig(opts)
	if cfg.directedOverride != nil && !g.typ.IsMixed() {
		return false, ErrUnsupported
	}
	if !g.typ.AllowsMultipleEdges {
		if len(g.spec.getAllEdges(from, to)) > 0 {
			return false, nil // "not added" sentinel, graph unchanged
		}
	}

	return true, nil
}

// insertEdgeLocked performs the actual specifics mutation; callers must have
// already run precheckEdgeLocked successfully under both write locks.
func (g *Graph[V, E]) insertEdgeLocked(e E, from, to V, weight float64, opts []EdgeOption[V, E]) {
	cfg := resolveEdgeConfig(opts)
	directed := g.typ.IsDirected()
	if cfg.directedOverride != nil {
		directed = *cfg.directedOverride
	}

	g.spec.addEdge(e, from, to, directed)
	if g.typ.Weighted {
		g.weights[e] = weight
	}
}

// RemoveEdge deletes the edge with the given value. Returns the removed
// edge's from/to and true, or zero values and false if e was absent.
func (g *Graph[V, E]) RemoveEdge(e E) (from, to V, ok bool, err error) {
	g.muSpec.Lock()
	defer g.muSpec.Unlock()

	if !g.modifiableLocked() {
		return from, to, false, ErrUnsupported
	}

	r, removed := g.spec.removeEdge(e)
	if !removed {
		return from, to, false, nil
	}
	delete(g.weights, e)

	return r.from, r.to, true, nil
}

// RemoveEdgesBetween removes every edge between from and to and returns how
// many were removed. Bulk removal is the iteration of singular removals,
// not atomic across elements.
func (g *Graph[V, E]) RemoveEdgesBetween(from, to V) (int, error) {
	g.muSpec.Lock()
	defer g.muSpec.Unlock()

	if !g.modifiableLocked() {
		return 0, ErrUnsupported
	}

	edges := g.spec.getAllEdges(from, to)
	for _, e := range edges {
		g.spec.removeEdge(e)
		delete(g.weights, e)
	}

	return len(edges), nil
}

// ContainsEdge reports whether e is present.
func (g *Graph[V, E]) ContainsEdge(e E) bool {
	g.muSpec.RLock()
	defer g.muSpec.RUnlock()

	return g.spec.containsEdge(e)
}

// ContainsEdgeBetween reports whether at least one edge from->to exists.
func (g *Graph[V, E]) ContainsEdgeBetween(from, to V) bool {
	g.muSpec.RLock()
	defer g.muSpec.RUnlock()

	_, ok := g.spec.getEdge(from, to)
	return ok
}

// EdgeSet returns a live EdgeSet view over the current edge catalog.
func (g *Graph[V, E]) EdgeSet() EdgeSet[V, E] { return EdgeSet[V, E]{g: g} }

// EdgeCount returns the 32-bit edge count, or ErrCountOverflow if the true
// count exceeds math.MaxInt32.
func (g *Graph[V, E]) EdgeCount() (int32, error) {
	g.muSpec.RLock()
	defer g.muSpec.RUnlock()

	n := g.spec.edgeCount()
	if n > math.MaxInt32 {
		return 0, ErrCountOverflow
	}

	return int32(n), nil
}

// EdgesOf returns a live EdgeSet view restricted to edges incident to v
// (self-loops included once), or ErrVertexNotFound if v is absent.
func (g *Graph[V, E]) EdgesOf(v V) (EdgeSet[V, E], error) {
	return g.incidentSet(v, incidentAll)
}

// InEdgesOf returns a live EdgeSet view of edges directed into v (identical
// to EdgesOf(v) when the edge or graph is undirected).
func (g *Graph[V, E]) InEdgesOf(v V) (EdgeSet[V, E], error) {
	return g.incidentSet(v, incidentIn)
}

// OutEdgesOf returns a live EdgeSet view of edges directed out of v.
func (g *Graph[V, E]) OutEdgesOf(v V) (EdgeSet[V, E], error) {
	return g.incidentSet(v, incidentOut)
}

type incidentKind uint8

const (
	incidentAll incidentKind = iota
	incidentIn
	incidentOut
)

func (g *Graph[V, E]) incidentSet(v V, kind incidentKind) (EdgeSet[V, E], error) {
	g.muSpec.RLock()
	defer g.muSpec.RUnlock()

	if !g.spec.containsVertex(v) {
		return EdgeSet[V, E]{}, ErrVertexNotFound
	}

	return EdgeSet[V, E]{g: g, vertex: &v, kind: kind}, nil
}

// GetEdge returns any one edge between from and to, or ok=false if none
// exists. An absent endpoint also yields ok=false, never an error.
func (g *Graph[V, E]) GetEdge(from, to V) (e E, ok bool) {
	g.muSpec.RLock()
	defer g.muSpec.RUnlock()

	return g.spec.getEdge(from, to)
}

// GetAllEdges returns every edge between from and to.
func (g *Graph[V, E]) GetAllEdges(from, to V) []E {
	g.muSpec.RLock()
	defer g.muSpec.RUnlock()

	return g.spec.getAllEdges(from, to)
}

// GetEdgeSource returns e's source endpoint.
func (g *Graph[V, E]) GetEdgeSource(e E) (V, error) {
	g.muSpec.RLock()
	defer g.muSpec.RUnlock()

	from, _, ok := g.spec.edgeEndpoints(e)
	if !ok {
		var zero V
		return zero, ErrEdgeNotFound
	}

	return from, nil
}

// GetEdgeTarget returns e's target endpoint.
func (g *Graph[V, E]) GetEdgeTarget(e E) (V, error) {
	g.muSpec.RLock()
	defer g.muSpec.RUnlock()

	_, to, ok := g.spec.edgeEndpoints(e)
	if !ok {
		var zero V
		return zero, ErrEdgeNotFound
	}

	return to, nil
}

// GetEdgeWeight returns e's weight: 1.0 (or the configured default) when the
// graph is unweighted, else the stored weight.
func (g *Graph[V, E]) GetEdgeWeight(e E) (float64, error) {
	g.muSpec.RLock()
	defer g.muSpec.RUnlock()

	if !g.spec.containsEdge(e) {
		return 0, ErrEdgeNotFound
	}
	if !g.typ.Weighted {
		return g.defaultWeight, nil
	}

	return g.weights[e], nil
}

// SetEdgeWeight updates e's weight. Fails with ErrUnsupported on an
// unweighted graph.
func (g *Graph[V, E]) SetEdgeWeight(e E, w float64) error {
	g.muSpec.Lock()
	defer g.muSpec.Unlock()

	if !g.modifiableLocked() || !g.typ.Weighted {
		return ErrUnsupported
	}
	if !g.spec.containsEdge(e) {
		return ErrEdgeNotFound
	}

	g.weights[e] = w

	return nil
}

// IsEdgeDirected reports whether e is a directed edge. Outside a Mixed
// graph's per-edge overrides this equals GetType().IsDirected().
func (g *Graph[V, E]) IsEdgeDirected(e E) (bool, error) {
	g.muSpec.RLock()
	defer g.muSpec.RUnlock()

	if !g.spec.containsEdge(e) {
		return false, ErrEdgeNotFound
	}

	return g.spec.edgeDirected(e), nil
}

// RemoveAllEdges removes every edge in es. Defined as the iteration of
// singular removals: not atomic across elements. Returns true if at least
// one edge was removed.
func (g *Graph[V, E]) RemoveAllEdges(es []E) (bool, error) {
	changed := false
	for _, e := range es {
		_, _, removed, err := g.RemoveEdge(e)
		if err != nil {
			return changed, err
		}
		changed = changed || removed
	}

	return changed, nil
}
