package graph

// Non-owning view wrappers over an existing Graph. Each view pairs the
// wrapped Graph's Type (adjusted as the view requires) with a small
// specifics adapter that delegates reads to the wrapped graph's own
// specifics and translates or rejects writes.

// Unmodifiable returns a view of g whose every mutator fails with
// ErrUnsupported; reads delegate live to g. The view shares g's edge
// weights and vertex/edge storage, a read-only handle rather than a copy,
// so callers broadcasting g to concurrent readers must stop mutating g
// directly once they hand out this view.
func Unmodifiable[V comparable, E comparable](g *Graph[V, E]) *Graph[V, E] {
	view := &Graph[V, E]{
		typ:            g.typ.AsUnmodifiable(),
		storageKind:    g.storageKind,
		vertexSupplier: g.vertexSupplier,
		edgeSupplier:   g.edgeSupplier,
		defaultWeight:  g.defaultWeight,
		weights:        g.weights,
		spec:           &unmodifiableSpecifics[V, E]{inner: g.spec},
	}

	return view
}

// UndirectedOf returns an undirected view of a directed graph g: EdgesOf(v)
// is the union of g's InEdgesOf(v) and OutEdgesOf(v) with duplicates
// eliminated, and InEdgesOf/OutEdgesOf on the view alias EdgesOf. The view
// rejects writes: translating a write through an orientation change would
// silently redefine which endpoint is the source for every future read,
// a sharper surprise than refusing the write outright.
func UndirectedOf[V comparable, E comparable](g *Graph[V, E]) *Graph[V, E] {
	view := &Graph[V, E]{
		typ:            g.typ.AsUndirected().AsUnmodifiable(),
		storageKind:    g.storageKind,
		vertexSupplier: g.vertexSupplier,
		edgeSupplier:   g.edgeSupplier,
		defaultWeight:  g.defaultWeight,
		weights:        g.weights,
		spec:           &undirectedViewSpecifics[V, E]{inner: g.spec},
	}

	return view
}

// ReversedOf returns an edge-reversed view of directed graph g: every read
// of an edge's source/target is swapped, and InEdgesOf/OutEdgesOf are
// swapped accordingly. Unlike
// UndirectedOf, writes are translated rather than rejected: AddEdge(u, v)
// on the view inserts u<-v in the wrapped graph, keeping the view's own
// future reads consistent, and RemoveEdge/RemoveEdgesBetween translate the
// same way. The view inherits g's Modifiable flag.
func ReversedOf[V comparable, E comparable](g *Graph[V, E]) *Graph[V, E] {
	view := &Graph[V, E]{
		typ:            g.typ,
		storageKind:    g.storageKind,
		vertexSupplier: g.vertexSupplier,
		edgeSupplier:   g.edgeSupplier,
		defaultWeight:  g.defaultWeight,
		weights:        g.weights,
		spec:           &reversedViewSpecifics[V, E]{inner: g.spec},
	}

	return view
}

// unmodifiableSpecifics delegates every read to inner and refuses every write.
type unmodifiableSpecifics[V comparable, E comparable] struct {
	inner specifics[V, E]
}

func (s *unmodifiableSpecifics[V, E]) modifiable() bool                      { return false }
func (s *unmodifiableSpecifics[V, E]) addVertex(V) bool                      { return false }
func (s *unmodifiableSpecifics[V, E]) removeVertex(V)                        {}
func (s *unmodifiableSpecifics[V, E]) addEdge(E, V, V, bool)                 {}
func (s *unmodifiableSpecifics[V, E]) removeEdge(E) (edgeRecord[V], bool)    { return edgeRecord[V]{}, false }
func (s *unmodifiableSpecifics[V, E]) containsVertex(v V) bool               { return s.inner.containsVertex(v) }
func (s *unmodifiableSpecifics[V, E]) vertexCount() int                      { return s.inner.vertexCount() }
func (s *unmodifiableSpecifics[V, E]) vertexOrder() []V                      { return s.inner.vertexOrder() }
func (s *unmodifiableSpecifics[V, E]) containsEdge(e E) bool                 { return s.inner.containsEdge(e) }
func (s *unmodifiableSpecifics[V, E]) edgeCount() int                        { return s.inner.edgeCount() }
func (s *unmodifiableSpecifics[V, E]) edgeOrder() []E                        { return s.inner.edgeOrder() }
func (s *unmodifiableSpecifics[V, E]) edgeEndpoints(e E) (V, V, bool)        { return s.inner.edgeEndpoints(e) }
func (s *unmodifiableSpecifics[V, E]) edgeDirected(e E) bool                 { return s.inner.edgeDirected(e) }
func (s *unmodifiableSpecifics[V, E]) getEdge(from, to V) (E, bool)          { return s.inner.getEdge(from, to) }
func (s *unmodifiableSpecifics[V, E]) getAllEdges(from, to V) []E           { return s.inner.getAllEdges(from, to) }
func (s *unmodifiableSpecifics[V, E]) edgesOf(v V) []E                       { return s.inner.edgesOf(v) }
func (s *unmodifiableSpecifics[V, E]) inEdgesOf(v V) []E                     { return s.inner.inEdgesOf(v) }
func (s *unmodifiableSpecifics[V, E]) outEdgesOf(v V) []E                    { return s.inner.outEdgesOf(v) }

// undirectedViewSpecifics presents a directed inner specifics as undirected:
// EdgesOf is already the union inner computes for directed graphs (both
// endpoints are added to the incidence set regardless of direction — see
// specifics_mapofsets.go), so it's reused as-is; InEdgesOf/OutEdgesOf alias
// it instead of returning the direction-split sets.
type undirectedViewSpecifics[V comparable, E comparable] struct {
	inner specifics[V, E]
}

func (s *undirectedViewSpecifics[V, E]) modifiable() bool                   { return false }
func (s *undirectedViewSpecifics[V, E]) addVertex(V) bool                   { return false }
func (s *undirectedViewSpecifics[V, E]) removeVertex(V)                     {}
func (s *undirectedViewSpecifics[V, E]) addEdge(E, V, V, bool)              {}
func (s *undirectedViewSpecifics[V, E]) removeEdge(E) (edgeRecord[V], bool) { return edgeRecord[V]{}, false }
func (s *undirectedViewSpecifics[V, E]) containsVertex(v V) bool            { return s.inner.containsVertex(v) }
func (s *undirectedViewSpecifics[V, E]) vertexCount() int                   { return s.inner.vertexCount() }
func (s *undirectedViewSpecifics[V, E]) vertexOrder() []V                  { return s.inner.vertexOrder() }
func (s *undirectedViewSpecifics[V, E]) containsEdge(e E) bool             { return s.inner.containsEdge(e) }
func (s *undirectedViewSpecifics[V, E]) edgeCount() int                    { return s.inner.edgeCount() }
func (s *undirectedViewSpecifics[V, E]) edgeOrder() []E                   { return s.inner.edgeOrder() }
func (s *undirectedViewSpecifics[V, E]) edgeEndpoints(e E) (V, V, bool)    { return s.inner.edgeEndpoints(e) }
func (s *undirectedViewSpecifics[V, E]) edgeDirected(E) bool              { return false }

func (s *undirectedViewSpecifics[V, E]) getEdge(from, to V) (E, bool) {
	if e, ok := s.inner.getEdge(from, to); ok {
		return e, true
	}
	return s.inner.getEdge(to, from)
}

func (s *undirectedViewSpecifics[V, E]) getAllEdges(from, to V) []E {
	out := s.inner.getAllEdges(from, to)
	if from != to {
		out = append(out, s.inner.getAllEdges(to, from)...)
	}
	return out
}

func (s *undirectedViewSpecifics[V, E]) edgesOf(v V) []E    { return s.inner.edgesOf(v) }
func (s *undirectedViewSpecifics[V, E]) inEdgesOf(v V) []E  { return s.inner.edgesOf(v) }
func (s *undirectedViewSpecifics[V, E]) outEdgesOf(v V) []E { return s.inner.edgesOf(v) }

// reversedViewSpecifics swaps from/to on every read and write, so a directed
// graph's edge-reversed view behaves exactly like a fresh graph built with
// every edge's endpoints swapped, without copying any storage.
type reversedViewSpecifics[V comparable, E comparable] struct {
	inner specifics[V, E]
}

func (s *reversedViewSpecifics[V, E]) modifiable() bool        { return s.inner.modifiable() }
func (s *reversedViewSpecifics[V, E]) addVertex(v V) bool       { return s.inner.addVertex(v) }
func (s *reversedViewSpecifics[V, E]) removeVertex(v V)         { s.inner.removeVertex(v) }
func (s *reversedViewSpecifics[V, E]) addEdge(e E, from, to V, directed bool) {
	s.inner.addEdge(e, to, from, directed)
}

func (s *reversedViewSpecifics[V, E]) removeEdge(e E) (edgeRecord[V], bool) {
	r, ok := s.inner.removeEdge(e)
	if !ok {
		return r, false
	}
	return edgeRecord[V]{from: r.to, to: r.from}, true
}

func (s *reversedViewSpecifics[V, E]) containsVertex(v V) bool { return s.inner.containsVertex(v) }
func (s *reversedViewSpecifics[V, E]) vertexCount() int        { return s.inner.vertexCount() }
func (s *reversedViewSpecifics[V, E]) vertexOrder() []V        { return s.inner.vertexOrder() }
func (s *reversedViewSpecifics[V, E]) containsEdge(e E) bool   { return s.inner.containsEdge(e) }
func (s *reversedViewSpecifics[V, E]) edgeCount() int          { return s.inner.edgeCount() }
func (s *reversedViewSpecifics[V, E]) edgeOrder() []E          { return s.inner.edgeOrder() }

func (s *reversedViewSpecifics[V, E]) edgeEndpoints(e E) (V, V, bool) {
	from, to, ok := s.inner.edgeEndpoints(e)
	return to, from, ok
}

func (s *reversedViewSpecifics[V, E]) edgeDirected(e E) bool { return s.inner.edgeDirected(e) }

func (s *reversedViewSpecifics[V, E]) getEdge(from, to V) (E, bool) {
	return s.inner.getEdge(to, from)
}

func (s *reversedViewSpecifics[V, E]) getAllEdges(from, to V) []E {
	return s.inner.getAllEdges(to, from)
}

func (s *reversedViewSpecifics[V, E]) edgesOf(v V) []E    { return s.inner.edgesOf(v) }
func (s *reversedViewSpecifics[V, E]) inEdgesOf(v V) []E  { return s.inner.outEdgesOf(v) }
func (s *reversedViewSpecifics[V, E]) outEdgesOf(v V) []E { return s.inner.inEdgesOf(v) }
