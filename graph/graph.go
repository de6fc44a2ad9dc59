package graph

import "sync"

// Option configures a Graph before construction.
type Option[V comparable, E comparable] func(g *Graph[V, E])

// WithType overrides the graph's Type descriptor (default SimpleGraph()).
func WithType[V comparable, E comparable](t Type) Option[V, E] {
	return func(g *Graph[V, E]) { g.typ = t }
}

// WithStorage selects the storage backend (default StorageMapOfSets).
func WithStorage[V comparable, E comparable](kind StorageKind) Option[V, E] {
	return func(g *Graph[V, E]) { g.storageKind = kind }
}

// WithVertexSupplier configures the Supplier consulted by AddVertex() (the
// no-argument form).
func WithVertexSupplier[V comparable, E comparable](s Supplier[V]) Option[V, E] {
	return func(g *Graph[V, E]) { g.vertexSupplier = s }
}

// WithEdgeSupplier configures the Supplier consulted by AddEdge(u, v) (the
// two-argument form).
func WithEdgeSupplier[V comparable, E comparable](s Supplier[E]) Option[V, E] {
	return func(g *Graph[V, E]) { g.edgeSupplier = s }
}

// WithDefaultEdgeWeight sets the weight GetEdgeWeight reports for every edge
// of an unweighted graph (1.0 unless overridden). It has no effect on a
// weighted graph, which reports each edge's stored weight.
func WithDefaultEdgeWeight[V comparable, E comparable](w float64) Option[V, E] {
	return func(g *Graph[V, E]) { g.defaultWeight = w }
}

// Graph is the tuple G = (V, E, src, tgt, w, type), generic over any
// comparable vertex value V and edge value E. One Graph value replaces the
// eight directed/undirected × loops × multi × weighted classes a class
// hierarchy would otherwise need: the only axis of variation left is the
// immutable Type descriptor plus the pluggable storage backend.
//
// Concurrency: muVert guards the vertex catalog and configuration flags;
// muSpec guards the edge/adjacency specifics. Mutations acquire muVert then
// muSpec, never the reverse.
type Graph[V comparable, E comparable] struct {
	muVert sync.RWMutex
	muSpec sync.RWMutex

	typ            Type
	storageKind    StorageKind
	vertexSupplier Supplier[V]
	edgeSupplier   Supplier[E]
	defaultWeight  float64

	spec    specifics[V, E]
	weights map[E]float64
}

// New constructs an empty, mutable Graph configured by opts. By default the
// Type is SimpleGraph() (undirected, unweighted, no loops, no multi-edges)
// and the backend is StorageMapOfSets.
func New[V comparable, E comparable](opts ...Option[V, E]) *Graph[V, E] {
	g := &Graph[V, E]{
		typ:           SimpleGraph(),
		weights:       make(map[E]float64),
		defaultWeight: 1.0,
	}
	for _, opt := range opts {
		opt(g)
	}
	g.spec = newSpecifics[V, E](g.storageKind)

	return g
}

// NewCSR builds an immutable Graph from a complete vertex list and edge
// stream in one shot; every subsequent mutator returns ErrUnsupported.
// Vertices implied by an edge but absent from vertices are appended in
// first-seen order. typ.Modifiable is forced to false.
func NewCSR[V comparable, E comparable](typ Type, vertices []V, edges []csrTriple[V, E], weights map[E]float64) *Graph[V, E] {
	typ.Modifiable = false
	g := &Graph[V, E]{
		typ:           typ,
		weights:       make(map[E]float64, len(weights)),
		defaultWeight: 1.0,
	}
	for e, w := range weights {
		g.weights[e] = w
	}
	g.spec = newCSRSpecifics[V, E](vertices, edges)

	return g
}

// CSRTriple is the exported alias of the internal edge-stream row type
// NewCSR consumes; kept distinct from Edge-bearing types elsewhere so the
// CSR constructor never depends on a mutable Graph existing first.
type CSRTriple[V comparable, E comparable] = csrTriple[V, E]

// NewCSRTriple builds one CSRTriple row.
func NewCSRTriple[V comparable, E comparable](edge E, from, to V, directed bool) CSRTriple[V, E] {
	return CSRTriple[V, E]{Edge: edge, From: from, To: to, Directed: directed}
}

// GetType returns the graph's immutable Type descriptor.
func (g *Graph[V, E]) GetType() Type {
	g.muVert.RLock()
	defer g.muVert.RUnlock()

	return g.typ
}

// modifiableLocked reports whether mutation is permitted, consulting both
// the Type flag and the backend. Callers must hold at least a read lock.
func (g *Graph[V, E]) modifiableLocked() bool {
	return g.typ.Modifiable && g.spec.modifiable()
}
