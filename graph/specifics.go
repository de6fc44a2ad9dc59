package graph

// StorageKind selects the storage backend a Graph is built on. The choice
// never changes visible semantics, only asymptotic cost and mutability.
type StorageKind uint8

const (
	// StorageMapOfSets is the general mutable backend: per-vertex sets of
	// incident edges, GetEdge(u,v) scans edgesOf(u) in O(deg(u)).
	StorageMapOfSets StorageKind = iota
	// StorageFastLookup augments StorageMapOfSets with a secondary
	// endpoint-pair index: GetEdge(u,v) becomes expected O(1).
	StorageFastLookup
	// StorageCSR is the immutable compressed-sparse-row backend: built once
	// from a fixed vertex/edge stream, every mutator fails with
	// ErrUnsupported.
	StorageCSR
)

// edgeRecord is the endpoint pair stored per edge, shared by the mutable
// backends. CSR keeps the same shape but in parallel arrays instead of a map
// of records (see specifics_csr.go).
type edgeRecord[V comparable] struct {
	from, to V
}

// pairKey is the canonical lookup key for the fast-lookup backend's
// secondary index. Structs of comparable fields are themselves comparable in
// Go, so pairKey[V] is usable directly as a map key with no hashing code to
// write by hand.
type pairKey[V comparable] struct{ u, v V }

// specifics is the internal storage contract every backend implements. It
// is unexported: callers only ever see it through the Graph facade.
type specifics[V comparable, E comparable] interface {
	// modifiable reports whether mutators are permitted at all (false for CSR).
	modifiable() bool

	addVertex(v V) bool
	removeVertex(v V)
	containsVertex(v V) bool
	vertexCount() int
	vertexOrder() []V

	addEdge(e E, from, to V, directed bool)
	removeEdge(e E) (edgeRecord[V], bool)
	containsEdge(e E) bool
	edgeCount() int
	edgeOrder() []E
	edgeEndpoints(e E) (V, V, bool)
	edgeDirected(e E) bool

	// getEdge returns any one edge between from and to (direction-aware for
	// directed edges), or ok=false if none exists.
	getEdge(from, to V) (E, bool)
	// getAllEdges returns every edge between from and to.
	getAllEdges(from, to V) []E

	// edgesOf/inEdgesOf/outEdgesOf return the edge IDs incident to v.
	// Self-loops appear once in these sets but contribute twice to degree;
	// degree is computed by the caller.
	edgesOf(v V) []E
	inEdgesOf(v V) []E
	outEdgesOf(v V) []E
}

// newSpecifics builds the backend selected by kind for a fresh, empty
// Graph. StorageCSR yields an empty immutable backend here; a CSR graph
// with content is built once via NewCSR from a complete vertex/edge stream.
func newSpecifics[V comparable, E comparable](kind StorageKind) specifics[V, E] {
	switch kind {
	case StorageFastLookup:
		return newFastLookupSpecifics[V, E]()
	case StorageCSR:
		return newCSRSpecifics[V, E](nil, nil)
	default:
		return newMapOfSetsSpecifics[V, E]()
	}
}
