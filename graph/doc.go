// Package graph is the polymorphic graph abstraction at the heart of
// graphcore: one data-bearing Graph value, parametrized by an immutable
// Type descriptor and a pluggable internal storage backend, standing in for
// the eight hand-written graph classes (directed/undirected × loops × multi
// × weighted) a class-hierarchy design would otherwise need.
//
// Vertex values V and edge values E are any comparable type chosen by the
// caller; identity is always by value equality (Go's comparable contract
// supplies both the equality and the hash Go's built-in maps need — no
// separate Equals/HashCode pair to implement).
//
// A Graph is a single-writer, multiple-reader-after-freeze resource: every
// exported method is internally synchronized with a pair of sync.RWMutex
// (one for the vertex catalog, one for edges+adjacency), but two goroutines
// racing to mutate the *same* Graph concurrently still need an external
// lock, and live views (VertexSet, EdgeSet, …) share storage with the graph
// they were taken from: iterating one while another goroutine mutates the
// graph yields undefined results.
//
// # Storage backends
//
// Three internal "specifics" implementations back a Graph, selected by
// New's StorageKind option:
//
//   - StorageMapOfSets: general-purpose, mutable, O(deg(u)) GetEdge.
//   - StorageFastLookup: mutable, adds a pair-indexed lookup for O(1) GetEdge.
//   - StorageCSR: built once from a fixed vertex/edge stream, immutable
//     (every mutator returns ErrUnsupported), O(1) endpoint lookup via
//     row-pointer/column-index arrays.
//
// # Views
//
// Unmodifiable, undirected-of-directed, and edge-reversed views wrap an
// existing Graph without copying its storage; see views.go.
package graph
