package graph

import "errors"

// Sentinel errors for graph package operations. Every fallible operation in
// this package returns one of these (via errors.Is), never a bespoke type.
var (
	// ErrNilArg indicates a required vertex/edge argument was the zero value
	// where the caller must supply something meaningful. No operation of this
	// package returns it; a supplier-less add reports ErrNoVertexSupplier or
	// ErrNoEdgeSupplier instead.
	ErrNilArg = errors.New("graph: required argument missing")

	// ErrVertexNotFound indicates an operation referenced a non-existent vertex.
	ErrVertexNotFound = errors.New("graph: vertex not found")

	// ErrEdgeNotFound indicates an operation referenced a non-existent edge.
	ErrEdgeNotFound = errors.New("graph: edge not found")

	// ErrSelfLoopNotAllowed indicates a self-loop was attempted on a Type
	// that disallows them.
	ErrSelfLoopNotAllowed = errors.New("graph: self-loop not allowed by graph type")

	// ErrDuplicateVertex indicates a vertex supplier yielded a value already
	// present in the vertex catalog.
	ErrDuplicateVertex = errors.New("graph: supplier yielded a duplicate vertex")

	// ErrDuplicateEdge indicates an edge supplier yielded a value already
	// present in the edge catalog.
	ErrDuplicateEdge = errors.New("graph: supplier yielded a duplicate edge")

	// ErrNoVertexSupplier indicates addVertex() was called with no supplier configured.
	ErrNoVertexSupplier = errors.New("graph: no vertex supplier configured")

	// ErrNoEdgeSupplier indicates addEdge(u,v) was called with no edge supplier configured.
	ErrNoEdgeSupplier = errors.New("graph: no edge supplier configured")

	// ErrUnsupported indicates a mutation was rejected: an unmodifiable view,
	// a CSR-backed graph, or a weight operation on an unweighted graph.
	ErrUnsupported = errors.New("graph: operation not supported")

	// ErrCountOverflow indicates a 32-bit count (VertexCount, EdgeCount,
	// DegreeOf/InDegreeOf/OutDegreeOf) overflowed; callers with very large
	// graphs must use the 64-bit Iterables() facade instead.
	ErrCountOverflow = errors.New("graph: count exceeds 32-bit facade; use Iterables()")
)
