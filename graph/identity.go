package graph

// Supplier produces a fresh, not-yet-present value of T on demand.
// AddVertexFromSupplier and the supplier form of AddEdge consult one when
// the caller doesn't hand them a value directly.
//
// Implementations must not repeat a value already present in the graph at
// call time; the Graph re-validates this under the same lock as the insert
// and returns ErrDuplicateVertex / ErrDuplicateEdge rather than trusting
// the supplier blindly.
type Supplier[T comparable] func() T
