package graph

import (
	"errors"
	"iter"
)

// Iterables is the 64-bit facade: a mirror of Graph's counting and
// enumeration surface for graphs too large for the 32-bit facade's
// artificial limit. Go's int is 64-bit on every platform this module
// targets, so Iterables exists to make that contract explicit and to offer
// iterator-based traversal (iter.Seq) instead of materialized slices for
// the largest graphs.
type Iterables[V comparable, E comparable] struct {
	g *Graph[V, E]
}

// Iterables returns the 64-bit facade for g.
func (g *Graph[V, E]) Iterables() Iterables[V, E] { return Iterables[V, E]{g: g} }

// VertexCount returns the vertex count with no 32-bit ceiling.
func (it Iterables[V, E]) VertexCount() int64 {
	it.g.muSpec.RLock()
	defer it.g.muSpec.RUnlock()

	return int64(it.g.spec.vertexCount())
}

// EdgeCount returns the edge count with no 32-bit ceiling.
func (it Iterables[V, E]) EdgeCount() int64 {
	it.g.muSpec.RLock()
	defer it.g.muSpec.RUnlock()

	return int64(it.g.spec.edgeCount())
}

// DegreeOf mirrors Graph.DegreeOf without the 32-bit ceiling.
func (it Iterables[V, E]) DegreeOf(v V) (int64, error) {
	d, err := it.g.DegreeOf(v)
	if errors.Is(err, ErrCountOverflow) {
		// Recompute directly at 64-bit width; DegreeOf only rejected the
		// 32-bit narrowing, not the underlying count.
		return it.degreeOf64(v)
	}
	return int64(d), err
}

func (it Iterables[V, E]) degreeOf64(v V) (int64, error) {
	it.g.muSpec.RLock()
	defer it.g.muSpec.RUnlock()

	if !it.g.spec.containsVertex(v) {
		return 0, ErrVertexNotFound
	}
	var deg int64
	for _, e := range it.g.spec.edgesOf(v) {
		from, to, _ := it.g.spec.edgeEndpoints(e)
		if from == to {
			deg += 2
		} else {
			deg++
		}
	}
	return deg, nil
}

// Vertices returns an iterator over every vertex, in insertion order.
func (it Iterables[V, E]) Vertices() iter.Seq[V] {
	return func(yield func(V) bool) {
		for _, v := range it.g.VertexSet().All() {
			if !yield(v) {
				return
			}
		}
	}
}

// Edges returns an iterator over every edge.
func (it Iterables[V, E]) Edges() iter.Seq[E] {
	return func(yield func(E) bool) {
		for _, e := range it.g.EdgeSet().All() {
			if !yield(e) {
				return
			}
		}
	}
}
