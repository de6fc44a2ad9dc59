package matching

// Matching is the result of Match: a set of edges no two of which share a
// vertex. It exposes the edges in a fixed order (for a Match result:
// ascending compact index of each edge's lower-indexed endpoint, i.e. the
// graph's vertex insertion order) alongside O(1) membership, the same
// All()/Contains() pairing graph.EdgeSet offers.
type Matching[E comparable] struct {
	order []E
	set   map[E]struct{}
}

func newMatching[E comparable](edges []E) Matching[E] {
	set := make(map[E]struct{}, len(edges))
	for _, e := range edges {
		set[e] = struct{}{}
	}
	return Matching[E]{order: edges, set: set}
}

// New builds a Matching from an explicit edge list, for callers who already
// have a candidate matching in hand (from another engine, a hand-built
// fixture, or a test) and want to run it through Certify without going
// through Match first. Duplicate edge values collapse to one membership
// entry; Certify is what actually validates the set's structure.
func New[E comparable](edges ...E) Matching[E] {
	uniq := make([]E, 0, len(edges))
	seen := make(map[E]struct{}, len(edges))
	for _, e := range edges {
		if _, ok := seen[e]; ok {
			continue
		}
		seen[e] = struct{}{}
		uniq = append(uniq, e)
	}
	return newMatching(uniq)
}

// Contains reports whether e is one of the matching's edges.
func (m Matching[E]) Contains(e E) bool {
	_, ok := m.set[e]
	return ok
}

// Len returns |M|.
func (m Matching[E]) Len() int { return len(m.order) }

// Edges returns a snapshot slice of the matching's edges.
func (m Matching[E]) Edges() []E {
	out := make([]E, len(m.order))
	copy(out, m.order)
	return out
}

// OddSet is one member of an odd-set cover: an odd-cardinality vertex
// subset together with its non-negative integer multiplicity Weight. A
// positive-weighted singleton alone can satisfy the covering requirement
// for an edge incident to it; a set with len(Vertices)>1 covers an edge
// only when BOTH endpoints are members.
type OddSet[V comparable] struct {
	Vertices []V
	Weight   int
}

// OddSetCover is the dual certificate returned alongside a Matching: a
// family of odd-cardinality vertex subsets which jointly cover every edge
// and prove, via the Gallai identity, that the paired Matching's
// cardinality is maximum.
type OddSetCover[V comparable] struct {
	Sets []OddSet[V]
}
