package graph

import "sort"

// mapOfSetsSpecifics is the general mutable backend: per-vertex sets of
// incident edges, with GetEdge(u,v) falling back to a linear scan of
// edgesOf(u) in O(deg(u)), the cheapest structure that still satisfies the
// facade contract.
type mapOfSetsSpecifics[V comparable, E comparable] struct {
	vOrder []V
	vSet   map[V]struct{}

	eOrder    map[E]int // insertion index, for stable edgeOrder()
	eOrderSeq []E
	rec       map[E]edgeRecord[V]
	directed  map[E]bool

	incident map[V]map[E]struct{} // edgesOf
	outEdges map[V]map[E]struct{} // outEdgesOf
	inEdges  map[V]map[E]struct{} // inEdgesOf
}

func newMapOfSetsSpecifics[V comparable, E comparable]() *mapOfSetsSpecifics[V, E] {
	return &mapOfSetsSpecifics[V, E]{
		vSet:     make(map[V]struct{}),
		eOrder:   make(map[E]int),
		rec:      make(map[E]edgeRecord[V]),
		directed: make(map[E]bool),
		incident: make(map[V]map[E]struct{}),
		outEdges: make(map[V]map[E]struct{}),
		inEdges:  make(map[V]map[E]struct{}),
	}
}

func (s *mapOfSetsSpecifics[V, E]) modifiable() bool { return true }

func (s *mapOfSetsSpecifics[V, E]) addVertex(v V) bool {
	if _, ok := s.vSet[v]; ok {
		return false
	}
	s.vSet[v] = struct{}{}
	s.vOrder = append(s.vOrder, v)
	s.incident[v] = make(map[E]struct{})
	s.outEdges[v] = make(map[E]struct{})
	s.inEdges[v] = make(map[E]struct{})

	return true
}

func (s *mapOfSetsSpecifics[V, E]) removeVertex(v V) {
	if _, ok := s.vSet[v]; !ok {
		return
	}
	delete(s.vSet, v)
	delete(s.incident, v)
	delete(s.outEdges, v)
	delete(s.inEdges, v)
	for i, u := range s.vOrder {
		if u == v {
			s.vOrder = append(s.vOrder[:i], s.vOrder[i+1:]...)
			break
		}
	}
}

func (s *mapOfSetsSpecifics[V, E]) containsVertex(v V) bool {
	_, ok := s.vSet[v]
	return ok
}

func (s *mapOfSetsSpecifics[V, E]) vertexCount() int { return len(s.vSet) }

func (s *mapOfSetsSpecifics[V, E]) vertexOrder() []V {
	out := make([]V, len(s.vOrder))
	copy(out, s.vOrder)
	return out
}

func (s *mapOfSetsSpecifics[V, E]) addEdge(e E, from, to V, directed bool) {
	s.rec[e] = edgeRecord[V]{from: from, to: to}
	s.directed[e] = directed
	s.eOrder[e] = len(s.eOrderSeq)
	s.eOrderSeq = append(s.eOrderSeq, e)

	s.incident[from][e] = struct{}{}
	s.incident[to][e] = struct{}{}

	if directed {
		s.outEdges[from][e] = struct{}{}
		s.inEdges[to][e] = struct{}{}
	} else {
		s.outEdges[from][e] = struct{}{}
		s.outEdges[to][e] = struct{}{}
		s.inEdges[from][e] = struct{}{}
		s.inEdges[to][e] = struct{}{}
	}
}

func (s *mapOfSetsSpecifics[V, E]) removeEdge(e E) (edgeRecord[V], bool) {
	r, ok := s.rec[e]
	if !ok {
		return edgeRecord[V]{}, false
	}
	delete(s.rec, e)
	delete(s.directed, e)
	if idx, ok := s.eOrder[e]; ok {
		delete(s.eOrder, e)
		s.eOrderSeq = append(s.eOrderSeq[:idx], s.eOrderSeq[idx+1:]...)
		for eid, i := range s.eOrder {
			if i > idx {
				s.eOrder[eid] = i - 1
			}
		}
	}
	delete(s.incident[r.from], e)
	delete(s.incident[r.to], e)
	delete(s.outEdges[r.from], e)
	delete(s.outEdges[r.to], e)
	delete(s.inEdges[r.from], e)
	delete(s.inEdges[r.to], e)

	return r, true
}

func (s *mapOfSetsSpecifics[V, E]) containsEdge(e E) bool {
	_, ok := s.rec[e]
	return ok
}

func (s *mapOfSetsSpecifics[V, E]) edgeCount() int { return len(s.rec) }

func (s *mapOfSetsSpecifics[V, E]) edgeOrder() []E {
	out := make([]E, len(s.eOrderSeq))
	copy(out, s.eOrderSeq)
	return out
}

func (s *mapOfSetsSpecifics[V, E]) edgeEndpoints(e E) (V, V, bool) {
	r, ok := s.rec[e]
	return r.from, r.to, ok
}

func (s *mapOfSetsSpecifics[V, E]) edgeDirected(e E) bool { return s.directed[e] }

func (s *mapOfSetsSpecifics[V, E]) getEdge(from, to V) (E, bool) {
	var best E
	found := false
	for e := range s.outEdges[from] {
		if opposite(s.rec[e], from) != to {
			continue
		}
		if !found || s.eOrder[e] < s.eOrder[best] {
			best, found = e, true
		}
	}
	return best, found
}

func (s *mapOfSetsSpecifics[V, E]) getAllEdges(from, to V) []E {
	var out []E
	for e := range s.outEdges[from] {
		if opposite(s.rec[e], from) == to {
			out = append(out, e)
		}
	}
	return s.sortByInsertion(out)
}

func (s *mapOfSetsSpecifics[V, E]) edgesOf(v V) []E    { return s.orderedSlice(s.incident[v]) }
func (s *mapOfSetsSpecifics[V, E]) inEdgesOf(v V) []E  { return s.orderedSlice(s.inEdges[v]) }
func (s *mapOfSetsSpecifics[V, E]) outEdgesOf(v V) []E { return s.orderedSlice(s.outEdges[v]) }

// orderedSlice materializes the edge set m sorted by global insertion
// sequence. Membership stays map-backed for O(1) add/remove; the sort here
// is what keeps every enumeration the facade exposes deterministic.
func (s *mapOfSetsSpecifics[V, E]) orderedSlice(m map[E]struct{}) []E {
	out := make([]E, 0, len(m))
	for e := range m {
		out = append(out, e)
	}
	return s.sortByInsertion(out)
}

func (s *mapOfSetsSpecifics[V, E]) sortByInsertion(out []E) []E {
	sort.Slice(out, func(i, j int) bool { return s.eOrder[out[i]] < s.eOrder[out[j]] })
	return out
}

// opposite returns the endpoint of r that is not probe: if probe equals
// from return to, else return from. Both undirected endpoints are legal
// probes; directed edges are only probed from their declared from by
// getEdge/getAllEdges (via outEdges[from]).
func opposite[V comparable](r edgeRecord[V], probe V) V {
	if r.from == probe {
		return r.to
	}
	return r.from
}
