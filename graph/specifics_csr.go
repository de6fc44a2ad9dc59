package graph

// csrSpecifics is an immutable compressed-sparse-row incidence structure
// built once from a complete vertex/edge stream. src[e]/tgt[e] resolve in O(1) via parallel arrays;
// every mutator is rejected with ErrUnsupported at the Graph facade (the
// facade checks modifiable() before ever calling into these stubs).
type csrSpecifics[V comparable, E comparable] struct {
	vOrder []V
	vIndex map[V]int

	eOrder   []E
	eIndex   map[E]int
	src, tgt []int  // vertex indices, parallel to eOrder
	directed []bool

	// rowPtr[i]..rowPtr[i+1] indexes into colIdx for vertex i's category.
	incRowPtr, incColIdx []int // edgesOf
	outRowPtr, outColIdx []int // outEdgesOf
	inRowPtr, inColIdx   []int // inEdgesOf
}

// csrTriple is one (edge, from, to, directed) input row for NewCSR.
type csrTriple[V comparable, E comparable] struct {
	Edge     E
	From, To V
	Directed bool
}

// newCSRSpecifics builds the immutable backend from a fixed vertex list and
// edge stream. Vertices referenced by an edge but absent from vertices are
// appended in first-seen order.
func newCSRSpecifics[V comparable, E comparable](vertices []V, edges []csrTriple[V, E]) *csrSpecifics[V, E] {
	s := &csrSpecifics[V, E]{
		vIndex: make(map[V]int),
		eIndex: make(map[E]int),
	}
	for _, v := range vertices {
		s.addVertexIdx(v)
	}
	for _, t := range edges {
		s.addVertexIdx(t.From)
		s.addVertexIdx(t.To)
	}

	n := len(s.vOrder)
	m := len(edges)
	s.src = make([]int, m)
	s.tgt = make([]int, m)
	s.directed = make([]bool, m)

	var incEntries, outEntries, inEntries [][2]int
	for ei, t := range edges {
		s.eIndex[t.Edge] = ei
		s.eOrder = append(s.eOrder, t.Edge)
		fi, ti := s.vIndex[t.From], s.vIndex[t.To]
		s.src[ei] = fi
		s.tgt[ei] = ti
		s.directed[ei] = t.Directed

		if fi == ti {
			incEntries = append(incEntries, [2]int{fi, ei})
		} else {
			incEntries = append(incEntries, [2]int{fi, ei}, [2]int{ti, ei})
		}
		if t.Directed {
			outEntries = append(outEntries, [2]int{fi, ei})
			inEntries = append(inEntries, [2]int{ti, ei})
		} else {
			outEntries = append(outEntries, [2]int{fi, ei})
			inEntries = append(inEntries, [2]int{fi, ei})
			if fi != ti {
				outEntries = append(outEntries, [2]int{ti, ei})
				inEntries = append(inEntries, [2]int{ti, ei})
			}
		}
	}

	s.incRowPtr, s.incColIdx = buildCSRBuckets(n, incEntries)
	s.outRowPtr, s.outColIdx = buildCSRBuckets(n, outEntries)
	s.inRowPtr, s.inColIdx = buildCSRBuckets(n, inEntries)

	return s
}

func (s *csrSpecifics[V, E]) addVertexIdx(v V) {
	if _, ok := s.vIndex[v]; ok {
		return
	}
	s.vIndex[v] = len(s.vOrder)
	s.vOrder = append(s.vOrder, v)
}

// buildCSRBuckets performs a stable counting-sort bucketing of (vertexIdx,
// edgeIdx) entries into row-pointer/column-index arrays, preserving the
// relative insertion order of entries sharing a vertex.
func buildCSRBuckets(n int, entries [][2]int) ([]int, []int) {
	rowPtr := make([]int, n+1)
	for _, e := range entries {
		rowPtr[e[0]+1]++
	}
	for i := 0; i < n; i++ {
		rowPtr[i+1] += rowPtr[i]
	}
	colIdx := make([]int, len(entries))
	cursor := make([]int, n)
	copy(cursor, rowPtr[:n])
	for _, e := range entries {
		colIdx[cursor[e[0]]] = e[1]
		cursor[e[0]]++
	}

	return rowPtr, colIdx
}

func (s *csrSpecifics[V, E]) modifiable() bool { return false }

func (s *csrSpecifics[V, E]) addVertex(V) bool              { return false }
func (s *csrSpecifics[V, E]) removeVertex(V)                {}
func (s *csrSpecifics[V, E]) addEdge(E, V, V, bool)          {}
func (s *csrSpecifics[V, E]) removeEdge(E) (edgeRecord[V], bool) { return edgeRecord[V]{}, false }

func (s *csrSpecifics[V, E]) containsVertex(v V) bool {
	_, ok := s.vIndex[v]
	return ok
}

func (s *csrSpecifics[V, E]) vertexCount() int { return len(s.vOrder) }

func (s *csrSpecifics[V, E]) vertexOrder() []V {
	out := make([]V, len(s.vOrder))
	copy(out, s.vOrder)
	return out
}

func (s *csrSpecifics[V, E]) containsEdge(e E) bool {
	_, ok := s.eIndex[e]
	return ok
}

func (s *csrSpecifics[V, E]) edgeCount() int { return len(s.eOrder) }

func (s *csrSpecifics[V, E]) edgeOrder() []E {
	out := make([]E, len(s.eOrder))
	copy(out, s.eOrder)
	return out
}

func (s *csrSpecifics[V, E]) edgeEndpoints(e E) (V, V, bool) {
	ei, ok := s.eIndex[e]
	if !ok {
		var zero V
		return zero, zero, false
	}
	return s.vOrder[s.src[ei]], s.vOrder[s.tgt[ei]], true
}

func (s *csrSpecifics[V, E]) edgeDirected(e E) bool {
	ei, ok := s.eIndex[e]
	if !ok {
		return false
	}
	return s.directed[ei]
}

func (s *csrSpecifics[V, E]) getEdge(from, to V) (E, bool) {
	fi, ok := s.vIndex[from]
	if !ok {
		var zero E
		return zero, false
	}
	ti, okTo := s.vIndex[to]
	if !okTo {
		var zero E
		return zero, false
	}
	for _, ei := range s.outColIdx[s.outRowPtr[fi]:s.outRowPtr[fi+1]] {
		if s.otherEndpoint(ei, fi) == ti {
			return s.eOrder[ei], true
		}
	}
	var zero E
	return zero, false
}

func (s *csrSpecifics[V, E]) getAllEdges(from, to V) []E {
	fi, ok := s.vIndex[from]
	if !ok {
		return nil
	}
	ti, okTo := s.vIndex[to]
	if !okTo {
		return nil
	}
	var out []E
	for _, ei := range s.outColIdx[s.outRowPtr[fi]:s.outRowPtr[fi+1]] {
		if s.otherEndpoint(ei, fi) == ti {
			out = append(out, s.eOrder[ei])
		}
	}
	return out
}

func (s *csrSpecifics[V, E]) otherEndpoint(ei, from int) int {
	if s.src[ei] == from {
		return s.tgt[ei]
	}
	return s.src[ei]
}

func (s *csrSpecifics[V, E]) edgesOf(v V) []E    { return s.slice(v, s.incRowPtr, s.incColIdx) }
func (s *csrSpecifics[V, E]) inEdgesOf(v V) []E  { return s.slice(v, s.inRowPtr, s.inColIdx) }
func (s *csrSpecifics[V, E]) outEdgesOf(v V) []E { return s.slice(v, s.outRowPtr, s.outColIdx) }

func (s *csrSpecifics[V, E]) slice(v V, rowPtr, colIdx []int) []E {
	vi, ok := s.vIndex[v]
	if !ok {
		return nil
	}
	idxs := colIdx[rowPtr[vi]:rowPtr[vi+1]]
	out := make([]E, len(idxs))
	for i, ei := range idxs {
		out[i] = s.eOrder[ei]
	}
	return out
}
