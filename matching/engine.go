package matching

// engine holds the scratch state for one Match call, released on return.
// All indices are into idx.vertices: match[i] is the vertex matched to i or
// -1, p[i] the alternating-forest parent, used[i] the even-labeled marker,
// and base[i] the representative of the smallest-known blossom currently
// containing i. Contraction is expressed purely through base[]
// reassignment plus p[] rewiring; no separate blossom tree is kept, because
// base[] and p[] together are all augment and lca need.
type engine[V comparable, E comparable] struct {
	idx *index[V, E]

	match     []int
	p         []int
	base      []int
	used      []bool
	inBlossom []bool
}

func newEngine[V comparable, E comparable](idx *index[V, E]) *engine[V, E] {
	n := idx.n()
	match := make([]int, n)
	for i := range match {
		match[i] = -1
	}

	return &engine[V, E]{
		idx:       idx,
		match:     match,
		p:         make([]int, n),
		base:      make([]int, n),
		used:      make([]bool, n),
		inBlossom: make([]bool, n),
	}
}

// run performs a greedy seed followed by one augmenting-path search per
// still-free vertex. Each findPath call is O(V+E) plus O(V) per blossom
// contraction's lca/sweep, and at most V calls are made, giving O(V·(V+E))
// overall.
func (e *engine[V, E]) run() {
	e.greedySeed()
	n := e.idx.n()
	for r := 0; r < n; r++ {
		if e.match[r] != -1 {
			continue
		}
		if v := e.findPath(r); v != -1 {
			e.augment(v)
		}
	}
}

// greedySeed matches every edge both of whose endpoints are still free, in
// vertex-index order. Scanning each vertex's neighbors restricted to
// to > v visits every unordered pair exactly once.
func (e *engine[V, E]) greedySeed() {
	n := e.idx.n()
	for v := 0; v < n; v++ {
		if e.match[v] != -1 {
			continue
		}
		for _, nb := range e.idx.adj[v] {
			if nb.to > v && e.match[nb.to] == -1 {
				e.match[v] = nb.to
				e.match[nb.to] = v
				break
			}
		}
	}
}

// findPath builds an alternating forest from root and returns the free
// vertex an augmenting path reaches, or -1 if the search exhausts without
// one. An exhausted root is unmatchable for this call and contributes to
// the dual as a zero-weight singleton.
func (e *engine[V, E]) findPath(root int) int {
	n := e.idx.n()
	for i := 0; i < n; i++ {
		e.used[i] = false
		e.p[i] = -1
		e.base[i] = i
	}

	e.used[root] = true
	queue := []int{root}
	for len(queue) > 0 {
		v := queue[0]
		queue = queue[1:]

		for _, nb := range e.idx.adj[v] {
			to := nb.to
			if e.base[v] == e.base[to] || e.match[v] == to {
				continue // same blossom, or the matched edge back to our own parent
			}
			if to == root || (e.match[to] != -1 && e.p[e.match[to]] != -1) {
				// v and to are both even-labeled: an odd cycle closes
				// through their nearest common base. Contract it.
				curBase := e.lca(v, to)
				for i := range e.inBlossom {
					e.inBlossom[i] = false
				}
				e.markPath(v, curBase, to)
				e.markPath(to, curBase, v)
				for i := 0; i < n; i++ {
					if e.inBlossom[e.base[i]] {
						e.base[i] = curBase
						if !e.used[i] {
							e.used[i] = true
							queue = append(queue, i)
						}
					}
				}
			} else if e.p[to] == -1 {
				e.p[to] = v
				if e.match[to] == -1 {
					return to // augmenting path found, ending at the free vertex `to`
				}
				e.used[e.match[to]] = true
				queue = append(queue, e.match[to])
			}
		}
	}

	return -1
}

// lca finds the base of the nearest common ancestor of a and b by walking
// both toward the search root along alternating match/parent edges,
// marking the path from a first.
func (e *engine[V, E]) lca(a, b int) int {
	n := e.idx.n()
	seen := make([]bool, n)

	x := e.base[a]
	for {
		seen[x] = true
		if e.match[x] == -1 {
			break
		}
		x = e.base[e.p[e.match[x]]]
	}

	y := e.base[b]
	for !seen[y] {
		y = e.base[e.p[e.match[y]]]
	}

	return y
}

// markPath walks up from v to the blossom base b, marking every base along
// the way as part of the new blossom and rewriting parent pointers so the
// contracted cycle remains traversable by a later augment() call.
func (e *engine[V, E]) markPath(v, b, child int) {
	for e.base[v] != b {
		e.inBlossom[e.base[v]] = true
		e.inBlossom[e.base[e.match[v]]] = true
		e.p[v] = child
		child = e.match[v]
		v = e.p[e.match[v]]
	}
}

// augment toggles the matched/unmatched edges along the alternating path
// ending at v, increasing |M| by one. Blossom expansion is folded into this
// walk: p[] already threads through any contracted blossom on the path.
func (e *engine[V, E]) augment(v int) {
	for v != -1 {
		pv := e.p[v]
		ppv := e.match[pv]
		e.match[v] = pv
		e.match[pv] = v
		v = ppv
	}
}

// result reads off the final match[] array into a Matching over the
// original edge/vertex values, plus the dual odd-set cover. Every vertex
// contributes exactly one singleton: weight 1 if matched, 0 if free. A
// pure singleton family weighted by match status is a genuine odd-set
// cover for any matching this engine emits: a maximum matching leaves no
// edge joining two free vertices (toggling it would enlarge M), so every
// edge has a positive-singleton endpoint, and the matched/free split makes
// the Gallai identity 2|M| + deficiency = |V| hold by construction.
func (e *engine[V, E]) result() (Matching[E], OddSetCover[V]) {
	n := e.idx.n()
	edges := make([]E, 0, n/2)
	paired := make([]bool, n)
	for v := 0; v < n; v++ {
		if e.match[v] == -1 || paired[v] {
			continue
		}
		u := e.match[v]
		paired[v], paired[u] = true, true
		if edge, ok := e.idx.edgeBetween(v, u); ok {
			edges = append(edges, edge)
		}
	}

	sets := make([]OddSet[V], n)
	for v := 0; v < n; v++ {
		weight := 0
		if e.match[v] != -1 {
			weight = 1
		}
		sets[v] = OddSet[V]{Vertices: []V{e.idx.vertices[v]}, Weight: weight}
	}

	return newMatching(edges), OddSetCover[V]{Sets: sets}
}
