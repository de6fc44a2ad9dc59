package matching_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/ashgrove-dev/graphcore/graph"
	"github.com/ashgrove-dev/graphcore/matching"
)

func TestCertify_RejectsOverlappingMatching(t *testing.T) {
	g := buildGraph(t, graph.SimpleGraph(), nil, [][2]int{{1, 2}, {2, 3}})

	// Both candidate edges touch vertex 2: not a matching, whatever the cover.
	overlapping := matching.New("e1-2", "e2-3")
	require.False(t, matching.Certify(g, overlapping, matching.OddSetCover[int]{}))

	m, y := matching.Match(g)
	require.True(t, matching.Certify(g, m, y))
}

func TestCertify_RejectsEvenCardinalitySet(t *testing.T) {
	g := buildGraph(t, graph.SimpleGraph(), nil, [][2]int{{1, 2}})
	m, _ := matching.Match(g)

	bad := matching.OddSetCover[int]{Sets: []matching.OddSet[int]{
		{Vertices: []int{1, 2}, Weight: 1}, // even cardinality: invalid
	}}
	require.False(t, matching.Certify(g, m, bad))
}

func TestCertify_RejectsNegativeWeight(t *testing.T) {
	g := buildGraph(t, graph.SimpleGraph(), nil, [][2]int{{1, 2}})
	m, _ := matching.Match(g)

	bad := matching.OddSetCover[int]{Sets: []matching.OddSet[int]{
		{Vertices: []int{1}, Weight: -1},
		{Vertices: []int{2}, Weight: 1},
	}}
	require.False(t, matching.Certify(g, m, bad))
}

func TestCertify_RejectsUncoveredEdge(t *testing.T) {
	g := buildGraph(t, graph.SimpleGraph(), nil, [][2]int{{1, 2}})
	m, _ := matching.Match(g)

	// Neither endpoint is a positive singleton and there's no shared
	// multi-vertex set: the edge (1,2) goes uncovered.
	uncovered := matching.OddSetCover[int]{Sets: []matching.OddSet[int]{
		{Vertices: []int{1}, Weight: 0},
		{Vertices: []int{2}, Weight: 0},
	}}
	require.False(t, matching.Certify(g, m, uncovered))
}

func TestCertify_RejectsBrokenGallaiIdentity(t *testing.T) {
	g := buildGraph(t, graph.SimpleGraph(), nil, [][2]int{{1, 2}, {2, 3}, {3, 1}})
	m, _ := matching.Match(g) // |M| = 1 on a triangle

	// Claims every vertex matched (deficiency 0): 2*1 + 0 = 2 != 3.
	wrong := matching.OddSetCover[int]{Sets: []matching.OddSet[int]{
		{Vertices: []int{1}, Weight: 1},
		{Vertices: []int{2}, Weight: 1},
		{Vertices: []int{3}, Weight: 1},
	}}
	require.False(t, matching.Certify(g, m, wrong))
}
