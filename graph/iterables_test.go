package graph_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/ashgrove-dev/graphcore/graph"
)

func TestIterables_CountsMatch32BitFacade(t *testing.T) {
	g := graph.New[string, string](graph.WithType[string, string](graph.Multigraph()))
	require.NoError(t, firstErr(g.AddVertex(VA)), "AddVertex(A)")
	require.NoError(t, firstErr(g.AddVertex(VB)), "AddVertex(B)")
	require.NoError(t, firstErr(g.AddEdgeWithValue(VA, VB, "ab1", 0)), "AddEdgeWithValue(ab1)")
	require.NoError(t, firstErr(g.AddEdgeWithValue(VA, VB, "ab2", 0)), "AddEdgeWithValue(ab2)")

	it := g.Iterables()

	vc, err := g.VertexCount()
	require.NoError(t, err, "VertexCount")
	require.Equal(t, int64(vc), it.VertexCount(), "Iterables.VertexCount")

	ec, err := g.EdgeCount()
	require.NoError(t, err, "EdgeCount")
	require.Equal(t, int64(ec), it.EdgeCount(), "Iterables.EdgeCount")

	deg, err := g.DegreeOf(VA)
	require.NoError(t, err, "DegreeOf(A)")
	deg64, err := it.DegreeOf(VA)
	require.NoError(t, err, "Iterables.DegreeOf(A)")
	require.Equal(t, int64(deg), deg64, "Iterables.DegreeOf(A)")
}

func TestIterables_VerticesAndEdgesIterateEverything(t *testing.T) {
	g := graph.New[string, string](graph.WithType[string, string](graph.Multigraph()))
	require.NoError(t, firstErr(g.AddVertex(VA)), "AddVertex(A)")
	require.NoError(t, firstErr(g.AddVertex(VB)), "AddVertex(B)")
	require.NoError(t, firstErr(g.AddVertex(VC)), "AddVertex(C)")
	require.NoError(t, firstErr(g.AddEdgeWithValue(VA, VB, "ab", 0)), "AddEdgeWithValue(ab)")
	require.NoError(t, firstErr(g.AddEdgeWithValue(VB, VC, "bc", 0)), "AddEdgeWithValue(bc)")

	it := g.Iterables()

	var vertices []string
	for v := range it.Vertices() {
		vertices = append(vertices, v)
	}
	require.ElementsMatch(t, vertices, []string{VA, VB, VC}, "Iterables.Vertices()")

	var edges []string
	for e := range it.Edges() {
		edges = append(edges, e)
	}
	require.ElementsMatch(t, edges, []string{"ab", "bc"}, "Iterables.Edges()")
}

func TestIterables_VerticesStopsEarly(t *testing.T) {
	g := graph.New[string, string]()
	require.NoError(t, firstErr(g.AddVertex(VA)), "AddVertex(A)")
	require.NoError(t, firstErr(g.AddVertex(VB)), "AddVertex(B)")
	require.NoError(t, firstErr(g.AddVertex(VC)), "AddVertex(C)")

	var seen int
	for range g.Iterables().Vertices() {
		seen++
		break
	}
	require.Equal(t, 1, seen, "Iterables.Vertices() early break")
}
