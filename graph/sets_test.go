package graph_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/ashgrove-dev/graphcore/graph"
)

func TestVertexSet_LiveView(t *testing.T) {
	g := graph.New[string, string]()
	vs := g.VertexSet()

	require.False(t, vs.Contains(VA), "VertexSet.Contains(A) before insert")
	require.NoError(t, firstErr(g.AddVertex(VA)), "AddVertex(A)")
	require.True(t, vs.Contains(VA), "VertexSet.Contains(A) after insert, same handle")

	n, err := vs.Len()
	require.NoError(t, err, "VertexSet.Len")
	require.Equal(t, 1, int(n), "VertexSet.Len")

	require.Equal(t, []string{VA}, vs.All(), "VertexSet.All")
}

func TestEdgeSet_RestrictedByVertex(t *testing.T) {
	g := graph.New[string, string](graph.WithType[string, string](graph.Multigraph()))
	require.NoError(t, firstErr(g.AddVertex(VA)), "AddVertex(A)")
	require.NoError(t, firstErr(g.AddVertex(VB)), "AddVertex(B)")
	require.NoError(t, firstErr(g.AddVertex(VC)), "AddVertex(C)")
	require.NoError(t, firstErr(g.AddEdgeWithValue(VA, VB, "ab", 0)), "AddEdgeWithValue(ab)")
	require.NoError(t, firstErr(g.AddEdgeWithValue(VB, VC, "bc", 0)), "AddEdgeWithValue(bc)")

	esA, err := g.EdgesOf(VA)
	require.NoError(t, err, "EdgesOf(A)")
	require.Equal(t, 1, esA.Len(), "EdgesOf(A).Len()")
	require.True(t, esA.Contains("ab"), "EdgesOf(A).Contains(ab)")
	require.False(t, esA.Contains("bc"), "EdgesOf(A).Contains(bc)")

	all := g.EdgeSet()
	require.Equal(t, 2, all.Len(), "unrestricted EdgeSet.Len()")
}

func TestEdgesOf_MissingVertex(t *testing.T) {
	g := graph.New[string, string]()
	_, err := g.EdgesOf(VA)
	require.ErrorIs(t, err, graph.ErrVertexNotFound, "EdgesOf on a missing vertex")
}

func TestGetEdge_AbsentPair(t *testing.T) {
	g := graph.New[string, string]()
	require.NoError(t, firstErr(g.AddVertex(VA)), "AddVertex(A)")
	require.NoError(t, firstErr(g.AddVertex(VB)), "AddVertex(B)")

	_, ok := g.GetEdge(VA, VB)
	require.False(t, ok, "GetEdge on absent pair")
	require.False(t, g.ContainsEdgeBetween(VA, VB), "ContainsEdgeBetween on absent pair")
}

func TestEnumeration_DeterministicInsertionOrder(t *testing.T) {
	for _, kind := range mutableBackends {
		g := graph.New[string, string](
			graph.WithType[string, string](graph.Multigraph()),
			graph.WithStorage[string, string](kind),
		)
		require.NoError(t, firstErr(g.AddVertex(VC)), "AddVertex(C)")
		require.NoError(t, firstErr(g.AddVertex(VA)), "AddVertex(A)")
		require.NoError(t, firstErr(g.AddVertex(VB)), "AddVertex(B)")

		// Deliberately out of lexical order: enumeration must follow
		// insertion, not value ordering and not map iteration.
		require.NoError(t, firstErr(g.AddEdgeWithValue(VC, VA, "zz", 0)), "AddEdgeWithValue(zz)")
		require.NoError(t, firstErr(g.AddEdgeWithValue(VA, VB, "mm", 0)), "AddEdgeWithValue(mm)")
		require.NoError(t, firstErr(g.AddEdgeWithValue(VB, VC, "aa", 0)), "AddEdgeWithValue(aa)")

		require.Equal(t, []string{VC, VA, VB}, g.VertexSet().All(), "VertexSet.All insertion order")
		require.Equal(t, []string{"zz", "mm", "aa"}, g.EdgeSet().All(), "EdgeSet.All insertion order")

		esA, err := g.EdgesOf(VA)
		require.NoError(t, err, "EdgesOf(A)")
		require.Equal(t, []string{"zz", "mm"}, esA.All(), "EdgesOf(A) insertion order")

		require.NoError(t, firstErr(g.AddEdgeWithValue(VC, VA, "bb", 0)), "AddEdgeWithValue(bb)")
		require.Equal(t, []string{"zz", "bb"}, g.GetAllEdges(VC, VA), "GetAllEdges insertion order")

		e, ok := g.GetEdge(VC, VA)
		require.True(t, ok, "GetEdge(C,A) ok")
		require.Equal(t, "zz", e, "GetEdge returns the earliest-inserted parallel edge")
	}
}
