package graph_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/ashgrove-dev/graphcore/graph"
)

// TestStorageBackends_AgreeOnReads builds the same small graph on every
// mutable backend and asserts the read-facing contract (counts, incidence,
// degree) is identical regardless of which specifics implementation is
// underneath — the backend choice must never leak into observable behavior.
func TestStorageBackends_AgreeOnReads(t *testing.T) {
	for _, kind := range mutableBackends {
		g := graph.New[string, string](
			graph.WithType[string, string](graph.Multigraph()),
			graph.WithStorage[string, string](kind),
		)
		for _, v := range []string{VA, VB, VC} {
			require.NoError(t, firstErr(g.AddVertex(v)), "AddVertex")
		}
		require.NoError(t, firstErr(g.AddEdgeWithValue(VA, VB, "ab1", 0)), "AddEdgeWithValue(ab1)")
		require.NoError(t, firstErr(g.AddEdgeWithValue(VA, VB, "ab2", 0)), "AddEdgeWithValue(ab2)")
		require.NoError(t, firstErr(g.AddEdgeWithValue(VB, VC, "bc", 0)), "AddEdgeWithValue(bc)")

		n, err := g.EdgeCount()
		require.NoError(t, err, "EdgeCount")
		require.Equal(t, 3, int(n), "EdgeCount")

		degA, err := g.DegreeOf(VA)
		require.NoError(t, err, "DegreeOf(A)")
		require.Equal(t, 2, int(degA), "DegreeOf(A)")

		degB, err := g.DegreeOf(VB)
		require.NoError(t, err, "DegreeOf(B)")
		require.Equal(t, 3, int(degB), "DegreeOf(B)")

		all := g.GetAllEdges(VA, VB)
		require.ElementsMatch(t, all, []string{"ab1", "ab2"}, "GetAllEdges(A,B)")

		e, ok := g.GetEdge(VB, VC)
		require.True(t, ok, "GetEdge(B,C) ok")
		require.Equal(t, "bc", e, "GetEdge(B,C)")
	}
}

func TestCSR_ImmutableAndMatchesMutableBuild(t *testing.T) {
	typ := graph.Multigraph()
	edges := []graph.CSRTriple[string, string]{
		graph.NewCSRTriple("ab1", VA, VB, false),
		graph.NewCSRTriple("ab2", VA, VB, false),
		graph.NewCSRTriple("bc", VB, VC, false),
	}
	g := graph.NewCSR[string, string](typ, []string{VA, VB, VC}, edges, nil)

	require.False(t, g.GetType().Modifiable, "NewCSR Type.Modifiable")

	added, err := g.AddEdgeWithValue(VA, VC, "ac", 0)
	require.ErrorIs(t, err, graph.ErrUnsupported, "AddEdgeWithValue on CSR graph")
	require.False(t, added, "AddEdgeWithValue on CSR graph added")

	n, err := g.EdgeCount()
	require.NoError(t, err, "EdgeCount")
	require.Equal(t, 3, int(n), "EdgeCount")

	degA, err := g.DegreeOf(VA)
	require.NoError(t, err, "DegreeOf(A)")
	require.Equal(t, 2, int(degA), "DegreeOf(A)")

	all := g.GetAllEdges(VA, VB)
	require.ElementsMatch(t, all, []string{"ab1", "ab2"}, "GetAllEdges(A,B) on CSR")
}

func TestCSR_ImpliedVerticesAppendedInFirstSeenOrder(t *testing.T) {
	edges := []graph.CSRTriple[string, string]{
		graph.NewCSRTriple("xy", "X", "Y", false),
	}
	g := graph.NewCSR[string, string](graph.SimpleGraph(), nil, edges, nil)

	require.True(t, g.ContainsVertex("X"), "ContainsVertex(X) implied by edge")
	require.True(t, g.ContainsVertex("Y"), "ContainsVertex(Y) implied by edge")

	n, err := g.VertexCount()
	require.NoError(t, err, "VertexCount")
	require.Equal(t, 2, int(n), "VertexCount implied-only graph")
}
