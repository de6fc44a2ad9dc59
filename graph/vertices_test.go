package graph_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/ashgrove-dev/graphcore/graph"
)

var mutableBackends = []graph.StorageKind{graph.StorageMapOfSets, graph.StorageFastLookup}

func TestGraph_AddRemoveVertex(t *testing.T) {
	for _, kind := range mutableBackends {
		g := graph.New[string, string](graph.WithStorage[string, string](kind))

		added, err := g.AddVertex(VA)
		require.NoError(t, err, "AddVertex(A)")
		require.True(t, added, "AddVertex(A) added")
		require.True(t, g.ContainsVertex(VA), "ContainsVertex(A)")

		added, err = g.AddVertex(VA)
		require.NoError(t, err, "AddVertex(A) duplicate")
		require.False(t, added, "AddVertex(A) duplicate added")

		n, err := g.VertexCount()
		require.NoError(t, err, "VertexCount")
		require.Equal(t, 1, int(n), "VertexCount after one distinct AddVertex")

		removed, err := g.RemoveVertex(VA)
		require.NoError(t, err, "RemoveVertex(A)")
		require.True(t, removed, "RemoveVertex(A) removed")
		require.False(t, g.ContainsVertex(VA), "ContainsVertex(A) after removal")

		removed, err = g.RemoveVertex(VA)
		require.NoError(t, err, "RemoveVertex(A) again")
		require.False(t, removed, "RemoveVertex(A) again removed")
	}
}

func TestGraph_AddVertexFromSupplier(t *testing.T) {
	next := 0
	supplier := func() string {
		next++
		return string(rune('a' + next - 1))
	}
	g := graph.New[string, string](graph.WithVertexSupplier[string, string](supplier))

	v1, err := g.AddVertexFromSupplier()
	require.NoError(t, err, "AddVertexFromSupplier #1")

	v2, err := g.AddVertexFromSupplier()
	require.NoError(t, err, "AddVertexFromSupplier #2")

	require.NotEqual(t, v1, v2, "AddVertexFromSupplier must yield distinct vertices")

	n, err := g.VertexCount()
	require.NoError(t, err, "VertexCount")
	require.Equal(t, 2, int(n), "VertexCount after two supplier adds")
}

func TestGraph_AddVertexFromSupplier_DuplicateRejected(t *testing.T) {
	// A supplier that keeps handing out the same value: the first call
	// inserts it, the second must fail under the same lock as the insert.
	supplier := func() string { return VA }
	g := graph.New[string, string](graph.WithVertexSupplier[string, string](supplier))

	v, err := g.AddVertexFromSupplier()
	require.NoError(t, err, "AddVertexFromSupplier first")
	require.Equal(t, VA, v, "AddVertexFromSupplier first value")

	_, err = g.AddVertexFromSupplier()
	require.ErrorIs(t, err, graph.ErrDuplicateVertex, "AddVertexFromSupplier duplicate")

	n, err := g.VertexCount()
	require.NoError(t, err, "VertexCount")
	require.Equal(t, 1, int(n), "VertexCount unchanged by the rejected duplicate")
}

func TestGraph_AddVertexFromSupplier_NoSupplierConfigured(t *testing.T) {
	g := graph.New[string, string]()
	_, err := g.AddVertexFromSupplier()
	require.ErrorIs(t, err, graph.ErrNoVertexSupplier, "AddVertexFromSupplier without configured supplier")
}

func TestGraph_RemoveVertex_CascadesToIncidentEdges(t *testing.T) {
	g := graph.New[string, string](
		graph.WithType[string, string](graph.Multigraph()),
		graph.WithEdgeSupplier[string, string](seqEdgeSupplier()),
	)
	require.NoError(t, firstErr(g.AddVertex(VA)), "AddVertex(A)")
	require.NoError(t, firstErr(g.AddVertex(VB)), "AddVertex(B)")

	_, added, err := g.AddEdge(VA, VB, 0)
	require.NoError(t, err, "AddEdge(A,B)")
	require.True(t, added, "AddEdge(A,B) added")

	_, err = g.RemoveVertex(VA)
	require.NoError(t, err, "RemoveVertex(A)")

	n, err := g.EdgeCount()
	require.NoError(t, err, "EdgeCount")
	require.Equal(t, 0, int(n), "EdgeCount after removing an endpoint")
}

func firstErr(_ bool, err error) error { return err }
