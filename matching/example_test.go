package matching_test

import (
	"fmt"

	"github.com/ashgrove-dev/graphcore/graph"
	"github.com/ashgrove-dev/graphcore/matching"
)

// ExampleMatch runs the blossom engine on a path of five vertices and
// certifies the result: two matched edges, one vertex left uncovered.
func ExampleMatch() {
	g := graph.New[int, string]()
	for v := 1; v <= 5; v++ {
		_, _ = g.AddVertex(v)
	}
	for v := 1; v < 5; v++ {
		_, _ = g.AddEdgeWithValue(v, v+1, fmt.Sprintf("e%d", v), 0)
	}

	m, y := matching.Match(g)
	fmt.Println("|M| =", m.Len())
	fmt.Println("certified:", matching.Certify(g, m, y))

	// Output:
	// |M| = 2
	// certified: true
}
