package graph_test

import (
	"fmt"

	"github.com/ashgrove-dev/graphcore/graph"
)

// Common vertex fixtures, kept small and stable across the package's test
// files to avoid magic literals.
const (
	VA = "A"
	VB = "B"
	VC = "C"
	VD = "D"
)

// seqEdgeSupplier hands out sequential "e0", "e1", ... values, for tests
// that exercise the no-argument AddEdge(from, to, weight) form.
func seqEdgeSupplier() graph.Supplier[string] {
	n := 0
	return func() string {
		v := fmt.Sprintf("e%d", n)
		n++
		return v
	}
}
