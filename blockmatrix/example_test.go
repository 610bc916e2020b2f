// File: blockmatrix/example_test.go
package blockmatrix_test

import (
	"fmt"

	"github.com/vtsynergy/DistributedSBP/blockmatrix"
)

// ExampleNewDense accumulates two arcs into one cell and reads the
// aggregate back, along with the row and column totals.
func ExampleNewDense() {
	m, _ := blockmatrix.NewDense(2)
	_ = m.Inc(0, 1, 3)
	_ = m.Inc(0, 1, 2)

	cell, _ := m.At(0, 1)
	row, _ := m.RowSum(0)
	col, _ := m.ColSum(1)
	fmt.Println("cell:", cell, "row:", row, "col:", col)

	// Output:
	// cell: 5 row: 5 col: 5
}

// ExampleNewHashed shows that both backings satisfy the same contract;
// a clone is fully independent of its source.
func ExampleNewHashed() {
	m, _ := blockmatrix.NewHashed(3)
	_ = m.Inc(2, 0, 7)

	clone := m.Clone()
	_ = clone.Inc(2, 0, 1)

	orig, _ := m.At(2, 0)
	copied, _ := clone.At(2, 0)
	fmt.Println("original:", orig, "clone:", copied)

	// Output:
	// original: 7 clone: 8
}
