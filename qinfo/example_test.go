package qinfo_test

import (
	"fmt"

	"github.com/katalvlaran/qlinalg/cmat"
	"github.com/katalvlaran/qlinalg/qinfo"
)

// ExamplePartialTrace reduces a two-qubit product state back to its
// factors.
func ExamplePartialTrace() {
	rhoA, _ := cmat.NewDenseFromRows([][]complex128{
		{0.25, 0},
		{0, 0.75},
	})
	rhoB, _ := cmat.NewDenseFromRows([][]complex128{
		{0.5, 0},
		{0, 0.5},
	})
	joint, _ := cmat.NKron(rhoA, rhoB)

	reduced, _ := qinfo.PartialTrace(joint, 2, 2, qinfo.SystemB)
	top, _ := reduced.At(0, 0)
	bottom, _ := reduced.At(1, 1)
	fmt.Printf("%.2f %.2f\n", real(top), real(bottom))
	// Output:
	// 0.25 0.75
}

// ExamplePurity separates pure from maximally mixed single-qubit states.
func ExamplePurity() {
	pure, _ := cmat.NewDenseFromRows([][]complex128{
		{1, 0},
		{0, 0},
	})
	mixed, _ := cmat.NewDenseFromRows([][]complex128{
		{0.5, 0},
		{0, 0.5},
	})

	p1, _ := qinfo.Purity(pure)
	p2, _ := qinfo.Purity(mixed)
	fmt.Printf("%.2f %.2f\n", p1, p2)
	// Output:
	// 1.00 0.50
}
