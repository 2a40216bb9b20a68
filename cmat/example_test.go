package cmat_test

import (
	"fmt"

	"github.com/katalvlaran/qlinalg/cmat"
)

// ExampleNKron builds the two-qubit operator X⊗X and reads the entry that
// flips |00⟩ to |11⟩.
func ExampleNKron() {
	x, _ := cmat.NewDenseFromRows([][]complex128{
		{0, 1},
		{1, 0},
	})

	xx, _ := cmat.NKron(x, x)
	v, _ := xx.At(0, 3)
	fmt.Println(xx.Rows(), "x", xx.Cols())
	fmt.Println(real(v))
	// Output:
	// 4 x 4
	// 1
}

// ExampleDirectSum stacks two blocks on the diagonal; everything off the
// blocks is zero.
func ExampleDirectSum() {
	a, _ := cmat.NewDenseFromRows([][]complex128{
		{1, 2},
		{3, 4},
	})
	b, _ := cmat.NewDenseFromRows([][]complex128{{5}})

	s, _ := cmat.DirectSum(a, b)
	corner, _ := s.At(2, 2)
	off, _ := s.At(0, 2)
	fmt.Println(s.Rows(), "x", s.Cols())
	fmt.Println(real(corner), real(off))
	// Output:
	// 3 x 3
	// 5 0
}

// ExampleTrace sums the diagonal of a complex matrix.
func ExampleTrace() {
	m, _ := cmat.NewDenseFromRows([][]complex128{
		{1 + 2i, 9},
		{9, 3 - 1i},
	})

	tr, _ := cmat.Trace(m)
	fmt.Println(tr)
	// Output:
	// (4+1i)
}
