package spectral_test

import (
	"fmt"

	"github.com/katalvlaran/qlinalg/cmat"
	"github.com/katalvlaran/qlinalg/spectral"
)

// ExampleEigh resolves the Pauli Z spectrum: two simple eigenspaces at ∓1
// whose projectors are the computational basis projectors.
func ExampleEigh() {
	z, _ := cmat.NewDenseFromRows([][]complex128{
		{1, 0},
		{0, -1},
	})

	dec, _ := spectral.Eigh(z)
	for _, es := range dec.Eigenspaces {
		fmt.Printf("lambda=%.0f dim=%d\n", es.Value, es.Dim)
	}
	// Output:
	// lambda=-1 dim=1
	// lambda=1 dim=1
}

// ExampleHermTransform squares a Hermitian matrix through its spectrum;
// for Z the square is the identity.
func ExampleHermTransform() {
	z, _ := cmat.NewDenseFromRows([][]complex128{
		{1, 0},
		{0, -1},
	})

	sq, _ := spectral.HermTransform(func(x float64) float64 { return x * x }, z)
	a, _ := sq.At(0, 0)
	b, _ := sq.At(1, 1)
	fmt.Printf("%.0f %.0f\n", real(a), real(b))
	// Output:
	// 1 1
}
