// SPDX-License-Identifier: MIT
package qinfo

import "github.com/katalvlaran/qlinalg/cmat"

const opPermuteSystems = "PermuteSystems"

// PermuteSystems reorders the tensor factors of a multipartite operator.
//
// The operator is addressed by mixed-radix digits over dims, leftmost
// factor most significant. Output factor p is input factor perm[p], so
// perm = [0, 2, 1] on dims [2, 2, 2] swaps the last two qubits and
// PermuteSystems(A⊗B⊗C, [0,2,1], dims) equals A⊗C⊗B. Heterogeneous
// factor dimensions are allowed.
//
// Inputs:
//   - m    : square matrix whose side equals the product of dims.
//   - perm : a bijection on [0, len(dims)).
//   - dims : per-factor dimensions, all ≥ 1.
//
// Errors: cmat.ErrNonSquare, ErrBadPermutation (length mismatch or not a
// bijection), ErrBadSplit (side is not the dims product).
//
// Complexity: O(d²·k) for side d and k factors.
func PermuteSystems(m *cmat.Dense, perm, dims []int) (*cmat.Dense, error) {
	if err := cmat.ValidateSquare(m); err != nil {
		return nil, qinfoErrorf(opPermuteSystems, err)
	}
	k := len(dims)
	if k == 0 || len(perm) != k {
		return nil, qinfoErrorf(opPermuteSystems, ErrBadPermutation)
	}

	seen := make([]bool, k)
	for _, p := range perm {
		if p < 0 || p >= k || seen[p] {
			return nil, qinfoErrorf(opPermuteSystems, ErrBadPermutation)
		}
		seen[p] = true
	}

	var (
		total    = 1
		outDims  = make([]int, k)
		outWeigh = make([]int, k)
	)
	for p := 0; p < k; p++ {
		if dims[p] < 1 {
			return nil, qinfoErrorf(opPermuteSystems, ErrBadSplit)
		}
		total *= dims[p]
		outDims[p] = dims[perm[p]]
	}
	if total != m.Rows() {
		return nil, qinfoErrorf(opPermuteSystems, ErrBadSplit)
	}
	for p := k - 1; p >= 0; p-- {
		if p == k-1 {
			outWeigh[p] = 1
		} else {
			outWeigh[p] = outWeigh[p+1] * outDims[p+1]
		}
	}

	// remap translates an input index into the permuted encoding.
	digits := make([]int, k)
	remap := func(idx int) int {
		rem := idx
		for p := k - 1; p >= 0; p-- {
			digits[p] = rem % dims[p]
			rem /= dims[p]
		}
		mapped := 0
		for p := 0; p < k; p++ {
			mapped += digits[perm[p]] * outWeigh[p]
		}
		return mapped
	}

	out, err := cmat.NewDense(total, total)
	if err != nil {
		return nil, qinfoErrorf(opPermuteSystems, err)
	}
	var (
		data    = m.RawData()
		od      = out.RawData()
		rowMap  = make([]int, total)
		row, cl int
	)
	for row = 0; row < total; row++ {
		rowMap[row] = remap(row)
	}
	for row = 0; row < total; row++ {
		for cl = 0; cl < total; cl++ {
			od[rowMap[row]*total+rowMap[cl]] = data[row*total+cl]
		}
	}

	return out, nil
}
