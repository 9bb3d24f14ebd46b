package assembly

import "gonum.org/v1/gonum/mat"

// NeutralOrientation is the facet orientation/permutation indicator passed
// to every kernel invocation. Non-matching facet orientations for jump
// integrals are not generalized yet; kernels relying on a permutation other
// than the neutral one are unsupported.
const NeutralOrientation uint8 = 0

// MatKernelFunc computes the local matrix contributions of one boundary
// facet. blocks[0] is the self x self block; for each linked cell j,
// blocks[3j+1], blocks[3j+2] and blocks[3j+3] are the self x linked_j,
// linked_j x self and linked_j x linked_j blocks. Only blocks
// 0 .. 3*numLinked are zeroed before the call and only those may be written.
// coeffs is the facet's slice of the packed coefficient buffer, coords the
// 3-stride cell geometry (entries beyond the embedding dimension are
// undefined and must not be read).
type MatKernelFunc func(blocks []*mat.Dense, coeffs, constants, coords []float64,
	localFacet int, orientation uint8, numLinked int)

// VecKernelFunc computes the local vector contributions of one boundary
// facet. blocks[0] is the self contribution, blocks[j+1] the contribution
// associated with linked cell j. Same zeroing and buffer contracts as
// MatKernelFunc.
type VecKernelFunc func(blocks []*mat.VecDense, coeffs, constants, coords []float64,
	localFacet int, orientation uint8, numLinked int)

// MatSetFunc scatters a (blockSize*len(rows)) x (blockSize*len(cols)) value
// block into the global matrix. Implementations must accumulate, never
// overwrite, and tolerate repeated calls on overlapping index pairs.
type MatSetFunc func(rows, cols []int, values *mat.Dense) error
