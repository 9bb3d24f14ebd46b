// Package space provides the minimal function-space abstraction the assembly
// loops consume: per-cell degree-of-freedom lookup and a block size packing
// vector components per dof slot.
package space

import (
	"fmt"

	"github.com/notargets/mortar/mesh"
)

// DofMap maps cells to global dof indices. Indices are "unblocked": a dof
// index d with block size bs occupies slots bs*d .. bs*d+bs-1 of a flat
// global vector.
type DofMap struct {
	Cells     [][]int // Cell -> dof indices
	BlockSize int
	NumDofs   int // Number of dof index slots (unblocked)
}

// CellDofs returns the dof indices of cell c.
func (dm *DofMap) CellDofs(c int) []int {
	return dm.Cells[c]
}

// FunctionSpace couples a mesh with a dof numbering.
type FunctionSpace struct {
	Mesh   *mesh.Mesh
	DofMap *DofMap
}

// Dim returns the flat global vector length, BlockSize slots per dof.
func (v *FunctionSpace) Dim() int {
	return v.DofMap.BlockSize * v.DofMap.NumDofs
}

// NdofsCell returns the number of dof indices per cell. All cells carry the
// same count on the simplicial meshes supported here.
func (v *FunctionSpace) NdofsCell() int {
	if len(v.DofMap.Cells) == 0 {
		return 0
	}
	return len(v.DofMap.Cells[0])
}

// NewLagrangeSpace builds a continuous piecewise-linear space on m: one dof
// per vertex, blockSize components per dof.
func NewLagrangeSpace(m *mesh.Mesh, blockSize int) (*FunctionSpace, error) {
	if blockSize < 1 {
		return nil, fmt.Errorf("block size %d must be at least 1", blockSize)
	}
	dm := &DofMap{
		Cells:     make([][]int, m.NumCells),
		BlockSize: blockSize,
		NumDofs:   m.NumVertices,
	}
	for c, verts := range m.CellVerts {
		dofs := make([]int, len(verts))
		copy(dofs, verts)
		dm.Cells[c] = dofs
	}
	return &FunctionSpace{Mesh: m, DofMap: dm}, nil
}
