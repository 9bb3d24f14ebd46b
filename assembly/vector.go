package assembly

import (
	"fmt"

	"github.com/notargets/mortar/surface"
	"gonum.org/v1/gonum/mat"
)

// AssembleVector assembles the contact contributions of the facets on
// surface origin additively into the flat global vector b, laid out as
// blockSize values per dof: entry blockSize*dof + component. Geometry
// gathering, coefficient slicing and kernel invocation follow the same
// contract as AssembleMatrix; there are no cross blocks, only the self block
// and one block per linked cell.
func (c *Contact) AssembleVector(b []float64, origin int, kernel VecKernelFunc,
	coeffs []float64, cstride int, constants []float64) error {

	rest, opp, cm, err := c.originData(origin)
	if err != nil {
		return err
	}
	m := c.Space.Mesh
	dm := c.Space.DofMap
	ndofs := c.Space.NdofsCell()
	if ndofs == 0 {
		return fmt.Errorf("function space has no cells")
	}
	bs := dm.BlockSize
	if len(b) != c.Space.Dim() {
		return fmt.Errorf("global vector has length %d, want %d", len(b), c.Space.Dim())
	}
	if cstride < 0 || len(coeffs) < rest.NumFacets()*cstride {
		return fmt.Errorf("coefficient buffer holds %d scalars, need %d facets x stride %d",
			len(coeffs), rest.NumFacets(), cstride)
	}

	maxLinks := c.MaxLinksGlobal()
	coords := make([]float64, 3*m.VertsPerCell())
	blocks := make([]*mat.VecDense, maxLinks+1)
	for i := range blocks {
		blocks[i] = mat.NewVecDense(bs*ndofs, nil)
	}
	var linked []int

	for i, fp := range rest.Pairs {
		gatherCellCoords(m, fp.Cell, coords)

		linked = surface.ResolveLinkedCells(linked, cm.Links(i), opp)
		numLinked := len(linked)

		blocks[0].Zero()
		for j := 0; j < numLinked; j++ {
			blocks[j+1].Zero()
		}

		kernel(blocks, coeffs[i*cstride:(i+1)*cstride], constants, coords,
			fp.LocalFacet, NeutralOrientation, numLinked)

		cellDofs := dm.CellDofs(fp.Cell)
		for j, dof := range cellDofs {
			for k := 0; k < bs; k++ {
				b[bs*dof+k] += blocks[0].AtVec(bs*j + k)
			}
		}
		for l := 0; l < numLinked; l++ {
			linkedDofs := dm.CellDofs(linked[l])
			for j, dof := range linkedDofs {
				for k := 0; k < bs; k++ {
					b[bs*dof+k] += blocks[l+1].AtVec(bs*j + k)
				}
			}
		}
	}
	return nil
}
