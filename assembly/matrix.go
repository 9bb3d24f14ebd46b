package assembly

import (
	"fmt"

	"github.com/notargets/mortar/surface"
	"gonum.org/v1/gonum/mat"
)

// AssembleMatrix assembles the contact contributions of the facets on
// surface origin into the caller-owned matrix behind matSet. coeffs packs
// cstride scalars per facet (see CoefficientsSize); constants is passed to
// the kernel unchanged.
//
// Local blocks are allocated once and reused across facets: exactly blocks
// 0..3*numLinked are zeroed for each facet, so stale data from a previous
// facet is never read. Facets are processed sequentially; matSet is the only
// step touching shared state.
func (c *Contact) AssembleMatrix(matSet MatSetFunc, origin int, kernel MatKernelFunc,
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
	if cstride < 0 || len(coeffs) < rest.NumFacets()*cstride {
		return fmt.Errorf("coefficient buffer holds %d scalars, need %d facets x stride %d",
			len(coeffs), rest.NumFacets(), cstride)
	}

	maxLinks := c.MaxLinksGlobal()
	coords := make([]float64, 3*m.VertsPerCell())
	blocks := make([]*mat.Dense, 3*maxLinks+1)
	for i := range blocks {
		blocks[i] = mat.NewDense(bs*ndofs, bs*ndofs, nil)
	}
	var linked []int

	for i, fp := range rest.Pairs {
		gatherCellCoords(m, fp.Cell, coords)

		linked = surface.ResolveLinkedCells(linked, cm.Links(i), opp)
		numLinked := len(linked)

		blocks[0].Zero()
		for j := 0; j < numLinked; j++ {
			blocks[3*j+1].Zero()
			blocks[3*j+2].Zero()
			blocks[3*j+3].Zero()
		}

		kernel(blocks, coeffs[i*cstride:(i+1)*cstride], constants, coords,
			fp.LocalFacet, NeutralOrientation, numLinked)

		cellDofs := dm.CellDofs(fp.Cell)
		if err := matSet(cellDofs, cellDofs, blocks[0]); err != nil {
			return fmt.Errorf("facet %d self block: %w", i, err)
		}
		for j := 0; j < numLinked; j++ {
			linkedDofs := dm.CellDofs(linked[j])
			if err := matSet(cellDofs, linkedDofs, blocks[3*j+1]); err != nil {
				return fmt.Errorf("facet %d link %d: %w", i, j, err)
			}
			if err := matSet(linkedDofs, cellDofs, blocks[3*j+2]); err != nil {
				return fmt.Errorf("facet %d link %d: %w", i, j, err)
			}
			if err := matSet(linkedDofs, linkedDofs, blocks[3*j+3]); err != nil {
				return fmt.Errorf("facet %d link %d: %w", i, j, err)
			}
		}
	}
	return nil
}
