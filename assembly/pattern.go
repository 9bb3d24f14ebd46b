package assembly

import (
	"fmt"

	"github.com/james-bowman/sparse"
	"github.com/notargets/mortar/la"
	"github.com/notargets/mortar/space"
	"github.com/notargets/mortar/surface"
)

// Form is the base coupling form on the primary function space: cell-local
// test/trial coupling over the whole mesh. The contact terms extend its
// pattern with cross-surface entries.
type Form struct {
	Space *space.FunctionSpace
}

// BasePattern returns the sparsity pattern implied by the form alone:
// (dofs(c), dofs(c)) for every cell c.
func BasePattern(f Form) *la.Pattern {
	dm := f.Space.DofMap
	p := la.NewPattern(dm.NumDofs, dm.NumDofs)
	for c := range dm.Cells {
		dofs := dm.CellDofs(c)
		p.Insert(dofs, dofs)
	}
	return p
}

// CreatePattern builds the base pattern of f and extends it with the
// cross-surface coupling entries of both contact surfaces, then finalizes
// it. For every boundary cell the union of its linked cells' dofs is
// inserted in both directions: storage must be reserved for both
// off-diagonal blocks regardless of which assembly pass populates them.
// Insertion is batched per boundary cell, not per quadrature point.
func (c *Contact) CreatePattern(f Form) (*la.Pattern, error) {
	if f.Space != c.Space {
		return nil, fmt.Errorf("form space differs from contact space")
	}
	p := BasePattern(f)
	dm := c.Space.DofMap

	var linkedDofs []int
	for s := 0; s < 2; s++ {
		rest, opp, cm, err := c.originData(s)
		if err != nil {
			return nil, err
		}
		for i, fp := range rest.Pairs {
			cellDofs := dm.CellDofs(fp.Cell)

			linkedDofs = linkedDofs[:0]
			for _, link := range cm.Links(i) {
				linkedSub := opp.FacetPair(link).Cell
				linkedCell := opp.ParentCell(linkedSub)
				linkedDofs = append(linkedDofs, dm.CellDofs(linkedCell)...)
			}
			linkedDofs = surface.SortedUnique(linkedDofs)

			p.Insert(cellDofs, linkedDofs)
			p.Insert(linkedDofs, cellDofs)
		}
	}
	p.Assemble()
	return p, nil
}

// CreateMatrix builds the extended pattern of f and creates a CSR matrix
// with all pattern entries reserved (stored zeros), expanded by the space's
// block size.
func (c *Contact) CreateMatrix(f Form) (*sparse.CSR, error) {
	p, err := c.CreatePattern(f)
	if err != nil {
		return nil, err
	}
	return p.Matrix(c.Space.DofMap.BlockSize)
}
