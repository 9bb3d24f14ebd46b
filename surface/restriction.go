// Package surface restricts a mesh to one marked contact surface and
// resolves, per boundary facet, the set of opposite-surface cells it is
// geometrically linked to.
package surface

import (
	"fmt"

	"github.com/notargets/mortar/mesh"
)

// CellFacet identifies a facet by its owning cell and the facet's local
// index within that cell.
type CellFacet struct {
	Cell       int
	LocalFacet int
}

// Restriction is a reduced view of the mesh limited to the cells and facets
// of one marked surface. It owns its index maps exclusively; the mesh is
// shared read-only with the opposite surface's restriction.
type Restriction struct {
	Mesh *mesh.Mesh

	// Pairs lists the surface's boundary facets in marker order as
	// (parent cell, local facet index) pairs. Immutable once built.
	Pairs []CellFacet

	// facetPairs maps each restriction-local facet index to its
	// (restricted cell, local facet index) pair.
	facetPairs []CellFacet

	// parentCells maps each restricted cell to its parent-mesh cell.
	parentCells []int
}

// NewRestriction builds the surface view for the given marked facets.
// Restricted cells are numbered in first-appearance order, so facets sharing
// an owning cell share a restricted cell.
func NewRestriction(m *mesh.Mesh, facets []int) (*Restriction, error) {
	r := &Restriction{
		Mesh:       m,
		Pairs:      make([]CellFacet, 0, len(facets)),
		facetPairs: make([]CellFacet, 0, len(facets)),
	}
	cellToSub := make(map[int]int)
	for _, f := range facets {
		if f < 0 || f >= m.NumFacets {
			return nil, fmt.Errorf("facet %d out of range [0,%d)", f, m.NumFacets)
		}
		cells := m.FacetCells[f]
		if len(cells) == 0 {
			return nil, fmt.Errorf("facet %d has no incident cell", f)
		}
		cell := cells[0]
		lf := m.LocalFacetIndex(cell, f)
		if lf < 0 {
			return nil, fmt.Errorf("facet %d not found in cell %d facet list", f, cell)
		}

		sub, ok := cellToSub[cell]
		if !ok {
			sub = len(r.parentCells)
			cellToSub[cell] = sub
			r.parentCells = append(r.parentCells, cell)
		}
		r.Pairs = append(r.Pairs, CellFacet{Cell: cell, LocalFacet: lf})
		r.facetPairs = append(r.facetPairs, CellFacet{Cell: sub, LocalFacet: lf})
	}
	return r, nil
}

// NumFacets returns the number of boundary facets on this surface.
func (r *Restriction) NumFacets() int {
	return len(r.Pairs)
}

// FacetPair returns the (restricted cell, local facet) pair of
// restriction-local facet i.
func (r *Restriction) FacetPair(i int) CellFacet {
	return r.facetPairs[i]
}

// ParentCell maps a restricted cell to its parent-mesh cell.
func (r *Restriction) ParentCell(sub int) int {
	return r.parentCells[sub]
}

// NumCells returns the number of restricted cells.
func (r *Restriction) NumCells() int {
	return len(r.parentCells)
}
