// Package assembly drives matrix and vector assembly over a pair of
// non-matching contact surfaces: per-facet geometry gather, linked-cell
// resolution, kernel invocation, and additive scatter into global storage.
package assembly

import (
	"fmt"

	"github.com/notargets/mortar/mesh"
	"github.com/notargets/mortar/quadrature"
	"github.com/notargets/mortar/space"
	"github.com/notargets/mortar/surface"
)

// Contact couples two marked surfaces of one mesh. Each surface's
// restriction is paired with an externally computed correspondence map onto
// the opposite surface; the map may be replaced between assembly calls as
// the contact pairing evolves (e.g. each nonlinear iteration).
type Contact struct {
	Space *space.FunctionSpace
	Rule  quadrature.Rule

	surfaceTags  [2]int
	restrictions [2]*surface.Restriction
	maps         [2]surface.CorrespondenceMap
	maxLinks     [2]int
}

// NewContact builds the two surface restrictions for the facet sets tagged
// surfaces[0] and surfaces[1] in marker, and a facet quadrature rule exact
// for quadDegree. Both tags must mark at least one facet.
func NewContact(marker *mesh.Tags, surfaces [2]int, v *space.FunctionSpace, quadDegree int) (*Contact, error) {
	if marker.Mesh != v.Mesh {
		return nil, fmt.Errorf("marker and function space use different meshes")
	}
	rule, err := quadrature.FacetRule(v.Mesh.Tdim, quadDegree)
	if err != nil {
		return nil, err
	}
	c := &Contact{
		Space:       v,
		Rule:        rule,
		surfaceTags: surfaces,
	}
	for s, tag := range surfaces {
		facets := marker.Find(tag)
		if len(facets) == 0 {
			return nil, fmt.Errorf("surface tag %d marks no facets", tag)
		}
		r, err := surface.NewRestriction(v.Mesh, facets)
		if err != nil {
			return nil, fmt.Errorf("surface %d (tag %d): %w", s, tag, err)
		}
		c.restrictions[s] = r
	}
	return c, nil
}

// Opposite returns the index of the surface facing side.
func (c *Contact) Opposite(side int) int {
	return 1 - side
}

// Restriction returns the surface view of side.
func (c *Contact) Restriction(side int) *surface.Restriction {
	return c.restrictions[side]
}

// SetCorrespondence installs the candidate facet map for side and recomputes
// the side's maximum link count. cm must hold one (possibly empty) candidate
// list per boundary facet of the side, with candidates indexing the opposite
// restriction's facets.
func (c *Contact) SetCorrespondence(side int, cm surface.CorrespondenceMap) error {
	r := c.restrictions[side]
	if len(cm) != r.NumFacets() {
		return fmt.Errorf("correspondence map has %d entries, surface %d has %d facets",
			len(cm), side, r.NumFacets())
	}
	opp := c.restrictions[c.Opposite(side)]
	maxLinks := 0
	var linked []int
	for i := range cm {
		for _, f := range cm.Links(i) {
			if f < 0 || f >= opp.NumFacets() {
				return fmt.Errorf("facet %d candidate %d out of opposite surface range [0,%d)",
					i, f, opp.NumFacets())
			}
		}
		linked = surface.ResolveLinkedCells(linked, cm.Links(i), opp)
		if len(linked) > maxLinks {
			maxLinks = len(linked)
		}
	}
	c.maps[side] = cm
	c.maxLinks[side] = maxLinks
	return nil
}

// MaxLinks returns the maximum linked-cell count over side's facets, as of
// the last SetCorrespondence call for that side.
func (c *Contact) MaxLinks(side int) int {
	return c.maxLinks[side]
}

// MaxLinksGlobal returns the maximum of MaxLinks over both surfaces. Buffers
// are sized uniformly from it so the kernel interface does not depend on the
// origin surface.
func (c *Contact) MaxLinksGlobal() int {
	if c.maxLinks[0] > c.maxLinks[1] {
		return c.maxLinks[0]
	}
	return c.maxLinks[1]
}

// originData collects the per-call views of the origin surface, validating
// that its correspondence map has been installed.
func (c *Contact) originData(origin int) (*surface.Restriction, *surface.Restriction, surface.CorrespondenceMap, error) {
	if origin != 0 && origin != 1 {
		return nil, nil, nil, fmt.Errorf("origin surface %d must be 0 or 1", origin)
	}
	cm := c.maps[origin]
	if cm == nil {
		return nil, nil, nil, fmt.Errorf("no correspondence map set for surface %d", origin)
	}
	return c.restrictions[origin], c.restrictions[c.Opposite(origin)], cm, nil
}

// gatherCellCoords copies cell c's vertex coordinates into coords with a
// fixed stride of 3, filling only the first gdim components per vertex.
// Trailing components keep whatever the previous facet left there; kernels
// must not read beyond gdim.
func gatherCellCoords(m *mesh.Mesh, c int, coords []float64) {
	for j, v := range m.CellVerts[c] {
		copy(coords[3*j:3*j+m.Gdim], m.X[3*v:3*v+m.Gdim])
	}
}
