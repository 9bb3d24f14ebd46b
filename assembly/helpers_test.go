package assembly

import (
	"testing"

	"github.com/notargets/mortar/mesh"
	"github.com/notargets/mortar/space"
)

// buildTwoBlockContact builds a two-block contact pair with a vector P1
// space. The bottom surface (side 0) has nxBot facets, the top surface
// (side 1) nxTop facets. No correspondence maps are installed.
func buildTwoBlockContact(t *testing.T, nxBot, nxTop, blockSize int) (*mesh.Mesh, *mesh.Tags, *space.FunctionSpace, *Contact) {
	t.Helper()
	m, tags, err := mesh.TwoBlockGrid(nxBot, 1, nxTop, 1, 0.1)
	if err != nil {
		t.Fatalf("TwoBlockGrid failed: %v", err)
	}
	v, err := space.NewLagrangeSpace(m, blockSize)
	if err != nil {
		t.Fatalf("NewLagrangeSpace failed: %v", err)
	}
	c, err := NewContact(tags, [2]int{mesh.BottomContactTag, mesh.TopContactTag}, v, 2)
	if err != nil {
		t.Fatalf("NewContact failed: %v", err)
	}
	return m, tags, v, c
}

// sharedParentMesh builds a mesh where surface 0 has two facets on distinct
// bottom-strip cells and surface 1 has two distinct facets both owned by the
// single top-triangle cell. surf0 and surf1 list the marked facet ids in
// left-to-right order.
func sharedParentMesh(t *testing.T) (m *mesh.Mesh, surf0, surf1 []int) {
	t.Helper()
	vertices := [][]float64{
		{0, 0}, {1, 0}, {2, 0}, // 0 1 2
		{0, 1}, {1, 1}, {2, 1}, // 3 4 5
		{0, 1.1}, {2, 1.1}, {1, 2}, // 6 7 8
	}
	cells := [][]int{
		{0, 1, 4}, {0, 4, 3}, // left quad
		{1, 2, 5}, {1, 5, 4}, // right quad
		{6, 7, 8}, // top triangle, cell 4
	}
	var err error
	m, err = mesh.New(2, 2, vertices, cells)
	if err != nil {
		t.Fatalf("mesh.New failed: %v", err)
	}
	// Top edges of the bottom strip: edge (4,3) is local facet 1 of cell 1,
	// edge (5,4) is local facet 1 of cell 3
	surf0 = []int{m.CellFacets[1][1], m.CellFacets[3][1]}
	// Two edges of the top triangle
	surf1 = []int{m.CellFacets[4][0], m.CellFacets[4][1]}
	return m, surf0, surf1
}

// sharedParentContact wires sharedParentMesh into a Contact with the given
// surface-0 facet order (forward or reversed) and correspondence entries
// resolving, via distinct opposite facets, to the same top parent cell.
func sharedParentContact(t *testing.T, reversed bool) (*Contact, int) {
	t.Helper()
	m, surf0, surf1 := sharedParentMesh(t)
	if reversed {
		surf0 = []int{surf0[1], surf0[0]}
	}

	tags := mesh.NewTags(m, nil, nil)
	tags.Append(1, surf0)
	tags.Append(2, surf1)

	v, err := space.NewLagrangeSpace(m, 1)
	if err != nil {
		t.Fatalf("NewLagrangeSpace failed: %v", err)
	}
	c, err := NewContact(tags, [2]int{1, 2}, v, 2)
	if err != nil {
		t.Fatalf("NewContact failed: %v", err)
	}

	// Facet i on surface 0 corresponds to opposite facet i; both opposite
	// facets are owned by the top triangle
	cm0 := make([][]int, 2)
	for i := range cm0 {
		cm0[i] = []int{i}
	}
	if err := c.SetCorrespondence(0, cm0); err != nil {
		t.Fatalf("SetCorrespondence(0) failed: %v", err)
	}
	if err := c.SetCorrespondence(1, [][]int{nil, nil}); err != nil {
		t.Fatalf("SetCorrespondence(1) failed: %v", err)
	}
	const topCell = 4
	return c, topCell
}
