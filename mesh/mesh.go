package mesh

import (
	"fmt"
	"sort"
)

// Mesh is a conforming simplicial mesh with facet connectivity built at
// construction time. Coordinates are stored with a fixed stride of 3 so that
// geometry gathers are layout-independent of the embedding dimension; only
// the first Gdim components of each vertex are meaningful.
type Mesh struct {
	Tdim int // Topological dimension (2 for triangles, 3 for tetrahedra)
	Gdim int // Embedding (geometric) dimension, Gdim >= Tdim

	// Geometry
	X []float64 // Vertex coordinates, X[3*v : 3*v+3], 3-padded

	// Topology
	CellVerts  [][]int // Cell -> vertex indices
	FacetVerts [][]int // Facet -> sorted vertex indices
	FacetCells [][]int // Facet -> incident cells (1 on the boundary, 2 inside)
	CellFacets [][]int // Cell -> facet indices in local facet order

	NumVertices int
	NumCells    int
	NumFacets   int
}

// localFacets returns the local facet definitions (vertex positions within a
// cell) for a simplex of topological dimension tdim.
func localFacets(tdim int) ([][]int, error) {
	switch tdim {
	case 2:
		// Triangle edges
		return [][]int{{0, 1}, {1, 2}, {0, 2}}, nil
	case 3:
		// Tetrahedron faces
		return [][]int{{0, 1, 2}, {0, 1, 3}, {1, 2, 3}, {0, 2, 3}}, nil
	default:
		return nil, fmt.Errorf("unsupported topological dimension %d", tdim)
	}
}

// New builds a mesh from vertex coordinates and cell-to-vertex connectivity.
// Facets are enumerated once by canonical (sorted-vertex) signature, and the
// facet<->cell maps are derived during that pass.
func New(tdim, gdim int, vertices [][]float64, cells [][]int) (*Mesh, error) {
	if gdim < tdim {
		return nil, fmt.Errorf("embedding dimension %d smaller than topological dimension %d", gdim, tdim)
	}
	if gdim > 3 {
		return nil, fmt.Errorf("embedding dimension %d exceeds 3", gdim)
	}
	facetDefs, err := localFacets(tdim)
	if err != nil {
		return nil, err
	}

	m := &Mesh{
		Tdim:        tdim,
		Gdim:        gdim,
		NumVertices: len(vertices),
		NumCells:    len(cells),
	}

	// Pad coordinates to stride 3
	m.X = make([]float64, 3*len(vertices))
	for v, x := range vertices {
		if len(x) < gdim {
			return nil, fmt.Errorf("vertex %d has %d coordinates, expected %d", v, len(x), gdim)
		}
		copy(m.X[3*v:3*v+gdim], x[:gdim])
	}

	m.CellVerts = make([][]int, len(cells))
	m.CellFacets = make([][]int, len(cells))
	nvCell := tdim + 1
	for c, verts := range cells {
		if len(verts) != nvCell {
			return nil, fmt.Errorf("cell %d has %d vertices, expected %d", c, len(verts), nvCell)
		}
		for _, v := range verts {
			if v < 0 || v >= len(vertices) {
				return nil, fmt.Errorf("cell %d references vertex %d out of range", c, v)
			}
		}
		m.CellVerts[c] = verts
		m.CellFacets[c] = make([]int, len(facetDefs))
	}

	// Enumerate unique facets by canonical vertex signature
	facetIDs := make(map[string]int)
	for c, verts := range m.CellVerts {
		for lf, def := range facetDefs {
			fv := make([]int, len(def))
			for i, p := range def {
				fv[i] = verts[p]
			}
			sort.Ints(fv)
			key := facetKey(fv)
			f, ok := facetIDs[key]
			if !ok {
				f = m.NumFacets
				facetIDs[key] = f
				m.FacetVerts = append(m.FacetVerts, fv)
				m.FacetCells = append(m.FacetCells, nil)
				m.NumFacets++
			}
			m.FacetCells[f] = append(m.FacetCells[f], c)
			m.CellFacets[c][lf] = f
		}
	}

	for f, cs := range m.FacetCells {
		if len(cs) > 2 {
			return nil, fmt.Errorf("facet %d shared by %d cells, mesh is non-conforming", f, len(cs))
		}
	}

	return m, nil
}

func facetKey(verts []int) string {
	key := make([]byte, 0, 8*len(verts))
	for _, v := range verts {
		for s := 0; s < 32; s += 8 {
			key = append(key, byte(v>>s))
		}
	}
	return string(key)
}

// LocalFacetIndex returns the position of facet f within cell c's facet list,
// or -1 if f is not a facet of c.
func (m *Mesh) LocalFacetIndex(c, f int) int {
	for lf, ff := range m.CellFacets[c] {
		if ff == f {
			return lf
		}
	}
	return -1
}

// ExteriorFacets returns the facets incident to exactly one cell, ascending.
func (m *Mesh) ExteriorFacets() []int {
	var ext []int
	for f, cs := range m.FacetCells {
		if len(cs) == 1 {
			ext = append(ext, f)
		}
	}
	return ext
}

// FacetMidpoint returns the 3-padded midpoint of facet f.
func (m *Mesh) FacetMidpoint(f int) [3]float64 {
	var mid [3]float64
	verts := m.FacetVerts[f]
	for _, v := range verts {
		for d := 0; d < 3; d++ {
			mid[d] += m.X[3*v+d]
		}
	}
	inv := 1.0 / float64(len(verts))
	for d := 0; d < 3; d++ {
		mid[d] *= inv
	}
	return mid
}

// VertsPerCell returns the number of geometry vertices per cell.
func (m *Mesh) VertsPerCell() int {
	return m.Tdim + 1
}
