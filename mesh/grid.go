package mesh

import (
	"fmt"
	"math"
)

// Tag values used by TwoBlockGrid for the opposing contact surfaces.
const (
	BottomContactTag = 1 // Top edge of the lower block
	TopContactTag    = 2 // Bottom edge of the upper block
)

// rectGrid appends a structured triangle grid covering
// [x0,x0+w] x [y0,y0+h] with nx*ny quads split into triangles.
func rectGrid(vertices [][]float64, cells [][]int, x0, y0, w, h float64, nx, ny int) ([][]float64, [][]int) {
	base := len(vertices)
	for j := 0; j <= ny; j++ {
		for i := 0; i <= nx; i++ {
			x := x0 + w*float64(i)/float64(nx)
			y := y0 + h*float64(j)/float64(ny)
			vertices = append(vertices, []float64{x, y})
		}
	}
	vid := func(i, j int) int { return base + j*(nx+1) + i }
	for j := 0; j < ny; j++ {
		for i := 0; i < nx; i++ {
			v00, v10 := vid(i, j), vid(i+1, j)
			v01, v11 := vid(i, j+1), vid(i+1, j+1)
			cells = append(cells, []int{v00, v10, v11})
			cells = append(cells, []int{v00, v11, v01})
		}
	}
	return vertices, cells
}

// UnitSquare builds an nx x ny triangle grid on [0,1]^2.
func UnitSquare(nx, ny int) (*Mesh, error) {
	if nx < 1 || ny < 1 {
		return nil, fmt.Errorf("invalid grid dimensions %dx%d", nx, ny)
	}
	vertices, cells := rectGrid(nil, nil, 0, 0, 1, 1, nx, ny)
	return New(2, 2, vertices, cells)
}

// TwoBlockGrid builds two vertically stacked triangle blocks of unit height
// separated by gap, with independent (possibly non-matching) horizontal
// resolutions. The facing surfaces are tagged BottomContactTag and
// TopContactTag. The blocks share no vertices; the only coupling between
// them is whatever contact correspondence the caller supplies.
func TwoBlockGrid(nxBot, nyBot, nxTop, nyTop int, gap float64) (*Mesh, *Tags, error) {
	if nxBot < 1 || nyBot < 1 || nxTop < 1 || nyTop < 1 {
		return nil, nil, fmt.Errorf("invalid block dimensions %dx%d / %dx%d", nxBot, nyBot, nxTop, nyTop)
	}
	// A strictly positive gap keeps the two contact surfaces at distinct
	// heights, so midpoint marking cannot confuse them.
	if gap <= 0 {
		return nil, nil, fmt.Errorf("gap must be positive, got %g", gap)
	}

	vertices, cells := rectGrid(nil, nil, 0, 0, 1, 1, nxBot, nyBot)
	vertices, cells = rectGrid(vertices, cells, 0, 1+gap, 1, 1, nxTop, nyTop)

	m, err := New(2, 2, vertices, cells)
	if err != nil {
		return nil, nil, err
	}

	tags := NewTags(m, nil, nil)
	const tol = 1e-12
	MarkBoundaryFacets(tags, BottomContactTag, func(x [3]float64) bool {
		return math.Abs(x[1]-1) < tol
	})
	MarkBoundaryFacets(tags, TopContactTag, func(x [3]float64) bool {
		return math.Abs(x[1]-(1+gap)) < tol
	})
	return m, tags, nil
}
