package assembly

import (
	"testing"

	"github.com/notargets/mortar/la"
	"github.com/stretchr/testify/assert"
	"gonum.org/v1/gonum/mat"
)

// coordKernel fills the active blocks with values derived from the cell
// geometry only, so a facet's contribution is independent of the order in
// which facets are processed.
func coordKernel(gdim int) MatKernelFunc {
	return func(blocks []*mat.Dense, coeffs, constants, coords []float64,
		localFacet int, orientation uint8, numLinked int) {

		v := 0.0
		for j := 0; j < len(coords)/3; j++ {
			for d := 0; d < gdim; d++ {
				v += float64(d+1) * coords[3*j+d]
			}
		}
		fill := func(b *mat.Dense, val float64) {
			r, c := b.Dims()
			for i := 0; i < r; i++ {
				for j := 0; j < c; j++ {
					b.Set(i, j, val)
				}
			}
		}
		fill(blocks[0], v)
		for j := 0; j < numLinked; j++ {
			fill(blocks[3*j+1], v+1)
			fill(blocks[3*j+2], v+2)
			fill(blocks[3*j+3], v+3)
		}
	}
}

type matSetCall struct {
	rows, cols []int
}

// recordingMatSet counts scatter calls while forwarding to an optional sink.
func recordingMatSet(calls *[]matSetCall, sink MatSetFunc) MatSetFunc {
	return func(rows, cols []int, values *mat.Dense) error {
		r := append([]int(nil), rows...)
		c := append([]int(nil), cols...)
		*calls = append(*calls, matSetCall{rows: r, cols: c})
		if sink != nil {
			return sink(rows, cols, values)
		}
		return nil
	}
}

func TestAssembleMatrixNoLinks(t *testing.T) {
	_, _, v, c := buildTwoBlockContact(t, 3, 2, 1)
	assert.NoError(t, c.SetCorrespondence(0, [][]int{nil, nil, nil}))
	assert.NoError(t, c.SetCorrespondence(1, [][]int{{0}, {1}}))

	var calls []matSetCall
	kernelRuns := 0
	kernel := func(blocks []*mat.Dense, coeffs, constants, coords []float64,
		localFacet int, orientation uint8, numLinked int) {
		kernelRuns++
		assert.Equal(t, 0, numLinked)
		assert.Equal(t, NeutralOrientation, orientation)
		blocks[0].Set(0, 0, 1)
	}

	err := c.AssembleMatrix(recordingMatSet(&calls, nil), 0, kernel, nil, 0, nil)
	assert.NoError(t, err)

	rest := c.Restriction(0)
	assert.Equal(t, rest.NumFacets(), kernelRuns)
	// Only the self block is scattered, no cross terms
	assert.Len(t, calls, rest.NumFacets())
	dm := v.DofMap
	for i, call := range calls {
		want := dm.CellDofs(rest.Pairs[i].Cell)
		assert.Equal(t, want, call.rows)
		assert.Equal(t, want, call.cols)
	}
}

func TestAssembleMatrixBlockZeroing(t *testing.T) {
	_, _, _, c := buildTwoBlockContact(t, 2, 2, 1)
	assert.NoError(t, c.SetCorrespondence(0, [][]int{{0}, {1}}))
	assert.NoError(t, c.SetCorrespondence(1, [][]int{{0}, {1}}))

	// A kernel that accumulates into its blocks would leak state across
	// facets if the assembler did not zero the active range.
	kernel := func(blocks []*mat.Dense, coeffs, constants, coords []float64,
		localFacet int, orientation uint8, numLinked int) {
		for b := 0; b <= 3*numLinked; b++ {
			blocks[b].Set(0, 0, blocks[b].At(0, 0)+1)
		}
	}

	var calls []matSetCall
	values := []float64{}
	sink := func(rows, cols []int, v *mat.Dense) error {
		values = append(values, v.At(0, 0))
		return nil
	}
	err := c.AssembleMatrix(recordingMatSet(&calls, sink), 0, kernel, nil, 0, nil)
	assert.NoError(t, err)

	for i, got := range values {
		assert.Equal(t, 1.0, got, "call %d saw accumulated stale data", i)
	}
}

func TestAssembleMatrixSharedParent(t *testing.T) {
	c, topCell := sharedParentContact(t, false)
	v := c.Space
	m := v.Mesh

	var calls []matSetCall
	a, err := c.CreateMatrix(Form{Space: v})
	if err != nil {
		t.Fatalf("CreateMatrix failed: %v", err)
	}
	matSet := recordingMatSet(&calls, la.AddBlock(a, 1))

	err = c.AssembleMatrix(matSet, 0, coordKernel(m.Gdim), nil, 0, nil)
	assert.NoError(t, err)

	// Exactly 4 populated blocks per facet: self, self x P, P x self, P x P
	rest := c.Restriction(0)
	assert.Len(t, calls, 4*rest.NumFacets())
	topDofs := v.DofMap.CellDofs(topCell)
	for i := range rest.Pairs {
		cellDofs := v.DofMap.CellDofs(rest.Pairs[i].Cell)
		group := calls[4*i : 4*i+4]
		assert.Equal(t, cellDofs, group[0].rows)
		assert.Equal(t, cellDofs, group[0].cols)
		assert.Equal(t, cellDofs, group[1].rows)
		assert.Equal(t, topDofs, group[1].cols)
		assert.Equal(t, topDofs, group[2].rows)
		assert.Equal(t, cellDofs, group[2].cols)
		assert.Equal(t, topDofs, group[3].rows)
		assert.Equal(t, topDofs, group[3].cols)
	}
}

func TestAssembleMatrixOrderInvariance(t *testing.T) {
	assembleCSR := func(reversed bool) mat.Matrix {
		c, _ := sharedParentContact(t, reversed)
		a, err := c.CreateMatrix(Form{Space: c.Space})
		if err != nil {
			t.Fatalf("CreateMatrix failed: %v", err)
		}
		err = c.AssembleMatrix(la.AddBlock(a, 1), 0, coordKernel(c.Space.Mesh.Gdim), nil, 0, nil)
		assert.NoError(t, err)
		return a
	}

	forward := assembleCSR(false)
	backward := assembleCSR(true)
	assert.True(t, mat.Equal(forward, backward),
		"accumulated matrix depends on facet processing order")
}
