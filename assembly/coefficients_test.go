package assembly

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCoefficientsSizeConcrete(t *testing.T) {
	// 3 + 4*(4 + 12 + 2) + 6
	assert.Equal(t, 81, CoefficientsSize(4, 2, 3, 2, 2))
}

func TestCoefficientsSizeMonotonic(t *testing.T) {
	base := [5]int{4, 2, 3, 2, 2}
	size := func(p [5]int) int {
		return CoefficientsSize(p[0], p[1], p[2], p[3], p[4])
	}
	ref := size(base)
	for i := 0; i < 5; i++ {
		bumped := base
		bumped[i]++
		if got := size(bumped); got <= ref {
			t.Errorf("size not strictly increasing in parameter %d: %d -> %d", i, ref, got)
		}
	}
}

func TestContactCoefficientsSize(t *testing.T) {
	_, _, v, c := buildTwoBlockContact(t, 2, 2, 2)

	cm0 := [][]int{{0, 1}, {0}}
	cm1 := [][]int{{0}, {1}}
	assert.NoError(t, c.SetCorrespondence(0, cm0))
	assert.NoError(t, c.SetCorrespondence(1, cm1))

	// Facet 0 on side 0 links both opposite cells
	assert.Equal(t, 2, c.MaxLinks(0))
	assert.Equal(t, 1, c.MaxLinks(1))
	assert.Equal(t, 2, c.MaxLinksGlobal())

	want := CoefficientsSize(c.Rule.NumPoints(), 2, v.NdofsCell(), 2, 2)
	assert.Equal(t, want, c.CoefficientsSize())
}
