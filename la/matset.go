package la

import (
	"fmt"

	"github.com/james-bowman/sparse"
	"gonum.org/v1/gonum/mat"
)

// AddBlock returns an additive block setter over m for dof indices with
// block size bs: values[bs*i+a, bs*j+b] is accumulated into global entry
// (bs*rows[i]+a, bs*cols[j]+b). The setter tolerates repeated calls on
// overlapping index pairs; it always accumulates, never overwrites.
func AddBlock(m *sparse.CSR, bs int) func(rows, cols []int, values *mat.Dense) error {
	return func(rows, cols []int, values *mat.Dense) error {
		vr, vc := values.Dims()
		if vr != bs*len(rows) || vc != bs*len(cols) {
			return fmt.Errorf("value block is %dx%d, want %dx%d", vr, vc, bs*len(rows), bs*len(cols))
		}
		for i, r := range rows {
			for a := 0; a < bs; a++ {
				gr := bs*r + a
				for j, c := range cols {
					for b := 0; b < bs; b++ {
						v := values.At(bs*i+a, bs*j+b)
						if v == 0 {
							continue
						}
						gc := bs*c + b
						m.Set(gr, gc, m.At(gr, gc)+v)
					}
				}
			}
		}
		return nil
	}
}
