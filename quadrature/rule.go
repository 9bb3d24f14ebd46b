package quadrature

import "fmt"

// Rule is a fixed quadrature rule on a reference facet. Points holds one
// reference coordinate tuple per quadrature point.
type Rule struct {
	Points  [][]float64
	Weights []float64
}

// NumPoints returns the number of quadrature points.
func (r Rule) NumPoints() int {
	return len(r.Weights)
}

// FacetRule returns a quadrature rule on the reference facet of a simplex of
// topological dimension tdim, exact for polynomials of the requested degree:
// the interval [-1,1] for triangle meshes, the collapsed-coordinate
// reference triangle for tetrahedral meshes.
func FacetRule(tdim, degree int) (Rule, error) {
	if degree < 0 {
		return Rule{}, fmt.Errorf("negative quadrature degree %d", degree)
	}
	// N+1 Gauss points integrate degree 2N+1 exactly
	n := degree / 2

	switch tdim {
	case 2:
		x, w := GaussJacobi(0, 0, n)
		r := Rule{
			Points:  make([][]float64, len(x)),
			Weights: w,
		}
		for i, xi := range x {
			r.Points[i] = []float64{xi}
		}
		return r, nil

	case 3:
		// Duffy-collapsed tensor rule on the reference triangle
		// {(r,s): r,s >= -1, r+s <= 0}, Jacobi (1,0) absorbing the
		// collapse Jacobian in the second direction.
		xa, wa := GaussJacobi(0, 0, n)
		xb, wb := GaussJacobi(1, 0, n)
		np := len(xa) * len(xb)
		r := Rule{
			Points:  make([][]float64, 0, np),
			Weights: make([]float64, 0, np),
		}
		for i, a := range xa {
			for j, b := range xb {
				rr := 0.5*(1+a)*(1-b) - 1
				ss := b
				r.Points = append(r.Points, []float64{rr, ss})
				r.Weights = append(r.Weights, 0.5*wa[i]*wb[j])
			}
		}
		return r, nil

	default:
		return Rule{}, fmt.Errorf("unsupported topological dimension %d", tdim)
	}
}
