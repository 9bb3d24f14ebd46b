// Package la provides the sparsity-pattern and sparse-matrix layer backing
// the contact assemblers, built on github.com/james-bowman/sparse.
package la

import (
	"fmt"
	"sort"

	"github.com/james-bowman/sparse"
)

// Pattern is the set of (row, col) index pairs for which a sparse matrix
// reserves storage. Insertion is batched block-wise; the pattern must be
// finalized with Assemble before a matrix can be created from it.
type Pattern struct {
	nrows, ncols int
	rows         []map[int]struct{}
	finalized    bool
	indptr       []int
	indices      []int
}

// NewPattern creates an empty pattern with the given dof index dimensions.
func NewPattern(nrows, ncols int) *Pattern {
	return &Pattern{
		nrows: nrows,
		ncols: ncols,
		rows:  make([]map[int]struct{}, nrows),
	}
}

// Dims returns the pattern dimensions in dof index space.
func (p *Pattern) Dims() (int, int) {
	return p.nrows, p.ncols
}

// Insert reserves storage for the dense block rows x cols.
func (p *Pattern) Insert(rows, cols []int) {
	if p.finalized {
		panic("la: insert into finalized pattern")
	}
	for _, r := range rows {
		set := p.rows[r]
		if set == nil {
			set = make(map[int]struct{}, len(cols))
			p.rows[r] = set
		}
		for _, c := range cols {
			set[c] = struct{}{}
		}
	}
}

// Assemble finalizes the pattern into compressed row form. Further Insert
// calls panic. Assembling twice is a no-op.
func (p *Pattern) Assemble() {
	if p.finalized {
		return
	}
	p.indptr = make([]int, p.nrows+1)
	nnz := 0
	for _, set := range p.rows {
		nnz += len(set)
	}
	p.indices = make([]int, 0, nnz)
	for r, set := range p.rows {
		p.indptr[r] = len(p.indices)
		cols := make([]int, 0, len(set))
		for c := range set {
			cols = append(cols, c)
		}
		sort.Ints(cols)
		p.indices = append(p.indices, cols...)
	}
	p.indptr[p.nrows] = len(p.indices)
	p.rows = nil
	p.finalized = true
}

// NNZ returns the number of reserved entries. Valid after Assemble.
func (p *Pattern) NNZ() int {
	return len(p.indices)
}

// Has reports whether the finalized pattern reserves entry (row, col).
func (p *Pattern) Has(row, col int) bool {
	if !p.finalized {
		panic("la: Has on unfinalized pattern")
	}
	lo, hi := p.indptr[row], p.indptr[row+1]
	cols := p.indices[lo:hi]
	i := sort.SearchInts(cols, col)
	return i < len(cols) && cols[i] == col
}

// Matrix creates a CSR matrix with storage reserved for every pattern entry,
// expanded by block size bs: pattern entry (i, j) reserves the dense bs x bs
// block at (bs*i, bs*j). All reserved values start at zero.
func (p *Pattern) Matrix(bs int) (*sparse.CSR, error) {
	if !p.finalized {
		return nil, fmt.Errorf("pattern must be assembled before matrix creation")
	}
	if bs < 1 {
		return nil, fmt.Errorf("block size %d must be at least 1", bs)
	}
	nr, nc := bs*p.nrows, bs*p.ncols
	ia := make([]int, nr+1)
	ja := make([]int, 0, bs*bs*p.NNZ())
	for i := 0; i < p.nrows; i++ {
		cols := p.indices[p.indptr[i]:p.indptr[i+1]]
		for a := 0; a < bs; a++ {
			ia[bs*i+a] = len(ja)
			for _, j := range cols {
				for b := 0; b < bs; b++ {
					ja = append(ja, bs*j+b)
				}
			}
		}
	}
	ia[nr] = len(ja)
	data := make([]float64, len(ja))
	return sparse.NewCSR(nr, nc, ia, ja, data), nil
}
