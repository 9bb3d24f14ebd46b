package surface

import "sort"

// CorrespondenceMap holds, per boundary facet of one surface, the candidate
// facet indices on the opposite surface's restriction. It is produced by an
// external contact search and may change between assembly calls; an empty
// candidate list means the facet currently has no contact correspondence.
type CorrespondenceMap [][]int

// Links returns the candidate opposite facets for facet i.
func (cm CorrespondenceMap) Links(i int) []int {
	return cm[i]
}

// ResolveLinkedCells maps candidate opposite-surface facets to the
// deduplicated, ascending set of opposite parent-mesh cells. Several
// candidates owned by the same parent cell collapse to one entry since
// downstream buffers are indexed per distinct linked cell. The result is
// appended into dst[:0] so callers can reuse one buffer across facets.
func ResolveLinkedCells(dst []int, candidates []int, opposite *Restriction) []int {
	dst = dst[:0]
	for _, f := range candidates {
		pair := opposite.FacetPair(f)
		dst = append(dst, opposite.ParentCell(pair.Cell))
	}
	return SortedUnique(dst)
}

// SortedUnique sorts v ascending and compacts consecutive duplicates in
// place, returning the shortened slice.
func SortedUnique(v []int) []int {
	if len(v) < 2 {
		return v
	}
	sort.Ints(v)
	n := 1
	for i := 1; i < len(v); i++ {
		if v[i] != v[n-1] {
			v[n] = v[i]
			n++
		}
	}
	return v[:n]
}
