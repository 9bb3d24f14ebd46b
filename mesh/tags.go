package mesh

// Tags marks a set of facets with integer values, one value per index.
// Indices keep the order they were supplied in; Find preserves that order so
// callers control the traversal order of tagged entities.
type Tags struct {
	Mesh    *Mesh
	Indices []int
	Values  []int
}

// NewTags pairs facet indices with tag values.
func NewTags(m *Mesh, indices, values []int) *Tags {
	return &Tags{Mesh: m, Indices: indices, Values: values}
}

// Find returns the facets tagged with value, in stored order.
func (t *Tags) Find(value int) []int {
	var out []int
	for i, v := range t.Values {
		if v == value {
			out = append(out, t.Indices[i])
		}
	}
	return out
}

// Append adds facets with a common tag value.
func (t *Tags) Append(value int, facets []int) {
	for _, f := range facets {
		t.Indices = append(t.Indices, f)
		t.Values = append(t.Values, value)
	}
}

// MarkBoundaryFacets tags every exterior facet whose midpoint satisfies
// inside with the given value, appending to tags.
func MarkBoundaryFacets(tags *Tags, value int, inside func(x [3]float64) bool) {
	m := tags.Mesh
	for _, f := range m.ExteriorFacets() {
		if inside(m.FacetMidpoint(f)) {
			tags.Indices = append(tags.Indices, f)
			tags.Values = append(tags.Values, value)
		}
	}
}
