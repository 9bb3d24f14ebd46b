package assembly

// CoefficientsSize returns the exact per-facet length of the packed
// coefficient buffer shared between the caller that populates it and the
// kernel that consumes it. The layout is a binding invariant, not an
// estimate: any mismatch between this value and the actual packing is
// undefined behavior, unchecked in the assembly hot loop.
//
// Layout: 3 scalars (gap sign, facet measure scale, search radius), then per
// quadrature point the physical point and outward normal (2*gdim), the test
// basis values against every potentially linked cell
// (dofsPerCell*blockSize*maxLinks) and the packed solution jump (blockSize),
// then the cell-local solution coefficients (dofsPerCell*blockSize).
func CoefficientsSize(numQuadPoints, gdim, dofsPerCell, blockSize, maxLinks int) int {
	return 3 +
		numQuadPoints*(2*gdim+dofsPerCell*blockSize*maxLinks+blockSize) +
		dofsPerCell*blockSize
}

// CoefficientsSize returns the per-facet coefficient buffer length for this
// pair, using the facet quadrature rule and the global maximum link count.
// maxLinks is taken across both surfaces so one buffer size serves either
// assembly direction, at the cost of wasted capacity on the surface with
// fewer links.
func (c *Contact) CoefficientsSize() int {
	return CoefficientsSize(
		c.Rule.NumPoints(),
		c.Space.Mesh.Gdim,
		c.Space.NdofsCell(),
		c.Space.DofMap.BlockSize,
		c.MaxLinksGlobal(),
	)
}
