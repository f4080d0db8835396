package dsp

// Simple deblocking filter for 16-pixel block edges.
//
// All filter functions use a full-buffer + base-offset approach so that
// "negative-context" access (e.g. p[off-2*stride]) always resolves to a valid
// non-negative index within the buffer. The Go runtime bounds-checks every
// access, so out-of-window addressing panics instead of corrupting memory.

// simpleNeedsFilter reports whether the edge sample at off should be filtered.
// The three pairwise differences among the four samples nearest the boundary
// must each stay within thresh2.
func simpleNeedsFilter(p []byte, off, step, thresh2 int) bool {
	return absDiff(int(p[off-2*step]), int(p[off-step])) <= thresh2 &&
		absDiff(int(p[off-step]), int(p[off])) <= thresh2 &&
		absDiff(int(p[off]), int(p[off+step])) <= thresh2
}

// doSimpleFilter partially equalizes the step between the two boundary-adjacent
// samples p0 = p[off-step] and q0 = p[off]. The asymmetric (a+4)/(a+3) biases
// split the correction across the pair; the outer samples are left untouched.
func doSimpleFilter(p []byte, off, step int) {
	p0 := int(p[off-step])
	q0 := int(p[off])
	a := 3 * (q0 - p0)
	a1 := int(Ksclip2((a + 4) >> 3))
	a2 := int(Ksclip2((a + 3) >> 3))
	p[off-step] = Kclip1(p0 + a2)
	p[off] = Kclip1(q0 - a1)
}

// simpleVFilter16 filters a horizontal edge: 16 columns, each filtered along
// the vertical axis. off addresses the first pixel of the row just below the
// edge.
func simpleVFilter16(p []byte, off, stride, thresh int) {
	thresh2 := 2*thresh + 1
	for i := 0; i < 16; i++ {
		if simpleNeedsFilter(p, off+i, stride, thresh2) {
			doSimpleFilter(p, off+i, stride)
		}
	}
}

// simpleHFilter16 filters a vertical edge: 16 rows, each filtered along the
// horizontal axis. off addresses the first pixel of the column just right of
// the edge.
func simpleHFilter16(p []byte, off, stride, thresh int) {
	thresh2 := 2*thresh + 1
	for i := 0; i < 16; i++ {
		if simpleNeedsFilter(p, off+i*stride, 1, thresh2) {
			doSimpleFilter(p, off+i*stride, 1)
		}
	}
}

// simpleVFilter16i filters the three internal horizontal edges of a
// macroblock (rows 4, 8 and 12 below off).
func simpleVFilter16i(p []byte, off, stride, thresh int) {
	for k := 1; k <= 3; k++ {
		simpleVFilter16(p, off+k*4*stride, stride, thresh)
	}
}

// simpleHFilter16i filters the three internal vertical edges of a macroblock
// (columns 4, 8 and 12 right of off).
func simpleHFilter16i(p []byte, off, stride, thresh int) {
	for k := 1; k <= 3; k++ {
		simpleHFilter16(p, off+k*4, stride, thresh)
	}
}
