package dsp

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// filterTestStride leaves two rows of context above the filtered edge and
// plenty of slack below.
const filterTestStride = 32

// makeEdgeBuf builds a buffer holding an 8-row band around a horizontal edge
// at row 4: rows 0-3 get value above, rows 4-7 get value below.
func makeEdgeBuf(above, below byte) ([]byte, int) {
	buf := make([]byte, 8*filterTestStride)
	for y := 0; y < 8; y++ {
		v := above
		if y >= 4 {
			v = below
		}
		for x := 0; x < filterTestStride; x++ {
			buf[y*filterTestStride+x] = v
		}
	}
	return buf, 4 * filterTestStride
}

func TestSimpleFilterGateBlocks(t *testing.T) {
	// Step of 30 across the boundary, thresh2 = 2*4+1 = 9: the middle
	// difference fails the gate, so every pixel must survive untouched.
	buf, off := makeEdgeBuf(100, 130)
	want := copyBuf(buf)
	simpleVFilter16(buf, off, filterTestStride, 4)
	assert.Equal(t, want, buf)
}

func TestSimpleFilterAppliesKnownStep(t *testing.T) {
	// p1=98 p0=100 | q0=108 q1=110, thresh=4 -> thresh2=9. Differences are
	// 2, 8, 2, all within the gate. a = 3*(108-100) = 24,
	// a1 = sclip2[(24+4)>>3] = 3, a2 = sclip2[(24+3)>>3] = 3,
	// so p0 -> 103 and q0 -> 105; p1 and q1 stay as they were.
	buf, off := makeEdgeBuf(100, 108)
	for x := 0; x < filterTestStride; x++ {
		buf[2*filterTestStride+x] = 98  // p1 row
		buf[5*filterTestStride+x] = 110 // q1 row
	}
	simpleVFilter16(buf, off, filterTestStride, 4)

	for x := 0; x < 16; x++ {
		require.EqualValues(t, 98, buf[2*filterTestStride+x], "p1 col %d", x)
		require.EqualValues(t, 103, buf[3*filterTestStride+x], "p0 col %d", x)
		require.EqualValues(t, 105, buf[4*filterTestStride+x], "q0 col %d", x)
		require.EqualValues(t, 110, buf[5*filterTestStride+x], "q1 col %d", x)
	}
	// Columns 16+ are outside the edge.
	for x := 16; x < filterTestStride; x++ {
		require.EqualValues(t, 100, buf[3*filterTestStride+x], "col %d", x)
		require.EqualValues(t, 108, buf[4*filterTestStride+x], "col %d", x)
	}
}

func TestSimpleFilterExtremeStep(t *testing.T) {
	// Full-range step 0|255 with a permissive threshold exercises the sclip2
	// saturation: a = 765, both deltas clamp to 15.
	buf, off := makeEdgeBuf(0, 255)
	simpleVFilter16(buf, off, filterTestStride, 127)
	for x := 0; x < 16; x++ {
		require.EqualValues(t, 15, buf[3*filterTestStride+x], "p0 col %d", x)
		require.EqualValues(t, 240, buf[4*filterTestStride+x], "q0 col %d", x)
	}
}

// The vertical and horizontal variants must agree under transposition.
func TestSimpleFilterAxisTransposition(t *testing.T) {
	const n = 32
	rng := rand.New(rand.NewSource(46))
	for iter := 0; iter < 100; iter++ {
		src := makeRandBuf(rng, n*n)

		vbuf := copyBuf(src)
		simpleVFilter16(vbuf, 8*n+4, n, 10)

		// Transpose, filter the mirrored vertical edge horizontally.
		hbuf := make([]byte, n*n)
		for y := 0; y < n; y++ {
			for x := 0; x < n; x++ {
				hbuf[x*n+y] = src[y*n+x]
			}
		}
		simpleHFilter16(hbuf, 4*n+8, n, 10)

		for y := 0; y < n; y++ {
			for x := 0; x < n; x++ {
				if vbuf[y*n+x] != hbuf[x*n+y] {
					t.Fatalf("iter %d: (%d,%d) vertical=%d transposed horizontal=%d",
						iter, x, y, vbuf[y*n+x], hbuf[x*n+y])
				}
			}
		}
	}
}

// The i variants are exactly three edge filters at the internal sub-block
// boundaries.
func TestSimpleFilter16iMatchesManualEdges(t *testing.T) {
	const n = 32
	rng := rand.New(rand.NewSource(47))
	for iter := 0; iter < 100; iter++ {
		src := makeRandBuf(rng, n*n)
		off := 2 * n // leave context above the macroblock origin

		got := copyBuf(src)
		simpleVFilter16i(got, off, n, 6)
		want := copyBuf(src)
		for k := 1; k <= 3; k++ {
			simpleVFilter16(want, off+k*4*n, n, 6)
		}
		require.Equal(t, want, got, "iter %d vertical", iter)

		got = copyBuf(src)
		simpleHFilter16i(got, 2, n, 6)
		want = copyBuf(src)
		for k := 1; k <= 3; k++ {
			simpleHFilter16(want, 2+k*4, n, 6)
		}
		require.Equal(t, want, got, "iter %d horizontal", iter)
	}
}

func TestSimpleFilterIdentityOnFlat(t *testing.T) {
	// A flat area passes the gate but has zero step, so the filter is the
	// identity: a = 0, both deltas are sclip2[0] = 0.
	buf, off := makeEdgeBuf(128, 128)
	want := copyBuf(buf)
	simpleVFilter16(buf, off, filterTestStride, 63)
	assert.Equal(t, want, buf)
}
