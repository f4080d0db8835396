package dsp

// Inverse transforms for VP8-style block reconstruction.
// Constants and rounding match libwebp dec.c TransformOne_C bit-for-bit;
// decoder interoperability depends on this exact fixed-point formulation.

const (
	c1 = 20091 // cos(pi/8) * 2^16
	c2 = 35468 // sin(pi/8) * 2^16
)

// mul1 computes (a * C1 >> 16) + a, matching the MUL1 macro.
func mul1(a int) int {
	return ((a * c1) >> 16) + a
}

// mul2 computes a * C2 >> 16, matching the MUL2 macro.
func mul2(a int) int {
	return (a * c2) >> 16
}

// store clips (dst[off] + (x >> 3)) to [0,255] and writes it back.
func store(dst []byte, off, x int) {
	dst[off] = Clip8b(int(dst[off]) + (x >> 3))
}

// transformOne performs a single 4x4 inverse transform, adding the residual
// to the prediction already in dst. in holds 16 coefficients in raster order,
// dst is addressed with stride BPS.
func transformOne(in []int16, dst []byte) {
	// BCE hints: prove to compiler that all accesses are in-bounds.
	_ = in[15]
	_ = dst[3+3*BPS]

	var tmp [4 * 4]int

	// Vertical pass over the 4 columns.
	for i := 0; i < 4; i++ {
		a := int(in[i]) + int(in[8+i])
		b := int(in[i]) - int(in[8+i])
		cc := mul2(int(in[4+i])) - mul1(int(in[12+i]))
		d := mul1(int(in[4+i])) + mul2(int(in[12+i]))
		tmp[0+i] = a + d
		tmp[4+i] = b + cc
		tmp[8+i] = b - cc
		tmp[12+i] = a - d
	}

	// Horizontal pass over the 4 rows. The +4 bias rounds to nearest under
	// the final >>3 applied in store.
	for i := 0; i < 4; i++ {
		dc := tmp[4*i] + 4
		a := dc + tmp[4*i+2]
		b := dc - tmp[4*i+2]
		cc := mul2(tmp[4*i+1]) - mul1(tmp[4*i+3])
		d := mul1(tmp[4*i+1]) + mul2(tmp[4*i+3])
		row := i * BPS
		store(dst, row+0, a+d)
		store(dst, row+1, b+cc)
		store(dst, row+2, b-cc)
		store(dst, row+3, a-d)
	}
}

// transformTwo applies one or two 4x4 inverse transforms side by side. The
// second block reads coefficients in[16:32] and lands 4 columns to the right.
func transformTwo(in []int16, dst []byte, doTwo bool) {
	transformOne(in, dst)
	if doTwo {
		transformOne(in[16:], dst[4:])
	}
}

// transformDC applies a DC-only inverse transform (all AC coefficients zero).
// Numerically identical to transformOne with only in[0] non-zero.
func transformDC(in []int16, dst []byte) {
	dc := int(in[0]) + 4
	for j := 0; j < 4; j++ {
		for i := 0; i < 4; i++ {
			store(dst, j*BPS+i, dc)
		}
	}
}

// store2 writes one output row of the AC3 fast path: dc +/- the row's
// horizontal terms, in the fixed +d, +c, -c, -d column pattern.
func store2(dst []byte, y, dc, d, c int) {
	store(dst, y*BPS+0, dc+d)
	store(dst, y*BPS+1, dc+c)
	store(dst, y*BPS+2, dc-c)
	store(dst, y*BPS+3, dc-d)
}

// transformAC3 applies the inverse transform when only coefficients 0, 1 and 4
// are non-zero. Numerically identical to transformOne on the same sparse input.
func transformAC3(in []int16, dst []byte) {
	a := int(in[0]) + 4
	c4 := mul2(int(in[4]))
	d4 := mul1(int(in[4]))
	c1v := mul2(int(in[1]))
	d1v := mul1(int(in[1]))
	store2(dst, 0, a+d4, d1v, c1v)
	store2(dst, 1, a+c4, d1v, c1v)
	store2(dst, 2, a-c4, d1v, c1v)
	store2(dst, 3, a-d4, d1v, c1v)
}

// transformUV applies the inverse transform to all four chroma 4x4 blocks:
// U at dst offset 0, V at dst offset 4*BPS, coefficients at 32-slot spacing.
func transformUV(in []int16, dst []byte) {
	transformTwo(in[0:], dst[0:], true)
	transformTwo(in[32:], dst[4*BPS:], true)
}

// transformDCUV applies the DC-only transform to each chroma block whose DC
// coefficient is non-zero.
func transformDCUV(in []int16, dst []byte) {
	if in[0] != 0 {
		transformDC(in[0:], dst[0:])
	}
	if in[16] != 0 {
		transformDC(in[16:], dst[4:])
	}
	if in[32] != 0 {
		transformDC(in[32:], dst[4*BPS:])
	}
	if in[48] != 0 {
		transformDC(in[48:], dst[4*BPS+4:])
	}
}

// transformWHT performs the inverse Walsh-Hadamard transform on the 16 DC
// coefficients of a macroblock's luma sub-blocks. Output element k is written
// to out[16*k], landing in the DC slot of the k-th coefficient block; out must
// have at least 16*16 = 256 elements. Outputs stay signed coefficients, no
// clamping.
func transformWHT(in []int16, out []int16) {
	_ = in[15]
	_ = out[15*16]

	var tmp [16]int

	// Vertical pass: pure add/subtract butterflies, no multiplies.
	for i := 0; i < 4; i++ {
		a0 := int(in[0+i]) + int(in[12+i])
		a1 := int(in[4+i]) + int(in[8+i])
		a2 := int(in[4+i]) - int(in[8+i])
		a3 := int(in[0+i]) - int(in[12+i])
		tmp[0+i] = a0 + a1
		tmp[8+i] = a0 - a1
		tmp[4+i] = a3 + a2
		tmp[12+i] = a3 - a2
	}

	// Horizontal pass: each row feeds the DC slots of 4 coefficient blocks
	// (4 blocks * 16 coefficients each per row). The +3 bias rounds this
	// transform's different scale to nearest under the final >>3.
	for i := 0; i < 4; i++ {
		dc := tmp[4*i+0] + 3
		a0 := dc + tmp[4*i+3]
		a1 := tmp[4*i+1] + tmp[4*i+2]
		a2 := tmp[4*i+1] - tmp[4*i+2]
		a3 := dc - tmp[4*i+3]
		base := i * 4 * 16
		out[base+0*16] = int16((a0 + a1) >> 3)
		out[base+1*16] = int16((a3 + a2) >> 3)
		out[base+2*16] = int16((a0 - a1) >> 3)
		out[base+3*16] = int16((a3 - a2) >> 3)
	}
}
