package dsp

// BPS is the stride, in bytes, of the reconstruction buffer rows. All pixel
// addressing in the transform kernels assumes this value.
// Matches the value in libwebp common_dec.h.
const BPS = 32

// Kernels bundles one implementation set of the reconstruction kernels. The
// host selects a set once during single-threaded startup (typically via
// Native) and calls through it for the whole decode; there is no global
// mutable dispatch table, so concurrent decodes can even hold different sets.
//
// Transform destinations are byte slices addressed at stride BPS; filter
// buffers carry their own stride. Coefficient inputs need at least 16
// elements, or 32 for Transform with doTwo, or 64 for the UV variants.
type Kernels struct {
	// Transform applies the inverse transform to one 4x4 block, or to two
	// side-by-side blocks when doTwo is set (coefficients in[16:32], pixels 4
	// columns right).
	Transform func(in []int16, dst []byte, doTwo bool)

	// TransformAC3 is the fast path for blocks whose only non-zero
	// coefficients are at indices 0, 1 and 4.
	TransformAC3 func(in []int16, dst []byte)

	// TransformDC is the fast path for blocks with only a DC coefficient.
	TransformDC func(in []int16, dst []byte)

	// TransformUV and TransformDCUV cover the four chroma 4x4 blocks of a
	// macroblock in one call.
	TransformUV   func(in []int16, dst []byte)
	TransformDCUV func(in []int16, dst []byte)

	// TransformWHT spreads the inverse Walsh-Hadamard transform of 16 luma DC
	// coefficients into out at stride 16.
	TransformWHT func(in, out []int16)

	// Simple loop filters over 16-pixel edges. off is the base offset of the
	// edge within p; the i variants handle the three internal sub-block edges
	// of a macroblock.
	SimpleVFilter16  func(p []byte, off, stride, thresh int)
	SimpleHFilter16  func(p []byte, off, stride, thresh int)
	SimpleVFilter16i func(p []byte, off, stride, thresh int)
	SimpleHFilter16i func(p []byte, off, stride, thresh int)
}

// Scalar returns the portable pure-Go reference implementation set.
func Scalar() *Kernels {
	return &Kernels{
		Transform:        transformTwo,
		TransformAC3:     transformAC3,
		TransformDC:      transformDC,
		TransformUV:      transformUV,
		TransformDCUV:    transformDCUV,
		TransformWHT:     transformWHT,
		SimpleVFilter16:  simpleVFilter16,
		SimpleHFilter16:  simpleHFilter16,
		SimpleVFilter16i: simpleVFilter16i,
		SimpleHFilter16i: simpleHFilter16i,
	}
}

// Native returns the fastest implementation set available on the running CPU.
// An acceleration backend overrides individual slots after probing CPU
// features; with none compiled in, every platform gets the scalar set.
// Callers must not mutate the returned set after decode work has started.
func Native() *Kernels {
	return Scalar()
}

func init() {
	initClipTables()
}
