// Package dsp provides the fixed-point inverse transforms and simple
// deblocking filters used to reconstruct VP8-style 4x4 and 16x16 blocks.
// This file contains the pre-computed clip lookup tables used by the simple
// loop filter. Negative-index access is emulated through fixed offsets into
// oversized arrays.
//
// The tables are filled once by package init and never written afterwards;
// all kernels are safe for concurrent use on disjoint buffers.
package dsp

// Table sizes accommodate the full range of intermediate values produced by
// the simple-filter arithmetic: the filter delta 3*(q0-p0) lies in
// [-765, 765], so (a+4)>>3 lies in [-96, 96].
var (
	sclip2 [112 + 112 + 1]int8  // clips [-112, 112] to [-16, 15]
	clip1  [255 + 511 + 1]uint8 // clips [-255, 511] to [0, 255]
)

// Offsets for indexing with negative values.
const (
	sclip2Offset = 112
	clip1Offset  = 255
)

// Ksclip2 returns the value of v clipped to [-16, 15].
func Ksclip2(v int) int8 { return sclip2[sclip2Offset+v] }

// Kclip1 returns the value of v clipped to [0, 255].
func Kclip1(v int) uint8 { return clip1[clip1Offset+v] }

// Clip8b clips v to the range [0, 255].
// Uses unsigned comparison for single-branch hot path when v is in [0, 255].
func Clip8b(v int) uint8 {
	if uint(v) <= 255 {
		return uint8(v)
	}
	// Out of range: clamp to 0 or 255.
	// Arithmetic right shift: v>>63 is 0 for positive, -1 for negative.
	return uint8(^(v >> 63) & 255)
}

// absDiff returns |a - b|. Used only in filter-gate comparisons.
func absDiff(a, b int) int {
	if a > b {
		return a - b
	}
	return b - a
}

// initClipTables fills the lookup tables at package initialisation.
func initClipTables() {
	// sclip2: clips to [-16, 15]
	for i := -112; i <= 112; i++ {
		v := i
		if v < -16 {
			v = -16
		} else if v > 15 {
			v = 15
		}
		sclip2[sclip2Offset+i] = int8(v)
	}

	// clip1: clips to [0, 255]
	for i := -255; i <= 511; i++ {
		v := i
		if v < 0 {
			v = 0
		} else if v > 255 {
			v = 255
		}
		clip1[clip1Offset+i] = uint8(v)
	}
}
