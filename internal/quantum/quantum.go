// Package quantum holds the scalar conventions shared by the spectral
// transform and the spatial convolver: the [0,QuantumMax] sample range,
// the fixed-point round-and-clamp used on write-back, and the
// divide-by-zero guard used when renormalizing convolution kernels.
//
// Matches MagickCore's quantum conventions (magick/magick-type.h):
// QuantumRange, QuantumScale, and MagickEpsilon.
package quantum

// QuantumMax is the maximum representable sample value. This module
// targets the high-precision (float) quantum depth throughout, since
// the spectral core always promotes its output to >=32 bits per
// component (spec §4.4 "Output assembly"); fixed-point 8-bit hosts
// still address the same [0, QuantumMax] range, just with coarser
// granularity after Clamp rounds to the nearest representable value.
const QuantumMax = 65535.0

// Scale converts a raw sample in [0, QuantumMax] to a normalized
// quantum in [0, 1].
const Scale = 1.0 / QuantumMax

// Epsilon is the divide-by-zero guard used by the convolver's gamma
// renormalization (MagickEpsilon in MagickCore/magick-type.h).
const Epsilon = 1e-12

// Normalize scales a raw sample into [0, 1].
func Normalize(v float64) float64 {
	return v * Scale
}

// Denormalize scales a normalized quantum in [0,1] back to
// [0, QuantumMax], without clamping or rounding.
func Denormalize(v float64) float64 {
	return v * QuantumMax
}
