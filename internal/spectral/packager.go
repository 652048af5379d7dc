package spectral

import "math"

// Roll produces out[(y+dy) mod H][(x+dx) mod W] = buf[y][x], the
// cyclic shift spec §4.1.1 uses to move the DC coefficient to the
// center of the display image. Negative offsets wrap by adding the
// relevant dimension, matching sign-sensitive modular arithmetic.
// buf is read-only; out must be a distinct buffer of the same length
// as buf (the "scratch copy" the contract requires).
func Roll(buf []float64, w, h, dx, dy int, out []float64) {
	dx = ((dx % w) + w) % w
	dy = ((dy % h) + h) % h
	for y := 0; y < h; y++ {
		dstY := (y + dy) % h
		for x := 0; x < w; x++ {
			dstX := (x + dx) % w
			out[dstY*w+dstX] = buf[y*w+x]
		}
	}
}

// ForwardQuadrantSwap reconstructs a full W x H displayable plane
// from a half-spectrum src of size H x center (center = W/2+1),
// implementing spec §4.1.2:
//
//   - rows are rolled vertically by H/2 so the DC row lands in the
//     middle;
//   - the right half-plane (x in [W/2, W)) of dst comes directly from
//     src, shifted by W/2;
//   - the column at x = 0 is the half-spectrum's Nyquist column
//     (k = W/2), copied rather than mirrored;
//   - the rest of the left half-plane (x in [1, W/2)) is the
//     conjugate-symmetric mirror of the right half-plane (row y
//     mirrors row H-y, column x mirrors column W-x), so the column at
//     x = W/2-1 mirrors x = W/2+1 across x = W/2.
func ForwardQuadrantSwap(src []float64, w, h, center int, dst []float64) {
	half := h / 2
	// Roll src rows vertically by half, producing an intermediate
	// H x center buffer (rolling only the row dimension; columns are
	// untouched at this stage).
	rolled := make([]float64, h*center)
	Roll(src, center, h, 0, half, rolled)

	// Right half-plane: dst[y][W/2+k] = rolled[y][k], for k in
	// [0, W/2) — the non-Nyquist half-spectrum columns. Column x runs
	// W/2 .. W-1, i.e. frequency k = x-W/2 for k in [0, W/2).
	for y := 0; y < h; y++ {
		for k := 0; k < w/2; k++ {
			dst[y*w+w/2+k] = rolled[y*center+k]
		}
	}

	// x = 0 is the aliased Nyquist column (frequency -W/2 == +W/2):
	// it is real-valued and self-conjugate, so it is taken directly
	// from the half-spectrum's last column (k = center-1 = W/2)
	// rather than mirrored.
	for y := 0; y < h; y++ {
		dst[y*w+0] = rolled[y*center+center-1]
	}

	// The remaining left half-plane (x in [1, W/2)) is the
	// conjugate-symmetric mirror of the right half-plane: row y
	// mirrors row H-y, column x mirrors column W-x (spec's
	// "column x = W/2-1 mirrors across x = W/2" is the x = W/2-1
	// instance of this general rule).
	for y := 0; y < h; y++ {
		my := (h - y) % h
		for x := 1; x < w/2; x++ {
			mx := w - x
			dst[y*w+x] = dst[my*w+mx]
		}
	}
}

// InverseQuadrantSwap is the exact left-inverse of ForwardQuadrantSwap
// on half-spectrum support (spec §4.1.3): it extracts the half
// spectrum from the displayed plane, then rolls rows by -H/2.
func InverseQuadrantSwap(src []float64, w, h, center int, dst []float64) {
	half := h / 2
	extracted := make([]float64, h*center)
	for y := 0; y < h; y++ {
		for k := 0; k < w/2; k++ {
			extracted[y*center+k] = src[y*w+w/2+k]
		}
		extracted[y*center+center-1] = src[y*w+0]
	}
	Roll(extracted, center, h, 0, -half, dst)
}

// NegateLeftHalf implements spec §4.1.4: negate every sample in the
// left half (x in [0, W/2)) in place, compensating for the
// (-1)^(x+y) checkerboard equivalence between centered and corner DC
// origins as it applies to the phase component.
func NegateLeftHalf(buf []float64, w, h int) {
	for y := 0; y < h; y++ {
		for x := 0; x < w/2; x++ {
			buf[y*w+x] = -buf[y*w+x]
		}
	}
}

// EncodePhase implements spec §4.1.5's forward direction:
// p_out = p/(2*pi) + 0.5, clamped to [0, 1].
func EncodePhase(buf []float64) {
	for i, p := range buf {
		v := p/(2*math.Pi) + 0.5
		if v < 0 {
			v = 0
		} else if v > 1 {
			v = 1
		}
		buf[i] = v
	}
}

// DecodePhase implements spec §4.1.5's inverse direction:
// p_in = (p - 0.5) * 2*pi.
func DecodePhase(buf []float64) {
	for i, p := range buf {
		buf[i] = (p - 0.5) * 2 * math.Pi
	}
}
