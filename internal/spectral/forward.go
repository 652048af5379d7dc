package spectral

import (
	"fmt"
	"image"
	"math/cmplx"

	"github.com/deepteams/imagefx/internal/bufpool"
	"github.com/deepteams/imagefx/internal/pixel"
	"github.com/deepteams/imagefx/internal/quantum"
)

// Forward drives a single color channel of src through the forward
// transform (spec §4.2), writing the packaged magnitude/real and
// phase/imaginary planes into mag and phase at plan.Channel.
func Forward(plan Plan, src image.Image, mag, phase *pixel.FloatImage) error {
	w, h, center := plan.Width, plan.Height, plan.Center

	spatial := bufpool.GetFloat64(w * h)
	defer bufpool.PutFloat64(spatial)

	// 1. Read channel: extract, normalize into [0,1], zero-pad cells
	// beyond the source image's own extent.
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			spatial[y*w+x] = pixel.Sample(src, plan.Channel, x, y)
		}
	}

	freq := bufpool.GetComplex128(h * center)
	defer bufpool.PutComplex128(freq)

	// 2. Transform.
	if err := forwardFFT2D(spatial, w, h, center, freq); err != nil {
		return fmt.Errorf("imagefx: spectral: forward fft channel %s: %w", plan.Channel, err)
	}

	// 3. Normalize: divide every complex sample by width^2, the
	// convention that makes the round trip an identity paired with
	// the inverse's unnormalized complex-to-real FFT.
	scale := complex(1.0/float64(w*w), 0)
	for i := range freq {
		freq[i] *= scale
	}

	// 4. Decompose.
	bufA := bufpool.GetFloat64(h * center) // magnitude or real
	defer bufpool.PutFloat64(bufA)
	bufB := bufpool.GetFloat64(h * center) // phase or imaginary
	defer bufpool.PutFloat64(bufB)

	if plan.Modulus {
		for i, z := range freq {
			bufA[i] = cmplx.Abs(z)
			bufB[i] = cmplx.Phase(z)
		}
	} else {
		for i, z := range freq {
			bufA[i] = real(z)
			bufB[i] = imag(z)
		}
	}

	// 5. Package: quadrant-swap both buffers, then apply the phase
	// LHS sign correction and (in modulus mode) the phase rescale.
	imgA := bufpool.GetFloat64(w * h)
	defer bufpool.PutFloat64(imgA)
	imgB := bufpool.GetFloat64(w * h)
	defer bufpool.PutFloat64(imgB)

	ForwardQuadrantSwap(bufA, w, h, center, imgA)
	ForwardQuadrantSwap(bufB, w, h, center, imgB)
	NegateLeftHalf(imgB, w, h)
	if plan.Modulus {
		EncodePhase(imgB)
	}

	// 6. Write: scale by QuantumMax and clamp.
	writePlane(mag, plan.Channel, imgA, w, h)
	writePlane(phase, plan.Channel, imgB, w, h)
	return nil
}

// writePlane scales a normalized [0,1]-ish real plane (magnitude,
// phase, real or imaginary part) into quantum range and writes it
// into dst's selected channel, clamping per spec §4.2 step 6.
func writePlane(dst *pixel.FloatImage, ch pixel.ChannelSelector, buf []float64, w, h int) {
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			dst.SetSample(ch, x, y, quantum.Clamp(quantum.Denormalize(buf[y*w+x])))
		}
	}
}
