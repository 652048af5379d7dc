package spectral

import (
	"fmt"
	"image"
	"math"

	"github.com/deepteams/imagefx/internal/bufpool"
	"github.com/deepteams/imagefx/internal/pixel"
	"github.com/deepteams/imagefx/internal/quantum"
)

// Inverse drives a single color channel of mag/phase through the
// inverse transform (spec §4.3), writing the reconstructed samples
// into dst's selected channel. Only cells within dstW x dstH (the
// destination image's original, pre-padding extent) are written.
func Inverse(plan Plan, mag, phase image.Image, dst *pixel.FloatImage, dstW, dstH int) error {
	w, h, center := plan.Width, plan.Height, plan.Center

	// 1. Read the selected channel from each source image into two
	// height x width real buffers, scaled into [0,1].
	bufA := bufpool.GetFloat64(w * h) // magnitude or real
	defer bufpool.PutFloat64(bufA)
	bufB := bufpool.GetFloat64(w * h) // phase or imaginary
	defer bufpool.PutFloat64(bufB)

	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			bufA[y*w+x] = pixel.Sample(mag, plan.Channel, x, y)
			bufB[y*w+x] = pixel.Sample(phase, plan.Channel, x, y)
		}
	}

	// 2. If modulus, decode phase then undo the LHS sign correction.
	if plan.Modulus {
		DecodePhase(bufB)
	}
	NegateLeftHalf(bufB, w, h)

	// 3. Inverse quadrant swap both buffers into half-spectrum
	// support.
	halfA := bufpool.GetFloat64(h * center)
	defer bufpool.PutFloat64(halfA)
	halfB := bufpool.GetFloat64(h * center)
	defer bufpool.PutFloat64(halfB)

	InverseQuadrantSwap(bufA, w, h, center, halfA)
	InverseQuadrantSwap(bufB, w, h, center, halfB)

	// 4. Recompose complex.
	freq := bufpool.GetComplex128(h * center)
	defer bufpool.PutComplex128(freq)
	if plan.Modulus {
		for i := range freq {
			sinP, cosP := math.Sincos(halfB[i])
			freq[i] = complex(halfA[i]*cosP, halfA[i]*sinP)
		}
	} else {
		for i := range freq {
			freq[i] = complex(halfA[i], halfB[i])
		}
	}

	// 5. Invoke the complex-to-real FFT.
	spatial := bufpool.GetFloat64(w * h)
	defer bufpool.PutFloat64(spatial)
	if err := inverseFFT2D(freq, w, h, center, spatial); err != nil {
		return fmt.Errorf("imagefx: spectral: inverse fft channel %s: %w", plan.Channel, err)
	}

	// 6. Write, clamped, restricted to the destination's original
	// extent.
	for y := 0; y < dstH && y < h; y++ {
		for x := 0; x < dstW && x < w; x++ {
			dst.SetSample(plan.Channel, x, y, quantum.Clamp(quantum.Denormalize(spatial[y*w+x])))
		}
	}
	return nil
}
