package spectral

import (
	"image"
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/deepteams/imagefx/internal/pixel"
)

// A constant image has a 2-D DFT that is a single nonzero DC
// coefficient; after quadrant-swap that coefficient lands at the
// geometric center of the output plane. This is the textbook "FFT of
// a flat field is a single bright point at the center" property, and
// gives an exact, hand-computable expectation for Forward.
func TestForward_ConstantImageIsCenteredPoint(t *testing.T) {
	const side = 8
	src := image.NewGray(image.Rect(0, 0, side, side))
	for i := range src.Pix {
		src.Pix[i] = 128
	}

	plan, err := NewPlan(side, pixel.Gray, true)
	require.NoError(t, err)
	mag := pixel.NewFloatImage(side, side, true, false, false)
	phase := pixel.NewFloatImage(side, side, true, false, false)

	require.NoError(t, Forward(plan, src, mag, phase))

	g := color.Gray{Y: 128}
	y16, _, _, _ := g.RGBA()
	want := float64(y16) // the DC magnitude, in raw quantum units

	cx, cy := side/2, side/2
	for y := 0; y < side; y++ {
		for x := 0; x < side; x++ {
			v := mag.FloatSample(pixel.Gray, x, y)
			if x == cx && y == cy {
				assert.InDelta(t, want, v, 1, "center magnitude")
				continue
			}
			assert.LessOrEqual(t, v, 1.0, "off-center magnitude at (%d,%d)", x, y)
		}
	}

	// Phase of a real positive DC term is 0, encoded to 0.5 of [0,1]
	// range, i.e. half of quantum range, uniformly across the image
	// (since every other frequency bin is exactly zero too).
	wantPhase := 32768.0
	for y := 0; y < side; y++ {
		for x := 0; x < side; x++ {
			v := phase.FloatSample(pixel.Gray, x, y)
			assert.InDelta(t, wantPhase, v, 1, "phase at (%d,%d)", x, y)
		}
	}
}
