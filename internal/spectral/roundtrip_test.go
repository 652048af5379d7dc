package spectral

import (
	"image"
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/deepteams/imagefx/internal/pixel"
)

// Forward followed by Inverse on the same channel must reconstruct
// the original samples: this is the property spec §4 calls the round
// trip law, and it is the test that would have caught a regression in
// how pixel.Sample normalizes FloatImage-backed sources (mag/phase are
// themselves *pixel.FloatImage on the inverse path).
func TestForwardInverse_RoundTrip(t *testing.T) {
	const side = 8
	src := image.NewGray(image.Rect(0, 0, side, side))
	for y := 0; y < side; y++ {
		for x := 0; x < side; x++ {
			src.SetGray(x, y, color.Gray{Y: uint8((x*37 + y*59) % 256)})
		}
	}

	plan, err := NewPlan(side, pixel.Gray, true)
	require.NoError(t, err)
	mag := pixel.NewFloatImage(side, side, true, false, false)
	phase := pixel.NewFloatImage(side, side, true, false, false)
	require.NoError(t, Forward(plan, src, mag, phase))

	dst := pixel.NewFloatImage(side, side, true, false, false)
	require.NoError(t, Inverse(plan, mag, phase, dst, side, side))

	for y := 0; y < side; y++ {
		for x := 0; x < side; x++ {
			want := pixel.Sample(src, pixel.Gray, x, y) * 65535.0
			got := dst.FloatSample(pixel.Gray, x, y)
			assert.InDelta(t, want, got, 2, "round trip mismatch at (%d,%d)", x, y)
		}
	}
}
