package convolve

import (
	"image"
	"image/color"
	"testing"

	"github.com/deepteams/imagefx/internal/kernel"
	"github.com/deepteams/imagefx/internal/pixel"
)

func identityKernel() kernel.Kernel {
	return kernel.Kernel{W: 1, H: 1, Weights: []float64{1}}
}

func TestRun_IdentityKernelIsNoOp(t *testing.T) {
	src := image.NewGray(image.Rect(0, 0, 4, 4))
	for i := range src.Pix {
		src.Pix[i] = uint8(i * 7 % 256)
	}

	out := Run(src, identityKernel(), false)

	for y := 0; y < 4; y++ {
		for x := 0; x < 4; x++ {
			want := pixel.Sample(src, pixel.Gray, x, y) * 65535.0
			got := out.FloatSample(pixel.Gray, x, y)
			if diff := got - want; diff > 1 || diff < -1 {
				t.Fatalf("identity kernel changed (%d,%d): got %v want %v", x, y, got, want)
			}
		}
	}
}

func TestRun_BoxBlurFlatFieldUnchanged(t *testing.T) {
	src := image.NewGray(image.Rect(0, 0, 6, 6))
	for i := range src.Pix {
		src.Pix[i] = 100
	}
	box, err := kernel.FromString("1,1,1; 1,1,1; 1,1,1")
	if err != nil {
		t.Fatalf("kernel: %v", err)
	}
	out := Run(src, box.Normalize(), false)

	want := pixel.Sample(src, pixel.Gray, 0, 0) * 65535.0
	for y := 0; y < 6; y++ {
		for x := 0; x < 6; x++ {
			got := out.FloatSample(pixel.Gray, x, y)
			if diff := got - want; diff > 1 || diff < -1 {
				t.Fatalf("box blur of flat field changed (%d,%d): got %v want %v", x, y, got, want)
			}
		}
	}
}

func TestRun_EdgeClampReplicatesBorder(t *testing.T) {
	// A 3-wide, 1-tall horizontal box kernel at the top-left corner
	// must read its out-of-bounds neighbors as a replicate of the
	// corner pixel, not as zero.
	src := image.NewGray(image.Rect(0, 0, 3, 3))
	src.SetGray(0, 0, color.Gray{Y: 50})
	for y := 0; y < 3; y++ {
		for x := 0; x < 3; x++ {
			if x == 0 && y == 0 {
				continue
			}
			src.SetGray(x, y, color.Gray{Y: 200})
		}
	}
	k := kernel.Kernel{W: 3, H: 1, Weights: []float64{1, 1, 1}}
	out := Run(src, k, false)

	// out(0,0) averages src(-1,0)=clamp->src(0,0)=50, src(0,0)=50,
	// src(1,0)=200, normalized by gamma = sum of weights = 3.
	want := (50.0 + 50.0 + 200.0) / 3.0 / 255.0 * 65535.0
	got := out.FloatSample(pixel.Gray, 0, 0)
	if diff := got - want; diff > 260 || diff < -260 {
		t.Fatalf("edge-clamped corner = %v, want ~%v", got, want)
	}
}

func TestRun_AlphaWeightingExcludesTransparentNeighbors(t *testing.T) {
	src := image.NewNRGBA(image.Rect(0, 0, 3, 1))
	src.SetNRGBA(0, 0, color.NRGBA{R: 255, A: 255})
	src.SetNRGBA(1, 0, color.NRGBA{R: 100, A: 0})
	src.SetNRGBA(2, 0, color.NRGBA{R: 255, A: 255})

	k := kernel.Kernel{W: 3, H: 1, Weights: []float64{1, 1, 1}}
	out := Run(src, k, true)

	got := out.FloatSample(pixel.Red, 1, 0)
	want := 65535.0 // the transparent neighbor contributes 0 weight and 0 sample
	if diff := got - want; diff > 1 || diff < -1 {
		t.Fatalf("alpha-weighted red at (1,0) = %v, want ~%v", got, want)
	}
}

func TestRun_PreservesAlphaChannel(t *testing.T) {
	src := image.NewNRGBA(image.Rect(0, 0, 2, 2))
	for i := range src.Pix {
		src.Pix[i] = 255
	}
	src.SetNRGBA(0, 0, color.NRGBA{R: 10, G: 10, B: 10, A: 128})

	k := identityKernel()
	out := Run(src, k, false)
	if !out.HasAlpha {
		t.Fatalf("output lost alpha channel")
	}
	want := pixel.Sample(src, pixel.Opacity, 0, 0) * 65535.0
	got := out.FloatSample(pixel.Opacity, 0, 0)
	if diff := got - want; diff > 1 || diff < -1 {
		t.Fatalf("alpha at (0,0) = %v, want ~%v", got, want)
	}
}
